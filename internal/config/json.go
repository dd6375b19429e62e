package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type jsonStorage struct {
	Driver string `json:"driver"`
	DB     struct {
		DSN string `json:"dsn"`
	} `json:"db"`
	File struct {
		Path string `json:"path"`
	} `json:"file"`
}

// StructuredJSONConfig is the on-disk shape of the optional config file.
// Unknown keys are rejected so a misspelt setting does not pass silently.
type StructuredJSONConfig struct {
	Storage jsonStorage `json:"storage"`

	Crypto struct {
		KDFIterations int `json:"kdf_iterations"`
	} `json:"crypto"`

	Workers struct {
		SaveDebounce Duration `json:"save_debounce"`
	} `json:"workers"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log"`
}

func (j *StructuredJSONConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			Driver: j.Storage.Driver,
			DB:     DB{DSN: expandHome(j.Storage.DB.DSN)},
			File:   File{Path: expandHome(j.Storage.File.Path)},
		},
		Crypto:  Crypto{KDFIterations: j.Crypto.KDFIterations},
		Workers: Workers{SaveDebounce: time.Duration(j.Workers.SaveDebounce)},
		Log: Log{
			Level: j.Log.Level,
			File:  expandHome(j.Log.File),
		},
	}
}

func parseJSON(path string) (*StructuredConfig, error) {
	raw, err := os.ReadFile(expandHome(path))
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var file StructuredJSONConfig
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return file.toStructured(), nil
}

// expandHome replaces a leading "~/" with the current user's home directory.
func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

// Duration accepts either a Go duration string ("400ms") or a number of
// nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
		return nil
	}

	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("duration must be a string or an integer: %w", err)
	}
	*d = Duration(n)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
