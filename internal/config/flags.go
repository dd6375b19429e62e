package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers the configuration flags on fs and returns the config
// they are parsed into. The result is meant to be passed to
// [GetClientConfig] after fs has been parsed.
//
// Flags:
//
//	--storage        storage driver (sqlite, file, memory)
//	--db             SQLite database path
//	--file           JSON slot file path
//	--kdf-iterations PBKDF2 iteration count
//	--save-debounce  quiet period before saving (e.g. "400ms")
//	--log-level      log level
//	--log-file       log file path
//	-c/--config      json file path with configs
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVar(&cfg.Storage.Driver, "storage", "", "Storage driver: sqlite, file or memory")
	fs.StringVar(&cfg.Storage.DB.DSN, "db", "", "SQLite database path")
	fs.StringVar(&cfg.Storage.File.Path, "file", "", "JSON slot file path")
	fs.IntVar(&cfg.Crypto.KDFIterations, "kdf-iterations", 0, "PBKDF2 iteration count")
	fs.DurationVar(&cfg.Workers.SaveDebounce, "save-debounce", 0, "Quiet period before saving (e.g. 400ms)")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Log file path")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")

	return cfg
}
