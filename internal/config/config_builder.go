package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// layer is one configuration source together with the name used in errors.
type layer struct {
	source string
	cfg    *StructuredConfig
}

// configBuilder stacks configuration layers from highest to lowest priority.
// Errors from individual sources are collected and reported by build.
type configBuilder struct {
	layers []layer
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{layers: make([]layer, 0, 4)}
}

func (b *configBuilder) push(source string, cfg *StructuredConfig) *configBuilder {
	b.layers = append(b.layers, layer{source: source, cfg: cfg})
	return b
}

func (b *configBuilder) fail(source string, err error) *configBuilder {
	b.err = errors.Join(b.err, fmt.Errorf("%s: %w", source, err))
	return b
}

// build folds the layers into one config. mergo only fills fields that are
// still zero, so a value from an earlier layer is never overwritten.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, l := range b.layers {
		if err := mergo.Merge(merged, l.cfg); err != nil {
			return nil, fmt.Errorf("error merging %s config: %w", l.source, err)
		}
	}

	return merged, merged.validate()
}

func (b *configBuilder) withFlags(flags *StructuredConfig) *configBuilder {
	if flags == nil {
		return b
	}
	return b.push("flags", flags)
}

func (b *configBuilder) withEnv() *configBuilder {
	var cfg StructuredConfig
	if err := parseEnv(&cfg); err != nil {
		return b.fail("env", err)
	}
	return b.push("env", &cfg)
}

// withJSON loads the config file named by the first layer that sets
// JSONFilePath. Nothing is added when no layer names one.
func (b *configBuilder) withJSON() *configBuilder {
	path := b.jsonPath()
	if path == "" {
		return b
	}

	cfg, err := parseJSON(path)
	if err != nil {
		return b.fail("json", err)
	}
	return b.push("json", cfg)
}

func (b *configBuilder) jsonPath() string {
	for _, l := range b.layers {
		if l.cfg.JSONFilePath != "" {
			return l.cfg.JSONFilePath
		}
	}
	return ""
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.push("defaults", defaultConfig())
}
