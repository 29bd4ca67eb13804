package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects configuration layers ordered from the lowest to the
// highest priority and merges them in build.
type configBuilder struct {
	configs []*StructuredConfig
	rest    []string
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 5),
	}
}

// build merges the collected layers, later non-zero fields overriding earlier
// ones, and runs the given validators on the result.
func (b *configBuilder) build(validators ...func(*StructuredConfig) error) (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	for _, validate := range validators {
		if err := validate(config); err != nil {
			return nil, err
		}
	}

	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaults())
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, rest, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.rest = rest
	b.configs = append(b.configs, flagsCfg)
	return b
}

// withDotEnv reads the .env file named by the layers collected so far and
// inserts it right above the defaults, below the process environment.
func (b *configBuilder) withDotEnv() *configBuilder {
	path := b.lastNonEmpty(func(cfg *StructuredConfig) string { return cfg.EnvFilePath })
	if path == "" {
		return b
	}

	dotEnvCfg, err := parseDotEnv(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if dotEnvCfg == nil {
		return b
	}

	at := 0
	if len(b.configs) > 0 {
		at = 1
	}
	b.configs = append(b.configs[:at], append([]*StructuredConfig{dotEnvCfg}, b.configs[at:]...)...)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	jsonPath := b.lastNonEmpty(func(cfg *StructuredConfig) string { return cfg.JSONFilePath })
	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}

func (b *configBuilder) lastNonEmpty(field func(*StructuredConfig) string) string {
	var value string
	for _, cfg := range b.configs {
		if v := field(cfg); v != "" {
			value = v
		}
	}
	return value
}
