// Package config loads the engine's process-wide knobs from YAML or the
// environment, grounded on RiemaLabs-alma-ssz/cmd/rlrunner/main.go's
// pattern of exposing the same options both as flag.Var bindings and as
// a struct any caller can build directly. Decoding goes through
// github.com/mitchellh/mapstructure so FromEnv and Load share one
// target-struct shape instead of hand-rolled field-by-field assignment.
package config

import (
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Config mirrors the root package's Config, with the tags Load and
// FromEnv need. cmd/conjecture converts this into a conjecture.Config
// before calling Check.
type Config struct {
	MaxExamples int   `yaml:"max_examples" mapstructure:"max_examples"`
	MaxShrinks  int   `yaml:"max_shrinks" mapstructure:"max_shrinks"`
	Verbose     bool  `yaml:"verbose" mapstructure:"verbose"`
	Seed        int64 `yaml:"seed" mapstructure:"seed"`
}

// Default returns the documented defaults: 100 examples, 200 shrinks.
func Default() Config {
	return Config{MaxExamples: 100, MaxShrinks: 200}
}

// Load reads a YAML file at path and merges it over Default: fields the
// file omits keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "config: reading %s", path)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "config: parsing %s", path)
	}
	return cfg, nil
}

// FromEnv builds a Config from environment variables named
// "<PREFIX>_MAX_EXAMPLES", "<PREFIX>_MAX_SHRINKS", "<PREFIX>_VERBOSE",
// and "<PREFIX>_SEED", merged over Default. Unset variables keep the
// default value.
func FromEnv(prefix string) (Config, error) {
	cfg := Default()

	raw := map[string]any{}
	prefix = strings.ToUpper(prefix) + "_"
	for _, key := range []string{"max_examples", "max_shrinks", "verbose", "seed"} {
		envName := prefix + strings.ToUpper(key)
		if v, ok := os.LookupEnv(envName); ok {
			raw[key] = v
		}
	}
	if len(raw) == 0 {
		return cfg, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return cfg, errors.Wrap(err, "config: building decoder")
	}
	if err := decoder.Decode(raw); err != nil {
		return cfg, errors.Wrapf(err, "config: decoding %s* environment", prefix)
	}
	return cfg, nil
}
