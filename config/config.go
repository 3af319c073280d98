// Package config loads dynspv-gen configuration from an optional
// dynspv.toml file, with environment variable overrides (DYNSPV_*).
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/SSimco/dynspv/errors"
)

// Config holds the generator's settings. Command line flags override
// these values.
type Config struct {
	// Grammar is the path to spirv.core.grammar.json.
	Grammar string `mapstructure:"grammar"`

	// Template is the path to a header template. Empty means the
	// embedded template.
	Template string `mapstructure:"template"`

	// Output is the path of the generated header.
	Output string `mapstructure:"output"`

	// Format controls whether clang-format runs on the output.
	Format bool `mapstructure:"format"`

	// ClangFormat is the clang-format binary to invoke.
	ClangFormat string `mapstructure:"clang_format"`

	// ReservedWords are extra identifiers to escape in addition to
	// the built-in C++ keyword set.
	ReservedWords []string `mapstructure:"reserved_words"`
}

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("grammar", "spirv.core.grammar.json")
	v.SetDefault("template", "")
	v.SetDefault("output", "include/dynspv.hpp")
	v.SetDefault("format", true)
	v.SetDefault("clang_format", "clang-format")

	v.SetEnvPrefix("DYNSPV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads dynspv.toml from the working directory when present;
// defaults apply otherwise.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("dynspv")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}
	return &config, nil
}
