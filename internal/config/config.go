// Package config loads the docmd configuration: a TOML file in the usual
// XDG locations, overridable with DOCMD_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// CargoConfig controls how the cargo toolchain is invoked.
type CargoConfig struct {
	// Toolchain used for rustdoc JSON generation. JSON output needs a
	// nightly compiler.
	Toolchain string `mapstructure:"toolchain"`
}

// BuildConfig controls the markdown build pipeline.
type BuildConfig struct {
	// KeepGoing accumulates per-item conversion failures into the build
	// summary instead of aborting on the first one.
	KeepGoing bool `mapstructure:"keep_going"`
	// Parallelism caps concurrent item conversions. Zero means one worker
	// per CPU.
	Parallelism int `mapstructure:"parallelism"`
}

// OutputConfig controls where the markdown corpus is written.
type OutputConfig struct {
	// Dir overrides the default output location next to the cargo doc
	// output. Empty means the default.
	Dir string `mapstructure:"dir"`
}

type Config struct {
	Cargo  CargoConfig  `mapstructure:"cargo"`
	Build  BuildConfig  `mapstructure:"build"`
	Output OutputConfig `mapstructure:"output"`
}

// cacheBase returns the base cache directory for docmd.
// Checks XDG_CACHE_HOME, then ~/.cache, then the temp dir as fallback.
func cacheBase() string {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, "docmd")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".cache", "docmd")
	}
	return filepath.Join(os.TempDir(), "docmd")
}

// JSONCacheDir returns the path to the rustdoc JSON cache directory.
func JSONCacheDir() string {
	return filepath.Join(cacheBase(), "json")
}

func InitializeViper() error {
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.AddConfigPath(".")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		viper.AddConfigPath(filepath.Join(xdg, "docmd"))
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "docmd"))
	}

	viper.SetDefault("cargo.toolchain", "nightly")
	viper.SetDefault("build.keep_going", true)
	viper.SetDefault("build.parallelism", 0)
	viper.SetDefault("output.dir", "")

	viper.SetEnvPrefix("DOCMD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}

// stringToOutputConfigHookFunc lets the config file use the shorthand
// `output = "path"` in place of an [output] table.
func stringToOutputConfigHookFunc() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t != reflect.TypeOf(OutputConfig{}) {
			return data, nil
		}
		if f.Kind() == reflect.String {
			return OutputConfig{Dir: data.(string)}, nil
		}
		return data, nil
	}
}

func Load() (*Config, error) {
	if err := InitializeViper(); err != nil {
		return nil, err
	}

	var config Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: stringToOutputConfigHookFunc(),
		Result:     &config,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(viper.AllSettings()); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
