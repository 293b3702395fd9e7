// Package config loads the generator settings with Viper.
//
// Settings come, in increasing precedence, from defaults, an enumgen.yaml
// file, ENUMGEN_* environment variables and command-line flags bound by the
// caller.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"enum-generator/internal/logging"
)

// EnvPrefix prefixes every environment variable, e.g. ENUMGEN_LOG_LEVEL.
const EnvPrefix = "ENUMGEN"

// Setting keys.
const (
	KeyOutputDir        = "output_dir"
	KeyWorkers          = "workers"
	KeyOmitTimestamp    = "omit_timestamp"
	KeyDebugUnformatted = "debug_unformatted"
	KeySuffix           = "suffix"
	KeyLogLevel         = "log.level"
	KeyLogJSON          = "log.json"
)

// Config holds the generator settings.
type Config struct {
	// OutputDir receives generated files. Empty means next to the enum's package.
	OutputDir string `mapstructure:"output_dir"`
	// Workers bounds concurrent enum generation. Zero means GOMAXPROCS.
	Workers       int  `mapstructure:"workers" validate:"gte=0"`
	OmitTimestamp bool `mapstructure:"omit_timestamp"`
	// DebugUnformatted writes sources rejected by go/format as sidecar files.
	DebugUnformatted bool      `mapstructure:"debug_unformatted"`
	Suffix           string    `mapstructure:"suffix" validate:"endswith=.go"`
	Log              LogConfig `mapstructure:"log"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyOutputDir, "")
	v.SetDefault(KeyWorkers, 0)
	v.SetDefault(KeyOmitTimestamp, false)
	v.SetDefault(KeyDebugUnformatted, false)
	v.SetDefault(KeySuffix, ".gen.go")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogJSON, false)
}

// New returns a Viper instance with defaults and environment binding. A
// non-empty configFile is read explicitly; otherwise enumgen.yaml is looked
// up in the working directory and is optional.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("enumgen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return v, nil
}

// Load unmarshals and validates the settings held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report settings by their key rather than the Go field name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		if name == "" || name == "-" {
			return f.Name
		}

		return name
	})

	return v
}

// Validate checks settings that cannot be caught by the type system.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var valErrs validator.ValidationErrors
		if !errors.As(err, &valErrs) {
			return fmt.Errorf("failed to validate config: %w", err)
		}

		messages := make([]string, 0, len(valErrs))
		for _, ve := range valErrs {
			messages = append(messages, fmt.Sprintf("%s: %s, got %v", ve.Field(), formatValidationError(ve), ve.Value()))
		}

		return fmt.Errorf("invalid config: %s", strings.Join(messages, "; "))
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}

	return nil
}

func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "gte":
		return "must be at least " + ve.Param()
	case "endswith":
		return fmt.Sprintf("must end in %q", ve.Param())
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}

		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}

// LogOptions returns the logging options described by c.
func (c *Config) LogOptions() logging.Options {
	return logging.Options{Level: c.Log.Level, JSON: c.Log.JSON}
}
