// Package config loads solver settings from defaults, an optional YAML file,
// HUNGARIAN_* environment variables and command-line flags, in increasing
// order of precedence, and validates the result.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/spf13/viper"

	"github.com/katalvlaran/hungarian/assignment"
)

// EnvPrefix namespaces environment overrides, e.g. HUNGARIAN_MAX_SIZE=20.
const EnvPrefix = "HUNGARIAN"

// Keys shared by viper, the config file and flag bindings.
const (
	KeyMaxSize     = "max_size"
	KeyObjective   = "objective"
	KeyFormat      = "format"
	KeyInputFormat = "input_format"
	KeyLang        = "lang"
	KeyLogLevel    = "log_level"
	KeyLogEncoding = "log_encoding"
	KeyWorkers     = "workers"
)

// DefaultMaxSize caps problems at 10×10 unless configured otherwise.
const DefaultMaxSize = 10

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the resolved runtime configuration.
type Config struct {
	MaxSize     int    `mapstructure:"max_size" validate:"gte=0"`
	Objective   string `mapstructure:"objective" validate:"required,oneof=min max minimize maximize"`
	Format      string `mapstructure:"format" validate:"required,oneof=text json yaml"`
	InputFormat string `mapstructure:"input_format" validate:"required,oneof=auto yaml json grid"`
	Lang        string `mapstructure:"lang" validate:"required,oneof=en ru"`
	LogLevel    string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	LogEncoding string `mapstructure:"log_encoding" validate:"required,oneof=console json"`
	Workers     int    `mapstructure:"workers" validate:"gte=1,lte=256"`
}

// SetDefaults registers every key with its default so that environment
// variables are picked up by Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyMaxSize, DefaultMaxSize)
	v.SetDefault(KeyObjective, "min")
	v.SetDefault(KeyFormat, "text")
	v.SetDefault(KeyInputFormat, "auto")
	v.SetDefault(KeyLang, "en")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogEncoding, "console")
	v.SetDefault(KeyWorkers, 4)
}

// Load resolves the configuration held by v. When path is empty a
// "hungarian.yaml" in the working directory is used if present; a missing
// default file is not an error, a missing explicit file is.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("hungarian")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field constraints and reports every violation in one
// error, using the English validator translations.
func (c Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" {
			return fld.Name
		}
		return name
	})
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Translate(trans))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// SolveObjective converts the objective setting for the solver.
func (c Config) SolveObjective() (assignment.Objective, error) {
	return assignment.ParseObjective(c.Objective)
}

// SolveOptions returns the solver options implied by the configuration.
func (c Config) SolveOptions() []assignment.Option {
	return []assignment.Option{assignment.WithMaxSize(c.MaxSize)}
}
