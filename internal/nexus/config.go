// Package nexus loads configuration structs from the environment, an optional
// config file and programmatic overrides, then validates the result.
package nexus

import (
	"context"
	"fmt"
	"os"
	"reflect"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// ConfigError represents configuration errors.
type ConfigError struct {
	Code    string
	Message string
	Field   string
	Cause   error
}

func (e ConfigError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Field != "" {
		msg += fmt.Sprintf(" (field: %s)", e.Field)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e ConfigError) Unwrap() error {
	return e.Cause
}

const (
	ErrCodeInvalidType = "CONFIG_INVALID_TYPE"
	ErrCodeFileRead    = "CONFIG_FILE_READ_FAILED"
	ErrCodeValidation  = "CONFIG_VALIDATION_FAILED"
	ErrCodeEnvironment = "CONFIG_ENV_READ_FAILED"
	ErrCodeMerge       = "CONFIG_MERGE_FAILED"
)

// Validator handles configuration validation.
type Validator interface {
	Validate(ctx context.Context, cfg interface{}) error
}

type LoaderOptions struct {
	// DefaultFileName is read when present and no FileName is set.
	DefaultFileName string
	FileName        string
	OnlyEnvironment bool
	Validator       Validator
	Overrides       []interface{}
}

type Loader struct {
	options LoaderOptions
}

type LoaderOption func(*LoaderOptions)

func WithDefaultFileName(fileName string) LoaderOption {
	return func(o *LoaderOptions) {
		o.DefaultFileName = fileName
	}
}

// WithFileName forces a config file; a missing file is an error.
func WithFileName(fileName string) LoaderOption {
	return func(o *LoaderOptions) {
		o.FileName = fileName
	}
}

func WithOnlyEnvironment() LoaderOption {
	return func(o *LoaderOptions) {
		o.OnlyEnvironment = true
		o.FileName = ""
		o.DefaultFileName = ""
	}
}

func WithValidator(v Validator) LoaderOption {
	return func(o *LoaderOptions) {
		o.Validator = v
	}
}

// WithOverrides merges each value over the loaded config. Only non-zero
// fields of an override replace loaded values; later overrides win.
func WithOverrides(overrides ...interface{}) LoaderOption {
	return func(o *LoaderOptions) {
		o.Overrides = append(o.Overrides, overrides...)
	}
}

func NewLoader(opts ...LoaderOption) *Loader {
	options := LoaderOptions{
		DefaultFileName: ".env",
		Validator:       &DefaultValidator{},
	}
	for _, opt := range opts {
		opt(&options)
	}
	return &Loader{options: options}
}

func (l *Loader) Load(cfg interface{}) error {
	return l.LoadWithContext(context.Background(), cfg)
}

func (l *Loader) LoadWithContext(ctx context.Context, cfg interface{}) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return &ConfigError{
			Code:    ErrCodeInvalidType,
			Message: fmt.Sprintf("configuration must be a pointer to struct, got %T", cfg),
		}
	}

	if fileName := l.resolveFileName(); fileName != "" {
		// ReadConfig applies the file, then the environment, then defaults.
		if err := cleanenv.ReadConfig(fileName, cfg); err != nil {
			return &ConfigError{
				Code:    ErrCodeFileRead,
				Message: "failed to read configuration file " + fileName,
				Cause:   err,
			}
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return &ConfigError{
			Code:    ErrCodeEnvironment,
			Message: "failed to read environment variables",
			Cause:   err,
		}
	}

	for _, o := range l.options.Overrides {
		if err := mergo.Merge(cfg, o, mergo.WithOverride); err != nil {
			return &ConfigError{
				Code:    ErrCodeMerge,
				Message: "failed to merge configuration overrides",
				Cause:   err,
			}
		}
	}

	if err := l.options.Validator.Validate(ctx, cfg); err != nil {
		ce := &ConfigError{
			Code:    ErrCodeValidation,
			Message: "configuration validation failed",
			Cause:   err,
		}
		var verrs validator.ValidationErrors
		if ok := asValidationErrors(err, &verrs); ok && len(verrs) > 0 {
			ce.Field = verrs[0].Namespace()
		}
		return ce
	}
	return nil
}

func (l *Loader) resolveFileName() string {
	if l.options.OnlyEnvironment {
		return ""
	}
	if l.options.FileName != "" {
		return l.options.FileName
	}
	if l.options.DefaultFileName == "" {
		return ""
	}
	if _, err := os.Stat(l.options.DefaultFileName); err == nil {
		return l.options.DefaultFileName
	}
	return ""
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = verrs
	}
	return ok
}

// DefaultValidator runs go-playground/validator struct tags.
type DefaultValidator struct {
	validator *validator.Validate
}

func (v *DefaultValidator) Validate(_ context.Context, cfg interface{}) error {
	if v.validator == nil {
		v.validator = validator.New()
	}
	return v.validator.Struct(cfg)
}
