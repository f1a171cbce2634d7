package conv

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	ftime "github.com/viant/beanconv/format/time"
	"gopkg.in/yaml.v3"
	"time"
)

type (
	// Config represents registry configuration
	Config struct {
		DateLayout string      `yaml:"dateLayout"`
		Location   string      `yaml:"location" validate:"omitempty,timezone"`
		Date       *DateConfig `yaml:"date"`
	}

	// DateConfig represents date pattern converter configuration
	DateConfig struct {
		Pattern  string `yaml:"pattern" validate:"required"`
		Locale   string `yaml:"locale" validate:"omitempty,locale"`
		Location string `yaml:"location" validate:"omitempty,timezone"`
	}
)

var validate = newValidator()

func newValidator() *validator.Validate {
	ret := validator.New()
	err := ret.RegisterValidation("locale", func(fl validator.FieldLevel) bool {
		_, ok := ftime.ParseLocale(fl.Field().String())
		return ok
	})
	if err != nil {
		panic(err)
	}
	return ret
}

// LoadConfig decodes and validates YAML configuration
func LoadConfig(data []byte) (*Config, error) {
	ret := &Config{}
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, errors.Wrap(err, "failed to decode conversion config")
	}
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

// Validate checks config
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid conversion config")
	}
	return nil
}

// Options returns registry options
func (c *Config) Options() []Option {
	var result []Option
	if c.DateLayout != "" {
		result = append(result, WithDateLayout(c.DateLayout))
	}
	if c.Location != "" {
		if loc, err := time.LoadLocation(c.Location); err == nil {
			result = append(result, WithLocation(loc))
		}
	}
	return result
}

// Converter creates date pattern converter
func (c *DateConfig) Converter() (*DatePatternConverter, error) {
	var opts []DateOption
	if c.Locale != "" {
		locale, ok := ftime.ParseLocale(c.Locale)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidArgument, "invalid locale: %v", c.Locale)
		}
		opts = append(opts, WithLocale(locale))
	}
	if c.Location != "" {
		loc, err := time.LoadLocation(c.Location)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidArgument, "invalid location: %v", c.Location)
		}
		opts = append(opts, WithTimeZone(loc))
	}
	if _, err := ftime.PatternToTimeLayout(c.Pattern); err != nil {
		return nil, err
	}
	return NewDatePatternConverter(c.Pattern, opts...), nil
}

// Apply registers configured converters
func (c *Config) Apply(registry *Registry) error {
	if c.Date == nil {
		return nil
	}
	converter, err := c.Date.Converter()
	if err != nil {
		return err
	}
	registry.Register(converter, timeType)
	return nil
}

// NewRegistryFromConfig creates registry with configured options and converters
func NewRegistryFromConfig(config *Config, opts ...Option) (*Registry, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	ret := NewRegistry(append(config.Options(), opts...)...)
	if err := config.Apply(ret); err != nil {
		return nil, err
	}
	return ret, nil
}
