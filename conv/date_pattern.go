package conv

import (
	"github.com/pkg/errors"
	ftime "github.com/viant/beanconv/format/time"
	"golang.org/x/text/language"
	"reflect"
	"strings"
	"sync/atomic"
	"time"
)

// ErrInvalidArgument reports converter misconfiguration
var ErrInvalidArgument = errors.New("invalid argument")

type (
	datePattern struct {
		pattern  string
		locale   language.Tag
		location *time.Location
	}

	// TimeFormatter formats time into text
	TimeFormatter interface {
		Format(ts time.Time) (string, error)
	}

	// DateOption represents date pattern converter option
	DateOption func(d *datePattern)

	// DatePatternConverter converts text into time.Time with a date pattern (i.e. yyyy-MM-dd) and locale.
	// Nil, empty or blank text and non text values convert into absent (nil) value.
	DatePatternConverter struct {
		config atomic.Pointer[datePattern]
	}
)

// WithLocale sets locale used to match month and weekday names
func WithLocale(locale language.Tag) DateOption {
	return func(d *datePattern) {
		d.locale = locale
	}
}

// WithTimeZone sets location used for text without zone information
func WithTimeZone(loc *time.Location) DateOption {
	return func(d *datePattern) {
		d.location = loc
	}
}

// NewDatePatternConverter creates date pattern converter, locale defaults to process locale, location to time.Local
func NewDatePatternConverter(pattern string, opts ...DateOption) *DatePatternConverter {
	config := &datePattern{pattern: pattern, locale: ftime.DefaultLocale(), location: time.Local}
	for _, opt := range opts {
		opt(config)
	}
	ret := &DatePatternConverter{}
	ret.config.Store(config)
	return ret
}

// DefaultType returns time.Time type
func (c *DatePatternConverter) DefaultType() reflect.Type {
	return timeType
}

// Pattern returns date pattern
func (c *DatePatternConverter) Pattern() string {
	return c.config.Load().pattern
}

// Locale returns locale
func (c *DatePatternConverter) Locale() language.Tag {
	return c.config.Load().locale
}

// SetPattern replaces date pattern for subsequent conversions
func (c *DatePatternConverter) SetPattern(pattern string) {
	c.update(func(d *datePattern) {
		d.pattern = pattern
	})
}

// SetLocale replaces locale for subsequent conversions
func (c *DatePatternConverter) SetLocale(locale language.Tag) {
	c.update(func(d *datePattern) {
		d.locale = locale
	})
}

func (c *DatePatternConverter) update(fn func(d *datePattern)) {
	for {
		prev := c.config.Load()
		next := *prev
		fn(&next)
		if c.config.CompareAndSwap(prev, &next) {
			return
		}
	}
}

// Convert converts text value into time.Time, target type is informational
func (c *DatePatternConverter) Convert(target reflect.Type, value interface{}) (interface{}, error) {
	config := c.config.Load()
	if config.pattern == "" {
		return nil, errors.Wrap(ErrInvalidArgument, "date pattern can't be empty")
	}
	if isEmpty(value) {
		return nil, nil
	}
	rValue := reflect.ValueOf(value)
	if rValue.Kind() != reflect.String {
		return nil, nil
	}
	ts, err := ftime.Parse(rValue.String(), config.pattern, config.locale, config.location)
	if err != nil {
		return nil, err
	}
	return ts, nil
}

// Format formats ts with converter pattern and locale
func (c *DatePatternConverter) Format(ts time.Time) (string, error) {
	config := c.config.Load()
	if config.pattern == "" {
		return "", errors.Wrap(ErrInvalidArgument, "date pattern can't be empty")
	}
	return ftime.Format(ts, config.pattern, config.locale)
}

func isEmpty(value interface{}) bool {
	if value == nil {
		return true
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.String:
		return strings.TrimSpace(rValue.String()) == ""
	case reflect.Ptr, reflect.Interface:
		return rValue.IsNil()
	}
	return false
}
