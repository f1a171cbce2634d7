package conv

import (
	"github.com/sirupsen/logrus"
	"time"
)

// DefaultDateLayout is the default layout used for time parsing when no converter is registered for time.Time
const DefaultDateLayout = "2006-01-02 15:04:05.000"

// Options contains configuration for the registry
type Options struct {
	// DateLayout specifies the layout for default time parsing
	DateLayout string
	// Location is used for time values without zone information
	Location *time.Location
	// Logger logs default conversion decisions
	Logger logrus.FieldLogger
}

// Option represents registry option
type Option func(o *Options)

// DefaultOptions returns default conversion options
func DefaultOptions() Options {
	return Options{
		DateLayout: DefaultDateLayout,
		Location:   time.UTC,
		Logger:     logrus.StandardLogger(),
	}
}

// WithDateLayout sets default date layout
func WithDateLayout(layout string) Option {
	return func(o *Options) {
		o.DateLayout = layout
	}
}

// WithLocation sets default time location
func WithLocation(loc *time.Location) Option {
	return func(o *Options) {
		o.Location = loc
	}
}

// WithLogger sets logger
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

func (o *Options) apply(opts []Option) {
	for _, opt := range opts {
		opt(o)
	}
	if o.DateLayout == "" {
		o.DateLayout = DefaultDateLayout
	}
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}
}
