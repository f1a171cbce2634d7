package bean

import "github.com/sirupsen/logrus"

// Options represents copier options
type Options struct {
	// TagName is a secondary tag name used for property names, format tag takes precedence
	TagName string
	// IgnoreEmpty skips zero source values when copying all properties
	IgnoreEmpty bool
	// Logger logs skipped properties
	Logger logrus.FieldLogger
}

// Option represents copier option
type Option func(o *Options)

// WithTagName sets secondary property name tag
func WithTagName(name string) Option {
	return func(o *Options) {
		o.TagName = name
	}
}

// WithIgnoreEmpty skips zero source values
func WithIgnoreEmpty(flag bool) Option {
	return func(o *Options) {
		o.IgnoreEmpty = flag
	}
}

// WithLogger sets logger
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

func newOptions(opts []Option) Options {
	ret := Options{TagName: "json"}
	for _, opt := range opts {
		opt(&ret)
	}
	if ret.Logger == nil {
		ret.Logger = logrus.StandardLogger()
	}
	return ret
}
