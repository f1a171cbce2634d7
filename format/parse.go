package format

import (
	ftime "github.com/viant/beanconv/format/time"
	"golang.org/x/text/language"
	"time"
)

// ParseTime parses value with tag date pattern and language, or with time layout when pattern is not defined
func (t *Tag) ParseTime(value string) (time.Time, error) {
	if t.DatePattern != "" {
		return ftime.Parse(value, t.DatePattern, t.Locale(ftime.DefaultLocale()), t.TimeLocation(time.Local))
	}
	return ftime.ParseLayoutInLocation(t.TimeLayout, value, t.TimeLocation(time.UTC))
}

// FormatTime formats ts with tag date pattern and language, or with time layout when pattern is not defined
func (t *Tag) FormatTime(ts *time.Time) string {
	if t.Location != "" {
		localized := ts.In(t.TimeLocation(time.UTC))
		ts = &localized
	}
	if t.DatePattern != "" {
		if text, err := ftime.Format(*ts, t.DatePattern, t.Locale(language.AmericanEnglish)); err == nil {
			return text
		}
	}
	if t.TimeLayout == "" {
		return ts.Format(time.RFC3339)
	}
	return ts.Format(t.TimeLayout)
}
