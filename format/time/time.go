package time

import (
	"github.com/goodsign/monday"
	"golang.org/x/text/language"
	"strings"
	"time"
)

var iso20220715DateFormatToRfc3339TimeLayoutReplacer = strings.NewReplacer(
	"YYYY", "2006",
	"MM", "01",
	"M", "1",
	"DD", "02",
	"D", "2",
	"+hh:mm", "Z07:00",
	"+hhmm", "Z0700",
	"+hh", "Z07",
	"-hh:mm", "Z07:00",
	"-hhmm", "Z0700",
	"hh", "15",
	"mm", "04",
	"m", "4",
	"ss", "05",
	".SSS", ".999",
	".SS", ".99",
	".S", ".9",
	"-hh", "Z07",
	"Z", "Z07:00",
)

// DateFormatToTimeLayout converts ISO 2022-07-15 date format to RFC3339 time layout
func DateFormatToTimeLayout(dateFormat string) string {
	return iso20220715DateFormatToRfc3339TimeLayoutReplacer.Replace(dateFormat)
}

// ParseLayout parses value with Go time layout in UTC, it tolerates T/space separator mismatch and
// value/layout length differences
func ParseLayout(layout, value string) (time.Time, error) {
	return ParseLayoutInLocation(layout, value, time.UTC)
}

// ParseLayoutInLocation parses value with Go time layout, values without zone information are resolved in loc
func ParseLayoutInLocation(layout, value string, loc *time.Location) (time.Time, error) {
	if layout == "" {
		layout = time.RFC3339
	}
	//adjust T fragment
	if strings.Contains(value, "T") != strings.Contains(layout, "T") {
		layout = strings.Replace(layout, "T", " ", 1)
		value = strings.Replace(value, "T", " ", 1)
	}
	t, err := time.ParseInLocation(layout, value, loc)
	if err != nil {
		if len(value) > len(layout) {
			value = value[:len(layout)]
		} else {
			layout = layout[:len(value)]
		}
		t, err = time.ParseInLocation(layout, value, loc)
	}
	return t, err
}

// Parse parses text with date pattern (i.e. yyyy-MM-dd HH:mm:ss), month and weekday names are matched
// in the supplied locale, values without zone information are resolved in loc (time.Local if nil)
func Parse(text, pattern string, locale language.Tag, loc *time.Location) (time.Time, error) {
	layout, err := PatternToTimeLayout(pattern)
	if err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = time.Local
	}
	var ts time.Time
	if isEnglish(locale) {
		ts, err = time.ParseInLocation(layout, text, loc)
	} else {
		ts, err = monday.ParseInLocation(layout, text, loc, mondayLocale(locale))
	}
	if err != nil {
		return time.Time{}, &ParseError{Value: text, Pattern: pattern, Locale: locale, Err: err}
	}
	return ts, nil
}

// Format formats ts with date pattern in the supplied locale
func Format(ts time.Time, pattern string, locale language.Tag) (string, error) {
	layout, err := PatternToTimeLayout(pattern)
	if err != nil {
		return "", err
	}
	if isEnglish(locale) {
		return ts.Format(layout), nil
	}
	return monday.Format(ts, layout, mondayLocale(locale)), nil
}
