package format

import (
	"fmt"
	"github.com/viant/parsly"
	ftime "github.com/viant/beanconv/format/time"
	"golang.org/x/text/language"
	"reflect"
	"strings"
	"time"
)

const (
	TagName = "format"
)

type Tag struct {
	Name string //property name, if empty struct field name is used

	DateFormat  string //ISO 2022-07-15 date format (YYYY-MM-DD)
	DatePattern string //date pattern (yyyy-MM-dd)
	TimeLayout  string
	Format      string

	Omitempty bool
	Ignore    bool

	Language string
	Location string
}

func (t *Tag) update(key string, value string, strictMode bool) error {
	switch strings.ToLower(key) {
	case "name":
		t.Name = value
	case "dateformat", "isodateformat", "iso20220715":
		t.DateFormat = value
		t.TimeLayout = ftime.DateFormatToTimeLayout(value)
	case "datepattern", "pattern":
		layout, err := ftime.PatternToTimeLayout(value)
		if err != nil {
			return err
		}
		t.DatePattern = value
		t.TimeLayout = layout
	case "timelayout", "datelayout", "rfc3339":
		t.TimeLayout = value
	case "format":
		t.Format = value
	case "omitempty":
		t.Omitempty = true
	case "ignore", "-", "transient":
		t.Ignore = true
	case "lang", "language", "locale":
		if _, ok := ftime.ParseLocale(value); !ok {
			return fmt.Errorf("invalid %v: %v", key, value)
		}
		t.Language = value
	case "location", "tz", "timezone":
		if _, err := time.LoadLocation(value); err != nil {
			return fmt.Errorf("invalid %v: %w", key, err)
		}
		t.Location = value
	default:
		if strictMode {
			return fmt.Errorf("Unknown key " + key)
		}
	}
	return nil
}

// HasDate returns true if tag defines date pattern, format or layout
func (t *Tag) HasDate() bool {
	return t.DatePattern != "" || t.TimeLayout != ""
}

// Locale returns tag language or fallback if undefined
func (t *Tag) Locale(fallback language.Tag) language.Tag {
	if t.Language == "" {
		return fallback
	}
	tag, _ := ftime.ParseLocale(t.Language)
	return tag
}

// TimeLocation returns tag location or fallback if undefined
func (t *Tag) TimeLocation(fallback *time.Location) *time.Location {
	if t.Location == "" {
		return fallback
	}
	loc, err := time.LoadLocation(t.Location)
	if err != nil {
		return fallback
	}
	return loc
}

func Parse(tag reflect.StructTag, names ...string) (*Tag, error) {
	ret := &Tag{}

	names = append([]string{TagName}, names...)
	for i, name := range names {
		encoded := tag.Get(name)
		if encoded == "" {
			continue
		}
		switch encoded {
		case "-":
			ret.Ignore = true
		case ",omitempty":
			ret.Omitempty = true
		}
		cursor := parsly.NewCursor("", []byte(encoded), 0)
		for j := 0; cursor.Pos < len(cursor.Input); j++ {
			key, value := matchPair(cursor)
			if key == "" {
				if i > 0 && j == 0 { //json:"name,omitempty" style
					if ret.Name == "" && value != "-" {
						ret.Name = value
					}
					continue
				}
				key, value = value, ""
			}
			if key == "" {
				continue
			}
			if err := ret.update(key, value, i == 0); err != nil {
				return nil, err
			}
		}
	}
	return ret, nil
}

// matchPair matches key=value or bare element, a value can be wrapped with {} to embed comas, i.e. datePattern={MMM d, yyyy}
func matchPair(cursor *parsly.Cursor) (string, string) {
	key := ""
	value := ""
	pos := cursor.Pos
	if match := cursor.MatchAny(keyTerminatorMatcher); match.Code == keyTerminatorToken {
		text := match.Text(cursor)
		if strings.ContainsAny(text, ",{") {
			cursor.Pos = pos
		} else {
			key = text[:len(text)-1] //exclude =
		}
	}
	match := cursor.MatchAny(scopeBlockMatcher, comaTerminatorMatcher)
	switch match.Code {
	case scopeBlockToken:
		value = match.Text(cursor)
		value = value[1 : len(value)-1]
		cursor.MatchAny(comaTerminatorMatcher)
	case comaTerminatorToken:
		value = match.Text(cursor)
		value = value[:len(value)-1] //exclude ,
	default:
		if cursor.Pos < len(cursor.Input) {
			value = string(cursor.Input[cursor.Pos:])
			cursor.Pos = len(cursor.Input)
		}
	}
	return key, value
}
