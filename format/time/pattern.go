package time

import (
	"github.com/pkg/errors"
	"github.com/viant/parsly"
	"strings"
	"sync"
)

// layouts caches pattern to layout translations
var layouts sync.Map

// goLayoutWords are reference time fragments that time package would interpret inside a literal
var goLayoutWords = []string{"Jan", "Mon", "MST", "PM", "pm"}

// PatternToTimeLayout converts date pattern (i.e. yyyy-MM-dd'T'HH:mm:ss.SSSXXX) to go time layout.
//
// Supported letters: y, Y, M, L, d, D, E, a, H, h, m, s, S, z, Z, X. Text in single quotes is a literal,
// two single quotes represent a quote. Letters outside of quotes that have no layout equivalent are reported
// with ErrUnsupportedPattern.
func PatternToTimeLayout(pattern string) (string, error) {
	if layout, ok := layouts.Load(pattern); ok {
		return layout.(string), nil
	}
	layout, err := translatePattern(pattern)
	if err != nil {
		return "", err
	}
	layouts.Store(pattern, layout)
	return layout, nil
}

func translatePattern(pattern string) (string, error) {
	cursor := parsly.NewCursor("", []byte(pattern), 0)
	builder := &strings.Builder{}
	quoteEnd := -1
	for cursor.Pos < len(cursor.Input) {
		ch := cursor.Input[cursor.Pos]
		switch {
		case ch == '\'':
			if cursor.Pos+1 < len(cursor.Input) && cursor.Input[cursor.Pos+1] == '\'' {
				builder.WriteByte('\'')
				cursor.Pos += 2
				continue
			}
			start := cursor.Pos
			match := cursor.MatchAny(quotedMatcher)
			if match.Code != quotedToken {
				return "", errors.Wrapf(ErrUnsupportedPattern, "unterminated quote at %d in %q", start, pattern)
			}
			if start == quoteEnd { //'o''clock'
				builder.WriteByte('\'')
			}
			text := match.Text(cursor)
			if err := appendLiteral(builder, text[1:len(text)-1], pattern); err != nil {
				return "", err
			}
			quoteEnd = cursor.Pos
		case isLetter(ch):
			count := 1
			for cursor.Pos+count < len(cursor.Input) && cursor.Input[cursor.Pos+count] == ch {
				count++
			}
			if err := appendField(builder, ch, count, pattern); err != nil {
				return "", err
			}
			cursor.Pos += count
		default:
			end := cursor.Pos + 1
			for end < len(cursor.Input) && !isLetter(cursor.Input[end]) && cursor.Input[end] != '\'' {
				end++
			}
			if err := appendLiteral(builder, string(cursor.Input[cursor.Pos:end]), pattern); err != nil {
				return "", err
			}
			cursor.Pos = end
		}
	}
	return builder.String(), nil
}

func appendLiteral(builder *strings.Builder, literal string, pattern string) error {
	if strings.ContainsAny(literal, "0123456789") {
		return errors.Wrapf(ErrUnsupportedPattern, "literal %q with digits in %q", literal, pattern)
	}
	for _, word := range goLayoutWords {
		if strings.Contains(literal, word) {
			return errors.Wrapf(ErrUnsupportedPattern, "literal %q collides with layout element %q in %q", literal, word, pattern)
		}
	}
	builder.WriteString(literal)
	return nil
}

func appendField(builder *strings.Builder, letter byte, count int, pattern string) error {
	var field string
	switch letter {
	case 'y', 'Y':
		if count == 2 {
			field = "06"
		} else {
			field = "2006"
		}
	case 'M', 'L':
		switch count {
		case 1:
			field = "1"
		case 2:
			field = "01"
		case 3:
			field = "Jan"
		default:
			field = "January"
		}
	case 'd':
		field = pick(count, "2", "02")
	case 'D':
		if count >= 3 {
			field = "002"
		} else {
			field = "__2"
		}
	case 'E':
		if count <= 3 {
			field = "Mon"
		} else {
			field = "Monday"
		}
	case 'a':
		field = "PM"
	case 'H':
		field = "15"
	case 'h':
		field = pick(count, "3", "03")
	case 'm':
		field = pick(count, "4", "04")
	case 's':
		field = pick(count, "5", "05")
	case 'S':
		//fraction needs to follow '.' or ',' separator
		layout := builder.String()
		if layout == "" || (layout[len(layout)-1] != '.' && layout[len(layout)-1] != ',') {
			return errors.Wrapf(ErrUnsupportedPattern, "fraction of second without separator in %q", pattern)
		}
		field = strings.Repeat("0", count)
	case 'z':
		field = "MST"
	case 'Z':
		field = "-0700"
	case 'X':
		switch count {
		case 1:
			field = "Z07"
		case 2:
			field = "Z0700"
		default:
			field = "Z07:00"
		}
	default:
		return errors.Wrapf(ErrUnsupportedPattern, "letter %q in %q", letter, pattern)
	}
	if isUnderscoreCollision(builder.String(), field) {
		return errors.Wrapf(ErrUnsupportedPattern, "'_' before %q reads as padded day in %q", string(letter), pattern)
	}
	builder.WriteString(field)
	return nil
}

// isUnderscoreCollision returns true if layout ending with '_' followed by field forms _2 or __2 layout element,
// only a single '_' followed by 2006 stays literal
func isUnderscoreCollision(layout, field string) bool {
	if !strings.HasSuffix(layout, "_") || !strings.HasPrefix(field, "2") {
		return false
	}
	return field != "2006" || strings.HasSuffix(layout, "__")
}

func pick(count int, short, padded string) string {
	if count == 1 {
		return short
	}
	return padded
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
