package time

import (
	"fmt"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

var (
	//ErrParse is matched by any ParseError
	ErrParse = errors.New("date parse error")
	//ErrUnsupportedPattern reports pattern that can not be expressed as time layout
	ErrUnsupportedPattern = errors.New("unsupported date pattern")
)

// ParseError represents a text that does not match date pattern
type ParseError struct {
	Value   string
	Pattern string
	Locale  language.Tag
	Err     error
}

// Error returns error message
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %q with pattern %q (%v): %v", e.Value, e.Pattern, e.Locale, e.Err)
}

// Unwrap returns underlying time parse error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is returns true for ErrParse
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
