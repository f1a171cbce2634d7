package format

import (
	"fmt"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatFloat formats f with tag format in tag language (en-US by default)
func (t *Tag) FormatFloat(f float64) (string, error) {
	p := message.NewPrinter(t.Locale(language.AmericanEnglish))
	switch t.Format {
	case "Decimal":
		return p.Sprintf("%v", number.Decimal(f)), nil
	case "Percent":
		return p.Sprintf("%v", number.Percent(f)), nil
	default:
		return "", fmt.Errorf("format: %s not yet supported", t.Format)
	}
}
