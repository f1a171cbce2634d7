package bean

import (
	"github.com/viant/beanconv/conv"
	"reflect"
	"time"
)

// format renders time and float values into text properties, destination tag takes precedence over source tag,
// time values without tag format use formatter registered for time.Time
func (c *Copier) format(from, target *property, value interface{}) (string, bool, error) {
	if ensureType(target.field.Type).Kind() != reflect.String {
		return "", false, nil
	}
	candidates := []*property{target, from}
	switch actual := value.(type) {
	case time.Time:
		for _, candidate := range candidates {
			if candidate != nil && candidate.tag.HasDate() {
				return candidate.tag.FormatTime(&actual), true, nil
			}
		}
		if formatter, ok := c.registry.Lookup(timeType).(conv.TimeFormatter); ok {
			text, err := formatter.Format(actual)
			return text, true, err
		}
	case float64:
		return formatFloat(candidates, actual)
	case float32:
		return formatFloat(candidates, float64(actual))
	}
	return "", false, nil
}

func formatFloat(candidates []*property, value float64) (string, bool, error) {
	for _, candidate := range candidates {
		if candidate != nil && candidate.tag.Format != "" {
			text, err := candidate.tag.FormatFloat(value)
			return text, true, err
		}
	}
	return "", false, nil
}
