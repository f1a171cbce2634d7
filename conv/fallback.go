package conv

import (
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"reflect"
	"strings"
	"time"
)

var timeType = reflect.TypeOf(time.Time{})

func (r *Registry) convertDefault(value interface{}, target reflect.Type) (interface{}, error) {
	srcValue := reflect.ValueOf(value)
	srcType := srcValue.Type()
	if srcType.AssignableTo(target) {
		return value, nil
	}
	if target.Kind() == reflect.Ptr {
		return r.Convert(value, target.Elem())
	}
	if srcType.Kind() == reflect.Ptr {
		if srcValue.IsNil() {
			return nil, nil
		}
		return r.Convert(srcValue.Elem().Interface(), target)
	}
	if srcType.Kind() == target.Kind() && srcType.ConvertibleTo(target) {
		return srcValue.Convert(target).Interface(), nil
	}

	destValue := reflect.New(target).Elem()
	if srcType.Kind() == reflect.String && isPrimitive(target.Kind()) {
		text := strings.TrimSpace(srcValue.String())
		if text == "" {
			return nil, nil
		}
		if isNumeric(target.Kind()) {
			text = trimLeadingZeros(text)
		}
		value = text
	}
	switch target.Kind() {
	case reflect.String:
		text, err := cast.ToStringE(value)
		if err != nil {
			return nil, err
		}
		destValue.SetString(text)
		return destValue.Interface(), nil
	case reflect.Bool:
		flag, err := cast.ToBoolE(value)
		if err != nil {
			return nil, err
		}
		destValue.SetBool(flag)
		return destValue.Interface(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		number, err := cast.ToInt64E(value)
		if err != nil {
			return nil, err
		}
		if destValue.OverflowInt(number) {
			return nil, errors.Errorf("value %v overflows %v", number, target)
		}
		destValue.SetInt(number)
		return destValue.Interface(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		number, err := cast.ToUint64E(value)
		if err != nil {
			return nil, err
		}
		if destValue.OverflowUint(number) {
			return nil, errors.Errorf("value %v overflows %v", number, target)
		}
		destValue.SetUint(number)
		return destValue.Interface(), nil
	case reflect.Float32, reflect.Float64:
		number, err := cast.ToFloat64E(value)
		if err != nil {
			return nil, err
		}
		destValue.SetFloat(number)
		return destValue.Interface(), nil
	}

	if target == timeType {
		return r.convertToTime(value)
	}
	if srcType.ConvertibleTo(target) {
		return srcValue.Convert(target).Interface(), nil
	}
	return nil, errors.Errorf("unsupported conversion: %v to %v", srcType, target)
}

func isPrimitive(kind reflect.Kind) bool {
	return kind == reflect.Bool || isNumeric(kind)
}

func isNumeric(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// trimLeadingZeros keeps decimal text from being read as octal, i.e. 010 is 10
func trimLeadingZeros(text string) string {
	digits := strings.TrimLeft(text, "+-")
	sign := text[:len(text)-len(digits)]
	trimmed := strings.TrimLeft(digits, "0")
	if len(trimmed) == len(digits) {
		return text
	}
	if trimmed == "" || trimmed[0] < '0' || trimmed[0] > '9' {
		trimmed = "0" + trimmed
	}
	return sign + trimmed
}

func (r *Registry) convertToTime(value interface{}) (interface{}, error) {
	if text, ok := value.(string); ok {
		if strings.TrimSpace(text) == "" {
			return nil, nil
		}
		if ts, err := time.ParseInLocation(r.options.DateLayout, text, r.options.Location); err == nil {
			return ts, nil
		}
	}
	ts, err := cast.ToTimeInDefaultLocationE(value, r.options.Location)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot convert %T to time.Time", value)
	}
	return ts, nil
}
