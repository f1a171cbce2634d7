package bean

import (
	"github.com/pkg/errors"
	"github.com/viant/beanconv/conv"
	"github.com/viant/beanconv/format"
	ftime "github.com/viant/beanconv/format/time"
	"reflect"
	"strings"
	"time"
)

var timeType = reflect.TypeOf(time.Time{})

type (
	property struct {
		name      string
		index     []int
		field     reflect.StructField
		tag       *format.Tag
		converter conv.Converter //field level date converter defined with format tag
	}

	structInfo struct {
		properties []*property
		byName     map[string]*property
		err        error
	}
)

func (s *structInfo) lookup(name string) *property {
	return s.byName[strings.ToLower(name)]
}

func (c *Copier) getStructInfo(t reflect.Type) *structInfo {
	if v, ok := c.structCache.Load(t); ok {
		return v.(*structInfo)
	}
	info := &structInfo{byName: make(map[string]*property)}
	c.buildStructInfo(t, info, nil)
	c.structCache.Store(t, info)
	return info
}

func (c *Copier) buildStructInfo(t reflect.Type, info *structInfo, index []int) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		fieldIndex := make([]int, len(index)+1)
		copy(fieldIndex, index)
		fieldIndex[len(index)] = i

		if field.Anonymous {
			ft := field.Type
			if ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct && ft != timeType {
				c.buildStructInfo(ft, info, fieldIndex)
				continue
			}
		}
		if !field.IsExported() {
			continue
		}
		tag, err := format.Parse(field.Tag, c.options.TagName)
		if err != nil {
			info.err = errors.Wrapf(err, "invalid tag on %v.%v", t.Name(), field.Name)
			continue
		}
		if tag.Ignore {
			continue
		}
		aProperty := &property{name: field.Name, index: fieldIndex, field: field, tag: tag}
		if tag.HasDate() && ensureType(field.Type) == timeType {
			aProperty.converter = tagConverter(tag)
		}
		info.properties = append(info.properties, aProperty)
		info.byName[strings.ToLower(field.Name)] = aProperty
		if tag.Name != "" {
			info.byName[strings.ToLower(tag.Name)] = aProperty
		}
	}
}

func tagConverter(tag *format.Tag) conv.Converter {
	if tag.DatePattern != "" {
		return conv.NewDatePatternConverter(tag.DatePattern,
			conv.WithLocale(tag.Locale(ftime.DefaultLocale())),
			conv.WithTimeZone(tag.TimeLocation(time.Local)))
	}
	return conv.ConverterFunc(func(target reflect.Type, value interface{}) (interface{}, error) {
		text, ok := value.(string)
		if !ok || text == "" {
			return nil, nil
		}
		ts, err := tag.ParseTime(text)
		if err != nil {
			return nil, err
		}
		return ts, nil
	})
}

func ensureType(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Ptr {
		return t.Elem()
	}
	return t
}

// value returns property value, nil for nil pointers on the path
func (p *property) value(holder reflect.Value) interface{} {
	fieldValue, err := holder.FieldByIndexErr(p.index)
	if err != nil {
		return nil
	}
	if fieldValue.Kind() == reflect.Ptr {
		if fieldValue.IsNil() {
			return nil
		}
		fieldValue = fieldValue.Elem()
	}
	return fieldValue.Interface()
}

// settable returns property value, embedded nil pointers on the path are allocated
func (p *property) settable(holder reflect.Value) reflect.Value {
	value := holder
	for i, index := range p.index {
		if i > 0 && value.Kind() == reflect.Ptr {
			if value.IsNil() {
				value.Set(reflect.New(value.Type().Elem()))
			}
			value = value.Elem()
		}
		value = value.Field(index)
	}
	return value
}
