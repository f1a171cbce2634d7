package bean

import (
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"github.com/viant/beanconv/conv"
	"reflect"
	"sync"
	"time"
)

// ErrPropertyNotFound reports unknown property name
var ErrPropertyNotFound = errors.New("property not found")

// Copier copies struct properties converting values with registry converters
type Copier struct {
	registry    *conv.Registry
	options     Options
	structCache sync.Map // map[reflect.Type]*structInfo
}

// New creates a copier, nil registry uses package conv registry
func New(registry *conv.Registry, opts ...Option) *Copier {
	if registry == nil {
		registry = conv.Default()
	}
	return &Copier{registry: registry, options: newOptions(opts)}
}

// SetProperty converts value into dst property type and sets it
func (c *Copier) SetProperty(dst interface{}, name string, value interface{}) error {
	holder, info, err := c.destination(dst)
	if err != nil {
		return err
	}
	target := info.lookup(name)
	if target == nil {
		return errors.Wrapf(ErrPropertyNotFound, "%v.%v", holder.Type().Name(), name)
	}
	return c.set(holder, nil, target, value)
}

// CopyProperty copies src property into dst property with the same name
func (c *Copier) CopyProperty(dst, src interface{}, name string) error {
	source, sourceInfo, err := c.source(src)
	if err != nil {
		return err
	}
	from := sourceInfo.lookup(name)
	if from == nil {
		return errors.Wrapf(ErrPropertyNotFound, "%v.%v", source.Type().Name(), name)
	}
	holder, info, err := c.destination(dst)
	if err != nil {
		return err
	}
	target := info.lookup(name)
	if target == nil {
		return errors.Wrapf(ErrPropertyNotFound, "%v.%v", holder.Type().Name(), name)
	}
	return c.set(holder, from, target, from.value(source))
}

// CopyProperties copies named properties, all src properties defined on dst are copied when names are not supplied
func (c *Copier) CopyProperties(dst, src interface{}, names ...string) error {
	if len(names) > 0 {
		for _, name := range names {
			if err := c.CopyProperty(dst, src, name); err != nil {
				return err
			}
		}
		return nil
	}
	source, sourceInfo, err := c.source(src)
	if err != nil {
		return err
	}
	holder, info, err := c.destination(dst)
	if err != nil {
		return err
	}
	for _, from := range sourceInfo.properties {
		target := info.lookup(from.name)
		if target == nil && from.tag.Name != "" {
			target = info.lookup(from.tag.Name)
		}
		if target == nil {
			c.options.Logger.WithField("property", from.name).Debugf("skipped: not defined on %v", holder.Type().Name())
			continue
		}
		value := from.value(source)
		if c.options.IgnoreEmpty && (value == nil || reflect.ValueOf(value).IsZero()) {
			continue
		}
		if err := c.set(holder, from, target, value); err != nil {
			return err
		}
	}
	return nil
}

// Copy copies src into dst (structs, slices, maps) with jinzhu/copier, text values are converted
// with converters registered for destination types
func (c *Copier) Copy(dst, src interface{}) error {
	err := copier.CopyWithOption(dst, src, copier.Option{
		IgnoreEmpty: c.options.IgnoreEmpty,
		DeepCopy:    true,
		Converters:  c.typeConverters(),
	})
	if err != nil {
		return errors.Wrap(err, "failed to copy")
	}
	return nil
}

func (c *Copier) typeConverters() []copier.TypeConverter {
	var result []copier.TypeConverter
	for _, target := range c.registry.Targets() {
		if target.Kind() == reflect.Ptr {
			continue
		}
		target := target
		result = append(result, copier.TypeConverter{
			SrcType: copier.String,
			DstType: reflect.Zero(target).Interface(),
			Fn: func(src interface{}) (interface{}, error) {
				return c.registry.Convert(src, target)
			},
		})
		ptrType := reflect.PtrTo(target)
		result = append(result, copier.TypeConverter{
			SrcType: copier.String,
			DstType: reflect.Zero(ptrType).Interface(),
			Fn: func(src interface{}) (interface{}, error) {
				value, err := c.registry.Convert(src, ptrType)
				if err != nil || value == nil {
					return nil, err
				}
				ptr := reflect.New(target)
				if err = conv.SetValue(ptr.Elem(), value); err != nil {
					return nil, err
				}
				return ptr.Interface(), nil
			},
		})
	}
	if formatter, ok := c.registry.Lookup(timeType).(conv.TimeFormatter); ok {
		result = append(result, copier.TypeConverter{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src interface{}) (interface{}, error) {
				return formatter.Format(src.(time.Time))
			},
		})
	}
	return result
}

func (c *Copier) set(holder reflect.Value, from, target *property, value interface{}) error {
	var result interface{}
	text, formatted, err := c.format(from, target, value)
	switch {
	case err != nil:
	case formatted:
		result = text
	case target.converter != nil:
		result, err = target.converter.Convert(target.field.Type, value)
	default:
		result, err = c.registry.Convert(value, target.field.Type)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to copy property %v", target.name)
	}
	if err = conv.SetValue(target.settable(holder), result); err != nil {
		return errors.Wrapf(err, "failed to set property %v", target.name)
	}
	return nil
}

func (c *Copier) source(src interface{}) (reflect.Value, *structInfo, error) {
	value := reflect.ValueOf(src)
	for value.Kind() == reflect.Ptr {
		if value.IsNil() {
			return value, nil, errors.New("source cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return value, nil, errors.Errorf("source must be a struct, but had %v", value.Kind())
	}
	info := c.getStructInfo(value.Type())
	return value, info, info.err
}

func (c *Copier) destination(dst interface{}) (reflect.Value, *structInfo, error) {
	value := reflect.ValueOf(dst)
	if value.Kind() != reflect.Ptr || value.IsNil() {
		return value, nil, errors.New("destination must be a non nil pointer")
	}
	value = value.Elem()
	if value.Kind() != reflect.Struct {
		return value, nil, errors.Errorf("destination must be a struct pointer, but had %v", value.Kind())
	}
	info := c.getStructInfo(value.Type())
	return value, info, info.err
}
