package conv

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"reflect"
	"sort"
	"sync"
)

type (
	// Converter converts value into target type, nil result represents absent value
	Converter interface {
		Convert(target reflect.Type, value interface{}) (interface{}, error)
	}

	// DefaultTyper is implemented by converters producing a fixed type
	DefaultTyper interface {
		DefaultType() reflect.Type
	}

	// ConverterFunc adapts a function to Converter
	ConverterFunc func(target reflect.Type, value interface{}) (interface{}, error)

	// Registry provides type conversion with converters registered per destination type
	Registry struct {
		options    Options
		converters sync.Map // map[reflect.Type]Converter
	}
)

// Convert calls f
func (f ConverterFunc) Convert(target reflect.Type, value interface{}) (interface{}, error) {
	return f(target, value)
}

// NewRegistry creates a registry
func NewRegistry(opts ...Option) *Registry {
	ret := &Registry{options: DefaultOptions()}
	ret.options.apply(opts)
	return ret
}

// Options returns registry options
func (r *Registry) Options() Options {
	return r.options
}

// Register registers converter for target type, it replaces previously registered converter
func (r *Registry) Register(converter Converter, target reflect.Type) {
	if converter == nil {
		r.Deregister(target)
		return
	}
	if target == nil {
		typer, ok := converter.(DefaultTyper)
		if !ok {
			r.options.Logger.Warnf("skipped %T registration: target type was nil", converter)
			return
		}
		target = typer.DefaultType()
	}
	r.converters.Store(target, converter)
}

// Deregister removes converter for target type
func (r *Registry) Deregister(target reflect.Type) {
	r.converters.Delete(target)
}

// Lookup returns converter registered for target type or its element type when target is a pointer
func (r *Registry) Lookup(target reflect.Type) Converter {
	if target == nil {
		return nil
	}
	if v, ok := r.converters.Load(target); ok {
		return v.(Converter)
	}
	if target.Kind() == reflect.Ptr {
		if v, ok := r.converters.Load(target.Elem()); ok {
			return v.(Converter)
		}
	}
	return nil
}

// Targets returns registered target types
func (r *Registry) Targets() []reflect.Type {
	var result []reflect.Type
	r.converters.Range(func(key, value interface{}) bool {
		result = append(result, key.(reflect.Type))
		return true
	})
	sort.Slice(result, func(i, j int) bool {
		return result[i].String() < result[j].String()
	})
	return result
}

// Convert converts value into target type, registered converter takes precedence over default conversion
func (r *Registry) Convert(value interface{}, target reflect.Type) (interface{}, error) {
	if target == nil {
		return nil, errors.New("target type was nil")
	}
	if converter := r.Lookup(target); converter != nil {
		return converter.Convert(target, value)
	}
	if value == nil {
		return nil, nil
	}
	r.options.Logger.WithFields(logrus.Fields{
		"source": reflect.TypeOf(value).String(),
		"target": target.String(),
	}).Debug("no converter registered, using default conversion")
	return r.convertDefault(value, target)
}

// Assign converts value and sets it to dest pointer
func (r *Registry) Assign(value interface{}, dest interface{}) error {
	if dest == nil {
		return errors.New("destination cannot be nil")
	}
	destValue := reflect.ValueOf(dest)
	if destValue.Kind() != reflect.Ptr {
		return errors.New("destination must be a pointer")
	}
	if destValue.IsNil() {
		return errors.New("destination pointer cannot be nil")
	}
	result, err := r.Convert(value, destValue.Type().Elem())
	if err != nil {
		return err
	}
	return SetValue(destValue.Elem(), result)
}

// SetValue sets converted value to dest, nil value sets zero value, value is wrapped with a pointer if dest is a pointer
func SetValue(dest reflect.Value, value interface{}) error {
	if !dest.CanSet() {
		return errors.Errorf("destination %v is not settable", dest.Type())
	}
	destType := dest.Type()
	if value == nil {
		dest.Set(reflect.Zero(destType))
		return nil
	}
	srcValue := reflect.ValueOf(value)
	srcType := srcValue.Type()
	switch {
	case srcType.AssignableTo(destType):
		dest.Set(srcValue)
	case destType.Kind() == reflect.Ptr && srcType.AssignableTo(destType.Elem()):
		ptr := reflect.New(destType.Elem())
		ptr.Elem().Set(srcValue)
		dest.Set(ptr)
	case srcType.Kind() == reflect.Ptr && srcType.Elem().AssignableTo(destType):
		if srcValue.IsNil() {
			dest.Set(reflect.Zero(destType))
			return nil
		}
		dest.Set(srcValue.Elem())
	case srcType.ConvertibleTo(destType):
		dest.Set(srcValue.Convert(destType))
	default:
		return errors.Errorf("cannot assign %v to %v", srcType, destType)
	}
	return nil
}

var defaultRegistry = NewRegistry()

// Default returns package registry
func Default() *Registry {
	return defaultRegistry
}

// Register registers converter for target type with package registry
func Register(converter Converter, target reflect.Type) {
	defaultRegistry.Register(converter, target)
}

// Deregister removes converter for target type from package registry
func Deregister(target reflect.Type) {
	defaultRegistry.Deregister(target)
}

// Convert converts value into target type with package registry
func Convert(value interface{}, target reflect.Type) (interface{}, error) {
	return defaultRegistry.Convert(value, target)
}
