// Package conv provides a type conversion registry.
// Converters are registered per destination type and invoked when a value needs to be
// converted into that type, unregistered types use primitive, time and reflect conversion.
// DatePatternConverter converts text into time.Time with a date pattern (i.e. yyyy-MM-dd) and locale.
package conv
