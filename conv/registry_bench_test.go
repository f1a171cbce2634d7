package conv

import (
	"golang.org/x/text/language"
	"reflect"
	"testing"
	"time"
)

func BenchmarkRegistry_DatePattern(b *testing.B) {
	registry := newTestRegistry()
	registry.Register(NewDatePatternConverter("yyyy-MM-dd HH:mm:ss", WithLocale(language.AmericanEnglish), WithTimeZone(time.UTC)), timeType)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := registry.Convert("2023-01-15 12:30:45", timeType); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRegistry_Default(b *testing.B) {
	registry := newTestRegistry()
	target := reflect.TypeOf(0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := registry.Convert("42", target); err != nil {
			b.Fatal(err)
		}
	}
}
