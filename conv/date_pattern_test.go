package conv

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	ftime "github.com/viant/beanconv/format/time"
	"golang.org/x/text/language"
	"reflect"
	"sync"
	"testing"
	"time"
)

func TestDatePatternConverter_Convert(t *testing.T) {
	var text = "2014/05/04"
	var testCases = []struct {
		description string
		pattern     string
		locale      language.Tag
		target      reflect.Type
		value       interface{}
		expect      interface{}
	}{
		{
			description: "us slash date",
			pattern:     "yyyy/MM/dd",
			locale:      language.AmericanEnglish,
			target:      timeType,
			value:       "2014/05/04",
			expect:      time.Date(2014, 5, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			description: "date time",
			pattern:     "yyyy-MM-dd HH:mm:ss",
			locale:      language.AmericanEnglish,
			target:      timeType,
			value:       "2014-05-04 00:35:31",
			expect:      time.Date(2014, 5, 4, 0, 35, 31, 0, time.UTC),
		},
		{
			description: "french month",
			pattern:     "d MMMM yyyy",
			locale:      language.French,
			target:      timeType,
			value:       "4 mai 2014",
			expect:      time.Date(2014, 5, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			description: "nil target uses default type",
			pattern:     "yyyy-MM-dd",
			locale:      language.AmericanEnglish,
			value:       "2020-01-01",
			expect:      time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			description: "nil value",
			pattern:     "yyyy-MM-dd",
			target:      timeType,
		},
		{
			description: "empty text",
			pattern:     "yyyy-MM-dd",
			target:      timeType,
			value:       "",
		},
		{
			description: "blank text",
			pattern:     "yyyy-MM-dd",
			target:      timeType,
			value:       "   ",
		},
		{
			description: "nil pointer",
			pattern:     "yyyy-MM-dd",
			target:      timeType,
			value:       (*string)(nil),
		},
		{
			description: "int value",
			pattern:     "yyyy-MM-dd",
			target:      timeType,
			value:       42,
		},
		{
			description: "string pointer value",
			pattern:     "yyyy/MM/dd",
			target:      timeType,
			value:       &text,
		},
		{
			description: "time value",
			pattern:     "yyyy-MM-dd",
			target:      timeType,
			value:       time.Now(),
		},
	}

	for _, testCase := range testCases {
		converter := NewDatePatternConverter(testCase.pattern, WithLocale(testCase.locale), WithTimeZone(time.UTC))
		actual, err := converter.Convert(testCase.target, testCase.value)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		if testCase.expect == nil {
			assert.Nil(t, actual, testCase.description)
			continue
		}
		ts, ok := actual.(time.Time)
		if !assert.True(t, ok, testCase.description) {
			continue
		}
		assert.True(t, testCase.expect.(time.Time).Equal(ts), testCase.description)
	}
}

func TestDatePatternConverter_Errors(t *testing.T) {
	converter := NewDatePatternConverter("")
	_, err := converter.Convert(timeType, "2020-01-01")
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	//pattern is checked before value
	_, err = converter.Convert(timeType, nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = converter.Format(time.Now())
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	converter = NewDatePatternConverter("yyyy-MM-dd", WithLocale(language.AmericanEnglish))
	actual, err := converter.Convert(timeType, "not-a-date")
	assert.Nil(t, actual)
	assert.True(t, errors.Is(err, ftime.ErrParse))
	assert.False(t, errors.Is(err, ErrInvalidArgument))
}

func TestDatePatternConverter_SetPattern(t *testing.T) {
	converter := NewDatePatternConverter("yyyy-MM-dd", WithLocale(language.AmericanEnglish), WithTimeZone(time.UTC))
	first, err := converter.Convert(timeType, "2014-05-04")
	assert.Nil(t, err)

	converter.SetPattern("dd/MM/yyyy")
	assert.Equal(t, "dd/MM/yyyy", converter.Pattern())
	_, err = converter.Convert(timeType, "2014-05-04")
	assert.True(t, errors.Is(err, ftime.ErrParse))

	second, err := converter.Convert(timeType, "04/05/2014")
	assert.Nil(t, err)
	assert.True(t, first.(time.Time).Equal(second.(time.Time)))
	assert.Equal(t, time.Date(2014, 5, 4, 0, 0, 0, 0, time.UTC), first)

	converter.SetPattern("")
	_, err = converter.Convert(timeType, "04/05/2014")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestDatePatternConverter_SetLocale(t *testing.T) {
	converter := NewDatePatternConverter("d MMMM yyyy", WithLocale(language.AmericanEnglish), WithTimeZone(time.UTC))
	_, err := converter.Convert(timeType, "4 mai 2014")
	assert.NotNil(t, err)

	converter.SetLocale(language.French)
	assert.Equal(t, language.French, converter.Locale())
	actual, err := converter.Convert(timeType, "4 mai 2014")
	assert.Nil(t, err)
	assert.Equal(t, time.May, actual.(time.Time).Month())
}

func TestDatePatternConverter_Format(t *testing.T) {
	converter := NewDatePatternConverter("yyyy/MM/dd", WithLocale(language.AmericanEnglish))
	text, err := converter.Format(time.Date(2014, 5, 4, 0, 35, 31, 0, time.UTC))
	assert.Nil(t, err)
	assert.Equal(t, "2014/05/04", text)
}

func TestDatePatternConverter_DefaultLocale(t *testing.T) {
	t.Setenv("LC_ALL", "de_DE.UTF-8")
	converter := NewDatePatternConverter("yyyy-MM-dd")
	assert.Equal(t, "de-DE", converter.Locale().String())
	assert.Equal(t, timeType, converter.DefaultType())
}

func TestDatePatternConverter_Concurrent(t *testing.T) {
	converter := NewDatePatternConverter("yyyy-MM-dd", WithLocale(language.AmericanEnglish))
	wg := sync.WaitGroup{}
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if i == 0 {
					converter.SetPattern("yyyy-MM-dd")
					continue
				}
				_, err := converter.Convert(timeType, "2014-05-04")
				assert.Nil(t, err)
			}
		}(i)
	}
	wg.Wait()
}
