package format

import (
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
	"reflect"
	"testing"
	"time"
	_ "time/tzdata"
)

func TestParse(t *testing.T) {

	var testCases = []struct {
		description string
		tag         reflect.StructTag
		tagName     string
		expect      *Tag
	}{

		{
			description: "fallback",
			tagName:     "xjson",
			tag:         reflect.StructTag(`format:"dateFormat=YYYY-MM-DD,name=startDate" xjson:"dateFormat=YYYY-MM-DD hh:mm" `),
			expect:      &Tag{Name: "startDate", DateFormat: "YYYY-MM-DD hh:mm", TimeLayout: "2006-01-02 15:04"},
		},

		{
			description: "fallback simple name ",
			tagName:     "json",
			tag:         reflect.StructTag(`format:"dateFormat=YYYY-MM-DD,name=startDate" json:"Id,omitempty" `),
			expect:      &Tag{Name: "startDate", DateFormat: "YYYY-MM-DD", TimeLayout: "2006-01-02", Omitempty: true},
		},
		{
			description: "json name",
			tagName:     "json",
			tag:         reflect.StructTag(`json:"birthDate,omitempty"`),
			expect:      &Tag{Name: "birthDate", Omitempty: true},
		},
		{
			description: "date pattern with language",
			tag:         reflect.StructTag(`format:"datePattern=dd MMMM yyyy,lang=fr-FR,tz=UTC"`),
			expect:      &Tag{DatePattern: "dd MMMM yyyy", TimeLayout: "02 January 2006", Language: "fr-FR", Location: "UTC"},
		},
		{
			description: "date pattern with coma",
			tag:         reflect.StructTag(`format:"datePattern={MMM d, yyyy},omitempty"`),
			expect:      &Tag{DatePattern: "MMM d, yyyy", TimeLayout: "Jan 2, 2006", Omitempty: true},
		},
		{
			description: "ignore",
			tag:         reflect.StructTag(`format:"-"`),
			expect:      &Tag{Ignore: true},
		},
	}

	for _, testCase := range testCases {
		tag, err := Parse(testCase.tag, testCase.tagName)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expect, tag, testCase.description)
	}
}

func TestParse_Error(t *testing.T) {
	var testCases = []struct {
		description string
		tag         reflect.StructTag
	}{
		{description: "unknown key", tag: `format:"color=red"`},
		{description: "unsupported pattern", tag: `format:"datePattern=yyyy-ww"`},
		{description: "invalid location", tag: `format:"tz=Mars/Olympus"`},
	}
	for _, testCase := range testCases {
		_, err := Parse(testCase.tag)
		assert.NotNil(t, err, testCase.description)
	}
}

func TestTag_ParseTime(t *testing.T) {
	tag, err := Parse(`format:"datePattern=yyyy/MM/dd HH:mm,lang=en-US,tz=UTC"`)
	assert.Nil(t, err)
	ts, err := tag.ParseTime("2014/05/04 00:35")
	assert.Nil(t, err)
	assert.True(t, time.Date(2014, 5, 4, 0, 35, 0, 0, time.UTC).Equal(ts))
	assert.Equal(t, "2014/05/04 00:35", tag.FormatTime(&ts))

	tag, err = Parse(`format:"dateFormat=YYYY-MM-DD"`)
	assert.Nil(t, err)
	ts, err = tag.ParseTime("2014-05-04")
	assert.Nil(t, err)
	assert.Equal(t, 2014, ts.Year())
	assert.Equal(t, "2014-05-04", tag.FormatTime(&ts))

	tag, err = Parse(`format:"dateFormat=YYYY-MM-DD hh:mm,tz=Europe/Paris"`)
	assert.Nil(t, err)
	ts, err = tag.ParseTime("2014-05-04 00:35")
	assert.Nil(t, err)
	assert.True(t, time.Date(2014, 5, 3, 22, 35, 0, 0, time.UTC).Equal(ts))
	utc := ts.UTC()
	assert.Equal(t, "2014-05-04 00:35", tag.FormatTime(&utc))
}

func TestTag_FormatFloat(t *testing.T) {
	tag := &Tag{Format: "Decimal"}
	text, err := tag.FormatFloat(1234.5)
	assert.Nil(t, err)
	assert.Equal(t, "1,234.5", text)

	tag = &Tag{Format: "Decimal", Language: "de-DE"}
	text, err = tag.FormatFloat(1234.5)
	assert.Nil(t, err)
	assert.Equal(t, "1.234,5", text)

	_, err = (&Tag{Format: "Roman"}).FormatFloat(1)
	assert.NotNil(t, err)
	assert.Equal(t, language.AmericanEnglish, (&Tag{}).Locale(language.AmericanEnglish))
}
