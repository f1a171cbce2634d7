package time

import (
	"github.com/goodsign/monday"
	"golang.org/x/text/language"
	"os"
	"strings"
	"sync"
)

var (
	localeOnce     sync.Once
	localeMatcher  language.Matcher
	mondayLocales  []monday.Locale
	localeEnvNames = []string{"LC_ALL", "LC_TIME", "LANG"}
)

// DefaultLocale returns process locale derived from LC_ALL, LC_TIME or LANG, en-US otherwise
func DefaultLocale() language.Tag {
	for _, name := range localeEnvNames {
		value := os.Getenv(name)
		if value == "" {
			continue
		}
		if tag, ok := ParseLocale(value); ok {
			return tag
		}
	}
	return language.AmericanEnglish
}

// ParseLocale parses POSIX (fr_FR.UTF-8) or BCP 47 (fr-FR) locale name
func ParseLocale(name string) (language.Tag, bool) {
	if index := strings.IndexAny(name, ".@"); index != -1 {
		name = name[:index]
	}
	switch name {
	case "", "C", "POSIX":
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}

func isEnglish(locale language.Tag) bool {
	if locale == language.Und {
		return true
	}
	base, _ := locale.Base()
	return base.String() == "en"
}

func mondayLocale(locale language.Tag) monday.Locale {
	localeOnce.Do(initLocales)
	_, index, confidence := localeMatcher.Match(locale)
	if confidence == language.No || index >= len(mondayLocales) {
		return monday.LocaleEnUS
	}
	return mondayLocales[index]
}

func initLocales() {
	mondayLocales = []monday.Locale{monday.LocaleEnUS}
	tags := []language.Tag{language.AmericanEnglish}
	for _, candidate := range monday.ListLocales() {
		if candidate == monday.LocaleEnUS {
			continue
		}
		tag, err := language.Parse(strings.ReplaceAll(string(candidate), "_", "-"))
		if err != nil {
			continue
		}
		mondayLocales = append(mondayLocales, candidate)
		tags = append(tags, tag)
	}
	localeMatcher = language.NewMatcher(tags)
}
