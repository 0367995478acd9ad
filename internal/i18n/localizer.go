// Package i18n maps UI keys, language codes and section keys to display strings.
package i18n

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/uk"
	ut "github.com/go-playground/universal-translator"
)

var ErrUnsupportedUILanguage = errors.New("unsupported ui language")

// Localizer renders UI strings for one UI language.
type Localizer struct {
	lang         string
	trans        ut.Translator
	sectionNames map[string]string
}

// SupportedUILanguages lists the UI languages with a full set of strings.
func SupportedUILanguages() []string {
	return []string{"de", "uk", "en"}
}

// New builds a Localizer for uiLang. sectionNames overrides the built-in section display names.
func New(uiLang string, sectionNames map[string]string) (*Localizer, error) {
	strs, ok := uiStrings[uiLang]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedUILanguage, uiLang)
	}

	enLocale := en.New()
	universal := ut.New(enLocale, enLocale, de.New(), uk.New())
	trans, found := universal.GetTranslator(uiLang)
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedUILanguage, uiLang)
	}

	for key, text := range strs {
		if err := trans.Add(key, text, false); err != nil {
			return nil, fmt.Errorf("trans.Add(%s) > %w", key, err)
		}
	}
	for rule, text := range cardCounts[uiLang] {
		if err := trans.AddCardinal(keyCardCount, text, rule, false); err != nil {
			return nil, fmt.Errorf("trans.AddCardinal(%s) > %w", keyCardCount, err)
		}
	}
	if err := trans.VerifyTranslations(); err != nil {
		return nil, fmt.Errorf("trans.VerifyTranslations() > %w", err)
	}

	names := make(map[string]string, len(sectionNames))
	for key, name := range sectionNames {
		names[strings.ToLower(key)] = name
	}

	return &Localizer{
		lang:         uiLang,
		trans:        trans,
		sectionNames: names,
	}, nil
}

func (l *Localizer) Language() string {
	return l.lang
}

// T returns the string for key with {0}, {1}, ... replaced by params. Unknown keys render as the key itself.
func (l *Localizer) T(key Key, params ...string) string {
	text, err := l.trans.T(key, params...)
	if err != nil {
		return string(key)
	}
	return text
}

// CardCount returns n with the plural form of "card" for the UI language.
func (l *Localizer) CardCount(n int) string {
	text, err := l.trans.C(keyCardCount, float64(n), 0, strconv.Itoa(n))
	if err != nil {
		return strconv.Itoa(n)
	}
	return text
}

// LanguageName returns the native name of a language code, or the code in upper case.
func (l *Localizer) LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return strings.ToUpper(code)
}

// SectionName returns the configured name of a section, then the built-in name, then the key.
// Keys match case-insensitively.
func (l *Localizer) SectionName(key string) string {
	lower := strings.ToLower(key)
	if name, ok := l.sectionNames[lower]; ok && name != "" {
		return name
	}
	if name, ok := sectionNames[lower]; ok {
		return name
	}
	return key
}

// Direction formats a language pair as "DE → UK".
func (l *Localizer) Direction(source, target string) string {
	return l.T(KeyDirection, strings.ToUpper(source), strings.ToUpper(target))
}

var cardCounts = map[string]map[locales.PluralRule]string{
	"de": {
		locales.PluralRuleOne:   "{0} Karte",
		locales.PluralRuleOther: "{0} Karten",
	},
	"uk": {
		locales.PluralRuleOne:   "{0} картка",
		locales.PluralRuleFew:   "{0} картки",
		locales.PluralRuleMany:  "{0} карток",
		locales.PluralRuleOther: "{0} картки",
	},
	"en": {
		locales.PluralRuleOne:   "{0} card",
		locales.PluralRuleOther: "{0} cards",
	},
}
