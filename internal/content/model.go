// Package content loads phrase card documents and exposes their sections in document order.
package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// optionsPrefix marks a card field holding alternative phrasings, e.g. "options_de".
const optionsPrefix = "options_"

var (
	ErrCollectionNotFound = errors.New("collection not found")
	ErrNoSections         = errors.New("no sections available")
)

// Card is a phrase available in several languages. Cards are never mutated after loading.
type Card struct {
	Phrases map[string]string
	Options map[string][]string
}

// Phrase returns the phrase for lang. An empty phrase counts as missing.
func (c Card) Phrase(lang string) (string, bool) {
	phrase, ok := c.Phrases[lang]
	if !ok || phrase == "" {
		return "", false
	}
	return phrase, true
}

// Alternatives returns the alternative phrasings for lang, or nil.
func (c Card) Alternatives(lang string) []string {
	options := c.Options[lang]
	if len(options) == 0 {
		return nil
	}
	return options
}

// Languages returns the sorted codes with a non-empty phrase.
func (c Card) Languages() []string {
	langs := make([]string, 0, len(c.Phrases))
	for lang, phrase := range c.Phrases {
		if phrase == "" {
			continue
		}
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

func (c *Card) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("card must be an object: %w", err)
	}

	card := Card{
		Phrases: make(map[string]string, len(fields)),
		Options: make(map[string][]string),
	}
	for key, value := range fields {
		if lang, ok := strings.CutPrefix(key, optionsPrefix); ok {
			var options []string
			if err := json.Unmarshal(value, &options); err != nil {
				return fmt.Errorf("field %s: json.Unmarshal > %w", key, err)
			}
			card.Options[lang] = options
			continue
		}

		var phrase string
		if err := json.Unmarshal(value, &phrase); err != nil {
			return fmt.Errorf("field %s: json.Unmarshal > %w", key, err)
		}
		card.Phrases[key] = phrase
	}
	*c = card
	return nil
}

func (c Card) MarshalJSON() ([]byte, error) {
	fields := make(map[string]any, len(c.Phrases)+len(c.Options))
	for lang, phrase := range c.Phrases {
		fields[lang] = phrase
	}
	for lang, options := range c.Options {
		fields[optionsPrefix+lang] = options
	}
	return json.Marshal(fields)
}

// Section is a named, ordered group of cards.
type Section struct {
	Key   string
	Cards []Card
}

// Document is a loaded collection of sections in document order.
type Document struct {
	Collection string
	Sections   []Section
}

func (d *Document) SectionKeys() []string {
	keys := make([]string, 0, len(d.Sections))
	for _, section := range d.Sections {
		keys = append(keys, section.Key)
	}
	return keys
}

func (d *Document) Section(key string) (Section, bool) {
	for _, section := range d.Sections {
		if section.Key == key {
			return section, true
		}
	}
	return Section{}, false
}

// CardCount returns the number of cards over all sections.
func (d *Document) CardCount() int {
	count := 0
	for _, section := range d.Sections {
		count += len(section.Cards)
	}
	return count
}
