package assets

import (
	_ "embed"
	"fmt"
	"io"
)

const deckTemplateName = "deck.md.go.tmpl"

//go:embed templates/deck.md.go.tmpl
var fallbackDeckTemplate string

// Deck is a printable list of the cards of every section for one direction.
type Deck struct {
	Title      string
	Collection string
	Source     string
	Target     string
	SourceName string
	TargetName string
	Sections   []DeckSection
}

type DeckSection struct {
	Key   string
	Name  string
	Cards []DeckCard
}

// DeckCard holds display strings. A missing answer carries the localized placeholder.
type DeckCard struct {
	Prompt        string
	Answer        string
	PromptOptions []string
	AnswerOptions []string
}

// WriteDeck renders deck with the template at templatePath, or the embedded one when it is missing or broken.
func WriteDeck(output io.Writer, templatePath string, deck Deck) error {
	tmpl, err := parseTemplateWithFallback(templatePath, deckTemplateName, fallbackDeckTemplate)
	if err != nil {
		return fmt.Errorf("parseTemplateWithFallback() > %w", err)
	}
	if err := tmpl.Execute(output, deck); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
