package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/phrasecards/internal/assets"
	"github.com/at-ishikawa/phrasecards/internal/config"
	"github.com/at-ishikawa/phrasecards/internal/content"
	"github.com/at-ishikawa/phrasecards/internal/i18n"
	"github.com/at-ishikawa/phrasecards/internal/pdf"
	"github.com/at-ishikawa/phrasecards/internal/session"
)

func newDeckCommand() *cobra.Command {
	var generatePDF bool
	var sourceLanguage, targetLanguage string

	command := &cobra.Command{
		Use:   "deck",
		Short: "Write the cards of every section as a markdown deck",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(func(cfg *config.Config) {
				if sourceLanguage != "" {
					cfg.Session.SourceLanguage = sourceLanguage
				}
				if targetLanguage != "" {
					cfg.Session.TargetLanguage = targetLanguage
				}
			})
			if err != nil {
				return err
			}
			localizer, err := newLocalizer(cfg)
			if err != nil {
				return err
			}
			doc, err := loadDocument(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			direction := session.Direction{Source: cfg.Session.SourceLanguage, Target: cfg.Session.TargetLanguage}
			deck := buildDeck(doc, direction, cfg.Session.CardsPerSection, localizer)

			var buf bytes.Buffer
			if err := assets.WriteDeck(&buf, cfg.Templates.DeckTemplate, deck); err != nil {
				return fmt.Errorf("assets.WriteDeck() > %w", err)
			}

			if err := os.MkdirAll(cfg.Outputs.DeckDirectory, 0755); err != nil {
				return fmt.Errorf("os.MkdirAll(%s) > %w", cfg.Outputs.DeckDirectory, err)
			}
			fileName := fmt.Sprintf("%s-%s-%s.md", doc.Collection, direction.Source, direction.Target)
			outputPath := filepath.Join(cfg.Outputs.DeckDirectory, fileName)
			if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
				return fmt.Errorf("os.WriteFile(%s) > %w", outputPath, err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deck written to %s\n", outputPath)

			if generatePDF {
				pdfPath, err := pdf.ConvertMarkdownToPDF(outputPath)
				if err != nil {
					return fmt.Errorf("pdf.ConvertMarkdownToPDF(%s) > %w", outputPath, err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "PDF written to %s\n", pdfPath)
			}
			return nil
		},
	}

	flags := command.Flags()
	flags.BoolVar(&generatePDF, "pdf", false, "Also convert the deck to PDF")
	flags.StringVar(&sourceLanguage, "source", "", "Source language code")
	flags.StringVar(&targetLanguage, "target", "", "Target language code")
	return command
}

// buildDeck lists the cards a session would show for direction.
func buildDeck(doc *content.Document, direction session.Direction, cardsPerSection int, localizer *i18n.Localizer) assets.Deck {
	deck := assets.Deck{
		Title:      localizer.T(i18n.KeyTitle),
		Collection: doc.Collection,
		Source:     direction.Source,
		Target:     direction.Target,
		SourceName: localizer.LanguageName(direction.Source),
		TargetName: localizer.LanguageName(direction.Target),
	}

	phrase := func(card content.Card, lang string) string {
		if text, ok := card.Phrase(lang); ok {
			return text
		}
		return localizer.T(i18n.KeyTranslationUnavailable)
	}

	for _, section := range doc.Sections {
		cards := section.Cards[:min(len(section.Cards), cardsPerSection)]
		deckSection := assets.DeckSection{
			Key:   section.Key,
			Name:  localizer.SectionName(section.Key),
			Cards: make([]assets.DeckCard, 0, len(cards)),
		}
		for _, card := range cards {
			deckSection.Cards = append(deckSection.Cards, assets.DeckCard{
				Prompt:        phrase(card, direction.Source),
				Answer:        phrase(card, direction.Target),
				PromptOptions: card.Alternatives(direction.Source),
				AnswerOptions: card.Alternatives(direction.Target),
			})
		}
		deck.Sections = append(deck.Sections, deckSection)
	}
	return deck
}
