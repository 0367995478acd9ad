package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/phrasecards/internal/content"
	"github.com/at-ishikawa/phrasecards/internal/i18n"
)

func newSectionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List the sections of the configured collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
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

			printSections(cmd.OutOrStdout(), doc, localizer, cfg.Session.CardsPerSection)
			return nil
		},
	}
}

// printSections writes one line per section with the number of cards a session shows.
func printSections(w io.Writer, doc *content.Document, localizer *i18n.Localizer, cardsPerSection int) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	_, _ = bold.Fprintf(w, "%s (%d)\n", doc.Collection, len(doc.Sections))
	for i, section := range doc.Sections {
		shown := min(len(section.Cards), cardsPerSection)
		_, _ = fmt.Fprintf(w, "%2d. %-24s %-24s %s", i+1, section.Key, localizer.SectionName(section.Key), localizer.CardCount(shown))
		if shown < len(section.Cards) {
			_, _ = faint.Fprintf(w, " (+%d)", len(section.Cards)-shown)
		}
		_, _ = fmt.Fprintln(w)
	}
}
