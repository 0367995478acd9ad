package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/phrasecards/internal/content"
	"github.com/at-ishikawa/phrasecards/internal/database"
	"github.com/at-ishikawa/phrasecards/schemas"
)

func newImportCommand() *cobra.Command {
	var migrate bool
	var format string

	command := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the configured collection in MySQL with the cards of a JSON or YAML document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			doc, err := content.NewFileSource(args[0], cfg.Content.Collection, content.Format(format)).Load(ctx)
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			source := content.NewDBSource(db, cfg.Content.Collection)
			defer func() { _ = source.Close() }()

			if migrate {
				if err := database.ApplyMigrations(ctx, db, schemas.Migrations); err != nil {
					return fmt.Errorf("database.ApplyMigrations() > %w", err)
				}
			}
			if err := source.Replace(ctx, doc); err != nil {
				return fmt.Errorf("source.Replace() > %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d cards in %d sections into %s\n", doc.CardCount(), len(doc.Sections), source)
			return nil
		},
	}

	flags := command.Flags()
	flags.BoolVar(&migrate, "migrate", false, "Create the phrase_sections and phrase_cards tables before importing")
	flags.StringVar(&format, "format", "", "Document format. Options: json, yaml (default: by file extension)")
	return command
}
