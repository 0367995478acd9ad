package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/phrasecards/internal/bootstrap"
	"github.com/at-ishikawa/phrasecards/internal/config"
	"github.com/at-ishikawa/phrasecards/internal/content"
	"github.com/at-ishikawa/phrasecards/internal/database"
	"github.com/at-ishikawa/phrasecards/internal/i18n"
)

var errInterrupted = errors.New("interrupted")

// loadConfig loads the configuration, applies overrides and validates the result again.
func loadConfig(overrides ...func(cfg *config.Config)) (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if len(overrides) == 0 {
		return cfg, nil
	}
	for _, override := range overrides {
		override(cfg)
	}
	if err := loader.Validate(*cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openSource opens the configured content source and registers it for closing on app.
func openSource(app *bootstrap.App, cfg *config.Config) (content.Source, error) {
	var db *sqlx.DB
	if cfg.Content.UsesDatabase() {
		var err error
		db, err = database.Open(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("database.Open() > %w", err)
		}
	}

	source, err := content.NewSource(cfg.Content, db)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, fmt.Errorf("content.NewSource() > %w", err)
	}
	app.AddCloser("source", source)
	slog.Default().Debug("content source opened", slog.String("source", source.String()))
	return source, nil
}

// loadDocument reads the whole document of the configured collection.
func loadDocument(ctx context.Context, cfg *config.Config) (*content.Document, error) {
	app := bootstrap.New()
	var doc *content.Document
	err := app.Run(ctx, func(ctx context.Context) error {
		source, err := openSource(app, cfg)
		if err != nil {
			return err
		}
		doc, err = source.Load(ctx)
		if err != nil {
			return fmt.Errorf("%s: source.Load() > %w", source, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errInterrupted
	}
	return doc, nil
}

func newLocalizer(cfg *config.Config) (*i18n.Localizer, error) {
	localizer, err := i18n.New(cfg.UI.Language, cfg.UI.SectionNames)
	if err != nil {
		return nil, fmt.Errorf("i18n.New() > %w", err)
	}
	return localizer, nil
}
