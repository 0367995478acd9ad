package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/phrasecards/internal/bootstrap"
	"github.com/at-ishikawa/phrasecards/internal/cli"
	"github.com/at-ishikawa/phrasecards/internal/config"
	"github.com/at-ishikawa/phrasecards/internal/i18n"
	"github.com/at-ishikawa/phrasecards/internal/session"
)

type OutputFlag string

// Set implements pflag.Value.
func (o *OutputFlag) Set(v string) error {
	switch v {
	case config.OutputText, config.OutputHTML:
		*o = OutputFlag(v)
	default:
		return fmt.Errorf("invalid value %q, valid values are %q or %q", v, config.OutputText, config.OutputHTML)
	}
	return nil
}

// String implements pflag.Value.
func (o *OutputFlag) String() string {
	if o == nil {
		return ""
	}
	return string(*o)
}

// Type implements pflag.Value.
func (o *OutputFlag) Type() string {
	return "OutputFlag"
}

var (
	_ pflag.Value = (*OutputFlag)(nil)
)

func newPlayCommand() *cobra.Command {
	var output OutputFlag
	var sourceLanguage, targetLanguage, uiLanguage string

	command := &cobra.Command{
		Use:   "play",
		Short: "Practice the phrase cards of the configured collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(func(cfg *config.Config) {
				if output != "" {
					cfg.UI.Output = string(output)
				}
				if sourceLanguage != "" {
					cfg.Session.SourceLanguage = sourceLanguage
				}
				if targetLanguage != "" {
					cfg.Session.TargetLanguage = targetLanguage
				}
				if uiLanguage != "" {
					cfg.UI.Language = uiLanguage
				}
			})
			if err != nil {
				return err
			}
			return runPlay(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	flags := command.Flags()
	flags.Var(&output, "output", "Output format. Options: text, html")
	flags.StringVar(&sourceLanguage, "source", "", "Source language code")
	flags.StringVar(&targetLanguage, "target", "", "Target language code")
	flags.StringVar(&uiLanguage, "ui-language", "", "UI language. Options: de, uk, en")
	return command
}

func runPlay(ctx context.Context, cfg *config.Config, stdin io.Reader, stdout io.Writer) error {
	localizer, err := newLocalizer(cfg)
	if err != nil {
		return err
	}
	presenter := newPresenter(cfg, localizer, stdout)

	app := bootstrap.New()
	return app.Run(ctx, func(ctx context.Context) error {
		source, err := openSource(app, cfg)
		if err != nil {
			return err
		}

		controller, err := session.Open(ctx, source, presenter, sessionOptions(cfg)...)
		if err != nil {
			return err
		}
		return cli.Run(ctx, stdout, cli.NewPlayCLI(controller, localizer, stdin, stdout))
	})
}

func newPresenter(cfg *config.Config, localizer *i18n.Localizer, stdout io.Writer) session.Presenter {
	if cfg.UI.Output == config.OutputHTML {
		return cli.NewHTMLPresenter(localizer, stdout)
	}
	return cli.NewConsolePresenter(localizer, stdout, cfg.Session.TransitionDelay)
}

func sessionOptions(cfg *config.Config) []session.Option {
	return []session.Option{
		session.WithCardsPerSection(cfg.Session.CardsPerSection),
		session.WithLanguages(session.Languages(cfg.Session.SupportedLanguages)),
		session.WithDirection(cfg.Session.SourceLanguage, cfg.Session.TargetLanguage),
		session.WithLogger(slog.Default()),
	}
}
