package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/phrasecards/internal/i18n"
	"github.com/at-ishikawa/phrasecards/internal/session"
)

//go:generate mockgen -source=play_cli.go -destination=../mocks/cli/mock_controller.go -package=mock_cli Controller

// Controller is the part of session.Controller driven by user input.
type Controller interface {
	Advance(ctx context.Context) error
	SwapDirection(ctx context.Context) error
	SelectSourceLanguage(ctx context.Context, code string) error
	SelectTargetLanguage(ctx context.Context, code string) error
	Restart(ctx context.Context) error
	View() session.View
}

// PlayCLI reads one command per line and applies it to the controller.
type PlayCLI struct {
	controller   Controller
	localizer    *i18n.Localizer
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	yellow       *color.Color
}

func NewPlayCLI(controller Controller, localizer *i18n.Localizer, stdin io.Reader, stdout io.Writer) *PlayCLI {
	return &PlayCLI{
		controller:   controller,
		localizer:    localizer,
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		bold:         color.New(color.Bold),
		yellow:       color.New(color.FgYellow),
	}
}

func (cli *PlayCLI) Session(ctx context.Context) error {
	view := cli.controller.View()
	_, _ = cli.bold.Fprint(cli.stdoutWriter, cli.prompt(view))

	line, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return fmt.Errorf("stdinReader.ReadString() > %w", err)
		}
		if strings.TrimSpace(line) == "" {
			_, _ = fmt.Fprintln(cli.stdoutWriter)
			return errEnd
		}
	}

	command, err := ParseCommand(line)
	if err != nil {
		cli.notice(cli.localizer.T(i18n.KeyUnknownCommand, strings.TrimSpace(line)))
		return nil
	}
	return cli.execute(ctx, command, view)
}

func (cli *PlayCLI) execute(ctx context.Context, command Command, view session.View) error {
	switch command.Kind {
	case CommandContinue:
		if view.ContinueDisabled {
			if view.RestartOffered {
				return cli.controller.Restart(ctx)
			}
			return nil
		}
		return cli.controller.Advance(ctx)
	case CommandSwap:
		return cli.controller.SwapDirection(ctx)
	case CommandSource:
		return cli.selectLanguage(cli.controller.SelectSourceLanguage(ctx, command.Arg), command.Arg)
	case CommandTarget:
		return cli.selectLanguage(cli.controller.SelectTargetLanguage(ctx, command.Arg), command.Arg)
	case CommandRestart:
		if !view.RestartOffered {
			cli.notice(cli.localizer.T(i18n.KeyUnknownCommand, "r"))
			return nil
		}
		return cli.controller.Restart(ctx)
	case CommandHelp:
		cli.printHelp()
		return nil
	case CommandQuit:
		return errEnd
	}
	return nil
}

func (cli *PlayCLI) selectLanguage(err error, code string) error {
	if errors.Is(err, session.ErrUnsupportedLanguage) {
		cli.notice(cli.localizer.T(i18n.KeyUnsupportedLanguage, code))
		return nil
	}
	return err
}

// prompt names the action an empty line triggers.
func (cli *PlayCLI) prompt(view session.View) string {
	var action string
	switch {
	case view.ContinueDisabled && view.RestartOffered:
		action = cli.localizer.T(i18n.KeyRestart)
	case view.NextSectionOffered:
		action = cli.localizer.T(i18n.KeyNextSection)
	case !view.Revealed:
		action = cli.localizer.T(i18n.KeyReveal)
	default:
		action = cli.localizer.T(i18n.KeyNext)
	}
	return fmt.Sprintf("[Enter] %s  [?] %s > ", action, cli.localizer.T(i18n.KeyHelp))
}

func (cli *PlayCLI) printHelp() {
	l := cli.localizer
	_, _ = cli.bold.Fprintln(cli.stdoutWriter, l.T(i18n.KeyCommands))
	for _, line := range [][2]string{
		{"Enter, n", l.T(i18n.KeyNext)},
		{"s", l.T(i18n.KeySwap)},
		{"src <code>", l.T(i18n.KeySourceLabel)},
		{"tgt <code>", l.T(i18n.KeyTargetLabel)},
		{"r", l.T(i18n.KeyRestart)},
		{"?", l.T(i18n.KeyHelp)},
		{"q", l.T(i18n.KeyQuit)},
	} {
		_, _ = fmt.Fprintf(cli.stdoutWriter, "  %-12s %s\n", line[0], line[1])
	}
}

func (cli *PlayCLI) notice(message string) {
	_, _ = cli.yellow.Fprintln(cli.stdoutWriter, message)
}
