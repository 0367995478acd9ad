package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/at-ishikawa/phrasecards/internal/i18n"
	"github.com/at-ishikawa/phrasecards/internal/session"
)

// ConsolePresenter draws views as colored text.
type ConsolePresenter struct {
	localizer       *i18n.Localizer
	writer          io.Writer
	transitionDelay time.Duration

	bold   *color.Color
	faint  *color.Color
	cyan   *color.Color
	green  *color.Color
	red    *color.Color
	italic *color.Color
}

func NewConsolePresenter(localizer *i18n.Localizer, writer io.Writer, transitionDelay time.Duration) *ConsolePresenter {
	return &ConsolePresenter{
		localizer:       localizer,
		writer:          writer,
		transitionDelay: transitionDelay,
		bold:            color.New(color.Bold),
		faint:           color.New(color.Faint),
		cyan:            color.New(color.FgCyan),
		green:           color.New(color.FgGreen, color.Bold),
		red:             color.New(color.FgRed, color.Bold),
		italic:          color.New(color.Italic),
	}
}

func (p *ConsolePresenter) Render(ctx context.Context, view session.View) error {
	if view.Reason.Transitional() && p.transitionDelay > 0 {
		timer := time.NewTimer(p.transitionDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	var buf bytes.Buffer
	p.writeHeader(&buf, view)
	if view.Card != nil {
		p.writeCard(&buf, view.Card)
	} else {
		p.writeSectionComplete(&buf, view)
	}

	if _, err := p.writer.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writer.Write() > %w", err)
	}
	return nil
}

func (p *ConsolePresenter) ShowError(err error) {
	_, _ = p.red.Fprintln(p.writer, p.localizer.T(i18n.KeyLoadError))
	_, _ = fmt.Fprintf(p.writer, "  %v\n", err)
}

func (p *ConsolePresenter) writeHeader(w io.Writer, view session.View) {
	l := p.localizer
	_, _ = fmt.Fprintln(w)
	_, _ = p.bold.Fprintln(w, l.T(i18n.KeyTitle))

	parts := []string{
		fmt.Sprintf("%s (%s)", l.SectionName(view.SectionKey), l.CardCount(view.SectionSize)),
		l.T(i18n.KeySectionOf, strconv.Itoa(view.SectionIndex+1), strconv.Itoa(view.SectionCount)),
	}
	if current, total, ok := view.Progress(); ok {
		parts = append(parts, l.T(i18n.KeyProgress, strconv.Itoa(current), strconv.Itoa(total)))
	}
	parts = append(parts, l.Direction(view.Direction.Source, view.Direction.Target))
	_, _ = p.cyan.Fprintln(w, strings.Join(parts, " · "))
	_, _ = fmt.Fprintln(w)
}

func (p *ConsolePresenter) writeCard(w io.Writer, card *session.CardView) {
	p.writePhrase(w, card.Prompt)
	if card.Answer == nil {
		return
	}
	p.writePhrase(w, *card.Answer)
	p.writeOptions(w, card.Prompt)
	p.writeOptions(w, *card.Answer)
}

func (p *ConsolePresenter) writePhrase(w io.Writer, phrase session.Phrase) {
	_, _ = p.bold.Fprintf(w, "%s: ", p.localizer.LanguageName(phrase.Lang))
	if phrase.Missing {
		_, _ = p.faint.Fprintln(w, p.localizer.T(i18n.KeyTranslationUnavailable))
		return
	}
	_, _ = fmt.Fprintln(w, phrase.Text)
}

func (p *ConsolePresenter) writeOptions(w io.Writer, phrase session.Phrase) {
	if len(phrase.Options) == 0 {
		return
	}
	_, _ = fmt.Fprintf(w, "  %s: ", p.localizer.T(i18n.KeyOptions, strings.ToUpper(phrase.Lang)))
	_, _ = p.italic.Fprintln(w, strings.Join(phrase.Options, " · "))
}

func (p *ConsolePresenter) writeSectionComplete(w io.Writer, view session.View) {
	_, _ = p.green.Fprintln(w, p.localizer.T(i18n.KeySectionComplete))
	message := p.localizer.T(i18n.KeySectionCompleteMessage)
	if view.AllComplete {
		message = p.localizer.T(i18n.KeyAllCompleteMessage)
	}
	_, _ = fmt.Fprintln(w, message)
}
