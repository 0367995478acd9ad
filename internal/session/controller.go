// Package session drives a phrase card session: sections of cards, reveal on demand,
// and the selected translation direction.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/phrasecards/internal/content"
)

// DefaultCardsPerSection is the maximum number of cards shown from one section.
const DefaultCardsPerSection = 5

var (
	ErrNoSections          = content.ErrNoSections
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrSameLanguage        = errors.New("source and target language must differ")
)

type options struct {
	cardsPerSection int
	languages       Languages
	direction       Direction
	logger          *slog.Logger
}

type Option func(*options)

func WithCardsPerSection(n int) Option {
	return func(o *options) {
		o.cardsPerSection = n
	}
}

func WithLanguages(languages Languages) Option {
	return func(o *options) {
		o.languages = languages
	}
}

func WithDirection(source, target string) Option {
	return func(o *options) {
		o.direction = Direction{Source: source, Target: target}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

type state struct {
	sectionIndex int
	cardIndex    int
	revealed     bool
	direction    Direction
}

// Controller owns the session state. Operations are not safe for concurrent use;
// callers process one trigger at a time.
type Controller struct {
	sections  []content.Section
	languages Languages
	presenter Presenter
	logger    *slog.Logger

	state state
}

// NewController prepares a session over doc. Sections are truncated to the configured card count once, here.
func NewController(doc *content.Document, presenter Presenter, opts ...Option) (*Controller, error) {
	o := options{
		cardsPerSection: DefaultCardsPerSection,
		languages:       DefaultLanguages,
		direction:       Direction{Source: "de", Target: "uk"},
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if doc == nil || len(doc.Sections) == 0 {
		return nil, ErrNoSections
	}
	if o.cardsPerSection <= 0 {
		return nil, fmt.Errorf("cards per section must be positive: %d", o.cardsPerSection)
	}
	for _, code := range []string{o.direction.Source, o.direction.Target} {
		if !o.languages.Contains(code) {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
		}
	}
	if o.direction.Source == o.direction.Target {
		return nil, fmt.Errorf("%w: %s", ErrSameLanguage, o.direction)
	}

	sections := make([]content.Section, 0, len(doc.Sections))
	for _, section := range doc.Sections {
		cards := section.Cards
		if len(cards) > o.cardsPerSection {
			cards = cards[:o.cardsPerSection]
		}
		sections = append(sections, content.Section{Key: section.Key, Cards: cards})
	}

	return &Controller{
		sections:  sections,
		languages: o.languages,
		presenter: presenter,
		logger:    o.logger,
		state: state{
			direction: o.direction,
		},
	}, nil
}

// Start renders the initial view.
func (c *Controller) Start(ctx context.Context) error {
	return c.render(ctx, ReasonStart)
}

// Advance reveals the current card, moves to the next card, or moves to the next section.
// It does nothing once every section is complete.
func (c *Controller) Advance(ctx context.Context) error {
	var reason Reason
	switch {
	case c.AllComplete():
		c.logger.Debug("advance ignored", slog.String("state", "all_complete"))
		return nil
	case c.SectionComplete():
		c.state.sectionIndex++
		c.state.cardIndex = 0
		c.state.revealed = false
		reason = ReasonNextSection
	case !c.state.revealed:
		c.state.revealed = true
		reason = ReasonReveal
	default:
		c.state.cardIndex++
		c.state.revealed = false
		reason = ReasonNextCard
		if c.SectionComplete() {
			reason = ReasonSectionComplete
		}
	}
	return c.render(ctx, reason)
}

// SwapDirection exchanges the source and target language and hides the answer.
func (c *Controller) SwapDirection(ctx context.Context) error {
	c.state.direction = c.resolve(c.state.direction.Swapped(), true)
	c.state.revealed = false
	return c.render(ctx, ReasonDirectionChanged)
}

// SelectSourceLanguage sets the source language. A target equal to code moves to the first other supported code.
func (c *Controller) SelectSourceLanguage(ctx context.Context, code string) error {
	if !c.languages.Contains(code) {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}
	c.state.direction = c.resolve(Direction{Source: code, Target: c.state.direction.Target}, true)
	c.state.revealed = false
	return c.render(ctx, ReasonDirectionChanged)
}

// SelectTargetLanguage sets the target language. A source equal to code moves to the first other supported code.
func (c *Controller) SelectTargetLanguage(ctx context.Context, code string) error {
	if !c.languages.Contains(code) {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}
	c.state.direction = c.resolve(Direction{Source: c.state.direction.Source, Target: code}, false)
	c.state.revealed = false
	return c.render(ctx, ReasonDirectionChanged)
}

// Restart returns to the first card of the first section. The direction is kept.
func (c *Controller) Restart(ctx context.Context) error {
	c.state = state{direction: c.state.direction}
	return c.render(ctx, ReasonRestart)
}

// resolve keeps the source when keepSource is set, the target otherwise, and moves the other side on a conflict.
func (c *Controller) resolve(d Direction, keepSource bool) Direction {
	if d.Source != d.Target {
		return d
	}
	if keepSource {
		d.Target, _ = c.languages.FirstOtherThan(d.Source)
	} else {
		d.Source, _ = c.languages.FirstOtherThan(d.Target)
	}
	return d
}

func (c *Controller) render(ctx context.Context, reason Reason) error {
	view := c.View()
	view.Reason = reason
	c.logger.Debug("session transition",
		slog.String("reason", reason.String()),
		slog.String("section", view.SectionKey),
		slog.Int("card", c.state.cardIndex),
		slog.Bool("revealed", c.state.revealed),
		slog.String("direction", c.state.direction.String()),
	)
	if err := c.presenter.Render(ctx, view); err != nil {
		return fmt.Errorf("presenter.Render(%s) > %w", reason, err)
	}
	return nil
}

// View derives the current view. Its Reason is ReasonStart.
func (c *Controller) View() View {
	view := View{
		SectionKey:         c.SectionKey(),
		SectionIndex:       c.state.sectionIndex,
		SectionCount:       len(c.sections),
		SectionSize:        c.SectionSize(),
		CardIndex:          c.state.cardIndex,
		Direction:          c.state.direction,
		Revealed:           c.state.revealed,
		SectionComplete:    c.SectionComplete(),
		AllComplete:        c.AllComplete(),
		ContinueDisabled:   c.ContinueDisabled(),
		RestartOffered:     c.RestartOffered(),
		NextSectionOffered: c.NextSectionOffered(),
	}
	if !view.SectionComplete {
		view.Card = c.cardView()
	}
	return view
}

func (c *Controller) cardView() *CardView {
	card := c.sections[c.state.sectionIndex].Cards[c.state.cardIndex]
	cardView := &CardView{
		Prompt: phrase(card, c.state.direction.Source),
	}
	if c.state.revealed {
		answer := phrase(card, c.state.direction.Target)
		cardView.Answer = &answer
	}
	return cardView
}

func phrase(card content.Card, lang string) Phrase {
	text, ok := card.Phrase(lang)
	return Phrase{
		Lang:    lang,
		Text:    text,
		Missing: !ok,
		Options: card.Alternatives(lang),
	}
}

func (c *Controller) SectionKey() string {
	return c.sections[c.state.sectionIndex].Key
}

func (c *Controller) SectionIndex() int {
	return c.state.sectionIndex
}

func (c *Controller) SectionCount() int {
	return len(c.sections)
}

// SectionSize is the number of cards of the current section after truncation.
func (c *Controller) SectionSize() int {
	return len(c.sections[c.state.sectionIndex].Cards)
}

func (c *Controller) CardIndex() int {
	return c.state.cardIndex
}

func (c *Controller) Revealed() bool {
	return c.state.revealed
}

func (c *Controller) Direction() Direction {
	return c.state.direction
}

// Progress returns (cardIndex+1, sectionSize). ok is false once the section is complete.
func (c *Controller) Progress() (current, total int, ok bool) {
	if c.SectionComplete() {
		return 0, c.SectionSize(), false
	}
	return c.state.cardIndex + 1, c.SectionSize(), true
}

func (c *Controller) SectionComplete() bool {
	return c.state.cardIndex == c.SectionSize()
}

func (c *Controller) AllComplete() bool {
	return c.SectionComplete() && c.state.sectionIndex == len(c.sections)-1
}

func (c *Controller) ContinueDisabled() bool {
	return c.AllComplete()
}

// RestartOffered reports whether the restart control is exposed. Restart itself works in any state.
func (c *Controller) RestartOffered() bool {
	return c.AllComplete()
}

func (c *Controller) NextSectionOffered() bool {
	return c.SectionComplete() && !c.AllComplete()
}
