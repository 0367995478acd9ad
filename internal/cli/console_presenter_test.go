package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/phrasecards/internal/session"
)

func TestConsolePresenter_Render(t *testing.T) {
	direction := session.Direction{Source: "de", Target: "uk"}

	tests := []struct {
		name        string
		uiLang      string
		view        session.View
		wantOutput  []string
		wantMissing []string
	}{
		{
			name:   "unrevealed card",
			uiLang: "de",
			view: session.View{
				SectionKey:   "1_Begruessung",
				SectionCount: 8,
				SectionSize:  5,
				Direction:    direction,
				Card: &session.CardView{
					Prompt: session.Phrase{Lang: "de", Text: "Hallo, wie geht's?", Options: []string{"Servus!"}},
				},
			},
			wantOutput: []string{
				"Häufige Phrasen für Dialoge",
				"Привітання (5 Karten) · Abschnitt 1 von 8 · 1 / 5 · DE → UK",
				"Deutsch: Hallo, wie geht's?",
			},
			wantMissing: []string{"Українська", "Servus!"},
		},
		{
			name:   "revealed card shows alternatives of both languages",
			uiLang: "en",
			view: session.View{
				SectionKey:   "1_Begruessung",
				SectionCount: 2,
				SectionSize:  2,
				CardIndex:    1,
				Direction:    direction,
				Revealed:     true,
				Card: &session.CardView{
					Prompt: session.Phrase{Lang: "de", Text: "Hallo, wie geht's?", Options: []string{"Hi, alles klar?", "Servus!"}},
					Answer: &session.Phrase{Lang: "uk", Text: "Привіт, як справи?", Options: []string{"Привіт!"}},
				},
			},
			wantOutput: []string{
				"2 / 2",
				"Українська: Привіт, як справи?",
				"Alternatives (DE): Hi, alles klar? · Servus!",
				"Alternatives (UK): Привіт!",
			},
		},
		{
			name:   "missing translation",
			uiLang: "uk",
			view: session.View{
				SectionKey:  "1_Begruessung",
				SectionSize: 2,
				Direction:   session.Direction{Source: "de", Target: "en"},
				Revealed:    true,
				Card: &session.CardView{
					Prompt: session.Phrase{Lang: "de", Text: "Schön, dich zu sehen."},
					Answer: &session.Phrase{Lang: "en", Missing: true},
				},
			},
			wantOutput:  []string{"English: Переклад недоступний"},
			wantMissing: []string{"Варіанти"},
		},
		{
			name:   "section complete",
			uiLang: "en",
			view: session.View{
				SectionKey:         "1_Begruessung",
				SectionCount:       2,
				SectionSize:        2,
				CardIndex:          2,
				Direction:          direction,
				SectionComplete:    true,
				NextSectionOffered: true,
			},
			wantOutput:  []string{"Section complete", `Press "Next" to go to the next section.`},
			wantMissing: []string{"2 / 2", "Congratulations"},
		},
		{
			name:   "all complete",
			uiLang: "en",
			view: session.View{
				SectionKey:       "2_Gespraech_Beginn",
				SectionIndex:     1,
				SectionCount:     2,
				SectionSize:      1,
				CardIndex:        1,
				Direction:        direction,
				SectionComplete:  true,
				AllComplete:      true,
				ContinueDisabled: true,
				RestartOffered:   true,
			},
			wantOutput: []string{"Section 2 of 2", "Congratulations! You finished all sections."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color.NoColor = true
			defer func() { color.NoColor = false }()

			var buf bytes.Buffer
			presenter := NewConsolePresenter(newTestLocalizer(t, tt.uiLang), &buf, 0)
			require.NoError(t, presenter.Render(context.Background(), tt.view))

			for _, want := range tt.wantOutput {
				assert.Contains(t, buf.String(), want)
			}
			for _, missing := range tt.wantMissing {
				assert.NotContains(t, buf.String(), missing)
			}
		})
	}
}

func TestConsolePresenter_TransitionDelay(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	view := session.View{
		Reason:      session.ReasonNextCard,
		SectionKey:  "1_Begruessung",
		SectionSize: 2,
		CardIndex:   1,
		Card:        &session.CardView{Prompt: session.Phrase{Lang: "de", Text: "Schön, dich zu sehen."}},
	}

	t.Run("canceled while fading out", func(t *testing.T) {
		var buf bytes.Buffer
		presenter := NewConsolePresenter(newTestLocalizer(t, "en"), &buf, time.Hour)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := presenter.Render(ctx, view)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, buf.String())
	})

	t.Run("non transitional renders are not delayed", func(t *testing.T) {
		var buf bytes.Buffer
		presenter := NewConsolePresenter(newTestLocalizer(t, "en"), &buf, time.Hour)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		reveal := view
		reveal.Reason = session.ReasonReveal
		require.NoError(t, presenter.Render(ctx, reveal))
		assert.Contains(t, buf.String(), "Schön, dich zu sehen.")
	})

	t.Run("waits the delay", func(t *testing.T) {
		var buf bytes.Buffer
		presenter := NewConsolePresenter(newTestLocalizer(t, "en"), &buf, 10*time.Millisecond)

		started := time.Now()
		require.NoError(t, presenter.Render(context.Background(), view))
		assert.GreaterOrEqual(t, time.Since(started), 10*time.Millisecond)
		assert.Contains(t, buf.String(), "Schön, dich zu sehen.")
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestConsolePresenter_WriteError(t *testing.T) {
	presenter := NewConsolePresenter(newTestLocalizer(t, "en"), failingWriter{}, 0)
	err := presenter.Render(context.Background(), session.View{SectionKey: "s", SectionComplete: true})
	assert.ErrorContains(t, err, "broken pipe")
}

func TestConsolePresenter_ShowError(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	presenter := NewConsolePresenter(newTestLocalizer(t, "de"), &buf, 0)
	presenter.ShowError(errors.New("GET https://example.com/data.json: status 404"))

	assert.Equal(t,
		"Fehler beim Laden der Daten. Bitte prüfen Sie die Datenquelle.\n  GET https://example.com/data.json: status 404\n",
		buf.String(),
	)
}
