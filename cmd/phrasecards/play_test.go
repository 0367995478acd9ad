package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/phrasecards/internal/testutil"
)

func TestOutputFlag(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{value: "text"},
		{value: "html"},
		{value: "pdf", wantErr: true},
		{value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			var flag OutputFlag
			err := flag.Set(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, flag.String())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, flag.String())
			assert.Equal(t, "OutputFlag", flag.Type())
		})
	}
}

func TestPlayCommand(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		stdin       string
		wantOutput  []string
		wantErrText string
	}{
		{
			name:  "plays the first section as text",
			stdin: "\n\n\nq\n",
			wantOutput: []string{
				"Common phrases for dialogues",
				"Привітання (2 cards) · Section 1 of 2 · 1 / 2 · DE → UK",
				"Українська: Привіт, як справи?",
				"Alternatives (DE): Hi, alles klar? · Servus!",
				"Deutsch: Schön, dich zu sehen.",
			},
		},
		{
			name:       "plays until the input ends",
			stdin:      "\n\n\n\n\n\n\n",
			wantOutput: []string{"Congratulations! You finished all sections."},
		},
		{
			name:       "html output",
			args:       []string{"--output", "html"},
			stdin:      "\n",
			wantOutput: []string{`<div class="card"`, `<div class="main-phrase lang-uk">`},
		},
		{
			name:       "direction from flags",
			args:       []string{"--source", "en", "--target", "de", "--ui-language", "de"},
			stdin:      "\n",
			wantOutput: []string{"English: Hi, how are you?", "Deutsch: Hallo, wie geht's?", "EN → DE"},
		},
		{
			name:        "same source and target",
			args:        []string{"--source", "uk"},
			wantErrText: "invalid configuration",
		},
		{
			name:        "unsupported output",
			args:        []string{"--output", "pdf"},
			wantErrText: `invalid value "pdf"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := testutil.SetupTestConfig(t, t.TempDir())

			args := append([]string{"play", "--config", configPath}, tt.args...)
			out, err := executeCommand(t, tt.stdin, args...)
			if tt.wantErrText != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrText)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.wantOutput {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestPlayCommand_LoadError(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := testutil.SetupTestConfig(t, tmpDir)
	require.NoError(t, os.Remove(filepath.Join(tmpDir, "data.json")))

	out, err := executeCommand(t, "", "play", "--config", configPath)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, out, "Failed to load the data. Please check the data source.")
}
