package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/phrasecards/internal/content"
	"github.com/at-ishikawa/phrasecards/internal/i18n"
	"github.com/at-ishikawa/phrasecards/internal/testutil"
)

func TestSectionsCommand(t *testing.T) {
	configPath := testutil.SetupTestConfig(t, t.TempDir())

	out, err := executeCommand(t, "", "sections", "--config", configPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "SprechenTeil3 (2)", lines[0])
	assert.Contains(t, lines[1], "1_Begruessung")
	assert.Contains(t, lines[1], "Привітання")
	assert.Contains(t, lines[1], "2 cards")
	assert.Contains(t, lines[2], "2_Gespraech_Beginn")
	assert.Contains(t, lines[2], "1 card")
}

func TestPrintSections(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	localizer, err := i18n.New("de", map[string]string{"9_Extra": "Extra"})
	require.NoError(t, err)

	doc := &content.Document{
		Collection: "c",
		Sections: []content.Section{
			{Key: "9_Extra", Cards: make([]content.Card, 7)},
		},
	}

	var buf bytes.Buffer
	printSections(&buf, doc, localizer, 5)
	assert.Contains(t, buf.String(), "Extra")
	assert.Contains(t, buf.String(), "5 Karten (+2)")
}
