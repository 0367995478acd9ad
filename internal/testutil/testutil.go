// Package testutil provides shared test helpers for creating config files and phrase card documents.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SampleCollection is the collection name used by the sample documents.
const SampleCollection = "SprechenTeil3"

// SampleDocumentJSON has two sections of sizes 2 and 1. The second card of the first
// section has no English phrase.
const SampleDocumentJSON = `{
  "SprechenTeil3": {
    "1_Begruessung": [
      {
        "de": "Hallo, wie geht's?",
        "uk": "Привіт, як справи?",
        "en": "Hi, how are you?",
        "options_de": ["Hi, alles klar?", "Servus!"],
        "options_uk": ["Привіт!"]
      },
      {
        "de": "Schön, dich zu sehen.",
        "uk": "Радий тебе бачити."
      }
    ],
    "2_Gespraech_Beginn": [
      {
        "de": "Wollen wir zusammen etwas planen?",
        "uk": "Сплануймо щось разом?",
        "en": "Shall we plan something together?"
      }
    ]
  }
}
`

// SampleDocumentYAML is SampleDocumentJSON written as YAML.
const SampleDocumentYAML = `SprechenTeil3:
  1_Begruessung:
    - de: "Hallo, wie geht's?"
      uk: "Привіт, як справи?"
      en: "Hi, how are you?"
      options_de:
        - "Hi, alles klar?"
        - "Servus!"
      options_uk:
        - "Привіт!"
    - de: "Schön, dich zu sehen."
      uk: "Радий тебе бачити."
  2_Gespraech_Beginn:
    - de: "Wollen wir zusammen etwas planen?"
      uk: "Сплануймо щось разом?"
      en: "Shall we plan something together?"
`

// WriteDocument writes body to dir/name and returns the path.
func WriteDocument(t *testing.T, dir, name, body string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

// SetupTestConfig writes SampleDocumentJSON and a config file pointing at it into tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	dataPath := WriteDocument(t, tmpDir, "data.json", SampleDocumentJSON)
	deckDir := filepath.Join(tmpDir, "decks")
	require.NoError(t, os.MkdirAll(deckDir, 0755))

	configContent := fmt.Sprintf(`content:
  location: %s
  collection: %s
session:
  transition_delay: 0s
ui:
  language: en
outputs:
  deck_directory: %s
`,
		dataPath,
		SampleCollection,
		deckDir,
	)

	configPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	return configPath
}
