package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/phrasecards/internal/testutil"
)

func sampleDocument() *Document {
	return &Document{
		Collection: testutil.SampleCollection,
		Sections: []Section{
			{
				Key: "1_Begruessung",
				Cards: []Card{
					{
						Phrases: map[string]string{
							"de": "Hallo, wie geht's?",
							"uk": "Привіт, як справи?",
							"en": "Hi, how are you?",
						},
						Options: map[string][]string{
							"de": {"Hi, alles klar?", "Servus!"},
							"uk": {"Привіт!"},
						},
					},
					{
						Phrases: map[string]string{
							"de": "Schön, dich zu sehen.",
							"uk": "Радий тебе бачити.",
						},
						Options: map[string][]string{},
					},
				},
			},
			{
				Key: "2_Gespraech_Beginn",
				Cards: []Card{
					{
						Phrases: map[string]string{
							"de": "Wollen wir zusammen etwas planen?",
							"uk": "Сплануймо щось разом?",
							"en": "Shall we plan something together?",
						},
						Options: map[string][]string{},
					},
				},
			},
		},
	}
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		collection string
		want       *Document
		wantErr    error
		wantAnyErr bool
	}{
		{
			name:       "sample document",
			input:      testutil.SampleDocumentJSON,
			collection: testutil.SampleCollection,
			want:       sampleDocument(),
		},
		{
			name: "section order follows the source text",
			input: `{"c": {
				"z_last": [{"de": "z"}],
				"a_first": [{"de": "a"}],
				"m_middle": [{"de": "m"}]
			}}`,
			collection: "c",
			want: &Document{
				Collection: "c",
				Sections: []Section{
					{Key: "z_last", Cards: []Card{{Phrases: map[string]string{"de": "z"}, Options: map[string][]string{}}}},
					{Key: "a_first", Cards: []Card{{Phrases: map[string]string{"de": "a"}, Options: map[string][]string{}}}},
					{Key: "m_middle", Cards: []Card{{Phrases: map[string]string{"de": "m"}, Options: map[string][]string{}}}},
				},
			},
		},
		{
			name:       "other collections are ignored",
			input:      `{"other": {"x": [{"de": "x"}]}, "c": {"s": []}}`,
			collection: "c",
			want: &Document{
				Collection: "c",
				Sections:   []Section{{Key: "s", Cards: []Card{}}},
			},
		},
		{
			name:       "missing collection",
			input:      `{"other": {"s": [{"de": "x"}]}}`,
			collection: "c",
			wantErr:    ErrCollectionNotFound,
		},
		{
			name:       "empty collection",
			input:      `{"c": {}}`,
			collection: "c",
			wantErr:    ErrNoSections,
		},
		{
			name:       "collection is not an object",
			input:      `{"c": [1, 2]}`,
			collection: "c",
			wantAnyErr: true,
		},
		{
			name:       "section is not a list",
			input:      `{"c": {"s": {"de": "x"}}}`,
			collection: "c",
			wantAnyErr: true,
		},
		{
			name:       "phrase is not a string",
			input:      `{"c": {"s": [{"de": 1}]}}`,
			collection: "c",
			wantAnyErr: true,
		},
		{
			name:       "options are not a list",
			input:      `{"c": {"s": [{"de": "x", "options_de": "y"}]}}`,
			collection: "c",
			wantAnyErr: true,
		},
		{
			name:       "malformed json",
			input:      `{"c": `,
			collection: "c",
			wantAnyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeJSON(strings.NewReader(tt.input), tt.collection)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			if tt.wantAnyErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeYAML(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		collection string
		want       *Document
		wantErr    error
		wantAnyErr bool
	}{
		{
			name:       "sample document",
			input:      testutil.SampleDocumentYAML,
			collection: testutil.SampleCollection,
			want:       sampleDocument(),
		},
		{
			name:       "missing collection",
			input:      "other:\n  s:\n    - de: x\n",
			collection: "c",
			wantErr:    ErrCollectionNotFound,
		},
		{
			name:       "empty collection",
			input:      "c: {}\n",
			collection: "c",
			wantErr:    ErrNoSections,
		},
		{
			name:       "document is a list",
			input:      "- c\n",
			collection: "c",
			wantAnyErr: true,
		},
		{
			name:       "phrase is not a scalar",
			input:      "c:\n  s:\n    - de: [a, b]\n",
			collection: "c",
			wantAnyErr: true,
		},
		{
			name:       "phrase is a number",
			input:      "c:\n  s:\n    - de: 12\n",
			collection: "c",
			wantAnyErr: true,
		},
		{
			name:       "phrase is a boolean",
			input:      "c:\n  s:\n    - de: true\n",
			collection: "c",
			wantAnyErr: true,
		},
		{
			name:       "quoted number is a phrase",
			input:      "c:\n  s:\n    - de: \"12\"\n      uk: ~\n",
			collection: "c",
			want: &Document{
				Collection: "c",
				Sections: []Section{
					{Key: "s", Cards: []Card{{Phrases: map[string]string{"de": "12", "uk": ""}, Options: map[string][]string{}}}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeYAML(strings.NewReader(tt.input), tt.collection)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			if tt.wantAnyErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_UnsupportedFormat(t *testing.T) {
	_, err := Decode(strings.NewReader(testutil.SampleDocumentJSON), Format("toml"), testutil.SampleCollection)
	assert.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{path: "data.json", want: FormatJSON},
		{path: "dir/DATA.JSON", want: FormatJSON},
		{path: "data.yml", want: FormatYAML},
		{path: "data.yaml", want: FormatYAML},
		{path: "data.txt", want: ""},
		{path: "data", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFromPath(tt.path))
		})
	}
}

func TestFormatFromContentType(t *testing.T) {
	tests := []struct {
		contentType string
		want        Format
	}{
		{contentType: "application/json; charset=utf-8", want: FormatJSON},
		{contentType: "application/yaml", want: FormatYAML},
		{contentType: "text/x-yaml", want: FormatYAML},
		{contentType: "text/plain", want: ""},
		{contentType: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFromContentType(tt.contentType))
		})
	}
}
