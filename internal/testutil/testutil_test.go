package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestConfig(t *testing.T) {
	tmpDir := t.TempDir()
	got := SetupTestConfig(t, tmpDir)

	want := filepath.Join(tmpDir, "config.yml")
	assert.Equal(t, want, got)

	content, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Contains(t, string(content), filepath.Join(tmpDir, "data.json"))
	assert.Contains(t, string(content), "collection: "+SampleCollection)

	data, err := os.ReadFile(filepath.Join(tmpDir, "data.json"))
	require.NoError(t, err)
	assert.Equal(t, SampleDocumentJSON, string(data))

	info, err := os.Stat(filepath.Join(tmpDir, "decks"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestWriteDocument(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{
			name: "top level file",
			file: "data.json",
			body: SampleDocumentJSON,
		},
		{
			name: "nested directory is created",
			file: filepath.Join("nested", "dir", "data.yml"),
			body: SampleDocumentYAML,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			got := WriteDocument(t, tmpDir, tt.file, tt.body)
			assert.Equal(t, filepath.Join(tmpDir, tt.file), got)

			content, err := os.ReadFile(got)
			require.NoError(t, err)
			assert.Equal(t, tt.body, string(content))
		})
	}
}
