package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/phrasecards/internal/config"
	"github.com/at-ishikawa/phrasecards/internal/testutil"
)

func TestNewSource(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	sqlxDB := sqlx.NewDb(db, "mysql")

	tests := []struct {
		name    string
		cfg     config.ContentConfig
		db      *sqlx.DB
		want    any
		wantErr bool
	}{
		{
			name: "file source by default",
			cfg:  config.ContentConfig{Location: "data.json", Collection: "c"},
			want: &FileSource{},
		},
		{
			name: "http source inferred from location",
			cfg:  config.ContentConfig{Location: "https://example.com/data.json", Collection: "c"},
			want: &HTTPSource{},
		},
		{
			name: "explicit http source",
			cfg:  config.ContentConfig{Source: config.SourceHTTP, Location: "http://localhost/data", Collection: "c"},
			want: &HTTPSource{},
		},
		{
			name: "mysql source",
			cfg:  config.ContentConfig{Source: config.SourceMySQL, Collection: "c"},
			db:   sqlxDB,
			want: &DBSource{},
		},
		{
			name:    "mysql source without a connection",
			cfg:     config.ContentConfig{Source: config.SourceMySQL, Collection: "c"},
			wantErr: true,
		},
		{
			name:    "unknown source",
			cfg:     config.ContentConfig{Source: "ftp", Location: "data.json", Collection: "c"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewSource(tt.cfg, tt.db)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, got)
		})
	}
}

func TestFileSource_Load(t *testing.T) {
	tmpDir := t.TempDir()
	jsonPath := testutil.WriteDocument(t, tmpDir, "data.json", testutil.SampleDocumentJSON)
	yamlPath := testutil.WriteDocument(t, tmpDir, "data.yml", testutil.SampleDocumentYAML)
	yamlAsTxt := testutil.WriteDocument(t, tmpDir, "data.txt", testutil.SampleDocumentYAML)

	tests := []struct {
		name    string
		path    string
		format  Format
		want    *Document
		wantErr bool
	}{
		{
			name: "json file",
			path: jsonPath,
			want: sampleDocument(),
		},
		{
			name: "yaml file by extension",
			path: yamlPath,
			want: sampleDocument(),
		},
		{
			name:   "forced yaml format",
			path:   yamlAsTxt,
			format: FormatYAML,
			want:   sampleDocument(),
		},
		{
			name:    "missing file",
			path:    filepath.Join(tmpDir, "missing.json"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := NewFileSource(tt.path, testutil.SampleCollection, tt.format)
			got, err := source.Load(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, os.ErrNotExist)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.path, source.String())
			assert.NoError(t, source.Close())
		})
	}
}

func TestFileSource_Load_CanceledContext(t *testing.T) {
	path := testutil.WriteDocument(t, t.TempDir(), "data.json", testutil.SampleDocumentJSON)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileSource(path, testutil.SampleCollection, "").Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
