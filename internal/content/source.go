package content

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/phrasecards/internal/config"
)

//go:generate mockgen -source=source.go -destination=../mocks/content/mock_source.go -package=mock_content

// Source loads a document once per session.
type Source interface {
	Load(ctx context.Context) (*Document, error)
	Close() error
	String() string
}

// NewSource picks a source for cfg. db is required only for the mysql source.
func NewSource(cfg config.ContentConfig, db *sqlx.DB) (Source, error) {
	kind := cfg.Source
	if kind == "" {
		kind = config.SourceFile
		if isHTTPLocation(cfg.Location) {
			kind = config.SourceHTTP
		}
	}

	switch kind {
	case config.SourceFile:
		return NewFileSource(cfg.Location, cfg.Collection, Format(cfg.Format)), nil
	case config.SourceHTTP:
		return NewHTTPSource(cfg.Location, cfg.Collection, Format(cfg.Format), cfg.Timeout), nil
	case config.SourceMySQL:
		if db == nil {
			return nil, fmt.Errorf("content source %s requires a database connection", kind)
		}
		return NewDBSource(db, cfg.Collection), nil
	}
	return nil, fmt.Errorf("unknown content source %q", kind)
}

func isHTTPLocation(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// FileSource reads a document from the local filesystem.
type FileSource struct {
	path       string
	collection string
	format     Format
}

func NewFileSource(path, collection string, format Format) *FileSource {
	if format == "" {
		format = FormatFromPath(path)
	}
	return &FileSource{
		path:       path,
		collection: collection,
		format:     format,
	}
}

func (s *FileSource) Load(ctx context.Context) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	doc, err := Decode(file, s.format, s.collection)
	if err != nil {
		return nil, fmt.Errorf("decode %s > %w", s.path, err)
	}
	return doc, nil
}

func (s *FileSource) Close() error {
	return nil
}

func (s *FileSource) String() string {
	return s.path
}
