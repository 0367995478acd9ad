package session

import (
	"context"
	"fmt"

	"github.com/at-ishikawa/phrasecards/internal/content"
)

// Loader supplies the document of a session. It is called once.
type Loader interface {
	Load(ctx context.Context) (*content.Document, error)
}

// Open loads the document and starts a session on it. Any load failure is shown
// through presenter and returned; no controller exists afterwards.
func Open(ctx context.Context, loader Loader, presenter Presenter, opts ...Option) (*Controller, error) {
	doc, err := loader.Load(ctx)
	if err != nil {
		err = fmt.Errorf("loader.Load() > %w", err)
		presenter.ShowError(err)
		return nil, err
	}

	controller, err := NewController(doc, presenter, opts...)
	if err != nil {
		err = fmt.Errorf("NewController() > %w", err)
		presenter.ShowError(err)
		return nil, err
	}

	if err := controller.Start(ctx); err != nil {
		return nil, err
	}
	return controller, nil
}
