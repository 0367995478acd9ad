package session

import "context"

//go:generate mockgen -source=presenter.go -destination=../mocks/session/mock_presenter.go -package=mock_session

// Presenter turns views into visible output.
type Presenter interface {
	// Render draws view. The next operation is not invoked before Render returns.
	Render(ctx context.Context, view View) error
	// ShowError displays a terminal load failure.
	ShowError(err error)
}
