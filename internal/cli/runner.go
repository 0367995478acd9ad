// Package cli runs a phrase card session in the terminal.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
)

var errEnd = errors.New("end")

//go:generate mockgen -source=runner.go -destination=../mocks/cli/mock_session.go -package=mock_cli Session

// Session handles one round of input. It returns errEnd when the user is done.
type Session interface {
	Session(ctx context.Context) error
}

// Run calls session until it ends, fails or the process is interrupted.
func Run(ctx context.Context, stdout io.Writer, session Session) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)

		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			if err := session.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					return
				}
				errCh <- err
				return
			}
		}
	}()
	select {
	case <-ctx.Done():
		_, _ = fmt.Fprintln(stdout, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("session.Session() > %w", err)
		}
	}
	return nil
}
