package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_cli "github.com/at-ishikawa/phrasecards/internal/mocks/cli"
)

func TestRun(t *testing.T) {
	sessionErr := errors.New("presenter failed")

	tests := []struct {
		name       string
		setupMocks func(session *mock_cli.MockSession)
		wantErr    error
	}{
		{
			name: "runs until the session ends",
			setupMocks: func(session *mock_cli.MockSession) {
				gomock.InOrder(
					session.EXPECT().Session(gomock.Any()).Return(nil).Times(2),
					session.EXPECT().Session(gomock.Any()).Return(errEnd),
				)
			},
		},
		{
			name: "stops on an error",
			setupMocks: func(session *mock_cli.MockSession) {
				gomock.InOrder(
					session.EXPECT().Session(gomock.Any()).Return(nil),
					session.EXPECT().Session(gomock.Any()).Return(sessionErr),
				)
			},
			wantErr: sessionErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			session := mock_cli.NewMockSession(ctrl)
			tt.setupMocks(session)

			err := Run(context.Background(), &bytes.Buffer{}, session)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRun_CanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock_cli.NewMockSession(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, Run(ctx, &bytes.Buffer{}, session))
}
