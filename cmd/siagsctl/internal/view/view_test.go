package view

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRendersResult(t *testing.T) {
	var rendered []string
	err := Run(context.Background(), "loading",
		func(ctx context.Context) ([]string, error) {
			return []string{"a", "b"}, nil
		},
		func(data []string) {
			rendered = data
		},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, rendered)
}

func TestRunReturnsFetchError(t *testing.T) {
	fetchErr := errors.New("impossible de charger les données")
	err := Run(context.Background(), "loading",
		func(ctx context.Context) (int, error) {
			return 0, fetchErr
		},
		func(int) {
			t.Error("render must not run on failure")
		},
	)
	assert.ErrorIs(t, err, fetchErr)
}

func TestRunHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	release := make(chan struct{})
	defer close(release)

	cancel()
	err := Run(ctx, "loading",
		func(fetchCtx context.Context) (int, error) {
			<-release
			return 42, nil
		},
		func(int) {
			t.Error("render must not run after cancellation")
		},
	)
	assert.ErrorIs(t, err, context.Canceled)
}
