package sdk

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResource_PendingToReady(t *testing.T) {
	release := make(chan struct{})
	r := Fetch(context.Background(), func(context.Context) ([]string, error) {
		<-release
		return []string{"cardiologie", "urgences"}, nil
	})

	assert.Equal(t, Pending, r.Phase())
	close(release)
	require.NoError(t, r.Wait(context.Background()))

	assert.Equal(t, Ready, r.Phase())
	assert.NoError(t, r.Err())

	var rendered []string
	r.Render(nil, nil, func(data []string) { rendered = data })
	assert.Equal(t, []string{"cardiologie", "urgences"}, rendered)
}

func TestResource_PendingToFailed(t *testing.T) {
	fetchErr := errors.New("Impossible de charger")
	r := Fetch(context.Background(), func(context.Context) (int, error) {
		return 0, fetchErr
	})
	require.NoError(t, r.Wait(context.Background()))

	assert.Equal(t, Failed, r.Phase())
	assert.Equal(t, fetchErr, r.Err())

	var gotErr error
	var gotReady bool
	r.Render(nil, func(err error) { gotErr = err }, func(int) { gotReady = true })
	assert.Equal(t, "Impossible de charger", gotErr.Error())
	assert.False(t, gotReady, "data stays absent on failure")
}

func TestResource_SettleAfterCloseIsNoOp(t *testing.T) {
	release := make(chan struct{})
	settled := make(chan struct{})
	r := Fetch(context.Background(), func(context.Context) (string, error) {
		defer close(settled)
		<-release
		return "late", nil
	})

	r.Close()
	close(release)
	<-settled
	// Give the settle goroutine a moment past the channel close.
	time.Sleep(10 * time.Millisecond)

	assert.Equal(t, Pending, r.Phase(), "a late result must not touch a closed resource")

	var rendered bool
	r.Render(func() {}, nil, func(string) { rendered = true })
	assert.False(t, rendered)
}

func TestResource_CloseIdempotentAndUnblocksWait(t *testing.T) {
	r := Fetch(context.Background(), func(context.Context) (int, error) {
		select {} // never settles
	})
	r.Close()
	r.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, r.Wait(ctx), "Close must unblock waiters")
}

func TestResource_WaitHonorsContext(t *testing.T) {
	r := Fetch(context.Background(), func(context.Context) (int, error) {
		select {}
	})
	defer r.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, r.Wait(ctx), context.DeadlineExceeded)
}

func TestResource_SettlesExactlyOnce(t *testing.T) {
	r := Fetch(context.Background(), func(context.Context) (string, error) {
		return "first", nil
	})
	require.NoError(t, r.Wait(context.Background()))

	// A second settle attempt (defensive; Fetch itself never does this)
	// must not overwrite the terminal state.
	r.settle("second", nil)
	var rendered string
	r.Render(nil, nil, func(data string) { rendered = data })
	assert.Equal(t, "first", rendered)
}
