// Package view renders asynchronous fetches in the terminal: a spinner
// while the request is pending, an inline failure message, or the caller's
// renderer on success.
package view

import (
	"context"

	"github.com/pterm/pterm"

	"github.com/siags/siagsctl/pkg/sdk"
)

// Run starts fetch in the background, shows message on a spinner until the
// result settles, then renders it. Cancelling ctx abandons the fetch; a late
// result is discarded silently.
func Run[T any](ctx context.Context, message string, fetch func(context.Context) (T, error), render func(T)) error {
	spinner, _ := pterm.DefaultSpinner.Start(message)

	resource := sdk.Fetch(ctx, fetch)
	defer resource.Close()

	if err := resource.Wait(ctx); err != nil {
		spinner.Stop()
		return err
	}

	var failure error
	resource.Render(
		nil,
		func(err error) {
			spinner.Fail(err.Error())
			failure = err
		},
		func(data T) {
			spinner.Stop()
			render(data)
		},
	)
	return failure
}
