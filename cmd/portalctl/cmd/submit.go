package cmd

import (
	"errors"
	"fmt"

	"github.com/nfrund/lateslip-portal/internal/authform"
	"github.com/nfrund/lateslip-portal/internal/effects"
	"github.com/nfrund/lateslip-portal/internal/pages"
	"github.com/spf13/cobra"
)

var errSubmitFailed = errors.New("request failed")

// submit runs a filled-in form through the page controllers and prints the
// resulting toasts and navigation the way the browser would show them.
func (a *cliApp) submit(cmd *cobra.Command, form *authform.Form) error {
	submission, err := form.Submit()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), pages.MsgMissingFields)
		return err
	}

	controllers, err := a.controllers()
	if err != nil {
		return err
	}
	store, err := a.tokenStore()
	if err != nil {
		return err
	}

	rec := effects.NewRecorder()
	ok := controllers.Dispatch(cmd.Context(), pages.Effects{Tokens: store, Notify: rec, Navigate: rec}, submission)

	for _, n := range rec.Notifications() {
		if n.Level == effects.LevelSuccess {
			fmt.Fprintln(cmd.OutOrStdout(), n.Message)
		} else {
			fmt.Fprintln(cmd.ErrOrStderr(), n.Message)
		}
	}
	if target, navigated := rec.Target(); navigated {
		fmt.Fprintf(cmd.OutOrStdout(), "Next: %s\n", target)
	}
	if !ok {
		return errSubmitFailed
	}
	return nil
}
