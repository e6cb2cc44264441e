package cmd

import (
	"github.com/nfrund/lateslip-portal/internal/authform"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *cliApp) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		Long: `Log in to the admin backend. On success the session token is written to
the token file. The password is read from stdin when --password is omitted.

Examples:
  portalctl login --email admin@college.edu --password s3cret
  echo s3cret | portalctl login --email admin@college.edu`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := app.newForm(authform.ModeLogin)
			if err != nil {
				return err
			}
			form.Set(authform.FieldEmail, email)
			form.Set(authform.FieldPassword, readPassword(cmd.InOrStdin(), password))
			return app.submit(cmd, form)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (read from stdin if empty)")
	return cmd
}
