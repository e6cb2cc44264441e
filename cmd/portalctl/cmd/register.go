package cmd

import (
	"github.com/nfrund/lateslip-portal/internal/authform"
	"github.com/spf13/cobra"
)

func newRegisterCmd(app *cliApp) *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an admin account",
		Long: `Create an admin account on the backend. No token is stored; log in afterwards.

Examples:
  portalctl register --username "Ada Lovelace" --email ada@college.edu --password s3cret`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := app.newForm(authform.ModeRegistration)
			if err != nil {
				return err
			}
			form.Set(authform.FieldUsername, username)
			form.Set(authform.FieldEmail, email)
			form.Set(authform.FieldPassword, readPassword(cmd.InOrStdin(), password))
			return app.submit(cmd, form)
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "full name shown in the dashboard")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (read from stdin if empty)")
	return cmd
}
