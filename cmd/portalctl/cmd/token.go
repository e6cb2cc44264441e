package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
)

var errNoToken = errors.New("no session token stored; run portalctl login")

func newTokenCmd(app *cliApp) *cobra.Command {
	var showClaims bool

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print the stored session token",
		Long: `Print the stored session token. With --claims the token is decoded as a
JWT and its claims are printed as JSON. The signature is not checked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.tokenStore()
			if err != nil {
				return err
			}
			token, ok, err := store.Get(cmd.Context())
			if err != nil {
				return err
			}
			if !ok {
				return errNoToken
			}
			if !showClaims {
				fmt.Fprintln(cmd.OutOrStdout(), token)
				return nil
			}

			claims := jwt.MapClaims{}
			if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
				return fmt.Errorf("decode token: %w", err)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(claims)
		},
	}

	cmd.Flags().BoolVar(&showClaims, "claims", false, "print the token's JWT claims")
	return cmd
}
