package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/nfrund/lateslip-portal/internal/authform"
	"github.com/nfrund/lateslip-portal/internal/backend"
	"github.com/nfrund/lateslip-portal/internal/config"
	"github.com/nfrund/lateslip-portal/internal/logging"
	"github.com/nfrund/lateslip-portal/internal/pages"
	"github.com/nfrund/lateslip-portal/internal/tokenstore"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// cliApp is the state shared by all subcommands.
type cliApp struct {
	fs         afero.Fs
	origin     string
	tokenFile  string
	validation string
	logLevel   string
}

// NewRootCmd builds the portalctl command tree on fsys.
func NewRootCmd(fsys afero.Fs) *cobra.Command {
	app := &cliApp{fs: fsys}

	cfg, cfgErr := config.ParseCLI()
	if cfgErr != nil {
		// Reported before any command runs.
		cfg = &config.CLI{}
	}

	rootCmd := &cobra.Command{
		Use:   "portalctl",
		Short: "Late Slip admin portal CLI",
		Long: `portalctl signs in to the Late Slip admin backend from the command line.

Available commands:
  login       Log in and store the session token
  register    Create an admin account
  logout      Forget the stored session token
  token       Print the stored session token

Use "portalctl [command] --help" for more information about a specific command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return cfgErr
			}
			slog.SetDefault(logging.NewWithWriter(cmd.ErrOrStderr(), "text", app.logLevel))
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.origin, "backend", cfg.BackendOrigin, "backend origin (BACKEND_ORIGIN)")
	flags.StringVar(&app.tokenFile, "token-file", cfg.TokenFile, "where the session token is kept (TOKEN_FILE); defaults to the user config dir")
	flags.StringVar(&app.validation, "validate", cfg.FormValidation, "form validation before submit: none or required (FORM_VALIDATION)")
	flags.StringVar(&app.logLevel, "log-level", cfg.LogLevel, "log level (LOG_LEVEL)")

	rootCmd.AddCommand(
		newLoginCmd(app),
		newRegisterCmd(app),
		newLogoutCmd(app),
		newTokenCmd(app),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute executes the root command
func Execute() {
	rootCmd := NewRootCmd(afero.NewOsFs())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (a *cliApp) tokenStore() (*tokenstore.FileStore, error) {
	path := a.tokenFile
	if path == "" {
		var err error
		if path, err = tokenstore.DefaultPath(); err != nil {
			return nil, err
		}
	}
	return tokenstore.NewFileStore(a.fs, path), nil
}

func (a *cliApp) controllers() (pages.Controllers, error) {
	client, err := backend.New(a.origin)
	if err != nil {
		return pages.Controllers{}, err
	}
	return pages.Controllers{Login: pages.NewLogin(client), Registration: pages.NewRegistration(client)}, nil
}

func (a *cliApp) newForm(mode authform.Mode) (*authform.Form, error) {
	policy, err := authform.PolicyByName(a.validation)
	if err != nil {
		return nil, err
	}
	return authform.New(mode, authform.WithValidation(policy)), nil
}

// readPassword takes the password from the flag or, failing that, the first
// line of stdin.
func readPassword(in io.Reader, flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	scanner := bufio.NewScanner(in)
	if scanner.Scan() {
		return strings.TrimRight(scanner.Text(), "\r")
	}
	return ""
}
