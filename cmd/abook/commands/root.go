package commands

import (
	"bufio"

	"github.com/spf13/cobra"

	"abook/internal/app"
	"abook/internal/command"
	"abook/internal/domain"
)

var (
	home       string
	file       string
	passphrase string
	appCtx     *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "abook [op [args...]]",
		Short: "File-backed contact book CLI",
		Long: `abook keeps a single-user contact book in a flat file under your home
directory. Operations are given as plain tokens:

  abook add
  abook remove alice
  abook search name Bob
  abook list
  abook update alice --email alice@example.com

Run with no arguments for the full grammar, or "abook shell" for an
interactive session.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Load(home, file)
			if err != nil {
				return err
			}
			appCtx, err = app.NewWire(cfg)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return newDispatcher(cmd).Dispatch(command.Parse(args))
		},
	}

	// Ops like "update alice --email ..." carry their own flag-looking
	// tokens; stop flag parsing at the first positional so they reach the
	// command grammar untouched.
	root.Flags().SetInterspersed(false)

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.abook)")
	root.PersistentFlags().StringVar(&file, "file", "", "contacts file name (default contacts.abook)")

	root.AddCommand(shellCmd(), backupCmd(), restoreCmd())
	return root.Execute()
}

// newDispatcher builds a dispatcher bound to the command's streams, with the
// add draft collected interactively from stdin.
func newDispatcher(cmd *cobra.Command) *Dispatcher {
	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()
	return &Dispatcher{
		Contacts: appCtx.Contacts,
		Out:      out,
		Draft: func() (domain.Contact, error) {
			return promptContact(in, out)
		},
	}
}
