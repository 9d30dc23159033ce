package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// restoreCmd brings the vault contents back into the live book: a plain
// restore replaces the book, --merge appends the vault records to it.
func restoreCmd() *cobra.Command {
	var merge bool

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Bring the vault contents back into the contact book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if merge {
				n, err := appCtx.Vault.Merge(passphrase)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Merged %d contacts from the vault\n", n)
				return nil
			}
			n, err := appCtx.Vault.Restore(passphrase)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Restored %d contacts\n", n)
			return nil
		},
	}
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the vault")
	cmd.Flags().BoolVar(&merge, "merge", false, "append vault records instead of replacing the book")
	_ = cmd.MarkFlagRequired("passphrase")
	return cmd
}
