package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"abook/internal/command"
	"abook/internal/domain"
)

// shellCmd runs the interactive loop: one operation per line, same grammar
// as one-shot invocation. "exit" and "quit" end the session; so does EOF.
func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive contact book session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()
			d := &Dispatcher{
				Contacts: appCtx.Contacts,
				Out:      out,
				Draft: func() (domain.Contact, error) {
					return promptContact(in, out)
				},
			}

			for {
				fmt.Fprint(out, "abook> ")
				line, err := in.ReadString('\n')
				if err != nil {
					fmt.Fprintln(out)
					return nil
				}
				tokens := strings.Fields(line)
				if len(tokens) == 0 {
					continue
				}
				if tokens[0] == "exit" || tokens[0] == "quit" {
					return nil
				}
				if err := d.Dispatch(command.Parse(tokens)); err != nil {
					fmt.Fprintln(out, err.Error())
				}
			}
		},
	}
}
