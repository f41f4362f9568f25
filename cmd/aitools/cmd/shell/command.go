// Package shell provides an interactive session over stdin. Unlike the
// one-shot commands it keeps a single directory client alive, so favorites
// added in the session stay until it ends.
package shell

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/agentstation/aitools/internal/appcontext"
	"github.com/agentstation/aitools/internal/cmd/cmdutil"
)

// NewCommand creates the shell command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "shell",
		GroupID: "core",
		Short:   "Browse the directory interactively",
		Example: `  aitools shell
  printf 'add 1\nadd 1\nfavs\n' | aitools shell`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			session := NewSession(
				client,
				cmdutil.NewPrinter(cmd, app),
				cmdutil.NewAlertWriter(cmd, app),
				cmd.OutOrStdout(),
				app.Logger(),
			)

			in := cmd.InOrStdin()
			if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
				session.Prompt = "aitools> "
			}

			return session.Run(cmd.Context(), in)
		},
	}
}
