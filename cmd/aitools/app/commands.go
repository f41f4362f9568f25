package app

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/aitools/cmd/aitools/cmd/favorites"
	"github.com/agentstation/aitools/cmd/aitools/cmd/list"
	"github.com/agentstation/aitools/cmd/aitools/cmd/shell"
	"github.com/agentstation/aitools/cmd/aitools/cmd/stats"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(list.NewCommand(a))
	rootCmd.AddCommand(favorites.NewCommand(a))
	rootCmd.AddCommand(stats.NewCommand(a))
	rootCmd.AddCommand(shell.NewCommand(a))
	rootCmd.AddCommand(a.CreateVersionCommand())
}

// CreateVersionCommand creates the version command.
func (a *App) CreateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("aitools %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:     %s\n", a.commit)
				cmd.Printf("  built:      %s\n", a.date)
				cmd.Printf("  built by:   %s\n", a.builtBy)
				cmd.Printf("  go version: %s\n", runtime.Version())
				cmd.Printf("  platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
			}
		},
	}
}
