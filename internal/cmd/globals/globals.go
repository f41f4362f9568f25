// Package globals provides shared flag structures and utilities for CLI commands.
package globals

import "github.com/spf13/cobra"

// Flags holds global common flags across all commands.
type Flags struct {
	Output   string
	Quiet    bool
	Verbose  bool
	NoColor  bool
	Catalog  string
	Simulate bool
}

// AddFlags adds common flags to the root command.
func AddFlags(cmd *cobra.Command) *Flags {
	flags := &Flags{}

	cmd.PersistentFlags().StringVarP(&flags.Output, "output", "o", "",
		"Output format: table, wide, json, yaml, markdown")
	// --format and --fmt are aliases for --output
	cmd.PersistentFlags().StringVar(&flags.Output, "format", "", "")
	cmd.PersistentFlags().StringVar(&flags.Output, "fmt", "", "")
	_ = cmd.PersistentFlags().MarkHidden("format")
	_ = cmd.PersistentFlags().MarkHidden("fmt")

	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false,
		"Minimal output")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false,
		"Verbose output")
	cmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false,
		"Disable colored output")
	cmd.PersistentFlags().StringVar(&flags.Catalog, "catalog", "",
		"Load the tool catalog from a YAML file instead of the built-in one")
	cmd.PersistentFlags().BoolVar(&flags.Simulate, "simulate-latency", false,
		"Delay each request like the hosted directory service does")

	return flags
}

// Parse extracts global flags from the command hierarchy.
func Parse(cmd *cobra.Command) (*Flags, error) {
	root := cmd
	for root.Parent() != nil {
		root = root.Parent()
	}

	pf := root.PersistentFlags()
	output, _ := pf.GetString("output")
	quiet, _ := pf.GetBool("quiet")
	verbose, _ := pf.GetBool("verbose")
	noColor, _ := pf.GetBool("no-color")
	catalog, _ := pf.GetString("catalog")
	simulate, _ := pf.GetBool("simulate-latency")

	return &Flags{
		Output:   output,
		Quiet:    quiet,
		Verbose:  verbose,
		NoColor:  noColor,
		Catalog:  catalog,
		Simulate: simulate,
	}, nil
}
