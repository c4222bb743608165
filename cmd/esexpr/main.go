package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/esexpr/esexpr/internal/exitcode"
)

var version = "dev"

const longHelp = `Parses JavaScript and TypeScript expressions.

Input is read from the named file, or from stdin when no file is given.
Every flag can also be set with an ESEXPR_* environment variable (for
example ESEXPR_LOADER=ts) or in a .esexpr.yaml file in the current
directory.`

func newRootCommand(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:           "esexpr",
		Short:         "Parse, print, and inspect JavaScript expressions",
		Long:          longHelp,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "Read options from this YAML file instead of .esexpr.yaml")
	flags.StringP("loader", "l", "", "Syntax to accept (js, jsx, ts, tsx; default from the file extension)")
	flags.Bool("preserve-parens", false, "Keep parenthesized expressions in the tree")
	flags.Bool("await", false, "Parse as if inside an async function")
	flags.Bool("yield", false, "Parse as if inside a generator function")
	flags.Bool("program", false, "Parse a list of statements instead of a single expression")
	flags.String("color", "auto", "Use color escapes in output (auto, always, never)")
	flags.String("log-level", "info", "Diagnostics to report (info, warning, error, silent)")
	flags.BoolP("verbose", "v", false, "Log timing and options to stderr")
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return exitcode.WithStatus(err, exitcode.Usage)
	})
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}

	root.AddCommand(
		newParseCommand(v),
		newPrintCommand(v),
		newASTCommand(v),
	)
	return root
}

func main() {
	exitcode.Exit(newRootCommand(viper.New()).Execute(), printError)
}
