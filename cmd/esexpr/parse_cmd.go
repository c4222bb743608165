package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newParseCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file]",
		Short: "Check the input for syntax errors",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, ok, err := runParse(cmd, v, args, nil)
			if !ok {
				return err
			}
			summary := green("ok")
			if n := len(result.Warnings); n > 0 {
				summary += " " + yellow(fmt.Sprintf("(%s)", plural("warning", n)))
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), summary)
			return err
		},
	}
}
