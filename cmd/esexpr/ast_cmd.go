package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newASTCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ast [file]",
		Short: "Print the ESTree form of the input as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			compact, err := cmd.Flags().GetBool("compact")
			if err != nil {
				return err
			}
			result, ok, err := runParse(cmd, v, args, nil)
			if !ok {
				return err
			}
			output, err := getOutputJSON(result.AST, compact)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(output))
			return err
		},
	}
	cmd.Flags().Bool("compact", false, "Print the JSON on a single line without color")
	return cmd
}
