package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/esexpr/esexpr/pkg/api"
)

func newPrintCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print [file]",
		Short: "Print the input back out with normalized parentheses",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			minify, err := cmd.Flags().GetBool("minify-whitespace")
			if err != nil {
				return err
			}
			result, ok, err := runParse(cmd, v, args, func(options *api.ParseOptions) {
				options.MinifyWhitespace = minify
			})
			if !ok {
				return err
			}
			code := result.Code
			if !strings.HasSuffix(code, "\n") {
				code += "\n"
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), code)
			return err
		},
	}
	cmd.Flags().Bool("minify-whitespace", false, "Remove optional whitespace")
	return cmd
}
