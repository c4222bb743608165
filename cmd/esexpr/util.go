package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/esexpr/esexpr/internal/exitcode"
	"github.com/esexpr/esexpr/pkg/api"
)

var (
	red    = color.New(color.FgRed).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

func printError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", red(err.Error()))
}

func isTerminalInput(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func newLogger(v *viper.Viper, w io.Writer) zerolog.Logger {
	if !v.GetBool("verbose") {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    color.NoColor,
		TimeFormat: time.Kitchen,
	}).With().Timestamp().Logger()
}

func getOutputJSON(value interface{}, compact bool) ([]byte, error) {
	if compact {
		return json.Marshal(value)
	}
	if color.NoColor {
		return json.MarshalIndent(value, "", "  ")
	}
	return prettyjson.Marshal(value)
}

func plural(prefix string, count int) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, prefix)
	}
	return fmt.Sprintf("%d %ss", count, prefix)
}

// Shared by every subcommand. The boolean is false if help was printed
// instead because there was no input to read.
func runParse(cmd *cobra.Command, v *viper.Viper, args []string, configure func(*api.ParseOptions)) (api.ParseResult, bool, error) {
	if shouldPrintHelp(cmd, args) {
		return api.ParseResult{}, false, cmd.Help()
	}

	input, sourcefile, err := getInput(cmd, args)
	if err != nil {
		return api.ParseResult{}, false, err
	}
	options, err := getParseOptions(v, sourcefile)
	if err != nil {
		return api.ParseResult{}, false, exitcode.WithStatus(err, exitcode.Usage)
	}
	if configure != nil {
		configure(&options)
	}

	log := newLogger(v, cmd.ErrOrStderr())
	log.Info().
		Str("file", sourcefile).
		Int("bytes", len(input)).
		Stringer("loader", options.Loader).
		Bool("program", options.Program).
		Bool("await", options.AllowAwait).
		Bool("yield", options.AllowYield).
		Msg("parsing")

	start := time.Now()
	result := api.Parse(input, options)
	log.Info().
		Dur("elapsed", time.Since(start)).
		Int("errors", len(result.Errors)).
		Int("warnings", len(result.Warnings)).
		Msg("parsed")

	if len(result.Errors) > 0 {
		return result, false, exitcode.Reported(api.MessagesToError(result.Errors))
	}
	return result, true, nil
}
