package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/esexpr/esexpr/pkg/api"
)

var colors = map[string]api.StderrColor{
	"auto":   api.ColorIfTerminal,
	"always": api.ColorAlways,
	"never":  api.ColorNever,
}

var logLevels = map[string]api.LogLevel{
	"info":    api.LogLevelInfo,
	"warning": api.LogLevelWarning,
	"error":   api.LogLevelError,
	"silent":  api.LogLevelSilent,
}

func loadConfig(v *viper.Viper) error {
	v.SetEnvPrefix("esexpr")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("could not read config file %q: %w", path, err)
		}
	} else {
		v.SetConfigName(".esexpr")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return err
			}
		}
	}

	// The color setting also applies to output that doesn't go through the log
	switch v.GetString("color") {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}
	return nil
}

// Without an explicit loader the file extension decides, and stdin is JS
func loaderForPath(v *viper.Viper, path string) (api.Loader, error) {
	name := v.GetString("loader")
	if name == "" {
		switch ext := filepath.Ext(path); ext {
		case ".jsx", ".ts", ".tsx":
			name = ext[1:]
		default:
			name = "js"
		}
	}
	return api.ParseLoader(name)
}

func getParseOptions(v *viper.Viper, sourcefile string) (api.ParseOptions, error) {
	loader, err := loaderForPath(v, sourcefile)
	if err != nil {
		return api.ParseOptions{}, err
	}
	useColor, ok := colors[v.GetString("color")]
	if !ok {
		return api.ParseOptions{}, fmt.Errorf("invalid color %q (valid: auto, always, never)", v.GetString("color"))
	}
	logLevel, ok := logLevels[v.GetString("log-level")]
	if !ok {
		return api.ParseOptions{}, fmt.Errorf("invalid log level %q (valid: info, warning, error, silent)", v.GetString("log-level"))
	}
	return api.ParseOptions{
		Color:          useColor,
		LogLevel:       logLevel,
		Loader:         loader,
		Sourcefile:     sourcefile,
		Program:        v.GetBool("program"),
		PreserveParens: v.GetBool("preserve-parens"),
		AllowAwait:     v.GetBool("await"),
		AllowYield:     v.GetBool("yield"),
	}, nil
}

// Returns the source text and the name to report it under. The input comes
// from the file argument if there is one, otherwise from stdin.
func getInput(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) > 0 && args[0] != "-" {
		bytes, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", err
		}
		return string(bytes), args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", "", err
	}
	return string(data), "<stdin>", nil
}

// There is nothing to read if stdin is an interactive terminal
func shouldPrintHelp(cmd *cobra.Command, args []string) bool {
	return len(args) == 0 && isTerminalInput(cmd.InOrStdin())
}
