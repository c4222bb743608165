package api

import (
	"github.com/esexpr/esexpr/internal/config"
	"github.com/esexpr/esexpr/internal/logger"
)

func validateColor(value StderrColor) logger.UseColor {
	switch value {
	case ColorIfTerminal:
		return logger.ColorIfTerminal
	case ColorNever:
		return logger.ColorNever
	case ColorAlways:
		return logger.ColorAlways
	default:
		panic("Invalid color")
	}
}

func validateLogLevel(value LogLevel) logger.LogLevel {
	switch value {
	case LogLevelInfo:
		return logger.LevelInfo
	case LogLevelWarning:
		return logger.LevelWarning
	case LogLevelError:
		return logger.LevelError
	case LogLevelSilent:
		return logger.LevelSilent
	default:
		panic("Invalid log level")
	}
}

func validateLoader(value Loader) config.Loader {
	switch value {
	case LoaderJS:
		return config.LoaderJS
	case LoaderJSX:
		return config.LoaderJSX
	case LoaderTS:
		return config.LoaderTS
	case LoaderTSX:
		return config.LoaderTSX
	default:
		panic("Invalid loader")
	}
}

func parseLoaderImpl(text string) (Loader, error) {
	loader, err := config.ParseLoader(text)
	if err != nil {
		return 0, err
	}
	switch loader {
	case config.LoaderJSX:
		return LoaderJSX, nil
	case config.LoaderTS:
		return LoaderTS, nil
	case config.LoaderTSX:
		return LoaderTSX, nil
	default:
		return LoaderJS, nil
	}
}

func validateMessageKind(value MessageKind) logger.MsgKind {
	switch value {
	case ErrorMessage:
		return logger.Error
	case WarningMessage:
		return logger.Warning
	default:
		panic("Invalid message kind")
	}
}

func validateParseOptions(options ParseOptions) (config.Options, logger.Source) {
	configOptions := config.OptionsForLoader(validateLoader(options.Loader))
	configOptions.PreserveParens = options.PreserveParens
	configOptions.AllowAwait = options.AllowAwait
	configOptions.AllowYield = options.AllowYield

	sourcefile := options.Sourcefile
	if sourcefile == "" {
		sourcefile = "<stdin>"
	}
	return configOptions, logger.Source{PrettyPath: sourcefile}
}
