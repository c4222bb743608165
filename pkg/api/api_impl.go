package api

import (
	"github.com/esexpr/esexpr/internal/js_parser"
	"github.com/esexpr/esexpr/internal/js_printer"
	"github.com/esexpr/esexpr/internal/logger"
)

func convertLocationToPublic(loc *logger.MsgLocation) *Location {
	if loc == nil {
		return nil
	}
	return &Location{
		File:     loc.File,
		Line:     loc.Line,
		Column:   loc.Column,
		Length:   loc.Length,
		LineText: loc.LineText,
	}
}

func convertLocationToInternal(loc *Location) *logger.MsgLocation {
	if loc == nil {
		return nil
	}
	return &logger.MsgLocation{
		File:     loc.File,
		Line:     loc.Line,
		Column:   loc.Column,
		Length:   loc.Length,
		LineText: loc.LineText,
	}
}

func convertMessagesToPublic(kind logger.MsgKind, msgs []logger.Msg) []Message {
	var filtered []Message
	for _, msg := range msgs {
		if msg.Kind == kind {
			filtered = append(filtered, Message{
				ID:       logger.MsgIDToString(msg.ID),
				Text:     msg.Text,
				Location: convertLocationToPublic(msg.Location),
			})
		}
	}
	return filtered
}

func convertMessagesToInternal(kind logger.MsgKind, msgs []Message) []logger.Msg {
	internal := make([]logger.Msg, 0, len(msgs))
	for _, msg := range msgs {
		id, _ := logger.StringToMsgID(msg.ID)
		internal = append(internal, logger.Msg{
			ID:       id,
			Kind:     kind,
			Text:     msg.Text,
			Location: convertLocationToInternal(msg.Location),
		})
	}
	return internal
}

////////////////////////////////////////////////////////////////////////////////
// Parse API

func parseImpl(input string, options ParseOptions) ParseResult {
	var log logger.Log
	if options.LogLevel == LogLevelSilent {
		log = logger.NewDeferLog()
	} else {
		log = logger.NewStderrLog(logger.OutputOptions{
			IncludeSource: true,
			ErrorLimit:    options.ErrorLimit,
			Color:         validateColor(options.Color),
			LogLevel:      validateLogLevel(options.LogLevel),
		})
	}

	// Convert and validate the options
	configOptions, source := validateParseOptions(options)
	source.Contents = input
	parseOptions := js_parser.OptionsFromConfig(&configOptions)
	printOptions := js_printer.Options{MinifyWhitespace: options.MinifyWhitespace}

	var code string
	var tree map[string]interface{}
	if options.Program {
		if program, err := js_parser.ParseProgram(log, source, parseOptions); err == nil {
			code = js_printer.PrintProgram(program, printOptions)
			tree = js_printer.ProgramToESTree(program, logger.Span{End: int32(len(input))})
		}
	} else if expr, err := js_parser.ParseExpression(log, source, parseOptions); err == nil {
		code = js_printer.Print(expr, printOptions)
		tree = js_printer.ToESTree(expr)
	}

	msgs := log.Done()
	return ParseResult{
		Errors:   convertMessagesToPublic(logger.Error, msgs),
		Warnings: convertMessagesToPublic(logger.Warning, msgs),
		Code:     code,
		AST:      tree,
	}
}

////////////////////////////////////////////////////////////////////////////////
// Message API

func formatMessagesImpl(msgs []Message, opts FormatMessagesOptions) []string {
	terminalInfo := logger.TerminalInfo{
		UseColorEscapes: opts.Color,
		Width:           opts.TerminalWidth,
	}
	strings := make([]string, 0, len(msgs))
	for _, msg := range convertMessagesToInternal(validateMessageKind(opts.Kind), msgs) {
		strings = append(strings, msg.String(logger.OutputOptions{IncludeSource: true}, terminalInfo))
	}
	return strings
}

func messagesToErrorImpl(msgs []Message) error {
	return logger.MsgsToError(convertMessagesToInternal(logger.Error, msgs))
}
