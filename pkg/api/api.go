// This package is the public interface to the parser. Everything in
// "internal/" may change between versions but the types here are stable.
package api

type Loader uint8

const (
	LoaderJS Loader = iota
	LoaderJSX
	LoaderTS
	LoaderTSX
)

// Accepts the loader names "js", "jsx", "ts", and "tsx"
func ParseLoader(text string) (Loader, error) {
	return parseLoaderImpl(text)
}

func (loader Loader) String() string {
	return validateLoader(loader).String()
}

type Location struct {
	File     string
	Line     int // 1-based
	Column   int // 0-based, in bytes
	Length   int // in bytes
	LineText string
}

type Message struct {
	// The name of the warning category, if any (e.g. "equals-nan")
	ID       string
	Text     string
	Location *Location
}

type MessageKind uint8

const (
	ErrorMessage MessageKind = iota
	WarningMessage
)

type StderrColor uint8

const (
	ColorIfTerminal StderrColor = iota
	ColorNever
	ColorAlways
)

type LogLevel uint8

const (
	LogLevelSilent LogLevel = iota
	LogLevelInfo
	LogLevelWarning
	LogLevelError
)

////////////////////////////////////////////////////////////////////////////////
// Parse API

type ParseOptions struct {
	Color      StderrColor
	ErrorLimit int
	LogLevel   LogLevel

	Loader     Loader
	Sourcefile string

	// Parse a list of statements instead of a single expression
	Program bool

	PreserveParens bool
	AllowAwait     bool
	AllowYield     bool

	MinifyWhitespace bool
}

type ParseResult struct {
	Errors   []Message
	Warnings []Message

	// The input printed back out. Empty if the parse stopped at an error.
	// Errors that don't stop the parse still produce output.
	Code string

	// An ESTree-shaped tree suitable for encoding as JSON. Nil if the parse
	// stopped at an error.
	AST map[string]interface{}
}

func Parse(input string, options ParseOptions) ParseResult {
	return parseImpl(input, options)
}

////////////////////////////////////////////////////////////////////////////////
// Message API

type FormatMessagesOptions struct {
	TerminalWidth int
	Kind          MessageKind
	Color         bool
}

// Renders each message the same way the command-line tool does, including
// the line of source code with the offending range underlined
func FormatMessages(msgs []Message, opts FormatMessagesOptions) []string {
	return formatMessagesImpl(msgs, opts)
}

// Collapses the error messages into a single error value. Returns nil if
// there are none.
func MessagesToError(msgs []Message) error {
	return messagesToErrorImpl(msgs)
}
