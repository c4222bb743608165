package js_lexer

// The lexer converts a source file to a stream of tokens. The lexer is not
// run to completion before the parser is started. Instead, the parser calls
// the lexer repeatedly as it needs tokens. This is because many tokens are
// context-sensitive and need high-level information from the parser. Examples
// are regular expression literals, template continuations, JSX text, and the
// ">" character, which is always returned on its own so that type argument
// lists like "A<B<C>>" can close one level at a time.
//
// The lexer is a plain value. Copying it takes a snapshot of the position in
// the token stream that can later be restored by assigning the copy back.
// This is how the parser backtracks.
//
// Identifiers use UTF-8 encoding which allows them to be slices of the input
// file without allocating extra memory. Strings use UTF-16 encoding so they
// can represent unicode surrogates accurately.

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/esexpr/esexpr/internal/helpers"
	"github.com/esexpr/esexpr/internal/js_ast"
	"github.com/esexpr/esexpr/internal/logger"
)

type T uint8

// If you add a new token, remember to add it to "tokenToString" too
const (
	TEndOfFile T = iota
	TSyntaxError

	// "#!/usr/bin/env node"
	THashbang

	// Literals
	TNoSubstitutionTemplateLiteral // Contents are in lexer.StringLiteral ([]uint16)
	TNumericLiteral                // Contents are in lexer.Number (float64)
	TStringLiteral                 // Contents are in lexer.StringLiteral ([]uint16)
	TBigIntegerLiteral             // Contents are in lexer.Identifier (string)

	// Pseudo-literals
	TTemplateHead   // Contents are in lexer.StringLiteral ([]uint16)
	TTemplateMiddle // Contents are in lexer.StringLiteral ([]uint16)
	TTemplateTail   // Contents are in lexer.StringLiteral ([]uint16)

	// Punctuation
	TAmpersand
	TAmpersandAmpersand
	TAsterisk
	TAsteriskAsterisk
	TAt
	TBar
	TBarBar
	TCaret
	TCloseBrace
	TCloseBracket
	TCloseParen
	TColon
	TComma
	TDot
	TDotDotDot
	TEqualsEquals
	TEqualsEqualsEquals
	TEqualsGreaterThan
	TExclamation
	TExclamationEquals
	TExclamationEqualsEquals
	TGreaterThan
	TGreaterThanEquals
	TGreaterThanGreaterThan
	TGreaterThanGreaterThanGreaterThan
	TLessThan
	TLessThanEquals
	TLessThanLessThan
	TMinus
	TMinusMinus
	TOpenBrace
	TOpenBracket
	TOpenParen
	TPercent
	TPlus
	TPlusPlus
	TQuestion
	TQuestionDot
	TQuestionQuestion
	TSemicolon
	TSlash
	TTilde

	// Assignments
	TAmpersandAmpersandEquals
	TAmpersandEquals
	TAsteriskAsteriskEquals
	TAsteriskEquals
	TBarBarEquals
	TBarEquals
	TCaretEquals
	TEquals
	TGreaterThanGreaterThanEquals
	TGreaterThanGreaterThanGreaterThanEquals
	TLessThanLessThanEquals
	TMinusEquals
	TPercentEquals
	TPlusEquals
	TQuestionQuestionEquals
	TSlashEquals

	// Class-private fields and methods
	TPrivateIdentifier

	// Identifiers
	TIdentifier     // Contents are in lexer.Identifier (string)
	TEscapedKeyword // A keyword that has been escaped as an identifer

	// Reserved words
	TBreak
	TCase
	TCatch
	TClass
	TConst
	TContinue
	TDebugger
	TDefault
	TDelete
	TDo
	TElse
	TEnum
	TExport
	TExtends
	TFalse
	TFinally
	TFor
	TFunction
	TIf
	TImport
	TIn
	TInstanceof
	TNew
	TNull
	TReturn
	TSuper
	TSwitch
	TThis
	TThrow
	TTrue
	TTry
	TTypeof
	TVar
	TVoid
	TWhile
	TWith
)

func (t T) String() string {
	if text, ok := tokenToString[t]; ok {
		return text
	}
	return fmt.Sprintf("token(%d)", uint8(t))
}

var Keywords = map[string]T{
	// Reserved words
	"break":      TBreak,
	"case":       TCase,
	"catch":      TCatch,
	"class":      TClass,
	"const":      TConst,
	"continue":   TContinue,
	"debugger":   TDebugger,
	"default":    TDefault,
	"delete":     TDelete,
	"do":         TDo,
	"else":       TElse,
	"enum":       TEnum,
	"export":     TExport,
	"extends":    TExtends,
	"false":      TFalse,
	"finally":    TFinally,
	"for":        TFor,
	"function":   TFunction,
	"if":         TIf,
	"import":     TImport,
	"in":         TIn,
	"instanceof": TInstanceof,
	"new":        TNew,
	"null":       TNull,
	"return":     TReturn,
	"super":      TSuper,
	"switch":     TSwitch,
	"this":       TThis,
	"throw":      TThrow,
	"true":       TTrue,
	"try":        TTry,
	"typeof":     TTypeof,
	"var":        TVar,
	"void":       TVoid,
	"while":      TWhile,
	"with":       TWith,
}

type Lexer struct {
	source           logger.Source
	current          int
	start            int
	end              int
	prevEnd          int
	codePoint        rune
	Token            T
	HasNewlineBefore bool
	Identifier       string
	StringLiteral    []uint16
	Number           float64
	NumberBase       js_ast.NumberBase

	// Set when the current string literal contains an escape like "\01"
	HasLegacyOctalEscape bool

	// The first lexical error. Once this is set the lexer stops advancing
	// and every further token is TSyntaxError.
	Err *logger.MsgError

	// Set when the current template token has an escape sequence that isn't
	// valid. The cooked value is nil in that case. This is only an error for
	// untagged templates, so the parser decides whether to report it.
	TemplateEscapeErr *logger.MsgError

	// Warnings are stored on the lexer instead of being logged so that they
	// are discarded along with everything else when the parser backtracks
	Warnings []logger.Msg

	rescanCloseBraceAsTemplateToken bool
}

type lexerPanic struct{}

type invalidTemplateEscape struct{}

func NewLexer(source logger.Source) Lexer {
	lexer := Lexer{source: source}
	lexer.step()
	lexer.Next()
	return lexer
}

func (lexer *Lexer) recoverLexerPanic() {
	if r := recover(); r != nil {
		if _, ok := r.(lexerPanic); !ok {
			panic(r)
		}
		lexer.Token = TSyntaxError
	}
}

func (lexer *Lexer) Loc() logger.Loc {
	return logger.Loc{Start: int32(lexer.start)}
}

func (lexer *Lexer) Range() logger.Range {
	return logger.Range{Loc: logger.Loc{Start: int32(lexer.start)}, Len: int32(lexer.end - lexer.start)}
}

func (lexer *Lexer) Span() logger.Span {
	return logger.Span{Start: int32(lexer.start), End: int32(lexer.end)}
}

// The end of the most recently consumed token. Node spans end here.
func (lexer *Lexer) PrevEnd() int32 {
	return int32(lexer.prevEnd)
}

func (lexer *Lexer) Raw() string {
	return lexer.source.Contents[lexer.start:lexer.end]
}

func (lexer *Lexer) RawTemplateContents() string {
	var text string
	switch lexer.Token {
	case TNoSubstitutionTemplateLiteral, TTemplateTail:
		// "`x`" or "}x`"
		text = lexer.source.Contents[lexer.start+1 : lexer.end-1]

	case TTemplateHead, TTemplateMiddle:
		// "`x${" or "}x${"
		text = lexer.source.Contents[lexer.start+1 : lexer.end-2]
	}

	if strings.IndexByte(text, '\r') == -1 {
		return text
	}

	// From ECMA-262:
	//
	// 11.8.6.1 Static Semantics: TV and TRV
	//
	// TV excludes the code units of LineContinuation while TRV includes
	// them. <CR><LF> and <CR> LineTerminatorSequences are normalized to
	// <LF> for both TV and TRV. An explicit EscapeSequence is needed to
	// include a <CR> or <CR><LF> sequence.

	bytes := []byte(text)
	end := 0
	i := 0

	for i < len(bytes) {
		c := bytes[i]
		i++

		if c == '\r' {
			// Convert '\r\n' into '\n'
			if i < len(bytes) && bytes[i] == '\n' {
				i++
			}

			// Convert '\r' into '\n'
			c = '\n'
		}

		bytes[end] = c
		end++
	}

	return string(bytes[:end])
}

// The cooked value is nil if the template contains an invalid escape
func (lexer *Lexer) CookedAndRawTemplateContents() ([]uint16, string) {
	return lexer.StringLiteral, lexer.RawTemplateContents()
}

func (lexer *Lexer) IsIdentifierOrKeyword() bool {
	return lexer.Token >= TIdentifier
}

func (lexer *Lexer) IsContextualKeyword(text string) bool {
	return lexer.Token == TIdentifier && lexer.Raw() == text
}

func (lexer *Lexer) fail(r logger.Range, text string) {
	if lexer.Err == nil {
		lexer.Err = logger.NewMsgError(&lexer.source, r, text)
	}
	panic(lexerPanic{})
}

func (lexer *Lexer) syntaxError() {
	loc := logger.Loc{Start: int32(lexer.end)}
	message := "Unexpected end of file"
	if lexer.end < len(lexer.source.Contents) {
		c, _ := utf8.DecodeRuneInString(lexer.source.Contents[lexer.end:])
		if c < 0x20 {
			message = fmt.Sprintf("Syntax error \"\\x%02X\"", c)
		} else if c >= 0x80 {
			message = fmt.Sprintf("Syntax error \"\\u{%x}\"", c)
		} else if c != '"' {
			message = fmt.Sprintf("Syntax error \"%c\"", c)
		} else {
			message = "Syntax error '\"'"
		}
	}
	lexer.fail(logger.Range{Loc: loc}, message)
}

func (lexer *Lexer) found() string {
	if lexer.start == len(lexer.source.Contents) {
		return "end of file"
	}
	return fmt.Sprintf("%q", lexer.Raw())
}

// These return the error to report for the current token instead of
// reporting it. If the current token is already a lexical error, that error
// takes priority.

func (lexer *Lexer) ExpectedString(text string) *logger.MsgError {
	if lexer.Token == TSyntaxError && lexer.Err != nil {
		return lexer.Err
	}
	return logger.NewMsgError(&lexer.source, lexer.Range(), fmt.Sprintf("Expected %s but found %s", text, lexer.found()))
}

func (lexer *Lexer) Expected(token T) *logger.MsgError {
	if text, ok := tokenToString[token]; ok {
		return lexer.ExpectedString(text)
	}
	return lexer.Unexpected()
}

func (lexer *Lexer) Unexpected() *logger.MsgError {
	if lexer.Token == TSyntaxError && lexer.Err != nil {
		return lexer.Err
	}
	return logger.NewMsgError(&lexer.source, lexer.Range(), fmt.Sprintf("Unexpected %s", lexer.found()))
}

// This consumes a single "<" token. If that is the first part of a longer
// token, this function splits off the first "<" and leaves the remainder of
// the current token as another, smaller token. For example, "<<=" becomes
// "<=". Returns false if the current token does not start with "<".
func (lexer *Lexer) ExpectLessThan(isInsideJSXElement bool) bool {
	switch lexer.Token {
	case TLessThan:
		if isInsideJSXElement {
			lexer.NextInsideJSXElement()
		} else {
			lexer.Next()
		}
		return true

	case TLessThanEquals:
		lexer.Token = TEquals

	case TLessThanLessThan:
		lexer.Token = TLessThan

	case TLessThanLessThanEquals:
		lexer.Token = TLessThanEquals

	default:
		return false
	}

	lexer.start++
	lexer.prevEnd = lexer.start
	lexer.HasNewlineBefore = false
	return true
}

// A ">" is never combined with the characters after it by "Next". Binary
// operator parsing calls this to form ">=", ">>", ">>=", ">>>", or ">>>=".
func (lexer *Lexer) RescanGreaterThan() {
	if lexer.Token != TGreaterThan {
		return
	}

	switch lexer.codePoint {
	case '=':
		lexer.step()
		lexer.Token = TGreaterThanEquals

	case '>':
		lexer.step()
		switch lexer.codePoint {
		case '=':
			lexer.step()
			lexer.Token = TGreaterThanGreaterThanEquals

		case '>':
			lexer.step()
			if lexer.codePoint == '=' {
				lexer.step()
				lexer.Token = TGreaterThanGreaterThanGreaterThanEquals
			} else {
				lexer.Token = TGreaterThanGreaterThanGreaterThan
			}

		default:
			lexer.Token = TGreaterThanGreaterThan
		}
	}
}

func (lexer *Lexer) NextJSXElementChild() {
	if lexer.Err != nil {
		lexer.Token = TSyntaxError
		return
	}
	defer lexer.recoverLexerPanic()

	lexer.prevEnd = lexer.end
	lexer.HasNewlineBefore = false
	originalStart := lexer.end

	for {
		lexer.start = lexer.end
		lexer.Token = 0

		switch lexer.codePoint {
		case -1: // This indicates the end of the file
			lexer.Token = TEndOfFile

		case '{':
			lexer.step()
			lexer.Token = TOpenBrace

		case '<':
			lexer.step()
			lexer.Token = TLessThan

		default:
			needsFixing := false

		stringLiteral:
			for {
				switch lexer.codePoint {
				case -1:
					// Reaching the end of the file without a closing element is an error
					lexer.syntaxError()

				case '&', '\r', '\n', '\u2028', '\u2029':
					// This needs fixing if it has an entity or if it's a multi-line string
					needsFixing = true
					lexer.step()

				case '{', '<':
					// Stop when the string ends
					break stringLiteral

				default:
					// Non-ASCII strings need the slow path
					if lexer.codePoint >= 0x80 {
						needsFixing = true
					}
					lexer.step()
				}
			}

			lexer.Token = TStringLiteral
			lexer.start = originalStart
			text := lexer.source.Contents[originalStart:lexer.end]

			if needsFixing {
				// Slow path
				lexer.StringLiteral = fixWhitespaceAndDecodeJSXEntities(text)
			} else {
				// Fast path
				lexer.StringLiteral = asciiToUTF16(text)
			}
		}

		break
	}
}

func (lexer *Lexer) NextInsideJSXElement() {
	if lexer.Err != nil {
		lexer.Token = TSyntaxError
		return
	}
	defer lexer.recoverLexerPanic()

	lexer.prevEnd = lexer.end
	lexer.HasNewlineBefore = false

	for {
		lexer.start = lexer.end
		lexer.Token = 0

		switch lexer.codePoint {
		case -1: // This indicates the end of the file
			lexer.Token = TEndOfFile

		case '\r', '\n', '\u2028', '\u2029':
			lexer.step()
			lexer.HasNewlineBefore = true
			continue

		case '\t', ' ':
			lexer.step()
			continue

		case '.':
			lexer.step()
			lexer.Token = TDot

		case ':':
			lexer.step()
			lexer.Token = TColon

		case '=':
			lexer.step()
			lexer.Token = TEquals

		case '{':
			lexer.step()
			lexer.Token = TOpenBrace

		case '}':
			lexer.step()
			lexer.Token = TCloseBrace

		case '<':
			lexer.step()
			lexer.Token = TLessThan

		case '>':
			lexer.step()
			lexer.Token = TGreaterThan

		case '/':
			// '/' or '//' or '/* ... */'
			lexer.step()
			switch lexer.codePoint {
			case '/':
				lexer.skipSingleLineComment()
				continue

			case '*':
				lexer.skipMultiLineComment()
				continue

			default:
				lexer.Token = TSlash
			}

		case '\'', '"':
			quote := lexer.codePoint
			needsDecode := false
			lexer.step()

		stringLiteral:
			for {
				switch lexer.codePoint {
				case -1: // This indicates the end of the file
					lexer.syntaxError()

				case '&':
					needsDecode = true
					lexer.step()

				case quote:
					lexer.step()
					break stringLiteral

				default:
					// Non-ASCII strings need the slow path
					if lexer.codePoint >= 0x80 {
						needsDecode = true
					}
					lexer.step()
				}
			}

			lexer.Token = TStringLiteral
			text := lexer.source.Contents[lexer.start+1 : lexer.end-1]

			if needsDecode {
				// Slow path
				lexer.StringLiteral = decodeJSXEntities([]uint16{}, text)
			} else {
				// Fast path
				lexer.StringLiteral = asciiToUTF16(text)
			}

		default:
			// Check for unusual whitespace characters
			if js_ast.IsWhitespace(lexer.codePoint) {
				lexer.step()
				continue
			}

			if js_ast.IsIdentifierStart(lexer.codePoint) {
				lexer.step()
				for js_ast.IsIdentifierContinue(lexer.codePoint) || lexer.codePoint == '-' {
					lexer.step()
				}
				lexer.Identifier = lexer.Raw()
				lexer.Token = TIdentifier
				break
			}

			lexer.syntaxError()
		}

		return
	}
}

func (lexer *Lexer) Next() {
	if lexer.Err != nil {
		lexer.Token = TSyntaxError
		return
	}
	defer lexer.recoverLexerPanic()
	lexer.next()
}

func (lexer *Lexer) next() {
	lexer.prevEnd = lexer.end
	lexer.HasNewlineBefore = lexer.end == 0
	lexer.TemplateEscapeErr = nil

	for {
		lexer.start = lexer.end
		lexer.Token = 0

		switch lexer.codePoint {
		case -1: // This indicates the end of the file
			lexer.Token = TEndOfFile

		case '#':
			if lexer.start == 0 && strings.HasPrefix(lexer.source.Contents, "#!") {
				// "#!/usr/bin/env node"
				lexer.Token = THashbang
			hashbang:
				for {
					lexer.step()
					switch lexer.codePoint {
					case '\r', '\n', '\u2028', '\u2029':
						break hashbang

					case -1: // This indicates the end of the file
						break hashbang
					}
				}
				lexer.Identifier = lexer.Raw()
			} else {
				// "#foo"
				lexer.step()
				if lexer.codePoint == '\\' {
					lexer.Identifier, _ = lexer.scanIdentifierWithEscapes(privateIdentifier)
				} else {
					if !js_ast.IsIdentifierStart(lexer.codePoint) {
						lexer.syntaxError()
					}
					lexer.step()
					for js_ast.IsIdentifierContinue(lexer.codePoint) {
						lexer.step()
					}
					if lexer.codePoint == '\\' {
						lexer.Identifier, _ = lexer.scanIdentifierWithEscapes(privateIdentifier)
					} else {
						lexer.Identifier = lexer.Raw()
					}
				}
				lexer.Token = TPrivateIdentifier
			}

		case '\r', '\n', '\u2028', '\u2029':
			lexer.step()
			lexer.HasNewlineBefore = true
			continue

		case '\t', ' ':
			lexer.step()
			continue

		case '(':
			lexer.step()
			lexer.Token = TOpenParen

		case ')':
			lexer.step()
			lexer.Token = TCloseParen

		case '[':
			lexer.step()
			lexer.Token = TOpenBracket

		case ']':
			lexer.step()
			lexer.Token = TCloseBracket

		case '{':
			lexer.step()
			lexer.Token = TOpenBrace

		case '}':
			lexer.step()
			lexer.Token = TCloseBrace

		case ',':
			lexer.step()
			lexer.Token = TComma

		case ':':
			lexer.step()
			lexer.Token = TColon

		case ';':
			lexer.step()
			lexer.Token = TSemicolon

		case '@':
			lexer.step()
			lexer.Token = TAt

		case '~':
			lexer.step()
			lexer.Token = TTilde

		case '?':
			// '?' or '?.' or '??' or '??='
			lexer.step()
			switch lexer.codePoint {
			case '?':
				lexer.step()
				switch lexer.codePoint {
				case '=':
					lexer.step()
					lexer.Token = TQuestionQuestionEquals
				default:
					lexer.Token = TQuestionQuestion
				}
			case '.':
				lexer.Token = TQuestion
				current := lexer.current
				contents := lexer.source.Contents

				// Lookahead to disambiguate with 'a?.1:b'
				if current < len(contents) {
					c := contents[current]
					if c < '0' || c > '9' {
						lexer.step()
						lexer.Token = TQuestionDot
					}
				} else {
					lexer.step()
					lexer.Token = TQuestionDot
				}
			default:
				lexer.Token = TQuestion
			}

		case '%':
			// '%' or '%='
			lexer.step()
			switch lexer.codePoint {
			case '=':
				lexer.step()
				lexer.Token = TPercentEquals
			default:
				lexer.Token = TPercent
			}

		case '&':
			// '&' or '&=' or '&&' or '&&='
			lexer.step()
			switch lexer.codePoint {
			case '=':
				lexer.step()
				lexer.Token = TAmpersandEquals
			case '&':
				lexer.step()
				switch lexer.codePoint {
				case '=':
					lexer.step()
					lexer.Token = TAmpersandAmpersandEquals
				default:
					lexer.Token = TAmpersandAmpersand
				}
			default:
				lexer.Token = TAmpersand
			}

		case '|':
			// '|' or '|=' or '||' or '||='
			lexer.step()
			switch lexer.codePoint {
			case '=':
				lexer.step()
				lexer.Token = TBarEquals
			case '|':
				lexer.step()
				switch lexer.codePoint {
				case '=':
					lexer.step()
					lexer.Token = TBarBarEquals
				default:
					lexer.Token = TBarBar
				}
			default:
				lexer.Token = TBar
			}

		case '^':
			// '^' or '^='
			lexer.step()
			switch lexer.codePoint {
			case '=':
				lexer.step()
				lexer.Token = TCaretEquals
			default:
				lexer.Token = TCaret
			}

		case '+':
			// '+' or '+=' or '++'
			lexer.step()
			switch lexer.codePoint {
			case '=':
				lexer.step()
				lexer.Token = TPlusEquals
			case '+':
				lexer.step()
				lexer.Token = TPlusPlus
			default:
				lexer.Token = TPlus
			}

		case '-':
			// '-' or '-=' or '--' or '-->'
			lexer.step()
			switch lexer.codePoint {
			case '=':
				lexer.step()
				lexer.Token = TMinusEquals
			case '-':
				lexer.step()

				// Handle legacy HTML-style comments
				if lexer.codePoint == '>' && lexer.HasNewlineBefore {
					lexer.step()
					lexer.addWarning(lexer.Range(), "Treating \"-->\" as the start of a legacy HTML single-line comment")
					lexer.skipSingleLineComment()
					continue
				}

				lexer.Token = TMinusMinus
			default:
				lexer.Token = TMinus
			}

		case '*':
			// '*' or '*=' or '**' or '**='
			lexer.step()
			switch lexer.codePoint {
			case '=':
				lexer.step()
				lexer.Token = TAsteriskEquals

			case '*':
				lexer.step()
				switch lexer.codePoint {
				case '=':
					lexer.step()
					lexer.Token = TAsteriskAsteriskEquals

				default:
					lexer.Token = TAsteriskAsterisk
				}

			default:
				lexer.Token = TAsterisk
			}

		case '/':
			// '/' or '/=' or '//' or '/* ... */'
			lexer.step()
			switch lexer.codePoint {
			case '=':
				lexer.step()
				lexer.Token = TSlashEquals

			case '/':
				lexer.skipSingleLineComment()
				continue

			case '*':
				lexer.skipMultiLineComment()
				continue

			default:
				lexer.Token = TSlash
			}

		case '=':
			// '=' or '=>' or '==' or '==='
			lexer.step()
			switch lexer.codePoint {
			case '>':
				lexer.step()
				lexer.Token = TEqualsGreaterThan
			case '=':
				lexer.step()
				switch lexer.codePoint {
				case '=':
					lexer.step()
					lexer.Token = TEqualsEqualsEquals
				default:
					lexer.Token = TEqualsEquals
				}
			default:
				lexer.Token = TEquals
			}

		case '<':
			// '<' or '<<' or '<=' or '<<=' or '<!--'
			lexer.step()
			switch lexer.codePoint {
			case '=':
				lexer.step()
				lexer.Token = TLessThanEquals
			case '<':
				lexer.step()
				switch lexer.codePoint {
				case '=':
					lexer.step()
					lexer.Token = TLessThanLessThanEquals
				default:
					lexer.Token = TLessThanLessThan
				}

				// Handle legacy HTML-style comments
			case '!':
				if strings.HasPrefix(lexer.source.Contents[lexer.start:], "<!--") {
					lexer.step()
					lexer.step()
					lexer.step()
					lexer.addWarning(lexer.Range(), "Treating \"<!--\" as the start of a legacy HTML single-line comment")
					lexer.skipSingleLineComment()
					continue
				}

				lexer.Token = TLessThan

			default:
				lexer.Token = TLessThan
			}

		case '>':
			// See "RescanGreaterThan" for the longer forms
			lexer.step()
			lexer.Token = TGreaterThan

		case '!':
			// '!' or '!=' or '!=='
			lexer.step()
			switch lexer.codePoint {
			case '=':
				lexer.step()
				switch lexer.codePoint {
				case '=':
					lexer.step()
					lexer.Token = TExclamationEqualsEquals
				default:
					lexer.Token = TExclamationEquals
				}
			default:
				lexer.Token = TExclamation
			}

		case '\'', '"', '`':
			lexer.scanStringOrTemplate()

		case '_', '$',
			'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm',
			'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z',
			'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M',
			'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z':
			lexer.step()
			for js_ast.IsIdentifierContinue(lexer.codePoint) {
				lexer.step()
			}
			if lexer.codePoint == '\\' {
				lexer.Identifier, lexer.Token = lexer.scanIdentifierWithEscapes(normalIdentifier)
			} else {
				contents := lexer.Raw()
				lexer.Identifier = contents
				lexer.Token = Keywords[contents]
				if lexer.Token == 0 {
					lexer.Token = TIdentifier
				}
			}

		case '\\':
			lexer.Identifier, lexer.Token = lexer.scanIdentifierWithEscapes(normalIdentifier)

		case '.', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			lexer.parseNumericLiteralOrDot()

		default:
			// Check for unusual whitespace characters
			if js_ast.IsWhitespace(lexer.codePoint) {
				lexer.step()
				continue
			}

			if js_ast.IsIdentifierStart(lexer.codePoint) {
				lexer.step()
				for js_ast.IsIdentifierContinue(lexer.codePoint) {
					lexer.step()
				}
				if lexer.codePoint == '\\' {
					lexer.Identifier, lexer.Token = lexer.scanIdentifierWithEscapes(normalIdentifier)
				} else {
					lexer.Token = TIdentifier
					lexer.Identifier = lexer.Raw()
				}
				break
			}

			lexer.syntaxError()
		}

		return
	}
}

// This assumes the first "/" has already been consumed
func (lexer *Lexer) skipSingleLineComment() {
	for {
		switch lexer.codePoint {
		case '\r', '\n', '\u2028', '\u2029':
			return

		case -1: // This indicates the end of the file
			return
		}
		lexer.step()
	}
}

// This assumes the "/" has already been consumed and the "*" is current
func (lexer *Lexer) skipMultiLineComment() {
	commentStart := lexer.end - 1
	lexer.step()
	for {
		switch lexer.codePoint {
		case '*':
			lexer.step()
			if lexer.codePoint == '/' {
				lexer.step()
				return
			}

		case '\r', '\n', '\u2028', '\u2029':
			lexer.step()
			lexer.HasNewlineBefore = true

		case -1: // This indicates the end of the file
			lexer.start = lexer.end
			lexer.fail(logger.Range{Loc: logger.Loc{Start: int32(commentStart)}, Len: 2},
				"Expected \"*/\" to terminate multi-line comment")

		default:
			lexer.step()
		}
	}
}

func (lexer *Lexer) scanStringOrTemplate() {
	quote := lexer.codePoint
	needsSlowPath := false
	suffixLen := 1

	if quote != '`' {
		lexer.Token = TStringLiteral
	} else if lexer.rescanCloseBraceAsTemplateToken {
		lexer.Token = TTemplateTail
	} else {
		lexer.Token = TNoSubstitutionTemplateLiteral
	}
	lexer.step()

stringLiteral:
	for {
		switch lexer.codePoint {
		case '\\':
			needsSlowPath = true
			lexer.step()

			// Handle Windows CRLF
			if lexer.codePoint == '\r' {
				lexer.step()
				if lexer.codePoint == '\n' {
					lexer.step()
				}
				continue
			}

		case -1: // This indicates the end of the file
			if quote == '`' {
				lexer.fail(logger.Range{Loc: logger.Loc{Start: int32(lexer.end)}}, "Unterminated template literal")
			}
			lexer.fail(logger.Range{Loc: logger.Loc{Start: int32(lexer.end)}}, "Unterminated string literal")

		case '\r':
			if quote != '`' {
				lexer.fail(logger.Range{Loc: logger.Loc{Start: int32(lexer.end)}}, "Unterminated string literal")
			}

			// Template literals require newline normalization
			needsSlowPath = true

		case '\n':
			if quote != '`' {
				lexer.fail(logger.Range{Loc: logger.Loc{Start: int32(lexer.end)}}, "Unterminated string literal")
			}

		case '$':
			if quote == '`' {
				lexer.step()
				if lexer.codePoint == '{' {
					suffixLen = 2
					lexer.step()
					if lexer.rescanCloseBraceAsTemplateToken {
						lexer.Token = TTemplateMiddle
					} else {
						lexer.Token = TTemplateHead
					}
					break stringLiteral
				}
				continue stringLiteral
			}

		case quote:
			lexer.step()
			break stringLiteral

		default:
			// Non-ASCII strings need the slow path
			if lexer.codePoint >= 0x80 {
				needsSlowPath = true
			}
		}
		lexer.step()
	}

	text := lexer.source.Contents[lexer.start+1 : lexer.end-suffixLen]
	lexer.HasLegacyOctalEscape = false

	if !needsSlowPath {
		lexer.StringLiteral = asciiToUTF16(text)
	} else if quote == '`' {
		lexer.StringLiteral = lexer.decodeTemplateEscapes(lexer.start+1, text)
	} else {
		lexer.StringLiteral = lexer.decodeEscapeSequences(lexer.start+1, text, false)
	}
}

func asciiToUTF16(text string) []uint16 {
	n := len(text)
	copy := make([]uint16, n)
	for i := 0; i < n; i++ {
		copy[i] = uint16(text[i])
	}
	return copy
}

type identifierKind uint8

const (
	normalIdentifier identifierKind = iota
	privateIdentifier
)

// This is an edge case that doesn't really exist in the wild, so it doesn't
// need to be as fast as possible.
func (lexer *Lexer) scanIdentifierWithEscapes(kind identifierKind) (string, T) {
	// First pass: scan over the identifier to see how long it is
	for {
		// Scan a unicode escape sequence. There is at least one because that's
		// what caused us to get on this slow path in the first place.
		if lexer.codePoint == '\\' {
			lexer.step()
			if lexer.codePoint != 'u' {
				lexer.syntaxError()
			}
			lexer.step()
			if lexer.codePoint == '{' {
				// Variable-length
				lexer.step()
				for lexer.codePoint != '}' {
					if !isHexDigit(lexer.codePoint) {
						lexer.syntaxError()
					}
					lexer.step()
				}
				lexer.step()
			} else {
				// Fixed-length
				for j := 0; j < 4; j++ {
					if !isHexDigit(lexer.codePoint) {
						lexer.syntaxError()
					}
					lexer.step()
				}
			}
			continue
		}

		// Stop when we reach the end of the identifier
		if !js_ast.IsIdentifierContinue(lexer.codePoint) {
			break
		}
		lexer.step()
	}

	// Second pass: re-use our existing escape sequence parser
	text := string(utf16.Decode(lexer.decodeEscapeSequences(lexer.start, lexer.Raw(), false)))

	// Even though it was escaped, it must still be a valid identifier
	identifier := text
	if kind == privateIdentifier {
		identifier = identifier[1:] // Skip over the "#"
	}
	if !js_ast.IsIdentifier(identifier) {
		lexer.fail(lexer.Range(), fmt.Sprintf("Invalid identifier: %q", text))
	}

	// Escaped keywords are not allowed to work as actual keywords, but they are
	// allowed wherever we allow identifiers or keywords. For example:
	//
	//   // This is an error (equivalent to "var var;")
	//   var \u0076\u0061\u0072;
	//
	//   // This is fine (equivalent to "foo.var;")
	//   foo.\u0076\u0061\u0072;
	//
	if Keywords[text] != 0 {
		return text, TEscapedKeyword
	}
	return text, TIdentifier
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func (lexer *Lexer) parseNumericLiteralOrDot() {
	// Number or dot
	first := lexer.codePoint
	lexer.step()

	// Dot without a digit after it
	if first == '.' && (lexer.codePoint < '0' || lexer.codePoint > '9') {
		// "..."
		if lexer.codePoint == '.' &&
			lexer.current < len(lexer.source.Contents) &&
			lexer.source.Contents[lexer.current] == '.' {
			lexer.step()
			lexer.step()
			lexer.Token = TDotDotDot
			return
		}

		// "."
		lexer.Token = TDot
		return
	}

	underscoreCount := 0
	lastUnderscoreEnd := 0
	hasDot := first == '.'
	hasExponent := false
	isLegacyOctalLiteral := false
	base := 0.0

	// Assume this is a number, but potentially change to a bigint later
	lexer.Token = TNumericLiteral

	// Check for binary, octal, or hexadecimal literal
	if first == '0' {
		switch lexer.codePoint {
		case 'b', 'B':
			base = 2
			lexer.NumberBase = js_ast.NumberBaseBinary

		case 'o', 'O':
			base = 8
			lexer.NumberBase = js_ast.NumberBaseOctal

		case 'x', 'X':
			base = 16
			lexer.NumberBase = js_ast.NumberBaseHex

		case '0', '1', '2', '3', '4', '5', '6', '7', '_':
			base = 8
			lexer.NumberBase = js_ast.NumberBaseOctal
			isLegacyOctalLiteral = true
		}
	}

	if base != 0 {
		// Integer literal
		isFirst := true
		isInvalidLegacyOctalLiteral := false
		lexer.Number = 0
		if !isLegacyOctalLiteral {
			lexer.step()
		}

	integerLiteral:
		for {
			switch lexer.codePoint {
			case '_':
				// Cannot have multiple underscores in a row
				if lastUnderscoreEnd > 0 && lexer.end == lastUnderscoreEnd+1 {
					lexer.syntaxError()
				}

				// The first digit must exist
				if isFirst || isLegacyOctalLiteral {
					lexer.syntaxError()
				}

				lastUnderscoreEnd = lexer.end
				underscoreCount++

			case '0', '1':
				lexer.Number = lexer.Number*base + float64(lexer.codePoint-'0')

			case '2', '3', '4', '5', '6', '7':
				if base == 2 {
					lexer.syntaxError()
				}
				lexer.Number = lexer.Number*base + float64(lexer.codePoint-'0')

			case '8', '9':
				if isLegacyOctalLiteral {
					isInvalidLegacyOctalLiteral = true
				} else if base < 10 {
					lexer.syntaxError()
				}
				lexer.Number = lexer.Number*base + float64(lexer.codePoint-'0')

			case 'A', 'B', 'C', 'D', 'E', 'F':
				if base != 16 {
					lexer.syntaxError()
				}
				lexer.Number = lexer.Number*base + float64(lexer.codePoint+10-'A')

			case 'a', 'b', 'c', 'd', 'e', 'f':
				if base != 16 {
					lexer.syntaxError()
				}
				lexer.Number = lexer.Number*base + float64(lexer.codePoint+10-'a')

			default:
				// The first digit must exist
				if isFirst {
					lexer.syntaxError()
				}

				break integerLiteral
			}

			lexer.step()
			isFirst = false
		}

		isBigIntegerLiteral := lexer.codePoint == 'n'

		// Slow path: do we need to re-scan the input as text?
		if isBigIntegerLiteral || isInvalidLegacyOctalLiteral {
			text := removeUnderscores(lexer.Raw(), underscoreCount)

			// Can't use a leading zero for bigint literals
			if isBigIntegerLiteral && isLegacyOctalLiteral {
				lexer.syntaxError()
			}

			// Store bigints as text to avoid precision loss
			if isBigIntegerLiteral {
				lexer.Identifier = text
			} else if isInvalidLegacyOctalLiteral {
				// Legacy octal literals may turn out to be a base 10 literal after all
				value, _ := strconv.ParseFloat(text, 64)
				lexer.Number = value
				lexer.NumberBase = js_ast.NumberBaseDecimal
			}
		}
	} else {
		// Floating-point literal
		isInvalidLegacyOctalLiteral := first == '0' && (lexer.codePoint == '8' || lexer.codePoint == '9')

		// Initial digits
		for {
			if lexer.codePoint < '0' || lexer.codePoint > '9' {
				if lexer.codePoint != '_' {
					break
				}

				// Cannot have multiple underscores in a row
				if lastUnderscoreEnd > 0 && lexer.end == lastUnderscoreEnd+1 {
					lexer.syntaxError()
				}

				// ECMA-262 forbids underscores in this case
				if isInvalidLegacyOctalLiteral {
					lexer.syntaxError()
				}

				lastUnderscoreEnd = lexer.end
				underscoreCount++
			}
			lexer.step()
		}

		// Fractional digits
		if first != '.' && lexer.codePoint == '.' {
			// An underscore must not come last
			if lastUnderscoreEnd > 0 && lexer.end == lastUnderscoreEnd+1 {
				lexer.end--
				lexer.syntaxError()
			}

			hasDot = true
			lexer.step()
			if lexer.codePoint == '_' {
				lexer.syntaxError()
			}
			for {
				if lexer.codePoint < '0' || lexer.codePoint > '9' {
					if lexer.codePoint != '_' {
						break
					}

					// Cannot have multiple underscores in a row
					if lastUnderscoreEnd > 0 && lexer.end == lastUnderscoreEnd+1 {
						lexer.syntaxError()
					}

					lastUnderscoreEnd = lexer.end
					underscoreCount++
				}
				lexer.step()
			}
		}

		// Exponent
		if lexer.codePoint == 'e' || lexer.codePoint == 'E' {
			// An underscore must not come last
			if lastUnderscoreEnd > 0 && lexer.end == lastUnderscoreEnd+1 {
				lexer.end--
				lexer.syntaxError()
			}

			hasExponent = true
			lexer.step()
			if lexer.codePoint == '+' || lexer.codePoint == '-' {
				lexer.step()
			}
			if lexer.codePoint < '0' || lexer.codePoint > '9' {
				lexer.syntaxError()
			}
			for {
				if lexer.codePoint < '0' || lexer.codePoint > '9' {
					if lexer.codePoint != '_' {
						break
					}

					// Cannot have multiple underscores in a row
					if lastUnderscoreEnd > 0 && lexer.end == lastUnderscoreEnd+1 {
						lexer.syntaxError()
					}

					lastUnderscoreEnd = lexer.end
					underscoreCount++
				}
				lexer.step()
			}
		}

		switch {
		case hasExponent:
			lexer.NumberBase = js_ast.NumberBaseExponential
		case hasDot:
			lexer.NumberBase = js_ast.NumberBaseFloat
		default:
			lexer.NumberBase = js_ast.NumberBaseDecimal
		}

		// Take a slice of the text to parse
		text := removeUnderscores(lexer.Raw(), underscoreCount)

		if lexer.codePoint == 'n' && !hasDot && !hasExponent {
			// The only bigint literal that can start with 0 is "0n"
			if len(text) > 1 && first == '0' {
				lexer.syntaxError()
			}

			// Store bigints as text to avoid precision loss
			lexer.Identifier = text
		} else if !hasDot && !hasExponent && lexer.end-lexer.start < 10 {
			// Parse a 32-bit integer (very fast path)
			var number uint32 = 0
			for _, c := range text {
				number = number*10 + uint32(c-'0')
			}
			lexer.Number = float64(number)
		} else {
			// Parse a double-precision floating-point number
			value, _ := strconv.ParseFloat(text, 64)
			lexer.Number = value
		}
	}

	// An underscore must not come last
	if lastUnderscoreEnd > 0 && lexer.end == lastUnderscoreEnd+1 {
		lexer.end--
		lexer.syntaxError()
	}

	// Handle bigint literals after the underscore-at-end check above
	if lexer.codePoint == 'n' && !hasDot && !hasExponent {
		lexer.Token = TBigIntegerLiteral
		lexer.step()
	}

	// Identifiers can't occur immediately after numbers
	if js_ast.IsIdentifierStart(lexer.codePoint) {
		lexer.syntaxError()
	}
}

func removeUnderscores(text string, underscoreCount int) string {
	if underscoreCount == 0 {
		return text
	}
	bytes := make([]byte, 0, len(text)-underscoreCount)
	for i := 0; i < len(text); i++ {
		if c := text[i]; c != '_' {
			bytes = append(bytes, c)
		}
	}
	return string(bytes)
}

// This is called by the parser when it sees a "/" or "/=" token in a place
// where an expression is expected. The current token is extended to cover
// the whole regular expression literal including its flags.
func (lexer *Lexer) ScanRegExp() {
	if lexer.Err != nil {
		lexer.Token = TSyntaxError
		return
	}
	defer lexer.recoverLexerPanic()

	// "/=" has already consumed the first character of the pattern
	if lexer.Token == TSlashEquals {
		lexer.current = lexer.start + 1
		lexer.step()
	}

	validateAndStep := func() {
		if lexer.codePoint == '\\' {
			lexer.step()
		}

		switch lexer.codePoint {
		case '\r', '\n', 0x2028, 0x2029:
			// Newlines aren't allowed in regular expressions
			lexer.fail(logger.Range{Loc: lexer.Loc(), Len: int32(lexer.end - lexer.start)}, "Unterminated regular expression")

		case -1: // This indicates the end of the file
			lexer.fail(logger.Range{Loc: lexer.Loc(), Len: int32(lexer.end - lexer.start)}, "Unterminated regular expression")

		default:
			lexer.step()
		}
	}

	for {
		switch lexer.codePoint {
		case '/':
			lexer.step()
			var seen [8]bool
			for js_ast.IsIdentifierContinue(lexer.codePoint) {
				index := strings.IndexRune(regExpFlags, lexer.codePoint)
				flagRange := logger.Range{Loc: logger.Loc{Start: int32(lexer.end)}, Len: 1}
				if index == -1 {
					lexer.fail(flagRange, fmt.Sprintf("Invalid flag %q in regular expression", string(lexer.codePoint)))
				}
				if seen[index] {
					lexer.fail(flagRange, fmt.Sprintf("Duplicate flag %q in regular expression", string(lexer.codePoint)))
				}
				seen[index] = true
				lexer.step()
			}
			return

		case '[':
			lexer.step()
			for lexer.codePoint != ']' {
				validateAndStep()
			}
			lexer.step()

		default:
			validateAndStep()
		}
	}
}

const regExpFlags = "dgimsuvy"

func decodeJSXEntities(decoded []uint16, text string) []uint16 {
	i := 0

	for i < len(text) {
		c, width := utf8.DecodeRuneInString(text[i:])
		i += width

		if c == '&' {
			length := strings.IndexByte(text[i:], ';')
			if length > 0 {
				entity := text[i : i+length]
				if entity[0] == '#' {
					number := entity[1:]
					base := 10
					if len(number) > 1 && number[0] == 'x' {
						number = number[1:]
						base = 16
					}
					if value, err := strconv.ParseInt(number, base, 32); err == nil {
						c = rune(value)
						i += length + 1
					}
				} else if value, ok := jsxEntity[entity]; ok {
					c = value
					i += length + 1
				}
			}
		}

		decoded = helpers.AppendCodePointAsUTF16(decoded, c)
	}

	return decoded
}

func fixWhitespaceAndDecodeJSXEntities(text string) []uint16 {
	afterLastNonWhitespace := -1
	decoded := []uint16{}
	i := 0

	// Trim whitespace off the end of the first line
	firstNonWhitespace := 0

	// Split into lines
	for i < len(text) {
		c, width := utf8.DecodeRuneInString(text[i:])

		switch c {
		case '\r', '\n', '\u2028', '\u2029':
			// Newline
			if firstNonWhitespace != -1 && afterLastNonWhitespace != -1 {
				if len(decoded) > 0 {
					decoded = append(decoded, ' ')
				}

				// Trim whitespace off the start and end of lines in the middle
				decoded = decodeJSXEntities(decoded, text[firstNonWhitespace:afterLastNonWhitespace])
			}

			// Reset for the next line
			firstNonWhitespace = -1

		case '\t', ' ':
			// Whitespace

		default:
			// Check for unusual whitespace characters
			if !js_ast.IsWhitespace(c) {
				afterLastNonWhitespace = i + width
				if firstNonWhitespace == -1 {
					firstNonWhitespace = i
				}
			}
		}

		i += width
	}

	if firstNonWhitespace != -1 {
		if len(decoded) > 0 {
			decoded = append(decoded, ' ')
		}

		// Trim whitespace off the start of the last line
		decoded = decodeJSXEntities(decoded, text[firstNonWhitespace:])
	}

	return decoded
}

// Template literals may contain invalid escapes when they are tagged, so an
// invalid escape produces a nil cooked value instead of a syntax error
func (lexer *Lexer) decodeTemplateEscapes(start int, text string) (cooked []uint16) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(invalidTemplateEscape); !ok {
				panic(r)
			}
			cooked = nil
		}
	}()
	return lexer.decodeEscapeSequences(start, text, true)
}

func (lexer *Lexer) invalidEscape(isTemplate bool, escapeStart int, badEnd int) {
	if isTemplate {
		r := logger.Range{Loc: logger.Loc{Start: int32(escapeStart)}, Len: int32(badEnd - escapeStart)}
		lexer.TemplateEscapeErr = logger.NewMsgError(&lexer.source, r, "Invalid escape sequence in template literal")
		panic(invalidTemplateEscape{})
	}
	lexer.end = badEnd
	lexer.syntaxError()
}

func (lexer *Lexer) decodeEscapeSequences(start int, text string, isTemplate bool) []uint16 {
	decoded := []uint16{}
	i := 0

	for i < len(text) {
		c, width := utf8.DecodeRuneInString(text[i:])
		i += width

		switch c {
		case '\r':
			// Convert '\r\n' into '\n'
			if i < len(text) && text[i] == '\n' {
				i++
			}

			// Convert '\r' into '\n'
			decoded = append(decoded, '\n')
			continue

		case '\\':
			escapeStart := start + i - width
			c2, width2 := utf8.DecodeRuneInString(text[i:])
			i += width2

			switch c2 {
			case 'b':
				decoded = append(decoded, '\b')
				continue

			case 'f':
				decoded = append(decoded, '\f')
				continue

			case 'n':
				decoded = append(decoded, '\n')
				continue

			case 'r':
				decoded = append(decoded, '\r')
				continue

			case 't':
				decoded = append(decoded, '\t')
				continue

			case 'v':
				decoded = append(decoded, '\v')
				continue

			case '0', '1', '2', '3', '4', '5', '6', '7':
				// "\0" is allowed everywhere as long as no digit follows it
				if c2 == '0' && (i >= len(text) || text[i] < '0' || text[i] > '9') {
					decoded = append(decoded, 0)
					continue
				}
				if isTemplate {
					lexer.invalidEscape(isTemplate, escapeStart, start+i)
				}
				lexer.HasLegacyOctalEscape = true

				// 1-3 digit octal
				value := c2 - '0'
				c3, width3 := utf8.DecodeRuneInString(text[i:])
				switch c3 {
				case '0', '1', '2', '3', '4', '5', '6', '7':
					value = value*8 + c3 - '0'
					i += width3
					c4, width4 := utf8.DecodeRuneInString(text[i:])
					switch c4 {
					case '0', '1', '2', '3', '4', '5', '6', '7':
						temp := value*8 + c4 - '0'
						if temp < 256 {
							value = temp
							i += width4
						}
					}
				}
				c = value

			case '8', '9':
				if isTemplate {
					lexer.invalidEscape(isTemplate, escapeStart, start+i)
				}
				lexer.HasLegacyOctalEscape = true
				c = c2

			case 'x':
				// 2-digit hexadecimal
				value := '\000'
				for j := 0; j < 2; j++ {
					c3, width3 := utf8.DecodeRuneInString(text[i:])
					i += width3
					switch c3 {
					case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
						value = value*16 | (c3 - '0')
					case 'a', 'b', 'c', 'd', 'e', 'f':
						value = value*16 | (c3 + 10 - 'a')
					case 'A', 'B', 'C', 'D', 'E', 'F':
						value = value*16 | (c3 + 10 - 'A')
					default:
						lexer.invalidEscape(isTemplate, escapeStart, start+i-width3)
					}
				}
				c = value

			case 'u':
				// Unicode
				value := '\000'

				// Check the first character
				c3, width3 := utf8.DecodeRuneInString(text[i:])
				i += width3

				if c3 == '{' {
					// Variable-length
					hexStart := i - width - width2 - width3
					isFirst := true
					isOutOfRange := false
				variableLength:
					for {
						c3, width3 = utf8.DecodeRuneInString(text[i:])
						i += width3

						switch c3 {
						case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
							value = value*16 | (c3 - '0')
						case 'a', 'b', 'c', 'd', 'e', 'f':
							value = value*16 | (c3 + 10 - 'a')
						case 'A', 'B', 'C', 'D', 'E', 'F':
							value = value*16 | (c3 + 10 - 'A')
						case '}':
							if isFirst {
								lexer.invalidEscape(isTemplate, escapeStart, start+i-width3)
							}
							break variableLength
						default:
							lexer.invalidEscape(isTemplate, escapeStart, start+i-width3)
						}

						if value > utf8.MaxRune {
							isOutOfRange = true
						}

						isFirst = false
					}

					if isOutOfRange {
						if isTemplate {
							lexer.invalidEscape(isTemplate, escapeStart, start+i)
						}
						lexer.fail(logger.Range{Loc: logger.Loc{Start: int32(start + hexStart)}, Len: int32(i - hexStart)},
							"Unicode escape sequence is out of range")
					}
				} else {
					// Fixed-length
					for j := 0; j < 4; j++ {
						switch c3 {
						case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
							value = value*16 | (c3 - '0')
						case 'a', 'b', 'c', 'd', 'e', 'f':
							value = value*16 | (c3 + 10 - 'a')
						case 'A', 'B', 'C', 'D', 'E', 'F':
							value = value*16 | (c3 + 10 - 'A')
						default:
							lexer.invalidEscape(isTemplate, escapeStart, start+i-width3)
						}

						if j < 3 {
							c3, width3 = utf8.DecodeRuneInString(text[i:])
							i += width3
						}
					}
				}
				c = value

			case '\r':
				// Ignore line continuations. A line continuation is not an escaped newline.
				if i < len(text) && text[i] == '\n' {
					// Make sure Windows CRLF counts as a single newline
					i++
				}
				continue

			case '\n', '\u2028', '\u2029':
				// Ignore line continuations. A line continuation is not an escaped newline.
				continue

			default:
				c = c2
			}
		}

		decoded = helpers.AppendCodePointAsUTF16(decoded, c)
	}

	return decoded
}

// The parser calls this when it reaches the "}" that ends a template
// substitution. The "}" is re-scanned as the start of the next template
// token, which is either a middle part or the tail.
func (lexer *Lexer) RescanCloseBraceAsTemplateToken() {
	if lexer.Err != nil {
		lexer.Token = TSyntaxError
		return
	}
	if lexer.Token != TCloseBrace {
		return
	}
	defer lexer.recoverLexerPanic()

	prevEnd := lexer.prevEnd
	lexer.rescanCloseBraceAsTemplateToken = true
	lexer.codePoint = '`'
	lexer.current = lexer.end
	lexer.end -= 1
	lexer.next()
	lexer.rescanCloseBraceAsTemplateToken = false
	lexer.prevEnd = prevEnd
}

func (lexer *Lexer) step() {
	codePoint, width := utf8.DecodeRuneInString(lexer.source.Contents[lexer.current:])

	// Use -1 to indicate the end of the file
	if width == 0 {
		codePoint = -1
	}

	lexer.codePoint = codePoint
	lexer.end = lexer.current
	lexer.current += width
}

func (lexer *Lexer) addWarning(r logger.Range, text string) {
	lexer.Warnings = append(lexer.Warnings, logger.Msg{
		ID:       logger.MsgID_JS_HTMLCommentInJS,
		Kind:     logger.Warning,
		Text:     text,
		Location: logger.LocationOrNil(&lexer.source, r),
	})
}
