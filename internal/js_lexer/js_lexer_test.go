package js_lexer

import (
	"fmt"
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/esexpr/esexpr/internal/helpers"
	"github.com/esexpr/esexpr/internal/js_ast"
	"github.com/esexpr/esexpr/internal/logger"
	"github.com/esexpr/esexpr/internal/test"
)

func assertEqualStrings(t *testing.T, a string, b string) {
	t.Helper()
	pretty := func(text string) string {
		builder := strings.Builder{}
		builder.WriteRune('"')
		i := 0
		for i < len(text) {
			c, width := utf8.DecodeRuneInString(text[i:])
			builder.WriteString(fmt.Sprintf("\\u{%X}", c))
			i += width
		}
		builder.WriteRune('"')
		return builder.String()
	}
	if a != b {
		t.Fatalf("%s != %s", pretty(a), pretty(b))
	}
}

func lexToken(contents string) T {
	lexer := NewLexer(test.SourceForTest(contents))
	return lexer.Token
}

func errorText(lexer *Lexer) string {
	if lexer.Err == nil {
		return ""
	}
	return lexer.Err.Msg.Text
}

func expectLexerError(t *testing.T, contents string, expected string) {
	t.Helper()
	t.Run(contents, func(t *testing.T) {
		t.Helper()
		lexer := NewLexer(test.SourceForTest(contents))
		test.AssertEqual(t, errorText(&lexer), expected)
		if expected != "" {
			test.AssertEqual(t, lexer.Token, TSyntaxError)
		}
	})
}

func TestComment(t *testing.T) {
	expectLexerError(t, "/*", "Expected \"*/\" to terminate multi-line comment")
	expectLexerError(t, "/*/", "Expected \"*/\" to terminate multi-line comment")
	expectLexerError(t, "/**/", "")
	expectLexerError(t, "//", "")

	lexer := NewLexer(test.SourceForTest("a /*\n*/ b"))
	lexer.Next()
	test.AssertEqual(t, lexer.Token, TIdentifier)
	test.AssertEqual(t, lexer.HasNewlineBefore, true)
}

func TestErrorLocation(t *testing.T) {
	lexer := NewLexer(test.SourceForTest("a\n  'b"))
	lexer.Next()
	test.AssertEqual(t, lexer.Token, TSyntaxError)
	test.AssertEqual(t, lexer.Err.Msg.String(logger.OutputOptions{}, logger.TerminalInfo{}),
		"<stdin>:2:4: error: Unterminated string literal\n")
}

func expectHashbang(t *testing.T, contents string, expected string) {
	t.Helper()
	t.Run(contents, func(t *testing.T) {
		t.Helper()
		lexer := NewLexer(test.SourceForTest(contents))
		test.AssertEqual(t, errorText(&lexer), "")
		test.AssertEqual(t, lexer.Token, THashbang)
		test.AssertEqual(t, lexer.Identifier, expected)
	})
}

func TestHashbang(t *testing.T) {
	expectHashbang(t, "#!/usr/bin/env node", "#!/usr/bin/env node")
	expectHashbang(t, "#!/usr/bin/env node\n", "#!/usr/bin/env node")
	expectHashbang(t, "#!/usr/bin/env node\nlet x", "#!/usr/bin/env node")
	expectLexerError(t, " #!/usr/bin/env node", "Syntax error \"!\"")
}

func expectIdentifier(t *testing.T, contents string, expected string) {
	t.Helper()
	t.Run(contents, func(t *testing.T) {
		t.Helper()
		lexer := NewLexer(test.SourceForTest(contents))
		test.AssertEqual(t, errorText(&lexer), "")
		test.AssertEqual(t, lexer.Token, TIdentifier)
		test.AssertEqual(t, lexer.Identifier, expected)
	})
}

func TestIdentifier(t *testing.T) {
	expectIdentifier(t, "_", "_")
	expectIdentifier(t, "$", "$")
	expectIdentifier(t, "test", "test")
	expectIdentifier(t, "t\\u0065st", "test")
	expectIdentifier(t, "t\\u{65}st", "test")

	expectLexerError(t, "t\\u.", "Syntax error \".\"")
	expectLexerError(t, "t\\u0.", "Syntax error \".\"")
	expectLexerError(t, "t\\u00.", "Syntax error \".\"")
	expectLexerError(t, "t\\u006.", "Syntax error \".\"")
	expectLexerError(t, "t\\u{.", "Syntax error \".\"")
	expectLexerError(t, "t\\u{0.", "Syntax error \".\"")
	expectLexerError(t, "a\\u0020", "Invalid identifier: \"a \"")

	expectIdentifier(t, "a\u200C", "a\u200C")
	expectIdentifier(t, "a\u200D", "a\u200D")
	expectIdentifier(t, "\u00e9t\u00e9", "\u00e9t\u00e9")

	test.AssertEqual(t, lexToken("\\u0076ar"), TEscapedKeyword)
	test.AssertEqual(t, lexToken("var"), TVar)
}

func TestPrivateIdentifier(t *testing.T) {
	lexer := NewLexer(test.SourceForTest("#foo in x"))
	test.AssertEqual(t, lexer.Token, TPrivateIdentifier)
	test.AssertEqual(t, lexer.Identifier, "#foo")

	lexer = NewLexer(test.SourceForTest("#\\u0061"))
	test.AssertEqual(t, lexer.Token, TPrivateIdentifier)
	test.AssertEqual(t, lexer.Identifier, "#a")

	expectLexerError(t, "# foo", "Syntax error \" \"")
}

func expectNumber(t *testing.T, contents string, expected float64) {
	t.Helper()
	t.Run(contents, func(t *testing.T) {
		t.Helper()
		lexer := NewLexer(test.SourceForTest(contents))
		test.AssertEqual(t, errorText(&lexer), "")
		test.AssertEqual(t, lexer.Token, TNumericLiteral)
		test.AssertEqual(t, lexer.Number, expected)
	})
}

func TestNumericLiteral(t *testing.T) {
	expectNumber(t, "0", 0.0)
	expectNumber(t, "000", 0.0)
	expectNumber(t, "010", 8.0)
	expectNumber(t, "123", 123.0)
	expectNumber(t, "0123", 83.0)
	expectNumber(t, "0987", 987.0)
	expectNumber(t, "0987.6543", 987.6543)
	expectNumber(t, "01289", 1289.0)
	expectNumber(t, "999999999", 999999999.0)
	expectNumber(t, "9999999999", 9999999999.0)
	expectNumber(t, "123456789123456789", 123456789123456780.0)
	expectNumber(t, "123456789123456789"+strings.Repeat("0", 128), 1.2345678912345679e+145)

	expectNumber(t, "0b00101", 5.0)
	expectNumber(t, "0B00101", 5.0)
	expectLexerError(t, "0b", "Unexpected end of file")
	expectLexerError(t, "0b012", "Syntax error \"2\"")
	expectLexerError(t, "0b01a", "Syntax error \"a\"")

	expectNumber(t, "0o12345", 5349.0)
	expectNumber(t, "0O1234567654321", 89755965649.0)
	expectLexerError(t, "0o", "Unexpected end of file")
	expectLexerError(t, "0o018", "Syntax error \"8\"")

	expectNumber(t, "0x12345678", float64(0x12345678))
	expectNumber(t, "0xFEDCBA987", float64(0xFEDCBA987))
	expectLexerError(t, "0x", "Unexpected end of file")
	expectLexerError(t, "0xGFEDCBA", "Syntax error \"G\"")

	expectNumber(t, "123.", 123.0)
	expectNumber(t, ".0123", 0.0123)
	expectNumber(t, "2.2250738585072014e-308", 2.2250738585072014e-308)
	expectNumber(t, "5e-324", 5e-324)
	expectNumber(t, "1e-325", 0.0)
	expectNumber(t, "1e+309", math.Inf(1))
	expectNumber(t, "0x8000_0000_0000_0000", 9.223372036854776e+18)

	expectNumber(t, "1.e1", 10.0)
	expectNumber(t, ".1e-1", 0.01)
	expectNumber(t, "1.1e+1", 11.0)

	expectLexerError(t, "1e", "Unexpected end of file")
	expectLexerError(t, "1.1e+", "Unexpected end of file")
	expectLexerError(t, "1e+-1", "Syntax error \"-\"")
	expectLexerError(t, "1z", "Syntax error \"z\"")
	expectLexerError(t, "1.0f", "Syntax error \"f\"")
	expectLexerError(t, "0x1z", "Syntax error \"z\"")

	expectNumber(t, "1_2_3", 123)
	expectNumber(t, "1_2.3_4e5_6", 12.34e56)
	expectNumber(t, "0b1_0", 2)
	expectNumber(t, "0x1_2", 0x12)
	expectNumber(t, "08.0_1", 8.01)

	expectLexerError(t, "0_1", "Syntax error \"_\"")
	expectLexerError(t, "08_0", "Syntax error \"_\"")
	expectLexerError(t, "1__2", "Syntax error \"_\"")
	expectLexerError(t, "0x1__2", "Syntax error \"_\"")
	expectLexerError(t, "1_", "Syntax error \"_\"")
	expectLexerError(t, "1_.", "Syntax error \"_\"")
	expectLexerError(t, "1._2", "Syntax error \"_\"")
	expectLexerError(t, "1_e1", "Syntax error \"_\"")
	expectLexerError(t, "0x_1", "Syntax error \"_\"")
	expectLexerError(t, "0x1_", "Syntax error \"_\"")
}

func TestNumberBase(t *testing.T) {
	expected := []struct {
		contents string
		base     js_ast.NumberBase
	}{
		{"1", js_ast.NumberBaseDecimal},
		{"1.5", js_ast.NumberBaseFloat},
		{".5", js_ast.NumberBaseFloat},
		{"1e3", js_ast.NumberBaseExponential},
		{"1.5e3", js_ast.NumberBaseExponential},
		{"0b11", js_ast.NumberBaseBinary},
		{"0o17", js_ast.NumberBaseOctal},
		{"017", js_ast.NumberBaseOctal},
		{"019", js_ast.NumberBaseDecimal},
		{"0x1f", js_ast.NumberBaseHex},
	}

	for _, it := range expected {
		contents := it.contents
		base := it.base
		t.Run(contents, func(t *testing.T) {
			lexer := NewLexer(test.SourceForTest(contents))
			test.AssertEqual(t, lexer.Token, TNumericLiteral)
			test.AssertEqual(t, lexer.NumberBase, base)
		})
	}
}

func expectBigInteger(t *testing.T, contents string, expected string) {
	t.Helper()
	t.Run(contents, func(t *testing.T) {
		t.Helper()
		lexer := NewLexer(test.SourceForTest(contents))
		test.AssertEqual(t, errorText(&lexer), "")
		test.AssertEqual(t, lexer.Token, TBigIntegerLiteral)
		test.AssertEqual(t, lexer.Identifier, expected)
	})
}

func TestBigIntegerLiteral(t *testing.T) {
	expectBigInteger(t, "0n", "0")
	expectBigInteger(t, "123n", "123")
	expectBigInteger(t, "9007199254740993n", "9007199254740993") // This can't fit in a float64
	expectBigInteger(t, "0b00101n", "0b00101")
	expectBigInteger(t, "0o12345n", "0o12345")
	expectBigInteger(t, "0xFEDCBA987n", "0xFEDCBA987")
	expectBigInteger(t, "1_2_3n", "123")
	expectBigInteger(t, "0x1_2_3n", "0x123")

	expectLexerError(t, "1e2n", "Syntax error \"n\"")
	expectLexerError(t, "1.0n", "Syntax error \"n\"")
	expectLexerError(t, "000n", "Syntax error \"n\"")
	expectLexerError(t, "0123n", "Syntax error \"n\"")
	expectLexerError(t, "0_1n", "Syntax error \"_\"")
}

func expectString(t *testing.T, contents string, expected string) {
	t.Helper()
	t.Run(contents, func(t *testing.T) {
		t.Helper()
		lexer := NewLexer(test.SourceForTest(contents))
		test.AssertEqual(t, errorText(&lexer), "")
		test.AssertEqual(t, lexer.Token, TStringLiteral)
		assertEqualStrings(t, helpers.UTF16ToString(lexer.StringLiteral), expected)
	})
}

func TestStringLiteral(t *testing.T) {
	expectString(t, "''", "")
	expectString(t, "'123'", "123")

	expectString(t, "'\"'", "\"")
	expectString(t, "'\\''", "'")
	expectString(t, "'\\\\'", "\\")
	expectString(t, "'\\a'", "a")
	expectString(t, "'\\b'", "\b")
	expectString(t, "'\\f'", "\f")
	expectString(t, "'\\n'", "\n")
	expectString(t, "'\\r'", "\r")
	expectString(t, "'\\t'", "\t")
	expectString(t, "'\\v'", "\v")

	expectString(t, "'\\0'", "\000")
	expectString(t, "'\\1'", "\001")
	expectString(t, "'\\7'", "\007")
	expectString(t, "'\\001'", "\001")
	expectString(t, "'\\100'", "\100")
	expectString(t, "'\\377'", "\u00FF")
	expectString(t, "'\\378'", "\0378")
	expectString(t, "'\\400'", "\0400")

	expectString(t, "'\\x00'", "\x00")
	expectString(t, "'\\X11'", "X11")
	expectString(t, "'\\x7F'", "\x7F")

	expectString(t, "'\\u0000'", "\u0000")
	expectString(t, "'\\ucafe\\uCAFE\\u7FFF'", "\ucafe\uCAFE\u7FFF")
	expectString(t, "'\\uD800'", "\xED\xA0\x80")
	expectString(t, "'\\U0000'", "U0000")
	expectString(t, "'\\u{10FFFF}'", "\U0010FFFF")
	expectLexerError(t, "'\\u{110000}'", "Unicode escape sequence is out of range")
	expectLexerError(t, "'\\u{FFFFFFFF}'", "Unicode escape sequence is out of range")

	// Line continuation
	expectLexerError(t, "'\n'", "Unterminated string literal")
	expectLexerError(t, "\"\r\"", "Unterminated string literal")
	expectString(t, "'\u2028'", "\u2028")
	expectString(t, "'1\\\r2'", "12")
	expectString(t, "'1\\\r\n2'", "12")
	expectString(t, "'1\\\u20292'", "12")
	expectLexerError(t, "'1\\\n\r2'", "Unterminated string literal")

	expectLexerError(t, "\"'", "Unterminated string literal")
	expectLexerError(t, "'\\", "Unterminated string literal")
	expectLexerError(t, "'\\x'", "Syntax error \"'\"")
	expectLexerError(t, "'\\xG'", "Syntax error \"G\"")
	expectLexerError(t, "'\\xFG'", "Syntax error \"G\"")
	expectLexerError(t, "'\\u00'", "Syntax error \"'\"")
}

func TestLegacyOctalEscape(t *testing.T) {
	lexer := NewLexer(test.SourceForTest("'\\01' 'a' '\\0'"))
	test.AssertEqual(t, lexer.HasLegacyOctalEscape, true)
	lexer.Next()
	test.AssertEqual(t, lexer.HasLegacyOctalEscape, false)
	lexer.Next()
	test.AssertEqual(t, lexer.HasLegacyOctalEscape, false)
}

func TestTemplate(t *testing.T) {
	lexer := NewLexer(test.SourceForTest("`a${b}c${d}e`"))
	test.AssertEqual(t, lexer.Token, TTemplateHead)
	assertEqualStrings(t, helpers.UTF16ToString(lexer.StringLiteral), "a")

	lexer.Next()
	test.AssertEqual(t, lexer.Identifier, "b")
	lexer.Next()
	test.AssertEqual(t, lexer.Token, TCloseBrace)
	lexer.RescanCloseBraceAsTemplateToken()
	test.AssertEqual(t, lexer.Token, TTemplateMiddle)
	test.AssertEqual(t, lexer.Raw(), "}c${")
	test.AssertEqual(t, lexer.PrevEnd(), int32(5))
	assertEqualStrings(t, helpers.UTF16ToString(lexer.StringLiteral), "c")

	lexer.Next()
	test.AssertEqual(t, lexer.Identifier, "d")
	lexer.Next()
	lexer.RescanCloseBraceAsTemplateToken()
	test.AssertEqual(t, lexer.Token, TTemplateTail)
	cooked, raw := lexer.CookedAndRawTemplateContents()
	assertEqualStrings(t, helpers.UTF16ToString(cooked), "e")
	test.AssertEqual(t, raw, "e")

	lexer.Next()
	test.AssertEqual(t, lexer.Token, TEndOfFile)
}

func TestTemplateNewlines(t *testing.T) {
	lexer := NewLexer(test.SourceForTest("`a\r\nb\rc`"))
	test.AssertEqual(t, lexer.Token, TNoSubstitutionTemplateLiteral)
	cooked, raw := lexer.CookedAndRawTemplateContents()
	assertEqualStrings(t, helpers.UTF16ToString(cooked), "a\nb\nc")
	test.AssertEqual(t, raw, "a\nb\nc")

	expectLexerError(t, "`abc", "Unterminated template literal")
}

func expectInvalidTemplateEscape(t *testing.T, contents string, raw string) {
	t.Helper()
	t.Run(contents, func(t *testing.T) {
		t.Helper()
		lexer := NewLexer(test.SourceForTest(contents))
		test.AssertEqual(t, errorText(&lexer), "")
		test.AssertEqual(t, lexer.Token, TNoSubstitutionTemplateLiteral)
		cooked, observedRaw := lexer.CookedAndRawTemplateContents()
		test.AssertEqual(t, cooked == nil, true)
		test.AssertEqual(t, observedRaw, raw)
		test.AssertEqual(t, lexer.TemplateEscapeErr != nil, true)
		test.AssertEqual(t, lexer.TemplateEscapeErr.Msg.Text, "Invalid escape sequence in template literal")
	})
}

func TestTemplateInvalidEscape(t *testing.T) {
	expectInvalidTemplateEscape(t, "`\\unicode`", "\\unicode")
	expectInvalidTemplateEscape(t, "`\\u{`", "\\u{")
	expectInvalidTemplateEscape(t, "`\\u{110000}`", "\\u{110000}")
	expectInvalidTemplateEscape(t, "`\\xg`", "\\xg")
	expectInvalidTemplateEscape(t, "`\\01`", "\\01")
	expectInvalidTemplateEscape(t, "`\\1`", "\\1")
	expectInvalidTemplateEscape(t, "`\\8`", "\\8")

	// "\0" is allowed when no digit follows it
	lexer := NewLexer(test.SourceForTest("`\\0`"))
	cooked, _ := lexer.CookedAndRawTemplateContents()
	assertEqualStrings(t, helpers.UTF16ToString(cooked), "\000")
	test.AssertEqual(t, lexer.TemplateEscapeErr == nil, true)

	// The escape error does not carry over to the next token
	lexer = NewLexer(test.SourceForTest("`\\u` `x`"))
	test.AssertEqual(t, lexer.TemplateEscapeErr != nil, true)
	lexer.Next()
	test.AssertEqual(t, lexer.TemplateEscapeErr == nil, true)
}

func expectRegExp(t *testing.T, contents string, expected string) {
	t.Helper()
	t.Run(contents, func(t *testing.T) {
		t.Helper()
		lexer := NewLexer(test.SourceForTest(contents))
		lexer.ScanRegExp()
		test.AssertEqual(t, errorText(&lexer), expected)
		if expected == "" {
			test.AssertEqual(t, lexer.Raw(), contents)
			lexer.Next()
			test.AssertEqual(t, lexer.Token, TEndOfFile)
		}
	})
}

func TestRegExp(t *testing.T) {
	expectRegExp(t, "/x/", "")
	expectRegExp(t, "/=/", "")
	expectRegExp(t, "/[/]/", "")
	expectRegExp(t, "/\\//", "")
	expectRegExp(t, "/x/dgimsuvy", "")
	expectRegExp(t, "/x", "Unterminated regular expression")
	expectRegExp(t, "/x\n/", "Unterminated regular expression")
	expectRegExp(t, "/[x/", "Unterminated regular expression")
	expectRegExp(t, "/x/gg", "Duplicate flag \"g\" in regular expression")
	expectRegExp(t, "/x/gq", "Invalid flag \"q\" in regular expression")
}

func TestGreaterThan(t *testing.T) {
	expected := []struct {
		contents string
		token    T
	}{
		{"a > b", TGreaterThan},
		{"a >= b", TGreaterThanEquals},
		{"a >> b", TGreaterThanGreaterThan},
		{"a >>= b", TGreaterThanGreaterThanEquals},
		{"a >>> b", TGreaterThanGreaterThanGreaterThan},
		{"a >>>= b", TGreaterThanGreaterThanGreaterThanEquals},
		{"a > > b", TGreaterThan},
		{"a > = b", TGreaterThan},
	}

	for _, it := range expected {
		contents := it.contents
		token := it.token
		t.Run(contents, func(t *testing.T) {
			lexer := NewLexer(test.SourceForTest(contents))
			lexer.Next()

			// The lexer only ever returns a single ">" character
			test.AssertEqual(t, lexer.Token, TGreaterThan)
			lexer.RescanGreaterThan()
			test.AssertEqual(t, lexer.Token, token)
			test.AssertEqual(t, lexer.Raw(), tokenToString[token][1:len(tokenToString[token])-1])
		})
	}
}

func TestExpectLessThan(t *testing.T) {
	lexer := NewLexer(test.SourceForTest("<<= x"))
	test.AssertEqual(t, lexer.Token, TLessThanLessThanEquals)
	test.AssertEqual(t, lexer.ExpectLessThan(false), true)
	test.AssertEqual(t, lexer.Token, TLessThanEquals)
	test.AssertEqual(t, lexer.Raw(), "<=")
	test.AssertEqual(t, lexer.PrevEnd(), int32(1))
	test.AssertEqual(t, lexer.ExpectLessThan(false), true)
	test.AssertEqual(t, lexer.Token, TEquals)
	test.AssertEqual(t, lexer.ExpectLessThan(false), false)

	lexer = NewLexer(test.SourceForTest("< x"))
	test.AssertEqual(t, lexer.ExpectLessThan(false), true)
	test.AssertEqual(t, lexer.Identifier, "x")
}

func TestSnapshot(t *testing.T) {
	lexer := NewLexer(test.SourceForTest("a b\n-->c\nd"))
	saved := lexer
	lexer.Next()
	lexer.Next()
	test.AssertEqual(t, lexer.Identifier, "d")
	test.AssertEqual(t, len(lexer.Warnings), 1)

	lexer = saved
	test.AssertEqual(t, lexer.Identifier, "a")
	test.AssertEqual(t, len(lexer.Warnings), 0)
	lexer.Next()
	test.AssertEqual(t, lexer.Identifier, "b")
	test.AssertEqual(t, lexer.PrevEnd(), int32(1))
}

func TestStickyError(t *testing.T) {
	lexer := NewLexer(test.SourceForTest("a \x00 b"))
	lexer.Next()
	test.AssertEqual(t, lexer.Token, TSyntaxError)
	test.AssertEqual(t, errorText(&lexer), "Syntax error \"\\x00\"")
	lexer.Next()
	test.AssertEqual(t, lexer.Token, TSyntaxError)

	// Reporting an error for the current token returns the lexical error
	test.AssertEqual(t, lexer.Unexpected(), lexer.Err)
	test.AssertEqual(t, lexer.Expected(TCloseParen), lexer.Err)
}

func TestExpectedMessages(t *testing.T) {
	lexer := NewLexer(test.SourceForTest("a b"))
	lexer.Next()
	test.AssertEqual(t, lexer.Expected(TCloseParen).Msg.Text, "Expected \")\" but found \"b\"")
	test.AssertEqual(t, lexer.ExpectedString("\"=>\"").Msg.Text, "Expected \"=>\" but found \"b\"")
	test.AssertEqual(t, lexer.Unexpected().Msg.Text, "Unexpected \"b\"")
	lexer.Next()
	test.AssertEqual(t, lexer.Unexpected().Msg.Text, "Unexpected end of file")
}

func TestHTMLComment(t *testing.T) {
	lexer := NewLexer(test.SourceForTest("x\n-->y\n<!--z\nw"))
	lexer.Next()
	test.AssertEqual(t, lexer.Identifier, "w")
	test.AssertEqual(t, len(lexer.Warnings), 2)
	test.AssertEqual(t, lexer.Warnings[0].ID, logger.MsgID_JS_HTMLCommentInJS)
	test.AssertEqual(t, lexer.Warnings[0].Text, "Treating \"-->\" as the start of a legacy HTML single-line comment")

	// Without a preceding newline this is "--" followed by ">"
	lexer = NewLexer(test.SourceForTest("x-->y"))
	lexer.Next()
	test.AssertEqual(t, lexer.Token, TMinusMinus)
}

func TestJSX(t *testing.T) {
	lexer := NewLexer(test.SourceForTest("<div data-a='x&amp;y' b=\"&#65;\">one &lt;\n  two</div>"))
	test.AssertEqual(t, lexer.Token, TLessThan)
	lexer.NextInsideJSXElement()
	test.AssertEqual(t, lexer.Identifier, "div")
	lexer.NextInsideJSXElement()
	test.AssertEqual(t, lexer.Identifier, "data-a")
	lexer.NextInsideJSXElement()
	test.AssertEqual(t, lexer.Token, TEquals)
	lexer.NextInsideJSXElement()
	test.AssertEqual(t, lexer.Token, TStringLiteral)
	assertEqualStrings(t, helpers.UTF16ToString(lexer.StringLiteral), "x&y")
	lexer.NextInsideJSXElement()
	lexer.NextInsideJSXElement()
	lexer.NextInsideJSXElement()
	assertEqualStrings(t, helpers.UTF16ToString(lexer.StringLiteral), "A")
	lexer.NextInsideJSXElement()
	test.AssertEqual(t, lexer.Token, TGreaterThan)
	lexer.NextJSXElementChild()
	test.AssertEqual(t, lexer.Token, TStringLiteral)
	assertEqualStrings(t, helpers.UTF16ToString(lexer.StringLiteral), "one < two")
	lexer.NextJSXElementChild()
	test.AssertEqual(t, lexer.Token, TLessThan)
}

func TestQuestionDot(t *testing.T) {
	lexer := NewLexer(test.SourceForTest("a?.b"))
	lexer.Next()
	test.AssertEqual(t, lexer.Token, TQuestionDot)

	// "a?.1:b" is a conditional
	lexer = NewLexer(test.SourceForTest("a?.1:b"))
	lexer.Next()
	test.AssertEqual(t, lexer.Token, TQuestion)
	lexer.Next()
	test.AssertEqual(t, lexer.Token, TNumericLiteral)
}

func TestTokens(t *testing.T) {
	expected := []struct {
		contents string
		token    T
	}{
		{"", TEndOfFile},
		{"\x00", TSyntaxError},

		// "#!/usr/bin/env node"
		{"#!", THashbang},

		// Punctuation
		{"(", TOpenParen},
		{")", TCloseParen},
		{"[", TOpenBracket},
		{"]", TCloseBracket},
		{"{", TOpenBrace},
		{"}", TCloseBrace},
		{"...", TDotDotDot},
		{"..", TDot},
		{"=>", TEqualsGreaterThan},
		{"??=", TQuestionQuestionEquals},
		{"**=", TAsteriskAsteriskEquals},
		{"&&=", TAmpersandAmpersandEquals},
		{"||=", TBarBarEquals},
		{"!==", TExclamationEqualsEquals},
		{"<<", TLessThanLessThan},
		{"@", TAt},

		// Reserved words
		{"break", TBreak},
		{"class", TClass},
		{"delete", TDelete},
		{"in", TIn},
		{"instanceof", TInstanceof},
		{"new", TNew},
		{"typeof", TTypeof},
		{"void", TVoid},

		// Contextual keywords are identifiers
		{"await", TIdentifier},
		{"yield", TIdentifier},
		{"async", TIdentifier},
		{"of", TIdentifier},
	}

	for _, it := range expected {
		contents := it.contents
		token := it.token
		t.Run(contents, func(t *testing.T) {
			test.AssertEqual(t, lexToken(contents), token)
		})
	}
}
