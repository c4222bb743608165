package js_parser

import (
	"testing"

	"github.com/esexpr/esexpr/internal/config"
)

func expectParseErrorTS(t *testing.T, contents string, expected string) {
	t.Helper()
	expectParseErrorCommon(t, contents, expected, config.Options{
		TS: config.TSOptions{Parse: true},
	})
}

func expectPrintedTS(t *testing.T, contents string, expected string) {
	t.Helper()
	expectPrintedCommon(t, contents, expected, config.Options{
		TS: config.TSOptions{Parse: true},
	})
}

func expectParseErrorTSX(t *testing.T, contents string, expected string) {
	t.Helper()
	expectParseErrorCommon(t, contents, expected, config.Options{
		TS:  config.TSOptions{Parse: true},
		JSX: config.JSXOptions{Parse: true},
	})
}

func expectPrintedTSX(t *testing.T, contents string, expected string) {
	t.Helper()
	expectPrintedCommon(t, contents, expected, config.Options{
		TS:  config.TSOptions{Parse: true},
		JSX: config.JSXOptions{Parse: true},
	})
}

func TestTSTypes(t *testing.T) {
	expectPrintedTS(t, "a as T", "a as T")
	expectPrintedTS(t, "a as const", "a as const")
	expectPrintedTS(t, "a as T[]", "a as T[]")
	expectPrintedTS(t, "a as (T | U)", "a as (T | U)")
	expectPrintedTS(t, "a as { b: T }", "a as { b: T }")
	expectPrintedTS(t, "a as [b: T, c?: U]", "a as [b: T, c?: U]")
	expectPrintedTS(t, "a as typeof b", "a as typeof b")
	expectPrintedTS(t, "a as keyof T", "a as keyof T")
	expectPrintedTS(t, "a as T extends U ? V : W", "a as T extends U ? V : W")
	expectPrintedTS(t, "a as (x: T) => U", "a as (x: T) => U")
	expectPrintedTS(t, "a as -1", "a as -1")
	expectPrintedTS(t, "a satisfies T", "a satisfies T")
	expectPrintedTS(t, "a satisfies T as U", "a satisfies T as U")

	expectParseErrorTS(t, "a as", "<stdin>:1:4: error: Unexpected end of file\n")
	expectParseErrorTS(t, "x as [const: number]", "<stdin>:1:6: error: Unexpected \"const\"\n")
	expectParseErrorTS(t, "x as [function: number]", "")
	expectParseErrorTS(t, "a as -b", "<stdin>:1:6: error: Expected number but found \"b\"\n")
}

func TestTSAsNewline(t *testing.T) {
	// "as" and "satisfies" are not operators after a newline
	expectParseErrorTS(t, "a\nas T", "<stdin>:2:0: error: Unexpected \"as\"\n")
	expectParseErrorTS(t, "a\nsatisfies T", "<stdin>:2:0: error: Unexpected \"satisfies\"\n")
	expectParseError(t, "a as T", "<stdin>:1:2: error: Unexpected \"as\"\n")
}

func TestTSTypeArguments(t *testing.T) {
	expectPrintedTS(t, "f<T>(x)", "f<T>(x)")
	expectPrintedTS(t, "f<T, U>(x)", "f<T, U>(x)")
	expectPrintedTS(t, "f<T>", "f<T>")
	expectPrintedTS(t, "f?.<T>()", "f?.<T>()")
	expectPrintedTS(t, "new A<T>()", "new A<T>()")
	expectPrintedTS(t, "tag<T>`x`", "tag<T>`x`")

	// These are comparisons and shifts, not type arguments
	expectPrintedTS(t, "a < b > c", "a < b > c")
	expectPrintedTS(t, "a<b>>c", "a < b >> c")
	expectPrintedTS(t, "a < b > +c", "a < b > +c")
	expectPrintedTS(t, "a < b", "a < b")
	expectPrintedTS(t, "a < b >= c", "a < b >= c")

	// A binary operator after the type arguments continues an instantiation
	expectPrintedTS(t, "f<T> ?? b", "f<T> ?? b")
	expectPrintedTS(t, "f<T> == b", "f<T> == b")
}

func TestTSTypeAssertion(t *testing.T) {
	expectPrintedTS(t, "<T>a", "<T>a")
	expectPrintedTS(t, "x = <T>y", "x = <T>y")
	expectPrintedTS(t, "<T>a.b", "<T>a.b")

	expectParseErrorTS(t, "<T>a ** b", "<stdin>:1:5: error: Unary operators cannot be used on the left of \"**\" without parentheses\n")
	expectParseErrorTS(t, "<T>", "<stdin>:1:3: error: Unexpected end of file\n")
}

func TestTSArrow(t *testing.T) {
	expectPrintedTS(t, "(a: number) => a", "(a: number) => a")
	expectPrintedTS(t, "(a?: number) => a", "(a?: number) => a")
	expectPrintedTS(t, "(x: number): string => x", "(x: number): string => x")
	expectPrintedTS(t, "<T>(x: T) => x", "<T>(x: T) => x")
	expectPrintedTS(t, "async <T>(x: T) => x", "async <T>(x: T) => x")

	// The ":" belongs to the conditional
	expectPrintedTS(t, "a ? (b) : c => d", "a ? b : (c) => d")

	expectParseErrorTS(t, "(a: number)", "<stdin>:1:11: error: Expected \"=>\" but found end of file\n")
}

func TestTSClass(t *testing.T) {
	expectPrintedTS(t, "class { [key: string]: any }", "class {}")
	expectPrintedTS(t, "class { a?: number; b!: string }", "class {\n  a: number;\n  b: string;\n}")
	expectParseErrorTS(t, "class { constructor(public a, private readonly b) {} }", "")
	expectParseErrorTS(t, "class { declare a: T; private b = 1; static readonly c }", "")
	expectParseErrorTS(t, "class A<T> extends B<T> implements C<T> {}", "")
}

func TestTSX(t *testing.T) {
	// In TSX a single type parameter looks like an element
	expectParseErrorTSX(t, "<T>x", "<stdin>:1:4: error: Unexpected end of file before a closing \"T\" tag\n")
	expectPrintedTSX(t, "<T,>(x) => x", "<T,>(x) => x")
	expectPrintedTSX(t, "<T extends U>(x) => x", "<T extends U>(x) => x")
	expectParseErrorTSX(t, "<a>{b as T}</a>", "")
}
