package js_parser

import (
	"testing"

	"github.com/esexpr/esexpr/internal/config"
	"github.com/esexpr/esexpr/internal/js_printer"
	"github.com/esexpr/esexpr/internal/logger"
	"github.com/esexpr/esexpr/internal/test"
)

func expectParseErrorCommon(t *testing.T, contents string, expected string, options config.Options) {
	t.Helper()
	t.Run(contents, func(t *testing.T) {
		t.Helper()
		log := logger.NewDeferLog()
		ParseExpression(log, test.SourceForTest(contents), OptionsFromConfig(&options))
		msgs := log.Done()
		text := ""
		for _, msg := range msgs {
			text += msg.String(logger.OutputOptions{}, logger.TerminalInfo{})
		}
		test.AssertEqualWithDiff(t, text, expected)
	})
}

func expectParseError(t *testing.T, contents string, expected string) {
	t.Helper()
	expectParseErrorCommon(t, contents, expected, config.Options{})
}

func expectParseErrorAwait(t *testing.T, contents string, expected string) {
	t.Helper()
	expectParseErrorCommon(t, contents, expected, config.Options{
		AllowAwait: true,
	})
}

func expectParseErrorYield(t *testing.T, contents string, expected string) {
	t.Helper()
	expectParseErrorCommon(t, contents, expected, config.Options{
		AllowYield: true,
	})
}

func expectParseErrorJSX(t *testing.T, contents string, expected string) {
	t.Helper()
	expectParseErrorCommon(t, contents, expected, config.Options{
		JSX: config.JSXOptions{Parse: true},
	})
}

func expectParseErrorProgramCommon(t *testing.T, contents string, expected string, options config.Options) {
	t.Helper()
	t.Run(contents, func(t *testing.T) {
		t.Helper()
		log := logger.NewDeferLog()
		ParseProgram(log, test.SourceForTest(contents), OptionsFromConfig(&options))
		msgs := log.Done()
		text := ""
		for _, msg := range msgs {
			text += msg.String(logger.OutputOptions{}, logger.TerminalInfo{})
		}
		test.AssertEqualWithDiff(t, text, expected)
	})
}

func expectParseErrorProgram(t *testing.T, contents string, expected string) {
	t.Helper()
	expectParseErrorProgramCommon(t, contents, expected, config.Options{})
}

func expectPrintedCommon(t *testing.T, contents string, expected string, options config.Options) {
	t.Helper()
	t.Run(contents, func(t *testing.T) {
		t.Helper()
		log := logger.NewDeferLog()
		expr, err := ParseExpression(log, test.SourceForTest(contents), OptionsFromConfig(&options))
		msgs := log.Done()
		text := ""
		for _, msg := range msgs {
			if msg.Kind != logger.Warning {
				text += msg.String(logger.OutputOptions{}, logger.TerminalInfo{})
			}
		}
		test.AssertEqualWithDiff(t, text, "")
		if err != nil {
			t.Fatal("Parse error")
		}
		test.AssertEqualWithDiff(t, js_printer.Print(expr, js_printer.Options{}), expected)
	})
}

func expectPrinted(t *testing.T, contents string, expected string) {
	t.Helper()
	expectPrintedCommon(t, contents, expected, config.Options{})
}

func expectPrintedAwait(t *testing.T, contents string, expected string) {
	t.Helper()
	expectPrintedCommon(t, contents, expected, config.Options{
		AllowAwait: true,
	})
}

func expectPrintedYield(t *testing.T, contents string, expected string) {
	t.Helper()
	expectPrintedCommon(t, contents, expected, config.Options{
		AllowYield: true,
	})
}

func expectPrintedProgram(t *testing.T, contents string, expected string) {
	t.Helper()
	t.Run(contents, func(t *testing.T) {
		t.Helper()
		log := logger.NewDeferLog()
		program, err := ParseProgram(log, test.SourceForTest(contents), OptionsFromConfig(&config.Options{}))
		msgs := log.Done()
		text := ""
		for _, msg := range msgs {
			if msg.Kind != logger.Warning {
				text += msg.String(logger.OutputOptions{}, logger.TerminalInfo{})
			}
		}
		test.AssertEqualWithDiff(t, text, "")
		if err != nil {
			t.Fatal("Parse error")
		}
		test.AssertEqualWithDiff(t, js_printer.PrintProgram(program, js_printer.Options{}), expected)
	})
}

func TestPrecedence(t *testing.T) {
	expectPrinted(t, "a + b * c", "a + b * c")
	expectPrinted(t, "(a + b) * c", "(a + b) * c")
	expectPrinted(t, "a * (b + c)", "a * (b + c)")
	expectPrinted(t, "a - b - c", "a - b - c")
	expectPrinted(t, "a - (b - c)", "a - (b - c)")
	expectPrinted(t, "a ** b ** c", "a ** b ** c")
	expectPrinted(t, "(a ** b) ** c", "(a ** b) ** c")
	expectPrinted(t, "a < b > c", "a < b > c")
	expectPrinted(t, "a >> b >>> c", "a >> b >>> c")
	expectPrinted(t, "a >= b", "a >= b")
	expectPrinted(t, "a >>= b", "a >>= b")
	expectPrinted(t, "a >>>= b", "a >>>= b")
	expectPrinted(t, "a || b && c", "a || b && c")
	expectPrinted(t, "(a || b) && c", "(a || b) && c")
	expectPrinted(t, "a | b ^ c & d", "a | b ^ c & d")
	expectPrinted(t, "a == b != c === d !== e", "a == b != c === d !== e")
	expectPrinted(t, "a instanceof b in c", "a instanceof b in c")
	expectPrinted(t, "typeof a + b", "typeof a + b")
	expectPrinted(t, "a, b, c", "a, b, c")

	expectParseError(t, "-a ** b", "<stdin>:1:3: error: Unary operators cannot be used on the left of \"**\" without parentheses\n")
	expectParseError(t, "typeof a ** b", "<stdin>:1:9: error: Unary operators cannot be used on the left of \"**\" without parentheses\n")
	expectParseError(t, "(-a) ** b", "")
	expectParseError(t, "++a ** b", "")
	expectParseError(t, "a++ ** b", "")
	expectParseErrorAwait(t, "await a ** b", "<stdin>:1:8: error: Unary operators cannot be used on the left of \"**\" without parentheses\n")

	expectParseError(t, "a ?? b || c", "<stdin>:1:2: error: Cannot use \"||\" with \"??\" without parentheses\n")
	expectParseError(t, "a || b ?? c", "<stdin>:1:7: error: Cannot use \"||\" with \"??\" without parentheses\n")
	expectParseError(t, "a && b ?? c", "<stdin>:1:7: error: Cannot use \"&&\" with \"??\" without parentheses\n")
	expectParseError(t, "(a || b) ?? c", "")
	expectParseError(t, "a ?? (b && c)", "")
}

func TestConditional(t *testing.T) {
	expectPrinted(t, "a ? b : c ? d : e", "a ? b : c ? d : e")
	expectPrinted(t, "a ? b ? c : d : e", "a ? b ? c : d : e")
	expectPrinted(t, "a || b ? c : d", "a || b ? c : d")
	expectPrinted(t, "a ? b : c = d", "a ? b : c = d")

	expectParseError(t, "a ? b, c : d", "<stdin>:1:5: error: Expected \":\" but found \",\"\n")
	expectParseError(t, "a ? b", "<stdin>:1:5: error: Expected \":\" but found end of file\n")

	// The consequent always allows "in" but the alternate inherits it
	expectParseErrorProgram(t, "for (a ? b in c : d;;);", "")
	expectParseErrorProgram(t, "for (a ? b : c in d;;);", "<stdin>:1:5: error: Invalid assignment target\n")
}

func TestAssign(t *testing.T) {
	expectPrinted(t, "a = b = c", "a = b = c")
	expectPrinted(t, "a += b", "a += b")
	expectPrinted(t, "a ??= b", "a ??= b")
	expectPrinted(t, "a ||= b", "a ||= b")
	expectPrinted(t, "a &&= b", "a &&= b")
	expectPrinted(t, "a **= b", "a **= b")
	expectPrinted(t, "a.b = c", "a.b = c")
	expectPrinted(t, "a[b] = c", "a[b] = c")
	expectPrinted(t, "(a) = b", "a = b")

	expectParseError(t, "f() = c", "<stdin>:1:0: error: Invalid assignment target\n")
	expectParseError(t, "a + b = c", "<stdin>:1:0: error: Invalid assignment target\n")
	expectParseError(t, "a?.b = c", "<stdin>:1:0: error: Invalid assignment target\n")
	expectParseError(t, "a?.b += c", "<stdin>:1:0: error: Invalid assignment target\n")
	expectParseError(t, "this = a", "<stdin>:1:0: error: Invalid assignment target\n")
	expectParseError(t, "++f()", "<stdin>:1:2: error: Invalid assignment target\n")
	expectParseError(t, "f()++", "<stdin>:1:0: error: Invalid assignment target\n")
	expectParseError(t, "--a.b", "")
	expectParseError(t, "a[b]--", "")
}

func TestCoverGrammar(t *testing.T) {
	expectPrinted(t, "[a, b] = c", "[a, b] = c")
	expectPrinted(t, "[a, [b, c], ...d] = e", "[a, [b, c], ...d] = e")
	expectPrinted(t, "[a = 1] = b", "[a = 1] = b")
	expectPrinted(t, "[(a)] = b", "[a] = b")
	expectPrinted(t, "[a.b, c[d]] = e", "[a.b, c[d]] = e")
	expectPrinted(t, "({a, b: c} = d)", "{ a, b: c } = d")
	expectPrinted(t, "({a = 1} = b)", "{ a = 1 } = b")
	expectPrinted(t, "[{a = 1}] = b", "[{ a = 1 }] = b")
	expectPrinted(t, "x = {a = 1} = y", "x = { a = 1 } = y")

	expectParseError(t, "[a, b] += c", "<stdin>:1:0: error: Invalid assignment target\n")
	expectParseError(t, "({a: 1} = b)", "<stdin>:1:5: error: Invalid assignment target\n")
	expectParseError(t, "[...a, b] = c", "<stdin>:1:5: error: Unexpected \",\" after rest pattern\n")
	expectParseError(t, "[...a, b]", "")
	expectParseError(t, "({...a, b} = c)", "<stdin>:1:2: error: Invalid rest element\n")
	expectParseError(t, "({a() {}} = b)", "<stdin>:1:2: error: Invalid assignment target\n")
	expectParseError(t, "({get a() {}} = b)", "<stdin>:1:2: error: Invalid assignment target\n")
	expectParseError(t, "[([a])] = b", "<stdin>:1:2: error: Invalid assignment target\n")

	// A parenthesized literal is reported but the parse keeps going
	expectParseError(t, "({}) = a", "<stdin>:1:1: error: Invalid assignment target\n")
	expectParseError(t, "([a]) = b", "<stdin>:1:1: error: Invalid assignment target\n")

	// Shorthand initializers are only allowed once the literal becomes a pattern
	expectParseError(t, "({a = 1})", "<stdin>:1:4: error: Unexpected \"=\"\n")
	expectParseError(t, "x = {a = 1}", "<stdin>:1:7: error: Unexpected \"=\"\n")
	expectParseError(t, "[{a = 1}]", "<stdin>:1:4: error: Unexpected \"=\"\n")
	expectParseError(t, "({a = 1}) => a", "")
	expectParseErrorProgram(t, "for ({a = 1} of b);", "")
	expectParseErrorProgram(t, "for ({a = 1} in b);", "")
	expectParseErrorProgram(t, "for ([a] of b);", "")
}

func TestOptionalChain(t *testing.T) {
	expectPrinted(t, "a?.b", "a?.b")
	expectPrinted(t, "a?.b.c.d()", "a?.b.c.d()")
	expectPrinted(t, "a?.[b]?.(c)", "a?.[b]?.(c)")
	expectPrinted(t, "a.b?.c", "a.b?.c")
	expectPrinted(t, "a?.if", "a?.if")
	expectPrinted(t, "(a?.b).c", "(a?.b).c")
	expectPrinted(t, "a ? .5 : b", "a ? .5 : b")

	// These are reported but still produce a tree
	expectParseError(t, "new a?.b()", "<stdin>:1:0: error: Optional chaining cannot appear in the callee of new expressions\n")
	expectParseError(t, "new a?.b.c", "<stdin>:1:0: error: Optional chaining cannot appear in the callee of new expressions\n")
	expectParseError(t, "a?.b`c`", "<stdin>:1:4: error: Template literals cannot have an optional chain as a tag\n")
	expectParseError(t, "a?.b.c`d`", "<stdin>:1:6: error: Template literals cannot have an optional chain as a tag\n")
	expectParseError(t, "new (a?.b)()", "")
	expectParseError(t, "(a?.b)`c`", "")

	expectParseError(t, "new a?.()", "<stdin>:1:5: error: Optional chaining cannot appear in the callee of new expressions\n")
	expectParseError(t, "a?.", "<stdin>:1:1: error: Unexpected \"?.\"\n")
}

func TestNew(t *testing.T) {
	expectPrinted(t, "new a", "new a")
	expectPrinted(t, "new a()", "new a()")
	expectPrinted(t, "new a.b.c()", "new a.b.c()")
	expectPrinted(t, "new a()()", "new a()()")
	expectPrinted(t, "new (a())()", "new (a())()")
	expectPrinted(t, "new new a()()", "new new a()()")
	expectPrinted(t, "new a[b]()", "new a[b]()")
	expectPrinted(t, "new.target", "new.target")

	expectParseError(t, "new import('a')", "<stdin>:1:4: error: Cannot use new with import(...)\n")
	expectParseError(t, "new.foo", "<stdin>:1:4: error: Expected \"target\" but found \"foo\"\n")
	expectParseError(t, "new", "<stdin>:1:3: error: Unexpected end of file\n")
}

func TestImport(t *testing.T) {
	expectPrinted(t, "import.meta.url", "import.meta.url")
	expectPrinted(t, "import(a)", "import(a)")
	expectPrinted(t, "import(a, b,)", "import(a, b)")
	expectPrinted(t, "import.source(a)", "import.source(a)")
	expectPrinted(t, "import.defer(a)", "import.defer(a)")

	expectParseError(t, "import.foo", "<stdin>:1:7: error: Expected \"meta\" but found \"foo\"\n")
	expectParseError(t, "import", "<stdin>:1:6: error: Expected \"(\" but found end of file\n")
	expectParseError(t, "import.source('a', b)", "<stdin>:1:17: error: Expected \")\" but found \",\"\n")
}

func TestPostfixASI(t *testing.T) {
	expectPrinted(t, "a++", "a++")
	expectPrinted(t, "a--", "a--")
	expectParseError(t, "a\n++b", "<stdin>:2:0: error: Unexpected \"++\"\n")
	expectParseError(t, "a\n++", "<stdin>:2:0: error: Unexpected \"++\"\n")

	expectPrintedProgram(t, "a\n++b", "a;\n++b;\n")
	expectPrintedProgram(t, "a\n--\nb", "a;\n--b;\n")
	expectPrintedProgram(t, "a++\nb", "a++;\nb;\n")
}

func TestAwait(t *testing.T) {
	// Outside an async function "await" is only an operator when an operand
	// follows it on the same line
	expectPrinted(t, "await", "await")
	expectPrinted(t, "await(x)", "await(x)")
	expectPrinted(t, "await[x]", "await[x]")
	expectPrinted(t, "await / x", "await / x")
	expectPrinted(t, "await * x", "await * x")
	expectPrinted(t, "(await) => x", "(await) => x")
	expectPrinted(t, "async () => await x", "async () => await x")
	expectParseError(t, "await x", "<stdin>:1:0: error: \"await\" can only be used inside an \"async\" function\n")
	expectParseError(t, "await -x", "<stdin>:1:0: error: \"await\" can only be used inside an \"async\" function\n")
	expectParseError(t, "await of", "<stdin>:1:6: error: Unexpected \"of\"\n")
	expectParseErrorTS(t, "await of", "<stdin>:1:0: error: \"await\" can only be used inside an \"async\" function\n")
	expectParseError(t, "await\nx", "<stdin>:2:0: error: Unexpected \"x\"\n")
	expectParseError(t, "function f() { await x }", "<stdin>:1:15: error: \"await\" can only be used inside an \"async\" function\n")
	expectParseError(t, "async await => 1", "<stdin>:1:6: error: Cannot use \"await\" as an identifier here\n")

	expectPrintedAwait(t, "await x", "await x")
	expectPrintedAwait(t, "await (x)", "await x")
	expectPrintedAwait(t, "await await x", "await await x")
	expectParseErrorAwait(t, "await", "<stdin>:1:5: error: Unexpected end of file\n")
	expectParseErrorAwait(t, "x => await y", "<stdin>:1:5: error: \"await\" can only be used inside an \"async\" function\n")
	expectParseErrorAwait(t, "async () => { var await }", "<stdin>:1:18: error: Cannot use \"await\" as an identifier here\n")
	expectParseErrorAwait(t, "class { a = await }", "")
}

func TestYield(t *testing.T) {
	expectPrinted(t, "yield", "yield")
	expectPrinted(t, "yield * x", "yield * x")
	expectParseError(t, "yield x", "<stdin>:1:0: error: Cannot use \"yield\" outside a generator function\n")
	expectParseError(t, "yield 1", "<stdin>:1:0: error: Cannot use \"yield\" outside a generator function\n")
	expectParseError(t, "yield\nx", "<stdin>:2:0: error: Unexpected \"x\"\n")
	expectParseError(t, "function* g() { var yield }", "<stdin>:1:20: error: Cannot use \"yield\" as an identifier here\n")

	expectPrintedYield(t, "yield", "yield")
	expectPrintedYield(t, "yield* a", "yield* a")
	expectPrintedYield(t, "yield a, b", "yield a, b")
	expectPrintedYield(t, "x = yield y", "x = yield y")
	expectPrintedYield(t, "[yield]", "[yield]")
	expectPrintedYield(t, "f(yield)", "f(yield)")
	expectParseErrorYield(t, "yield => 1", "<stdin>:1:0: error: Cannot use \"yield\" as an identifier here\n")
	expectParseErrorYield(t, "() => yield", "")
}

func TestArrow(t *testing.T) {
	expectPrinted(t, "a => b", "(a) => b")
	expectPrinted(t, "(a) => b", "(a) => b")
	expectPrinted(t, "() => {}", "() => {}")
	expectPrinted(t, "(...a) => a", "(...a) => a")
	expectPrinted(t, "([a, b], {c}) => a", "([a, b], { c }) => a")
	expectPrinted(t, "(a = 1, [b] = c) => a", "(a = 1, [b] = c) => a")
	expectPrinted(t, "({a = 1}) => a", "({ a = 1 }) => a")
	expectPrinted(t, "a => b, c", "(a) => b, c")
	expectPrinted(t, "a => b ? c : d", "(a) => b ? c : d")
	expectPrinted(t, "a => ({})", "(a) => ({})")
	expectPrinted(t, "a => { return b }", "(a) => {\n  return b;\n}")

	// Not arrow functions
	expectPrinted(t, "(a, b)", "a, b")
	expectPrinted(t, "(a = 1)", "a = 1")
	expectPrinted(t, "(a, {b: c})", "a, { b: c }")

	expectPrinted(t, "async => 1", "(async) => 1")
	expectPrinted(t, "async a => b", "async (a) => b")
	expectPrinted(t, "async (a) => b", "async (a) => b")
	expectPrinted(t, "async(a)", "async(a)")
	expectPrinted(t, "async (a, ...b)", "async(a, ...b)")
	expectPrinted(t, "async (...a)", "async(...a)")
	expectPrinted(t, "async", "async")

	expectParseError(t, "()", "<stdin>:1:1: error: Unexpected \")\"\n")
	expectParseError(t, "(a,)", "<stdin>:1:3: error: Unexpected \")\"\n")
	expectParseError(t, "(...a)", "<stdin>:1:6: error: Expected \"=>\" but found end of file\n")
	expectParseError(t, "(...a, b) => c", "<stdin>:1:5: error: Expected \")\" but found \",\"\n")
	expectParseError(t, "() \n => a", "<stdin>:2:1: error: Unexpected newline before \"=>\"\n")
	expectParseError(t, "a \n => b", "<stdin>:2:1: error: Unexpected newline before \"=>\"\n")
	expectParseError(t, "(a, b) \n => c", "<stdin>:2:1: error: Unexpected \"=>\"\n")
	expectParseError(t, "async \n x => y", "<stdin>:2:1: error: Unexpected \"x\"\n")

	// A failed arrow head must not leave its diagnostics behind
	expectParseError(t, "(a, {b = 1})", "<stdin>:1:7: error: Unexpected \"=\"\n")
	expectParseError(t, "(a, {b = 1}) => b", "")
}

func TestPrivateIn(t *testing.T) {
	expectPrinted(t, "#x in y", "#x in y")
	expectPrinted(t, "#x in y && z", "#x in y && z")
	expectParseError(t, "#x", "<stdin>:1:2: error: Expected \"in\" but found end of file\n")
	expectParseError(t, "a + #x in y", "<stdin>:1:4: error: Unexpected \"#x\"\n")
	expectParseErrorProgram(t, "for (#x in y;;);", "<stdin>:1:5: error: Unexpected \"#x\"\n")
}

func TestPrimary(t *testing.T) {
	expectPrinted(t, "0x10", "0x10")
	expectPrinted(t, "1_000", "1_000")
	expectPrinted(t, "10n", "10n")
	expectPrinted(t, "null", "null")
	expectPrinted(t, "true", "true")
	expectPrinted(t, "this", "this")
	expectPrinted(t, "super.a", "super.a")
	expectPrinted(t, "super[a]", "super[a]")
	expectPrinted(t, "[a, , b]", "[a, , b]")

	expectParseError(t, "super", "<stdin>:1:0: error: Unexpected \"super\"\n")
	expectParseError(t, "super.#a", "<stdin>:1:6: error: Expected identifier but found \"#a\"\n")
	expectParseError(t, "\\u0069f", "<stdin>:1:0: error: Keywords cannot contain escape characters\n")
	expectParseError(t, "a.", "<stdin>:1:2: error: Expected identifier but found end of file\n")
	expectParseError(t, "f(a", "<stdin>:1:3: error: Expected \")\" but found end of file\n")
	expectParseError(t, "", "<stdin>:1:0: error: Unexpected end of file\n")
	expectParseError(t, "a b", "<stdin>:1:2: error: Unexpected \"b\"\n")
}

func TestTemplate(t *testing.T) {
	expectPrinted(t, "`a${b}c`", "`a${b}c`")
	expectPrinted(t, "tag`\\u`", "tag`\\u`")
	expectParseError(t, "`\\u`", "<stdin>:1:1: error: Invalid escape sequence in template literal\n")
	expectParseError(t, "`a${b}\\u`", "<stdin>:1:6: error: Invalid escape sequence in template literal\n")
}

func TestRegExp(t *testing.T) {
	expectPrinted(t, "a = /=/", "a = /=/")
	expectPrinted(t, "/[/]/", "/[/]/")
	expectParseError(t, "/a/uv", "<stdin>:1:3: error: Regular expression flags \"u\" and \"v\" cannot be used together\n")
}

func TestObject(t *testing.T) {
	expectPrinted(t, "x = {get: 1, set: 2, async: 3, static: 4}", "x = { get: 1, set: 2, async: 3, static: 4 }")
	expectPrinted(t, "x = {get, set}", "x = { get, set }")
	expectPrinted(t, "x = {if: 1}", "x = { if: 1 }")

	expectParseError(t, "x = {#a: 1}", "<stdin>:1:5: error: Unexpected \"#a\"\n")
	expectParseError(t, "x = { a b }", "<stdin>:1:8: error: Expected \"}\" but found \"b\"\n")
	expectParseError(t, "x = { if }", "<stdin>:1:9: error: Expected \":\" but found \"}\"\n")
}

func TestClass(t *testing.T) {
	expectPrinted(t, "class { get }", "class {\n  get;\n}")
	expectPrinted(t, "class { static }", "class {\n  static;\n}")
	expectPrinted(t, "class { async\n a() {} }", "class {\n  async;\n  a() {}\n}")
	expectPrinted(t, "class { *a() {} }", "class {\n  *a() {}\n}")

	expectParseError(t, "class { a b }", "<stdin>:1:10: error: Expected \";\" but found \"b\"\n")
	expectParseError(t, "class { static { return } }", "<stdin>:1:17: error: A return statement cannot be used here\n")
	expectParseError(t, "class { #a; b() { return #a in this } }", "")
	expectParseError(t, "class { @a [b]() {} }", "")
}

func TestDecorators(t *testing.T) {
	expectPrinted(t, "@a @b.c class {}", "@a @b.c class {}")
	expectParseError(t, "@a?.b class {}", "<stdin>:1:2: error: Optional chaining is not allowed in decorators\n")
	expectParseError(t, "@a[b] class {}", "<stdin>:1:2: error: Expected \"class\" but found \"[\"\n")
	expectParseError(t, "@a", "<stdin>:1:2: error: Expected \"class\" but found end of file\n")
}

func TestJSX(t *testing.T) {
	expectParseErrorJSX(t, "<a></b>", "<stdin>:1:5: error: Expected closing \"b\" tag to match opening \"a\" tag\n")
	expectParseErrorJSX(t, "<a>", "<stdin>:1:3: error: Unexpected end of file before a closing \"a\" tag\n")
	expectParseErrorJSX(t, "<a b />", "")
	expectParseErrorJSX(t, "<a {...b} c={d} />", "")
	expectParseErrorJSX(t, "<a.b></a.c>", "<stdin>:1:7: error: Expected closing \"a.c\" tag to match opening \"a.b\" tag\n")
	expectParseErrorJSX(t, "<a>{b}</a>", "")
	expectParseError(t, "<a />", "<stdin>:1:0: error: Unexpected \"<\"\n")
}

func TestWarnings(t *testing.T) {
	expectParseError(t, "a === NaN", "<stdin>:1:6: warning: Comparison with NaN using the \"===\" operator here is always false [equals-nan]\n")
	expectParseError(t, "NaN !== a", "<stdin>:1:0: warning: Comparison with NaN using the \"!==\" operator here is always true [equals-nan]\n")
	expectParseError(t, "a == -0", "<stdin>:1:5: warning: Comparison with -0 using the \"==\" operator will also match 0 [equals-negative-zero]\n")
	expectParseError(t, "a === []", "<stdin>:1:6: warning: Comparison using the \"===\" operator here is always false [equals-new-object]\n")
	expectParseError(t, "a == []", "")
	expectParseError(t, "typeof a === 'strng'",
		"<stdin>:1:13: warning: The \"typeof\" operator will never evaluate to \"strng\" (did you mean \"string\"?) [impossible-typeof]\n")
	expectParseError(t, "typeof a == 'null'", "<stdin>:1:12: warning: The \"typeof\" operator will never evaluate to \"null\" [impossible-typeof]\n")
	expectParseError(t, "typeof a == 'object'", "")
	expectParseError(t, "!a in b", "<stdin>:1:0: warning: Suspicious use of the \"!\" operator inside the \"in\" operator [suspicious-boolean-not]\n")
	expectParseError(t, "!a instanceof b", "<stdin>:1:0: warning: Suspicious use of the \"!\" operator inside the \"instanceof\" operator [suspicious-boolean-not]\n")
	expectParseError(t, "(!a) in b", "")
	expectParseError(t, "a <!-- b", "<stdin>:1:2: warning: Treating \"<!--\" as the start of a legacy HTML single-line comment [html-comment-in-js]\n")
}

func TestStatements(t *testing.T) {
	expectPrintedProgram(t, "let [a] = b", "let [a] = b;\n")
	expectPrintedProgram(t, "let\nx = 1", "let x = 1;\n")
	expectPrintedProgram(t, "return 1", "return 1;\n")

	expectParseErrorProgram(t, "throw\na", "<stdin>:2:0: error: Unexpected newline after \"throw\"\n")
	expectParseErrorProgram(t, "for (let a = 1 of b);", "<stdin>:1:13: error: Loop variables cannot have initializers\n")
	expectParseErrorProgram(t, "for (let a = 1 in b);", "<stdin>:1:13: error: Loop variables cannot have initializers\n")
	expectParseErrorProgram(t, "for (var a = 1 in b);", "")
	expectParseErrorProgram(t, "for (let a, b of c);", "<stdin>:1:5: error: Only one variable can be declared in a for-in or for-of loop\n")
	expectParseErrorProgram(t, "for await (x of y);", "<stdin>:1:4: error: Cannot use \"await\" outside an async function\n")
	expectParseErrorProgram(t, "for (a + b of c);", "<stdin>:1:5: error: Invalid assignment target\n")
	expectParseErrorProgram(t, "{ a", "<stdin>:1:3: error: Expected \"}\" but found end of file\n")
	expectParseErrorProgram(t, "if (a) b else c", "<stdin>:1:9: error: Expected \";\" but found \"else\"\n")
	expectParseErrorProgramCommon(t, "for await (;;);", "<stdin>:1:11: error: Expected \"of\" but found \";\"\n", config.Options{AllowAwait: true})
	expectParseError(t, "() => { return }", "")
}
