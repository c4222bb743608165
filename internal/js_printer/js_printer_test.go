package js_printer

import (
	"testing"

	"github.com/esexpr/esexpr/internal/config"
	"github.com/esexpr/esexpr/internal/js_parser"
	"github.com/esexpr/esexpr/internal/logger"
	"github.com/esexpr/esexpr/internal/test"
)

func expectPrintedCommon(t *testing.T, name string, contents string, expected string, options config.Options, printOptions Options) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		t.Helper()
		log := logger.NewDeferLog()
		expr, err := js_parser.ParseExpression(log, test.SourceForTest(contents), js_parser.OptionsFromConfig(&options))
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
		test.AssertEqualWithDiff(t, Print(expr, printOptions), expected)
	})
}

func expectPrinted(t *testing.T, contents string, expected string) {
	t.Helper()
	expectPrintedCommon(t, contents, contents, expected, config.Options{}, Options{})
}

func expectPrintedMinify(t *testing.T, contents string, expected string) {
	t.Helper()
	expectPrintedCommon(t, contents+" [minified]", contents, expected, config.Options{}, Options{
		MinifyWhitespace: true,
	})
}

func expectPrintedAwait(t *testing.T, contents string, expected string) {
	t.Helper()
	expectPrintedCommon(t, contents+" [await]", contents, expected, config.Options{
		AllowAwait: true,
	}, Options{})
}

func expectPrintedTS(t *testing.T, contents string, expected string) {
	t.Helper()
	expectPrintedCommon(t, contents+" [ts]", contents, expected, config.Options{
		TS: config.TSOptions{Parse: true},
	}, Options{})
}

func expectPrintedJSX(t *testing.T, contents string, expected string) {
	t.Helper()
	expectPrintedCommon(t, contents+" [jsx]", contents, expected, config.Options{
		JSX: config.JSXOptions{Parse: true},
	}, Options{})
}

func expectPrintedProgramCommon(t *testing.T, name string, contents string, expected string, printOptions Options) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		t.Helper()
		log := logger.NewDeferLog()
		program, err := js_parser.ParseProgram(log, test.SourceForTest(contents), js_parser.OptionsFromConfig(&config.Options{}))
		if err != nil {
			t.Fatal(err)
		}
		log.Done()
		test.AssertEqualWithDiff(t, PrintProgram(program, printOptions), expected)
	})
}

func expectPrintedProgram(t *testing.T, contents string, expected string) {
	t.Helper()
	expectPrintedProgramCommon(t, contents, contents, expected, Options{})
}

func expectPrintedProgramMinify(t *testing.T, contents string, expected string) {
	t.Helper()
	expectPrintedProgramCommon(t, contents+" [minified]", contents, expected, Options{MinifyWhitespace: true})
}

func TestBinary(t *testing.T) {
	expectPrinted(t, "a + b", "a + b")
	expectPrinted(t, "(a + b) * c", "(a + b) * c")
	expectPrinted(t, "a + (b * c)", "a + b * c")
	expectPrinted(t, "a - (b - c)", "a - (b - c)")
	expectPrinted(t, "(a - b) - c", "a - b - c")
	expectPrinted(t, "a ** (b ** c)", "a ** b ** c")
	expectPrinted(t, "(a ** b) ** c", "(a ** b) ** c")
	expectPrinted(t, "(-a) ** b", "(-a) ** b")
	expectPrinted(t, "a in b", "a in b")
	expectPrinted(t, "a instanceof (b || c)", "a instanceof (b || c)")
	expectPrinted(t, "#x in y", "#x in y")
}

func TestNullish(t *testing.T) {
	expectPrinted(t, "a ?? (b || c)", "a ?? (b || c)")
	expectPrinted(t, "(a && b) ?? c", "(a && b) ?? c")
	expectPrinted(t, "(a ?? b) || c", "(a ?? b) || c")
	expectPrinted(t, "a && (b ?? c)", "a && (b ?? c)")
	expectPrinted(t, "a ?? b ?? c", "a ?? b ?? c")
	expectPrinted(t, "a ?? (b ?? c)", "a ?? (b ?? c)")
}

func TestConditional(t *testing.T) {
	expectPrinted(t, "a ? b : c ? d : e", "a ? b : c ? d : e")
	expectPrinted(t, "(a ? b : c) ? d : e", "(a ? b : c) ? d : e")
	expectPrinted(t, "a ? (b, c) : d", "a ? (b, c) : d")
	expectPrinted(t, "(a = b) ? c : d", "(a = b) ? c : d")
	expectPrinted(t, "a ? b = c : d = e", "a ? b = c : d = e")
}

func TestAssign(t *testing.T) {
	expectPrinted(t, "a = b = c", "a = b = c")
	expectPrinted(t, "a += b || c", "a += b || c")
	expectPrinted(t, "[a, b] = c", "[a, b] = c")
	expectPrinted(t, "[a = 1, , ...b] = c", "[a = 1, , ...b] = c")
	expectPrinted(t, "({a, b: [c], ...d} = e)", "{ a, b: [c], ...d } = e")
	expectPrinted(t, "a.b[c] = d", "a.b[c] = d")
}

func TestComma(t *testing.T) {
	expectPrinted(t, "a, b", "a, b")
	expectPrinted(t, "f((a, b))", "f((a, b))")
	expectPrinted(t, "[(a, b)]", "[(a, b)]")
	expectPrinted(t, "x = (a, b)", "x = (a, b)")
}

func TestArray(t *testing.T) {
	expectPrinted(t, "[]", "[]")
	expectPrinted(t, "[...a, ...b]", "[...a, ...b]")
	expectPrinted(t, "[a, , b]", "[a, , b]")
	expectPrinted(t, "[a, ,]", "[a, ,]")
}

func TestUnary(t *testing.T) {
	expectPrinted(t, "-(-a)", "- -a")
	expectPrinted(t, "+(+a)", "+ +a")
	expectPrinted(t, "-(--a)", "- --a")
	expectPrinted(t, "a + +b", "a + +b")
	expectPrinted(t, "typeof a", "typeof a")
	expectPrinted(t, "void 0", "void 0")
	expectPrinted(t, "!(a && b)", "!(a && b)")
	expectPrinted(t, "(a++) + b", "a++ + b")
	expectPrinted(t, "-(a ** b)", "-(a ** b)")

	expectPrintedMinify(t, "a + +b", "a+ +b")
	expectPrintedMinify(t, "a - -b", "a- -b")
	expectPrintedMinify(t, "a + ++b", "a+ ++b")
	expectPrintedMinify(t, "a++ + b", "a+++b")
	expectPrintedMinify(t, "a-- > b", "a-- >b")
	expectPrintedMinify(t, "-(-a)", "- -a")
	expectPrintedMinify(t, "typeof a", "typeof a")
	expectPrintedMinify(t, "typeof (a)", "typeof a")
	expectPrintedMinify(t, "void 0", "void 0")
}

func TestAwait(t *testing.T) {
	expectPrintedAwait(t, "await a + b", "await a + b")
	expectPrintedAwait(t, "await (a + b)", "await (a + b)")
	expectPrintedAwait(t, "(await a) ** b", "(await a) ** b")
	expectPrintedAwait(t, "-(await a)", "-await a")
	expectPrintedAwait(t, "(await a).b", "(await a).b")
}

func TestNew(t *testing.T) {
	expectPrinted(t, "new a", "new a")
	expectPrinted(t, "new a()", "new a()")
	expectPrinted(t, "new a.b()", "new a.b()")
	expectPrinted(t, "new (a())()", "new (a())()")
	expectPrinted(t, "new (a.b())()", "new (a.b())()")
	expectPrinted(t, "new (a().b)()", "new (a()).b()")
	expectPrinted(t, "(new a).b", "new a().b")
	expectPrinted(t, "(new a)()", "new a()()")
	expectPrinted(t, "new new a()()", "new new a()()")
	expectPrinted(t, "new.target", "new.target")
	expectPrinted(t, "import.meta", "import.meta")
}

func TestCall(t *testing.T) {
	expectPrinted(t, "a()", "a()")
	expectPrinted(t, "a(b, ...c)", "a(b, ...c)")
	expectPrinted(t, "a.b(c)[d]()", "a.b(c)[d]()")
	expectPrinted(t, "(a + b)()", "(a + b)()")
	expectPrinted(t, "(() => {})()", "(() => {})()")
	expectPrinted(t, "import('a')", "import(\"a\")")
	expectPrinted(t, "import('a', { with: b })", "import(\"a\", { with: b })")
	expectPrinted(t, "import.source('a')", "import.source(\"a\")")
	expectPrinted(t, "import.defer('a')", "import.defer(\"a\")")
}

func TestMember(t *testing.T) {
	expectPrinted(t, "1..toString()", "1..toString()")
	expectPrinted(t, "1 .toString()", "1 .toString()")
	expectPrinted(t, "1.5.toString()", "1.5.toString()")
	expectPrinted(t, "a[b][c]", "a[b][c]")
	expectPrinted(t, "a.if", "a.if")
	expectPrinted(t, "(a + b).c", "(a + b).c")
}

func TestOptionalChain(t *testing.T) {
	expectPrinted(t, "a?.b.c", "a?.b.c")
	expectPrinted(t, "a?.[b]", "a?.[b]")
	expectPrinted(t, "a?.()", "a?.()")
	expectPrinted(t, "a?.b()", "a?.b()")
	expectPrinted(t, "(a?.b).c", "(a?.b).c")
	expectPrinted(t, "(a?.b)()", "(a?.b)()")
	expectPrinted(t, "(a?.b)[c]", "(a?.b)[c]")
	expectPrinted(t, "new (a?.b)()", "new (a?.b)()")
	expectPrinted(t, "a?.b + c", "a?.b + c")
	expectPrinted(t, "!a?.b", "!a?.b")
}

func TestString(t *testing.T) {
	expectPrinted(t, "'a'", "\"a\"")
	expectPrinted(t, "'a\\nb'", "\"a\\nb\"")
	expectPrinted(t, "'\"'", "\"\\\"\"")
}

func TestTemplate(t *testing.T) {
	expectPrinted(t, "`a`", "`a`")
	expectPrinted(t, "`a${b}c${d}`", "`a${b}c${d}`")
	expectPrinted(t, "`a\\nb`", "`a\\nb`")
	expectPrinted(t, "tag`a${b}`", "tag`a${b}`")
	expectPrinted(t, "a.b`c`", "a.b`c`")
	expectPrinted(t, "(a + b)`c`", "(a + b)`c`")
	expectPrinted(t, "new a`b`", "new a`b`")
}

func TestRegExp(t *testing.T) {
	expectPrinted(t, "a = /x/g", "a = /x/g")
	expectPrintedMinify(t, "a / /x/", "a/ /x/")
	expectPrintedMinify(t, "/x/ in a", "/x/ in a")
}

func TestObject(t *testing.T) {
	expectPrinted(t, "x = {}", "x = {}")
	expectPrinted(t, "x = {a, b: c, [d]: e, ...f}", "x = { a, b: c, [d]: e, ...f }")
	expectPrinted(t, "x = {'a': 1, 2: b}", "x = { \"a\": 1, 2: b }")
	expectPrinted(t, "x = {a() {}, get b() {}, set c(v) {}}", "x = { a() {}, get b() {}, set c(v) {} }")
	expectPrinted(t, "x = {async a() {}, *b() {}, async *c() {}}", "x = { async a() {}, *b() {}, async *c() {} }")
	expectPrintedMinify(t, "x = {a: 1, b}", "x={a:1,b}")
}

func TestArrow(t *testing.T) {
	expectPrinted(t, "a => a", "(a) => a")
	expectPrinted(t, "(a, b) => a", "(a, b) => a")
	expectPrinted(t, "(a = 1, ...b) => {}", "(a = 1, ...b) => {}")
	expectPrinted(t, "([a], {b}) => a", "([a], { b }) => a")
	expectPrinted(t, "() => ({})", "() => ({})")
	expectPrinted(t, "() => ({}).x", "() => ({}).x")
	expectPrinted(t, "() => (a, b)", "() => (a, b)")
	expectPrinted(t, "() => { return 1 }", "() => {\n  return 1;\n}")
	expectPrinted(t, "async (a) => a", "async (a) => a")
	expectPrinted(t, "async () => await a", "async () => await a")
	expectPrinted(t, "(a => a) || b", "((a) => a) || b")
	expectPrinted(t, "x = a => b => c", "x = (a) => (b) => c")

	expectPrintedMinify(t, "a => a", "a=>a")
	expectPrintedMinify(t, "(a, b) => a", "(a,b)=>a")
	expectPrintedMinify(t, "async a => a", "async a=>a")
}

func TestFunction(t *testing.T) {
	expectPrinted(t, "function() {}", "function() {}")
	expectPrinted(t, "function f(a, b = 1) { return a }", "function f(a, b = 1) {\n  return a;\n}")
	expectPrinted(t, "async function f() {}", "async function f() {}")
	expectPrinted(t, "function* g() { yield a; yield* b }", "function* g() {\n  yield a;\n  yield* b;\n}")
	expectPrinted(t, "function* g() { x = yield }", "function* g() {\n  x = yield;\n}")
	expectPrinted(t, "function* g() { (yield a) + b }", "function* g() {\n  (yield a) + b;\n}")
	expectPrintedMinify(t, "function f(a) { return a }", "function f(a){return a}")
	expectPrintedMinify(t, "function* g() {}", "function*g(){}")
}

func TestClass(t *testing.T) {
	expectPrinted(t, "class {}", "class {}")
	expectPrinted(t, "class A extends (B, C) {}", "class A extends (B, C) {}")
	expectPrinted(t, "class A extends B.C {}", "class A extends B.C {}")
	expectPrinted(t, "class A extends B { static x = 1; #y; get z() { return 1 } }",
		"class A extends B {\n  static x = 1;\n  #y;\n  get z() {\n    return 1;\n  }\n}")
	expectPrinted(t, "class { static { a } }", "class {\n  static {\n    a;\n  }\n}")
	expectPrinted(t, "class { accessor a = 1 }", "class {\n  accessor a = 1;\n}")
	expectPrinted(t, "class { #a() {} b() { return #a in this } }",
		"class {\n  #a() {}\n  b() {\n    return #a in this;\n  }\n}")
	expectPrinted(t, "@dec class {}", "@dec class {}")
	expectPrinted(t, "@a.b() class {}", "@a.b() class {}")
	expectPrinted(t, "@(a().b) class {}", "@(a().b) class {}")
	expectPrintedMinify(t, "class A { a = 1; b() {} }", "class A{a=1;b(){}}")
}

func TestJSX(t *testing.T) {
	expectPrintedJSX(t, "<div />", "<div />")
	expectPrintedJSX(t, "<div></div>", "<div></div>")
	expectPrintedJSX(t, "<a b=\"c\" d={e} f {...g}>text{h}</a>", "<a b=\"c\" d={e} f {...g}>text{h}</a>")
	expectPrintedJSX(t, "<a b='\"' />", "<a b='\"' />")
	expectPrintedJSX(t, "<></>", "<></>")
	expectPrintedJSX(t, "<>a<b />c</>", "<>a<b />c</>")
	expectPrintedJSX(t, "<a.b.c />", "<a.b.c />")
	expectPrintedJSX(t, "<a:b c:d=\"e\" />", "<a:b c:d=\"e\" />")
	expectPrintedJSX(t, "<a b=<c /> />", "<a b=<c /> />")
	expectPrintedJSX(t, "<a>{...b}</a>", "<a>{...b}</a>")
	expectPrintedJSX(t, "<a>{}</a>", "<a></a>")
}

func TestTypeScript(t *testing.T) {
	expectPrintedTS(t, "a as T", "a as T")
	expectPrintedTS(t, "a satisfies T", "a satisfies T")
	expectPrintedTS(t, "(a as T) + 1", "(a as T) + 1")
	expectPrintedTS(t, "a + b as T", "a + b as T")
	expectPrintedTS(t, "(a as T).b", "(a as T).b")
	expectPrintedTS(t, "x = a as T", "x = a as T")
	expectPrintedTS(t, "a!", "a!")
	expectPrintedTS(t, "a!.b!()", "a!.b!()")
	expectPrintedTS(t, "f<T>(x)", "f<T>(x)")
	expectPrintedTS(t, "f<T, U>", "f<T, U>")
	expectPrintedTS(t, "(f<T>)(x)", "(f<T>)(x)")
	expectPrintedTS(t, "new A<T>()", "new A<T>()")
	expectPrintedTS(t, "tag<T>`x`", "tag<T>`x`")
	expectPrintedTS(t, "a?.b<T>", "a?.b<T>")
	expectPrintedTS(t, "a?.b<T>?.c", "a?.b<T>?.c")
	expectPrintedTS(t, "a?.b<T>.c?.d", "a?.b<T>.c?.d")
	expectPrintedTS(t, "<T>a", "<T>a")
	expectPrintedTS(t, "(<T>a).b", "(<T>a).b")
	expectPrintedTS(t, "(x: number): string => x", "(x: number): string => x")
	expectPrintedTS(t, "(a?: number, ...b: T[]) => a", "(a?: number, ...b: T[]) => a")
	expectPrintedTS(t, "<T>(x: T) => x", "<T>(x: T) => x")
	expectPrintedTS(t, "function f<T>(this: T): void {}", "function f<T>(this: T): void {}")
	expectPrintedTS(t, "class A<T> extends B<T> implements C, D {}", "class A<T> extends B<T> implements C, D {}")
	expectPrintedTS(t, "class { a: number = 1 }", "class {\n  a: number = 1;\n}")
	expectPrintedTS(t, "a ? ((b): T => c) : d", "a ? ((b): T => c) : d")
}

func TestStatements(t *testing.T) {
	expectPrintedProgram(t, "a; b", "a;\nb;\n")
	expectPrintedProgram(t, "let x = 1, [y] = z", "let x = 1, [y] = z;\n")
	expectPrintedProgram(t, "const {a, b: c = 1, ...d} = e", "const { a, b: c = 1, ...d } = e;\n")
	expectPrintedProgram(t, "({a} = b)", "({ a } = b);\n")
	expectPrintedProgram(t, "(function() {})()", "(function() {})();\n")
	expectPrintedProgram(t, "({}).x", "({}).x;\n")
	expectPrintedProgram(t, "(class {})", "(class {});\n")
	expectPrintedProgram(t, "if (a) b; else c", "if (a)\n  b;\nelse\n  c;\n")
	expectPrintedProgram(t, "if (a) { b } else if (c) d", "if (a) {\n  b;\n} else if (c)\n  d;\n")
	expectPrintedProgram(t, "while (a) {}", "while (a) {}\n")
	expectPrintedProgram(t, "for (;;) {}", "for (;;) {}\n")
	expectPrintedProgram(t, "for (let i = 0; i < n; i++) {}", "for (let i = 0; i < n; i++) {}\n")
	expectPrintedProgram(t, "for ((a in b);;);", "for ((a in b);;)\n  ;\n")
	expectPrintedProgram(t, "for (x of y) {}", "for (x of y) {}\n")
	expectPrintedProgram(t, "for ((async) of x);", "for ((async) of x)\n  ;\n")
	expectPrintedProgram(t, "for (const [k, v] in o) {}", "for (const [k, v] in o) {}\n")
	expectPrintedProgram(t, "throw a", "throw a;\n")
	expectPrintedProgram(t, "#!/usr/bin/env node\nx", "#!/usr/bin/env node\nx;\n")

	expectPrintedProgramMinify(t, "a; b", "a;b")
	expectPrintedProgramMinify(t, "if (a) b; else c", "if(a)b;else c")
	expectPrintedProgramMinify(t, "let a = 1", "let a=1")
}
