package js_printer

import (
	"math"
	"strconv"
	"strings"

	"github.com/esexpr/esexpr/internal/helpers"
	"github.com/esexpr/esexpr/internal/js_ast"
)

type printer struct {
	js             []byte
	options        Options
	stmtStart      int
	arrowExprStart int
	forOfInitStart int
	prevOpEnd      int
	prevNumEnd     int
	prevRegExpEnd  int
	prevOp         js_ast.OpCode
	needsSemicolon bool
}

func (p *printer) print(text string) {
	p.js = append(p.js, text...)
}

func (p *printer) printIndent() {
	if p.options.MinifyWhitespace {
		return
	}
	for i := 0; i < p.options.Indent; i++ {
		p.print("  ")
	}
}

func (p *printer) printSpace() {
	if !p.options.MinifyWhitespace {
		p.print(" ")
	}
}

func (p *printer) printNewline() {
	if !p.options.MinifyWhitespace {
		p.print("\n")
	}
}

func (p *printer) printSpaceBeforeOperator(next js_ast.OpCode) {
	if p.prevOpEnd == len(p.js) {
		prev := p.prevOp

		// "+ + y" => "+ +y"
		// "+ ++ y" => "+ ++y"
		// "x + + y" => "x+ +y"
		// "x ++ + y" => "x+++y"
		// "x + ++ y" => "x+ ++y"
		// "-- >" => "-- >"
		// "< ! --" => "<! --"
		// "a! == b" => "a! ==b"
		if ((prev == js_ast.BinOpAdd || prev == js_ast.UnOpPos) && (next == js_ast.BinOpAdd || next == js_ast.UnOpPos || next == js_ast.UnOpPreInc)) ||
			((prev == js_ast.BinOpSub || prev == js_ast.UnOpNeg) && (next == js_ast.BinOpSub || next == js_ast.UnOpNeg || next == js_ast.UnOpPreDec)) ||
			(prev == js_ast.UnOpPostDec && next == js_ast.BinOpGt) ||
			(prev == js_ast.UnOpNot && next == js_ast.UnOpPreDec && len(p.js) > 1 && p.js[len(p.js)-2] == '<') ||
			(prev == js_ast.UnOpNot && (next == js_ast.BinOpAssign || next == js_ast.BinOpLooseEq || next == js_ast.BinOpStrictEq)) {
			p.print(" ")
		}
	}
}

func (p *printer) printSemicolonAfterStatement() {
	if !p.options.MinifyWhitespace {
		p.print(";\n")
	} else {
		p.needsSemicolon = true
	}
}

func (p *printer) printSemicolonIfNeeded() {
	if p.needsSemicolon {
		p.print(";")
		p.needsSemicolon = false
	}
}

func (p *printer) printSpaceBeforeIdentifier() {
	buffer := p.js
	n := len(buffer)
	if n > 0 && (js_ast.IsIdentifierContinue(rune(buffer[n-1])) || n == p.prevRegExpEnd) {
		p.print(" ")
	}
}

func (p *printer) printIdentifier(name string) {
	p.printSpaceBeforeIdentifier()
	p.print(name)
}

func (p *printer) printKeyword(text string) {
	p.printSpaceBeforeIdentifier()
	p.print(text)
}

func (p *printer) printNumber(e *js_ast.ENumber) {
	text := e.Raw
	if text == "" {
		text = formatNumber(e.Value)
	}
	p.printSpaceBeforeIdentifier()
	p.print(text)

	// "1.toString()" would be a syntax error
	if strings.Trim(text, "0123456789_") == "" {
		p.prevNumEnd = len(p.js)
	}
}

func formatNumber(value float64) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "Infinity"
	case math.IsInf(value, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(value, 'g', -1, 64)
}

func (p *printer) printType(typ *js_ast.TSType) {
	if typ != nil {
		p.print(":")
		p.printSpace()
		p.print(typ.Text)
	}
}

func (p *printer) printTypeArgs(args *js_ast.TSTypeArgs) {
	if args == nil {
		return
	}
	p.print("<")
	for i, typ := range args.Types {
		if i != 0 {
			p.print(",")
			p.printSpace()
		}
		p.print(typ.Text)
	}
	p.print(">")
}

func (p *printer) printDecorators(decorators []js_ast.Expr) {
	for _, decorator := range decorators {
		p.print("@")
		if isDecoratorWithoutParens(decorator, true) {
			p.printExpr(decorator, js_ast.LLowest, 0)
		} else {
			p.print("(")
			p.printExpr(decorator, js_ast.LLowest, 0)
			p.print(")")
		}
		p.print(" ")
	}
}

// "@a.b.c" and "@a.b()" don't need parentheses but "@a().b" does
func isDecoratorWithoutParens(expr js_ast.Expr, allowCall bool) bool {
	switch e := expr.Data.(type) {
	case *js_ast.EIdentifier, *js_ast.EParen:
		return true
	case *js_ast.EDot:
		return e.OptionalChain == js_ast.OptionalChainNone && isDecoratorWithoutParens(e.Target, false)
	case *js_ast.ECall:
		return allowCall && e.OptionalChain == js_ast.OptionalChainNone && isDecoratorWithoutParens(e.Target, false)
	}
	return false
}

func (p *printer) printBinding(binding js_ast.Binding) {
	switch b := binding.Data.(type) {
	case *js_ast.BMissing:

	case *js_ast.BIdentifier:
		p.printIdentifier(b.Name)

	case *js_ast.BArray:
		p.print("[")
		for i, item := range b.Items {
			if i != 0 {
				p.print(",")
				p.printSpace()
			}
			if b.HasSpread && i+1 == len(b.Items) {
				p.print("...")
			}
			p.printBinding(item.Binding)
			if item.DefaultOrNil.Data != nil {
				p.printDefault(item.DefaultOrNil)
			}

			// Make sure there's a comma after trailing missing items
			if _, ok := item.Binding.Data.(*js_ast.BMissing); ok && i+1 == len(b.Items) {
				p.print(",")
			}
		}
		p.print("]")

	case *js_ast.BObject:
		if len(b.Properties) == 0 {
			p.print("{}")
			break
		}
		p.print("{")
		p.printSpace()
		for i, property := range b.Properties {
			if i != 0 {
				p.print(",")
				p.printSpace()
			}
			if property.IsSpread {
				p.print("...")
				p.printBinding(property.Value)
				continue
			}
			if !property.IsShorthand {
				p.printPropertyKey(property.Key, property.IsComputed)
				p.print(":")
				p.printSpace()
			}
			p.printBinding(property.Value)
			if property.DefaultOrNil.Data != nil {
				p.printDefault(property.DefaultOrNil)
			}
		}
		p.printSpace()
		p.print("}")
	}
}

func (p *printer) printDefault(value js_ast.Expr) {
	p.printSpace()
	p.print("=")
	p.printSpace()
	p.printExpr(value, js_ast.LComma, 0)
}

func (p *printer) printPropertyKey(key js_ast.Expr, isComputed bool) {
	if isComputed {
		p.print("[")
		p.printExpr(key, js_ast.LComma, 0)
		p.print("]")
		return
	}
	switch k := key.Data.(type) {
	case *js_ast.EIdentifier:
		p.printIdentifier(k.Name)
	case *js_ast.EPrivateIdentifier:
		p.print("#" + k.Name)
	default:
		p.printExpr(key, js_ast.LLowest, 0)
	}
}

func canOmitArrowParens(arrow *js_ast.EArrow) bool {
	if len(arrow.Args) != 1 || arrow.TypeParamsOrNil != nil || arrow.ReturnTypeOrNil != nil {
		return false
	}
	arg := arrow.Args[0]
	if _, ok := arg.Binding.Data.(*js_ast.BIdentifier); !ok {
		return false
	}
	return !arg.IsRest && !arg.IsOptional && arg.TypeOrNil == nil && arg.DefaultOrNil.Data == nil && len(arg.Decorators) == 0
}

func (p *printer) printFnArgs(args []js_ast.Arg, wrap bool) {
	if wrap {
		p.print("(")
	}

	for i, arg := range args {
		if i != 0 {
			p.print(",")
			p.printSpace()
		}
		p.printDecorators(arg.Decorators)
		if arg.IsRest {
			p.print("...")
		}
		p.printBinding(arg.Binding)
		if arg.IsOptional {
			p.print("?")
		}
		p.printType(arg.TypeOrNil)
		if arg.DefaultOrNil.Data != nil {
			p.printDefault(arg.DefaultOrNil)
		}
	}

	if wrap {
		p.print(")")
	}
}

func (p *printer) printFn(fn js_ast.Fn) {
	if fn.TypeParamsOrNil != nil {
		p.print(fn.TypeParamsOrNil.Text)
	}
	p.printFnArgs(fn.Args, true)
	p.printType(fn.ReturnTypeOrNil)
	p.printSpace()
	p.printBlock(fn.Body.Stmts)
}

func (p *printer) printClass(class js_ast.Class) {
	p.printDecorators(class.Decorators)
	p.printKeyword("class")
	if class.Name != nil {
		p.print(" ")
		p.print(class.Name.Name)
	}
	if class.TypeParamsOrNil != nil {
		p.print(class.TypeParamsOrNil.Text)
	}
	if class.ExtendsOrNil.Data != nil {
		p.print(" extends")
		p.printSpace()
		p.printExpr(class.ExtendsOrNil, js_ast.LNew-1, 0)
		p.printTypeArgs(class.ExtendsTypeArgs)
	}
	if len(class.Implements) > 0 {
		p.print(" implements ")
		for i, typ := range class.Implements {
			if i != 0 {
				p.print(",")
				p.printSpace()
			}
			p.print(typ.Text)
		}
	}
	p.printSpace()

	if len(class.Properties) == 0 {
		p.print("{}")
		return
	}
	p.print("{")
	p.printNewline()
	p.options.Indent++

	for _, item := range class.Properties {
		p.printSemicolonIfNeeded()
		p.printIndent()

		if item.Kind == js_ast.PropertyClassStaticBlock {
			p.print("static")
			p.printSpace()
			p.printBlock(item.ClassStaticBlock.Stmts)
			p.printNewline()
			continue
		}

		p.printProperty(item)

		// Need semicolons after class fields
		if !item.IsMethod {
			p.printSemicolonAfterStatement()
		} else {
			p.printNewline()
		}
	}

	p.needsSemicolon = false
	p.options.Indent--
	p.printIndent()
	p.print("}")
}

func (p *printer) printProperty(item js_ast.Property) {
	if item.Kind == js_ast.PropertySpread {
		p.print("...")
		p.printExpr(item.Key, js_ast.LComma, 0)
		return
	}

	p.printDecorators(item.Decorators)
	if item.IsStatic {
		p.printKeyword("static")
		p.print(" ")
	}
	if item.IsAccessor {
		p.printKeyword("accessor")
		p.print(" ")
	}

	if fn, ok := item.ValueOrNil.Data.(*js_ast.EFunction); item.IsMethod && ok {
		switch item.Kind {
		case js_ast.PropertyGet:
			p.printKeyword("get")
			p.print(" ")
		case js_ast.PropertySet:
			p.printKeyword("set")
			p.print(" ")
		}
		if fn.Fn.IsAsync {
			p.printKeyword("async")
			p.print(" ")
		}
		if fn.Fn.IsGenerator {
			p.print("*")
		}
		p.printPropertyKey(item.Key, item.IsComputed)
		p.printFn(fn.Fn)
		return
	}

	// "{a}" and "{a = 1}"
	if item.IsShorthand {
		p.printExpr(item.ValueOrNil, js_ast.LComma, 0)
		if item.InitializerOrNil.Data != nil {
			p.printDefault(item.InitializerOrNil)
		}
		return
	}

	p.printPropertyKey(item.Key, item.IsComputed)

	// Class fields
	if item.ValueOrNil.Data == nil {
		p.printType(item.TypeOrNil)
		if item.InitializerOrNil.Data != nil {
			p.printDefault(item.InitializerOrNil)
		}
		return
	}

	p.print(":")
	p.printSpace()
	p.printExpr(item.ValueOrNil, js_ast.LComma, 0)
}

func (p *printer) printArgs(args []js_ast.Expr) {
	p.print("(")
	for i, arg := range args {
		if i != 0 {
			p.print(",")
			p.printSpace()
		}
		p.printExpr(arg, js_ast.LComma, 0)
	}
	p.print(")")
}

func (p *printer) printJSXTag(tag js_ast.Expr) {
	switch e := tag.Data.(type) {
	case *js_ast.EString:
		p.print(helpers.UTF16ToString(e.Value))
	case *js_ast.EIdentifier:
		p.print(e.Name)
	case *js_ast.EDot:
		p.printJSXTag(e.Target)
		p.print(".")
		p.print(e.Name)
	default:
		p.printExpr(tag, js_ast.LLowest, 0)
	}
}

// JSX attribute strings have no escape sequences, so they must be quoted
// with a quote character they don't contain
func (p *printer) printJSXAttributeValue(value js_ast.Expr) {
	switch e := value.Data.(type) {
	case *js_ast.EString:
		text := helpers.UTF16ToString(e.Value)
		if !strings.ContainsRune(text, '"') {
			p.print("\"" + text + "\"")
			return
		}
		if !strings.ContainsRune(text, '\'') {
			p.print("'" + text + "'")
			return
		}

	case *js_ast.EJSXElement:
		p.printExpr(value, js_ast.LLowest, 0)
		return
	}

	p.print("{")
	p.printExpr(value, js_ast.LComma, 0)
	p.print("}")
}

func (p *printer) printJSXElement(e *js_ast.EJSXElement) {
	p.print("<")
	if e.TagOrNil.Data != nil {
		p.printJSXTag(e.TagOrNil)
	}

	for _, property := range e.Properties {
		p.print(" ")
		if property.Kind == js_ast.PropertySpread {
			p.print("{...")
			p.printExpr(property.Key, js_ast.LComma, 0)
			p.print("}")
			continue
		}

		p.printJSXTag(property.Key)

		// A bare attribute is stored as "true" at the same location as its name
		if boolean, ok := property.ValueOrNil.Data.(*js_ast.EBoolean); ok && boolean.Value && property.ValueOrNil.Span == property.Key.Span {
			continue
		}
		p.print("=")
		p.printJSXAttributeValue(property.ValueOrNil)
	}

	// "<a />"
	if e.Children == nil {
		p.print(" />")
		return
	}
	p.print(">")

	for _, child := range e.Children {
		switch c := child.Data.(type) {
		case *js_ast.EJSXText:
			p.print(c.Raw)
		case *js_ast.EJSXElement:
			p.printJSXElement(c)
		default:
			p.print("{")
			p.printExpr(child, js_ast.LComma, 0)
			p.print("}")
		}
	}

	p.print("</")
	if e.TagOrNil.Data != nil {
		p.printJSXTag(e.TagOrNil)
	}
	p.print(">")
}

func (p *printer) printTemplate(e *js_ast.ETemplate) {
	if e.TagOrNil.Data != nil {
		p.printExpr(e.TagOrNil, js_ast.LPostfix, isCallTargetOrTemplateTag|isMemberTarget)
		p.printTypeArgs(e.TypeArgsOrNil)
	}
	p.print("`")
	p.print(e.HeadRaw)
	for _, part := range e.Parts {
		p.print("${")
		p.printExpr(part.Value, js_ast.LLowest, 0)
		p.print("}")
		p.print(part.TailRaw)
	}
	p.print("`")
}

type printExprFlags uint16

const (
	forbidCall printExprFlags = 1 << iota
	forbidIn
	isMemberTarget
	isFollowedByOf
	isCallTargetOrTemplateTag
	isChainLinkTarget
)

func (p *printer) printExpr(expr js_ast.Expr, level js_ast.L, flags printExprFlags) {
	switch e := expr.Data.(type) {
	case *js_ast.EMissing:

	case *js_ast.EParen:
		p.print("(")
		p.printExpr(e.Value, js_ast.LLowest, 0)
		p.print(")")

	case *js_ast.ENull:
		p.printKeyword("null")

	case *js_ast.EThis:
		p.printKeyword("this")

	case *js_ast.ESuper:
		p.printKeyword("super")

	case *js_ast.EBoolean:
		if e.Value {
			p.printKeyword("true")
		} else {
			p.printKeyword("false")
		}

	case *js_ast.ENewTarget:
		p.printKeyword("new.target")

	case *js_ast.EImportMeta:
		p.printKeyword("import.meta")

	case *js_ast.ESpread:
		p.print("...")
		p.printExpr(e.Value, js_ast.LComma, 0)

	case *js_ast.EIdentifier:
		// "for ((let) of x)", "for ((async) of x)", and "(let)[0]" are
		// ambiguous otherwise
		n := len(p.js)
		wrap := (n == p.forOfInitStart && (e.Name == "let" || (e.Name == "async" && (flags&isFollowedByOf) != 0))) ||
			(n == p.stmtStart && e.Name == "let")

		if wrap {
			p.print("(")
		}
		p.printIdentifier(e.Name)
		if wrap {
			p.print(")")
		}

	case *js_ast.EPrivateIdentifier:
		p.print("#" + e.Name)

	case *js_ast.ENumber:
		p.printNumber(e)

	case *js_ast.EBigInt:
		p.printSpaceBeforeIdentifier()
		p.print(e.Value)
		p.print("n")

	case *js_ast.EString:
		p.print(helpers.QuoteUTF16(e.Value, '"'))

	case *js_ast.ERegExp:
		// "/" followed by "/" would be a comment
		if n := len(p.js); n > 0 && p.js[n-1] == '/' {
			p.print(" ")
		}
		p.print("/" + e.Pattern + "/" + e.Flags)

		// "/x/ in y" would otherwise lex "in" as flags
		p.prevRegExpEnd = len(p.js)

	case *js_ast.ETemplate:
		p.printTemplate(e)

	case *js_ast.EArray:
		p.print("[")
		for i, item := range e.Items {
			if i != 0 {
				p.print(",")
				p.printSpace()
			}
			p.printExpr(item, js_ast.LComma, 0)

			// Make sure there's a comma after trailing missing items
			if _, ok := item.Data.(*js_ast.EMissing); ok && i+1 == len(e.Items) {
				p.print(",")
			}
		}
		p.print("]")

	case *js_ast.EObject:
		n := len(p.js)
		wrap := p.stmtStart == n || p.arrowExprStart == n
		if wrap {
			p.print("(")
		}
		if len(e.Properties) == 0 {
			p.print("{}")
		} else {
			p.print("{")
			p.printSpace()
			for i, item := range e.Properties {
				if i != 0 {
					p.print(",")
					p.printSpace()
				}
				p.printProperty(item)
			}
			p.printSpace()
			p.print("}")
		}
		if wrap {
			p.print(")")
		}

	case *js_ast.EArrayPattern:
		p.print("[")
		for i, item := range e.Items {
			if i != 0 {
				p.print(",")
				p.printSpace()
			}
			if item.TargetOrNil.Data == nil {
				if i+1 == len(e.Items) && e.RestOrNil.Data == nil {
					p.print(",")
				}
				continue
			}
			p.printExpr(item.TargetOrNil, js_ast.LComma, 0)
			if item.DefaultOrNil.Data != nil {
				p.printDefault(item.DefaultOrNil)
			}
		}
		if e.RestOrNil.Data != nil {
			if len(e.Items) > 0 {
				p.print(",")
				p.printSpace()
			}
			p.print("...")
			p.printExpr(e.RestOrNil, js_ast.LComma, 0)
		}
		p.print("]")

	case *js_ast.EObjectPattern:
		if len(e.Properties) == 0 && e.RestOrNil.Data == nil {
			p.print("{}")
			break
		}
		p.print("{")
		p.printSpace()
		for i, property := range e.Properties {
			if i != 0 {
				p.print(",")
				p.printSpace()
			}
			if !property.IsShorthand {
				p.printPropertyKey(property.Key, property.IsComputed)
				p.print(":")
				p.printSpace()
			}
			p.printExpr(property.Target, js_ast.LComma, 0)
			if property.DefaultOrNil.Data != nil {
				p.printDefault(property.DefaultOrNil)
			}
		}
		if e.RestOrNil.Data != nil {
			if len(e.Properties) > 0 {
				p.print(",")
				p.printSpace()
			}
			p.print("...")
			p.printExpr(e.RestOrNil, js_ast.LComma, 0)
		}
		p.printSpace()
		p.print("}")

	case *js_ast.EJSXElement:
		p.printJSXElement(e)

	case *js_ast.EJSXText:
		p.print(e.Raw)

	case *js_ast.ENew:
		wrap := level >= js_ast.LCall
		if wrap {
			p.print("(")
		}
		p.printKeyword("new")
		p.printSpace()
		p.printExpr(e.Target, js_ast.LNew, forbidCall|isMemberTarget)
		p.printTypeArgs(e.TypeArgsOrNil)

		// "new X.y" is not "new X().y"
		if e.HasParenthesis || len(e.Args) > 0 || e.TypeArgsOrNil != nil || level >= js_ast.LPostfix {
			p.printArgs(e.Args)
		}
		if wrap {
			p.print(")")
		}

	case *js_ast.ECall:
		wrap := level >= js_ast.LNew || (flags&forbidCall) != 0
		if wrap {
			p.print("(")
		}
		targetFlags := isCallTargetOrTemplateTag | isMemberTarget
		if e.OptionalChain == js_ast.OptionalChainStart {
			targetFlags |= isChainLinkTarget
		}
		p.printExpr(e.Target, js_ast.LPostfix, targetFlags)
		if e.OptionalChain == js_ast.OptionalChainStart {
			p.print("?.")
		}
		p.printTypeArgs(e.TypeArgsOrNil)
		p.printArgs(e.Args)
		if wrap {
			p.print(")")
		}

	case *js_ast.EImportCall:
		wrap := level >= js_ast.LNew || (flags&forbidCall) != 0
		if wrap {
			p.print("(")
		}
		p.printKeyword("import")
		switch e.Phase {
		case js_ast.ImportPhaseSource:
			p.print(".source")
		case js_ast.ImportPhaseDefer:
			p.print(".defer")
		}
		p.print("(")
		p.printExpr(e.Expr, js_ast.LComma, 0)
		if e.OptionsOrNil.Data != nil {
			p.print(",")
			p.printSpace()
			p.printExpr(e.OptionsOrNil, js_ast.LComma, 0)
		}
		p.print(")")
		if wrap {
			p.print(")")
		}

	case *js_ast.EChain:
		// "(a?.b).c" and "new (a?.b)()" end the chain early
		wrap := (flags & (isMemberTarget | forbidCall | isCallTargetOrTemplateTag)) != 0
		if wrap {
			p.print("(")
			level = js_ast.LLowest
		}
		p.printExpr(e.Expr, level, flags&forbidIn)
		if wrap {
			p.print(")")
		}

	case *js_ast.EDot:
		targetFlags := (flags & forbidCall) | isMemberTarget
		if e.OptionalChain != js_ast.OptionalChainNone {
			targetFlags |= isChainLinkTarget
		}
		p.printExpr(e.Target, js_ast.LPostfix, targetFlags)
		if e.OptionalChain == js_ast.OptionalChainStart {
			p.print("?.")
		} else {
			if p.prevNumEnd == len(p.js) {
				p.print(" ")
			}
			p.print(".")
		}
		p.print(e.Name)

	case *js_ast.EIndex:
		targetFlags := (flags & forbidCall) | isMemberTarget
		if e.OptionalChain == js_ast.OptionalChainStart {
			targetFlags |= isChainLinkTarget
		}
		p.printExpr(e.Target, js_ast.LPostfix, targetFlags)
		if e.OptionalChain == js_ast.OptionalChainStart {
			p.print("?.")
		}
		if private, ok := e.Index.Data.(*js_ast.EPrivateIdentifier); ok {
			if e.OptionalChain != js_ast.OptionalChainStart {
				p.print(".")
			}
			p.print("#" + private.Name)
			break
		}
		p.print("[")
		p.printExpr(e.Index, js_ast.LLowest, 0)
		p.print("]")

	case *js_ast.EIf:
		wrap := level >= js_ast.LConditional
		if wrap {
			p.print("(")
			flags &= ^forbidIn
		}
		p.printExpr(e.Test, js_ast.LConditional, flags&forbidIn)
		p.printSpace()
		p.print("?")
		p.printSpace()

		// An arrow return type in the consequent would be read as the ":"
		yesLevel := js_ast.LYield
		if arrow, ok := e.Yes.Data.(*js_ast.EArrow); ok && arrow.ReturnTypeOrNil != nil {
			yesLevel = js_ast.LAssign
		}
		p.printExpr(e.Yes, yesLevel, 0)
		p.printSpace()
		p.print(":")
		p.printSpace()
		p.printExpr(e.No, js_ast.LYield, flags&forbidIn)
		if wrap {
			p.print(")")
		}

	case *js_ast.EArrow:
		wrap := level >= js_ast.LAssign
		if wrap {
			p.print("(")
		}
		if e.IsAsync {
			p.printKeyword("async")
			p.printSpace()
		}
		if e.TypeParamsOrNil != nil {
			p.print(e.TypeParamsOrNil.Text)
		}
		p.printFnArgs(e.Args, !p.options.MinifyWhitespace || !canOmitArrowParens(e))
		p.printType(e.ReturnTypeOrNil)
		p.printSpace()
		p.print("=>")
		p.printSpace()

		wasPrinted := false
		if len(e.Body.Stmts) == 1 && e.PreferExpr {
			if s, ok := e.Body.Stmts[0].Data.(*js_ast.SReturn); ok && s.ValueOrNil.Data != nil {
				p.arrowExprStart = len(p.js)
				p.printExpr(s.ValueOrNil, js_ast.LComma, flags&forbidIn)
				wasPrinted = true
			}
		}
		if !wasPrinted {
			p.printBlock(e.Body.Stmts)
		}
		if wrap {
			p.print(")")
		}

	case *js_ast.EFunction:
		wrap := p.stmtStart == len(p.js)
		if wrap {
			p.print("(")
		}
		if e.Fn.IsAsync {
			p.printKeyword("async")
			p.print(" ")
		}
		p.printKeyword("function")
		if e.Fn.IsGenerator {
			p.print("*")
			p.printSpace()
		}
		if e.Fn.Name != nil {
			p.printIdentifier(e.Fn.Name.Name)
		}
		p.printFn(e.Fn)
		if wrap {
			p.print(")")
		}

	case *js_ast.EClass:
		wrap := p.stmtStart == len(p.js)
		if wrap {
			p.print("(")
		}
		p.printClass(e.Class)
		if wrap {
			p.print(")")
		}

	case *js_ast.EAwait:
		wrap := level >= js_ast.LPrefix
		if wrap {
			p.print("(")
		}
		p.printKeyword("await")
		p.printSpace()
		p.printExpr(e.Value, js_ast.LPrefix-1, 0)
		if wrap {
			p.print(")")
		}

	case *js_ast.EYield:
		wrap := level >= js_ast.LAssign
		if wrap {
			p.print("(")
		}
		p.printKeyword("yield")
		if e.IsStar {
			p.print("*")
		}
		if e.ValueOrNil.Data != nil {
			p.printSpace()
			p.printExpr(e.ValueOrNil, js_ast.LYield, 0)
		}
		if wrap {
			p.print(")")
		}

	case *js_ast.EUnary:
		entry := js_ast.OpTable[e.Op]
		wrap := level >= entry.Level
		if wrap {
			p.print("(")
		}

		if !e.Op.IsPrefix() {
			p.printExpr(e.Value, js_ast.LPostfix-1, 0)
		}

		if entry.IsKeyword {
			p.printKeyword(entry.Text)
			p.printSpace()
		} else {
			p.printSpaceBeforeOperator(e.Op)
			p.print(entry.Text)
			p.prevOp = e.Op
			p.prevOpEnd = len(p.js)
		}

		if e.Op.IsPrefix() {
			p.printExpr(e.Value, js_ast.LPrefix-1, 0)
		}

		if wrap {
			p.print(")")
		}

	case *js_ast.EBinary:
		p.printBinary(e.Op, e.Left, e.Right, level, flags)

	case *js_ast.ELogical:
		p.printBinary(e.Op, e.Left, e.Right, level, flags)

	case *js_ast.EPrivateIn:
		wrap := level >= js_ast.LCompare || (flags&forbidIn) != 0
		if wrap {
			p.print("(")
		}
		p.print("#" + e.Name)
		p.print(" in")
		p.printSpace()
		p.printExpr(e.Value, js_ast.LCompare, 0)
		if wrap {
			p.print(")")
		}

	case *js_ast.EAssign:
		// "({a} = b)" would otherwise be read as a block
		_, isObjectPattern := e.Target.Data.(*js_ast.EObjectPattern)
		n := len(p.js)
		wrap := level >= js_ast.LAssign || (isObjectPattern && (p.stmtStart == n || p.arrowExprStart == n))
		if wrap {
			p.print("(")
			flags &= ^forbidIn
		}
		p.printExpr(e.Target, js_ast.LPostfix, flags&forbidIn)
		p.printSpace()
		p.printSpaceBeforeOperator(e.Op)
		p.print(js_ast.OpTable[e.Op].Text)
		p.prevOp = e.Op
		p.prevOpEnd = len(p.js)
		p.printSpace()
		p.printExpr(e.Value, js_ast.LAssign-1, flags&forbidIn)
		if wrap {
			p.print(")")
		}

	case *js_ast.ESequence:
		wrap := level >= js_ast.LComma
		if wrap {
			p.print("(")
			flags &= ^forbidIn
		}
		for i, item := range e.Exprs {
			if i != 0 {
				p.print(",")
				p.printSpace()
			}
			p.printExpr(item, js_ast.LComma, flags&forbidIn)
		}
		if wrap {
			p.print(")")
		}

	case *js_ast.ETSAs:
		p.printTypeSuffix(e.Value, "as", e.Type, level, flags)

	case *js_ast.ETSSatisfies:
		p.printTypeSuffix(e.Value, "satisfies", e.Type, level, flags)

	case *js_ast.ETSNonNull:
		p.printExpr(e.Value, js_ast.LPostfix, (flags&forbidCall)|isMemberTarget)
		p.print("!")
		p.prevOp = js_ast.UnOpNot
		p.prevOpEnd = len(p.js)

	case *js_ast.ETSInstantiation:
		// "f<T> < x" and "(f<T>)()" would parse differently without parentheses
		// "a?.b<T>.c" stays inside the optional chain
		wrap := (level >= js_ast.LCompare-1 || (flags&(forbidCall|isCallTargetOrTemplateTag)) != 0) &&
			(flags&isChainLinkTarget) == 0
		if wrap {
			p.print("(")
		}
		valueFlags := isMemberTarget
		if _, ok := e.Value.Data.(*js_ast.EChain); ok {
			valueFlags = 0
		}
		p.printExpr(e.Value, js_ast.LPostfix, valueFlags)
		p.printTypeArgs(&e.TypeArgs)
		if wrap {
			p.print(")")
		}

	case *js_ast.ETSTypeAssertion:
		wrap := level >= js_ast.LPrefix
		if wrap {
			p.print("(")
		}
		if n := len(p.js); n > 0 && p.js[n-1] == '<' {
			p.print(" ")
		}
		p.print("<" + e.Type.Text + ">")
		p.printExpr(e.Value, js_ast.LPrefix-1, 0)
		if wrap {
			p.print(")")
		}

	default:
		panic("Internal error")
	}
}

// "a as T" binds like a comparison, but the type would swallow a following
// "<" and is never followed by another operator without parentheses
func (p *printer) printTypeSuffix(value js_ast.Expr, keyword string, typ js_ast.TSType, level js_ast.L, flags printExprFlags) {
	wrap := level >= js_ast.LCompare-1
	if wrap {
		p.print("(")
		flags &= ^forbidIn
	}
	p.printExpr(value, js_ast.LCompare-1, flags&forbidIn)
	p.print(" " + keyword + " " + typ.Text)
	if wrap {
		p.print(")")
	}
}

func isLogicalOp(expr js_ast.Expr, ops ...js_ast.OpCode) bool {
	if e, ok := expr.Data.(*js_ast.ELogical); ok {
		for _, op := range ops {
			if e.Op == op {
				return true
			}
		}
	}
	return false
}

func (p *printer) printBinary(op js_ast.OpCode, left js_ast.Expr, right js_ast.Expr, level js_ast.L, flags printExprFlags) {
	entry := js_ast.OpTable[op]
	wrap := level >= entry.Level || (op == js_ast.BinOpIn && (flags&forbidIn) != 0)
	if wrap {
		p.print("(")
		flags &= ^forbidIn
	}

	leftLevel := entry.Level - 1
	rightLevel := entry.Level - 1
	if op.IsRightAssociative() {
		leftLevel = entry.Level
	}
	if op.IsLeftAssociative() {
		rightLevel = entry.Level
	}

	switch op {
	case js_ast.BinOpNullishCoalescing:
		// "??" can't directly contain "||" or "&&" without being wrapped in parentheses
		if isLogicalOp(left, js_ast.BinOpLogicalOr, js_ast.BinOpLogicalAnd) {
			leftLevel = js_ast.LPrefix
		}
		if isLogicalOp(right, js_ast.BinOpLogicalOr, js_ast.BinOpLogicalAnd) {
			rightLevel = js_ast.LPrefix
		}

	case js_ast.BinOpLogicalOr, js_ast.BinOpLogicalAnd:
		if isLogicalOp(left, js_ast.BinOpNullishCoalescing) {
			leftLevel = js_ast.LPrefix
		}
		if isLogicalOp(right, js_ast.BinOpNullishCoalescing) {
			rightLevel = js_ast.LPrefix
		}

	case js_ast.BinOpPow:
		// "**" can't contain certain unary expressions
		switch left.Data.(type) {
		case *js_ast.EUnary, *js_ast.EAwait, *js_ast.ETSTypeAssertion:
			leftLevel = js_ast.LCall
		}
	}

	p.printExpr(left, leftLevel, flags&forbidIn)

	p.printSpace()
	if entry.IsKeyword {
		p.printKeyword(entry.Text)
	} else {
		p.printSpaceBeforeOperator(op)
		p.print(entry.Text)
		p.prevOp = op
		p.prevOpEnd = len(p.js)
	}
	p.printSpace()

	p.printExpr(right, rightLevel, flags&forbidIn)

	if wrap {
		p.print(")")
	}
}

func (p *printer) printBlock(stmts []js_ast.Stmt) {
	if len(stmts) == 0 {
		p.print("{}")
		return
	}

	p.print("{")
	p.printNewline()

	p.options.Indent++
	for _, stmt := range stmts {
		p.printSemicolonIfNeeded()
		p.printStmt(stmt)
	}
	p.options.Indent--
	p.needsSemicolon = false

	p.printIndent()
	p.print("}")
}

func (p *printer) printBody(body js_ast.Stmt) {
	if block, ok := body.Data.(*js_ast.SBlock); ok {
		p.printSpace()
		p.printBlock(block.Stmts)
		p.printNewline()
	} else {
		p.printNewline()
		p.options.Indent++
		p.printStmt(body)
		p.options.Indent--
	}
}

func (p *printer) printDecls(keyword string, decls []js_ast.Decl, flags printExprFlags) {
	p.printKeyword(keyword)
	p.print(" ")

	for i, decl := range decls {
		if i != 0 {
			p.print(",")
			p.printSpace()
		}
		p.printBinding(decl.Binding)
		p.printType(decl.TypeOrNil)

		if decl.ValueOrNil.Data != nil {
			p.printSpace()
			p.print("=")
			p.printSpace()
			p.printExpr(decl.ValueOrNil, js_ast.LComma, flags)
		}
	}
}

func (p *printer) printForLoopInit(init js_ast.Stmt, flags printExprFlags) {
	switch s := init.Data.(type) {
	case *js_ast.SExpr:
		p.printExpr(s.Value, js_ast.LLowest, flags|forbidIn)
	case *js_ast.SLocal:
		p.printDecls(s.Kind.String(), s.Decls, flags|forbidIn)
	}
}

func wrapToAvoidAmbiguousElse(s js_ast.S) bool {
	for {
		switch current := s.(type) {
		case *js_ast.SIf:
			if current.NoOrNil.Data == nil {
				return true
			}
			s = current.NoOrNil.Data

		case *js_ast.SFor:
			s = current.Body.Data

		case *js_ast.SForIn:
			s = current.Body.Data

		case *js_ast.SForOf:
			s = current.Body.Data

		case *js_ast.SWhile:
			s = current.Body.Data

		default:
			return false
		}
	}
}

func (p *printer) printIf(s *js_ast.SIf) {
	p.printKeyword("if")
	p.printSpace()
	p.print("(")
	p.printExpr(s.Test, js_ast.LLowest, 0)
	p.print(")")

	yes, isBlock := s.Yes.Data.(*js_ast.SBlock)
	switch {
	case isBlock:
		p.printSpace()
		p.printBlock(yes.Stmts)
		if s.NoOrNil.Data != nil {
			p.printSpace()
		} else {
			p.printNewline()
		}

	case s.NoOrNil.Data != nil && wrapToAvoidAmbiguousElse(s.Yes.Data):
		p.printSpace()
		p.print("{")
		p.printNewline()
		p.options.Indent++
		p.printStmt(s.Yes)
		p.options.Indent--
		p.needsSemicolon = false
		p.printIndent()
		p.print("}")
		p.printSpace()

	default:
		p.printNewline()
		p.options.Indent++
		p.printStmt(s.Yes)
		p.options.Indent--
		if s.NoOrNil.Data != nil {
			p.printIndent()
		}
	}

	if s.NoOrNil.Data != nil {
		p.printSemicolonIfNeeded()
		p.printKeyword("else")

		if no, ok := s.NoOrNil.Data.(*js_ast.SIf); ok {
			p.print(" ")
			p.printIf(no)
		} else {
			p.printBody(s.NoOrNil)
		}
	}
}

func (p *printer) printStmt(stmt js_ast.Stmt) {
	switch s := stmt.Data.(type) {
	case *js_ast.SEmpty:
		p.printIndent()
		p.print(";")
		p.printNewline()

	case *js_ast.SBlock:
		p.printIndent()
		p.printBlock(s.Stmts)
		p.printNewline()

	case *js_ast.SExpr:
		p.printIndent()
		p.stmtStart = len(p.js)
		p.printExpr(s.Value, js_ast.LLowest, 0)
		p.printSemicolonAfterStatement()

	case *js_ast.SLocal:
		p.printIndent()
		p.printDecls(s.Kind.String(), s.Decls, 0)
		p.printSemicolonAfterStatement()

	case *js_ast.SIf:
		p.printIndent()
		p.printIf(s)

	case *js_ast.SWhile:
		p.printIndent()
		p.printKeyword("while")
		p.printSpace()
		p.print("(")
		p.printExpr(s.Test, js_ast.LLowest, 0)
		p.print(")")
		p.printBody(s.Body)

	case *js_ast.SFor:
		p.printIndent()
		p.printKeyword("for")
		p.printSpace()
		p.print("(")
		if s.InitOrNil.Data != nil {
			p.printForLoopInit(s.InitOrNil, 0)
		}
		p.print(";")
		if s.TestOrNil.Data != nil {
			p.printSpace()
			p.printExpr(s.TestOrNil, js_ast.LLowest, 0)
		}
		p.print(";")
		if s.UpdateOrNil.Data != nil {
			p.printSpace()
			p.printExpr(s.UpdateOrNil, js_ast.LLowest, 0)
		}
		p.print(")")
		p.printBody(s.Body)

	case *js_ast.SForIn:
		p.printIndent()
		p.printKeyword("for")
		p.printSpace()
		p.print("(")
		p.printForLoopInit(s.Init, 0)
		p.print(" in")
		p.printSpace()
		p.printExpr(s.Value, js_ast.LLowest, 0)
		p.print(")")
		p.printBody(s.Body)

	case *js_ast.SForOf:
		p.printIndent()
		p.printKeyword("for")
		if s.IsAwait {
			p.print(" await")
		}
		p.printSpace()
		p.print("(")
		p.forOfInitStart = len(p.js)
		p.printForLoopInit(s.Init, isFollowedByOf)
		p.print(" of")
		p.printSpace()
		p.printExpr(s.Value, js_ast.LComma, 0)
		p.print(")")
		p.printBody(s.Body)

	case *js_ast.SReturn:
		p.printIndent()
		p.printKeyword("return")
		if s.ValueOrNil.Data != nil {
			p.printSpace()
			p.printExpr(s.ValueOrNil, js_ast.LLowest, 0)
		}
		p.printSemicolonAfterStatement()

	case *js_ast.SThrow:
		p.printIndent()
		p.printKeyword("throw")
		p.printSpace()
		p.printExpr(s.Value, js_ast.LLowest, 0)
		p.printSemicolonAfterStatement()

	default:
		panic("Internal error")
	}
}

type Options struct {
	// The starting indentation level for nested statements
	Indent int

	MinifyWhitespace bool
}

func newPrinter(options Options) *printer {
	return &printer{
		options:        options,
		stmtStart:      -1,
		arrowExprStart: -1,
		forOfInitStart: -1,
		prevOpEnd:      -1,
		prevNumEnd:     -1,
		prevRegExpEnd:  -1,
	}
}

// Prints a single expression. There is no trailing newline or semicolon.
func Print(expr js_ast.Expr, options Options) string {
	p := newPrinter(options)
	p.printExpr(expr, js_ast.LLowest, 0)
	return string(p.js)
}

func PrintProgram(program js_ast.Program, options Options) string {
	p := newPrinter(options)
	if program.Hashbang != "" {
		p.print(program.Hashbang + "\n")
	}
	for _, stmt := range program.Stmts {
		p.printSemicolonIfNeeded()
		p.printStmt(stmt)
	}
	return string(p.js)
}
