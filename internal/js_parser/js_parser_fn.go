package js_parser

import (
	"github.com/esexpr/esexpr/internal/js_ast"
	"github.com/esexpr/esexpr/internal/js_lexer"
	"github.com/esexpr/esexpr/internal/logger"
)

type tristate uint8

const (
	tristateFalse tristate = iota
	tristateTrue
	tristateUnknown
)

// Looks at the first few tokens after "(" or "<" to decide whether they start
// an arrow function. When this can't be decided cheaply the answer is
// "unknown" and the caller has to try parsing an arrow function head.
func (p *parser) isParenArrowHead() tristate {
	old := p.lexer
	defer func() { p.lexer = old }()

	if p.lexer.Token == js_lexer.TLessThan {
		if !p.options.ts {
			return tristateFalse
		}
		p.lexer.Next()
		if p.lexer.Token == js_lexer.TConst {
			p.lexer.Next()
		}
		if p.lexer.Token != js_lexer.TIdentifier {
			return tristateFalse
		}
		if !p.options.jsx {
			return tristateUnknown
		}

		// In TSX, "<T>" is an element. Type parameters must look like "<T,>"
		// or "<T extends U>" to be used for an arrow function.
		p.lexer.Next()
		switch p.lexer.Token {
		case js_lexer.TComma, js_lexer.TEquals:
			return tristateTrue

		case js_lexer.TExtends:
			p.lexer.Next()
			switch p.lexer.Token {
			case js_lexer.TEquals, js_lexer.TGreaterThan, js_lexer.TSlash:
				return tristateFalse
			}
			return tristateTrue
		}
		return tristateFalse
	}

	p.lexer.Next()
	switch p.lexer.Token {
	case js_lexer.TCloseParen:
		// "() => {}" and "(): T => {}"
		p.lexer.Next()
		switch p.lexer.Token {
		case js_lexer.TEqualsGreaterThan, js_lexer.TColon, js_lexer.TOpenBrace:
			return tristateTrue
		}
		return tristateFalse

	case js_lexer.TDotDotDot:
		return tristateTrue

	case js_lexer.TOpenBracket, js_lexer.TOpenBrace:
		return tristateUnknown

	case js_lexer.TIdentifier:

	default:
		return tristateFalse
	}

	p.lexer.Next()
	switch p.lexer.Token {
	case js_lexer.TColon:
		// "(a: T) => {}"
		if p.options.ts {
			return tristateTrue
		}

	case js_lexer.TQuestion:
		// "(a?: T) => {}"
		if p.options.ts {
			p.lexer.Next()
			switch p.lexer.Token {
			case js_lexer.TColon, js_lexer.TComma, js_lexer.TEquals, js_lexer.TCloseParen:
				return tristateTrue
			}
		}

	case js_lexer.TComma, js_lexer.TEquals, js_lexer.TCloseParen:
		return tristateUnknown
	}
	return tristateFalse
}

type arrowHead struct {
	typeParams *js_ast.TSType
	args       []js_ast.Arg
	returnType *js_ast.TSType
	isAsync    bool
	hasRest    bool
}

// Returns true along with the arrow function if the current token starts one.
// A failed attempt at an ambiguous position is remembered so that it is never
// made again.
func (p *parser) tryParseParenArrow(start int32, isAsync bool) (js_ast.Expr, bool, error) {
	var head arrowHead

	// "async(...args)" is a valid call, so nothing after "async" is certain
	kind := p.isParenArrowHead()
	if isAsync && kind == tristateTrue {
		kind = tristateUnknown
	}

	switch kind {
	case tristateFalse:
		return js_ast.Expr{}, false, nil

	case tristateTrue:
		var err error
		if head, err = p.parseArrowHead(isAsync); err != nil {
			return js_ast.Expr{}, false, err
		}

	default:
		offset := uint(p.start())
		if p.arrowFailures.HasBit(offset) {
			return js_ast.Expr{}, false, nil
		}
		if !p.tryParse(func() (err error) {
			head, err = p.parseArrowHead(isAsync)
			return
		}) {
			p.arrowFailures.SetBit(offset)
			return js_ast.Expr{}, false, nil
		}
	}

	arrow, err := p.parseArrowBody(start, head)
	return arrow, true, err
}

// "async x => y", "async (x) => y", and "async <T>(x) => y"
func (p *parser) tryParseAsyncArrow(start int32) (js_ast.Expr, bool, error) {
	s := p.snapshot()
	p.lexer.Next()

	if !p.lexer.HasNewlineBefore {
		switch p.lexer.Token {
		case js_lexer.TIdentifier:
			if p.lookahead(func() bool {
				p.lexer.Next()
				return p.lexer.Token == js_lexer.TEqualsGreaterThan
			}) {
				arrow, err := p.parseIdentifierArrow(start, true)
				return arrow, true, err
			}

		case js_lexer.TOpenParen, js_lexer.TLessThan:
			if arrow, ok, err := p.tryParseParenArrow(start, true); ok || err != nil {
				return arrow, ok, err
			}
		}
	}

	p.restore(s)
	return js_ast.Expr{}, false, nil
}

// Everything up to and including the "=>"
func (p *parser) parseArrowHead(isAsync bool) (arrowHead, error) {
	head := arrowHead{isAsync: isAsync}

	if p.lexer.Token == js_lexer.TLessThan {
		typ, err := p.parseTypeScriptTypeParameters()
		if err != nil {
			return head, err
		}
		head.typeParams = &typ
	}

	var add exprContext
	if isAsync {
		add = ctxAwait
	}
	var err error
	if head.args, head.hasRest, err = p.parseFnArgs(add, 0); err != nil {
		return head, err
	}

	if p.options.ts && p.lexer.Token == js_lexer.TColon && !p.has(ctxNoArrowReturnType) {
		p.lexer.Next()
		typ, err := p.parseTypeScriptReturnType()
		if err != nil {
			return head, err
		}
		head.returnType = &typ
	}

	if p.lexer.Token != js_lexer.TEqualsGreaterThan {
		return head, p.lexer.Expected(js_lexer.TEqualsGreaterThan)
	}
	if p.lexer.HasNewlineBefore {
		return head, p.fail(p.lexer.Range(), "Unexpected newline before \"=>\"")
	}
	p.lexer.Next()
	return head, nil
}

// "x => y". The current token is the parameter name.
func (p *parser) parseIdentifierArrow(start int32, isAsync bool) (js_ast.Expr, error) {
	name := p.lexer.Identifier
	nameRange := p.lexer.Range()
	if isAsync && name == "await" {
		p.addError(nameRange, "Cannot use \"await\" as an identifier here")
	} else {
		p.checkIdentifier(name, nameRange)
	}
	p.lexer.Next()

	if p.lexer.HasNewlineBefore {
		return js_ast.Expr{}, p.fail(p.lexer.Range(), "Unexpected newline before \"=>\"")
	}
	if err := p.expect(js_lexer.TEqualsGreaterThan); err != nil {
		return js_ast.Expr{}, err
	}

	binding := js_ast.Binding{Span: nameRange.Span(), Data: &js_ast.BIdentifier{Name: name}}
	return p.parseArrowBody(start, arrowHead{
		args:    []js_ast.Arg{{Span: nameRange.Span(), Binding: binding}},
		isAsync: isAsync,
	})
}

func (p *parser) parseArrowBody(start int32, head arrowHead) (js_ast.Expr, error) {
	arrow := &js_ast.EArrow{
		TypeParamsOrNil: head.typeParams,
		Args:            head.args,
		ReturnTypeOrNil: head.returnType,
		IsAsync:         head.isAsync,
		HasRestArg:      head.hasRest,
	}

	// Arrow functions are never generators, and they inherit "in" for an
	// expression body
	add := exprContext(0)
	remove := ctxYield | ctxDecorator | ctxNoArrowReturnType
	if head.isAsync {
		add |= ctxAwait
	} else {
		remove |= ctxAwait
	}

	if p.lexer.Token == js_lexer.TOpenBrace {
		body, err := p.parseFnBody(add|ctxIn, remove)
		if err != nil {
			return js_ast.Expr{}, err
		}
		arrow.Body = body
	} else {
		value, err := func() (js_ast.Expr, error) {
			defer p.enterContext(add, remove|ctxReturn)()
			return p.parseAssign()
		}()
		if err != nil {
			return js_ast.Expr{}, err
		}
		arrow.Body = js_ast.FnBody{Span: value.Span, Stmts: []js_ast.Stmt{{Span: value.Span, Data: &js_ast.SReturn{ValueOrNil: value}}}}
		arrow.PreferExpr = true
	}

	return js_ast.Expr{Span: p.spanFrom(start), Data: arrow}, nil
}

// Function boundaries reset "await" and "yield" to what the function itself
// allows
func fnContext(isAsync bool, isGenerator bool) (add exprContext, remove exprContext) {
	add = ctxIn
	remove = ctxAwait | ctxYield | ctxDecorator | ctxNoArrowReturnType
	if isAsync {
		add |= ctxAwait
	}
	if isGenerator {
		add |= ctxYield
	}
	return
}

// "function() {}". The current token is "function" and any "async" before
// it has already been consumed.
func (p *parser) parseFnExpr(start int32, isAsync bool) (js_ast.Expr, error) {
	p.lexer.Next()
	isGenerator := false
	if p.lexer.Token == js_lexer.TAsterisk {
		isGenerator = true
		p.lexer.Next()
	}

	// The name of a function expression is checked against the function's
	// own context
	var name *js_ast.Ident
	if p.lexer.Token == js_lexer.TIdentifier {
		name = &js_ast.Ident{Name: p.lexer.Identifier, Span: p.lexer.Span()}
		func() {
			defer p.enterContext(fnContext(isAsync, isGenerator))()
			p.checkIdentifier(name.Name, name.Span.Range())
		}()
		p.lexer.Next()
	}

	fn, err := p.parseFn(name, isAsync, isGenerator)
	if err != nil {
		return js_ast.Expr{}, err
	}
	return js_ast.Expr{Span: p.spanFrom(start), Data: &js_ast.EFunction{Fn: fn}}, nil
}

// Everything after the name of a function or method
func (p *parser) parseFn(name *js_ast.Ident, isAsync bool, isGenerator bool) (js_ast.Fn, error) {
	fn := js_ast.Fn{Name: name, IsAsync: isAsync, IsGenerator: isGenerator}

	if p.options.ts && p.lexer.Token == js_lexer.TLessThan {
		typ, err := p.parseTypeScriptTypeParameters()
		if err != nil {
			return fn, err
		}
		fn.TypeParamsOrNil = &typ
	}

	add, remove := fnContext(isAsync, isGenerator)
	var err error
	if fn.Args, fn.HasRestArg, err = p.parseFnArgs(add, remove); err != nil {
		return fn, err
	}

	if p.options.ts && p.lexer.Token == js_lexer.TColon {
		p.lexer.Next()
		typ, err := p.parseTypeScriptReturnType()
		if err != nil {
			return fn, err
		}
		fn.ReturnTypeOrNil = &typ
	}

	fn.Body, err = p.parseFnBody(add, remove)
	return fn, err
}

func (p *parser) parseFnArgs(add exprContext, remove exprContext) ([]js_ast.Arg, bool, error) {
	defer p.enterContext(add|ctxIn, remove|ctxDecorator|ctxNoArrowReturnType)()

	if err := p.expect(js_lexer.TOpenParen); err != nil {
		return nil, false, err
	}

	args := []js_ast.Arg{}
	hasRest := false
	for p.lexer.Token != js_lexer.TCloseParen {
		argStart := p.start()
		arg := js_ast.Arg{}

		// "(@dec x) => {}"
		if p.lexer.Token == js_lexer.TAt {
			decorators, err := p.parseDecorators()
			if err != nil {
				return nil, false, err
			}
			arg.Decorators = decorators
		}

		if p.lexer.Token == js_lexer.TDotDotDot {
			p.lexer.Next()
			arg.IsRest = true
			hasRest = true
		} else if p.options.ts {
			p.skipTypeScriptParameterModifiers()
		}

		// "function f(this: T) {}"
		if p.options.ts && p.lexer.Token == js_lexer.TThis {
			arg.Binding = js_ast.Binding{Span: p.lexer.Span(), Data: &js_ast.BIdentifier{Name: "this"}}
			p.lexer.Next()
		} else {
			binding, err := p.parseBinding()
			if err != nil {
				return nil, false, err
			}
			arg.Binding = binding
		}

		if p.options.ts && p.lexer.Token == js_lexer.TQuestion {
			p.lexer.Next()
			arg.IsOptional = true
		}

		if p.options.ts && p.lexer.Token == js_lexer.TColon {
			p.lexer.Next()
			typ, err := p.parseTypeScriptType()
			if err != nil {
				return nil, false, err
			}
			arg.TypeOrNil = &typ
		}

		if !arg.IsRest && p.lexer.Token == js_lexer.TEquals {
			p.lexer.Next()
			value, err := p.parseAssign()
			if err != nil {
				return nil, false, err
			}
			arg.DefaultOrNil = value
		}

		arg.Span = p.spanFrom(argStart)
		args = append(args, arg)

		if p.lexer.Token != js_lexer.TComma {
			break
		}

		// A rest argument must be last
		if arg.IsRest {
			return nil, false, p.lexer.Expected(js_lexer.TCloseParen)
		}
		p.lexer.Next()
	}

	if err := p.expect(js_lexer.TCloseParen); err != nil {
		return nil, false, err
	}
	return args, hasRest, nil
}

func (p *parser) parseFnBody(add exprContext, remove exprContext) (js_ast.FnBody, error) {
	defer p.enterContext(add|ctxReturn, remove)()

	start := p.start()
	if err := p.expect(js_lexer.TOpenBrace); err != nil {
		return js_ast.FnBody{}, err
	}
	stmts, err := p.parseStmtsUpTo(js_lexer.TCloseBrace)
	if err != nil {
		return js_ast.FnBody{}, err
	}
	if err := p.expect(js_lexer.TCloseBrace); err != nil {
		return js_ast.FnBody{}, err
	}
	return js_ast.FnBody{Span: p.spanFrom(start), Stmts: stmts}, nil
}

func (p *parser) parseBinding() (js_ast.Binding, error) {
	start := p.start()

	switch p.lexer.Token {
	case js_lexer.TIdentifier:
		name := p.lexer.Identifier
		p.checkIdentifier(name, p.lexer.Range())
		p.lexer.Next()
		return js_ast.Binding{Span: p.spanFrom(start), Data: &js_ast.BIdentifier{Name: name}}, nil

	case js_lexer.TOpenBracket:
		p.lexer.Next()
		items := []js_ast.ArrayBinding{}
		hasSpread := false

		for p.lexer.Token != js_lexer.TCloseBracket {
			if p.lexer.Token == js_lexer.TComma {
				loc := p.start()
				items = append(items, js_ast.ArrayBinding{Binding: js_ast.Binding{Span: logger.Span{Start: loc, End: loc}, Data: &js_ast.BMissing{}}})
			} else {
				if p.lexer.Token == js_lexer.TDotDotDot {
					p.lexer.Next()
					hasSpread = true
				}

				binding, err := p.parseBinding()
				if err != nil {
					return js_ast.Binding{}, err
				}
				item := js_ast.ArrayBinding{Binding: binding}

				if !hasSpread && p.lexer.Token == js_lexer.TEquals {
					p.lexer.Next()
					value, err := p.parseNestedAssign()
					if err != nil {
						return js_ast.Binding{}, err
					}
					item.DefaultOrNil = value
				}
				items = append(items, item)

				// A rest element must be last
				if hasSpread {
					break
				}
			}

			if p.lexer.Token != js_lexer.TComma {
				break
			}
			p.lexer.Next()
		}

		if err := p.expect(js_lexer.TCloseBracket); err != nil {
			return js_ast.Binding{}, err
		}
		return js_ast.Binding{Span: p.spanFrom(start), Data: &js_ast.BArray{Items: items, HasSpread: hasSpread}}, nil

	case js_lexer.TOpenBrace:
		p.lexer.Next()
		properties := []js_ast.PropertyBinding{}

		for p.lexer.Token != js_lexer.TCloseBrace {
			property, err := p.parsePropertyBinding()
			if err != nil {
				return js_ast.Binding{}, err
			}
			properties = append(properties, property)

			// A rest property must be last
			if property.IsSpread || p.lexer.Token != js_lexer.TComma {
				break
			}
			p.lexer.Next()
		}

		if err := p.expect(js_lexer.TCloseBrace); err != nil {
			return js_ast.Binding{}, err
		}
		return js_ast.Binding{Span: p.spanFrom(start), Data: &js_ast.BObject{Properties: properties}}, nil
	}

	return js_ast.Binding{}, p.lexer.Expected(js_lexer.TIdentifier)
}

func (p *parser) parsePropertyBinding() (js_ast.PropertyBinding, error) {
	start := p.start()
	property := js_ast.PropertyBinding{}

	switch p.lexer.Token {
	case js_lexer.TDotDotDot:
		p.lexer.Next()
		if p.lexer.Token != js_lexer.TIdentifier {
			return property, p.lexer.Expected(js_lexer.TIdentifier)
		}
		value, err := p.parseBinding()
		if err != nil {
			return property, err
		}
		property.Value = value
		property.IsSpread = true
		property.Span = p.spanFrom(start)
		return property, nil

	case js_lexer.TNumericLiteral, js_lexer.TStringLiteral, js_lexer.TBigIntegerLiteral:
		key, err := p.parsePrimary()
		if err != nil {
			return property, err
		}
		property.Key = key

	case js_lexer.TOpenBracket:
		key, err := p.parseComputedKey()
		if err != nil {
			return property, err
		}
		property.Key = key
		property.IsComputed = true

	default:
		if !p.lexer.IsIdentifierOrKeyword() {
			return property, p.lexer.Expected(js_lexer.TIdentifier)
		}
		name := p.lexer.Identifier
		nameRange := p.lexer.Range()
		isIdentifier := p.lexer.Token == js_lexer.TIdentifier
		p.lexer.Next()
		property.Key = js_ast.Expr{Span: nameRange.Span(), Data: &js_ast.EIdentifier{Name: name}}

		// "{a}" and "{a = 1}"
		if p.lexer.Token != js_lexer.TColon {
			if !isIdentifier {
				return property, p.lexer.Expected(js_lexer.TColon)
			}
			p.checkIdentifier(name, nameRange)
			property.Value = js_ast.Binding{Span: nameRange.Span(), Data: &js_ast.BIdentifier{Name: name}}
			property.IsShorthand = true
		}
	}

	if !property.IsShorthand {
		if err := p.expect(js_lexer.TColon); err != nil {
			return property, err
		}
		value, err := p.parseBinding()
		if err != nil {
			return property, err
		}
		property.Value = value
	}

	if p.lexer.Token == js_lexer.TEquals {
		p.lexer.Next()
		value, err := p.parseNestedAssign()
		if err != nil {
			return property, err
		}
		property.DefaultOrNil = value
	}

	property.Span = p.spanFrom(start)
	return property, nil
}

// Default values in bindings always allow "in"
func (p *parser) parseNestedAssign() (js_ast.Expr, error) {
	defer p.enterNested()()
	return p.parseAssign()
}

// "[key]"
func (p *parser) parseComputedKey() (js_ast.Expr, error) {
	defer p.enterNested()()
	p.lexer.Next()
	key, err := p.parseAssign()
	if err != nil {
		return js_ast.Expr{}, err
	}
	if err := p.expect(js_lexer.TCloseBracket); err != nil {
		return js_ast.Expr{}, err
	}
	return key, nil
}

// "@a @b.c @d()" before a class or a class member
func (p *parser) parseDecorators() ([]js_ast.Expr, error) {
	decorators := []js_ast.Expr{}
	for p.lexer.Token == js_lexer.TAt {
		p.lexer.Next()
		value, err := func() (js_ast.Expr, error) {
			defer p.enterContext(ctxDecorator, 0)()
			return p.parseLHS()
		}()
		if err != nil {
			return nil, err
		}
		decorators = append(decorators, value)
	}
	return decorators, nil
}
