package js_parser

import (
	"github.com/esexpr/esexpr/internal/js_ast"
	"github.com/esexpr/esexpr/internal/js_lexer"
	"github.com/esexpr/esexpr/internal/logger"
)

// Array and object literals are parsed as expressions first, even when they
// turn out to be the target of a destructuring assignment. This is the
// "cover grammar": the literal is converted to a pattern once the "=" after
// it is seen. A few things are only valid in one of the two forms. Shorthand
// properties with initializers such as "{a = 1}" are only valid in patterns,
// and methods and getters are only valid in literals.

// Returns true if the literal that just ended will be converted to a pattern
// because of the token after it
func (p *parser) willNeedBindingPattern() bool {
	switch p.lexer.Token {
	case js_lexer.TEquals:
		// "[a] = b;"
		return true

	case js_lexer.TIn:
		// "for ([a] in b) {}"
		return !p.has(ctxIn)

	case js_lexer.TIdentifier:
		// "for ([a] of b) {}"
		return !p.has(ctxIn) && p.lexer.IsContextualKeyword("of")
	}
	return false
}

func (p *parser) parseArrayLiteral(start int32) (js_ast.Expr, error) {
	coverMark := len(p.coverInits)

	array, err := func() (*js_ast.EArray, error) {
		defer p.enterNested()()
		p.lexer.Next()
		array := &js_ast.EArray{Items: []js_ast.Expr{}}

		for p.lexer.Token != js_lexer.TCloseBracket {
			switch p.lexer.Token {
			case js_lexer.TComma:
				loc := p.start()
				array.Items = append(array.Items, js_ast.Expr{Span: logger.Span{Start: loc, End: loc}, Data: &js_ast.EMissing{}})

			default:
				item, err := p.parseSpreadOrAssign()
				if err != nil {
					return nil, err
				}
				array.Items = append(array.Items, item)

				// "[...a, b] = c" is a syntax error
				if _, ok := item.Data.(*js_ast.ESpread); ok && p.lexer.Token == js_lexer.TComma && array.CommaAfterSpread.Start == 0 {
					array.CommaAfterSpread = p.lexer.Loc()
				}
			}

			if p.lexer.Token != js_lexer.TComma {
				break
			}
			p.lexer.Next()
		}

		if err := p.expect(js_lexer.TCloseBracket); err != nil {
			return nil, err
		}
		return array, nil
	}()
	if err != nil {
		return js_ast.Expr{}, err
	}

	if p.willNeedBindingPattern() {
		p.coverInits = p.coverInits[:coverMark]
	}
	return js_ast.Expr{Span: p.spanFrom(start), Data: array}, nil
}

func (p *parser) parseObjectLiteral(start int32) (js_ast.Expr, error) {
	coverMark := len(p.coverInits)

	properties, err := func() ([]js_ast.Property, error) {
		defer p.enterNested()()
		p.lexer.Next()
		properties := []js_ast.Property{}

		for p.lexer.Token != js_lexer.TCloseBrace {
			propStart := p.start()
			if p.lexer.Token == js_lexer.TDotDotDot {
				p.lexer.Next()
				value, err := p.parseAssign()
				if err != nil {
					return nil, err
				}
				properties = append(properties, js_ast.Property{
					Span: p.spanFrom(propStart),
					Kind: js_ast.PropertySpread,
					Key:  value,
				})
			} else {
				property, err := p.parseProperty(propStart, js_ast.PropertyField, propertyOpts{})
				if err != nil {
					return nil, err
				}
				properties = append(properties, property)
			}

			if p.lexer.Token != js_lexer.TComma {
				break
			}
			p.lexer.Next()
		}

		if err := p.expect(js_lexer.TCloseBrace); err != nil {
			return nil, err
		}
		return properties, nil
	}()
	if err != nil {
		return js_ast.Expr{}, err
	}

	if p.willNeedBindingPattern() {
		p.coverInits = p.coverInits[:coverMark]
	}
	return js_ast.Expr{Span: p.spanFrom(start), Data: &js_ast.EObject{Properties: properties}}, nil
}

// Identifiers and non-optional member accesses can be assigned to. So can
// TypeScript wrappers around them, such as "a! = b" and "(a as T) = b".
func (p *parser) isSimpleAssignTarget(expr js_ast.Expr) bool {
	switch e := expr.Data.(type) {
	case *js_ast.EIdentifier:
		return true
	case *js_ast.EDot:
		return e.OptionalChain == js_ast.OptionalChainNone
	case *js_ast.EIndex:
		return e.OptionalChain == js_ast.OptionalChainNone
	case *js_ast.EParen, *js_ast.ETSAs, *js_ast.ETSSatisfies, *js_ast.ETSNonNull, *js_ast.ETSTypeAssertion:
		return p.isSimpleAssignTarget(js_ast.UnwrapTypeScriptAndParens(expr))
	}
	return false
}

// Converts the left side of "=" to an assignment target. Array and object
// literals become patterns. A parenthesized literal such as "({}) = a" is
// reported but parsing continues, since the intent is clear. Anything else
// that isn't a simple target is a fatal error.
func (p *parser) toAssignTarget(expr js_ast.Expr) (js_ast.Expr, error) {
	inner := expr
	if paren, ok := expr.Data.(*js_ast.EParen); ok {
		inner = paren.Value
	}

	switch inner.Data.(type) {
	case *js_ast.EArray, *js_ast.EObject:
		if p.isParenthesized(expr) {
			p.addError(expr.Span.Range(), "Invalid assignment target")
			return expr, nil
		}
		return p.toPattern(expr)
	}

	if !p.isSimpleAssignTarget(expr) {
		return js_ast.Expr{}, p.fail(expr.Span.Range(), "Invalid assignment target")
	}
	return expr, nil
}

// The targets nested inside a pattern follow the same rules, except that a
// parenthesized literal is never allowed
func (p *parser) toNestedTarget(expr js_ast.Expr) (js_ast.Expr, error) {
	switch expr.Data.(type) {
	case *js_ast.EArray, *js_ast.EObject:
		if !p.isParenthesized(expr) {
			return p.toPattern(expr)
		}
	default:
		if p.isSimpleAssignTarget(expr) {
			return expr, nil
		}
	}
	return js_ast.Expr{}, p.fail(expr.Span.Range(), "Invalid assignment target")
}

// "[a = 1] = b" was parsed as an array containing an assignment, and that
// assignment's target has already been converted
func (p *parser) splitDefault(expr js_ast.Expr) (js_ast.Expr, js_ast.Expr, error) {
	if assign, ok := expr.Data.(*js_ast.EAssign); ok && assign.Op == js_ast.BinOpAssign && !p.isParenthesized(expr) {
		return assign.Target, assign.Value, nil
	}
	target, err := p.toNestedTarget(expr)
	return target, js_ast.Expr{}, err
}

func (p *parser) toPattern(expr js_ast.Expr) (js_ast.Expr, error) {
	switch e := expr.Data.(type) {
	case *js_ast.EArray:
		if e.CommaAfterSpread.Start != 0 {
			return js_ast.Expr{}, p.fail(logger.Range{Loc: e.CommaAfterSpread, Len: 1}, "Unexpected \",\" after rest pattern")
		}

		pattern := &js_ast.EArrayPattern{Items: []js_ast.PatternItem{}}
		for _, item := range e.Items {
			switch v := item.Data.(type) {
			case *js_ast.EMissing:
				pattern.Items = append(pattern.Items, js_ast.PatternItem{})

			case *js_ast.ESpread:
				rest, err := p.toNestedTarget(v.Value)
				if err != nil {
					return js_ast.Expr{}, err
				}
				pattern.RestOrNil = rest

			default:
				target, value, err := p.splitDefault(item)
				if err != nil {
					return js_ast.Expr{}, err
				}
				pattern.Items = append(pattern.Items, js_ast.PatternItem{TargetOrNil: target, DefaultOrNil: value})
			}
		}
		return js_ast.Expr{Span: expr.Span, Data: pattern}, nil

	case *js_ast.EObject:
		pattern := &js_ast.EObjectPattern{Properties: []js_ast.PatternProperty{}}
		for i, property := range e.Properties {
			switch {
			case property.Kind == js_ast.PropertySpread:
				if i+1 < len(e.Properties) {
					return js_ast.Expr{}, p.fail(property.Span.Range(), "Invalid rest element")
				}
				if !p.isSimpleAssignTarget(property.Key) {
					return js_ast.Expr{}, p.fail(property.Key.Span.Range(), "Invalid assignment target")
				}
				pattern.RestOrNil = property.Key

			case property.IsMethod || property.Kind != js_ast.PropertyField:
				return js_ast.Expr{}, p.fail(property.Span.Range(), "Invalid assignment target")

			case property.IsShorthand:
				pattern.Properties = append(pattern.Properties, js_ast.PatternProperty{
					Span:         property.Span,
					Key:          property.Key,
					Target:       property.ValueOrNil,
					DefaultOrNil: property.InitializerOrNil,
					IsShorthand:  true,
				})

			default:
				target, value, err := p.splitDefault(property.ValueOrNil)
				if err != nil {
					return js_ast.Expr{}, err
				}
				pattern.Properties = append(pattern.Properties, js_ast.PatternProperty{
					Span:         property.Span,
					Key:          property.Key,
					Target:       target,
					DefaultOrNil: value,
					IsComputed:   property.IsComputed,
				})
			}
		}
		return js_ast.Expr{Span: expr.Span, Data: pattern}, nil
	}

	return js_ast.Expr{}, p.fail(expr.Span.Range(), "Invalid assignment target")
}
