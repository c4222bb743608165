// This file contains code for parsing TypeScript syntax. The parser skips
// over type expressions as if they were whitespace and doesn't build a type
// AST. Only the source text and location of each type are kept.

package js_parser

import (
	"fmt"

	"github.com/esexpr/esexpr/internal/js_ast"
	"github.com/esexpr/esexpr/internal/js_lexer"
	"github.com/esexpr/esexpr/internal/logger"
)

// Runs "skip" and returns the text it skipped over
func (p *parser) captureType(skip func() error) (js_ast.TSType, error) {
	start := p.start()
	if err := skip(); err != nil {
		return js_ast.TSType{}, err
	}
	end := p.lexer.PrevEnd()
	return js_ast.TSType{
		Span: logger.Span{Start: start, End: end},
		Text: p.source.Contents[start:end],
	}, nil
}

func (p *parser) parseTypeScriptType() (js_ast.TSType, error) {
	return p.captureType(func() error { return p.skipTypeScriptType(js_ast.LLowest) })
}

func (p *parser) parseTypeScriptReturnType() (js_ast.TSType, error) {
	return p.captureType(p.skipTypeScriptReturnType)
}

// "<T, U extends V = W>"
func (p *parser) parseTypeScriptTypeParameters() (js_ast.TSType, error) {
	if p.lexer.Token != js_lexer.TLessThan {
		return js_ast.TSType{}, p.lexer.Expected(js_lexer.TLessThan)
	}
	return p.captureType(p.skipTypeScriptTypeParameters)
}

// "<T, U>" in an expression. Each type is kept separately.
func (p *parser) parseTypeScriptTypeArguments() (*js_ast.TSTypeArgs, error) {
	start := p.start()
	if !p.lexer.ExpectLessThan(false /* isInsideJSXElement */) {
		return nil, p.lexer.Expected(js_lexer.TLessThan)
	}

	typeArgs := &js_ast.TSTypeArgs{}
	for {
		typ, err := p.parseTypeScriptType()
		if err != nil {
			return nil, err
		}
		typeArgs.Types = append(typeArgs.Types, typ)
		if p.lexer.Token != js_lexer.TComma {
			break
		}
		p.lexer.Next()
	}

	// This type argument list must end with a ">"
	if err := p.expect(js_lexer.TGreaterThan); err != nil {
		return nil, err
	}
	typeArgs.Span = p.spanFrom(start)
	return typeArgs, nil
}

// Returns nil and rewinds if the "<" is a less-than operator instead
func (p *parser) trySkipTypeScriptTypeArgumentsInExpression() *js_ast.TSTypeArgs {
	var typeArgs *js_ast.TSTypeArgs
	if !p.tryParse(func() error {
		parsed, err := p.parseTypeScriptTypeArguments()
		if err != nil {
			return err
		}

		// The ">" must not be the start of ">=" or ">>"
		if end := p.lexer.PrevEnd(); p.lexer.Loc().Start == end && int(end) < len(p.source.Contents) {
			if c := p.source.Contents[end]; c == '=' || c == '>' {
				return p.lexer.Unexpected()
			}
		}

		// Check the token after this and backtrack if it's the wrong one
		if !p.lexer.HasNewlineBefore && !p.canFollowTypeArgumentsInExpression() {
			return p.lexer.Unexpected()
		}
		typeArgs = parsed
		return nil
	}) {
		return nil
	}
	return typeArgs
}

// This follows the rules of the official TypeScript compiler: type arguments
// are kept unless the token after them could continue the expression as an
// operand, in which case the "<" and ">" are comparisons.
func (p *parser) canFollowTypeArgumentsInExpression() bool {
	switch p.lexer.Token {
	case
		// These are the only tokens that can legally follow a type argument list
		js_lexer.TOpenParen,                     // foo<x>(
		js_lexer.TNoSubstitutionTemplateLiteral, // foo<T> `...`
		js_lexer.TTemplateHead:                  // foo<T> `...${100}...`
		return true

	case
		// "a < b > c" and "a < b >> c" are comparisons and shifts. So are the
		// prefix operators that are also binary operators.
		js_lexer.TLessThan,    // foo<x> <
		js_lexer.TGreaterThan, // foo<x> >
		js_lexer.TPlus,        // foo<x> +
		js_lexer.TMinus:       // foo<x> -
		return false
	}

	// "foo<x> ?? y" and "foo<x> as T" continue an instantiation expression
	if _, ok := p.binaryOp(); ok || p.lexer.IsContextualKeyword("as") || p.lexer.IsContextualKeyword("satisfies") {
		return true
	}
	return !p.canStartUnaryOperand()
}

// "<T>x". The current token is the "<", which may be the start of "<<".
func (p *parser) parseTypeAssertion(start int32) (js_ast.Expr, error) {
	p.lexer.ExpectLessThan(false /* isInsideJSXElement */)
	typ, err := p.parseTypeScriptType()
	if err != nil {
		return js_ast.Expr{}, err
	}
	if err := p.expect(js_lexer.TGreaterThan); err != nil {
		return js_ast.Expr{}, err
	}
	value, err := p.parseUnary()
	if err != nil {
		return js_ast.Expr{}, err
	}
	return js_ast.Expr{Span: p.spanFrom(start), Data: &js_ast.ETSTypeAssertion{Type: typ, Value: value}}, nil
}

var tsParameterModifiers = map[string]bool{
	"public":    true,
	"private":   true,
	"protected": true,
	"readonly":  true,
	"override":  true,
}

// "constructor(public x, private readonly y) {}". A modifier is only a
// modifier when a binding follows it on the same line.
func (p *parser) skipTypeScriptParameterModifiers() {
	for p.lexer.Token == js_lexer.TIdentifier && tsParameterModifiers[p.lexer.Identifier] {
		if !p.lookahead(func() bool {
			p.lexer.Next()
			if p.lexer.HasNewlineBefore {
				return false
			}
			switch p.lexer.Token {
			case js_lexer.TIdentifier, js_lexer.TOpenBrace, js_lexer.TOpenBracket:
				return true
			}
			return false
		}) {
			return
		}
		p.lexer.Next()
	}
}

// "[key: string]: T" in a class body, with optional modifiers before it
func (p *parser) isTypeScriptIndexSignature() bool {
	return p.lookahead(func() bool {
		p.skipTypeScriptIndexSignatureModifiers()
		if p.lexer.Token != js_lexer.TOpenBracket {
			return false
		}
		p.lexer.Next()
		if p.lexer.Token != js_lexer.TIdentifier {
			return false
		}
		p.lexer.Next()
		return p.lexer.Token == js_lexer.TColon
	})
}

func (p *parser) skipTypeScriptIndexSignatureModifiers() {
	for p.lexer.IsContextualKeyword("static") || p.lexer.IsContextualKeyword("readonly") {
		p.lexer.Next()
	}
}

func (p *parser) skipTypeScriptIndexSignature() error {
	p.skipTypeScriptIndexSignatureModifiers()
	if err := p.expect(js_lexer.TOpenBracket); err != nil {
		return err
	}
	if err := p.expect(js_lexer.TIdentifier); err != nil {
		return err
	}
	if err := p.expect(js_lexer.TColon); err != nil {
		return err
	}
	if err := p.skipTypeScriptType(js_ast.LLowest); err != nil {
		return err
	}
	if err := p.expect(js_lexer.TCloseBracket); err != nil {
		return err
	}
	if err := p.expect(js_lexer.TColon); err != nil {
		return err
	}
	if err := p.skipTypeScriptType(js_ast.LLowest); err != nil {
		return err
	}
	return p.expectOrInsertSemicolon()
}

func (p *parser) skipTypeScriptBinding() error {
	switch p.lexer.Token {
	case js_lexer.TIdentifier, js_lexer.TThis:
		p.lexer.Next()

	case js_lexer.TOpenBracket:
		p.lexer.Next()

		// "[, , a]"
		for p.lexer.Token == js_lexer.TComma {
			p.lexer.Next()
		}

		// "[a, b]"
		for p.lexer.Token != js_lexer.TCloseBracket {
			if p.lexer.Token == js_lexer.TDotDotDot {
				p.lexer.Next()
			}
			if err := p.skipTypeScriptBinding(); err != nil {
				return err
			}
			if p.lexer.Token != js_lexer.TComma {
				break
			}
			p.lexer.Next()
		}

		return p.expect(js_lexer.TCloseBracket)

	case js_lexer.TOpenBrace:
		p.lexer.Next()

		for p.lexer.Token != js_lexer.TCloseBrace {
			foundIdentifier := false

			switch p.lexer.Token {
			case js_lexer.TDotDotDot:
				p.lexer.Next()
				if p.lexer.Token != js_lexer.TIdentifier {
					return p.lexer.Unexpected()
				}

				// "{...x}"
				foundIdentifier = true
				p.lexer.Next()

			case js_lexer.TIdentifier:
				// "{x}"
				// "{x: y}"
				foundIdentifier = true
				p.lexer.Next()

			case js_lexer.TStringLiteral, js_lexer.TNumericLiteral:
				// "{1: y}"
				// "{'x': y}"
				p.lexer.Next()

			default:
				if !p.lexer.IsIdentifierOrKeyword() {
					return p.lexer.Unexpected()
				}

				// "{if: x}"
				p.lexer.Next()
			}

			if p.lexer.Token == js_lexer.TColon || !foundIdentifier {
				if err := p.expect(js_lexer.TColon); err != nil {
					return err
				}
				if err := p.skipTypeScriptBinding(); err != nil {
					return err
				}
			}

			if p.lexer.Token != js_lexer.TComma {
				break
			}
			p.lexer.Next()
		}

		return p.expect(js_lexer.TCloseBrace)

	default:
		return p.lexer.Unexpected()
	}
	return nil
}

func (p *parser) skipTypeScriptFnArgs() error {
	if err := p.expect(js_lexer.TOpenParen); err != nil {
		return err
	}

	for p.lexer.Token != js_lexer.TCloseParen {
		// "(...a)"
		if p.lexer.Token == js_lexer.TDotDotDot {
			p.lexer.Next()
		}

		if err := p.skipTypeScriptBinding(); err != nil {
			return err
		}

		// "(a?)"
		if p.lexer.Token == js_lexer.TQuestion {
			p.lexer.Next()
		}

		// "(a: any)"
		if p.lexer.Token == js_lexer.TColon {
			p.lexer.Next()
			if err := p.skipTypeScriptType(js_ast.LLowest); err != nil {
				return err
			}
		}

		// "(a, b)"
		if p.lexer.Token != js_lexer.TComma {
			break
		}
		p.lexer.Next()
	}

	return p.expect(js_lexer.TCloseParen)
}

// This is a spot where the TypeScript grammar is highly ambiguous. Here are
// some cases that are valid:
//
//	let x = (y: any): (() => {}) => { };
//	let x = (y: any): () => {} => { };
//	let x = (y: any): (y) => {} => { };
//	let x = (y: any): (y[]) => {};
//	let x = (y: any): (a | b) => {};
//
// Here are some cases that aren't valid:
//
//	let x = (y: any): (y) => {};
//	let x = (y: any): (y) => {return 0};
//	let x = (y: any): asserts y is (y) => {};
func (p *parser) skipTypeScriptParenOrFnType() error {
	if p.tryParse(func() error {
		if err := p.skipTypeScriptFnArgs(); err != nil {
			return err
		}
		return p.expect(js_lexer.TEqualsGreaterThan)
	}) {
		return p.skipTypeScriptReturnType()
	}

	if err := p.expect(js_lexer.TOpenParen); err != nil {
		return err
	}
	if err := p.skipTypeScriptType(js_ast.LLowest); err != nil {
		return err
	}
	return p.expect(js_lexer.TCloseParen)
}

func (p *parser) skipTypeScriptReturnType() error {
	return p.skipTypeScriptTypeWithOpts(js_ast.LLowest, skipTypeOpts{isReturnType: true})
}

func (p *parser) skipTypeScriptType(level js_ast.L) error {
	return p.skipTypeScriptTypeWithOpts(level, skipTypeOpts{})
}

type skipTypeOpts struct {
	isReturnType     bool
	allowTupleLabels bool
}

type tsTypeIdentifierKind uint8

const (
	tsTypeIdentifierNormal tsTypeIdentifierKind = iota
	tsTypeIdentifierUnique
	tsTypeIdentifierAbstract
	tsTypeIdentifierAsserts
	tsTypeIdentifierPrefix
	tsTypeIdentifierPrimitive
)

var tsTypeIdentifierMap = map[string]tsTypeIdentifierKind{
	"unique":   tsTypeIdentifierUnique,
	"abstract": tsTypeIdentifierAbstract,
	"asserts":  tsTypeIdentifierAsserts,

	"keyof":    tsTypeIdentifierPrefix,
	"readonly": tsTypeIdentifierPrefix,
	"infer":    tsTypeIdentifierPrefix,

	"any":       tsTypeIdentifierPrimitive,
	"never":     tsTypeIdentifierPrimitive,
	"unknown":   tsTypeIdentifierPrimitive,
	"undefined": tsTypeIdentifierPrimitive,
	"object":    tsTypeIdentifierPrimitive,
	"number":    tsTypeIdentifierPrimitive,
	"string":    tsTypeIdentifierPrimitive,
	"boolean":   tsTypeIdentifierPrimitive,
	"bigint":    tsTypeIdentifierPrimitive,
	"symbol":    tsTypeIdentifierPrimitive,
}

// "x is T" after a parameter name or "this" in a return type
func (p *parser) skipTypeScriptTypePredicate() (bool, error) {
	if p.lexer.IsContextualKeyword("is") && !p.lexer.HasNewlineBefore {
		p.lexer.Next()
		return true, p.skipTypeScriptType(js_ast.LLowest)
	}
	return false, nil
}

func (p *parser) skipTypeScriptTypeWithOpts(level js_ast.L, opts skipTypeOpts) error {
	if done, err := p.skipTypeScriptPrefixType(opts); done || err != nil {
		return err
	}

	for {
		switch p.lexer.Token {
		case js_lexer.TBar:
			if level >= js_ast.LBitwiseOr {
				return nil
			}
			p.lexer.Next()
			if err := p.skipTypeScriptType(js_ast.LBitwiseOr); err != nil {
				return err
			}

		case js_lexer.TAmpersand:
			if level >= js_ast.LBitwiseAnd {
				return nil
			}
			p.lexer.Next()
			if err := p.skipTypeScriptType(js_ast.LBitwiseAnd); err != nil {
				return err
			}

		case js_lexer.TExclamation:
			// A postfix "!" is allowed in JSDoc types. It must still be consumed
			// so that "x as T!" doesn't leave a stray "!" behind.
			if p.lexer.HasNewlineBefore {
				return nil
			}
			p.lexer.Next()

		case js_lexer.TDot:
			p.lexer.Next()
			if !p.lexer.IsIdentifierOrKeyword() {
				return p.lexer.Expected(js_lexer.TIdentifier)
			}
			p.lexer.Next()

			// "{ <A extends B>(): c.d \n <E extends F>(): g.h }" must not become a single type
			if !p.lexer.HasNewlineBefore {
				if err := p.skipTypeScriptTypeArguments(); err != nil {
					return err
				}
			}

		case js_lexer.TOpenBracket:
			// "{ ['x']: string \n ['y']: string }" must not become a single type
			if p.lexer.HasNewlineBefore {
				return nil
			}
			p.lexer.Next()
			if p.lexer.Token != js_lexer.TCloseBracket {
				if err := p.skipTypeScriptType(js_ast.LLowest); err != nil {
					return err
				}
			}
			if err := p.expect(js_lexer.TCloseBracket); err != nil {
				return err
			}

		case js_lexer.TExtends:
			// "{ x: number \n extends: boolean }" must not become a single type
			if p.lexer.HasNewlineBefore || level >= js_ast.LConditional {
				return nil
			}
			p.lexer.Next()

			// The type following "extends" is not permitted to be another conditional type
			if err := p.skipTypeScriptType(js_ast.LConditional); err != nil {
				return err
			}
			if err := p.expect(js_lexer.TQuestion); err != nil {
				return err
			}
			if err := p.skipTypeScriptType(js_ast.LLowest); err != nil {
				return err
			}
			if err := p.expect(js_lexer.TColon); err != nil {
				return err
			}
			if err := p.skipTypeScriptType(js_ast.LLowest); err != nil {
				return err
			}

		default:
			return nil
		}
	}
}

// Returns true if the type ended with a type predicate or a tuple label,
// after which no suffix can follow
func (p *parser) skipTypeScriptPrefixType(opts skipTypeOpts) (bool, error) {
	for {
		switch p.lexer.Token {
		case js_lexer.TNumericLiteral, js_lexer.TBigIntegerLiteral, js_lexer.TStringLiteral,
			js_lexer.TNoSubstitutionTemplateLiteral, js_lexer.TTrue, js_lexer.TFalse,
			js_lexer.TNull, js_lexer.TVoid:
			p.lexer.Next()

		case js_lexer.TConst:
			r := p.lexer.Range()
			p.lexer.Next()

			// "[const: number]"
			if opts.allowTupleLabels && p.lexer.Token == js_lexer.TColon {
				p.addError(r, "Unexpected \"const\"")
			}

		case js_lexer.TThis:
			p.lexer.Next()

			// "function check(): this is boolean"
			if ok, err := p.skipTypeScriptTypePredicate(); ok || err != nil {
				return true, err
			}

		case js_lexer.TMinus:
			// "-123"
			// "-123n"
			p.lexer.Next()
			if p.lexer.Token == js_lexer.TBigIntegerLiteral {
				p.lexer.Next()
			} else if err := p.expect(js_lexer.TNumericLiteral); err != nil {
				return false, err
			}

		case js_lexer.TAmpersand, js_lexer.TBar:
			// "type Foo = | A | B" and "type Foo = & A & B"
			p.lexer.Next()
			continue

		case js_lexer.TImport:
			// "import('fs')"
			p.lexer.Next()

			// "[import: number]"
			if opts.allowTupleLabels && p.lexer.Token == js_lexer.TColon {
				return true, nil
			}

			if err := p.expect(js_lexer.TOpenParen); err != nil {
				return false, err
			}
			if err := p.expect(js_lexer.TStringLiteral); err != nil {
				return false, err
			}
			if err := p.expect(js_lexer.TCloseParen); err != nil {
				return false, err
			}

		case js_lexer.TNew:
			// "new () => Foo"
			// "new <T>() => Foo<T>"
			p.lexer.Next()

			// "[new: number]"
			if opts.allowTupleLabels && p.lexer.Token == js_lexer.TColon {
				return true, nil
			}

			if p.lexer.Token == js_lexer.TLessThan {
				if err := p.skipTypeScriptTypeParameters(); err != nil {
					return false, err
				}
			}
			if err := p.skipTypeScriptParenOrFnType(); err != nil {
				return false, err
			}

		case js_lexer.TLessThan:
			// "<T>() => Foo<T>"
			if err := p.skipTypeScriptTypeParameters(); err != nil {
				return false, err
			}
			if err := p.skipTypeScriptParenOrFnType(); err != nil {
				return false, err
			}

		case js_lexer.TOpenParen:
			// "(number | string)"
			if err := p.skipTypeScriptParenOrFnType(); err != nil {
				return false, err
			}

		case js_lexer.TIdentifier:
			kind := tsTypeIdentifierMap[p.lexer.Identifier]

			if kind == tsTypeIdentifierPrefix {
				p.lexer.Next()

				// {[keyof: string]: number}
				// {[readonly: string]: number}
				// {[infer: string]: number}
				if p.lexer.Token != js_lexer.TColon {
					if err := p.skipTypeScriptType(js_ast.LPrefix); err != nil {
						return false, err
					}
				}
				return false, nil
			}

			checkTypeArgs := true

			switch kind {
			case tsTypeIdentifierUnique:
				p.lexer.Next()

				// "let foo: unique symbol"
				if p.lexer.IsContextualKeyword("symbol") {
					p.lexer.Next()
					return false, nil
				}

			case tsTypeIdentifierAbstract:
				p.lexer.Next()

				// "let foo: abstract new () => {}"
				if p.lexer.Token == js_lexer.TNew {
					continue
				}

			case tsTypeIdentifierAsserts:
				p.lexer.Next()

				// "function assert(x: boolean): asserts x"
				// "function assert(x: boolean): asserts x is boolean"
				if opts.isReturnType && !p.lexer.HasNewlineBefore &&
					(p.lexer.Token == js_lexer.TIdentifier || p.lexer.Token == js_lexer.TThis) {
					p.lexer.Next()
				}

			case tsTypeIdentifierPrimitive:
				p.lexer.Next()
				checkTypeArgs = false

			default:
				p.lexer.Next()
			}

			// "function assert(x: any): x is boolean"
			if ok, err := p.skipTypeScriptTypePredicate(); ok || err != nil {
				return true, err
			}

			// "let foo: any \n <number>foo" must not become a single type
			if checkTypeArgs && !p.lexer.HasNewlineBefore {
				if err := p.skipTypeScriptTypeArguments(); err != nil {
					return false, err
				}
			}

		case js_lexer.TTypeof:
			p.lexer.Next()

			// "[typeof: number]"
			if opts.allowTupleLabels && p.lexer.Token == js_lexer.TColon {
				return true, nil
			}

			// "typeof import('fs')"
			if p.lexer.Token == js_lexer.TImport {
				continue
			}

			// "typeof x"
			// "typeof x.y"
			for {
				if !p.lexer.IsIdentifierOrKeyword() {
					return false, p.lexer.Expected(js_lexer.TIdentifier)
				}
				p.lexer.Next()
				if p.lexer.Token != js_lexer.TDot {
					break
				}
				p.lexer.Next()
			}

			// "typeof x<T>"
			if !p.lexer.HasNewlineBefore {
				if err := p.skipTypeScriptTypeArguments(); err != nil {
					return false, err
				}
			}

		case js_lexer.TOpenBracket:
			// "[number, string]"
			// "[first: number, second: string]"
			p.lexer.Next()
			for p.lexer.Token != js_lexer.TCloseBracket {
				if p.lexer.Token == js_lexer.TDotDotDot {
					p.lexer.Next()
				}
				if err := p.skipTypeScriptTypeWithOpts(js_ast.LLowest, skipTypeOpts{allowTupleLabels: true}); err != nil {
					return false, err
				}
				if p.lexer.Token == js_lexer.TQuestion {
					p.lexer.Next()
				}
				if p.lexer.Token == js_lexer.TColon {
					p.lexer.Next()
					if err := p.skipTypeScriptType(js_ast.LLowest); err != nil {
						return false, err
					}
				}
				if p.lexer.Token != js_lexer.TComma {
					break
				}
				p.lexer.Next()
			}
			if err := p.expect(js_lexer.TCloseBracket); err != nil {
				return false, err
			}

		case js_lexer.TOpenBrace:
			if err := p.skipTypeScriptObjectType(); err != nil {
				return false, err
			}

		case js_lexer.TTemplateHead:
			// "`${'a' | 'b'}-${'c' | 'd'}`"
			for {
				p.lexer.Next()
				if err := p.skipTypeScriptType(js_ast.LLowest); err != nil {
					return false, err
				}
				if p.lexer.Token != js_lexer.TCloseBrace {
					return false, p.lexer.Expected(js_lexer.TCloseBrace)
				}
				p.lexer.RescanCloseBraceAsTemplateToken()
				if p.lexer.Token == js_lexer.TTemplateTail {
					p.lexer.Next()
					break
				}
				if p.lexer.Token != js_lexer.TTemplateMiddle {
					return false, p.lexer.Unexpected()
				}
			}

		default:
			// "[function: number]"
			if opts.allowTupleLabels && p.lexer.IsIdentifierOrKeyword() {
				if p.lexer.Token != js_lexer.TFunction {
					p.addError(p.lexer.Range(), fmt.Sprintf("Unexpected %q", p.lexer.Raw()))
				}
				p.lexer.Next()
				if p.lexer.Token != js_lexer.TColon {
					return false, p.lexer.Expected(js_lexer.TColon)
				}
				return true, nil
			}

			return false, p.lexer.Unexpected()
		}
		return false, nil
	}
}

func (p *parser) skipTypeScriptObjectType() error {
	if err := p.expect(js_lexer.TOpenBrace); err != nil {
		return err
	}

	for p.lexer.Token != js_lexer.TCloseBrace {
		// "{ -readonly [K in keyof T]: T[K] }"
		// "{ +readonly [K in keyof T]: T[K] }"
		if p.lexer.Token == js_lexer.TPlus || p.lexer.Token == js_lexer.TMinus {
			p.lexer.Next()
		}

		// Skip over modifiers and the property identifier
		foundKey := false
		for p.lexer.IsIdentifierOrKeyword() ||
			p.lexer.Token == js_lexer.TStringLiteral ||
			p.lexer.Token == js_lexer.TNumericLiteral {
			p.lexer.Next()
			foundKey = true
		}

		if p.lexer.Token == js_lexer.TOpenBracket {
			// Index signature or computed property
			p.lexer.Next()
			if err := p.skipTypeScriptType(js_ast.LLowest); err != nil {
				return err
			}

			// "{ [key: string]: number }"
			// "{ readonly [K in keyof T]: T[K] }"
			switch p.lexer.Token {
			case js_lexer.TColon:
				p.lexer.Next()
				if err := p.skipTypeScriptType(js_ast.LLowest); err != nil {
					return err
				}

			case js_lexer.TIn:
				p.lexer.Next()
				if err := p.skipTypeScriptType(js_ast.LLowest); err != nil {
					return err
				}

				// "{ [K in keyof T as `get-${K}`]: T[K] }"
				if p.lexer.IsContextualKeyword("as") {
					p.lexer.Next()
					if err := p.skipTypeScriptType(js_ast.LLowest); err != nil {
						return err
					}
				}
			}

			if err := p.expect(js_lexer.TCloseBracket); err != nil {
				return err
			}

			// "{ [K in keyof T]+?: T[K] }"
			// "{ [K in keyof T]-?: T[K] }"
			if p.lexer.Token == js_lexer.TPlus || p.lexer.Token == js_lexer.TMinus {
				p.lexer.Next()
			}

			foundKey = true
		}

		// "?" indicates an optional property
		// "!" indicates an initialization assertion
		if foundKey && (p.lexer.Token == js_lexer.TQuestion || p.lexer.Token == js_lexer.TExclamation) {
			p.lexer.Next()
		}

		// Type parameters come right after the optional mark
		if p.lexer.Token == js_lexer.TLessThan {
			if err := p.skipTypeScriptTypeParameters(); err != nil {
				return err
			}
		}

		switch p.lexer.Token {
		case js_lexer.TColon:
			// Regular property
			if !foundKey {
				return p.lexer.Expected(js_lexer.TIdentifier)
			}
			p.lexer.Next()
			if err := p.skipTypeScriptType(js_ast.LLowest); err != nil {
				return err
			}

		case js_lexer.TOpenParen:
			// Method signature
			if err := p.skipTypeScriptFnArgs(); err != nil {
				return err
			}
			if p.lexer.Token == js_lexer.TColon {
				p.lexer.Next()
				if err := p.skipTypeScriptReturnType(); err != nil {
					return err
				}
			}

		default:
			if !foundKey {
				return p.lexer.Unexpected()
			}
		}

		switch p.lexer.Token {
		case js_lexer.TCloseBrace:

		case js_lexer.TComma, js_lexer.TSemicolon:
			p.lexer.Next()

		default:
			if !p.lexer.HasNewlineBefore {
				return p.lexer.Unexpected()
			}
		}
	}

	return p.expect(js_lexer.TCloseBrace)
}

// This is the type parameter declarations that go with other declarations
// such as classes, functions, and arrow functions. The current token must be
// a "<".
func (p *parser) skipTypeScriptTypeParameters() error {
	p.lexer.Next()

	for {
		// "<const T>", "<in T>", and "<out T>"
		for {
			if p.lexer.Token == js_lexer.TConst || p.lexer.Token == js_lexer.TIn {
				p.lexer.Next()
				continue
			}
			if p.lexer.IsContextualKeyword("out") && p.lookahead(func() bool {
				p.lexer.Next()
				return p.lexer.Token == js_lexer.TIdentifier
			}) {
				p.lexer.Next()
				continue
			}
			break
		}

		if err := p.expect(js_lexer.TIdentifier); err != nil {
			return err
		}

		// "class Foo<T extends number> {}"
		if p.lexer.Token == js_lexer.TExtends {
			p.lexer.Next()
			if err := p.skipTypeScriptType(js_ast.LLowest); err != nil {
				return err
			}
		}

		// "class Foo<T = void> {}"
		if p.lexer.Token == js_lexer.TEquals {
			p.lexer.Next()
			if err := p.skipTypeScriptType(js_ast.LLowest); err != nil {
				return err
			}
		}

		if p.lexer.Token != js_lexer.TComma {
			break
		}
		p.lexer.Next()
		if p.lexer.Token == js_lexer.TGreaterThan {
			break
		}
	}

	return p.expect(js_lexer.TGreaterThan)
}

// Type arguments inside a type. Nothing happens if the current token isn't
// a "<".
func (p *parser) skipTypeScriptTypeArguments() error {
	switch p.lexer.Token {
	case js_lexer.TLessThan, js_lexer.TLessThanEquals,
		js_lexer.TLessThanLessThan, js_lexer.TLessThanLessThanEquals:
	default:
		return nil
	}

	p.lexer.ExpectLessThan(false /* isInsideJSXElement */)

	for {
		if err := p.skipTypeScriptType(js_ast.LLowest); err != nil {
			return err
		}
		if p.lexer.Token != js_lexer.TComma {
			break
		}
		p.lexer.Next()
	}

	// This type argument list must end with a ">"
	return p.expect(js_lexer.TGreaterThan)
}
