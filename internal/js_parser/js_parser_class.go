package js_parser

import (
	"github.com/esexpr/esexpr/internal/js_ast"
	"github.com/esexpr/esexpr/internal/js_lexer"
)

func (p *parser) parseClassExpr(start int32, decorators []js_ast.Expr) (js_ast.Expr, error) {
	class, err := p.parseClass(decorators)
	if err != nil {
		return js_ast.Expr{}, err
	}
	return js_ast.Expr{Span: p.spanFrom(start), Data: &js_ast.EClass{Class: class}}, nil
}

// The current token is "class"
func (p *parser) parseClass(decorators []js_ast.Expr) (js_ast.Class, error) {
	class := js_ast.Class{Decorators: decorators}
	p.lexer.Next()

	// "class implements Foo {}" has no name in TypeScript
	if p.lexer.Token == js_lexer.TIdentifier && !(p.options.ts && p.lexer.IsContextualKeyword("implements")) {
		class.Name = &js_ast.Ident{Name: p.lexer.Identifier, Span: p.lexer.Span()}
		p.checkIdentifier(class.Name.Name, p.lexer.Range())
		p.lexer.Next()
	}

	if p.options.ts && p.lexer.Token == js_lexer.TLessThan {
		typ, err := p.parseTypeScriptTypeParameters()
		if err != nil {
			return class, err
		}
		class.TypeParamsOrNil = &typ
	}

	if p.lexer.Token == js_lexer.TExtends {
		p.lexer.Next()
		extends, err := p.parseLHS()
		if err != nil {
			return class, err
		}

		// "class A extends B<T> {}"
		if inst, ok := extends.Data.(*js_ast.ETSInstantiation); ok {
			class.ExtendsTypeArgs = &inst.TypeArgs
			extends = inst.Value
		} else if p.options.ts && p.lexer.Token == js_lexer.TLessThan {
			if class.ExtendsTypeArgs, err = p.parseTypeScriptTypeArguments(); err != nil {
				return class, err
			}
		}
		class.ExtendsOrNil = extends
	}

	if p.options.ts && p.lexer.IsContextualKeyword("implements") {
		p.lexer.Next()
		for {
			typ, err := p.parseTypeScriptType()
			if err != nil {
				return class, err
			}
			class.Implements = append(class.Implements, typ)
			if p.lexer.Token != js_lexer.TComma {
				break
			}
			p.lexer.Next()
		}
	}

	bodyStart := p.start()
	properties, err := func() ([]js_ast.Property, error) {
		defer p.enterContext(ctxIn, ctxDecorator|ctxNoArrowReturnType)()

		if err := p.expect(js_lexer.TOpenBrace); err != nil {
			return nil, err
		}

		properties := []js_ast.Property{}
		for p.lexer.Token != js_lexer.TCloseBrace {
			if p.lexer.Token == js_lexer.TSemicolon {
				p.lexer.Next()
				continue
			}

			// "[key: string]: T;"
			if p.options.ts && p.isTypeScriptIndexSignature() {
				if err := p.skipTypeScriptIndexSignature(); err != nil {
					return nil, err
				}
				continue
			}

			propStart := p.start()
			var decorators []js_ast.Expr
			if p.lexer.Token == js_lexer.TAt {
				var err error
				if decorators, err = p.parseDecorators(); err != nil {
					return nil, err
				}
			}

			property, err := p.parseProperty(propStart, js_ast.PropertyField, propertyOpts{isClass: true, decorators: decorators})
			if err != nil {
				return nil, err
			}
			properties = append(properties, property)
		}

		if err := p.expect(js_lexer.TCloseBrace); err != nil {
			return nil, err
		}
		return properties, nil
	}()
	if err != nil {
		return class, err
	}

	class.Properties = properties
	class.BodySpan = p.spanFrom(bodyStart)
	return class, nil
}

type propertyOpts struct {
	decorators  []js_ast.Expr
	isClass     bool
	isStatic    bool
	isAsync     bool
	isGenerator bool
	isAccessor  bool
}

// Parses a property of an object literal or a member of a class body. Any
// modifier keywords before the key are consumed one at a time by calling
// this again with the modifier recorded in "opts".
func (p *parser) parseProperty(start int32, kind js_ast.PropertyKind, opts propertyOpts) (js_ast.Property, error) {
	var key js_ast.Expr
	isComputed := false

	switch p.lexer.Token {
	case js_lexer.TNumericLiteral, js_lexer.TStringLiteral, js_lexer.TBigIntegerLiteral:
		var err error
		if key, err = p.parsePrimary(); err != nil {
			return js_ast.Property{}, err
		}

	case js_lexer.TPrivateIdentifier:
		if !opts.isClass {
			return js_ast.Property{}, p.lexer.Unexpected()
		}
		key = js_ast.Expr{Span: p.lexer.Span(), Data: &js_ast.EPrivateIdentifier{Name: p.lexer.Identifier[1:]}}
		p.lexer.Next()

	case js_lexer.TOpenBracket:
		var err error
		if key, err = p.parseComputedKey(); err != nil {
			return js_ast.Property{}, err
		}
		isComputed = true

	case js_lexer.TAsterisk:
		if kind != js_ast.PropertyField || opts.isGenerator {
			return js_ast.Property{}, p.lexer.Unexpected()
		}
		p.lexer.Next()
		opts.isGenerator = true
		return p.parseProperty(start, kind, opts)

	default:
		if !p.lexer.IsIdentifierOrKeyword() {
			return js_ast.Property{}, p.lexer.Unexpected()
		}
		name := p.lexer.Identifier
		nameRange := p.lexer.Range()
		isIdentifier := p.lexer.Token == js_lexer.TIdentifier
		isEscaped := p.lexer.Raw() != name
		p.lexer.Next()

		// Support contextual keywords
		if kind == js_ast.PropertyField && !opts.isGenerator && !opts.isAsync && !isEscaped {
			// Does the following token look like a key?
			couldBeModifierKeyword := p.lexer.IsIdentifierOrKeyword()
			if !couldBeModifierKeyword {
				switch p.lexer.Token {
				case js_lexer.TOpenBracket, js_lexer.TNumericLiteral, js_lexer.TStringLiteral,
					js_lexer.TBigIntegerLiteral, js_lexer.TAsterisk, js_lexer.TPrivateIdentifier:
					couldBeModifierKeyword = true
				}
			}

			// If so, check for a modifier keyword
			if couldBeModifierKeyword {
				switch name {
				case "get":
					if !opts.isAccessor {
						return p.parseProperty(start, js_ast.PropertyGet, opts)
					}

				case "set":
					if !opts.isAccessor {
						return p.parseProperty(start, js_ast.PropertySet, opts)
					}

				case "async":
					if !p.lexer.HasNewlineBefore && !opts.isAccessor {
						opts.isAsync = true
						return p.parseProperty(start, kind, opts)
					}

				case "static":
					if opts.isClass && !opts.isStatic && !opts.isAccessor {
						opts.isStatic = true
						return p.parseProperty(start, kind, opts)
					}

				case "accessor":
					if opts.isClass && !p.lexer.HasNewlineBefore && !opts.isAccessor {
						opts.isAccessor = true
						return p.parseProperty(start, kind, opts)
					}

				case "declare", "abstract", "public", "private", "protected", "readonly", "override":
					if opts.isClass && p.options.ts {
						return p.parseProperty(start, kind, opts)
					}
				}
			}
		}

		// "class Foo { static {} }"
		if opts.isClass && name == "static" && !isEscaped && kind == js_ast.PropertyField && !opts.isStatic &&
			!opts.isAsync && !opts.isGenerator && !opts.isAccessor && p.lexer.Token == js_lexer.TOpenBrace {
			return p.parseClassStaticBlock(start)
		}

		key = js_ast.Expr{Span: nameRange.Span(), Data: &js_ast.EIdentifier{Name: name}}

		// "{a}" and "{a = 1}"
		if !opts.isClass && kind == js_ast.PropertyField && !opts.isAsync && !opts.isGenerator &&
			p.lexer.Token != js_lexer.TColon && p.lexer.Token != js_lexer.TOpenParen && p.lexer.Token != js_lexer.TLessThan {
			if !isIdentifier {
				return js_ast.Property{}, p.lexer.Expected(js_lexer.TColon)
			}
			p.checkIdentifier(name, nameRange)
			property := js_ast.Property{
				Key:         key,
				ValueOrNil:  js_ast.Expr{Span: nameRange.Span(), Data: &js_ast.EIdentifier{Name: name}},
				IsShorthand: true,
			}

			// This is only valid if the object literal becomes a pattern
			if p.lexer.Token == js_lexer.TEquals {
				p.coverInits = append(p.coverInits, p.lexer.Range())
				p.lexer.Next()
				value, err := p.parseAssign()
				if err != nil {
					return js_ast.Property{}, err
				}
				property.InitializerOrNil = value
			}

			property.Span = p.spanFrom(start)
			return property, nil
		}
	}

	// "a?: T" and "a!: T"
	if p.options.ts && opts.isClass {
		if p.lexer.Token == js_lexer.TQuestion || (p.lexer.Token == js_lexer.TExclamation && !p.lexer.HasNewlineBefore) {
			p.lexer.Next()
		}
	}

	// Class fields
	if opts.isClass && kind == js_ast.PropertyField && !opts.isAsync && !opts.isGenerator &&
		p.lexer.Token != js_lexer.TOpenParen && p.lexer.Token != js_lexer.TLessThan {
		property := js_ast.Property{
			Decorators: opts.decorators,
			Key:        key,
			IsComputed: isComputed,
			IsStatic:   opts.isStatic,
			IsAccessor: opts.isAccessor,
		}

		if p.options.ts && p.lexer.Token == js_lexer.TColon {
			p.lexer.Next()
			typ, err := p.parseTypeScriptType()
			if err != nil {
				return js_ast.Property{}, err
			}
			property.TypeOrNil = &typ
		}

		if p.lexer.Token == js_lexer.TEquals {
			p.lexer.Next()
			value, err := func() (js_ast.Expr, error) {
				defer p.enterContext(ctxIn, ctxAwait|ctxYield|ctxReturn)()
				return p.parseAssign()
			}()
			if err != nil {
				return js_ast.Property{}, err
			}
			property.InitializerOrNil = value
		}

		property.Span = p.spanFrom(start)
		if err := p.expectOrInsertSemicolon(); err != nil {
			return js_ast.Property{}, err
		}
		return property, nil
	}

	// Methods, getters, and setters
	if p.lexer.Token == js_lexer.TOpenParen || (p.options.ts && p.lexer.Token == js_lexer.TLessThan) {
		fnStart := p.start()
		fn, err := p.parseFn(nil, opts.isAsync, opts.isGenerator)
		if err != nil {
			return js_ast.Property{}, err
		}
		return js_ast.Property{
			Span:       p.spanFrom(start),
			Decorators: opts.decorators,
			Key:        key,
			ValueOrNil: js_ast.Expr{Span: p.spanFrom(fnStart), Data: &js_ast.EFunction{Fn: fn}},
			Kind:       kind,
			IsComputed: isComputed,
			IsMethod:   true,
			IsStatic:   opts.isStatic,
		}, nil
	}

	if opts.isClass || kind != js_ast.PropertyField || opts.isAsync || opts.isGenerator {
		return js_ast.Property{}, p.lexer.Expected(js_lexer.TOpenParen)
	}

	// "a: b"
	if err := p.expect(js_lexer.TColon); err != nil {
		return js_ast.Property{}, err
	}
	value, err := p.parseAssign()
	if err != nil {
		return js_ast.Property{}, err
	}
	return js_ast.Property{
		Span:       p.spanFrom(start),
		Key:        key,
		ValueOrNil: value,
		IsComputed: isComputed,
	}, nil
}

// "static { ... }" inside a class body
func (p *parser) parseClassStaticBlock(start int32) (js_ast.Property, error) {
	defer p.enterContext(ctxIn, ctxAwait|ctxYield|ctxReturn)()

	blockStart := p.start()
	p.lexer.Next()
	stmts, err := p.parseStmtsUpTo(js_lexer.TCloseBrace)
	if err != nil {
		return js_ast.Property{}, err
	}
	if err := p.expect(js_lexer.TCloseBrace); err != nil {
		return js_ast.Property{}, err
	}

	return js_ast.Property{
		Span:             p.spanFrom(start),
		Kind:             js_ast.PropertyClassStaticBlock,
		ClassStaticBlock: &js_ast.ClassStaticBlock{Span: p.spanFrom(blockStart), Stmts: stmts},
	}, nil
}
