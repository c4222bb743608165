package js_parser

import (
	"strings"

	"github.com/esexpr/esexpr/internal/js_ast"
	"github.com/esexpr/esexpr/internal/js_lexer"
	"github.com/esexpr/esexpr/internal/logger"
)

// Member accesses, calls, and "new" expressions
func (p *parser) parseLHS() (js_ast.Expr, error) {
	start := p.start()
	left, err := p.parsePrimary()
	if err != nil {
		return js_ast.Expr{}, err
	}
	return p.parseSuffixes(start, left, true)
}

// Parses the member and call suffixes after "left". Calls are not parsed when
// "allowCalls" is false, which is the case for the target of "new".
//
// Every link of an optional chain is marked in the tree. The first link after
// a "?." is OptionalChainStart and the links after it are
// OptionalChainContinue. When the chain ends, the whole chain is wrapped in a
// single EChain node. A trailing instantiation expression stays outside of
// the chain, so "a?.b<T>" is the instantiation of the chain "a?.b".
func (p *parser) parseSuffixes(start int32, left js_ast.Expr, allowCalls bool) (js_ast.Expr, error) {
	isChain := false
	endChain := func() {
		if !isChain {
			return
		}
		isChain = false
		if inst, ok := left.Data.(*js_ast.ETSInstantiation); ok {
			inst.Value = js_ast.Expr{Span: inst.Value.Span, Data: &js_ast.EChain{Expr: inst.Value}}
			return
		}
		left = js_ast.Expr{Span: left.Span, Data: &js_ast.EChain{Expr: left}}
	}

	for {
		link := js_ast.OptionalChainNone
		if isChain {
			link = js_ast.OptionalChainContinue
		}

		switch p.lexer.Token {
		case js_lexer.TDot:
			p.lexer.Next()
			member, err := p.parseMemberName(start, left, link)
			if err != nil {
				return js_ast.Expr{}, err
			}
			left = member

		case js_lexer.TQuestionDot:
			after := p.lexer
			after.Next()
			if !p.canFollowQuestionDot(after.Token) {
				endChain()
				return left, nil
			}
			if p.has(ctxDecorator) {
				p.addError(p.lexer.Range(), "Optional chaining is not allowed in decorators")
			}
			questionDotRange := p.lexer.Range()
			p.lexer = after

			switch p.lexer.Token {
			case js_lexer.TOpenBracket:
				index, err := p.parseIndex()
				if err != nil {
					return js_ast.Expr{}, err
				}
				left = js_ast.Expr{Span: p.spanFrom(start), Data: &js_ast.EIndex{
					Target:        left,
					Index:         index,
					OptionalChain: js_ast.OptionalChainStart,
				}}

			case js_lexer.TOpenParen, js_lexer.TLessThan, js_lexer.TLessThanLessThan:
				if !allowCalls {
					return js_ast.Expr{}, p.fail(questionDotRange, "Optional chaining cannot appear in the callee of new expressions")
				}

				// "a?.<T>()"
				var typeArgs *js_ast.TSTypeArgs
				if p.lexer.Token != js_lexer.TOpenParen {
					var err error
					if typeArgs, err = p.parseTypeScriptTypeArguments(); err != nil {
						return js_ast.Expr{}, err
					}
				}
				args, err := p.parseCallArgs()
				if err != nil {
					return js_ast.Expr{}, err
				}
				left = js_ast.Expr{Span: p.spanFrom(start), Data: &js_ast.ECall{
					Target:        left,
					Args:          args,
					TypeArgsOrNil: typeArgs,
					OptionalChain: js_ast.OptionalChainStart,
				}}

			default:
				member, err := p.parseMemberName(start, left, js_ast.OptionalChainStart)
				if err != nil {
					return js_ast.Expr{}, err
				}
				left = member
			}
			isChain = true

		case js_lexer.TNoSubstitutionTemplateLiteral, js_lexer.TTemplateHead:
			if isChain {
				p.addError(p.lexer.Range(), "Template literals cannot have an optional chain as a tag")
			}

			// A pending instantiation expression gives its type arguments to the tag
			var typeArgs *js_ast.TSTypeArgs
			if inst, ok := left.Data.(*js_ast.ETSInstantiation); ok {
				typeArgs = &inst.TypeArgs
				left = inst.Value
			}
			template, err := p.parseTemplate(start, left, typeArgs)
			if err != nil {
				return js_ast.Expr{}, err
			}
			left = template

		case js_lexer.TOpenBracket:
			// "@a[b] class {}" is a computed class member, not a decorator
			if p.has(ctxDecorator) {
				endChain()
				return left, nil
			}
			index, err := p.parseIndex()
			if err != nil {
				return js_ast.Expr{}, err
			}
			left = js_ast.Expr{Span: p.spanFrom(start), Data: &js_ast.EIndex{Target: left, Index: index, OptionalChain: link}}

		case js_lexer.TOpenParen:
			if !allowCalls {
				endChain()
				return left, nil
			}
			args, err := p.parseCallArgs()
			if err != nil {
				return js_ast.Expr{}, err
			}
			left = js_ast.Expr{Span: p.spanFrom(start), Data: &js_ast.ECall{Target: left, Args: args, OptionalChain: link}}

		case js_lexer.TExclamation:
			// "a!" is a non-null assertion, but "a\n!b" is two statements
			if !p.options.ts || p.lexer.HasNewlineBefore {
				endChain()
				return left, nil
			}
			p.lexer.Next()
			left = js_ast.Expr{Span: p.spanFrom(start), Data: &js_ast.ETSNonNull{Value: left}}

		case js_lexer.TLessThan, js_lexer.TLessThanLessThan:
			if !p.options.ts {
				endChain()
				return left, nil
			}

			// "a < b" is a comparison unless the type arguments parse and are
			// followed by something that makes them unambiguous
			typeArgs := p.trySkipTypeScriptTypeArgumentsInExpression()
			if typeArgs == nil {
				endChain()
				return left, nil
			}

			if p.lexer.Token == js_lexer.TOpenParen && allowCalls {
				args, err := p.parseCallArgs()
				if err != nil {
					return js_ast.Expr{}, err
				}
				left = js_ast.Expr{Span: p.spanFrom(start), Data: &js_ast.ECall{
					Target:        left,
					Args:          args,
					TypeArgsOrNil: typeArgs,
					OptionalChain: link,
				}}
				continue
			}

			// "a<b>" without a call is an instantiation expression
			left = js_ast.Expr{Span: p.spanFrom(start), Data: &js_ast.ETSInstantiation{Value: left, TypeArgs: *typeArgs}}

		default:
			endChain()
			return left, nil
		}
	}
}

func (p *parser) canFollowQuestionDot(token js_lexer.T) bool {
	switch token {
	case js_lexer.TOpenBracket, js_lexer.TOpenParen, js_lexer.TPrivateIdentifier:
		return true
	case js_lexer.TLessThan, js_lexer.TLessThanLessThan:
		return p.options.ts
	}
	return token >= js_lexer.TIdentifier
}

// The name after "." or "?.", which may be a private name
func (p *parser) parseMemberName(start int32, target js_ast.Expr, link js_ast.OptionalChain) (js_ast.Expr, error) {
	if p.lexer.Token == js_lexer.TPrivateIdentifier {
		if _, ok := target.Data.(*js_ast.ESuper); ok {
			return js_ast.Expr{}, p.lexer.Expected(js_lexer.TIdentifier)
		}
		name := p.lexer.Identifier[1:]
		nameSpan := p.lexer.Span()
		p.lexer.Next()
		return js_ast.Expr{Span: p.spanFrom(start), Data: &js_ast.EIndex{
			Target:        target,
			Index:         js_ast.Expr{Span: nameSpan, Data: &js_ast.EPrivateIdentifier{Name: name}},
			OptionalChain: link,
		}}, nil
	}

	if !p.lexer.IsIdentifierOrKeyword() {
		return js_ast.Expr{}, p.lexer.Expected(js_lexer.TIdentifier)
	}
	name := p.lexer.Identifier
	nameSpan := p.lexer.Span()
	p.lexer.Next()
	return js_ast.Expr{Span: p.spanFrom(start), Data: &js_ast.EDot{
		Target:        target,
		Name:          name,
		NameSpan:      nameSpan,
		OptionalChain: link,
	}}, nil
}

// "[index]"
func (p *parser) parseIndex() (js_ast.Expr, error) {
	defer p.enterNested()()
	p.lexer.Next()
	index, err := p.parseExpr()
	if err != nil {
		return js_ast.Expr{}, err
	}
	if err := p.expect(js_lexer.TCloseBracket); err != nil {
		return js_ast.Expr{}, err
	}
	return index, nil
}

func (p *parser) parseCallArgs() ([]js_ast.Expr, error) {
	// Allow "in" inside call arguments
	defer p.enterNested()()

	if err := p.expect(js_lexer.TOpenParen); err != nil {
		return nil, err
	}

	args := []js_ast.Expr{}
	for p.lexer.Token != js_lexer.TCloseParen {
		arg, err := p.parseSpreadOrAssign()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.lexer.Token != js_lexer.TComma {
			break
		}
		p.lexer.Next()
	}

	if err := p.expect(js_lexer.TCloseParen); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *parser) parseSpreadOrAssign() (js_ast.Expr, error) {
	if p.lexer.Token != js_lexer.TDotDotDot {
		return p.parseAssign()
	}
	start := p.start()
	p.lexer.Next()
	value, err := p.parseAssign()
	if err != nil {
		return js_ast.Expr{}, err
	}
	return js_ast.Expr{Span: p.spanFrom(start), Data: &js_ast.ESpread{Value: value}}, nil
}

func (p *parser) checkIdentifier(name string, r logger.Range) {
	switch {
	case name == "await" && p.has(ctxAwait):
		p.addError(r, "Cannot use \"await\" as an identifier here")
	case name == "yield" && p.has(ctxYield):
		p.addError(r, "Cannot use \"yield\" as an identifier here")
	}
}

func (p *parser) parsePrimary() (js_ast.Expr, error) {
	start := p.start()

	switch p.lexer.Token {
	case js_lexer.TSuper:
		superRange := p.lexer.Range()
		p.lexer.Next()
		switch p.lexer.Token {
		case js_lexer.TOpenParen, js_lexer.TDot, js_lexer.TOpenBracket:
		default:
			p.addError(superRange, "Unexpected \"super\"")
		}
		return js_ast.Expr{Span: p.spanFrom(start), Data: &js_ast.ESuper{}}, nil

	case js_lexer.TOpenParen:
		return p.parseParenExpr(start)

	case js_lexer.TFalse:
		p.lexer.Next()
		return js_ast.Expr{Span: p.spanFrom(start), Data: &js_ast.EBoolean{Value: false}}, nil

	case js_lexer.TTrue:
		p.lexer.Next()
		return js_ast.Expr{Span: p.spanFrom(start), Data: &js_ast.EBoolean{Value: true}}, nil

	case js_lexer.TNull:
		p.lexer.Next()
		return js_ast.Expr{Span: p.spanFrom(start), Data: &js_ast.ENull{}}, nil

	case js_lexer.TThis:
		p.lexer.Next()
		return js_ast.Expr{Span: p.spanFrom(start), Data: &js_ast.EThis{}}, nil

	case js_lexer.TIdentifier:
		name := p.lexer.Identifier
		nameRange := p.lexer.Range()

		// "async function() {}"
		if p.lexer.Raw() == "async" && p.lookahead(func() bool {
			p.lexer.Next()
			return p.lexer.Token == js_lexer.TFunction && !p.lexer.HasNewlineBefore
		}) {
			p.lexer.Next()
			return p.parseFnExpr(start, true)
		}

		p.lexer.Next()
		p.checkIdentifier(name, nameRange)
		return js_ast.Expr{Span: p.spanFrom(start), Data: &js_ast.EIdentifier{Name: name}}, nil

	case js_lexer.TEscapedKeyword:
		return js_ast.Expr{}, p.fail(p.lexer.Range(), "Keywords cannot contain escape characters")

	case js_lexer.TStringLiteral:
		value := p.lexer.StringLiteral
		hasLegacyOctal := p.lexer.HasLegacyOctalEscape
		p.lexer.Next()
		return js_ast.Expr{Span: p.spanFrom(start), Data: &js_ast.EString{Value: value, HasLegacyOctal: hasLegacyOctal}}, nil

	case js_lexer.TNoSubstitutionTemplateLiteral, js_lexer.TTemplateHead:
		return p.parseTemplate(start, js_ast.Expr{}, nil)

	case js_lexer.TNumericLiteral:
		value := &js_ast.ENumber{Value: p.lexer.Number, Base: p.lexer.NumberBase, Raw: p.lexer.Raw()}
		p.lexer.Next()
		return js_ast.Expr{Span: p.spanFrom(start), Data: value}, nil

	case js_lexer.TBigIntegerLiteral:
		value := p.lexer.Identifier
		p.lexer.Next()
		return js_ast.Expr{Span: p.spanFrom(start), Data: &js_ast.EBigInt{Value: value}}, nil

	case js_lexer.TSlash, js_lexer.TSlashEquals:
		return p.parseRegExp(start)

	case js_lexer.TFunction:
		return p.parseFnExpr(start, false)

	case js_lexer.TClass:
		return p.parseClassExpr(start, nil)

	case js_lexer.TAt:
		// "@dec class {}"
		decorators, err := p.parseDecorators()
		if err != nil {
			return js_ast.Expr{}, err
		}
		if p.lexer.Token != js_lexer.TClass {
			return js_ast.Expr{}, p.lexer.Expected(js_lexer.TClass)
		}
		return p.parseClassExpr(start, decorators)

	case js_lexer.TNew:
		return p.parseNew(start)

	case js_lexer.TOpenBracket:
		return p.parseArrayLiteral(start)

	case js_lexer.TOpenBrace:
		return p.parseObjectLiteral(start)

	case js_lexer.TImport:
		return p.parseImport(start)

	case js_lexer.TLessThan:
		// "<div />"
		if p.options.jsx {
			return p.parseJSXElement(start)
		}
	}

	return js_ast.Expr{}, p.lexer.Unexpected()
}

// "(a)"
func (p *parser) parseParenExpr(start int32) (js_ast.Expr, error) {
	value, err := func() (js_ast.Expr, error) {
		defer p.enterNested()()
		p.lexer.Next()

		// "()" and "(a, b,)" are only valid as arrow function parameters, and
		// those have already been tried
		value, err := p.parseExpr()
		if err != nil {
			return js_ast.Expr{}, err
		}
		if err := p.expect(js_lexer.TCloseParen); err != nil {
			return js_ast.Expr{}, err
		}
		return value, nil
	}()
	if err != nil {
		return js_ast.Expr{}, err
	}

	if p.options.preserveParens {
		return js_ast.Expr{Span: p.spanFrom(start), Data: &js_ast.EParen{Value: value}}, nil
	}
	p.parenthesized[value.Data] = true
	return value, nil
}

func (p *parser) parseRegExp(start int32) (js_ast.Expr, error) {
	p.lexer.ScanRegExp()
	if p.lexer.Token == js_lexer.TSyntaxError {
		return js_ast.Expr{}, p.lexer.Unexpected()
	}

	raw := p.lexer.Raw()
	slash := strings.LastIndexByte(raw, '/')
	pattern, flags := raw[1:slash], raw[slash+1:]
	if strings.IndexByte(flags, 'u') >= 0 && strings.IndexByte(flags, 'v') >= 0 {
		flagsRange := logger.Range{Loc: logger.Loc{Start: start + int32(slash) + 1}, Len: int32(len(flags))}
		p.addError(flagsRange, "Regular expression flags \"u\" and \"v\" cannot be used together")
	}

	p.lexer.Next()
	return js_ast.Expr{Span: p.spanFrom(start), Data: &js_ast.ERegExp{Pattern: pattern, Flags: flags}}, nil
}

// Parses a template literal starting at the current token. The tag is nil
// for untagged templates, which do not allow invalid escape sequences.
func (p *parser) parseTemplate(start int32, tag js_ast.Expr, typeArgs *js_ast.TSTypeArgs) (js_ast.Expr, error) {
	template := &js_ast.ETemplate{TagOrNil: tag, TypeArgsOrNil: typeArgs}
	template.HeadSpan = p.lexer.Span()
	template.HeadCooked, template.HeadRaw = p.lexer.CookedAndRawTemplateContents()
	p.checkTemplateEscape(tag)

	if p.lexer.Token == js_lexer.TTemplateHead {
		p.lexer.Next()
		for {
			value, err := func() (js_ast.Expr, error) {
				defer p.enterNested()()
				return p.parseExpr()
			}()
			if err != nil {
				return js_ast.Expr{}, err
			}
			if p.lexer.Token != js_lexer.TCloseBrace {
				return js_ast.Expr{}, p.lexer.Expected(js_lexer.TCloseBrace)
			}
			p.lexer.RescanCloseBraceAsTemplateToken()
			if p.lexer.Token == js_lexer.TSyntaxError {
				return js_ast.Expr{}, p.lexer.Unexpected()
			}

			part := js_ast.TemplatePart{Value: value, TailSpan: p.lexer.Span()}
			part.TailCooked, part.TailRaw = p.lexer.CookedAndRawTemplateContents()
			p.checkTemplateEscape(tag)
			template.Parts = append(template.Parts, part)

			isTail := p.lexer.Token == js_lexer.TTemplateTail
			p.lexer.Next()
			if isTail {
				break
			}
		}
	} else {
		p.lexer.Next()
	}

	return js_ast.Expr{Span: p.spanFrom(start), Data: template}, nil
}

func (p *parser) checkTemplateEscape(tag js_ast.Expr) {
	if tag.Data == nil && p.lexer.TemplateEscapeErr != nil {
		p.msgs = append(p.msgs, p.lexer.TemplateEscapeErr.Msg)
	}
}

// "new a()", "new a", and "new.target"
func (p *parser) parseNew(start int32) (js_ast.Expr, error) {
	p.lexer.Next()

	if p.lexer.Token == js_lexer.TDot {
		p.lexer.Next()
		if !p.lexer.IsContextualKeyword("target") {
			return js_ast.Expr{}, p.lexer.ExpectedString("\"target\"")
		}
		p.lexer.Next()
		return js_ast.Expr{Span: p.spanFrom(start), Data: &js_ast.ENewTarget{}}, nil
	}

	if p.lexer.Token == js_lexer.TImport && p.lookahead(func() bool {
		p.lexer.Next()
		return p.lexer.Token == js_lexer.TOpenParen
	}) {
		return js_ast.Expr{}, p.fail(p.lexer.Range(), "Cannot use new with import(...)")
	}

	targetStart := p.start()
	target, err := p.parsePrimary()
	if err != nil {
		return js_ast.Expr{}, err
	}
	if target, err = p.parseSuffixes(targetStart, target, false); err != nil {
		return js_ast.Expr{}, err
	}

	// "new Foo<T>()"
	var typeArgs *js_ast.TSTypeArgs
	if inst, ok := target.Data.(*js_ast.ETSInstantiation); ok {
		typeArgs = &inst.TypeArgs
		target = inst.Value
	}

	newExpr := &js_ast.ENew{Target: target, TypeArgsOrNil: typeArgs}
	if p.lexer.Token == js_lexer.TOpenParen {
		if newExpr.Args, err = p.parseCallArgs(); err != nil {
			return js_ast.Expr{}, err
		}
		newExpr.HasParenthesis = true
	}
	span := p.spanFrom(start)

	if _, ok := target.Data.(*js_ast.EChain); ok && !p.isParenthesized(target) {
		p.addError(span.Range(), "Optional chaining cannot appear in the callee of new expressions")
	}
	return js_ast.Expr{Span: span, Data: newExpr}, nil
}

// "import(x)", "import.meta", "import.source(x)", and "import.defer(x)"
func (p *parser) parseImport(start int32) (js_ast.Expr, error) {
	p.lexer.Next()
	phase := js_ast.ImportPhaseEvaluation

	if p.lexer.Token == js_lexer.TDot {
		p.lexer.Next()
		switch {
		case p.lexer.IsContextualKeyword("meta"):
			p.lexer.Next()
			return js_ast.Expr{Span: p.spanFrom(start), Data: &js_ast.EImportMeta{}}, nil
		case p.lexer.IsContextualKeyword("source"):
			phase = js_ast.ImportPhaseSource
		case p.lexer.IsContextualKeyword("defer"):
			phase = js_ast.ImportPhaseDefer
		default:
			return js_ast.Expr{}, p.lexer.ExpectedString("\"meta\"")
		}
		p.lexer.Next()
	}

	if p.lexer.Token != js_lexer.TOpenParen {
		return js_ast.Expr{}, p.lexer.Expected(js_lexer.TOpenParen)
	}

	call, err := func() (*js_ast.EImportCall, error) {
		defer p.enterNested()()
		p.lexer.Next()

		value, err := p.parseAssign()
		if err != nil {
			return nil, err
		}
		call := &js_ast.EImportCall{Phase: phase, Expr: value}

		// "import(x, { with: { type: 'json' } })"
		if p.lexer.Token == js_lexer.TComma && phase == js_ast.ImportPhaseEvaluation {
			p.lexer.Next()
			if p.lexer.Token != js_lexer.TCloseParen {
				if call.OptionsOrNil, err = p.parseAssign(); err != nil {
					return nil, err
				}
				if p.lexer.Token == js_lexer.TComma {
					p.lexer.Next()
				}
			}
		}

		if err := p.expect(js_lexer.TCloseParen); err != nil {
			return nil, err
		}
		return call, nil
	}()
	if err != nil {
		return js_ast.Expr{}, err
	}
	return js_ast.Expr{Span: p.spanFrom(start), Data: call}, nil
}
