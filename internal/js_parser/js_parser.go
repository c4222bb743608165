package js_parser

import (
	"errors"
	"fmt"

	"github.com/esexpr/esexpr/internal/config"
	"github.com/esexpr/esexpr/internal/helpers"
	"github.com/esexpr/esexpr/internal/js_ast"
	"github.com/esexpr/esexpr/internal/js_lexer"
	"github.com/esexpr/esexpr/internal/logger"
)

// This parser does a single pass over the source text and builds a syntax
// tree. There is no scope tracking and no symbol binding. Unlike a bundler's
// parser there is also no visiting pass: the tree is returned exactly as it
// was parsed.
//
// Fatal errors stop the parse. They are returned as error values from every
// parse function so that speculative parses can catch them and rewind.
// Non-fatal errors and warnings are buffered in "msgs" instead of being
// logged immediately, because a rewind must discard them too.

type parser struct {
	options Options
	log     logger.Log
	source  logger.Source
	lexer   js_lexer.Lexer
	ctx     exprContext
	msgs    []logger.Msg

	// Offsets of "(" and "<" tokens where an arrow function head has already
	// failed to parse. These are never tried again.
	arrowFailures helpers.BitSet

	// The "=" tokens of shorthand properties with initializers, such as
	// "{a = 1}". These are only valid if the surrounding object literal ends
	// up being converted to a destructuring pattern, so they are reported as
	// errors unless they get removed from this list before the parse ends.
	coverInits []logger.Range

	// Expressions that were wrapped in parentheses. Parentheses are normally
	// dropped from the tree, but some rules still need to know about them.
	parenthesized map[js_ast.E]bool
}

type exprContext uint8

const (
	// "in" is a binary operator. This is cleared in a "for" loop initializer.
	ctxIn exprContext = 1 << iota

	// "await" and "yield" are operators instead of identifiers
	ctxAwait
	ctxYield

	// "[" ends the member expression
	ctxDecorator

	// "return" is allowed
	ctxReturn

	// Set in the consequent of a conditional expression, where the ":" in
	// "a ? (b): c => d" belongs to the conditional and not to an arrow
	ctxNoArrowReturnType
)

// The subset of the configuration that affects parsing
type Options struct {
	ts             bool
	jsx            bool
	preserveParens bool
	allowAwait     bool
	allowYield     bool
}

func OptionsFromConfig(options *config.Options) Options {
	return Options{
		ts:             options.TS.Parse,
		jsx:            options.JSX.Parse,
		preserveParens: options.PreserveParens,
		allowAwait:     options.AllowAwait,
		allowYield:     options.AllowYield,
	}
}

func newParser(log logger.Log, source logger.Source, options Options) *parser {
	p := &parser{
		options:       options,
		log:           log,
		source:        source,
		arrowFailures: helpers.NewBitSet(uint(len(source.Contents) + 1)),
		parenthesized: make(map[js_ast.E]bool),
		ctx:           ctxIn,
	}
	if options.allowAwait {
		p.ctx |= ctxAwait
	}
	if options.allowYield {
		p.ctx |= ctxYield
	}
	p.lexer = js_lexer.NewLexer(source)
	return p
}

// Parses a single expression that must span the whole source text
func ParseExpression(log logger.Log, source logger.Source, options Options) (result js_ast.Expr, err error) {
	p := newParser(log, source, options)
	defer p.recoverInternalError(&err)

	result, err = p.parseExpr()
	if err == nil && p.lexer.Token != js_lexer.TEndOfFile {
		err = p.lexer.Unexpected()
	}
	if err != nil {
		p.logFatal(err)
		return js_ast.Expr{}, err
	}
	p.flushMsgs()
	return result, nil
}

// Parses a script made of the statements that expressions can appear in
func ParseProgram(log logger.Log, source logger.Source, options Options) (result js_ast.Program, err error) {
	p := newParser(log, source, options)
	defer p.recoverInternalError(&err)

	if p.lexer.Token == js_lexer.THashbang {
		result.Hashbang = p.lexer.Identifier
		p.lexer.Next()
	}

	p.ctx |= ctxReturn
	result.Stmts, err = p.parseStmtsUpTo(js_lexer.TEndOfFile)
	if err != nil {
		p.logFatal(err)
		return js_ast.Program{}, err
	}
	p.flushMsgs()
	return result, nil
}

func (p *parser) recoverInternalError(err *error) {
	if r := recover(); r != nil {
		text := fmt.Sprintf("panic: %v\n%s", r, helpers.PrettyPrintedStack())
		p.log.AddMsg(logger.Msg{Kind: logger.Error, Text: text})
		*err = errors.New(text)
	}
}

// Only the fatal error is reported when the parse fails. Anything buffered
// before it may be a consequence of the same mistake.
func (p *parser) logFatal(err error) {
	var msgErr *logger.MsgError
	if errors.As(err, &msgErr) {
		p.log.AddMsg(msgErr.Msg)
		return
	}
	p.log.AddMsg(logger.Msg{Kind: logger.Error, Text: err.Error()})
}

func (p *parser) flushMsgs() {
	for _, r := range p.coverInits {
		p.addError(r, "Unexpected \"=\"")
	}
	p.coverInits = nil

	for _, msg := range p.lexer.Warnings {
		p.log.AddMsg(msg)
	}
	for _, msg := range p.msgs {
		p.log.AddMsg(msg)
	}
	p.msgs = nil
}

func (p *parser) addError(r logger.Range, text string) {
	p.msgs = append(p.msgs, logger.Msg{
		Kind:     logger.Error,
		Text:     text,
		Location: logger.LocationOrNil(&p.source, r),
	})
}

func (p *parser) addWarning(id logger.MsgID, r logger.Range, text string) {
	p.msgs = append(p.msgs, logger.Msg{
		ID:       id,
		Kind:     logger.Warning,
		Text:     text,
		Location: logger.LocationOrNil(&p.source, r),
	})
}

func (p *parser) fail(r logger.Range, text string) error {
	return logger.NewMsgError(&p.source, r, text)
}

func (p *parser) expect(token js_lexer.T) error {
	if p.lexer.Token != token {
		return p.lexer.Expected(token)
	}
	p.lexer.Next()
	return nil
}

func (p *parser) expectOrInsertSemicolon() error {
	if p.lexer.Token == js_lexer.TSemicolon || (!p.lexer.HasNewlineBefore &&
		p.lexer.Token != js_lexer.TCloseBrace && p.lexer.Token != js_lexer.TEndOfFile) {
		return p.expect(js_lexer.TSemicolon)
	}
	return nil
}

func (p *parser) start() int32 {
	return p.lexer.Loc().Start
}

// Nodes end where the most recently consumed token ends
func (p *parser) spanFrom(start int32) logger.Span {
	return logger.Span{Start: start, End: p.lexer.PrevEnd()}
}

func (p *parser) has(flag exprContext) bool {
	return p.ctx&flag != 0
}

// Clears and then sets context flags until the returned function is called.
// This is meant to be used with "defer" so that the flags are restored on
// every exit path, including errors.
func (p *parser) enterContext(add exprContext, remove exprContext) func() {
	old := p.ctx
	p.ctx = (p.ctx &^ remove) | add
	return func() { p.ctx = old }
}

// Brackets, braces, and parentheses reset the flags that only apply at the
// top level of an expression
func (p *parser) enterNested() func() {
	return p.enterContext(ctxIn, ctxDecorator|ctxNoArrowReturnType)
}

func (p *parser) isParenthesized(expr js_ast.Expr) bool {
	if _, ok := expr.Data.(*js_ast.EParen); ok {
		return true
	}
	return p.parenthesized[expr.Data]
}

////////////////////////////////////////////////////////////////////////////////
// Speculation

type parserSnapshot struct {
	lexer      js_lexer.Lexer
	ctx        exprContext
	msgCount   int
	coverCount int
}

func (p *parser) snapshot() parserSnapshot {
	return parserSnapshot{
		lexer:      p.lexer,
		ctx:        p.ctx,
		msgCount:   len(p.msgs),
		coverCount: len(p.coverInits),
	}
}

func (p *parser) restore(s parserSnapshot) {
	p.lexer = s.lexer
	p.ctx = s.ctx
	p.msgs = p.msgs[:s.msgCount]
	p.coverInits = p.coverInits[:s.coverCount]
}

// Runs "parse" and rewinds everything it did if it returns an error
func (p *parser) tryParse(parse func() error) bool {
	s := p.snapshot()
	if err := parse(); err != nil {
		p.restore(s)
		return false
	}
	return true
}

// Runs "check" and always rewinds afterward
func (p *parser) lookahead(check func() bool) bool {
	s := p.snapshot()
	defer p.restore(s)
	return check()
}

////////////////////////////////////////////////////////////////////////////////
// Expressions

// "a, b, c"
func (p *parser) parseExpr() (js_ast.Expr, error) {
	start := p.start()
	expr, err := p.parseAssign()
	if err != nil || p.lexer.Token != js_lexer.TComma {
		return expr, err
	}

	exprs := []js_ast.Expr{expr}
	for p.lexer.Token == js_lexer.TComma {
		p.lexer.Next()
		item, err := p.parseAssign()
		if err != nil {
			return js_ast.Expr{}, err
		}
		exprs = append(exprs, item)
	}
	return js_ast.Expr{Span: p.spanFrom(start), Data: &js_ast.ESequence{Exprs: exprs}}, nil
}

func (p *parser) parseAssign() (js_ast.Expr, error) {
	start := p.start()

	switch p.lexer.Token {
	case js_lexer.TOpenParen, js_lexer.TLessThan:
		if arrow, ok, err := p.tryParseParenArrow(start, false); ok || err != nil {
			return arrow, err
		}

	case js_lexer.TIdentifier:
		// "x => y"
		if p.lookahead(func() bool {
			p.lexer.Next()
			return p.lexer.Token == js_lexer.TEqualsGreaterThan
		}) {
			return p.parseIdentifierArrow(start, false)
		}

		if p.lexer.Raw() == "async" {
			if arrow, ok, err := p.tryParseAsyncArrow(start); ok || err != nil {
				return arrow, err
			}
		}

		if p.lexer.Raw() == "yield" && p.isYieldExpression() {
			return p.parseYield(start)
		}
	}

	left, err := p.parseConditional()
	if err != nil {
		return js_ast.Expr{}, err
	}

	op, ok := assignOps[p.lexer.Token]
	if !ok {
		return left, nil
	}
	if op == js_ast.BinOpAssign {
		left, err = p.toAssignTarget(left)
	} else if !p.isSimpleAssignTarget(left) {
		err = p.fail(left.Span.Range(), "Invalid assignment target")
	}
	if err != nil {
		return js_ast.Expr{}, err
	}

	p.lexer.Next()
	right, err := p.parseAssign()
	if err != nil {
		return js_ast.Expr{}, err
	}
	return js_ast.Expr{Span: p.spanFrom(start), Data: &js_ast.EAssign{Op: op, Target: left, Value: right}}, nil
}

var assignOps = map[js_lexer.T]js_ast.OpCode{
	js_lexer.TEquals:                                  js_ast.BinOpAssign,
	js_lexer.TPlusEquals:                              js_ast.BinOpAddAssign,
	js_lexer.TMinusEquals:                             js_ast.BinOpSubAssign,
	js_lexer.TAsteriskEquals:                          js_ast.BinOpMulAssign,
	js_lexer.TSlashEquals:                             js_ast.BinOpDivAssign,
	js_lexer.TPercentEquals:                           js_ast.BinOpRemAssign,
	js_lexer.TAsteriskAsteriskEquals:                  js_ast.BinOpPowAssign,
	js_lexer.TLessThanLessThanEquals:                  js_ast.BinOpShlAssign,
	js_lexer.TGreaterThanGreaterThanEquals:            js_ast.BinOpShrAssign,
	js_lexer.TGreaterThanGreaterThanGreaterThanEquals: js_ast.BinOpUShrAssign,
	js_lexer.TBarEquals:                               js_ast.BinOpBitwiseOrAssign,
	js_lexer.TAmpersandEquals:                         js_ast.BinOpBitwiseAndAssign,
	js_lexer.TCaretEquals:                             js_ast.BinOpBitwiseXorAssign,
	js_lexer.TQuestionQuestionEquals:                  js_ast.BinOpNullishCoalescingAssign,
	js_lexer.TBarBarEquals:                            js_ast.BinOpLogicalOrAssign,
	js_lexer.TAmpersandAmpersandEquals:                js_ast.BinOpLogicalAndAssign,
}

func (p *parser) isYieldExpression() bool {
	if p.has(ctxYield) {
		return true
	}

	// Try to gracefully recover if "yield" is used in the wrong place
	return p.lookahead(func() bool {
		p.lexer.Next()
		if p.lexer.HasNewlineBefore {
			return false
		}
		switch p.lexer.Token {
		case js_lexer.TNull, js_lexer.TIdentifier, js_lexer.TFalse, js_lexer.TTrue,
			js_lexer.TNumericLiteral, js_lexer.TBigIntegerLiteral, js_lexer.TStringLiteral:
			return true
		}
		return false
	})
}

func (p *parser) parseYield(start int32) (js_ast.Expr, error) {
	yieldRange := p.lexer.Range()
	p.lexer.Next()
	if !p.has(ctxYield) {
		p.addError(yieldRange, "Cannot use \"yield\" outside a generator function")
	}

	// Parse a yield-from expression, which yields from an iterator
	isStar := p.lexer.Token == js_lexer.TAsterisk && !p.lexer.HasNewlineBefore
	if isStar {
		p.lexer.Next()
	}

	var value js_ast.Expr
	switch p.lexer.Token {
	case js_lexer.TCloseBrace, js_lexer.TCloseBracket, js_lexer.TCloseParen,
		js_lexer.TColon, js_lexer.TComma, js_lexer.TSemicolon, js_lexer.TEndOfFile:

	default:
		if isStar || !p.lexer.HasNewlineBefore {
			var err error
			if value, err = p.parseAssign(); err != nil {
				return js_ast.Expr{}, err
			}
		}
	}

	return js_ast.Expr{Span: p.spanFrom(start), Data: &js_ast.EYield{ValueOrNil: value, IsStar: isStar}}, nil
}

// "a ? b : c"
func (p *parser) parseConditional() (js_ast.Expr, error) {
	start := p.start()
	test, err := p.parseBinary(js_ast.LConditional)
	if err != nil || p.lexer.Token != js_lexer.TQuestion {
		return test, err
	}
	p.lexer.Next()

	yes, err := func() (js_ast.Expr, error) {
		defer p.enterContext(ctxIn|ctxNoArrowReturnType, 0)()
		return p.parseAssign()
	}()
	if err != nil {
		return js_ast.Expr{}, err
	}

	if err := p.expect(js_lexer.TColon); err != nil {
		return js_ast.Expr{}, err
	}
	no, err := p.parseAssign()
	if err != nil {
		return js_ast.Expr{}, err
	}

	return js_ast.Expr{Span: p.spanFrom(start), Data: &js_ast.EIf{Test: test, Yes: yes, No: no}}, nil
}

// Returns the binary operator for the current token and whether it's the
// first of the logical operators. The token must already have been rescanned.
func (p *parser) binaryOp() (js_ast.OpCode, bool) {
	switch p.lexer.Token {
	case js_lexer.TQuestionQuestion:
		return js_ast.BinOpNullishCoalescing, true
	case js_lexer.TBarBar:
		return js_ast.BinOpLogicalOr, true
	case js_lexer.TAmpersandAmpersand:
		return js_ast.BinOpLogicalAnd, true
	case js_lexer.TBar:
		return js_ast.BinOpBitwiseOr, true
	case js_lexer.TCaret:
		return js_ast.BinOpBitwiseXor, true
	case js_lexer.TAmpersand:
		return js_ast.BinOpBitwiseAnd, true
	case js_lexer.TEqualsEquals:
		return js_ast.BinOpLooseEq, true
	case js_lexer.TExclamationEquals:
		return js_ast.BinOpLooseNe, true
	case js_lexer.TEqualsEqualsEquals:
		return js_ast.BinOpStrictEq, true
	case js_lexer.TExclamationEqualsEquals:
		return js_ast.BinOpStrictNe, true
	case js_lexer.TLessThan:
		return js_ast.BinOpLt, true
	case js_lexer.TLessThanEquals:
		return js_ast.BinOpLe, true
	case js_lexer.TGreaterThan:
		return js_ast.BinOpGt, true
	case js_lexer.TGreaterThanEquals:
		return js_ast.BinOpGe, true
	case js_lexer.TInstanceof:
		return js_ast.BinOpInstanceof, true
	case js_lexer.TIn:
		return js_ast.BinOpIn, p.has(ctxIn)
	case js_lexer.TLessThanLessThan:
		return js_ast.BinOpShl, true
	case js_lexer.TGreaterThanGreaterThan:
		return js_ast.BinOpShr, true
	case js_lexer.TGreaterThanGreaterThanGreaterThan:
		return js_ast.BinOpUShr, true
	case js_lexer.TPlus:
		return js_ast.BinOpAdd, true
	case js_lexer.TMinus:
		return js_ast.BinOpSub, true
	case js_lexer.TAsterisk:
		return js_ast.BinOpMul, true
	case js_lexer.TSlash:
		return js_ast.BinOpDiv, true
	case js_lexer.TPercent:
		return js_ast.BinOpRem, true
	case js_lexer.TAsteriskAsterisk:
		return js_ast.BinOpPow, true
	}
	return 0, false
}

// Parses operators whose precedence is higher than "minLevel". Operators at
// exactly "minLevel" are left for the caller, except for the right-associative
// "**" operator which binds to the right instead.
func (p *parser) parseBinary(minLevel js_ast.L) (js_ast.Expr, error) {
	start := p.start()
	var left js_ast.Expr

	// "#x in y"
	if p.lexer.Token == js_lexer.TPrivateIdentifier {
		if !p.has(ctxIn) || minLevel >= js_ast.LCompare {
			return js_ast.Expr{}, p.lexer.Unexpected()
		}
		name := p.lexer.Identifier[1:]
		nameSpan := p.lexer.Span()
		p.lexer.Next()
		if p.lexer.Token != js_lexer.TIn {
			return js_ast.Expr{}, p.lexer.Expected(js_lexer.TIn)
		}
		p.lexer.Next()
		value, err := p.parseBinary(js_ast.LCompare)
		if err != nil {
			return js_ast.Expr{}, err
		}
		left = js_ast.Expr{Span: p.spanFrom(start), Data: &js_ast.EPrivateIn{Name: name, NameSpan: nameSpan, Value: value}}
	} else {
		var err error
		if left, err = p.parseUnary(); err != nil {
			return js_ast.Expr{}, err
		}
	}

	for {
		p.lexer.RescanGreaterThan()

		// "a as T" and "a satisfies T" bind like relational operators
		if p.options.ts && !p.lexer.HasNewlineBefore && minLevel < js_ast.LCompare &&
			(p.lexer.IsContextualKeyword("as") || p.lexer.IsContextualKeyword("satisfies")) {
			isAs := p.lexer.Raw() == "as"
			p.lexer.Next()
			typ, err := p.parseTypeScriptType()
			if err != nil {
				return js_ast.Expr{}, err
			}
			if isAs {
				left = js_ast.Expr{Span: p.spanFrom(start), Data: &js_ast.ETSAs{Value: left, Type: typ}}
			} else {
				left = js_ast.Expr{Span: p.spanFrom(start), Data: &js_ast.ETSSatisfies{Value: left, Type: typ}}
			}
			continue
		}

		op, ok := p.binaryOp()
		if !ok {
			return left, nil
		}
		level := js_ast.OpTable[op].Level
		if level < minLevel || (level == minLevel && op.IsLeftAssociative()) {
			return left, nil
		}
		opRange := p.lexer.Range()
		p.lexer.Next()

		// "-a ** b" is a syntax error because it's ambiguous
		if op == js_ast.BinOpPow && !p.isParenthesized(left) {
			switch e := left.Data.(type) {
			case *js_ast.EUnary:
				if e.Op.UnaryAssignTarget() == js_ast.AssignTargetNone {
					p.addError(opRange, "Unary operators cannot be used on the left of \"**\" without parentheses")
				}
			case *js_ast.EAwait, *js_ast.ETSTypeAssertion:
				p.addError(opRange, "Unary operators cannot be used on the left of \"**\" without parentheses")
			}
		}

		right, err := p.parseBinary(level)
		if err != nil {
			return js_ast.Expr{}, err
		}

		span := p.spanFrom(start)
		if op.IsLogical() {
			if op == js_ast.BinOpNullishCoalescing {
				p.checkNullishMixing(left, opRange)
				p.checkNullishMixing(right, opRange)
			}
			left = js_ast.Expr{Span: span, Data: &js_ast.ELogical{Op: op, Left: left, Right: right}}
			continue
		}

		switch op {
		case js_ast.BinOpLooseEq, js_ast.BinOpLooseNe, js_ast.BinOpStrictEq, js_ast.BinOpStrictNe:
			p.warnAboutEqualityCheck(op, left, right)
		case js_ast.BinOpIn, js_ast.BinOpInstanceof:
			p.warnAboutSuspiciousNot(op, left)
		}
		left = js_ast.Expr{Span: span, Data: &js_ast.EBinary{Op: op, Left: left, Right: right}}
	}
}

// "??" cannot be mixed with "||" or "&&" without parentheses
func (p *parser) checkNullishMixing(operand js_ast.Expr, opRange logger.Range) {
	if e, ok := operand.Data.(*js_ast.ELogical); ok && !p.isParenthesized(operand) &&
		(e.Op == js_ast.BinOpLogicalOr || e.Op == js_ast.BinOpLogicalAnd) {
		p.addError(opRange, fmt.Sprintf("Cannot use %q with \"??\" without parentheses", js_ast.OpTable[e.Op].Text))
	}
}

func (p *parser) parseUnary() (js_ast.Expr, error) {
	start := p.start()

	var op js_ast.OpCode
	switch p.lexer.Token {
	case js_lexer.TVoid:
		op = js_ast.UnOpVoid
	case js_lexer.TTypeof:
		op = js_ast.UnOpTypeof
	case js_lexer.TDelete:
		op = js_ast.UnOpDelete
	case js_lexer.TPlus:
		op = js_ast.UnOpPos
	case js_lexer.TMinus:
		op = js_ast.UnOpNeg
	case js_lexer.TTilde:
		op = js_ast.UnOpCpl
	case js_lexer.TExclamation:
		op = js_ast.UnOpNot
	case js_lexer.TPlusPlus:
		op = js_ast.UnOpPreInc
	case js_lexer.TMinusMinus:
		op = js_ast.UnOpPreDec

	case js_lexer.TLessThan, js_lexer.TLessThanLessThan:
		// "<T>x" is a type assertion, but only outside of JSX
		if p.options.ts && !p.options.jsx {
			return p.parseTypeAssertion(start)
		}
		return p.parseUpdate()

	case js_lexer.TIdentifier:
		if p.lexer.Raw() == "await" && p.isAwaitExpression() {
			awaitRange := p.lexer.Range()
			p.lexer.Next()
			if !p.has(ctxAwait) {
				p.addError(awaitRange, "\"await\" can only be used inside an \"async\" function")
			}
			value, err := p.parseUnary()
			if err != nil {
				return js_ast.Expr{}, err
			}
			return js_ast.Expr{Span: p.spanFrom(start), Data: &js_ast.EAwait{Value: value}}, nil
		}
		return p.parseUpdate()

	default:
		return p.parseUpdate()
	}

	p.lexer.Next()
	value, err := p.parseUnary()
	if err != nil {
		return js_ast.Expr{}, err
	}
	if op.UnaryAssignTarget() != js_ast.AssignTargetNone && !p.isSimpleAssignTarget(value) {
		return js_ast.Expr{}, p.fail(value.Span.Range(), "Invalid assignment target")
	}
	return js_ast.Expr{Span: p.spanFrom(start), Data: &js_ast.EUnary{Op: op, Value: value}}, nil
}

// Inside an async function "await" is always an operator. Elsewhere it's an
// identifier unless the next token on the same line looks like an operand.
// Tokens that could continue an identifier reference are excluded, since
// "await (x)" is a call and "await / x" is a division when "await" is a
// variable. Outside of TypeScript "await of" is left to the "for" loop head.
func (p *parser) isAwaitExpression() bool {
	if p.has(ctxAwait) {
		return true
	}
	return p.lookahead(func() bool {
		p.lexer.Next()
		if p.lexer.HasNewlineBefore {
			return false
		}
		switch p.lexer.Token {
		case js_lexer.TOpenParen, js_lexer.TOpenBracket, js_lexer.TSlash, js_lexer.TSlashEquals:
			return false
		case js_lexer.TIdentifier:
			return p.options.ts || p.lexer.Raw() != "of"
		}
		return p.canStartUnaryOperand()
	})
}

// Returns true if the current token can begin the operand of a prefix
// operator. Infix-only tokens such as "*" or ")" cannot.
func (p *parser) canStartUnaryOperand() bool {
	switch p.lexer.Token {
	case js_lexer.TIdentifier, js_lexer.TPrivateIdentifier,
		js_lexer.TNoSubstitutionTemplateLiteral, js_lexer.TTemplateHead,
		js_lexer.TNumericLiteral, js_lexer.TStringLiteral, js_lexer.TBigIntegerLiteral,
		js_lexer.TOpenParen, js_lexer.TOpenBracket, js_lexer.TOpenBrace,
		js_lexer.TPlus, js_lexer.TMinus, js_lexer.TPlusPlus, js_lexer.TMinusMinus,
		js_lexer.TTilde, js_lexer.TExclamation, js_lexer.TSlash, js_lexer.TSlashEquals,
		js_lexer.TAt, js_lexer.TClass, js_lexer.TDelete, js_lexer.TFalse,
		js_lexer.TFunction, js_lexer.TImport, js_lexer.TNew, js_lexer.TNull,
		js_lexer.TSuper, js_lexer.TThis, js_lexer.TTrue, js_lexer.TTypeof, js_lexer.TVoid:
		return true

	case js_lexer.TLessThan:
		return p.options.ts || p.options.jsx
	}
	return false
}

// "a++" and "a--". There is no line break allowed before the operator.
func (p *parser) parseUpdate() (js_ast.Expr, error) {
	start := p.start()
	value, err := p.parseLHS()
	if err != nil {
		return js_ast.Expr{}, err
	}

	var op js_ast.OpCode
	switch p.lexer.Token {
	case js_lexer.TPlusPlus:
		op = js_ast.UnOpPostInc
	case js_lexer.TMinusMinus:
		op = js_ast.UnOpPostDec
	default:
		return value, nil
	}
	if p.lexer.HasNewlineBefore {
		return value, nil
	}

	if !p.isSimpleAssignTarget(value) {
		return js_ast.Expr{}, p.fail(value.Span.Range(), "Invalid assignment target")
	}
	p.lexer.Next()
	return js_ast.Expr{Span: p.spanFrom(start), Data: &js_ast.EUnary{Op: op, Value: value}}, nil
}
