package js_parser

import (
	"github.com/esexpr/esexpr/internal/js_ast"
	"github.com/esexpr/esexpr/internal/js_lexer"
)

// Only the statements needed to hold expressions are supported: blocks,
// expression statements, variable declarations, and the simple control flow
// statements whose heads contain expressions.

func (p *parser) parseStmtsUpTo(end js_lexer.T) ([]js_ast.Stmt, error) {
	stmts := []js_ast.Stmt{}
	for p.lexer.Token != end {
		if p.lexer.Token == js_lexer.TEndOfFile {
			return nil, p.lexer.Expected(end)
		}
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (p *parser) parseStmt() (js_ast.Stmt, error) {
	start := p.start()

	switch p.lexer.Token {
	case js_lexer.TSemicolon:
		p.lexer.Next()
		return js_ast.Stmt{Span: p.spanFrom(start), Data: &js_ast.SEmpty{}}, nil

	case js_lexer.TOpenBrace:
		p.lexer.Next()
		stmts, err := p.parseStmtsUpTo(js_lexer.TCloseBrace)
		if err != nil {
			return js_ast.Stmt{}, err
		}
		p.lexer.Next()
		return js_ast.Stmt{Span: p.spanFrom(start), Data: &js_ast.SBlock{Stmts: stmts}}, nil

	case js_lexer.TVar:
		return p.parseLocalStmt(start, js_ast.LocalVar)

	case js_lexer.TConst:
		return p.parseLocalStmt(start, js_ast.LocalConst)

	case js_lexer.TIdentifier:
		if p.isLetDecl() {
			return p.parseLocalStmt(start, js_ast.LocalLet)
		}

	case js_lexer.TReturn:
		returnRange := p.lexer.Range()
		if !p.has(ctxReturn) {
			p.addError(returnRange, "A return statement cannot be used here")
		}
		p.lexer.Next()

		var value js_ast.Expr
		if p.lexer.Token != js_lexer.TSemicolon && !p.lexer.HasNewlineBefore &&
			p.lexer.Token != js_lexer.TCloseBrace && p.lexer.Token != js_lexer.TEndOfFile {
			var err error
			if value, err = p.parseExpr(); err != nil {
				return js_ast.Stmt{}, err
			}
		}
		if err := p.expectOrInsertSemicolon(); err != nil {
			return js_ast.Stmt{}, err
		}
		return js_ast.Stmt{Span: p.spanFrom(start), Data: &js_ast.SReturn{ValueOrNil: value}}, nil

	case js_lexer.TThrow:
		p.lexer.Next()
		if p.lexer.HasNewlineBefore {
			return js_ast.Stmt{}, p.fail(p.lexer.Range(), "Unexpected newline after \"throw\"")
		}
		value, err := p.parseExpr()
		if err != nil {
			return js_ast.Stmt{}, err
		}
		if err := p.expectOrInsertSemicolon(); err != nil {
			return js_ast.Stmt{}, err
		}
		return js_ast.Stmt{Span: p.spanFrom(start), Data: &js_ast.SThrow{Value: value}}, nil

	case js_lexer.TIf:
		p.lexer.Next()
		test, err := p.parseParenHead()
		if err != nil {
			return js_ast.Stmt{}, err
		}
		yes, err := p.parseStmt()
		if err != nil {
			return js_ast.Stmt{}, err
		}
		var no js_ast.Stmt
		if p.lexer.Token == js_lexer.TElse {
			p.lexer.Next()
			if no, err = p.parseStmt(); err != nil {
				return js_ast.Stmt{}, err
			}
		}
		return js_ast.Stmt{Span: p.spanFrom(start), Data: &js_ast.SIf{Test: test, Yes: yes, NoOrNil: no}}, nil

	case js_lexer.TWhile:
		p.lexer.Next()
		test, err := p.parseParenHead()
		if err != nil {
			return js_ast.Stmt{}, err
		}
		body, err := p.parseStmt()
		if err != nil {
			return js_ast.Stmt{}, err
		}
		return js_ast.Stmt{Span: p.spanFrom(start), Data: &js_ast.SWhile{Test: test, Body: body}}, nil

	case js_lexer.TFor:
		return p.parseForStmt(start)
	}

	value, err := p.parseExpr()
	if err != nil {
		return js_ast.Stmt{}, err
	}
	if err := p.expectOrInsertSemicolon(); err != nil {
		return js_ast.Stmt{}, err
	}
	return js_ast.Stmt{Span: p.spanFrom(start), Data: &js_ast.SExpr{Value: value}}, nil
}

// "let" is only a keyword when a binding follows it
func (p *parser) isLetDecl() bool {
	if !p.lexer.IsContextualKeyword("let") {
		return false
	}
	return p.lookahead(func() bool {
		p.lexer.Next()
		switch p.lexer.Token {
		case js_lexer.TIdentifier, js_lexer.TOpenBracket, js_lexer.TOpenBrace:
			return true
		}
		return false
	})
}

// "(test)" after "if" and "while"
func (p *parser) parseParenHead() (js_ast.Expr, error) {
	defer p.enterNested()()
	if err := p.expect(js_lexer.TOpenParen); err != nil {
		return js_ast.Expr{}, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return js_ast.Expr{}, err
	}
	if err := p.expect(js_lexer.TCloseParen); err != nil {
		return js_ast.Expr{}, err
	}
	return value, nil
}

func (p *parser) parseLocalStmt(start int32, kind js_ast.LocalKind) (js_ast.Stmt, error) {
	p.lexer.Next()
	decls, err := p.parseDecls()
	if err != nil {
		return js_ast.Stmt{}, err
	}
	if err := p.expectOrInsertSemicolon(); err != nil {
		return js_ast.Stmt{}, err
	}
	return js_ast.Stmt{Span: p.spanFrom(start), Data: &js_ast.SLocal{Kind: kind, Decls: decls}}, nil
}

func (p *parser) parseDecls() ([]js_ast.Decl, error) {
	decls := []js_ast.Decl{}
	for {
		binding, err := p.parseBinding()
		if err != nil {
			return nil, err
		}
		decl := js_ast.Decl{Binding: binding}

		// "let x!: T"
		if p.options.ts {
			if p.lexer.Token == js_lexer.TExclamation && !p.lexer.HasNewlineBefore {
				p.lexer.Next()
			}
			if p.lexer.Token == js_lexer.TColon {
				p.lexer.Next()
				typ, err := p.parseTypeScriptType()
				if err != nil {
					return nil, err
				}
				decl.TypeOrNil = &typ
			}
		}

		if p.lexer.Token == js_lexer.TEquals {
			p.lexer.Next()
			if decl.ValueOrNil, err = p.parseAssign(); err != nil {
				return nil, err
			}
		}

		decls = append(decls, decl)
		if p.lexer.Token != js_lexer.TComma {
			break
		}
		p.lexer.Next()
	}
	return decls, nil
}

func (p *parser) parseForStmt(start int32) (js_ast.Stmt, error) {
	p.lexer.Next()

	// "for await (x of y) {}"
	isAwait := false
	if p.lexer.IsContextualKeyword("await") {
		awaitRange := p.lexer.Range()
		if !p.has(ctxAwait) {
			p.addError(awaitRange, "Cannot use \"await\" outside an async function")
		}
		isAwait = true
		p.lexer.Next()
	}

	if err := p.expect(js_lexer.TOpenParen); err != nil {
		return js_ast.Stmt{}, err
	}

	// "in" expressions aren't allowed in the initializer so that they don't
	// get confused with a for-in loop
	init, err := func() (js_ast.Stmt, error) {
		defer p.enterContext(0, ctxIn)()
		initStart := p.start()

		var kind js_ast.LocalKind
		switch {
		case p.lexer.Token == js_lexer.TSemicolon:
			return js_ast.Stmt{}, nil
		case p.lexer.Token == js_lexer.TVar:
			kind = js_ast.LocalVar
		case p.lexer.Token == js_lexer.TConst:
			kind = js_ast.LocalConst
		case p.isLetDecl():
			kind = js_ast.LocalLet
		default:
			value, err := p.parseExpr()
			if err != nil {
				return js_ast.Stmt{}, err
			}
			return js_ast.Stmt{Span: p.spanFrom(initStart), Data: &js_ast.SExpr{Value: value}}, nil
		}

		p.lexer.Next()
		decls, err := p.parseDecls()
		if err != nil {
			return js_ast.Stmt{}, err
		}
		return js_ast.Stmt{Span: p.spanFrom(initStart), Data: &js_ast.SLocal{Kind: kind, Decls: decls}}, nil
	}()
	if err != nil {
		return js_ast.Stmt{}, err
	}

	// "for (a of b) {}" and "for (a in b) {}"
	isOf := p.lexer.IsContextualKeyword("of")
	if init.Data != nil && (isOf || p.lexer.Token == js_lexer.TIn) {
		if err := p.checkForLoopInit(init, isOf); err != nil {
			return js_ast.Stmt{}, err
		}
		p.lexer.Next()

		value, err := func() (js_ast.Expr, error) {
			defer p.enterNested()()
			if isOf {
				return p.parseAssign()
			}
			return p.parseExpr()
		}()
		if err != nil {
			return js_ast.Stmt{}, err
		}
		if err := p.expect(js_lexer.TCloseParen); err != nil {
			return js_ast.Stmt{}, err
		}
		body, err := p.parseStmt()
		if err != nil {
			return js_ast.Stmt{}, err
		}

		if isOf {
			return js_ast.Stmt{Span: p.spanFrom(start), Data: &js_ast.SForOf{Init: init, Value: value, Body: body, IsAwait: isAwait}}, nil
		}
		return js_ast.Stmt{Span: p.spanFrom(start), Data: &js_ast.SForIn{Init: init, Value: value, Body: body}}, nil
	}

	if isAwait {
		return js_ast.Stmt{}, p.lexer.ExpectedString("\"of\"")
	}

	if err := p.expect(js_lexer.TSemicolon); err != nil {
		return js_ast.Stmt{}, err
	}

	loop := &js_ast.SFor{InitOrNil: init}
	err = func() error {
		defer p.enterNested()()
		var err error
		if p.lexer.Token != js_lexer.TSemicolon {
			if loop.TestOrNil, err = p.parseExpr(); err != nil {
				return err
			}
		}
		if err := p.expect(js_lexer.TSemicolon); err != nil {
			return err
		}
		if p.lexer.Token != js_lexer.TCloseParen {
			if loop.UpdateOrNil, err = p.parseExpr(); err != nil {
				return err
			}
		}
		return p.expect(js_lexer.TCloseParen)
	}()
	if err != nil {
		return js_ast.Stmt{}, err
	}

	if loop.Body, err = p.parseStmt(); err != nil {
		return js_ast.Stmt{}, err
	}
	return js_ast.Stmt{Span: p.spanFrom(start), Data: loop}, nil
}

// The left side of a for-in or for-of loop is either a single declaration
// without an initializer or an assignment target
func (p *parser) checkForLoopInit(init js_ast.Stmt, isOf bool) error {
	switch s := init.Data.(type) {
	case *js_ast.SLocal:
		if len(s.Decls) != 1 {
			return p.fail(init.Span.Range(), "Only one variable can be declared in a for-in or for-of loop")
		}
		if s.Decls[0].ValueOrNil.Data != nil && (isOf || s.Kind != js_ast.LocalVar) {
			return p.fail(s.Decls[0].ValueOrNil.Span.Range(), "Loop variables cannot have initializers")
		}

	case *js_ast.SExpr:
		target, err := p.toAssignTarget(s.Value)
		if err != nil {
			return err
		}
		s.Value = target
	}
	return nil
}
