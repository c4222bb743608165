package js_parser

import (
	"fmt"

	"github.com/esexpr/esexpr/internal/helpers"
	"github.com/esexpr/esexpr/internal/js_ast"
	"github.com/esexpr/esexpr/internal/logger"
)

// These warnings point out comparisons whose result is known from the syntax
// alone. They never affect the tree.

func (p *parser) warnAboutEqualityCheck(op js_ast.OpCode, left js_ast.Expr, right js_ast.Expr) {
	text := js_ast.OpTable[op].Text
	if p.warnAboutTypeofAndString(text, left, right) || p.warnAboutTypeofAndString(text, right, left) {
		return
	}
	if !p.warnAboutEqualityOperand(text, left) {
		p.warnAboutEqualityOperand(text, right)
	}
}

func (p *parser) warnAboutEqualityOperand(op string, value js_ast.Expr) bool {
	switch e := value.Data.(type) {
	case *js_ast.EUnary:
		// "0 === -0" is true in JavaScript
		if number, ok := e.Value.Data.(*js_ast.ENumber); ok && e.Op == js_ast.UnOpNeg && number.Value == 0 {
			p.addWarning(logger.MsgID_JS_EqualsNegativeZero, value.Span.Range(),
				fmt.Sprintf("Comparison with -0 using the %q operator will also match 0", op))
			return true
		}

	case *js_ast.EIdentifier:
		// "NaN === NaN" is false in JavaScript
		if e.Name == "NaN" {
			p.addWarning(logger.MsgID_JS_EqualsNaN, value.Span.Range(),
				fmt.Sprintf("Comparison with NaN using the %q operator here is always %v", op, op[0] == '!'))
			return true
		}

	case *js_ast.EArray, *js_ast.EArrow, *js_ast.EClass,
		*js_ast.EFunction, *js_ast.EObject, *js_ast.ERegExp:
		// Loose equality can convert objects to strings, so "x == []" is true
		// when x is the empty string. Only strict equality is always false.
		if len(op) > 2 {
			p.addWarning(logger.MsgID_JS_EqualsNewObject, value.Span.Range(),
				fmt.Sprintf("Comparison using the %q operator here is always %v", op, op[0] == '!'))
			return true
		}
	}
	return false
}

var typeofDetector = helpers.MakeTypoDetector([]string{
	"bigint",
	"boolean",
	"function",
	"number",
	"object",
	"string",
	"symbol",
	"undefined",
})

// "typeof x == 'null'" is always false
func (p *parser) warnAboutTypeofAndString(op string, typeof js_ast.Expr, str js_ast.Expr) bool {
	unary, ok := typeof.Data.(*js_ast.EUnary)
	if !ok || unary.Op != js_ast.UnOpTypeof {
		return false
	}
	value, ok := str.Data.(*js_ast.EString)
	if !ok {
		return false
	}

	text := helpers.UTF16ToString(value.Value)
	switch text {
	// "unknown" is only returned by some very old browsers
	case "undefined", "object", "boolean", "number", "bigint", "string", "symbol", "function", "unknown":
		return false
	}

	msg := fmt.Sprintf("The \"typeof\" operator will never evaluate to %q", text)
	if correction, ok := typeofDetector.MaybeCorrectTypo(text); ok {
		msg += fmt.Sprintf(" (did you mean %q?)", correction)
	}
	p.addWarning(logger.MsgID_JS_ImpossibleTypeof, str.Span.Range(), msg)
	return true
}

// "!a in b" is "(!a) in b", which is almost never intended
func (p *parser) warnAboutSuspiciousNot(op js_ast.OpCode, left js_ast.Expr) {
	if unary, ok := left.Data.(*js_ast.EUnary); ok && unary.Op == js_ast.UnOpNot && !p.isParenthesized(left) {
		p.addWarning(logger.MsgID_JS_SuspiciousBooleanNot, left.Span.Range(),
			fmt.Sprintf("Suspicious use of the \"!\" operator inside the %q operator", js_ast.OpTable[op].Text))
	}
}
