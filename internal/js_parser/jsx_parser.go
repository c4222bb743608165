package js_parser

import (
	"fmt"
	"strings"

	"github.com/esexpr/esexpr/internal/helpers"
	"github.com/esexpr/esexpr/internal/js_ast"
	"github.com/esexpr/esexpr/internal/js_lexer"
	"github.com/esexpr/esexpr/internal/logger"
)

// The current token is the "<" that starts the element
func (p *parser) parseJSXElement(start int32) (js_ast.Expr, error) {
	p.lexer.NextInsideJSXElement()
	element, err := p.parseJSXElementBody(start)
	if err != nil {
		return js_ast.Expr{}, err
	}

	// The element ends with a ">" which is still the current token, since
	// only the caller knows how the token after it should be scanned
	p.lexer.Next()
	return js_ast.Expr{Span: p.spanFrom(start), Data: element}, nil
}

func (p *parser) parseJSXTag() (logger.Range, string, js_ast.Expr, error) {
	start := p.start()

	// A missing tag is a fragment
	if p.lexer.Token == js_lexer.TGreaterThan {
		return logger.Range{Loc: logger.Loc{Start: start}}, "", js_ast.Expr{}, nil
	}

	// The tag is an identifier
	if p.lexer.Token != js_lexer.TIdentifier {
		return logger.Range{}, "", js_ast.Expr{}, p.lexer.Expected(js_lexer.TIdentifier)
	}
	name := p.lexer.Identifier
	tagRange := p.lexer.Range()
	p.lexer.NextInsideJSXElement()

	// Certain identifiers are strings
	if strings.ContainsRune(name, '-') || (p.lexer.Token != js_lexer.TDot && name[0] >= 'a' && name[0] <= 'z') {
		// "<a:b>"
		if p.lexer.Token == js_lexer.TColon {
			p.lexer.NextInsideJSXElement()
			if p.lexer.Token != js_lexer.TIdentifier {
				return logger.Range{}, "", js_ast.Expr{}, p.lexer.Expected(js_lexer.TIdentifier)
			}
			name += ":" + p.lexer.Identifier
			tagRange.Len = p.lexer.Range().End() - tagRange.Loc.Start
			p.lexer.NextInsideJSXElement()
		}
		return tagRange, name, js_ast.Expr{Span: tagRange.Span(), Data: &js_ast.EString{Value: helpers.StringToUTF16(name)}}, nil
	}

	// Otherwise, this is an identifier followed by a member expression chain
	tag := js_ast.Expr{Span: tagRange.Span(), Data: &js_ast.EIdentifier{Name: name}}
	for p.lexer.Token == js_lexer.TDot {
		p.lexer.NextInsideJSXElement()
		if p.lexer.Token != js_lexer.TIdentifier || strings.ContainsRune(p.lexer.Identifier, '-') {
			return logger.Range{}, "", js_ast.Expr{}, p.lexer.Expected(js_lexer.TIdentifier)
		}
		member := p.lexer.Identifier
		memberSpan := p.lexer.Span()
		name += "." + member
		tagRange.Len = memberSpan.End - tagRange.Loc.Start
		tag = js_ast.Expr{Span: tagRange.Span(), Data: &js_ast.EDot{Target: tag, Name: member, NameSpan: memberSpan}}
		p.lexer.NextInsideJSXElement()
	}
	return tagRange, name, tag, nil
}

// Parses everything after the "<" up to and including the final ">", which
// is left as the current token
func (p *parser) parseJSXElementBody(start int32) (*js_ast.EJSXElement, error) {
	_, startText, tag, err := p.parseJSXTag()
	if err != nil {
		return nil, err
	}
	element := &js_ast.EJSXElement{TagOrNil: tag, Properties: []js_ast.Property{}}

	// Parse attributes
	if tag.Data != nil {
		for p.lexer.Token != js_lexer.TGreaterThan && p.lexer.Token != js_lexer.TSlash {
			property, err := p.parseJSXAttribute()
			if err != nil {
				return nil, err
			}
			element.Properties = append(element.Properties, property)
		}
	}

	// A slash here is a self-closing element
	if p.lexer.Token == js_lexer.TSlash {
		p.lexer.NextInsideJSXElement()
		if p.lexer.Token != js_lexer.TGreaterThan {
			return nil, p.lexer.Expected(js_lexer.TGreaterThan)
		}
		return element, nil
	}

	// The next token is scanned as child text
	if p.lexer.Token != js_lexer.TGreaterThan {
		return nil, p.lexer.Expected(js_lexer.TGreaterThan)
	}
	p.lexer.NextJSXElementChild()

	// Parse the children of this element
	element.Children = []js_ast.Expr{}
	for {
		switch p.lexer.Token {
		case js_lexer.TStringLiteral:
			if len(p.lexer.StringLiteral) > 0 {
				element.Children = append(element.Children, js_ast.Expr{
					Span: p.lexer.Span(),
					Data: &js_ast.EJSXText{Value: p.lexer.StringLiteral, Raw: p.lexer.Raw()},
				})
			}
			p.lexer.NextJSXElementChild()

		case js_lexer.TOpenBrace:
			// The contents of the braces are scanned as normal tokens
			p.lexer.Next()

			// The expression is optional, and may be absent
			if p.lexer.Token != js_lexer.TCloseBrace {
				child, err := func() (js_ast.Expr, error) {
					defer p.enterNested()()
					if p.lexer.Token == js_lexer.TDotDotDot {
						return p.parseSpreadOrAssign()
					}
					return p.parseExpr()
				}()
				if err != nil {
					return nil, err
				}
				element.Children = append(element.Children, child)
			}

			if p.lexer.Token != js_lexer.TCloseBrace {
				return nil, p.lexer.Expected(js_lexer.TCloseBrace)
			}
			p.lexer.NextJSXElementChild()

		case js_lexer.TLessThan:
			lessThanStart := p.start()
			p.lexer.NextInsideJSXElement()

			if p.lexer.Token != js_lexer.TSlash {
				// This is a child element
				child, err := p.parseJSXElementBody(lessThanStart)
				if err != nil {
					return nil, err
				}
				p.lexer.NextJSXElementChild()
				element.Children = append(element.Children, js_ast.Expr{Span: p.spanFrom(lessThanStart), Data: child})
				continue
			}

			// This is the closing element
			p.lexer.NextInsideJSXElement()
			endRange, endText, _, err := p.parseJSXTag()
			if err != nil {
				return nil, err
			}
			if startText != endText {
				return nil, p.fail(endRange, fmt.Sprintf("Expected closing %q tag to match opening %q tag", endText, startText))
			}
			if p.lexer.Token != js_lexer.TGreaterThan {
				return nil, p.lexer.Expected(js_lexer.TGreaterThan)
			}
			return element, nil

		case js_lexer.TEndOfFile:
			return nil, p.fail(p.lexer.Range(), fmt.Sprintf("Unexpected end of file before a closing %q tag", startText))

		default:
			return nil, p.lexer.Unexpected()
		}
	}
}

// "a", "a:b", "a='b'", "a={b}", "a=<b />", and "{...a}"
func (p *parser) parseJSXAttribute() (js_ast.Property, error) {
	start := p.start()

	if p.lexer.Token == js_lexer.TOpenBrace {
		p.lexer.Next()
		if err := p.expect(js_lexer.TDotDotDot); err != nil {
			return js_ast.Property{}, err
		}
		value, err := p.parseNestedAssign()
		if err != nil {
			return js_ast.Property{}, err
		}
		if p.lexer.Token != js_lexer.TCloseBrace {
			return js_ast.Property{}, p.lexer.Expected(js_lexer.TCloseBrace)
		}
		p.lexer.NextInsideJSXElement()
		return js_ast.Property{Span: p.spanFrom(start), Kind: js_ast.PropertySpread, Key: value}, nil
	}

	if p.lexer.Token != js_lexer.TIdentifier {
		return js_ast.Property{}, p.lexer.Expected(js_lexer.TIdentifier)
	}
	name := p.lexer.Identifier
	keyRange := p.lexer.Range()
	p.lexer.NextInsideJSXElement()

	// "<a b:c />"
	if p.lexer.Token == js_lexer.TColon {
		p.lexer.NextInsideJSXElement()
		if p.lexer.Token != js_lexer.TIdentifier {
			return js_ast.Property{}, p.lexer.Expected(js_lexer.TIdentifier)
		}
		name += ":" + p.lexer.Identifier
		keyRange.Len = p.lexer.Range().End() - keyRange.Loc.Start
		p.lexer.NextInsideJSXElement()
	}
	key := js_ast.Expr{Span: keyRange.Span(), Data: &js_ast.EString{Value: helpers.StringToUTF16(name)}}

	// An attribute without a value is implicitly true
	if p.lexer.Token != js_lexer.TEquals {
		return js_ast.Property{
			Span:       p.spanFrom(start),
			Key:        key,
			ValueOrNil: js_ast.Expr{Span: keyRange.Span(), Data: &js_ast.EBoolean{Value: true}},
		}, nil
	}

	// The value may be a JSX string, which has no escape sequences
	p.lexer.NextInsideJSXElement()
	var value js_ast.Expr
	switch p.lexer.Token {
	case js_lexer.TStringLiteral:
		value = js_ast.Expr{Span: p.lexer.Span(), Data: &js_ast.EString{Value: p.lexer.StringLiteral}}
		p.lexer.NextInsideJSXElement()

	case js_lexer.TLessThan:
		elementStart := p.start()
		p.lexer.NextInsideJSXElement()
		element, err := p.parseJSXElementBody(elementStart)
		if err != nil {
			return js_ast.Property{}, err
		}
		p.lexer.NextInsideJSXElement()
		value = js_ast.Expr{Span: p.spanFrom(elementStart), Data: element}

	case js_lexer.TOpenBrace:
		p.lexer.Next()
		var err error
		value, err = func() (js_ast.Expr, error) {
			defer p.enterNested()()
			return p.parseExpr()
		}()
		if err != nil {
			return js_ast.Property{}, err
		}
		if p.lexer.Token != js_lexer.TCloseBrace {
			return js_ast.Property{}, p.lexer.Expected(js_lexer.TCloseBrace)
		}
		p.lexer.NextInsideJSXElement()

	default:
		return js_ast.Property{}, p.lexer.Unexpected()
	}

	return js_ast.Property{Span: p.spanFrom(start), Key: key, ValueOrNil: value}, nil
}
