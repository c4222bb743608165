package js_printer

import (
	"strings"

	"github.com/esexpr/esexpr/internal/helpers"
	"github.com/esexpr/esexpr/internal/js_ast"
	"github.com/esexpr/esexpr/internal/logger"
)

// The ESTree form is meant for JSON output, so every node is a plain map.
// TypeScript types are kept as their source text since they aren't parsed.

func newNode(kind string, span logger.Span) map[string]interface{} {
	return map[string]interface{}{
		"type":  kind,
		"start": int(span.Start),
		"end":   int(span.End),
	}
}

func ToESTree(expr js_ast.Expr) map[string]interface{} {
	return exprToESTree(expr)
}

func ProgramToESTree(program js_ast.Program, span logger.Span) map[string]interface{} {
	node := newNode("Program", span)
	node["body"] = stmtsToESTree(program.Stmts)
	if program.Hashbang != "" {
		node["hashbang"] = program.Hashbang
	}
	return node
}

func exprsToESTree(exprs []js_ast.Expr) []interface{} {
	list := make([]interface{}, 0, len(exprs))
	for _, expr := range exprs {
		list = append(list, optionalExprToESTree(expr))
	}
	return list
}

// A nil map inside an interface{} would print as "null" anyway, but
// comparing against nil in tests is easier with an untyped nil
func optionalExprToESTree(expr js_ast.Expr) interface{} {
	if expr.Data == nil {
		return nil
	}
	if node := exprToESTree(expr); node != nil {
		return node
	}
	return nil
}

func typeText(typ *js_ast.TSType) interface{} {
	if typ == nil {
		return nil
	}
	return typ.Text
}

func typeArgsToESTree(args *js_ast.TSTypeArgs) interface{} {
	if args == nil {
		return nil
	}
	texts := make([]interface{}, 0, len(args.Types))
	for _, typ := range args.Types {
		texts = append(texts, typ.Text)
	}
	return texts
}

func withDefault(target map[string]interface{}, span logger.Span, defaultOrNil js_ast.Expr) map[string]interface{} {
	if defaultOrNil.Data == nil {
		return target
	}
	node := newNode("AssignmentPattern", span)
	node["left"] = target
	node["right"] = exprToESTree(defaultOrNil)
	return node
}

func restElement(span logger.Span, argument map[string]interface{}) map[string]interface{} {
	node := newNode("RestElement", span)
	node["argument"] = argument
	return node
}

func identifier(name string, span logger.Span) map[string]interface{} {
	node := newNode("Identifier", span)
	node["name"] = name
	return node
}

func keyToESTree(key js_ast.Expr) map[string]interface{} {
	if private, ok := key.Data.(*js_ast.EPrivateIdentifier); ok {
		node := newNode("PrivateIdentifier", key.Span)
		node["name"] = private.Name
		return node
	}
	return exprToESTree(key)
}

func bindingToESTree(binding js_ast.Binding) map[string]interface{} {
	switch b := binding.Data.(type) {
	case *js_ast.BIdentifier:
		return identifier(b.Name, binding.Span)

	case *js_ast.BArray:
		node := newNode("ArrayPattern", binding.Span)
		elements := []interface{}{}
		for i, item := range b.Items {
			if _, ok := item.Binding.Data.(*js_ast.BMissing); ok {
				elements = append(elements, nil)
				continue
			}
			element := bindingToESTree(item.Binding)
			if b.HasSpread && i+1 == len(b.Items) {
				element = restElement(item.Binding.Span, element)
			} else {
				span := item.Binding.Span
				if item.DefaultOrNil.Data != nil {
					span.End = item.DefaultOrNil.Span.End
				}
				element = withDefault(element, span, item.DefaultOrNil)
			}
			elements = append(elements, element)
		}
		node["elements"] = elements
		return node

	case *js_ast.BObject:
		node := newNode("ObjectPattern", binding.Span)
		properties := []interface{}{}
		for _, property := range b.Properties {
			if property.IsSpread {
				properties = append(properties, restElement(property.Span, bindingToESTree(property.Value)))
				continue
			}
			item := newNode("Property", property.Span)
			value := bindingToESTree(property.Value)
			item["key"] = value
			if !property.IsShorthand {
				item["key"] = keyToESTree(property.Key)
			}
			item["value"] = withDefault(value, property.Span, property.DefaultOrNil)
			item["kind"] = "init"
			item["computed"] = property.IsComputed
			item["shorthand"] = property.IsShorthand
			item["method"] = false
			properties = append(properties, item)
		}
		node["properties"] = properties
		return node
	}
	return nil
}

func paramsToESTree(args []js_ast.Arg) []interface{} {
	params := make([]interface{}, 0, len(args))
	for _, arg := range args {
		param := bindingToESTree(arg.Binding)
		if arg.TypeOrNil != nil {
			param["typeAnnotation"] = arg.TypeOrNil.Text
		}
		if arg.IsOptional {
			param["optional"] = true
		}
		if arg.IsRest {
			param = restElement(arg.Span, param)
		} else {
			param = withDefault(param, arg.Span, arg.DefaultOrNil)
		}
		if len(arg.Decorators) > 0 {
			param["decorators"] = decoratorsToESTree(arg.Decorators)
		}
		params = append(params, param)
	}
	return params
}

func decoratorsToESTree(decorators []js_ast.Expr) []interface{} {
	list := make([]interface{}, 0, len(decorators))
	for _, decorator := range decorators {
		node := newNode("Decorator", decorator.Span)
		node["expression"] = exprToESTree(decorator)
		list = append(list, node)
	}
	return list
}

func fnToESTree(kind string, span logger.Span, fn js_ast.Fn) map[string]interface{} {
	node := newNode(kind, span)
	node["id"] = nil
	if fn.Name != nil {
		node["id"] = identifier(fn.Name.Name, fn.Name.Span)
	}
	node["params"] = paramsToESTree(fn.Args)
	node["body"] = blockToESTree(fn.Body.Span, fn.Body.Stmts)
	node["async"] = fn.IsAsync
	node["generator"] = fn.IsGenerator
	node["typeParameters"] = typeText(fn.TypeParamsOrNil)
	node["returnType"] = typeText(fn.ReturnTypeOrNil)
	return node
}

func propertyToESTree(property js_ast.Property) map[string]interface{} {
	if property.Kind == js_ast.PropertySpread {
		node := newNode("SpreadElement", property.Span)
		node["argument"] = exprToESTree(property.Key)
		return node
	}

	node := newNode("Property", property.Span)
	node["key"] = keyToESTree(property.Key)
	node["computed"] = property.IsComputed
	node["shorthand"] = property.IsShorthand
	node["method"] = property.IsMethod && property.Kind == js_ast.PropertyField

	switch property.Kind {
	case js_ast.PropertyGet:
		node["kind"] = "get"
	case js_ast.PropertySet:
		node["kind"] = "set"
	default:
		node["kind"] = "init"
	}

	value := exprToESTree(property.ValueOrNil)
	if fn, ok := property.ValueOrNil.Data.(*js_ast.EFunction); ok && property.IsMethod {
		value = fnToESTree("FunctionExpression", property.ValueOrNil.Span, fn.Fn)
	}
	if property.InitializerOrNil.Data != nil {
		value = withDefault(value, property.Span, property.InitializerOrNil)
	}
	node["value"] = value
	return node
}

func classToESTree(span logger.Span, class js_ast.Class) map[string]interface{} {
	node := newNode("ClassExpression", span)
	node["id"] = nil
	if class.Name != nil {
		node["id"] = identifier(class.Name.Name, class.Name.Span)
	}
	node["superClass"] = optionalExprToESTree(class.ExtendsOrNil)
	node["superTypeArguments"] = typeArgsToESTree(class.ExtendsTypeArgs)
	node["typeParameters"] = typeText(class.TypeParamsOrNil)
	node["decorators"] = decoratorsToESTree(class.Decorators)

	implements := make([]interface{}, 0, len(class.Implements))
	for _, typ := range class.Implements {
		implements = append(implements, typ.Text)
	}
	node["implements"] = implements

	members := make([]interface{}, 0, len(class.Properties))
	for _, property := range class.Properties {
		if property.Kind == js_ast.PropertyClassStaticBlock {
			block := newNode("StaticBlock", property.Span)
			block["body"] = stmtsToESTree(property.ClassStaticBlock.Stmts)
			members = append(members, block)
			continue
		}

		var member map[string]interface{}
		if fn, ok := property.ValueOrNil.Data.(*js_ast.EFunction); ok && property.IsMethod {
			member = newNode("MethodDefinition", property.Span)
			member["value"] = fnToESTree("FunctionExpression", property.ValueOrNil.Span, fn.Fn)
			switch {
			case property.Kind == js_ast.PropertyGet:
				member["kind"] = "get"
			case property.Kind == js_ast.PropertySet:
				member["kind"] = "set"
			case !property.IsStatic && !property.IsComputed && isConstructorKey(property.Key):
				member["kind"] = "constructor"
			default:
				member["kind"] = "method"
			}
		} else {
			kind := "PropertyDefinition"
			if property.IsAccessor {
				kind = "AccessorProperty"
			}
			member = newNode(kind, property.Span)
			member["value"] = optionalExprToESTree(property.InitializerOrNil)
			member["typeAnnotation"] = typeText(property.TypeOrNil)
		}
		member["key"] = keyToESTree(property.Key)
		member["computed"] = property.IsComputed
		member["static"] = property.IsStatic
		member["decorators"] = decoratorsToESTree(property.Decorators)
		members = append(members, member)
	}

	body := newNode("ClassBody", class.BodySpan)
	body["body"] = members
	node["body"] = body
	return node
}

func isConstructorKey(key js_ast.Expr) bool {
	switch k := key.Data.(type) {
	case *js_ast.EIdentifier:
		return k.Name == "constructor"
	case *js_ast.EString:
		return helpers.UTF16EqualsString(k.Value, "constructor")
	}
	return false
}

func templateElement(span logger.Span, cooked []uint16, raw string, tail bool) map[string]interface{} {
	node := newNode("TemplateElement", span)
	value := map[string]interface{}{"raw": raw, "cooked": nil}
	if cooked != nil {
		value["cooked"] = helpers.UTF16ToString(cooked)
	}
	node["value"] = value
	node["tail"] = tail
	return node
}

func templateToESTree(span logger.Span, e *js_ast.ETemplate) map[string]interface{} {
	quasi := newNode("TemplateLiteral", span)
	quasis := []interface{}{templateElement(e.HeadSpan, e.HeadCooked, e.HeadRaw, len(e.Parts) == 0)}
	expressions := []interface{}{}
	for i, part := range e.Parts {
		expressions = append(expressions, exprToESTree(part.Value))
		quasis = append(quasis, templateElement(part.TailSpan, part.TailCooked, part.TailRaw, i+1 == len(e.Parts)))
	}
	quasi["quasis"] = quasis
	quasi["expressions"] = expressions

	if e.TagOrNil.Data == nil {
		return quasi
	}

	// The quasi of a tagged template starts after the tag
	quasi["start"] = int(e.HeadSpan.Start)
	node := newNode("TaggedTemplateExpression", span)
	node["tag"] = exprToESTree(e.TagOrNil)
	node["typeArguments"] = typeArgsToESTree(e.TypeArgsOrNil)
	node["quasi"] = quasi
	return node
}

func jsxNameToESTree(tag js_ast.Expr) map[string]interface{} {
	switch e := tag.Data.(type) {
	case *js_ast.EString:
		name := helpers.UTF16ToString(e.Value)
		if colon := strings.IndexByte(name, ':'); colon >= 0 {
			node := newNode("JSXNamespacedName", tag.Span)
			node["namespace"] = name[:colon]
			node["name"] = name[colon+1:]
			return node
		}
		node := newNode("JSXIdentifier", tag.Span)
		node["name"] = name
		return node

	case *js_ast.EIdentifier:
		node := newNode("JSXIdentifier", tag.Span)
		node["name"] = e.Name
		return node

	case *js_ast.EDot:
		node := newNode("JSXMemberExpression", tag.Span)
		node["object"] = jsxNameToESTree(e.Target)
		property := newNode("JSXIdentifier", e.NameSpan)
		property["name"] = e.Name
		node["property"] = property
		return node
	}
	return nil
}

func jsxToESTree(span logger.Span, e *js_ast.EJSXElement) map[string]interface{} {
	if e.TagOrNil.Data == nil {
		node := newNode("JSXFragment", span)
		node["children"] = jsxChildrenToESTree(e.Children)
		return node
	}

	node := newNode("JSXElement", span)
	node["name"] = jsxNameToESTree(e.TagOrNil)
	node["selfClosing"] = e.Children == nil

	attributes := make([]interface{}, 0, len(e.Properties))
	for _, property := range e.Properties {
		if property.Kind == js_ast.PropertySpread {
			attribute := newNode("JSXSpreadAttribute", property.Span)
			attribute["argument"] = exprToESTree(property.Key)
			attributes = append(attributes, attribute)
			continue
		}

		attribute := newNode("JSXAttribute", property.Span)
		attribute["name"] = jsxNameToESTree(property.Key)
		switch v := property.ValueOrNil.Data.(type) {
		case *js_ast.EBoolean:
			if v.Value && property.ValueOrNil.Span == property.Key.Span {
				attribute["value"] = nil
				break
			}
			attribute["value"] = jsxContainer(property.ValueOrNil)
		case *js_ast.EString, *js_ast.EJSXElement:
			attribute["value"] = exprToESTree(property.ValueOrNil)
		default:
			attribute["value"] = jsxContainer(property.ValueOrNil)
		}
		attributes = append(attributes, attribute)
	}
	node["attributes"] = attributes
	node["children"] = jsxChildrenToESTree(e.Children)
	return node
}

func jsxContainer(value js_ast.Expr) map[string]interface{} {
	node := newNode("JSXExpressionContainer", value.Span)
	node["expression"] = exprToESTree(value)
	return node
}

func jsxChildrenToESTree(children []js_ast.Expr) []interface{} {
	list := make([]interface{}, 0, len(children))
	for _, child := range children {
		switch c := child.Data.(type) {
		case *js_ast.EJSXText, *js_ast.EJSXElement:
			list = append(list, exprToESTree(child))
		case *js_ast.ESpread:
			node := newNode("JSXSpreadChild", child.Span)
			node["expression"] = exprToESTree(c.Value)
			list = append(list, node)
		default:
			list = append(list, jsxContainer(child))
		}
	}
	return list
}

func exprToESTree(expr js_ast.Expr) map[string]interface{} {
	span := expr.Span

	switch e := expr.Data.(type) {
	case *js_ast.EMissing:
		return nil

	case *js_ast.EIdentifier:
		return identifier(e.Name, span)

	case *js_ast.EPrivateIdentifier:
		node := newNode("PrivateIdentifier", span)
		node["name"] = e.Name
		return node

	case *js_ast.ENull:
		node := newNode("Literal", span)
		node["value"] = nil
		node["raw"] = "null"
		return node

	case *js_ast.EBoolean:
		node := newNode("Literal", span)
		node["value"] = e.Value
		if e.Value {
			node["raw"] = "true"
		} else {
			node["raw"] = "false"
		}
		return node

	case *js_ast.ENumber:
		node := newNode("Literal", span)
		node["value"] = e.Value
		node["raw"] = e.Raw
		return node

	case *js_ast.EBigInt:
		node := newNode("Literal", span)
		node["value"] = nil
		node["bigint"] = e.Value
		node["raw"] = e.Value + "n"
		return node

	case *js_ast.EString:
		node := newNode("Literal", span)
		node["value"] = helpers.UTF16ToString(e.Value)
		return node

	case *js_ast.ERegExp:
		node := newNode("Literal", span)
		node["value"] = nil
		node["regex"] = map[string]interface{}{"pattern": e.Pattern, "flags": e.Flags}
		node["raw"] = "/" + e.Pattern + "/" + e.Flags
		return node

	case *js_ast.ETemplate:
		return templateToESTree(span, e)

	case *js_ast.EThis:
		return newNode("ThisExpression", span)

	case *js_ast.ESuper:
		return newNode("Super", span)

	case *js_ast.ENewTarget:
		node := newNode("MetaProperty", span)
		node["meta"] = "new"
		node["property"] = "target"
		return node

	case *js_ast.EImportMeta:
		node := newNode("MetaProperty", span)
		node["meta"] = "import"
		node["property"] = "meta"
		return node

	case *js_ast.EArray:
		node := newNode("ArrayExpression", span)
		node["elements"] = exprsToESTree(e.Items)
		return node

	case *js_ast.EObject:
		node := newNode("ObjectExpression", span)
		properties := make([]interface{}, 0, len(e.Properties))
		for _, property := range e.Properties {
			properties = append(properties, propertyToESTree(property))
		}
		node["properties"] = properties
		return node

	case *js_ast.ESpread:
		node := newNode("SpreadElement", span)
		node["argument"] = exprToESTree(e.Value)
		return node

	case *js_ast.EParen:
		node := newNode("ParenthesizedExpression", span)
		node["expression"] = exprToESTree(e.Value)
		return node

	case *js_ast.EUnary:
		entry := js_ast.OpTable[e.Op]
		kind := "UnaryExpression"
		if e.Op.UnaryAssignTarget() != js_ast.AssignTargetNone {
			kind = "UpdateExpression"
		}
		node := newNode(kind, span)
		node["operator"] = entry.Text
		node["prefix"] = e.Op.IsPrefix()
		node["argument"] = exprToESTree(e.Value)
		return node

	case *js_ast.EBinary:
		node := newNode("BinaryExpression", span)
		node["operator"] = js_ast.OpTable[e.Op].Text
		node["left"] = exprToESTree(e.Left)
		node["right"] = exprToESTree(e.Right)
		return node

	case *js_ast.ELogical:
		node := newNode("LogicalExpression", span)
		node["operator"] = js_ast.OpTable[e.Op].Text
		node["left"] = exprToESTree(e.Left)
		node["right"] = exprToESTree(e.Right)
		return node

	case *js_ast.EPrivateIn:
		node := newNode("BinaryExpression", span)
		left := newNode("PrivateIdentifier", e.NameSpan)
		left["name"] = e.Name
		node["operator"] = "in"
		node["left"] = left
		node["right"] = exprToESTree(e.Value)
		return node

	case *js_ast.EAssign:
		node := newNode("AssignmentExpression", span)
		node["operator"] = js_ast.OpTable[e.Op].Text
		node["left"] = exprToESTree(e.Target)
		node["right"] = exprToESTree(e.Value)
		return node

	case *js_ast.EArrayPattern:
		node := newNode("ArrayPattern", span)
		elements := make([]interface{}, 0, len(e.Items)+1)
		for _, item := range e.Items {
			if item.TargetOrNil.Data == nil {
				elements = append(elements, nil)
				continue
			}
			itemSpan := item.TargetOrNil.Span
			if item.DefaultOrNil.Data != nil {
				itemSpan.End = item.DefaultOrNil.Span.End
			}
			elements = append(elements, withDefault(exprToESTree(item.TargetOrNil), itemSpan, item.DefaultOrNil))
		}
		if e.RestOrNil.Data != nil {
			elements = append(elements, restElement(e.RestOrNil.Span, exprToESTree(e.RestOrNil)))
		}
		node["elements"] = elements
		return node

	case *js_ast.EObjectPattern:
		node := newNode("ObjectPattern", span)
		properties := make([]interface{}, 0, len(e.Properties)+1)
		for _, property := range e.Properties {
			item := newNode("Property", property.Span)
			item["key"] = keyToESTree(property.Key)
			item["value"] = withDefault(exprToESTree(property.Target), property.Span, property.DefaultOrNil)
			item["kind"] = "init"
			item["computed"] = property.IsComputed
			item["shorthand"] = property.IsShorthand
			item["method"] = false
			properties = append(properties, item)
		}
		if e.RestOrNil.Data != nil {
			properties = append(properties, restElement(e.RestOrNil.Span, exprToESTree(e.RestOrNil)))
		}
		node["properties"] = properties
		return node

	case *js_ast.EIf:
		node := newNode("ConditionalExpression", span)
		node["test"] = exprToESTree(e.Test)
		node["consequent"] = exprToESTree(e.Yes)
		node["alternate"] = exprToESTree(e.No)
		return node

	case *js_ast.ESequence:
		node := newNode("SequenceExpression", span)
		node["expressions"] = exprsToESTree(e.Exprs)
		return node

	case *js_ast.ENew:
		node := newNode("NewExpression", span)
		node["callee"] = exprToESTree(e.Target)
		node["arguments"] = exprsToESTree(e.Args)
		node["typeArguments"] = typeArgsToESTree(e.TypeArgsOrNil)
		return node

	case *js_ast.ECall:
		node := newNode("CallExpression", span)
		node["callee"] = exprToESTree(e.Target)
		node["arguments"] = exprsToESTree(e.Args)
		node["optional"] = e.OptionalChain == js_ast.OptionalChainStart
		node["typeArguments"] = typeArgsToESTree(e.TypeArgsOrNil)
		return node

	case *js_ast.EDot:
		node := newNode("MemberExpression", span)
		node["object"] = exprToESTree(e.Target)
		node["property"] = identifier(e.Name, e.NameSpan)
		node["computed"] = false
		node["optional"] = e.OptionalChain == js_ast.OptionalChainStart
		return node

	case *js_ast.EIndex:
		node := newNode("MemberExpression", span)
		node["object"] = exprToESTree(e.Target)
		node["property"] = exprToESTree(e.Index)
		_, isPrivate := e.Index.Data.(*js_ast.EPrivateIdentifier)
		node["computed"] = !isPrivate
		node["optional"] = e.OptionalChain == js_ast.OptionalChainStart
		return node

	case *js_ast.EChain:
		node := newNode("ChainExpression", span)
		node["expression"] = exprToESTree(e.Expr)
		return node

	case *js_ast.EImportCall:
		node := newNode("ImportExpression", span)
		node["source"] = exprToESTree(e.Expr)
		node["options"] = optionalExprToESTree(e.OptionsOrNil)
		switch e.Phase {
		case js_ast.ImportPhaseSource:
			node["phase"] = "source"
		case js_ast.ImportPhaseDefer:
			node["phase"] = "defer"
		default:
			node["phase"] = nil
		}
		return node

	case *js_ast.EArrow:
		node := newNode("ArrowFunctionExpression", span)
		node["id"] = nil
		node["params"] = paramsToESTree(e.Args)
		node["async"] = e.IsAsync
		node["generator"] = false
		node["typeParameters"] = typeText(e.TypeParamsOrNil)
		node["returnType"] = typeText(e.ReturnTypeOrNil)
		node["expression"] = false
		if e.PreferExpr && len(e.Body.Stmts) == 1 {
			if ret, ok := e.Body.Stmts[0].Data.(*js_ast.SReturn); ok && ret.ValueOrNil.Data != nil {
				node["body"] = exprToESTree(ret.ValueOrNil)
				node["expression"] = true
				return node
			}
		}
		node["body"] = blockToESTree(e.Body.Span, e.Body.Stmts)
		return node

	case *js_ast.EFunction:
		return fnToESTree("FunctionExpression", span, e.Fn)

	case *js_ast.EClass:
		return classToESTree(span, e.Class)

	case *js_ast.EAwait:
		node := newNode("AwaitExpression", span)
		node["argument"] = exprToESTree(e.Value)
		return node

	case *js_ast.EYield:
		node := newNode("YieldExpression", span)
		node["argument"] = optionalExprToESTree(e.ValueOrNil)
		node["delegate"] = e.IsStar
		return node

	case *js_ast.EJSXElement:
		return jsxToESTree(span, e)

	case *js_ast.EJSXText:
		node := newNode("JSXText", span)
		node["value"] = helpers.UTF16ToString(e.Value)
		node["raw"] = e.Raw
		return node

	case *js_ast.ETSAs:
		node := newNode("TSAsExpression", span)
		node["expression"] = exprToESTree(e.Value)
		node["typeAnnotation"] = e.Type.Text
		return node

	case *js_ast.ETSSatisfies:
		node := newNode("TSSatisfiesExpression", span)
		node["expression"] = exprToESTree(e.Value)
		node["typeAnnotation"] = e.Type.Text
		return node

	case *js_ast.ETSNonNull:
		node := newNode("TSNonNullExpression", span)
		node["expression"] = exprToESTree(e.Value)
		return node

	case *js_ast.ETSInstantiation:
		node := newNode("TSInstantiationExpression", span)
		node["expression"] = exprToESTree(e.Value)
		node["typeArguments"] = typeArgsToESTree(&e.TypeArgs)
		return node

	case *js_ast.ETSTypeAssertion:
		node := newNode("TSTypeAssertion", span)
		node["typeAnnotation"] = e.Type.Text
		node["expression"] = exprToESTree(e.Value)
		return node
	}

	panic("Internal error")
}

func blockToESTree(span logger.Span, stmts []js_ast.Stmt) map[string]interface{} {
	node := newNode("BlockStatement", span)
	node["body"] = stmtsToESTree(stmts)
	return node
}

func stmtsToESTree(stmts []js_ast.Stmt) []interface{} {
	list := make([]interface{}, 0, len(stmts))
	for _, stmt := range stmts {
		list = append(list, stmtToESTree(stmt))
	}
	return list
}

func optionalStmtToESTree(stmt js_ast.Stmt) interface{} {
	if stmt.Data == nil {
		return nil
	}
	return stmtToESTree(stmt)
}

// The left side of a for-in or for-of loop is either a declaration or a
// bare assignment target, never an expression statement
func forInitToESTree(init js_ast.Stmt) interface{} {
	if s, ok := init.Data.(*js_ast.SExpr); ok {
		return exprToESTree(s.Value)
	}
	return optionalStmtToESTree(init)
}

func stmtToESTree(stmt js_ast.Stmt) map[string]interface{} {
	span := stmt.Span

	switch s := stmt.Data.(type) {
	case *js_ast.SBlock:
		return blockToESTree(span, s.Stmts)

	case *js_ast.SEmpty:
		return newNode("EmptyStatement", span)

	case *js_ast.SExpr:
		node := newNode("ExpressionStatement", span)
		node["expression"] = exprToESTree(s.Value)
		return node

	case *js_ast.SIf:
		node := newNode("IfStatement", span)
		node["test"] = exprToESTree(s.Test)
		node["consequent"] = stmtToESTree(s.Yes)
		node["alternate"] = optionalStmtToESTree(s.NoOrNil)
		return node

	case *js_ast.SFor:
		node := newNode("ForStatement", span)
		node["init"] = forInitToESTree(s.InitOrNil)
		node["test"] = optionalExprToESTree(s.TestOrNil)
		node["update"] = optionalExprToESTree(s.UpdateOrNil)
		node["body"] = stmtToESTree(s.Body)
		return node

	case *js_ast.SForIn:
		node := newNode("ForInStatement", span)
		node["left"] = forInitToESTree(s.Init)
		node["right"] = exprToESTree(s.Value)
		node["body"] = stmtToESTree(s.Body)
		return node

	case *js_ast.SForOf:
		node := newNode("ForOfStatement", span)
		node["await"] = s.IsAwait
		node["left"] = forInitToESTree(s.Init)
		node["right"] = exprToESTree(s.Value)
		node["body"] = stmtToESTree(s.Body)
		return node

	case *js_ast.SWhile:
		node := newNode("WhileStatement", span)
		node["test"] = exprToESTree(s.Test)
		node["body"] = stmtToESTree(s.Body)
		return node

	case *js_ast.SReturn:
		node := newNode("ReturnStatement", span)
		node["argument"] = optionalExprToESTree(s.ValueOrNil)
		return node

	case *js_ast.SThrow:
		node := newNode("ThrowStatement", span)
		node["argument"] = exprToESTree(s.Value)
		return node

	case *js_ast.SLocal:
		node := newNode("VariableDeclaration", span)
		node["kind"] = s.Kind.String()
		declarations := make([]interface{}, 0, len(s.Decls))
		for _, decl := range s.Decls {
			declSpan := decl.Binding.Span
			if decl.ValueOrNil.Data != nil {
				declSpan.End = decl.ValueOrNil.Span.End
			}
			declarator := newNode("VariableDeclarator", declSpan)
			declarator["id"] = bindingToESTree(decl.Binding)
			declarator["init"] = optionalExprToESTree(decl.ValueOrNil)
			declarator["typeAnnotation"] = typeText(decl.TypeOrNil)
			declarations = append(declarations, declarator)
		}
		node["declarations"] = declarations
		return node
	}

	panic("Internal error")
}
