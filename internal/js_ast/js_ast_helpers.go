package js_ast

// Removes any number of TypeScript-only wrappers and preserved parentheses
func UnwrapTypeScriptAndParens(value Expr) Expr {
	for {
		switch e := value.Data.(type) {
		case *EParen:
			value = e.Value
		case *ETSAs:
			value = e.Value
		case *ETSSatisfies:
			value = e.Value
		case *ETSNonNull:
			value = e.Value
		case *ETSTypeAssertion:
			value = e.Value
		default:
			return value
		}
	}
}

// Calls "visit" on each direct child expression of "value" in source order.
// Children of functions, arrows, and classes that live inside statements are
// not visited.
func ForEachChild(value Expr, visit func(Expr)) {
	maybe := func(child Expr) {
		if child.Data != nil {
			visit(child)
		}
	}
	properties := func(props []Property) {
		for _, prop := range props {
			for _, d := range prop.Decorators {
				visit(d)
			}
			if !prop.IsShorthand {
				maybe(prop.Key)
			}
			maybe(prop.ValueOrNil)
			maybe(prop.InitializerOrNil)
		}
	}

	switch e := value.Data.(type) {
	case *EArray:
		for _, item := range e.Items {
			visit(item)
		}
	case *EObject:
		properties(e.Properties)
	case *EUnary:
		visit(e.Value)
	case *EBinary:
		visit(e.Left)
		visit(e.Right)
	case *ELogical:
		visit(e.Left)
		visit(e.Right)
	case *EAssign:
		visit(e.Target)
		visit(e.Value)
	case *ENew:
		visit(e.Target)
		for _, arg := range e.Args {
			visit(arg)
		}
	case *EImportCall:
		visit(e.Expr)
		maybe(e.OptionsOrNil)
	case *ECall:
		visit(e.Target)
		for _, arg := range e.Args {
			visit(arg)
		}
	case *EDot:
		visit(e.Target)
	case *EIndex:
		visit(e.Target)
		visit(e.Index)
	case *EChain:
		visit(e.Expr)
	case *EPrivateIn:
		visit(e.Value)
	case *EClass:
		for _, d := range e.Class.Decorators {
			visit(d)
		}
		maybe(e.Class.ExtendsOrNil)
		properties(e.Class.Properties)
	case *EJSXElement:
		maybe(e.TagOrNil)
		properties(e.Properties)
		for _, child := range e.Children {
			visit(child)
		}
	case *ESpread:
		visit(e.Value)
	case *ETemplate:
		maybe(e.TagOrNil)
		for _, part := range e.Parts {
			visit(part.Value)
		}
	case *EAwait:
		visit(e.Value)
	case *EYield:
		maybe(e.ValueOrNil)
	case *EIf:
		visit(e.Test)
		visit(e.Yes)
		visit(e.No)
	case *ESequence:
		for _, item := range e.Exprs {
			visit(item)
		}
	case *EParen:
		visit(e.Value)
	case *EArrayPattern:
		for _, item := range e.Items {
			maybe(item.TargetOrNil)
			maybe(item.DefaultOrNil)
		}
		maybe(e.RestOrNil)
	case *EObjectPattern:
		for _, prop := range e.Properties {
			if !prop.IsShorthand {
				visit(prop.Key)
			}
			visit(prop.Target)
			maybe(prop.DefaultOrNil)
		}
		maybe(e.RestOrNil)
	case *ETSAs:
		visit(e.Value)
	case *ETSSatisfies:
		visit(e.Value)
	case *ETSNonNull:
		visit(e.Value)
	case *ETSInstantiation:
		visit(e.Value)
	case *ETSTypeAssertion:
		visit(e.Value)
	}
}
