package js_ast

import (
	"github.com/esexpr/esexpr/internal/logger"
)

// Every expression is parsed into a tree of these nodes. Each node carries a
// span that covers exactly the tokens it was parsed from. Nodes are built
// once, bottom-up, and are not mutated after construction.
//
// Identifiers are stored by name. There is no scope or symbol binding here
// since this tree only describes syntax.

type L int

// https://developer.mozilla.org/en-US/docs/Web/JavaScript/Reference/Operators/Operator_Precedence
const (
	LLowest L = iota
	LComma
	LSpread
	LYield
	LAssign
	LConditional
	LNullishCoalescing
	LLogicalOr
	LLogicalAnd
	LBitwiseOr
	LBitwiseXor
	LBitwiseAnd
	LEquals
	LCompare
	LShift
	LAdd
	LMultiply
	LExponentiation
	LPrefix
	LPostfix
	LNew
	LCall
	LMember
)

type OpCode int

func (op OpCode) IsPrefix() bool {
	return op < UnOpPostDec
}

func (op OpCode) UnaryAssignTarget() AssignTarget {
	if op >= UnOpPreDec && op <= UnOpPostInc {
		return AssignTargetUpdate
	}
	return AssignTargetNone
}

func (op OpCode) IsLeftAssociative() bool {
	return op >= BinOpAdd && op < BinOpComma && op != BinOpPow
}

func (op OpCode) IsRightAssociative() bool {
	return op >= BinOpAssign || op == BinOpPow
}

func (op OpCode) IsLogical() bool {
	return op == BinOpLogicalOr || op == BinOpLogicalAnd || op == BinOpNullishCoalescing
}

type AssignTarget uint8

const (
	AssignTargetNone    AssignTarget = iota
	AssignTargetReplace              // "a = b"
	AssignTargetUpdate               // "a += b"
)

// If you add a new token, remember to add it to "OpTable" too
const (
	// Prefix
	UnOpPos OpCode = iota
	UnOpNeg
	UnOpCpl
	UnOpNot
	UnOpVoid
	UnOpTypeof
	UnOpDelete

	// Prefix update
	UnOpPreDec
	UnOpPreInc

	// Postfix update
	UnOpPostDec
	UnOpPostInc

	// Left-associative
	BinOpAdd
	BinOpSub
	BinOpMul
	BinOpDiv
	BinOpRem
	BinOpPow
	BinOpLt
	BinOpLe
	BinOpGt
	BinOpGe
	BinOpIn
	BinOpInstanceof
	BinOpShl
	BinOpShr
	BinOpUShr
	BinOpLooseEq
	BinOpLooseNe
	BinOpStrictEq
	BinOpStrictNe
	BinOpNullishCoalescing
	BinOpLogicalOr
	BinOpLogicalAnd
	BinOpBitwiseOr
	BinOpBitwiseAnd
	BinOpBitwiseXor

	// Non-associative
	BinOpComma

	// Right-associative
	BinOpAssign
	BinOpAddAssign
	BinOpSubAssign
	BinOpMulAssign
	BinOpDivAssign
	BinOpRemAssign
	BinOpPowAssign
	BinOpShlAssign
	BinOpShrAssign
	BinOpUShrAssign
	BinOpBitwiseOrAssign
	BinOpBitwiseAndAssign
	BinOpBitwiseXorAssign
	BinOpNullishCoalescingAssign
	BinOpLogicalOrAssign
	BinOpLogicalAndAssign
)

type opTableEntry struct {
	Text      string
	Level     L
	IsKeyword bool
}

var OpTable = []opTableEntry{
	// Prefix
	{"+", LPrefix, false},
	{"-", LPrefix, false},
	{"~", LPrefix, false},
	{"!", LPrefix, false},
	{"void", LPrefix, true},
	{"typeof", LPrefix, true},
	{"delete", LPrefix, true},

	// Prefix update
	{"--", LPrefix, false},
	{"++", LPrefix, false},

	// Postfix update
	{"--", LPostfix, false},
	{"++", LPostfix, false},

	// Left-associative
	{"+", LAdd, false},
	{"-", LAdd, false},
	{"*", LMultiply, false},
	{"/", LMultiply, false},
	{"%", LMultiply, false},
	{"**", LExponentiation, false}, // Right-associative
	{"<", LCompare, false},
	{"<=", LCompare, false},
	{">", LCompare, false},
	{">=", LCompare, false},
	{"in", LCompare, true},
	{"instanceof", LCompare, true},
	{"<<", LShift, false},
	{">>", LShift, false},
	{">>>", LShift, false},
	{"==", LEquals, false},
	{"!=", LEquals, false},
	{"===", LEquals, false},
	{"!==", LEquals, false},
	{"??", LNullishCoalescing, false},
	{"||", LLogicalOr, false},
	{"&&", LLogicalAnd, false},
	{"|", LBitwiseOr, false},
	{"&", LBitwiseAnd, false},
	{"^", LBitwiseXor, false},

	// Non-associative
	{",", LComma, false},

	// Right-associative
	{"=", LAssign, false},
	{"+=", LAssign, false},
	{"-=", LAssign, false},
	{"*=", LAssign, false},
	{"/=", LAssign, false},
	{"%=", LAssign, false},
	{"**=", LAssign, false},
	{"<<=", LAssign, false},
	{">>=", LAssign, false},
	{">>>=", LAssign, false},
	{"|=", LAssign, false},
	{"&=", LAssign, false},
	{"^=", LAssign, false},
	{"??=", LAssign, false},
	{"||=", LAssign, false},
	{"&&=", LAssign, false},
}

// A name together with the span it was read from
type Ident struct {
	Name string
	Span logger.Span
}

// TypeScript types are skipped over by the parser rather than parsed into a
// tree. Only their location and source text are kept.
type TSType struct {
	Span logger.Span
	Text string
}

// "<A, B>" in "f<A, B>()" or "new Foo<A>()"
type TSTypeArgs struct {
	Span  logger.Span
	Types []TSType
}

type PropertyKind uint8

const (
	PropertyField PropertyKind = iota
	PropertyGet
	PropertySet
	PropertySpread
	PropertyClassStaticBlock
)

type Property struct {
	Span       logger.Span
	Decorators []Expr
	Key        Expr

	// This is omitted for class fields without an initializer and for spread
	// properties, where the spread value is stored in "Key"
	ValueOrNil Expr

	// This is used when parsing a pattern that uses default values:
	//
	//   [a = 1] = [];
	//   ({a = 1} = {});
	//
	// It's also used for class fields:
	//
	//   class Foo { a = 1 }
	//
	InitializerOrNil Expr

	// "class Foo { static {} }"
	ClassStaticBlock *ClassStaticBlock

	// The type annotation of a TypeScript class field
	TypeOrNil *TSType

	Kind        PropertyKind
	IsComputed  bool
	IsMethod    bool
	IsStatic    bool
	IsShorthand bool
	IsAccessor  bool
}

type ClassStaticBlock struct {
	Span  logger.Span
	Stmts []Stmt
}

type PropertyBinding struct {
	Span         logger.Span
	Key          Expr
	Value        Binding
	DefaultOrNil Expr
	IsComputed   bool
	IsSpread     bool
	IsShorthand  bool
}

type Arg struct {
	Span         logger.Span
	Decorators   []Expr
	Binding      Binding
	DefaultOrNil Expr
	TypeOrNil    *TSType
	IsOptional   bool
	IsRest       bool
}

type Fn struct {
	Name            *Ident
	TypeParamsOrNil *TSType
	Args            []Arg
	ReturnTypeOrNil *TSType
	Body            FnBody

	IsAsync     bool
	IsGenerator bool
	HasRestArg  bool
}

type FnBody struct {
	Span  logger.Span
	Stmts []Stmt
}

type Class struct {
	Decorators      []Expr
	Name            *Ident
	TypeParamsOrNil *TSType
	ExtendsOrNil    Expr
	ExtendsTypeArgs *TSTypeArgs
	Implements      []TSType
	BodySpan        logger.Span
	Properties      []Property
}

type ArrayBinding struct {
	Binding      Binding
	DefaultOrNil Expr
}

type Binding struct {
	Span logger.Span
	Data B
}

// This interface is never called. Its purpose is to encode a variant type in
// Go's type system.
type B interface{ isBinding() }

type BMissing struct{}

type BIdentifier struct{ Name string }

type BArray struct {
	Items     []ArrayBinding
	HasSpread bool
}

type BObject struct {
	Properties []PropertyBinding
}

func (*BMissing) isBinding()    {}
func (*BIdentifier) isBinding() {}
func (*BArray) isBinding()      {}
func (*BObject) isBinding()     {}

type Expr struct {
	Span logger.Span
	Data E
}

// This interface is never called. Its purpose is to encode a variant type in
// Go's type system.
type E interface{ isExpr() }

type EArray struct {
	Items            []Expr
	CommaAfterSpread logger.Loc
}

type EUnary struct {
	Op    OpCode
	Value Expr
}

// Every binary operator except the logical ones below
type EBinary struct {
	Op    OpCode
	Left  Expr
	Right Expr
}

// "a && b", "a || b", and "a ?? b"
type ELogical struct {
	Op    OpCode
	Left  Expr
	Right Expr
}

// Every assignment operator. The target has already been converted from the
// expression it was parsed as into an assignment target, so it is always an
// identifier, a non-optional member access, a TypeScript wrapper around one
// of those, or a destructuring pattern.
type EAssign struct {
	Op     OpCode
	Target Expr
	Value  Expr
}

type EBoolean struct{ Value bool }

type ESuper struct{}

type ENull struct{}

type EThis struct{}

type ENew struct {
	Target         Expr
	Args           []Expr
	TypeArgsOrNil  *TSTypeArgs
	HasParenthesis bool
}

// "new.target"
type ENewTarget struct{}

// "import.meta"
type EImportMeta struct{}

type ImportPhase uint8

const (
	ImportPhaseEvaluation ImportPhase = iota
	ImportPhaseSource                 // "import.source(x)"
	ImportPhaseDefer                  // "import.defer(x)"
)

// "import(x)" or "import(x, { with: { type: 'json' } })"
type EImportCall struct {
	Phase        ImportPhase
	Expr         Expr
	OptionsOrNil Expr
}

type OptionalChain uint8

const (
	// "a.b"
	OptionalChainNone OptionalChain = iota

	// "a?.b"
	OptionalChainStart

	// "a?.b.c" => ".c" is OptionalChainContinue
	// "(a?.b).c" => ".c" is OptionalChainNone
	OptionalChainContinue
)

type ECall struct {
	Target        Expr
	Args          []Expr
	TypeArgsOrNil *TSTypeArgs
	OptionalChain OptionalChain
}

type EDot struct {
	Target        Expr
	Name          string
	NameSpan      logger.Span
	OptionalChain OptionalChain
}

// Also used for "a.#b", in which case the index is an EPrivateIdentifier
type EIndex struct {
	Target        Expr
	Index         Expr
	OptionalChain OptionalChain
}

// Wraps a member or call chain that contains at least one "?." link. There
// is exactly one of these per chain, at the outermost node of the chain.
type EChain struct {
	Expr Expr
}

type EArrow struct {
	TypeParamsOrNil *TSType
	Args            []Arg
	ReturnTypeOrNil *TSType
	Body            FnBody

	IsAsync    bool
	HasRestArg bool
	PreferExpr bool // Use shorthand if true and "Body" is a single return statement
}

type EFunction struct{ Fn Fn }

type EClass struct{ Class Class }

type EIdentifier struct {
	Name string
}

// This is similar to EIdentifier but it represents class-private fields and
// methods. It can be used where computed properties can be used, such as
// EIndex and Property. The name does not include the "#".
type EPrivateIdentifier struct {
	Name string
}

// "#x in obj"
type EPrivateIn struct {
	Name     string
	NameSpan logger.Span
	Value    Expr
}

type EJSXElement struct {
	// This is nil for fragments
	TagOrNil   Expr
	Properties []Property
	Children   []Expr
}

type EJSXText struct {
	Value []uint16
	Raw   string
}

// An array hole such as "[, a]"
type EMissing struct{}

type NumberBase uint8

const (
	NumberBaseDecimal NumberBase = iota
	NumberBaseFloat
	NumberBaseBinary
	NumberBaseOctal
	NumberBaseHex
	NumberBaseExponential
)

func (base NumberBase) String() string {
	switch base {
	case NumberBaseDecimal:
		return "decimal"
	case NumberBaseFloat:
		return "float"
	case NumberBaseBinary:
		return "binary"
	case NumberBaseOctal:
		return "octal"
	case NumberBaseHex:
		return "hex"
	case NumberBaseExponential:
		return "exponential"
	}
	return ""
}

type ENumber struct {
	Value float64
	Base  NumberBase
	Raw   string
}

// The value is the digits without the "n" suffix or any separators
type EBigInt struct{ Value string }

type EObject struct {
	Properties []Property
}

type ESpread struct{ Value Expr }

type EString struct {
	Value []uint16

	// Legacy octal escapes such as "\01" are forbidden in templates and in
	// strict mode code
	HasLegacyOctal bool
}

type TemplatePart struct {
	Value Expr

	// This is nil when the tail contains an invalid escape sequence, which
	// is only permitted in tagged templates
	TailCooked []uint16
	TailRaw    string
	TailSpan   logger.Span
}

type ETemplate struct {
	TagOrNil      Expr
	TypeArgsOrNil *TSTypeArgs
	HeadCooked    []uint16
	HeadRaw       string
	HeadSpan      logger.Span
	Parts         []TemplatePart
}

type ERegExp struct {
	Pattern string
	Flags   string
}

type EAwait struct {
	Value Expr
}

type EYield struct {
	ValueOrNil Expr
	IsStar     bool
}

type EIf struct {
	Test Expr
	Yes  Expr
	No   Expr
}

// "a, b, c". There are always at least two expressions.
type ESequence struct {
	Exprs []Expr
}

// Only generated when parentheses are being preserved
type EParen struct {
	Value Expr
}

// The destructuring target of an assignment, converted from an array
// literal. Holes are represented by an item whose target is nil.
type EArrayPattern struct {
	Items     []PatternItem
	RestOrNil Expr
}

type PatternItem struct {
	TargetOrNil  Expr
	DefaultOrNil Expr
}

// The destructuring target of an assignment, converted from an object
// literal
type EObjectPattern struct {
	Properties []PatternProperty
	RestOrNil  Expr
}

type PatternProperty struct {
	Span         logger.Span
	Key          Expr
	Target       Expr
	DefaultOrNil Expr
	IsComputed   bool
	IsShorthand  bool
}

// "a as T"
type ETSAs struct {
	Value Expr
	Type  TSType
}

// "a satisfies T"
type ETSSatisfies struct {
	Value Expr
	Type  TSType
}

// "a!"
type ETSNonNull struct {
	Value Expr
}

// "f<T>" without a call
type ETSInstantiation struct {
	Value    Expr
	TypeArgs TSTypeArgs
}

// "<T>a"
type ETSTypeAssertion struct {
	Type  TSType
	Value Expr
}

func (*EArray) isExpr()             {}
func (*EUnary) isExpr()             {}
func (*EBinary) isExpr()            {}
func (*ELogical) isExpr()           {}
func (*EAssign) isExpr()            {}
func (*EBoolean) isExpr()           {}
func (*ESuper) isExpr()             {}
func (*ENull) isExpr()              {}
func (*EThis) isExpr()              {}
func (*ENew) isExpr()               {}
func (*ENewTarget) isExpr()         {}
func (*EImportMeta) isExpr()        {}
func (*EImportCall) isExpr()        {}
func (*ECall) isExpr()              {}
func (*EDot) isExpr()               {}
func (*EIndex) isExpr()             {}
func (*EChain) isExpr()             {}
func (*EArrow) isExpr()             {}
func (*EFunction) isExpr()          {}
func (*EClass) isExpr()             {}
func (*EIdentifier) isExpr()        {}
func (*EPrivateIdentifier) isExpr() {}
func (*EPrivateIn) isExpr()         {}
func (*EJSXElement) isExpr()        {}
func (*EJSXText) isExpr()           {}
func (*EMissing) isExpr()           {}
func (*ENumber) isExpr()            {}
func (*EBigInt) isExpr()            {}
func (*EObject) isExpr()            {}
func (*ESpread) isExpr()            {}
func (*EString) isExpr()            {}
func (*ETemplate) isExpr()          {}
func (*ERegExp) isExpr()            {}
func (*EAwait) isExpr()             {}
func (*EYield) isExpr()             {}
func (*EIf) isExpr()                {}
func (*ESequence) isExpr()          {}
func (*EParen) isExpr()             {}
func (*EArrayPattern) isExpr()      {}
func (*EObjectPattern) isExpr()     {}
func (*ETSAs) isExpr()              {}
func (*ETSSatisfies) isExpr()       {}
func (*ETSNonNull) isExpr()         {}
func (*ETSInstantiation) isExpr()   {}
func (*ETSTypeAssertion) isExpr()   {}

type Stmt struct {
	Span logger.Span
	Data S
}

// This interface is never called. Its purpose is to encode a variant type in
// Go's type system.
type S interface{ isStmt() }

type SBlock struct {
	Stmts []Stmt
}

type SEmpty struct{}

type SExpr struct {
	Value Expr
}

type SIf struct {
	Test    Expr
	Yes     Stmt
	NoOrNil Stmt
}

type SFor struct {
	InitOrNil   Stmt // May be a SExpr or SLocal
	TestOrNil   Expr
	UpdateOrNil Expr
	Body        Stmt
}

type SForIn struct {
	Init  Stmt // May be a SExpr or SLocal
	Value Expr
	Body  Stmt
}

type SForOf struct {
	Init    Stmt // May be a SExpr or SLocal
	Value   Expr
	Body    Stmt
	IsAwait bool
}

type SWhile struct {
	Test Expr
	Body Stmt
}

type SReturn struct {
	ValueOrNil Expr
}

type SThrow struct {
	Value Expr
}

type LocalKind uint8

const (
	LocalVar LocalKind = iota
	LocalLet
	LocalConst
)

func (kind LocalKind) String() string {
	switch kind {
	case LocalLet:
		return "let"
	case LocalConst:
		return "const"
	default:
		return "var"
	}
}

type Decl struct {
	Binding    Binding
	TypeOrNil  *TSType
	ValueOrNil Expr
}

type SLocal struct {
	Decls []Decl
	Kind  LocalKind
}

func (*SBlock) isStmt()  {}
func (*SEmpty) isStmt()  {}
func (*SExpr) isStmt()   {}
func (*SIf) isStmt()     {}
func (*SFor) isStmt()    {}
func (*SForIn) isStmt()  {}
func (*SForOf) isStmt()  {}
func (*SWhile) isStmt()  {}
func (*SReturn) isStmt() {}
func (*SThrow) isStmt()  {}
func (*SLocal) isStmt()  {}

type Program struct {
	Hashbang string
	Stmts    []Stmt
}
