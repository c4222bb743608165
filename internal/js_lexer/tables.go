package js_lexer

var tokenToString = map[T]string{
	TEndOfFile:   "end of file",
	TSyntaxError: "syntax error",
	THashbang:    "hashbang comment",

	// Literals
	TNoSubstitutionTemplateLiteral: "template literal",
	TNumericLiteral:                "number",
	TStringLiteral:                 "string",
	TBigIntegerLiteral:             "bigint",

	// Pseudo-literals
	TTemplateHead:   "template literal",
	TTemplateMiddle: "template literal",
	TTemplateTail:   "template literal",

	// Punctuation
	TAmpersand:                         "\"&\"",
	TAmpersandAmpersand:                "\"&&\"",
	TAsterisk:                          "\"*\"",
	TAsteriskAsterisk:                  "\"**\"",
	TAt:                                "\"@\"",
	TBar:                               "\"|\"",
	TBarBar:                            "\"||\"",
	TCaret:                             "\"^\"",
	TCloseBrace:                        "\"}\"",
	TCloseBracket:                      "\"]\"",
	TCloseParen:                        "\")\"",
	TColon:                             "\":\"",
	TComma:                             "\",\"",
	TDot:                               "\".\"",
	TDotDotDot:                         "\"...\"",
	TEqualsEquals:                      "\"==\"",
	TEqualsEqualsEquals:                "\"===\"",
	TEqualsGreaterThan:                 "\"=>\"",
	TExclamation:                       "\"!\"",
	TExclamationEquals:                 "\"!=\"",
	TExclamationEqualsEquals:           "\"!==\"",
	TGreaterThan:                       "\">\"",
	TGreaterThanEquals:                 "\">=\"",
	TGreaterThanGreaterThan:            "\">>\"",
	TGreaterThanGreaterThanGreaterThan: "\">>>\"",
	TLessThan:                          "\"<\"",
	TLessThanEquals:                    "\"<=\"",
	TLessThanLessThan:                  "\"<<\"",
	TMinus:                             "\"-\"",
	TMinusMinus:                        "\"--\"",
	TOpenBrace:                         "\"{\"",
	TOpenBracket:                       "\"[\"",
	TOpenParen:                         "\"(\"",
	TPercent:                           "\"%\"",
	TPlus:                              "\"+\"",
	TPlusPlus:                          "\"++\"",
	TQuestion:                          "\"?\"",
	TQuestionDot:                       "\"?.\"",
	TQuestionQuestion:                  "\"??\"",
	TSemicolon:                         "\";\"",
	TSlash:                             "\"/\"",
	TTilde:                             "\"~\"",

	// Assignments
	TAmpersandAmpersandEquals:                "\"&&=\"",
	TAmpersandEquals:                         "\"&=\"",
	TAsteriskAsteriskEquals:                  "\"**=\"",
	TAsteriskEquals:                          "\"*=\"",
	TBarBarEquals:                            "\"||=\"",
	TBarEquals:                               "\"|=\"",
	TCaretEquals:                             "\"^=\"",
	TEquals:                                  "\"=\"",
	TGreaterThanGreaterThanEquals:            "\">>=\"",
	TGreaterThanGreaterThanGreaterThanEquals: "\">>>=\"",
	TLessThanLessThanEquals:                  "\"<<=\"",
	TMinusEquals:                             "\"-=\"",
	TPercentEquals:                           "\"%=\"",
	TPlusEquals:                              "\"+=\"",
	TQuestionQuestionEquals:                  "\"??=\"",
	TSlashEquals:                             "\"/=\"",

	// Class-private fields and methods
	TPrivateIdentifier: "private identifier",

	// Identifiers
	TIdentifier:     "identifier",
	TEscapedKeyword: "escaped keyword",

	// Reserved words
	TBreak:      "\"break\"",
	TCase:       "\"case\"",
	TCatch:      "\"catch\"",
	TClass:      "\"class\"",
	TConst:      "\"const\"",
	TContinue:   "\"continue\"",
	TDebugger:   "\"debugger\"",
	TDefault:    "\"default\"",
	TDelete:     "\"delete\"",
	TDo:         "\"do\"",
	TElse:       "\"else\"",
	TEnum:       "\"enum\"",
	TExport:     "\"export\"",
	TExtends:    "\"extends\"",
	TFalse:      "\"false\"",
	TFinally:    "\"finally\"",
	TFor:        "\"for\"",
	TFunction:   "\"function\"",
	TIf:         "\"if\"",
	TImport:     "\"import\"",
	TIn:         "\"in\"",
	TInstanceof: "\"instanceof\"",
	TNew:        "\"new\"",
	TNull:       "\"null\"",
	TReturn:     "\"return\"",
	TSuper:      "\"super\"",
	TSwitch:     "\"switch\"",
	TThis:       "\"this\"",
	TThrow:      "\"throw\"",
	TTrue:       "\"true\"",
	TTry:        "\"try\"",
	TTypeof:     "\"typeof\"",
	TVar:        "\"var\"",
	TVoid:       "\"void\"",
	TWhile:      "\"while\"",
	TWith:       "\"with\"",
}

// The named character references that JSX text and attribute strings can
// contain. Numeric references such as "&#x41;" are handled separately.
var jsxEntity = map[string]rune{
	"quot":   0x0022,
	"amp":    0x0026,
	"apos":   0x0027,
	"lt":     0x003C,
	"gt":     0x003E,
	"nbsp":   0x00A0,
	"iexcl":  0x00A1,
	"cent":   0x00A2,
	"pound":  0x00A3,
	"curren": 0x00A4,
	"yen":    0x00A5,
	"brvbar": 0x00A6,
	"sect":   0x00A7,
	"uml":    0x00A8,
	"copy":   0x00A9,
	"ordf":   0x00AA,
	"laquo":  0x00AB,
	"not":    0x00AC,
	"shy":    0x00AD,
	"reg":    0x00AE,
	"macr":   0x00AF,
	"deg":    0x00B0,
	"plusmn": 0x00B1,
	"sup2":   0x00B2,
	"sup3":   0x00B3,
	"acute":  0x00B4,
	"micro":  0x00B5,
	"para":   0x00B6,
	"middot": 0x00B7,
	"sup1":   0x00B9,
	"raquo":  0x00BB,
	"frac14": 0x00BC,
	"frac12": 0x00BD,
	"frac34": 0x00BE,
	"times":  0x00D7,
	"divide": 0x00F7,
	"ndash":  0x2013,
	"mdash":  0x2014,
	"lsquo":  0x2018,
	"rsquo":  0x2019,
	"ldquo":  0x201C,
	"rdquo":  0x201D,
	"bull":   0x2022,
	"hellip": 0x2026,
	"prime":  0x2032,
	"euro":   0x20AC,
	"trade":  0x2122,
	"larr":   0x2190,
	"uarr":   0x2191,
	"rarr":   0x2192,
	"darr":   0x2193,
	"harr":   0x2194,
	"ne":     0x2260,
	"le":     0x2264,
	"ge":     0x2265,
	"hearts": 0x2665,
}
