package naming

import "github.com/dlclark/regexp2"

// Per-language reserved-word tables, one per target named in spec.md §1.
// Only GoKeywords is exercised by the shipped renderer (langs/gojson);
// the rest exist so a future renderer plugin for that language has
// somewhere to seed its top Namespace's forbidden set, mirroring the
// teacher's split between core-shipped and per-language-specialized
// tables (ygen's LangMapper).

var GoKeywords = []string{
	"break", "default", "func", "interface", "select",
	"case", "defer", "go", "map", "struct",
	"chan", "else", "goto", "package", "switch",
	"const", "fallthrough", "if", "range", "type",
	"continue", "for", "import", "return", "var",
	"true", "false", "nil", "iota",
}

var CSharpKeywords = []string{
	"abstract", "as", "base", "bool", "break", "byte", "case", "catch",
	"char", "checked", "class", "const", "continue", "decimal", "default",
	"delegate", "do", "double", "else", "enum", "event", "explicit",
	"extern", "false", "finally", "fixed", "float", "for", "foreach",
	"goto", "if", "implicit", "in", "int", "interface", "internal", "is",
	"lock", "long", "namespace", "new", "null", "object", "operator",
	"out", "override", "params", "private", "protected", "public",
	"readonly", "ref", "return", "sbyte", "sealed", "short", "sizeof",
	"stackalloc", "static", "string", "struct", "switch", "this", "throw",
	"true", "try", "typeof", "uint", "ulong", "unchecked", "unsafe",
	"ushort", "using", "virtual", "void", "volatile", "while",
}

var JavaKeywords = []string{
	"abstract", "assert", "boolean", "break", "byte", "case", "catch",
	"char", "class", "const", "continue", "default", "do", "double",
	"else", "enum", "extends", "final", "finally", "float", "for", "goto",
	"if", "implements", "import", "instanceof", "int", "interface", "long",
	"native", "new", "package", "private", "protected", "public", "return",
	"short", "static", "strictfp", "super", "switch", "synchronized",
	"this", "throw", "throws", "transient", "try", "void", "volatile",
	"while", "true", "false", "null",
}

var CPlusPlusKeywords = []string{
	"alignas", "alignof", "and", "asm", "auto", "bool", "break", "case",
	"catch", "char", "class", "const", "constexpr", "continue", "default",
	"delete", "do", "double", "else", "enum", "explicit", "export",
	"extern", "false", "float", "for", "friend", "goto", "if", "inline",
	"int", "long", "mutable", "namespace", "new", "noexcept", "not",
	"nullptr", "operator", "or", "private", "protected", "public",
	"register", "return", "short", "signed", "sizeof", "static", "struct",
	"switch", "template", "this", "throw", "true", "try", "typedef",
	"typeid", "typename", "union", "unsigned", "using", "virtual", "void",
	"volatile", "while",
}

var ElmKeywords = []string{
	"if", "then", "else", "case", "of", "let", "in", "type", "module",
	"where", "import", "exposing", "as", "port",
}

var TypeScriptKeywords = []string{
	"break", "case", "catch", "class", "const", "continue", "debugger",
	"default", "delete", "do", "else", "enum", "export", "extends",
	"false", "finally", "for", "function", "if", "import", "in",
	"instanceof", "new", "null", "return", "super", "switch", "this",
	"throw", "true", "try", "typeof", "var", "void", "while", "with",
	"as", "implements", "interface", "let", "package", "private",
	"protected", "public", "static", "yield", "any", "boolean", "declare",
	"get", "module", "require", "number", "set", "string", "namespace",
	"from", "of",
}

// JSONSchemaKeywords is conservative: JSON Schema itself has no reserved
// identifiers, but spec.md §1 still names it as a target, so the empty
// list is kept as an explicit, documented member of the per-language
// table set rather than simply omitted.
var JSONSchemaKeywords = []string{}

// swiftContextualKeywordPatterns holds Swift's backtick-escaped
// contextual keywords as regexp2 patterns rather than a plain string
// list: several (e.g. "associativity", "didSet") are only reserved in
// certain declaration contexts, which a future Swift renderer would
// encode by trying a pattern match instead of an exact-string lookup.
var swiftContextualKeywordPatterns = []string{
	`^associativity$`, `^convenience$`, `^didSet$`, `^dynamic$`, `^final$`,
	`^get$`, `^infix$`, `^indirect$`, `^lazy$`, `^left$`, `^mutating$`,
	`^none$`, `^nonmutating$`, `^optional$`, `^override$`, `^postfix$`,
	`^precedence$`, `^prefix$`, `^Protocol$`, `^required$`, `^right$`,
	`^set$`, `^Type$`, `^unowned$`, `^weak$`, `^willSet$`,
}

// IsSwiftContextualKeyword reports whether raw matches one of Swift's
// backtick-escaped contextual keywords. A future Swift renderer would call
// this from its own Namer instead of (or alongside) an exact-match
// keyword table, since these names are only reserved in certain
// declaration contexts.
func IsSwiftContextualKeyword(raw string) bool {
	for _, pattern := range swiftContextualKeywordPatterns {
		re := regexp2.MustCompile(pattern, regexp2.None)
		if ok, err := re.MatchString(raw); err == nil && ok {
			return true
		}
	}
	return false
}
