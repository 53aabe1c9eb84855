package cpp

// TokenKind identifies the type of a token.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenUnknown
	TokenLineComment
	TokenBlockComment

	// Composite tokens
	TokenIdent
	TokenNumberLiteral
	TokenStringLiteral
	TokenSymbol

	// Keywords
	TokenClass
	TokenPublic
	TokenPrivate
	TokenProtected
	TokenConst
	TokenStatic
	TokenVirtual
	TokenOverride
	TokenVoid
	TokenInt
	TokenDouble
	TokenBool
	TokenString
	TokenStd
	TokenVector
	TokenList
	TokenMap
	TokenSet
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:           "end of input",
	TokenUnknown:       "unknown",
	TokenLineComment:   "line comment",
	TokenBlockComment:  "block comment",
	TokenIdent:         "identifier",
	TokenNumberLiteral: "number literal",
	TokenStringLiteral: "string literal",
	TokenSymbol:        "symbol",
	TokenClass:         "class",
	TokenPublic:        "public",
	TokenPrivate:       "private",
	TokenProtected:     "protected",
	TokenConst:         "const",
	TokenStatic:        "static",
	TokenVirtual:       "virtual",
	TokenOverride:      "override",
	TokenVoid:          "void",
	TokenInt:           "int",
	TokenDouble:        "double",
	TokenBool:          "bool",
	TokenString:        "string",
	TokenStd:           "std",
	TokenVector:        "vector",
	TokenList:          "list",
	TokenMap:           "map",
	TokenSet:           "set",
}

// String returns a human-readable name for the token kind.
func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "unknown"
}

var keywords = map[string]TokenKind{
	"class":     TokenClass,
	"public":    TokenPublic,
	"private":   TokenPrivate,
	"protected": TokenProtected,
	"const":     TokenConst,
	"static":    TokenStatic,
	"virtual":   TokenVirtual,
	"override":  TokenOverride,
	"void":      TokenVoid,
	"int":       TokenInt,
	"double":    TokenDouble,
	"bool":      TokenBool,
	"string":    TokenString,
	"std":       TokenStd,
	"vector":    TokenVector,
	"list":      TokenList,
	"map":       TokenMap,
	"set":       TokenSet,
}

// LookupKeyword returns the keyword kind for ident, or TokenIdent if it is
// not a keyword.
func LookupKeyword(ident string) TokenKind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return TokenIdent
}

// Token is a single lexical unit. Line and Column locate its first
// character.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Line   int
	Column int
}

// IsComment reports whether the token is a line or block comment.
func (t Token) IsComment() bool {
	return t.Kind == TokenLineComment || t.Kind == TokenBlockComment
}
