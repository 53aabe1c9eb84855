package cpp

import "strings"

// symbolChars is the fixed set of single-character Symbol tokens. Every
// symbol is one character; sequences like "::" or ">>" arrive as separate
// tokens, which keeps nested template arguments unambiguous.
const symbolChars = "(){}[]<>;:,.&*+-/%=!~^|?#@\\"

// Lexer converts a Source into a token stream. It recognizes one token per
// Next call, trying token kinds in a fixed order: line comment, block
// comment, number, identifier or keyword, string literal, symbol. A failed
// attempt restores the Source via a Checkpoint before the next kind is
// tried.
type Lexer struct {
	src *Source
}

// NewLexer returns a Lexer reading from src.
func NewLexer(src *Source) *Lexer {
	return &Lexer{src: src}
}

// Mark snapshots the lexer's position.
func (l *Lexer) Mark() Checkpoint {
	return l.src.Mark()
}

// ResetTo restores the lexer to a snapshot taken with Mark.
func (l *Lexer) ResetTo(cp Checkpoint) {
	l.src.ResetTo(cp)
}

// Next returns the next token. Whitespace is skipped, never returned.
// Comments are returned as tokens; callers that do not care filter them
// out. At end of input it returns a TokenEOF token, repeatedly if called
// again. The only errors are lexical: an unterminated block comment or
// string literal.
func (l *Lexer) Next() (Token, error) {
	l.skipWhitespace()
	start := l.src.Pos()
	if l.src.AtEnd() {
		return Token{Kind: TokenEOF, Line: start.Line, Column: start.Column}, nil
	}
	ch := l.src.Current()
	switch {
	case ch == '/':
		if tok, ok := l.scanLineComment(start); ok {
			return tok, nil
		}
		tok, ok, err := l.scanBlockComment(start)
		if err != nil {
			return Token{}, err
		}
		if ok {
			return tok, nil
		}
		// a lone '/' falls through to the symbol case
	case isDigit(ch):
		return l.scanNumber(start), nil
	case isIdentStart(ch):
		return l.scanIdentOrKeyword(start), nil
	case ch == '"':
		return l.scanString(start)
	}
	l.src.Advance()
	kind := TokenUnknown
	if strings.IndexByte(symbolChars, ch) >= 0 {
		kind = TokenSymbol
	}
	return l.token(kind, start), nil
}

func (l *Lexer) skipWhitespace() {
	for !l.src.AtEnd() {
		switch l.src.Current() {
		case ' ', '\t', '\r', '\n':
			l.src.Advance()
		default:
			return
		}
	}
}

// scanLineComment recognizes "//" up to but not including the newline.
func (l *Lexer) scanLineComment(start Position) (Token, bool) {
	cp := l.src.Mark()
	l.src.Advance()
	if l.src.Current() != '/' {
		l.src.ResetTo(cp)
		return Token{}, false
	}
	l.src.Advance()
	for !l.src.AtEnd() && l.src.Current() != '\n' {
		l.src.Advance()
	}
	return l.token(TokenLineComment, start), true
}

// scanBlockComment recognizes "/*" through the next "*/". Reaching end of
// input first is a lexical error positioned where the search ended.
func (l *Lexer) scanBlockComment(start Position) (Token, bool, error) {
	cp := l.src.Mark()
	l.src.Advance()
	if l.src.Current() != '*' {
		l.src.ResetTo(cp)
		return Token{}, false, nil
	}
	l.src.Advance()
	for {
		if l.src.AtEnd() {
			return Token{}, false, lexicalError(l.src.Pos(), "unterminated block comment")
		}
		if l.src.Advance() == '*' && l.src.Current() == '/' {
			l.src.Advance()
			return l.token(TokenBlockComment, start), true, nil
		}
	}
}

// scanNumber recognizes a digit run with at most one decimal point. The
// point is only consumed when a digit follows, so "3.x" lexes as the
// number "3", the symbol ".", and the identifier "x".
func (l *Lexer) scanNumber(start Position) Token {
	for !l.src.AtEnd() && isDigit(l.src.Current()) {
		l.src.Advance()
	}
	if l.src.Current() == '.' {
		cp := l.src.Mark()
		l.src.Advance()
		if isDigit(l.src.Current()) {
			for !l.src.AtEnd() && isDigit(l.src.Current()) {
				l.src.Advance()
			}
		} else {
			l.src.ResetTo(cp)
		}
	}
	return l.token(TokenNumberLiteral, start)
}

// scanIdentOrKeyword recognizes a letter or underscore followed by
// letters, digits, underscores and '='. Accepting '=' keeps two-character
// operator names such as "operator==" in one token; the parser relies on
// that when classifying methods.
func (l *Lexer) scanIdentOrKeyword(start Position) Token {
	l.src.Advance()
	for !l.src.AtEnd() && isIdentChar(l.src.Current()) {
		l.src.Advance()
	}
	tok := l.token(TokenIdent, start)
	tok.Kind = LookupKeyword(tok.Lexeme)
	return tok
}

// scanString recognizes a double-quoted literal with backslash escapes.
// Reaching end of input before the closing quote is a lexical error.
func (l *Lexer) scanString(start Position) (Token, error) {
	l.src.Advance()
	for !l.src.AtEnd() {
		switch l.src.Current() {
		case '\\':
			l.src.Advance()
			l.src.Advance()
		case '"':
			l.src.Advance()
			return l.token(TokenStringLiteral, start), nil
		default:
			l.src.Advance()
		}
	}
	return Token{}, lexicalError(l.src.Pos(), "unterminated string literal")
}

func (l *Lexer) token(kind TokenKind, start Position) Token {
	return Token{
		Kind:   kind,
		Lexeme: l.src.text(start.Offset, l.src.Pos().Offset),
		Line:   start.Line,
		Column: start.Column,
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentChar(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch) || ch == '='
}
