package cpp

import "fmt"

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	// ErrorLexical marks failures to form a token, such as an
	// unterminated string or block comment.
	ErrorLexical ErrorKind = iota
	// ErrorSyntax marks grammar and redefinition failures.
	ErrorSyntax
)

// String returns a human-readable name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrorLexical:
		return "lexical error"
	case ErrorSyntax:
		return "syntax error"
	}
	return "error"
}

// ParseError is the single error type produced by Tokenize, Parse and
// ParseFile. Any such error aborts the whole pass; no partial class list
// is returned alongside one.
type ParseError struct {
	Kind   ErrorKind
	File   string
	Line   int // 1-based
	Column int // 0-based
	Msg    string
}

// Error renders the error as "file:line:column: msg", omitting the file
// when none was supplied.
func (e *ParseError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, e.Msg)
}

func lexicalError(pos Position, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:   ErrorLexical,
		File:   pos.File,
		Line:   pos.Line,
		Column: pos.Column,
		Msg:    fmt.Sprintf(format, args...),
	}
}
