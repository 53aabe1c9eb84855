// Package cpp parses a restricted subset of C++ class declarations into
// an in-memory class model.
//
// # Architecture
//
// The package is a three-stage pull pipeline. Each stage requests exactly
// as much as it needs from the stage below it; nothing is buffered beyond
// one token.
//
//	+--------+     bytes      +-------+     tokens     +--------+
//	| Source | -------------> | Lexer | -------------> | Parser | --> []*Class
//	+--------+  current/      +-------+     Next()     +--------+
//	            advance
//
// Source is a cursor over an in-memory buffer that tracks line (1-based)
// and column (0-based). Lexer turns bytes into tokens from a closed
// TokenKind set. Parser recognizes class declarations by recursive
// descent and builds Class values.
//
// # Backtracking
//
// Ambiguity is resolved by speculation. Mark returns an explicit
// Checkpoint; ResetTo restores it; dropping it commits. The lexer
// speculates between a comment and a '/' symbol and between "3.14" and
// "3.x"; the parser speculates between member forms, trying them in a
// fixed order (visibility section, operator, constructor, destructor,
// field, method) and resetting after each miss. A body token no form
// accepts is skipped, one token at a time, so parsing always terminates.
//
// The parser pulls one token ahead, so its own checkpoint pairs the lexer
// checkpoint with the pulled token.
//
// # Errors
//
// All failures are fatal to the pass and surface as a *ParseError with a
// kind, position and message. ErrorLexical covers unterminated block
// comments and string literals; ErrorSyntax covers grammar failures past
// a committed point and redefinitions (duplicate class name, duplicate
// field name, duplicate method signature). There is no partial result: a
// pass returns classes or an error, never both.
//
// # Entry points
//
//	classes, err := cpp.Parse(src, cpp.WithFile("shape.h"))
//	classes, err := cpp.ParseFile("shape.h")
//	tokens, err := cpp.Tokenize(src)
//
// Each call runs an independent pass over its input; no state is shared
// or reused between calls.
package cpp
