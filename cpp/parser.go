package cpp

import (
	"fmt"
	"os"
	"strings"
)

// Parser consumes tokens pulled from a Lexer and accumulates parsed
// classes. One Parser performs one pass over one source; the entry points
// below construct a fresh Parser per call.
type Parser struct {
	lexer   *Lexer
	file    string
	tok     Token // current token, already pulled
	classes []*Class
	seen    map[string]bool
	vis     Visibility
	paramN  int
}

// Option configures a parse pass.
type Option func(*Parser)

// WithFile sets the file name used in positions and error messages.
func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

// checkpoint captures the parser's position: the lexer checkpoint plus the
// already-pulled current token.
type checkpoint struct {
	lex Checkpoint
	tok Token
}

// bailout carries a *ParseError out of the recursive descent. It is
// recovered at the entry point, never exposed to callers.
type bailout struct {
	err error
}

// Parse parses the given source and returns the classes it declares, in
// declaration order. Text outside class declarations is skipped one token
// at a time. Any lexical, grammar or redefinition failure aborts the pass:
// the returned error is a *ParseError and the class list is nil.
func Parse(src []byte, opts ...Option) (classes []*Class, err error) {
	p := newParser(src, opts)
	defer func() {
		if e := recover(); e != nil {
			b, ok := e.(bailout)
			if !ok {
				panic(e)
			}
			err = b.err
		}
	}()
	p.next()
	for p.tok.Kind != TokenEOF {
		if p.tok.Kind == TokenClass {
			p.parseClass()
		} else {
			p.next()
		}
	}
	return p.classes, nil
}

// ParseFile reads path and parses it, with positions attributed to path.
func ParseFile(path string) ([]*Class, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source file: %w", err)
	}
	return Parse(src, WithFile(path))
}

// Tokenize returns the complete token stream for the given source,
// including comment tokens and the trailing TokenEOF. It fails with a
// *ParseError on a lexical error.
func Tokenize(src []byte, opts ...Option) ([]Token, error) {
	p := newParser(src, opts)
	var toks []Token
	for {
		tok, err := p.lexer.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == TokenEOF {
			return toks, nil
		}
	}
}

func newParser(src []byte, opts []Option) *Parser {
	p := &Parser{seen: make(map[string]bool)}
	for _, opt := range opts {
		opt(p)
	}
	p.lexer = NewLexer(NewSource(src, p.file))
	return p
}

// next pulls the next token, skipping comments. Lexical errors abort the
// pass.
func (p *Parser) next() {
	for {
		tok, err := p.lexer.Next()
		if err != nil {
			panic(bailout{err})
		}
		if tok.IsComment() {
			continue
		}
		p.tok = tok
		return
	}
}

func (p *Parser) mark() checkpoint {
	return checkpoint{lex: p.lexer.Mark(), tok: p.tok}
}

func (p *Parser) resetTo(cp checkpoint) {
	p.lexer.ResetTo(cp.lex)
	p.tok = cp.tok
}

func (p *Parser) match(kind TokenKind) bool {
	return p.tok.Kind == kind
}

func (p *Parser) matchSymbol(sym string) bool {
	return p.tok.Kind == TokenSymbol && p.tok.Lexeme == sym
}

func (p *Parser) matchIdent(text string) bool {
	return p.tok.Kind == TokenIdent && p.tok.Lexeme == text
}

// expectSymbol consumes and returns the current token if it is the given
// symbol, and aborts the pass otherwise.
func (p *Parser) expectSymbol(sym string) Token {
	if !p.matchSymbol(sym) {
		p.syntaxErrorf("expected %q, found %s", sym, describe(p.tok))
	}
	tok := p.tok
	p.next()
	return tok
}

func (p *Parser) syntaxErrorf(format string, args ...any) {
	p.errorAt(p.tok.Line, p.tok.Column, format, args...)
}

func (p *Parser) errorAt(line, column int, format string, args ...any) {
	panic(bailout{&ParseError{
		Kind:   ErrorSyntax,
		File:   p.file,
		Line:   line,
		Column: column,
		Msg:    fmt.Sprintf(format, args...),
	}})
}

func describe(tok Token) string {
	if tok.Kind == TokenEOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", tok.Lexeme)
}

// parseClass parses one class declaration. The current token is the class
// keyword. Inside the body, member forms are tried in a fixed order, each
// attempt wrapped in mark/reset; a token no form accepts is skipped, so
// the loop always makes progress.
func (p *Parser) parseClass() {
	p.next()
	if !p.match(TokenIdent) {
		p.syntaxErrorf("expected class name, found %s", describe(p.tok))
	}
	name := p.tok
	if p.seen[name.Lexeme] {
		p.errorAt(name.Line, name.Column, "class %q redefined", name.Lexeme)
	}
	p.next()

	c := &Class{Name: name.Lexeme, SourceName: name.Lexeme, Line: name.Line}
	if p.matchSymbol(":") {
		p.next()
		p.parseBaseList(c)
	}
	p.expectSymbol("{")
	p.vis = VisibilityPrivate

	for !p.matchSymbol("}") && !p.match(TokenEOF) {
		switch {
		case p.tryVisibilitySection():
		case p.tryOperator(c):
		case p.tryConstructor(c):
		case p.tryDestructor(c):
		case p.tryField(c):
		case p.tryMethod(c):
		default:
			p.next()
		}
	}
	p.expectSymbol("}")
	p.expectSymbol(";")

	p.seen[name.Lexeme] = true
	p.classes = append(p.classes, c)
}

// parseBaseList parses the inheritance list after ':'. Access specifiers
// are consumed and discarded; only base names are kept, first mention
// winning on repeats.
func (p *Parser) parseBaseList(c *Class) {
	for {
		if _, ok := visibilityFor(p.tok.Kind); ok {
			p.next()
		}
		if !p.match(TokenIdent) {
			p.syntaxErrorf("expected base class name, found %s", describe(p.tok))
		}
		c.AddBaseClass(p.tok.Lexeme)
		p.next()
		if !p.matchSymbol(",") {
			return
		}
		p.next()
	}
}

func visibilityFor(kind TokenKind) (Visibility, bool) {
	switch kind {
	case TokenPublic:
		return VisibilityPublic, true
	case TokenPrivate:
		return VisibilityPrivate, true
	case TokenProtected:
		return VisibilityProtected, true
	}
	return VisibilityPrivate, false
}

// tryVisibilitySection recognizes "public:", "private:" or "protected:"
// and switches the visibility applied to subsequent members.
func (p *Parser) tryVisibilitySection() bool {
	vis, ok := visibilityFor(p.tok.Kind)
	if !ok {
		return false
	}
	cp := p.mark()
	p.next()
	if !p.matchSymbol(":") {
		p.resetTo(cp)
		return false
	}
	p.next()
	p.vis = vis
	return true
}

// tryOperator recognizes the dedicated operator form: a return type, the
// bare identifier "operator", then exactly one symbol token as the
// operator name. Two-character symbols such as != therefore do not reach
// this form. Once "operator" is seen after a type the parse is committed
// and failures abort the pass.
func (p *Parser) tryOperator(c *Class) bool {
	cp := p.mark()
	start := p.tok
	typ, ok := p.tryType()
	if !ok || !p.matchIdent("operator") {
		p.resetTo(cp)
		return false
	}
	p.next()
	if p.tok.Kind != TokenSymbol {
		p.syntaxErrorf("expected operator symbol, found %s", describe(p.tok))
	}
	sym := p.tok
	p.next()
	p.expectSymbol("(")
	params := p.parseParams()
	p.expectSymbol(")")
	isConst := false
	if p.match(TokenConst) {
		isConst = true
		p.next()
	}
	p.expectSymbol(";")
	p.addMethod(c, Method{
		Name:       "operator" + sym.Lexeme,
		ReturnType: typ,
		Visibility: p.vis,
		Kind:       MethodOperator,
		Parameters: params,
		IsConst:    isConst,
		Line:       start.Line,
	}, start)
	return true
}

// tryConstructor recognizes "Name(params);" where Name is the enclosing
// class's own name. Seeing '(' after the name commits the parse.
func (p *Parser) tryConstructor(c *Class) bool {
	if !p.matchIdent(c.Name) {
		return false
	}
	cp := p.mark()
	name := p.tok
	p.next()
	if !p.matchSymbol("(") {
		p.resetTo(cp)
		return false
	}
	p.next()
	params := p.parseParams()
	p.expectSymbol(")")
	p.expectSymbol(";")
	p.addMethod(c, Method{
		Name:       name.Lexeme,
		Visibility: p.vis,
		Kind:       MethodConstructor,
		Parameters: params,
		Line:       name.Line,
	}, name)
	return true
}

// tryDestructor recognizes "~Name();" for the enclosing class's own name.
// Seeing '(' after the name commits the parse.
func (p *Parser) tryDestructor(c *Class) bool {
	if !p.matchSymbol("~") {
		return false
	}
	cp := p.mark()
	start := p.tok
	p.next()
	if !p.matchIdent(c.Name) {
		p.resetTo(cp)
		return false
	}
	name := p.tok
	p.next()
	if !p.matchSymbol("(") {
		p.resetTo(cp)
		return false
	}
	p.next()
	p.expectSymbol(")")
	p.expectSymbol(";")
	p.addMethod(c, Method{
		Name:       "~" + name.Lexeme,
		Visibility: p.vis,
		Kind:       MethodDestructor,
		Line:       start.Line,
	}, name)
	return true
}

// tryField recognizes "type name;". The attempt commits only at the
// semicolon, because "type name(" is the start of a method. A type that is
// the class's own name followed by '(' is rejected here so the
// constructor form keeps owning that shape.
func (p *Parser) tryField(c *Class) bool {
	cp := p.mark()
	start := p.tok
	typ, ok := p.tryType()
	if !ok {
		p.resetTo(cp)
		return false
	}
	if typ == c.Name && p.matchSymbol("(") {
		p.resetTo(cp)
		return false
	}
	if !p.match(TokenIdent) {
		p.resetTo(cp)
		return false
	}
	name := p.tok
	p.next()
	if !p.matchSymbol(";") {
		p.resetTo(cp)
		return false
	}
	p.next()
	f := Field{
		Name:       name.Lexeme,
		Type:       typ,
		Visibility: p.vis,
		Line:       start.Line,
	}
	if err := c.AddField(f); err != nil {
		p.errorAt(name.Line, name.Column, "%s", err)
	}
	return true
}

// tryMethod recognizes "virtual? type name(params) const? (override | = 0)?;".
// Seeing '(' after the name commits the parse. A method whose name starts
// with "operator" is classified as an operator; that is how two-character
// operator names like "operator==", lexed as a single identifier, come
// through.
func (p *Parser) tryMethod(c *Class) bool {
	cp := p.mark()
	start := p.tok
	isVirtual := false
	if p.match(TokenVirtual) {
		isVirtual = true
		p.next()
	}
	typ, ok := p.tryType()
	if !ok || !p.match(TokenIdent) {
		p.resetTo(cp)
		return false
	}
	name := p.tok
	p.next()
	if !p.matchSymbol("(") {
		p.resetTo(cp)
		return false
	}
	p.next()
	params := p.parseParams()
	p.expectSymbol(")")
	isConst := false
	if p.match(TokenConst) {
		isConst = true
		p.next()
	}
	isOverride := false
	isPure := false
	if p.match(TokenOverride) {
		isOverride = true
		p.next()
	} else if p.matchSymbol("=") {
		p.next()
		if !p.match(TokenNumberLiteral) || p.tok.Lexeme != "0" {
			p.syntaxErrorf("expected \"0\" after \"=\", found %s", describe(p.tok))
		}
		isPure = true
		p.next()
	}
	p.expectSymbol(";")
	kind := MethodNormal
	if strings.HasPrefix(name.Lexeme, "operator") {
		kind = MethodOperator
	}
	p.addMethod(c, Method{
		Name:          name.Lexeme,
		ReturnType:    typ,
		Visibility:    p.vis,
		Kind:          kind,
		Parameters:    params,
		IsPureVirtual: isPure,
		IsOverride:    isOverride,
		IsConst:       isConst,
		IsVirtual:     isVirtual,
		Line:          start.Line,
	}, name)
	return true
}

func (p *Parser) addMethod(c *Class, m Method, at Token) {
	if err := c.AddMethod(m); err != nil {
		p.errorAt(at.Line, at.Column, "%s", err)
	}
}

// parseParams parses a possibly empty comma-separated parameter list. The
// caller has consumed '(' and consumes ')'.
func (p *Parser) parseParams() []Parameter {
	var params []Parameter
	if p.matchSymbol(")") {
		return params
	}
	for {
		params = append(params, p.parseParam())
		if !p.matchSymbol(",") {
			return params
		}
		p.next()
	}
}

// parseParam parses one parameter. A parameter without a name gets a
// generated placeholder; the counter runs over the whole pass, so
// placeholder names are unique across members.
func (p *Parser) parseParam() Parameter {
	typ, ok := p.tryType()
	if !ok {
		p.syntaxErrorf("expected parameter type, found %s", describe(p.tok))
	}
	if p.matchSymbol("&") {
		p.next()
		typ += "&"
	}
	name := ""
	if p.match(TokenIdent) {
		name = p.tok.Lexeme
		p.next()
	} else {
		name = fmt.Sprintf("param%d", p.paramN)
		p.paramN++
	}
	return Parameter{Name: name, Type: typ}
}

// tryType parses a type and returns its canonical text: "const T" with a
// single space, "T*" and "T&" without one, container arguments without
// inner spaces. On failure it reports false and leaves the token stream
// wherever it stopped; callers reset to their own checkpoint.
func (p *Parser) tryType() (string, bool) {
	isConst := false
	if p.match(TokenConst) {
		isConst = true
		p.next()
	}
	var base string
	switch p.tok.Kind {
	case TokenVoid, TokenInt, TokenDouble, TokenBool, TokenString:
		base = p.tok.Lexeme
		p.next()
	case TokenStd:
		std, ok := p.tryStdType()
		if !ok {
			return "", false
		}
		base = std
	case TokenIdent:
		base = p.tok.Lexeme
		p.next()
	default:
		return "", false
	}
	if p.matchSymbol("*") {
		base += "*"
		p.next()
	} else if p.matchSymbol("&") {
		base += "&"
		p.next()
	}
	if isConst {
		base = "const " + base
	}
	return base, true
}

// tryStdType parses "std::string" or a std container with its bracketed
// argument types. The current token is the std keyword. Because '>' is
// always a single-character symbol, nested arguments close with two
// separate '>' tokens and need no special case.
func (p *Parser) tryStdType() (string, bool) {
	p.next()
	if !p.matchSymbol(":") {
		return "", false
	}
	p.next()
	if !p.matchSymbol(":") {
		return "", false
	}
	p.next()
	switch p.tok.Kind {
	case TokenString:
		p.next()
		return "std::string", true
	case TokenVector, TokenList, TokenSet:
		container := p.tok.Lexeme
		p.next()
		if !p.matchSymbol("<") {
			return "", false
		}
		p.next()
		elem, ok := p.tryType()
		if !ok || !p.matchSymbol(">") {
			return "", false
		}
		p.next()
		return "std::" + container + "<" + elem + ">", true
	case TokenMap:
		p.next()
		if !p.matchSymbol("<") {
			return "", false
		}
		p.next()
		key, ok := p.tryType()
		if !ok || !p.matchSymbol(",") {
			return "", false
		}
		p.next()
		val, ok := p.tryType()
		if !ok || !p.matchSymbol(">") {
			return "", false
		}
		p.next()
		return "std::map<" + key + "," + val + ">", true
	}
	return "", false
}
