package cpp

// Position describes a location in a source buffer.
type Position struct {
	File   string
	Offset int
	Line   int // 1-based
	Column int // 0-based, reset on newline
}

// Checkpoint is an opaque snapshot of a Source's cursor, produced by Mark
// and consumed by ResetTo. Discarding a checkpoint commits the input
// consumed since Mark.
type Checkpoint struct {
	offset int
	line   int
	column int
}

// Source is a cursor over an in-memory buffer with line and column
// tracking. The lexer reads it one byte at a time; speculative reads are
// undone by restoring a Checkpoint.
type Source struct {
	input  []byte
	file   string
	offset int
	line   int
	column int
}

// NewSource returns a Source positioned at the start of input. The file
// name is only used for positions and error messages and may be empty.
func NewSource(input []byte, file string) *Source {
	return &Source{input: input, file: file, line: 1}
}

// Current returns the byte under the cursor, or 0 at end of input.
func (s *Source) Current() byte {
	if s.offset >= len(s.input) {
		return 0
	}
	return s.input[s.offset]
}

// AtEnd reports whether the cursor has consumed all input.
func (s *Source) AtEnd() bool {
	return s.offset >= len(s.input)
}

// Advance consumes and returns the byte under the cursor. Advancing past a
// newline increments the line and resets the column to zero. At end of
// input it returns 0 and does not move.
func (s *Source) Advance() byte {
	if s.offset >= len(s.input) {
		return 0
	}
	ch := s.input[s.offset]
	s.offset++
	if ch == '\n' {
		s.line++
		s.column = 0
	} else {
		s.column++
	}
	return ch
}

// Pos returns the position of the byte under the cursor.
func (s *Source) Pos() Position {
	return Position{File: s.file, Offset: s.offset, Line: s.line, Column: s.column}
}

// Mark snapshots the cursor.
func (s *Source) Mark() Checkpoint {
	return Checkpoint{offset: s.offset, line: s.line, column: s.column}
}

// ResetTo restores the cursor to a snapshot taken with Mark.
func (s *Source) ResetTo(cp Checkpoint) {
	s.offset = cp.offset
	s.line = cp.line
	s.column = cp.column
}

func (s *Source) text(from, to int) string {
	return string(s.input[from:to])
}
