// Package format renders parsed classes in the supported output formats:
// pretty-printed JSON, generated C# source, and a line-oriented form for
// grepping.
package format

import (
	"encoding"

	"github.com/BTwiiin/Transpiler-CPP-to-Csharp/cpp"
)

// Encoder writes one class per Encode call to its underlying writer.
// MarshalText renders the most recently encoded class without writing it.
type Encoder interface {
	encoding.TextMarshaler
	Encode(class *cpp.Class) error
}
