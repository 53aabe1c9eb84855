// Package csharp models the C# rendition of parsed C++ classes and maps
// the parsed model onto it: types are translated, accessor method pairs
// collapse into properties, and member operators become static operator
// overloads.
package csharp

import (
	"github.com/BTwiiin/Transpiler-CPP-to-Csharp/cpp"
)

// Parameter is a formal parameter with an already translated type.
type Parameter struct {
	Name string
	Type string
}

// Property is an auto-implemented property synthesized from a field and
// its accessor methods.
type Property struct {
	Name       string
	Type       string
	Visibility cpp.Visibility
	HasGetter  bool
	HasSetter  bool
}

// Field is a data member that kept its field form because no accessor
// matched it.
type Field struct {
	Name       string
	Type       string
	Visibility cpp.Visibility
}

// Method is a member function. Operators are static with a synthesized
// left operand; destructors render as finalizers.
type Method struct {
	Name       string
	ReturnType string
	Visibility cpp.Visibility
	Kind       cpp.MethodKind
	Parameters []Parameter
	IsAbstract bool
	IsVirtual  bool
	IsOverride bool
	IsStatic   bool
}

// Class is one class ready for emission.
type Class struct {
	Name       string
	BaseTypes  []string
	IsAbstract bool
	Properties []Property
	Fields     []Field
	Methods    []Method
}
