package cpp

import (
	"fmt"
	"strings"
)

// Visibility is a member access level. The zero value is Private, which is
// also the default for members declared before any visibility section.
type Visibility int

const (
	VisibilityPrivate Visibility = iota
	VisibilityPublic
	VisibilityProtected
)

// String returns the visibility as it appears in source.
func (v Visibility) String() string {
	switch v {
	case VisibilityPrivate:
		return "private"
	case VisibilityPublic:
		return "public"
	case VisibilityProtected:
		return "protected"
	}
	return "private"
}

// MethodKind distinguishes the four member function forms.
type MethodKind int

const (
	MethodNormal MethodKind = iota
	MethodConstructor
	MethodDestructor
	MethodOperator
)

// String returns a human-readable name for the method kind.
func (k MethodKind) String() string {
	switch k {
	case MethodNormal:
		return "method"
	case MethodConstructor:
		return "constructor"
	case MethodDestructor:
		return "destructor"
	case MethodOperator:
		return "operator"
	}
	return "method"
}

// Parameter is a single formal parameter. Unnamed parameters receive a
// generated placeholder name during parsing, so Name is never empty.
type Parameter struct {
	Name string
	Type string
}

// Field is a data member. HasGetter and HasSetter are left false by the
// parser; an accessor-matching stage may set them later.
type Field struct {
	Name       string
	Type       string
	Visibility Visibility
	HasGetter  bool
	HasSetter  bool
	Line       int
}

// Method is a member function of any kind. Constructors and destructors
// have an empty ReturnType.
type Method struct {
	Name          string
	ReturnType    string
	Visibility    Visibility
	Kind          MethodKind
	Parameters    []Parameter
	IsPureVirtual bool
	IsOverride    bool
	IsConst       bool
	IsVirtual     bool
	Line          int
}

// Signature returns the identity of the method within its class: the name
// followed by the comma-separated parameter types. Parameter names do not
// participate.
func (m *Method) Signature() string {
	var sb strings.Builder
	sb.WriteString(m.Name)
	sb.WriteByte('(')
	for i, p := range m.Parameters {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(p.Type)
	}
	sb.WriteByte(')')
	return sb.String()
}

// Class is the result of parsing one class declaration. SourceName keeps
// the name as written in the input; Name starts out identical but may be
// rewritten by a downstream emission stage.
type Class struct {
	Name        string
	BaseClasses []string
	Fields      []Field
	Methods     []Method
	SourceName  string
	Line        int
}

// AddBaseClass records an inherited class name. A name already present is
// ignored, so repeated mentions keep the first occurrence's position in
// the list.
func (c *Class) AddBaseClass(name string) {
	for _, base := range c.BaseClasses {
		if base == name {
			return
		}
	}
	c.BaseClasses = append(c.BaseClasses, name)
}

// AddField appends a field, rejecting a duplicate field name.
func (c *Class) AddField(f Field) error {
	for i := range c.Fields {
		if c.Fields[i].Name == f.Name {
			return fmt.Errorf("field %q already defined in class %q", f.Name, c.Name)
		}
	}
	c.Fields = append(c.Fields, f)
	return nil
}

// AddMethod appends a method, rejecting a duplicate signature. Overloads
// that differ in parameter types are accepted.
func (c *Class) AddMethod(m Method) error {
	sig := m.Signature()
	for i := range c.Methods {
		if c.Methods[i].Signature() == sig {
			return fmt.Errorf("method %q redefined in class %q", sig, c.Name)
		}
	}
	c.Methods = append(c.Methods, m)
	return nil
}

// IsAbstract reports whether the class has at least one pure virtual
// method.
func (c *Class) IsAbstract() bool {
	for i := range c.Methods {
		if c.Methods[i].IsPureVirtual {
			return true
		}
	}
	return false
}

// MethodByName returns the first method with the given name, or nil.
// Overload resolution beyond the name is up to the caller.
func (c *Class) MethodByName(name string) *Method {
	for i := range c.Methods {
		if c.Methods[i].Name == name {
			return &c.Methods[i]
		}
	}
	return nil
}

// FieldByName returns the field with the given name, or nil.
func (c *Class) FieldByName(name string) *Field {
	for i := range c.Fields {
		if c.Fields[i].Name == name {
			return &c.Fields[i]
		}
	}
	return nil
}
