package csharp

import (
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/BTwiiin/Transpiler-CPP-to-Csharp/cpp"
)

// overloadableOperators are the operator symbols that survive the mapping.
// C# has no assignment operator overload, so "operator=" is dropped along
// with anything else outside this set.
var overloadableOperators = map[string]bool{
	"==": true, "!=": true,
	"<": true, ">": true, "<=": true, ">=": true,
	"+": true, "-": true, "*": true, "/": true, "%": true,
}

// FromClass maps a parsed class onto its C# rendition. As a side effect it
// records on the source fields whether a getter or setter was found for
// them, so callers inspecting the parsed model afterwards see the match
// result.
func FromClass(src *cpp.Class) *Class {
	cs := &Class{
		Name:       src.Name,
		BaseTypes:  append([]string(nil), src.BaseClasses...),
		IsAbstract: src.IsAbstract(),
	}

	absorbed := make(map[string]bool)
	for i := range src.Fields {
		f := &src.Fields[i]
		prop := PropertyName(f.Name)
		getter := findAccessor(src, "get", prop, 0)
		setter := findAccessor(src, "set", prop, 1)
		f.HasGetter = getter != nil
		f.HasSetter = setter != nil
		if getter == nil && setter == nil {
			cs.Fields = append(cs.Fields, Field{
				Name:       f.Name,
				Type:       MapType(f.Type),
				Visibility: f.Visibility,
			})
			continue
		}
		vis := cpp.VisibilityPublic
		if getter != nil {
			vis = getter.Visibility
			absorbed[getter.Signature()] = true
		}
		if setter != nil {
			if getter == nil {
				vis = setter.Visibility
			}
			absorbed[setter.Signature()] = true
		}
		cs.Properties = append(cs.Properties, Property{
			Name:       prop,
			Type:       MapType(f.Type),
			Visibility: vis,
			HasGetter:  getter != nil,
			HasSetter:  setter != nil,
		})
	}

	for i := range src.Methods {
		m := &src.Methods[i]
		if absorbed[m.Signature()] {
			continue
		}
		switch m.Kind {
		case cpp.MethodConstructor:
			cs.Methods = append(cs.Methods, Method{
				Name:       cs.Name,
				Visibility: m.Visibility,
				Kind:       cpp.MethodConstructor,
				Parameters: mapParameters(m.Parameters),
			})
		case cpp.MethodDestructor:
			cs.Methods = append(cs.Methods, Method{
				Name: "~" + cs.Name,
				Kind: cpp.MethodDestructor,
			})
		case cpp.MethodOperator:
			if op, ok := mapOperator(cs.Name, m); ok {
				cs.Methods = append(cs.Methods, op)
			}
		default:
			cs.Methods = append(cs.Methods, Method{
				Name:       m.Name,
				ReturnType: MapType(m.ReturnType),
				Visibility: m.Visibility,
				Kind:       cpp.MethodNormal,
				Parameters: mapParameters(m.Parameters),
				IsAbstract: m.IsPureVirtual,
				IsVirtual:  m.IsVirtual && !m.IsPureVirtual,
				IsOverride: m.IsOverride,
			})
		}
	}
	return cs
}

// mapOperator turns a member operator into a static overload with a
// synthesized left operand of the class type. Operators C# cannot
// overload report ok false and are dropped.
func mapOperator(className string, m *cpp.Method) (Method, bool) {
	sym := strings.TrimPrefix(m.Name, "operator")
	if !overloadableOperators[sym] {
		return Method{}, false
	}
	params := append([]Parameter{{Name: "left", Type: className}}, mapParameters(m.Parameters)...)
	return Method{
		Name:       "operator " + sym,
		ReturnType: MapType(m.ReturnType),
		Visibility: cpp.VisibilityPublic,
		Kind:       cpp.MethodOperator,
		Parameters: params,
		IsStatic:   true,
	}, true
}

// findAccessor returns the first plain method named verb+prop in either
// casing ("getX" or "GetX") with the given parameter count. Nil when
// absent.
func findAccessor(c *cpp.Class, verb, prop string, paramCount int) *cpp.Method {
	lower := verb + prop
	upper := strings.ToUpper(verb[:1]) + verb[1:] + prop
	for i := range c.Methods {
		m := &c.Methods[i]
		if m.Kind != cpp.MethodNormal || len(m.Parameters) != paramCount {
			continue
		}
		if m.Name == lower || m.Name == upper {
			return m
		}
	}
	return nil
}

// PropertyName derives the property name for a field: a single "m_" or
// "_" prefix is stripped, the rest goes to upper camel case.
func PropertyName(field string) string {
	name := strings.TrimPrefix(field, "m_")
	if name == field {
		name = strings.TrimPrefix(name, "_")
	}
	return strcase.ToCamel(name)
}

// cppToCs translates the scalar and std types; anything else is assumed
// to be a user-defined type and passes through unchanged.
var cppToCs = map[string]string{
	"void":        "void",
	"int":         "int",
	"double":      "double",
	"bool":        "bool",
	"string":      "string",
	"std::string": "string",
}

var containerToCs = []struct {
	prefix string
	cs     string
}{
	{"std::vector<", "List"},
	{"std::list<", "LinkedList"},
	{"std::set<", "HashSet"},
	{"std::map<", "Dictionary"},
}

// MapType translates a canonical C++ type to its C# counterpart. Const
// qualifiers and pointer or reference suffixes carry no meaning on the C#
// side and are dropped; container arguments are translated recursively.
func MapType(cppType string) string {
	t := strings.TrimPrefix(cppType, "const ")
	for strings.HasSuffix(t, "*") || strings.HasSuffix(t, "&") {
		t = t[:len(t)-1]
	}
	if cs, ok := cppToCs[t]; ok {
		return cs
	}
	for _, c := range containerToCs {
		if strings.HasPrefix(t, c.prefix) && strings.HasSuffix(t, ">") {
			inner := t[len(c.prefix) : len(t)-1]
			args := splitTypeArgs(inner)
			for i, arg := range args {
				args[i] = MapType(arg)
			}
			return c.cs + "<" + strings.Join(args, ", ") + ">"
		}
	}
	return t
}

// splitTypeArgs splits container arguments on commas outside nested
// angle brackets.
func splitTypeArgs(s string) []string {
	var args []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, s[start:i])
				start = i + 1
			}
		}
	}
	return append(args, s[start:])
}

func mapParameters(params []cpp.Parameter) []Parameter {
	if len(params) == 0 {
		return nil
	}
	mapped := make([]Parameter, len(params))
	for i, p := range params {
		mapped[i] = Parameter{Name: p.Name, Type: MapType(p.Type)}
	}
	return mapped
}
