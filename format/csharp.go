package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/BTwiiin/Transpiler-CPP-to-Csharp/cpp"
	"github.com/BTwiiin/Transpiler-CPP-to-Csharp/csharp"
)

const indent = "    "

// CSharpEncoder renders a parsed class as C# source. The class goes
// through the csharp mapping first, so accessor pairs appear as
// properties and member operators as static overloads. Method bodies are
// stubs; declarations are all the parser sees.
type CSharpEncoder struct {
	w     io.Writer
	class *cpp.Class
}

func NewCSharpEncoder(w io.Writer) *CSharpEncoder {
	return &CSharpEncoder{w: w}
}

func (e *CSharpEncoder) Encode(class *cpp.Class) error {
	e.class = class
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *CSharpEncoder) MarshalText() ([]byte, error) {
	cls := csharp.FromClass(e.class)
	var sb strings.Builder

	e.writeHeader(&sb, cls)
	sb.WriteString("{\n")

	var blocks []string
	for _, p := range cls.Properties {
		blocks = append(blocks, renderProperty(p))
	}
	for _, f := range cls.Fields {
		blocks = append(blocks, renderField(f))
	}
	for _, m := range cls.Methods {
		blocks = append(blocks, renderMethod(m))
	}
	sb.WriteString(strings.Join(blocks, "\n"))
	sb.WriteString("}\n")
	return []byte(sb.String()), nil
}

func (e *CSharpEncoder) writeHeader(sb *strings.Builder, cls *csharp.Class) {
	sb.WriteString("public ")
	if cls.IsAbstract {
		sb.WriteString("abstract ")
	}
	sb.WriteString("class ")
	sb.WriteString(cls.Name)
	if len(cls.BaseTypes) > 0 {
		sb.WriteString(" : ")
		sb.WriteString(strings.Join(cls.BaseTypes, ", "))
	}
	sb.WriteString("\n")
}

func renderProperty(p csharp.Property) string {
	accessors := ""
	switch {
	case p.HasGetter && p.HasSetter:
		accessors = "{ get; set; }"
	case p.HasGetter:
		accessors = "{ get; }"
	default:
		accessors = "{ set; }"
	}
	return fmt.Sprintf("%s%s %s %s %s\n", indent, p.Visibility, p.Type, p.Name, accessors)
}

func renderField(f csharp.Field) string {
	return fmt.Sprintf("%s%s %s %s;\n", indent, f.Visibility, f.Type, f.Name)
}

func renderMethod(m csharp.Method) string {
	var sb strings.Builder
	sb.WriteString(indent)
	sb.WriteString(methodHead(m))
	if m.IsAbstract {
		sb.WriteString(";\n")
		return sb.String()
	}
	sb.WriteString("\n")
	sb.WriteString(indent + "{\n")
	if m.Kind != cpp.MethodDestructor {
		sb.WriteString(indent + indent + "throw new NotImplementedException();\n")
	}
	sb.WriteString(indent + "}\n")
	return sb.String()
}

// methodHead renders the declaration up to but not including the body:
// modifiers, return type, name and parameter list. Finalizers take no
// modifiers and no return type; constructors no return type.
func methodHead(m csharp.Method) string {
	var parts []string
	switch m.Kind {
	case cpp.MethodDestructor:
		return m.Name + "()"
	case cpp.MethodConstructor:
		parts = append(parts, m.Visibility.String(), m.Name)
	default:
		parts = append(parts, m.Visibility.String())
		if m.IsStatic {
			parts = append(parts, "static")
		}
		if m.IsAbstract {
			parts = append(parts, "abstract")
		}
		if m.IsVirtual {
			parts = append(parts, "virtual")
		}
		if m.IsOverride {
			parts = append(parts, "override")
		}
		parts = append(parts, m.ReturnType, m.Name)
	}
	head := strings.Join(parts, " ")
	var params []string
	for _, p := range m.Parameters {
		params = append(params, p.Type+" "+p.Name)
	}
	return head + "(" + strings.Join(params, ", ") + ")"
}
