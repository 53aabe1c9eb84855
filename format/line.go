package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/BTwiiin/Transpiler-CPP-to-Csharp/cpp"
)

// LineEncoder writes one tab-separated record per declaration, suited to
// grep and cut. Empty columns hold "-" so every record has a fixed width.
type LineEncoder struct {
	w     io.Writer
	class *cpp.Class
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(class *cpp.Class) error {
	e.class = class
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	c := e.class

	fmt.Fprintf(&sb, "class\t%s\t%s\t%s\n", c.Name, basesStr(c), e.classModifiersStr())

	for _, f := range c.Fields {
		fmt.Fprintf(&sb, "field\t%s.%s\t%s\t%s\t%s\n",
			c.Name,
			f.Name,
			f.Type,
			f.Visibility,
			fieldModifiersStr(f),
		)
	}

	for i := range c.Methods {
		m := &c.Methods[i]
		fmt.Fprintf(&sb, "method\t%s.%s\t%s\t%s\t%s\t%s\n",
			c.Name,
			m.Signature(),
			returnTypeStr(m),
			m.Visibility,
			m.Kind,
			methodModifiersStr(m),
		)
	}

	return []byte(sb.String()), nil
}

func basesStr(c *cpp.Class) string {
	if len(c.BaseClasses) == 0 {
		return "-"
	}
	return strings.Join(c.BaseClasses, ",")
}

func (e *LineEncoder) classModifiersStr() string {
	if e.class.IsAbstract() {
		return "abstract"
	}
	return "-"
}

func fieldModifiersStr(f cpp.Field) string {
	var mods []string
	if f.HasGetter {
		mods = append(mods, "getter")
	}
	if f.HasSetter {
		mods = append(mods, "setter")
	}
	if len(mods) == 0 {
		return "-"
	}
	return strings.Join(mods, ",")
}

func methodModifiersStr(m *cpp.Method) string {
	mods := methodModifiers(m)
	if len(mods) == 0 {
		return "-"
	}
	return strings.Join(mods, ",")
}

func returnTypeStr(m *cpp.Method) string {
	if m.ReturnType == "" {
		return "-"
	}
	return m.ReturnType
}
