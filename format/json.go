package format

import (
	"encoding/json"
	"io"

	"github.com/BTwiiin/Transpiler-CPP-to-Csharp/cpp"
)

type JSONEncoder struct {
	w     io.Writer
	class *cpp.Class
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(class *cpp.Class) error {
	e.class = class
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data := e.buildClassData()
	return json.MarshalIndent(data, "", "  ")
}

type jsonClass struct {
	Name        string       `json:"name"`
	SourceName  string       `json:"sourceName"`
	BaseClasses []string     `json:"baseClasses,omitempty"`
	Abstract    bool         `json:"abstract"`
	Line        int          `json:"line"`
	Fields      []jsonField  `json:"fields,omitempty"`
	Methods     []jsonMethod `json:"methods,omitempty"`
}

type jsonField struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Visibility string `json:"visibility"`
	HasGetter  bool   `json:"hasGetter"`
	HasSetter  bool   `json:"hasSetter"`
	Line       int    `json:"line"`
}

type jsonMethod struct {
	Name       string          `json:"name"`
	ReturnType string          `json:"returnType,omitempty"`
	Kind       string          `json:"kind"`
	Parameters []jsonParameter `json:"parameters,omitempty"`
	Visibility string          `json:"visibility"`
	Modifiers  []string        `json:"modifiers,omitempty"`
	Line       int             `json:"line"`
}

type jsonParameter struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func (e *JSONEncoder) buildClassData() jsonClass {
	c := e.class
	return jsonClass{
		Name:        c.Name,
		SourceName:  c.SourceName,
		BaseClasses: c.BaseClasses,
		Abstract:    c.IsAbstract(),
		Line:        c.Line,
		Fields:      e.buildFields(),
		Methods:     e.buildMethods(),
	}
}

func (e *JSONEncoder) buildFields() []jsonField {
	fields := e.class.Fields
	result := make([]jsonField, len(fields))
	for i, f := range fields {
		result[i] = jsonField{
			Name:       f.Name,
			Type:       f.Type,
			Visibility: f.Visibility.String(),
			HasGetter:  f.HasGetter,
			HasSetter:  f.HasSetter,
			Line:       f.Line,
		}
	}
	return result
}

func (e *JSONEncoder) buildMethods() []jsonMethod {
	methods := e.class.Methods
	result := make([]jsonMethod, len(methods))
	for i := range methods {
		m := &methods[i]
		result[i] = jsonMethod{
			Name:       m.Name,
			ReturnType: m.ReturnType,
			Kind:       m.Kind.String(),
			Parameters: buildParameters(m.Parameters),
			Visibility: m.Visibility.String(),
			Modifiers:  methodModifiers(m),
			Line:       m.Line,
		}
	}
	return result
}

func buildParameters(params []cpp.Parameter) []jsonParameter {
	result := make([]jsonParameter, len(params))
	for i, p := range params {
		result[i] = jsonParameter{Name: p.Name, Type: p.Type}
	}
	return result
}

func methodModifiers(m *cpp.Method) []string {
	var mods []string
	if m.IsVirtual {
		mods = append(mods, "virtual")
	}
	if m.IsPureVirtual {
		mods = append(mods, "pure")
	}
	if m.IsOverride {
		mods = append(mods, "override")
	}
	if m.IsConst {
		mods = append(mods, "const")
	}
	return mods
}
