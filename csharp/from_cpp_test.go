package csharp

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/BTwiiin/Transpiler-CPP-to-Csharp/cpp"
)

func mustParse(t *testing.T, src string) *cpp.Class {
	t.Helper()
	classes, err := cpp.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(classes) != 1 {
		t.Fatalf("class count = %d, want 1", len(classes))
	}
	return classes[0]
}

func TestMapType(t *testing.T) {
	tests := []struct {
		cpp  string
		want string
	}{
		{"void", "void"},
		{"int", "int"},
		{"double", "double"},
		{"bool", "bool"},
		{"string", "string"},
		{"std::string", "string"},
		{"const std::string&", "string"},
		{"int*", "int"},
		{"Point&", "Point"},
		{"const Point*", "Point"},
		{"Point", "Point"},
		{"std::vector<int>", "List<int>"},
		{"std::list<std::string>", "LinkedList<string>"},
		{"std::set<double>", "HashSet<double>"},
		{"std::map<std::string,int>", "Dictionary<string, int>"},
		{"std::vector<std::vector<double>>", "List<List<double>>"},
		{"std::map<int,std::vector<bool>>", "Dictionary<int, List<bool>>"},
		{"const std::vector<Point*>&", "List<Point>"},
	}
	for _, tt := range tests {
		t.Run(tt.cpp, func(t *testing.T) {
			if got := MapType(tt.cpp); got != tt.want {
				t.Errorf("MapType(%q) = %q, want %q", tt.cpp, got, tt.want)
			}
		})
	}
}

func TestPropertyName(t *testing.T) {
	tests := []struct {
		field string
		want  string
	}{
		{"m_name", "Name"},
		{"_count", "Count"},
		{"value", "Value"},
		{"m_first_name", "FirstName"},
		{"x", "X"},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			if got := PropertyName(tt.field); got != tt.want {
				t.Errorf("PropertyName(%q) = %q, want %q", tt.field, got, tt.want)
			}
		})
	}
}

func TestFromClassSynthesizesProperties(t *testing.T) {
	src := mustParse(t, `
class Person {
private:
    std::string m_name;
    int m_age;
public:
    std::string getName() const;
    void setName(const std::string& name);
    int getAge() const;
};`)
	cs := FromClass(src)

	wantProps := []Property{
		{Name: "Name", Type: "string", Visibility: cpp.VisibilityPublic, HasGetter: true, HasSetter: true},
		{Name: "Age", Type: "int", Visibility: cpp.VisibilityPublic, HasGetter: true},
	}
	if diff := cmp.Diff(wantProps, cs.Properties); diff != "" {
		t.Errorf("Properties mismatch (-want +got):\n%s", diff)
	}
	if len(cs.Fields) != 0 {
		t.Errorf("Fields = %+v, want none after property synthesis", cs.Fields)
	}
	if len(cs.Methods) != 0 {
		t.Errorf("Methods = %+v, want accessors absorbed", cs.Methods)
	}

	// The match result is recorded back on the parsed fields.
	name := src.FieldByName("m_name")
	if !name.HasGetter || !name.HasSetter {
		t.Errorf("m_name HasGetter = %v HasSetter = %v, want both true", name.HasGetter, name.HasSetter)
	}
	age := src.FieldByName("m_age")
	if !age.HasGetter || age.HasSetter {
		t.Errorf("m_age HasGetter = %v HasSetter = %v, want getter only", age.HasGetter, age.HasSetter)
	}
}

func TestFromClassKeepsUnmatchedFields(t *testing.T) {
	src := mustParse(t, `
class Counter {
    int m_hits;
    int total;
public:
    int getTotal() const;
};`)
	cs := FromClass(src)

	wantFields := []Field{{Name: "m_hits", Type: "int", Visibility: cpp.VisibilityPrivate}}
	if diff := cmp.Diff(wantFields, cs.Fields); diff != "" {
		t.Errorf("Fields mismatch (-want +got):\n%s", diff)
	}
	if len(cs.Properties) != 1 || cs.Properties[0].Name != "Total" {
		t.Errorf("Properties = %+v, want just Total", cs.Properties)
	}
}

func TestFromClassUpperCaseAccessors(t *testing.T) {
	src := mustParse(t, `
class Config {
    std::string _path;
public:
    std::string GetPath() const;
    void SetPath(const std::string& path);
};`)
	cs := FromClass(src)
	if len(cs.Properties) != 1 {
		t.Fatalf("Properties = %+v, want one", cs.Properties)
	}
	p := cs.Properties[0]
	if p.Name != "Path" || !p.HasGetter || !p.HasSetter {
		t.Errorf("property = %+v, want Path with getter and setter", p)
	}
}

func TestFromClassConstructorAndDestructor(t *testing.T) {
	src := mustParse(t, `
class File {
public:
    File(const std::string& path);
    ~File();
};`)
	cs := FromClass(src)

	want := []Method{
		{
			Name:       "File",
			Visibility: cpp.VisibilityPublic,
			Kind:       cpp.MethodConstructor,
			Parameters: []Parameter{{Name: "path", Type: "string"}},
		},
		{
			Name: "~File",
			Kind: cpp.MethodDestructor,
		},
	}
	if diff := cmp.Diff(want, cs.Methods); diff != "" {
		t.Errorf("Methods mismatch (-want +got):\n%s", diff)
	}
}

func TestFromClassOperators(t *testing.T) {
	src := mustParse(t, `
class Vec {
public:
    bool operator==(const Vec& other) const;
    Vec operator+(const Vec& other) const;
    Vec& operator=(const Vec& other);
};`)
	cs := FromClass(src)

	want := []Method{
		{
			Name:       "operator ==",
			ReturnType: "bool",
			Visibility: cpp.VisibilityPublic,
			Kind:       cpp.MethodOperator,
			Parameters: []Parameter{{Name: "left", Type: "Vec"}, {Name: "other", Type: "Vec"}},
			IsStatic:   true,
		},
		{
			Name:       "operator +",
			ReturnType: "Vec",
			Visibility: cpp.VisibilityPublic,
			Kind:       cpp.MethodOperator,
			Parameters: []Parameter{{Name: "left", Type: "Vec"}, {Name: "other", Type: "Vec"}},
			IsStatic:   true,
		},
		// operator= has no C# counterpart and is dropped.
	}
	if diff := cmp.Diff(want, cs.Methods); diff != "" {
		t.Errorf("Methods mismatch (-want +got):\n%s", diff)
	}
}

func TestFromClassVirtualMethods(t *testing.T) {
	src := mustParse(t, `
class Shape {
public:
    virtual double area() = 0;
    virtual void draw();
    void resize(int w, int h) override;
};`)
	cs := FromClass(src)

	if !cs.IsAbstract {
		t.Error("IsAbstract = false, want true")
	}
	want := []Method{
		{
			Name:       "area",
			ReturnType: "double",
			Visibility: cpp.VisibilityPublic,
			IsAbstract: true,
		},
		{
			Name:       "draw",
			ReturnType: "void",
			Visibility: cpp.VisibilityPublic,
			IsVirtual:  true,
		},
		{
			Name:       "resize",
			ReturnType: "void",
			Visibility: cpp.VisibilityPublic,
			Parameters: []Parameter{{Name: "w", Type: "int"}, {Name: "h", Type: "int"}},
			IsOverride: true,
		},
	}
	if diff := cmp.Diff(want, cs.Methods); diff != "" {
		t.Errorf("Methods mismatch (-want +got):\n%s", diff)
	}
}

func TestFromClassBaseTypes(t *testing.T) {
	src := mustParse(t, "class Dog : public Animal, public Taggable { };")
	cs := FromClass(src)
	want := []string{"Animal", "Taggable"}
	if diff := cmp.Diff(want, cs.BaseTypes); diff != "" {
		t.Errorf("BaseTypes mismatch (-want +got):\n%s", diff)
	}
}
