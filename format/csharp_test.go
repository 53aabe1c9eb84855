package format

import (
	"bytes"
	"testing"

	"github.com/BTwiiin/Transpiler-CPP-to-Csharp/cpp"
)

func parseClass(t *testing.T, src string) *cpp.Class {
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

func TestCSharpEncoderFullClass(t *testing.T) {
	class := parseClass(t, `
class Person : public Entity {
private:
    std::string m_name;
    int m_age;
public:
    Person(const std::string& name);
    ~Person();
    std::string getName() const;
    void setName(const std::string& name);
    virtual void describe();
};`)

	var buf bytes.Buffer
	if err := NewCSharpEncoder(&buf).Encode(class); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	want := `public class Person : Entity
{
    public string Name { get; set; }

    private int m_age;

    public Person(string name)
    {
        throw new NotImplementedException();
    }

    ~Person()
    {
    }

    public virtual void describe()
    {
        throw new NotImplementedException();
    }
}
`
	if got := buf.String(); got != want {
		t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestCSharpEncoderAbstractClass(t *testing.T) {
	class := parseClass(t, `
class Shape {
public:
    virtual double area() = 0;
};`)

	var buf bytes.Buffer
	if err := NewCSharpEncoder(&buf).Encode(class); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	want := `public abstract class Shape
{
    public abstract double area();
}
`
	if got := buf.String(); got != want {
		t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestCSharpEncoderOperator(t *testing.T) {
	class := parseClass(t, `
class Vec {
public:
    bool operator==(const Vec& other) const;
};`)

	var buf bytes.Buffer
	if err := NewCSharpEncoder(&buf).Encode(class); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	want := `public class Vec
{
    public static bool operator ==(Vec left, Vec other)
    {
        throw new NotImplementedException();
    }
}
`
	if got := buf.String(); got != want {
		t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestCSharpEncoderEmptyClass(t *testing.T) {
	class := parseClass(t, "class Empty { };")

	var buf bytes.Buffer
	if err := NewCSharpEncoder(&buf).Encode(class); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	want := "public class Empty\n{\n}\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestCSharpEncoderContainerTypes(t *testing.T) {
	class := parseClass(t, `
class Inventory {
public:
    std::map<std::string, std::vector<int>> m_slots;
};`)

	var buf bytes.Buffer
	if err := NewCSharpEncoder(&buf).Encode(class); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	want := `public class Inventory
{
    public Dictionary<string, List<int>> m_slots;
}
`
	if got := buf.String(); got != want {
		t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}
