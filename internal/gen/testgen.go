package gen

import (
	"fmt"
	"strconv"
)

// Sample literals, one per DSL type.
const (
	SampleString   = "test_string"
	SampleEmail    = "test@example.com"
	SampleDatetime = "2024-01-01T00:00:00Z"
	SampleSecret   = "secret-password"
)

// SampleValue is one entry of a generated create body.
type SampleValue struct {
	Key  string
	Expr string // Go expression
}

// Sample synthesizes the create body of an entity: one literal per input
// field, keyed by its input name. Types without a literal are left out.
// Unique text fields are produced by apptest helpers so that repeated creates
// do not collide.
func Sample(e *Entity) []SampleValue {
	var out []SampleValue
	for _, f := range e.InputFields() {
		if expr, ok := sampleExpr(f); ok {
			out = append(out, SampleValue{Key: f.InputName, Expr: expr})
		}
	}
	return out
}

// Unsampled lists the required input fields Sample has no literal for. A
// generated create test for such an entity is rejected by request binding.
func Unsampled(e *Entity) []*Field {
	var out []*Field
	for _, f := range e.InputFields() {
		if f.Optional() {
			continue
		}
		if _, ok := sampleExpr(f); !ok {
			out = append(out, f)
		}
	}
	return out
}

func sampleExpr(f *Field) (string, bool) {
	if f.Secret {
		return strconv.Quote(SampleSecret), true
	}
	if f.Type.List || f.Type.IsEntity() {
		return "", false
	}
	if f.Unique && f.Type.IsText() {
		if f.Type.Scalar == ScalarEmail {
			return "apptest.UniqueEmail()", true
		}
		return fmt.Sprintf("apptest.Unique(%q, %d)", f.Name, f.MaxLength), true
	}
	switch f.Type.Scalar {
	case ScalarInteger:
		return "1", true
	case ScalarString:
		return strconv.Quote(truncate(SampleString, f.MaxLength)), true
	case ScalarEmail:
		return strconv.Quote(SampleEmail), true
	case ScalarBoolean:
		return "true", true
	case ScalarFloat:
		return "1.0", true
	case ScalarDatetime:
		return strconv.Quote(SampleDatetime), true
	}
	return "", false
}

func truncate(s string, n int) string {
	if n > 0 && len(s) > n {
		return s[:n]
	}
	return s
}

type testData struct {
	Header        string
	Package       string
	AppTestImport string
	Entity        *Entity
	Key           string
	Sample        []SampleValue
}

// RenderTest emits the create/read/list round-trip tests of an entity.
func RenderTest(pkg string, imp Imports, e *Entity) ([]byte, error) {
	if e.Key == nil {
		return nil, fmt.Errorf("%s: no external identifier or single primary key to test by", e.Name)
	}
	data := testData{
		Header:        Header,
		Package:       pkg + "_test",
		AppTestImport: imp.AppTest,
		Entity:        e,
		Key:           e.Key.Name,
		Sample:        Sample(e),
	}
	return execute("test.tmpl", TestFile(e.Name), data)
}
