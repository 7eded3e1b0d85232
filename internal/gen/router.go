package gen

import (
	"fmt"
	"path"
)

// Imports are the import paths generated code depends on.
type Imports struct {
	Models  string
	Web     string
	AppTest string
}

// DefaultImports derives the runtime import paths from the module path and
// the models directory.
func DefaultImports(module, modelsDir string) Imports {
	return Imports{
		Models:  path.Join(module, modelsDir),
		Web:     path.Join(module, "internal/app/web"),
		AppTest: path.Join(module, "internal/app/apptest"),
	}
}

// RouterFile is the router file name of an entity.
func RouterFile(entity string) string { return FileName(entity) + "_router.go" }

// TestFile is the generated test file name of an entity.
func TestFile(entity string) string { return FileName(entity) + "_router_test.go" }

// ModelFile is the model file name of an entity.
func ModelFile(entity string) string { return FileName(entity) + ".go" }

type routerData struct {
	Header       string
	Package      string
	ModelsImport string
	WebImport    string
	Entity       *Entity
	Param        string
	Parser       string
	Columns      []string
}

// RenderRouter emits the five CRUD handlers of an entity. Entities without a
// usable key (no external id and no single primary key) cannot be routed.
func RenderRouter(pkg string, imp Imports, e *Entity) ([]byte, error) {
	if e.Key == nil {
		return nil, fmt.Errorf("%s: no external identifier or single primary key to route by", e.Name)
	}
	data := routerData{
		Header:       Header,
		Package:      pkg,
		ModelsImport: imp.Models,
		WebImport:    imp.Web,
		Entity:       e,
		Param:        e.Key.Name,
		Parser:       keyParser(e.Key),
		Columns:      sortColumns(e),
	}
	return execute("router.tmpl", RouterFile(e.Name), data)
}

func keyParser(f *Field) string {
	switch f.Type.Scalar {
	case ScalarUUID:
		return "UUIDParam"
	case ScalarInteger:
		return "IntParam"
	}
	return "StringParam"
}

// sortColumns lists the primary key columns first, then the readable columns.
func sortColumns(e *Entity) []string {
	var cols []string
	seen := map[string]bool{}
	add := func(f *Field) {
		if !seen[f.Name] && !f.Type.List {
			seen[f.Name] = true
			cols = append(cols, f.Name)
		}
	}
	for _, f := range e.Fields {
		if f.PrimaryKey {
			add(f)
		}
	}
	for _, f := range e.ReadFields() {
		add(f)
	}
	return cols
}
