package validate

import (
	"path/filepath"
	"strings"

	"caramello/internal/dsl"
	"caramello/internal/gen"
)

// checkEntity looks for the markers every generated model carries and for
// the test file of routed entities.
func checkEntity(res *Result, opts Options, e *dsl.Entity) {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		res.add(SeverityError, e.Source, "entity has no name")
		return
	}
	modelPath := filepath.Join(opts.ModelsDir, gen.ModelFile(name))
	src, ok := readFile(modelPath)
	if !ok {
		res.add(SeverityError, name, "model file not found: %s", modelPath)
		return
	}

	failed := false
	for _, marker := range []string{gen.TableMarker(name, e.Table()), gen.ReadMarker(name)} {
		if !strings.Contains(src, marker) {
			res.add(SeverityError, name, "%q not found in %s", marker, modelPath)
			failed = true
		}
	}

	if !e.IsLinkModel {
		testPath := filepath.Join(opts.RoutersDir, gen.TestFile(name))
		if _, ok := readFile(testPath); !ok {
			res.add(SeverityError, name, "test file not found: %s", testPath)
			failed = true
		}
	}
	if !failed {
		res.add(SeverityOK, name, "validated %s -> %s", name, e.Table())
	}
}
