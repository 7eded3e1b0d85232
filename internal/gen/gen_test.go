package gen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"caramello/internal/dsl"
)

// compileSample compiles the sample DSL shipped with the repository.
func compileSample(t *testing.T) map[string]*Entity {
	t.Helper()
	docs, err := dsl.LoadManifestEntities("../../dsl/manifest.yaml", "../../dsl/entities")
	require.NoError(t, err)
	cat := dsl.NewCatalog(dsl.Loaded(docs))
	require.Len(t, cat.Entities, 4)

	out := map[string]*Entity{}
	for _, e := range cat.Entities {
		ce, issues := Compile(e, cat)
		require.Empty(t, issues, e.Name)
		out[e.Name] = ce
	}
	return out
}

func compileOne(t *testing.T, e *dsl.Entity, others ...*dsl.Entity) (*Entity, []dsl.Issue) {
	t.Helper()
	cat := dsl.NewCatalog(append([]*dsl.Entity{e}, others...))
	return Compile(e, cat)
}

func ptr[T any](v T) *T { return &v }
