package pg

import (
	"testing"

	"github.com/stretchr/testify/require"

	"caramello/internal/dsl"
	"caramello/internal/gen"
)

func compileSample(t *testing.T) []*gen.Entity {
	t.Helper()
	docs, err := dsl.LoadManifestEntities("../../dsl/manifest.yaml", "../../dsl/entities")
	require.NoError(t, err)
	cat := dsl.NewCatalog(dsl.Loaded(docs))

	var out []*gen.Entity
	for _, e := range cat.Entities {
		ce, issues := gen.Compile(e, cat)
		require.Empty(t, issues, e.Name)
		out = append(out, ce)
	}
	return out
}
