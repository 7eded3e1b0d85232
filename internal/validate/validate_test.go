package validate

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caramello/internal/driver"
	"caramello/internal/gen"
)

// generated runs the driver on the sample DSL into a temporary tree and
// returns validation options pointing at it.
func generated(t *testing.T) Options {
	t.Helper()
	out := t.TempDir()
	opts := Options{
		ManifestPath:     "../../dsl/manifest.yaml",
		EntitiesDir:      "../../dsl/entities",
		ModelsDir:        filepath.Join(out, "models"),
		RoutersDir:       filepath.Join(out, "generated"),
		MigrationsDir:    filepath.Join(out, "migrations"),
		MigrationsStrict: true,
	}
	_, err := driver.Run(driver.Options{
		ManifestPath: opts.ManifestPath,
		EntitiesDir:  opts.EntitiesDir,
		ModelsDir:    opts.ModelsDir,
		RoutersDir:   opts.RoutersDir,
		Imports:      gen.DefaultImports("caramello", "internal/app/models"),
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(opts.MigrationsDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(opts.MigrationsDir, "01_init.up.sql"), []byte("select 1;\n"), 0o644))
	return opts
}

func requireCommand(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available", name)
	}
}

func errorsOf(res *Result) []Finding {
	var out []Finding
	for _, f := range res.Findings {
		if f.Severity == SeverityError {
			out = append(out, f)
		}
	}
	return out
}

func TestRunGeneratedTree(t *testing.T) {
	requireCommand(t, "true")
	opts := generated(t)
	opts.TestCommand = "true"

	res, err := Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Empty(t, errorsOf(res))
	assert.True(t, res.TestsRun)
	assert.True(t, res.OK())

	var validated []string
	for _, f := range res.Findings {
		if f.Severity == SeverityOK && f.Entity != "" {
			validated = append(validated, f.Entity)
		}
	}
	assert.Equal(t, []string{"User", "Family", "FamilyMember", "FamilyInvitation"}, validated)
}

func TestRunAggregatesEntityFailures(t *testing.T) {
	opts := generated(t)
	opts.TestCommand = "true"
	require.NoError(t, os.WriteFile(filepath.Join(opts.ModelsDir, "user.go"), []byte("package models\n"), 0o644))
	require.NoError(t, os.Remove(filepath.Join(opts.RoutersDir, "family_router_test.go")))
	require.NoError(t, os.Remove(filepath.Join(opts.ModelsDir, "family_invitation.go")))

	res, err := Run(context.Background(), opts)
	require.NoError(t, err)
	errs := errorsOf(res)
	require.Len(t, errs, 4)
	assert.Equal(t, "User", errs[0].Entity)
	assert.Contains(t, errs[0].Message, `const UserTable = \"users\"`)
	assert.Contains(t, errs[1].Message, "type UserRead struct")
	assert.Equal(t, "Family", errs[2].Entity)
	assert.Contains(t, errs[2].Message, "test file not found")
	assert.Equal(t, "FamilyInvitation", errs[3].Entity)

	assert.False(t, res.TestsRun)
	assert.False(t, res.OK())
}

func TestRunMigrationsSeverity(t *testing.T) {
	opts := generated(t)
	require.NoError(t, os.RemoveAll(opts.MigrationsDir))

	res, err := Run(context.Background(), opts)
	require.NoError(t, err)
	errs := errorsOf(res)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "no migrations found")

	opts.MigrationsStrict = false
	res, err = Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Empty(t, errorsOf(res))
	assert.True(t, res.OK())
	last := res.Findings[len(res.Findings)-1]
	assert.Equal(t, SeverityWarning, last.Severity)
}

func TestRunFailingSuite(t *testing.T) {
	requireCommand(t, "false")
	opts := generated(t)
	opts.TestCommand = "false"

	res, err := Run(context.Background(), opts)
	require.NoError(t, err)
	assert.True(t, res.TestsRun)
	require.Error(t, res.TestErr)
	assert.Contains(t, res.TestErr.Error(), "false")
	assert.False(t, res.OK())
}

func TestRunMissingDSL(t *testing.T) {
	opts := generated(t)
	opts.EntitiesDir = filepath.Join(t.TempDir(), "absent")
	_, err := Run(context.Background(), opts)
	require.Error(t, err)

	opts = generated(t)
	opts.ManifestPath = filepath.Join(t.TempDir(), "manifest.yaml")
	_, err = Run(context.Background(), opts)
	require.Error(t, err)
}
