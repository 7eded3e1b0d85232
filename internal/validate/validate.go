// Package validate checks generated artifacts against the DSL and runs the
// generated test suite.
package validate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"caramello/internal/config"
	"caramello/internal/dsl"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityOK      Severity = "ok"
)

// Finding is the outcome of one check.
type Finding struct {
	Severity Severity
	Entity   string
	Message  string
}

type Options struct {
	ManifestPath     string
	EntitiesDir      string
	ModelsDir        string
	RoutersDir       string
	MigrationsDir    string
	MigrationsStrict bool
	// TestCommand is split on whitespace and run without a shell. Empty skips the run.
	TestCommand string
	// Dir is the working directory of the test command.
	Dir string
}

func OptionsFrom(cfg config.Config) Options {
	return Options{
		ManifestPath:     cfg.ManifestPath(),
		EntitiesDir:      cfg.EntitiesPath(),
		ModelsDir:        cfg.ModelsDir,
		RoutersDir:       cfg.RoutersDir,
		MigrationsDir:    cfg.MigrationsDir,
		MigrationsStrict: cfg.MigrationsStrict,
		TestCommand:      cfg.TestCommand,
	}
}

// Result collects every finding of a run plus the test suite outcome.
type Result struct {
	Findings   []Finding
	TestsRun   bool
	TestOutput string
	TestErr    error
}

func (r *Result) add(sev Severity, entity, format string, args ...any) {
	r.Findings = append(r.Findings, Finding{Severity: sev, Entity: entity, Message: fmt.Sprintf(format, args...)})
}

// Errors counts the error findings.
func (r *Result) Errors() int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			n++
		}
	}
	return n
}

// OK reports whether every check passed and the test suite, when run, passed.
func (r *Result) OK() bool {
	return r.Errors() == 0 && r.TestErr == nil
}

// Run checks every active entity of the manifest, then the migrations
// directory, then runs the test suite. Check failures are aggregated; the
// suite only runs when no check failed. A missing DSL directory or manifest
// is returned as error.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if _, err := os.Stat(opts.EntitiesDir); err != nil {
		return nil, fmt.Errorf("dsl directory: %w", err)
	}
	docs, err := dsl.LoadManifestEntities(opts.ManifestPath, opts.EntitiesDir)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	for _, doc := range docs {
		if doc.Err != nil {
			res.add(SeverityError, doc.File, "cannot load: %v", doc.Err)
			continue
		}
		checkEntity(res, opts, doc.Entity)
	}
	checkMigrations(res, opts)

	if res.Errors() > 0 || strings.TrimSpace(opts.TestCommand) == "" {
		return res, nil
	}
	res.TestsRun = true
	res.TestOutput, res.TestErr = runTests(ctx, opts.TestCommand, opts.Dir)
	return res, nil
}

func checkMigrations(res *Result, opts Options) {
	entries, err := os.ReadDir(opts.MigrationsDir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		res.add(SeverityError, "", "read migrations %s: %v", opts.MigrationsDir, err)
		return
	}
	n := 0
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			n++
		}
	}
	switch {
	case n > 0:
		res.add(SeverityOK, "", "found %d migration file(s) in %s", n, opts.MigrationsDir)
	case opts.MigrationsStrict:
		res.add(SeverityError, "", "no migrations found in %s", opts.MigrationsDir)
	default:
		res.add(SeverityWarning, "", "no migrations found in %s", opts.MigrationsDir)
	}
}

func runTests(ctx context.Context, command, dir string) (string, error) {
	args := strings.Fields(command)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = dir
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return out.String(), fmt.Errorf("%s: %w", command, err)
	}
	return out.String(), nil
}

func readFile(path string) (string, bool) {
	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", false
	}
	return string(b), true
}
