// Package driver runs one generation pass: manifest, entity documents,
// compilation, and the files every entity produces.
package driver

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"

	"caramello/internal/config"
	"caramello/internal/dsl"
	"caramello/internal/gen"
)

type Options struct {
	ManifestPath string
	EntitiesDir  string
	ModelsDir    string
	RoutersDir   string
	Imports      gen.Imports
	Logger       *slog.Logger
}

// OptionsFrom maps the generator settings of cfg.
func OptionsFrom(cfg config.Config) Options {
	return Options{
		ManifestPath: cfg.ManifestPath(),
		EntitiesDir:  cfg.EntitiesPath(),
		ModelsDir:    cfg.ModelsDir,
		RoutersDir:   cfg.RoutersDir,
		Imports:      gen.DefaultImports(cfg.ModulePath, cfg.ModelsDir),
	}
}

// EntityResult is the outcome of one manifest entry.
type EntityResult struct {
	Entity   string      `json:"entity,omitempty"`
	Document string      `json:"document"`
	Files    []string    `json:"files,omitempty"`
	Skipped  bool        `json:"skipped"`
	Issues   []dsl.Issue `json:"issues,omitempty"`
	Error    string      `json:"error,omitempty"`
}

// Report summarizes a run. Entities holds the compiled entities whose model
// was written, in manifest order.
type Report struct {
	RunID    ulid.ULID      `json:"run_id"`
	Started  time.Time      `json:"started"`
	Results  []EntityResult `json:"results"`
	Registry []string       `json:"registry,omitempty"`

	Entities []*gen.Entity `json:"-"`
}

// Failed counts the entries that were skipped or did not produce every file.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Skipped || res.Error != "" {
			n++
		}
	}
	return n
}

// WriteJSON stores the report at path.
func (r *Report) WriteJSON(path string) error {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}

// Run generates the artifacts of every entity the manifest lists. Only a
// manifest failure is returned as error; a document that cannot be loaded is
// logged, reported as skipped, and the run continues.
func Run(opts Options) (*Report, error) {
	rep := &Report{RunID: ulid.Make(), Started: time.Now().UTC()}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With("run_id", rep.RunID.String())

	docs, err := dsl.LoadManifestEntities(opts.ManifestPath, opts.EntitiesDir)
	if err != nil {
		return nil, err
	}
	cat := dsl.NewCatalog(dsl.Loaded(docs))
	for _, is := range dsl.Lint(cat) {
		log.Warn("dsl issue", "entity", is.Entity, "field", is.Field, "code", is.Code, "msg", is.Message)
	}

	routerPkg := filepath.Base(opts.RoutersDir)
	for _, doc := range docs {
		res := EntityResult{Document: doc.File}
		if doc.Err != nil {
			log.Error("load entity", "document", doc.File, "err", doc.Err)
			res.Skipped = true
			res.Error = doc.Err.Error()
			rep.Results = append(rep.Results, res)
			continue
		}

		e, issues := gen.Compile(doc.Entity, cat)
		if !e.IsLink {
			issues = append(issues, sampleIssues(e)...)
		}
		res.Entity = e.Name
		res.Issues = issues
		for _, is := range issues {
			log.Warn("compile issue", "entity", e.Name, "field", is.Field, "code", is.Code, "msg", is.Message)
		}

		files, err := generate(opts, routerPkg, e)
		res.Files = files
		if err != nil {
			log.Error("generate entity", "entity", e.Name, "err", err)
			res.Error = err.Error()
		}
		for _, f := range files {
			log.Info("wrote", "entity", e.Name, "file", f)
		}
		if len(files) > 0 {
			rep.Entities = append(rep.Entities, e)
		}
		rep.Results = append(rep.Results, res)
	}

	if len(rep.Entities) == 0 {
		return rep, nil
	}
	files, err := writeRegistries(opts, routerPkg, rep.Entities)
	rep.Registry = files
	if err != nil {
		return rep, fmt.Errorf("write registries: %w", err)
	}
	return rep, nil
}

// sampleIssues flags the required inputs the generated create test cannot
// fill in.
func sampleIssues(e *gen.Entity) []dsl.Issue {
	var out []dsl.Issue
	for _, f := range gen.Unsampled(e) {
		out = append(out, dsl.Issue{
			Entity:  e.Name,
			Field:   f.Name,
			Code:    dsl.IssueNoSample,
			Message: fmt.Sprintf("required %s input has no sample value; the generated create test will fail", f.Type.Token),
		})
	}
	return out
}

// generate writes the model of e, plus its router and test unless e is a
// link entity. The written paths are returned even on error.
func generate(opts Options, routerPkg string, e *gen.Entity) ([]string, error) {
	var written []string

	src, err := gen.RenderModel(e)
	if err != nil {
		return written, fmt.Errorf("render model: %w", err)
	}
	path := filepath.Join(opts.ModelsDir, gen.ModelFile(e.Name))
	if err := writeFile(path, src); err != nil {
		return written, err
	}
	written = append(written, path)

	if e.IsLink {
		return written, nil
	}

	src, err = gen.RenderRouter(routerPkg, opts.Imports, e)
	if err != nil {
		return written, fmt.Errorf("render router: %w", err)
	}
	path = filepath.Join(opts.RoutersDir, gen.RouterFile(e.Name))
	if err := writeFile(path, src); err != nil {
		return written, err
	}
	written = append(written, path)

	src, err = gen.RenderTest(routerPkg, opts.Imports, e)
	if err != nil {
		return written, fmt.Errorf("render test: %w", err)
	}
	path = filepath.Join(opts.RoutersDir, gen.TestFile(e.Name))
	if err := writeFile(path, src); err != nil {
		return written, err
	}
	return append(written, path), nil
}

func writeRegistries(opts Options, routerPkg string, entities []*gen.Entity) ([]string, error) {
	models, err := gen.RenderModelRegistry(entities)
	if err != nil {
		return nil, err
	}
	modelsPath := filepath.Join(opts.ModelsDir, gen.RegistryFile)
	if err := writeFile(modelsPath, models); err != nil {
		return nil, err
	}

	routes, err := gen.RenderRoutes(routerPkg, entities)
	if err != nil {
		return []string{modelsPath}, err
	}
	routesPath := filepath.Join(opts.RoutersDir, gen.RoutesFile)
	if err := writeFile(routesPath, routes); err != nil {
		return []string{modelsPath}, err
	}
	return []string{modelsPath, routesPath}, nil
}

func writeFile(path string, src []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
