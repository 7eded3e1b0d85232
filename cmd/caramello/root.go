package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"caramello/internal/config"
	"caramello/internal/dsl"
	"caramello/internal/gen"
	"caramello/internal/output"
)

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	configPath string
	noColor    bool
	verbose    bool

	// flag overrides, applied only when set on the command line
	dslDir        string
	modelsDir     string
	routersDir    string
	migrationsDir string
	modulePath    string

	cfg config.Config
	out *output.Printer
	log *slog.Logger
}

func rootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "caramello",
		Short: "Generate gorm models, gin routers and tests from a YAML entity DSL",
		Long: `caramello reads the entity documents listed in the DSL manifest and writes
models, CRUD routers and router tests for each of them.

Examples:
  caramello generate                  # write every artifact
  caramello generate --report run.json
  caramello validate                  # check artifacts, then run the generated tests
  caramello lint                      # print DSL diagnostics
  caramello migrate generate init     # write the schema as a SQL migration
  caramello migrate apply --db postgres://...`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "JSON config file (default "+config.DefaultFile+" when present)")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colored output")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log debug details")
	pf.StringVar(&a.dslDir, "dsl-dir", "", "DSL directory holding the manifest")
	pf.StringVar(&a.modelsDir, "models-dir", "", "output directory of model files")
	pf.StringVar(&a.routersDir, "routers-dir", "", "output directory of routers and tests")
	pf.StringVar(&a.migrationsDir, "migrations-dir", "", "directory of SQL migrations")
	pf.StringVar(&a.modulePath, "module", "", "Go module path of the generated code")

	root.AddCommand(a.generateCmd())
	root.AddCommand(a.validateCmd())
	root.AddCommand(a.lintCmd())
	root.AddCommand(a.migrateCmd())
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.noColor {
		output.DisableColor()
	}
	a.out = &output.Printer{W: cmd.OutOrStdout()}

	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.log)

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	overrides := map[string]struct {
		src string
		dst *string
	}{
		"dsl-dir":        {a.dslDir, &cfg.DSLDir},
		"models-dir":     {a.modelsDir, &cfg.ModelsDir},
		"routers-dir":    {a.routersDir, &cfg.RoutersDir},
		"migrations-dir": {a.migrationsDir, &cfg.MigrationsDir},
		"module":         {a.modulePath, &cfg.ModulePath},
	}
	for name, o := range overrides {
		if flags.Changed(name) {
			*o.dst = o.src
		}
	}
	a.cfg = cfg
	return nil
}

// compile loads the manifest and compiles every loadable entity. Lint and
// compile diagnostics are returned alongside.
func (a *app) compile() ([]*gen.Entity, []dsl.Issue, error) {
	docs, err := dsl.LoadManifestEntities(a.cfg.ManifestPath(), a.cfg.EntitiesPath())
	if err != nil {
		return nil, nil, err
	}
	cat := dsl.NewCatalog(dsl.Loaded(docs))
	issues := dsl.Lint(cat)

	var entities []*gen.Entity
	for _, doc := range docs {
		if doc.Err != nil {
			a.out.Error("%s: %v", doc.File, doc.Err)
			continue
		}
		e, is := gen.Compile(doc.Entity, cat)
		issues = append(issues, is...)
		entities = append(entities, e)
	}
	return entities, issues, nil
}
