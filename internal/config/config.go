package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
)

// DefaultFile is read when no config path is given; it may be absent.
const DefaultFile = "caramello.json"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CARAMELLO_"

type Config struct {
	// DSL input
	DSLDir      string `json:"dslDir"`
	Manifest    string `json:"manifest"`    // relative to DSLDir
	EntitiesDir string `json:"entitiesDir"` // relative to DSLDir

	// generated output
	ModelsDir  string `json:"modelsDir"`
	RoutersDir string `json:"routersDir"`
	ModulePath string `json:"modulePath"`

	// validation
	MigrationsDir    string `json:"migrationsDir"`
	MigrationsStrict bool   `json:"migrationsStrict"` // false: an empty migrations dir only warns
	TestCommand      string `json:"testCommand"`

	// served app
	Port       string `json:"port"`
	DBURL      string `json:"dbUrl"` // empty: DB parts, then sqlite
	SQLitePath string `json:"sqlitePath"`
	DBHost     string `json:"dbHost"`
	DBPort     string `json:"dbPort"`
	DBUser     string `json:"dbUser"`
	DBPassword string `json:"dbPassword"`
	DBName     string `json:"dbName"`
}

func Default() Config {
	return Config{
		DSLDir:      "dsl",
		Manifest:    "manifest.yaml",
		EntitiesDir: "entities",

		ModelsDir:  "internal/app/models",
		RoutersDir: "internal/app/api/generated",
		ModulePath: "caramello",

		MigrationsDir:    "migrations",
		MigrationsStrict: true,
		TestCommand:      "go test ./internal/app/api/generated/...",

		Port:       "8080",
		SQLitePath: "caramello.db",
		DBPort:     "5432",
	}
}

// Load reads defaults, then the JSON file, then CARAMELLO_* variables.
// An empty path means DefaultFile, which may be missing; an explicit path
// must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	strs := map[string]*string{
		"DSL_DIR":        &c.DSLDir,
		"MANIFEST":       &c.Manifest,
		"ENTITIES_DIR":   &c.EntitiesDir,
		"MODELS_DIR":     &c.ModelsDir,
		"ROUTERS_DIR":    &c.RoutersDir,
		"MODULE_PATH":    &c.ModulePath,
		"MIGRATIONS_DIR": &c.MigrationsDir,
		"TEST_COMMAND":   &c.TestCommand,
		"PORT":           &c.Port,
		"DB_URL":         &c.DBURL,
		"SQLITE_PATH":    &c.SQLitePath,
		"DB_HOST":        &c.DBHost,
		"DB_PORT":        &c.DBPort,
		"DB_USER":        &c.DBUser,
		"DB_PASSWORD":    &c.DBPassword,
		"DB_NAME":        &c.DBName,
	}
	for k, dst := range strs {
		if v, ok := lookup(k); ok {
			*dst = v
		}
	}
	if v, ok := lookup("MIGRATIONS_STRICT"); ok {
		b, err := cast.ToBoolE(v)
		if err != nil {
			return fmt.Errorf("%sMIGRATIONS_STRICT: %w", EnvPrefix, err)
		}
		c.MigrationsStrict = b
	}
	return nil
}

func lookup(k string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + k)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}

func (c Config) ManifestPath() string { return filepath.Join(c.DSLDir, c.Manifest) }
func (c Config) EntitiesPath() string { return filepath.Join(c.DSLDir, c.EntitiesDir) }

// DatabaseURL is DBURL, else a postgres URL built from the DB parts when
// DBHost is set, else empty (sqlite).
func (c Config) DatabaseURL() string {
	if c.DBURL != "" {
		return c.DBURL
	}
	if c.DBHost == "" {
		return ""
	}
	u := url.URL{
		Scheme: "postgres",
		Host:   c.DBHost + ":" + c.DBPort,
		Path:   "/" + c.DBName,
	}
	if c.DBUser != "" {
		u.User = url.UserPassword(c.DBUser, c.DBPassword)
	}
	return u.String()
}
