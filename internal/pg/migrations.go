package pg

import (
	"context"
	"crypto/rand"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"caramello/internal/gen"
)

const (
	upSuffix   = ".up.sql"
	downSuffix = ".down.sql"
)

var migrationNameRe = regexp.MustCompile(`[^a-z0-9_]+`)

// Migration is one up/down pair in a migrations directory.
type Migration struct {
	Version ulid.ULID
	Name    string
	Up      string
	Down    string
}

// NewVersion returns a version that sorts after every version minted earlier.
func NewVersion(t time.Time) ulid.ULID {
	return ulid.MustNew(ulid.Timestamp(t), rand.Reader)
}

// Script joins the phases of GenerateDDL in apply order.
func Script(ddl map[string]string) string {
	keys := make([]string, 0, len(ddl))
	for k := range ddl {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "-- %s\n%s", k, ddl[k])
	}
	return b.String()
}

// WriteMigration writes the full schema of entities as a new migration pair.
func WriteMigration(dir, name string, version ulid.ULID, entities []*gen.Entity) (Migration, error) {
	ddl, err := GenerateDDL(entities)
	if err != nil {
		return Migration{}, err
	}
	name = strings.Trim(migrationNameRe.ReplaceAllString(strings.ToLower(name), "_"), "_")
	if name == "" {
		name = "schema"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Migration{}, err
	}
	m := Migration{Version: version, Name: name}
	base := filepath.Join(dir, version.String()+"_"+name)
	m.Up = base + upSuffix
	m.Down = base + downSuffix

	header := "-- " + gen.Header + "\n\n"
	if err := os.WriteFile(m.Up, []byte(header+Script(ddl)), 0o644); err != nil {
		return Migration{}, err
	}
	if err := os.WriteFile(m.Down, []byte(header+GenerateDropDDL(entities)), 0o644); err != nil {
		return Migration{}, err
	}
	return m, nil
}

// ListMigrations returns the up migrations of dir in version order. Files
// without a parseable version prefix are ignored.
func ListMigrations(dir string) ([]Migration, error) {
	ups, err := filepath.Glob(filepath.Join(dir, "*"+upSuffix))
	if err != nil {
		return nil, err
	}
	var out []Migration
	for _, up := range ups {
		stem := strings.TrimSuffix(filepath.Base(up), upSuffix)
		ver, name, _ := strings.Cut(stem, "_")
		id, err := ulid.ParseStrict(ver)
		if err != nil {
			continue
		}
		m := Migration{Version: id, Name: name, Up: up}
		if down := strings.TrimSuffix(up, upSuffix) + downSuffix; fileExists(down) {
			m.Down = down
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Version.Compare(out[j].Version) < 0 })
	return out, nil
}

// ApplyMigrations runs every up migration of dir in version order.
func ApplyMigrations(ctx context.Context, db *sql.DB, dir string) ([]Migration, error) {
	migs, err := ListMigrations(dir)
	if err != nil {
		return nil, err
	}
	for _, m := range migs {
		raw, err := os.ReadFile(m.Up)
		if err != nil {
			return nil, err
		}
		ddl := make(map[string]string)
		for i, stmt := range Statements(stripComments(string(raw))) {
			ddl[fmt.Sprintf("%s_%04d", m.Version, i)] = stmt
		}
		if err := ApplyDDL(ctx, db, ddl); err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(m.Up), err)
		}
	}
	return migs, nil
}

func stripComments(script string) string {
	lines := strings.Split(script, "\n")
	kept := lines[:0]
	for _, l := range lines {
		if !strings.HasPrefix(strings.TrimSpace(l), "--") {
			kept = append(kept, l)
		}
	}
	return strings.Join(kept, "\n")
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
