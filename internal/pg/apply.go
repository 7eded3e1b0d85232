package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const duplicateObject = "42710"

// ApplyDDL executes ddl in key order. Statements are expected to be
// idempotent; duplicate objects (constraints re-added by a second run) are
// logged and skipped.
func ApplyDDL(ctx context.Context, db *sql.DB, ddl map[string]string) error {
	keys := make([]string, 0, len(ddl))
	for k := range ddl {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		sqlText := strings.TrimSpace(ddl[k])
		if sqlText == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, sqlText); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == duplicateObject {
				slog.Info("ddl skipped, already exists", "key", k, "constraint", pgErr.ConstraintName)
				continue
			}
			if alreadyExists(err) {
				slog.Info("ddl skipped, already exists", "key", k, "err", err)
				continue
			}
			return fmt.Errorf("apply %s: %w", k, err)
		}
	}
	return nil
}

func alreadyExists(err error) bool {
	e := strings.ToLower(err.Error())
	return strings.Contains(e, "already exists") || strings.Contains(e, "duplicate")
}

// Statements splits a script into its statements. Statements end with a
// semicolon at end of line.
func Statements(script string) []string {
	var out []string
	for _, part := range strings.Split(script, ";\n") {
		part = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(part), ";"))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
