package pg

import (
	"fmt"
	"strconv"
	"strings"

	"caramello/internal/gen"
)

type OnDeletePolicy string

const (
	OnDeleteRestrict OnDeletePolicy = "RESTRICT"
	OnDeleteSetNull  OnDeletePolicy = "SET NULL"
	OnDeleteCascade  OnDeletePolicy = "CASCADE"
)

// Phase keys of GenerateDDL; ApplyDDL runs them in key order.
const (
	PhaseTables      = "000_tables"
	PhaseIndexes     = "100_unique_indexes"
	PhaseForeignKeys = "200_foreign_keys"
)

func sqlIdent(s string) string { return `"` + strings.ReplaceAll(s, `"`, `""`) + `"` }

func mapType(f *gen.Field) string {
	t := f.Type
	if t.List {
		return "jsonb"
	}
	switch t.Scalar {
	case gen.ScalarUUID:
		return "uuid"
	case gen.ScalarString, gen.ScalarEmail:
		if f.MaxLength > 0 {
			return "varchar(" + strconv.Itoa(f.MaxLength) + ")"
		}
		return "text"
	case gen.ScalarInteger:
		if f.Role == gen.RoleInternalID {
			return "bigserial"
		}
		return "bigint"
	case gen.ScalarFloat:
		return "double precision"
	case gen.ScalarBoolean:
		return "boolean"
	case gen.ScalarDatetime:
		return "timestamp with time zone"
	}
	return "text"
}

func defaultClause(f *gen.Field) string {
	switch f.Default {
	case gen.DefaultFactory:
		switch f.Factory {
		case "uuid4":
			if f.Type.Scalar == gen.ScalarUUID {
				return " default gen_random_uuid()"
			}
			return " default gen_random_uuid()::text"
		case "now_utc":
			return " default now()"
		}
	case gen.DefaultLiteral:
		switch v := f.Literal.(type) {
		case string:
			return " default '" + strings.ReplaceAll(v, "'", "''") + "'"
		case bool:
			return " default " + strconv.FormatBool(v)
		case int64:
			return " default " + strconv.FormatInt(v, 10)
		case float64:
			return " default " + strconv.FormatFloat(v, 'g', -1, 64)
		}
	}
	return ""
}

// onDeletePolicy: link rows go with their owners, optional references are
// cleared, required ones block the delete.
func onDeletePolicy(e *gen.Entity, f *gen.Field) OnDeletePolicy {
	switch {
	case e.IsLink:
		return OnDeleteCascade
	case f.Nullable:
		return OnDeleteSetNull
	}
	return OnDeleteRestrict
}

// Ordered puts link entities after the tables they join, keeping manifest
// order otherwise.
func Ordered(entities []*gen.Entity) []*gen.Entity {
	out := make([]*gen.Entity, 0, len(entities))
	for _, e := range entities {
		if !e.IsLink {
			out = append(out, e)
		}
	}
	for _, e := range entities {
		if e.IsLink {
			out = append(out, e)
		}
	}
	return out
}

// GenerateDDL returns phase -> SQL: tables, then unique indexes, then foreign
// keys once every table exists. Every statement is idempotent except the
// foreign keys, whose duplicates ApplyDDL skips.
func GenerateDDL(entities []*gen.Entity) (map[string]string, error) {
	var tables, indexes, fks strings.Builder

	for _, e := range Ordered(entities) {
		var cols, pks []string
		for _, f := range e.Fields {
			if !f.Column() {
				continue
			}
			null := "null"
			if !f.Nullable {
				null = "not null"
			}
			cols = append(cols, fmt.Sprintf("%s %s %s%s", sqlIdent(f.Name), mapType(f), null, defaultClause(f)))
			if f.PrimaryKey {
				pks = append(pks, sqlIdent(f.Name))
			}
		}
		if len(cols) == 0 {
			return nil, fmt.Errorf("%s: no columns", e.Name)
		}
		if len(pks) > 0 {
			cols = append(cols, "primary key ("+strings.Join(pks, ", ")+")")
		}
		fmt.Fprintf(&tables, "create table if not exists %s (\n  %s\n);\n", sqlIdent(e.Table), strings.Join(cols, ",\n  "))

		for _, f := range e.Fields {
			if f.Column() && f.Unique && !f.PrimaryKey {
				fmt.Fprintf(&indexes, "create unique index if not exists %s on %s (%s);\n",
					sqlIdent(e.Table+"_"+f.Name+"_uq"), sqlIdent(e.Table), sqlIdent(f.Name))
			}
		}

		for _, f := range e.Fields {
			if f.ForeignKey == "" {
				continue
			}
			refTbl, refCol, ok := strings.Cut(f.ForeignKey, ".")
			if !ok || refTbl == "" || refCol == "" {
				return nil, fmt.Errorf("%s.%s: foreign_key %q is not table.column", e.Name, f.Name, f.ForeignKey)
			}
			fmt.Fprintf(&fks, "alter table %s add constraint %s foreign key (%s) references %s (%s) on delete %s;\n",
				sqlIdent(e.Table), sqlIdent(e.Table+"_"+f.Name+"_fk"), sqlIdent(f.Name),
				sqlIdent(refTbl), sqlIdent(refCol), onDeletePolicy(e, f))
		}
	}

	out := map[string]string{PhaseTables: tables.String()}
	if indexes.Len() > 0 {
		out[PhaseIndexes] = indexes.String()
	}
	if fks.Len() > 0 {
		out[PhaseForeignKeys] = fks.String()
	}
	return out, nil
}

// GenerateDropDDL drops the tables in reverse creation order.
func GenerateDropDDL(entities []*gen.Entity) string {
	ordered := Ordered(entities)
	var b strings.Builder
	for i := len(ordered) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "drop table if exists %s cascade;\n", sqlIdent(ordered[i].Table))
	}
	return b.String()
}
