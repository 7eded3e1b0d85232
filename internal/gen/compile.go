package gen

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"

	"caramello/internal/dsl"
)

// Role classifies a field for DTO projection.
type Role int

const (
	RoleBusiness Role = iota
	RoleInternalID
	RoleExternalID
	RoleTimestamp
)

// DefaultKind is the resolved default strategy of a field.
// Precedence: factory > literal > absent (nullable) > none (required).
type DefaultKind int

const (
	DefaultNone DefaultKind = iota
	DefaultAbsent
	DefaultLiteral
	DefaultFactory
)

const legacySecretName = "hashed_password"

// Field is a fully-resolved field descriptor.
type Field struct {
	Name        string
	GoName      string
	Description string
	Type        TargetType
	PrimaryKey  bool
	Unique      bool
	Nullable    bool
	MaxLength   int
	ForeignKey  string

	Default DefaultKind
	Literal any // string, int64, float64 or bool when Default == DefaultLiteral
	Factory string

	Secret      bool
	InputName   string
	InputGoName string
	Role        Role
}

// System fields are never accepted as input: keys, the external identifier
// and timestamps. Storage (or a create hook) assigns them.
func (f *Field) System() bool {
	return f.PrimaryKey || f.Role == RoleExternalID || f.Role == RoleTimestamp
}

// Optional reports whether the field may be omitted on create.
func (f *Field) Optional() bool {
	return f.Nullable || f.Default == DefaultLiteral || f.Default == DefaultFactory
}

// Pointer reports whether the persisted field is a pointer.
func (f *Field) Pointer() bool { return f.Nullable && !f.Type.Nillable() }

// Column reports whether the field is a stored column rather than a nested entity.
func (f *Field) Column() bool { return !f.Type.IsEntity() }

// RelKind is the cardinality of a relationship.
type RelKind int

const (
	RelBelongsTo RelKind = iota
	RelHasMany
	RelManyToMany
)

func (k RelKind) String() string {
	switch k {
	case RelHasMany:
		return "has-many"
	case RelManyToMany:
		return "many-to-many"
	}
	return "belongs-to"
}

// Relationship is a resolved relationship descriptor.
type Relationship struct {
	Name          string
	GoName        string
	Type          TargetType
	Target        string
	BackPopulates string
	LinkModel     string
	LinkTable     string
	Kind          RelKind
	ForeignKey    string // Go field holding the key, when derivable
}

// Entity is a compiled entity, ready for emission.
type Entity struct {
	Name          string
	Table         string
	Description   string
	IsLink        bool
	Source        string
	Fields        []*Field
	Relationships []*Relationship

	ExternalID *Field
	Key        *Field // path identifier: the external ID, else the single primary key

	Var        string
	Plural     string
	Collection string
}

// ReadFields are the fields of the public view: every column except secrets
// and, when an external identifier exists, the internal key.
func (e *Entity) ReadFields() []*Field {
	var out []*Field
	for _, f := range e.Fields {
		if !f.Column() || f.Secret {
			continue
		}
		if f.Role == RoleInternalID && e.ExternalID != nil {
			continue
		}
		out = append(out, f)
	}
	return out
}

// InputFields is the Create/Update domain: business columns only.
func (e *Entity) InputFields() []*Field {
	var out []*Field
	for _, f := range e.Fields {
		if f.Column() && !f.System() {
			out = append(out, f)
		}
	}
	return out
}

// ManyToMany returns the relationships that go through a link model.
func (e *Entity) ManyToMany() []*Relationship {
	var out []*Relationship
	for _, r := range e.Relationships {
		if r.Kind == RelManyToMany {
			out = append(out, r)
		}
	}
	return out
}

// Compile resolves one entity against the catalog of the run. The returned
// entity is always usable; issues describe what could not be resolved.
func Compile(e *dsl.Entity, cat *dsl.Catalog) (*Entity, []dsl.Issue) {
	var issues []dsl.Issue
	report := func(field, code, format string, args ...any) {
		issues = append(issues, dsl.Issue{Entity: e.Name, Field: field, Code: code, Message: fmt.Sprintf(format, args...)})
	}

	out := &Entity{
		Name:        e.Name,
		Table:       e.Table(),
		Description: oneLine(e.Description),
		IsLink:      e.IsLinkModel,
		Source:      e.Source,
		Var:         VarName(e.Name),
		Plural:      PluralName(e.Name),
	}
	out.Collection = "/" + out.Table

	for _, df := range e.Fields {
		f := compileField(df, report)
		if f.Type.IsEntity() && !cat.Has(f.Type.Entity) {
			report(df.Name, dsl.IssueUnresolvedReference, "type %q is neither a scalar nor an entity of the manifest", f.Type.Token)
		}
		out.Fields = append(out.Fields, f)
	}

	var pks []*Field
	for _, f := range out.Fields {
		switch {
		case f.PrimaryKey:
			if f.ForeignKey == "" {
				f.Role = RoleInternalID
			}
			pks = append(pks, f)
		case out.ExternalID == nil && f.Type.Scalar == ScalarUUID && !f.Type.List && f.Unique:
			f.Role = RoleExternalID
			out.ExternalID = f
		case f.Name == "created_at" || f.Name == "updated_at":
			f.Role = RoleTimestamp
		}
	}
	switch {
	case out.ExternalID != nil:
		out.Key = out.ExternalID
	case len(pks) == 1:
		out.Key = pks[0]
	}

	for _, dr := range e.Relationships {
		out.Relationships = append(out.Relationships, compileRelationship(e, dr, cat, report))
	}
	return out, issues
}

func compileField(df dsl.Field, report func(field, code, format string, args ...any)) *Field {
	t := MapType(df.Type)
	f := &Field{
		Name:        df.Name,
		GoName:      GoName(df.Name),
		Description: oneLine(df.Description),
		Type:        t,
		PrimaryKey:  df.PrimaryKey,
		Unique:      df.Unique,
		Nullable:    df.DeclaredNullable(),
		MaxLength:   df.MaxLength,
		ForeignKey:  strings.TrimSpace(df.ForeignKey),
		InputName:   df.Name,
	}
	// a primary key is NOT NULL in storage whatever the document says
	if f.PrimaryKey {
		f.Nullable = false
	}

	if (df.Sensitive || df.Name == legacySecretName) && t.IsText() && !t.List {
		f.Secret = true
		f.InputName = InputName(df.Name)
	}
	f.InputGoName = GoName(f.InputName)

	factory := strings.TrimSpace(df.DefaultFactory)
	if factory != "" && !factoryFits(factory, t) {
		if _, known := dsl.DefaultFactories[factory]; known {
			report(df.Name, dsl.IssueDefaultType, "default_factory %s does not apply to type %s", factory, t.Token)
		}
		factory = ""
	}

	switch {
	case factory != "":
		f.Default, f.Factory = DefaultFactory, factory
	case df.HasDefault():
		lit, err := literal(t, df.Default)
		if err == nil {
			f.Default, f.Literal = DefaultLiteral, lit
			break
		}
		report(df.Name, dsl.IssueDefaultType, "default %v: %v", df.Default, err)
		f.Default = implicitDefault(f)
	default:
		f.Default = implicitDefault(f)
	}
	return f
}

func implicitDefault(f *Field) DefaultKind {
	if f.Nullable {
		return DefaultAbsent
	}
	return DefaultNone
}

func factoryFits(factory string, t TargetType) bool {
	if t.List || t.IsEntity() {
		return false
	}
	switch factory {
	case "uuid4":
		return t.Scalar == ScalarUUID || t.Scalar == ScalarString
	case "now_utc":
		return t.Scalar == ScalarDatetime
	}
	return false
}

func literal(t TargetType, v any) (any, error) {
	if t.List || t.IsEntity() {
		return nil, fmt.Errorf("literal defaults are not supported for %s", t.Token)
	}
	switch t.Scalar {
	case ScalarString, ScalarEmail:
		return cast.ToStringE(v)
	case ScalarInteger:
		return cast.ToInt64E(v)
	case ScalarFloat:
		return cast.ToFloat64E(v)
	case ScalarBoolean:
		return cast.ToBoolE(v)
	}
	return nil, fmt.Errorf("literal defaults are not supported for %s", t.Scalar)
}

func compileRelationship(e *dsl.Entity, dr dsl.Relationship, cat *dsl.Catalog, report func(field, code, format string, args ...any)) *Relationship {
	t := MapType(dr.Type)
	r := &Relationship{
		Name:          dr.Name,
		GoName:        GoName(dr.Name),
		Type:          t,
		Target:        t.Entity,
		BackPopulates: strings.TrimSpace(dr.BackPopulates),
		LinkModel:     strings.TrimSpace(dr.LinkModel),
	}

	target, found := cat.Lookup(t.Entity)
	if !t.IsEntity() {
		report(dr.Name, dsl.IssueUnresolvedReference, "relationship type %q is not an entity", t.Token)
	} else if !found {
		report(dr.Name, dsl.IssueUnresolvedReference, "relationship target %q is not an entity of the manifest", t.Entity)
	}

	switch {
	case r.LinkModel != "":
		r.Kind = RelManyToMany
		if link, ok := cat.Lookup(r.LinkModel); ok {
			r.LinkTable = link.Table()
		} else {
			r.LinkTable = strings.ToLower(r.LinkModel)
			report(dr.Name, dsl.IssueUnresolvedReference, "link_model %q is not an entity of the manifest", r.LinkModel)
		}
	case t.List:
		r.Kind = RelHasMany
		if r.BackPopulates == "" {
			report(dr.Name, dsl.IssueMissingBackPopulates, "one-to-many relationship needs back_populates")
			break
		}
		if !found {
			break
		}
		if inv, ok := target.Relationship(r.BackPopulates); ok && MapType(inv.Type).List {
			report(dr.Name, dsl.IssueMissingLinkModel, "list on both sides (%s.%s) needs a link_model", target.Name, inv.Name)
		}
		if fk, ok := target.Field(r.BackPopulates + "_id"); ok {
			r.ForeignKey = GoName(fk.Name)
		}
	default:
		r.Kind = RelBelongsTo
		if fk, ok := e.Field(r.Name + "_id"); ok {
			r.ForeignKey = GoName(fk.Name)
		}
	}
	return r
}

func oneLine(s string) string { return strings.Join(strings.Fields(s), " ") }
