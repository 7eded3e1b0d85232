package dsl

import "strings"

// Entity describes one entity document.
type Entity struct {
	Name          string         `yaml:"name"`
	TableName     string         `yaml:"table_name"`
	Description   string         `yaml:"description"`
	IsLinkModel   bool           `yaml:"is_link_model"`
	Fields        []Field        `yaml:"fields"`
	Relationships []Relationship `yaml:"relationships"`

	// Source is the document filename relative to the entities directory.
	Source string `yaml:"-"`
}

// Field describes one column of an entity.
type Field struct {
	Name           string `yaml:"name"`
	Type           string `yaml:"type"` // uuid, string, integer, float, boolean, datetime, emailstr, List[...] or an entity name
	Description    string `yaml:"description"`
	PrimaryKey     bool   `yaml:"primary_key"`
	Unique         bool   `yaml:"unique"`
	Nullable       *bool  `yaml:"nullable"` // nil = true
	MaxLength      int    `yaml:"max_length"`
	ForeignKey     string `yaml:"foreign_key"` // table.column
	Default        any    `yaml:"default"`
	DefaultFactory string `yaml:"default_factory"` // uuid4 | now_utc
	Sensitive      bool   `yaml:"sensitive"`
}

// Relationship describes a navigation property between entities.
type Relationship struct {
	Name          string `yaml:"name"`
	Type          string `yaml:"type"`
	BackPopulates string `yaml:"back_populates"`
	LinkModel     string `yaml:"link_model"`
}

// Table returns the declared table name, or lowercase(name) when absent.
func (e *Entity) Table() string {
	if t := strings.TrimSpace(e.TableName); t != "" {
		return t
	}
	return strings.ToLower(e.Name)
}

// Field looks up a field by name.
func (e *Entity) Field(name string) (Field, bool) {
	for _, f := range e.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Relationship looks up a relationship by name.
func (e *Entity) Relationship(name string) (Relationship, bool) {
	for _, r := range e.Relationships {
		if r.Name == name {
			return r, true
		}
	}
	return Relationship{}, false
}

// DeclaredNullable reports the field's own nullable flag (default true).
// Primary-key forcing happens in the compiler.
func (f Field) DeclaredNullable() bool {
	if f.Nullable == nil {
		return true
	}
	return *f.Nullable
}

// HasDefault reports whether a literal default was declared.
func (f Field) HasDefault() bool { return f.Default != nil }
