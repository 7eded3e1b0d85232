package gen

import (
	"regexp"
	"strings"

	"github.com/dave/jennifer/jen"
)

const (
	uuidPkg   = "github.com/google/uuid"
	gormPkg   = "gorm.io/gorm"
	bcryptPkg = "golang.org/x/crypto/bcrypt"
)

// Scalar is a built-in DSL type.
type Scalar string

const (
	ScalarUUID     Scalar = "uuid"
	ScalarString   Scalar = "string"
	ScalarInteger  Scalar = "integer"
	ScalarFloat    Scalar = "float"
	ScalarBoolean  Scalar = "boolean"
	ScalarDatetime Scalar = "datetime"
	ScalarEmail    Scalar = "emailstr"
)

var scalars = map[string]Scalar{
	"uuid":     ScalarUUID,
	"string":   ScalarString,
	"str":      ScalarString,
	"text":     ScalarString,
	"integer":  ScalarInteger,
	"int":      ScalarInteger,
	"float":    ScalarFloat,
	"boolean":  ScalarBoolean,
	"bool":     ScalarBoolean,
	"datetime": ScalarDatetime,
	"emailstr": ScalarEmail,
}

var listRe = regexp.MustCompile(`(?i)^list\[\s*(.+?)\s*\]$`)

// TargetType is the Go shape of a DSL type token. Exactly one of Scalar and
// Entity is set; Entity marks a forward reference to another entity.
type TargetType struct {
	Token  string
	Scalar Scalar
	Entity string
	List   bool
}

// MapType maps a DSL type token. It never fails: tokens outside the scalar set
// are forward references to an entity of that name.
func MapType(token string) TargetType {
	tok := strings.TrimSpace(token)
	if m := listRe.FindStringSubmatch(tok); m != nil {
		inner := MapType(m[1])
		inner.Token = tok
		inner.List = true
		return inner
	}
	if s, ok := scalars[strings.ToLower(tok)]; ok {
		return TargetType{Token: tok, Scalar: s}
	}
	return TargetType{Token: tok, Entity: tok}
}

func (t TargetType) IsEntity() bool { return t.Entity != "" }

// IsText reports whether values are carried as Go strings.
func (t TargetType) IsText() bool {
	return t.Scalar == ScalarString || t.Scalar == ScalarEmail
}

// String renders the Go type expression, for diagnostics.
func (t TargetType) String() string {
	var elem string
	switch t.Scalar {
	case ScalarUUID:
		elem = "uuid.UUID"
	case ScalarString, ScalarEmail:
		elem = "string"
	case ScalarInteger:
		elem = "int64"
	case ScalarFloat:
		elem = "float64"
	case ScalarBoolean:
		elem = "bool"
	case ScalarDatetime:
		elem = "time.Time"
	default:
		elem = t.Entity
	}
	switch {
	case t.List:
		return "[]" + elem
	case t.IsEntity():
		return "*" + elem
	}
	return elem
}

func (t TargetType) elem() *jen.Statement {
	switch t.Scalar {
	case ScalarUUID:
		return jen.Qual(uuidPkg, "UUID")
	case ScalarString, ScalarEmail:
		return jen.String()
	case ScalarInteger:
		return jen.Int64()
	case ScalarFloat:
		return jen.Float64()
	case ScalarBoolean:
		return jen.Bool()
	case ScalarDatetime:
		return jen.Qual("time", "Time")
	}
	return jen.Id(t.Entity)
}

// Code is the value type: []T for lists, *Entity for a single forward reference,
// T for scalars.
func (t TargetType) Code() *jen.Statement {
	switch {
	case t.List:
		return jen.Index().Add(t.elem())
	case t.IsEntity():
		return jen.Op("*").Id(t.Entity)
	}
	return t.elem()
}

// Pointer is the optional form of the type. Slices and entity references are
// already nillable and are returned unchanged.
func (t TargetType) Pointer() *jen.Statement {
	if t.List || t.IsEntity() {
		return t.Code()
	}
	switch t.Scalar {
	case ScalarUUID:
		return jen.Op("*").Qual(uuidPkg, "UUID")
	case ScalarDatetime:
		return jen.Op("*").Qual("time", "Time")
	case ScalarString, ScalarEmail:
		return jen.Op("*").String()
	case ScalarInteger:
		return jen.Op("*").Int64()
	case ScalarFloat:
		return jen.Op("*").Float64()
	case ScalarBoolean:
		return jen.Op("*").Bool()
	}
	return jen.Op("*").Add(t.elem())
}

// Nillable reports whether the value type itself can be nil.
func (t TargetType) Nillable() bool { return t.List || t.IsEntity() }
