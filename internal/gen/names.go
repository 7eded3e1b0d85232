package gen

import (
	"strings"

	"github.com/go-openapi/inflect"
)

var initialisms = map[string]string{
	"id":   "ID",
	"uuid": "UUID",
	"url":  "URL",
	"uri":  "URI",
	"api":  "API",
	"http": "HTTP",
	"json": "JSON",
	"sql":  "SQL",
	"ip":   "IP",
	"html": "HTML",
}

// GoName converts a DSL identifier (snake_case or PascalCase) into an exported
// Go identifier, keeping common initialisms upper-case: avatar_url -> AvatarURL.
func GoName(name string) string {
	var b strings.Builder
	for _, w := range strings.Split(inflect.Underscore(name), "_") {
		if w == "" {
			continue
		}
		if up, ok := initialisms[w]; ok {
			b.WriteString(up)
			continue
		}
		b.WriteString(inflect.Capitalize(w))
	}
	return b.String()
}

// VarName is the lower-camel local variable name for an entity: FamilyInvitation -> familyInvitation.
func VarName(entity string) string {
	return inflect.CamelizeDownFirst(inflect.Underscore(entity))
}

// PluralName pluralizes an entity name for collection handlers: Family -> Families.
func PluralName(entity string) string {
	return inflect.Pluralize(entity)
}

// FileName is the snake_case base for generated files: FamilyInvitation -> family_invitation.
func FileName(entity string) string {
	return inflect.Underscore(entity)
}

// InputName is the plaintext input name for a secret field: hashed_password -> password.
func InputName(field string) string {
	if s := strings.TrimPrefix(field, "hashed_"); s != "" {
		return s
	}
	return field
}
