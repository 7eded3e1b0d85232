// dsl/lint.go
package dsl

import (
	"fmt"
	"strings"
)

// Issue codes.
const (
	IssueEmptyName            = "empty_name"
	IssueDuplicateEntity      = "duplicate_entity"
	IssueDuplicateField       = "duplicate_field"
	IssueDefaultConflict      = "default_conflict"
	IssueUnknownFactory       = "unknown_default_factory"
	IssueUnresolvedReference  = "unresolved_reference"
	IssueMissingBackPopulates = "missing_back_populates"
	IssueMissingLinkModel     = "missing_link_model"
	IssueDefaultType          = "default_type_mismatch"
	IssueNoSample             = "no_sample_value"
)

// Issue is a non-fatal diagnostic about the DSL.
type Issue struct {
	Entity  string `json:"entity"`
	Field   string `json:"field,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	loc := i.Entity
	if i.Field != "" {
		loc += "." + i.Field
	}
	return fmt.Sprintf("%s: %s (%s)", loc, i.Message, i.Code)
}

// DefaultFactories are the supported default-generation strategies.
var DefaultFactories = map[string]struct{}{"uuid4": {}, "now_utc": {}}

// Lint checks the structural contradictions that do not need type resolution.
// Type and relationship resolution is reported by the compiler.
func Lint(c *Catalog) []Issue {
	var issues []Issue
	seen := map[string]bool{}

	for _, e := range c.Entities {
		if strings.TrimSpace(e.Name) == "" {
			issues = append(issues, Issue{Entity: e.Source, Code: IssueEmptyName, Message: "entity has no name"})
			continue
		}
		if seen[e.Name] {
			issues = append(issues, Issue{
				Entity:  e.Name,
				Code:    IssueDuplicateEntity,
				Message: fmt.Sprintf("entity %q declared more than once (%s)", e.Name, e.Source),
			})
			continue
		}
		seen[e.Name] = true

		names := map[string]bool{}
		for _, f := range e.Fields {
			if strings.TrimSpace(f.Name) == "" {
				issues = append(issues, Issue{Entity: e.Name, Code: IssueEmptyName, Message: "field has no name"})
				continue
			}
			if names[f.Name] {
				issues = append(issues, Issue{
					Entity:  e.Name,
					Field:   f.Name,
					Code:    IssueDuplicateField,
					Message: "field declared more than once",
				})
			}
			names[f.Name] = true

			// default_factory and a literal default cannot both apply
			if f.DefaultFactory != "" && f.HasDefault() {
				issues = append(issues, Issue{
					Entity:  e.Name,
					Field:   f.Name,
					Code:    IssueDefaultConflict,
					Message: fmt.Sprintf("default %v conflicts with default_factory %s; the factory wins", f.Default, f.DefaultFactory),
				})
			}
			if f.DefaultFactory != "" {
				if _, ok := DefaultFactories[f.DefaultFactory]; !ok {
					issues = append(issues, Issue{
						Entity:  e.Name,
						Field:   f.Name,
						Code:    IssueUnknownFactory,
						Message: fmt.Sprintf("unknown default_factory %q (allowed: uuid4|now_utc)", f.DefaultFactory),
					})
				}
			}
		}
		for _, r := range e.Relationships {
			if names[r.Name] {
				issues = append(issues, Issue{
					Entity:  e.Name,
					Field:   r.Name,
					Code:    IssueDuplicateField,
					Message: "relationship name clashes with a field",
				})
			}
			names[r.Name] = true
		}
	}
	return issues
}
