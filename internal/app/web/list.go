package web

import (
	"net/url"
	"strconv"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultLimit = 100
	MaxLimit     = 100
)

type SortKey struct {
	Column string
	Desc   bool
}

// ListParams is the paging and ordering of a list request.
type ListParams struct {
	Offset int
	Limit  int
	Sort   []SortKey
}

// ParseListParams reads offset, limit and sort from the query. Underscored
// aliases (_offset, _limit, _sort) are accepted. Invalid values fall back to
// the defaults; limit is clamped to MaxLimit.
func ParseListParams(q url.Values) ListParams {
	lp := ListParams{Limit: DefaultLimit}

	if v := first(q, "limit", "_limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			lp.Limit = min(n, MaxLimit)
		}
	}
	if v := first(q, "offset", "_offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			lp.Offset = n
		}
	}

	// sort=-created_at,full_name
	for _, p := range strings.Split(first(q, "sort", "_sort"), ",") {
		p = strings.TrimSpace(p)
		desc := strings.HasPrefix(p, "-")
		p = strings.TrimLeft(p, "+-")
		if p != "" {
			lp.Sort = append(lp.Sort, SortKey{Column: p, Desc: desc})
		}
	}
	return lp
}

func first(q url.Values, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(q.Get(k)); v != "" {
			return v
		}
	}
	return ""
}

// Scope applies the params to a query. Only sort keys naming one of columns
// are honored; the first column is the fallback order so pages are stable.
func (p ListParams) Scope(columns ...string) func(*gorm.DB) *gorm.DB {
	allowed := make(map[string]bool, len(columns))
	for _, c := range columns {
		allowed[c] = true
	}
	return func(db *gorm.DB) *gorm.DB {
		ordered := false
		for _, k := range p.Sort {
			if !allowed[k.Column] {
				continue
			}
			db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: k.Column}, Desc: k.Desc})
			ordered = true
		}
		if !ordered && len(columns) > 0 {
			db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: columns[0]}})
		}
		return db.Offset(p.Offset).Limit(p.Limit)
	}
}
