package dsl

// Catalog is the set of entities active in one generation run, in manifest order.
// It is built before any type is compiled so that forward references can be
// checked against every entity name.
type Catalog struct {
	Entities []*Entity
	byName   map[string]*Entity
}

// NewCatalog indexes entities by name. On duplicate names the first one wins;
// Lint reports the rest.
func NewCatalog(entities []*Entity) *Catalog {
	c := &Catalog{
		Entities: entities,
		byName:   make(map[string]*Entity, len(entities)),
	}
	for _, e := range entities {
		if e == nil {
			continue
		}
		if _, ok := c.byName[e.Name]; !ok {
			c.byName[e.Name] = e
		}
	}
	return c
}

func (c *Catalog) Lookup(name string) (*Entity, bool) {
	if c == nil {
		return nil, false
	}
	e, ok := c.byName[name]
	return e, ok
}

func (c *Catalog) Has(name string) bool {
	_, ok := c.Lookup(name)
	return ok
}

// Names returns entity names in manifest order.
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.Entities))
	for _, e := range c.Entities {
		out = append(out, e.Name)
	}
	return out
}
