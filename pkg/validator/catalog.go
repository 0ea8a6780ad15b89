package validator

import "slices"

// Catalog is an immutable, ordered set of rules for one target shape.
// It is safe for concurrent use.
type Catalog struct {
	rules []Rule
}

// NewCatalog copies rules into a new catalog, keeping declaration order.
func NewCatalog(rules ...Rule) *Catalog {
	c := &Catalog{rules: make([]Rule, 0, len(rules))}
	for _, r := range rules {
		r.Profiles = slices.Clone(r.Profiles)
		r.Params = slices.Clone(r.Params)
		c.rules = append(c.rules, r)
	}
	return c
}

// RulesFor returns, in declaration order, every rule that applies to profile:
// rules tagged with it and rules without any profile. An unknown profile
// yields only the unconditional rules. The returned rules share their
// Profiles and Params with the catalog and must be treated as read-only.
func (c *Catalog) RulesFor(profile Profile) []Rule {
	out := make([]Rule, 0, len(c.rules))
	for _, r := range c.rules {
		if r.AppliesTo(profile) {
			out = append(out, r)
		}
	}
	return out
}

// Rules returns a deep copy of all rules in declaration order.
func (c *Catalog) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	for i, r := range c.rules {
		r.Profiles = slices.Clone(r.Profiles)
		r.Params = slices.Clone(r.Params)
		out[i] = r
	}
	return out
}

// Len returns the number of rules.
func (c *Catalog) Len() int {
	return len(c.rules)
}
