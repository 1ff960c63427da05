package catalog

import (
	"completion-planner/internal/patch"
)

// Rules returns the game specific rules of c.
func (c *Catalog) Rules() Rules {
	return c.rules
}

// InitialState returns a fresh copy of the counters a new checklist starts with.
func (c *Catalog) InitialState() patch.Map {
	return c.state.Clone()
}

// Section looks up a section by name.
func (c *Catalog) Section(name string) (Section, bool) {
	i, ok := c.index[name]
	if !ok {
		return Section{}, false
	}
	return c.Sections[i], true
}

// Check looks up a check by section and name.
func (c *Catalog) Check(section, name string) (Check, bool) {
	sec, ok := c.Section(section)
	if !ok {
		return Check{}, false
	}
	return sec.Check(name)
}

// Size returns the total number of checks.
func (c *Catalog) Size() int {
	n := 0
	for _, sec := range c.Sections {
		n += len(sec.Checks)
	}
	return n
}

// Check looks up a check by name.
func (s Section) Check(name string) (Check, bool) {
	for _, chk := range s.Checks {
		if chk.Name == name {
			return chk, true
		}
	}
	return Check{}, false
}
