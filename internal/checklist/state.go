package checklist

import (
	"completion-planner/internal/catalog"
	"completion-planner/internal/patch"
)

// NewState returns the initial state of c: every counter at its declared
// start value and every check unchecked.
func NewState(c *catalog.Catalog) State {
	st := State{
		Counters: c.InitialState(),
		Checks:   make(map[string]map[string]bool, len(c.Sections)),
	}
	for _, sec := range c.Sections {
		flags := make(map[string]bool, len(sec.Checks))
		for _, chk := range sec.Checks {
			flags[chk.Name] = false
		}
		st.Checks[sec.Name] = flags
	}
	return st
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := State{
		Counters: s.Counters.Clone(),
		Checks:   make(map[string]map[string]bool, len(s.Checks)),
	}
	for sec, flags := range s.Checks {
		cp := make(map[string]bool, len(flags))
		for name, v := range flags {
			cp[name] = v
		}
		out.Checks[sec] = cp
	}
	return out
}

// Snapshot renders s in the shape requirements are written against: the
// counters plus checks.<section>.<name>.checked.
func (s State) Snapshot() patch.Map {
	snap := s.Counters.Clone()
	sections := make(patch.Map, len(s.Checks))
	for sec, flags := range s.Checks {
		checks := make(patch.Map, len(flags))
		for name, v := range flags {
			checks[name] = patch.Nested(patch.Map{catalog.CheckedKey: patch.Bool(v)})
		}
		sections[sec] = patch.Nested(checks)
	}
	snap[catalog.ChecksKey] = patch.Nested(sections)
	return snap
}

// Merge overlays saved on the initial state of c. Counters and checks present
// in saved win; anything saved lacks, such as checks added to the catalog
// since, keeps its initial value. Entries the catalog no longer knows, or
// counters whose kind changed, are dropped.
func Merge(c *catalog.Catalog, saved State) State {
	st := NewState(c)
	for key, v := range saved.Counters {
		if cur, ok := st.Counters[key]; ok && cur.Kind() == v.Kind() {
			st.Counters[key] = v.Clone()
		}
	}
	for sec, flags := range saved.Checks {
		known, ok := st.Checks[sec]
		if !ok {
			continue
		}
		for name, v := range flags {
			if _, ok := known[name]; ok {
				known[name] = v
			}
		}
	}
	return st
}
