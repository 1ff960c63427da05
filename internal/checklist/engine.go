package checklist

import (
	"fmt"
	"sync"

	"completion-planner/internal/catalog"
	"completion-planner/internal/patch"
)

// Engine owns the state of one game's checklist. All methods are safe for
// concurrent use; each mutation runs to completion under the engine lock and
// either applies fully or leaves the state untouched.
type Engine struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	rules   catalog.Rules
	state   State
}

// New returns an engine holding the initial state of c.
func New(c *catalog.Catalog) *Engine {
	return &Engine{
		catalog: c,
		rules:   c.Rules(),
		state:   NewState(c),
	}
}

func (e *Engine) Game() catalog.Game        { return e.catalog.Game }
func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

// State returns a copy of the current state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

// Restore replaces the current state with saved merged over the initial state.
func (e *Engine) Restore(saved State) {
	st := Merge(e.catalog, saved)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = st
}

// Percent returns the current completion percentage.
func (e *Engine) Percent() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	n, _ := e.state.Counters.Number(catalog.PercentField)
	return n
}

// Checked reports whether a check is currently checked.
func (e *Engine) Checked(section, name string) (bool, error) {
	if _, _, err := e.lookup(section, name); err != nil {
		return false, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Checks[section][name], nil
}

// Toggle flips a check and applies or reverses its reward. It returns the new
// checked value.
func (e *Engine) Toggle(section, name string) (bool, error) {
	sec, chk, err := e.lookup(section, name)
	if err != nil {
		return false, err
	}

	var checked bool
	err = e.mutate(func(st *State) error {
		checked = !st.Checks[section][name]
		_, err := e.set(st, sec, chk, checked)
		return err
	})
	return checked, err
}

// Set drives a check to checked, applying or reversing its reward only when
// the flag actually changes.
func (e *Engine) Set(section, name string, checked bool) (bool, error) {
	sec, chk, err := e.lookup(section, name)
	if err != nil {
		return false, err
	}

	var changed bool
	err = e.mutate(func(st *State) error {
		changed, err = e.set(st, sec, chk, checked)
		return err
	})
	return changed, err
}

// CheckAll checks every check of section, or of every section when section is
// empty. It returns how many checks changed.
func (e *Engine) CheckAll(section string) (int, error) {
	sections, err := e.sections(section)
	if err != nil {
		return 0, err
	}

	changed := 0
	err = e.mutate(func(st *State) error {
		for _, sec := range sections {
			for _, chk := range sec.Checks {
				ok, err := e.set(st, sec, chk, true)
				if err != nil {
					return err
				}
				if ok {
					changed++
				}
			}
		}
		return nil
	})
	return changed, err
}

// Reset unchecks every check of section, reversing each reward. With an empty
// section the whole state, monotonic fields included, goes back to the
// initial state.
func (e *Engine) Reset(section string) error {
	if section == "" {
		st := NewState(e.catalog)

		e.mu.Lock()
		defer e.mu.Unlock()
		e.state = st
		return nil
	}

	sections, err := e.sections(section)
	if err != nil {
		return err
	}
	return e.mutate(func(st *State) error {
		for _, chk := range sections[0].Checks {
			if _, err := e.set(st, sections[0], chk, false); err != nil {
				return err
			}
		}
		return nil
	})
}

// SetFromSaveFile drives every check listed in sf to its imported value. Names
// are validated before anything is applied. Checks are visited in catalog
// order so tiered rewards are granted per check exactly as Set would.
func (e *Engine) SetFromSaveFile(sf SaveFile) (int, error) {
	if sf.Game != e.catalog.Game {
		return 0, fmt.Errorf("%w: %q into %q", ErrGameMismatch, sf.Game, e.catalog.Game)
	}
	for secName, flags := range sf.Sections {
		for name := range flags {
			if _, _, err := e.lookup(secName, name); err != nil {
				return 0, err
			}
		}
	}

	changed := 0
	err := e.mutate(func(st *State) error {
		for _, sec := range e.catalog.Sections {
			flags, ok := sf.Sections[sec.Name]
			if !ok {
				continue
			}
			for _, chk := range sec.Checks {
				want, ok := flags[chk.Name]
				if !ok {
					continue
				}
				ok, err := e.set(st, sec, chk, want)
				if err != nil {
					return err
				}
				if ok {
					changed++
				}
			}
		}
		return nil
	})
	return changed, err
}

// ValidateCheck evaluates a single check against the current state, whether
// or not it is checked. It returns the unmet requirement, or nil.
func (e *Engine) ValidateCheck(section, name string) (patch.Map, error) {
	_, chk, err := e.lookup(section, name)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return ValidateCheck(e.rules, e.state.Snapshot(), chk, e.state.Checks[section][name])
}

// ValidateChecks returns every checked check whose requirement is unmet.
func (e *Engine) ValidateChecks() (Violations, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return ValidateChecks(e.catalog, e.state)
}

// Balances reports every resource the catalog labels.
func (e *Engine) Balances() []Balance {
	e.mu.Lock()
	defer e.mu.Unlock()
	return balances(e.rules, e.state.Counters)
}

// Progress summarises the current state.
func (e *Engine) Progress() (Progress, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	violations, err := ValidateChecks(e.catalog, e.state)
	if err != nil {
		return Progress{}, err
	}

	p := Progress{Total: e.catalog.Size(), Problems: violations.Len()}
	p.Percent, _ = e.state.Counters.Number(catalog.PercentField)
	for _, flags := range e.state.Checks {
		for _, v := range flags {
			if v {
				p.Checked++
			}
		}
	}
	return p, nil
}

// mutate runs fn against a copy of the state and commits it only on success.
func (e *Engine) mutate(fn func(st *State) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.state.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	e.state = next
	return nil
}

// set moves one check to checked and folds its reward, then its tiered
// reward, into st. It is a no-op when the flag already has that value.
func (e *Engine) set(st *State, sec catalog.Section, chk catalog.Check, checked bool) (bool, error) {
	if st.Checks[sec.Name][chk.Name] == checked {
		return false, nil
	}
	st.Checks[sec.Name][chk.Name] = checked

	op := patch.Add
	if !checked {
		op = patch.Sub
	}
	if err := patch.Apply(st.Counters, chk.Reward, op); err != nil {
		return false, fmt.Errorf("%s/%s reward: %w", sec.Name, chk.Name, err)
	}
	if err := e.applyTier(st.Counters, sec.Name, op); err != nil {
		return false, fmt.Errorf("%s/%s tier: %w", sec.Name, chk.Name, err)
	}
	return true, nil
}

// applyTier grants or revokes the count-dependent bonus of section. It runs
// after the check's own reward has moved the counter, so the table entry is
// at count-1 when checking and at count when unchecking.
func (e *Engine) applyTier(counters patch.Map, section string, op patch.Op) error {
	tier, ok := e.rules.Tier(section)
	if !ok {
		return nil
	}

	count, _ := counters.Number(tier.Counter)
	idx := int(count)
	if op == patch.Add {
		idx--
	}
	if idx < 0 || idx >= len(tier.Table) {
		return fmt.Errorf("%w: %s count %v outside table of %d", patch.ErrShape, tier.Counter, count, len(tier.Table))
	}
	if tier.Table[idx] == 0 {
		return nil
	}
	return patch.Apply(counters, patch.Map{tier.Field: patch.Number(tier.Table[idx])}, op)
}

func (e *Engine) lookup(section, name string) (catalog.Section, catalog.Check, error) {
	sec, ok := e.catalog.Section(section)
	if !ok {
		return catalog.Section{}, catalog.Check{}, fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	chk, ok := sec.Check(name)
	if !ok {
		return catalog.Section{}, catalog.Check{}, fmt.Errorf("%w: %s/%s", ErrUnknownCheck, section, name)
	}
	return sec, chk, nil
}

func (e *Engine) sections(section string) ([]catalog.Section, error) {
	if section == "" {
		return e.catalog.Sections, nil
	}
	sec, ok := e.catalog.Section(section)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	return []catalog.Section{sec}, nil
}
