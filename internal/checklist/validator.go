package checklist

import (
	"fmt"

	"completion-planner/internal/catalog"
	"completion-planner/internal/patch"
)

// ValidateCheck reports whether chk's requirement holds against snapshot, the
// output of State.Snapshot. It returns the requirement when it does not hold
// and nil when it does.
//
// Consumable fields are not compared against the raw collected amount. For
// each one the requirement names, the amount still available (collected minus
// spent) must cover the requirement while the check is unchecked, and must not
// be negative once it is checked, since its own cost is then already counted
// as spent. Every other field goes through patch.Compare.
func ValidateCheck(rules catalog.Rules, snapshot patch.Map, chk catalog.Check, checked bool) (patch.Map, error) {
	if len(chk.Requires) == 0 {
		return nil, nil
	}

	thresholds := rules.Thresholds()
	rest := make(patch.Map, len(chk.Requires))
	for k, v := range chk.Requires {
		rest[k] = v
	}
	for _, res := range thresholds {
		delete(rest, res.Field)
	}

	ok, err := patch.Compare(snapshot, rest)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", chk.Name, err)
	}
	if ok {
		ok, err = thresholdsMet(thresholds, snapshot, chk.Requires, checked)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", chk.Name, err)
		}
	}
	if ok {
		return nil, nil
	}
	return chk.Requires.Clone(), nil
}

func thresholdsMet(thresholds []catalog.Resource, snapshot, requires patch.Map, checked bool) (bool, error) {
	for _, res := range thresholds {
		v, ok := requires[res.Field]
		if !ok {
			continue
		}
		need, ok := v.Num()
		if !ok {
			return false, fmt.Errorf("%s: %w: %s threshold", res.Field, patch.ErrIncomparable, v.Kind())
		}

		collected, _ := snapshot.Number(res.Field)
		spent, _ := snapshot.Number(res.Required)
		floor := need
		if checked {
			floor = 0
		}
		if collected-spent < floor {
			return false, nil
		}
	}
	return true, nil
}

// ValidateChecks returns the requirement of every checked check in st that is
// currently unmet. Unchecked checks are never reported.
func ValidateChecks(c *catalog.Catalog, st State) (Violations, error) {
	rules := c.Rules()
	snapshot := st.Snapshot()

	out := Violations{}
	for _, sec := range c.Sections {
		for _, chk := range sec.Checks {
			if !st.Checks[sec.Name][chk.Name] {
				continue
			}
			req, err := ValidateCheck(rules, snapshot, chk, true)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", sec.Name, err)
			}
			if req == nil {
				continue
			}
			if out[sec.Name] == nil {
				out[sec.Name] = map[string]patch.Map{}
			}
			out[sec.Name][chk.Name] = req
		}
	}
	return out, nil
}
