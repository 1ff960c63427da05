package catalog

import (
	"errors"
	"fmt"
	"strings"

	"completion-planner/internal/patch"
)

const (
	// ChecksKey is the requirement key under which check flags are nested.
	ChecksKey = "checks"
	// CheckedKey is the per-check flag inside ChecksKey.
	CheckedKey = "checked"
	// PercentField is the completion counter every catalog must declare.
	PercentField = "percent"
)

func validate(c *Catalog) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidCatalog}, args...)...))
	}

	if !c.Game.Valid() {
		fail("unknown game %q", c.Game)
	}
	if _, ok := c.state[PercentField].Num(); !ok {
		fail("state must declare a numeric %q", PercentField)
	}
	if _, ok := c.state[ChecksKey]; ok {
		fail("state must not declare reserved field %q", ChecksKey)
	}

	for _, res := range c.rules.ResourceList {
		if _, ok := c.state[res.Field].Num(); !ok {
			fail("resource %q is not a numeric state field", res.Field)
		}
		if !strings.Contains(res.Label, "{n}") {
			fail("resource %q label %q has no {n} placeholder", res.Field, res.Label)
		}
		if res.Required == "" {
			if res.Consumable {
				fail("consumable resource %q has no required field", res.Field)
			}
			continue
		}
		if _, ok := c.state.Number(res.Required); !ok {
			fail("resource %q required field %q is not numeric", res.Field, res.Required)
		}
	}

	for _, t := range c.rules.TierList {
		sec, ok := c.Section(t.Section)
		if !ok {
			fail("tier references unknown section %q", t.Section)
			continue
		}
		if _, ok := c.state[t.Counter].Num(); !ok {
			fail("tier %q counter %q is not a numeric state field", t.Section, t.Counter)
		}
		if _, ok := c.state[t.Field].Num(); !ok {
			fail("tier %q field %q is not a numeric state field", t.Section, t.Field)
		}
		if len(t.Table) < len(sec.Checks) {
			fail("tier %q table has %d entries for %d checks", t.Section, len(t.Table), len(sec.Checks))
		}
	}

	for _, sec := range c.Sections {
		if sec.Name == "" {
			fail("section without a name")
		}
		if sec.Verb == "" {
			fail("section %q has no verb", sec.Name)
		}

		seen := make(map[string]bool, len(sec.Checks))
		for _, chk := range sec.Checks {
			if chk.Name == "" {
				fail("section %q has a check without a name", sec.Name)
				continue
			}
			if seen[chk.Name] {
				fail("section %q has duplicate check %q", sec.Name, chk.Name)
			}
			seen[chk.Name] = true

			if err := patch.Apply(c.state.Clone(), chk.Reward, patch.Add); err != nil {
				fail("%s/%s reward: %v", sec.Name, chk.Name, err)
			}
			for _, err := range validateRequires(c, chk.Requires) {
				fail("%s/%s requires: %v", sec.Name, chk.Name, err)
			}
		}
	}

	return errors.Join(errs...)
}

func validateRequires(c *Catalog, req patch.Map) []error {
	var errs []error
	for _, key := range req.Keys() {
		val := req[key]

		if key != ChecksKey {
			if _, ok := c.rules.resource(key); !ok {
				errs = append(errs, fmt.Errorf("field %q has no resource label", key))
			}
			if _, ok := val.Num(); !ok {
				errs = append(errs, fmt.Errorf("field %q must be a number, got %s", key, val.Kind()))
			}
			continue
		}

		sections, ok := val.Fields()
		if !ok {
			errs = append(errs, fmt.Errorf("%q must be a map", ChecksKey))
			continue
		}
		for _, secName := range sections.Keys() {
			sec, ok := c.Section(secName)
			if !ok {
				errs = append(errs, fmt.Errorf("unknown section %q", secName))
				continue
			}
			checks, ok := sections[secName].Fields()
			if !ok {
				errs = append(errs, fmt.Errorf("section %q must be a map", secName))
				continue
			}
			for _, name := range checks.Keys() {
				if _, ok := sec.Check(name); !ok {
					errs = append(errs, fmt.Errorf("unknown check %s/%s", secName, name))
					continue
				}
				flags, ok := checks[name].Fields()
				if !ok {
					errs = append(errs, fmt.Errorf("check %s/%s must be a map", secName, name))
					continue
				}
				for _, flag := range flags.Keys() {
					if _, isBool := flags[flag].Flag(); flag != CheckedKey || !isBool {
						errs = append(errs, fmt.Errorf("check %s/%s: only a boolean %q is allowed", secName, name, CheckedKey))
					}
				}
			}
		}
	}
	return errs
}
