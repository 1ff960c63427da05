package checklist

import (
	"fmt"
	"strings"

	"completion-planner/internal/catalog"
	"completion-planner/internal/patch"
)

// FormatViolation renders an unmet requirement for display, for example
// "[Monarch Wings] requires [Crystal Heart] to be collected; [Broken Vessel] to be defeated".
// Resources are listed first in the order the catalog declares them, then
// checks grouped by section in catalog order.
func FormatViolation(c *catalog.Catalog, checkName string, req patch.Map) (string, error) {
	rules := c.Rules()
	var parts []string

	for _, res := range rules.Resources() {
		v, ok := req[res.Field]
		if !ok {
			continue
		}
		n, ok := v.Num()
		if !ok {
			return "", fmt.Errorf("%w: %s is a %s", ErrUnformattable, res.Field, v.Kind())
		}
		label, _ := rules.Label(res.Field, n)
		parts = append(parts, label)
	}

	for _, key := range req.Keys() {
		if key == catalog.ChecksKey {
			continue
		}
		if _, ok := rules.Label(key, 0); !ok {
			return "", fmt.Errorf("%w: field %q", ErrUnformattable, key)
		}
	}

	if v, ok := req[catalog.ChecksKey]; ok {
		sections, ok := v.Fields()
		if !ok {
			return "", fmt.Errorf("%w: %q is a %s", ErrUnformattable, catalog.ChecksKey, v.Kind())
		}
		for _, secName := range sections.Keys() {
			if _, ok := c.Section(secName); !ok {
				return "", fmt.Errorf("%w: section %q", ErrUnformattable, secName)
			}
		}

		var groups []string
		for _, sec := range c.Sections {
			checks, ok := sections[sec.Name].Fields()
			if !ok || len(checks) == 0 {
				continue
			}
			if sec.Verb == "" {
				return "", fmt.Errorf("%w: section %q has no verb", ErrUnformattable, sec.Name)
			}
			groups = append(groups, strings.Join(checks.Keys(), ", ")+" to be "+sec.Verb)
		}
		if len(groups) > 0 {
			parts = append(parts, strings.Join(groups, "; "))
		}
	}

	return checkName + " requires " + strings.Join(parts, ", "), nil
}
