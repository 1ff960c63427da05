package checklist

import (
	"strings"

	"completion-planner/internal/catalog"
	"completion-planner/internal/patch"
)

func balances(rules catalog.Rules, counters patch.Map) []Balance {
	var out []Balance
	for _, res := range rules.Resources() {
		if res.Required == "" {
			continue
		}
		b := Balance{
			Field:      res.Field,
			Label:      strings.TrimSpace(strings.ReplaceAll(res.Label, "{n}", "")),
			Consumable: res.Consumable,
		}
		b.Collected, _ = counters.Number(res.Field)
		b.Required, _ = counters.Number(res.Required)
		b.Available = b.Collected - b.Required
		b.Short = b.Available < 0
		out = append(out, b)
	}
	return out
}
