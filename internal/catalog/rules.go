package catalog

import (
	"strconv"
	"strings"
)

// Rules isolates the game specific parts of a catalog that the engine consults:
// resource labels, consumable thresholds and tiered rewards.
type Rules interface {
	// Resources returns every labelled resource in display order.
	Resources() []Resource
	// Thresholds returns the consumable resources.
	Thresholds() []Resource
	// Tier returns the tiered reward driven by section, if any.
	Tier(section string) (Tier, bool)
	// Label renders n units of field, e.g. "250 [GEO]".
	Label(field string, n float64) (string, bool)
}

type ruleSet struct {
	ResourceList []Resource `yaml:"resources"`
	TierList     []Tier     `yaml:"tiers"`
}

func (r *ruleSet) Resources() []Resource {
	return r.ResourceList
}

func (r *ruleSet) Thresholds() []Resource {
	var out []Resource
	for _, res := range r.ResourceList {
		if res.Consumable {
			out = append(out, res)
		}
	}
	return out
}

func (r *ruleSet) Tier(section string) (Tier, bool) {
	for _, t := range r.TierList {
		if t.Section == section {
			return t, true
		}
	}
	return Tier{}, false
}

func (r *ruleSet) Label(field string, n float64) (string, bool) {
	res, ok := r.resource(field)
	if !ok {
		return "", false
	}
	return strings.ReplaceAll(res.Label, "{n}", strconv.FormatFloat(n, 'f', -1, 64)), true
}

func (r *ruleSet) resource(field string) (Resource, bool) {
	for _, res := range r.ResourceList {
		if res.Field == field {
			return res, true
		}
	}
	return Resource{}, false
}
