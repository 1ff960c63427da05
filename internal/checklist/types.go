package checklist

import (
	"completion-planner/internal/catalog"
	"completion-planner/internal/patch"
)

// State is the mutable aggregate of one checklist: resource counters and the
// checked flag of every check, keyed by section then check name.
type State struct {
	Counters patch.Map                  `json:"counters"`
	Checks   map[string]map[string]bool `json:"checks"`
}

// SaveFile is what a save-file importer hands to the engine.
type SaveFile struct {
	Game     catalog.Game
	Sections map[string]map[string]bool
}

// Violations maps section -> check name -> the unmet requirement.
type Violations map[string]map[string]patch.Map

// Len returns the number of violated checks.
func (v Violations) Len() int {
	n := 0
	for _, checks := range v {
		n += len(checks)
	}
	return n
}

// Balance reports one resource: how much was collected against how much is
// committed. Required is the maximum ever recorded for list fields.
type Balance struct {
	Field      string  `json:"field"`
	Label      string  `json:"label"`
	Collected  float64 `json:"collected"`
	Required   float64 `json:"required"`
	Available  float64 `json:"available"`
	Short      bool    `json:"short"`
	Consumable bool    `json:"consumable"`
}

// Progress summarises a checklist.
type Progress struct {
	Percent  float64 `json:"percent"`
	Checked  int     `json:"checked"`
	Total    int     `json:"total"`
	Problems int     `json:"problems"`
}
