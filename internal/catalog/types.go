package catalog

import "completion-planner/internal/patch"

// Game identifies one supported checklist.
type Game string

const (
	HollowKnight Game = "hollow-knight"
	Silksong     Game = "silksong"
)

// Games lists every supported game in display order.
func Games() []Game {
	return []Game{HollowKnight, Silksong}
}

// Valid reports whether g names a supported game.
func (g Game) Valid() bool {
	switch g {
	case HollowKnight, Silksong:
		return true
	}
	return false
}

// Check is the static definition of one trackable item.
type Check struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Reward      patch.Map `yaml:"reward"`
	Requires    patch.Map `yaml:"requires"`
}

// Section is an ordered group of checks.
type Section struct {
	Name   string  `yaml:"name"`
	Title  string  `yaml:"title"`
	Verb   string  `yaml:"verb"`
	Checks []Check `yaml:"checks"`
}

// Resource describes a counter that requirements may reference.
// Required names the field recording how much of the resource has been spent
// or committed. Consumable resources are validated against collected minus spent.
type Resource struct {
	Field      string `yaml:"field"`
	Label      string `yaml:"label"`
	Required   string `yaml:"required"`
	Consumable bool   `yaml:"consumable"`
}

// Tier is a count-dependent bonus. Table[i] is granted to Field when the
// Counter reaches i+1.
type Tier struct {
	Section string    `yaml:"section"`
	Counter string    `yaml:"counter"`
	Field   string    `yaml:"field"`
	Table   []float64 `yaml:"table"`
}

// Catalog is the immutable definition of one game's checklist.
type Catalog struct {
	Game     Game
	Title    string
	Sections []Section

	state patch.Map
	rules *ruleSet
	index map[string]int
}

type document struct {
	Game     Game      `yaml:"game"`
	Title    string    `yaml:"title"`
	State    patch.Map `yaml:"state"`
	Rules    ruleSet   `yaml:"rules"`
	Sections []Section `yaml:"sections"`
}
