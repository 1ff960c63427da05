package progress

import (
	"time"

	"completion-planner/internal/catalog"
	"completion-planner/internal/checklist"
	"completion-planner/internal/patch"
	"completion-planner/internal/savefile"
)

// --- Profile Domain Model ---

// Profile owns one checklist per supported game and remembers which one the
// user is currently working on.
type Profile struct {
	ID         string
	ActiveGame catalog.Game
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// --- UseCase Inputs ---

type CreateProfileInput struct {
	ActiveGame catalog.Game // optional, falls back to the configured default
}

type SetActiveGameInput struct {
	ProfileID string
	Game      catalog.Game
}

type ChecklistInput struct {
	ProfileID string
	Game      catalog.Game
}

type ToggleInput struct {
	ProfileID string
	Game      catalog.Game
	Section   string
	Check     string
}

// BulkInput targets one section, or every section when Section is empty.
type BulkInput struct {
	ProfileID string
	Game      catalog.Game
	Section   string
}

type ImportInput struct {
	ProfileID string
	Format    savefile.Format
	Game      catalog.Game // optional when the input names its game
	Data      []byte
}

// --- UseCase Outputs ---

type GameSummary struct {
	Game     catalog.Game
	Title    string
	Progress checklist.Progress
}

type ProfileOutput struct {
	Profile Profile
	Games   []GameSummary
}

type CheckView struct {
	Name        string
	Description string
	Checked     bool
	Satisfiable bool
}

type SectionView struct {
	Name   string
	Title  string
	Verb   string
	Checks []CheckView
}

type ViolationView struct {
	Section     string
	Check       string
	Requirement patch.Map
	Message     string
}

type ChecklistOutput struct {
	Game       catalog.Game
	Title      string
	Progress   checklist.Progress
	Balances   []checklist.Balance
	Sections   []SectionView
	Violations []ViolationView
}

type ToggleOutput struct {
	Checked   bool
	Checklist ChecklistOutput
}

type BulkOutput struct {
	Changed   int
	Checklist ChecklistOutput
}

type ViolationsOutput struct {
	Game       catalog.Game
	Violations []ViolationView
}

type ExportOutput struct {
	Game     catalog.Game
	Markdown string
}

type ImportOutput struct {
	Changed   int
	Checklist ChecklistOutput
}
