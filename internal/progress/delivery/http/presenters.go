package http

import (
	"completion-planner/internal/catalog"
	"completion-planner/internal/checklist"
	"completion-planner/internal/progress"
	"completion-planner/internal/savefile"
	"completion-planner/pkg/response"
)

// --- Request DTOs ---

type createProfileReq struct {
	ActiveGame string `json:"active_game"`
}

func (r createProfileReq) validate() error {
	if r.ActiveGame != "" && !catalog.Game(r.ActiveGame).Valid() {
		return errInvalidGame
	}
	return nil
}

func (r createProfileReq) toInput() progress.CreateProfileInput {
	return progress.CreateProfileInput{ActiveGame: catalog.Game(r.ActiveGame)}
}

// ---

type setActiveGameReq struct {
	ProfileID string `json:"-"` // populated from URI param
	Game      string `json:"game" binding:"required"`
}

func (r setActiveGameReq) validate() error {
	if !catalog.Game(r.Game).Valid() {
		return errInvalidGame
	}
	return nil
}

func (r setActiveGameReq) toInput() progress.SetActiveGameInput {
	return progress.SetActiveGameInput{ProfileID: r.ProfileID, Game: catalog.Game(r.Game)}
}

// ---

type checklistReq struct {
	ProfileID string
	Game      string
}

func (r checklistReq) validate() error {
	if !catalog.Game(r.Game).Valid() {
		return errInvalidGame
	}
	return nil
}

func (r checklistReq) toInput() progress.ChecklistInput {
	return progress.ChecklistInput{ProfileID: r.ProfileID, Game: catalog.Game(r.Game)}
}

// ---

type toggleReq struct {
	checklistReq
	Section string `json:"section" binding:"required"`
	Check   string `json:"check"   binding:"required"`
}

func (r toggleReq) toInput() progress.ToggleInput {
	return progress.ToggleInput{
		ProfileID: r.ProfileID,
		Game:      catalog.Game(r.Game),
		Section:   r.Section,
		Check:     r.Check,
	}
}

// ---

type bulkReq struct {
	checklistReq
	Section string `json:"section"`
}

func (r bulkReq) toInput() progress.BulkInput {
	return progress.BulkInput{ProfileID: r.ProfileID, Game: catalog.Game(r.Game), Section: r.Section}
}

// ---

type importReq struct {
	ProfileID string `form:"-"`
	Format    string `form:"format"`
	Game      string `form:"game"`
	Data      []byte `form:"-"`
}

func (r importReq) validate() error {
	switch savefile.Format(r.Format) {
	case "", savefile.FormatJSON, savefile.FormatMarkdown:
	default:
		return errInvalidFormat
	}
	if r.Game != "" && !catalog.Game(r.Game).Valid() {
		return errInvalidGame
	}
	if len(r.Data) == 0 {
		return errEmptyBody
	}
	return nil
}

func (r importReq) toInput() progress.ImportInput {
	return progress.ImportInput{
		ProfileID: r.ProfileID,
		Format:    savefile.Format(r.Format),
		Game:      catalog.Game(r.Game),
		Data:      r.Data,
	}
}

// --- Response DTOs ---

type profileResp struct {
	ID         string            `json:"id"`
	ActiveGame string            `json:"active_game"`
	CreatedAt  response.DateTime `json:"created_at"`
	UpdatedAt  response.DateTime `json:"updated_at"`
	Games      []gameSummaryResp `json:"games"`
}

type gameSummaryResp struct {
	Game     string             `json:"game"`
	Title    string             `json:"title"`
	Progress checklist.Progress `json:"progress"`
}

func (h *handler) newProfileResp(out progress.ProfileOutput) profileResp {
	games := make([]gameSummaryResp, len(out.Games))
	for i, g := range out.Games {
		games[i] = gameSummaryResp{Game: string(g.Game), Title: g.Title, Progress: g.Progress}
	}
	return profileResp{
		ID:         out.Profile.ID,
		ActiveGame: string(out.Profile.ActiveGame),
		CreatedAt:  response.DateTime(out.Profile.CreatedAt),
		UpdatedAt:  response.DateTime(out.Profile.UpdatedAt),
		Games:      games,
	}
}

type checkResp struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Checked     bool   `json:"checked"`
	Satisfiable bool   `json:"satisfiable"`
}

type sectionResp struct {
	Name   string      `json:"name"`
	Title  string      `json:"title"`
	Checks []checkResp `json:"checks"`
}

type violationResp struct {
	Section     string         `json:"section"`
	Check       string         `json:"check"`
	Requirement map[string]any `json:"requirement"`
	Message     string         `json:"message"`
}

type checklistResp struct {
	Game       string              `json:"game"`
	Title      string              `json:"title"`
	Progress   checklist.Progress  `json:"progress"`
	Balances   []checklist.Balance `json:"balances"`
	Sections   []sectionResp       `json:"sections"`
	Violations []violationResp     `json:"violations"`
}

func newViolationResps(views []progress.ViolationView) []violationResp {
	out := make([]violationResp, len(views))
	for i, v := range views {
		out[i] = violationResp{
			Section:     v.Section,
			Check:       v.Check,
			Requirement: v.Requirement.Any(),
			Message:     v.Message,
		}
	}
	return out
}

func (h *handler) newChecklistResp(out progress.ChecklistOutput) checklistResp {
	sections := make([]sectionResp, len(out.Sections))
	for i, sec := range out.Sections {
		checks := make([]checkResp, len(sec.Checks))
		for j, chk := range sec.Checks {
			checks[j] = checkResp{
				Name:        chk.Name,
				Description: chk.Description,
				Checked:     chk.Checked,
				Satisfiable: chk.Satisfiable,
			}
		}
		sections[i] = sectionResp{Name: sec.Name, Title: sec.Title, Checks: checks}
	}

	balances := out.Balances
	if balances == nil {
		balances = []checklist.Balance{}
	}
	return checklistResp{
		Game:       string(out.Game),
		Title:      out.Title,
		Progress:   out.Progress,
		Balances:   balances,
		Sections:   sections,
		Violations: newViolationResps(out.Violations),
	}
}

type toggleResp struct {
	Checked   bool          `json:"checked"`
	Checklist checklistResp `json:"checklist"`
}

func (h *handler) newToggleResp(out progress.ToggleOutput) toggleResp {
	return toggleResp{Checked: out.Checked, Checklist: h.newChecklistResp(out.Checklist)}
}

type bulkResp struct {
	Changed   int           `json:"changed"`
	Checklist checklistResp `json:"checklist"`
}

func (h *handler) newBulkResp(out progress.BulkOutput) bulkResp {
	return bulkResp{Changed: out.Changed, Checklist: h.newChecklistResp(out.Checklist)}
}

func (h *handler) newImportResp(out progress.ImportOutput) bulkResp {
	return bulkResp{Changed: out.Changed, Checklist: h.newChecklistResp(out.Checklist)}
}

type violationsResp struct {
	Game       string          `json:"game"`
	Violations []violationResp `json:"violations"`
}

func (h *handler) newViolationsResp(out progress.ViolationsOutput) violationsResp {
	return violationsResp{Game: string(out.Game), Violations: newViolationResps(out.Violations)}
}
