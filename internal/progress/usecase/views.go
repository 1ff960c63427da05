package usecase

import (
	"context"

	"completion-planner/internal/catalog"
	"completion-planner/internal/checklist"
	"completion-planner/internal/progress"
)

func (uc *implUseCase) checklistOutput(ctx context.Context, e *checklist.Engine) (progress.ChecklistOutput, error) {
	c := uc.gameOf(e.Game())
	st := e.State()
	snapshot := st.Snapshot()
	rules := c.Rules()

	p, err := e.Progress()
	if err != nil {
		return progress.ChecklistOutput{}, err
	}

	out := progress.ChecklistOutput{
		Game:     c.Game,
		Title:    c.Title,
		Progress: p,
		Balances: e.Balances(),
		Sections: make([]progress.SectionView, 0, len(c.Sections)),
	}
	for _, sec := range c.Sections {
		view := progress.SectionView{
			Name:   sec.Name,
			Title:  sec.Title,
			Verb:   sec.Verb,
			Checks: make([]progress.CheckView, 0, len(sec.Checks)),
		}
		for _, chk := range sec.Checks {
			checked := st.Checks[sec.Name][chk.Name]
			unmet, err := checklist.ValidateCheck(rules, snapshot, chk, checked)
			if err != nil {
				uc.l.Errorf(ctx, "progress.usecase.checklistOutput %s/%s: %v", sec.Name, chk.Name, err)
				return progress.ChecklistOutput{}, err
			}
			view.Checks = append(view.Checks, progress.CheckView{
				Name:        chk.Name,
				Description: chk.Description,
				Checked:     checked,
				Satisfiable: unmet == nil,
			})
		}
		out.Sections = append(out.Sections, view)
	}

	out.Violations, err = uc.violations(ctx, e)
	if err != nil {
		return progress.ChecklistOutput{}, err
	}
	return out, nil
}

// violations lists unmet requirements in catalog order.
func (uc *implUseCase) violations(ctx context.Context, e *checklist.Engine) ([]progress.ViolationView, error) {
	found, err := e.ValidateChecks()
	if err != nil {
		uc.l.Errorf(ctx, "progress.usecase.violations: %v", err)
		return nil, err
	}

	views, err := violationViews(uc.gameOf(e.Game()), found)
	if err != nil {
		uc.l.Errorf(ctx, "progress.usecase.violations: %v", err)
		return nil, err
	}
	return views, nil
}

func violationViews(c *catalog.Catalog, found checklist.Violations) ([]progress.ViolationView, error) {
	views := make([]progress.ViolationView, 0, found.Len())
	for _, sec := range c.Sections {
		checks := found[sec.Name]
		if len(checks) == 0 {
			continue
		}
		for _, chk := range sec.Checks {
			req, ok := checks[chk.Name]
			if !ok {
				continue
			}
			msg, err := checklist.FormatViolation(c, chk.Name, req)
			if err != nil {
				return nil, err
			}
			views = append(views, progress.ViolationView{
				Section:     sec.Name,
				Check:       chk.Name,
				Requirement: req,
				Message:     msg,
			})
		}
	}
	return views, nil
}
