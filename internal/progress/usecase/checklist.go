package usecase

import (
	"context"

	"completion-planner/internal/checklist"
	"completion-planner/internal/progress"
)

// Checklist returns the full view of one game's checklist.
func (uc *implUseCase) Checklist(ctx context.Context, input progress.ChecklistInput) (progress.ChecklistOutput, error) {
	var out progress.ChecklistOutput
	err := uc.withEngine(ctx, input.ProfileID, input.Game, func(_ *session, e *checklist.Engine) error {
		var err error
		out, err = uc.checklistOutput(ctx, e)
		return err
	})
	return out, err
}

// Toggle flips one check and persists the result.
func (uc *implUseCase) Toggle(ctx context.Context, input progress.ToggleInput) (progress.ToggleOutput, error) {
	if input.Section == "" || input.Check == "" {
		return progress.ToggleOutput{}, progress.ErrInvalidInput
	}

	var out progress.ToggleOutput
	err := uc.withEngine(ctx, input.ProfileID, input.Game, func(s *session, e *checklist.Engine) error {
		checked, err := e.Toggle(input.Section, input.Check)
		if err != nil {
			return err
		}
		if err := uc.save(ctx, s, input.Game); err != nil {
			return err
		}
		uc.l.Debugf(ctx, "progress.usecase.Toggle: %s %s/%s checked=%v", input.ProfileID, input.Section, input.Check, checked)

		out.Checked = checked
		out.Checklist, err = uc.checklistOutput(ctx, e)
		return err
	})
	if err != nil {
		return progress.ToggleOutput{}, err
	}
	return out, nil
}

// CheckAll checks every check of a section, or of the whole game.
func (uc *implUseCase) CheckAll(ctx context.Context, input progress.BulkInput) (progress.BulkOutput, error) {
	return uc.bulk(ctx, input, func(e *checklist.Engine) (int, error) {
		return e.CheckAll(input.Section)
	})
}

// Reset unchecks a section, or restores the whole game to its initial state.
func (uc *implUseCase) Reset(ctx context.Context, input progress.BulkInput) (progress.BulkOutput, error) {
	return uc.bulk(ctx, input, func(e *checklist.Engine) (int, error) {
		before, err := e.Progress()
		if err != nil {
			return 0, err
		}
		if err := e.Reset(input.Section); err != nil {
			return 0, err
		}
		after, err := e.Progress()
		if err != nil {
			return 0, err
		}
		return before.Checked - after.Checked, nil
	})
}

func (uc *implUseCase) bulk(ctx context.Context, input progress.BulkInput, fn func(e *checklist.Engine) (int, error)) (progress.BulkOutput, error) {
	var out progress.BulkOutput
	err := uc.withEngine(ctx, input.ProfileID, input.Game, func(s *session, e *checklist.Engine) error {
		changed, err := fn(e)
		if err != nil {
			return err
		}
		if err := uc.save(ctx, s, input.Game); err != nil {
			return err
		}

		out.Changed = changed
		out.Checklist, err = uc.checklistOutput(ctx, e)
		return err
	})
	if err != nil {
		return progress.BulkOutput{}, err
	}
	return out, nil
}

// Violations lists every checked check whose requirement is unmet.
func (uc *implUseCase) Violations(ctx context.Context, input progress.ChecklistInput) (progress.ViolationsOutput, error) {
	var views []progress.ViolationView
	err := uc.withEngine(ctx, input.ProfileID, input.Game, func(_ *session, e *checklist.Engine) error {
		var err error
		views, err = uc.violations(ctx, e)
		return err
	})
	if err != nil {
		return progress.ViolationsOutput{}, err
	}
	return progress.ViolationsOutput{Game: input.Game, Violations: views}, nil
}

// Export renders the checklist as a markdown checkbox list that Import accepts.
func (uc *implUseCase) Export(ctx context.Context, input progress.ChecklistInput) (progress.ExportOutput, error) {
	var markdown string
	err := uc.withEngine(ctx, input.ProfileID, input.Game, func(_ *session, e *checklist.Engine) error {
		markdown = e.Markdown()
		return nil
	})
	if err != nil {
		return progress.ExportOutput{}, err
	}
	return progress.ExportOutput{Game: input.Game, Markdown: markdown}, nil
}
