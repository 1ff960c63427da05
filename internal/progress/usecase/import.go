package usecase

import (
	"context"

	"completion-planner/internal/catalog"
	"completion-planner/internal/checklist"
	"completion-planner/internal/progress"
	"completion-planner/internal/savefile"
)

// Import applies a parsed save file to the matching game and makes that game
// the active one.
func (uc *implUseCase) Import(ctx context.Context, input progress.ImportInput) (progress.ImportOutput, error) {
	if len(input.Data) == 0 {
		return progress.ImportOutput{}, progress.ErrInvalidInput
	}
	if input.Game != "" && !input.Game.Valid() {
		return progress.ImportOutput{}, progress.ErrInvalidGame
	}

	sf, err := savefile.Parse(input.Format, input.Data, input.Game)
	if err != nil {
		uc.l.Warnf(ctx, "progress.usecase.Import Parse: %v", err)
		return progress.ImportOutput{}, err
	}

	var out progress.ImportOutput
	err = uc.withEngine(ctx, input.ProfileID, sf.Game, func(s *session, e *checklist.Engine) error {
		changed, err := e.SetFromSaveFile(sf)
		if err != nil {
			uc.l.Warnf(ctx, "progress.usecase.Import SetFromSaveFile: %v", err)
			return err
		}
		if err := uc.save(ctx, s, sf.Game); err != nil {
			return err
		}
		if err := uc.switchGame(ctx, s, sf.Game); err != nil {
			return err
		}
		uc.l.Infof(ctx, "progress.usecase.Import: %s %s changed=%d", input.ProfileID, sf.Game, changed)

		out.Changed = changed
		out.Checklist, err = uc.checklistOutput(ctx, e)
		return err
	})
	if err != nil {
		return progress.ImportOutput{}, err
	}
	return out, nil
}

// gameOf returns the catalog of g. Callers validate g first.
func (uc *implUseCase) gameOf(g catalog.Game) *catalog.Catalog {
	return uc.catalogs[g]
}
