package usecase

import (
	"context"
	"errors"

	"completion-planner/internal/catalog"
	"completion-planner/internal/progress"
	"completion-planner/internal/progress/repository"
)

// CreateProfile stores a new profile with fresh checklists for every game.
func (uc *implUseCase) CreateProfile(ctx context.Context, input progress.CreateProfileInput) (progress.ProfileOutput, error) {
	game := input.ActiveGame
	if game == "" {
		game = uc.defaultGame
	}
	if !game.Valid() {
		return progress.ProfileOutput{}, progress.ErrInvalidGame
	}

	p, err := uc.repo.CreateProfile(ctx, repository.CreateProfileOptions{ID: uc.newID(), ActiveGame: game})
	if err != nil {
		uc.l.Errorf(ctx, "progress.usecase.CreateProfile: %v", err)
		return progress.ProfileOutput{}, err
	}
	uc.l.Infof(ctx, "progress.usecase.CreateProfile: id=%s game=%s", p.ID, p.ActiveGame)

	return uc.GetProfile(ctx, p.ID)
}

// GetProfile returns the profile with a progress summary per game.
func (uc *implUseCase) GetProfile(ctx context.Context, id string) (progress.ProfileOutput, error) {
	var out progress.ProfileOutput
	err := uc.withSession(ctx, id, func(s *session) error {
		var err error
		out, err = uc.profileOutput(s)
		return err
	})
	return out, err
}

// SetActiveGame switches the game the profile is working on.
func (uc *implUseCase) SetActiveGame(ctx context.Context, input progress.SetActiveGameInput) (progress.ProfileOutput, error) {
	if !input.Game.Valid() {
		return progress.ProfileOutput{}, progress.ErrInvalidGame
	}

	var out progress.ProfileOutput
	err := uc.withSession(ctx, input.ProfileID, func(s *session) error {
		if err := uc.switchGame(ctx, s, input.Game); err != nil {
			return err
		}
		var err error
		out, err = uc.profileOutput(s)
		return err
	})
	return out, err
}

// switchGame persists game as the active one. The caller holds the profile lock.
func (uc *implUseCase) switchGame(ctx context.Context, s *session, game catalog.Game) error {
	if s.profile.ActiveGame == game {
		return nil
	}

	p, err := uc.repo.UpdateActiveGame(ctx, repository.UpdateActiveGameOptions{ProfileID: s.profile.ID, Game: game})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			uc.sessions.Remove(s.profile.ID)
			return progress.ErrProfileNotFound
		}
		uc.l.Errorf(ctx, "progress.usecase.switchGame: %v", err)
		return err
	}
	s.profile = p
	return nil
}

func (uc *implUseCase) profileOutput(s *session) (progress.ProfileOutput, error) {
	out := progress.ProfileOutput{Profile: s.profile}
	for _, game := range catalog.Games() {
		e := s.engines[game]
		p, err := e.Progress()
		if err != nil {
			return progress.ProfileOutput{}, err
		}
		out.Games = append(out.Games, progress.GameSummary{
			Game:     game,
			Title:    e.Catalog().Title,
			Progress: p,
		})
	}
	return out, nil
}
