package repository

import (
	"context"

	"completion-planner/internal/checklist"
	"completion-planner/internal/progress"
)

// Repository is the composed interface for the progress domain data store.
type Repository interface {
	ProfileRepository
	StateRepository
}

// ProfileRepository defines data access for profiles.
type ProfileRepository interface {
	CreateProfile(ctx context.Context, opt CreateProfileOptions) (progress.Profile, error)
	// GetProfile returns ErrNotFound when no profile has the given id.
	GetProfile(ctx context.Context, id string) (progress.Profile, error)
	UpdateActiveGame(ctx context.Context, opt UpdateActiveGameOptions) (progress.Profile, error)
}

// StateRepository stores one checklist state per profile and game.
type StateRepository interface {
	// GetState returns ErrNotFound when the game has never been saved.
	GetState(ctx context.Context, opt GetStateOptions) (checklist.State, error)
	SaveState(ctx context.Context, opt SaveStateOptions) error
}
