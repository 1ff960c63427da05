package repository

import (
	"completion-planner/internal/catalog"
	"completion-planner/internal/checklist"
)

// CreateProfileOptions holds parameters for inserting a new profile.
type CreateProfileOptions struct {
	ID         string
	ActiveGame catalog.Game
}

// UpdateActiveGameOptions holds parameters for switching a profile's game.
type UpdateActiveGameOptions struct {
	ProfileID string
	Game      catalog.Game
}

// GetStateOptions selects one saved checklist.
type GetStateOptions struct {
	ProfileID string
	Game      catalog.Game
}

// SaveStateOptions holds the full state to persist for one checklist.
type SaveStateOptions struct {
	ProfileID string
	Game      catalog.Game
	State     checklist.State
}
