package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"completion-planner/internal/checklist"
	"completion-planner/internal/progress/repository"
)

func (r *implRepository) GetState(ctx context.Context, opt repository.GetStateOptions) (checklist.State, error) {
	var raw string
	err := r.db.QueryRowContext(
		ctx,
		`SELECT state_json FROM checklist_states WHERE profile_id = ? AND game = ?`,
		opt.ProfileID,
		string(opt.Game),
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return checklist.State{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "progress.repository.sqlite.GetState: %v", err)
		return checklist.State{}, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}

	var st checklist.State
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		r.l.Errorf(ctx, "progress.repository.sqlite.GetState: decode %s/%s: %v", opt.ProfileID, opt.Game, err)
		return checklist.State{}, fmt.Errorf("%w: decode state: %v", repository.ErrFailedToGet, err)
	}
	return st, nil
}

func (r *implRepository) SaveState(ctx context.Context, opt repository.SaveStateOptions) error {
	raw, err := json.Marshal(opt.State)
	if err != nil {
		return fmt.Errorf("%w: encode state: %v", repository.ErrFailedToUpdate, err)
	}

	_, err = r.db.ExecContext(
		ctx,
		`INSERT INTO checklist_states (profile_id, game, state_json, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(profile_id, game) DO UPDATE SET
		   state_json = excluded.state_json,
		   updated_at = excluded.updated_at`,
		opt.ProfileID,
		string(opt.Game),
		string(raw),
		toMillis(r.now()),
	)
	if err != nil {
		r.l.Errorf(ctx, "progress.repository.sqlite.SaveState: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToUpdate, err)
	}
	return nil
}
