package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"completion-planner/internal/catalog"
	"completion-planner/internal/progress"
	"completion-planner/internal/progress/repository"
)

func (r *implRepository) CreateProfile(ctx context.Context, opt repository.CreateProfileOptions) (progress.Profile, error) {
	now := fromMillis(toMillis(r.now()))
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO profiles (id, active_game, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		opt.ID,
		string(opt.ActiveGame),
		toMillis(now),
		toMillis(now),
	)
	if err != nil {
		r.l.Errorf(ctx, "progress.repository.sqlite.CreateProfile: %v", err)
		return progress.Profile{}, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}

	return progress.Profile{
		ID:         opt.ID,
		ActiveGame: opt.ActiveGame,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

func (r *implRepository) GetProfile(ctx context.Context, id string) (progress.Profile, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, active_game, created_at, updated_at FROM profiles WHERE id = ?`,
		id,
	)

	var (
		p                    progress.Profile
		game                 string
		createdAt, updatedAt int64
	)
	if err := row.Scan(&p.ID, &game, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return progress.Profile{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "progress.repository.sqlite.GetProfile: %v", err)
		return progress.Profile{}, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}

	p.ActiveGame = catalog.Game(game)
	p.CreatedAt = fromMillis(createdAt)
	p.UpdatedAt = fromMillis(updatedAt)
	return p, nil
}

func (r *implRepository) UpdateActiveGame(ctx context.Context, opt repository.UpdateActiveGameOptions) (progress.Profile, error) {
	res, err := r.db.ExecContext(
		ctx,
		`UPDATE profiles SET active_game = ?, updated_at = ? WHERE id = ?`,
		string(opt.Game),
		toMillis(r.now()),
		opt.ProfileID,
	)
	if err != nil {
		r.l.Errorf(ctx, "progress.repository.sqlite.UpdateActiveGame: %v", err)
		return progress.Profile{}, fmt.Errorf("%w: %v", repository.ErrFailedToUpdate, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return progress.Profile{}, repository.ErrNotFound
	}

	return r.GetProfile(ctx, opt.ProfileID)
}
