package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"completion-planner/internal/catalog"
	"completion-planner/internal/checklist"
	"completion-planner/internal/progress"
	"completion-planner/internal/progress/repository"
)

// session is a loaded profile: one engine per game. It is only touched while
// the profile lock is held.
type session struct {
	profile progress.Profile
	engines map[catalog.Game]*checklist.Engine
}

func newProfileID() string {
	return uuid.NewString()
}

// profileLock returns the lock of id. Locks outlive cache eviction so a
// reload never races a mutation still saving through an evicted session.
func (uc *implUseCase) profileLock(id string) *sync.Mutex {
	mu, _ := uc.locks.LoadOrStore(id, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// withSession runs fn on the session of id while holding the profile lock.
func (uc *implUseCase) withSession(ctx context.Context, id string, fn func(s *session) error) error {
	mu := uc.profileLock(id)
	mu.Lock()
	defer mu.Unlock()

	s, err := uc.load(ctx, id)
	if err != nil {
		return err
	}
	return fn(s)
}

// withEngine is withSession for one game's engine.
func (uc *implUseCase) withEngine(ctx context.Context, id string, game catalog.Game, fn func(s *session, e *checklist.Engine) error) error {
	if !game.Valid() {
		return progress.ErrInvalidGame
	}
	return uc.withSession(ctx, id, func(s *session) error {
		return fn(s, s.engines[game])
	})
}

// load returns the cached session of id, or builds it from storage with
// every saved state merged over the catalog's initial state. The caller holds
// the profile lock.
func (uc *implUseCase) load(ctx context.Context, id string) (*session, error) {
	if s, ok := uc.sessions.Get(id); ok {
		return s, nil
	}

	p, err := uc.repo.GetProfile(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, progress.ErrProfileNotFound
		}
		uc.l.Errorf(ctx, "progress.usecase.load GetProfile: %v", err)
		return nil, err
	}

	s := &session{profile: p, engines: make(map[catalog.Game]*checklist.Engine, len(uc.catalogs))}
	for game, c := range uc.catalogs {
		e := checklist.New(c)
		st, err := uc.repo.GetState(ctx, repository.GetStateOptions{ProfileID: id, Game: game})
		switch {
		case err == nil:
			e.Restore(st)
		case errors.Is(err, repository.ErrNotFound):
		default:
			uc.l.Errorf(ctx, "progress.usecase.load GetState %s: %v", game, err)
			return nil, err
		}
		s.engines[game] = e
	}

	uc.sessions.Add(id, s)
	return s, nil
}

// save persists the current state of game. On failure the session is evicted
// so the next request reloads what storage actually holds.
func (uc *implUseCase) save(ctx context.Context, s *session, game catalog.Game) error {
	err := uc.repo.SaveState(ctx, repository.SaveStateOptions{
		ProfileID: s.profile.ID,
		Game:      game,
		State:     s.engines[game].State(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "progress.usecase.save %s/%s: %v", s.profile.ID, game, err)
		uc.sessions.Remove(s.profile.ID)
		return err
	}
	return nil
}
