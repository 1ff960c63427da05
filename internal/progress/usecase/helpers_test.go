package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"completion-planner/internal/catalog"
	"completion-planner/internal/checklist"
	"completion-planner/internal/progress"
	"completion-planner/internal/progress/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type stateKey struct {
	profile string
	game    catalog.Game
}

// memRepo is an in-memory repository.Repository.
type memRepo struct {
	mu       sync.Mutex
	profiles map[string]progress.Profile
	states   map[stateKey]checklist.State
	saves    int
	saveErr  error

	// beforeSave, when set, runs at the start of every SaveState.
	beforeSave func(opt repository.SaveStateOptions)
}

func newMemRepo() *memRepo {
	return &memRepo{
		profiles: map[string]progress.Profile{},
		states:   map[stateKey]checklist.State{},
	}
}

func (r *memRepo) CreateProfile(ctx context.Context, opt repository.CreateProfileOptions) (progress.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[opt.ID]; ok {
		return progress.Profile{}, repository.ErrFailedToInsert
	}
	now := time.Unix(1700000000, 0)
	p := progress.Profile{ID: opt.ID, ActiveGame: opt.ActiveGame, CreatedAt: now, UpdatedAt: now}
	r.profiles[opt.ID] = p
	return p, nil
}

func (r *memRepo) GetProfile(ctx context.Context, id string) (progress.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[id]
	if !ok {
		return progress.Profile{}, repository.ErrNotFound
	}
	return p, nil
}

func (r *memRepo) UpdateActiveGame(ctx context.Context, opt repository.UpdateActiveGameOptions) (progress.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[opt.ProfileID]
	if !ok {
		return progress.Profile{}, repository.ErrNotFound
	}
	p.ActiveGame = opt.Game
	r.profiles[opt.ProfileID] = p
	return p, nil
}

func (r *memRepo) GetState(ctx context.Context, opt repository.GetStateOptions) (checklist.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.states[stateKey{opt.ProfileID, opt.Game}]
	if !ok {
		return checklist.State{}, repository.ErrNotFound
	}
	return st.Clone(), nil
}

func (r *memRepo) SaveState(ctx context.Context, opt repository.SaveStateOptions) error {
	if r.beforeSave != nil {
		r.beforeSave(opt)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	if _, ok := r.profiles[opt.ProfileID]; !ok {
		return errors.New("no such profile")
	}
	r.states[stateKey{opt.ProfileID, opt.Game}] = opt.State.Clone()
	r.saves++
	return nil
}

func newTestUseCase(t *testing.T, repo repository.Repository) *implUseCase {
	t.Helper()
	return newTestUseCaseWithConfig(t, repo, Config{DefaultGame: catalog.HollowKnight})
}

func newTestUseCaseWithConfig(t *testing.T, repo repository.Repository, cfg Config) *implUseCase {
	t.Helper()

	catalogs, err := catalog.All()
	if err != nil {
		t.Fatalf("catalog.All() error = %v", err)
	}
	uc, err := New(&mockLogger{}, repo, catalogs, cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	next := 0
	uc.newID = func() string {
		next++
		return "profile-" + string(rune('0'+next))
	}
	return uc
}

func mustProfile(t *testing.T, uc *implUseCase) string {
	t.Helper()
	out, err := uc.CreateProfile(context.Background(), progress.CreateProfileInput{})
	if err != nil {
		t.Fatalf("CreateProfile() error = %v", err)
	}
	return out.Profile.ID
}

func findCheck(out progress.ChecklistOutput, section, name string) (progress.CheckView, bool) {
	for _, sec := range out.Sections {
		if sec.Name != section {
			continue
		}
		for _, chk := range sec.Checks {
			if chk.Name == name {
				return chk, true
			}
		}
	}
	return progress.CheckView{}, false
}
