package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"completion-planner/internal/catalog"
	"completion-planner/internal/checklist"
	"completion-planner/internal/patch"
	"completion-planner/internal/progress/repository"
	"completion-planner/internal/progress/repository/sqlite"
	"completion-planner/pkg/log"
)

func newRepo(t *testing.T) repository.Repository {
	t.Helper()
	db, err := sqlite.Open(t.TempDir() + "/progress.db")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return sqlite.New(db, log.NewNop())
}

func TestProfileRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	created, err := repo.CreateProfile(ctx, repository.CreateProfileOptions{ID: "p-1", ActiveGame: catalog.HollowKnight})
	if err != nil {
		t.Fatalf("CreateProfile() error = %v", err)
	}

	got, err := repo.GetProfile(ctx, "p-1")
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if got.ID != created.ID || got.ActiveGame != catalog.HollowKnight || !got.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("GetProfile() = %+v, want %+v", got, created)
	}

	updated, err := repo.UpdateActiveGame(ctx, repository.UpdateActiveGameOptions{ProfileID: "p-1", Game: catalog.Silksong})
	if err != nil {
		t.Fatalf("UpdateActiveGame() error = %v", err)
	}
	if updated.ActiveGame != catalog.Silksong {
		t.Errorf("ActiveGame = %q, want silksong", updated.ActiveGame)
	}

	if _, err := repo.CreateProfile(ctx, repository.CreateProfileOptions{ID: "p-1", ActiveGame: catalog.Silksong}); !errors.Is(err, repository.ErrFailedToInsert) {
		t.Errorf("duplicate CreateProfile() error = %v, want ErrFailedToInsert", err)
	}
}

func TestProfileNotFound(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	if _, err := repo.GetProfile(ctx, "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("GetProfile() error = %v, want ErrNotFound", err)
	}
	_, err := repo.UpdateActiveGame(ctx, repository.UpdateActiveGameOptions{ProfileID: "missing", Game: catalog.Silksong})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("UpdateActiveGame() error = %v, want ErrNotFound", err)
	}
}

func TestStateUpsert(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	if _, err := repo.CreateProfile(ctx, repository.CreateProfileOptions{ID: "p-1", ActiveGame: catalog.HollowKnight}); err != nil {
		t.Fatalf("CreateProfile() error = %v", err)
	}

	opt := repository.GetStateOptions{ProfileID: "p-1", Game: catalog.HollowKnight}
	if _, err := repo.GetState(ctx, opt); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("GetState() before save error = %v, want ErrNotFound", err)
	}

	for _, geo := range []float64{100, 250} {
		st := checklist.State{
			Counters: patch.Map{"geo": patch.Number(geo), "essenceReq": patch.Numbers(0, 500)},
			Checks:   map[string]map[string]bool{"bosses": {"[False Knight]": true}},
		}
		if err := repo.SaveState(ctx, repository.SaveStateOptions{ProfileID: "p-1", Game: catalog.HollowKnight, State: st}); err != nil {
			t.Fatalf("SaveState() error = %v", err)
		}
	}

	got, err := repo.GetState(ctx, opt)
	if err != nil {
		t.Fatalf("GetState() error = %v", err)
	}
	want := patch.Map{"geo": patch.Number(250), "essenceReq": patch.Numbers(0, 500)}
	if !got.Counters.Equal(want) {
		t.Errorf("Counters = %v, want %v", got.Counters.Any(), want.Any())
	}
	if !got.Checks["bosses"]["[False Knight]"] {
		t.Error("checked flag lost")
	}
}

func TestStateRequiresProfile(t *testing.T) {
	repo := newRepo(t)
	err := repo.SaveState(context.Background(), repository.SaveStateOptions{
		ProfileID: "nobody",
		Game:      catalog.Silksong,
		State:     checklist.State{Counters: patch.Map{}, Checks: map[string]map[string]bool{}},
	})
	if !errors.Is(err, repository.ErrFailedToUpdate) {
		t.Errorf("SaveState() error = %v, want ErrFailedToUpdate", err)
	}
}
