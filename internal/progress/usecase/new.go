package usecase

import (
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"completion-planner/internal/catalog"
	"completion-planner/internal/progress/repository"
	"completion-planner/pkg/log"
)

// Config tunes the profile cache.
type Config struct {
	DefaultGame catalog.Game
	CacheSize   int
	CacheTTL    time.Duration
}

// implUseCase is the private implementation of progress.UseCase.
type implUseCase struct {
	l           log.Logger
	repo        repository.Repository
	catalogs    map[catalog.Game]*catalog.Catalog
	sessions    *expirable.LRU[string, *session]
	locks       sync.Map // profile id -> *sync.Mutex, never evicted
	defaultGame catalog.Game
	newID       func() string
}

// New creates a new progress UseCase implementation.
func New(l log.Logger, repo repository.Repository, catalogs map[catalog.Game]*catalog.Catalog, cfg Config) (*implUseCase, error) {
	if !cfg.DefaultGame.Valid() {
		return nil, fmt.Errorf("%w: default game %q", catalog.ErrUnknownGame, cfg.DefaultGame)
	}
	for _, game := range catalog.Games() {
		if catalogs[game] == nil {
			return nil, fmt.Errorf("%w: no catalog for %q", catalog.ErrUnknownGame, game)
		}
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 256
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 30 * time.Minute
	}

	return &implUseCase{
		l:           l,
		repo:        repo,
		catalogs:    catalogs,
		sessions:    expirable.NewLRU[string, *session](cfg.CacheSize, nil, cfg.CacheTTL),
		defaultGame: cfg.DefaultGame,
		newID:       newProfileID,
	}, nil
}
