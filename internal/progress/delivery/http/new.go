package http

import (
	"completion-planner/internal/progress"
	"completion-planner/pkg/log"
)

type handler struct {
	l  log.Logger
	uc progress.UseCase
}

// New creates a new HTTP handler for the progress domain.
func New(l log.Logger, uc progress.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
