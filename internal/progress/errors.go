package progress

import "errors"

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidGame     = errors.New("invalid game")
	ErrInvalidInput    = errors.New("invalid input")
)
