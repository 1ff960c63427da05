package catalog

import "errors"

var (
	ErrInvalidCatalog = errors.New("invalid catalog")
	ErrUnknownGame    = errors.New("unknown game")
)
