package checklist

import "errors"

var (
	ErrUnknownSection = errors.New("unknown section")
	ErrUnknownCheck   = errors.New("unknown check")
	ErrGameMismatch   = errors.New("save file belongs to another game")
	// ErrUnformattable is returned when a requirement names a field or section
	// the catalog has no wording for.
	ErrUnformattable = errors.New("requirement cannot be formatted")
)
