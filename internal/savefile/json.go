package savefile

import (
	"bytes"
	"encoding/json"
	"fmt"

	"completion-planner/internal/catalog"
	"completion-planner/internal/checklist"
)

// ParseJSON decodes the save parser output. The single top-level key tags the
// game the checks belong to.
func ParseJSON(data []byte) (checklist.SaveFile, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	var raw map[catalog.Game]map[string]map[string]bool
	if err := dec.Decode(&raw); err != nil {
		return checklist.SaveFile{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if dec.More() {
		return checklist.SaveFile{}, fmt.Errorf("%w: trailing data", ErrMalformed)
	}
	if len(raw) != 1 {
		return checklist.SaveFile{}, fmt.Errorf("%w: want exactly one game, got %d", ErrMalformed, len(raw))
	}

	for game, sections := range raw {
		if !game.Valid() {
			return checklist.SaveFile{}, fmt.Errorf("%w: %q", ErrUnknownGame, game)
		}
		if sections == nil {
			sections = map[string]map[string]bool{}
		}
		return checklist.SaveFile{Game: game, Sections: sections}, nil
	}
	return checklist.SaveFile{}, ErrMalformed
}
