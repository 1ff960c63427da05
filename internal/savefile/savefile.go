// Package savefile turns the output of external save readers into the
// section -> check -> checked mapping the checklist engine imports.
package savefile

import (
	"fmt"

	"completion-planner/internal/catalog"
	"completion-planner/internal/checklist"
)

// Format names an importer input.
type Format string

const (
	// FormatJSON is the save parser output: {"<game>": {"<section>": {"<check>": bool}}}.
	FormatJSON Format = "json"
	// FormatMarkdown is a checkbox list as produced by checklist.Markdown.
	FormatMarkdown Format = "markdown"
)

// Parse decodes data in the given format. game may be empty when the input
// names its game itself; when both are set they must agree.
func Parse(format Format, data []byte, game catalog.Game) (checklist.SaveFile, error) {
	var (
		sf  checklist.SaveFile
		err error
	)
	switch format {
	case FormatJSON, "":
		sf, err = ParseJSON(data)
	case FormatMarkdown:
		sf, err = ParseMarkdown(string(data))
	default:
		return checklist.SaveFile{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return checklist.SaveFile{}, err
	}

	switch {
	case sf.Game == "" && game == "":
		return checklist.SaveFile{}, fmt.Errorf("%w: input does not name a game", ErrUnknownGame)
	case sf.Game == "":
		sf.Game = game
	case game != "" && game != sf.Game:
		return checklist.SaveFile{}, fmt.Errorf("%w: input is for %q, not %q", ErrUnknownGame, sf.Game, game)
	}
	if !sf.Game.Valid() {
		return checklist.SaveFile{}, fmt.Errorf("%w: %q", ErrUnknownGame, sf.Game)
	}
	return sf, nil
}
