package catalog

import (
	"bytes"
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var files embed.FS

var (
	loadOnce sync.Once
	loaded   map[Game]*Catalog
	loadErr  error
)

// Load returns the embedded catalog of game. Catalogs are decoded and validated
// once per process and shared; callers must not modify them.
func Load(game Game) (*Catalog, error) {
	if !game.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGame, game)
	}

	all, err := All()
	if err != nil {
		return nil, err
	}
	return all[game], nil
}

// All returns every embedded catalog keyed by game.
func All() (map[Game]*Catalog, error) {
	loadOnce.Do(func() {
		loaded, loadErr = loadAll()
	})
	return loaded, loadErr
}

func loadAll() (map[Game]*Catalog, error) {
	out := make(map[Game]*Catalog, len(Games()))
	for _, game := range Games() {
		data, err := files.ReadFile("data/" + string(game) + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("catalog.loadAll: %s: %w", game, err)
		}

		c, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("catalog.loadAll: %s: %w", game, err)
		}
		if c.Game != game {
			return nil, fmt.Errorf("%w: file %s declares game %q", ErrInvalidCatalog, game, c.Game)
		}
		out[game] = c
	}
	return out, nil
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	c := &Catalog{
		Game:     doc.Game,
		Title:    doc.Title,
		Sections: doc.Sections,
		state:    doc.State,
		rules:    &doc.Rules,
		index:    make(map[string]int, len(doc.Sections)),
	}
	for i, sec := range c.Sections {
		if _, dup := c.index[sec.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate section %q", ErrInvalidCatalog, sec.Name)
		}
		c.index[sec.Name] = i
	}

	if err := validate(c); err != nil {
		return nil, err
	}
	return c, nil
}
