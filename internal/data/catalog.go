package data

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/udisondev/monbattle/internal/model"
)

// ErrInvalidCatalog wraps every validation failure while building a catalog.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog holds the immutable species and move definitions.
// Built once at startup; read-only afterwards, so concurrent reads are safe.
type Catalog struct {
	moves   map[string]*model.MoveTemplate
	species map[string]*model.Species
	order   []*model.Species // by ID
}

// Move returns a move template by name (case-insensitive).
func (c *Catalog) Move(name string) (*model.MoveTemplate, bool) {
	m, ok := c.moves[strings.ToLower(name)]
	return m, ok
}

// Species returns a species by name (case-insensitive).
func (c *Catalog) Species(name string) (*model.Species, bool) {
	s, ok := c.species[strings.ToLower(name)]
	return s, ok
}

// AllSpecies returns every species ordered by ID.
func (c *Catalog) AllSpecies() []*model.Species {
	return slices.Clone(c.order)
}

// MoveCount returns the number of move templates.
func (c *Catalog) MoveCount() int { return len(c.moves) }

// SpeciesCount returns the number of species.
func (c *Catalog) SpeciesCount() int { return len(c.species) }

// BuildCatalog converts raw definitions into a validated catalog.
// Learnset entries must reference moves present in moves.
func BuildCatalog(moves []MoveDef, species []SpeciesDef) (*Catalog, error) {
	c := &Catalog{
		moves:   make(map[string]*model.MoveTemplate, len(moves)),
		species: make(map[string]*model.Species, len(species)),
		order:   make([]*model.Species, 0, len(species)),
	}

	for i := range moves {
		mt, err := moves[i].toTemplate()
		if err != nil {
			return nil, err
		}
		key := strings.ToLower(mt.Name)
		if _, dup := c.moves[key]; dup {
			return nil, fmt.Errorf("%w: duplicate move %q", ErrInvalidCatalog, mt.Name)
		}
		c.moves[key] = mt
	}

	seenIDs := make(map[int32]string, len(species))
	for i := range species {
		sp, err := species[i].toSpecies(c)
		if err != nil {
			return nil, err
		}
		key := strings.ToLower(sp.Name)
		if _, dup := c.species[key]; dup {
			return nil, fmt.Errorf("%w: duplicate species %q", ErrInvalidCatalog, sp.Name)
		}
		if other, dup := seenIDs[sp.ID]; dup {
			return nil, fmt.Errorf("%w: species %q reuses id %d of %q", ErrInvalidCatalog, sp.Name, sp.ID, other)
		}
		seenIDs[sp.ID] = sp.Name
		c.species[key] = sp
		c.order = append(c.order, sp)
	}

	slices.SortFunc(c.order, func(a, b *model.Species) int { return int(a.ID - b.ID) })
	return c, nil
}
