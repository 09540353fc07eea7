package encounter

import (
	"errors"
	"fmt"

	"github.com/udisondev/monbattle/internal/data"
	"github.com/udisondev/monbattle/internal/model"
)

var (
	// ErrEmptyPool is returned by Generate on a pool without entries.
	ErrEmptyPool = errors.New("encounter pool is empty")

	// ErrInvalidEntry is returned by NewPool for malformed entries.
	ErrInvalidEntry = errors.New("invalid encounter entry")
)

// Source is the subset of combat.Source used for encounter rolls.
type Source interface {
	IntN(n int) int
}

// Entry is one species that can appear, with its level range and relative weight.
type Entry struct {
	Species  *model.Species
	MinLevel int
	MaxLevel int
	Weight   int
}

// Pool holds the encounter table of an area. Immutable after NewPool.
type Pool struct {
	entries     []Entry
	totalWeight int
}

// NewPool validates entries and builds a pool.
func NewPool(entries []Entry) (*Pool, error) {
	p := &Pool{entries: make([]Entry, 0, len(entries))}
	for i, e := range entries {
		switch {
		case e.Species == nil:
			return nil, fmt.Errorf("%w: entry %d has no species", ErrInvalidEntry, i)
		case e.Weight <= 0:
			return nil, fmt.Errorf("%w: %s has weight %d", ErrInvalidEntry, e.Species.Name, e.Weight)
		case e.MinLevel < 1 || e.MaxLevel > model.MaxLevel || e.MinLevel > e.MaxLevel:
			return nil, fmt.Errorf("%w: %s has level range %d..%d", ErrInvalidEntry, e.Species.Name, e.MinLevel, e.MaxLevel)
		}
		p.entries = append(p.entries, e)
		p.totalWeight += e.Weight
	}
	return p, nil
}

// FromCatalog builds an equally weighted pool of every catalog species.
func FromCatalog(c *data.Catalog, minLevel, maxLevel int) (*Pool, error) {
	all := c.AllSpecies()
	entries := make([]Entry, 0, len(all))
	for _, sp := range all {
		entries = append(entries, Entry{Species: sp, MinLevel: minLevel, MaxLevel: maxLevel, Weight: 1})
	}
	return NewPool(entries)
}

// Len returns the number of entries.
func (p *Pool) Len() int { return len(p.entries) }

// Generate rolls an entry and a level, and returns a new combatant.
// Every call returns a distinct instance, even for the same species and level.
func (p *Pool) Generate(src Source) (*model.Combatant, error) {
	if len(p.entries) == 0 {
		return nil, ErrEmptyPool
	}

	roll := src.IntN(p.totalWeight)
	e := p.entries[len(p.entries)-1]
	for _, cand := range p.entries {
		if roll < cand.Weight {
			e = cand
			break
		}
		roll -= cand.Weight
	}

	level := e.MinLevel + src.IntN(e.MaxLevel-e.MinLevel+1)
	c := model.NewWildCombatant(e.Species, level)
	c.SetExperience(data.ExperienceForLevel(e.Species.GrowthRate, level))
	return c, nil
}
