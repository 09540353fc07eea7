package status

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/udisondev/monbattle/internal/model"
)

// TurnEndFunc mutates a combatant at the end of its turn and may enqueue messages.
type TurnEndFunc func(c *model.Combatant)

// Entry describes one status condition.
type Entry struct {
	ID           model.StatusID
	Name         string
	Description  string
	StartMessage string // formatted with the combatant name
	OnTurnEnd    TurnEndFunc
}

// Registry maps status identifiers to their behavior.
// Immutable after construction; safe for concurrent reads.
type Registry struct {
	entries [model.StatusCount]*Entry
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the shared registry, building it on first call.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = newRegistry(builtinEntries())
		slog.Debug("status registry initialized", "entries", len(builtinEntries()))
	})
	return defaultRegistry
}

func newRegistry(entries []Entry) *Registry {
	r := &Registry{}
	for i := range entries {
		e := entries[i]
		if e.ID <= model.StatusNone || e.ID >= model.StatusCount {
			panic(fmt.Sprintf("status: cannot register id %d", e.ID))
		}
		if e.OnTurnEnd == nil {
			panic(fmt.Sprintf("status: %s registered without turn-end effect", e.ID))
		}
		r.entries[e.ID] = &e
	}
	return r
}

// Lookup returns the entry for id. StatusNone and unknown ids are not registered.
func (r *Registry) Lookup(id model.StatusID) (Entry, bool) {
	if id <= model.StatusNone || id >= model.StatusCount {
		return Entry{}, false
	}
	e := r.entries[id]
	if e == nil {
		return Entry{}, false
	}
	return *e, true
}

// Inflict sets status on c unless it already has one, and enqueues the start message.
// Returns false when c already has a status, is fainted, or id is not registered.
func (r *Registry) Inflict(c *model.Combatant, id model.StatusID) bool {
	if c.Status() != model.StatusNone || c.IsFainted() {
		return false
	}
	e, ok := r.Lookup(id)
	if !ok {
		return false
	}
	c.SetStatus(id)
	c.EnqueueMessage(fmt.Sprintf(e.StartMessage, c.Name()))
	return true
}

// Cure clears the active status of c.
func (r *Registry) Cure(c *model.Combatant) {
	c.SetStatus(model.StatusNone)
}

// ApplyTurnEnd runs the turn-end effect of the active status of c.
// No-op for StatusNone and for fainted combatants.
func (r *Registry) ApplyTurnEnd(c *model.Combatant) {
	if c.IsFainted() {
		return
	}
	e, ok := r.Lookup(c.Status())
	if !ok {
		return
	}
	e.OnTurnEnd(c)
}
