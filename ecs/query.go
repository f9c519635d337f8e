package ecs

import (
	"slices"

	"github.com/milk9111/spritecollider/ecs/component"
)

// Query returns the live entities that carry every listed component, in
// ascending slot order.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID(), false)
		if s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	// iterate the smallest set
	slices.SortFunc(sets, func(a, b *SparseSet) int { return a.Len() - b.Len() })

	out := make([]Entity, 0, sets[0].Len())
	for _, e := range sets[0].Entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		matched := true
		for _, s := range sets[1:] {
			if !s.Has(e) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, e)
		}
	}
	slices.SortFunc(out, func(a, b Entity) int { return int(a.id()) - int(b.id()) })
	return out
}

// First returns the lowest-slot entity carrying every listed component.
func (w *World) First(kinds ...component.Kind) (Entity, bool) {
	ents := w.Query(kinds...)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}
