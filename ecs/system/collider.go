package system

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/milk9111/spritecollider/ecs"
	"github.com/milk9111/spritecollider/ecs/component"
	"github.com/milk9111/spritecollider/shape"
)

// FailurePolicy selects what ColliderSystem does when an outline cannot be
// tessellated.
type FailurePolicy int

const (
	// RetryOnChange keeps the previous collider and tries again once the
	// outline gains another point.
	RetryOnChange FailurePolicy = iota
	// FailFast stops rebuilding and reports the error through Err.
	FailFast
)

var ErrUnknownPolicy = errors.New("system: unknown failure policy")

// ParseFailurePolicy accepts "retry" and "fail-fast".
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "retry":
		return RetryOnChange, nil
	case "fail-fast", "failfast":
		return FailFast, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

func (p FailurePolicy) String() string {
	if p == FailFast {
		return "fail-fast"
	}
	return "retry"
}

// ShapeReplacer attaches a compound collider to an entity, dropping whatever
// collider it had before.
type ShapeReplacer interface {
	ReplaceCompound(e ecs.Entity, c *shape.Compound, sensor bool)
}

// ColliderSystem rebuilds the collider of every dirty outline that has
// enough points.
type ColliderSystem struct {
	replacer    ShapeReplacer
	tessellator shape.Tessellator
	policy      FailurePolicy

	err error
}

// NewColliderSystem creates the rebuilder. A nil replacer falls back to the
// world's PhysicsWorld; a nil tessellator uses shape.Earcut.
func NewColliderSystem(replacer ShapeReplacer, t shape.Tessellator, policy FailurePolicy) *ColliderSystem {
	return &ColliderSystem{replacer: replacer, tessellator: t, policy: policy}
}

// Err returns the rebuild error that stopped a FailFast system.
func (c *ColliderSystem) Err() error {
	if c == nil {
		return nil
	}
	return c.err
}

func (c *ColliderSystem) Update(w *ecs.World) {
	if c == nil || w == nil || c.err != nil {
		return
	}
	replacer := c.replacer
	if replacer == nil {
		if pw := w.PhysicsWorld(); pw != nil {
			replacer = pw
		}
	}

	for _, e := range w.Query(component.AuthoredShapeComponent.Kind()) {
		authored, ok := ecs.Get(w, e, component.AuthoredShapeComponent)
		if !ok || !authored.Dirty || len(authored.Points) < shape.MinPoints {
			continue
		}
		if authored.RebuildFailed && authored.FailedRevision == authored.Revision {
			continue
		}

		compound, err := shape.Rebuild(authored.Points, c.tessellator)
		if err != nil {
			if c.policy == FailFast {
				c.err = fmt.Errorf("collider: entity %v: %w", e, err)
				return
			}
			log.Printf("ColliderSystem: rebuild %v failed, keeping previous collider: %v", e, err)
			authored.RebuildFailed = true
			authored.FailedRevision = authored.Revision
			_ = ecs.Add(w, e, component.AuthoredShapeComponent, authored)
			continue
		}

		if replacer != nil {
			replacer.ReplaceCompound(e, compound, authored.Sensor)
		}
		authored.Collider = compound
		authored.Dirty = false
		authored.RebuildFailed = false
		if err := ecs.Add(w, e, component.AuthoredShapeComponent, authored); err != nil {
			log.Printf("ColliderSystem: store collider on %v: %v", e, err)
		}
	}
}
