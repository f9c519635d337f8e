package ecs

import (
	"errors"
	"math"
	"testing"

	"github.com/milk9111/spritecollider/ecs/component"
	"github.com/milk9111/spritecollider/shape"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			if len(w.Entities()) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(w.Entities()))
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for a dead entity")
				}
				if len(w.Entities()) != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(w.Entities()))
				}
			}
		})
	}
}

func TestWorldRecyclesSlotsWithNewGeneration(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := w.CreateEntity()
	if err := Add(w, old, h, 7); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	w.DestroyEntity(old)

	fresh := w.CreateEntity()
	if fresh.id() != old.id() {
		t.Fatalf("expected slot %d to be reused, got %d", old.id(), fresh.id())
	}
	if fresh == old {
		t.Fatalf("recycled entity must differ from the stale handle")
	}
	if Has(w, fresh, h) {
		t.Fatalf("recycled entity should not inherit components")
	}
	if _, ok := Get(w, old, h); ok {
		t.Fatalf("stale handle should not resolve")
	}
	if err := Add(w, old, h, 1); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()

	ints := component.NewComponent[int]()
	strs := component.NewComponent[string]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, ints, 10) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, ints)
				if !ok || v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, ints) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, strs, "a"); err != nil {
					return err
				}
				return Add(w, e2, strs, "b")
			},
			check: func(t *testing.T) {
				if !Has(w, e1, strs) || !Has(w, e2, strs) {
					t.Fatalf("expected both entities to have string component")
				}
			},
			teardown: func() bool { return Remove(w, e1, strs) },
		},
		{
			name:  "overwrite_value",
			setup: func() error { _ = Add(w, e2, ints, 1); return Add(w, e2, ints, 2) },
			check: func(t *testing.T) {
				if v, _ := Get(w, e2, ints); v != 2 {
					t.Fatalf("expected overwrite to 2, got %d", v)
				}
			},
			teardown: func() bool { return Remove(w, e2, ints) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestQuery(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				a := component.NewComponent[int]()
				b := component.NewComponent[string]()
				e1 := w.CreateEntity()
				e2 := w.CreateEntity()
				e3 := w.CreateEntity()
				_ = Add(w, e1, a, 1)
				_ = Add(w, e2, a, 2)
				_ = Add(w, e2, b, "two")
				_ = Add(w, e3, b, "three")

				res := w.Query(a.Kind(), b.Kind())
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				a := component.NewComponent[int]()
				e := w.CreateEntity()
				_ = Add(w, e, a, 1)
				w.DestroyEntity(e)
				if res := w.Query(a.Kind()); len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "missing_store_returns_nil",
			run: func(t *testing.T) {
				w := NewWorld()
				a := component.NewComponent[int]()
				w.CreateEntity()
				if res := w.Query(a.Kind()); res != nil {
					t.Fatalf("expected nil, got %v", res)
				}
				if _, ok := w.First(a.Kind()); ok {
					t.Fatalf("First should fail without matches")
				}
			},
		},
		{
			name: "slot_order",
			run: func(t *testing.T) {
				w := NewWorld()
				a := component.NewComponent[int]()
				ents := []Entity{w.CreateEntity(), w.CreateEntity(), w.CreateEntity()}
				_ = Add(w, ents[2], a, 3)
				_ = Add(w, ents[0], a, 1)
				_ = Add(w, ents[1], a, 2)
				_ = Remove(w, ents[0], a)
				_ = Add(w, ents[0], a, 1)

				res := w.Query(a.Kind())
				for i := range ents {
					if res[i] != ents[i] {
						t.Fatalf("expected slot order %v, got %v", ents, res)
					}
				}
				var sum int
				ForEach(w, a, func(_ Entity, v int) { sum += v })
				if sum != 6 {
					t.Fatalf("ForEach visited sum %d, want 6", sum)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

type recordingSystem struct {
	name  string
	trace *[]string
}

func (r recordingSystem) Update(w *World) {
	*r.trace = append(*r.trace, r.name)
}

func TestWorldUpdateRunsSystemsInOrderAndFlushesEvents(t *testing.T) {
	w := NewWorld()
	var trace []string
	w.AddSystem(recordingSystem{"input", &trace})
	w.AddSystem(nil)
	w.AddSystem(recordingSystem{"points", &trace})
	w.AddSystem(recordingSystem{"collider", &trace})

	w.Events().Push(Event{Type: EventCursorMoved, Data: CursorMoved{X: 1, Y: 2}})
	w.Update()

	want := []string{"input", "points", "collider"}
	if len(trace) != len(want) {
		t.Fatalf("expected %v, got %v", want, trace)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, trace)
		}
	}
	if w.Events().Len() != 0 {
		t.Fatalf("expected events flushed after update")
	}
}

func TestEventQueueTake(t *testing.T) {
	var q EventQueue
	q.Push(Event{Type: EventCursorMoved, Data: CursorMoved{X: 1}})
	q.Push(Event{Type: "other", Data: 5})
	q.Push(Event{Type: EventCursorMoved, Data: CursorMoved{X: 2}})

	moved := q.Take(EventCursorMoved)
	if len(moved) != 2 {
		t.Fatalf("expected 2 cursor events, got %d", len(moved))
	}
	if last := moved[len(moved)-1].Data.(CursorMoved); last.X != 2 {
		t.Fatalf("expected events in push order, last X=%v", last.X)
	}
	if q.Len() != 1 {
		t.Fatalf("expected one event left, got %d", q.Len())
	}
	if rest := q.Take("other"); len(rest) != 1 || rest[0].Data.(int) != 5 {
		t.Fatalf("expected the other event to remain, got %v", rest)
	}
	if q.Len() != 0 {
		t.Fatalf("expected empty queue after taking every event")
	}
}

func TestPhysicsWorldReplaceCompound(t *testing.T) {
	w := NewWorld()
	pw := NewPhysicsWorld(0)
	w.SetPhysicsWorld(pw)
	e := w.CreateEntity()

	square, err := shape.Rebuild([]shape.Point{shape.Pt(0, 0), shape.Pt(2, 0), shape.Pt(2, 2), shape.Pt(0, 2)}, nil)
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	pw.ReplaceCompound(e, square, true)

	shapes := pw.Shapes(e)
	if len(shapes) != 2 {
		t.Fatalf("expected 2 shapes, got %d", len(shapes))
	}
	var area float64
	for _, s := range shapes {
		if !s.Sensor() {
			t.Fatalf("expected sensor shapes")
		}
		if !pw.Space().ContainsShape(s) {
			t.Fatalf("shape not added to space")
		}
		if s.Body() == nil || s.Body() != shapes[0].Body() {
			t.Fatalf("expected every triangle on the entity's single body")
		}
		area += math.Abs(s.Area())
	}
	if area < 3.999 || area > 4.001 {
		t.Fatalf("expected total shape area 4, got %v", area)
	}

	tri, err := shape.Rebuild([]shape.Point{shape.Pt(0, 0), shape.Pt(1, 0), shape.Pt(0, 1)}, nil)
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	pw.ReplaceCompound(e, tri, false)
	for _, s := range shapes {
		if pw.Space().ContainsShape(s) {
			t.Fatalf("old shapes should be removed on replace")
		}
	}
	if got := len(pw.Shapes(e)); got != 1 {
		t.Fatalf("expected 1 shape after replace, got %d", got)
	}
	if pw.Replacements() != 2 {
		t.Fatalf("expected 2 replacements, got %d", pw.Replacements())
	}
	pw.Step(1.0 / 60)

	w.DestroyEntity(e)
	if len(pw.Shapes(e)) != 0 {
		t.Fatalf("destroying the entity should drop its shapes")
	}
}
