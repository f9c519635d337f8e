package entity

import (
	"testing"

	"github.com/milk9111/spritecollider/ecs"
	"github.com/milk9111/spritecollider/ecs/component"
)

func TestNewView(t *testing.T) {
	w := ecs.NewWorld()
	view, err := NewView(w, 0)
	if err != nil {
		t.Fatalf("new view: %v", err)
	}
	d, ok := ecs.Get(w, view, component.DisplayComponent)
	if !ok || d.Scale != 1 {
		t.Fatalf("expected default scale 1, got %+v ok=%v", d, ok)
	}
	in, _ := ecs.Get(w, view, component.InputComponent)
	if in.ZoomDigit != -1 {
		t.Fatalf("expected no zoom digit, got %d", in.ZoomDigit)
	}
	if got, ok := w.First(component.ViewTagComponent.Kind()); !ok || got != view {
		t.Fatalf("view tag not found")
	}
}

func TestNewMainImage(t *testing.T) {
	cases := []struct {
		name      string
		opts      MainImageOptions
		authoring bool
	}{
		{"viewer", MainImageOptions{Path: "ship.png", Scale: 3}, false},
		{"editor", MainImageOptions{Path: "ship.png", Scale: 2, Sensor: true, Authoring: true}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e, err := NewMainImage(w, c.opts)
			if err != nil {
				t.Fatalf("new main image: %v", err)
			}
			tr, _ := ecs.Get(w, e, component.TransformComponent)
			if tr.ScaleX != c.opts.Scale || tr.ScaleY != c.opts.Scale {
				t.Fatalf("expected scale %v, got %+v", c.opts.Scale, tr)
			}
			s, _ := ecs.Get(w, e, component.SpriteComponent)
			if s.Path != c.opts.Path {
				t.Fatalf("expected path %q, got %q", c.opts.Path, s.Path)
			}
			a, ok := ecs.Get(w, e, component.AuthoredShapeComponent)
			if ok != c.authoring {
				t.Fatalf("authoring = %v, want %v", ok, c.authoring)
			}
			if ok && a.Sensor != c.opts.Sensor {
				t.Fatalf("sensor flag not forwarded")
			}
		})
	}
}
