package assets

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func TestDecode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ship.png")
	writePNG(t, path, 6, 4)

	img, format, err := Decode(path)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if format != "png" {
		t.Fatalf("expected png, got %q", format)
	}
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 4 {
		t.Fatalf("expected 6x4, got %v", b)
	}

	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, _, err := Decode(bad); err == nil {
		t.Fatalf("expected decode error for garbage")
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.Mkdir(Dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writePNG(t, filepath.Join(Dir, "rock.png"), 1, 1)
	writePNG(t, "top.png", 1, 1)

	cases := []struct {
		name string
		in   string
		want string
		err  error
	}{
		{"as_given", "top.png", "top.png", nil},
		{"under_assets", "rock.png", filepath.Join(Dir, "rock.png"), nil},
		{"assets_prefix", "assets/rock.png", filepath.Join(Dir, "rock.png"), nil},
		{"missing", "nope.png", "", ErrNotFound},
		{"empty", "", "", ErrNotFound},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Resolve(c.in)
			if c.err != nil {
				if !errors.Is(err, c.err) {
					t.Fatalf("expected %v, got %v", c.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if got != c.want {
				t.Fatalf("expected %q, got %q", c.want, got)
			}
		})
	}
}

func TestIsImageFile(t *testing.T) {
	cases := map[string]bool{
		"a.png":       true,
		"a.PNG":       true,
		"b.jpeg":      true,
		"c.webp":      true,
		"d.bmp":       true,
		"e.yaml":      false,
		"noextension": false,
	}
	for in, want := range cases {
		if got := IsImageFile(in); got != want {
			t.Fatalf("IsImageFile(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestDebouncerFiresOnceAfterLastTouch(t *testing.T) {
	const window = 200 * time.Millisecond
	d := newDebouncer(window)
	defer d.stop()

	var last time.Time
	for i := 0; i < 4; i++ {
		last = time.Now()
		d.touch("a.png")
		time.Sleep(window / 10)
	}
	d.touch("b.png")

	got := map[string]int{}
	deadline := time.After(2 * time.Second)
	for len(got) < 2 {
		select {
		case name := <-d.ready:
			if name == "a.png" && time.Since(last) < window {
				t.Fatalf("a.png fired %v after its last write, before the %v quiet period", time.Since(last), window)
			}
			got[name]++
		case <-deadline:
			t.Fatalf("timed out, got %v", got)
		}
	}

	select {
	case name := <-d.ready:
		t.Fatalf("unexpected extra event for %s", name)
	case <-time.After(3 * window):
	}
	if got["a.png"] != 1 || got["b.png"] != 1 {
		t.Fatalf("expected one event per file, got %v", got)
	}
}

func TestDebouncerStopDropsPending(t *testing.T) {
	d := newDebouncer(20 * time.Millisecond)
	d.touch("a.png")
	d.stop()
	d.touch("b.png")

	select {
	case name := <-d.ready:
		t.Fatalf("stopped debouncer fired for %s", name)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatcherReportsWatchedFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "ship.png")
	other := filepath.Join(dir, "other.png")
	writePNG(t, target, 2, 2)
	writePNG(t, other, 2, 2)

	w, err := NewWatcher(target)
	if err != nil {
		t.Skipf("file watching unavailable: %v", err)
	}
	defer w.Close()

	writePNG(t, other, 3, 3)
	writePNG(t, target, 4, 4)

	select {
	case got := <-w.Events:
		if got != target {
			t.Fatalf("expected %s, got %s", target, got)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for change event")
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	for range w.Events {
	}
}
