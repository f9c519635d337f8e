package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Dir is the directory relative paths fall back to when they do not exist
// as given.
const Dir = "assets"

var ErrNotFound = errors.New("assets: file not found")

// Resolve finds the file for path. It tries path as given, then under Dir,
// and finally path with a leading "assets/" stripped and re-rooted under Dir.
func Resolve(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrNotFound)
	}
	for _, candidate := range candidates(path) {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, path)
}

func candidates(path string) []string {
	out := []string{filepath.Clean(path)}
	if filepath.IsAbs(path) {
		return out
	}
	s := filepath.ToSlash(filepath.Clean(path))
	if rel, ok := strings.CutPrefix(s, Dir+"/"); ok {
		return append(out, filepath.Join(Dir, filepath.FromSlash(rel)))
	}
	return append(out, filepath.Join(Dir, filepath.FromSlash(s)))
}

// Decode reads and decodes the image at path. The format name is one of the
// registered decoders: png, jpeg, gif, bmp or webp.
func Decode(path string) (image.Image, string, error) {
	resolved, err := Resolve(path)
	if err != nil {
		return nil, "", err
	}
	f, err := os.Open(resolved)
	if err != nil {
		return nil, "", fmt.Errorf("assets: open %s: %w", resolved, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("assets: decode %s: %w", resolved, err)
	}
	return img, format, nil
}

// LoadImage loads the image at path as an *ebiten.Image.
func LoadImage(path string) (*ebiten.Image, error) {
	img, _, err := Decode(path)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// IsImageFile reports whether path has an extension LoadImage can decode.
func IsImageFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".webp":
		return true
	}
	return false
}
