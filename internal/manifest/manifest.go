// Package manifest loads atlas descriptions from YAML: a prepacked atlas
// image plus the bitmaps it contains and where they sit.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-atlas/internal/assets"
	"github.com/Faultbox/midgard-atlas/internal/atlas"
	"github.com/Faultbox/midgard-atlas/internal/engine/texture"
)

// ErrNoAtlasImage is returned for manifests without an atlas image.
var ErrNoAtlasImage = errors.New("manifest: no atlas image")

// Manifest describes one prepacked atlas.
type Manifest struct {
	Atlas   string   `yaml:"atlas"`   // Atlas image, relative to the manifest
	Bitmaps []Bitmap `yaml:"bitmaps"` // Bitmaps packed into the atlas

	dir string
}

// Bitmap is one source bitmap and its top-left position in the atlas.
type Bitmap struct {
	Name string `yaml:"name"`
	File string `yaml:"file"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
}

// Result is a manifest resolved against a registry.
type Result struct {
	Buffer     texture.Buffer
	Placements []atlas.Placement
	Keys       map[string]atlas.Key // Bitmap name to identity
}

// Load reads a manifest file. Relative image paths are resolved against the
// manifest's directory.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	m.dir = filepath.Dir(path)
	return m, nil
}

// Parse decodes a manifest from YAML.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m.Atlas == "" {
		return nil, ErrNoAtlasImage
	}

	seen := make(map[string]bool, len(m.Bitmaps))
	for i, b := range m.Bitmaps {
		if b.Name == "" {
			m.Bitmaps[i].Name = b.File
		}
		if seen[m.Bitmaps[i].Name] {
			return nil, fmt.Errorf("duplicate bitmap name %q", m.Bitmaps[i].Name)
		}
		seen[m.Bitmaps[i].Name] = true
	}
	return &m, nil
}

// Build decodes the atlas image and every bitmap, registers the bitmaps in
// reg and returns the atlas buffer with one placement per bitmap.
func (m *Manifest) Build(reg *assets.Registry) (*Result, error) {
	atlasImg, err := decodeFile(m.resolve(m.Atlas))
	if err != nil {
		return nil, fmt.Errorf("atlas image: %w", err)
	}

	res := &Result{
		Buffer:     texture.NewRGBABuffer(atlasImg),
		Placements: make([]atlas.Placement, 0, len(m.Bitmaps)),
		Keys:       make(map[string]atlas.Key, len(m.Bitmaps)),
	}

	for _, b := range m.Bitmaps {
		img, err := decodeFile(m.resolve(b.File))
		if err != nil {
			return nil, fmt.Errorf("bitmap %s: %w", b.Name, err)
		}

		key := reg.Add(img)
		res.Keys[b.Name] = key
		res.Placements = append(res.Placements, atlas.Placement{Key: key, X: b.X, Y: b.Y})
	}

	return res, nil
}

func (m *Manifest) resolve(path string) string {
	if filepath.IsAbs(path) || m.dir == "" {
		return path
	}
	return filepath.Join(m.dir, path)
}

// decodeFile decodes PNG, JPEG, BMP, WebP or TGA images.
func decodeFile(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// TGA has no magic number, so it is chosen by extension.
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		img, err := texture.DecodeTGA(data)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
		return img, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}
