package icon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// Relative locations of DejaVu Sans under the XDG data dirs, covering
// the Arch and Debian font layouts.
var defaultFontPaths = []string{
	"fonts/TTF/DejaVuSans.ttf",
	"fonts/truetype/dejavu/DejaVuSans.ttf",
}

// LoadFace reads a scalable font from path and derives the fixed-scale
// face every icon is drawn with. An empty path searches the XDG data
// dirs for DejaVu Sans.
func LoadFace(path string) (font.Face, error) {
	if path == "" {
		found, err := findDefaultFont()
		if err != nil {
			return nil, err
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}

	return NewFace(data)
}

// NewFace parses font data and returns a face at TextScale.
func NewFace(data []byte) (font.Face, error) {
	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    TextScale,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}

	return face, nil
}

func findDefaultFont() (string, error) {
	for _, dir := range xdg.DataDirs {
		for _, rel := range defaultFontPaths {
			p := filepath.Join(dir, rel)
			if _, err := os.Stat(p); err == nil {
				return p, nil
			}
		}
	}
	return "", fmt.Errorf("DejaVuSans.ttf not found under %v, pass -font", xdg.DataDirs)
}
