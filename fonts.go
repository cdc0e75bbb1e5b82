package tierbar

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts resolves TextStyle sizes to faces of a single font source and
// measures text with them. Faces are cached per size.
//
// Fonts is safe for concurrent use.
type Fonts struct {
	src *text.FontSource

	mu    sync.Mutex
	faces map[float64]text.Face
}

// NewFonts wraps an already loaded font source.
func NewFonts(src *text.FontSource) *Fonts {
	return &Fonts{src: src, faces: make(map[float64]text.Face)}
}

// DefaultFonts returns Fonts backed by the embedded Go Regular font.
func DefaultFonts() (*Fonts, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("tierbar: load default font: %w", err)
	}
	return NewFonts(src), nil
}

// LoadFonts loads a TTF/OTF file.
func LoadFonts(path string) (*Fonts, error) {
	src, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("tierbar: load font %s: %w", path, err)
	}
	return NewFonts(src), nil
}

// Face returns the face for size, creating it on first use.
func (f *Fonts) Face(size float64) text.Face {
	f.mu.Lock()
	defer f.mu.Unlock()
	face, ok := f.faces[size]
	if !ok {
		face = f.src.Face(size)
		f.faces[size] = face
	}
	return face
}

// MeasureText implements TextMeasurer. The height is the face's line height.
func (f *Fonts) MeasureText(s string, st TextStyle) (w, h float64) {
	if s == "" || st.Size <= 0 {
		return 0, 0
	}
	return text.Measure(s, f.Face(st.Size))
}

// Name returns the font family name.
func (f *Fonts) Name() string { return f.src.Name() }

// Close releases the font source.
func (f *Fonts) Close() error {
	f.mu.Lock()
	clear(f.faces)
	f.mu.Unlock()
	return f.src.Close()
}
