package tierbar

import (
	"path/filepath"
	"testing"
)

func TestDefaultFonts_MeasureText(t *testing.T) {
	f, err := DefaultFonts()
	if err != nil {
		t.Fatalf("DefaultFonts() error = %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })

	st := TextStyle{Size: 12}
	w1, h1 := f.MeasureText("Tier", st)
	w2, _ := f.MeasureText("Tier Tier", st)
	if w1 <= 0 || h1 <= 0 {
		t.Fatalf("MeasureText(Tier) = %v, %v, want positive", w1, h1)
	}
	if w2 <= w1 {
		t.Errorf("longer text measured %v, want more than %v", w2, w1)
	}

	wBig, hBig := f.MeasureText("Tier", TextStyle{Size: 24})
	if wBig <= w1 || hBig <= h1 {
		t.Errorf("24pt = %v x %v, want larger than 12pt %v x %v", wBig, hBig, w1, h1)
	}

	if w, h := f.MeasureText("", st); w != 0 || h != 0 {
		t.Errorf("MeasureText(\"\") = %v, %v, want 0, 0", w, h)
	}
	if w, h := f.MeasureText("x", TextStyle{}); w != 0 || h != 0 {
		t.Errorf("zero size MeasureText = %v, %v, want 0, 0", w, h)
	}
}

func TestFonts_FaceCache(t *testing.T) {
	f, err := DefaultFonts()
	if err != nil {
		t.Fatalf("DefaultFonts() error = %v", err)
	}
	defer f.Close()

	f.Face(12)
	f.Face(12)
	f.Face(14)
	if n := len(f.faces); n != 2 {
		t.Errorf("cached faces = %d, want 2", n)
	}
}

func TestLoadFonts_Missing(t *testing.T) {
	if _, err := LoadFonts(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("LoadFonts() of a missing file should fail")
	}
}
