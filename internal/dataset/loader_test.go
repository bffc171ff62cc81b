package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadPairs(t *testing.T) {
	d := New(10)
	stats, err := Load(strings.NewReader("2104 399.9\n1600 329.9\n  2400\t369\n"), d)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if stats.Loaded != 3 || stats.Truncated {
		t.Fatalf("unexpected stats %+v", stats)
	}
	assertSeries(t, "features", d.Features(), []float64{2104, 1600, 2400})
	assertSeries(t, "targets", d.Targets(), []float64{399.9, 329.9, 369})
}

func TestLoadStopsAtCapacity(t *testing.T) {
	d := New(2)
	stats, err := Load(strings.NewReader("1 1 2 2 3 3 4 4"), d)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if stats.Loaded != 2 || !stats.Truncated {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if d.Len() != 2 {
		t.Fatalf("expected 2 samples, got %d", d.Len())
	}
}

func TestLoadExactlyFull(t *testing.T) {
	d := New(2)
	stats, err := Load(strings.NewReader("1 1 2 2\n"), d)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if stats.Truncated {
		t.Fatal("exact fill reported as truncated")
	}
}

func TestLoadKeepsPairsBeforeError(t *testing.T) {
	d := New(5)
	stats, err := Load(strings.NewReader("1 2 3 x 5 6"), d)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "token 4") {
		t.Fatalf("error does not name the token: %v", err)
	}
	if stats.Loaded != 1 || d.Len() != 1 {
		t.Fatalf("expected one pair kept, stats=%+v len=%d", stats, d.Len())
	}
}

func TestLoadRejectsNonFiniteTokens(t *testing.T) {
	for _, input := range []string{"1 2\nNaN 3\n4 5\n", "1 2\n4 Inf\n", "1 2\n-Infinity 0\n"} {
		d := New(5)
		stats, err := Load(strings.NewReader(input), d)
		if !errors.Is(err, ErrNonFinite) {
			t.Fatalf("Load(%q): expected ErrNonFinite, got %v", input, err)
		}
		if !strings.Contains(err.Error(), "token 4") {
			t.Fatalf("Load(%q): error does not name the token: %v", input, err)
		}
		if stats.Loaded != 1 || d.Len() != 1 {
			t.Fatalf("Load(%q): expected one pair kept, stats=%+v len=%d", input, stats, d.Len())
		}
		if b, _ := d.Bounds(); b != (Bounds{FeatureMin: 1, FeatureMax: 1, TargetMin: 2, TargetMax: 2}) {
			t.Fatalf("Load(%q): bounds polluted: %+v", input, b)
		}
	}
}

func TestLoadIncompletePair(t *testing.T) {
	d := New(5)
	_, err := Load(strings.NewReader("1 2 3"), d)
	if err == nil || !strings.Contains(err.Error(), "incomplete pair") {
		t.Fatalf("expected incomplete pair error, got %v", err)
	}
	if d.Len() != 1 {
		t.Fatalf("expected 1 sample, got %d", d.Len())
	}
}

func TestLoadEmpty(t *testing.T) {
	d := New(5)
	stats, err := Load(strings.NewReader("   \n"), d)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if stats.Loaded != 0 || d.Len() != 0 {
		t.Fatalf("expected empty dataset, got %d", d.Len())
	}
}

func TestLoadFileMissing(t *testing.T) {
	d := New(5)
	_, err := LoadFile(filepath.Join(t.TempDir(), "size_price_examples.txt"), d)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if d.Len() != 0 {
		t.Fatalf("dataset should stay empty, got %d", d.Len())
	}
}

func TestLoadPathDirectory(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "01.txt"), "1 10\n2 20\n")
	mustWrite(t, filepath.Join(dir, "02.txt"), "3 30\n4 40\n")
	mustWrite(t, filepath.Join(dir, "notes.md"), "not samples")

	d := New(3)
	stats, err := LoadPath(dir, d)
	if err != nil {
		t.Fatalf("LoadPath: %v", err)
	}
	if stats.Loaded != 3 || !stats.Truncated {
		t.Fatalf("unexpected stats %+v", stats)
	}
	assertSeries(t, "features", d.Features(), []float64{1, 2, 3})
}

func TestLoadPathFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.dat")
	mustWrite(t, path, "5 6\n")
	d := New(3)
	if _, err := LoadPath(path, d); err != nil {
		t.Fatalf("LoadPath: %v", err)
	}
	if d.Len() != 1 {
		t.Fatalf("expected 1 sample, got %d", d.Len())
	}
}
