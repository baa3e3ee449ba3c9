package vision

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractRegionsMergesAllComponents(t *testing.T) {
	m := maskFromRows(t,
		"##....",
		"##....",
		"......",
		"....##",
		"....##",
	)

	merged, count, err := ExtractRegions(m)
	if err != nil {
		t.Fatalf("ExtractRegions: %v", err)
	}
	if count != 2 {
		t.Errorf("component count = %d, want 2", count)
	}
	if diff := cmp.Diff(renderMask(m), renderMask(merged)); diff != "" {
		t.Errorf("merged mask differs from input (-want +got):\n%s", diff)
	}
}

func TestExtractRegionsDiagonalConnectivity(t *testing.T) {
	// Pixels touching only at corners form one component under
	// 8-connectivity.
	m := maskFromRows(t,
		"#...",
		".#..",
		"..#.",
		"...#",
	)

	_, count, err := ExtractRegions(m)
	if err != nil {
		t.Fatalf("ExtractRegions: %v", err)
	}
	if count != 1 {
		t.Errorf("component count = %d, want 1", count)
	}
}

func TestExtractRegionsSeparateBlobsStaySeparate(t *testing.T) {
	// A full background row between blobs keeps them distinct even
	// diagonally.
	m := maskFromRows(t,
		"#....",
		".....",
		"....#",
	)

	_, count, err := ExtractRegions(m)
	if err != nil {
		t.Fatalf("ExtractRegions: %v", err)
	}
	if count != 2 {
		t.Errorf("component count = %d, want 2", count)
	}
}

func TestExtractRegionsEmptyMask(t *testing.T) {
	m := NewMask(5, 5)

	_, _, err := ExtractRegions(m)
	if err == nil {
		t.Fatal("ExtractRegions on empty mask returned nil error")
	}
	if !errors.Is(err, ErrNoObject) {
		t.Errorf("error = %v, want ErrNoObject", err)
	}
}

func TestExtractRegionsSingleComponentIdentity(t *testing.T) {
	m := maskFromRows(t,
		".....",
		".###.",
		".###.",
		".....",
	)

	merged, count, err := ExtractRegions(m)
	if err != nil {
		t.Fatalf("ExtractRegions: %v", err)
	}
	if count != 1 {
		t.Errorf("component count = %d, want 1", count)
	}
	if merged.Count() != m.Count() {
		t.Errorf("merged pixel count = %d, want %d", merged.Count(), m.Count())
	}
}
