package vision

import "testing"

func TestDilateGrowsSinglePixel(t *testing.T) {
	m := maskFromRows(t,
		".....",
		".....",
		"..#..",
		".....",
		".....",
	)

	got := renderMask(Dilate(m))
	want := renderMask(maskFromRows(t,
		".....",
		".###.",
		".###.",
		".###.",
		".....",
	))
	if got != want {
		t.Errorf("Dilate mismatch:\ngot:\n%swant:\n%s", got, want)
	}
}

func TestErodeShrinksBlock(t *testing.T) {
	m := maskFromRows(t,
		".....",
		".###.",
		".###.",
		".###.",
		".....",
	)

	got := renderMask(Erode(m))
	want := renderMask(maskFromRows(t,
		".....",
		".....",
		"..#..",
		".....",
		".....",
	))
	if got != want {
		t.Errorf("Erode mismatch:\ngot:\n%swant:\n%s", got, want)
	}
}

func TestCloseFillsHole(t *testing.T) {
	m := maskFromRows(t,
		".....",
		".###.",
		".#.#.",
		".###.",
		".....",
	)

	closed := Close(m)
	if !closed.At(2, 2) {
		t.Error("closing left the interior hole open")
	}
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			if !closed.At(x, y) {
				t.Errorf("closing lost block pixel (%d,%d)", x, y)
			}
		}
	}
}

func TestCloseBridgesOnePixelGap(t *testing.T) {
	m := maskFromRows(t, "#.#")

	got := renderMask(Close(m))
	want := renderMask(maskFromRows(t, "###"))
	if got != want {
		t.Errorf("Close mismatch:\ngot:\n%swant:\n%s", got, want)
	}
}

func TestClosePreservesIsolatedPixel(t *testing.T) {
	m := maskFromRows(t,
		"...",
		".#.",
		"...",
	)

	closed := Close(m)
	if !closed.At(1, 1) {
		t.Error("closing erased an isolated pixel")
	}
	if closed.Count() != 1 {
		t.Errorf("closing changed pixel count to %d, want 1", closed.Count())
	}
}

// Erosion treats out-of-bounds neighbors as foreground, so shapes touching
// the border keep their edge rows.
func TestCloseAtBorder(t *testing.T) {
	m := maskFromRows(t,
		"###",
		"###",
		"...",
	)

	closed := Close(m)
	for x := 0; x < 3; x++ {
		if !closed.At(x, 0) {
			t.Errorf("border pixel (%d,0) lost during closing", x)
		}
	}
}

func TestCloseEmptyMaskStaysEmpty(t *testing.T) {
	m := NewMask(4, 4)
	if got := Close(m).Count(); got != 0 {
		t.Errorf("Close(empty).Count() = %d, want 0", got)
	}
}

func TestDilateDoesNotMutateInput(t *testing.T) {
	m := maskFromRows(t,
		"...",
		".#.",
		"...",
	)
	before := renderMask(m)

	Dilate(m)

	if after := renderMask(m); after != before {
		t.Errorf("Dilate mutated its input:\nbefore:\n%safter:\n%s", before, after)
	}
}
