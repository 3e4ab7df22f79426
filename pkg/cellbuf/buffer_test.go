package cellbuf

import (
	"image"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

// Test style keys
const (
	testBG   StyleKey = 0
	testRed  StyleKey = 1
	testBlue StyleKey = 2
)

func testStyles() map[StyleKey]lipgloss.Style {
	return map[StyleKey]lipgloss.Style{
		testBG:   lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")),
		testRed:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")),
		testBlue: lipgloss.NewStyle().Foreground(lipgloss.Color("#0000ff")),
	}
}

func TestNew(t *testing.T) {
	b := New(10, 5, testBG)
	if b.W != 10 || b.H != 5 {
		t.Fatalf("expected 10x5, got %dx%d", b.W, b.H)
	}
	if len(b.Cells) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(b.Cells))
	}
	for y := 0; y < 5; y++ {
		if len(b.Cells[y]) != 10 {
			t.Fatalf("row %d: expected 10 cols, got %d", y, len(b.Cells[y]))
		}
		for x := 0; x < 10; x++ {
			c := b.Cells[y][x]
			if c.Ch != ' ' || c.Style != testBG {
				t.Fatalf("cell (%d,%d): expected space/testBG, got %q/%d", x, y, c.Ch, c.Style)
			}
		}
	}
}

func TestNewZeroSize(t *testing.T) {
	b := New(0, 0, testBG)
	if b.W != 0 || b.H != 0 {
		t.Fatalf("expected 0x0, got %dx%d", b.W, b.H)
	}
	styles := testStyles()
	result := b.Render(styles)
	if result != "" {
		t.Fatalf("expected empty string, got %q", result)
	}
}

func TestNewNegativeSize(t *testing.T) {
	b := New(-5, -3, testBG)
	if b.W != 0 || b.H != 0 {
		t.Fatalf("expected 0x0 for negative sizes, got %dx%d", b.W, b.H)
	}
}

func TestInBounds(t *testing.T) {
	b := New(10, 5, testBG)
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 4, true},
		{5, 2, true},
		{-1, 0, false},
		{0, -1, false},
		{10, 0, false},
		{0, 5, false},
		{10, 5, false},
	}
	for _, tc := range tests {
		got := b.InBounds(tc.x, tc.y)
		if got != tc.want {
			t.Errorf("InBounds(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestSet(t *testing.T) {
	b := New(10, 5, testBG)
	b.Set(3, 2, 'X', testRed)
	c := b.Cells[2][3]
	if c.Ch != 'X' || c.Style != testRed {
		t.Fatalf("expected X/testRed, got %q/%d", c.Ch, c.Style)
	}
}

func TestSetOutOfBounds(t *testing.T) {
	b := New(10, 5, testBG)
	// These should not panic
	b.Set(-1, 0, 'X', testRed)
	b.Set(0, -1, 'X', testRed)
	b.Set(10, 0, 'X', testRed)
	b.Set(0, 5, 'X', testRed)
	b.Set(100, 100, 'X', testRed)

	// Verify nothing changed
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if b.Cells[y][x].Ch != ' ' {
				t.Fatalf("out-of-bounds Set modified cell (%d,%d)", x, y)
			}
		}
	}
}

func TestSetString(t *testing.T) {
	b := New(10, 5, testBG)
	b.SetString(2, 1, "Hello", testBlue)

	expected := "Hello"
	for i, ch := range expected {
		c := b.Cells[1][2+i]
		if c.Ch != ch || c.Style != testBlue {
			t.Errorf("pos %d: expected %q/testBlue, got %q/%d", i, ch, c.Ch, c.Style)
		}
	}
	// Character before and after should be unchanged
	if b.Cells[1][1].Ch != ' ' {
		t.Error("cell before string was modified")
	}
	if b.Cells[1][7].Ch != ' ' {
		t.Error("cell after string was modified")
	}
}

func TestSetStringClipsAtBounds(t *testing.T) {
	b := New(5, 1, testBG)
	b.SetString(3, 0, "Hello", testRed) // only "He" fits
	if b.Cells[0][3].Ch != 'H' || b.Cells[0][4].Ch != 'e' {
		t.Error("expected H and e at positions 3,4")
	}
	// Should not panic or corrupt
}

func TestSetLines(t *testing.T) {
	b := New(8, 4, testBG)
	b.SetLines(1, 1, []string{"save", "as"}, testRed)
	if got := string([]rune{b.At(1, 1).Ch, b.At(2, 1).Ch, b.At(3, 1).Ch, b.At(4, 1).Ch}); got != "save" {
		t.Errorf("row 1: got %q", got)
	}
	if b.At(1, 2).Ch != 'a' || b.At(2, 2).Ch != 's' || b.At(3, 2).Style != testBG {
		t.Error("row 2 not written as expected")
	}
}

func TestSetStringMultibyte(t *testing.T) {
	b := New(4, 1, testBG)
	b.SetString(0, 0, "▲─◀", testRed)
	if b.At(0, 0).Ch != '▲' || b.At(1, 0).Ch != '─' || b.At(2, 0).Ch != '◀' {
		t.Errorf("multibyte runes should occupy one cell each: %+v", b.Cells[0])
	}
	if b.At(3, 0).Ch != ' ' {
		t.Error("cell after string was modified")
	}
}

func TestAtOutOfBounds(t *testing.T) {
	b := New(2, 2, testRed)
	if c := b.At(5, 5); c != (Cell{}) {
		t.Errorf("expected zero cell, got %+v", c)
	}
	if b.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Errorf("Bounds: got %v", b.Bounds())
	}
}

func TestFillRectClips(t *testing.T) {
	b := New(5, 3, testBG)
	b.FillRect(image.Rect(3, 1, 10, 10), '#', testBlue)
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			c := b.At(x, y)
			inside := x >= 3 && y >= 1
			if inside && (c.Ch != '#' || c.Style != testBlue) {
				t.Errorf("cell (%d,%d) should be filled, got %q/%d", x, y, c.Ch, c.Style)
			}
			if !inside && c.Ch != ' ' {
				t.Errorf("cell (%d,%d) outside rect was modified", x, y)
			}
		}
	}
}

func TestCrop(t *testing.T) {
	b := New(5, 3, testBG)
	b.SetString(0, 1, "abcde", testRed)
	c := b.Crop(image.Rect(2, 1, 9, 9))
	if c.W != 3 || c.H != 2 {
		t.Fatalf("crop size: expected 3x2, got %dx%d", c.W, c.H)
	}
	if c.At(0, 0).Ch != 'c' || c.At(2, 0).Ch != 'e' || c.At(0, 1).Ch != ' ' {
		t.Errorf("crop content wrong: %+v", c.Cells)
	}
	c.Set(0, 0, 'X', testBlue)
	if b.At(2, 1).Ch != 'c' {
		t.Error("crop must copy cells")
	}
	if e := b.Crop(image.Rect(10, 10, 12, 12)); e.W != 0 || e.H != 0 {
		t.Errorf("disjoint crop: expected empty, got %dx%d", e.W, e.H)
	}
}

func TestFill(t *testing.T) {
	b := New(5, 3, testBG)
	b.Set(2, 1, 'X', testRed)
	b.Fill(testBlue)
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			c := b.Cells[y][x]
			if c.Ch != ' ' || c.Style != testBlue {
				t.Fatalf("Fill: cell (%d,%d) = %q/%d, want space/testBlue", x, y, c.Ch, c.Style)
			}
		}
	}
}

func TestRenderLineCount(t *testing.T) {
	styles := testStyles()
	b := New(20, 5, testBG)
	result := b.Render(styles)
	lines := strings.Split(result, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
}

func TestRenderContent(t *testing.T) {
	styles := testStyles()
	b := New(10, 1, testBG)
	b.SetString(2, 0, "Hi", testRed)
	result := b.Render(styles)

	// The result should contain "Hi" somewhere (surrounded by ANSI escapes)
	if !strings.Contains(result, "Hi") {
		t.Fatalf("rendered output doesn't contain 'Hi': %q", result)
	}
}

func TestRenderMergesRuns(t *testing.T) {
	styles := testStyles()

	// All same style: should produce fewer ANSI escapes than per-cell
	b := New(50, 1, testBG)
	uniform := b.Render(styles)

	// Alternating styles: should produce more ANSI escapes
	b2 := New(50, 1, testBG)
	for x := 0; x < 50; x++ {
		if x%2 == 0 {
			b2.Set(x, 0, '.', testRed)
		} else {
			b2.Set(x, 0, '.', testBlue)
		}
	}
	alternating := b2.Render(styles)

	// Uniform should be shorter (fewer escape sequences)
	if len(uniform) >= len(alternating) {
		t.Errorf("uniform render (%d bytes) should be shorter than alternating (%d bytes)",
			len(uniform), len(alternating))
	}
}

func TestRenderMissingStyle(t *testing.T) {
	// Style key 99 not in the map: should render without ANSI (plain text)
	styles := testStyles()
	b := New(5, 1, StyleKey(99))
	b.SetString(0, 0, "plain", StyleKey(99))
	result := b.Render(styles)
	if !strings.Contains(result, "plain") {
		t.Fatalf("missing style should still render text: %q", result)
	}
}

func BenchmarkRender200x50(b *testing.B) {
	styles := testStyles()
	buf := New(200, 50, testBG)
	// Add some variety
	for y := 0; y < 50; y++ {
		for x := 0; x < 200; x++ {
			if x%5 == 0 && y%3 == 0 {
				buf.Set(x, y, '·', testRed)
			}
		}
		if y < 200 {
			buf.Set(y, y%50, '/', testBlue)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = buf.Render(styles)
	}
}

// BenchmarkRenderRealistic simulates the canvas background: mostly blank
// cells with sparse grid dots and one diagonal of a second style.
func BenchmarkRenderRealistic(b *testing.B) {
	styles := testStyles()
	buf := New(150, 40, testBG)
	// Grid dots
	for y := 0; y < 40; y++ {
		for x := 0; x < 150; x++ {
			if x%5 == 0 && y%3 == 0 {
				buf.Set(x, y, '·', testRed)
			}
		}
		// One diagonal edge
		if y < 150 {
			buf.Set(y, y%40, '/', testBlue)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = buf.Render(styles)
	}
}
