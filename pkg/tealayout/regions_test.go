package tealayout

import (
	"image"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func hostLayout(w, h int) Layout {
	return NewLayoutBuilder(w, h).
		TopFixed("toolbar", 1).
		BottomFixed("footer", 1).
		Remaining("canvas").
		Build()
}

func TestLayoutBasic(t *testing.T) {
	l := hostLayout(80, 24)

	if l.TermW != 80 || l.TermH != 24 {
		t.Fatalf("term size: expected 80x24, got %dx%d", l.TermW, l.TermH)
	}
	if tb := l.Get("toolbar"); tb.Rect != image.Rect(0, 0, 80, 1) {
		t.Errorf("toolbar: expected (0,0)-(80,1), got %v", tb.Rect)
	}
	if ft := l.Get("footer"); ft.Rect != image.Rect(0, 23, 80, 24) {
		t.Errorf("footer: expected (0,23)-(80,24), got %v", ft.Rect)
	}
	if cv := l.Get("canvas"); cv.Rect != image.Rect(0, 1, 80, 23) {
		t.Errorf("canvas: expected (0,1)-(80,23), got %v", cv.Rect)
	}
	if l.Screen() != image.Rect(0, 0, 80, 24) {
		t.Errorf("screen: got %v", l.Screen())
	}
}

func TestLayoutRemainingOnly(t *testing.T) {
	l := NewLayoutBuilder(80, 24).Remaining("full").Build()
	if r := l.Get("full"); r.Rect != image.Rect(0, 0, 80, 24) {
		t.Errorf("full: expected (0,0)-(80,24), got %v", r.Rect)
	}
}

func TestLayoutZeroSize(t *testing.T) {
	l := NewLayoutBuilder(0, 0).
		TopFixed("toolbar", 3).
		Remaining("canvas").
		Build()

	// 3 rows consumed from a 0-row terminal: both regions clamp to empty.
	if cv := l.Get("canvas"); !cv.Rect.Empty() {
		t.Errorf("zero term canvas: expected empty rect, got %v", cv.Rect)
	}
	if tb := l.Get("toolbar"); tb.Rect != (image.Rectangle{}) {
		t.Errorf("zero-width toolbar should clamp to zero rect, got %v", tb.Rect)
	}
}

func TestLayoutNoOverlap(t *testing.T) {
	l := hostLayout(80, 24)
	regions := []Region{l.Get("toolbar"), l.Get("footer"), l.Get("canvas")}
	for i := 0; i < len(regions); i++ {
		for j := i + 1; j < len(regions); j++ {
			if regions[i].Rect.Overlaps(regions[j].Rect) {
				t.Errorf("overlap: %s %v and %s %v",
					regions[i].Name, regions[i].Rect, regions[j].Name, regions[j].Rect)
			}
		}
	}
}

func TestRegionAt(t *testing.T) {
	l := hostLayout(80, 24)
	tests := []struct {
		pt   image.Point
		want string
	}{
		{image.Pt(5, 0), "toolbar"},
		{image.Pt(5, 10), "canvas"},
		{image.Pt(79, 23), "footer"},
	}
	for _, tc := range tests {
		r, ok := l.RegionAt(tc.pt)
		if !ok || r.Name != tc.want {
			t.Errorf("RegionAt(%v) = %q,%v want %q", tc.pt, r.Name, ok, tc.want)
		}
	}
	if _, ok := l.RegionAt(image.Pt(80, 24)); ok {
		t.Error("point outside the screen should not match")
	}
}

func TestGetNonExistent(t *testing.T) {
	l := NewLayoutBuilder(80, 24).Build()
	if r := l.Get("missing"); r.Name != "" {
		t.Errorf("non-existent: expected empty, got %v", r)
	}
}

func TestSegments(t *testing.T) {
	got := Segments("a", "", "b")
	if got != " a  │  b" {
		t.Errorf("Segments: got %q", got)
	}
}

func TestModalLayer(t *testing.T) {
	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		Width(20).
		Padding(1, 2)

	layer := ModalLayer("edit label", 80, 24, style)
	if layer.GetID() != "modal" {
		t.Errorf("modal ID: expected 'modal', got %q", layer.GetID())
	}
	if layer.GetZ() != ZModal {
		t.Errorf("modal Z: expected %d, got %d", ZModal, layer.GetZ())
	}
	x, y := layer.GetX(), layer.GetY()
	if x < 20 || x > 40 {
		t.Errorf("modal X not centered: %d", x)
	}
	if y < 5 || y > 15 {
		t.Errorf("modal Y not centered: %d", y)
	}
}

func TestToolbarAndFooterLayers(t *testing.T) {
	l := hostLayout(40, 10)
	tb := ToolbarLayer("TIP", l.Get("toolbar"), lipgloss.NewStyle())
	if tb.GetID() != "toolbar" || tb.GetY() != 0 {
		t.Errorf("toolbar layer: id=%q y=%d", tb.GetID(), tb.GetY())
	}
	ft := FooterLayer("status", l.Get("footer"), lipgloss.NewStyle())
	if ft.GetY() != 9 || !strings.Contains(ft.GetContent(), "status") {
		t.Errorf("footer layer: y=%d content=%q", ft.GetY(), ft.GetContent())
	}
}

func TestFillLayer(t *testing.T) {
	r := Region{Name: "test", Rect: image.Rect(10, 5, 30, 15)}
	layer := FillLayer(r, lipgloss.NewStyle().Background(lipgloss.Color("#080e0b")), "bg", 0)
	if layer.GetID() != "bg" {
		t.Errorf("fill ID: expected 'bg', got %q", layer.GetID())
	}
	if layer.GetX() != 10 || layer.GetY() != 5 {
		t.Errorf("fill pos: expected (10,5), got (%d,%d)", layer.GetX(), layer.GetY())
	}
}

func TestFillLayerEmpty(t *testing.T) {
	layer := FillLayer(Region{Name: "empty"}, lipgloss.NewStyle(), "bg", 0)
	if layer.GetContent() != "" {
		t.Error("empty fill should have no content")
	}
}
