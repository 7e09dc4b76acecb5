package xdgshell

import "testing"

func TestPositionerCompleteRequiresSizeAndAnchorRectWidth(t *testing.T) {
	p := NewPositioner()
	if p.Complete() {
		t.Fatal("empty positioner must not be complete")
	}
	if err := p.SetSize(100, 50); err != nil {
		t.Fatal(err)
	}
	if p.Complete() {
		t.Fatal("positioner with only a size must not be complete")
	}
	if err := p.SetAnchorRect(0, 0, 200, 0); err == nil {
		t.Fatal("SetAnchorRect with zero height should have failed")
	}
	// anchor rect height of 0 is rejected by SetAnchorRect itself, so this
	// positioner still has no anchor rect; Complete only checks width, so
	// set a valid one to confirm the positive case.
	if err := p.SetAnchorRect(0, 0, 200, 150); err != nil {
		t.Fatal(err)
	}
	if !p.Complete() {
		t.Fatal("positioner with size and anchor rect must be complete")
	}
}

func TestPositionerSetSizeRejectsNonPositive(t *testing.T) {
	p := NewPositioner()
	for _, wh := range [][2]int{{0, 10}, {10, 0}, {-1, 10}} {
		if err := p.SetSize(wh[0], wh[1]); err == nil {
			t.Fatalf("SetSize(%d, %d) should have failed", wh[0], wh[1])
		}
	}
}

func TestPositionerSetAnchorRectRejectsNonPositive(t *testing.T) {
	p := NewPositioner()
	if err := p.SetAnchorRect(0, 0, 0, 10); err == nil {
		t.Fatal("SetAnchorRect with zero width should have failed")
	}
}

func TestPositionerSetAnchorRejectsOutOfRange(t *testing.T) {
	p := NewPositioner()
	if err := p.SetAnchor(Anchor(99)); err == nil {
		t.Fatal("SetAnchor(99) should have failed")
	}
	if err := p.SetAnchor(AnchorBottomRight); err != nil {
		t.Fatalf("SetAnchor(AnchorBottomRight) should succeed: %v", err)
	}
}

func TestPositionerSetGravityRejectsOutOfRange(t *testing.T) {
	p := NewPositioner()
	if err := p.SetGravity(Gravity(99)); err == nil {
		t.Fatal("SetGravity(99) should have failed")
	}
}

func TestPositionerGeometryAnchorAndGravity(t *testing.T) {
	tests := []struct {
		name     string
		anchor   Anchor
		gravity  Gravity
		wantRect Rect
	}{
		{
			name:     "none anchor and gravity centers on anchor rect center",
			anchor:   AnchorNone,
			gravity:  GravityNone,
			wantRect: Rect{X: 100 + 50 - 10, Y: 100 + 25 - 10, W: 20, H: 20},
		},
		{
			name:     "top-left anchor with top-left gravity extends away",
			anchor:   AnchorTopLeft,
			gravity:  GravityTopLeft,
			wantRect: Rect{X: 100 - 20, Y: 100 - 20, W: 20, H: 20},
		},
		{
			name:     "bottom-right anchor with bottom-right gravity extends away",
			anchor:   AnchorBottomRight,
			gravity:  GravityBottomRight,
			wantRect: Rect{X: 100 + 100, Y: 100 + 50, W: 20, H: 20},
		},
		{
			name:     "top anchor with bottom gravity overlaps the anchor edge",
			anchor:   AnchorTop,
			gravity:  GravityBottom,
			wantRect: Rect{X: 100 + 50 - 10, Y: 100, W: 20, H: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPositioner()
			if err := p.SetSize(20, 20); err != nil {
				t.Fatal(err)
			}
			if err := p.SetAnchorRect(100, 100, 100, 50); err != nil {
				t.Fatal(err)
			}
			if err := p.SetAnchor(tt.anchor); err != nil {
				t.Fatal(err)
			}
			if err := p.SetGravity(tt.gravity); err != nil {
				t.Fatal(err)
			}
			got := p.Geometry()
			if got != tt.wantRect {
				t.Fatalf("Geometry() = %+v, want %+v", got, tt.wantRect)
			}
		})
	}
}

func TestPositionerGeometryAppliesOffset(t *testing.T) {
	p := NewPositioner()
	if err := p.SetSize(10, 10); err != nil {
		t.Fatal(err)
	}
	if err := p.SetAnchorRect(0, 0, 10, 10); err != nil {
		t.Fatal(err)
	}
	p.SetOffset(5, 7)
	got := p.Geometry()
	want := Rect{X: 5, Y: 7, W: 10, H: 10}
	if got != want {
		t.Fatalf("Geometry() = %+v, want %+v", got, want)
	}
}

func TestPositionerGeometryIsPureOfConstraintAdjustment(t *testing.T) {
	p := NewPositioner()
	if err := p.SetSize(10, 10); err != nil {
		t.Fatal(err)
	}
	if err := p.SetAnchorRect(0, 0, 10, 10); err != nil {
		t.Fatal(err)
	}
	before := p.Geometry()
	p.SetConstraintAdjustment(ConstraintSlideX | ConstraintFlipY)
	after := p.Geometry()
	if before != after {
		t.Fatalf("Geometry() must not depend on constraint adjustment: %+v != %+v", before, after)
	}
	if p.ConstraintAdjustment() != ConstraintSlideX|ConstraintFlipY {
		t.Fatal("ConstraintAdjustment() did not report the requested mask")
	}
}
