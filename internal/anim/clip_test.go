package anim

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/cliprect/internal/core"
)

func TestClipRectHalfway(t *testing.T) {
	from := core.NewRect(0, 0, 100, 50)
	to := core.NewRect(20, 10, 80, 40)

	c, err := FromRects(&from, &to)
	if err != nil {
		t.Fatalf("FromRects() failed: %v", err)
	}
	c.Initialize(100, 50, 100, 50)

	got := c.Interpolate(0.5)
	if diff := cmp.Diff(core.NewRect(10, 5, 90, 45), got); diff != "" {
		t.Errorf("Interpolate(0.5) mismatch (-want +got):\n%s", diff)
	}
}

func TestClipRectEndpoints(t *testing.T) {
	tests := []struct {
		name     string
		from, to core.Rect
	}{
		{"shrink", core.NewRect(0, 0, 100, 50), core.NewRect(20, 10, 80, 40)},
		{"grow", core.NewRect(50, 50, 50, 50), core.NewRect(0, 0, 100, 100)},
		{"odd deltas", core.NewRect(-3, 7, 11, 13), core.NewRect(4, -9, 2, 40)},
		{"inverted passes through", core.NewRect(100, 100, 0, 0), core.NewRect(0, 0, 100, 100)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := FromRects(&tc.from, &tc.to)
			if err != nil {
				t.Fatalf("FromRects() failed: %v", err)
			}
			c.Initialize(640, 480, 1280, 720)

			if got := c.Interpolate(0); got != tc.from {
				t.Errorf("Interpolate(0) = %v, expected %v", got, tc.from)
			}
			if got := c.Interpolate(1); got != tc.to {
				t.Errorf("Interpolate(1) = %v, expected %v", got, tc.to)
			}
		})
	}
}

func TestClipRectUnchangedEdges(t *testing.T) {
	c := FromInts(5, 0, 60, 30, 5, 10, 60, 30)
	c.Initialize(100, 100, 100, 100)

	for _, f := range []float64{0, 0.1, 0.33, 0.5, 0.9, 1, 1.7, -2} {
		r := c.Interpolate(f)
		if r.Left != 5 || r.Right != 60 || r.Bottom != 30 {
			t.Errorf("Interpolate(%g) = %v, unchanged edges moved", f, r)
		}
	}
}

func TestClipRectTruncatesDeltaBeforeAdding(t *testing.T) {
	c := FromInts(0, 10, 0, 0, 3, 7, 0, 0)
	c.Initialize(0, 0, 0, 0)

	r := c.Interpolate(0.5)
	// left: 0 + int(1.5) = 1
	if r.Left != 1 {
		t.Errorf("Left = %d, expected 1", r.Left)
	}
	// top: 10 + int(-1.5) = 9, not int(8.5) = 8
	if r.Top != 9 {
		t.Errorf("Top = %d, expected 9", r.Top)
	}
}

func TestClipRectExtrapolates(t *testing.T) {
	c := FromInts(0, 0, 10, 10, 10, 10, 20, 20)
	c.Initialize(0, 0, 0, 0)

	if got := c.Interpolate(2); got != core.NewRect(20, 20, 30, 30) {
		t.Errorf("Interpolate(2) = %v, expected (20, 20, 30, 30)", got)
	}
	if got := c.Interpolate(-0.5); got != core.NewRect(-5, -5, 5, 5) {
		t.Errorf("Interpolate(-0.5) = %v, expected (-5, -5, 5, 5)", got)
	}
}

func TestFromRectsNil(t *testing.T) {
	r := core.NewRect(0, 0, 10, 10)

	tests := []struct {
		name     string
		from, to *core.Rect
	}{
		{"nil from", nil, &r},
		{"nil to", &r, nil},
		{"both nil", nil, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := FromRects(tc.from, tc.to)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("FromRects() error = %v, expected ErrInvalidArgument", err)
			}
			if c != nil {
				t.Error("FromRects() should not return an instance on error")
			}
		})
	}
}

func TestFromIntsMatchesFromRects(t *testing.T) {
	from := core.NewRect(1, 2, 3, 4)
	to := core.NewRect(5, 6, 7, 8)
	byRect, err := FromRects(&from, &to)
	if err != nil {
		t.Fatalf("FromRects() failed: %v", err)
	}
	byInts := FromInts(1, 2, 3, 4, 5, 6, 7, 8)

	f1, t1 := byRect.Edges()
	f2, t2 := byInts.Edges()
	if diff := cmp.Diff(f1, f2); diff != "" {
		t.Errorf("from edges differ (-rects +ints):\n%s", diff)
	}
	if diff := cmp.Diff(t1, t2); diff != "" {
		t.Errorf("to edges differ (-rects +ints):\n%s", diff)
	}
	if f2.Left.Type != Absolute {
		t.Errorf("FromInts edge type = %v, expected absolute", f2.Left.Type)
	}
}

func TestFromRectsDoesNotAlias(t *testing.T) {
	from := core.NewRect(0, 0, 10, 10)
	to := core.NewRect(0, 0, 20, 20)
	c, err := FromRects(&from, &to)
	if err != nil {
		t.Fatalf("FromRects() failed: %v", err)
	}

	from.Right = 999
	c.Initialize(0, 0, 0, 0)
	if c.FromRect().Right != 10 {
		t.Errorf("FromRect().Right = %d, caller mutation leaked in", c.FromRect().Right)
	}
}

func TestAbsoluteIgnoresExtents(t *testing.T) {
	c := NewClipRect(
		EdgeSet{Left: Abs(12.9), Top: Abs(-12.9), Right: Abs(100), Bottom: Abs(0.4)},
		EdgeSet{},
	)

	for _, ext := range [][4]int{{0, 0, 0, 0}, {100, 50, 300, 200}, {7, 9000, 1, 2}} {
		c.Initialize(ext[0], ext[1], ext[2], ext[3])
		if got := c.FromRect(); got != core.NewRect(12, -12, 100, 0) {
			t.Errorf("Initialize(%v) FromRect = %v, expected (12, -12, 100, 0)", ext, got)
		}
	}
}

func TestRelativeToSelfLeft(t *testing.T) {
	c := NewClipRect(EdgeSet{Left: Self(0.5)}, EdgeSet{})
	c.Initialize(200, 10, 999, 999)

	if c.FromRect().Left != 100 {
		t.Errorf("FromRect().Left = %d, expected 100", c.FromRect().Left)
	}
}

func TestRelativeToParentAxes(t *testing.T) {
	c := NewClipRect(
		EdgeSet{Left: Parent(0.25), Top: Parent(0.5), Right: Parent(1), Bottom: Parent(0.75)},
		EdgeSet{},
	)
	c.Initialize(10, 10, 400, 200)

	if got := c.FromRect(); got != core.NewRect(100, 100, 400, 150) {
		t.Errorf("FromRect() = %v, expected (100, 100, 400, 150)", got)
	}
}

func TestFromFractionsIgnoresParent(t *testing.T) {
	c := FromFractions(0, 0, 1, 0, 0, 0, 1, 1)

	c.Initialize(120, 80, 10, 10)
	fromA, toA := c.FromRect(), c.ToRect()

	c.Initialize(120, 80, 5000, 3000)
	if c.FromRect() != fromA || c.ToRect() != toA {
		t.Errorf("changing parent extents changed resolution: %v/%v vs %v/%v",
			fromA, toA, c.FromRect(), c.ToRect())
	}
	if toA != core.NewRect(0, 0, 120, 80) {
		t.Errorf("ToRect() = %v, expected (0, 0, 120, 80)", toA)
	}

	from, _ := c.Edges()
	if from.Right.Type != RelativeToSelf {
		t.Errorf("FromFractions edge type = %v, expected self", from.Right.Type)
	}
}

func TestInitializeIdempotent(t *testing.T) {
	c := FromFractions(0.1, 0.2, 0.9, 0.8, 0, 0, 1, 1)

	c.Initialize(300, 200, 600, 400)
	from1, to1 := c.FromRect(), c.ToRect()
	c.Initialize(300, 200, 600, 400)

	if c.FromRect() != from1 || c.ToRect() != to1 {
		t.Error("resolving twice with identical extents changed the cached rects")
	}
}

func TestInitializeOverwrites(t *testing.T) {
	c := FromFractions(0, 0, 1, 1, 0, 0, 0.5, 0.5)
	if c.Initialized() {
		t.Error("Initialized() should be false before Initialize")
	}

	c.Initialize(100, 100, 0, 0)
	c.Initialize(40, 20, 0, 0)

	if !c.Initialized() {
		t.Error("Initialized() should be true after Initialize")
	}
	if got := c.ToRect(); got != core.NewRect(0, 0, 20, 10) {
		t.Errorf("ToRect() = %v, expected (0, 0, 20, 10)", got)
	}
}

func TestFromAttributes(t *testing.T) {
	src := AttributeSet{
		FromLeft:   Int(10),
		FromRight:  Fraction(1),
		FromBottom: ParentFraction(0.5),
		ToLeft:     Dimension(4, UnitDp),
		ToRight:    Float(60.5),
		ToBottom:   Fraction(0.5),
	}
	c := FromAttributes(src, Metrics{Density: 2, ScaledDensity: 2, XDPI: 320})

	from, to := c.Edges()
	wantFrom := EdgeSet{Left: Abs(10), Top: Abs(0), Right: Self(1), Bottom: Parent(0.5)}
	wantTo := EdgeSet{Left: Abs(8), Top: Abs(0), Right: Abs(60.5), Bottom: Self(0.5)}
	if diff := cmp.Diff(wantFrom, from); diff != "" {
		t.Errorf("from edges mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantTo, to); diff != "" {
		t.Errorf("to edges mismatch (-want +got):\n%s", diff)
	}

	c.Initialize(100, 40, 200, 300)
	if got := c.FromRect(); got != core.NewRect(10, 0, 100, 150) {
		t.Errorf("FromRect() = %v, expected (10, 0, 100, 150)", got)
	}
	if got := c.ToRect(); got != core.NewRect(8, 0, 60, 20) {
		t.Errorf("ToRect() = %v, expected (8, 0, 60, 20)", got)
	}
}

func TestApplyTransformation(t *testing.T) {
	c := FromInts(0, 0, 100, 100, 50, 50, 50, 50)
	c.Initialize(100, 100, 100, 100)

	var tr Transformation
	if _, ok := tr.ClipRect(); ok {
		t.Fatal("zero Transformation should have no clip")
	}

	c.ApplyTransformation(0.5, &tr)
	clip, ok := tr.ClipRect()
	if !ok || clip != core.NewRect(25, 25, 75, 75) {
		t.Errorf("ClipRect() = %v, %v; expected (25, 25, 75, 75), true", clip, ok)
	}

	tr.Clear()
	if _, ok := tr.ClipRect(); ok {
		t.Error("Clear() should drop the clip")
	}
}

func TestWillChangeTransformationMatrix(t *testing.T) {
	var a Animation = FromInts(0, 0, 0, 0, 0, 0, 0, 0)
	if a.WillChangeTransformationMatrix() {
		t.Error("clip animation must not report matrix changes")
	}
}
