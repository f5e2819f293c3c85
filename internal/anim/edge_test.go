package anim

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		spec     EdgeSpec
		own      float64
		parent   float64
		expected float64
	}{
		{"absolute ignores extents", Abs(42), 200, 400, 42},
		{"absolute with zero extents", Abs(-7.5), 0, 0, -7.5},
		{"self half width", Self(0.5), 200, 400, 100},
		{"self full", Self(1), 80, 400, 80},
		{"self beyond one", Self(1.5), 100, 400, 150},
		{"parent quarter", Parent(0.25), 200, 400, 100},
		{"parent negative", Parent(-0.5), 200, 400, -200},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Resolve(tc.spec, tc.own, tc.parent)
			if result != tc.expected {
				t.Errorf("Resolve(%v, %g, %g) = %g, expected %g", tc.spec, tc.own, tc.parent, result, tc.expected)
			}
		})
	}
}

func TestResolveUnknownTypePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Resolve with an unknown edge type should panic")
		}
	}()
	Resolve(EdgeSpec{Type: EdgeType(7), Value: 1}, 10, 10)
}

func TestEdgeTypeNames(t *testing.T) {
	for _, et := range []EdgeType{Absolute, RelativeToSelf, RelativeToParent} {
		parsed, err := ParseEdgeType(et.String())
		if err != nil {
			t.Fatalf("ParseEdgeType(%q) failed: %v", et.String(), err)
		}
		if parsed != et {
			t.Errorf("ParseEdgeType(%q) = %v, expected %v", et.String(), parsed, et)
		}
	}

	if _, err := ParseEdgeType("sideways"); err == nil {
		t.Error("ParseEdgeType should reject unknown names")
	}
	if s := EdgeType(9).String(); s != "EdgeType(9)" {
		t.Errorf("String() for unknown type = %q", s)
	}
}

func TestEdgeSpecString(t *testing.T) {
	if s := Self(0.5).String(); s != "self:0.5" {
		t.Errorf("Self(0.5).String() = %q, expected %q", s, "self:0.5")
	}
	if s := Abs(12).String(); s != "absolute:12" {
		t.Errorf("Abs(12).String() = %q, expected %q", s, "absolute:12")
	}
}
