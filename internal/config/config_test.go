package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/cliprect/internal/anim"
	"github.com/vovakirdan/cliprect/internal/core"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		raw      string
		expected anim.TypedValue
	}{
		{"", anim.TypedValue{}},
		{"   ", anim.TypedValue{}},
		{"12", anim.Int(12)},
		{"-3", anim.Int(-3)},
		{"12.5", anim.Float(12.5)},
		{"50%", anim.Fraction(0.5)},
		{" 25% ", anim.Fraction(0.25)},
		{"50%p", anim.ParentFraction(0.5)},
		{"-100%p", anim.ParentFraction(-1)},
		{"8dp", anim.Dimension(8, anim.UnitDp)},
		{"8dip", anim.Dimension(8, anim.UnitDp)},
		{"3px", anim.Dimension(3, anim.UnitPx)},
		{"14sp", anim.Dimension(14, anim.UnitSp)},
		{"1in", anim.Dimension(1, anim.UnitIn)},
		{"2.5mm", anim.Dimension(2.5, anim.UnitMm)},
		{"10pt", anim.Dimension(10, anim.UnitPt)},
		{"abc", anim.TypedValue{}},
		{"x%", anim.TypedValue{}},
		{"x%p", anim.TypedValue{}},
		{"dp", anim.TypedValue{}},
		{"NaN", anim.TypedValue{}},
		{"inf", anim.TypedValue{}},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			result := ParseValue(tc.raw)
			if result != tc.expected {
				t.Errorf("ParseValue(%q) = %+v, expected %+v", tc.raw, result, tc.expected)
			}
		})
	}
}

const sampleYAML = `
metrics:
  density: 2
clips:
  - name: wipe
    title: Wipe
    duration_ms: 500
    ease: linear
    from: { left: 0, top: 0, right: "0", bottom: "100%" }
    to:   { left: 0, right: "100%", bottom: "100%" }
  - name: margin
    from: { left: "4dp", top: ~ }
    to: { right: 12.5 }
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if len(f.Clips) != 2 {
		t.Fatalf("expected 2 clips, got %d", len(f.Clips))
	}

	wipe, ok := f.Find("wipe")
	if !ok {
		t.Fatal("Find(wipe) failed")
	}
	if wipe.DurationMs != 500 || wipe.Ease != "linear" || wipe.Title != "Wipe" {
		t.Errorf("unexpected wipe header: %+v", wipe)
	}
	if wipe.To.Top.Set {
		t.Error("missing to.top should be unset")
	}
	if !wipe.From.Left.Set || wipe.From.Left.Raw != "0" {
		t.Errorf("from.left = %+v, expected raw \"0\"", wipe.From.Left)
	}

	margin, _ := f.Find("margin")
	if margin.From.Top.Set {
		t.Error("null from.top should be unset")
	}

	got := margin.Attributes()
	want := anim.AttributeSet{
		anim.FromLeft: anim.Dimension(4, anim.UnitDp),
		anim.ToRight:  anim.Float(12.5),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Attributes() mismatch (-want +got):\n%s", diff)
	}

	if _, ok := f.Find("missing"); ok {
		t.Error("Find(missing) should fail")
	}
}

func TestParseRejectsNonScalarEdge(t *testing.T) {
	_, err := Parse([]byte("clips:\n  - name: bad\n    from: { left: [1, 2] }\n"))
	if err == nil {
		t.Fatal("Parse() should reject a sequence edge value")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		file    File
		wantErr string
	}{
		{"ok", File{Clips: []ClipConfig{{Name: "a"}, {Name: "b"}}}, ""},
		{"missing name", File{Clips: []ClipConfig{{Name: ""}}}, "has no name"},
		{"duplicate", File{Clips: []ClipConfig{{Name: "a"}, {Name: "a"}}}, "duplicate clip"},
		{"negative duration", File{Clips: []ClipConfig{{Name: "a", DurationMs: -1}}}, "negative duration_ms"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.file.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestBuildResolves(t *testing.T) {
	f, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	wipe, _ := f.Find("wipe")

	c := wipe.Build(f.Metrics)
	c.Initialize(200, 100, 400, 300)

	if got := c.FromRect(); got != core.NewRect(0, 0, 0, 100) {
		t.Errorf("FromRect() = %v, expected (0, 0, 0, 100)", got)
	}
	if got := c.Interpolate(0.5); got != core.NewRect(0, 0, 100, 100) {
		t.Errorf("Interpolate(0.5) = %v, expected (0, 0, 100, 100)", got)
	}

	margin, _ := f.Find("margin")
	from, _ := margin.Build(f.Metrics).Edges()
	if from.Left != anim.Abs(8) {
		t.Errorf("4dp at density 2 = %v, expected absolute:8", from.Left)
	}
}

func TestMetricsDefaults(t *testing.T) {
	m := MetricsConfig{Density: 3}.ToMetrics()
	if m.Density != 3 || m.ScaledDensity != 1 || m.XDPI != 160 {
		t.Errorf("ToMetrics() = %+v", m)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clips.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o600); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if _, ok := f.Find("wipe"); !ok {
		t.Error("custom file clips not loaded")
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom path")
	}
}

func TestEmbeddedDefaults(t *testing.T) {
	f, err := Parse(defaultClipsYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	for _, name := range []string{"curtain", "split", "spotlight", "inset"} {
		if _, ok := f.Find(name); !ok {
			t.Errorf("embedded defaults missing %q", name)
		}
	}

	fallback := DefaultFile()
	if err := fallback.Validate(); err != nil {
		t.Errorf("DefaultFile() invalid: %v", err)
	}
}

func TestAttrValueMarshal(t *testing.T) {
	v, err := Value("50%").MarshalYAML()
	if err != nil || v != "50%" {
		t.Errorf("MarshalYAML() = %v, %v", v, err)
	}
	v, err = AttrValue{}.MarshalYAML()
	if err != nil || v != nil {
		t.Errorf("MarshalYAML() unset = %v, %v", v, err)
	}
}
