package config

import (
	"math"
	"strconv"
	"strings"

	"github.com/vovakirdan/cliprect/internal/anim"
)

var unitSuffixes = []struct {
	suffix string
	unit   anim.Unit
}{
	{"dip", anim.UnitDp},
	{"px", anim.UnitPx},
	{"dp", anim.UnitDp},
	{"sp", anim.UnitSp},
	{"pt", anim.UnitPt},
	{"in", anim.UnitIn},
	{"mm", anim.UnitMm},
}

// ParseValue converts a textual edge value into a typed value:
//
//	"50%"  -> fraction 0.5 of the target
//	"50%p" -> fraction 0.5 of the parent
//	"8dp"  -> dimension (px, dp, dip, sp, pt, in, mm)
//	"12"   -> integer pixels
//	"12.5" -> float pixels
//
// Anything else, including the empty string, is reported as absent.
func ParseValue(raw string) anim.TypedValue {
	s := strings.TrimSpace(raw)
	if s == "" {
		return anim.TypedValue{}
	}

	if num, ok := strings.CutSuffix(s, "%p"); ok {
		if f, err := parseNumber(num); err == nil {
			return anim.ParentFraction(f / 100)
		}
		return anim.TypedValue{}
	}
	if num, ok := strings.CutSuffix(s, "%"); ok {
		if f, err := parseNumber(num); err == nil {
			return anim.Fraction(f / 100)
		}
		return anim.TypedValue{}
	}

	for _, u := range unitSuffixes {
		if num, ok := strings.CutSuffix(s, u.suffix); ok {
			if f, err := parseNumber(num); err == nil {
				return anim.Dimension(f, u.unit)
			}
			return anim.TypedValue{}
		}
	}

	if i, err := strconv.Atoi(s); err == nil {
		return anim.Int(i)
	}
	if f, err := parseNumber(s); err == nil {
		return anim.Float(f)
	}
	return anim.TypedValue{}
}

// parseNumber is strconv.ParseFloat without NaN and infinities.
func parseNumber(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, strconv.ErrRange
	}
	return f, nil
}
