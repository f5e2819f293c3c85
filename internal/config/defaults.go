package config

import (
	_ "embed"
)

//go:embed defaults/clips.yaml
var defaultClipsYAML []byte

// DefaultFile returns the hardcoded fallback clips file.
func DefaultFile() File {
	return File{
		Metrics: MetricsConfig{Density: 1, ScaledDensity: 1, XDPI: 160},
		Clips: []ClipConfig{
			{
				Name:       "curtain",
				Title:      "Curtain drop",
				DurationMs: 1200,
				Ease:       "outQuad",
				From:       EdgesConfig{Left: Value("0"), Top: Value("0"), Right: Value("100%"), Bottom: Value("0")},
				To:         EdgesConfig{Left: Value("0"), Top: Value("0"), Right: Value("100%"), Bottom: Value("100%")},
			},
		},
	}
}
