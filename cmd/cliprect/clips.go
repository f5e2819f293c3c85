package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/cliprect/internal/anim"
	"github.com/vovakirdan/cliprect/internal/config"
	"github.com/vovakirdan/cliprect/internal/platform/tui"
	"github.com/vovakirdan/cliprect/internal/registry"
	"github.com/vovakirdan/cliprect/internal/storage"
)

// Where a clip came from.
const (
	originConfig  = "config"
	originPreset  = "preset"
	originBuiltin = "builtin"
)

// clipSource is a named clip from any origin. build returns a fresh,
// uninitialized animation on every call.
type clipSource struct {
	name     string
	title    string
	ease     string
	duration time.Duration
	origin   string
	build    func() *anim.ClipRect
}

func (c clipSource) previewClip() tui.Clip {
	return tui.Clip{
		Name:     c.name,
		Title:    c.title,
		Anim:     c.build(),
		Ease:     c.ease,
		Duration: c.duration,
	}
}

// catalog resolves clip names against the config file, the preset store
// and the built-in registry, in that order.
type catalog struct {
	file  config.File
	store *storage.Store // nil when the database is unavailable
}

// openCatalog loads the clips file and opens the preset database.
// A database that cannot be opened is logged and skipped.
func openCatalog() (*catalog, error) {
	f, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open preset database", "path", flagDBPath, "error", err)
		store = nil
	}

	return &catalog{file: f, store: store}, nil
}

func (c *catalog) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

func (c *catalog) lookup(name string) (clipSource, error) {
	if cc, ok := c.file.Find(name); ok {
		metrics := c.file.Metrics
		return clipSource{
			name:     cc.Name,
			title:    cc.Title,
			ease:     cc.Ease,
			duration: time.Duration(cc.DurationMs) * time.Millisecond,
			origin:   originConfig,
			build:    func() *anim.ClipRect { return cc.Build(metrics) },
		}, nil
	}

	if c.store != nil {
		p, err := c.store.LoadPreset(name)
		switch {
		case err == nil:
			return clipSource{
				name:   p.Name,
				title:  p.Name,
				origin: originPreset,
				build:  p.Build,
			}, nil
		case !errors.Is(err, storage.ErrNotFound):
			return clipSource{}, err
		}
	}

	if info, ok := registry.Lookup(name); ok {
		return clipSource{
			name:   info.ID,
			title:  info.Title,
			ease:   info.Ease,
			origin: originBuiltin,
			build: func() *anim.ClipRect {
				clip, _ := registry.Create(info.ID)
				return clip
			},
		}, nil
	}

	return clipSource{}, fmt.Errorf("unknown clip %q (run 'cliprect list' to see available clips)", name)
}

// entries lists every reachable clip. Names shadowed by an earlier origin
// are listed once, under the origin that wins.
func (c *catalog) entries() []tui.PickerEntry {
	var out []tui.PickerEntry
	seen := make(map[string]bool)
	add := func(e tui.PickerEntry) {
		if seen[e.Name] {
			return
		}
		seen[e.Name] = true
		out = append(out, e)
	}

	for _, cc := range c.file.Clips {
		add(tui.PickerEntry{Name: cc.Name, Title: cc.Title, Source: originConfig, Ease: cc.Ease})
	}

	if c.store != nil {
		presets, err := c.store.ListPresets()
		if err != nil {
			logger.Warn("could not list presets", "error", err)
		}
		for _, p := range presets {
			add(tui.PickerEntry{Name: p.Name, Title: p.Name, Source: originPreset})
		}
	}

	for _, info := range registry.List() {
		add(tui.PickerEntry{Name: info.ID, Title: info.Title, Source: originBuiltin, Ease: info.Ease})
	}

	return out
}
