// Package main is the entry point for atlasinfo, which builds an asset atlas
// from a manifest on a real GL context and reports every entry.
package main

import (
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-atlas/internal/assets"
	"github.com/Faultbox/midgard-atlas/internal/atlas"
	"github.com/Faultbox/midgard-atlas/internal/config"
	"github.com/Faultbox/midgard-atlas/internal/engine/gpuimage"
	"github.com/Faultbox/midgard-atlas/internal/engine/window"
	"github.com/Faultbox/midgard-atlas/internal/logger"
	"github.com/Faultbox/midgard-atlas/internal/manifest"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("atlasinfo failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	m, err := manifest.Load(cfg.Atlas.Manifest)
	if err != nil {
		return fmt.Errorf("loading manifest: %w", err)
	}

	reg := assets.NewRegistry()
	res, err := m.Build(reg)
	if err != nil {
		return fmt.Errorf("building %s: %w", cfg.Atlas.Manifest, err)
	}

	win, err := window.New(window.Config{
		Title:  "atlasinfo",
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Hidden: !cfg.Window.Visible,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	a := atlas.New(gpuimage.NewBinder(), reg)
	a.Init(res.Buffer, res.Placements)
	defer a.Terminate()

	if !a.Bound() {
		return fmt.Errorf("atlas image could not be bound")
	}

	report(a, res.Keys)

	hits, misses := reg.Stats()
	logger.Info("registry stats", zap.Int("hits", hits), zap.Int("misses", misses))
	return nil
}

// report logs every manifest bitmap in name order.
func report(a *atlas.Atlas, keys map[string]atlas.Key) {
	logger.Info("atlas",
		zap.Uint32("texture", a.Texture()),
		zap.Int("width", a.Width()),
		zap.Int("height", a.Height()),
		zap.Int("entries", a.Len()),
	)

	names := make([]string, 0, len(keys))
	for name := range keys {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		e := a.Entry(keys[name])
		if e == nil {
			logger.Warn("bitmap not in atlas", zap.String("name", name))
			continue
		}
		minU, maxU, minV, maxV := e.Mapper().Bounds()
		logger.Info("entry",
			zap.String("name", name),
			zap.Int("width", e.Texture().Width()),
			zap.Int("height", e.Texture().Height()),
			zap.Stringer("merge", e.MergeID()),
			zap.Float32("u0", minU),
			zap.Float32("u1", maxU),
			zap.Float32("v0", minV),
			zap.Float32("v1", maxV),
		)
	}
}
