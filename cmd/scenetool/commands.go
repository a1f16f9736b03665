package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/Faultbox/geomkit/internal/config"
	"github.com/Faultbox/geomkit/internal/engine/debug"
	"github.com/Faultbox/geomkit/internal/engine/picking"
	"github.com/Faultbox/geomkit/internal/logger"
	"github.com/Faultbox/geomkit/internal/scene"
)

var errUsage = errors.New("usage")

// loadScene reads a scene and sizes its camera to the configured viewport.
func loadScene(cfg *config.Config, path string) (*scene.Scene, error) {
	s, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	s.Camera.Width = cfg.Viewport.Width
	s.Camera.Height = cfg.Viewport.Height
	s.Camera.MinDepth = cfg.Viewport.MinDepth
	s.Camera.MaxDepth = cfg.Viewport.MaxDepth
	return s, nil
}

func drawOptions(cfg *config.Config) scene.DrawOptions {
	return scene.DrawOptions{
		Grid:            cfg.Render.DrawGrid,
		GridHalfWidth:   cfg.Render.GridHalfWidth,
		GridSubdivision: cfg.Render.GridSubdivide,
		ControlPoints:   cfg.Render.ControlPoints,
		CurveSegments:   cfg.Render.CurveSegments,
	}
}

func wireframe(cfg *config.Config, s *scene.Scene) *debug.Wireframe {
	w := debug.NewWireframe(s.ScreenMatrix())
	s.Draw(w, drawOptions(cfg))
	if w.Skipped > 0 {
		logger.Warn("points skipped during projection", zap.Int("count", w.Skipped))
	}
	return w
}

func cmdCheck(cfg *config.Config, args []string, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: scenetool check <scene.yaml>", errUsage)
	}

	s, err := loadScene(cfg, args[0])
	if err != nil {
		return err
	}

	for _, r := range s.RunChecks() {
		switch {
		case r.Err != nil:
			fmt.Fprintf(out, "%s %s unsupported\n", r.A, r.B)
			logger.Debug("check skipped", zap.String("a", r.A), zap.String("b", r.B), zap.Error(r.Err))
		case r.Hit:
			fmt.Fprintf(out, "%s %s hit\n", r.A, r.B)
		default:
			fmt.Fprintf(out, "%s %s miss\n", r.A, r.B)
		}
	}
	return nil
}

func cmdProject(cfg *config.Config, args []string, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: scenetool project <scene.yaml>", errUsage)
	}

	s, err := loadScene(cfg, args[0])
	if err != nil {
		return err
	}

	for _, l := range wireframe(cfg, s).Lines {
		x1, y1 := l.A.Pixel()
		x2, y2 := l.B.Pixel()
		fmt.Fprintf(out, "%d %d %d %d #%08X\n", x1, y1, x2, y2, l.Color)
	}
	return nil
}

func cmdPick(cfg *config.Config, args []string, out io.Writer) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: scenetool pick <scene.yaml> <x> <y>", errUsage)
	}

	x, err := strconv.ParseFloat(args[1], 32)
	if err != nil {
		return fmt.Errorf("parsing x: %w", err)
	}
	y, err := strconv.ParseFloat(args[2], 32)
	if err != nil {
		return fmt.Errorf("parsing y: %w", err)
	}

	s, err := loadScene(cfg, args[0])
	if err != nil {
		return err
	}

	inverse, err := s.ScreenMatrix().TryInverse()
	if err != nil {
		return fmt.Errorf("inverting screen matrix: %w", err)
	}
	seg, err := picking.ScreenSegment(float32(x), float32(y), inverse)
	if err != nil {
		return err
	}

	logger.Debug("pick ray",
		zap.Any("origin", seg.Origin),
		zap.Any("view", s.Camera.Forward()))
	if gx, gz, ok := picking.IntersectPlaneY(seg, 0); ok {
		logger.Debug("pick ray meets ground", zap.Float32("x", gx), zap.Float32("z", gz))
	}

	for _, i := range picking.Pick(seg, s.CollisionShapes()) {
		fmt.Fprintln(out, s.Shapes[i].Name)
	}
	return nil
}

func cmdRender(cfg *config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	labels := fs.Bool("labels", false, "Draw shape names")
	supersample := fs.Int("supersample", 1, "Render at N times the size and downsample")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("%w: scenetool render [-labels] [-supersample N] <scene.yaml> <output>", errUsage)
	}

	s, err := loadScene(cfg, fs.Arg(0))
	if err != nil {
		return err
	}

	var names []debug.Label
	if *labels {
		names = s.Labels(0xFFFFFFFF)
	}

	opts := debug.DefaultRasterOptions()
	opts.Width = cfg.Viewport.Width
	opts.Height = cfg.Viewport.Height
	opts.Background = cfg.Render.Background
	opts.LineWidth = cfg.Render.LineWidth
	opts.Supersample = *supersample

	img := debug.Rasterize(wireframe(cfg, s).Lines, names, opts)

	target := fs.Arg(1)
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		target, err = debug.NewCapture(target, "scene", cfg.Render.Format).Save(img)
		if err != nil {
			return err
		}
	} else if err := debug.Snapshot(target, img); err != nil {
		return err
	}

	logger.Info("rendered scene", zap.String("output", target))
	fmt.Fprintln(out, target)
	return nil
}
