// Command gg3d renders a polygon model to an image file.
//
// The scene is read from base.raw (faces), base.camera (optional; defaults
// to the origin looking down +z) and base.material (filled mode only), with
// base defaulting to "in":
//
//	gg3d -w 800 -h 600 -o cube.png cube c 0 0 -5 d 0 0 1
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"runtime"

	"github.com/gogpu/gg3d"
	"github.com/gogpu/gg3d/internal/caption"
	"github.com/gogpu/gg3d/internal/imageio"
	"github.com/gogpu/gg3d/internal/sceneio"
)

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		printUsage(os.Stderr)
		return
	}
	if err == nil {
		err = run(cfg, os.Stderr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "gg3d: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config, stderr io.Writer) error {
	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	gg3d.SetLogger(logger)
	defer gg3d.SetLogger(nil)

	model, err := sceneio.LoadModel(cfg.base + sceneio.ModelExt)
	if err != nil {
		return err
	}

	cam, err := sceneio.LoadCamera(cfg.base + sceneio.CameraExt)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		cam = gg3d.DefaultCamera()
		logger.Debug("gg3d: no camera file, using default", "path", cfg.base+sceneio.CameraExt)
	case err != nil:
		return err
	}
	cam = cfg.camera(cam)

	mode := gg3d.ModeFilled
	var mat gg3d.Material
	if cfg.wireframe {
		mode = gg3d.ModeWireframe
	} else if mat, err = sceneio.LoadMaterial(cfg.base + sceneio.MaterialExt); err != nil {
		return err
	}

	workers := cfg.workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	opts := []gg3d.Option{
		gg3d.WithMode(mode),
		gg3d.WithScale(cfg.scale),
		gg3d.WithWorkers(workers),
	}
	if cfg.stereo {
		opts = append(opts, gg3d.WithStereo(cfg.separation))
	}

	canvas, stats, err := gg3d.NewRenderer(cfg.width, cfg.height, opts...).RenderStats(model, cam, mat)
	if err != nil {
		return err
	}
	if cfg.label != "" {
		caption.Draw(canvas, cfg.label, gg3d.White)
	}

	img, err := imageio.Zoom(canvas.ToImage(), cfg.zoom)
	if err != nil {
		return err
	}
	if err := imageio.WriteFile(cfg.output, img); err != nil {
		return err
	}
	logger.Info("gg3d: wrote image",
		"path", cfg.output,
		"width", cfg.width*cfg.zoom,
		"height", cfg.height*cfg.zoom,
		"drawn", stats.Drawn,
		"culled", stats.Culled,
		"skipped", stats.Skipped,
	)
	return nil
}
