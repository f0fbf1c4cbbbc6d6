package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"spheretrace/pkg/config"
	"spheretrace/pkg/core"
	"spheretrace/pkg/renderer"
	"spheretrace/pkg/scene"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML scene/render config; omit for the built-in demo scene")
	output := flag.String("output", "outimage.bmp", "Output image path")
	format := flag.String("format", "", "Output format: 'bmp' or 'png' (default: inferred from output extension)")
	samples := flag.Int("samples", 0, "Override samples per pixel")
	bounces := flag.Int("bounces", 0, "Override maximum bounce depth")
	width := flag.Int("width", 0, "Override image width")
	height := flag.Int("height", 0, "Override image height")
	workers := flag.Int("workers", 0, "Override render workers (default: one per CPU)")
	verbose := flag.Bool("verbose", false, "Log per-row render progress")
	flag.Parse()

	if err := run(*configPath, *output, *format, *samples, *bounces, *width, *height, *workers, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, output, format string, samples, bounces, width, height, workers int, verbose bool) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// CLI overrides beat the config file
	if samples > 0 {
		cfg.Render.Samples = samples
	}
	if bounces > 0 {
		cfg.Render.Bounces = bounces
	}
	if width > 0 {
		cfg.Render.Width = width
	}
	if height > 0 {
		cfg.Render.Height = height
	}
	if workers != 0 {
		cfg.Render.Workers = workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var world *scene.Scene
	if configPath == "" {
		fmt.Println("Using built-in demo scene...")
		bg := core.NewColor(cfg.Background.Color[0], cfg.Background.Color[1], cfg.Background.Color[2])
		world = scene.NewDefaultScene(cfg.Render.Seed, bg)
	} else {
		built, err := scene.Build(cfg)
		if err != nil {
			return fmt.Errorf("building scene: %w", err)
		}
		world = built
	}
	fmt.Printf("Scene contains %d objects\n", world.ObjectCount())

	camera := renderer.NewCamera(
		core.NewVec3(cfg.Camera.LookFrom[0], cfg.Camera.LookFrom[1], cfg.Camera.LookFrom[2]),
		core.NewVec3(cfg.Camera.LookAt[0], cfg.Camera.LookAt[1], cfg.Camera.LookAt[2]),
		cfg.Render.Width, cfg.Render.Height,
		cfg.Camera.FOV, cfg.Camera.Aperture,
	)

	var logger core.Logger
	if verbose {
		logger = log.New(os.Stdout, "", 0)
	}

	r := renderer.NewRenderer(world, camera, renderer.Config{
		Samples: cfg.Render.Samples,
		Bounces: cfg.Render.Bounces,
		Seed:    cfg.Render.Seed,
		Workers: cfg.Render.Workers,
	}, logger)

	fmt.Printf("Rendering %dx%d at %d samples, %d bounces...\n",
		cfg.Render.Width, cfg.Render.Height, cfg.Render.Samples, cfg.Render.Bounces)

	startTime := time.Now()
	buf := r.Render()
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	if format == "" {
		if strings.EqualFold(filepath.Ext(output), ".png") {
			format = "png"
		} else {
			format = "bmp"
		}
	}

	var err error
	switch format {
	case "bmp":
		err = buf.SaveBMP(output)
	case "png":
		err = buf.SavePNG(output)
	default:
		return fmt.Errorf("unknown format %q (want 'bmp' or 'png')", format)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Render saved as %s\n", output)
	return nil
}
