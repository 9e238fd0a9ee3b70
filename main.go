package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func createScene(sceneType string, aspectRatio float64) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(aspectRatio), nil
	case "trio":
		return scene.NewTrioScene(aspectRatio), nil
	default:
		return nil, fmt.Errorf("unknown scene type %q", sceneType)
	}
}

func writeImage(img *image.RGBA, dir, sceneType, format string) (string, error) {
	outputDir := filepath.Join(dir, sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, format))

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	switch format {
	case "png":
		err = png.Encode(file, img)
	default:
		err = renderer.WritePPM(file, img)
	}
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", format, err)
	}

	return filename, nil
}

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'trio'")
	configPath := flag.String("config", "", "Path to YAML render settings (optional)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Room enclosure with mirror, glass, and matte spheres")
		fmt.Println("  trio    - Three matte spheres with a single light")
		fmt.Println()
		fmt.Println("Output will be saved to <dir>/<scene_type>/render_<timestamp>.<format>")
		return
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	fmt.Println("Starting Whitted Raytracer...")

	aspectRatio := float64(cfg.Render.Width) / float64(cfg.Render.Height)
	selectedScene, err := createScene(*sceneType, aspectRatio)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}

	r := renderer.NewRenderer(selectedScene, cfg.Render.Width, cfg.Render.Height)
	r.SetSamplingConfig(renderer.SamplingConfig{
		SamplesPerPixel: cfg.Render.SamplesPerPixel,
		MaxDepth:        cfg.Render.MaxDepth,
		Gamma:           cfg.Render.Gamma,
		Seed:            cfg.Render.Seed,
	})

	startTime := time.Now()
	img, stats := r.RenderParallel(cfg.Render.Workers)
	renderTime := time.Since(startTime)

	fmt.Printf("Render completed in %v\n", renderTime)
	fmt.Printf("Pixels: %d, samples: %d, rays traced: %d\n",
		stats.TotalPixels, stats.TotalSamples, stats.RaysTraced)

	filename, err := writeImage(img, cfg.Output.Dir, *sceneType, cfg.Output.Format)
	if err != nil {
		fmt.Printf("Error writing image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}
