package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/whitted-go/raytracer/pkg/renderer"
	"github.com/whitted-go/raytracer/pkg/scene"
	"github.com/whitted-go/raytracer/pkg/world"
)

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'showcase'")
	width := flag.Int("width", 1280, "Output image width in pixels")
	height := flag.Int("height", 720, "Output image height in pixels")
	out := flag.String("out", "render.png", "Output PNG path")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	depth := flag.Int("depth", world.MaxRecursionDepth, "Maximum reflection/refraction depth")
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
		fmt.Println("  default  - Three spheres on a patterned plane")
		fmt.Println("  showcase - Every primitive: glass, mirrors, cube, cylinder, cone, pyramid")
		return
	}

	if *width <= 0 || *height <= 0 {
		fmt.Printf("Invalid canvas size %dx%d\n", *width, *height)
		os.Exit(1)
	}

	w, cam, err := createScene(*sceneType, *width, *height)
	if err != nil {
		fmt.Printf("Error building scene: %v\n", err)
		os.Exit(1)
	}

	config := renderer.DefaultConfig()
	config.NumWorkers = *workers
	config.MaxDepth = *depth

	startTime := time.Now()
	img, err := renderer.Render(cam, w, config, renderer.NewDefaultLogger())
	if err != nil {
		fmt.Printf("Render failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	file, err := os.Create(*out)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, img.ToImage()); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", *out)
}

// createScene maps a scene name to its builder
func createScene(sceneType string, width, height int) (*world.World, *renderer.Camera, error) {
	switch sceneType {
	case "default":
		return scene.Default(width, height)
	case "showcase":
		return scene.Showcase(width, height)
	default:
		return nil, nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}
