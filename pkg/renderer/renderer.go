// Package renderer drives the parallel render loop: one ray per pixel,
// rows distributed cyclically across a fixed pool of workers.
package renderer

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/whitted-go/raytracer/pkg/canvas"
	"github.com/whitted-go/raytracer/pkg/world"
)

// Config contains rendering configuration
type Config struct {
	NumWorkers int // Number of parallel workers (0 = use CPU count)
	MaxDepth   int // Maximum reflection/refraction bounce depth
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		NumWorkers: 0,
		MaxDepth:   world.MaxRecursionDepth,
	}
}

// rowResult reports one worker's outcome back to the render loop
type rowResult struct {
	worker int
	err    error
}

// Render fills a canvas by shooting one ray through every pixel of the
// camera's canvas and asking the world for its color.
//
// Rows are assigned to workers cyclically (row index modulo worker count)
// rather than in contiguous blocks: per-row cost varies with scene content,
// and interleaving spreads expensive regions across the pool. Workers write
// only their own rows, so the canvas needs no locking. Pixel values depend
// only on the world, camera and coordinates, so the result is identical
// for any worker count.
//
// Render blocks until every worker finishes. A panic in any worker aborts
// the whole render; a partially filled canvas is never returned.
func Render(cam *Camera, w *world.World, config Config, logger Logger) (*canvas.Canvas, error) {
	if logger == nil {
		logger = nopLogger{}
	}

	numWorkers := config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > cam.VSize {
		numWorkers = cam.VSize
	}

	maxDepth := config.MaxDepth
	if maxDepth <= 0 {
		maxDepth = world.MaxRecursionDepth
	}

	logger.Printf("Rendering %dx%d with %d workers (depth %d)\n", cam.HSize, cam.VSize, numWorkers, maxDepth)

	img := canvas.New(cam.HSize, cam.VSize)
	results := make(chan rowResult, numWorkers)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			results <- rowResult{worker: workerID, err: renderRows(cam, w, img, workerID, numWorkers, maxDepth)}
		}(i)
	}

	wg.Wait()
	close(results)

	// First failure wins; the canvas is discarded either way
	for result := range results {
		if result.err != nil {
			return nil, fmt.Errorf("render worker %d: %w", result.worker, result.err)
		}
	}

	return img, nil
}

// renderRows computes every pixel of the rows owned by one worker. Panics
// from the geometry math are converted into errors naming the row so the
// render as a whole can fail cleanly.
func renderRows(cam *Camera, w *world.World, img *canvas.Canvas, start, stride, maxDepth int) (err error) {
	row := -1
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("row %d: %v", row, r)
		}
	}()

	for row = start; row < cam.VSize; row += stride {
		for x := 0; x < cam.HSize; x++ {
			ray := cam.RayForPixel(x, row)
			img.WritePixel(x, row, w.ColorAt(ray, maxDepth))
		}
	}
	return nil
}
