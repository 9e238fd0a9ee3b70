package renderer

import (
	"image"
	"image/color"
	"math/rand"
	"runtime"
	"sync"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int     // Number of jittered rays per pixel
	MaxDepth        int     // Recursion budget for reflection/refraction
	Gamma           float64 // Display gamma applied before quantization
	Seed            int64   // Base RNG seed; row i uses Seed+i
}

// DefaultSamplingConfig returns the baseline values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 16,
		MaxDepth:        integrator.DefaultMaxDepth,
		Gamma:           2.2,
		Seed:            42,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetShapes() []core.Shape
	GetLights() []lights.PointLight
}

// Renderer drives per-pixel sampling of a scene into an image
type Renderer struct {
	scene  Scene
	width  int
	height int
	config SamplingConfig
}

// NewRenderer creates a renderer for the given scene and image size
func NewRenderer(scene Scene, width, height int) *Renderer {
	return &Renderer{
		scene:  scene,
		width:  width,
		height: height,
		config: DefaultSamplingConfig(),
	}
}

// SetSamplingConfig updates the sampling configuration
func (r *Renderer) SetSamplingConfig(config SamplingConfig) {
	r.config = config
}

// vec3ToColor converts a linear color to RGBA with gamma correction and
// clamping to the displayable range
func (r *Renderer) vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.GammaCorrect(r.config.Gamma)
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}

// renderRow renders scanline j into img using its own tracer, so rows are
// independent and deterministic for a fixed seed
func (r *Renderer) renderRow(img *image.RGBA, j int) RenderStats {
	camera := r.scene.GetCamera()
	random := rand.New(rand.NewSource(r.config.Seed + int64(j)))
	tracer := integrator.NewWhitted(r.scene.GetShapes(), r.scene.GetLights(), random)

	for i := 0; i < r.width; i++ {
		colorAccum := core.Vec3{}

		for sample := 0; sample < r.config.SamplesPerPixel; sample++ {
			s := (float64(i) + random.Float64()) / float64(r.width)
			t := (float64(j) + random.Float64()) / float64(r.height)

			ray := camera.GetRay(s, t)
			colorAccum = colorAccum.Add(tracer.Trace(ray, r.config.MaxDepth))
		}

		colorVec := colorAccum.Multiply(1.0 / float64(r.config.SamplesPerPixel))
		img.SetRGBA(i, r.height-1-j, r.vec3ToColor(colorVec))
	}

	return RenderStats{
		TotalPixels:  r.width,
		TotalSamples: r.width * r.config.SamplesPerPixel,
		RaysTraced:   tracer.RaysTraced(),
	}
}

// Render renders the scene on the calling goroutine
func (r *Renderer) Render() (*image.RGBA, RenderStats) {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))

	var stats RenderStats
	for j := r.height - 1; j >= 0; j-- {
		stats.merge(r.renderRow(img, j))
	}

	return img, stats
}

// RenderParallel renders the scene with the given number of scanline
// workers. Rows are disjoint regions of the framebuffer, so workers need
// no locking; row-indexed seeding makes the output identical to Render.
// numWorkers <= 0 selects one worker per CPU.
func (r *Renderer) RenderParallel(numWorkers int) (*image.RGBA, RenderStats) {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	rows := make(chan int, r.height)
	results := make(chan RenderStats, r.height)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rows {
				results <- r.renderRow(img, j)
			}
		}()
	}

	for j := 0; j < r.height; j++ {
		rows <- j
	}
	close(rows)
	wg.Wait()
	close(results)

	var stats RenderStats
	for rowStats := range results {
		stats.merge(rowStats)
	}

	return img, stats
}
