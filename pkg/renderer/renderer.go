package renderer

import (
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"

	"spheretrace/pkg/core"
	"spheretrace/pkg/frame"
)

// depthExhaustedColor marks paths that ran out of bounces. Deliberately
// loud magenta rather than black so runaway light paths stay visible in
// the output.
var depthExhaustedColor = core.ColorFromRGB8(245, 66, 129)

// Scene interface keeps the renderer decoupled from scene construction
type Scene interface {
	Hit(ray core.Ray) (core.HitRecord, core.Hittable, bool)
}

// Config contains the sampling parameters for one render
type Config struct {
	Samples int   // rays per pixel
	Bounces int   // maximum path depth
	Seed    int64 // base seed; each row derives its own stream
	Workers int   // row workers, <= 0 means one per CPU
}

// DefaultConfig returns sensible sampling defaults
func DefaultConfig() Config {
	return Config{
		Samples: 300,
		Bounces: 20,
		Seed:    42,
		Workers: 0,
	}
}

// Renderer integrates radiance per pixel by tracing camera rays through
// the scene
type Renderer struct {
	scene  Scene
	camera *Camera
	config Config
	logger core.Logger
}

// NewRenderer creates a renderer. logger may be nil for silent renders.
func NewRenderer(s Scene, camera *Camera, config Config, logger core.Logger) *Renderer {
	return &Renderer{
		scene:  s,
		camera: camera,
		config: config,
		logger: logger,
	}
}

// Render traces the full image and returns the finished pixel buffer.
// Rows render in parallel; every row owns a random stream seeded from
// the base seed plus its index, so output is bit-identical for any
// worker count.
func (r *Renderer) Render() *frame.Buffer {
	width, height := r.camera.RasterSize()
	buf := frame.NewBuffer(width, height)

	workers := r.config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	rows := make(chan int, height)
	var done atomic.Int64
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				r.renderRow(y, buf)
				if r.logger != nil {
					r.logger.Printf("rendered row %d/%d", done.Add(1), height)
				}
			}
		}()
	}

	for y := 0; y < height; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	return buf
}

// renderRow integrates every pixel of one raster row. Rows never share
// output cells, so no synchronization is needed on the buffer.
func (r *Renderer) renderRow(y int, buf *frame.Buffer) {
	width, _ := r.camera.RasterSize()
	rng := rand.New(rand.NewSource(r.config.Seed + int64(y)))

	for x := 0; x < width; x++ {
		sum := core.Black()
		for s := 0; s < r.config.Samples; s++ {
			pixelU := rng.Float64()
			pixelV := rng.Float64()
			lensU, lensV := core.RandomOnUnitDisc(rng)

			ray := r.camera.RayThrough(x, y, lensU, lensV, pixelU, pixelV)
			sum = sum.Add(r.ColorizeRay(ray, r.config.Bounces, rng))
		}

		avg := sum.Scale(1.0 / float64(r.config.Samples)).Gamma2()
		pr, pg, pb := avg.RGB8()
		buf.SetPx(x, y, frame.Pixel{R: pr, G: pg, B: pb})
	}
}

// ColorizeRay evaluates the radiance arriving along a ray, recursing
// through material bounces until the depth budget runs out, the path
// terminates at a material, or the ray escapes without hitting anything.
func (r *Renderer) ColorizeRay(ray core.Ray, depth int, rng *rand.Rand) core.Color {
	if depth <= 0 {
		return depthExhaustedColor
	}

	hit, obj, ok := r.scene.Hit(ray)
	if !ok {
		// Open scenes rely on a Background object to avoid this
		return core.Black()
	}

	attenuation, continuation := obj.Material().Bounce(ray, hit, rng)
	if continuation == nil {
		return attenuation
	}
	return attenuation.MultiplyColor(r.ColorizeRay(*continuation, depth-1, rng))
}
