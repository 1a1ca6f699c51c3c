package main

import (
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/term"

	stipple "github.com/kbkmn/weighted-voronoi-stippling/core"
	"github.com/kbkmn/weighted-voronoi-stippling/render"
	"github.com/kbkmn/weighted-voronoi-stippling/utils"
)

const banner = `
┌─┐┌┬┐┬┌─┐┌─┐┬  ┌─┐
└─┐ │ │├─┘├─┘│  ├┤
└─┘ ┴ ┴┴  ┴  ┴─┘└─┘

Weighted Voronoi stippling of images.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

const (
	// message colors
	successColor = "\x1b[92m"
	errorColor   = "\x1b[31m"
	defaultColor = "\x1b[0m"
)

// Version indicates the current build version.
var Version string

// runner bundles one stippling session driven from the command line.
type runner struct {
	cfg     *Config
	curve   stipple.WeightCurve
	opts    render.Options
	spin    *utils.Spinner
	animate bool

	engine *stipple.Stippler
	grid   *stipple.Grid
	frames []image.Image
	final  *stipple.Frame
}

func main() {
	var (
		// Flags
		source      = flag.String("in", pipeName, "Source image")
		destination = flag.String("out", pipeName, "Destination image")
		points      = flag.Int("points", stipple.DefaultCount, "Number of stipple points")
		blend       = flag.Float64("blend", stipple.DefaultBlend, "Relaxation blend factor in (0, 1]")
		curve       = flag.String("curve", "linear", "Luminance weight curve: linear|squared")
		ticks       = flag.Int("ticks", DefaultTicks, "Number of relaxation frames")
		scale       = flag.Float64("scale", DefaultScale, "Dot radius at full ink weight")
		width       = flag.Int("width", 0, "Resize the source to this width before stippling, 0 keeps it")
		blur        = flag.Float64("blur", 0, "Gaussian blur sigma applied to the source")
		wireframe   = flag.Bool("wireframe", false, "Trace the Voronoi cell outlines")
		seed        = flag.Int64("seed", 0, "Random seed, 0 seeds from the clock")
		delay       = flag.Int("delay", DefaultDelay, "GIF frame delay in hundredths of a second")
		configFile  = flag.String("config", "", "YAML file with the run options")
		quiet       = flag.Bool("quiet", false, "Suppress the progress output")
	)

	log.SetFlags(0)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, fmt.Sprintf(banner, Version))
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := &Config{
		Points: *points, Blend: *blend, Curve: *curve,
		Ticks: *ticks, Scale: *scale, Width: *width,
		Blur: *blur, Wireframe: *wireframe, Seed: *seed, Delay: *delay,
	}
	if *configFile != "" {
		fileCfg, err := loadConfig(*configFile)
		if err != nil {
			log.Fatalf("Unable to load the config file: %v", err)
		}
		applyUnsetFlags(cfg, fileCfg)
	}
	if cfg.Ticks < 1 {
		log.Fatal("At least one relaxation frame is required")
	}
	curveVal, err := stipple.ParseCurve(cfg.Curve)
	if err != nil {
		log.Fatalf("Invalid weight curve: %v", err)
	}

	ext := filepath.Ext(*destination)
	var dst io.Writer
	if *destination == pipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			log.Fatalln("`-` should be used with a pipe for stdout")
		}
		dst = os.Stdout
		ext = ".png"
	} else {
		fileTypes := []string{".jpg", ".jpeg", ".png", ".gif", ".svg"}
		if !inSlice(ext, fileTypes) {
			log.Fatalf("Output file type not supported: %v", ext)
		}
		fn, err := os.OpenFile(*destination, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			log.Fatalf("Unable to open output file: %v", err)
		}
		defer fn.Close()
		dst = fn
	}

	start := time.Now()

	opts := render.DefaultOptions()
	opts.Scale = cfg.Scale
	opts.Wireframe = cfg.Wireframe

	r := &runner{
		cfg:     cfg,
		curve:   curveVal,
		opts:    opts,
		animate: ext == ".gif",
	}
	if !*quiet {
		r.spin = utils.NewSpinner("Stippling...", time.Millisecond*100)
		r.spin.Start()
	}

	if err := r.run(*source); err != nil {
		if r.spin != nil {
			r.spin.Stop(fmt.Sprintf("Stippling... %sfailed ✗%s", errorColor, defaultColor))
		}
		log.Fatalf("Stippling error: %s%v%s", errorColor, err, defaultColor)
	}
	if err := r.encode(dst, ext); err != nil {
		if r.spin != nil {
			r.spin.Stop(fmt.Sprintf("Stippling... %sfailed ✗%s", errorColor, defaultColor))
		}
		log.Fatalf("Error encoding the output image: %v", err)
	}
	if r.spin != nil {
		r.spin.Stop(fmt.Sprintf("Stippling... %sfinished ✔%s", successColor, defaultColor))
	}

	if !*quiet {
		log.Printf("%s%d%s points relaxed over %s%d%s frames",
			successColor, r.engine.Count(), defaultColor, successColor, cfg.Ticks, defaultColor)
		log.Printf("\nExecution time: %s%.2fs%s\n", successColor, time.Since(start).Seconds(), defaultColor)
	}
}

// applyUnsetFlags copies the file values over every option whose flag was
// not given explicitly on the command line.
func applyUnsetFlags(cfg, file *Config) {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set["points"] {
		cfg.Points = file.Points
	}
	if !set["blend"] {
		cfg.Blend = file.Blend
	}
	if !set["curve"] {
		cfg.Curve = file.Curve
	}
	if !set["ticks"] {
		cfg.Ticks = file.Ticks
	}
	if !set["scale"] {
		cfg.Scale = file.Scale
	}
	if !set["width"] {
		cfg.Width = file.Width
	}
	if !set["blur"] {
		cfg.Blur = file.Blur
	}
	if !set["wireframe"] {
		cfg.Wireframe = file.Wireframe
	}
	if !set["seed"] {
		cfg.Seed = file.Seed
	}
	if !set["delay"] {
		cfg.Delay = file.Delay
	}
}

// run loads the source image, seeds the stippler over it and advances the
// relaxation for the configured number of frames. The rendered animation
// frames are collected only for an animated destination.
func (r *runner) run(source string) error {
	var srcFile io.Reader
	if source == pipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			log.Fatalln("`-` should be used with a pipe for stdin")
		}
		srcFile = os.Stdin
	} else {
		file, err := os.Open(source)
		if err != nil {
			return err
		}
		defer file.Close()
		srcFile = file
	}

	src, err := stipple.DecodeImage(srcFile)
	if err != nil {
		return err
	}
	if r.cfg.Width > 0 && r.cfg.Width != src.Bounds().Dx() {
		src = imaging.Resize(src, r.cfg.Width, 0, imaging.Lanczos)
	}
	if r.cfg.Blur > 0 {
		src = imaging.Blur(src, r.cfg.Blur)
	}

	r.grid = stipple.GridFromImage(src)
	r.engine, err = stipple.NewStippler(r.grid, stipple.Params{
		Count: r.cfg.Points,
		Blend: r.cfg.Blend,
		Curve: r.curve,
		Seed:  r.cfg.Seed,
	})
	if err != nil {
		return err
	}

	for tick := 1; tick <= r.cfg.Ticks; tick++ {
		if r.spin != nil {
			r.spin.SetMessage(fmt.Sprintf("Stippling frame %d/%d...", tick, r.cfg.Ticks))
		}
		frame, err := r.engine.NextFrame(r.grid)
		if err != nil {
			return err
		}
		r.final = frame
		if r.animate {
			w, h := r.engine.Bounds()
			r.frames = append(r.frames, render.Render(frame, r.cells(), w, h, r.opts))
		}
	}
	return nil
}

// cells returns the Voronoi polygons of the current point set when the
// wireframe is requested, nil otherwise.
func (r *runner) cells() [][]stipple.Point {
	if !r.opts.Wireframe {
		return nil
	}
	w, h := r.engine.Bounds()
	return r.engine.Partition().CellPolygons(float64(w), float64(h))
}

// encode writes the session result in the format selected by the output
// file extension.
func (r *runner) encode(dst io.Writer, ext string) error {
	w, h := r.engine.Bounds()
	switch ext {
	case ".gif":
		return render.EncodeGIF(dst, r.frames, r.cfg.Delay)
	case ".svg":
		render.WriteSVG(dst, r.final, r.cells(), w, h, r.opts)
		return nil
	case ".png":
		return png.Encode(dst, render.Render(r.final, r.cells(), w, h, r.opts))
	default:
		return jpeg.Encode(dst, render.Render(r.final, r.cells(), w, h, r.opts), &jpeg.Options{Quality: 100})
	}
}

// inSlice checks if the item exists in the slice.
func inSlice(item string, slice []string) bool {
	for _, it := range slice {
		if it == item {
			return true
		}
	}
	return false
}
