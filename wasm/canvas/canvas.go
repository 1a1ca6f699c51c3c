//go:build js && wasm

package canvas

import (
	"fmt"
	"math"
	"syscall/js"

	stipple "github.com/kbkmn/weighted-voronoi-stippling/core"
)

const (
	// procWidth is the width the webcam frame is downsampled to before
	// the luminance grid is built; the dots are scaled back up on draw.
	procWidth = 320
	numPoints = 3000
	// blendStep is deliberately high so the points keep up with a moving
	// scene instead of settling.
	blendStep = 0.85
	dotScale  = 2.5
	minRadius = 0.75
)

// Canvas struct holds the Javascript objects needed for the Canvas creation
type Canvas struct {
	done   chan struct{}
	succCh chan struct{}
	errCh  chan error

	// DOM elements
	window     js.Value
	doc        js.Value
	body       js.Value
	windowSize struct{ width, height int }

	// Canvas properties
	canvas   js.Value
	procCanv js.Value
	ctx      js.Value
	procCtx  js.Value
	reqID    js.Value
	renderer js.Func

	// Webcam properties
	video js.Value

	// Stippling state
	grid   *stipple.Grid
	engine *stipple.Stippler
	data   []byte
}

// NewCanvas creates and initializes the new Canvas element
func NewCanvas() *Canvas {
	var c Canvas
	c.window = js.Global()
	c.doc = c.window.Get("document")
	c.body = c.doc.Get("body")

	c.windowSize.width = c.window.Get("innerWidth").Int()
	c.windowSize.height = c.window.Get("innerHeight").Int()

	c.canvas = c.doc.Call("createElement", "canvas")
	c.canvas.Set("width", c.windowSize.width)
	c.canvas.Set("height", c.windowSize.height)
	c.body.Call("appendChild", c.canvas)
	c.ctx = c.canvas.Call("getContext", "2d")

	// The luminance grid is built from a downsampled offscreen copy of
	// the webcam frame.
	procHeight := c.windowSize.height * procWidth / c.windowSize.width
	if procHeight < 1 {
		procHeight = 1
	}
	c.procCanv = c.doc.Call("createElement", "canvas")
	c.procCanv.Set("width", procWidth)
	c.procCanv.Set("height", procHeight)
	c.procCtx = c.procCanv.Call("getContext", "2d")

	c.grid, _ = stipple.NewGrid(procWidth, procHeight)
	c.data = make([]byte, procWidth*procHeight*4)
	return &c
}

// Render calls the `requestAnimationFrame` Javascript function in asynchronous mode.
func (c *Canvas) Render() {
	c.done = make(chan struct{})

	c.renderer = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		go func() {
			c.reqID = c.window.Call("requestAnimationFrame", c.renderer)
			c.advance()
		}()
		return nil
	})
	c.window.Call("requestAnimationFrame", c.renderer)
	<-c.done
}

// advance grabs one webcam frame, feeds it through the relaxation and
// redraws the stipple dots.
func (c *Canvas) advance() {
	pw, ph := c.grid.Width, c.grid.Height

	// Draw the webcam frame to the offscreen canvas element
	c.procCtx.Call("drawImage", c.video, 0, 0, pw, ph)
	rgba := c.procCtx.Call("getImageData", 0, 0, pw, ph).Get("data")

	uint8Arr := js.Global().Get("Uint8Array").New(rgba)
	js.CopyBytesToGo(c.data, uint8Arr)
	if err := c.grid.FromRGBA(c.data); err != nil {
		c.Log(err.Error())
		return
	}

	if c.engine == nil {
		engine, err := stipple.NewStippler(c.grid, stipple.Params{
			Count: numPoints,
			Blend: blendStep,
		})
		if err != nil {
			// A blank or covered camera cannot seed the points yet;
			// keep trying on the following frames.
			return
		}
		c.engine = engine
	}

	frame, err := c.engine.NextFrame(c.grid)
	if err != nil {
		c.Log(err.Error())
		return
	}
	c.draw(frame)
}

// draw paints the stipple dots, scaled up from the processing resolution
// to the visible canvas.
func (c *Canvas) draw(frame *stipple.Frame) {
	w, h := c.windowSize.width, c.windowSize.height
	sx := float64(w) / float64(c.grid.Width)
	sy := float64(h) / float64(c.grid.Height)

	c.ctx.Set("fillStyle", "#ffffff")
	c.ctx.Call("fillRect", 0, 0, w, h)

	c.ctx.Set("fillStyle", "#000000")
	for i, pt := range frame.Points {
		r := dotScale * frame.Weights[i] * sx
		if r < minRadius {
			r = minRadius
		}
		c.ctx.Call("beginPath")
		c.ctx.Call("arc", pt.X*sx, pt.Y*sy, r, 0, 2*math.Pi, false)
		c.ctx.Call("fill")
	}
}

// Stop stops the rendering.
func (c *Canvas) Stop() {
	c.window.Call("cancelAnimationFrame", c.reqID)
	c.done <- struct{}{}
	close(c.done)
}

// StartWebcam reads the webcam data and feeds it into the canvas element.
// It returns an empty struct in case of success and error in case of failure.
func (c *Canvas) StartWebcam() (*Canvas, error) {
	var err error
	c.succCh = make(chan struct{})
	c.errCh = make(chan error)

	c.video = c.doc.Call("createElement", "video")

	// If we don't do this, the stream will not be played.
	c.video.Set("autoplay", 1)
	c.video.Set("playsinline", 1) // important for iPhones

	// The video should fill out all of the canvas
	c.video.Set("width", 0)
	c.video.Set("height", 0)

	c.body.Call("appendChild", c.video)

	success := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		go func() {
			c.video.Set("srcObject", args[0])
			c.video.Call("play")
			c.succCh <- struct{}{}
		}()
		return nil
	})

	failure := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		go func() {
			err = fmt.Errorf("failed initialising the camera: %s", args[0].String())
			c.errCh <- err
		}()
		return nil
	})

	opts := js.Global().Get("Object").New()
	widthOpts := js.Global().Get("Object").New()
	widthOpts.Set("min", 1024)
	widthOpts.Set("max", 1920)

	heightOpts := js.Global().Get("Object").New()
	heightOpts.Set("min", 720)
	heightOpts.Set("max", 1080)

	videoSize := js.Global().Get("Object").New()
	videoSize.Set("width", widthOpts)
	videoSize.Set("height", heightOpts)
	videoSize.Set("aspectRatio", 1.777777778)

	opts.Set("video", videoSize)
	opts.Set("audio", false)

	promise := c.window.Get("navigator").Get("mediaDevices").Call("getUserMedia", opts)
	promise.Call("then", success, failure)

	select {
	case <-c.succCh:
		return c, nil
	case err := <-c.errCh:
		return nil, err
	}
}

// Log calls the `console.log` Javascript function
func (c *Canvas) Log(args ...interface{}) {
	c.window.Get("console").Call("log", args...)
}

// Alert calls the `alert` Javascript function
func (c *Canvas) Alert(args ...interface{}) {
	alert := c.window.Get("alert")
	alert.Invoke(args...)
}
