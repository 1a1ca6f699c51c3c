//go:build js && wasm

package main

import (
	"github.com/kbkmn/weighted-voronoi-stippling/wasm/canvas"
)

func main() {
	c := canvas.NewCanvas()
	webcam, err := c.StartWebcam()
	if err != nil {
		c.Alert("Webcam not detected!")
		return
	}
	webcam.Render()
}
