package render

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
)

// EncodeGIF encodes the rendered relaxation frames as a looping animation.
// delay is the per frame delay in hundredths of a second.
func EncodeGIF(w io.Writer, frames []image.Image, delay int) error {
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		pal := image.NewPaletted(frame.Bounds(), palette.Plan9)
		draw.Draw(pal, pal.Bounds(), frame, frame.Bounds().Min, draw.Src)
		anim.Image = append(anim.Image, pal)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, &anim)
}
