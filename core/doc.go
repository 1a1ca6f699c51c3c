/*
Package stipple converts images to computer generated stipple art using weighted Voronoi relaxation.

The package seeds a set of points over a luminance grid by rejection sampling, then advances them frame
by frame: each frame partitions the plane by nearest point, pulls every point toward the weighted
centroid of its cell, and reports an ink weight per point for sizing the drawn marks. Dark image
regions attract and keep points, bright regions shed them.

Example to relax a point set over a still image:

	package main

	import (
		"fmt"
		"image"

		stipple "github.com/kbkmn/weighted-voronoi-stippling/core"
	)

	func main() {
		var img image.Image // decoded beforehand

		grid := stipple.GridFromImage(img)
		s, err := stipple.NewStippler(grid, stipple.Params{
			Count: 8000,
			Blend: 0.6,
		})
		if err != nil {
			fmt.Printf("Error on stippler setup: %s", err.Error())
			return
		}

		var frame *stipple.Frame
		for i := 0; i < 40; i++ {
			if frame, err = s.NextFrame(grid); err != nil {
				fmt.Printf("Error on relaxation step: %s", err.Error())
				return
			}
		}
		fmt.Println(len(frame.Points), "points settled")
	}

For a live source, feed a fresh grid into NextFrame on every call and the points track the scene.
*/
package stipple
