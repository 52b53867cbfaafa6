// Copyright 2025 go-lanes Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command mandelbrot renders the Mandelbrot set a vector of points at a
// time and writes the result as a PGM image. Each vector lane iterates an
// independent point; a lane stops contributing once its magnitude escapes,
// and the whole vector finishes early when every lane has escaped.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/janpfeifer/go-lanes/lanes"
)

var (
	flagWidth   = flag.Int("width", 1024, "image width in pixels")
	flagHeight  = flag.Int("height", 768, "image height in pixels")
	flagMaxIter = flag.Int("iter", 256, "maximum iterations per point")
	flagOut     = flag.String("out", "mandelbrot.pgm", "output PGM file")
	flagCenterX = flag.Float64("cx", -0.5, "center real coordinate")
	flagCenterY = flag.Float64("cy", 0.0, "center imaginary coordinate")
	flagScale   = flag.Float64("scale", 3.0, "width of the viewed region")
)

// iterate runs the escape-time iteration for one vector of points and
// returns the iteration count per lane.
func iterate(cr, ci lanes.Vec[float64], maxIter int) lanes.Vec[int32] {
	d := lanes.DescOf(cr)
	zr := lanes.Zero[float64](d)
	zi := lanes.Zero[float64](d)
	counts := lanes.Zero[int32](lanes.DescForLanes[int32](cr.NumLanes()))
	one := lanes.Broadcast(lanes.DescForLanes[int32](cr.NumLanes()), int32(1))
	four := lanes.Broadcast(d, 4.0)

	for iter := 0; iter < maxIter; iter++ {
		zr2 := lanes.Mul(zr, zr)
		zi2 := lanes.Mul(zi, zi)
		mag2 := lanes.Add(zr2, zi2)

		active := lanes.Less(mag2, four)
		if active.NoneTrue() {
			break
		}

		// z = z*z + c, only advancing lanes still inside the circle.
		newZr := lanes.Add(lanes.Sub(zr2, zi2), cr)
		newZi := lanes.Add(lanes.Mul(lanes.Broadcast(d, 2.0), lanes.Mul(zr, zi)), ci)
		zr = lanes.IfThenElse(active, newZr, zr)
		zi = lanes.IfThenElse(active, newZi, zi)
		counts = lanes.Add(counts, lanes.IfThenElseZero(lanes.MaskCast[int32](active), one))
	}
	return counts
}

func main() {
	flag.Parse()

	w, h, maxIter := *flagWidth, *flagHeight, *flagMaxIter
	d := lanes.DescFor[float64](lanes.W256)
	nl := d.Lanes

	pixels := make([]uint8, w*h)
	dx := *flagScale / float64(w)
	dy := dx
	x0 := *flagCenterX - *flagScale/2
	y0 := *flagCenterY - dy*float64(h)/2

	start := time.Now()
	crBuf := lanes.AlignedSlice[float64](d, 1)
	for y := 0; y < h; y++ {
		ci := lanes.Broadcast(d, y0+float64(y)*dy)
		for x := 0; x < w; x += nl {
			for i := 0; i < nl; i++ {
				px := x + i
				if px >= w {
					px = w - 1
				}
				crBuf[i] = x0 + float64(px)*dx
			}
			counts := iterate(lanes.FromSlice(d, crBuf), ci, maxIter)
			for i := 0; i < nl && x+i < w; i++ {
				c := counts.At(i)
				pixels[y*w+x+i] = uint8(255 * int(c) / maxIter)
			}
		}
	}
	elapsed := time.Since(start)

	if err := writePGM(*flagOut, w, h, pixels); err != nil {
		fmt.Fprintf(os.Stderr, "mandelbrot: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("rendered %dx%d (%d iterations max) in %v, wrote %s\n",
		w, h, maxIter, elapsed.Round(time.Millisecond), *flagOut)
}

func writePGM(path string, w, h int, pixels []uint8) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	fmt.Fprintf(bw, "P5\n%d %d\n255\n", w, h)
	if _, err := bw.Write(pixels); err != nil {
		return err
	}
	return bw.Flush()
}
