package renderer

import (
	"image"
	"math/rand/v2"
)

// occupancy tracks which canvas pixels are covered by drawn labels. A
// summed-area table answers "is this rectangle empty" in constant time.
type occupancy struct {
	width, height int
	filled        []bool
	integral      []uint32 // (height+1) x (width+1), row-major; row 0 and column 0 are zero
}

func newOccupancy(width, height int) *occupancy {
	return &occupancy{
		width:    width,
		height:   height,
		filled:   make([]bool, width*height),
		integral: make([]uint32, (width+1)*(height+1)),
	}
}

// sum returns the number of covered pixels in [x0,x1) x [y0,y1).
func (o *occupancy) sum(x0, y0, x1, y1 int) uint32 {
	stride := o.width + 1
	return o.integral[y1*stride+x1] - o.integral[y0*stride+x1] - o.integral[y1*stride+x0] + o.integral[y0*stride+x0]
}

// samplePosition picks a top-left corner uniformly at random among all
// positions where a boxW x boxH rectangle covers no filled pixel.
func (o *occupancy) samplePosition(boxW, boxH int, rng *rand.Rand) (image.Point, bool) {
	if boxW <= 0 || boxH <= 0 || boxW > o.width || boxH > o.height {
		return image.Point{}, false
	}

	maxX := o.width - boxW
	maxY := o.height - boxH

	hits := 0
	for y := 0; y <= maxY; y++ {
		for x := 0; x <= maxX; x++ {
			if o.sum(x, y, x+boxW, y+boxH) == 0 {
				hits++
			}
		}
	}
	if hits == 0 {
		return image.Point{}, false
	}

	pick := rng.IntN(hits)
	for y := 0; y <= maxY; y++ {
		for x := 0; x <= maxX; x++ {
			if o.sum(x, y, x+boxW, y+boxH) != 0 {
				continue
			}
			if pick == 0 {
				return image.Point{X: x, Y: y}, true
			}
			pick--
		}
	}
	return image.Point{}, false
}

// mark records every non-transparent pixel of mask, placed with its origin
// at `at`, as covered.
func (o *occupancy) mark(mask *image.Alpha, at image.Point) {
	b := mask.Bounds()
	top := o.height
	for y := b.Min.Y; y < b.Max.Y; y++ {
		cy := at.Y + y - b.Min.Y
		if cy < 0 || cy >= o.height {
			continue
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			cx := at.X + x - b.Min.X
			if cx < 0 || cx >= o.width {
				continue
			}
			if mask.AlphaAt(x, y).A > 0 {
				o.filled[cy*o.width+cx] = true
				if cy < top {
					top = cy
				}
			}
		}
	}
	o.rebuild(top)
}

// rebuild recomputes the summed-area table from canvas row `from` down.
// Rows above `from` are unaffected by changes at or below it.
func (o *occupancy) rebuild(from int) {
	stride := o.width + 1
	for y := from; y < o.height; y++ {
		var rowSum uint32
		for x := 0; x < o.width; x++ {
			if o.filled[y*o.width+x] {
				rowSum++
			}
			o.integral[(y+1)*stride+x+1] = o.integral[y*stride+x+1] + rowSum
		}
	}
}

// coverage returns the fraction of the canvas covered by labels.
func (o *occupancy) coverage() float64 {
	total := o.width * o.height
	if total == 0 {
		return 0
	}
	return float64(o.sum(0, 0, o.width, o.height)) / float64(total)
}
