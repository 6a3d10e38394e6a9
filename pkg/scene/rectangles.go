package scene

import "github.com/gogpu/gg"

// RandomRectangleCount is the number of rectangles of the 2D demo.
const RandomRectangleCount = 50

// randomExtent bounds every coordinate and dimension of a random rectangle.
const randomExtent = 300

// Rand is the random source the scenes draw from. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// Shape is a filled rectangle.
type Shape struct {
	Rect  Rect
	Color gg.RGBA
}

// RandomRectangles clears the canvas and fills n rectangles whose position
// and size are integers in [0,300), each in a random opaque colour. It
// returns what it drew.
func RandomRectangles(c *Canvas, rng Rand, n int) ([]Shape, error) {
	c.Clear()
	shapes := make([]Shape, 0, max(n, 0))
	for i := 0; i < n; i++ {
		shape := Shape{
			Rect: Rect{
				X: float64(rng.IntN(randomExtent)),
				Y: float64(rng.IntN(randomExtent)),
				W: float64(rng.IntN(randomExtent)),
				H: float64(rng.IntN(randomExtent)),
			},
			Color: randomColor(rng),
		}
		if err := c.FillRect(shape.Rect, shape.Color); err != nil {
			return shapes, err
		}
		shapes = append(shapes, shape)
	}
	return shapes, nil
}

func randomColor(rng Rand) gg.RGBA {
	return gg.RGB(rng.Float64(), rng.Float64(), rng.Float64())
}
