package scene

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
)

// ErrCanvasSize reports a non-positive canvas dimension.
var ErrCanvasSize = errors.New("scene: canvas dimensions must be positive")

// Rect is an axis-aligned rectangle in canvas pixels.
type Rect struct {
	X, Y, W, H float64
}

// Canvas is a raster surface backed by a gg context.
type Canvas struct {
	dc         *gg.Context
	background gg.RGBA
}

// CanvasOption configures a Canvas.
type CanvasOption func(*Canvas)

// WithBackground sets the clear colour. The default is transparent.
func WithBackground(col gg.RGBA) CanvasOption {
	return func(c *Canvas) {
		c.background = col
	}
}

// NewCanvas allocates a width x height canvas.
func NewCanvas(width, height int, options ...CanvasOption) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrCanvasSize, width, height)
	}
	c := &Canvas{dc: gg.NewContext(width, height), background: gg.Transparent}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	c.Clear()
	return c, nil
}

// Width returns the drawing buffer width in pixels.
func (c *Canvas) Width() int { return c.dc.Width() }

// Height returns the drawing buffer height in pixels.
func (c *Canvas) Height() int { return c.dc.Height() }

// ResizeToDisplaySize matches the drawing buffer to a display size scaled
// by multiplier (1 when not positive). It reports whether the buffer
// changed; a resized buffer is cleared.
func (c *Canvas) ResizeToDisplaySize(displayWidth, displayHeight int, multiplier float64) (bool, error) {
	if multiplier <= 0 {
		multiplier = 1
	}
	width := int(float64(displayWidth) * multiplier)
	height := int(float64(displayHeight) * multiplier)
	if width == c.Width() && height == c.Height() {
		return false, nil
	}
	if width <= 0 || height <= 0 {
		return false, fmt.Errorf("%w: %dx%d", ErrCanvasSize, width, height)
	}
	if err := c.dc.Resize(width, height); err != nil {
		return false, fmt.Errorf("scene: resize: %w", err)
	}
	c.Clear()
	return true, nil
}

// Clear fills the canvas with the background colour.
func (c *Canvas) Clear() {
	c.dc.ClearWithColor(c.background)
}

// FillRect paints r with col.
func (c *Canvas) FillRect(r Rect, col gg.RGBA) error {
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	if err := c.dc.Fill(); err != nil {
		return fmt.Errorf("scene: fill: %w", err)
	}
	return nil
}

// StrokeRect outlines r with col.
func (c *Canvas) StrokeRect(r Rect, col gg.RGBA, lineWidth float64) error {
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.dc.SetLineWidth(lineWidth)
	c.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	if err := c.dc.Stroke(); err != nil {
		return fmt.Errorf("scene: stroke: %w", err)
	}
	return nil
}

// Image returns the current pixels.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// SavePNG writes the canvas to path.
func (c *Canvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("scene: save %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// Close releases the drawing context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}
