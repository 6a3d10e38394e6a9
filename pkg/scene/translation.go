package scene

import (
	"github.com/gogpu/gg"

	"github.com/goliatone/go-uibind/pkg/model"
)

// Size of the translated rectangle.
const (
	TranslationWidth  = 100
	TranslationHeight = 30
)

// PaletteNames labels the colour choices of a Translation, index for index.
var PaletteNames = []string{"random", "warm", "cool", "mono"}

var palette = []gg.RGBA{
	{}, // replaced by the scene's own random colour
	gg.RGB(0.93, 0.45, 0.2),
	gg.RGB(0.2, 0.55, 0.9),
	gg.RGB(0.5, 0.5, 0.5),
}

// Translation is a single rectangle at (X, Y). Its exported fields are the
// bindable state.
type Translation struct {
	X       float64 `ui:"x"`
	Y       float64 `ui:"y"`
	Outline bool    `ui:"outline"`
	Palette int     `ui:"palette"`

	color gg.RGBA
}

// NewTranslation picks the rectangle's random colour.
func NewTranslation(rng Rand) *Translation {
	return &Translation{color: randomColor(rng)}
}

// Color returns the fill colour for the selected palette entry.
func (t *Translation) Color() gg.RGBA {
	if t.Palette <= 0 || t.Palette >= len(palette) {
		return t.color
	}
	return palette[t.Palette]
}

// Bounds returns the rectangle at its current translation.
func (t *Translation) Bounds() Rect {
	return Rect{X: t.X, Y: t.Y, W: TranslationWidth, H: TranslationHeight}
}

// Descriptors describes the bindable fields. The sliders span the canvas.
func (t *Translation) Descriptors(c *Canvas, change func()) []model.Descriptor {
	return []model.Descriptor{
		{Key: "x", Widget: model.Slider{Max: float64(c.Width())}, Change: change},
		{Key: "y", Widget: model.Slider{Max: float64(c.Height())}, Change: change},
		{Key: "outline", Widget: model.Checkbox{}, Change: change},
		{Key: "palette", Widget: model.Option{Options: PaletteNames}, Change: change},
	}
}

// Draw clears the canvas and paints the rectangle.
func (t *Translation) Draw(c *Canvas) error {
	c.Clear()
	bounds := t.Bounds()
	if err := c.FillRect(bounds, t.Color()); err != nil {
		return err
	}
	if !t.Outline {
		return nil
	}
	return c.StrokeRect(bounds, gg.Black, 2)
}

// State returns the bindable fields keyed like their descriptors.
func (t *Translation) State() map[string]any {
	return map[string]any{
		"x":       t.X,
		"y":       t.Y,
		"outline": t.Outline,
		"palette": t.Palette,
	}
}

// Fit moves the rectangle back inside the canvas and reports whether it
// moved.
func (t *Translation) Fit(c *Canvas) bool {
	x := clampRange(t.X, 0, float64(c.Width())-TranslationWidth)
	y := clampRange(t.Y, 0, float64(c.Height())-TranslationHeight)
	moved := x != t.X || y != t.Y
	t.X, t.Y = x, y
	return moved
}

func clampRange(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	return min(max(v, lo), hi)
}
