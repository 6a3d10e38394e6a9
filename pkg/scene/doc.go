// Package scene draws the rectangle demos onto a raster canvas: a batch of
// random rectangles and a single rectangle moved by bound widgets.
package scene
