// Package geometry reconciles the two coordinate systems used by the form
// tools: image-pixel space (origin top-left, Y down, produced by rasterized
// reference images) and document-point space (origin bottom-left, Y up,
// native to PDF pages).
package geometry

import (
	"encoding/json"
	"fmt"
)

// Rect is an axis-aligned box in a stated coordinate space. Callers are
// expected to supply Left <= Right and Top <= Bottom; values are trusted,
// not validated.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// MarshalJSON encodes the rectangle as a 4-number array [left, top, right,
// bottom], the wire form used by field description documents.
func (r Rect) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]float64{r.Left, r.Top, r.Right, r.Bottom})
}

// UnmarshalJSON decodes a 4-number array into the rectangle.
func (r *Rect) UnmarshalJSON(data []byte) error {
	var coords []float64
	if err := json.Unmarshal(data, &coords); err != nil {
		return fmt.Errorf("rectangle must be an array of numbers: %w", err)
	}
	if len(coords) != 4 {
		return fmt.Errorf("rectangle must have exactly 4 coordinates, got %d", len(coords))
	}
	r.Left, r.Top, r.Right, r.Bottom = coords[0], coords[1], coords[2], coords[3]
	return nil
}

// Height returns bottom - top.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Width returns right - left.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Intersects reports whether two rectangles in the same coordinate space
// overlap. Boundary contact counts as overlap. A nil rectangle means "no
// constraint" and never intersects anything.
func Intersects(a, b *Rect) bool {
	if a == nil || b == nil {
		return false
	}
	if a.Right < b.Left || b.Right < a.Left {
		return false
	}
	if a.Bottom < b.Top || b.Bottom < a.Top {
		return false
	}
	return true
}

// PageSpace relates one PDF page to the reference image its rectangles were
// authored against. Page dimensions are in points, image dimensions in
// pixels.
type PageSpace struct {
	PageWidth   float64
	PageHeight  float64
	ImageWidth  float64
	ImageHeight float64
}

// NewPageSpace builds a PageSpace for a page. When either image dimension is
// zero or unknown the page's own dimensions are used, which makes the scale
// factors 1.0.
func NewPageSpace(pageWidth, pageHeight, imageWidth, imageHeight float64) PageSpace {
	if imageWidth <= 0 || imageHeight <= 0 {
		imageWidth = pageWidth
		imageHeight = pageHeight
	}
	return PageSpace{
		PageWidth:   pageWidth,
		PageHeight:  pageHeight,
		ImageWidth:  imageWidth,
		ImageHeight: imageHeight,
	}
}

// ScaleX returns the pixel-to-point scale factor for the X axis.
func (ps PageSpace) ScaleX() float64 {
	return ps.PageWidth / ps.ImageWidth
}

// ScaleY returns the pixel-to-point scale factor for the Y axis.
func (ps PageSpace) ScaleY() float64 {
	return ps.PageHeight / ps.ImageHeight
}

// Anchor converts an image-pixel rectangle into the document-space text
// anchor used for baseline drawing: the scaled left edge and the scaled
// bottom edge flipped into bottom-origin coordinates. Text drawn upward from
// this baseline sits inside the box.
func (ps PageSpace) Anchor(r Rect) (x, y float64) {
	x = r.Left * ps.ScaleX()
	y = ps.PageHeight - r.Bottom*ps.ScaleY()
	return x, y
}

// ToPoints scales an image-pixel rectangle into document points while
// keeping the top-left orientation. Used when stroking boxes onto rendered
// page images at a different resolution than the authoring image.
func (ps PageSpace) ToPoints(r Rect) Rect {
	sx, sy := ps.ScaleX(), ps.ScaleY()
	return Rect{
		Left:   r.Left * sx,
		Top:    r.Top * sy,
		Right:  r.Right * sx,
		Bottom: r.Bottom * sy,
	}
}
