package overlay

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/formweld/pdf-form-tools/internal/fieldspec"
	"github.com/formweld/pdf-form-tools/internal/geometry"
)

var (
	entryBoxColor = color.RGBA{R: 0xff, A: 0xff} // red
	labelBoxColor = color.RGBA{B: 0xff, A: 0xff} // blue
)

// BoxCounts reports how many rectangles of each kind were drawn.
type BoxCounts struct {
	Entries int
	Labels  int
}

// DrawBoxes strokes every field rectangle for a 1-based page onto img:
// entry boxes in red, label boxes in blue, both 2px wide. When withLabels
// is set, each box gets its field description drawn above its top-left
// corner. The image is expected to be the reference image the boxes were
// authored against, so coordinates apply directly.
func DrawBoxes(img image.Image, doc *fieldspec.Document, pageNum, strokeWidth int, withLabels bool) (*image.RGBA, BoxCounts, error) {
	if strokeWidth <= 0 {
		strokeWidth = 2
	}

	canvas := image.NewRGBA(img.Bounds())
	draw.Draw(canvas, canvas.Bounds(), img, img.Bounds().Min, draw.Src)

	var counts BoxCounts
	for _, field := range doc.FieldsForPage(pageNum) {
		if field.EntryBox != nil {
			strokeRect(canvas, *field.EntryBox, entryBoxColor, strokeWidth)
			if withLabels {
				drawCaption(canvas, *field.EntryBox, field.Description, entryBoxColor)
			}
			counts.Entries++
		}
		if field.LabelBox != nil {
			strokeRect(canvas, *field.LabelBox, labelBoxColor, strokeWidth)
			counts.Labels++
		}
	}
	return canvas, counts, nil
}

// DrawBoxesFile is the file-based wrapper around DrawBoxes for PNG images.
func DrawBoxesFile(inPath, outPath string, doc *fieldspec.Document, pageNum, strokeWidth int, withLabels bool) (BoxCounts, error) {
	in, err := os.Open(inPath)
	if err != nil {
		return BoxCounts{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer in.Close()

	img, _, err := image.Decode(in)
	if err != nil {
		return BoxCounts{}, fmt.Errorf("failed to decode image: %w", err)
	}

	canvas, counts, err := DrawBoxes(img, doc, pageNum, strokeWidth, withLabels)
	if err != nil {
		return BoxCounts{}, err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return BoxCounts{}, fmt.Errorf("failed to create output image: %w", err)
	}
	defer out.Close()

	if err := png.Encode(out, canvas); err != nil {
		return BoxCounts{}, fmt.Errorf("failed to encode output image: %w", err)
	}
	return counts, nil
}

// strokeRect draws an axis-aligned rectangle outline of the given width,
// growing inward from the rectangle edge.
func strokeRect(canvas *image.RGBA, r geometry.Rect, c color.RGBA, width int) {
	left, top := int(r.Left), int(r.Top)
	right, bottom := int(r.Right), int(r.Bottom)

	for w := 0; w < width; w++ {
		for x := left; x <= right; x++ {
			canvas.SetRGBA(x, top+w, c)
			canvas.SetRGBA(x, bottom-w, c)
		}
		for y := top; y <= bottom; y++ {
			canvas.SetRGBA(left+w, y, c)
			canvas.SetRGBA(right-w, y, c)
		}
	}
}

// drawCaption renders a small description just above the box's top-left
// corner.
func drawCaption(canvas *image.RGBA, r geometry.Rect, text string, c color.RGBA) {
	if text == "" {
		return
	}
	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot: fixed.Point26_6{
			X: fixed.I(int(r.Left)),
			Y: fixed.I(int(r.Top) - 3),
		},
	}
	d.DrawString(text)
}
