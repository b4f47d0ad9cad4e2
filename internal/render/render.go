// Package render rasterizes PDF pages to PNG images via MuPDF (go-fitz).
package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	fitz "github.com/gen2brain/go-fitz"
)

// DefaultDPI matches the original workflow's rasterization resolution.
const DefaultDPI = 150

// PageImage describes one written page image.
type PageImage struct {
	PageNumber int    `json:"page_number"`
	Path       string `json:"path"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
}

// Pages renders every page of a PDF into outDir as page_1.png, page_2.png,
// ... at the given DPI (dpi <= 0 selects DefaultDPI). Returns one entry per
// written file.
func Pages(pdfPath, outDir string, dpi float64) ([]PageImage, error) {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return nil, fmt.Errorf("cannot create output directory %s: %w", outDir, err)
	}

	doc, err := fitz.New(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF for rendering: %w", err)
	}
	defer doc.Close()

	var results []PageImage
	for i := 0; i < doc.NumPage(); i++ {
		img, err := doc.ImageDPI(i, dpi)
		if err != nil {
			return nil, fmt.Errorf("failed to render page %d: %w", i+1, err)
		}

		outPath := filepath.Join(outDir, fmt.Sprintf("page_%d.png", i+1))
		if err := writePNG(outPath, img); err != nil {
			return nil, err
		}

		bounds := img.Bounds()
		results = append(results, PageImage{
			PageNumber: i + 1,
			Path:       outPath,
			Width:      bounds.Dx(),
			Height:     bounds.Dy(),
		})
	}
	return results, nil
}

func writePNG(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
