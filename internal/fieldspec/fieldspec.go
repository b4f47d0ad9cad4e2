// Package fieldspec models the field description document consumed by the
// overlay filler, the bounding-box validator and the validation-image tool.
package fieldspec

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/formweld/pdf-form-tools/internal/geometry"
)

const (
	// DefaultFontSize is applied when entry_text omits font_size.
	DefaultFontSize = 12.0
	// DefaultFontColor is applied when entry_text omits font_color.
	DefaultFontColor = "000000"
	// DefaultMinEntryHeight is the minimum entry-box height, in the pixel
	// units of the authoring image, below which text will not fit.
	DefaultMinEntryHeight = 15.0
)

// EntryText is the text to draw into a field's entry box.
type EntryText struct {
	Text      string  `json:"text"`
	FontSize  float64 `json:"font_size,omitempty"`
	FontColor string  `json:"font_color,omitempty"`
}

// Field is one logical form entry on one page. The bounding boxes are in
// image-pixel space (top-left origin).
type Field struct {
	PageNumber  int            `json:"page_number,omitempty"`
	Description string         `json:"description,omitempty"`
	LabelBox    *geometry.Rect `json:"label_bounding_box,omitempty"`
	EntryBox    *geometry.Rect `json:"entry_bounding_box,omitempty"`
	EntryText   *EntryText     `json:"entry_text,omitempty"`
}

// PageDescriptor records the pixel dimensions of the rasterized reference
// image a page's rectangles were authored against.
type PageDescriptor struct {
	PageNumber  int     `json:"page_number"`
	ImageWidth  float64 `json:"image_width"`
	ImageHeight float64 `json:"image_height"`
}

// Document is a parsed field description document.
type Document struct {
	FormFields []Field          `json:"form_fields"`
	Pages      []PageDescriptor `json:"pages,omitempty"`
}

// Load reads and decodes a field description document, applying the
// documented defaults: page_number 1, font_size 12, font_color "000000".
func Load(path string) (*Document, error) {
	return LoadWithDefaults(path, DefaultFontSize, DefaultFontColor)
}

// LoadWithDefaults is Load with configurable font fallbacks for fields that
// omit font_size or font_color. Non-positive size and empty color select the
// package defaults.
func LoadWithDefaults(path string, fontSize float64, fontColor string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read field description document: %w", err)
	}
	return ParseWithDefaults(data, fontSize, fontColor)
}

// Parse decodes a field description document from raw JSON.
func Parse(data []byte) (*Document, error) {
	return ParseWithDefaults(data, DefaultFontSize, DefaultFontColor)
}

// ParseWithDefaults is Parse with configurable font fallbacks.
func ParseWithDefaults(data []byte, fontSize float64, fontColor string) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("malformed field description document: %w", err)
	}
	doc.applyDefaults(fontSize, fontColor)
	return &doc, nil
}

func (d *Document) applyDefaults(fontSize float64, fontColor string) {
	if fontSize <= 0 {
		fontSize = DefaultFontSize
	}
	if fontColor == "" {
		fontColor = DefaultFontColor
	}
	for i := range d.FormFields {
		f := &d.FormFields[i]
		if f.PageNumber == 0 {
			f.PageNumber = 1
		}
		if f.Description == "" {
			f.Description = fmt.Sprintf("Field %d", i)
		}
		if f.EntryText != nil {
			if f.EntryText.FontSize == 0 {
				f.EntryText.FontSize = fontSize
			}
			if f.EntryText.FontColor == "" {
				f.EntryText.FontColor = fontColor
			}
		}
	}
}

// FieldsForPage returns the fields placed on a 1-based page, in document
// order.
func (d *Document) FieldsForPage(pageNum int) []Field {
	var fields []Field
	for _, f := range d.FormFields {
		if f.PageNumber == pageNum {
			fields = append(fields, f)
		}
	}
	return fields
}

// PageSpace resolves the coordinate mapping for a 1-based page given the
// real page dimensions in points. Pages without a descriptor fall back to
// identity scaling.
func (d *Document) PageSpace(pageNum int, pageWidth, pageHeight float64) geometry.PageSpace {
	for _, p := range d.Pages {
		if p.PageNumber == pageNum {
			return geometry.NewPageSpace(pageWidth, pageHeight, p.ImageWidth, p.ImageHeight)
		}
	}
	return geometry.NewPageSpace(pageWidth, pageHeight, 0, 0)
}

// Validate checks every field's geometry and returns human-readable
// violation messages in field order: label/entry intersections first for a
// field, then the minimum-height check. An empty result means the document
// is valid. minHeight <= 0 selects DefaultMinEntryHeight.
func (d *Document) Validate(minHeight float64) []string {
	if minHeight <= 0 {
		minHeight = DefaultMinEntryHeight
	}

	var violations []string
	for _, f := range d.FormFields {
		if geometry.Intersects(f.LabelBox, f.EntryBox) {
			violations = append(violations,
				fmt.Sprintf("Page %d: Label and entry boxes intersect for %q", f.PageNumber, f.Description))
		}
		if f.EntryBox != nil {
			if h := f.EntryBox.Height(); h < minHeight {
				violations = append(violations,
					fmt.Sprintf("Page %d: Entry box too short (%gpx < %gpx) for %q",
						f.PageNumber, h, minHeight, f.Description))
			}
		}
	}
	return violations
}
