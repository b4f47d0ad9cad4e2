package service

import (
	"github.com/formweld/pdf-form-tools/internal/forms"
	"github.com/formweld/pdf-form-tools/internal/render"
)

// Request Types

// FieldCatalogRequest represents a request to enumerate AcroForm fields
type FieldCatalogRequest struct {
	Path string `json:"path"`
}

// FillFieldsRequest represents a request to fill AcroForm fields
type FillFieldsRequest struct {
	Path       string             `json:"path"`
	OutputPath string             `json:"output_path"`
	ValuesPath string             `json:"values_path,omitempty"`
	Values     []forms.FieldValue `json:"values,omitempty"`
}

// ValidateBoxesRequest represents a request to check a field spec's geometry
type ValidateBoxesRequest struct {
	SpecPath       string  `json:"spec_path"`
	MinEntryHeight float64 `json:"min_entry_height,omitempty"`
}

// FillOverlayRequest represents a request to stamp entry text onto a PDF
type FillOverlayRequest struct {
	Path       string `json:"path"`
	OutputPath string `json:"output_path"`
	SpecPath   string `json:"spec_path"`
}

// RenderPagesRequest represents a request to rasterize PDF pages to images
type RenderPagesRequest struct {
	Path      string  `json:"path"`
	OutputDir string  `json:"output_dir"`
	DPI       float64 `json:"dpi,omitempty"`
}

// ValidationImageRequest represents a request to draw field boxes on a page image
type ValidationImageRequest struct {
	ImagePath   string `json:"image_path"`
	OutputPath  string `json:"output_path"`
	SpecPath    string `json:"spec_path"`
	PageNumber  int    `json:"page_number"`
	StrokeWidth int    `json:"stroke_width,omitempty"`
	WithLabels  bool   `json:"with_labels,omitempty"`
}

// MergeRequest represents a request to merge PDFs into one document
type MergeRequest struct {
	Inputs     []string `json:"inputs"`
	OutputPath string   `json:"output_path"`
}

// ExtractPagesRequest represents a request to copy a page selection to a new PDF
type ExtractPagesRequest struct {
	Path       string `json:"path"`
	OutputPath string `json:"output_path"`
	Range      string `json:"range"`
}

// SplitRequest represents a request to split a PDF into single-page files
type SplitRequest struct {
	Path      string `json:"path"`
	OutputDir string `json:"output_dir"`
}

// PageInfoRequest represents a request for page count and dimensions
type PageInfoRequest struct {
	Path string `json:"path"`
}

// Response Types

// FieldCatalogResult represents the result of an AcroForm field enumeration
type FieldCatalogResult struct {
	Path       string            `json:"path"`
	Fillable   bool              `json:"fillable"`
	FieldCount int               `json:"field_count"`
	Fields     []forms.FieldInfo `json:"fields"`
}

// FillFieldsResult represents the result of an AcroForm fill operation
type FillFieldsResult struct {
	OutputPath string `json:"output_path"`
	FieldsSet  int    `json:"fields_set"`
}

// ValidateBoxesResult represents the result of a geometry validation
type ValidateBoxesResult struct {
	SpecPath   string   `json:"spec_path"`
	Valid      bool     `json:"valid"`
	FieldCount int      `json:"field_count"`
	Violations []string `json:"violations,omitempty"`
}

// FillOverlayResult represents the result of an overlay fill operation
type FillOverlayResult struct {
	OutputPath  string `json:"output_path"`
	FieldsDrawn int    `json:"fields_drawn"`
}

// RenderPagesResult represents the result of a rasterization operation
type RenderPagesResult struct {
	OutputDir string             `json:"output_dir"`
	PageCount int                `json:"page_count"`
	Images    []render.PageImage `json:"images"`
}

// ValidationImageResult represents the result of drawing field boxes
type ValidationImageResult struct {
	OutputPath string `json:"output_path"`
	Entries    int    `json:"entries_drawn"`
	Labels     int    `json:"labels_drawn"`
}

// MergeResult represents the result of a merge operation
type MergeResult struct {
	OutputPath string `json:"output_path"`
	InputCount int    `json:"input_count"`
	PageCount  int    `json:"page_count"`
}

// ExtractPagesResult represents the result of a page extraction
type ExtractPagesResult struct {
	OutputPath    string   `json:"output_path"`
	PagesSelected int      `json:"pages_selected"`
	Warnings      []string `json:"warnings,omitempty"`
}

// SplitResult represents the result of a split operation
type SplitResult struct {
	OutputDir string `json:"output_dir"`
	PageCount int    `json:"page_count"`
}

// PageDimension describes one page's size in PDF points
type PageDimension struct {
	PageNumber int     `json:"page_number"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
}

// PageInfoResult represents page count and per-page dimensions
type PageInfoResult struct {
	Path      string          `json:"path"`
	PageCount int             `json:"page_count"`
	Pages     []PageDimension `json:"pages"`
}
