// Package service orchestrates the form-tool components behind a single
// request/response facade shared by the CLI tools and the MCP server.
package service

import (
	"fmt"
	"path/filepath"

	"github.com/formweld/pdf-form-tools/internal/config"
	"github.com/formweld/pdf-form-tools/internal/fieldspec"
	"github.com/formweld/pdf-form-tools/internal/forms"
	"github.com/formweld/pdf-form-tools/internal/overlay"
	"github.com/formweld/pdf-form-tools/internal/pageops"
	"github.com/formweld/pdf-form-tools/internal/render"
)

// Service handles PDF form operations by orchestrating the underlying components
type Service struct {
	cfg       *config.Config
	validator *Validator
	catalog   *forms.CatalogReader
	filler    *forms.Filler
}

// NewService creates a service wired to the given configuration
func NewService(cfg *config.Config) *Service {
	return &Service{
		cfg:       cfg,
		validator: NewValidator(cfg.MaxFileSize),
		catalog:   forms.NewCatalogReader(cfg.IsDebug()),
		filler:    forms.NewFiller(cfg.IsDebug()),
	}
}

// resolvePath anchors a relative path at the configured working directory.
// Absolute paths pass through untouched.
func (s *Service) resolvePath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.cfg.WorkDirectory, path)
}

// FieldCatalog enumerates the AcroForm fields of a PDF
func (s *Service) FieldCatalog(req FieldCatalogRequest) (*FieldCatalogResult, error) {
	path := s.resolvePath(req.Path)
	if err := s.validator.ValidatePDF(path); err != nil {
		return nil, err
	}

	fields, err := s.catalog.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return &FieldCatalogResult{
		Path:       path,
		Fillable:   len(fields) > 0,
		FieldCount: len(fields),
		Fields:     fields,
	}, nil
}

// FillFields sets AcroForm field values and writes a new PDF
func (s *Service) FillFields(req FillFieldsRequest) (*FillFieldsResult, error) {
	path := s.resolvePath(req.Path)
	outputPath := s.resolvePath(req.OutputPath)
	if err := s.validator.ValidatePDF(path); err != nil {
		return nil, err
	}

	values := req.Values
	if len(values) == 0 && req.ValuesPath != "" {
		loaded, err := forms.LoadValues(s.resolvePath(req.ValuesPath))
		if err != nil {
			return nil, err
		}
		values = loaded
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no field values provided")
	}

	if err := s.filler.FillFile(path, outputPath, values); err != nil {
		return nil, err
	}

	return &FillFieldsResult{
		OutputPath: outputPath,
		FieldsSet:  len(values),
	}, nil
}

// ValidateBoxes checks a field spec's bounding boxes for overlap and size
// problems without touching any PDF
func (s *Service) ValidateBoxes(req ValidateBoxesRequest) (*ValidateBoxesResult, error) {
	specPath := s.resolvePath(req.SpecPath)
	doc, err := fieldspec.Load(specPath)
	if err != nil {
		return nil, err
	}

	minHeight := req.MinEntryHeight
	if minHeight <= 0 {
		minHeight = s.cfg.MinEntryHeight
	}

	violations := doc.Validate(minHeight)
	return &ValidateBoxesResult{
		SpecPath:   specPath,
		Valid:      len(violations) == 0,
		FieldCount: len(doc.FormFields),
		Violations: violations,
	}, nil
}

// FillOverlay stamps entry text onto a PDF that has no fillable fields. The
// configured font size and color act as the fallback for fields that omit
// them.
func (s *Service) FillOverlay(req FillOverlayRequest) (*FillOverlayResult, error) {
	path := s.resolvePath(req.Path)
	outputPath := s.resolvePath(req.OutputPath)
	if err := s.validator.ValidatePDF(path); err != nil {
		return nil, err
	}

	doc, err := fieldspec.LoadWithDefaults(s.resolvePath(req.SpecPath), s.cfg.FontSize, s.cfg.FontColor)
	if err != nil {
		return nil, err
	}

	drawn, err := overlay.FillText(path, outputPath, doc)
	if err != nil {
		return nil, err
	}

	return &FillOverlayResult{
		OutputPath:  outputPath,
		FieldsDrawn: drawn,
	}, nil
}

// RenderPages rasterizes every page of a PDF into PNG images
func (s *Service) RenderPages(req RenderPagesRequest) (*RenderPagesResult, error) {
	path := s.resolvePath(req.Path)
	outputDir := s.resolvePath(req.OutputDir)
	if err := s.validator.ValidatePDF(path); err != nil {
		return nil, err
	}

	dpi := req.DPI
	if dpi <= 0 {
		dpi = s.cfg.RenderDPI
	}

	images, err := render.Pages(path, outputDir, dpi)
	if err != nil {
		return nil, err
	}

	return &RenderPagesResult{
		OutputDir: outputDir,
		PageCount: len(images),
		Images:    images,
	}, nil
}

// ValidationImage draws a field spec's boxes onto a rendered page image
func (s *Service) ValidationImage(req ValidationImageRequest) (*ValidationImageResult, error) {
	outputPath := s.resolvePath(req.OutputPath)
	doc, err := fieldspec.Load(s.resolvePath(req.SpecPath))
	if err != nil {
		return nil, err
	}

	pageNum := req.PageNumber
	if pageNum <= 0 {
		pageNum = 1
	}

	counts, err := overlay.DrawBoxesFile(s.resolvePath(req.ImagePath), outputPath, doc, pageNum, req.StrokeWidth, req.WithLabels)
	if err != nil {
		return nil, err
	}

	return &ValidationImageResult{
		OutputPath: outputPath,
		Entries:    counts.Entries,
		Labels:     counts.Labels,
	}, nil
}

// Merge concatenates input PDFs into a single document
func (s *Service) Merge(req MergeRequest) (*MergeResult, error) {
	inputs := make([]string, len(req.Inputs))
	for i, in := range req.Inputs {
		inputs[i] = s.resolvePath(in)
		if err := s.validator.ValidatePDF(inputs[i]); err != nil {
			return nil, err
		}
	}
	outputPath := s.resolvePath(req.OutputPath)

	if err := pageops.Merge(inputs, outputPath); err != nil {
		return nil, err
	}

	pageCount, err := pageops.PageCount(outputPath)
	if err != nil {
		return nil, err
	}

	return &MergeResult{
		OutputPath: outputPath,
		InputCount: len(req.Inputs),
		PageCount:  pageCount,
	}, nil
}

// ExtractPages copies a page-range selection into a new PDF, preserving
// order and duplicates
func (s *Service) ExtractPages(req ExtractPagesRequest) (*ExtractPagesResult, error) {
	path := s.resolvePath(req.Path)
	outputPath := s.resolvePath(req.OutputPath)
	if err := s.validator.ValidatePDF(path); err != nil {
		return nil, err
	}

	selected, warnings, err := pageops.ExtractPages(path, outputPath, req.Range)
	if err != nil {
		return nil, err
	}

	return &ExtractPagesResult{
		OutputPath:    outputPath,
		PagesSelected: selected,
		Warnings:      warnings,
	}, nil
}

// Split writes each page of a PDF to its own single-page file
func (s *Service) Split(req SplitRequest) (*SplitResult, error) {
	path := s.resolvePath(req.Path)
	outputDir := s.resolvePath(req.OutputDir)
	if err := s.validator.ValidatePDF(path); err != nil {
		return nil, err
	}

	pageCount, err := pageops.PageCount(path)
	if err != nil {
		return nil, err
	}

	if err := pageops.SplitAll(path, outputDir); err != nil {
		return nil, err
	}

	return &SplitResult{
		OutputDir: outputDir,
		PageCount: pageCount,
	}, nil
}

// PageInfo returns page count and per-page dimensions in PDF points
func (s *Service) PageInfo(req PageInfoRequest) (*PageInfoResult, error) {
	path := s.resolvePath(req.Path)
	if err := s.validator.ValidatePDF(path); err != nil {
		return nil, err
	}

	dims, err := pageops.PageDims(path)
	if err != nil {
		return nil, err
	}

	pages := make([]PageDimension, len(dims))
	for i, d := range dims {
		pages[i] = PageDimension{
			PageNumber: i + 1,
			Width:      d.Width,
			Height:     d.Height,
		}
	}

	return &PageInfoResult{
		Path:      path,
		PageCount: len(pages),
		Pages:     pages,
	}, nil
}

// IsValidPDF performs a quick validation check on a file
func (s *Service) IsValidPDF(filePath string) bool {
	return s.validator.IsValidPDF(s.resolvePath(filePath))
}

// Config exposes the active configuration
func (s *Service) Config() *config.Config {
	return s.cfg
}
