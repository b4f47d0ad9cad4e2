// Package pageops wraps pdfcpu's document-level operations: merging,
// splitting and ordered page extraction.
package pageops

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func configuration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// PageCount returns the number of pages in a PDF file.
func PageCount(path string) (int, error) {
	count, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to count pages of %s: %w", path, err)
	}
	return count, nil
}

// PageDim holds one page's dimensions in points.
type PageDim struct {
	Width  float64
	Height float64
}

// PageDims returns per-page dimensions in points, in page order.
func PageDims(path string) ([]PageDim, error) {
	dims, err := api.PageDimsFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read page dimensions of %s: %w", path, err)
	}
	result := make([]PageDim, len(dims))
	for i, d := range dims {
		result[i] = PageDim{Width: d.Width, Height: d.Height}
	}
	return result, nil
}

// Merge concatenates the input PDFs into a single output file, pages in
// input order.
func Merge(inputs []string, output string) error {
	if len(inputs) < 2 {
		return fmt.Errorf("merge requires at least 2 input files, got %d", len(inputs))
	}
	for _, in := range inputs {
		if _, err := os.Stat(in); err != nil {
			return fmt.Errorf("cannot access input file: %w", err)
		}
	}
	if err := api.MergeCreateFile(inputs, output, false, configuration()); err != nil {
		return fmt.Errorf("failed to merge PDFs: %w", err)
	}
	return nil
}

// SplitAll writes one single-page PDF per page of the input into outDir,
// named by pdfcpu's span convention.
func SplitAll(input, outDir string) error {
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return fmt.Errorf("cannot create output directory %s: %w", outDir, err)
	}
	if err := api.SplitFile(input, outDir, 1, configuration()); err != nil {
		return fmt.Errorf("failed to split %s: %w", input, err)
	}
	return nil
}

// ExtractPages writes the pages selected by a 1-based range expression into
// a single output PDF, preserving token order and duplicates. Returns the
// number of pages written and the parser's lenient-policy warnings.
func ExtractPages(input, output, rangeExpr string) (int, []string, error) {
	total, err := PageCount(input)
	if err != nil {
		return 0, nil, err
	}

	indices, warnings, err := ParseRange(rangeExpr, total)
	if err != nil {
		return 0, nil, err
	}
	if len(indices) == 0 {
		return 0, warnings, fmt.Errorf("page range %q selects no pages", rangeExpr)
	}

	// pdfcpu collect keeps the requested order, duplicates included.
	selected := make([]string, len(indices))
	for i, idx := range indices {
		selected[i] = strconv.Itoa(idx + 1)
	}
	if err := api.CollectFile(input, output, selected, configuration()); err != nil {
		return 0, warnings, fmt.Errorf("failed to extract pages from %s: %w", input, err)
	}
	return len(selected), warnings, nil
}
