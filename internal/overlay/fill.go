// Package overlay draws form content on top of existing documents: entry
// text stamped onto PDF pages for non-fillable forms, and bounding-box
// outlines stroked onto rasterized page images for visual validation.
package overlay

import (
	"fmt"
	"io"
	"log"
	"os"

	"codeberg.org/go-pdf/fpdf"
	"codeberg.org/go-pdf/fpdf/contrib/gofpdi"

	"github.com/formweld/pdf-form-tools/internal/fieldspec"
	"github.com/formweld/pdf-form-tools/internal/pageops"
)

// overlayFont is the one font used for stamped entry text, matching the
// original workflow.
const overlayFont = "Helvetica"

// FillText re-renders inPath with each field's entry text drawn at its
// reconciled document-space anchor and writes the result to outPath.
// Returns the number of fields drawn.
//
// A field with an unparseable font color falls back to black and is still
// drawn; one malformed field must not block the rest of the page.
func FillText(inPath, outPath string, doc *fieldspec.Document) (int, error) {
	dims, err := pageops.PageDims(inPath)
	if err != nil {
		return 0, err
	}

	input, err := os.Open(inPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF file: %w", err)
	}
	defer input.Close()

	pdf := fpdf.New("P", "pt", "", "")
	importer := gofpdi.NewImporter()
	rs := io.ReadSeeker(input)

	drawn := 0
	for pageNum := 1; pageNum <= len(dims); pageNum++ {
		pageW, pageH := dims[pageNum-1].Width, dims[pageNum-1].Height

		pdf.AddPageFormat("P", fpdf.SizeType{Wd: pageW, Ht: pageH})
		tpl := importer.ImportPageFromStream(pdf, &rs, pageNum, "/MediaBox")
		importer.UseImportedTemplate(pdf, tpl, 0, 0, pageW, pageH)

		space := doc.PageSpace(pageNum, pageW, pageH)
		for _, field := range doc.FieldsForPage(pageNum) {
			if field.EntryBox == nil || field.EntryText == nil || field.EntryText.Text == "" {
				continue
			}

			r, g, b, err := ParseHexColor(field.EntryText.FontColor)
			if err != nil {
				log.Printf("field %q: %v, using black", field.Description, err)
				r, g, b = 0, 0, 0
			}

			x, y := space.Anchor(*field.EntryBox)

			pdf.SetFont(overlayFont, "", field.EntryText.FontSize)
			pdf.SetTextColor(int(r), int(g), int(b))
			// fpdf's Y axis runs top-down; the anchor is bottom-up.
			pdf.Text(x, pageH-y, field.EntryText.Text)
			drawn++
		}
	}

	if pdf.Err() {
		return 0, fmt.Errorf("failed to compose overlay: %w", pdf.Error())
	}
	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return 0, fmt.Errorf("failed to write filled PDF: %w", err)
	}
	return drawn, nil
}
