package descriptions

// Comprehensive tool descriptions with practical examples and use cases

const (
	// Form inspection tools
	PDFFieldCatalogDescription = `List the fillable AcroForm fields of a PDF with their pages, rectangles and types.

**When to use:** Before filling a form, to learn the exact field IDs and which values checkbox and radio fields accept.

**Why it's useful:** Field IDs are the keys the fill tools require; guessing them fails validation. The catalog also tells you whether the PDF is fillable at all.

**Examples:**
• Discover a tax form's fields: "List the fields of w9.pdf so I can prepare a values file"
• Route a document: "Check whether application.pdf is fillable before choosing a workflow"

**Common workflows:**
1. Fillable path: pdf_field_catalog → build values JSON → pdf_fill_fields
2. Flat path: pdf_field_catalog reports no fields → pdf_render_pages → author boxes → pdf_fill_overlay

**Best practices:** Checkbox values must match the reported checked value exactly (e.g. "/Yes"); radio groups list their selectable option values.`

	PDFFillFieldsDescription = `Fill AcroForm fields from a JSON values file and write a new PDF.

**When to use:** The PDF has real fillable fields (confirm with pdf_field_catalog) and you have values for them.

**Why it's useful:** Writes native field values, so the output stays editable in PDF viewers and text reflows correctly.

**Examples:**
• Fill a vendor form: "Fill order-form.pdf with the values in order.json and save order-filled.pdf"

**Common workflows:**
1. pdf_field_catalog → prepare {field_id, value} list → pdf_fill_fields

**Best practices:** Every field ID is validated before anything is written; an unknown ID aborts the operation and the error lists the valid IDs.`

	PDFValidateBoxesDescription = `Check a field description document for overlapping or undersized bounding boxes.

**When to use:** After authoring label/entry boxes against a rendered page image, before stamping text with pdf_fill_overlay.

**Why it's useful:** Catches label boxes that collide with entry boxes and entry boxes too short to hold a line of text, before they ruin the output PDF.

**Common workflows:**
1. pdf_render_pages → author boxes on the image → pdf_validate_boxes → pdf_validation_image → pdf_fill_overlay

**Best practices:** Boxes are [left, top, right, bottom] in image pixels with a top-left origin; fix every reported violation before filling.`

	PDFFillOverlayDescription = `Stamp entry text onto a non-fillable PDF using a field description document.

**When to use:** pdf_field_catalog reports no fillable fields but the form still needs to be completed.

**Why it's useful:** Draws each field's text at its entry box position, reconciling image-pixel coordinates to PDF points automatically.

**Common workflows:**
1. pdf_render_pages → author boxes → pdf_validate_boxes → pdf_fill_overlay

**Best practices:** Include page image dimensions in the document's pages list so coordinates scale correctly; a field with a bad font color falls back to black rather than failing the run.`

	PDFRenderPagesDescription = `Rasterize every page of a PDF to PNG images.

**When to use:** To author bounding boxes against pixel coordinates, or to visually inspect a document.

**Why it's useful:** The rendered images define the pixel space all bounding boxes live in; record their dimensions in the field description document.

**Best practices:** Use the same DPI for authoring and for validation images so coordinates line up.`

	PDFValidationImageDescription = `Draw a field description's bounding boxes onto a rendered page image.

**When to use:** To eyeball box placement before stamping text onto the real PDF.

**Why it's useful:** Entry boxes appear in red and label boxes in blue directly on the page image, making misplaced boxes obvious.

**Best practices:** Generate one image per page that has fields; re-run after every box adjustment.`

	// Document assembly tools
	PDFMergeDescription = `Merge two or more PDFs into a single document, pages in input order.

**When to use:** Combining filled forms, attachments or chapters into one deliverable.

**Best practices:** Inputs are validated before merging; the result reports the final page count.`

	PDFExtractPagesDescription = `Copy a page selection like '1-3,5' to a new PDF, preserving order and duplicates.

**When to use:** Pulling an excerpt, reordering pages, or duplicating a page.

**Why it's useful:** The selection is honored literally: '5,1,1' produces page 5 followed by page 1 twice. Spans past the last page are clamped; out-of-range single pages are dropped with a warning.`

	PDFSplitDescription = `Split a PDF into single-page files.

**When to use:** Feeding pages to per-page processing, or archiving pages individually.`

	PDFPageInfoDescription = `Get page count and per-page dimensions of a PDF.

**When to use:** Before rendering or overlay filling, to learn each page's size in PDF points.

**Why it's useful:** Page dimensions anchor the coordinate reconciliation between rendered images and the PDF.`
)
