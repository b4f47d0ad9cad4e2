package forms

import (
	"fmt"
	"os"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// CatalogReader extracts the form field catalog of a PDF document.
type CatalogReader struct {
	debugMode bool
}

// NewCatalogReader creates a catalog reader. debugMode enables diagnostic
// output on stderr.
func NewCatalogReader(debugMode bool) *CatalogReader {
	return &CatalogReader{debugMode: debugMode}
}

// ReadFile extracts all form fields from a PDF file in AcroForm order.
// A document without an AcroForm yields an empty catalog, not an error.
func (cr *CatalogReader) ReadFile(filePath string) ([]FieldInfo, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF file: %w", err)
	}
	defer file.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(file, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF context: %w", err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("failed to ensure page count: %w", err)
	}

	return cr.readFromContext(ctx)
}

func (cr *CatalogReader) readFromContext(ctx *model.Context) ([]FieldInfo, error) {
	fieldsArray, err := acroFormFields(ctx)
	if err != nil {
		return nil, err
	}
	if fieldsArray == nil {
		if cr.debugMode {
			fmt.Fprintln(os.Stderr, "no AcroForm fields in document")
		}
		return nil, nil
	}

	// Stable page lookup built once from each page's /Annots array: widget
	// object number -> 1-based page number. Replaces matching a field's /P
	// reference by object identity.
	pageIndex, err := buildAnnotationPageIndex(ctx)
	if err != nil {
		return nil, err
	}

	var infos []FieldInfo
	for i, fieldRef := range fieldsArray {
		cr.collectFields(ctx, fieldRef, "", pageIndex, i, &infos)
	}
	return infos, nil
}

// collectFields walks one node of the field tree. A non-terminal node, one
// whose kids carry their own /T, contributes no entry itself; its terminal
// descendants are reported with dot-qualified IDs the way viewers address
// them. Radio groups stay terminal: their kids are option widgets even when
// named.
func (cr *CatalogReader) collectFields(ctx *model.Context, fieldObj types.Object, prefix string, pageIndex map[int]int, index int, infos *[]FieldInfo) {
	fieldDict, err := ctx.DereferenceDict(fieldObj)
	if err != nil || fieldDict == nil {
		if cr.debugMode {
			fmt.Fprintf(os.Stderr, "skipping field %d: %v\n", index, err)
		}
		return
	}

	if kids := namedKids(ctx, fieldDict); kids != nil && cr.discriminateType(ctx, fieldDict) != FieldTypeRadioGroup {
		childPrefix := qualifyName(prefix, partialName(ctx, fieldDict))
		for j, kid := range kids {
			cr.collectFields(ctx, kid, childPrefix, pageIndex, j, infos)
		}
		return
	}

	if info := cr.readField(ctx, fieldObj, fieldDict, prefix, pageIndex, index); info != nil {
		*infos = append(*infos, *info)
	}
}

// acroFormFields returns the dereferenced AcroForm /Fields array, or nil if
// the document has no interactive form.
func acroFormFields(ctx *model.Context) (types.Array, error) {
	rootDict, err := ctx.Catalog()
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog: %w", err)
	}

	acroFormObj, found := rootDict.Find("AcroForm")
	if !found {
		return nil, nil
	}
	acroFormDict, err := ctx.DereferenceDict(acroFormObj)
	if err != nil {
		return nil, fmt.Errorf("failed to dereference AcroForm: %w", err)
	}
	if acroFormDict == nil {
		return nil, nil
	}

	fieldsObj, found := acroFormDict.Find("Fields")
	if !found {
		return nil, nil
	}
	fieldsArray, err := ctx.DereferenceArray(fieldsObj)
	if err != nil {
		return nil, fmt.Errorf("failed to dereference Fields array: %w", err)
	}
	return fieldsArray, nil
}

// buildAnnotationPageIndex maps widget annotation object numbers to their
// 1-based page numbers.
func buildAnnotationPageIndex(ctx *model.Context) (map[int]int, error) {
	index := make(map[int]int)

	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		pageDict, _, _, err := ctx.PageDict(pageNr, false)
		if err != nil {
			return nil, fmt.Errorf("failed to read page %d: %w", pageNr, err)
		}
		annotsObj, found := pageDict.Find("Annots")
		if !found {
			continue
		}
		annots, err := ctx.DereferenceArray(annotsObj)
		if err != nil {
			continue
		}
		for _, annot := range annots {
			if indRef, ok := annot.(types.IndirectRef); ok {
				index[indRef.ObjectNumber.Value()] = pageNr
			}
		}
	}
	return index, nil
}

func (cr *CatalogReader) readField(ctx *model.Context, fieldObj types.Object, fieldDict types.Dict, prefix string, pageIndex map[int]int, index int) *FieldInfo {
	info := &FieldInfo{Page: 1}

	info.FieldID = qualifyName(prefix, partialName(ctx, fieldDict))
	if info.FieldID == "" {
		info.FieldID = fmt.Sprintf("field_%d", index)
	}

	if rectObj, found := fieldDict.Find("Rect"); found {
		if rect := cr.parseRect(ctx, rectObj); rect != nil {
			info.Rect = *rect
		}
	}

	info.Page = resolvePage(fieldObj, fieldDict, ctx, pageIndex)
	info.Type = cr.discriminateType(ctx, fieldDict)

	switch info.Type {
	case FieldTypeCheckbox:
		info.CheckedValue, info.UncheckedValue = cr.checkboxValues(ctx, fieldDict)
	case FieldTypeRadioGroup:
		info.RadioOptions = cr.radioOptions(ctx, fieldDict)
	case FieldTypeChoice:
		info.ChoiceOptions = cr.choiceOptions(ctx, fieldDict)
	}

	if cr.debugMode {
		fmt.Fprintf(os.Stderr, "extracted field %q (type %s, page %d)\n", info.FieldID, info.Type, info.Page)
	}
	return info
}

// partialName reads a field dict's own /T, empty when absent.
func partialName(ctx *model.Context, fieldDict types.Dict) string {
	nameObj, found := fieldDict.Find("T")
	if !found {
		return ""
	}
	name, err := ctx.DereferenceStringOrHexLiteral(nameObj, model.V10, nil)
	if err != nil {
		return ""
	}
	return name
}

// qualifyName joins a parent prefix and a partial name with the AcroForm
// dot convention.
func qualifyName(prefix, name string) string {
	if prefix == "" {
		return name
	}
	if name == "" {
		return prefix
	}
	return prefix + "." + name
}

// namedKids returns a node's /Kids when at least one kid carries its own
// /T, which marks the node as a non-terminal field. Terminal fields whose
// kids are plain widget annotations yield nil.
func namedKids(ctx *model.Context, fieldDict types.Dict) types.Array {
	kidsObj, found := fieldDict.Find("Kids")
	if !found {
		return nil
	}
	kids, err := ctx.DereferenceArray(kidsObj)
	if err != nil {
		return nil
	}
	for _, kid := range kids {
		kidDict, err := ctx.DereferenceDict(kid)
		if err != nil || kidDict == nil {
			continue
		}
		if partialName(ctx, kidDict) != "" {
			return kids
		}
	}
	return nil
}

// resolvePage finds the field's 1-based page via the annotation index,
// checking the field's own reference first, then its kid widgets.
func resolvePage(fieldObj types.Object, fieldDict types.Dict, ctx *model.Context, pageIndex map[int]int) int {
	if indRef, ok := fieldObj.(types.IndirectRef); ok {
		if page, ok := pageIndex[indRef.ObjectNumber.Value()]; ok {
			return page
		}
	}
	if kidsObj, found := fieldDict.Find("Kids"); found {
		if kids, err := ctx.DereferenceArray(kidsObj); err == nil {
			for _, kid := range kids {
				if indRef, ok := kid.(types.IndirectRef); ok {
					if page, ok := pageIndex[indRef.ObjectNumber.Value()]; ok {
						return page
					}
				}
			}
		}
	}
	return 1
}

// discriminateType decides the closed field type variant once, from /FT and
// the radio flag, inheriting /FT from parents when absent. Anything the
// tools cannot fill (pushbuttons, signatures, missing /FT) is reported as
// text, matching the catalog's lowest-common-denominator behavior.
func (cr *CatalogReader) discriminateType(ctx *model.Context, fieldDict types.Dict) FieldType {
	ftName, ok := fieldTypeName(ctx, fieldDict)
	if !ok {
		return FieldTypeText
	}

	switch ftName {
	case "Btn":
		if flagsObj, found := fieldDict.Find("Ff"); found {
			if flags, err := ctx.DereferenceInteger(flagsObj); err == nil && flags != nil {
				if int(*flags)&(1<<15) != 0 { // bit 16: radio
					return FieldTypeRadioGroup
				}
			}
		}
		return FieldTypeCheckbox
	case "Ch":
		return FieldTypeChoice
	default:
		return FieldTypeText
	}
}

func fieldTypeName(ctx *model.Context, fieldDict types.Dict) (string, bool) {
	ftObj, found := fieldDict.Find("FT")
	if !found {
		if parentObj, found := fieldDict.Find("Parent"); found {
			if parentDict, err := ctx.DereferenceDict(parentObj); err == nil && parentDict != nil {
				return fieldTypeName(ctx, parentDict)
			}
		}
		return "", false
	}
	ftName, err := ctx.DereferenceName(ftObj, model.V10, nil)
	if err != nil {
		return "", false
	}
	return string(ftName), true
}

func (cr *CatalogReader) parseRect(ctx *model.Context, rectObj types.Object) *RawRect {
	rectArray, err := ctx.DereferenceArray(rectObj)
	if err != nil || len(rectArray) != 4 {
		return nil
	}
	var rect RawRect
	for i, coord := range rectArray {
		if f, err := ctx.DereferenceNumber(coord); err == nil {
			rect[i] = f
		}
	}
	return &rect
}

// checkboxValues reads the on/off appearance state names of a checkbox. The
// on state is whichever /AP /N key is not "Off"; defaults are /Yes and /Off.
func (cr *CatalogReader) checkboxValues(ctx *model.Context, fieldDict types.Dict) (checked, unchecked string) {
	checked, unchecked = "/Yes", "/Off"
	for _, state := range appearanceStates(ctx, fieldDict) {
		if state != "Off" {
			checked = "/" + state
			break
		}
	}
	return checked, unchecked
}

func (cr *CatalogReader) radioOptions(ctx *model.Context, fieldDict types.Dict) []RadioOption {
	kidsObj, found := fieldDict.Find("Kids")
	if !found {
		return nil
	}
	kids, err := ctx.DereferenceArray(kidsObj)
	if err != nil {
		return nil
	}

	var options []RadioOption
	for _, kid := range kids {
		kidDict, err := ctx.DereferenceDict(kid)
		if err != nil || kidDict == nil {
			continue
		}
		var rect *RawRect
		if rectObj, found := kidDict.Find("Rect"); found {
			rect = cr.parseRect(ctx, rectObj)
		}
		for _, state := range appearanceStates(ctx, kidDict) {
			if state != "Off" {
				options = append(options, RadioOption{Value: "/" + state, Rect: rect})
			}
		}
	}
	return options
}

func (cr *CatalogReader) choiceOptions(ctx *model.Context, fieldDict types.Dict) []ChoiceOption {
	optObj, found := fieldDict.Find("Opt")
	if !found {
		return nil
	}
	optArray, err := ctx.DereferenceArray(optObj)
	if err != nil {
		return nil
	}

	var options []ChoiceOption
	for _, opt := range optArray {
		// Each option is a string or an [export, display] pair.
		if str, err := ctx.DereferenceStringOrHexLiteral(opt, model.V10, nil); err == nil {
			options = append(options, ChoiceOption{Value: str, Text: str})
			continue
		}
		if pair, err := ctx.DereferenceArray(opt); err == nil && len(pair) >= 1 {
			export, _ := ctx.DereferenceStringOrHexLiteral(pair[0], model.V10, nil)
			display := export
			if len(pair) > 1 {
				if s, err := ctx.DereferenceStringOrHexLiteral(pair[1], model.V10, nil); err == nil {
					display = s
				}
			}
			options = append(options, ChoiceOption{Value: export, Text: display})
		}
	}
	return options
}

// appearanceStates lists the /AP /N appearance state names of a widget.
func appearanceStates(ctx *model.Context, dict types.Dict) []string {
	apObj, found := dict.Find("AP")
	if !found {
		return nil
	}
	apDict, err := ctx.DereferenceDict(apObj)
	if err != nil || apDict == nil {
		return nil
	}
	nObj, found := apDict.Find("N")
	if !found {
		return nil
	}
	nDict, err := ctx.DereferenceDict(nObj)
	if err != nil || nDict == nil {
		return nil
	}
	states := make([]string, 0, len(nDict))
	for name := range nDict {
		states = append(states, name)
	}
	sort.Strings(states)
	return states
}
