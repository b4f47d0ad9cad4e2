package forms

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// UnknownFieldsError reports field IDs from the value document that do not
// exist in the target PDF, alongside the full set of valid IDs.
type UnknownFieldsError struct {
	Invalid []string
	Valid   []string
}

func (e *UnknownFieldsError) Error() string {
	var b strings.Builder
	b.WriteString("the following field IDs are not valid:\n")
	for _, id := range e.Invalid {
		fmt.Fprintf(&b, "  - %s\n", id)
	}
	b.WriteString("valid field IDs are:\n")
	for _, id := range e.Valid {
		fmt.Fprintf(&b, "  - %s\n", id)
	}
	return b.String()
}

// LoadValues reads a field-value document: a JSON list of
// {"field_id": ..., "value": ...} pairs.
func LoadValues(path string) ([]FieldValue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read field-value document: %w", err)
	}
	var values []FieldValue
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("malformed field-value document: %w", err)
	}
	return values, nil
}

// Filler fills AcroForm fields in place and writes a new document.
type Filler struct {
	debugMode bool
}

// NewFiller creates a form filler.
func NewFiller(debugMode bool) *Filler {
	return &Filler{debugMode: debugMode}
}

// FillFile sets the given field values in inPath's AcroForm and writes the
// result to outPath. Every field ID is validated against the document's
// catalog before anything is modified; a single unknown ID fails the whole
// operation with an UnknownFieldsError and no output file is produced.
func (f *Filler) FillFile(inPath, outPath string, values []FieldValue) error {
	file, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("failed to open PDF file: %w", err)
	}
	defer file.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(file, conf)
	if err != nil {
		return fmt.Errorf("failed to read PDF context: %w", err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return fmt.Errorf("failed to ensure page count: %w", err)
	}

	fieldsArray, err := acroFormFields(ctx)
	if err != nil {
		return err
	}
	if fieldsArray == nil {
		return fmt.Errorf("no fillable form fields found in %s", inPath)
	}

	targets, err := f.indexFields(ctx, fieldsArray)
	if err != nil {
		return err
	}

	if err := validateFieldIDs(values, targets); err != nil {
		return err
	}

	for _, fv := range values {
		target := targets[fv.FieldID]
		f.setValue(ctx, target, fv.Value)
		if f.debugMode {
			fmt.Fprintf(os.Stderr, "set %q = %q\n", fv.FieldID, fv.Value)
		}
	}

	// Ask viewers to regenerate field appearances for the new values.
	if err := setNeedAppearances(ctx); err != nil {
		return err
	}

	if err := api.WriteContextFile(ctx, outPath); err != nil {
		return fmt.Errorf("failed to write filled PDF: %w", err)
	}
	return nil
}

type fillTarget struct {
	dict      types.Dict
	fieldType FieldType
}

// indexFields maps qualified field names to their terminal dictionaries and
// discriminated types, walking through non-terminal nodes the same way the
// catalog does.
func (f *Filler) indexFields(ctx *model.Context, fieldsArray types.Array) (map[string]fillTarget, error) {
	cr := NewCatalogReader(false)
	targets := make(map[string]fillTarget)

	var walk func(fieldObj types.Object, prefix string)
	walk = func(fieldObj types.Object, prefix string) {
		fieldDict, err := ctx.DereferenceDict(fieldObj)
		if err != nil || fieldDict == nil {
			return
		}
		fieldType := cr.discriminateType(ctx, fieldDict)
		if kids := namedKids(ctx, fieldDict); kids != nil && fieldType != FieldTypeRadioGroup {
			childPrefix := qualifyName(prefix, partialName(ctx, fieldDict))
			for _, kid := range kids {
				walk(kid, childPrefix)
			}
			return
		}
		name := qualifyName(prefix, partialName(ctx, fieldDict))
		if name == "" {
			return
		}
		targets[name] = fillTarget{dict: fieldDict, fieldType: fieldType}
	}

	for _, fieldRef := range fieldsArray {
		walk(fieldRef, "")
	}
	return targets, nil
}

func validateFieldIDs(values []FieldValue, targets map[string]fillTarget) error {
	var invalid []string
	for _, fv := range values {
		if _, ok := targets[fv.FieldID]; !ok {
			invalid = append(invalid, fv.FieldID)
		}
	}
	if len(invalid) == 0 {
		return nil
	}

	valid := make([]string, 0, len(targets))
	for name := range targets {
		valid = append(valid, name)
	}
	sort.Strings(valid)
	return &UnknownFieldsError{Invalid: invalid, Valid: valid}
}

// setValue writes /V (and /AS for button states) according to the field's
// discriminated type. Button values keep the original document convention
// of name tokens like "/Yes" and "/Off".
func (f *Filler) setValue(ctx *model.Context, target fillTarget, value string) {
	switch target.fieldType {
	case FieldTypeCheckbox, FieldTypeRadioGroup:
		state := types.Name(strings.TrimPrefix(value, "/"))
		target.dict.Update("V", state)
		target.dict.Update("AS", state)
		// Widgets of a radio group carry their own /AS; switch the matching
		// kid on and the rest off.
		if kidsObj, found := target.dict.Find("Kids"); found {
			if kids, err := ctx.DereferenceArray(kidsObj); err == nil {
				for _, kid := range kids {
					kidDict, err := ctx.DereferenceDict(kid)
					if err != nil || kidDict == nil {
						continue
					}
					if hasAppearanceState(ctx, kidDict, string(state)) {
						kidDict.Update("AS", state)
					} else {
						kidDict.Update("AS", types.Name("Off"))
					}
				}
			}
		}
	default:
		target.dict.Update("V", types.StringLiteral(value))
	}
}

func hasAppearanceState(ctx *model.Context, dict types.Dict, state string) bool {
	for _, s := range appearanceStates(ctx, dict) {
		if s == state {
			return true
		}
	}
	return false
}

func setNeedAppearances(ctx *model.Context) error {
	rootDict, err := ctx.Catalog()
	if err != nil {
		return fmt.Errorf("failed to get catalog: %w", err)
	}
	acroFormObj, found := rootDict.Find("AcroForm")
	if !found {
		return nil
	}
	acroFormDict, err := ctx.DereferenceDict(acroFormObj)
	if err != nil || acroFormDict == nil {
		return nil
	}
	acroFormDict.Update("NeedAppearances", types.Boolean(true))
	return nil
}
