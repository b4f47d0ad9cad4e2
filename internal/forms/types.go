// Package forms introspects and fills AcroForm fields using pdfcpu.
package forms

// FieldType is the closed set of form field kinds the tools understand.
// The type is decided once during extraction by a single discriminator;
// downstream code switches on it instead of re-probing dictionary keys.
type FieldType string

const (
	FieldTypeText       FieldType = "text"
	FieldTypeCheckbox   FieldType = "checkbox"
	FieldTypeRadioGroup FieldType = "radio_group"
	FieldTypeChoice     FieldType = "choice"
)

// RawRect is a field rectangle in the document's raw units, in PDF /Rect
// order: [llx, lly, urx, ury].
type RawRect [4]float64

// RadioOption is one selectable widget of a radio group.
type RadioOption struct {
	Value string   `json:"value"`
	Rect  *RawRect `json:"rect"`
}

// ChoiceOption is one entry of a choice field's option list.
type ChoiceOption struct {
	Value string `json:"value"`
	Text  string `json:"text"`
}

// FieldInfo is one entry of the extracted field-info document.
type FieldInfo struct {
	FieldID        string         `json:"field_id"`
	Page           int            `json:"page"`
	Rect           RawRect        `json:"rect"`
	Type           FieldType      `json:"type"`
	CheckedValue   string         `json:"checked_value,omitempty"`
	UncheckedValue string         `json:"unchecked_value,omitempty"`
	RadioOptions   []RadioOption  `json:"radio_options,omitempty"`
	ChoiceOptions  []ChoiceOption `json:"choice_options,omitempty"`
}

// FieldValue is one entry of the field-value document consumed by Fill.
type FieldValue struct {
	FieldID string `json:"field_id"`
	Value   string `json:"value"`
}
