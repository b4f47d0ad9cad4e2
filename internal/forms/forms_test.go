package forms

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.json")
	doc := `[
	  {"field_id": "last_name", "value": "Simpson"},
	  {"field_id": "Checkbox12", "value": "/On"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	values, err := LoadValues(path)
	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.Equal(t, "last_name", values[0].FieldID)
	assert.Equal(t, "Simpson", values[0].Value)
	assert.Equal(t, "/On", values[1].Value)
}

func TestLoadValuesErrors(t *testing.T) {
	_, err := LoadValues(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err, "missing file")

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"field_id": "x"}`), 0o600))
	_, err = LoadValues(path)
	assert.Error(t, err, "not a list")
}

func TestValidateFieldIDs(t *testing.T) {
	targets := map[string]fillTarget{
		"last_name": {fieldType: FieldTypeText},
		"accept":    {fieldType: FieldTypeCheckbox},
	}

	t.Run("all_known", func(t *testing.T) {
		err := validateFieldIDs([]FieldValue{
			{FieldID: "last_name", Value: "Simpson"},
			{FieldID: "accept", Value: "/Yes"},
		}, targets)
		assert.NoError(t, err)
	})

	t.Run("unknown_ids_listed_with_valid_set", func(t *testing.T) {
		err := validateFieldIDs([]FieldValue{
			{FieldID: "last_name", Value: "Simpson"},
			{FieldID: "first_name", Value: "Homer"},
			{FieldID: "middle_name", Value: "Jay"},
		}, targets)
		require.Error(t, err)

		var unknownErr *UnknownFieldsError
		require.ErrorAs(t, err, &unknownErr)
		assert.Equal(t, []string{"first_name", "middle_name"}, unknownErr.Invalid)
		assert.Equal(t, []string{"accept", "last_name"}, unknownErr.Valid, "valid IDs sorted")

		msg := err.Error()
		assert.Contains(t, msg, "first_name")
		assert.Contains(t, msg, "valid field IDs")
		assert.Contains(t, msg, "last_name")
	})

	t.Run("empty_values_are_fine", func(t *testing.T) {
		assert.NoError(t, validateFieldIDs(nil, targets))
	})
}

func TestCatalogReaderReadFile(t *testing.T) {
	testPath := filepath.Join("testdata", "fillable-form.pdf")
	if _, err := os.Stat(testPath); os.IsNotExist(err) {
		t.Skipf("test file %s not found", testPath)
	}

	infos, err := NewCatalogReader(false).ReadFile(testPath)
	require.NoError(t, err)

	for _, info := range infos {
		assert.NotEmpty(t, info.FieldID)
		assert.GreaterOrEqual(t, info.Page, 1)
		switch info.Type {
		case FieldTypeText, FieldTypeCheckbox, FieldTypeRadioGroup, FieldTypeChoice:
		default:
			t.Errorf("field %q has unexpected type %q", info.FieldID, info.Type)
		}
		if info.Type == FieldTypeCheckbox {
			assert.NotEmpty(t, info.CheckedValue)
			assert.Equal(t, "/Off", info.UncheckedValue)
		}
	}
}

func TestCatalogReaderNestedFields(t *testing.T) {
	testPath := filepath.Join("testdata", "nested-form.pdf")
	if _, err := os.Stat(testPath); os.IsNotExist(err) {
		t.Skipf("test file %s not found", testPath)
	}

	infos, err := NewCatalogReader(false).ReadFile(testPath)
	require.NoError(t, err)

	var ids []string
	for _, info := range infos {
		ids = append(ids, info.FieldID)
	}
	assert.Equal(t, []string{"address.city", "address.zip", "last_name"}, ids,
		"terminal fields of a non-terminal node carry dot-qualified IDs")

	for _, info := range infos {
		assert.Equal(t, FieldTypeText, info.Type, "kids inherit /FT from the parent node")
		assert.Equal(t, 1, info.Page)
	}
}

func TestQualifyName(t *testing.T) {
	assert.Equal(t, "city", qualifyName("", "city"))
	assert.Equal(t, "address.city", qualifyName("address", "city"))
	assert.Equal(t, "address", qualifyName("address", ""))
	assert.Equal(t, "a.b.c", qualifyName("a.b", "c"))
}

func TestCatalogReaderMissingFile(t *testing.T) {
	_, err := NewCatalogReader(false).ReadFile(filepath.Join(t.TempDir(), "absent.pdf"))
	assert.Error(t, err)
}

func TestFillFileMissingInput(t *testing.T) {
	filler := NewFiller(false)
	err := filler.FillFile(filepath.Join(t.TempDir(), "absent.pdf"), "out.pdf", nil)
	assert.Error(t, err)
}

func TestFillFileNestedFields(t *testing.T) {
	testPath := filepath.Join("testdata", "nested-form.pdf")
	if _, err := os.Stat(testPath); os.IsNotExist(err) {
		t.Skipf("test file %s not found", testPath)
	}

	outPath := filepath.Join(t.TempDir(), "filled.pdf")
	err := NewFiller(false).FillFile(testPath, outPath, []FieldValue{
		{FieldID: "address.city", Value: "Springfield"},
		{FieldID: "last_name", Value: "Simpson"},
	})
	require.NoError(t, err)

	_, err = os.Stat(outPath)
	assert.NoError(t, err)
}

func TestFillFileUnknownIDsWriteNothing(t *testing.T) {
	testPath := filepath.Join("testdata", "nested-form.pdf")
	if _, err := os.Stat(testPath); os.IsNotExist(err) {
		t.Skipf("test file %s not found", testPath)
	}

	// An unqualified kid name is not addressable; only the dot-qualified
	// form is.
	outPath := filepath.Join(t.TempDir(), "filled.pdf")
	err := NewFiller(false).FillFile(testPath, outPath, []FieldValue{
		{FieldID: "city", Value: "Springfield"},
	})

	var unknown *UnknownFieldsError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, []string{"city"}, unknown.Invalid)
	assert.Equal(t, []string{"address.city", "address.zip", "last_name"}, unknown.Valid)

	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr), "no output written after a failed validation")
}
