package forms

// HasFillableFields reports whether a PDF document carries an AcroForm with
// at least one field, returning the catalog for listing.
func HasFillableFields(path string) (bool, []FieldInfo, error) {
	infos, err := NewCatalogReader(false).ReadFile(path)
	if err != nil {
		return false, nil, err
	}
	return len(infos) > 0, infos, nil
}
