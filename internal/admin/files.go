package admin

import "backoffice/internal/apiclient"

// FileField tracks one file input across the add/edit lifecycle. Existing is
// the stored path from the server; picking a file fills NewName/NewData (the
// object-URL preview equivalent lives with the caller); Clear marks the
// stored file for removal. Only one of NewData/Clear is honored per submit.
type FileField struct {
	Existing string
	NewName  string
	NewData  []byte
	Clear    bool
}

// Pick stages a new upload and cancels a pending clear.
func (f *FileField) Pick(name string, data []byte) {
	f.NewName = name
	f.NewData = data
	f.Clear = false
}

// Remove discards any staged upload and, when a stored file exists, marks it
// for clearing on the server (the explicit empty sentinel).
func (f *FileField) Remove() {
	f.NewName = ""
	f.NewData = nil
	f.Clear = f.Existing != ""
}

// Present reports whether a file exists or is staged, after pending changes.
func (f FileField) Present() bool {
	if f.NewData != nil {
		return true
	}
	return f.Existing != "" && !f.Clear
}

// encode adds the field to the multipart form: a staged upload ships the
// bytes, a clear ships the empty sentinel, untouched fields are omitted so
// the server leaves them alone.
func (f FileField) encode(form *apiclient.Form, name string) {
	switch {
	case f.NewData != nil:
		form.SetFile(name, f.NewName, f.NewData)
	case f.Clear:
		form.ClearFile(name)
	}
}
