package apiclient

import (
	"bytes"
	"mime/multipart"
)

// Form builds a multipart body. The whole form is re-encodable so a request
// replayed after a token refresh carries an identical payload.
//
// File semantics follow the admin forms: SetFile attaches a new upload,
// ClearFile sends the explicit empty sentinel telling the server to drop the
// stored file, and an untouched field is simply absent, meaning "leave it".
type Form struct {
	fields []formField
}

type formField struct {
	name     string
	value    string
	filename string
	content  []byte
	isFile   bool
}

func (f *Form) Set(name, value string) {
	f.fields = append(f.fields, formField{name: name, value: value})
}

func (f *Form) SetFile(name, filename string, content []byte) {
	f.fields = append(f.fields, formField{name: name, filename: filename, content: content, isFile: true})
}

// ClearFile marks a stored file for removal server-side.
func (f *Form) ClearFile(name string) {
	f.fields = append(f.fields, formField{name: name, value: ""})
}

// Has reports whether the field was set in any way.
func (f *Form) Has(name string) bool {
	for _, fld := range f.fields {
		if fld.name == name {
			return true
		}
	}
	return false
}

// Value returns the first plain value for name.
func (f *Form) Value(name string) string {
	for _, fld := range f.fields {
		if fld.name == name && !fld.isFile {
			return fld.value
		}
	}
	return ""
}

// Encode renders the multipart body and its content type.
func (f *Form) Encode() ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, fld := range f.fields {
		if fld.isFile {
			part, err := w.CreateFormFile(fld.name, fld.filename)
			if err != nil {
				return nil, "", err
			}
			if _, err := part.Write(fld.content); err != nil {
				return nil, "", err
			}
			continue
		}
		if err := w.WriteField(fld.name, fld.value); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
