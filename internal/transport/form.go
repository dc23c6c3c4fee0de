package transport

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// Form builds a multipart request body: plain fields plus file parts.
type Form struct {
	fields []formField
	files  []formFile
}

type formField struct {
	key, value string
}

type formFile struct {
	key      string
	filename string
	content  []byte
}

// Set adds a plain field.
func (f *Form) Set(key, value string) *Form {
	f.fields = append(f.fields, formField{key: key, value: value})
	return f
}

// AddFile adds a file part. The same key may repeat, as the product form
// does for its images.
func (f *Form) AddFile(key, filename string, content []byte) *Form {
	f.files = append(f.files, formFile{key: key, filename: filename, content: content})
	return f
}

func (f *Form) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, field := range f.fields {
		if err := w.WriteField(field.key, field.value); err != nil {
			return nil, "", fmt.Errorf("write form field %s: %w", field.key, err)
		}
	}
	for _, file := range f.files {
		part, err := w.CreateFormFile(file.key, file.filename)
		if err != nil {
			return nil, "", fmt.Errorf("create form file %s: %w", file.key, err)
		}
		if _, err := part.Write(file.content); err != nil {
			return nil, "", fmt.Errorf("write form file %s: %w", file.key, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}

	return &buf, w.FormDataContentType(), nil
}
