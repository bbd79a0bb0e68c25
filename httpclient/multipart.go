package httpclient

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/textproto"
)

// MultipartBody is a multipart/form-data request body. Pass it as the
// Body of a Request: the client encodes it with a generated boundary and
// never applies a JSON content type to it.
type MultipartBody struct {
	// Fields are simple key-value form fields.
	Fields map[string]string
	// Files are file upload fields.
	Files []FileField
}

// FileField describes one file part of a multipart body.
type FileField struct {
	// FieldName is the form field name (e.g. "file", "receipt").
	FieldName string
	// FileName is the file name sent to the server.
	FileName string
	// ContentType is the part MIME type. Empty means application/octet-stream.
	ContentType string
	// Data is the file content. Used if Reader is nil.
	Data []byte
	// Reader streams the file content for large uploads.
	Reader io.Reader
}

// encode builds the multipart payload, returning the reader and the
// boundary content-type header value.
func (m *MultipartBody) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range m.Fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}

	for _, f := range m.Files {
		part, err := createFilePart(w, f)
		if err != nil {
			return nil, "", err
		}
		if f.Reader != nil {
			_, err = io.Copy(part, f.Reader)
		} else {
			_, err = part.Write(f.Data)
		}
		if err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return &buf, w.FormDataContentType(), nil
}

func createFilePart(w *multipart.Writer, f FileField) (io.Writer, error) {
	if f.ContentType == "" {
		return w.CreateFormFile(f.FieldName, f.FileName)
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		`form-data; name="`+escapeQuotes(f.FieldName)+`"; filename="`+escapeQuotes(f.FileName)+`"`)
	header.Set("Content-Type", f.ContentType)
	return w.CreatePart(header)
}

// escapeQuotes escapes quotes and backslashes in header values.
func escapeQuotes(s string) string {
	var buf bytes.Buffer
	for _, b := range []byte(s) {
		if b == '"' || b == '\\' {
			buf.WriteByte('\\')
		}
		buf.WriteByte(b)
	}
	return buf.String()
}
