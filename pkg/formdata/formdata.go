// Package formdata builds multipart/form-data request bodies for the media
// provider. The text fields and part headers are encoded up front; the file
// content is only read when the body is streamed.
package formdata

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"path/filepath"
	"strings"
)

// Field is a named text field. Fields are written in slice order.
type Field struct {
	Name  string
	Value string
}

// FilePart is the single binary part of the body. Size must be the exact
// number of bytes Content yields.
type FilePart struct {
	FieldName string
	Filename  string
	Content   io.Reader
	Size      int64
}

// Body is an encoded request body together with its Content-Type header.
// Head and Tail surround the file content, which is read lazily.
type Body struct {
	Head        []byte
	Tail        []byte
	Content     io.Reader
	Size        int64
	ContentType string
	Boundary    string
}

// Reader streams the whole body. It can be consumed once.
func (b *Body) Reader() io.Reader {
	if b.Content == nil {
		return io.MultiReader(bytes.NewReader(b.Head), bytes.NewReader(b.Tail))
	}
	return io.MultiReader(bytes.NewReader(b.Head), b.Content, bytes.NewReader(b.Tail))
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// Encode writes fields followed by the file part, if any, using a random
// boundary.
func Encode(fields []Field, part *FilePart) (*Body, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range fields {
		if err := w.WriteField(f.Name, f.Value); err != nil {
			return nil, fmt.Errorf("write field %s: %w", f.Name, err)
		}
	}

	var content io.Reader
	var contentSize int64
	if part != nil {
		if err := writeFilePartHeader(w, part); err != nil {
			return nil, err
		}
		content, contentSize = part.Content, part.Size
	}
	headLen := buf.Len()
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	raw := buf.Bytes()
	return &Body{
		Head:        raw[:headLen],
		Tail:        raw[headLen:],
		Content:     content,
		Size:        int64(len(raw)) + contentSize,
		ContentType: w.FormDataContentType(),
		Boundary:    w.Boundary(),
	}, nil
}

func writeFilePartHeader(w *multipart.Writer, part *FilePart) error {
	fieldName := part.FieldName
	if fieldName == "" {
		fieldName = "file"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(fieldName), quoteEscaper.Replace(filepath.Base(part.Filename))))
	h.Set("Content-Type", ContentTypeFor(part.Filename))

	if _, err := w.CreatePart(h); err != nil {
		return fmt.Errorf("create file part: %w", err)
	}
	return nil
}

// ContentTypeFor infers the part content type from the file extension.
func ContentTypeFor(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".mp4", ".avi", ".mov":
		return "video/mp4"
	default:
		return "application/octet-stream"
	}
}
