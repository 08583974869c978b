package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Multipart field names expected by POST /documents
const (
	FieldFile          = "file"
	FieldDocumentTitle = "documentTitle"
	FieldCategory      = "category"
)

// UploadRequest is one document submission from the upload panel
type UploadRequest struct {
	Title    string
	Category string
	FileName string
	Content  io.Reader
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// EncodeUpload renders req as a multipart/form-data body with the parts
// file, documentTitle and category, in that order. It returns the body and
// the matching Content-Type header.
func EncodeUpload(req UploadRequest) (*bytes.Buffer, string, error) {
	if req.Content == nil {
		return nil, "", ErrNoFile
	}

	data, err := io.ReadAll(req.Content)
	if err != nil {
		return nil, "", fmt.Errorf("read file: %w", err)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		FieldFile, quoteEscaper.Replace(req.FileName)))
	header.Set("Content-Type", mimetype.Detect(data).String())

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("create file part: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", fmt.Errorf("write file part: %w", err)
	}

	if err := writer.WriteField(FieldDocumentTitle, req.Title); err != nil {
		return nil, "", fmt.Errorf("write %s: %w", FieldDocumentTitle, err)
	}
	if err := writer.WriteField(FieldCategory, req.Category); err != nil {
		return nil, "", fmt.Errorf("write %s: %w", FieldCategory, err)
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}
	return body, writer.FormDataContentType(), nil
}
