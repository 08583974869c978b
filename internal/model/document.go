package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DocumentID is the server-assigned identifier of a document. The backend
// may encode it as a JSON number or a JSON string; both decode here.
type DocumentID string

// UnmarshalJSON accepts both numeric and string identifiers
func (id *DocumentID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("document id: %w", err)
		}
		*id = DocumentID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("document id: %w", err)
	}
	*id = DocumentID(n.String())
	return nil
}

// String returns the identifier as it appears in request paths
func (id DocumentID) String() string {
	return string(id)
}

// Document is a single vault entry as returned by the backend
type Document struct {
	ID            DocumentID `json:"id"`
	DocumentTitle string     `json:"documentTitle"`
	Category      string     `json:"category"`
	UploadDate    string     `json:"uploadDate"`
}

// DocumentFilter holds the optional list parameters. Empty fields are not sent.
type DocumentFilter struct {
	Search string
	Sort   string
}

// IsZero reports whether no parameter is set
func (f DocumentFilter) IsZero() bool {
	return f.Search == "" && f.Sort == ""
}

// Session is the signed-in user. The zero value means signed out.
type Session struct {
	Username string
}

// Active reports whether a user is signed in
func (s Session) Active() bool {
	return s.Username != ""
}

// RemoveDocument returns docs without the entry whose ID matches
func RemoveDocument(docs []Document, id DocumentID) []Document {
	out := make([]Document, 0, len(docs))
	for _, doc := range docs {
		if doc.ID != id {
			out = append(out, doc)
		}
	}
	return out
}
