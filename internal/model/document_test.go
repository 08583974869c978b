package model

import (
	"encoding/json"
	"testing"
)

func TestDocument_UnmarshalNumericAndStringIDs(t *testing.T) {
	payload := `[
		{"id": 1, "documentTitle": "Doc One", "category": "Cat A", "uploadDate": "2025-08-01"},
		{"id": "abc-2", "documentTitle": "Doc Two", "category": "Cat B", "uploadDate": "2025-08-02"}
	]`

	var docs []Document
	if err := json.Unmarshal([]byte(payload), &docs); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(docs) != 2 {
		t.Fatalf("Expected 2 documents, got %d", len(docs))
	}
	if docs[0].ID != "1" {
		t.Errorf("Expected ID '1', got '%s'", docs[0].ID)
	}
	if docs[1].ID != "abc-2" {
		t.Errorf("Expected ID 'abc-2', got '%s'", docs[1].ID)
	}
	if docs[0].DocumentTitle != "Doc One" || docs[1].Category != "Cat B" {
		t.Errorf("Unexpected decoded fields: %+v", docs)
	}
}

func TestDocumentID_UnmarshalRejectsObjects(t *testing.T) {
	var id DocumentID
	if err := json.Unmarshal([]byte(`{"x":1}`), &id); err == nil {
		t.Error("Expected error for object id, got nil")
	}
}

func TestRemoveDocument(t *testing.T) {
	docs := []Document{{ID: "1"}, {ID: "2"}, {ID: "3"}}

	result := RemoveDocument(docs, "2")
	if len(result) != 2 || result[0].ID != "1" || result[1].ID != "3" {
		t.Errorf("Unexpected result: %+v", result)
	}

	// Unknown id leaves the collection intact
	result = RemoveDocument(docs, "42")
	if len(result) != 3 {
		t.Errorf("Expected 3 documents, got %d", len(result))
	}
}

func TestDocumentFilter_IsZero(t *testing.T) {
	if !(DocumentFilter{}).IsZero() {
		t.Error("Empty filter should be zero")
	}
	if (DocumentFilter{Search: "invoice"}).IsZero() {
		t.Error("Filter with search should not be zero")
	}
}

func TestSession_Active(t *testing.T) {
	if (Session{}).Active() {
		t.Error("Zero session should not be active")
	}
	if !(Session{Username: "alice"}).Active() {
		t.Error("Session with username should be active")
	}
}
