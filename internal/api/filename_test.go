package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDownloadFileName(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		title       string
		disposition string
		expected    string
	}{
		{"title and extension", "1", "Report", `attachment; filename="report.pdf"`, "Report.pdf"},
		{"missing title", "7", "", `attachment; filename="scan.png"`, "document_7.png"},
		{"no disposition", "7", "", "", "document_7"},
		{"disposition without extension", "2", "Notes", `attachment; filename="README"`, "Notes"},
		{"unsafe characters replaced", "3", "Q1/Q2: plan & budget", `filename="x.docx"`, "Q1_Q2_ plan _ budget.docx"},
		{"case insensitive parameter", "4", "Tax", `attachment; FILENAME="return.2024.xlsx"`, "Tax.xlsx"},
		{"unquoted filename ignored", "5", "Plain", `attachment; filename=plain.txt`, "Plain"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, DownloadFileName(modelID(test.id), test.title, test.disposition))
		})
	}
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "hello world-1_2", SanitizeFileName("hello world-1_2"))
	assert.Equal(t, "r_sum_", SanitizeFileName("résumé"))
	assert.Equal(t, "a_b_c", SanitizeFileName("a.b,c"))
}

func TestExtensionFromDisposition(t *testing.T) {
	assert.Equal(t, ".gz", ExtensionFromDisposition(`filename="archive.tar.gz"`))
	assert.Equal(t, "", ExtensionFromDisposition(`inline`))
	assert.Equal(t, "._evil", ExtensionFromDisposition(`filename="x./evil"`))
}
