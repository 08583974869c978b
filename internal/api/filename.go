package api

import (
	"regexp"
	"strings"

	"github.com/ytget/doc-vault/internal/model"
)

// Fallback name prefix when the caller has no title for the document
const UntitledPrefix = "document_"

var (
	dispositionFilename = regexp.MustCompile(`(?i)filename="(.+)"`)
	unsafeNameChars     = regexp.MustCompile(`[^a-zA-Z0-9\-_ ]`)
	pathSeparators      = strings.NewReplacer("/", "_", `\`, "_")
)

// DownloadFileName builds the saved file name: the sanitized title (or
// document_<id>) followed by the extension of the server's file name, if any.
func DownloadFileName(id model.DocumentID, title, contentDisposition string) string {
	base := title
	if base == "" {
		base = UntitledPrefix + id.String()
	}
	return SanitizeFileName(base) + ExtensionFromDisposition(contentDisposition)
}

// SanitizeFileName replaces every character outside [A-Za-z0-9-_ ] with '_'
func SanitizeFileName(name string) string {
	return unsafeNameChars.ReplaceAllString(name, "_")
}

// ExtensionFromDisposition extracts ".ext" from a Content-Disposition
// filename="..." parameter. Only the extension of the server's name is used.
func ExtensionFromDisposition(contentDisposition string) string {
	match := dispositionFilename.FindStringSubmatch(contentDisposition)
	if len(match) < 2 || match[1] == "" {
		return ""
	}

	original := match[1]
	dot := strings.LastIndex(original, ".")
	if dot < 0 {
		return ""
	}
	return pathSeparators.Replace(original[dot:])
}
