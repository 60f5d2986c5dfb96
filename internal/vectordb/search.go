package vectordb

import (
	"fmt"
	"strings"
)

// FormatResults renders search results as plain text suitable for feeding
// into an assistant prompt as retrieved context.
func FormatResults(results []SearchResult) string {
	if len(results) == 0 {
		return "No results found."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d result(s):\n\n", len(results)))

	for i, r := range results {
		sb.WriteString(fmt.Sprintf("--- Result %d (similarity: %.4f) ---\n", i+1, r.Similarity))

		if r.Document.Metadata.Title != "" {
			sb.WriteString(fmt.Sprintf("Title: %s\n", r.Document.Metadata.Title))
		}
		if r.Document.Metadata.Type != "" {
			sb.WriteString(fmt.Sprintf("Type: %s\n", r.Document.Metadata.Type))
		}
		if r.Document.Metadata.Genre != "" {
			sb.WriteString(fmt.Sprintf("Genre: %s\n", r.Document.Metadata.Genre))
		}

		sb.WriteString("\n")
		sb.WriteString(r.Document.Content)
		sb.WriteString("\n\n")
	}

	return sb.String()
}
