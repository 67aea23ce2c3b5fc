package extract

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/kapmahc/epub"
)

// documentMediaTypes are the manifest media types that carry readable
// chapter content. Everything else in the container (stylesheets, images,
// fonts, navigation documents) is skipped.
var documentMediaTypes = map[string]bool{
	"application/xhtml+xml": true,
	"text/html":             true,
}

// epubText opens an EPUB container and concatenates the stripped text of
// every document item, joined by newlines, in the order the manifest
// enumerates them. The enumeration order is the library's contract and is
// preserved as-is for reproducibility.
func epubText(path string) (string, error) {
	book, err := epub.Open(path)
	if err != nil {
		return "", fmt.Errorf("open epub: %w", err)
	}
	defer book.Close()

	var parts []string
	for _, item := range book.Opf.Manifest {
		if !documentMediaTypes[item.MediaType] {
			continue
		}

		rc, err := book.Open(item.Href)
		if err != nil {
			return "", fmt.Errorf("open item %s: %w", item.Href, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("read item %s: %w", item.Href, err)
		}

		text, err := stripMarkup(string(content))
		if err != nil {
			return "", fmt.Errorf("parse item %s: %w", item.Href, err)
		}
		log.Debug("extracted item", "href", item.Href, "characters", len(text))
		parts = append(parts, text)
	}

	return strings.Join(parts, "\n"), nil
}
