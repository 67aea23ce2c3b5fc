// Package extract turns an ebook document into plain text suitable for
// speech synthesis. Container parsing is delegated to an external document
// library and markup stripping to an external HTML parser; this package
// only decides which format reader applies and in which order text is
// collected.
package extract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Common errors for text extraction.
var (
	// ErrInputNotFound is returned when the input path does not exist.
	ErrInputNotFound = errors.New("input file not found")

	// ErrUnsupportedFormat is returned when the file extension is not a
	// supported ebook format.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// extractFunc reads one document format and returns its raw text.
type extractFunc func(path string) (string, error)

// extractors maps a lowercased file extension to its format reader. Only
// EPUB is wired today; future formats register here.
var extractors = map[string]extractFunc{
	".epub": epubText,
}

// Text extracts the raw, markup-free text of the document at path. The
// returned text preserves the order in which the document enumerates its
// content items.
func Text(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	fn, ok := extractors[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q (only EPUB files are supported)", ErrUnsupportedFormat, ext)
	}

	log.Debug("extracting text", "path", path, "format", ext)
	return fn(path)
}
