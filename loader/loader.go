package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/albertocavalcante/go-solvexplain/problems"
	"gopkg.in/yaml.v3"
)

// Format identifies a document encoding.
type Format string

const (
	// FormatStarlark is the BUILD-file-like form read with buildtools.
	FormatStarlark Format = "starlark"

	// FormatYAML covers both YAML and JSON documents.
	FormatYAML Format = "yaml"
)

// DetectFormat picks the format from the file extension.
func DetectFormat(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".bzl", ".star", ".bazel":
		return FormatStarlark, nil
	case ".yaml", ".yml", ".json":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%s: %w", filename, ErrUnsupportedFormat)
	}
}

// ReadFile reads and decodes a problem document from disk.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read problem document: %w", err)
	}
	return Parse(path, data)
}

// Parse decodes data, choosing the format from filename.
func Parse(filename string, data []byte) (*Document, error) {
	format, err := DetectFormat(filename)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatStarlark:
		return ParseStarlark(filename, data)
	default:
		return ParseYAML(data)
	}
}

// ParseYAML decodes a YAML or JSON problem document. Unknown fields are
// rejected so that typos do not silently drop packages.
func ParseYAML(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse problem document YAML: %w", err)
	}
	return &doc, nil
}

// LoadFile reads a document and builds its problems graph.
func LoadFile(path string) (*problems.Graph, problems.Conflicts, error) {
	doc, err := ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	g, conflicts, err := doc.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, conflicts, nil
}
