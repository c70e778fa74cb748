package invoice

import (
	"os"
	"path/filepath"
	"strings"

	ierr "github.com/invocli/invocli/internal/errors"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Format is the encoding of an invoice data file
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from the file extension, defaulting to JSON
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses an invoice document
func Decode(data []byte, format Format) (*Invoice, error) {
	var inv Invoice
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &inv)
	default:
		err = json.Unmarshal(data, &inv)
	}
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Invoice data is not valid %s", strings.ToUpper(string(format))).
			Mark(ierr.ErrValidation)
	}
	return &inv, nil
}

// LoadFile reads and decodes an invoice data file
func LoadFile(path string) (*Invoice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ierr.WithError(err).
				WithHintf("Invoice data file %s does not exist", path).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHintf("Could not read invoice data file %s", path).
			Mark(ierr.ErrSystem)
	}
	return Decode(data, FormatFromPath(path))
}

// Encode serializes the document, JSON is indented with two spaces
func Encode(inv *Invoice, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(inv)
	default:
		return json.MarshalIndent(inv, "", "  ")
	}
}

// WriteFile stores the document at path in the format given by its extension
func WriteFile(path string, inv *Invoice) error {
	data, err := Encode(inv, FormatFromPath(path))
	if err != nil {
		return ierr.WithError(err).
			WithHint("Could not encode invoice data").
			Mark(ierr.ErrSystem)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return ierr.WithError(err).
			WithHintf("Could not write invoice data to %s", path).
			Mark(ierr.ErrSystem)
	}
	return nil
}
