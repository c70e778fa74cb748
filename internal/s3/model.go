package s3

import (
	"path"
	"strings"
)

type DocumentKind string

const (
	DocumentKindPdf  DocumentKind = "pdf"
	DocumentKindHTML DocumentKind = "html"
)

// ContentType is the mime type stored with the object
func (k DocumentKind) ContentType() string {
	switch k {
	case DocumentKindPdf:
		return "application/pdf"
	case DocumentKindHTML:
		return "text/html; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}

// Document is a generated file to upload. Name is relative to the bucket key prefix,
// for example "ACME/INV-1-ACME-2024-03-07.pdf".
type Document struct {
	Name string
	Data []byte
	Kind DocumentKind
}

func NewPdfDocument(name string, data []byte) *Document {
	return &Document{
		Name: name,
		Data: data,
		Kind: DocumentKindPdf,
	}
}

// objectKey joins prefix and name with forward slashes regardless of the OS
func objectKey(prefix, name string) string {
	name = strings.TrimLeft(strings.ReplaceAll(name, "\\", "/"), "/")
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}
