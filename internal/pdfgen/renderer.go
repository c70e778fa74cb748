package pdfgen

import (
	"bytes"
	"embed"
	"html/template"
	"strings"

	domain "github.com/invocli/invocli/internal/domain/pdfgen"
	ierr "github.com/invocli/invocli/internal/errors"
	"github.com/invocli/invocli/internal/logger"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

const invoiceTemplate = "invoice.html.tmpl"

// emptyNotes is printed when an invoice has no note
const emptyNotes = "N/A"

// InvoiceRenderer turns formatted invoice data into a standalone html document
type InvoiceRenderer interface {
	RenderHTML(data *domain.InvoiceData) ([]byte, error)
}

type htmlRenderer struct {
	tmpl   *template.Template
	md     goldmark.Markdown
	policy *bluemonday.Policy
	log    *logger.Logger
}

// NewHTMLRenderer parses the embedded invoice template
func NewHTMLRenderer(log *logger.Logger) (InvoiceRenderer, error) {
	r := &htmlRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Linkify, extension.Strikethrough),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
		policy: newNotesPolicy(),
		log:    log,
	}

	tmpl, err := template.New(invoiceTemplate).
		Funcs(template.FuncMap{
			"notes":   r.renderNotes,
			"logoURL": logoURL,
		}).
		ParseFS(templateFS, "templates/"+invoiceTemplate)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to parse invoice template").
			Mark(ierr.ErrSystem)
	}
	r.tmpl = tmpl
	return r, nil
}

func (r *htmlRenderer) RenderHTML(data *domain.InvoiceData) ([]byte, error) {
	if data == nil {
		return nil, ierr.NewError("invoice data is required").Mark(ierr.ErrValidation)
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, invoiceTemplate, data); err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to render invoice template").
			WithReportableDetails(map[string]any{
				"invoice_number": data.InvoiceNumber,
			}).
			Mark(ierr.ErrSystem)
	}
	r.log.Debugw("rendered invoice html", "invoice_number", data.InvoiceNumber, "bytes", buf.Len())
	return buf.Bytes(), nil
}

// renderNotes converts the note markdown to sanitized html
func (r *htmlRenderer) renderNotes(note string) template.HTML {
	note = strings.TrimSpace(note)
	if note == "" {
		return template.HTML("<p>" + emptyNotes + "</p>")
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(note), &buf); err != nil {
		r.log.Warnw("failed to render notes as markdown", "error", err)
		return template.HTML("<p>" + template.HTMLEscapeString(note) + "</p>")
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes()))
}

func newNotesPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	return policy
}

// logoURL lets image data URIs through html/template, anything else is dropped
func logoURL(uri string) template.URL {
	if strings.HasPrefix(uri, "data:image/") {
		return template.URL(uri)
	}
	return ""
}
