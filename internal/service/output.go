package service

import (
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/invocli/invocli/internal/domain/invoice"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	invoicesDir       = "invoices"
	unnamedCompanyDir = "UNNAMED"
)

// CompanyFolderName strips diacritics and every character outside [A-Za-z0-9]
// from name and upper-cases the rest: "Café Ünïcode, Inc." becomes "CAFEUNICODEINC".
func CompanyFolderName(name string) string {
	// transformers keep state, build one per call
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	stripped, _, err := transform.String(t, name)
	if err != nil {
		stripped = name
	}

	var sb strings.Builder
	for _, r := range stripped {
		switch {
		case r >= 'a' && r <= 'z':
			sb.WriteRune(unicode.ToUpper(r))
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		}
	}
	if sb.Len() == 0 {
		return unnamedCompanyDir
	}
	return sb.String()
}

// InvoiceFileName is <number>-<COMPANY>-<YYYY-MM-DD>.pdf
func InvoiceFileName(number, companyFolder string, date time.Time) string {
	number = strings.NewReplacer("/", "-", "\\", "-").Replace(number)
	return number + "-" + companyFolder + "-" + date.Format(invoice.DateLayout) + ".pdf"
}

// InvoiceOutputDir is <output dir>/invoices/<COMPANY>
func InvoiceOutputDir(outputDir, companyFolder string) string {
	return filepath.Join(outputDir, invoicesDir, companyFolder)
}
