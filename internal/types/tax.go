package types

import (
	ierr "github.com/invocli/invocli/internal/errors"
	"github.com/samber/lo"
)

// TaxMode tells whether line item rates already contain tax
type TaxMode string

const (
	// TaxModeExclusive means rates do not include tax; tax is added on top
	TaxModeExclusive TaxMode = "exclusive"
	// TaxModeInclusive means rates already include tax; tax is extracted
	TaxModeInclusive TaxMode = "inclusive"
)

func (m TaxMode) String() string {
	return string(m)
}

// DisplayName is the label used in summaries
func (m TaxMode) DisplayName() string {
	if m == TaxModeInclusive {
		return "Inclusive"
	}
	return "Exclusive"
}

func (m TaxMode) Validate() error {
	allowed := []TaxMode{
		TaxModeExclusive,
		TaxModeInclusive,
	}
	if !lo.Contains(allowed, m) {
		return ierr.NewErrorf("invalid tax mode %q", string(m)).
			WithHint("Tax type must be either exclusive or inclusive").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// InvoiceNumberingType is the numbering scheme configured on a company
type InvoiceNumberingType string

const (
	// InvoiceNumberingRandom generates INV-<timestamp digits><random digits>
	InvoiceNumberingRandom InvoiceNumberingType = "random"
	// InvoiceNumberingPrefix generates <PREFIX-><user input or timestamp digits>
	InvoiceNumberingPrefix InvoiceNumberingType = "prefix"
)

func (t InvoiceNumberingType) Validate() error {
	if t == "" {
		return nil
	}
	allowed := []InvoiceNumberingType{
		InvoiceNumberingRandom,
		InvoiceNumberingPrefix,
	}
	if !lo.Contains(allowed, t) {
		return ierr.NewErrorf("invalid invoice numbering type %q", string(t)).
			WithHint("Invoice numbering type must be either random or prefix").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
