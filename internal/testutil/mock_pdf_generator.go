package testutil

import (
	"context"

	"github.com/invocli/invocli/internal/domain/pdfgen"
	"github.com/invocli/invocli/internal/pdf"
	"github.com/stretchr/testify/mock"
)

var _ pdf.Generator = (*MockPDFGenerator)(nil)

// TestPDF is what the mock generator returns unless a test overrides it
var TestPDF = []byte("%PDF-1.4 test")

type MockPDFGenerator struct {
	mock.Mock
}

// RenderInvoicePdf implements pdf.Generator.
func (m *MockPDFGenerator) RenderInvoicePdf(ctx context.Context, data *pdfgen.InvoiceData) ([]byte, error) {
	args := m.Called(ctx, data)
	out, _ := args.Get(0).([]byte)
	return out, args.Error(1)
}

// RenderInvoiceHTML implements pdf.Generator.
func (m *MockPDFGenerator) RenderInvoiceHTML(ctx context.Context, data *pdfgen.InvoiceData) ([]byte, error) {
	args := m.Called(ctx, data)
	out, _ := args.Get(0).([]byte)
	return out, args.Error(1)
}

// NewMockPDFGenerator returns a generator that answers every call with TestPDF
func NewMockPDFGenerator() *MockPDFGenerator {
	m := &MockPDFGenerator{}
	m.On("RenderInvoicePdf", mock.Anything, mock.Anything).Return(TestPDF, nil).Maybe()
	m.On("RenderInvoiceHTML", mock.Anything, mock.Anything).Return([]byte("<html></html>"), nil).Maybe()
	return m
}

// RenderedInvoices returns the data passed to RenderInvoicePdf, in call order
func (m *MockPDFGenerator) RenderedInvoices() []*pdfgen.InvoiceData {
	var out []*pdfgen.InvoiceData
	for _, call := range m.Calls {
		if call.Method == "RenderInvoicePdf" {
			out = append(out, call.Arguments.Get(1).(*pdfgen.InvoiceData))
		}
	}
	return out
}

// FailWith drops the default answers and makes every render fail with err
func (m *MockPDFGenerator) FailWith(err error) {
	m.ExpectedCalls = nil
	m.On("RenderInvoicePdf", mock.Anything, mock.Anything).Return(nil, err)
	m.On("RenderInvoiceHTML", mock.Anything, mock.Anything).Return(nil, err)
}
