package service

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/invocli/invocli/internal/domain/company"
	"github.com/invocli/invocli/internal/types"
)

const randomInvoicePrefix = "INV-"

// NewInvoiceNumber builds an invoice number following the numbering scheme of c.
//
//   - random: INV- followed by the last 6 digits of the unix millisecond timestamp
//     and 3 random digits
//   - prefix: the company prefix followed by input, or by the last 6 timestamp
//     digits when input is empty
//
// Companies without a scheme get input back unchanged.
func NewInvoiceNumber(c *company.Company, input string, now time.Time) string {
	input = strings.TrimSpace(input)
	if c == nil {
		return input
	}

	switch c.InvoiceType {
	case types.InvoiceNumberingPrefix:
		prefix := company.NormalizePrefix(c.InvoicePrefix)
		if prefix == "" {
			return input
		}
		if input != "" {
			return prefix + input
		}
		return prefix + timestampDigits(now)
	case types.InvoiceNumberingRandom:
		return fmt.Sprintf("%s%s%03d", randomInvoicePrefix, timestampDigits(now), rand.IntN(1000))
	default:
		return input
	}
}

// DefaultInvoiceNumber is used when an invoice has no number
func DefaultInvoiceNumber(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

func timestampDigits(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) <= 6 {
		return ms
	}
	return ms[len(ms)-6:]
}
