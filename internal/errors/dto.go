package errors

import (
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrorDetail is the flattened view of an error printed by the CLI
type ErrorDetail struct {
	Display       string         `json:"message"`
	InternalError string         `json:"internal_error,omitempty"`
	Details       map[string]any `json:"details,omitempty"`
}

// NewErrorDetail flattens hints and safe details of err for display
func NewErrorDetail(err error) ErrorDetail {
	detail := ErrorDetail{
		Display:       DisplayMessage(err),
		InternalError: err.Error(),
	}

	for _, safe := range errors.GetAllSafeDetails(err) {
		for _, payload := range safe.SafeDetails {
			raw, ok := strings.CutPrefix(payload, "__json__:")
			if !ok {
				continue
			}
			var details map[string]any
			if jsonErr := json.Unmarshal([]byte(raw), &details); jsonErr == nil {
				if detail.Details == nil {
					detail.Details = make(map[string]any)
				}
				for k, v := range details {
					detail.Details[k] = v
				}
			}
		}
	}
	return detail
}

// DisplayMessage returns the user facing message of err: its hints when
// present, the error text otherwise.
func DisplayMessage(err error) string {
	if err == nil {
		return ""
	}
	if hint := errors.FlattenHints(err); hint != "" {
		return hint
	}
	return err.Error()
}
