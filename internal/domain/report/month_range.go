package report

import (
	"regexp"

	"github.com/agence/backend/internal/domain/shared"
)

var yearMonthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

// MonthRange is an inclusive [Start, End] range of zero-padded YYYY-MM
// tokens. Zero-padded tokens sort lexically in chronological order, so the
// report queries compare them as strings.
type MonthRange struct {
	Start string
	End   string
}

// NewMonthRange validates both tokens and returns the range. Missing or
// malformed tokens are terminal for the request.
func NewMonthRange(start, end string) (MonthRange, error) {
	if start == "" || end == "" {
		return MonthRange{}, shared.NewDomainError("VALIDATION_FAILED", "start and end are required parameters")
	}
	if !yearMonthRe.MatchString(start) || !yearMonthRe.MatchString(end) {
		return MonthRange{}, shared.NewValidationError("year month", "YYYY-MM format (e.g., 2024-01)")
	}
	return MonthRange{Start: start, End: end}, nil
}
