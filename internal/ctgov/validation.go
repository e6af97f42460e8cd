package ctgov

import (
	"fmt"
	"regexp"
	"strings"

	cterrors "github.com/olgasafonova/clinicaltrials-mcp-server/internal/errors"
)

// NCT IDs are the literal "NCT" followed by exactly 8 digits.
var nctIDPattern = regexp.MustCompile(`^NCT\d{8}$`)

// knownFieldStatsTypes are the field types accepted by /stats/field/values.
var knownFieldStatsTypes = map[string]bool{
	"ENUM": true, "STRING": true, "DATE": true,
	"INTEGER": true, "NUMBER": true, "BOOLEAN": true,
}

// NormalizeNCTID trims whitespace and uppercases an NCT ID.
func NormalizeNCTID(nctID string) string {
	return strings.ToUpper(strings.TrimSpace(nctID))
}

// ValidateNCTID validates a ClinicalTrials.gov identifier.
func ValidateNCTID(nctID string) error {
	normalized := NormalizeNCTID(nctID)
	if normalized == "" {
		return cterrors.NewValidationError("nct_id", "", "NCT ID is required")
	}
	if !nctIDPattern.MatchString(normalized) {
		return cterrors.NewValidationError("nct_id", nctID, "expected format NCT followed by 8 digits")
	}
	return nil
}

// ValidateMaxStudies validates the max_studies parameter.
func ValidateMaxStudies(n int) error {
	if n < 0 {
		return cterrors.NewValidationError("max_studies", fmt.Sprintf("%d", n), "cannot be negative")
	}
	if n > MaxPageSize {
		return cterrors.NewValidationError("max_studies", fmt.Sprintf("%d", n), fmt.Sprintf("cannot exceed %d", MaxPageSize))
	}
	return nil
}

// ValidateFieldStatsTypes validates the types filter for field statistics.
func ValidateFieldStatsTypes(types []string) error {
	for _, t := range types {
		if !knownFieldStatsTypes[strings.ToUpper(strings.TrimSpace(t))] {
			return cterrors.NewValidationError("field_types", t, "expected one of ENUM, STRING, DATE, INTEGER, NUMBER, BOOLEAN")
		}
	}
	return nil
}

// hasAnyFilter reports whether at least one search filter list is non-empty.
func hasAnyFilter(lists ...[]string) bool {
	for _, l := range lists {
		if len(l) > 0 {
			return true
		}
	}
	return false
}
