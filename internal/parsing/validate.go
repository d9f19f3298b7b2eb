package parsing

import (
	"math"
	"unicode/utf8"
)

// ValidateText rejects text that is not valid UTF-8. Empty text is valid.
func ValidateText(field, text string) error {
	if !utf8.ValidString(text) {
		return &ValidationError{Field: field, Message: "text is not valid UTF-8"}
	}
	return nil
}

// ValidateYears rejects negative or non-finite experience values.
func ValidateYears(field string, years float64) error {
	if years < 0 || math.IsNaN(years) || math.IsInf(years, 0) {
		return &ValidationError{Field: field, Message: "must be a non-negative number"}
	}
	return nil
}
