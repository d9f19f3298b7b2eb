package catalog

import (
	"fmt"
	"strings"
)

// UnsupportedOptionError reports a region or role name missing from the catalog.
type UnsupportedOptionError struct {
	Kind      string
	Value     string
	Supported []string
}

func (e *UnsupportedOptionError) Error() string {
	return fmt.Sprintf("unsupported %s %q (supported: %s)", e.Kind, e.Value, strings.Join(e.Supported, ", "))
}

// LoadError represents an error while parsing or validating catalog data
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
