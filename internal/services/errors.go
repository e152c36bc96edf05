package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation    = errors.New("validation error")
	ErrConfiguration = errors.New("configuration error")
	ErrNotFound      = errors.New("not found")
	ErrTransient     = errors.New("transient failure")

	// ErrUnidentified marks an episode or search candidate whose identity
	// could not be resolved from the markup. Such candidates are dropped,
	// never returned as partial records.
	ErrUnidentified = errors.New("unidentifiable entity")

	// ErrMandatoryField marks an extraction attempt that failed to recover a
	// field the record cannot exist without (a series title, for example).
	ErrMandatoryField = errors.New("mandatory field missing")

	// ErrMapping marks a season mapping table that does not cover the
	// requested local episode: either the season is unmapped or the derived
	// source number falls outside the validated range.
	ErrMapping = errors.New("mapping inconsistency")

	// ErrStructural marks an unexpected failure while scanning markup. It is
	// caught at the smallest enclosing unit and downgraded to a field or
	// entity miss.
	ErrStructural = errors.New("structural parse failure")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Reportable reports whether the error describes a best-effort outcome the
// caller should surface as diagnostics rather than abort on. Mapping
// inconsistencies, unidentifiable entities, and structural parse failures all
// leave the overall process in a usable state.
func Reportable(err error) bool {
	switch {
	case errors.Is(err, ErrMapping),
		errors.Is(err, ErrUnidentified),
		errors.Is(err, ErrMandatoryField),
		errors.Is(err, ErrStructural):
		return true
	default:
		return false
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
