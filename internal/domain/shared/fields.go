// Package shared provides validation helpers shared across aggregates.
package shared

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"pulseboard/internal/shared/errors"
)

// FieldErrors collects field-level messages so one ValidationError can
// report every failing field.
type FieldErrors struct {
	messages []string
}

func (f *FieldErrors) Add(format string, args ...any) {
	f.messages = append(f.messages, fmt.Sprintf(format, args...))
}

// Required checks value is non-blank and at most max runes.
func (f *FieldErrors) Required(field, value string, max int) {
	if strings.TrimSpace(value) == "" {
		f.Add("%s is required", field)
		return
	}
	f.MaxLen(field, value, max)
}

func (f *FieldErrors) MaxLen(field, value string, max int) {
	if utf8.RuneCountInString(value) > max {
		f.Add("%s must be at most %d characters long", field, max)
	}
}

// OptionalURL accepts empty or an absolute http(s) URL of at most max runes.
func (f *FieldErrors) OptionalURL(field, value string, max int) {
	if value == "" {
		return
	}
	f.MaxLen(field, value, max)
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		f.Add("%s must be a valid URL", field)
	}
}

func (f *FieldErrors) MaxBytes(field string, data []byte, max int) {
	if len(data) > max {
		f.Add("%s must be at most %d bytes", field, max)
	}
}

// Err returns nil when nothing was collected.
func (f *FieldErrors) Err() error {
	if len(f.messages) == 0 {
		return nil
	}
	return errors.NewValidationError("Validation failed", strings.Join(f.messages, "; "))
}
