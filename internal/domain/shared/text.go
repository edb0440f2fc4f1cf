package shared

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lower folds s the way stored search columns such as name_lower are folded.
// Casers are stateful, so one is built per call.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
