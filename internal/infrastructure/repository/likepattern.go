package repository

import (
	"strings"

	"pulseboard/internal/domain/shared"
)

// likeEscape is the LIKE escape character. '!' needs no quoting in MySQL,
// PostgreSQL or SQLite string literals.
const likeEscape = "!"

var likeReplacer = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// containsPattern builds a case-folded substring pattern for LIKE ... ESCAPE '!'.
// It folds with the same caser as name_lower. LOWER() on the SQLite driver
// folds ASCII only, so non-ASCII description matches there are case-sensitive.
func containsPattern(q string) string {
	return "%" + likeReplacer.Replace(shared.Lower(strings.TrimSpace(q))) + "%"
}
