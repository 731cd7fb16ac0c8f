package repository

import "strings"

// isUniqueViolation reports whether err is a SQLite uniqueness constraint
// failure. modernc.org/sqlite exposes these only through the error text.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
