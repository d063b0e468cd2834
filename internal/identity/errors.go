package identity

import "strings"

// isUniqueViolation checks if the error is a unique constraint violation on
// the named constraint
func isUniqueViolation(err error, constraintName string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") &&
		strings.Contains(msg, constraintName)
}
