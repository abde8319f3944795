package utils

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

const mysqlDuplicateEntry = 1062

// IsDuplicateKey reports whether err is a unique-constraint violation, so
// handlers can answer "already exists" instead of a generic 500.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}
	// sqlite (used in tests) reports unique violations as plain errors
	return strings.Contains(strings.ToLower(err.Error()), "unique")
}
