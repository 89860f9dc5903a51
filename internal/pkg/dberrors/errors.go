package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes the repositories care about
const (
	codeStringDataRightTruncation = "22001"
	codeNotNullViolation          = "23502"
)

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// IsValueTooLong reports a value wider than its column (e.g. varchar(255))
func IsValueTooLong(err error) bool {
	return hasCode(err, codeStringDataRightTruncation)
}

// IsNotNullViolation reports a NULL written to a NOT NULL column
func IsNotNullViolation(err error) bool {
	return hasCode(err, codeNotNullViolation)
}

// IsConstraintError reports any data error that a corrected request could avoid
func IsConstraintError(err error) bool {
	return IsValueTooLong(err) || IsNotNullViolation(err)
}
