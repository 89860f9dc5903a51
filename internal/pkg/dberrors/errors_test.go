package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	tooLong := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "22001"})
	notNull := &pgconn.PgError{Code: "23502"}
	dup := &pgconn.PgError{Code: "23505"}

	assert.True(t, IsValueTooLong(tooLong))
	assert.True(t, IsConstraintError(tooLong))
	assert.True(t, IsNotNullViolation(notNull))
	assert.True(t, IsConstraintError(notNull))
	assert.False(t, IsConstraintError(errors.New("connection refused")))
	assert.False(t, IsConstraintError(dup))
}
