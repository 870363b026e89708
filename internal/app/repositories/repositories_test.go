package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestJoinColumns(t *testing.T) {
	assert.Equal(t, "id, name, created_at", joinColumns([]string{"id", "name", "created_at"}))
	assert.Equal(t, "id", joinColumns([]string{"id"}))
	assert.Equal(t, "", joinColumns(nil))
}

func TestIsDuplicateKeyError(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	assert.True(t, isDuplicateKeyError(unique))
	assert.True(t, isDuplicateKeyError(fmt.Errorf("insert failed: %w", unique)))

	assert.False(t, isDuplicateKeyError(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isDuplicateKeyError(errors.New("plain error")))
	assert.False(t, isDuplicateKeyError(nil))
}

func TestDuplicateConstraint(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "students_student_id_key"}
	assert.Equal(t, "students_student_id_key", duplicateConstraint(unique))
	assert.Equal(t, "", duplicateConstraint(&pgconn.PgError{Code: "23503", ConstraintName: "fk"}))
	assert.Equal(t, "", duplicateConstraint(errors.New("plain error")))
}
