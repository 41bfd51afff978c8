package storage

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a referenced entity or artifact does not exist.
var ErrNotFound = errors.New("not found")

// ConstraintError reports a uniqueness or foreign-key violation. It is never
// retried here; resubmission is the client's call.
type ConstraintError struct {
	Constraint string
	Message    string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("constraint violation (%s): %s", e.Constraint, e.Message)
}

// ValidationError reports malformed or disallowed input, e.g. an unsupported
// upload content type or a mismatched property/image pairing.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ArtifactError reports a failed read/write/delete against the artifact store.
type ArtifactError struct {
	Op  string
	Key string
	Err error
}

func (e *ArtifactError) Error() string {
	return fmt.Sprintf("artifact %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *ArtifactError) Unwrap() error {
	return e.Err
}

// PartialFailureError reports a delete whose database rows are gone but whose
// artifacts could not all be removed. Keys lists the artifacts left behind.
type PartialFailureError struct {
	Keys []string
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("rows deleted but %d artifact(s) could not be removed: %s",
		len(e.Keys), strings.Join(e.Keys, ", "))
}

// translateErr maps gorm errors onto the store's taxonomy. The string checks
// back up drivers that predate gorm's error translation (the sqlite driver
// used in tests among them).
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey),
		strings.Contains(err.Error(), "UNIQUE constraint failed"),
		strings.Contains(err.Error(), "duplicate key value"):
		return &ConstraintError{Constraint: "unique", Message: err.Error()}
	case errors.Is(err, gorm.ErrForeignKeyViolated),
		strings.Contains(err.Error(), "FOREIGN KEY constraint failed"),
		strings.Contains(err.Error(), "violates foreign key constraint"):
		return &ConstraintError{Constraint: "foreign_key", Message: err.Error()}
	}
	return err
}
