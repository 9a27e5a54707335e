package db

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Kind classifies a failed data access operation.
type Kind uint8

const (
	// KindInsertionFailed marks a failed single-statement write.
	KindInsertionFailed Kind = iota + 1
	// KindOperationFailed marks a failed multi-statement write or read.
	KindOperationFailed
)

func (k Kind) String() string {
	switch k {
	case KindInsertionFailed:
		return "insertion failed"
	case KindOperationFailed:
		return "operation failed"
	default:
		return "unknown failure"
	}
}

// Error carries the kind of failure, the operation that failed and the
// underlying database error.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// InsertionFailed wraps err as a KindInsertionFailed error. A nil err yields nil.
func InsertionFailed(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindInsertionFailed, Op: op, Err: err}
}

// OperationFailed wraps err as a KindOperationFailed error. A nil err yields nil.
func OperationFailed(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindOperationFailed, Op: op, Err: err}
}

// IsKind reports whether err, or any error it wraps, is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

func IsInsertionFailed(err error) bool { return IsKind(err, KindInsertionFailed) }

func IsOperationFailed(err error) bool { return IsKind(err, KindOperationFailed) }

// SQLSTATE codes the handlers distinguish.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

func pgError(err error) *pgconn.PgError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr
	}
	return nil
}

// IsUniqueViolation reports whether err was caused by a unique or primary key constraint.
func IsUniqueViolation(err error) bool {
	pgErr := pgError(err)
	return pgErr != nil && pgErr.Code == codeUniqueViolation
}

// IsForeignKeyViolation reports whether err was caused by a foreign key constraint.
func IsForeignKeyViolation(err error) bool {
	pgErr := pgError(err)
	return pgErr != nil && pgErr.Code == codeForeignKeyViolation
}

// ConstraintName returns the violated constraint, or "" when err carries none.
func ConstraintName(err error) string {
	if pgErr := pgError(err); pgErr != nil {
		return pgErr.ConstraintName
	}
	return ""
}
