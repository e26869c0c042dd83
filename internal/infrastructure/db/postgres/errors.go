package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/baechuer/real-time-ressys/services/resource-service/internal/domain"
)

const uniqueViolation = "23505"

// constraintFields maps unique constraint names to the field they guard.
var constraintFields = map[string]string{
	"users_email_key": "email",
}

// mapWriteErr turns a unique violation from either driver into a DuplicateError.
func mapWriteErr(err error) error {
	if err == nil {
		return nil
	}

	var code, constraint string
	var pqErr *pq.Error
	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &pqErr):
		code, constraint = string(pqErr.Code), pqErr.Constraint
	case errors.As(err, &pgErr):
		code, constraint = pgErr.Code, pgErr.ConstraintName
	default:
		return err
	}
	if code != uniqueViolation {
		return err
	}

	field, ok := constraintFields[constraint]
	if !ok {
		field = constraint
	}
	return &domain.DuplicateError{Field: field}
}
