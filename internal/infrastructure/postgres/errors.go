package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oksasatya/go-lightbnb/internal/domain/repository"
)

// SQLSTATE codes this package maps to domain errors.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// translate wraps err with op and, when it recognizes the cause, a domain
// sentinel so callers can use errors.Is.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == uniqueViolation && pgErr.TableName == "users":
			return fmt.Errorf("%s: %w: %w", op, repository.ErrDuplicateEmail, err)
		case pgErr.Code == foreignKeyViolation && pgErr.ConstraintName == "properties_owner_id_fkey":
			return fmt.Errorf("%s: %w: %w", op, repository.ErrUnknownOwner, err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
