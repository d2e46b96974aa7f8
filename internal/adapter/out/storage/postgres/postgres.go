package postgres

import (
	"errors"

	"docadmin/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

var ErrBuildingQuery = errors.New("error building sql-query")

// mapError translates driver errors into service errors.
func mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return service.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return service.ErrAlreadyExists
	}
	return err
}
