package pg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Domain-specific PostgreSQL errors. Check with errors.Is for retry logic
// and user-facing messages.
var (
	ErrEmptyConnectionString   = errors.New("empty postgres connection string")
	ErrFailedToParseConnString = errors.New("failed to parse postgres connection string")
	ErrFailedToOpenDB          = errors.New("failed to open postgres connection pool")
	ErrNotReady                = errors.New("postgres did not become ready within the given time period")
	ErrHealthcheckFailed       = errors.New("postgres healthcheck failed")
	ErrMigrationFailed         = errors.New("postgres migration failed")
	ErrDuplicate               = errors.New("record already exists")
)

// PostgreSQL error codes this module branches on.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// IsUniqueViolation reports whether err is a unique constraint violation,
// e.g. a duplicate (workspace_id, event_key) template.
func IsUniqueViolation(err error) bool {
	return hasPgCode(err, codeUniqueViolation)
}

// IsForeignKeyViolation reports whether err is a foreign key violation.
func IsForeignKeyViolation(err error) bool {
	return hasPgCode(err, codeForeignKeyViolation)
}

func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
