package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// BusinessError is an expected domain outcome carried as a value, not a
// system failure. The code is what clients branch on.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// ConfigError flags invalid facility or appointment-type setup: bad
// timezone, close <= open, break outside the open window. Not retryable;
// surfaced to administrators rather than end users.
type ConfigError struct {
	Code   string
	Detail string
}

func (e ConfigError) Error() string {
	if e.Detail == "" {
		return e.Code
	}
	return e.Code + ": " + e.Detail
}

func ErrConfig(code, detail string) error {
	return ConfigError{Code: code, Detail: detail}
}

func IsConfig(err error) bool {
	var ce ConfigError
	return errors.As(err, &ce)
}

// ErrLockTimeout means the admission lock could not be acquired within the
// bounded wait. Transient contention: the caller may retry.
var ErrLockTimeout = errors.New("admission_lock_timeout")

// IsExclusionConflict detects a Postgres exclusion-constraint violation
// (SQLSTATE 23P01) raised by overlapping booking ranges.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23P01"
}
