package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/news-forum-api/internal/apperr"
)

// PostgreSQL error codes that indicate the client sent something the schema rejects
const (
	invalidTextRepresentationCode = "22P02"
	numericValueOutOfRangeCode    = "22003"
	characterNotInRepertoireCode  = "22021"
	notNullViolationCode          = "23502"
	foreignKeyViolationCode       = "23503"
	checkViolationCode            = "23514"
)

var clientFaultCodes = map[pq.ErrorCode]bool{
	invalidTextRepresentationCode: true,
	numericValueOutOfRangeCode:    true,
	characterNotInRepertoireCode:  true,
	notNullViolationCode:          true,
	foreignKeyViolationCode:       true,
	checkViolationCode:            true,
}

// IsClientFault reports whether err is a Postgres rejection caused by malformed
// or referentially invalid input rather than a server-side fault.
func IsClientFault(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && clientFaultCodes[pqErr.Code]
}

// IsForeignKeyViolation checks if err is a foreign key constraint violation
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolationCode
}

// MapError classifies a store error. Client faults become apperr.BadRequest,
// everything else is wrapped with the failing operation and left unclassified.
func MapError(err error, op string) error {
	if err == nil {
		return nil
	}
	if _, ok := apperr.From(err); ok {
		return err
	}
	if IsClientFault(err) {
		return apperr.BadRequest(fmt.Errorf("%s: %w", op, err))
	}
	return fmt.Errorf("%s: %w", op, err)
}
