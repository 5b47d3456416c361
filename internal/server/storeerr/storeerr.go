// Package storeerr translates errors raised by the store into response
// categories. Classification is a pure function of (code, message); Translate
// only extracts those two values from an error chain.
package storeerr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/joseotaviopc/api-ari/internal/common"
	"gorm.io/gorm"
)

// Code is the closed set of store error codes the translator understands.
type Code int

const (
	CodeUnknown Code = iota
	CodeUniqueViolation
	CodeValueTooLong
	CodeConstraintViolation
	CodeRecordNotFound
)

// Category is the response category a store error resolves to.
type Category int

const (
	// Unhandled errors are delegated to the generic error path.
	Unhandled Category = iota
	Conflict
	BadRequest
	NotFound
)

func (c Category) String() string {
	switch c {
	case Conflict:
		return "conflict"
	case BadRequest:
		return "bad request"
	case NotFound:
		return "not found"
	default:
		return "unhandled"
	}
}

// Status returns the HTTP status for the category, or 0 for Unhandled.
func (c Category) Status() int {
	switch c {
	case Conflict:
		return http.StatusConflict
	case BadRequest:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	default:
		return 0
	}
}

// Result is the outcome of classifying a store error.
type Result struct {
	Category Category
	Message  string
}

// Handled reports whether the result maps to a specific response; when false
// the caller must fall back to its default error handling.
func (r Result) Handled() bool {
	return r.Category != Unhandled
}

// Classify maps a store error code and message to a Result. It never fails.
func Classify(code Code, message string) Result {
	switch code {
	case CodeUniqueViolation:
		return Result{Category: Conflict, Message: Sanitize(message)}
	case CodeValueTooLong, CodeConstraintViolation:
		return Result{Category: BadRequest, Message: Sanitize(message)}
	case CodeRecordNotFound:
		return Result{Category: NotFound, Message: Sanitize(message)}
	default:
		return Result{Category: Unhandled, Message: Sanitize(message)}
	}
}

// Sanitize removes newline characters so messages stay on a single line.
// Nothing else is altered.
func Sanitize(message string) string {
	return strings.ReplaceAll(message, "\n", "")
}

// CodeOf extracts the store error code from err's chain.
func CodeOf(err error) Code {
	if err == nil {
		return CodeUnknown
	}
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, common.ErrorNotFound) {
		return CodeRecordNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return CodeUnknown
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return CodeUniqueViolation
	case pgerrcode.StringDataRightTruncationDataException:
		return CodeValueTooLong
	case pgerrcode.NotNullViolation, pgerrcode.ForeignKeyViolation, pgerrcode.CheckViolation:
		return CodeConstraintViolation
	default:
		return CodeUnknown
	}
}

// messageOf prefers the driver's primary message over the wrapped chain, so
// no "db error:" prefixes or SQL fragments leak into responses.
func messageOf(err error) string {
	if err == nil {
		return ""
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Message
	}
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, common.ErrorNotFound) {
		return "record not found"
	}
	return err.Error()
}

// Translate classifies err. A nil error is Unhandled with an empty message.
func Translate(err error) Result {
	return Classify(CodeOf(err), messageOf(err))
}
