package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/joseotaviopc/api-ari/internal/common"
	"github.com/joseotaviopc/api-ari/internal/logging"
	"github.com/joseotaviopc/api-ari/internal/server/storeerr"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	StatusCode int               `json:"statusCode" example:"404"`
	Message    string            `json:"message" example:"not found"`
	Errors     map[string]string `json:"errors,omitempty"`
}

var errMalformedBody = errors.New("malformed request body")

// respondError is the single point where errors become responses. Service
// sentinels map directly; anything else goes through the store error
// translator, and what it cannot classify is logged and hidden behind a 500.
func respondError(c *gin.Context, log logging.Logger, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for field, fieldErr := range verrs {
			fields[field] = fieldErr.Error()
		}
		writeError(c, http.StatusBadRequest, "validation failed", fields)
		return
	}

	switch {
	case errors.Is(err, errMalformedBody):
		writeError(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		writeError(c, http.StatusUnauthorized, "unauthorized", nil)
	case errors.Is(err, common.ErrorNotFound):
		writeError(c, http.StatusNotFound, storeerr.Sanitize(err.Error()), nil)
	case errors.Is(err, common.ErrorConflict):
		writeError(c, http.StatusConflict, storeerr.Sanitize(err.Error()), nil)
	case errors.Is(err, common.ErrorBadRequest):
		writeError(c, http.StatusBadRequest, storeerr.Sanitize(err.Error()), nil)
	default:
		res := storeerr.Translate(err)
		if res.Handled() {
			writeError(c, res.Category.Status(), res.Message, nil)
			return
		}
		log.Error(c.Request.Context(), "unhandled error",
			"error", err,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"request_id", c.GetString(requestIDKey),
		)
		writeError(c, http.StatusInternalServerError, "Internal server error", nil)
	}
}

func writeError(c *gin.Context, status int, message string, fields map[string]string) {
	c.AbortWithStatusJSON(status, ErrorResponse{StatusCode: status, Message: message, Errors: fields})
}

// bindJSON decodes the body into req and runs its validation rules.
func bindJSON(c *gin.Context, req validation.Validatable) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return errMalformedBody
	}
	return req.Validate()
}

// pathID parses a positive integer path parameter.
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, validation.Errors{name: errors.New("must be a positive integer")}
	}
	return id, nil
}
