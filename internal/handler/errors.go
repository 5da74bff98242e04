package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"educonnect/backend/internal/middleware"
	"educonnect/backend/internal/registry"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// statusFor maps a registry error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, registry.ErrAlreadyExists),
		errors.Is(err, registry.ErrDuplicateRequest):
		return http.StatusConflict
	case errors.Is(err, registry.ErrRecipientNotFound),
		errors.Is(err, registry.ErrNoSuchRequest),
		errors.Is(err, registry.ErrIndexOutOfRange):
		return http.StatusNotFound
	case errors.Is(err, registry.ErrNotRegistered):
		return http.StatusForbidden
	case errors.Is(err, registry.ErrSelfRequest):
		return http.StatusBadRequest
	case errors.Is(err, registry.ErrMissingIdentity):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as {"error": reason}. Storage failures are logged
// with the request ID and reported without internals.
func respondError(c *gin.Context, err error, internalMessage string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("[API] %s %s (request %s): %v", c.Request.Method, c.FullPath(), middleware.GetRequestID(c), err)
		c.JSON(status, gin.H{"error": internalMessage})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// bindingError renders a gin binding failure as "<Field>: <tag>" for the first
// failing field, or a generic message for malformed JSON.
func bindingError(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		first := validationErrs[0]
		return fmt.Sprintf("%s: %s", first.Field(), first.Tag())
	}
	return "Invalid request body"
}

func respondBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": bindingError(err)})
}
