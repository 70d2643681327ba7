package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrAccessDenied is returned when a request carries no bearer token.
	ErrAccessDenied = errors.New("access denied")
	// ErrInvalidToken is returned when a bearer token is malformed, forged or expired.
	ErrInvalidToken = errors.New("invalid token")
	// ErrAdminRequired is returned when an authenticated user lacks the ADMIN role.
	ErrAdminRequired = errors.New("admin access required")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when registering with an email that already exists.
	ErrEmailTaken = errors.New("user already exists")
	// ErrCategoryExists is returned when creating a category whose name is taken.
	ErrCategoryExists = errors.New("category already exists")
	// ErrCategoryNotFound is returned when a referenced category does not exist.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrNewsNotFound is returned when a news article does not exist.
	ErrNewsNotFound = errors.New("news not found")
	// ErrThumbnailMissing is returned when news creation lacks a thumbnail file.
	ErrThumbnailMissing = errors.New("thumbnail image is required")
	// ErrThumbnailTooLarge is returned when an uploaded thumbnail exceeds the size cap.
	ErrThumbnailTooLarge = errors.New("thumbnail image is too large")
)

// HTTPError carries the status and message a failure maps to on the wire.
// Only the message is ever exposed to callers.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// MapError maps domain errors to HTTP errors at the single response boundary.
// Anything unrecognized becomes a generic 500 whose cause stays server-side.
func MapError(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrEmailTaken),
		errors.Is(err, ErrCategoryExists),
		errors.Is(err, ErrThumbnailMissing),
		errors.Is(err, ErrThumbnailTooLarge):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrAccessDenied), errors.Is(err, ErrAdminRequired):
		return NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, ErrNewsNotFound), errors.Is(err, ErrCategoryNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
