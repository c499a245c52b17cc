package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/AnikDM/SchoolManagement/pkg/httpx"
)

// APIError is the wire shape for every failure this service reports:
// {"error": code, "error_description": text}. It implements error so
// handlers can both return and write it.
type APIError struct {
	StatusCode  int    `json:"-"`
	Code        string `json:"error"`
	Description string `json:"error_description"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to the response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(e)
}

var (
	// ErrInvalidRequest covers malformed bodies and failed field validation.
	// Reported to the caller, never retried.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        "invalid_request",
		Description: "the request is malformed or missing required parameters",
	}

	// ErrUsernameTaken is the registration conflict: the caller must choose a
	// different identity.
	ErrUsernameTaken = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        "username_taken",
		Description: "an account with that username already exists",
	}

	// ErrInvalidCredentials deliberately covers both unknown-username and
	// wrong-password so responses do not reveal which accounts exist.
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        "invalid_credentials",
		Description: "invalid username or password",
	}

	// ErrServerError covers unexpected failures, including the
	// data-integrity case of a teacher account missing its profile.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        "server_error",
		Description: "internal server error",
	}
)

// validationError builds an invalid_request error carrying the offending
// detail.
func validationError(detail string) *APIError {
	return &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        "invalid_request",
		Description: detail,
	}
}
