package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// validate is shared across handlers; validator instances cache struct
// metadata and are safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// RegisterRequest is the JSON body for POST /v1/auth/register.
type RegisterRequest struct {
	Username    string `json:"username"     validate:"required,min=2,max=32"`
	DisplayName string `json:"display_name" validate:"max=64"`
	Password    string `json:"password"     validate:"required,min=6,max=128"`
	EmployeeID  *int64 `json:"employee_id,omitempty" validate:"omitempty,gt=0"`
}

// RegisterResponse confirms the created identity.
type RegisterResponse struct {
	AccountID   int64  `json:"account_id"`
	Username    string `json:"username"`
	Role        string `json:"role"`
	ProfileID   int64  `json:"profile_id,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
}

// LoginRequest is the JSON body for POST /v1/auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the session token plus the identity summary the
// presentation layer caches for dashboard routing.
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int    `json:"expires_in"`

	AccountID   int64  `json:"account_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	ProfileID   int64  `json:"profile_id,omitempty"`
	EmployeeID  *int64 `json:"employee_id,omitempty"`
}

// WhoamiResponse echoes the validated claims back to the caller.
type WhoamiResponse struct {
	AccountID   int64  `json:"account_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	ExpiresAt   int64  `json:"expires_at"`
}

// AccountSummary is one row of the admin account listing. Password hashes
// never leave the service.
type AccountSummary struct {
	AccountID int64  `json:"account_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// HealthResponse is shared by the liveness and readiness probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// decodeJSON parses and validates a JSON request body into dst. Unknown
// fields are rejected so schema drift fails loudly.
func decodeJSON(r *http.Request, dst any) *APIError {
	dec := json.NewDecoder(io.LimitReader(r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return ErrInvalidRequest
	}

	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			f := fieldErrs[0]
			return validationError("invalid field: " + f.Field())
		}
		return ErrInvalidRequest
	}
	return nil
}
