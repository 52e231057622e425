package auth

import (
	"context"

	"github.com/rndpresence/presence-backend-go/internal/pkg/validator"
)

// Identity is the authenticated caller as carried in token claims.
type Identity struct {
	EmployeeNumber string `json:"employeeNumber"`
	Username       string `json:"username"`
	EmpClass       string `json:"empClass"`
}

// HR callers carry this emp class; everything else is treated as a PI.
const EmpClassHR = "HR"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	Token     string   `json:"token"`
	ExpiresAt int64    `json:"expiresAt"`
	Identity  Identity `json:"identity"`
}

// AuthService authenticates callers and issues access tokens.
type AuthService interface {
	// LoginHR verifies the configured HR credential pair
	LoginHR(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// LoginPI binds against the identity provider, then confirms the caller
	// owns staff in the directory
	LoginPI(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
