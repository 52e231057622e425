package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials        = errors.New("invalid credentials")
	ErrInvalidToken              = errors.New("invalid or expired token")
	ErrIdentityProviderOffline   = errors.New("identity provider is unreachable")
	ErrNotAPrincipalInvestigator = errors.New("user has no staff in the directory")
)
