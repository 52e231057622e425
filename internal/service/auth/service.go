package auth

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/rndpresence/presence-backend-go/internal/config"
	"github.com/rndpresence/presence-backend-go/internal/domain/auth"
	"github.com/rndpresence/presence-backend-go/internal/domain/directory"
	"github.com/rndpresence/presence-backend-go/internal/pkg/jwt"
	"github.com/rndpresence/presence-backend-go/internal/pkg/ldap"
)

// The HR reporting account is synthetic; it does not exist in the staff
// directory so it carries a fixed employee number.
const hrEmployeeNumber = "HR01"

type AuthServiceImpl struct {
	jwtService    jwt.Service
	authenticator ldap.Authenticator
	directorySvc  directory.DirectoryService
	hr            config.HRConfig
}

func NewAuthService(
	jwtService jwt.Service,
	authenticator ldap.Authenticator,
	directorySvc directory.DirectoryService,
	hr config.HRConfig,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		jwtService:    jwtService,
		authenticator: authenticator,
		directorySvc:  directorySvc,
		hr:            hr,
	}
}

// LoginHR implements auth.AuthService.
func (s *AuthServiceImpl) LoginHR(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	if req.Username != s.hr.Username {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.hr.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	identity := auth.Identity{
		EmployeeNumber: hrEmployeeNumber,
		Username:       s.hr.Username,
		EmpClass:       auth.EmpClassHR,
	}
	return s.issueToken(identity)
}

// LoginPI implements auth.AuthService. The credential pair is validated by an
// LDAP bind; the directory then decides whether the caller actually owns
// staff, since the identity provider knows nothing about PI-ship.
func (s *AuthServiceImpl) LoginPI(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	valid, err := s.authenticator.Authenticate(req.Username, req.Password)
	if err != nil {
		slog.Error("Identity provider error", "username", req.Username, "error", err)
		return auth.LoginResponse{}, auth.ErrIdentityProviderOffline
	}
	if !valid {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	staff, err := s.directorySvc.StaffForPI(ctx, req.Username)
	if err != nil {
		return auth.LoginResponse{}, err
	}
	if len(staff) == 0 {
		return auth.LoginResponse{}, auth.ErrNotAPrincipalInvestigator
	}

	identity := auth.Identity{
		Username: req.Username,
		EmpClass: "PI",
	}
	return s.issueToken(identity)
}

func (s *AuthServiceImpl) issueToken(identity auth.Identity) (auth.LoginResponse, error) {
	token, expiresAt, err := s.jwtService.GenerateAccessToken(identity)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to issue access token: %w", err)
	}

	return auth.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Identity:  identity,
	}, nil
}
