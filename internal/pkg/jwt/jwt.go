package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/rndpresence/presence-backend-go/internal/domain/auth"
)

type Service interface {
	GenerateAccessToken(identity auth.Identity) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	IdentityFromClaims(claims map[string]interface{}) (auth.Identity, error)
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(identity auth.Identity) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"employee_number": identity.EmployeeNumber,
		"username":        identity.Username,
		"emp_class":       identity.EmpClass,
		"type":            "access",
		"exp":             expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// IdentityFromClaims rebuilds the caller identity from decoded token claims.
func (j *JWTService) IdentityFromClaims(claims map[string]interface{}) (auth.Identity, error) {
	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return auth.Identity{}, auth.ErrInvalidToken
	}
	empClass, ok := claims["emp_class"].(string)
	if !ok || empClass == "" {
		return auth.Identity{}, auth.ErrInvalidToken
	}
	employeeNumber, _ := claims["employee_number"].(string)

	return auth.Identity{
		EmployeeNumber: employeeNumber,
		Username:       username,
		EmpClass:       empClass,
	}, nil
}
