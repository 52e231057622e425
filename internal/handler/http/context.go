package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/rndpresence/presence-backend-go/internal/domain/auth"
)

// callerIdentity rebuilds the authenticated identity from the verified token
// claims on the request context.
func callerIdentity(r *http.Request) (auth.Identity, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return auth.Identity{}, auth.ErrInvalidToken
	}

	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return auth.Identity{}, auth.ErrInvalidToken
	}
	empClass, _ := claims["emp_class"].(string)
	employeeNumber, _ := claims["employee_number"].(string)

	return auth.Identity{
		EmployeeNumber: employeeNumber,
		Username:       username,
		EmpClass:       empClass,
	}, nil
}
