package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/rndpresence/presence-backend-go/internal/domain/auth"
	"github.com/rndpresence/presence-backend-go/internal/handler/http/response"
)

// HROnly restricts a route group to the HR reporting account.
func HROnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}

		empClass, ok := claims["emp_class"].(string)
		if !ok || empClass != auth.EmpClassHR {
			response.Forbidden(w, "HR access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// PIOnly restricts a route group to authenticated PIs.
func PIOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}

		empClass, ok := claims["emp_class"].(string)
		if !ok || empClass == auth.EmpClassHR {
			response.Forbidden(w, "PI access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
