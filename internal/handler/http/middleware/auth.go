package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sunfocus/erp-backend-go/internal/domain/auth"
	"github.com/sunfocus/erp-backend-go/internal/domain/user"
	"github.com/sunfocus/erp-backend-go/internal/handler/http/response"
	"github.com/sunfocus/erp-backend-go/internal/pkg/jwt"
)

// AuthRequired accepts only verified access tokens and stores the caller's
// auth.Identity in the request context. Must run after jwtauth.Verifier.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, _, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}

		if token == nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		claims, err := token.AsMap(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}
		tokenType, ok := claims["type"].(string)
		if tokenType != jwt.TokenTypeAccess || !ok {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		employeeID, _ := claims["employee_id"].(string)
		email, _ := claims["email"].(string)
		role, _ := claims["role"].(string)
		if employeeID == "" || !user.Role(role).IsValid() {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		ctx := auth.WithIdentity(r.Context(), auth.Identity{
			EmployeeID: employeeID,
			Email:      email,
			Role:       user.Role(role),
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
