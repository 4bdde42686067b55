package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/korpor/fundledger/internal/domain"
	"github.com/korpor/fundledger/pkg/utils"
)

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
	RoleKey   ContextKey = "role"
)

// Middleware validates bearer tokens and stores the caller's identity in the
// request context. The token's role claim goes through domain.ParseRole, so a
// missing or unknown role degrades to investor rather than failing the request.
type Middleware struct {
	jwtService JWTServiceInterface
}

func NewMiddleware(jwtService JWTServiceInterface) *Middleware {
	return &Middleware{jwtService: jwtService}
}

func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, RoleKey, domain.ParseRole(claims.Role))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin gates a subtree behind the admin role.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, _ := r.Context().Value(RoleKey).(domain.Role)
		if role != domain.RoleAdmin {
			utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}
