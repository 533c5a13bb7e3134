package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/AlexCL0320/backend-banco-angeles/internal/infrastructure/cache"
	"github.com/AlexCL0320/backend-banco-angeles/pkg/jwt"
	"github.com/AlexCL0320/backend-banco-angeles/pkg/requestctx"
	"github.com/AlexCL0320/backend-banco-angeles/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type AuthMiddleware struct {
	log        *logrus.Logger
	jwtService *jwt.JWTService
	tokenStore cache.TokenStore
}

func NewAuthMiddleware(log *logrus.Logger, jwtService *jwt.JWTService, tokenStore cache.TokenStore) *AuthMiddleware {
	return &AuthMiddleware{
		log:        log,
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

type authFailure struct {
	status  int
	message string
}

// principal resolves the bearer token of r. A nil principal with a nil
// failure means the request carries no Authorization header.
func (m *AuthMiddleware) principal(r *http.Request) (*requestctx.Principal, *authFailure) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, nil
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, &authFailure{http.StatusUnauthorized, "Invalid authorization header format"}
	}

	claims, err := m.jwtService.ValidateToken(parts[1])
	if err != nil {
		return nil, &authFailure{http.StatusUnauthorized, "Invalid or expired token"}
	}
	if claims.TokenType != jwt.AccessToken {
		return nil, &authFailure{http.StatusUnauthorized, "Invalid token type"}
	}

	// Check the token has not been revoked
	exists, err := m.tokenStore.Exists(r.Context(), jwt.AccessToken, claims.UserID, claims.TokenID)
	if err != nil {
		m.log.Errorf("Failed to validate token: %+v", err)
		return nil, &authFailure{http.StatusInternalServerError, "Failed to validate token"}
	}
	if !exists {
		return nil, &authFailure{http.StatusUnauthorized, "Token has been revoked"}
	}

	return &requestctx.Principal{
		UserID:  claims.UserID,
		Email:   claims.Email,
		RoleID:  claims.RoleID,
		IsStaff: claims.IsStaff,
		TokenID: claims.TokenID,
	}, nil
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, failure := m.principal(r)
		if failure != nil {
			response.Error(w, failure.status, failure.message, nil)
			return
		}
		if p == nil {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		next.ServeHTTP(w, r.WithContext(requestctx.WithPrincipal(r.Context(), *p)))
	})
}

// OptionalAuthenticate attaches the principal when a valid token is sent and
// lets anonymous requests through. A bad token is still rejected.
func (m *AuthMiddleware) OptionalAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, failure := m.principal(r)
		if failure != nil {
			response.Error(w, failure.status, failure.message, nil)
			return
		}
		if p != nil {
			r = r.WithContext(requestctx.WithPrincipal(r.Context(), *p))
		}

		next.ServeHTTP(w, r)
	})
}

// RequireStaff rejects callers whose token does not carry the staff flag.
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requestctx.UserID(r.Context()); !ok {
			response.Unauthorized(w, "Unauthorized")
			return
		}
		if !requestctx.IsStaff(r.Context()) {
			response.Forbidden(w, "You don't have permission to access this resource")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireOwnerOrStaff lets staff through, and otherwise only the user whose
// id is the {id} route variable.
func RequireOwnerOrStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requestctx.UserID(r.Context())
		if !ok {
			response.Unauthorized(w, "Unauthorized")
			return
		}
		if requestctx.IsStaff(r.Context()) {
			next.ServeHTTP(w, r)
			return
		}

		target, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
		if err != nil || target != userID {
			response.Forbidden(w, "You don't have permission to access this resource")
			return
		}

		next.ServeHTTP(w, r)
	})
}
