package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/betauni/betauni/internal/domain"
	internal_jwt "github.com/betauni/betauni/internal/jwt"
	"github.com/betauni/betauni/internal/logger"
)

// AccessTokenCookie is the cookie the login handlers set and this middleware
// reads. When both the cookie and an Authorization header are present, only
// the cookie is consulted.
const AccessTokenCookie = "access_token"

// Key to store the principal in the request context
type key int

const principalKey key = 0

// TokenValidator is the part of the jwt service the middleware needs.
type TokenValidator interface {
	Validate(token string, expected internal_jwt.Audience) (*domain.Principal, error)
}

// Auth gates requests on a valid session token and puts the resulting
// principal into the request context.
type Auth struct {
	jwt TokenValidator
}

func NewAuth(jwt TokenValidator) *Auth {
	return &Auth{jwt: jwt}
}

// StudentOnly returns middleware accepting only student-audience tokens.
func (a *Auth) StudentOnly() func(http.Handler) http.Handler {
	return a.require(internal_jwt.AudienceStudent)
}

// ProfessorOnly returns middleware accepting only professor-audience tokens.
func (a *Auth) ProfessorOnly() func(http.Handler) http.Handler {
	return a.require(internal_jwt.AudienceProfessor)
}

// Either returns middleware accepting tokens of both audiences.
func (a *Auth) Either() func(http.Handler) http.Handler {
	return a.require(internal_jwt.AudienceAny)
}

func (a *Auth) require(expected internal_jwt.Audience) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := a.extractPrincipal(r, expected)
			if err != nil {
				// Never tell the client which check failed.
				logger.Log.Debug("rejected request token", "error", err)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), principalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractPrincipal pulls the token out of the request and validates it.
// Cookie first; Authorization header only when no cookie is present.
func (a *Auth) extractPrincipal(r *http.Request, expected internal_jwt.Audience) (*domain.Principal, error) {
	var tokenString string
	if cookie, err := r.Cookie(AccessTokenCookie); err == nil {
		tokenString = cookie.Value
	} else if token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		tokenString = token
	}

	if tokenString == "" {
		return nil, errNoToken
	}

	return a.jwt.Validate(tokenString, expected)
}

var errNoToken = errorString("no token")

type errorString string

func (e errorString) Error() string { return string(e) }

// GetPrincipal retrieves the authenticated principal from the context.
// Returns nil outside the auth middleware.
func GetPrincipal(r *http.Request) *domain.Principal {
	principal, ok := r.Context().Value(principalKey).(*domain.Principal)
	if !ok {
		return nil
	}
	return principal
}
