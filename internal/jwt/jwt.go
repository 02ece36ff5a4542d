// Package jwt mints and validates the HS256 session tokens that carry an
// authenticated account between requests.
//
// Student and professor tokens share one signing secret but live in disjoint
// audiences, so a token minted for one role is rejected by a validator
// expecting the other even if its role claim were forged. AudienceAny accepts
// either, for endpoints open to both account kinds.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/betauni/betauni/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Audience selects which token audiences a validation accepts.
type Audience int

const (
	AudienceStudent Audience = iota
	AudienceProfessor
	AudienceAny
)

// Validation failures. Handlers must collapse all of these into a plain 401;
// the distinction exists for logs and tests only.
var (
	ErrMalformed     = errors.New("jwt: malformed token")
	ErrBadSignature  = errors.New("jwt: invalid signature")
	ErrExpired       = errors.New("jwt: token outside its validity window")
	ErrWrongIssuer   = errors.New("jwt: unexpected issuer")
	ErrWrongAudience = errors.New("jwt: audience mismatch")
	ErrMissingClaims = errors.New("jwt: required claims missing")
)

// clockSkew is the tolerance applied to exp/iat checks.
const clockSkew = 2 * time.Second

// Settings is the immutable token configuration, built once at startup and
// injected into the service. No ambient lookup.
type Settings struct {
	Secret            string
	Issuer            string
	StudentAudience   string
	ProfessorAudience string
	TTL               time.Duration
}

// Claims is the claim set carried by every session token.
type Claims struct {
	Role  domain.Role `json:"role"`
	Email string      `json:"email"`
	jwt.RegisteredClaims
}

type Service struct {
	settings Settings
}

// New validates the settings and returns a ready service. A missing secret is
// a configuration error; callers treat it as fatal at startup.
func New(settings Settings) (*Service, error) {
	if settings.Secret == "" {
		return nil, errors.New("jwt: signing secret is not configured")
	}
	if settings.Issuer == "" {
		return nil, errors.New("jwt: issuer is not configured")
	}
	if settings.StudentAudience == "" || settings.ProfessorAudience == "" ||
		settings.StudentAudience == settings.ProfessorAudience {
		return nil, errors.New("jwt: audiences must be set and distinct")
	}
	if settings.TTL <= 0 {
		return nil, errors.New("jwt: ttl must be positive")
	}
	return &Service{settings}, nil
}

// NewToken mints a signed token for the given account. The audience is
// selected by role.
func (s *Service) NewToken(principalID string, role domain.Role, email string) (string, error) {
	if !role.Valid() {
		return "", fmt.Errorf("jwt: unknown role %q", role)
	}

	aud := s.settings.StudentAudience
	if role == domain.RoleProfessor {
		aud = s.settings.ProfessorAudience
	}

	now := time.Now()
	claims := Claims{
		Role:  role,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principalID,
			Issuer:    s.settings.Issuer,
			Audience:  jwt.ClaimStrings{aud},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.settings.TTL)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.settings.Secret))
	if err != nil {
		return "", fmt.Errorf("jwt: signing token: %w", err)
	}
	return signed, nil
}

// Validate checks signature, issuer, lifetime (with clock skew) and audience,
// then extracts the principal. expected selects which audiences pass.
func (s *Service) Validate(tokenString string, expected Audience) (*domain.Principal, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.settings.Secret), nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(s.settings.Issuer),
		jwt.WithLeeway(clockSkew),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return nil, mapParseError(err)
	}
	if !token.Valid {
		return nil, ErrMalformed
	}

	if err := s.checkAudience(claims.Audience, expected); err != nil {
		return nil, err
	}

	if claims.Subject == "" || !claims.Role.Valid() {
		return nil, ErrMissingClaims
	}

	return &domain.Principal{
		ID:    claims.Subject,
		Role:  claims.Role,
		Email: claims.Email,
	}, nil
}

func (s *Service) checkAudience(aud jwt.ClaimStrings, expected Audience) error {
	var allowed []string
	switch expected {
	case AudienceStudent:
		allowed = []string{s.settings.StudentAudience}
	case AudienceProfessor:
		allowed = []string{s.settings.ProfessorAudience}
	case AudienceAny:
		allowed = []string{s.settings.StudentAudience, s.settings.ProfessorAudience}
	default:
		return ErrWrongAudience
	}

	for _, got := range aud {
		for _, want := range allowed {
			if got == want {
				return nil
			}
		}
	}
	return ErrWrongAudience
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrBadSignature
	case errors.Is(err, jwt.ErrTokenExpired),
		errors.Is(err, jwt.ErrTokenNotValidYet),
		errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return ErrWrongIssuer
	default:
		return ErrMalformed
	}
}
