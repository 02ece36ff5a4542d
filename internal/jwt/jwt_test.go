package jwt

import (
	"testing"
	"time"

	"github.com/betauni/betauni/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings() Settings {
	return Settings{
		Secret:            "test-secret-test-secret-test-secret!",
		Issuer:            "betauni-test",
		StudentAudience:   "students",
		ProfessorAudience: "professors",
		TTL:               time.Hour,
	}
}

func mustService(t *testing.T, settings Settings) *Service {
	t.Helper()
	s, err := New(settings)
	require.NoError(t, err)
	return s
}

func TestNewRejectsBadSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"empty secret", func(s *Settings) { s.Secret = "" }},
		{"empty issuer", func(s *Settings) { s.Issuer = "" }},
		{"empty student audience", func(s *Settings) { s.StudentAudience = "" }},
		{"empty professor audience", func(s *Settings) { s.ProfessorAudience = "" }},
		{"equal audiences", func(s *Settings) { s.ProfessorAudience = s.StudentAudience }},
		{"zero ttl", func(s *Settings) { s.TTL = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := testSettings()
			tt.mutate(&settings)
			_, err := New(settings)
			assert.Error(t, err)
		})
	}
}

func TestTokenRoundTrip(t *testing.T) {
	s := mustService(t, testSettings())

	token, err := s.NewToken("123456", domain.RoleStudent, "stud@uni.test")
	require.NoError(t, err)

	principal, err := s.Validate(token, AudienceStudent)
	require.NoError(t, err)
	assert.Equal(t, "123456", principal.ID)
	assert.Equal(t, domain.RoleStudent, principal.Role)
	assert.Equal(t, "stud@uni.test", principal.Email)
}

func TestAudienceSeparation(t *testing.T) {
	s := mustService(t, testSettings())

	studentToken, err := s.NewToken("123456", domain.RoleStudent, "stud@uni.test")
	require.NoError(t, err)
	professorToken, err := s.NewToken("ABCDEF", domain.RoleProfessor, "prof@uni.test")
	require.NoError(t, err)

	tests := []struct {
		name     string
		token    string
		expected Audience
		wantErr  error
	}{
		{"student token on student endpoint", studentToken, AudienceStudent, nil},
		{"student token on professor endpoint", studentToken, AudienceProfessor, ErrWrongAudience},
		{"professor token on professor endpoint", professorToken, AudienceProfessor, nil},
		{"professor token on student endpoint", professorToken, AudienceStudent, ErrWrongAudience},
		{"student token on shared endpoint", studentToken, AudienceAny, nil},
		{"professor token on shared endpoint", professorToken, AudienceAny, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Validate(tt.token, tt.expected)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWrongSecretRejected(t *testing.T) {
	s := mustService(t, testSettings())
	token, err := s.NewToken("123456", domain.RoleStudent, "stud@uni.test")
	require.NoError(t, err)

	other := testSettings()
	other.Secret = "another-secret-another-secret-anothe"
	validator := mustService(t, other)

	_, err = validator.Validate(token, AudienceStudent)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestWrongIssuerRejected(t *testing.T) {
	minter := testSettings()
	minter.Issuer = "someone-else"
	s := mustService(t, minter)
	token, err := s.NewToken("123456", domain.RoleStudent, "stud@uni.test")
	require.NoError(t, err)

	validator := mustService(t, testSettings())
	_, err = validator.Validate(token, AudienceStudent)
	assert.ErrorIs(t, err, ErrWrongIssuer)
}

func TestExpiredTokenRejected(t *testing.T) {
	settings := testSettings()
	settings.TTL = time.Millisecond
	s := mustService(t, settings)

	token, err := s.NewToken("123456", domain.RoleStudent, "stud@uni.test")
	require.NoError(t, err)

	// Past the ttl but inside the skew window: still valid.
	time.Sleep(10 * time.Millisecond)
	_, err = s.Validate(token, AudienceStudent)
	assert.NoError(t, err)

	// Past the skew window: rejected.
	time.Sleep(clockSkew)
	_, err = s.Validate(token, AudienceStudent)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestGarbageTokenRejected(t *testing.T) {
	s := mustService(t, testSettings())

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := s.Validate(token, AudienceAny)
		assert.ErrorIs(t, err, ErrMalformed)
	}
}

func TestTokensCarryUniqueIDs(t *testing.T) {
	s := mustService(t, testSettings())

	first, err := s.NewToken("123456", domain.RoleStudent, "stud@uni.test")
	require.NoError(t, err)
	second, err := s.NewToken("123456", domain.RoleStudent, "stud@uni.test")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
