package config

import (
	"os"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Public: Public{
			Jwt: Jwt{
				Issuer:            "betauni",
				StudentAudience:   "students",
				ProfessorAudience: "professors",
				ExpirationMinutes: 60,
			},
		},
		Private: Private{
			JwtSecret: "0123456789abcdef0123456789abcdef",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing secret", func(c *Config) { c.Private.JwtSecret = "" }, true},
		{"short secret", func(c *Config) { c.Private.JwtSecret = "too-short" }, true},
		{"missing issuer", func(c *Config) { c.Public.Jwt.Issuer = "" }, true},
		{"missing student audience", func(c *Config) { c.Public.Jwt.StudentAudience = "" }, true},
		{"missing professor audience", func(c *Config) { c.Public.Jwt.ProfessorAudience = "" }, true},
		{"equal audiences", func(c *Config) { c.Public.Jwt.ProfessorAudience = "students" }, true},
		{"zero expiration", func(c *Config) { c.Public.Jwt.ExpirationMinutes = 0 }, true},
		{"negative expiration", func(c *Config) { c.Public.Jwt.ExpirationMinutes = -5 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJwtTTL(t *testing.T) {
	cfg := validConfig()
	cfg.Public.Jwt.ExpirationMinutes = 90
	assert.Equal(t, 90*time.Minute, cfg.JwtTTL())
}

const publicYaml = `
pg:
  host: "localhost"
  port: 5432
  user: "postgres"
  dbname: "betauni"
jwt:
  issuer: "betauni"
  student_audience: "students"
  professor_audience: "professors"
  expiration_minutes: 60
`

const privateYaml = `
pg_password: "filepass"
jwt_secret: "file-secret-file-secret-file-secret!"
`

func writeConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(path.Join(dir, "public.yaml"), []byte(publicYaml), 0o644))
	require.NoError(t, os.WriteFile(path.Join(dir, "private.yaml"), []byte(privateYaml), 0o644))
	return dir
}

func TestMustLoad(t *testing.T) {
	dir := writeConfigDir(t)

	cfg := MustLoad(dir)
	assert.Equal(t, "betauni", cfg.Public.Jwt.Issuer)
	assert.Equal(t, "filepass", cfg.Private.PgPassword)
	assert.Equal(t, "file-secret-file-secret-file-secret!", cfg.Private.JwtSecret)
}

func TestMustLoadEnvOverride(t *testing.T) {
	dir := writeConfigDir(t)

	t.Setenv("BETAUNI_JWT_SECRET", "env-secret-env-secret-env-secret!!!!")
	t.Setenv("BETAUNI_PG_PASSWORD", "envpass")

	cfg := MustLoad(dir)
	assert.Equal(t, "env-secret-env-secret-env-secret!!!!", cfg.Private.JwtSecret)
	assert.Equal(t, "envpass", cfg.Private.PgPassword)
}

func TestMustLoadMissingFolderPanics(t *testing.T) {
	assert.Panics(t, func() { MustLoad("/nonexistent/config/folder") })
}
