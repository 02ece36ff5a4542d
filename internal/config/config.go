package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Pg   PgPublic `yaml:"pg"`
	Jwt  Jwt      `yaml:"jwt"`
	Http Http     `yaml:"http"`
	Log  Log      `yaml:"log"`
}

type PgPublic struct {
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	User   string `yaml:"user"`
	Dbname string `yaml:"dbname"`
}

// Jwt is the token issuance/validation surface. The two audiences keep
// student and professor tokens structurally apart; the signing secret lives
// in the private config.
type Jwt struct {
	Issuer            string `yaml:"issuer"`
	StudentAudience   string `yaml:"student_audience"`
	ProfessorAudience string `yaml:"professor_audience"`
	ExpirationMinutes int    `yaml:"expiration_minutes"`
}

type Http struct {
	CorsAllowedOrigins []string `yaml:"cors_allowed_origins"`
	SecureCookies      bool     `yaml:"secure_cookies"`
}

type Log struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

type Private struct {
	PgPassword string `yaml:"pg_password"`
	JwtSecret  string `yaml:"jwt_secret"`
}

func (c *Config) JwtTTL() time.Duration {
	return time.Duration(c.Public.Jwt.ExpirationMinutes) * time.Minute
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder. Secrets may
// also arrive via environment (BETAUNI_JWT_SECRET, BETAUNI_PG_PASSWORD),
// which wins over the file. A missing signing secret is fatal: the process
// must not start without one.
func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	if v := os.Getenv("BETAUNI_JWT_SECRET"); v != "" {
		private.JwtSecret = v
	}
	if v := os.Getenv("BETAUNI_PG_PASSWORD"); v != "" {
		private.PgPassword = v
	}

	cfg := &Config{public, private}
	if err := cfg.Validate(); err != nil {
		panic(err.Error())
	}
	return cfg
}

func (c *Config) Validate() error {
	if c.Private.JwtSecret == "" {
		return &configError{"jwt secret is not configured"}
	}
	if len(c.Private.JwtSecret) < 32 {
		return &configError{"jwt secret must be at least 32 bytes"}
	}
	if c.Public.Jwt.Issuer == "" {
		return &configError{"jwt issuer is not configured"}
	}
	if c.Public.Jwt.StudentAudience == "" || c.Public.Jwt.ProfessorAudience == "" {
		return &configError{"jwt audiences are not configured"}
	}
	if c.Public.Jwt.StudentAudience == c.Public.Jwt.ProfessorAudience {
		return &configError{"student and professor audiences must differ"}
	}
	if c.Public.Jwt.ExpirationMinutes <= 0 {
		return &configError{"jwt expiration must be positive"}
	}
	return nil
}

type configError struct {
	msg string
}

func (e *configError) Error() string { return "config: " + e.msg }
