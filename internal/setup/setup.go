package setup

import (
	"github.com/betauni/betauni/internal/config"
	"github.com/betauni/betauni/internal/handler"
	"github.com/betauni/betauni/internal/identifier"
	"github.com/betauni/betauni/internal/jwt"
	"github.com/betauni/betauni/internal/middleware"
	"github.com/betauni/betauni/internal/service"
	"github.com/betauni/betauni/internal/storage/pg"
)

// Dependencies holds every initialized component the router needs.
type Dependencies struct {
	Config         *config.Config
	Storage        *pg.Storage
	Jwt            *jwt.Service
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
}

// SetupDependencies wires storage, services and handlers together.
func SetupDependencies(cfg *config.Config, migrationsPath string) (*Dependencies, error) {
	storage, err := pg.New(cfg, migrationsPath)
	if err != nil {
		return nil, err
	}

	jwtService, err := jwt.New(jwt.Settings{
		Secret:            cfg.Private.JwtSecret,
		Issuer:            cfg.Public.Jwt.Issuer,
		StudentAudience:   cfg.Public.Jwt.StudentAudience,
		ProfessorAudience: cfg.Public.Jwt.ProfessorAudience,
		TTL:               cfg.JwtTTL(),
	})
	if err != nil {
		storage.Cleanup()
		return nil, err
	}

	auth := service.NewAuth(storage, &identifier.Generator{}, jwtService)
	catalog := service.NewCatalog(storage)
	enrollment := service.NewEnrollment(storage)
	assignment := service.NewAssignment(storage)

	h := handler.New(auth, catalog, enrollment, assignment, cfg, storage)

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Jwt:            jwtService,
		Handler:        h,
		AuthMiddleware: middleware.NewAuth(jwtService),
	}, nil
}
