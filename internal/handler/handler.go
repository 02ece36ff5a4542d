package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/betauni/betauni/internal/config"
	"github.com/betauni/betauni/internal/logger"
	"github.com/betauni/betauni/internal/service"
	"github.com/gorilla/mux"
)

type Handler struct {
	auth       service.AuthService
	catalog    service.CatalogService
	enrollment service.EnrollmentService
	assignment service.AssignmentService
	cfg        *config.Config
	pinger     Pinger
}

// Pinger is the storage health probe used by the readiness endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

func New(
	auth service.AuthService,
	catalog service.CatalogService,
	enrollment service.EnrollmentService,
	assignment service.AssignmentService,
	cfg *config.Config,
	pinger Pinger,
) *Handler {
	return &Handler{
		auth:       auth,
		catalog:    catalog,
		enrollment: enrollment,
		assignment: assignment,
		cfg:        cfg,
		pinger:     pinger,
	}
}

func writeJSON(w http.ResponseWriter, response any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

func writeJSONStatus(w http.ResponseWriter, status int, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

// pathInt64 reads a numeric path variable registered on the route.
func pathInt64(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return v, nil
}
