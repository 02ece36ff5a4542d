package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/betauni/betauni/internal/domain"
	internal_jwt "github.com/betauni/betauni/internal/jwt"
	"github.com/betauni/betauni/internal/middleware"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeValidator struct {
	principal *domain.Principal
}

func (f *fakeValidator) Validate(token string, expected internal_jwt.Audience) (*domain.Principal, error) {
	return f.principal, nil
}

// meRouter wires /me behind the real auth middleware so the handler sees the
// principal the same way it does in production.
func meRouter(h *Handler, principal *domain.Principal) *mux.Router {
	router := mux.NewRouter()
	authMw := middleware.NewAuth(&fakeValidator{principal: principal})
	sub := router.NewRoute().Subrouter()
	sub.Use(authMw.Either())
	sub.HandleFunc("/me", h.Me).Methods("GET")
	sub.HandleFunc("/me", h.UpdateProfile).Methods("PATCH")
	return router
}

func authedRequest(t *testing.T, method, target string, body []byte) *http.Request {
	t.Helper()
	req := createRequest(t, method, target, body)
	req.AddCookie(&http.Cookie{Name: middleware.AccessTokenCookie, Value: "token"})
	return req
}

func TestMeHandler(t *testing.T) {
	t.Run("student", func(t *testing.T) {
		h := &Handler{cfg: testConfig(), auth: &MockAuthService{
			MockStudentInfo: func(id string) (domain.AccountInfo, error) {
				assert.Equal(t, "123456", id)
				return domain.AccountInfo{ID: id, Name: "Ada", DepartmentName: "Informatics"}, nil
			},
		}}
		router := meRouter(h, &domain.Principal{ID: "123456", Role: domain.RoleStudent})

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, authedRequest(t, http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"departmentName":"Informatics"`)
	})

	t.Run("professor", func(t *testing.T) {
		called := false
		h := &Handler{cfg: testConfig(), auth: &MockAuthService{
			MockProfessorInfo: func(id string) (domain.AccountInfo, error) {
				called = true
				assert.Equal(t, "ABCDEF", id)
				return domain.AccountInfo{ID: id}, nil
			},
		}}
		router := meRouter(h, &domain.Principal{ID: "ABCDEF", Role: domain.RoleProfessor})

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, authedRequest(t, http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, called)
	})
}

func TestUpdateProfileHandler(t *testing.T) {
	var gotUpdate domain.ProfileUpdate
	h := &Handler{cfg: testConfig(), auth: &MockAuthService{
		MockUpdateStudentProfile: func(id string, update domain.ProfileUpdate) error {
			gotUpdate = update
			return nil
		},
	}}
	router := meRouter(h, &domain.Principal{ID: "123456", Role: domain.RoleStudent})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, authedRequest(t, http.MethodPatch, "/me", []byte(`{"phoneNumber": "555123"}`)))

	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, gotUpdate.PhoneNumber)
	assert.Equal(t, "555123", *gotUpdate.PhoneNumber)
	assert.Nil(t, gotUpdate.Password)
}
