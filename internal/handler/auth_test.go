package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/betauni/betauni/internal/config"
	"github.com/betauni/betauni/internal/domain"
	internal_errors "github.com/betauni/betauni/internal/errors"
	"github.com/betauni/betauni/internal/middleware"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockAuthService struct {
	MockRegisterStudent        func(reg domain.Registration) (domain.Student, error)
	MockRegisterProfessor      func(reg domain.Registration) (domain.Professor, error)
	MockLoginStudent           func(email, password string) (string, error)
	MockLoginProfessor         func(email, password string) (string, error)
	MockStudentInfo            func(id string) (domain.AccountInfo, error)
	MockProfessorInfo          func(id string) (domain.AccountInfo, error)
	MockUpdateStudentProfile   func(id string, update domain.ProfileUpdate) error
	MockUpdateProfessorProfile func(id string, update domain.ProfileUpdate) error
}

func (m *MockAuthService) RegisterStudent(reg domain.Registration) (domain.Student, error) {
	if m.MockRegisterStudent != nil {
		return m.MockRegisterStudent(reg)
	}
	return domain.Student{}, nil
}

func (m *MockAuthService) RegisterProfessor(reg domain.Registration) (domain.Professor, error) {
	if m.MockRegisterProfessor != nil {
		return m.MockRegisterProfessor(reg)
	}
	return domain.Professor{}, nil
}

func (m *MockAuthService) LoginStudent(email, password string) (string, error) {
	if m.MockLoginStudent != nil {
		return m.MockLoginStudent(email, password)
	}
	return "", nil
}

func (m *MockAuthService) LoginProfessor(email, password string) (string, error) {
	if m.MockLoginProfessor != nil {
		return m.MockLoginProfessor(email, password)
	}
	return "", nil
}

func (m *MockAuthService) StudentInfo(id string) (domain.AccountInfo, error) {
	if m.MockStudentInfo != nil {
		return m.MockStudentInfo(id)
	}
	return domain.AccountInfo{}, nil
}

func (m *MockAuthService) ProfessorInfo(id string) (domain.AccountInfo, error) {
	if m.MockProfessorInfo != nil {
		return m.MockProfessorInfo(id)
	}
	return domain.AccountInfo{}, nil
}

func (m *MockAuthService) UpdateStudentProfile(id string, update domain.ProfileUpdate) error {
	if m.MockUpdateStudentProfile != nil {
		return m.MockUpdateStudentProfile(id, update)
	}
	return nil
}

func (m *MockAuthService) UpdateProfessorProfile(id string, update domain.ProfileUpdate) error {
	if m.MockUpdateProfessorProfile != nil {
		return m.MockUpdateProfessorProfile(id, update)
	}
	return nil
}

func createRequest(t *testing.T, method, target string, body []byte) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func testConfig() *config.Config {
	return &config.Config{
		Public: config.Public{
			Jwt: config.Jwt{ExpirationMinutes: 60},
		},
	}
}

func TestLoginStudentHandler(t *testing.T) {
	h := &Handler{cfg: testConfig()}

	route := "/v1/auth/students/login"
	router := mux.NewRouter()
	router.HandleFunc(route, h.LoginStudent).Methods("POST")
	requestBody := []byte(`{"email": "ada@uni.test", "password": "secret"}`)

	t.Run("successful login sets cookie", func(t *testing.T) {
		h.auth = &MockAuthService{
			MockLoginStudent: func(email, password string) (string, error) {
				assert.Equal(t, "ada@uni.test", email)
				return "signed-token", nil
			},
		}

		req := createRequest(t, http.MethodPost, route, requestBody)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		cookies := rr.Result().Cookies()
		require.Len(t, cookies, 1)
		cookie := cookies[0]
		assert.Equal(t, middleware.AccessTokenCookie, cookie.Name)
		assert.Equal(t, "signed-token", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.JSONEq(t, `{"accessToken": "signed-token"}`, rr.Body.String())
	})

	t.Run("invalid credentials", func(t *testing.T) {
		h.auth = &MockAuthService{
			MockLoginStudent: func(email, password string) (string, error) {
				return "", &internal_errors.ErrorWithStatusCode{Message: "Invalid credentials", StatusCode: http.StatusUnauthorized}
			},
		}

		req := createRequest(t, http.MethodPost, route, requestBody)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Empty(t, rr.Result().Cookies())
	})

	t.Run("invalid request body", func(t *testing.T) {
		h.auth = &MockAuthService{}

		req := createRequest(t, http.MethodPost, route, []byte(`{invalid json::}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		h.auth = &MockAuthService{}

		req := createRequest(t, http.MethodPost, route, []byte(`{"email": "ada@uni.test"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRegisterStudentHandler(t *testing.T) {
	h := &Handler{cfg: testConfig()}

	route := "/v1/auth/students/register"
	router := mux.NewRouter()
	router.HandleFunc(route, h.RegisterStudent).Methods("POST")

	requestBody := []byte(`{
		"name": "Ada",
		"surname": "Lovelace",
		"birthDate": "2000-01-15",
		"email": "ada@uni.test",
		"password": "secret",
		"departmentId": "INF1"
	}`)

	t.Run("successful registration", func(t *testing.T) {
		h.auth = &MockAuthService{
			MockRegisterStudent: func(reg domain.Registration) (domain.Student, error) {
				assert.Equal(t, "Ada", reg.Name)
				assert.Equal(t, "2000-01-15", reg.BirthDate.String())
				return domain.Student{ID: "123456", Name: reg.Name, Email: reg.Email}, nil
			},
		}

		req := createRequest(t, http.MethodPost, route, requestBody)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"studId":"123456"`)
		assert.NotContains(t, rr.Body.String(), "password")
	})

	t.Run("email taken", func(t *testing.T) {
		h.auth = &MockAuthService{
			MockRegisterStudent: func(reg domain.Registration) (domain.Student, error) {
				return domain.Student{}, &internal_errors.ErrorWithStatusCode{Message: "Email already registered", StatusCode: http.StatusConflict}
			},
		}

		req := createRequest(t, http.MethodPost, route, requestBody)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("missing required fields", func(t *testing.T) {
		h.auth = &MockAuthService{}

		req := createRequest(t, http.MethodPost, route, []byte(`{"name": "Ada"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestLogoutHandler(t *testing.T) {
	h := &Handler{cfg: testConfig()}

	router := mux.NewRouter()
	router.HandleFunc("/v1/auth/logout", h.Logout).Methods("POST")

	req := createRequest(t, http.MethodPost, "/v1/auth/logout", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.AccessTokenCookie, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
