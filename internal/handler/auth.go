package handler

import (
	"net/http"

	"github.com/betauni/betauni/internal/domain"
	"github.com/betauni/betauni/internal/middleware"
	"github.com/betauni/betauni/internal/utils"
)

type registrationRequest struct {
	Name         string      `validate:"required" json:"name"`
	Surname      string      `validate:"required" json:"surname"`
	BirthDate    domain.Date `validate:"required" json:"birthDate"`
	Email        string      `validate:"required,email" json:"email"`
	Password     string      `validate:"required" json:"password"`
	PhoneNumber  string      `json:"phoneNumber"`
	DepartmentID string      `validate:"required" json:"departmentId"`
}

func (r registrationRequest) toDomain() domain.Registration {
	return domain.Registration{
		Name:         r.Name,
		Surname:      r.Surname,
		BirthDate:    r.BirthDate,
		Email:        r.Email,
		Password:     r.Password,
		PhoneNumber:  r.PhoneNumber,
		DepartmentID: r.DepartmentID,
	}
}

type credentials struct {
	Email    string `validate:"required" json:"email"`
	Password string `validate:"required" json:"password"`
}

type profileUpdateRequest struct {
	PhoneNumber *string `json:"phoneNumber"`
	Password    *string `json:"password"`
}

func (h *Handler) RegisterStudent(w http.ResponseWriter, r *http.Request) {
	var body registrationRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	student, err := h.auth.RegisterStudent(body.toDomain())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, student)
}

func (h *Handler) RegisterProfessor(w http.ResponseWriter, r *http.Request) {
	var body registrationRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	professor, err := h.auth.RegisterProfessor(body.toDomain())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, professor)
}

func (h *Handler) LoginStudent(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, h.auth.LoginStudent)
}

func (h *Handler) LoginProfessor(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, h.auth.LoginProfessor)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request, loginFn func(email, password string) (string, error)) {
	var creds credentials
	if err := utils.DecodeValidate(r.Body, &creds); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	accessToken, err := loginFn(creds.Email, creds.Password)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     middleware.AccessTokenCookie,
		Value:    accessToken,
		MaxAge:   int(h.cfg.JwtTTL().Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Public.Http.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, map[string]string{"accessToken": accessToken})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     middleware.AccessTokenCookie,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Public.Http.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	w.WriteHeader(http.StatusOK)
}

// Me returns the calling account's profile, whichever role it has.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r)

	var info domain.AccountInfo
	var err error
	switch principal.Role {
	case domain.RoleStudent:
		info, err = h.auth.StudentInfo(principal.ID)
	case domain.RoleProfessor:
		info, err = h.auth.ProfessorInfo(principal.ID)
	default:
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, info)
}

// UpdateProfile changes the calling account's phone number and/or password.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r)

	var body profileUpdateRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	update := domain.ProfileUpdate{PhoneNumber: body.PhoneNumber, Password: body.Password}

	var err error
	switch principal.Role {
	case domain.RoleStudent:
		err = h.auth.UpdateStudentProfile(principal.ID, update)
	case domain.RoleProfessor:
		err = h.auth.UpdateProfessorProfile(principal.ID, update)
	default:
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
