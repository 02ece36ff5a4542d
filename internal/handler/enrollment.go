package handler

import (
	"net/http"

	"github.com/betauni/betauni/internal/middleware"
	"github.com/betauni/betauni/internal/utils"
)

// Student-only endpoints. The student id always comes from the token, never
// from the request, so an account can only act on its own rows.

type examRegistrationRequest struct {
	ExamID int64 `validate:"required" json:"examId"`
}

type studyPlanCourseRequest struct {
	CourseID string `validate:"required" json:"courseId"`
}

type studyPlanLabRequest struct {
	LabID int64 `validate:"required" json:"labId"`
}

func (h *Handler) RegisterToExam(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r)

	var body examRegistrationRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	reg, err := h.enrollment.RegisterToExam(principal.ID, body.ExamID)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, reg)
}

func (h *Handler) GetMyExams(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r)

	exams, err := h.enrollment.MyExams(principal.ID)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, exams)
}

func (h *Handler) DropExamRegistration(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r)

	id, err := pathInt64(r, "registration")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.enrollment.DropExamRegistration(principal.ID, id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) AddCourseToPlan(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r)

	var body studyPlanCourseRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	entry, err := h.enrollment.AddCourse(principal.ID, body.CourseID)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, entry)
}

func (h *Handler) GetMyCourses(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r)

	courses, err := h.enrollment.MyCourses(principal.ID)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, courses)
}

func (h *Handler) DropCourseFromPlan(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r)

	id, err := pathInt64(r, "entry")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.enrollment.DropCourse(principal.ID, id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) AddLabToPlan(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r)

	var body studyPlanLabRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	entry, err := h.enrollment.AddLab(principal.ID, body.LabID)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, entry)
}

func (h *Handler) GetMyLabs(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r)

	labs, err := h.enrollment.MyLabs(principal.ID)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, labs)
}

func (h *Handler) DropLabFromPlan(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r)

	id, err := pathInt64(r, "entry")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.enrollment.DropLab(principal.ID, id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
