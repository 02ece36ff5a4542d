package handler

import (
	"net/http"

	"github.com/betauni/betauni/internal/middleware"
	"github.com/betauni/betauni/internal/utils"
	"github.com/gorilla/mux"
)

// Professor-only endpoints. Like the student side, the professor id comes
// from the token.

type professorLabRequest struct {
	LabID int64 `validate:"required" json:"labId"`
}

type courseExamAssignmentRequest struct {
	CourseID string `validate:"required" json:"courseId"`
	ExamID   int64  `validate:"required" json:"examId"`
}

func (h *Handler) TakeLab(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r)

	var body professorLabRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	entry, err := h.assignment.TakeLab(principal.ID, body.LabID)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, entry)
}

func (h *Handler) GetMyTaughtLabs(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r)

	labs, err := h.assignment.MyLabs(principal.ID)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, labs)
}

func (h *Handler) DropTaughtLab(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r)

	id, err := pathInt64(r, "entry")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.assignment.DropLab(principal.ID, id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) AssignCourseExam(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r)

	var body courseExamAssignmentRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	entry, err := h.assignment.AssignCourseExam(principal.ID, body.CourseID, body.ExamID)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, entry)
}

func (h *Handler) GetMyAssignments(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r)

	assignments, err := h.assignment.MyAssignments(principal.ID)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, assignments)
}

func (h *Handler) DropAssignment(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r)

	id, err := pathInt64(r, "entry")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.assignment.DropAssignment(principal.ID, id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// GetMyFutureExams lists the calling professor's assigned exams that have not
// happened yet.
func (h *Handler) GetMyFutureExams(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r)

	exams, err := h.assignment.FutureExams(principal.ID)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, exams)
}

func (h *Handler) GetCourseRoster(w http.ResponseWriter, r *http.Request) {
	roster, err := h.assignment.StudentsByCourse(mux.Vars(r)["course"])
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, roster)
}

func (h *Handler) GetExamRoster(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "exam")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	roster, err := h.assignment.StudentsByExam(id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, roster)
}

func (h *Handler) GetLabRoster(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "lab")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	roster, err := h.assignment.StudentsByLab(id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, roster)
}
