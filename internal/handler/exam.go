package handler

import (
	"net/http"

	"github.com/betauni/betauni/internal/domain"
	"github.com/betauni/betauni/internal/utils"
)

type examRequest struct {
	Name         string      `validate:"required" json:"name"`
	CFU          int         `validate:"required" json:"cfu"`
	Type         string      `validate:"required" json:"type"`
	Date         domain.Date `validate:"required" json:"date"`
	CourseID     string      `validate:"required" json:"courseId"`
	DepartmentID string      `validate:"required" json:"departmentId"`
}

func (e examRequest) toDomain() domain.Exam {
	return domain.Exam{
		Name:         e.Name,
		CFU:          e.CFU,
		Type:         e.Type,
		Date:         e.Date,
		CourseID:     e.CourseID,
		DepartmentID: e.DepartmentID,
	}
}

func (h *Handler) GetExams(w http.ResponseWriter, r *http.Request) {
	exams, err := h.catalog.ExamInfos()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, exams)
}

func (h *Handler) GetExam(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "exam")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	exam, err := h.catalog.Exam(id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, exam)
}

func (h *Handler) CreateExam(w http.ResponseWriter, r *http.Request) {
	var body examRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	exam, err := h.catalog.CreateExam(body.toDomain())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, exam)
}

func (h *Handler) UpdateExam(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "exam")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var body examRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	exam := body.toDomain()
	exam.ID = id
	if err := h.catalog.UpdateExam(exam); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) DeleteExam(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "exam")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.catalog.DeleteExam(id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
