package handler

import (
	"net/http"

	"github.com/betauni/betauni/internal/domain"
	"github.com/betauni/betauni/internal/utils"
)

type laboratoryRequest struct {
	Name         string      `validate:"required" json:"name"`
	Attendance   string      `json:"attendance"`
	DepartmentID string      `validate:"required" json:"departmentId"`
	StartDate    domain.Date `validate:"required" json:"startDate"`
	EndDate      domain.Date `validate:"required" json:"endDate"`
}

func (l laboratoryRequest) toDomain() domain.Laboratory {
	return domain.Laboratory{
		Name:         l.Name,
		Attendance:   l.Attendance,
		DepartmentID: l.DepartmentID,
		StartDate:    l.StartDate,
		EndDate:      l.EndDate,
	}
}

func (h *Handler) GetLaboratories(w http.ResponseWriter, r *http.Request) {
	var (
		labs []domain.Laboratory
		err  error
	)
	if department := r.URL.Query().Get("department"); department != "" {
		labs, err = h.catalog.LaboratoriesByDepartment(department)
	} else {
		labs, err = h.catalog.Laboratories()
	}
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, labs)
}

func (h *Handler) GetLaboratory(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "lab")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	lab, err := h.catalog.Laboratory(id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, lab)
}

func (h *Handler) CreateLaboratory(w http.ResponseWriter, r *http.Request) {
	var body laboratoryRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	lab, err := h.catalog.CreateLaboratory(body.toDomain())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, lab)
}

func (h *Handler) UpdateLaboratory(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "lab")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var body laboratoryRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	lab := body.toDomain()
	lab.ID = id
	if err := h.catalog.UpdateLaboratory(lab); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) DeleteLaboratory(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "lab")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.catalog.DeleteLaboratory(id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
