package handler

import (
	"net/http"

	"github.com/betauni/betauni/internal/utils"
	"github.com/gorilla/mux"
)

func (h *Handler) GetDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.catalog.Departments()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, departments)
}

func (h *Handler) GetDepartment(w http.ResponseWriter, r *http.Request) {
	department, err := h.catalog.Department(mux.Vars(r)["department"])
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, department)
}

func (h *Handler) GetClassrooms(w http.ResponseWriter, r *http.Request) {
	classrooms, err := h.catalog.Classrooms()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, classrooms)
}
