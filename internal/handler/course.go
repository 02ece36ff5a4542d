package handler

import (
	"net/http"

	"github.com/betauni/betauni/internal/domain"
	"github.com/betauni/betauni/internal/utils"
	"github.com/gorilla/mux"
)

type courseRequest struct {
	ID           string      `validate:"required" json:"courseId"`
	Name         string      `validate:"required" json:"name"`
	DepartmentID string      `validate:"required" json:"departmentId"`
	StartDate    domain.Date `validate:"required" json:"startDate"`
	EndDate      domain.Date `validate:"required" json:"endDate"`
}

func (c courseRequest) toDomain() domain.Course {
	return domain.Course{
		ID:           c.ID,
		Name:         c.Name,
		DepartmentID: c.DepartmentID,
		StartDate:    c.StartDate,
		EndDate:      c.EndDate,
	}
}

func (h *Handler) GetCourses(w http.ResponseWriter, r *http.Request) {
	var (
		courses []domain.Course
		err     error
	)
	if department := r.URL.Query().Get("department"); department != "" {
		courses, err = h.catalog.CoursesByDepartment(department)
	} else {
		courses, err = h.catalog.Courses()
	}
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, courses)
}

func (h *Handler) GetCourse(w http.ResponseWriter, r *http.Request) {
	course, err := h.catalog.Course(mux.Vars(r)["course"])
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, course)
}

// GetCoursesWithExams is the professor catalog view: every course of a
// department with its scheduled exams attached.
func (h *Handler) GetCoursesWithExams(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalog.CoursesWithExams(mux.Vars(r)["department"])
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, result)
}

func (h *Handler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var body courseRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.catalog.CreateCourse(body.toDomain()); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	var body courseRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	course := body.toDomain()
	course.ID = mux.Vars(r)["course"]
	if err := h.catalog.UpdateCourse(course); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteCourse(mux.Vars(r)["course"]); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
