package router

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/betauni/betauni/internal/middleware/metrics"
	"github.com/betauni/betauni/internal/setup"
)

// New creates and configures the mux router with all the routes.
func New(deps *setup.Dependencies) *mux.Router {
	r := mux.NewRouter()

	// Enable gzip compression for all responses
	r.Use(handlers.CompressHandler)

	r.Use(handlers.CORS(
		handlers.AllowedOrigins(deps.Config.Public.Http.CorsAllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		handlers.AllowCredentials(),
	))

	r.Use(metrics.Middleware)

	// Wildcard OPTIONS handler to avoid 404s for preflight requests
	r.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	h := deps.Handler
	authMw := deps.AuthMiddleware

	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/ready", h.Ready).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	v1 := r.PathPrefix("/v1").Subrouter()

	// Auth routes, no token required
	auth := v1.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/students/register", h.RegisterStudent).Methods("POST")
	auth.HandleFunc("/students/login", h.LoginStudent).Methods("POST")
	auth.HandleFunc("/professors/register", h.RegisterProfessor).Methods("POST")
	auth.HandleFunc("/professors/login", h.LoginProfessor).Methods("POST")
	auth.HandleFunc("/logout", h.Logout).Methods("POST")

	// Routes open to both account kinds
	account := v1.NewRoute().Subrouter()
	account.Use(authMw.Either())
	account.HandleFunc("/me", h.Me).Methods("GET")
	account.HandleFunc("/me", h.UpdateProfile).Methods("PATCH")
	account.HandleFunc("/departments", h.GetDepartments).Methods("GET")
	account.HandleFunc("/departments/{department}", h.GetDepartment).Methods("GET")
	account.HandleFunc("/classrooms", h.GetClassrooms).Methods("GET")
	account.HandleFunc("/courses", h.GetCourses).Methods("GET")
	account.HandleFunc("/courses/{course}", h.GetCourse).Methods("GET")
	account.HandleFunc("/exams", h.GetExams).Methods("GET")
	account.HandleFunc("/exams/{exam:[0-9]+}", h.GetExam).Methods("GET")
	account.HandleFunc("/labs", h.GetLaboratories).Methods("GET")
	account.HandleFunc("/labs/{lab:[0-9]+}", h.GetLaboratory).Methods("GET")

	// Student routes
	student := v1.PathPrefix("/student").Subrouter()
	student.Use(authMw.StudentOnly())
	student.HandleFunc("/exams", h.GetMyExams).Methods("GET")
	student.HandleFunc("/exams", h.RegisterToExam).Methods("POST")
	student.HandleFunc("/exams/{registration:[0-9]+}", h.DropExamRegistration).Methods("DELETE")
	student.HandleFunc("/courses", h.GetMyCourses).Methods("GET")
	student.HandleFunc("/courses", h.AddCourseToPlan).Methods("POST")
	student.HandleFunc("/courses/{entry:[0-9]+}", h.DropCourseFromPlan).Methods("DELETE")
	student.HandleFunc("/labs", h.GetMyLabs).Methods("GET")
	student.HandleFunc("/labs", h.AddLabToPlan).Methods("POST")
	student.HandleFunc("/labs/{entry:[0-9]+}", h.DropLabFromPlan).Methods("DELETE")

	// Professor routes
	professor := v1.PathPrefix("/professor").Subrouter()
	professor.Use(authMw.ProfessorOnly())
	professor.HandleFunc("/courses", h.CreateCourse).Methods("POST")
	professor.HandleFunc("/courses/{course}", h.UpdateCourse).Methods("PUT")
	professor.HandleFunc("/courses/{course}", h.DeleteCourse).Methods("DELETE")
	professor.HandleFunc("/exams", h.CreateExam).Methods("POST")
	professor.HandleFunc("/exams/{exam:[0-9]+}", h.UpdateExam).Methods("PUT")
	professor.HandleFunc("/exams/{exam:[0-9]+}", h.DeleteExam).Methods("DELETE")
	professor.HandleFunc("/labs", h.CreateLaboratory).Methods("POST")
	professor.HandleFunc("/labs/{lab:[0-9]+}", h.UpdateLaboratory).Methods("PUT")
	professor.HandleFunc("/labs/{lab:[0-9]+}", h.DeleteLaboratory).Methods("DELETE")

	professor.HandleFunc("/my/labs", h.GetMyTaughtLabs).Methods("GET")
	professor.HandleFunc("/my/labs", h.TakeLab).Methods("POST")
	professor.HandleFunc("/my/labs/{entry:[0-9]+}", h.DropTaughtLab).Methods("DELETE")
	professor.HandleFunc("/my/assignments", h.GetMyAssignments).Methods("GET")
	professor.HandleFunc("/my/assignments", h.AssignCourseExam).Methods("POST")
	professor.HandleFunc("/my/assignments/{entry:[0-9]+}", h.DropAssignment).Methods("DELETE")
	professor.HandleFunc("/my/exams/future", h.GetMyFutureExams).Methods("GET")

	professor.HandleFunc("/departments/{department}/courses_with_exams", h.GetCoursesWithExams).Methods("GET")
	professor.HandleFunc("/rosters/courses/{course}", h.GetCourseRoster).Methods("GET")
	professor.HandleFunc("/rosters/exams/{exam:[0-9]+}", h.GetExamRoster).Methods("GET")
	professor.HandleFunc("/rosters/labs/{lab:[0-9]+}", h.GetLabRoster).Methods("GET")

	return r
}
