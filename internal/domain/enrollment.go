package domain

// Enrollment rows link accounts to catalog entities. All carry a surrogate id
// so single registrations can be dropped without touching the rest.

type ExamRegistration struct {
	ID               int64  `json:"id"`
	StudentID        string `json:"studId"`
	ExamID           int64  `json:"examId"`
	CourseID         string `json:"courseId"`
	DepartmentID     string `json:"departmentId"`
	RegistrationDate Date   `json:"registrationDate"`
}

type StudentCourse struct {
	ID           int64  `json:"id"`
	StudentID    string `json:"studId"`
	CourseID     string `json:"courseId"`
	DepartmentID string `json:"departmentId"`
}

type StudentLab struct {
	ID           int64  `json:"id"`
	StudentID    string `json:"studId"`
	LabID        int64  `json:"labId"`
	DepartmentID string `json:"departmentId"`
}

type ProfessorLab struct {
	ID           int64  `json:"id"`
	ProfessorID  string `json:"profId"`
	LabID        int64  `json:"labId"`
	DepartmentID string `json:"departmentId"`
}

// ProfCourseExam assigns a professor to a course/exam pair.
type ProfCourseExam struct {
	ID           int64  `json:"id"`
	ProfessorID  string `json:"profId"`
	CourseID     string `json:"courseId"`
	ExamID       int64  `json:"examId"`
	DepartmentID string `json:"departmentId"`
}

// RosterEntry is one student in a professor's course/exam/lab roster.
type RosterEntry struct {
	StudentID   string `json:"studId"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}
