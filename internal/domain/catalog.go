package domain

// Catalog entities: departments own courses, exams and laboratories.
// Course and department ids are short fixed-length codes ("INF1", "SCI ").

type Department struct {
	ID   string `json:"departmentId"`
	Name string `json:"name"`
}

type Course struct {
	ID           string `json:"courseId"`
	Name         string `json:"name"`
	DepartmentID string `json:"departmentId"`
	StartDate    Date   `json:"startDate"`
	EndDate      Date   `json:"endDate"`
}

type Exam struct {
	ID           int64  `json:"examId"`
	Name         string `json:"name"`
	CFU          int    `json:"cfu"`
	Type         string `json:"type"`
	Date         Date   `json:"date"`
	CourseID     string `json:"courseId"`
	DepartmentID string `json:"departmentId"`
}

// ExamInfo is the exam catalog view with course and department names resolved.
type ExamInfo struct {
	Exam
	CourseName     string `json:"courseName"`
	DepartmentName string `json:"departmentName"`
}

type Laboratory struct {
	ID           int64  `json:"labId"`
	Name         string `json:"name"`
	Attendance   string `json:"attendance"`
	DepartmentID string `json:"departmentId"`
	StartDate    Date   `json:"startDate"`
	EndDate      Date   `json:"endDate"`
}

type Classroom struct {
	ID          int64   `json:"classId"`
	Name        string  `json:"name"`
	Number      int     `json:"number"`
	MaxCapacity int     `json:"maxCapacity"`
	CourseID    *string `json:"courseId,omitempty"`
	LabID       *int64  `json:"labId,omitempty"`
}

// CourseExams pairs a course with its scheduled exams, used by the professor
// catalog view.
type CourseExams struct {
	Course Course `json:"course"`
	Exams  []Exam `json:"exams"`
}
