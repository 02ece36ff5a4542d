package service

import (
	"github.com/betauni/betauni/internal/domain"
)

// EnrollmentService is the student's side of the join tables: exam
// registrations, the study plan and lab attendance. Every mutating call is
// scoped to the calling student so one account cannot touch another's rows.
type EnrollmentService interface {
	RegisterToExam(studentID string, examID int64) (domain.ExamRegistration, error)
	MyExams(studentID string) ([]domain.ExamInfo, error)
	DropExamRegistration(studentID string, id int64) error

	AddCourse(studentID, courseID string) (domain.StudentCourse, error)
	MyCourses(studentID string) ([]domain.Course, error)
	DropCourse(studentID string, id int64) error

	AddLab(studentID string, labID int64) (domain.StudentLab, error)
	MyLabs(studentID string) ([]domain.Laboratory, error)
	DropLab(studentID string, id int64) error
}

type Enrollment struct {
	storage EnrollmentStorage
}

type EnrollmentStorage interface {
	RegisterStudentToExam(studentID string, examID int64) (domain.ExamRegistration, error)
	ExamsOfStudent(studentID string) ([]domain.ExamInfo, error)
	DeleteExamRegistrationOwned(id int64, studentID string) error

	AddStudentCourse(studentID, courseID string) (domain.StudentCourse, error)
	CoursesOfStudent(studentID string) ([]domain.Course, error)
	DeleteStudentCourseOwned(id int64, studentID string) error

	AddStudentLab(studentID string, labID int64) (domain.StudentLab, error)
	LabsOfStudent(studentID string) ([]domain.Laboratory, error)
	DeleteStudentLabOwned(id int64, studentID string) error
}

func NewEnrollment(storage EnrollmentStorage) *Enrollment {
	return &Enrollment{storage: storage}
}

func (e *Enrollment) RegisterToExam(studentID string, examID int64) (domain.ExamRegistration, error) {
	return e.storage.RegisterStudentToExam(studentID, examID)
}

func (e *Enrollment) MyExams(studentID string) ([]domain.ExamInfo, error) {
	return e.storage.ExamsOfStudent(studentID)
}

func (e *Enrollment) DropExamRegistration(studentID string, id int64) error {
	return e.storage.DeleteExamRegistrationOwned(id, studentID)
}

func (e *Enrollment) AddCourse(studentID, courseID string) (domain.StudentCourse, error) {
	return e.storage.AddStudentCourse(studentID, courseID)
}

func (e *Enrollment) MyCourses(studentID string) ([]domain.Course, error) {
	return e.storage.CoursesOfStudent(studentID)
}

func (e *Enrollment) DropCourse(studentID string, id int64) error {
	return e.storage.DeleteStudentCourseOwned(id, studentID)
}

func (e *Enrollment) AddLab(studentID string, labID int64) (domain.StudentLab, error) {
	return e.storage.AddStudentLab(studentID, labID)
}

func (e *Enrollment) MyLabs(studentID string) ([]domain.Laboratory, error) {
	return e.storage.LabsOfStudent(studentID)
}

func (e *Enrollment) DropLab(studentID string, id int64) error {
	return e.storage.DeleteStudentLabOwned(id, studentID)
}
