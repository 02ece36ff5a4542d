package service

import (
	"github.com/betauni/betauni/internal/domain"
)

// AssignmentService is the professor's side of the join tables: lab
// assignments, course/exam assignments and the rosters they unlock.
type AssignmentService interface {
	TakeLab(professorID string, labID int64) (domain.ProfessorLab, error)
	MyLabs(professorID string) ([]domain.Laboratory, error)
	DropLab(professorID string, id int64) error

	AssignCourseExam(professorID, courseID string, examID int64) (domain.ProfCourseExam, error)
	MyAssignments(professorID string) ([]domain.ProfCourseExam, error)
	DropAssignment(professorID string, id int64) error
	FutureExams(professorID string) ([]domain.Exam, error)

	StudentsByCourse(courseID string) ([]domain.RosterEntry, error)
	StudentsByExam(examID int64) ([]domain.RosterEntry, error)
	StudentsByLab(labID int64) ([]domain.RosterEntry, error)
}

type Assignment struct {
	storage AssignmentStorage
}

type AssignmentStorage interface {
	AddProfessorLab(professorID string, labID int64) (domain.ProfessorLab, error)
	LabsOfProfessor(professorID string) ([]domain.Laboratory, error)
	DeleteProfessorLabOwned(id int64, professorID string) error

	AssignProfCourseExam(professorID, courseID string, examID int64) (domain.ProfCourseExam, error)
	ProfCourseExamsByProfessor(professorID string) ([]domain.ProfCourseExam, error)
	DeleteProfCourseExamOwned(id int64, professorID string) error
	FutureExamsOfProfessor(professorID string) ([]domain.Exam, error)

	StudentsByCourse(courseID string) ([]domain.RosterEntry, error)
	StudentsByExam(examID int64) ([]domain.RosterEntry, error)
	StudentsByLab(labID int64) ([]domain.RosterEntry, error)
}

func NewAssignment(storage AssignmentStorage) *Assignment {
	return &Assignment{storage: storage}
}

func (a *Assignment) TakeLab(professorID string, labID int64) (domain.ProfessorLab, error) {
	return a.storage.AddProfessorLab(professorID, labID)
}

func (a *Assignment) MyLabs(professorID string) ([]domain.Laboratory, error) {
	return a.storage.LabsOfProfessor(professorID)
}

func (a *Assignment) DropLab(professorID string, id int64) error {
	return a.storage.DeleteProfessorLabOwned(id, professorID)
}

func (a *Assignment) AssignCourseExam(professorID, courseID string, examID int64) (domain.ProfCourseExam, error) {
	return a.storage.AssignProfCourseExam(professorID, courseID, examID)
}

func (a *Assignment) MyAssignments(professorID string) ([]domain.ProfCourseExam, error) {
	return a.storage.ProfCourseExamsByProfessor(professorID)
}

func (a *Assignment) DropAssignment(professorID string, id int64) error {
	return a.storage.DeleteProfCourseExamOwned(id, professorID)
}

func (a *Assignment) FutureExams(professorID string) ([]domain.Exam, error) {
	return a.storage.FutureExamsOfProfessor(professorID)
}

func (a *Assignment) StudentsByCourse(courseID string) ([]domain.RosterEntry, error) {
	return a.storage.StudentsByCourse(courseID)
}

func (a *Assignment) StudentsByExam(examID int64) ([]domain.RosterEntry, error) {
	return a.storage.StudentsByExam(examID)
}

func (a *Assignment) StudentsByLab(labID int64) ([]domain.RosterEntry, error) {
	return a.storage.StudentsByLab(labID)
}
