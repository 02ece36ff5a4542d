package service

import (
	"github.com/betauni/betauni/internal/domain"
)

// CatalogService exposes the academic catalog: departments, classrooms,
// courses, exams and laboratories. Reads are open to any authenticated
// account, writes are routed to professors only.
type CatalogService interface {
	Departments() ([]domain.Department, error)
	Department(id string) (domain.Department, error)
	Classrooms() ([]domain.Classroom, error)

	Courses() ([]domain.Course, error)
	CoursesByDepartment(departmentID string) ([]domain.Course, error)
	Course(id string) (domain.Course, error)
	CoursesWithExams(departmentID string) ([]domain.CourseExams, error)
	CreateCourse(course domain.Course) error
	UpdateCourse(course domain.Course) error
	DeleteCourse(id string) error

	Exam(id int64) (domain.Exam, error)
	ExamInfos() ([]domain.ExamInfo, error)
	CreateExam(exam domain.Exam) (domain.Exam, error)
	UpdateExam(exam domain.Exam) error
	DeleteExam(id int64) error

	Laboratories() ([]domain.Laboratory, error)
	LaboratoriesByDepartment(departmentID string) ([]domain.Laboratory, error)
	Laboratory(id int64) (domain.Laboratory, error)
	CreateLaboratory(lab domain.Laboratory) (domain.Laboratory, error)
	UpdateLaboratory(lab domain.Laboratory) error
	DeleteLaboratory(id int64) error
}

type Catalog struct {
	storage CatalogStorage
}

type CatalogStorage interface {
	Departments() ([]domain.Department, error)
	Department(id string) (domain.Department, error)
	Classrooms() ([]domain.Classroom, error)

	Courses() ([]domain.Course, error)
	CoursesByDepartment(departmentID string) ([]domain.Course, error)
	Course(id string) (domain.Course, error)
	CoursesWithExams(departmentID string) ([]domain.CourseExams, error)
	SaveCourse(course domain.Course) error
	UpdateCourse(course domain.Course) error
	DeleteCourse(id string) error

	Exam(id int64) (domain.Exam, error)
	ExamInfos() ([]domain.ExamInfo, error)
	SaveExam(exam domain.Exam) (int64, error)
	UpdateExam(exam domain.Exam) error
	DeleteExam(id int64) error

	Laboratories() ([]domain.Laboratory, error)
	LaboratoriesByDepartment(departmentID string) ([]domain.Laboratory, error)
	Laboratory(id int64) (domain.Laboratory, error)
	SaveLaboratory(lab domain.Laboratory) (int64, error)
	UpdateLaboratory(lab domain.Laboratory) error
	DeleteLaboratory(id int64) error
}

func NewCatalog(storage CatalogStorage) *Catalog {
	return &Catalog{storage: storage}
}

func (c *Catalog) Departments() ([]domain.Department, error) {
	return c.storage.Departments()
}

func (c *Catalog) Department(id string) (domain.Department, error) {
	return c.storage.Department(id)
}

func (c *Catalog) Classrooms() ([]domain.Classroom, error) {
	return c.storage.Classrooms()
}

func (c *Catalog) Courses() ([]domain.Course, error) {
	return c.storage.Courses()
}

func (c *Catalog) CoursesByDepartment(departmentID string) ([]domain.Course, error) {
	return c.storage.CoursesByDepartment(departmentID)
}

func (c *Catalog) Course(id string) (domain.Course, error) {
	return c.storage.Course(id)
}

func (c *Catalog) CoursesWithExams(departmentID string) ([]domain.CourseExams, error) {
	return c.storage.CoursesWithExams(departmentID)
}

func (c *Catalog) CreateCourse(course domain.Course) error {
	course.Name = sanitizeText(course.Name)
	return c.storage.SaveCourse(course)
}

func (c *Catalog) UpdateCourse(course domain.Course) error {
	course.Name = sanitizeText(course.Name)
	return c.storage.UpdateCourse(course)
}

func (c *Catalog) DeleteCourse(id string) error {
	return c.storage.DeleteCourse(id)
}

func (c *Catalog) Exam(id int64) (domain.Exam, error) {
	return c.storage.Exam(id)
}

func (c *Catalog) ExamInfos() ([]domain.ExamInfo, error) {
	return c.storage.ExamInfos()
}

// CreateExam returns the exam with its generated id filled in.
func (c *Catalog) CreateExam(exam domain.Exam) (domain.Exam, error) {
	exam.Name = sanitizeText(exam.Name)
	id, err := c.storage.SaveExam(exam)
	if err != nil {
		return domain.Exam{}, err
	}
	exam.ID = id
	return exam, nil
}

func (c *Catalog) UpdateExam(exam domain.Exam) error {
	exam.Name = sanitizeText(exam.Name)
	return c.storage.UpdateExam(exam)
}

func (c *Catalog) DeleteExam(id int64) error {
	return c.storage.DeleteExam(id)
}

func (c *Catalog) Laboratories() ([]domain.Laboratory, error) {
	return c.storage.Laboratories()
}

func (c *Catalog) LaboratoriesByDepartment(departmentID string) ([]domain.Laboratory, error) {
	return c.storage.LaboratoriesByDepartment(departmentID)
}

func (c *Catalog) Laboratory(id int64) (domain.Laboratory, error) {
	return c.storage.Laboratory(id)
}

func (c *Catalog) CreateLaboratory(lab domain.Laboratory) (domain.Laboratory, error) {
	lab.Name = sanitizeText(lab.Name)
	id, err := c.storage.SaveLaboratory(lab)
	if err != nil {
		return domain.Laboratory{}, err
	}
	lab.ID = id
	return lab, nil
}

func (c *Catalog) UpdateLaboratory(lab domain.Laboratory) error {
	lab.Name = sanitizeText(lab.Name)
	return c.storage.UpdateLaboratory(lab)
}

func (c *Catalog) DeleteLaboratory(id int64) error {
	return c.storage.DeleteLaboratory(id)
}
