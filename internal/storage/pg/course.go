package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/betauni/betauni/internal/domain"
	internal_errors "github.com/betauni/betauni/internal/errors"
)

const selectCourse = `SELECT course_id, name, department_id, start_date, end_date FROM courses`

var errCourseNotFound = &internal_errors.ErrorWithStatusCode{Message: "Course not found", StatusCode: http.StatusNotFound}

func (s *Storage) Courses() ([]domain.Course, error) {
	return s.queryCourses(selectCourse + " ORDER BY course_id")
}

func (s *Storage) CoursesByDepartment(departmentID string) ([]domain.Course, error) {
	return s.queryCourses(selectCourse+" WHERE department_id = $1 ORDER BY course_id", departmentID)
}

func (s *Storage) Course(id string) (domain.Course, error) {
	return course(s.db, id)
}

func course(q Querier, id string) (domain.Course, error) {
	var c domain.Course
	err := q.QueryRow(selectCourse+" WHERE course_id = $1", id).
		Scan(&c.ID, &c.Name, &c.DepartmentID, &c.StartDate, &c.EndDate)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Course{}, errCourseNotFound
	}
	if err != nil {
		return domain.Course{}, fmt.Errorf("failed to query course: %w", err)
	}
	return c, nil
}

// CoursesWithExams returns each course of a department together with its
// scheduled exams, for the professor catalog view.
func (s *Storage) CoursesWithExams(departmentID string) ([]domain.CourseExams, error) {
	courses, err := s.CoursesByDepartment(departmentID)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(selectExam+" WHERE department_id = $1 ORDER BY date", departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query department exams: %w", err)
	}
	defer rows.Close()

	examsByCourse := make(map[string][]domain.Exam)
	for rows.Next() {
		exam, err := scanExam(rows)
		if err != nil {
			return nil, err
		}
		examsByCourse[exam.CourseID] = append(examsByCourse[exam.CourseID], exam)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	result := make([]domain.CourseExams, 0, len(courses))
	for _, c := range courses {
		result = append(result, domain.CourseExams{Course: c, Exams: examsByCourse[c.ID]})
	}
	return result, nil
}

func (s *Storage) SaveCourse(course domain.Course) error {
	ctx, cancel := context.WithTimeout(context.Background(), accountTxTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO courses (course_id, name, department_id, start_date, end_date)
			VALUES ($1, $2, $3, $4, $5)`,
			course.ID, course.Name, course.DepartmentID, course.StartDate, course.EndDate)
		if isUniqueViolation(err) {
			return &internal_errors.ErrorWithStatusCode{Message: "Course already exists", StatusCode: http.StatusConflict}
		}
		if err != nil {
			return fmt.Errorf("failed to insert course: %w", err)
		}
		return nil
	})
}

func (s *Storage) UpdateCourse(course domain.Course) error {
	ctx, cancel := context.WithTimeout(context.Background(), accountTxTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.Exec(`UPDATE courses SET name = $2, department_id = $3, start_date = $4, end_date = $5
			WHERE course_id = $1`,
			course.ID, course.Name, course.DepartmentID, course.StartDate, course.EndDate)
		if err != nil {
			return fmt.Errorf("failed to update course: %w", err)
		}
		return requireRow(result, errCourseNotFound)
	})
}

func (s *Storage) DeleteCourse(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), accountTxTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.Exec(`DELETE FROM courses WHERE course_id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete course: %w", err)
		}
		return requireRow(result, errCourseNotFound)
	})
}

func (s *Storage) queryCourses(query string, args ...any) ([]domain.Course, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	var courses []domain.Course
	for rows.Next() {
		var c domain.Course
		if err := rows.Scan(&c.ID, &c.Name, &c.DepartmentID, &c.StartDate, &c.EndDate); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}
