package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/betauni/betauni/internal/domain"
	internal_errors "github.com/betauni/betauni/internal/errors"
)

var errDepartmentNotFound = &internal_errors.ErrorWithStatusCode{Message: "Department not found", StatusCode: http.StatusNotFound}

func (s *Storage) Departments() ([]domain.Department, error) {
	rows, err := s.db.Query(`SELECT department_id, name FROM departments ORDER BY department_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	var departments []domain.Department
	for rows.Next() {
		var d domain.Department
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

func (s *Storage) Department(id string) (domain.Department, error) {
	var d domain.Department
	err := s.db.QueryRow(`SELECT department_id, name FROM departments WHERE department_id = $1`, id).
		Scan(&d.ID, &d.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Department{}, errDepartmentNotFound
	}
	if err != nil {
		return domain.Department{}, fmt.Errorf("failed to query department: %w", err)
	}
	return d, nil
}

func (s *Storage) Classrooms() ([]domain.Classroom, error) {
	rows, err := s.db.Query(`SELECT class_id, name, number, max_capacity, course_id, lab_id
		FROM classrooms ORDER BY class_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query classrooms: %w", err)
	}
	defer rows.Close()

	var classrooms []domain.Classroom
	for rows.Next() {
		var c domain.Classroom
		if err := rows.Scan(&c.ID, &c.Name, &c.Number, &c.MaxCapacity, &c.CourseID, &c.LabID); err != nil {
			return nil, fmt.Errorf("failed to scan classroom: %w", err)
		}
		classrooms = append(classrooms, c)
	}
	return classrooms, rows.Err()
}
