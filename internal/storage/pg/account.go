package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/betauni/betauni/internal/domain"
	internal_errors "github.com/betauni/betauni/internal/errors"
)

const accountTxTimeout = 5 * time.Second

// =========================================================================
// Students
// =========================================================================

// SaveStudent inserts a new student row. A duplicate id or email surfaces as
// a 409 conflict so the registration flow can regenerate the id candidate.
func (s *Storage) SaveStudent(student domain.Student) error {
	ctx, cancel := context.WithTimeout(context.Background(), accountTxTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO students
			(stud_id, name, surname, birth_date, email, password_hash, salt, phone_number, department_id, enrollment_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			student.ID, student.Name, student.Surname, student.BirthDate, student.Email,
			student.Credential.Hash, student.Credential.Salt, student.PhoneNumber,
			student.DepartmentID, student.EnrollmentDate)
		if isUniqueViolation(err) {
			return &internal_errors.ErrorWithStatusCode{Message: "Student already exists", StatusCode: http.StatusConflict}
		}
		if err != nil {
			return fmt.Errorf("failed to insert student: %w", err)
		}
		return nil
	})
}

func (s *Storage) Student(id string) (domain.Student, error) {
	return scanStudent(s.db.QueryRow(selectStudent+" WHERE stud_id = $1", id))
}

func (s *Storage) StudentByEmail(email string) (domain.Student, error) {
	return scanStudent(s.db.QueryRow(selectStudent+" WHERE email = $1", email))
}

func (s *Storage) Students() ([]domain.Student, error) {
	rows, err := s.db.Query(selectStudent + " ORDER BY surname, name")
	if err != nil {
		return nil, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	var students []domain.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

// StudentInfo returns a student's profile with the department name resolved.
func (s *Storage) StudentInfo(id string) (domain.AccountInfo, error) {
	var info domain.AccountInfo
	err := s.db.QueryRow(`SELECT s.stud_id, s.name, s.surname, s.birth_date, s.email,
			s.phone_number, s.department_id, d.name, s.enrollment_date
		FROM students s
		JOIN departments d ON d.department_id = s.department_id
		WHERE s.stud_id = $1`, id).
		Scan(&info.ID, &info.Name, &info.Surname, &info.BirthDate, &info.Email,
			&info.PhoneNumber, &info.DepartmentID, &info.DepartmentName, &info.EnrollmentDate)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.AccountInfo{}, errStudentNotFound
	}
	if err != nil {
		return domain.AccountInfo{}, fmt.Errorf("failed to query student info: %w", err)
	}
	return info, nil
}

// UpdateStudent overwrites the phone number and/or credential. Nil fields are
// left untouched.
func (s *Storage) UpdateStudent(id string, phone *string, cred *domain.Credential) error {
	ctx, cancel := context.WithTimeout(context.Background(), accountTxTimeout)
	defer cancel()

	var hash, salt *string
	if cred != nil {
		hash, salt = &cred.Hash, &cred.Salt
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.Exec(`UPDATE students SET
			phone_number = COALESCE($2, phone_number),
			password_hash = COALESCE($3, password_hash),
			salt = COALESCE($4, salt)
			WHERE stud_id = $1`, id, phone, hash, salt)
		if err != nil {
			return fmt.Errorf("failed to update student: %w", err)
		}
		return requireRow(result, errStudentNotFound)
	})
}

// =========================================================================
// Professors
// =========================================================================

func (s *Storage) SaveProfessor(professor domain.Professor) error {
	ctx, cancel := context.WithTimeout(context.Background(), accountTxTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO professors
			(prof_id, name, surname, birth_date, email, password_hash, salt, phone_number, department_id, enrollment_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			professor.ID, professor.Name, professor.Surname, professor.BirthDate, professor.Email,
			professor.Credential.Hash, professor.Credential.Salt, professor.PhoneNumber,
			professor.DepartmentID, professor.EnrollmentDate)
		if isUniqueViolation(err) {
			return &internal_errors.ErrorWithStatusCode{Message: "Professor already exists", StatusCode: http.StatusConflict}
		}
		if err != nil {
			return fmt.Errorf("failed to insert professor: %w", err)
		}
		return nil
	})
}

func (s *Storage) Professor(id string) (domain.Professor, error) {
	return scanProfessor(s.db.QueryRow(selectProfessor+" WHERE prof_id = $1", id))
}

func (s *Storage) ProfessorByEmail(email string) (domain.Professor, error) {
	return scanProfessor(s.db.QueryRow(selectProfessor+" WHERE email = $1", email))
}

func (s *Storage) Professors() ([]domain.Professor, error) {
	rows, err := s.db.Query(selectProfessor + " ORDER BY surname, name")
	if err != nil {
		return nil, fmt.Errorf("failed to query professors: %w", err)
	}
	defer rows.Close()

	var professors []domain.Professor
	for rows.Next() {
		professor, err := scanProfessor(rows)
		if err != nil {
			return nil, err
		}
		professors = append(professors, professor)
	}
	return professors, rows.Err()
}

func (s *Storage) ProfessorInfo(id string) (domain.AccountInfo, error) {
	var info domain.AccountInfo
	err := s.db.QueryRow(`SELECT p.prof_id, p.name, p.surname, p.birth_date, p.email,
			p.phone_number, p.department_id, d.name, p.enrollment_date
		FROM professors p
		JOIN departments d ON d.department_id = p.department_id
		WHERE p.prof_id = $1`, id).
		Scan(&info.ID, &info.Name, &info.Surname, &info.BirthDate, &info.Email,
			&info.PhoneNumber, &info.DepartmentID, &info.DepartmentName, &info.EnrollmentDate)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.AccountInfo{}, errProfessorNotFound
	}
	if err != nil {
		return domain.AccountInfo{}, fmt.Errorf("failed to query professor info: %w", err)
	}
	return info, nil
}

func (s *Storage) UpdateProfessor(id string, phone *string, cred *domain.Credential) error {
	ctx, cancel := context.WithTimeout(context.Background(), accountTxTimeout)
	defer cancel()

	var hash, salt *string
	if cred != nil {
		hash, salt = &cred.Hash, &cred.Salt
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.Exec(`UPDATE professors SET
			phone_number = COALESCE($2, phone_number),
			password_hash = COALESCE($3, password_hash),
			salt = COALESCE($4, salt)
			WHERE prof_id = $1`, id, phone, hash, salt)
		if err != nil {
			return fmt.Errorf("failed to update professor: %w", err)
		}
		return requireRow(result, errProfessorNotFound)
	})
}

// =========================================================================
// Scan helpers
// =========================================================================

const selectStudent = `SELECT stud_id, name, surname, birth_date, email,
	password_hash, salt, phone_number, department_id, enrollment_date FROM students`

const selectProfessor = `SELECT prof_id, name, surname, birth_date, email,
	password_hash, salt, phone_number, department_id, enrollment_date FROM professors`

var (
	errStudentNotFound   = &internal_errors.ErrorWithStatusCode{Message: "Student not found", StatusCode: http.StatusNotFound}
	errProfessorNotFound = &internal_errors.ErrorWithStatusCode{Message: "Professor not found", StatusCode: http.StatusNotFound}
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStudent(row rowScanner) (domain.Student, error) {
	var s domain.Student
	err := row.Scan(&s.ID, &s.Name, &s.Surname, &s.BirthDate, &s.Email,
		&s.Credential.Hash, &s.Credential.Salt, &s.PhoneNumber, &s.DepartmentID, &s.EnrollmentDate)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Student{}, errStudentNotFound
	}
	if err != nil {
		return domain.Student{}, fmt.Errorf("failed to scan student: %w", err)
	}
	return s, nil
}

func scanProfessor(row rowScanner) (domain.Professor, error) {
	var p domain.Professor
	err := row.Scan(&p.ID, &p.Name, &p.Surname, &p.BirthDate, &p.Email,
		&p.Credential.Hash, &p.Credential.Salt, &p.PhoneNumber, &p.DepartmentID, &p.EnrollmentDate)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Professor{}, errProfessorNotFound
	}
	if err != nil {
		return domain.Professor{}, fmt.Errorf("failed to scan professor: %w", err)
	}
	return p, nil
}

// requireRow turns a zero-rows-affected update into notFound.
func requireRow(result sql.Result, notFound error) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
