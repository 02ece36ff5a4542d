package pg

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/betauni/betauni/internal/domain"
	internal_errors "github.com/betauni/betauni/internal/errors"
)

var (
	errRegistrationNotFound = &internal_errors.ErrorWithStatusCode{Message: "Registration not found", StatusCode: http.StatusNotFound}
	errAlreadyRegistered    = &internal_errors.ErrorWithStatusCode{Message: "Already registered", StatusCode: http.StatusConflict}
)

// =========================================================================
// Exam registrations
// =========================================================================

// ExamsOfStudent returns the exams a student is registered to, with names
// resolved.
func (s *Storage) ExamsOfStudent(studentID string) ([]domain.ExamInfo, error) {
	rows, err := s.db.Query(`SELECT e.exam_id, e.name, e.cfu, e.type, e.date, e.course_id, e.department_id,
			c.name, d.name
		FROM exam_registrations r
		JOIN exams e ON e.exam_id = r.exam_id
		JOIN courses c ON c.course_id = e.course_id
		JOIN departments d ON d.department_id = e.department_id
		WHERE r.stud_id = $1
		ORDER BY e.date`, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query student exams: %w", err)
	}
	defer rows.Close()

	var infos []domain.ExamInfo
	for rows.Next() {
		var info domain.ExamInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.CFU, &info.Type, &info.Date,
			&info.CourseID, &info.DepartmentID, &info.CourseName, &info.DepartmentName); err != nil {
			return nil, fmt.Errorf("failed to scan student exam: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// RegisterStudentToExam resolves the exam inside the transaction so the
// registration row carries the exam's course and department, then inserts it.
func (s *Storage) RegisterStudentToExam(studentID string, examID int64) (domain.ExamRegistration, error) {
	ctx, cancel := context.WithTimeout(context.Background(), accountTxTimeout)
	defer cancel()

	var reg domain.ExamRegistration
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		e, err := exam(tx, examID)
		if err != nil {
			return err
		}

		reg = domain.ExamRegistration{
			StudentID:        studentID,
			ExamID:           e.ID,
			CourseID:         e.CourseID,
			DepartmentID:     e.DepartmentID,
			RegistrationDate: domain.Today(),
		}
		err = tx.QueryRow(`INSERT INTO exam_registrations (stud_id, exam_id, course_id, department_id, registration_date)
			VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			reg.StudentID, reg.ExamID, reg.CourseID, reg.DepartmentID, reg.RegistrationDate).Scan(&reg.ID)
		if isUniqueViolation(err) {
			return errAlreadyRegistered
		}
		if err != nil {
			return fmt.Errorf("failed to insert exam registration: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.ExamRegistration{}, err
	}
	return reg, nil
}

// DeleteExamRegistrationOwned removes a registration only if it belongs to
// the given student. A foreign registration id looks like not-found.
func (s *Storage) DeleteExamRegistrationOwned(id int64, studentID string) error {
	return s.deleteRegistration(`DELETE FROM exam_registrations WHERE id = $1 AND stud_id = $2`, id, studentID)
}

// =========================================================================
// Student courses (study plan)
// =========================================================================

// CoursesOfStudent returns the courses in a student's study plan.
func (s *Storage) CoursesOfStudent(studentID string) ([]domain.Course, error) {
	return s.queryCourses(`SELECT c.course_id, c.name, c.department_id, c.start_date, c.end_date
		FROM student_courses sc
		JOIN courses c ON c.course_id = sc.course_id
		WHERE sc.stud_id = $1
		ORDER BY c.course_id`, studentID)
}

// AddStudentCourse resolves the course so the row carries its department.
func (s *Storage) AddStudentCourse(studentID, courseID string) (domain.StudentCourse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), accountTxTimeout)
	defer cancel()

	var entry domain.StudentCourse
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		c, err := course(tx, courseID)
		if err != nil {
			return err
		}

		entry = domain.StudentCourse{StudentID: studentID, CourseID: c.ID, DepartmentID: c.DepartmentID}
		err = tx.QueryRow(`INSERT INTO student_courses (stud_id, course_id, department_id)
			VALUES ($1, $2, $3) RETURNING id`,
			entry.StudentID, entry.CourseID, entry.DepartmentID).Scan(&entry.ID)
		if isUniqueViolation(err) {
			return errAlreadyRegistered
		}
		if err != nil {
			return fmt.Errorf("failed to insert student course: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.StudentCourse{}, err
	}
	return entry, nil
}

func (s *Storage) DeleteStudentCourseOwned(id int64, studentID string) error {
	return s.deleteRegistration(`DELETE FROM student_courses WHERE id = $1 AND stud_id = $2`, id, studentID)
}

// =========================================================================
// Student labs
// =========================================================================

// LabsOfStudent returns the laboratories in a student's study plan.
func (s *Storage) LabsOfStudent(studentID string) ([]domain.Laboratory, error) {
	return s.queryLaboratories(`SELECT l.lab_id, l.name, l.attendance, l.department_id, l.start_date, l.end_date
		FROM student_labs sl
		JOIN laboratories l ON l.lab_id = sl.lab_id
		WHERE sl.stud_id = $1
		ORDER BY l.lab_id`, studentID)
}

func (s *Storage) AddStudentLab(studentID string, labID int64) (domain.StudentLab, error) {
	ctx, cancel := context.WithTimeout(context.Background(), accountTxTimeout)
	defer cancel()

	var entry domain.StudentLab
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		l, err := laboratory(tx, labID)
		if err != nil {
			return err
		}

		entry = domain.StudentLab{StudentID: studentID, LabID: l.ID, DepartmentID: l.DepartmentID}
		err = tx.QueryRow(`INSERT INTO student_labs (stud_id, lab_id, department_id)
			VALUES ($1, $2, $3) RETURNING id`,
			entry.StudentID, entry.LabID, entry.DepartmentID).Scan(&entry.ID)
		if isUniqueViolation(err) {
			return errAlreadyRegistered
		}
		if err != nil {
			return fmt.Errorf("failed to insert student lab: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.StudentLab{}, err
	}
	return entry, nil
}

func (s *Storage) DeleteStudentLabOwned(id int64, studentID string) error {
	return s.deleteRegistration(`DELETE FROM student_labs WHERE id = $1 AND stud_id = $2`, id, studentID)
}

// deleteRegistration runs a delete that must remove exactly one row.
func (s *Storage) deleteRegistration(query string, args ...any) error {
	ctx, cancel := context.WithTimeout(context.Background(), accountTxTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.Exec(query, args...)
		if err != nil {
			return fmt.Errorf("failed to delete registration: %w", err)
		}
		return requireRow(result, errRegistrationNotFound)
	})
}
