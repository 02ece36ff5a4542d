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
	errAssignmentNotFound = &internal_errors.ErrorWithStatusCode{Message: "Assignment not found", StatusCode: http.StatusNotFound}
	errAlreadyAssigned    = &internal_errors.ErrorWithStatusCode{Message: "Already assigned", StatusCode: http.StatusConflict}
)

// =========================================================================
// Professor labs
// =========================================================================

// LabsOfProfessor returns the laboratories a professor teaches.
func (s *Storage) LabsOfProfessor(professorID string) ([]domain.Laboratory, error) {
	return s.queryLaboratories(`SELECT l.lab_id, l.name, l.attendance, l.department_id, l.start_date, l.end_date
		FROM professor_labs pl
		JOIN laboratories l ON l.lab_id = pl.lab_id
		WHERE pl.prof_id = $1
		ORDER BY l.lab_id`, professorID)
}

// AddProfessorLab resolves the lab so the row carries its department.
func (s *Storage) AddProfessorLab(professorID string, labID int64) (domain.ProfessorLab, error) {
	ctx, cancel := context.WithTimeout(context.Background(), accountTxTimeout)
	defer cancel()

	var entry domain.ProfessorLab
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		l, err := laboratory(tx, labID)
		if err != nil {
			return err
		}

		entry = domain.ProfessorLab{ProfessorID: professorID, LabID: l.ID, DepartmentID: l.DepartmentID}
		err = tx.QueryRow(`INSERT INTO professor_labs (prof_id, lab_id, department_id)
			VALUES ($1, $2, $3) RETURNING id`,
			entry.ProfessorID, entry.LabID, entry.DepartmentID).Scan(&entry.ID)
		if isUniqueViolation(err) {
			return errAlreadyAssigned
		}
		if err != nil {
			return fmt.Errorf("failed to insert professor lab: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.ProfessorLab{}, err
	}
	return entry, nil
}

func (s *Storage) DeleteProfessorLabOwned(id int64, professorID string) error {
	return s.deleteAssignment(`DELETE FROM professor_labs WHERE id = $1 AND prof_id = $2`, id, professorID)
}

// =========================================================================
// Professor course exams
// =========================================================================

const selectProfCourseExam = `SELECT id, prof_id, course_id, exam_id, department_id FROM prof_course_exams`

func (s *Storage) ProfCourseExamsByProfessor(professorID string) ([]domain.ProfCourseExam, error) {
	return s.queryProfCourseExams(selectProfCourseExam+" WHERE prof_id = $1 ORDER BY id", professorID)
}

// AssignProfCourseExam links a professor to a course and one of its exams.
// The exam must belong to the course, which is checked inside the
// transaction before inserting.
func (s *Storage) AssignProfCourseExam(professorID, courseID string, examID int64) (domain.ProfCourseExam, error) {
	ctx, cancel := context.WithTimeout(context.Background(), accountTxTimeout)
	defer cancel()

	var entry domain.ProfCourseExam
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		c, err := course(tx, courseID)
		if err != nil {
			return err
		}
		e, err := exam(tx, examID)
		if err != nil {
			return err
		}
		if e.CourseID != c.ID {
			return &internal_errors.ErrorWithStatusCode{Message: "Exam does not belong to course", StatusCode: http.StatusBadRequest}
		}

		entry = domain.ProfCourseExam{ProfessorID: professorID, CourseID: c.ID, ExamID: e.ID, DepartmentID: c.DepartmentID}
		err = tx.QueryRow(`INSERT INTO prof_course_exams (prof_id, course_id, exam_id, department_id)
			VALUES ($1, $2, $3, $4) RETURNING id`,
			entry.ProfessorID, entry.CourseID, entry.ExamID, entry.DepartmentID).Scan(&entry.ID)
		if isUniqueViolation(err) {
			return errAlreadyAssigned
		}
		if err != nil {
			return fmt.Errorf("failed to insert prof course exam: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.ProfCourseExam{}, err
	}
	return entry, nil
}

func (s *Storage) DeleteProfCourseExamOwned(id int64, professorID string) error {
	return s.deleteAssignment(`DELETE FROM prof_course_exams WHERE id = $1 AND prof_id = $2`, id, professorID)
}

// FutureExamsOfProfessor returns the professor's assigned exams that have
// not happened yet.
func (s *Storage) FutureExamsOfProfessor(professorID string) ([]domain.Exam, error) {
	rows, err := s.db.Query(`SELECT e.exam_id, e.name, e.cfu, e.type, e.date, e.course_id, e.department_id
		FROM prof_course_exams pce
		JOIN exams e ON e.exam_id = pce.exam_id
		WHERE pce.prof_id = $1 AND e.date >= CURRENT_DATE
		ORDER BY e.date`, professorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query future exams: %w", err)
	}
	defer rows.Close()

	var exams []domain.Exam
	for rows.Next() {
		exam, err := scanExam(rows)
		if err != nil {
			return nil, err
		}
		exams = append(exams, exam)
	}
	return exams, rows.Err()
}

func (s *Storage) queryProfCourseExams(query string, args ...any) ([]domain.ProfCourseExam, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query prof course exams: %w", err)
	}
	defer rows.Close()

	var entries []domain.ProfCourseExam
	for rows.Next() {
		var e domain.ProfCourseExam
		if err := rows.Scan(&e.ID, &e.ProfessorID, &e.CourseID, &e.ExamID, &e.DepartmentID); err != nil {
			return nil, fmt.Errorf("failed to scan prof course exam: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Storage) deleteAssignment(query string, args ...any) error {
	ctx, cancel := context.WithTimeout(context.Background(), accountTxTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.Exec(query, args...)
		if err != nil {
			return fmt.Errorf("failed to delete assignment: %w", err)
		}
		return requireRow(result, errAssignmentNotFound)
	})
}

// =========================================================================
// Rosters
// =========================================================================

const rosterColumns = `s.stud_id, s.name, s.surname, s.email, s.phone_number`

// StudentsByCourse lists the students who put a course in their study plan.
func (s *Storage) StudentsByCourse(courseID string) ([]domain.RosterEntry, error) {
	return s.queryRoster(`SELECT `+rosterColumns+`
		FROM student_courses sc
		JOIN students s ON s.stud_id = sc.stud_id
		WHERE sc.course_id = $1
		ORDER BY s.surname, s.name`, courseID)
}

// StudentsByExam lists the students registered to an exam.
func (s *Storage) StudentsByExam(examID int64) ([]domain.RosterEntry, error) {
	return s.queryRoster(`SELECT `+rosterColumns+`
		FROM exam_registrations r
		JOIN students s ON s.stud_id = r.stud_id
		WHERE r.exam_id = $1
		ORDER BY s.surname, s.name`, examID)
}

// StudentsByLab lists the students attending a laboratory.
func (s *Storage) StudentsByLab(labID int64) ([]domain.RosterEntry, error) {
	return s.queryRoster(`SELECT `+rosterColumns+`
		FROM student_labs sl
		JOIN students s ON s.stud_id = sl.stud_id
		WHERE sl.lab_id = $1
		ORDER BY s.surname, s.name`, labID)
}

func (s *Storage) queryRoster(query string, args ...any) ([]domain.RosterEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query roster: %w", err)
	}
	defer rows.Close()

	var roster []domain.RosterEntry
	for rows.Next() {
		var e domain.RosterEntry
		if err := rows.Scan(&e.StudentID, &e.Name, &e.Surname, &e.Email, &e.PhoneNumber); err != nil {
			return nil, fmt.Errorf("failed to scan roster entry: %w", err)
		}
		roster = append(roster, e)
	}
	return roster, rows.Err()
}
