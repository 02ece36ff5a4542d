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

const selectExam = `SELECT exam_id, name, cfu, type, date, course_id, department_id FROM exams`

var errExamNotFound = &internal_errors.ErrorWithStatusCode{Message: "Exam not found", StatusCode: http.StatusNotFound}

func (s *Storage) Exam(id int64) (domain.Exam, error) {
	return exam(s.db, id)
}

func exam(q Querier, id int64) (domain.Exam, error) {
	var e domain.Exam
	err := q.QueryRow(selectExam+" WHERE exam_id = $1", id).
		Scan(&e.ID, &e.Name, &e.CFU, &e.Type, &e.Date, &e.CourseID, &e.DepartmentID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Exam{}, errExamNotFound
	}
	if err != nil {
		return domain.Exam{}, fmt.Errorf("failed to query exam: %w", err)
	}
	return e, nil
}

// ExamInfos is the exam catalog with course and department names resolved.
func (s *Storage) ExamInfos() ([]domain.ExamInfo, error) {
	rows, err := s.db.Query(`SELECT e.exam_id, e.name, e.cfu, e.type, e.date, e.course_id, e.department_id,
			c.name, d.name
		FROM exams e
		JOIN courses c ON c.course_id = e.course_id
		JOIN departments d ON d.department_id = e.department_id
		ORDER BY e.date`)
	if err != nil {
		return nil, fmt.Errorf("failed to query exam infos: %w", err)
	}
	defer rows.Close()

	var infos []domain.ExamInfo
	for rows.Next() {
		var info domain.ExamInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.CFU, &info.Type, &info.Date,
			&info.CourseID, &info.DepartmentID, &info.CourseName, &info.DepartmentName); err != nil {
			return nil, fmt.Errorf("failed to scan exam info: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// SaveExam inserts the exam and returns its generated id.
func (s *Storage) SaveExam(exam domain.Exam) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), accountTxTimeout)
	defer cancel()

	var id int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRow(`INSERT INTO exams (name, cfu, type, date, course_id, department_id)
			VALUES ($1, $2, $3, $4, $5, $6) RETURNING exam_id`,
			exam.Name, exam.CFU, exam.Type, exam.Date, exam.CourseID, exam.DepartmentID).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to insert exam: %w", err)
		}
		return nil
	})
	return id, err
}

func (s *Storage) UpdateExam(exam domain.Exam) error {
	ctx, cancel := context.WithTimeout(context.Background(), accountTxTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.Exec(`UPDATE exams SET name = $2, cfu = $3, type = $4, date = $5, course_id = $6, department_id = $7
			WHERE exam_id = $1`,
			exam.ID, exam.Name, exam.CFU, exam.Type, exam.Date, exam.CourseID, exam.DepartmentID)
		if err != nil {
			return fmt.Errorf("failed to update exam: %w", err)
		}
		return requireRow(result, errExamNotFound)
	})
}

func (s *Storage) DeleteExam(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), accountTxTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.Exec(`DELETE FROM exams WHERE exam_id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete exam: %w", err)
		}
		return requireRow(result, errExamNotFound)
	})
}

func scanExam(rows *sql.Rows) (domain.Exam, error) {
	var e domain.Exam
	if err := rows.Scan(&e.ID, &e.Name, &e.CFU, &e.Type, &e.Date, &e.CourseID, &e.DepartmentID); err != nil {
		return domain.Exam{}, fmt.Errorf("failed to scan exam: %w", err)
	}
	return e, nil
}
