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

const selectLaboratory = `SELECT lab_id, name, attendance, department_id, start_date, end_date FROM laboratories`

var errLaboratoryNotFound = &internal_errors.ErrorWithStatusCode{Message: "Laboratory not found", StatusCode: http.StatusNotFound}

func (s *Storage) Laboratories() ([]domain.Laboratory, error) {
	return s.queryLaboratories(selectLaboratory + " ORDER BY lab_id")
}

func (s *Storage) LaboratoriesByDepartment(departmentID string) ([]domain.Laboratory, error) {
	return s.queryLaboratories(selectLaboratory+" WHERE department_id = $1 ORDER BY lab_id", departmentID)
}

func (s *Storage) Laboratory(id int64) (domain.Laboratory, error) {
	return laboratory(s.db, id)
}

func laboratory(q Querier, id int64) (domain.Laboratory, error) {
	var l domain.Laboratory
	err := q.QueryRow(selectLaboratory+" WHERE lab_id = $1", id).
		Scan(&l.ID, &l.Name, &l.Attendance, &l.DepartmentID, &l.StartDate, &l.EndDate)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Laboratory{}, errLaboratoryNotFound
	}
	if err != nil {
		return domain.Laboratory{}, fmt.Errorf("failed to query laboratory: %w", err)
	}
	return l, nil
}

func (s *Storage) SaveLaboratory(lab domain.Laboratory) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), accountTxTimeout)
	defer cancel()

	var id int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRow(`INSERT INTO laboratories (name, attendance, department_id, start_date, end_date)
			VALUES ($1, $2, $3, $4, $5) RETURNING lab_id`,
			lab.Name, lab.Attendance, lab.DepartmentID, lab.StartDate, lab.EndDate).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to insert laboratory: %w", err)
		}
		return nil
	})
	return id, err
}

func (s *Storage) UpdateLaboratory(lab domain.Laboratory) error {
	ctx, cancel := context.WithTimeout(context.Background(), accountTxTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.Exec(`UPDATE laboratories SET name = $2, attendance = $3, department_id = $4, start_date = $5, end_date = $6
			WHERE lab_id = $1`,
			lab.ID, lab.Name, lab.Attendance, lab.DepartmentID, lab.StartDate, lab.EndDate)
		if err != nil {
			return fmt.Errorf("failed to update laboratory: %w", err)
		}
		return requireRow(result, errLaboratoryNotFound)
	})
}

func (s *Storage) DeleteLaboratory(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), accountTxTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.Exec(`DELETE FROM laboratories WHERE lab_id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete laboratory: %w", err)
		}
		return requireRow(result, errLaboratoryNotFound)
	})
}

func (s *Storage) queryLaboratories(query string, args ...any) ([]domain.Laboratory, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query laboratories: %w", err)
	}
	defer rows.Close()

	var labs []domain.Laboratory
	for rows.Next() {
		var l domain.Laboratory
		if err := rows.Scan(&l.ID, &l.Name, &l.Attendance, &l.DepartmentID, &l.StartDate, &l.EndDate); err != nil {
			return nil, fmt.Errorf("failed to scan laboratory: %w", err)
		}
		labs = append(labs, l)
	}
	return labs, rows.Err()
}
