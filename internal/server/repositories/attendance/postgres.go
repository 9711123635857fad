package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/dbx"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Upsert(ctx context.Context, rec *models.AttendanceRecord) (*models.AttendanceRecord, error) {
	query :=
		`INSERT INTO attendance_records (student_id, class_date, subject, present, marked_by)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (student_id, class_date, subject) DO UPDATE SET
		     present = EXCLUDED.present,
		     marked_by = EXCLUDED.marked_by,
		     marked_at = NOW()
		 RETURNING id, marked_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		rec.StudentID, rec.ClassDate, rec.Subject, rec.Present, rec.MarkedBy).
		Scan(&rec.ID, &rec.MarkedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rec, nil
}

func (r *PostgresRepository) ListByStudent(ctx context.Context, studentID string) ([]*models.AttendanceRecord, error) {
	query :=
		`SELECT id, student_id, class_date, subject, present, marked_by, marked_at
		 FROM attendance_records
		 WHERE student_id = $1
		 ORDER BY class_date DESC, subject
		 `

	rows, err := r.db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (r *PostgresRepository) ListBySlot(ctx context.Context, classDate time.Time, subject string) ([]*models.AttendanceRecord, error) {
	query :=
		`SELECT id, student_id, class_date, subject, present, marked_by, marked_at
		 FROM attendance_records
		 WHERE class_date = $1 AND subject = $2
		 ORDER BY student_id
		 `

	rows, err := r.db.QueryContext(ctx, query, classDate, subject)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanRecords(rows rowScanner) ([]*models.AttendanceRecord, error) {
	var result []*models.AttendanceRecord
	for rows.Next() {
		rec := &models.AttendanceRecord{}
		if err := rows.Scan(&rec.ID, &rec.StudentID, &rec.ClassDate, &rec.Subject,
			&rec.Present, &rec.MarkedBy, &rec.MarkedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}
