package materials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/common"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/dbx"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, m *models.StudyMaterial) (*models.StudyMaterial, error) {
	query :=
		`INSERT INTO study_materials (title, subject, class_name, file_key, uploaded_by)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		m.Title, m.Subject, m.ClassName, m.FileKey, m.UploadedBy).
		Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.StudyMaterial, error) {
	query :=
		`SELECT id, title, subject, class_name, file_key, uploaded_by, created_at
		 FROM study_materials
		 WHERE id = $1
		 `

	m := &models.StudyMaterial{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&m.ID, &m.Title, &m.Subject, &m.ClassName, &m.FileKey, &m.UploadedBy, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) List(ctx context.Context, className, subject string) ([]*models.StudyMaterial, error) {
	query :=
		`SELECT id, title, subject, class_name, file_key, uploaded_by, created_at
		 FROM study_materials
		 `
	args := []any{}
	clause := ""
	if className != "" {
		args = append(args, className)
		clause = fmt.Sprintf(" WHERE class_name = $%d", len(args))
	}
	if subject != "" {
		args = append(args, subject)
		if clause == "" {
			clause = fmt.Sprintf(" WHERE subject = $%d", len(args))
		} else {
			clause += fmt.Sprintf(" AND subject = $%d", len(args))
		}
	}
	query += clause + " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.StudyMaterial
	for rows.Next() {
		m := &models.StudyMaterial{}
		if err := rows.Scan(&m.ID, &m.Title, &m.Subject, &m.ClassName,
			&m.FileKey, &m.UploadedBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, m)
	}
	return result, rows.Err()
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM study_materials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}
