package admissions

import (
	"context"
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

func (r *PostgresRepository) Upsert(ctx context.Context, d *models.AdmissionDetail) (*models.AdmissionDetail, error) {
	query :=
		`INSERT INTO admission_details (program, eligibility, fees, seats, updated_by)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (program) DO UPDATE SET
		     eligibility = EXCLUDED.eligibility,
		     fees = EXCLUDED.fees,
		     seats = EXCLUDED.seats,
		     updated_by = EXCLUDED.updated_by,
		     updated_at = NOW()
		 RETURNING id, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		d.Program, d.Eligibility, d.Fees, d.Seats, d.UpdatedBy).
		Scan(&d.ID, &d.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return d, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.AdmissionDetail, error) {
	query :=
		`SELECT id, program, eligibility, fees, seats, updated_by, updated_at
		 FROM admission_details
		 ORDER BY program
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.AdmissionDetail
	for rows.Next() {
		d := &models.AdmissionDetail{}
		if err := rows.Scan(&d.ID, &d.Program, &d.Eligibility, &d.Fees,
			&d.Seats, &d.UpdatedBy, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, d)
	}
	return result, rows.Err()
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM admission_details WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}
