// Package admissions persists the programmes shown on the public admission
// page.
package admissions

import (
	"context"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/models"
)

type Repository interface {
	Upsert(ctx context.Context, d *models.AdmissionDetail) (*models.AdmissionDetail, error)
	List(ctx context.Context) ([]*models.AdmissionDetail, error)
	Delete(ctx context.Context, id string) error
}
