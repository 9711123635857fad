// Package materials persists study-material references. Files live in
// object storage; only their keys are stored here.
package materials

import (
	"context"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, m *models.StudyMaterial) (*models.StudyMaterial, error)
	GetByID(ctx context.Context, id string) (*models.StudyMaterial, error)
	List(ctx context.Context, className, subject string) ([]*models.StudyMaterial, error)
	Delete(ctx context.Context, id string) error
}
