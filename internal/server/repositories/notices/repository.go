// Package notices persists notice-board announcements.
package notices

import (
	"context"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, n *models.Notice) (*models.Notice, error)
	List(ctx context.Context, limit int) ([]*models.Notice, error)
	Delete(ctx context.Context, id string) error
}
