// Package attendance persists marked attendance slots. One row exists per
// (student, class date, subject); marking the same slot again overwrites it.
package attendance

import (
	"context"
	"time"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/models"
)

type Repository interface {
	Upsert(ctx context.Context, rec *models.AttendanceRecord) (*models.AttendanceRecord, error)
	ListByStudent(ctx context.Context, studentID string) ([]*models.AttendanceRecord, error)
	ListBySlot(ctx context.Context, classDate time.Time, subject string) ([]*models.AttendanceRecord, error)
}
