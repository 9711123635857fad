package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/common"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/models"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/repositories/repomanager"
)

// ContentService covers the informational records: notices, study materials
// and admission programmes.
type ContentService struct {
	rm repomanager.RepositoryManager
}

func NewContentService(rm repomanager.RepositoryManager) *ContentService {
	return &ContentService{rm: rm}
}

func (s *ContentService) PostNotice(ctx context.Context, authorID, title, body string) (*models.Notice, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title required", common.ErrValidation)
	}
	n := &models.Notice{Title: title, Body: body, PostedBy: authorID}
	return s.rm.Notices(s.rm.Conn()).Create(ctx, n)
}

func (s *ContentService) ListNotices(ctx context.Context, limit int) ([]*models.Notice, error) {
	return s.rm.Notices(s.rm.Conn()).List(ctx, limit)
}

func (s *ContentService) DeleteNotice(ctx context.Context, id string) error {
	return s.rm.Notices(s.rm.Conn()).Delete(ctx, id)
}

func (s *ContentService) AddMaterial(ctx context.Context, m *models.StudyMaterial) (*models.StudyMaterial, error) {
	if strings.TrimSpace(m.Title) == "" || strings.TrimSpace(m.FileKey) == "" {
		return nil, fmt.Errorf("%w: title and file required", common.ErrValidation)
	}
	return s.rm.Materials(s.rm.Conn()).Create(ctx, m)
}

func (s *ContentService) GetMaterial(ctx context.Context, id string) (*models.StudyMaterial, error) {
	return s.rm.Materials(s.rm.Conn()).GetByID(ctx, id)
}

func (s *ContentService) ListMaterials(ctx context.Context, className, subject string) ([]*models.StudyMaterial, error) {
	return s.rm.Materials(s.rm.Conn()).List(ctx, className, subject)
}

func (s *ContentService) DeleteMaterial(ctx context.Context, id string) error {
	return s.rm.Materials(s.rm.Conn()).Delete(ctx, id)
}

func (s *ContentService) UpsertAdmission(ctx context.Context, d *models.AdmissionDetail) (*models.AdmissionDetail, error) {
	if strings.TrimSpace(d.Program) == "" {
		return nil, fmt.Errorf("%w: program required", common.ErrValidation)
	}
	return s.rm.Admissions(s.rm.Conn()).Upsert(ctx, d)
}

func (s *ContentService) ListAdmissions(ctx context.Context) ([]*models.AdmissionDetail, error) {
	return s.rm.Admissions(s.rm.Conn()).List(ctx)
}

func (s *ContentService) DeleteAdmission(ctx context.Context, id string) error {
	return s.rm.Admissions(s.rm.Conn()).Delete(ctx, id)
}
