package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/models"
)

type postNoticeRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body"`
}

func (s *Server) handlePostNotice(c *gin.Context) {
	claims := mustClaims(c)
	if claims == nil {
		return
	}

	var req postNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	n, err := s.content.PostNotice(c.Request.Context(), claims.UserID, req.Title, req.Body)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, n)
}

func (s *Server) handleListNotices(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}
	list, err := s.content.ListNotices(c.Request.Context(), limit)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notices": list})
}

func (s *Server) handleDeleteNotice(c *gin.Context) {
	if err := s.content.DeleteNotice(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type addMaterialRequest struct {
	Title     string `json:"title" binding:"required"`
	Subject   string `json:"subject"`
	ClassName string `json:"class_name"`
	FileKey   string `json:"file_key" binding:"required"`
}

func (s *Server) handleAddMaterial(c *gin.Context) {
	claims := mustClaims(c)
	if claims == nil {
		return
	}

	var req addMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m := &models.StudyMaterial{
		Title:      req.Title,
		Subject:    req.Subject,
		ClassName:  req.ClassName,
		FileKey:    req.FileKey,
		UploadedBy: claims.UserID,
	}
	created, err := s.content.AddMaterial(c.Request.Context(), m)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) handleListMaterials(c *gin.Context) {
	list, err := s.content.ListMaterials(c.Request.Context(), c.Query("class"), c.Query("subject"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"materials": list})
}

func (s *Server) handleDeleteMaterial(c *gin.Context) {
	if err := s.content.DeleteMaterial(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// handleMaterialDownload resolves the stored file key to a short-lived
// download URL. The file bytes never pass through this server.
func (s *Server) handleMaterialDownload(c *gin.Context) {
	m, err := s.content.GetMaterial(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	url, err := s.uploads.PresignGet(c.Request.Context(), m.FileKey)
	if err != nil {
		s.logger.Error(c.Request.Context(), "presign failed", "err", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "file storage unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"download_url": url})
}

type upsertAdmissionRequest struct {
	Program     string `json:"program" binding:"required"`
	Eligibility string `json:"eligibility"`
	Fees        string `json:"fees"`
	Seats       int    `json:"seats"`
}

func (s *Server) handleUpsertAdmission(c *gin.Context) {
	claims := mustClaims(c)
	if claims == nil {
		return
	}

	var req upsertAdmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d := &models.AdmissionDetail{
		Program:     req.Program,
		Eligibility: req.Eligibility,
		Fees:        req.Fees,
		Seats:       req.Seats,
		UpdatedBy:   claims.UserID,
	}
	saved, err := s.content.UpsertAdmission(c.Request.Context(), d)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (s *Server) handleListAdmissions(c *gin.Context) {
	list, err := s.content.ListAdmissions(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admissions": list})
}

func (s *Server) handleDeleteAdmission(c *gin.Context) {
	if err := s.content.DeleteAdmission(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
