package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/common"
)

const classDateLayout = "2006-01-02"

type markAttendanceRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	ClassDate string `json:"class_date" binding:"required"`
	Subject   string `json:"subject" binding:"required"`
	Present   bool   `json:"present"`
}

func (s *Server) handleMarkAttendance(c *gin.Context) {
	claims := mustClaims(c)
	if claims == nil {
		return
	}

	var req markAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	classDate, err := time.Parse(classDateLayout, req.ClassDate)
	if err != nil {
		fail(c, fmt.Errorf("%w: class_date must be YYYY-MM-DD", common.ErrValidation))
		return
	}

	rec, err := s.attendance.Mark(c.Request.Context(),
		claims.UserID, req.StudentID, classDate, req.Subject, req.Present)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) handleAttendanceSheet(c *gin.Context) {
	dateStr := c.Query("date")
	subject := c.Query("subject")
	if dateStr == "" || subject == "" {
		fail(c, fmt.Errorf("%w: date and subject query params required", common.ErrValidation))
		return
	}
	classDate, err := time.Parse(classDateLayout, dateStr)
	if err != nil {
		fail(c, fmt.Errorf("%w: date must be YYYY-MM-DD", common.ErrValidation))
		return
	}

	recs, err := s.attendance.Sheet(c.Request.Context(), classDate, subject)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": recs})
}

func (s *Server) handleStudentAttendance(c *gin.Context) {
	claims := mustClaims(c)
	if claims == nil {
		return
	}

	recs, sum, err := s.attendance.ForStudent(c.Request.Context(), claims.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": recs, "summary": sum})
}
