package httpapi

import (
	"net/http"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/models"
	"github.com/gin-gonic/gin"
)

func (s *Server) handleTeacherProfile(c *gin.Context) {
	claims := mustClaims(c)
	if claims == nil {
		return
	}

	p, err := s.profiles.Teacher(c.Request.Context(), claims.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) handleTeacherProfileUpdate(c *gin.Context) {
	claims := mustClaims(c)
	if claims == nil {
		return
	}

	var p models.TeacherProfile
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// the path identity wins over whatever user_id the body carries
	p.UserID = claims.UserID

	updated, err := s.profiles.UpdateTeacher(c.Request.Context(), &p)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) handleStudentProfile(c *gin.Context) {
	claims := mustClaims(c)
	if claims == nil {
		return
	}

	p, err := s.profiles.Student(c.Request.Context(), claims.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) handleStudentProfileUpdate(c *gin.Context) {
	claims := mustClaims(c)
	if claims == nil {
		return
	}

	var p models.StudentProfile
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p.UserID = claims.UserID

	updated, err := s.profiles.UpdateStudent(c.Request.Context(), &p)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) handleAdminProfile(c *gin.Context) {
	claims := mustClaims(c)
	if claims == nil {
		return
	}

	p, err := s.profiles.Admin(c.Request.Context(), claims.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) handleAdminProfileUpdate(c *gin.Context) {
	claims := mustClaims(c)
	if claims == nil {
		return
	}

	var p models.AdminProfile
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p.UserID = claims.UserID

	updated, err := s.profiles.UpdateAdmin(c.Request.Context(), &p)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) handleListStudents(c *gin.Context) {
	list, err := s.profiles.ListStudents(c.Request.Context(), c.Query("class"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"students": list})
}
