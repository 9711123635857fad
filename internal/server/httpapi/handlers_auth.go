package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := s.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (s *Server) handleMe(c *gin.Context) {
	claims := mustClaims(c)
	if claims == nil {
		return
	}

	user, err := s.users.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (s *Server) handlePresignProfilePicture(c *gin.Context) {
	claims := mustClaims(c)
	if claims == nil {
		return
	}

	key, url, err := s.uploads.PresignPut(c.Request.Context(), "profile-pictures/"+claims.UserID)
	if err != nil {
		s.logger.Error(c.Request.Context(), "presign failed", "err", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "image storage unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"key": key, "upload_url": url})
}
