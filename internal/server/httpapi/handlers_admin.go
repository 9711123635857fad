package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/common"
)

func (s *Server) handleListUsers(c *gin.Context) {
	users, err := s.users.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

type provisionUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Name     string `json:"name"`
}

func (s *Server) handleProvisionUser(c *gin.Context) {
	var req provisionUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role, ok := common.ParseRole(req.Role)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
		return
	}

	user, err := s.users.Provision(c.Request.Context(), req.Username, req.Password, role, req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (s *Server) handleDeleteUser(c *gin.Context) {
	claims := mustClaims(c)
	if claims == nil {
		return
	}
	id := c.Param("id")
	if id == claims.UserID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot delete own account"})
		return
	}

	if err := s.users.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
