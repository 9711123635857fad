package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/common"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/logging"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/config"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/services"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/storage"
)

// Server owns the gin engine and the http.Server lifecycle.
type Server struct {
	cfg        *config.Config
	logger     logging.Logger
	users      *services.UserService
	profiles   *services.ProfileService
	attendance *services.AttendanceService
	content    *services.ContentService
	uploads    *storage.UploadService
	redis      *redis.Client
	healthy    func(ctx context.Context) bool
}

// NewServer wires services into the REST surface. redisClient may be nil;
// rate limiting then falls back to the in-memory bucket.
func NewServer(
	cfg *config.Config,
	logger logging.Logger,
	users *services.UserService,
	profiles *services.ProfileService,
	attendance *services.AttendanceService,
	content *services.ContentService,
	uploads *storage.UploadService,
	redisClient *redis.Client,
	healthy func(ctx context.Context) bool,
) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		users:      users,
		profiles:   profiles,
		attendance: attendance,
		content:    content,
		uploads:    uploads,
		redis:      redisClient,
		healthy:    healthy,
	}
}

// Router builds the gin engine with all middleware and routes attached.
func (s *Server) Router() *gin.Engine {
	if s.cfg.Env == "production" || s.cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/healthz", "/metrics"},
	}))
	r.Use(corsMiddleware())
	r.Use(securityHeaders())
	r.Use(observeRequests())

	var limiter rateLimiter
	if s.redis != nil {
		limiter = newRedisLimiter(s.redis, s.cfg.RateLimitPerMin)
	} else {
		limiter = newTokenBucketLimiter(s.cfg.RateLimitPerMin, s.cfg.RateLimitPerMin)
	}
	r.Use(rateLimit(limiter))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", s.handleHealthz)

	api := r.Group("/api")

	// public surface
	api.POST("/auth/login", s.handleLogin)
	api.GET("/notices", s.handleListNotices)
	api.GET("/admission", s.handleListAdmissions)
	api.GET("/study-materials", s.handleListMaterials)

	// any authenticated user
	authed := api.Group("", bearerAuth([]byte(s.cfg.SecretKey), s.cfg.JWTIssuer))
	authed.GET("/auth/me", s.handleMe)
	authed.POST("/uploads/profile-picture", s.handlePresignProfilePicture)
	authed.GET("/study-materials/:id/download", s.handleMaterialDownload)

	teacher := authed.Group("", requireRole(common.RoleTeacher))
	teacher.GET("/teachers/profile", s.handleTeacherProfile)
	teacher.PUT("/teacher-profile/update", s.handleTeacherProfileUpdate)
	teacher.POST("/teachers/mark-attendance", s.handleMarkAttendance)
	teacher.GET("/teachers/attendance-sheet", s.handleAttendanceSheet)
	teacher.GET("/teachers/students", s.handleListStudents)
	teacher.POST("/study-materials", s.handleAddMaterial)
	teacher.DELETE("/study-materials/:id", s.handleDeleteMaterial)

	student := authed.Group("", requireRole(common.RoleStudent))
	student.GET("/students/profile", s.handleStudentProfile)
	student.PUT("/student-profile/update", s.handleStudentProfileUpdate)
	student.GET("/students/attendance", s.handleStudentAttendance)

	admin := authed.Group("", requireRole(common.RoleAdmin))
	admin.GET("/admin/profile", s.handleAdminProfile)
	admin.PUT("/admin/profile", s.handleAdminProfileUpdate)
	admin.GET("/admin/users", s.handleListUsers)
	admin.POST("/admin/users", s.handleProvisionUser)
	admin.DELETE("/admin/users/:id", s.handleDeleteUser)
	admin.POST("/notices", s.handlePostNotice)
	admin.DELETE("/notices/:id", s.handleDeleteNotice)
	admin.PUT("/admission", s.handleUpsertAdmission)
	admin.DELETE("/admission/:id", s.handleDeleteAdmission)

	return r
}

func (s *Server) handleHealthz(c *gin.Context) {
	dbHealthy := s.healthy == nil || s.healthy(c.Request.Context())
	redisHealthy := true
	if s.redis != nil {
		redisHealthy = s.redis.Ping(c.Request.Context()).Err() == nil
	}
	status := http.StatusOK
	if !dbHealthy || !redisHealthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"status": "ok", "db": dbHealthy, "redis": redisHealthy})
}

// Run serves until ctx is cancelled, then shuts down gracefully with a
// 10-second drain window.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.HTTPAddr,
		Handler:      s.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "starting http server", "addr", s.cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Warn(shutdownCtx, "forced shutdown", "err", err)
		return err
	}
	s.logger.Info(shutdownCtx, "server exited")
	return nil
}
