package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"classmate/internal/profile"
)

func (s *Server) RegisterRoutes(cfg *Config) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggingMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/health", s.healthHandler)
	r.POST("/auth/login", s.authHandler.Login)
	r.POST("/auth/logout", s.authHandler.Logout)

	authed := r.Group("/", SessionAuthMiddleware(s.sessionMgr))

	authed.GET("/auth/me", s.authHandler.Me)

	anyRole := RequireRoles(profile.RoleAdmin, profile.RoleTeacher, profile.RoleStudent)
	adminOnly := RequireRoles(profile.RoleAdmin)
	staff := RequireRoles(profile.RoleAdmin, profile.RoleTeacher)
	applicants := RequireRoles(profile.RoleTeacher, profile.RoleStudent)

	classroomRoutes := authed.Group("/classrooms")
	{
		classroomRoutes.GET("", anyRole, s.classroomHandler.List)
		classroomRoutes.GET("/:id", anyRole, s.classroomHandler.Get)
		classroomRoutes.POST("", adminOnly, s.classroomHandler.Create)
		classroomRoutes.PUT("/:id", adminOnly, s.classroomHandler.Update)
		classroomRoutes.DELETE("/:id", adminOnly, s.classroomHandler.Delete)
	}

	studentRoutes := authed.Group("/students")
	{
		studentRoutes.GET("", staff, s.studentHandler.List)
		studentRoutes.GET("/:id", staff, s.studentHandler.Get)
		studentRoutes.POST("", adminOnly, s.studentHandler.Create)
		studentRoutes.PUT("/:id", adminOnly, s.studentHandler.Update)
		studentRoutes.DELETE("/:id", adminOnly, s.studentHandler.Delete)
	}

	teacherRoutes := authed.Group("/teachers", adminOnly)
	{
		teacherRoutes.GET("", s.teacherHandler.List)
		teacherRoutes.GET("/:id", s.teacherHandler.Get)
		teacherRoutes.POST("", s.teacherHandler.Create)
		teacherRoutes.PUT("/:id", s.teacherHandler.Update)
		teacherRoutes.DELETE("/:id", s.teacherHandler.Delete)
	}

	gradeRoutes := authed.Group("/grades")
	{
		// List scopes itself: students only ever see their own grades
		gradeRoutes.GET("", anyRole, s.gradeHandler.List)
		gradeRoutes.POST("", RequireRoles(profile.RoleTeacher), s.gradeHandler.Create)
		gradeRoutes.PUT("/:id", RequireRoles(profile.RoleTeacher), s.gradeHandler.Update)
		gradeRoutes.DELETE("/:id", RequireRoles(profile.RoleTeacher), s.gradeHandler.Delete)
	}

	quizRoutes := authed.Group("/quizzes")
	{
		quizRoutes.GET("", anyRole, s.quizHandler.List)
		quizRoutes.GET("/:id", anyRole, s.quizHandler.Get)
		quizRoutes.POST("", RequireRoles(profile.RoleTeacher), s.quizHandler.Create)
		quizRoutes.PUT("/:id", RequireRoles(profile.RoleTeacher), s.quizHandler.Update)
		quizRoutes.DELETE("/:id", RequireRoles(profile.RoleTeacher), s.quizHandler.Delete)
	}

	feeRoutes := authed.Group("/fees")
	{
		// List scopes itself: students only ever see their own fees
		feeRoutes.GET("", RequireRoles(profile.RoleAdmin, profile.RoleStudent), s.feeHandler.List)
		feeRoutes.POST("", adminOnly, s.feeHandler.Create)
		feeRoutes.PUT("/:id", adminOnly, s.feeHandler.Update)
		feeRoutes.POST("/:id/pay", adminOnly, s.feeHandler.MarkPaid)
		feeRoutes.DELETE("/:id", adminOnly, s.feeHandler.Delete)
	}

	leaveRoutes := authed.Group("/leaves")
	{
		leaveRoutes.GET("", anyRole, s.leaveHandler.List)
		leaveRoutes.POST("", applicants, s.leaveHandler.Submit)
		leaveRoutes.POST("/:id/respond", adminOnly, s.leaveHandler.Respond)
		leaveRoutes.DELETE("/:id", applicants, s.leaveHandler.Delete)
	}

	complaintRoutes := authed.Group("/complaints")
	{
		complaintRoutes.GET("", anyRole, s.complaintHandler.List)
		complaintRoutes.POST("", applicants, s.complaintHandler.File)
		complaintRoutes.POST("/:id/resolve", adminOnly, s.complaintHandler.Resolve)
		complaintRoutes.DELETE("/:id", applicants, s.complaintHandler.Delete)
	}

	scheduleRoutes := authed.Group("/schedules")
	{
		scheduleRoutes.GET("", anyRole, s.scheduleHandler.List)
		scheduleRoutes.GET("/:id/download", anyRole, s.scheduleHandler.Download)
		scheduleRoutes.POST("", staff, s.scheduleHandler.Create)
		scheduleRoutes.DELETE("/:id", staff, s.scheduleHandler.Delete)
	}

	return r
}

func (s *Server) healthHandler(c *gin.Context) {
	response := make(map[string]interface{})

	response["database"] = s.db.Health()

	sessionHealth := make(map[string]string)
	if err := s.sessionStore.Health(c.Request.Context()); err != nil {
		sessionHealth["status"] = "down"
		sessionHealth["error"] = err.Error()
	} else {
		sessionHealth["status"] = "up"
	}
	response["sessions"] = sessionHealth

	if s.storage != nil {
		storageHealth := make(map[string]string)
		if err := s.storage.Health(c.Request.Context()); err != nil {
			storageHealth["status"] = "down"
			storageHealth["error"] = err.Error()
		} else {
			storageHealth["status"] = "up"
		}
		response["storage"] = storageHealth
	}

	if s.classroomSvc != nil {
		response["classroom_cache"] = s.classroomSvc.Health(c.Request.Context())
	}

	c.JSON(http.StatusOK, response)
}
