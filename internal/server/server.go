package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"classmate/internal/auth"
	"classmate/internal/classrooms"
	"classmate/internal/complaints"
	"classmate/internal/config"
	"classmate/internal/database"
	"classmate/internal/fees"
	"classmate/internal/grades"
	"classmate/internal/leaves"
	"classmate/internal/quizzes"
	"classmate/internal/schedules"
	"classmate/internal/session"
	"classmate/internal/storage"
	"classmate/internal/students"
	"classmate/internal/teachers"
)

// Server holds the wired handlers and the infrastructure needed for the
// health endpoint
type Server struct {
	logger *slog.Logger

	db           database.Service
	sessionStore session.Store
	sessionMgr   session.Manager
	storage      storage.Service
	classroomSvc *classrooms.Service

	authHandler      *auth.Handler
	classroomHandler *classrooms.Handler
	studentHandler   *students.Handler
	teacherHandler   *teachers.Handler
	gradeHandler     *grades.Handler
	quizHandler      *quizzes.Handler
	feeHandler       *fees.Handler
	leaveHandler     *leaves.Handler
	complaintHandler *complaints.Handler
	scheduleHandler  *schedules.Handler
}

// Dependencies carries everything the server needs; wiring happens in main
type Dependencies struct {
	Logger *slog.Logger

	DB           database.Service
	SessionStore session.Store
	SessionMgr   session.Manager
	Storage      storage.Service
	ClassroomSvc *classrooms.Service

	AuthHandler      *auth.Handler
	ClassroomHandler *classrooms.Handler
	StudentHandler   *students.Handler
	TeacherHandler   *teachers.Handler
	GradeHandler     *grades.Handler
	QuizHandler      *quizzes.Handler
	FeeHandler       *fees.Handler
	LeaveHandler     *leaves.Handler
	ComplaintHandler *complaints.Handler
	ScheduleHandler  *schedules.Handler
}

func New(deps Dependencies) *Server {
	return &Server{
		logger:           deps.Logger,
		db:               deps.DB,
		sessionStore:     deps.SessionStore,
		sessionMgr:       deps.SessionMgr,
		storage:          deps.Storage,
		classroomSvc:     deps.ClassroomSvc,
		authHandler:      deps.AuthHandler,
		classroomHandler: deps.ClassroomHandler,
		studentHandler:   deps.StudentHandler,
		teacherHandler:   deps.TeacherHandler,
		gradeHandler:     deps.GradeHandler,
		quizHandler:      deps.QuizHandler,
		feeHandler:       deps.FeeHandler,
		leaveHandler:     deps.LeaveHandler,
		complaintHandler: deps.ComplaintHandler,
		scheduleHandler:  deps.ScheduleHandler,
	}
}

// Config holds HTTP server configuration
type Config struct {
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	AllowedOrigins []string
}

// LoadConfigFromEnv loads server configuration from environment variables
func LoadConfigFromEnv() *Config {
	return &Config{
		Port:           config.GetEnvInt("PORT", 8080),
		ReadTimeout:    config.GetEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:   config.GetEnvDuration("SERVER_WRITE_TIMEOUT", 60*time.Second),
		IdleTimeout:    config.GetEnvDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
		AllowedOrigins: config.GetEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
	}
}

// HTTPServer builds the http.Server with routes registered
func (s *Server) HTTPServer(cfg *Config) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.RegisterRoutes(cfg),
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}
}
