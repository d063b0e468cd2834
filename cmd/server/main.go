package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"classmate/internal/auth"
	"classmate/internal/classrooms"
	"classmate/internal/complaints"
	"classmate/internal/config"
	"classmate/internal/database"
	"classmate/internal/email"
	"classmate/internal/fees"
	"classmate/internal/grades"
	"classmate/internal/identity"
	kafkapkg "classmate/internal/kafka"
	"classmate/internal/leaves"
	"classmate/internal/logger"
	"classmate/internal/profile"
	"classmate/internal/quizzes"
	"classmate/internal/schedules"
	"classmate/internal/server"
	"classmate/internal/session"
	"classmate/internal/storage"
	"classmate/internal/students"
	"classmate/internal/teachers"
)

func main() {
	lgr := logger.New()
	logger.SetDefault(lgr)

	redisAddr := config.GetEnvOrDefault("REDIS_ADDR", "localhost:6379")
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := config.GetEnvInt("REDIS_DB", 0)

	log.Println("Starting classmate server...")

	db := database.New()
	log.Println("Connected to database")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}
	log.Println("Schema is up to date")

	store := session.NewRedisStore(redisAddr, redisPassword, redisDB)
	sessionMgr := session.NewManager(store)
	log.Printf("Session store: %s", redisAddr)

	// Object storage for schedule documents; the server still runs without it,
	// schedule uploads just fail until it comes back
	storageService, err := storage.New(ctx)
	if err != nil {
		log.Printf("Warning: storage unavailable, schedule uploads disabled: %v", err)
	} else {
		log.Println("Storage service initialized")
	}

	idp := identity.NewProvider(db)
	directory := profile.NewDirectory(db)
	authService := auth.NewService(idp, directory)
	authHandler := auth.NewHandler(authService, sessionMgr)

	if adminEmail := os.Getenv("ADMIN_EMAIL"); adminEmail != "" {
		adminPassword := config.MustGetEnv("ADMIN_PASSWORD")
		adminName := config.GetEnvOrDefault("ADMIN_NAME", "Administrator")
		if err := identity.EnsureAdmin(ctx, db, idp, adminEmail, adminPassword, adminName); err != nil {
			log.Fatalf("Failed to bootstrap admin account: %v", err)
		}
		log.Printf("Admin account ensured: %s", adminEmail)
	}

	emailConfig := email.NewConfig()
	emailSender := email.NewSender(emailConfig)
	log.Printf("Email mode: %s", emailConfig.Mode)

	// Kafka is optional; without it decision notifications go straight to SMTP
	var kafkaProducer *kafkapkg.Producer
	if os.Getenv("KAFKA_BROKERS") != "" && config.GetEnvOrDefault("ENABLE_KAFKA", "true") == "true" {
		kafkaConfig, err := kafkapkg.LoadConfig()
		if err != nil {
			log.Printf("Failed to load Kafka config, using direct email: %v", err)
		} else if kafkaProducer, err = kafkapkg.NewProducer(kafkaConfig, lgr); err != nil {
			log.Printf("Failed to create Kafka producer, using direct email: %v", err)
			kafkaProducer = nil
		} else {
			log.Printf("Kafka producer initialized: %s", kafkaConfig.Brokers)
			defer kafkaProducer.Close()
		}
	} else {
		log.Println("Kafka disabled, using direct email")
	}

	classroomSvc := classrooms.NewService(classrooms.NewRepository(db), redisAddr, redisPassword, redisDB)
	studentSvc := students.NewService(students.NewRepository(db), idp)
	gradeSvc := grades.NewService(db)
	quizSvc := quizzes.NewService(db)
	feeSvc := fees.NewService(fees.NewRepository(db))
	leaveSvc := leaves.NewService(leaves.NewRepository(db), kafkaProducer, emailSender)
	complaintSvc := complaints.NewService(complaints.NewRepository(db), kafkaProducer, emailSender)
	scheduleSvc := schedules.NewService(schedules.NewRepository(db), storageService)

	srv := server.New(server.Dependencies{
		Logger:           lgr,
		DB:               db,
		SessionStore:     store,
		SessionMgr:       sessionMgr,
		Storage:          storageService,
		ClassroomSvc:     classroomSvc,
		AuthHandler:      authHandler,
		ClassroomHandler: classrooms.NewHandler(classroomSvc),
		StudentHandler:   students.NewHandler(studentSvc),
		TeacherHandler:   teachers.NewHandler(teachers.NewRepository(db), idp),
		GradeHandler:     grades.NewHandler(gradeSvc),
		QuizHandler:      quizzes.NewHandler(quizSvc),
		FeeHandler:       fees.NewHandler(feeSvc),
		LeaveHandler:     leaves.NewHandler(leaveSvc, lgr),
		ComplaintHandler: complaints.NewHandler(complaintSvc, lgr),
		ScheduleHandler:  schedules.NewHandler(scheduleSvc, lgr),
	})

	cfg := server.LoadConfigFromEnv()
	httpServer := srv.HTTPServer(cfg)

	go func() {
		log.Printf("Listening on port %d", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if err := db.Close(); err != nil {
		log.Printf("Failed to close database: %v", err)
	}

	log.Println("Server stopped")
}
