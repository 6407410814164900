package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/khuynh22/financial-tracker/internal/config"
	"github.com/khuynh22/financial-tracker/internal/handler"
	"github.com/khuynh22/financial-tracker/internal/middleware"
	"github.com/khuynh22/financial-tracker/internal/repository"
	"github.com/khuynh22/financial-tracker/internal/service"
	"github.com/khuynh22/financial-tracker/internal/utils/email"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	mailer := email.NewSender(cfg, logger)
	svc := service.NewService(repo, logger, cfg, mailer)
	h := handler.NewHandler(svc)

	// Schedule payment reminders
	c := cron.New()
	if _, err := c.AddFunc(cfg.ReminderSchedule, func() {
		if err := svc.SendDueReminders(); err != nil {
			logger.Errorf("Reminder sweep failed: %v", err)
		}
	}); err != nil {
		logger.Fatalf("Failed to schedule reminders: %v", err)
	}
	c.Start()
	defer c.Stop()

	// Setup router
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/register", h.Register).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")
	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))
	authRouter.HandleFunc("/accounts", h.CreateAccount).Methods("POST")
	authRouter.HandleFunc("/accounts", h.ListAccounts).Methods("GET")
	authRouter.HandleFunc("/accounts/{id}", h.DeleteAccount).Methods("DELETE")
	authRouter.HandleFunc("/snapshots", h.CreateSnapshot).Methods("POST")
	authRouter.HandleFunc("/snapshots", h.ListSnapshots).Methods("GET")
	authRouter.HandleFunc("/snapshots/latest", h.LatestSnapshot).Methods("GET")
	authRouter.HandleFunc("/snapshots/{id}", h.UpdateSnapshot).Methods("PUT")
	authRouter.HandleFunc("/payments", h.CreatePayment).Methods("POST")
	authRouter.HandleFunc("/payments", h.ListPayments).Methods("GET")
	authRouter.HandleFunc("/payments/affordability", h.Affordability).Methods("GET")
	authRouter.HandleFunc("/analytics/series", h.Series).Methods("GET")
	authRouter.HandleFunc("/analytics/charts", h.Charts).Methods("GET")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
