package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sunfocus/erp-backend-go/internal/config"
	"github.com/sunfocus/erp-backend-go/internal/domain/leave"
	appHTTP "github.com/sunfocus/erp-backend-go/internal/handler/http"
	"github.com/sunfocus/erp-backend-go/internal/pkg/database"
	"github.com/sunfocus/erp-backend-go/internal/pkg/event"
	"github.com/sunfocus/erp-backend-go/internal/pkg/jwt"
	"github.com/sunfocus/erp-backend-go/internal/repository/postgresql"
	employeeService "github.com/sunfocus/erp-backend-go/internal/service/employee"
	leaveService "github.com/sunfocus/erp-backend-go/internal/service/leave"
)

const (
	appName    = "sunfocus-erp"
	appVersion = "v1.0.0"
)

type publisher interface {
	leave.EventPublisher
	Close() error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logLevel := parseLogLevel(cfg.App.LogLevel)
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})).With(
		slog.String("app", appName),
		slog.String("env", cfg.App.Env),
	))

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		slog.Error("error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(context.Background(), db); err != nil {
			slog.Error("migration failed", "error", err)
			os.Exit(1)
		}
	}

	var eventPublisher publisher = event.NoopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		eventPublisher = event.NewKafkaPublisher(event.NewKafkaWriter(cfg.Kafka.Brokers), cfg.Kafka.LeaveEventTopic)
		slog.Info("publishing leave events", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.LeaveEventTopic)
	}
	defer func() {
		if err := eventPublisher.Close(); err != nil {
			slog.Error("failed to close event publisher", "error", err)
		}
	}()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	transactor := postgresql.NewTransactor(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	leaveSvc := leaveService.NewLeaveService(transactor, leaveRequestRepo, leaveBalanceRepo, employeeRepo, eventPublisher)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)

	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	router := appHTTP.NewRouter(JWTService, leaveHandler, employeeHandler, appHTTP.RouterOptions{
		AppName:        appName,
		Version:        appVersion,
		Env:            cfg.App.Env,
		LogLevel:       logLevel,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		RateLimitRPS:   cfg.HTTP.RateLimitRPS,
		RateLimitBurst: cfg.HTTP.RateLimitBurst,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server running", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
