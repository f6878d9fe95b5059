package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/sunfocus/erp-backend-go/internal/domain/user"
	"github.com/sunfocus/erp-backend-go/internal/handler/http/middleware"
	"github.com/sunfocus/erp-backend-go/internal/handler/http/response"
	"github.com/sunfocus/erp-backend-go/internal/pkg/jwt"
	"golang.org/x/time/rate"
)

type RouterOptions struct {
	AppName        string
	Version        string
	Env            string
	LogLevel       slog.Level
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
}

func NewRouter(JWTService jwt.Service, leaveHandler LeaveHandler, employeeHandler EmployeeHandler, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       opts.LogLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", opts.AppName),
		slog.String("version", opts.Version),
		slog.String("env", opts.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	limiter := middleware.NewKeyedRateLimiter(rate.Limit(opts.RateLimitRPS), opts.RateLimitBurst)

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)
			r.Use(middleware.RateLimit(limiter))

			r.Route("/leaves", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionLeaveCreate)).Post("/", leaveHandler.CreateRequest)
				r.With(middleware.RequirePermission(user.PermissionLeaveViewOwn)).Get("/my", leaveHandler.GetMyRequests)
				r.With(middleware.RequirePermission(user.PermissionLeaveBalanceOwn)).Get("/my/balance", leaveHandler.GetMyBalance)
				r.With(middleware.RequirePermission(user.PermissionLeaveCreate)).Delete("/{id}", leaveHandler.CancelRequest)
			})

			r.Route("/manager/leaves", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionLeaveViewTeam)).Get("/", leaveHandler.ListTeamRequests)
				r.With(middleware.RequirePermission(user.PermissionLeaveApprove)).Put("/{id}/decision", leaveHandler.DecideRequest)
			})

			r.Route("/hr", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionLeaveViewAll)).Get("/leaves", leaveHandler.ListRequests)
				r.With(middleware.RequirePermission(user.PermissionLeaveViewAll)).Get("/leaves/{id}", leaveHandler.GetRequest)
				r.With(middleware.RequirePermission(user.PermissionEmployeeCreate)).Post("/employees", employeeHandler.Register)
				r.With(middleware.RequirePermission(user.PermissionLeaveBalanceAll)).Get("/employees/{id}/leave-balance", leaveHandler.GetEmployeeBalance)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})

	return r
}
