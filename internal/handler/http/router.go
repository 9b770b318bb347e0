package http

import (
	"log/slog"
	"os"

	"github.com/gcet-hr/hr-backend-go/internal/config"
	"github.com/gcet-hr/hr-backend-go/internal/domain/user"
	"github.com/gcet-hr/hr-backend-go/internal/handler/http/middleware"
	"github.com/gcet-hr/hr-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

type Handlers struct {
	Auth         AuthHandler
	User         UserHandler
	Attendance   AttendanceHandler
	Leave        LeaveHandler
	Payroll      PayrollHandler
	Notification NotificationHandler
	Report       ReportHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  logLevel(cfg.App.LogLevel),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/logout", h.Auth.Logout)

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(middleware.SessionVerifier(jwtService.JWTAuth(), jwtService.CookieName()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/me", h.Auth.Me)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(middleware.SessionVerifier(jwtService.JWTAuth(), jwtService.CookieName()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionAttendanceCreate)).
					Post("/check-in", h.Attendance.CheckIn)
				r.With(middleware.RequirePermission(user.PermissionAttendanceCreate)).
					Post("/check-out", h.Attendance.CheckOut)
				r.With(middleware.RequirePermission(user.PermissionAttendanceViewOwn)).
					Get("/me", h.Attendance.ListMine)
				r.With(middleware.RequirePermission(user.PermissionAttendanceViewAll)).
					Get("/", h.Attendance.List)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionLeaveCreate)).
					Post("/", h.Leave.Create)
				r.With(middleware.RequirePermission(user.PermissionLeaveViewOwn)).
					Get("/", h.Leave.List)

				r.Route("/{id}", func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionLeaveApprove))
					r.Post("/approve", h.Leave.Approve)
					r.Post("/reject", h.Leave.Reject)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionPayrollView)).
					Get("/", h.Payroll.List)
				r.With(middleware.RequirePermission(user.PermissionPayrollCreate)).
					Post("/", h.Payroll.Create)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.List)
				r.Post("/", h.Notification.Create)
				r.Post("/mark-read", h.Notification.MarkRead)
				r.Get("/unread-count", h.Notification.UnreadCount)
			})

			r.Route("/users", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionUserViewAll)).
					Get("/", h.User.List)
				r.With(middleware.RequireAdmin).
					Post("/", h.User.Create)
			})

			r.Route("/export", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionReportsExport))
				r.Get("/attendance", h.Report.ExportAttendance)
				r.Get("/leaves", h.Report.ExportLeaves)
			})
		})
	})
	return r
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
