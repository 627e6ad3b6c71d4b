package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/transkotakita/payroll-backend-go/internal/domain/gate"
	"github.com/transkotakita/payroll-backend-go/internal/handler/http/middleware"
	"github.com/transkotakita/payroll-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	gateService gate.GateService,
	authHandler AuthHandler,
	gateHandler GateHandler,
	employeeHandler EmployeeHandler,
	paymentHandler PaymentHandler,
	dashboardHandler DashboardHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "tkk-payroll"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/gate", func(r chi.Router) {
				r.Post("/unlock", gateHandler.Unlock)
				r.Post("/lock", gateHandler.Lock)
				r.Get("/status", gateHandler.Status)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/supervisors", employeeHandler.ListSupervisors)
				r.Post("/", employeeHandler.Create)
				r.Put("/{id}", employeeHandler.Update)
				r.Delete("/{id}", employeeHandler.Delete)
				r.Get("/{id}/attendance", employeeHandler.Attendance)

				// Gate-protected: the shared employee list view
				r.Group(func(r chi.Router) {
					r.Use(middleware.EmployeeAccessRequired(gateService))
					r.Get("/", employeeHandler.List)
				})
			})

			r.Route("/payments", func(r chi.Router) {
				r.Post("/", paymentHandler.Record)
				r.Get("/", paymentHandler.List)
				r.Put("/{id}", paymentHandler.Update)
				r.Delete("/{id}", paymentHandler.Delete)
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/summary", dashboardHandler.Summary)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/payment-summary", reportHandler.PaymentSummaryCSV)
			})
		})
	})
	return r
}
