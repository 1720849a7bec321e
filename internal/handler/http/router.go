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
	"github.com/palmahr/payroll-engine-go/internal/config"
	"github.com/palmahr/payroll-engine-go/internal/handler/http/middleware"
)

func NewRouter(
	cfg *config.Config,
	tokenAuth *jwtauth.JWTAuth,
	payrollHandler PayrollHandler,
	attendanceHandler AttendanceHandler,
	regulationHandler RegulationHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-engine"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
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

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(tokenAuth))
			r.Use(middleware.AuthRequired(tokenAuth))

			r.Route("/payroll", func(r chi.Router) {
				r.Post("/generate", payrollHandler.GeneratePayroll)
				r.Post("/save", payrollHandler.SavePayroll)
				r.Get("/records", payrollHandler.ListPayrollRecords)
				r.Get("/summary", payrollHandler.GetPayrollSummary)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/summary", attendanceHandler.GetMonthlySummary)
			})

			r.Route("/regulations", func(r chi.Router) {
				r.Get("/", regulationHandler.ListRegulations)
				r.Post("/", regulationHandler.CreateRegulation)
			})
		})
	})
	return r
}
