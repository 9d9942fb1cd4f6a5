package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/staffdesk/staff-management/internal/department"
	"github.com/staffdesk/staff-management/internal/employee"
	"github.com/staffdesk/staff-management/internal/transport/middleware"
	"github.com/staffdesk/staff-management/internal/transport/swagger"
	"github.com/staffdesk/staff-management/web"
)

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, departmentHandler *department.Handler, employeeHandler *employee.Handler, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.Trace)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Mount API under /api/v1 to match OpenAPI basePath
	router.Route("/api/v1", func(r chi.Router) {
		// Health check routes
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		if departmentHandler != nil {
			r.Route("/departments", func(dr chi.Router) {
				dr.Get("/", departmentHandler.ListDepartments)
				dr.Post("/", departmentHandler.CreateDepartment)
				dr.Get("/{id}", departmentHandler.GetDepartment)
				dr.Put("/{id}", departmentHandler.UpdateDepartment)
				dr.Delete("/{id}", departmentHandler.DeleteDepartment)
			})
		}

		if employeeHandler != nil {
			r.Route("/employees", func(er chi.Router) {
				er.Get("/", employeeHandler.ListEmployees)
				er.Post("/", employeeHandler.CreateEmployee)
				er.Get("/{id}", employeeHandler.GetEmployee)
				er.Put("/{id}", employeeHandler.UpdateEmployee)
				er.Delete("/{id}", employeeHandler.DeleteEmployee)
			})
		}
	})

	// Embedded web client at root; registered last so API routes win
	router.Handle("/*", web.Handler())
}
