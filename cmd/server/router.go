package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/hearthealth/heart-health-api/internal/api"
	apiMiddleware "github.com/hearthealth/heart-health-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
//
// Every route is public. The token-verification gate
// (internal/api/middleware.AuthMiddleware) exists and is the intended
// protection for sensitive routes, but the deployed client contract wires
// it to none of them, including the full user and appointment listings.
// That gap is preserved here rather than silently closed; see DESIGN.md.
//
// Paths are bit-exact contracts with the client application; do not
// rename them.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	sessionHandler := api.NewSessionHandler(app.tokenService, app.config.Server.IsProduction())
	userHandler := api.NewUserHandler(app.users)
	testHandler := api.NewCatalogHandler(app.tests, "test")
	doctorHandler := api.NewCatalogHandler(app.doctors, "doctor")
	blogHandler := api.NewCatalogHandler(app.blogs, "blog")
	appointmentHandler := api.NewAppointmentHandler(app.appointments)
	paymentHandler := api.NewPaymentHandler(app.paymentService)

	// Session
	r.Post("/jwt", sessionHandler.IssueToken)
	r.Get("/logout", sessionHandler.Logout)

	// Users (email-keyed, create-only upsert)
	r.Get("/users", userHandler.List)
	r.Get("/users/{email}", userHandler.Get)
	r.Put("/users/{email}", userHandler.Put)
	r.Delete("/users/{email}", userHandler.Delete)

	// Diagnostic tests
	r.Get("/all_tests", testHandler.List)
	r.Get("/all_tests/{id}", testHandler.Get)
	r.Post("/all_tests", testHandler.Create)
	r.Delete("/all_tests/{id}", testHandler.Delete)

	// Doctors
	r.Get("/doctors", doctorHandler.List)
	r.Get("/doctors/{id}", doctorHandler.Get)
	r.Post("/doctors", doctorHandler.Create)
	r.Delete("/doctors/{id}", doctorHandler.Delete)

	// Blogs
	r.Get("/blogs", blogHandler.List)
	r.Get("/blogs/{id}", blogHandler.Get)
	r.Post("/blogs", blogHandler.Create)
	r.Delete("/blogs/{id}", blogHandler.Delete)

	// Payments
	r.Post("/create-payment-intent", paymentHandler.CreateIntent)

	// Appointments. Note the historical path split: listing and creation
	// use /appoint, deletion uses /appoints/{id}.
	r.Get("/appoint", appointmentHandler.List)
	r.Get("/appoint/{email}", appointmentHandler.ListByEmail)
	r.Post("/appoint", appointmentHandler.Create)
	r.Delete("/appoints/{id}", appointmentHandler.Delete)

	// Greeting / liveness
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("Hello from Heart Health Center Server..")); err != nil {
			app.logger.Error("failed to write greeting response", "error", err)
		}
	})

	return r
}
