package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumeq/api/http/handlers"
)

// Register wires all HTTP routes onto the given Fiber app. Submission
// endpoints sit behind the JWT middleware; polling endpoints are public,
// the job id itself is the capability.
func Register(
	app *fiber.App,
	authH *handlers.AuthHandler,
	healthH *handlers.HealthHandler,
	submitH *handlers.SubmitHandler,
	jobsH *handlers.JobsHandler,
	authMW fiber.Handler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", healthH.Health)
	v1.Get("/ready", healthH.Ready)

	a := v1.Group("/auth")
	a.Post("/register", authH.Register)
	a.Post("/login", authH.Login)

	v1.Post("/analyze", authMW, submitH.Analyze)
	v1.Post("/improve", authMW, submitH.Improve)
	v1.Post("/generate", authMW, submitH.Generate)

	v1.Get("/jobs/:id", jobsH.Status)
	v1.Get("/jobs/:id/result", jobsH.Result)
}
