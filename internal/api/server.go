package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/maxaizer/talenthub/internal/logger"
	"github.com/maxaizer/talenthub/internal/services"
	log "github.com/sirupsen/logrus"
)

const maxUploadSize = 10 * 1024 * 1024

type Services struct {
	Auth         *services.AuthService
	Jobs         *services.JobService
	Applications *services.ApplicationService
	Profile      *services.ProfileService
	Alerts       *services.AlertService
	Analytics    *services.AnalyticsService
}

type Handler struct {
	services Services
}

// NewServer builds the JSON API. Handlers return errors; errorHandler maps them to status codes.
func NewServer(s Services) *fiber.App {

	app := fiber.New(fiber.Config{
		AppName:               "talenthub",
		ErrorHandler:          errorHandler,
		BodyLimit:             maxUploadSize,
		Immutable:             true,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(requestLogger)

	h := &Handler{services: s}
	api := app.Group("/api")

	api.Post("/auth/login", h.Login)
	api.Post("/auth/register", h.Register)
	api.Post("/auth/logout", h.Logout)
	api.Get("/session", h.Session)

	api.Get("/jobs", h.ListJobs)
	api.Post("/jobs", h.PostJob)
	api.Get("/jobs/fields", h.ListFields)
	api.Get("/jobs/:id", h.GetJob)
	api.Get("/jobs/:id/assessment", h.PendingAssessment)
	api.Post("/jobs/:id/assessment", h.Analyze)
	api.Delete("/jobs/:id/assessment", h.Dismiss)
	api.Post("/jobs/:id/applications", h.Submit)

	api.Get("/applications", h.ListApplications)
	api.Patch("/applications/:id/status", h.UpdateStatus)
	api.Get("/recruiter/pipeline", h.Pipeline)
	api.Get("/dashboard", h.Dashboard)

	api.Put("/profile", h.UpdateProfile)
	api.Post("/resume", h.UploadResume)

	api.Get("/alerts", h.ListAlerts)
	api.Post("/alerts", h.CreateAlert)
	api.Put("/alerts/:id", h.UpdateAlert)
	api.Delete("/alerts/:id", h.DeleteAlert)
	api.Post("/alerts/:id/toggle", h.ToggleAlert)

	return app
}

var errorStatuses = []struct {
	err    error
	status int
}{
	{services.ErrValidation, fiber.StatusBadRequest},
	{services.ErrNotLoggedIn, fiber.StatusUnauthorized},
	{services.ErrForbidden, fiber.StatusForbidden},
	{services.ErrAccountNotFound, fiber.StatusNotFound},
	{services.ErrJobNotFound, fiber.StatusNotFound},
	{services.ErrApplicationNotFound, fiber.StatusNotFound},
	{services.ErrAlertNotFound, fiber.StatusNotFound},
	{services.ErrAccountExists, fiber.StatusConflict},
	{services.ErrAlreadyApplied, fiber.StatusConflict},
	{services.ErrInvalidTransition, fiber.StatusConflict},
	{services.ErrAssessmentRequired, fiber.StatusConflict},
	{services.ErrAssessmentInProgress, fiber.StatusConflict},
	{services.ErrAssessmentCanceled, fiber.StatusConflict},
	{services.ErrPersistence, fiber.StatusInternalServerError},
}

func statusOf(err error) int {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	for _, mapping := range errorStatuses {
		if errors.Is(err, mapping.err) {
			return mapping.status
		}
	}
	return fiber.StatusInternalServerError
}

func errorHandler(c *fiber.Ctx, err error) error {
	status := statusOf(err)
	if status >= fiber.StatusInternalServerError {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeHttp).
			Errorf("%s %s failed: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()

	if err := c.Next(); err != nil {
		if handlerErr := c.App().Config().ErrorHandler(c, err); handlerErr != nil {
			_ = c.SendStatus(fiber.StatusInternalServerError)
		}
	}

	log.WithFields(log.Fields{
		"method":   c.Method(),
		"path":     c.Path(),
		"status":   c.Response().StatusCode(),
		"duration": time.Since(start),
	}).Debug("request handled")
	return nil
}
