package api

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/maxaizer/talenthub/internal/entities"
	"github.com/maxaizer/talenthub/internal/resume"
	"github.com/maxaizer/talenthub/internal/services"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type analyzeRequest struct {
	ResumeText string `json:"resumeText"`
}

type statusRequest struct {
	Status entities.ApplicationStatus `json:"status"`
}

type assessmentResponse struct {
	entities.AssessmentResult
	Warning string `json:"warning,omitempty"`
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	return nil
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	user, err := h.services.Auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

func (h *Handler) Register(c *fiber.Ctx) error {
	var req services.RegisterInput
	if err := parseBody(c, &req); err != nil {
		return err
	}
	user, err := h.services.Auth.Register(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	if err := h.services.Auth.Logout(c.UserContext()); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) Session(c *fiber.Ctx) error {
	user, err := h.services.Auth.CurrentUser()
	if err != nil {
		return err
	}
	return c.JSON(user)
}

func (h *Handler) ListJobs(c *fiber.Ctx) error {
	filter := services.JobFilter{
		Search:          c.Query("q"),
		Location:        c.Query("location"),
		Field:           c.Query("field"),
		ExperienceLevel: entities.ExperienceLevel(c.Query("experience")),
	}
	return c.JSON(h.services.Jobs.List(filter))
}

func (h *Handler) ListFields(c *fiber.Ctx) error {
	return c.JSON(h.services.Jobs.Fields())
}

func (h *Handler) GetJob(c *fiber.Ctx) error {
	job, err := h.services.Jobs.Get(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(job)
}

func (h *Handler) PostJob(c *fiber.Ctx) error {
	var req services.PostJobInput
	if err := parseBody(c, &req); err != nil {
		return err
	}
	job, err := h.services.Jobs.Post(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(job)
}

// Analyze answers 200 with the fallback result and a warning when the assessment could not be produced.
func (h *Handler) Analyze(c *fiber.Ctx) error {
	var req analyzeRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	result, err := h.services.Applications.Analyze(c.UserContext(), c.Params("id"), req.ResumeText)
	response := assessmentResponse{AssessmentResult: result}
	switch {
	case errors.Is(err, services.ErrAssessmentUnavailable):
		response.Warning = "assessment_unavailable"
	case errors.Is(err, services.ErrMalformedAssessment):
		response.Warning = "malformed_assessment"
	case err != nil:
		return err
	}
	return c.JSON(response)
}

func (h *Handler) PendingAssessment(c *fiber.Ctx) error {
	result, err := h.services.Applications.PendingAssessment(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *Handler) Dismiss(c *fiber.Ctx) error {
	if err := h.services.Applications.Dismiss(c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) Submit(c *fiber.Ctx) error {
	application, err := h.services.Applications.Submit(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(application)
}

func (h *Handler) ListApplications(c *fiber.Ctx) error {
	applications, err := h.services.Applications.ListForCandidate(entities.ApplicationStatus(c.Query("status")))
	if err != nil {
		return err
	}
	return c.JSON(applications)
}

func (h *Handler) UpdateStatus(c *fiber.Ctx) error {
	var req statusRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	application, err := h.services.Applications.UpdateStatus(c.UserContext(), c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(application)
}

func (h *Handler) Pipeline(c *fiber.Ctx) error {
	pipeline, err := h.services.Applications.Pipeline()
	if err != nil {
		return err
	}
	return c.JSON(pipeline)
}

func (h *Handler) Dashboard(c *fiber.Ctx) error {
	user, err := h.services.Auth.CurrentUser()
	if err != nil {
		return err
	}

	if user.IsRecruiter() {
		stats, err := h.services.Analytics.RecruiterStats()
		if err != nil {
			return err
		}
		return c.JSON(stats)
	}

	stats, err := h.services.Analytics.CandidateStats()
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

func (h *Handler) UpdateProfile(c *fiber.Ctx) error {
	var req services.ProfileInput
	if err := parseBody(c, &req); err != nil {
		return err
	}
	user, err := h.services.Profile.UpdateProfile(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

func (h *Handler) UploadResume(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	mime := resume.DetectMime(fileHeader.Filename, fileHeader.Header.Get(fiber.HeaderContentType))
	text, err := resume.ExtractText(mime, data)
	if err != nil {
		return fiber.NewError(fiber.StatusUnsupportedMediaType, err.Error())
	}
	return c.JSON(fiber.Map{"resumeText": text})
}

func (h *Handler) ListAlerts(c *fiber.Ctx) error {
	alerts, err := h.services.Alerts.List()
	if err != nil {
		return err
	}
	return c.JSON(alerts)
}

func (h *Handler) CreateAlert(c *fiber.Ctx) error {
	var req services.AlertInput
	if err := parseBody(c, &req); err != nil {
		return err
	}
	alert, err := h.services.Alerts.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(alert)
}

func (h *Handler) UpdateAlert(c *fiber.Ctx) error {
	var req services.AlertInput
	if err := parseBody(c, &req); err != nil {
		return err
	}
	alert, err := h.services.Alerts.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(alert)
}

func (h *Handler) DeleteAlert(c *fiber.Ctx) error {
	if err := h.services.Alerts.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) ToggleAlert(c *fiber.Ctx) error {
	alert, err := h.services.Alerts.Toggle(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(alert)
}
