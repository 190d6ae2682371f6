package handlers

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumeq/api/http/presenter"
	"github.com/artem13815/resumeq/pkg/jobs"
	"github.com/artem13815/resumeq/pkg/tasks"
)

// SubmitHandler ставит задания в очередь. Сами операции асинхронные:
// клиент получает job id и ссылки для поллинга.
type SubmitHandler struct {
	queue    *jobs.Service
	validate *validator.Validate
}

func NewSubmitHandler(queue *jobs.Service) *SubmitHandler {
	return &SubmitHandler{queue: queue, validate: validator.New()}
}

// SubmissionResponse — ответ на постановку любого задания.
type SubmissionResponse struct {
	JobID      string `json:"jobId"`
	Status     string `json:"status"`
	StatusURL  string `json:"statusUrl"`
	ResultURL  string `json:"resultUrl"`
	EtaSeconds int    `json:"etaSeconds"`
	Message    string `json:"message"`
}

func submissionResponse(c *fiber.Ctx, job jobs.Job, eta int) error {
	return presenter.Accepted(c, SubmissionResponse{
		JobID:      job.ID,
		Status:     string(job.Status),
		StatusURL:  "/api/v1/jobs/" + job.ID,
		ResultURL:  "/api/v1/jobs/" + job.ID + "/result",
		EtaSeconds: eta,
		Message:    "Job queued. Poll statusUrl for updates.",
	})
}

func callerID(c *fiber.Ctx) string {
	if v, ok := c.Locals("userId").(string); ok {
		return v
	}
	return ""
}

// Analyze enqueues resume analysis.
// @Summary  Enqueue resume analysis
// @Tags     jobs
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    input body tasks.AnalyzePayload true "resume text or document URL"
// @Success  202 {object} SubmissionResponse
// @Failure  400 {object} presenter.ErrorResponse
// @Router   /analyze [post]
func (h *SubmitHandler) Analyze(c *fiber.Ctx) error {
	var p tasks.AnalyzePayload
	if err := c.BodyParser(&p); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(p.Text) == "" && strings.TrimSpace(p.ResumeURL) == "" {
		return presenter.Error(c, http.StatusBadRequest, "either text or resumeUrl is required")
	}
	if err := h.validate.Struct(p); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	p.UserID = callerID(c)

	job, err := h.queue.Enqueue(c.Context(), tasks.FuncAnalyze, p)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to enqueue job")
	}
	return submissionResponse(c, job, tasks.ETAAnalyzeSeconds)
}

// Improve enqueues improvement generation.
// @Summary  Enqueue resume improvement
// @Tags     jobs
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    input body tasks.ImprovePayload true "structured resume and focus areas"
// @Success  202 {object} SubmissionResponse
// @Failure  400 {object} presenter.ErrorResponse
// @Router   /improve [post]
func (h *SubmitHandler) Improve(c *fiber.Ctx) error {
	var p tasks.ImprovePayload
	if err := c.BodyParser(&p); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := h.validate.Struct(p); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	job, err := h.queue.Enqueue(c.Context(), tasks.FuncImprove, p)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to enqueue job")
	}
	return submissionResponse(c, job, tasks.ETAImproveSeconds)
}

// Generate enqueues PDF generation.
// @Summary  Enqueue resume PDF generation
// @Tags     jobs
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    input body tasks.GeneratePayload true "structured resume and template"
// @Success  202 {object} SubmissionResponse
// @Failure  400 {object} presenter.ErrorResponse
// @Router   /generate [post]
func (h *SubmitHandler) Generate(c *fiber.Ctx) error {
	var p tasks.GeneratePayload
	if err := c.BodyParser(&p); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := h.validate.Struct(p); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	p.UserID = callerID(c)

	job, err := h.queue.Enqueue(c.Context(), tasks.FuncGenerate, p)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to enqueue job")
	}
	return submissionResponse(c, job, tasks.ETAGenerateSeconds)
}
