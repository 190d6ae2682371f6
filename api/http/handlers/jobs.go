package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumeq/api/http/presenter"
	"github.com/artem13815/resumeq/pkg/jobs"
)

// JobsHandler — поллинг статуса и результата. Неизвестное и вычищенное по
// TTL задание выглядят одинаково: 404.
type JobsHandler struct {
	queue *jobs.Service
}

func NewJobsHandler(queue *jobs.Service) *JobsHandler {
	return &JobsHandler{queue: queue}
}

// Status returns the current job status.
// @Summary Job status
// @Tags    jobs
// @Produce json
// @Param   id path string true "job id"
// @Success 200 {object} map[string]any
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [get]
func (h *JobsHandler) Status(c *fiber.Ctx) error {
	id := c.Params("id")
	job, err := h.queue.Lookup(c.Context(), id)
	if err != nil {
		if errors.Is(err, jobs.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "job "+id+" not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to get job status")
	}
	resp := fiber.Map{
		"jobId":  job.ID,
		"status": job.Status,
	}
	if !job.EnqueuedAt.IsZero() {
		resp["enqueueTime"] = job.EnqueuedAt
	}
	if !job.StartedAt.IsZero() {
		resp["startTime"] = job.StartedAt
	}
	if !job.FinishedAt.IsZero() {
		resp["finishTime"] = job.FinishedAt
	}
	if job.Status == jobs.StatusComplete {
		resp["result"] = job.Result
	}
	if job.Status == jobs.StatusFailed {
		resp["error"] = job.Error
		resp["errorType"] = job.ErrorType
	}
	return presenter.JSON(c, http.StatusOK, resp)
}

// Result returns the terminal envelope of a complete job.
// @Summary Job result
// @Tags    jobs
// @Produce json
// @Param   id path string true "job id"
// @Success 200 {object} map[string]any
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /jobs/{id}/result [get]
func (h *JobsHandler) Result(c *fiber.Ctx) error {
	id := c.Params("id")
	job, err := h.queue.Lookup(c.Context(), id)
	if err != nil {
		if errors.Is(err, jobs.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "job "+id+" not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to get job result")
	}

	switch job.Status {
	case jobs.StatusFailed:
		return presenter.JSON(c, http.StatusInternalServerError, jobs.Envelope{
			Success:   false,
			JobID:     job.ID,
			Error:     job.Error,
			ErrorType: job.ErrorType,
		})
	case jobs.StatusComplete:
		return presenter.JSON(c, http.StatusOK, jobs.Envelope{
			Success: true,
			JobID:   job.ID,
			Data:    job.Result,
		})
	default:
		return presenter.JSON(c, http.StatusOK, fiber.Map{
			"success":   false,
			"jobId":     job.ID,
			"status":    job.Status,
			"message":   "Job not yet complete. Please wait and try again.",
			"statusUrl": "/api/v1/jobs/" + job.ID,
		})
	}
}
