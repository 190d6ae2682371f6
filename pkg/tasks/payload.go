package tasks

import (
	"errors"

	"github.com/artem13815/resumeq/pkg/analyze"
	"github.com/artem13815/resumeq/pkg/resume"
)

// Имена функций очереди. Общие для HTTP-слоя (постановка) и воркера
// (исполнение).
const (
	FuncAnalyze  = "analyze_resume"
	FuncImprove  = "improve_resume"
	FuncGenerate = "generate_resume"
)

// Ориентировочное время выполнения, отдаётся клиенту при постановке.
const (
	ETAAnalyzeSeconds  = 20
	ETAImproveSeconds  = 30
	ETAGenerateSeconds = 15
)

// AnalyzePayload — вход анализа: либо готовый текст, либо URL документа.
type AnalyzePayload struct {
	Text          string `json:"text,omitempty"`
	ResumeURL     string `json:"resumeUrl,omitempty" validate:"omitempty,url"`
	UserID        string `json:"userId,omitempty"`
	ImprovementID string `json:"improvementId,omitempty"`
}

var errAnalyzeSource = errors.New("either text or resumeUrl is required")

// ImprovePayload — вход генерации улучшений.
type ImprovePayload struct {
	ImprovementID string        `json:"improvementId" validate:"required"`
	Record        resume.Record `json:"record"`
	FocusAreas    []string      `json:"focusAreas" validate:"required,min=1,dive,oneof=bullet_points summary keywords"`
}

// GeneratePayload — вход генерации PDF.
type GeneratePayload struct {
	ImprovementID string        `json:"improvementId" validate:"required"`
	Template      string        `json:"template" validate:"required,oneof=modern professional ats-optimized executive"`
	Record        resume.Record `json:"record"`
	UserID        string        `json:"userId,omitempty"`
}

// AnalyzeResult — данные успешного анализа в конверте задания.
type AnalyzeResult struct {
	ImprovementID string         `json:"improvementId,omitempty"`
	Record        resume.Record  `json:"record"`
	Analysis      analyze.Report `json:"analysis"`
}

// GenerateResult — данные успешной генерации PDF.
type GenerateResult struct {
	ImprovementID string `json:"improvementId"`
	Template      string `json:"template"`
	Path          string `json:"path"`
	SizeBytes     int    `json:"sizeBytes"`
}
