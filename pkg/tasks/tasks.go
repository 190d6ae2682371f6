package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/artem13815/resumeq/pkg/analyze"
	"github.com/artem13815/resumeq/pkg/improve"
	"github.com/artem13815/resumeq/pkg/jobs"
	"github.com/artem13815/resumeq/pkg/render"
	"github.com/artem13815/resumeq/pkg/resume"
)

// Tasks связывает функции очереди с доменными сервисами. Один экземпляр
// обслуживает и встроенный исполнитель, и отдельный воркер.
type Tasks struct {
	fetcher  *resume.Fetcher
	analyzer *analyze.Analyzer
	improver *improve.Improver
	renderer *render.PDFRenderer
	validate *validator.Validate
	outDir   string
	log      *zap.Logger
}

func New(improver *improve.Improver, outDir string, log *zap.Logger) *Tasks {
	return &Tasks{
		fetcher:  resume.NewFetcher(),
		analyzer: analyze.NewAnalyzer(),
		improver: improver,
		renderer: render.NewPDFRenderer(),
		validate: validator.New(),
		outDir:   outDir,
		log:      log,
	}
}

// RegisterAll навешивает все функции на исполнителя.
func (t *Tasks) RegisterAll(exec *jobs.Executor) {
	exec.Register(FuncAnalyze, t.Analyze)
	exec.Register(FuncImprove, t.Improve)
	exec.Register(FuncGenerate, t.Generate)
}

// Analyze: получить текст (напрямую или по URL), извлечь структуру,
// оценить. Извлечение и оценка детерминированы, единственное I/O —
// загрузка документа.
func (t *Tasks) Analyze(ctx context.Context, payload json.RawMessage) (any, error) {
	var p AnalyzePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, jobs.AsValidation(fmt.Errorf("decode payload: %w", err))
	}
	if err := t.validate.Struct(p); err != nil {
		return nil, err
	}
	if p.Text == "" && p.ResumeURL == "" {
		return nil, jobs.AsValidation(errAnalyzeSource)
	}

	text := p.Text
	if text == "" {
		data, filename, err := t.fetcher.Fetch(ctx, p.ResumeURL)
		if err != nil {
			return nil, fmt.Errorf("fetch resume: %w", err)
		}
		text, err = resume.ParseDocumentText(filename, data)
		if err != nil {
			return nil, jobs.AsValidation(fmt.Errorf("parse document: %w", err))
		}
	}

	rec := resume.Extract(text)
	report := t.analyzer.Analyze(rec)

	t.log.Info("resume analyzed",
		zap.String("improvement_id", p.ImprovementID),
		zap.Float64("overall", report.Scores.Overall),
	)

	return AnalyzeResult{
		ImprovementID: p.ImprovementID,
		Record:        rec,
		Analysis:      report,
	}, nil
}

// Improve: сгенерировать улучшения по запрошенным областям.
func (t *Tasks) Improve(ctx context.Context, payload json.RawMessage) (any, error) {
	var p ImprovePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, jobs.AsValidation(fmt.Errorf("decode payload: %w", err))
	}
	if err := t.validate.Struct(p); err != nil {
		return nil, err
	}

	result, err := t.improver.Improve(ctx, p.ImprovementID, p.Record, p.FocusAreas)
	if err != nil {
		return nil, err
	}
	t.log.Info("improvements generated",
		zap.String("improvement_id", p.ImprovementID),
		zap.Int("total", result.TotalImprovements),
	)
	return result, nil
}

// Generate: отрисовать PDF и положить его в выходной каталог.
func (t *Tasks) Generate(ctx context.Context, payload json.RawMessage) (any, error) {
	var p GeneratePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, jobs.AsValidation(fmt.Errorf("decode payload: %w", err))
	}
	if err := t.validate.Struct(p); err != nil {
		return nil, err
	}

	data, err := t.renderer.Render(p.Record, render.Template(p.Template))
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(t.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	name := fmt.Sprintf("resume_%s_%s.pdf", p.ImprovementID, p.Template)
	path := filepath.Join(t.outDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}

	t.log.Info("resume rendered",
		zap.String("improvement_id", p.ImprovementID),
		zap.String("template", p.Template),
		zap.Int("size_bytes", len(data)),
	)

	return GenerateResult{
		ImprovementID: p.ImprovementID,
		Template:      p.Template,
		Path:          path,
		SizeBytes:     len(data),
	}, nil
}
