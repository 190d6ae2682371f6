package improve

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/artem13815/resumeq/pkg/llm"
	"github.com/artem13815/resumeq/pkg/nlp"
	"github.com/artem13815/resumeq/pkg/resume"
	"github.com/artem13815/resumeq/pkg/retry"
)

// Improver генерирует улучшения текста резюме через языковую модель.
// Каждый вызов модели обёрнут в политику повторов: транзиентные ошибки
// провайдера (429, 5xx, сеть) повторяются, остальные возвращаются сразу.
type Improver struct {
	model  llm.ChatModel
	policy retry.Policy
}

func New(model llm.ChatModel) *Improver {
	p := retry.DefaultPolicy()
	p.Retryable = transient
	return &Improver{model: model, policy: p}
}

// transient: провайдеры сигналят повторяемость методом Transient() bool.
func transient(err error) bool {
	var t interface{ Transient() bool }
	if errors.As(err, &t) {
		return t.Transient()
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// Глаголы, при которых пункт считается достаточно сильным и не отправляется
// в модель.
var strongVerbs = []string{"managed", "coordinated", "led", "developed", "implemented", "optimized"}

// Ключевые слова, отсутствие которых даёт keyword-улучшение.
var importantKeywords = []string{
	"calendar management",
	"email management",
	"administrative support",
	"project coordination",
	"client communication",
	"data entry",
	"crm management",
	"scheduling",
	"travel coordination",
}

// Improve прогоняет запрошенные области и собирает список улучшений.
// Оценка прироста балла — эвристика 1.5 за улучшение с потолком 25.
func (im *Improver) Improve(ctx context.Context, improvementID string, rec resume.Record, focusAreas []string) (Result, error) {
	focus := map[string]bool{}
	for _, f := range focusAreas {
		focus[f] = true
	}

	improvements := []Improvement{}

	if focus[FocusBulletPoints] {
		got, err := im.improveBullets(ctx, rec)
		if err != nil {
			return Result{}, err
		}
		improvements = append(improvements, got...)
	}

	if focus[FocusSummary] {
		got, err := im.improveSummary(ctx, rec)
		if err != nil {
			return Result{}, err
		}
		improvements = append(improvements, got...)
	}

	if focus[FocusKeywords] {
		improvements = append(improvements, missingKeywords(rec)...)
	}

	increase := float64(len(improvements)) * 1.5
	if increase > 25.0 {
		increase = 25.0
	}

	return Result{
		ImprovementID:          improvementID,
		Improvements:           improvements,
		TotalImprovements:      len(improvements),
		EstimatedScoreIncrease: increase,
	}, nil
}

func (im *Improver) improveBullets(ctx context.Context, rec resume.Record) ([]Improvement, error) {
	var out []Improvement
	for i, exp := range rec.Experiences {
		for j, bullet := range exp.Responsibilities {
			if bullet == resume.NoResponsibilities || isStrongBullet(bullet) {
				continue
			}
			improved, err := im.askBullet(ctx, bullet, exp.Role)
			if err != nil {
				return nil, fmt.Errorf("improve bullet: %w", err)
			}
			out = append(out, Improvement{
				Type:       TypeBulletPoint,
				Original:   bullet,
				Improved:   improved,
				Section:    fmt.Sprintf("experiences[%d].responsibilities[%d]", i, j),
				Reasoning:  "Enhanced with action verb and quantifiable metrics",
				Confidence: 0.9,
			})
		}
	}
	return out, nil
}

func (im *Improver) improveSummary(ctx context.Context, rec resume.Record) ([]Improvement, error) {
	if len(rec.Summary) >= 50 {
		return nil, nil
	}
	improved, err := im.askSummary(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("improve summary: %w", err)
	}
	return []Improvement{{
		Type:       TypeSummary,
		Original:   rec.Summary,
		Improved:   improved,
		Section:    "summary",
		Reasoning:  "Created compelling value proposition with key achievements",
		Confidence: 0.95,
	}}, nil
}

// missingKeywords детерминирован и не ходит в модель: предлагает важные
// термины, которых в резюме нет.
func missingKeywords(rec resume.Record) []Improvement {
	var parts []string
	parts = append(parts, rec.Summary)
	for _, exp := range rec.Experiences {
		parts = append(parts, exp.Role)
		parts = append(parts, exp.Responsibilities...)
	}
	parts = append(parts, rec.Skills...)
	blob := nlp.Normalize(strings.Join(parts, " "))

	var missing []string
	for _, kw := range importantKeywords {
		if !nlp.ContainsPhrase(blob, nlp.Normalize(kw)) {
			missing = append(missing, kw)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return []Improvement{{
		Type:       TypeKeyword,
		Original:   "",
		Improved:   strings.Join(missing, ", "),
		Section:    "skills",
		Reasoning:  "Missing terms recruiters and ATS filters look for in this role",
		Confidence: 1.0,
	}}
}

func (im *Improver) askBullet(ctx context.Context, bullet, role string) (string, error) {
	system := "You are an expert resume writer specializing in Virtual Assistant roles."
	user := fmt.Sprintf(`Improve this bullet point from a %s position:
%q

Requirements:
- Start with a strong action verb
- Add specific metrics or quantifiable achievements where logical
- Keep it concise (under 150 characters)
- Make it impactful and results-oriented
- Focus on VA-relevant skills (calendar management, email, admin, communication)

Return ONLY the improved bullet point, nothing else.`, role, bullet)

	var reply string
	err := im.policy.Do(ctx, func(ctx context.Context) error {
		var askErr error
		reply, askErr = im.model.Ask(ctx, system, user)
		return askErr
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}

func (im *Improver) askSummary(ctx context.Context, rec resume.Record) (string, error) {
	topSkills := rec.Skills
	if len(topSkills) > 5 {
		topSkills = topSkills[:5]
	}
	role := "Virtual Assistant"
	if len(rec.Experiences) > 0 && rec.Experiences[0].Role != "" {
		role = rec.Experiences[0].Role
	}

	system := "You are an expert resume writer specializing in Virtual Assistant roles."
	user := fmt.Sprintf(`Create a compelling professional summary (2-3 sentences, max 250 characters) for a %s with:
- Experience: %d positions
- Key skills: %s

Requirements:
- Start with years of experience or standout qualification
- Highlight 2-3 key strengths or achievements
- Include VA-relevant skills
- End with value proposition
- Professional but engaging tone

Return ONLY the summary, nothing else.`, role, len(rec.Experiences), strings.Join(topSkills, ", "))

	var reply string
	err := im.policy.Do(ctx, func(ctx context.Context) error {
		var askErr error
		reply, askErr = im.model.Ask(ctx, system, user)
		return askErr
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}

// isStrongBullet: сильный глагол в начале, хотя бы одна цифра и разумная
// длина. Такой пункт в модель не отправляется.
func isStrongBullet(bullet string) bool {
	lower := strings.ToLower(bullet)
	hasVerb := false
	for _, v := range strongVerbs {
		if strings.HasPrefix(lower, v) {
			hasVerb = true
			break
		}
	}
	hasDigit := strings.ContainsFunc(bullet, unicode.IsDigit)
	goodLength := len(bullet) > 50 && len(bullet) < 200
	return hasVerb && hasDigit && goodLength
}
