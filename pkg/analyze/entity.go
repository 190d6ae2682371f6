package analyze

// Severity уровня проблемы в отчёте.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Priority рекомендации.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Категории проверок. Используются и в Issue, и в Suggestion.
const (
	CategoryFormatting = "formatting"
	CategoryContent    = "content"
	CategoryATS        = "ats"
	CategorySkills     = "skills"
	CategorySummary    = "summary"
)

// ScoreBreakdown — пять ограниченных под-оценок и их точная сумма.
// Инвариант: Overall == Formatting + ContentQuality + ATSOptimization +
// SkillsSection + ProfessionalSummary, без дополнительного клампа.
type ScoreBreakdown struct {
	Overall             float64 `json:"overall"`
	Formatting          float64 `json:"formatting"`
	ContentQuality      float64 `json:"contentQuality"`
	ATSOptimization     float64 `json:"atsOptimization"`
	SkillsSection       float64 `json:"skillsSection"`
	ProfessionalSummary float64 `json:"professionalSummary"`
}

// Issue — конкретная проблема, найденная при оценке.
type Issue struct {
	Category    string   `json:"category"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
	Location    string   `json:"location,omitempty"`
	Example     string   `json:"example,omitempty"`
}

// Suggestion — рекомендация, сгенерированная по теме накопленных проблем.
// Одна тема — не более одной рекомендации.
type Suggestion struct {
	Category  string   `json:"category"`
	Priority  Priority `json:"priority"`
	Text      string   `json:"text"`
	Examples  []string `json:"examples"`
	Reasoning string   `json:"reasoning,omitempty"`
}

// Metadata — побочный продукт оценки.
type Metadata struct {
	WordCount                   int            `json:"wordCount"`
	PageCount                   int            `json:"pageCount"`
	SectionsFound               []string       `json:"sectionsFound"`
	HasActionVerbs              bool           `json:"hasActionVerbs"`
	HasQuantifiableAchievements bool           `json:"hasQuantifiableAchievements"`
	KeywordDensity              map[string]int `json:"keywordDensity"`
}

// Report — полный результат оценки одного резюме.
type Report struct {
	Scores      ScoreBreakdown `json:"scores"`
	Issues      []Issue        `json:"issues"`
	Suggestions []Suggestion   `json:"suggestions"`
	Metadata    Metadata       `json:"metadata"`
}
