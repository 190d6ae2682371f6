package improve

// Improvement — одно предлагаемое изменение текста резюме.
type Improvement struct {
	Type       string  `json:"type"`
	Original   string  `json:"original"`
	Improved   string  `json:"improved"`
	Section    string  `json:"section"`
	Reasoning  string  `json:"reasoning,omitempty"`
	Confidence float64 `json:"confidence"`
}

// Типы улучшений.
const (
	TypeBulletPoint = "bullet_point"
	TypeSummary     = "summary"
	TypeKeyword     = "keyword"
)

// Области, по которым можно запрашивать улучшения.
const (
	FocusBulletPoints = "bullet_points"
	FocusSummary      = "summary"
	FocusKeywords     = "keywords"
)

// Result — итог генерации улучшений для одного резюме.
type Result struct {
	ImprovementID          string        `json:"improvementId"`
	Improvements           []Improvement `json:"improvements"`
	TotalImprovements      int           `json:"totalImprovements"`
	EstimatedScoreIncrease float64       `json:"estimatedScoreIncrease"`
}
