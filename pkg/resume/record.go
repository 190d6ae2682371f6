package resume

// Record — структурированное представление резюме, извлечённое из текста.
// Списковые поля всегда не-nil: отсутствие данных выражается пустыми
// значениями или sentinel-заглушками, чтобы обход структуры ниже по стеку
// никогда не встречал null.
type Record struct {
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	Location    string       `json:"location"`
	ProfileLink string       `json:"profileLink"`
	Summary     string       `json:"summary"`
	Experiences []Experience `json:"experiences"`
	Education   []Education  `json:"education"`
	Skills      []string     `json:"skills"`
}

type Experience struct {
	Role             string   `json:"role"`
	Company          string   `json:"company"`
	Duration         string   `json:"duration"`
	Responsibilities []string `json:"responsibilities"`
}

type Education struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	GraduationDate string `json:"graduationDate"`
	GPA            string `json:"gpa"`
}

// Sentinel values substituted when a sub-step finds nothing. Invariants:
// responsibilities and education lists are never empty.
const (
	NoResponsibilities = "Responsibilities not detailed."
	NoDuration         = "Date range not specified"
	NoEducation        = "Education section not fully parsed"
)

// Caps applied during extraction.
const (
	maxExperiences = 5
	maxEducation   = 3
	maxSkills      = 25
	maxBullets     = 8
	maxSummaryLen  = 500
)

// HasContact reports whether the record carries any contact identity.
func (r Record) HasContact() bool {
	return r.Name != "" || r.Email != ""
}

// Bullets returns all responsibility lines across experiences.
func (r Record) Bullets() []string {
	var out []string
	for _, exp := range r.Experiences {
		out = append(out, exp.Responsibilities...)
	}
	return out
}
