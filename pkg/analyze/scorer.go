package analyze

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/artem13815/resumeq/pkg/nlp"
	"github.com/artem13815/resumeq/pkg/resume"
)

// Analyzer — детерминированный оценщик резюме. Одни и те же входные данные
// всегда дают одинаковый отчёт: ни случайности, ни внешних вызовов.
type Analyzer struct {
	keywords     []string // оригинальные написания, ключи в keywordDensity
	normKeywords []string // нормализованные, для матчинга
	verbSet      map[string]struct{}
}

func NewAnalyzer() *Analyzer {
	a := &Analyzer{
		keywords:     roleKeywords,
		normKeywords: make([]string, len(roleKeywords)),
		verbSet:      make(map[string]struct{}, len(actionVerbs)),
	}
	for i, kw := range roleKeywords {
		a.normKeywords[i] = nlp.Normalize(kw)
	}
	for _, v := range actionVerbs {
		a.verbSet[v] = struct{}{}
	}
	return a
}

// Analyze считает пять ограниченных под-оценок и собирает отчёт.
// Итог — точная сумма под-оценок, максимум 100.
func (a *Analyzer) Analyze(rec resume.Record) Report {
	issues := []Issue{}

	formatting, fi := a.scoreFormatting(rec)
	issues = append(issues, fi...)

	content, ci := a.scoreContent(rec)
	issues = append(issues, ci...)

	ats, ai := a.scoreATS(rec)
	issues = append(issues, ai...)

	skills, si := a.scoreSkills(rec)
	issues = append(issues, si...)

	summary, smi := a.scoreSummary(rec)
	issues = append(issues, smi...)

	return Report{
		Scores: ScoreBreakdown{
			Overall:             formatting + content + ats + skills + summary,
			Formatting:          formatting,
			ContentQuality:      content,
			ATSOptimization:     ats,
			SkillsSection:       skills,
			ProfessionalSummary: summary,
		},
		Issues:      issues,
		Suggestions: a.suggestions(issues),
		Metadata:    a.metadata(rec),
	}
}

var (
	reFmtYearRange = regexp.MustCompile(`\d{4}-\d{4}`)
	reFmtMonYear   = regexp.MustCompile(`[A-Z][a-z]{2} \d{4}`)
	reFmtSlash     = regexp.MustCompile(`\d{1,2}/\d{4}`)
	reQuantifiable = regexp.MustCompile(`\d+[%$]?|\$\d+|[+-]\d+%`)
)

// scoreFormatting: до 20 баллов. Консистентность дат (5), наличие секций (5),
// буллеты в опыте (5), оценка объёма (5).
func (a *Analyzer) scoreFormatting(rec resume.Record) (float64, []Issue) {
	var score float64
	var issues []Issue

	// Date format consistency.
	formats := map[string]struct{}{}
	var formatNames []string
	addFormat := func(name string) {
		if _, ok := formats[name]; !ok {
			formats[name] = struct{}{}
			formatNames = append(formatNames, name)
		}
	}
	for _, exp := range rec.Experiences {
		switch {
		case exp.Duration == "":
		case reFmtYearRange.MatchString(exp.Duration):
			addFormat("YYYY-YYYY")
		case reFmtMonYear.MatchString(exp.Duration):
			addFormat("Mon YYYY")
		case reFmtSlash.MatchString(exp.Duration):
			addFormat("MM/YYYY")
		}
	}
	switch {
	case len(formats) <= 1:
		score += 5.0
	case len(formats) == 2:
		score += 2.5
		issues = append(issues, Issue{
			Category:    CategoryFormatting,
			Severity:    SeverityMedium,
			Description: "Inconsistent date formats detected",
			Location:    "Experience section",
			Example:     fmt.Sprintf("Mix of %s formats", strings.Join(formatNames, " and ")),
		})
	default:
		issues = append(issues, Issue{
			Category:    CategoryFormatting,
			Severity:    SeverityHigh,
			Description: "Multiple inconsistent date formats",
			Location:    "Experience section",
			Example:     fmt.Sprintf("Found %d different date formats", len(formats)),
		})
	}

	// Section presence.
	hasContact := rec.HasContact()
	hasExperience := len(rec.Experiences) > 0
	hasSkills := len(rec.Skills) > 0
	hasEducation := len(rec.Education) > 0

	present := 0
	var missing []string
	for _, s := range []struct {
		ok   bool
		name string
	}{
		{hasContact, "contact info"},
		{hasExperience, "experience"},
		{hasSkills, "skills"},
		{hasEducation, "education"},
	} {
		if s.ok {
			present++
		} else {
			missing = append(missing, s.name)
		}
	}
	score += float64(present) / 4 * 5.0
	if present < 4 {
		issues = append(issues, Issue{
			Category:    CategoryFormatting,
			Severity:    SeverityHigh,
			Description: "Missing standard sections: " + strings.Join(missing, ", "),
			Location:    "Overall structure",
		})
	}

	// Bullet coverage.
	if len(rec.Experiences) > 0 {
		withoutBullets := 0
		for _, exp := range rec.Experiences {
			if len(exp.Responsibilities) == 0 {
				withoutBullets++
			}
		}
		switch {
		case withoutBullets == 0:
			score += 5.0
		case float64(withoutBullets) <= float64(len(rec.Experiences))/2:
			score += 2.5
			issues = append(issues, Issue{
				Category:    CategoryFormatting,
				Severity:    SeverityMedium,
				Description: "Some experience entries lack bullet points",
				Location:    "Experience section",
			})
		default:
			issues = append(issues, Issue{
				Category:    CategoryFormatting,
				Severity:    SeverityHigh,
				Description: "Most experience entries lack bullet points/descriptions",
				Location:    "Experience section",
			})
		}
	} else {
		score += 2.5
	}

	// Length band.
	wc := estimateWordCount(rec)
	switch {
	case wc >= 400 && wc <= 800:
		score += 5.0
	case (wc >= 300 && wc < 400) || (wc > 800 && wc <= 1000):
		score += 3.0
		issues = append(issues, Issue{
			Category:    CategoryFormatting,
			Severity:    SeverityLow,
			Description: fmt.Sprintf("Resume length could be optimized (estimated %d words)", wc),
			Location:    "Overall",
			Example:     "Aim for 400-800 words for 1-2 pages",
		})
	case wc < 300:
		score += 1.0
		issues = append(issues, Issue{
			Category:    CategoryFormatting,
			Severity:    SeverityHigh,
			Description: fmt.Sprintf("Resume appears too short (estimated %d words)", wc),
			Location:    "Overall",
		})
	default:
		score += 2.0
		issues = append(issues, Issue{
			Category:    CategoryFormatting,
			Severity:    SeverityMedium,
			Description: fmt.Sprintf("Resume may be too long (estimated %d words)", wc),
			Location:    "Overall",
			Example:     "Consider condensing to 1-2 pages",
		})
	}

	return score, issues
}

// scoreContent: до 30 баллов. Глаголы действия (10), измеримые результаты (10),
// личные местоимения (5), развёрнутость пунктов (5). Ноль пунктов по всему
// опыту — короткое замыкание на 5 баллов с критической проблемой.
func (a *Analyzer) scoreContent(rec resume.Record) (float64, []Issue) {
	var issues []Issue
	bullets := rec.Bullets()
	if len(bullets) == 0 {
		issues = append(issues, Issue{
			Category:    CategoryContent,
			Severity:    SeverityCritical,
			Description: "No bullet points found in experience section",
			Location:    "Experience section",
		})
		return 5.0, issues
	}

	var score float64

	withVerbs := 0
	for _, b := range bullets {
		if startsWithActionVerb(b, a.verbSet) {
			withVerbs++
		}
	}
	verbRatio := float64(withVerbs) / float64(len(bullets))
	score += verbRatio * 10.0
	if verbRatio < 0.5 {
		issues = append(issues, Issue{
			Category:    CategoryContent,
			Severity:    SeverityHigh,
			Description: fmt.Sprintf("Only %d%% of bullet points start with strong action verbs", int(verbRatio*100)),
			Location:    "Experience section",
			Example:     "Use verbs like: managed, coordinated, implemented, optimized",
		})
	}

	withNumbers := 0
	for _, b := range bullets {
		if reQuantifiable.MatchString(b) {
			withNumbers++
		}
	}
	numRatio := float64(withNumbers) / float64(len(bullets))
	score += numRatio * 10.0
	if numRatio < 0.3 {
		issues = append(issues, Issue{
			Category:    CategoryContent,
			Severity:    SeverityHigh,
			Description: fmt.Sprintf("Only %d%% of bullet points contain quantifiable achievements", int(numRatio*100)),
			Location:    "Experience section",
			Example:     "Add metrics like: 'Managed 15+ calendars', 'Reduced response time by 40%'",
		})
	}

	joined := strings.ToLower(strings.Join(bullets, " "))
	pronounCount := 0
	for _, p := range []string{"i ", "my ", "me ", "we ", "our ", "us "} {
		pronounCount += strings.Count(joined, p)
	}
	switch {
	case pronounCount == 0:
		score += 5.0
	case pronounCount <= 2:
		score += 3.0
		issues = append(issues, Issue{
			Category:    CategoryContent,
			Severity:    SeverityLow,
			Description: fmt.Sprintf("Resume contains %d personal pronouns", pronounCount),
			Location:    "Experience section",
			Example:     "Avoid 'I', 'my', 'we' - use direct action statements",
		})
	default:
		score += 1.0
		issues = append(issues, Issue{
			Category:    CategoryContent,
			Severity:    SeverityMedium,
			Description: fmt.Sprintf("Resume contains %d personal pronouns", pronounCount),
			Location:    "Experience section",
			Example:     "Remove 'I', 'my', 'we' - start with action verbs directly",
		})
	}

	totalLen := 0
	for _, b := range bullets {
		totalLen += len(b)
	}
	avgLen := float64(totalLen) / float64(len(bullets))
	switch {
	case avgLen >= 80:
		score += 5.0
	case avgLen >= 50:
		score += 3.0
	case avgLen >= 30:
		score += 2.0
		issues = append(issues, Issue{
			Category:    CategoryContent,
			Severity:    SeverityMedium,
			Description: "Bullet points are too brief - add more detail about impact",
			Location:    "Experience section",
			Example:     "Expand: 'Managed calendars' into 'Managed 10+ executive calendars, optimizing scheduling efficiency by 40%'",
		})
	default:
		score += 1.0
		issues = append(issues, Issue{
			Category:    CategoryContent,
			Severity:    SeverityHigh,
			Description: "Bullet points are very brief and lack detail",
			Location:    "Experience section",
		})
	}

	return score, issues
}

// scoreATS: до 25 баллов. Стандартные секции (10), покрытие ключевых слов (10)
// и константные 5 за текстовый формат: парсер работает с plain text, таблицы
// и графику проверить невозможно.
func (a *Analyzer) scoreATS(rec resume.Record) (float64, []Issue) {
	var score float64
	var issues []Issue

	allSections := rec.HasContact() && len(rec.Experiences) > 0 &&
		len(rec.Skills) > 0 && len(rec.Education) > 0
	if allSections {
		score += 10.0
	} else {
		score += 5.0
	}

	blob := searchBlob(rec)
	matches := 0
	for _, kw := range a.normKeywords {
		if nlp.ContainsPhrase(blob, kw) {
			matches++
		}
	}
	ratio := float64(matches) / float64(len(a.normKeywords))
	score += ratio * 10.0
	if ratio < 0.15 {
		issues = append(issues, Issue{
			Category:    CategoryATS,
			Severity:    SeverityCritical,
			Description: "Very few role-specific keywords detected",
			Location:    "Overall content",
			Example:     "Add keywords like: calendar management, administrative support, CRM, Asana, Google Workspace",
		})
	} else if ratio < 0.3 {
		issues = append(issues, Issue{
			Category:    CategoryATS,
			Severity:    SeverityHigh,
			Description: fmt.Sprintf("Only %d%% keyword coverage for the target role", int(ratio*100)),
			Location:    "Overall content",
			Example:     "Include more role-specific terms and tools",
		})
	}

	score += 5.0

	return score, issues
}

// scoreSkills: до 15 баллов. Пустой список навыков — короткое замыкание на 0.
func (a *Analyzer) scoreSkills(rec resume.Record) (float64, []Issue) {
	var issues []Issue
	if len(rec.Skills) == 0 {
		issues = append(issues, Issue{
			Category:    CategorySkills,
			Severity:    SeverityCritical,
			Description: "No skills section found",
			Location:    "Skills section",
		})
		return 0, issues
	}

	score := 5.0

	switch n := len(rec.Skills); {
	case n >= 12:
		score += 5.0
	case n >= 8:
		score += 3.5
	case n >= 5:
		score += 2.0
		issues = append(issues, Issue{
			Category:    CategorySkills,
			Severity:    SeverityMedium,
			Description: fmt.Sprintf("Only %d skills listed - aim for 10-15", n),
			Location:    "Skills section",
			Example:     "Add more specific tools and software you're proficient in",
		})
	default:
		score += 1.0
		issues = append(issues, Issue{
			Category:    CategorySkills,
			Severity:    SeverityHigh,
			Description: fmt.Sprintf("Very few skills listed (%d) - should have 10-15", n),
			Location:    "Skills section",
		})
	}

	relevant := 0
	for _, skill := range rec.Skills {
		norm := nlp.Normalize(skill)
		for _, kw := range a.normKeywords {
			if nlp.ContainsPhrase(norm, kw) {
				relevant++
				break
			}
		}
	}
	relevance := float64(relevant) / float64(len(rec.Skills))
	score += relevance * 5.0
	if relevance < 0.3 {
		issues = append(issues, Issue{
			Category:    CategorySkills,
			Severity:    SeverityHigh,
			Description: fmt.Sprintf("Only %d%% of skills are relevant to the target role", int(relevance*100)),
			Location:    "Skills section",
			Example:     "Add role-specific skills: Asana, Google Calendar, CRM tools, email management",
		})
	}

	return score, issues
}

// scoreSummary: до 10 баллов. Отсутствие summary — короткое замыкание на 0
// ровно с одной high-проблемой.
func (a *Analyzer) scoreSummary(rec resume.Record) (float64, []Issue) {
	var issues []Issue
	summary := strings.TrimSpace(rec.Summary)
	if summary == "" {
		issues = append(issues, Issue{
			Category:    CategorySummary,
			Severity:    SeverityHigh,
			Description: "No professional summary found",
			Location:    "Summary section",
			Example:     "Add a 2-3 sentence summary highlighting your experience and key strengths",
		})
		return 0, issues
	}

	score := 3.0

	wc := nlp.WordCount(summary)
	switch {
	case wc >= 40 && wc <= 100:
		score += 4.0
	case (wc >= 25 && wc < 40) || (wc > 100 && wc <= 150):
		score += 2.5
		issues = append(issues, Issue{
			Category:    CategorySummary,
			Severity:    SeverityLow,
			Description: fmt.Sprintf("Summary length could be optimized (%d words)", wc),
			Location:    "Summary section",
			Example:     "Aim for 40-100 words (2-3 sentences)",
		})
	case wc < 25:
		score += 1.0
		issues = append(issues, Issue{
			Category:    CategorySummary,
			Severity:    SeverityMedium,
			Description: fmt.Sprintf("Summary is too brief (%d words)", wc),
			Location:    "Summary section",
		})
	default:
		score += 2.0
		issues = append(issues, Issue{
			Category:    CategorySummary,
			Severity:    SeverityMedium,
			Description: fmt.Sprintf("Summary is too long (%d words)", wc),
			Location:    "Summary section",
			Example:     "Condense to 2-3 impactful sentences",
		})
	}

	normSummary := nlp.Normalize(summary)
	kwCount := 0
	for _, kw := range a.normKeywords {
		if nlp.ContainsPhrase(normSummary, kw) {
			kwCount++
		}
	}
	switch {
	case kwCount >= 3:
		score += 3.0
	case kwCount >= 2:
		score += 2.0
	case kwCount >= 1:
		score += 1.0
		issues = append(issues, Issue{
			Category:    CategorySummary,
			Severity:    SeverityMedium,
			Description: "Summary lacks role-specific keywords",
			Location:    "Summary section",
			Example:     "Include terms like: virtual assistant, administrative support, calendar management",
		})
	default:
		issues = append(issues, Issue{
			Category:    CategorySummary,
			Severity:    SeverityHigh,
			Description: "Summary has no role-specific keywords",
			Location:    "Summary section",
		})
	}

	return score, issues
}

func startsWithActionVerb(bullet string, verbs map[string]struct{}) bool {
	fields := strings.Fields(bullet)
	if len(fields) == 0 {
		return false
	}
	first := strings.TrimRight(strings.ToLower(fields[0]), ".,!?")
	_, ok := verbs[first]
	return ok
}

// searchBlob собирает нормализованный текст для keyword-матчей: summary,
// роли и обязанности из опыта, навыки. Названия компаний и образование
// намеренно не участвуют.
func searchBlob(rec resume.Record) string {
	var parts []string
	parts = append(parts, rec.Summary)
	for _, exp := range rec.Experiences {
		parts = append(parts, exp.Role)
		parts = append(parts, exp.Responsibilities...)
	}
	parts = append(parts, rec.Skills...)
	return nlp.Normalize(strings.Join(parts, " "))
}
