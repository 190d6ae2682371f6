package analyze

import (
	"strings"

	"github.com/artem13815/resumeq/pkg/nlp"
	"github.com/artem13815/resumeq/pkg/resume"
)

// metadata — побочный продукт оценки: объём, найденные секции, флаги и карта
// плотности ключевых слов (оригинальные написания в ключах, только
// ненулевые значения).
func (a *Analyzer) metadata(rec resume.Record) Metadata {
	wc := estimateWordCount(rec)

	sections := []string{}
	if rec.HasContact() {
		sections = append(sections, "contact")
	}
	if strings.TrimSpace(rec.Summary) != "" {
		sections = append(sections, "summary")
	}
	if len(rec.Experiences) > 0 {
		sections = append(sections, "experience")
	}
	if len(rec.Education) > 0 {
		sections = append(sections, "education")
	}
	if len(rec.Skills) > 0 {
		sections = append(sections, "skills")
	}

	bullets := rec.Bullets()
	hasVerbs := false
	hasQuant := false
	for _, b := range bullets {
		if !hasVerbs && startsWithActionVerb(b, a.verbSet) {
			hasVerbs = true
		}
		if !hasQuant && reQuantifiable.MatchString(b) {
			hasQuant = true
		}
	}

	blob := searchBlob(rec)
	density := map[string]int{}
	for i, kw := range a.normKeywords {
		if n := nlp.CountPhrase(blob, kw); n > 0 {
			density[a.keywords[i]] = n
		}
	}

	pages := 1
	if wc >= 500 {
		pages = 2
	}

	return Metadata{
		WordCount:                   wc,
		PageCount:                   pages,
		SectionsFound:               sections,
		HasActionVerbs:              hasVerbs,
		HasQuantifiableAchievements: hasQuant,
		KeywordDensity:              density,
	}
}

// estimateWordCount считает слова по всем текстовым полям Record. Текст
// исходного документа на этом этапе уже недоступен, поэтому объём
// оценивается по структуре.
func estimateWordCount(rec resume.Record) int {
	parts := []string{rec.Name, rec.Email, rec.Summary, strings.Join(rec.Skills, " ")}
	for _, exp := range rec.Experiences {
		parts = append(parts, exp.Role, exp.Company)
		parts = append(parts, exp.Responsibilities...)
	}
	for _, edu := range rec.Education {
		parts = append(parts, edu.Degree, edu.Institution)
	}
	return nlp.WordCount(strings.Join(parts, " "))
}
