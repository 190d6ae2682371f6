package resume

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Extract парсит сырой текст резюме в Record. Никогда не возвращает ошибку:
// каждый под-шаг деградирует до пустого значения или sentinel-заглушки,
// частичная структура всегда лучше отсутствия структуры.
func Extract(text string) Record {
	rec := Record{
		Experiences: []Experience{},
		Education:   []Education{},
		Skills:      []string{},
	}

	lines := strings.Split(text, "\n")

	rec.Name = extractName(lines)
	rec.Email = reEmail.FindString(text)
	rec.Phone = rePhone.FindString(text)
	rec.Location = reLocation.FindString(text)
	rec.ProfileLink = reProfileLink.FindString(text)

	sections := splitSections(lines)

	rec.Summary = extractSummary(sections[secSummary])
	rec.Experiences = parseExperiences(sections[secExperience])
	rec.Education = parseEducation(sections[secEducation])
	rec.Skills = parseSkills(sections[secSkills])

	return rec
}

var (
	reEmail       = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	rePhone       = regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	reLocation    = regexp.MustCompile(`[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*,\s*[A-Z]{2}|[A-Z][a-z]+,\s*[A-Z][a-z]+`)
	reProfileLink = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[\w-]+`)
	reDateRange   = regexp.MustCompile(`\d{4}\s*[-–]\s*(?:\d{4}|[Pp]resent)|[A-Za-z]+\s+\d{4}\s*[-–]\s*(?:[A-Za-z]+\s+\d{4}|[Pp]resent)`)
	reYear        = regexp.MustCompile(`[A-Za-z]+\s+\d{4}|\d{4}`)
	reGPA         = regexp.MustCompile(`(?i)GPA[:\s]*([0-9.]+)`)
	reSkillSplit  = regexp.MustCompile(`[,•\-\n|]`)
)

// extractName берёт первую непустую строку, если она похожа на имя:
// 2–4 слова и ни одного из разделителей @ | •.
func extractName(lines []string) string {
	var first string
	for _, l := range lines {
		if t := strings.TrimSpace(l); t != "" {
			first = t
			break
		}
	}
	if first == "" {
		return ""
	}
	words := strings.Fields(first)
	if len(words) < 2 || len(words) > 4 {
		return ""
	}
	if strings.ContainsAny(first, "@|•") {
		return ""
	}
	return first
}

type sectionKind int

const (
	secSummary sectionKind = iota
	secExperience
	secEducation
	secSkills
)

var sectionHeaders = map[sectionKind][]string{
	secSummary:    {"summary", "professional summary", "profile", "objective", "about"},
	secExperience: {"experience", "professional experience", "work experience", "work history", "employment"},
	secEducation:  {"education", "academic background", "academic", "qualifications", "qualification"},
	secSkills:     {"skills", "technical skills", "core competencies"},
}

// headerLine распознаёт строку-заголовок секции (case-insensitive),
// допуская вариант "Header: inline content" — остаток строки становится
// первой строкой тела секции.
func headerLine(line string) (sectionKind, string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) > 60 {
		return 0, "", false
	}
	lower := strings.ToLower(trimmed)
	for _, kind := range []sectionKind{secSummary, secExperience, secEducation, secSkills} {
		for _, name := range sectionHeaders[kind] {
			if lower == name || lower == name+":" {
				return kind, "", true
			}
			if strings.HasPrefix(lower, name+":") {
				return kind, strings.TrimSpace(trimmed[len(name)+1:]), true
			}
		}
	}
	return 0, "", false
}

// splitSections раскладывает строки текста по известным секциям. Тело секции —
// всё от заголовка до следующего известного заголовка или конца текста.
func splitSections(lines []string) map[sectionKind][]string {
	out := make(map[sectionKind][]string)
	current := sectionKind(-1)
	for _, line := range lines {
		if kind, inline, ok := headerLine(line); ok {
			// first occurrence wins
			if _, seen := out[kind]; !seen {
				out[kind] = []string{}
				if inline != "" {
					out[kind] = append(out[kind], inline)
				}
				current = kind
			} else {
				current = sectionKind(-1)
			}
			continue
		}
		if current >= 0 {
			out[current] = append(out[current], line)
		}
	}
	return out
}

// extractSummary обрезает тело по первой пустой строке и жёстко
// ограничивает длину.
func extractSummary(body []string) string {
	if len(body) == 0 {
		return ""
	}
	var kept []string
	started := false
	for _, l := range body {
		t := strings.TrimSpace(l)
		if t == "" {
			if started {
				break
			}
			continue
		}
		started = true
		kept = append(kept, t)
	}
	s := strings.Join(kept, " ")
	if utf8.RuneCountInString(s) > maxSummaryLen {
		s = string([]rune(s)[:maxSummaryLen])
	}
	return strings.TrimSpace(s)
}

// blankSplit разбивает тело секции на блоки по пустым строкам.
func blankSplit(body []string) [][]string {
	var groups [][]string
	var cur []string
	for _, l := range body {
		if strings.TrimSpace(l) == "" {
			if len(cur) > 0 {
				groups = append(groups, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, strings.TrimSpace(l))
	}
	if len(cur) > 0 {
		groups = append(groups, cur)
	}
	return groups
}

var bulletGlyphs = []string{"•", "-", "–", "◦", "*"}

// Глаголы-маркеры, по которым строка без маркера списка всё равно
// считается пунктом обязанностей.
var leadVerbs = []string{
	"led", "managed", "developed", "created", "improved", "increased",
	"reduced", "achieved", "delivered", "implemented", "designed",
}

func parseExperiences(body []string) []Experience {
	groups := blankSplit(body)
	if len(groups) > maxExperiences {
		groups = groups[:maxExperiences]
	}
	out := []Experience{}
	for _, entry := range groups {
		joined := strings.Join(entry, "\n")
		if len(strings.TrimSpace(joined)) < 30 {
			continue
		}
		if len(entry) < 2 {
			continue
		}
		exp := Experience{
			Role:    entry[0],
			Company: entry[1],
		}
		exp.Duration = reDateRange.FindString(joined)
		if exp.Duration == "" {
			exp.Duration = NoDuration
		}
		var bullets []string
		for _, line := range entry[2:] {
			if b, ok := bulletText(line); ok {
				bullets = append(bullets, b)
			}
		}
		if len(bullets) > maxBullets {
			bullets = bullets[:maxBullets]
		}
		if len(bullets) == 0 {
			bullets = []string{NoResponsibilities}
		}
		exp.Responsibilities = bullets
		out = append(out, exp)
	}
	return out
}

// bulletText решает, является ли строка пунктом обязанностей, и снимает
// маркер списка. Строка без маркера проходит, если она длиннее 20 символов
// и в первых ~30 символах встречается сильный глагол.
func bulletText(line string) (string, bool) {
	for _, g := range bulletGlyphs {
		if strings.HasPrefix(line, g) {
			return strings.TrimSpace(strings.TrimLeft(line, "•-–◦* ")), true
		}
	}
	if len(line) <= 20 {
		return "", false
	}
	head := strings.ToLower(line)
	if len(head) > 30 {
		head = head[:30]
	}
	for _, v := range leadVerbs {
		if strings.Contains(head, v) {
			return line, true
		}
	}
	return "", false
}

func parseEducation(body []string) []Education {
	groups := blankSplit(body)
	if len(groups) > maxEducation {
		groups = groups[:maxEducation]
	}
	out := []Education{}
	for _, entry := range groups {
		joined := strings.Join(entry, "\n")
		if len(strings.TrimSpace(joined)) < 15 {
			continue
		}
		edu := Education{Degree: entry[0]}
		if len(entry) > 1 {
			edu.Institution = entry[1]
		}
		edu.GraduationDate = reYear.FindString(joined)
		if m := reGPA.FindStringSubmatch(joined); m != nil {
			edu.GPA = m[1]
		}
		out = append(out, edu)
	}
	if len(out) == 0 {
		return []Education{{Degree: NoEducation}}
	}
	return out
}

func parseSkills(body []string) []string {
	if len(body) == 0 {
		return []string{}
	}
	raw := reSkillSplit.Split(strings.Join(body, "\n"), -1)
	seen := make(map[string]struct{})
	out := []string{}
	for _, tok := range raw {
		tok = strings.TrimSpace(tok)
		if len(tok) < 3 || len(tok) > 100 {
			continue
		}
		key := strings.ToLower(tok)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tok)
		if len(out) == maxSkills {
			break
		}
	}
	return out
}
