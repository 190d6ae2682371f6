// Package render превращает структурированное резюме в PDF с помощью gofpdf.
// Картинки и многоколоночные макеты не поддерживаются: ATS-фильтры их
// всё равно не читают.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/artem13815/resumeq/pkg/resume"
)

// Template задаёт визуальный стиль документа.
type Template string

const (
	TemplateModern       Template = "modern"
	TemplateProfessional Template = "professional"
	TemplateATSOptimized Template = "ats-optimized"
	TemplateExecutive    Template = "executive"
)

// Known reports whether t is one of the supported templates.
func (t Template) Known() bool {
	switch t {
	case TemplateModern, TemplateProfessional, TemplateATSOptimized, TemplateExecutive:
		return true
	}
	return false
}

type style struct {
	bodyFont   string
	headerFont string
	accentR    int
	accentG    int
	accentB    int
	rule       bool // horizontal rule under section headers
}

func styleFor(t Template) style {
	switch t {
	case TemplateProfessional:
		return style{bodyFont: "Times", headerFont: "Times", accentR: 30, accentG: 30, accentB: 30, rule: true}
	case TemplateATSOptimized:
		return style{bodyFont: "Helvetica", headerFont: "Helvetica"}
	case TemplateExecutive:
		return style{bodyFont: "Times", headerFont: "Helvetica", accentR: 60, accentG: 60, accentB: 90, rule: true}
	default: // modern
		return style{bodyFont: "Helvetica", headerFont: "Helvetica", accentR: 41, accentG: 98, accentB: 255}
	}
}

// PDFRenderer renders a resume record as a single PDF document.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render builds the document with the given template.
func (r *PDFRenderer) Render(rec resume.Record, tpl Template) ([]byte, error) {
	if !tpl.Known() {
		return nil, fmt.Errorf("unknown resume template %q", tpl)
	}
	st := styleFor(tpl)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Header: name and contact line.
	if rec.Name != "" {
		pdf.SetFont(st.headerFont, "B", 20)
		pdf.SetTextColor(st.accentR, st.accentG, st.accentB)
		pdf.MultiCell(0, 9, rec.Name, "", "L", false)
		pdf.SetTextColor(0, 0, 0)
	}
	if contact := contactLine(rec); contact != "" {
		pdf.SetFont(st.bodyFont, "", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, contact, "", "L", false)
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(3)

	section := func(title string) {
		pdf.Ln(2)
		pdf.SetFont(st.headerFont, "B", 12)
		pdf.SetTextColor(st.accentR, st.accentG, st.accentB)
		pdf.MultiCell(0, 6, title, "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		if st.rule {
			x, y := pdf.GetX(), pdf.GetY()
			pdf.Line(x, y, x+180, y)
			pdf.Ln(1)
		}
	}

	if rec.Summary != "" {
		section("Professional Summary")
		pdf.SetFont(st.bodyFont, "", 10)
		pdf.MultiCell(0, 5, rec.Summary, "", "L", false)
	}

	if len(rec.Experiences) > 0 {
		section("Experience")
		for _, exp := range rec.Experiences {
			pdf.SetFont(st.bodyFont, "B", 11)
			pdf.MultiCell(0, 5.5, exp.Role, "", "L", false)

			sub := exp.Company
			if exp.Duration != "" && exp.Duration != resume.NoDuration {
				sub = strings.TrimSpace(sub + "  |  " + exp.Duration)
			}
			if sub != "" {
				pdf.SetFont(st.bodyFont, "I", 9)
				pdf.SetTextColor(100, 100, 100)
				pdf.MultiCell(0, 4.5, sub, "", "L", false)
				pdf.SetTextColor(0, 0, 0)
			}

			pdf.SetFont(st.bodyFont, "", 10)
			for _, b := range exp.Responsibilities {
				if b == resume.NoResponsibilities {
					continue
				}
				pdf.MultiCell(0, 5, "- "+b, "", "L", false)
			}
			pdf.Ln(2)
		}
	}

	if len(rec.Education) > 0 {
		section("Education")
		for _, edu := range rec.Education {
			if edu.Degree == resume.NoEducation {
				continue
			}
			pdf.SetFont(st.bodyFont, "B", 10)
			pdf.MultiCell(0, 5, edu.Degree, "", "L", false)
			var details []string
			if edu.Institution != "" {
				details = append(details, edu.Institution)
			}
			if edu.GraduationDate != "" {
				details = append(details, edu.GraduationDate)
			}
			if edu.GPA != "" {
				details = append(details, "GPA "+edu.GPA)
			}
			if len(details) > 0 {
				pdf.SetFont(st.bodyFont, "", 9)
				pdf.MultiCell(0, 4.5, strings.Join(details, ", "), "", "L", false)
			}
			pdf.Ln(1)
		}
	}

	if len(rec.Skills) > 0 {
		section("Skills")
		pdf.SetFont(st.bodyFont, "", 10)
		pdf.MultiCell(0, 5, strings.Join(rec.Skills, ", "), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func contactLine(rec resume.Record) string {
	var parts []string
	for _, p := range []string{rec.Email, rec.Phone, rec.Location, rec.ProfileLink} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "  |  ")
}
