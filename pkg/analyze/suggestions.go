package analyze

import "strings"

// suggestions строит рекомендации вторым проходом по накопленным проблемам.
// Каждая тема срабатывает не более одного раза, сколько бы проблем её ни
// упоминало. Порядок тем фиксированный.
func (a *Analyzer) suggestions(issues []Issue) []Suggestion {
	out := []Suggestion{}

	mentions := func(needle string) bool {
		for _, i := range issues {
			if strings.Contains(strings.ToLower(i.Description), needle) {
				return true
			}
		}
		return false
	}
	hasCategory := func(cat string, onlySevere bool) bool {
		for _, i := range issues {
			if i.Category != cat {
				continue
			}
			if onlySevere && i.Severity != SeverityCritical && i.Severity != SeverityHigh {
				continue
			}
			return true
		}
		return false
	}

	if mentions("quantifiable achievements") {
		out = append(out, Suggestion{
			Category: CategoryContent,
			Priority: PriorityCritical,
			Text:     "Add quantifiable metrics to demonstrate your impact",
			Examples: []string{
				"Managed 15+ executive calendars with 99% accuracy",
				"Reduced email response time by 45% through automation",
				"Coordinated travel for 20+ international trips annually",
			},
			Reasoning: "Numbers make your achievements concrete and memorable to recruiters",
		})
	}

	if mentions("action verb") {
		out = append(out, Suggestion{
			Category: CategoryContent,
			Priority: PriorityHigh,
			Text:     "Start bullet points with strong action verbs",
			Examples: []string{
				"Coordinated", "Streamlined", "Optimized", "Managed", "Implemented",
			},
			Reasoning: "Action verbs make your resume more dynamic and results-oriented",
		})
	}

	if mentions("keyword") {
		out = append(out, Suggestion{
			Category: CategoryATS,
			Priority: PriorityCritical,
			Text:     "Optimize for ATS with role-specific keywords",
			Examples: []string{
				"Administrative Support", "Calendar Management", "CRM (HubSpot, Salesforce)",
				"Project Management Tools (Asana, Monday.com)", "Google Workspace", "Data Entry",
			},
			Reasoning: "80% of resumes are filtered by ATS before human review",
		})
	}

	if hasCategory(CategorySkills, false) {
		out = append(out, Suggestion{
			Category: CategorySkills,
			Priority: PriorityHigh,
			Text:     "Expand your skills section with specific tools and platforms",
			Examples: []string{
				"Scheduling: Google Calendar, Calendly",
				"Communication: Slack, Zoom, Microsoft Teams",
				"Project Management: Asana, Trello, Monday.com",
				"CRM: HubSpot, Salesforce, Pipedrive",
			},
			Reasoning: "Specific tool proficiency helps you stand out and pass ATS filters",
		})
	}

	if hasCategory(CategorySummary, true) {
		out = append(out, Suggestion{
			Category: CategorySummary,
			Priority: PriorityHigh,
			Text:     "Craft a compelling professional summary that hooks recruiters",
			Examples: []string{
				"Detail-oriented Virtual Assistant with 5+ years supporting C-suite executives",
				"Specialized in calendar optimization, reducing scheduling conflicts by 40%",
				"Proficient in Google Workspace, Asana, and HubSpot",
			},
			Reasoning: "Your summary is the first thing recruiters read - make it count",
		})
	}

	return out
}
