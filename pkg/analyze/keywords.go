package analyze

// Ключевые слова профессии виртуального ассистента. Сопоставление идёт по
// нормализованным подстрокам, поэтому "Monday.com" в тексте матчится с
// "monday com" здесь.
var roleKeywords = []string{
	"virtual assistant",
	"administrative support",
	"calendar management",
	"email management",
	"scheduling",
	"data entry",
	"crm",
	"customer service",
	"project coordination",
	"travel coordination",
	"expense management",
	"social media",
	"content management",
	"bookkeeping",
	"invoicing",
	"asana",
	"trello",
	"monday.com",
	"slack",
	"zoom",
	"google workspace",
	"microsoft office",
	"excel",
	"powerpoint",
	"ghl",
	"gohighlevel",
}

// Сильные глаголы, с которых должен начинаться пункт обязанностей.
var actionVerbs = []string{
	"managed", "coordinated", "led", "developed", "implemented",
	"optimized", "streamlined", "organized", "executed", "facilitated",
	"achieved", "increased", "reduced", "improved", "created",
	"designed", "established", "maintained", "analyzed", "processed",
	"handled", "supported", "assisted",
}
