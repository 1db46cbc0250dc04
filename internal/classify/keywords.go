package classify

import "github.com/ktalanov/ModelScrapOR/internal/model"

// keywords is the static classification table: a model belongs to a category
// when any of these case-insensitive substrings occurs in its id, display
// name, provider, or description. Extend via classify.extra_patterns in the
// config rather than editing this table.
var keywords = map[model.Category][]string{
	model.CategoryProgramming: {"code", "coder", "coding", "program", "dev", "devstral"},
	model.CategoryRoleplay:    {"roleplay", "companion", "character", "chat", "story", "creative"},
	model.CategoryMarketing:   {"marketing", "business", "content", "copywriting"},
	model.CategorySEO:         {"seo", "search", "optimization"},
	model.CategoryTechnology:  {"tech", "technical", "system", "engineering"},
	model.CategoryScience:     {"science", "scientific", "research", "academic"},
	model.CategoryTranslation: {"translate", "translation", "language", "multilingual"},
	model.CategoryLegal:       {"legal", "law", "compliance"},
	model.CategoryFinance:     {"finance", "financial", "economics", "trading"},
	model.CategoryHealth:      {"health", "medical", "healthcare", "clinical"},
	model.CategoryTrivia:      {"trivia", "quiz", "general", "knowledge"},
	model.CategoryAcademia:    {"academic", "scholar", "research", "education"},
}
