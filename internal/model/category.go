package model

type Category string

const (
	CategoryProgramming Category = "Programming"
	CategoryRoleplay    Category = "Roleplay"
	CategoryMarketing   Category = "Marketing"
	CategorySEO         Category = "SEO"
	CategoryTechnology  Category = "Technology"
	CategoryScience     Category = "Science"
	CategoryTranslation Category = "Translation"
	CategoryLegal       Category = "Legal"
	CategoryFinance     Category = "Finance"
	CategoryHealth      Category = "Health"
	CategoryTrivia      Category = "Trivia"
	CategoryAcademia    Category = "Academia"
)

// Categories is the canonical report order. Every report carries all twelve
// sections in this order even when a category has no members.
var Categories = []Category{
	CategoryProgramming,
	CategoryRoleplay,
	CategoryMarketing,
	CategorySEO,
	CategoryTechnology,
	CategoryScience,
	CategoryTranslation,
	CategoryLegal,
	CategoryFinance,
	CategoryHealth,
	CategoryTrivia,
	CategoryAcademia,
}

func IsValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
