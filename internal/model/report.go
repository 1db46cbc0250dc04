package model

// RankedModel is a category member annotated with its capability-proxy rank.
// Ranks are dense 1..N within a category.
type RankedModel struct {
	Model          *Model `json:"model"`
	CapabilityRank int    `json:"capability_rank"`
}

// PricedModel is a category member annotated with its position in one of the
// two price orderings. CapabilityRank cross-references the same model's
// position in the capability ranking of the same category.
type PricedModel struct {
	Model          *Model `json:"model"`
	PriceRank      int    `json:"price_rank"`
	CapabilityRank int    `json:"capability_rank"`
}

// CategoryReport holds the four views of one category. Built once per run,
// immutable afterwards. A category with no members still produces a report
// with four empty sequences.
type CategoryReport struct {
	Category       Category      `json:"category"`
	DailyRankings  []RankedModel `json:"daily_rankings"`
	PriceHighToLow []PricedModel `json:"price_high_to_low"`
	PriceLowToHigh []PricedModel `json:"price_low_to_high"`
	FreeModels     []RankedModel `json:"free_models"`
}
