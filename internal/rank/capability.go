// Package rank derives the per-category orderings: the capability-proxy
// ranking, the two price rankings, and the bounded free-model selection.
// Every ordering is a strict total order so identical inputs always produce
// identical output.
package rank

import (
	"sort"

	"github.com/ktalanov/ModelScrapOR/internal/model"
)

// Capability ranks a category's members by the capability proxy: lower
// combined price is a better (numerically lower) rank. OpenRouter exposes no
// real quality signal, so this proxy is the contract. Ranks are dense 1..N.
func Capability(members []*model.Model) []model.RankedModel {
	ordered := make([]*model.Model, len(members))
	copy(ordered, members)
	sort.Slice(ordered, func(i, j int) bool {
		return capabilityLess(ordered[i], ordered[j])
	})

	ranked := make([]model.RankedModel, len(ordered))
	for i, m := range ordered {
		ranked[i] = model.RankedModel{Model: m, CapabilityRank: i + 1}
	}
	return ranked
}

// CapabilityIndex builds the (model id -> capability rank) lookup used to
// cross-reference the price views. Scoped to one category: the same model
// carries a different rank in each category it belongs to.
func CapabilityIndex(ranked []model.RankedModel) map[string]int {
	index := make(map[string]int, len(ranked))
	for _, r := range ranked {
		index[r.Model.ID] = r.CapabilityRank
	}
	return index
}

// capabilityLess is the canonical ascending comparator. The tie-break chain
// (input price, provider, display name) guarantees a strict total order even
// for exact price ties, so output never depends on input order.
func capabilityLess(a, b *model.Model) bool {
	if a.TotalPrice() != b.TotalPrice() {
		return a.TotalPrice() < b.TotalPrice()
	}
	return tieLess(a, b)
}

func tieLess(a, b *model.Model) bool {
	if a.InputPrice != b.InputPrice {
		return a.InputPrice < b.InputPrice
	}
	if a.Provider != b.Provider {
		return a.Provider < b.Provider
	}
	return a.DisplayName < b.DisplayName
}
