package rank

import (
	"sort"

	"github.com/ktalanov/ModelScrapOR/internal/model"
)

// ByPrice derives the two price orderings for one category. Only the primary
// price comparison flips between the views; ties resolve through the same
// ascending chain in both, keeping output deterministic. Each view assigns
// its own dense 1..N ranks, independent of the capability numbering, and
// every entry carries the category-scoped capability rank as cross-reference.
func ByPrice(members []*model.Model, capRanks map[string]int) (desc, asc []model.PricedModel) {
	descOrder := make([]*model.Model, len(members))
	copy(descOrder, members)
	sort.Slice(descOrder, func(i, j int) bool {
		a, b := descOrder[i], descOrder[j]
		if a.TotalPrice() != b.TotalPrice() {
			return a.TotalPrice() > b.TotalPrice()
		}
		return tieLess(a, b)
	})

	ascOrder := make([]*model.Model, len(members))
	copy(ascOrder, members)
	sort.Slice(ascOrder, func(i, j int) bool {
		return capabilityLess(ascOrder[i], ascOrder[j])
	})

	desc = annotate(descOrder, capRanks)
	asc = annotate(ascOrder, capRanks)
	return desc, asc
}

func annotate(ordered []*model.Model, capRanks map[string]int) []model.PricedModel {
	out := make([]model.PricedModel, len(ordered))
	for i, m := range ordered {
		out[i] = model.PricedModel{
			Model:          m,
			PriceRank:      i + 1,
			CapabilityRank: capRanks[m.ID],
		}
	}
	return out
}
