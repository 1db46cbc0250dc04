package rank

import (
	"github.com/samber/lo"

	"github.com/ktalanov/ModelScrapOR/internal/model"
)

// Free selects the best free-tier models of a category: the zero-price
// subset in capability order, truncated to limit. Fewer than limit free
// models yield a shorter list and zero yield an empty one; the section is
// still rendered either way.
func Free(ranked []model.RankedModel, limit int) []model.RankedModel {
	free := lo.Filter(ranked, func(r model.RankedModel, _ int) bool {
		return r.Model.IsFree()
	})
	if limit >= 0 && len(free) > limit {
		free = free[:limit]
	}
	return free
}
