package op

import (
	"context"
	"sort"

	"github.com/ktalanov/ModelScrapOR/internal/db"
	"github.com/ktalanov/ModelScrapOR/internal/model"
	"github.com/ktalanov/ModelScrapOR/internal/utils/cache"
)

var catalogCache = cache.New[string, model.Model](64)

// CatalogList returns the cached catalog ordered by id. The slice and its
// elements are fresh copies; callers may annotate them freely.
func CatalogList(ctx context.Context) ([]*model.Model, error) {
	all := catalogCache.GetAll()
	models := make([]*model.Model, 0, len(all))
	for _, m := range all {
		m := m
		models = append(models, &m)
	}
	sort.Slice(models, func(i, j int) bool {
		return models[i].ID < models[j].ID
	})
	return models, nil
}

func CatalogCount() int {
	return catalogCache.Len()
}

// CatalogReplaceAll swaps the persisted catalog for the given set. The cache
// holds only the current catalog, last write wins; no history is kept.
func CatalogReplaceAll(ctx context.Context, models []*model.Model) error {
	tx := db.GetDB().WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := tx.Where("1 = 1").Delete(&model.Model{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if len(models) > 0 {
		if err := tx.CreateInBatches(models, 200).Error; err != nil {
			tx.Rollback()
			return err
		}
	}
	if err := tx.Commit().Error; err != nil {
		return err
	}

	catalogCache.Clear()
	for _, m := range models {
		catalogCache.Set(m.ID, *m)
	}
	return nil
}

func catalogRefreshCache(ctx context.Context) error {
	models := make([]model.Model, 0)
	if err := db.GetDB().WithContext(ctx).Find(&models).Error; err != nil {
		return err
	}
	catalogCache.Clear()
	for _, m := range models {
		catalogCache.Set(m.ID, m)
	}
	return nil
}
