// Package report merges the per-category rankings into the fixed twelve-
// section report consumed by the renderer and the API.
package report

import (
	"github.com/ktalanov/ModelScrapOR/internal/classify"
	"github.com/ktalanov/ModelScrapOR/internal/model"
	"github.com/ktalanov/ModelScrapOR/internal/rank"
)

// Assemble builds one CategoryReport per fixed category, in canonical order,
// regardless of which categories have members. An empty category produces a
// report with four empty sequences rather than being omitted, so the
// document shape is identical run to run.
func Assemble(buckets map[model.Category][]*model.Model, freeLimit int) []model.CategoryReport {
	reports := make([]model.CategoryReport, 0, len(model.Categories))
	for _, category := range model.Categories {
		reports = append(reports, assembleOne(category, buckets[category], freeLimit))
	}
	return reports
}

// Build runs the full engine over a normalized model set: classification,
// the three rankings, free selection, assembly. Given a well-formed set it
// cannot fail and always yields exactly twelve reports.
func Build(models []*model.Model, classifier *classify.Classifier, freeLimit int) []model.CategoryReport {
	return Assemble(classifier.Partition(models), freeLimit)
}

func assembleOne(category model.Category, members []*model.Model, freeLimit int) model.CategoryReport {
	capability := rank.Capability(members)
	capIndex := rank.CapabilityIndex(capability)
	desc, asc := rank.ByPrice(members, capIndex)
	free := rank.Free(capability, freeLimit)

	return model.CategoryReport{
		Category:       category,
		DailyRankings:  capability,
		PriceHighToLow: desc,
		PriceLowToHigh: asc,
		FreeModels:     free,
	}
}
