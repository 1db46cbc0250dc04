package helper

import (
	"context"
	"fmt"
	"time"

	"github.com/ktalanov/ModelScrapOR/internal/classify"
	"github.com/ktalanov/ModelScrapOR/internal/conf"
	"github.com/ktalanov/ModelScrapOR/internal/model"
	"github.com/ktalanov/ModelScrapOR/internal/op"
	"github.com/ktalanov/ModelScrapOR/internal/registry"
	"github.com/ktalanov/ModelScrapOR/internal/render"
	"github.com/ktalanov/ModelScrapOR/internal/report"
	"github.com/ktalanov/ModelScrapOR/internal/source"
	"github.com/ktalanov/ModelScrapOR/internal/utils/log"
)

// RefreshCatalog fetches the raw catalog, normalizes it, and replaces the
// persisted copy. The DB holds only the current catalog so offline runs can
// rebuild reports without network access.
func RefreshCatalog(ctx context.Context) ([]*model.Model, error) {
	raw, err := source.FetchCatalog(ctx)
	if err != nil {
		return nil, err
	}
	result, err := registry.Normalize(raw)
	if err != nil {
		return nil, err
	}
	log.Infof("normalized %d models (%d malformed records dropped)", len(result.Models), result.Dropped)

	if err := op.CatalogReplaceAll(ctx, result.Models); err != nil {
		// The report can still be built from the in-memory set.
		log.Warnf("failed to persist catalog: %v", err)
	}
	return result.Models, nil
}

// BuildReports runs the engine over the current catalog. With offline set
// the persisted catalog is used instead of fetching.
func BuildReports(ctx context.Context, offline bool) ([]model.CategoryReport, error) {
	var models []*model.Model
	var err error
	if offline {
		models, err = op.CatalogList(ctx)
		if err != nil {
			return nil, err
		}
		if len(models) == 0 {
			return nil, fmt.Errorf("offline catalog is empty, run a fetch first: %w", registry.ErrEmptyCatalog)
		}
	} else {
		models, err = RefreshCatalog(ctx)
		if err != nil {
			return nil, err
		}
	}

	classifier, err := classify.New(conf.AppConfig.Classify.ExtraPatterns)
	if err != nil {
		return nil, err
	}
	return report.Build(models, classifier, conf.AppConfig.Report.FreeLimit), nil
}

// GenerateReport builds today's reports and writes the HTML document plus
// stylesheet into the configured output directory.
func GenerateReport(ctx context.Context, offline bool) (string, error) {
	reports, err := BuildReports(ctx, offline)
	if err != nil {
		return "", err
	}
	return render.WriteFiles(reports, time.Now(), conf.AppConfig.Report.OutputDir, render.Options{
		TopN:             conf.AppConfig.Report.TopN,
		CostInputTokens:  conf.AppConfig.Report.CostInputTokens,
		CostOutputTokens: conf.AppConfig.Report.CostOutputTokens,
	})
}
