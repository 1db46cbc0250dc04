package task

import (
	"context"
	"time"

	"github.com/ktalanov/ModelScrapOR/internal/helper"
	"github.com/ktalanov/ModelScrapOR/internal/model"
	"github.com/ktalanov/ModelScrapOR/internal/op"
	"github.com/ktalanov/ModelScrapOR/internal/utils/log"
)

func Init() {
	reportIntervalHours, err := op.SettingGetInt(model.SettingKeyReportUpdateInterval)
	if err != nil {
		log.Errorf("failed to get report update interval: %v", err)
		return
	}
	reportInterval := time.Duration(reportIntervalHours) * time.Hour
	Register(string(model.SettingKeyReportUpdateInterval), reportInterval, true, func() {
		if _, err := helper.GenerateReport(context.Background(), false); err != nil {
			log.Warnf("scheduled report generation failed: %v", err)
		}
	})

	catalogIntervalHours, err := op.SettingGetInt(model.SettingKeyCatalogUpdateInterval)
	if err != nil {
		log.Warnf("failed to get catalog update interval: %v", err)
		return
	}
	catalogInterval := time.Duration(catalogIntervalHours) * time.Hour
	Register(string(model.SettingKeyCatalogUpdateInterval), catalogInterval, false, func() {
		if _, err := helper.RefreshCatalog(context.Background()); err != nil {
			log.Warnf("scheduled catalog refresh failed: %v", err)
		}
	})
}
