package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ktalanov/ModelScrapOR/internal/classify"
	"github.com/ktalanov/ModelScrapOR/internal/conf"
	"github.com/ktalanov/ModelScrapOR/internal/helper"
	"github.com/ktalanov/ModelScrapOR/internal/model"
	"github.com/ktalanov/ModelScrapOR/internal/op"
	"github.com/ktalanov/ModelScrapOR/internal/server/middleware"
	"github.com/ktalanov/ModelScrapOR/internal/server/resp"
	"github.com/ktalanov/ModelScrapOR/internal/server/router"
	"github.com/ktalanov/ModelScrapOR/internal/source"
	"github.com/samber/lo"
)

func init() {
	router.NewGroupRouter("/api/v1/catalog").
		Use(middleware.Auth()).
		Use(middleware.RequireJSON()).
		AddRoute(
			router.NewRoute("/list", http.MethodGet).
				Handle(listCatalog),
		).
		AddRoute(
			router.NewRoute("/refresh", http.MethodPost).
				Handle(refreshCatalog),
		).
		AddRoute(
			router.NewRoute("/last-fetch-time", http.MethodGet).
				Handle(getLastFetchTime),
		)
}

// listCatalog returns the cached catalog, each model annotated with its
// matched categories. ?free=true narrows to the free tier.
func listCatalog(c *gin.Context) {
	models, err := op.CatalogList(c.Request.Context())
	if err != nil {
		resp.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	if c.Query("free") == "true" {
		models = lo.Filter(models, func(m *model.Model, _ int) bool {
			return m.IsFree()
		})
	}

	classifier, err := classify.New(conf.AppConfig.Classify.ExtraPatterns)
	if err != nil {
		resp.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	type catalogEntry struct {
		*model.Model
		Categories []model.Category `json:"categories"`
	}
	entries := lo.Map(models, func(m *model.Model, _ int) catalogEntry {
		return catalogEntry{Model: m, Categories: classifier.Classify(m)}
	})
	resp.Success(c, entries)
}

func refreshCatalog(c *gin.Context) {
	models, err := helper.RefreshCatalog(c.Request.Context())
	if err != nil {
		resp.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	resp.Success(c, gin.H{"count": len(models)})
}

func getLastFetchTime(c *gin.Context) {
	resp.Success(c, source.GetLastFetchTime())
}
