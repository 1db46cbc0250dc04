package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ktalanov/ModelScrapOR/internal/conf"
	"github.com/ktalanov/ModelScrapOR/internal/helper"
	"github.com/ktalanov/ModelScrapOR/internal/server/middleware"
	"github.com/ktalanov/ModelScrapOR/internal/server/resp"
	"github.com/ktalanov/ModelScrapOR/internal/server/router"
)

func init() {
	router.NewGroupRouter("/api/v1/report").
		Use(middleware.Auth()).
		Use(middleware.RequireJSON()).
		AddRoute(
			router.NewRoute("/latest", http.MethodGet).
				Handle(latestReport),
		).
		AddRoute(
			router.NewRoute("/list", http.MethodGet).
				Handle(listReports),
		).
		AddRoute(
			router.NewRoute("/generate", http.MethodPost).
				Handle(generateReport),
		)
}

// latestReport returns the twelve category reports built from the cached
// catalog, without touching the network.
func latestReport(c *gin.Context) {
	reports, err := helper.BuildReports(c.Request.Context(), true)
	if err != nil {
		resp.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	resp.Success(c, reports)
}

func listReports(c *gin.Context) {
	entries, err := os.ReadDir(conf.AppConfig.Report.OutputDir)
	if err != nil {
		if os.IsNotExist(err) {
			resp.Success(c, []string{})
			return
		}
		resp.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, "models-") || filepath.Ext(name) != ".html" {
			continue
		}
		files = append(files, name)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(files)))
	resp.Success(c, files)
}

func generateReport(c *gin.Context) {
	path, err := helper.GenerateReport(c.Request.Context(), false)
	if err != nil {
		resp.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	resp.Success(c, gin.H{"path": path})
}
