// Package render is the rendering sink: it turns the assembled category
// reports into the static daily HTML document plus its stylesheet. The
// engine's ordering is taken as-is; the only rendering-side transformation
// is display truncation to the configured top N.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ktalanov/ModelScrapOR/internal/conf"
	"github.com/ktalanov/ModelScrapOR/internal/model"
	"github.com/ktalanov/ModelScrapOR/internal/utils/log"
)

//go:embed templates assets
var assetFS embed.FS

var reportTmpl = template.Must(template.ParseFS(assetFS, "templates/report.html.tmpl"))

type Options struct {
	// TopN bounds the entries shown per section; <= 0 shows everything.
	TopN             int
	CostInputTokens  int
	CostOutputTokens int
}

type lineView struct {
	Name        string
	Price       string
	Cost        string
	CrossRef    int
	CategoryRef string
}

type categoryView struct {
	Label     string
	Anchor    string
	Daily     []lineView
	PriceHigh []lineView
	PriceLow  []lineView
	Free      []lineView
}

type pageView struct {
	Date       string
	Repo       string
	Categories []categoryView
}

// Render writes the full HTML document for the given reports.
func Render(w io.Writer, reports []model.CategoryReport, date time.Time, opts Options) error {
	return reportTmpl.Execute(w, buildPage(reports, date, opts))
}

// WriteFiles renders the report into outputDir as models-YYYY-MM-DD.html and
// writes the stylesheet beside it. Returns the HTML file path.
func WriteFiles(reports []model.CategoryReport, date time.Time, outputDir string, opts Options) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	htmlPath := filepath.Join(outputDir, fmt.Sprintf("models-%s.html", date.Format("2006-01-02")))
	f, err := os.Create(htmlPath)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()
	if err := Render(f, reports, date, opts); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}

	css, err := assetFS.ReadFile("assets/style.css")
	if err != nil {
		return "", err
	}
	cssPath := filepath.Join(outputDir, "style.css")
	if err := os.WriteFile(cssPath, css, 0644); err != nil {
		return "", fmt.Errorf("failed to write stylesheet: %w", err)
	}

	log.Infof("report saved to %s", htmlPath)
	return htmlPath, nil
}

func buildPage(reports []model.CategoryReport, date time.Time, opts Options) pageView {
	page := pageView{
		Date:       date.Format("2006-01-02"),
		Repo:       conf.Repo,
		Categories: make([]categoryView, 0, len(reports)),
	}
	for _, r := range reports {
		page.Categories = append(page.Categories, buildCategory(r, opts))
	}
	return page
}

func buildCategory(r model.CategoryReport, opts Options) categoryView {
	view := categoryView{
		Label:  string(r.Category),
		Anchor: strings.ToLower(string(r.Category)),
	}

	for _, e := range topRanked(r.DailyRankings, opts.TopN) {
		view.Daily = append(view.Daily, lineView{
			Name:  e.Model.DisplayName,
			Price: e.Model.PriceDisplay(),
			Cost:  costDisplay(e.Model, opts),
		})
	}
	for _, e := range topPriced(r.PriceHighToLow, opts.TopN) {
		view.PriceHigh = append(view.PriceHigh, lineView{
			Name:  e.Model.DisplayName,
			Price: e.Model.PriceDisplay(),
		})
	}
	for _, e := range topPriced(r.PriceLowToHigh, opts.TopN) {
		view.PriceLow = append(view.PriceLow, lineView{
			Name:     e.Model.DisplayName,
			Price:    e.Model.PriceDisplay(),
			CrossRef: e.CapabilityRank,
		})
	}
	for _, e := range r.FreeModels {
		view.Free = append(view.Free, lineView{
			Name:        e.Model.DisplayName,
			CategoryRef: fmt.Sprintf("%s #%d", r.Category, e.CapabilityRank),
		})
	}
	return view
}

func topRanked(entries []model.RankedModel, n int) []model.RankedModel {
	if n > 0 && len(entries) > n {
		return entries[:n]
	}
	return entries
}

func topPriced(entries []model.PricedModel, n int) []model.PricedModel {
	if n > 0 && len(entries) > n {
		return entries[:n]
	}
	return entries
}

func costDisplay(m *model.Model, opts Options) string {
	if opts.CostInputTokens <= 0 && opts.CostOutputTokens <= 0 {
		return ""
	}
	return fmt.Sprintf("$%.4f", m.EstimateCost(opts.CostInputTokens, opts.CostOutputTokens))
}
