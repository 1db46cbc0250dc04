// Package source is the external data source: it retrieves the raw model
// catalog from the OpenRouter API. The engine never performs network I/O
// itself; everything downstream of this package is a pure transformation.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/ktalanov/ModelScrapOR/internal/client"
	"github.com/ktalanov/ModelScrapOR/internal/conf"
	"github.com/ktalanov/ModelScrapOR/internal/model"
	"github.com/ktalanov/ModelScrapOR/internal/op"
	"github.com/ktalanov/ModelScrapOR/internal/utils/log"
)

var (
	lastFetchTime time.Time
	lastFetchLock sync.RWMutex
)

// FetchCatalog retrieves the raw model list, GET {base}/models.
// refer: https://openrouter.ai/docs/api-reference/list-available-models
func FetchCatalog(ctx context.Context) ([]model.OpenRouterModel, error) {
	log.Debugf("catalog fetch started")
	startTime := time.Now()
	defer func() {
		log.Debugf("catalog fetch finished in %s", time.Since(startTime))
	}()

	httpClient, err := catalogHTTPClient()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, conf.AppConfig.Source.BaseURL+"/models", nil)
	if err != nil {
		return nil, err
	}
	if key := conf.AppConfig.Source.APIKey; key != "" {
		req.Header.Set("Authorization", "Bearer "+key)
	}
	req.Header.Set("HTTP-Referer", conf.Repo)
	req.Header.Set("X-Title", conf.APP_NAME)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch catalog: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	var list model.OpenRouterModelList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	lastFetchLock.Lock()
	lastFetchTime = time.Now()
	lastFetchLock.Unlock()
	log.Infof("fetched %d raw catalog records", len(list.Data))
	return list.Data, nil
}

func GetLastFetchTime() time.Time {
	lastFetchLock.RLock()
	defer lastFetchLock.RUnlock()
	return lastFetchTime
}

// catalogHTTPClient honors the proxy_url setting when present and falls back
// to a direct client otherwise.
func catalogHTTPClient() (*http.Client, error) {
	proxyURL, err := op.SettingGetString(model.SettingKeyProxyURL)
	if err == nil && proxyURL != "" {
		return client.GetHTTPClientSystemProxy(true)
	}
	return client.GetHTTPClientSystemProxy(false)
}
