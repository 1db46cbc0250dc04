package registry

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/ktalanov/ModelScrapOR/internal/model"
	"github.com/ktalanov/ModelScrapOR/internal/utils/log"
)

// ErrEmptyCatalog is returned when zero valid models survive normalization.
// No category can be populated from an empty set, so the run cannot continue.
var ErrEmptyCatalog = errors.New("empty catalog: no valid models after normalization")

// Result carries the normalized model set plus the count of raw records
// dropped as malformed.
type Result struct {
	Models  []*model.Model
	Dropped int
}

// Normalize converts raw catalog records into the canonical model set.
// Duplicated ids resolve last-seen-wins. A record is malformed when it lacks
// an id or when both price fields are present but non-numeric; malformed
// records are dropped and counted, never included with guessed prices.
// The returned set is ordered by id so every downstream iteration is stable.
func Normalize(raw []model.OpenRouterModel) (*Result, error) {
	byID := make(map[string]*model.Model, len(raw))
	dropped := 0

	for _, r := range raw {
		m, ok := normalizeOne(r)
		if !ok {
			dropped++
			continue
		}
		byID[m.ID] = m
	}

	if len(byID) == 0 {
		return nil, ErrEmptyCatalog
	}

	models := make([]*model.Model, 0, len(byID))
	for _, m := range byID {
		models = append(models, m)
	}
	sort.Slice(models, func(i, j int) bool {
		return models[i].ID < models[j].ID
	})

	if dropped > 0 {
		log.Warnf("dropped %d malformed catalog records", dropped)
	}
	return &Result{Models: models, Dropped: dropped}, nil
}

func normalizeOne(r model.OpenRouterModel) (*model.Model, bool) {
	id := strings.TrimSpace(r.ID)
	if id == "" {
		return nil, false
	}

	input, inputOK := parsePrice(r.Pricing.Prompt)
	output, outputOK := parsePrice(r.Pricing.Completion)
	if !inputOK && !outputOK {
		return nil, false
	}
	// One readable price is enough to keep the record; the unreadable side
	// is zeroed here, after validation, and logged.
	if !inputOK {
		log.Debugf("model %s: unreadable prompt price %q, using 0", id, r.Pricing.Prompt)
		input = 0
	}
	if !outputOK {
		log.Debugf("model %s: unreadable completion price %q, using 0", id, r.Pricing.Completion)
		output = 0
	}

	name := strings.TrimSpace(r.Name)
	if name == "" {
		name = id
	}

	return &model.Model{
		ID:            id,
		DisplayName:   name,
		Provider:      providerOf(id, name),
		Description:   strings.TrimSpace(r.Description),
		InputPrice:    input,
		OutputPrice:   output,
		ContextLength: r.ContextLength,
	}, true
}

// parsePrice converts an OpenRouter per-token price string into USD per
// million tokens. Missing prices are valid and mean zero; present but
// non-numeric or negative prices are not.
func parsePrice(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v * 1_000_000, true
}

// providerOf extracts the provider slug. OpenRouter ids are
// "provider/model-name"; display names often carry a "Provider: Model"
// prefix as a fallback.
func providerOf(id, name string) string {
	if idx := strings.Index(id, "/"); idx > 0 {
		return id[:idx]
	}
	if idx := strings.Index(name, ":"); idx > 0 {
		return strings.TrimSpace(name[:idx])
	}
	return ""
}
