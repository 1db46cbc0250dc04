package classify

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/ktalanov/ModelScrapOR/internal/model"
	"github.com/ktalanov/ModelScrapOR/internal/utils/xslice"
)

// Classifier assigns models to categories. Classification is pure: the same
// model always yields the same category set, independent of input order.
type Classifier struct {
	extra map[model.Category][]*regexp2.Regexp
}

// New builds a classifier from the built-in keyword table plus optional
// per-category regex overrides from the config. Unknown category labels and
// uncompilable patterns are rejected up front.
func New(extraPatterns map[string][]string) (*Classifier, error) {
	c := &Classifier{extra: make(map[model.Category][]*regexp2.Regexp)}
	for label, patterns := range extraPatterns {
		category := model.Category(label)
		if !model.IsValidCategory(category) {
			return nil, fmt.Errorf("unknown category in extra_patterns: %q", label)
		}
		for _, pattern := range xslice.Unique(patterns) {
			re, err := regexp2.Compile(pattern, regexp2.ECMAScript|regexp2.IgnoreCase)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q for category %s: %w", pattern, label, err)
			}
			c.extra[category] = append(c.extra[category], re)
		}
	}
	return c, nil
}

// Classify returns the categories a model belongs to, in canonical order.
// Zero, one, or many matches are all valid outcomes.
func (c *Classifier) Classify(m *model.Model) []model.Category {
	haystack := strings.ToLower(m.ID + " " + m.DisplayName + " " + m.Provider + " " + m.Description)

	matched := make([]model.Category, 0, 2)
	for _, category := range model.Categories {
		if c.matches(category, haystack) {
			matched = append(matched, category)
		}
	}
	return matched
}

// Partition groups a model set by category. Models matching no category are
// simply absent from every bucket; they stay in the registry but appear in
// no report. Member order follows the input order.
func (c *Classifier) Partition(models []*model.Model) map[model.Category][]*model.Model {
	buckets := make(map[model.Category][]*model.Model, len(model.Categories))
	for _, category := range model.Categories {
		buckets[category] = make([]*model.Model, 0)
	}
	for _, m := range models {
		for _, category := range c.Classify(m) {
			buckets[category] = append(buckets[category], m)
		}
	}
	return buckets
}

func (c *Classifier) matches(category model.Category, haystack string) bool {
	for _, kw := range keywords[category] {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	for _, re := range c.extra[category] {
		if ok, err := re.MatchString(haystack); err == nil && ok {
			return true
		}
	}
	return false
}
