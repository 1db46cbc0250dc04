package classify

import (
	"reflect"
	"testing"

	"github.com/ktalanov/ModelScrapOR/internal/model"
)

func mustNew(t *testing.T, extra map[string][]string) *Classifier {
	t.Helper()
	c, err := New(extra)
	if err != nil {
		t.Fatalf("failed to build classifier: %v", err)
	}
	return c
}

func TestClassify(t *testing.T) {
	c := mustNew(t, nil)

	tests := []struct {
		name     string
		m        model.Model
		expected []model.Category
	}{
		{
			name:     "coder model",
			m:        model.Model{ID: "deepseek/deepseek-coder", DisplayName: "DeepSeek Coder"},
			expected: []model.Category{model.CategoryProgramming},
		},
		{
			name:     "case insensitive",
			m:        model.Model{ID: "x/y", DisplayName: "LEGAL EAGLE"},
			expected: []model.Category{model.CategoryLegal},
		},
		{
			name: "multi category in canonical order",
			m:    model.Model{ID: "x/med-research", DisplayName: "Medical Research"},
			expected: []model.Category{
				model.CategorySEO, // "search" is a substring of "research"
				model.CategoryScience,
				model.CategoryHealth,
				model.CategoryAcademia,
			},
		},
		{
			name:     "description matches",
			m:        model.Model{ID: "x/y", DisplayName: "Generic", Description: "tuned for translation tasks"},
			expected: []model.Category{model.CategoryTranslation},
		},
		{
			name:     "provider matches",
			m:        model.Model{ID: "plain-id", DisplayName: "Plain", Provider: "lawtech"},
			expected: []model.Category{model.CategoryTechnology, model.CategoryLegal},
		},
		{
			name:     "no match",
			m:        model.Model{ID: "x/y", DisplayName: "Mistral Small"},
			expected: []model.Category{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(&tt.m)
			if len(got) == 0 && len(tt.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestClassify_Pure(t *testing.T) {
	c := mustNew(t, nil)
	m := model.Model{ID: "deepseek/deepseek-coder", DisplayName: "DeepSeek Coder", Description: "research grade"}

	first := c.Classify(&m)
	for i := 0; i < 10; i++ {
		if got := c.Classify(&m); !reflect.DeepEqual(got, first) {
			t.Fatalf("classification not stable: %v vs %v", first, got)
		}
	}
}

func TestClassify_ExtraPatterns(t *testing.T) {
	c := mustNew(t, map[string][]string{
		"Finance": {"^bloomberg/"},
	})

	m := model.Model{ID: "bloomberg/terminal-llm", DisplayName: "Terminal LLM"}
	got := c.Classify(&m)
	if len(got) != 1 || got[0] != model.CategoryFinance {
		t.Errorf("expected [Finance], got %v", got)
	}

	other := model.Model{ID: "x/bloomberg-clone", DisplayName: "Clone"}
	if got := c.Classify(&other); len(got) != 0 {
		t.Errorf("anchored pattern should not match mid-string, got %v", got)
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		extra map[string][]string
	}{
		{name: "unknown category", extra: map[string][]string{"Cooking": {"recipe"}}},
		{name: "bad regex", extra: map[string][]string{"Finance": {"("}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.extra); err == nil {
				t.Error("expected error but got nil")
			}
		})
	}
}

func TestPartition(t *testing.T) {
	c := mustNew(t, nil)
	coder := &model.Model{ID: "a/coder", DisplayName: "Coder"}
	plain := &model.Model{ID: "b/plain", DisplayName: "Plain"}

	buckets := c.Partition([]*model.Model{coder, plain})

	if len(buckets) != len(model.Categories) {
		t.Fatalf("expected %d buckets, got %d", len(model.Categories), len(buckets))
	}
	if len(buckets[model.CategoryProgramming]) != 1 || buckets[model.CategoryProgramming][0] != coder {
		t.Errorf("expected coder in Programming bucket, got %v", buckets[model.CategoryProgramming])
	}
	for _, category := range model.Categories {
		for _, m := range buckets[category] {
			if m == plain {
				t.Errorf("unmatched model leaked into %s", category)
			}
		}
	}
}
