package registry

import (
	"errors"
	"testing"

	"github.com/ktalanov/ModelScrapOR/internal/model"
)

func raw(id, name, prompt, completion string) model.OpenRouterModel {
	return model.OpenRouterModel{
		ID:   id,
		Name: name,
		Pricing: model.OpenRouterPricing{
			Prompt:     prompt,
			Completion: completion,
		},
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name        string
		input       []model.OpenRouterModel
		wantIDs     []string
		wantDropped int
	}{
		{
			name: "valid records",
			input: []model.OpenRouterModel{
				raw("openai/gpt-4", "GPT-4", "0.00003", "0.00006"),
				raw("anthropic/claude", "Claude", "0.000008", "0.000024"),
			},
			wantIDs:     []string{"anthropic/claude", "openai/gpt-4"},
			wantDropped: 0,
		},
		{
			name: "missing id dropped",
			input: []model.OpenRouterModel{
				raw("", "Nameless", "0.001", "0.002"),
				raw("meta/llama", "Llama", "0", "0"),
			},
			wantIDs:     []string{"meta/llama"},
			wantDropped: 1,
		},
		{
			name: "both prices non-numeric dropped",
			input: []model.OpenRouterModel{
				raw("bad/model", "Bad", "abc", "xyz"),
				raw("good/model", "Good", "0.001", "0.002"),
			},
			wantIDs:     []string{"good/model"},
			wantDropped: 1,
		},
		{
			name: "negative price is non-numeric",
			input: []model.OpenRouterModel{
				raw("bad/model", "Bad", "-1", "-2"),
				raw("good/model", "Good", "0.001", "0.002"),
			},
			wantIDs:     []string{"good/model"},
			wantDropped: 1,
		},
		{
			name: "duplicate id last seen wins",
			input: []model.OpenRouterModel{
				raw("openai/gpt-4", "GPT-4 Old", "0.00001", "0.00002"),
				raw("openai/gpt-4", "GPT-4 New", "0.00003", "0.00006"),
			},
			wantIDs:     []string{"openai/gpt-4"},
			wantDropped: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Normalize(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Dropped != tt.wantDropped {
				t.Errorf("expected %d dropped, got %d", tt.wantDropped, result.Dropped)
			}
			if len(result.Models) != len(tt.wantIDs) {
				t.Fatalf("expected %d models, got %d", len(tt.wantIDs), len(result.Models))
			}
			for i, id := range tt.wantIDs {
				if result.Models[i].ID != id {
					t.Errorf("model %d: expected id %s, got %s", i, id, result.Models[i].ID)
				}
			}
		})
	}
}

func TestNormalize_EmptyCatalog(t *testing.T) {
	tests := []struct {
		name  string
		input []model.OpenRouterModel
	}{
		{name: "no records", input: nil},
		{
			name: "all malformed",
			input: []model.OpenRouterModel{
				raw("", "Nameless", "0.001", "0.002"),
				raw("bad/model", "Bad", "abc", "xyz"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.input)
			if !errors.Is(err, ErrEmptyCatalog) {
				t.Errorf("expected ErrEmptyCatalog, got %v", err)
			}
		})
	}
}

func TestNormalize_PriceConversion(t *testing.T) {
	result, err := Normalize([]model.OpenRouterModel{
		raw("openai/gpt-4", "GPT-4", "0.000005", "0.000025"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := result.Models[0]
	if m.InputPrice != 5 {
		t.Errorf("expected input price 5, got %v", m.InputPrice)
	}
	if m.OutputPrice != 25 {
		t.Errorf("expected output price 25, got %v", m.OutputPrice)
	}
}

func TestNormalize_SingleUnreadablePriceZeroed(t *testing.T) {
	result, err := Normalize([]model.OpenRouterModel{
		raw("openai/gpt-4", "GPT-4", "oops", "0.000025"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Dropped != 0 {
		t.Errorf("expected 0 dropped, got %d", result.Dropped)
	}
	m := result.Models[0]
	if m.InputPrice != 0 {
		t.Errorf("expected unreadable input price zeroed, got %v", m.InputPrice)
	}
	if m.OutputPrice != 25 {
		t.Errorf("expected output price 25, got %v", m.OutputPrice)
	}
}

func TestNormalize_MissingPricesMeanFree(t *testing.T) {
	result, err := Normalize([]model.OpenRouterModel{
		raw("meta/llama-free", "Llama Free", "", ""),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Models[0].IsFree() {
		t.Error("expected model with missing prices to be free")
	}
}

func TestProviderOf(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		dispName string
		expected string
	}{
		{name: "id prefix", id: "openai/gpt-4", dispName: "GPT-4", expected: "openai"},
		{name: "name prefix fallback", id: "gpt-4", dispName: "OpenAI: GPT-4", expected: "OpenAI"},
		{name: "no provider", id: "gpt-4", dispName: "GPT-4", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := providerOf(tt.id, tt.dispName)
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
