package model

import "fmt"

// Model is one normalized catalog entry. The registry owns instances for the
// lifetime of a run; downstream stages hold read-only references. Prices are
// USD per million tokens.
type Model struct {
	ID            string  `json:"id" gorm:"primaryKey;not null"`
	DisplayName   string  `json:"display_name" gorm:"not null"`
	Provider      string  `json:"provider"`
	Description   string  `json:"description"`
	InputPrice    float64 `json:"input_price"`
	OutputPrice   float64 `json:"output_price"`
	ContextLength int     `json:"context_length"`
}

func (Model) TableName() string {
	return "catalog_models"
}

func (m *Model) IsFree() bool {
	return m.InputPrice == 0 && m.OutputPrice == 0
}

// TotalPrice is the combined per-million price used by every ranking stage.
func (m *Model) TotalPrice() float64 {
	return m.InputPrice + m.OutputPrice
}

func (m *Model) PriceDisplay() string {
	return fmt.Sprintf("($%.2f/$%.2f)", m.InputPrice, m.OutputPrice)
}

// EstimateCost returns the estimated USD cost of a conversation with the
// given token counts.
func (m *Model) EstimateCost(inputTokens, outputTokens int) float64 {
	const million = 1_000_000
	return m.InputPrice*float64(inputTokens)/million + m.OutputPrice*float64(outputTokens)/million
}

// OpenRouter wire format, GET {base}/models.
// refer: https://openrouter.ai/docs/api-reference/list-available-models
type OpenRouterPricing struct {
	Prompt     string `json:"prompt"`
	Completion string `json:"completion"`
	Request    string `json:"request,omitempty"`
	Image      string `json:"image,omitempty"`
}

type OpenRouterModel struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description,omitempty"`
	Created       int64             `json:"created"`
	ContextLength int               `json:"context_length"`
	Pricing       OpenRouterPricing `json:"pricing"`
}

type OpenRouterModelList struct {
	Data []OpenRouterModel `json:"data"`
}
