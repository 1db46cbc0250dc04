package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/ktalanov/ModelScrapOR/internal/classify"
	"github.com/ktalanov/ModelScrapOR/internal/model"
)

func mk(id, provider string, input, output float64) *model.Model {
	return &model.Model{
		ID:          id,
		DisplayName: id,
		Provider:    provider,
		InputPrice:  input,
		OutputPrice: output,
	}
}

func TestAssemble_FixedShape(t *testing.T) {
	reports := Assemble(map[model.Category][]*model.Model{}, 3)

	if len(reports) != len(model.Categories) {
		t.Fatalf("expected %d reports, got %d", len(model.Categories), len(reports))
	}
	for i, category := range model.Categories {
		r := reports[i]
		if r.Category != category {
			t.Errorf("position %d: expected category %s, got %s", i, category, r.Category)
		}
		if len(r.DailyRankings) != 0 || len(r.PriceHighToLow) != 0 ||
			len(r.PriceLowToHigh) != 0 || len(r.FreeModels) != 0 {
			t.Errorf("category %s: expected four empty sequences", category)
		}
	}
}

// The canonical scenario: A(X, 5/25), B(Y, 3/15), C(Z, 0/0), all in
// Programming. Lower combined price wins the capability ranking.
func TestAssemble_Scenario(t *testing.T) {
	a := mk("a", "X", 5, 25)
	b := mk("b", "Y", 3, 15)
	c := mk("c", "Z", 0, 0)
	buckets := map[model.Category][]*model.Model{
		model.CategoryProgramming: {a, b, c},
	}

	reports := Assemble(buckets, 3)
	prog := reports[0]
	if prog.Category != model.CategoryProgramming {
		t.Fatalf("expected Programming first, got %s", prog.Category)
	}

	wantDaily := []string{"c", "b", "a"}
	for i, id := range wantDaily {
		if prog.DailyRankings[i].Model.ID != id {
			t.Errorf("daily position %d: expected %s, got %s", i, id, prog.DailyRankings[i].Model.ID)
		}
	}

	wantHigh := []string{"a", "b", "c"}
	for i, id := range wantHigh {
		if prog.PriceHighToLow[i].Model.ID != id {
			t.Errorf("high position %d: expected %s, got %s", i, id, prog.PriceHighToLow[i].Model.ID)
		}
	}

	wantLow := []struct {
		id        string
		priceRank int
		capRank   int
	}{
		{"c", 1, 1},
		{"b", 2, 2},
		{"a", 3, 3},
	}
	for i, want := range wantLow {
		got := prog.PriceLowToHigh[i]
		if got.Model.ID != want.id || got.PriceRank != want.priceRank || got.CapabilityRank != want.capRank {
			t.Errorf("low position %d: expected %s #%d cap#%d, got %s #%d cap#%d",
				i, want.id, want.priceRank, want.capRank,
				got.Model.ID, got.PriceRank, got.CapabilityRank)
		}
	}

	if len(prog.FreeModels) != 1 || prog.FreeModels[0].Model.ID != "c" {
		t.Errorf("expected free models [c], got %v", prog.FreeModels)
	}
}

// A model in two categories carries independent ranks in each.
func TestAssemble_IndependentRanksPerCategory(t *testing.T) {
	shared := mk("shared", "x", 10, 10)
	cheap := mk("cheap", "y", 1, 1)
	buckets := map[model.Category][]*model.Model{
		model.CategoryProgramming: {shared, cheap},
		model.CategoryScience:     {shared},
	}

	reports := Assemble(buckets, 3)

	var progRank, sciRank int
	for _, r := range reports {
		for _, e := range r.DailyRankings {
			if e.Model.ID != "shared" {
				continue
			}
			switch r.Category {
			case model.CategoryProgramming:
				progRank = e.CapabilityRank
			case model.CategoryScience:
				sciRank = e.CapabilityRank
			}
		}
	}
	if progRank != 2 {
		t.Errorf("expected rank 2 in Programming, got %d", progRank)
	}
	if sciRank != 1 {
		t.Errorf("expected rank 1 in Science, got %d", sciRank)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	classifier, err := classify.New(nil)
	if err != nil {
		t.Fatalf("failed to build classifier: %v", err)
	}
	models := []*model.Model{
		mk("a/coder-one", "a", 5, 25),
		mk("b/coder-two", "b", 5, 25),
		mk("c/coder-free", "c", 0, 0),
		mk("d/translator", "d", 3, 3),
	}

	first, err := json.Marshal(Build(models, classifier, 3))
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := json.Marshal(Build(models, classifier, 3))
		if err != nil {
			t.Fatalf("failed to marshal: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatal("report output is not byte-identical across runs")
		}
	}
}
