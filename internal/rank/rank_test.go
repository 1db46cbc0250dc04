package rank

import (
	"testing"

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

func checkDense(t *testing.T, ranks []int, n int) {
	t.Helper()
	seen := make(map[int]bool, n)
	for _, r := range ranks {
		if r < 1 || r > n {
			t.Errorf("rank %d out of range 1..%d", r, n)
		}
		if seen[r] {
			t.Errorf("duplicate rank %d", r)
		}
		seen[r] = true
	}
	if len(seen) != n {
		t.Errorf("expected %d distinct ranks, got %d", n, len(seen))
	}
}

func TestCapability(t *testing.T) {
	tests := []struct {
		name    string
		members []*model.Model
		wantIDs []string
	}{
		{
			name: "ascending combined price",
			members: []*model.Model{
				mk("a", "x", 5, 25),
				mk("b", "y", 3, 15),
				mk("c", "z", 0, 0),
			},
			wantIDs: []string{"c", "b", "a"},
		},
		{
			name: "tie broken by input price",
			members: []*model.Model{
				mk("a", "x", 8, 2),
				mk("b", "x", 2, 8),
			},
			wantIDs: []string{"b", "a"},
		},
		{
			name: "tie broken by provider",
			members: []*model.Model{
				mk("a", "zeta", 5, 5),
				mk("b", "alpha", 5, 5),
			},
			wantIDs: []string{"b", "a"},
		},
		{
			name: "tie broken by display name",
			members: []*model.Model{
				mk("zz", "same", 5, 5),
				mk("aa", "same", 5, 5),
			},
			wantIDs: []string{"aa", "zz"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := Capability(tt.members)
			if len(ranked) != len(tt.wantIDs) {
				t.Fatalf("expected %d entries, got %d", len(tt.wantIDs), len(ranked))
			}
			for i, id := range tt.wantIDs {
				if ranked[i].Model.ID != id {
					t.Errorf("position %d: expected %s, got %s", i, id, ranked[i].Model.ID)
				}
				if ranked[i].CapabilityRank != i+1 {
					t.Errorf("position %d: expected rank %d, got %d", i, i+1, ranked[i].CapabilityRank)
				}
			}
		})
	}
}

func TestCapability_InputOrderIrrelevant(t *testing.T) {
	forward := []*model.Model{
		mk("a", "same", 5, 5),
		mk("b", "same", 5, 5),
		mk("c", "same", 5, 5),
	}
	backward := []*model.Model{forward[2], forward[1], forward[0]}

	r1 := Capability(forward)
	r2 := Capability(backward)
	for i := range r1 {
		if r1[i].Model.ID != r2[i].Model.ID {
			t.Fatalf("position %d differs by input order: %s vs %s", i, r1[i].Model.ID, r2[i].Model.ID)
		}
	}
}

func TestByPrice(t *testing.T) {
	members := []*model.Model{
		mk("a", "x", 5, 25),
		mk("b", "y", 3, 15),
		mk("c", "z", 0, 0),
		mk("d", "w", 1, 2),
	}
	capRanks := CapabilityIndex(Capability(members))

	desc, asc := ByPrice(members, capRanks)

	wantDesc := []string{"a", "b", "d", "c"}
	for i, id := range wantDesc {
		if desc[i].Model.ID != id {
			t.Errorf("desc position %d: expected %s, got %s", i, id, desc[i].Model.ID)
		}
		if desc[i].PriceRank != i+1 {
			t.Errorf("desc position %d: expected price rank %d, got %d", i, i+1, desc[i].PriceRank)
		}
	}

	wantAsc := []string{"c", "d", "b", "a"}
	for i, id := range wantAsc {
		if asc[i].Model.ID != id {
			t.Errorf("asc position %d: expected %s, got %s", i, id, asc[i].Model.ID)
		}
	}

	// asc combined prices never decrease
	for i := 1; i < len(asc); i++ {
		if asc[i].Model.TotalPrice() < asc[i-1].Model.TotalPrice() {
			t.Errorf("asc not monotonic at %d: %v < %v", i, asc[i].Model.TotalPrice(), asc[i-1].Model.TotalPrice())
		}
	}

	// cross-reference matches the capability ranking
	for _, e := range asc {
		if e.CapabilityRank != capRanks[e.Model.ID] {
			t.Errorf("model %s: expected cross-ref %d, got %d", e.Model.ID, capRanks[e.Model.ID], e.CapabilityRank)
		}
	}

	n := len(members)
	descRanks := make([]int, 0, n)
	ascRanks := make([]int, 0, n)
	for i := range desc {
		descRanks = append(descRanks, desc[i].PriceRank)
		ascRanks = append(ascRanks, asc[i].PriceRank)
	}
	checkDense(t, descRanks, n)
	checkDense(t, ascRanks, n)
}

func TestByPrice_TiesResolveAscending(t *testing.T) {
	members := []*model.Model{
		mk("b", "beta", 5, 5),
		mk("a", "alpha", 5, 5),
	}
	capRanks := CapabilityIndex(Capability(members))

	desc, asc := ByPrice(members, capRanks)

	// Equal combined price: both views fall back to the same ascending
	// provider order.
	if desc[0].Model.ID != "a" || asc[0].Model.ID != "a" {
		t.Errorf("expected provider tie-break to put a first in both views, got desc=%s asc=%s",
			desc[0].Model.ID, asc[0].Model.ID)
	}
}

func TestFree(t *testing.T) {
	tests := []struct {
		name    string
		members []*model.Model
		limit   int
		wantIDs []string
	}{
		{
			name: "truncated to limit in capability order",
			members: []*model.Model{
				mk("paid", "x", 5, 5),
				mk("f1", "a", 0, 0),
				mk("f2", "b", 0, 0),
				mk("f3", "c", 0, 0),
				mk("f4", "d", 0, 0),
			},
			limit:   3,
			wantIDs: []string{"f1", "f2", "f3"},
		},
		{
			name: "fewer than limit returns all",
			members: []*model.Model{
				mk("paid", "x", 5, 5),
				mk("f1", "a", 0, 0),
			},
			limit:   3,
			wantIDs: []string{"f1"},
		},
		{
			name:    "no free models",
			members: []*model.Model{mk("paid", "x", 5, 5)},
			limit:   3,
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			free := Free(Capability(tt.members), tt.limit)
			if len(free) != len(tt.wantIDs) {
				t.Fatalf("expected %d free models, got %d", len(tt.wantIDs), len(free))
			}
			for i, id := range tt.wantIDs {
				if free[i].Model.ID != id {
					t.Errorf("position %d: expected %s, got %s", i, id, free[i].Model.ID)
				}
				if !free[i].Model.IsFree() {
					t.Errorf("model %s in free list is not free", free[i].Model.ID)
				}
			}
		})
	}
}
