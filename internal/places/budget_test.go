package places

import "testing"

func TestTierForBudget(t *testing.T) {
	cases := []struct {
		budget float64
		want   Tier
	}{
		{5, TierLow},
		{24.99, TierLow},
		{25, TierMedium},
		{74.99, TierMedium},
		{75, TierHigh},
		{500, TierHigh},
	}

	for _, tc := range cases {
		if got := TierForBudget(tc.budget); got != tc.want {
			t.Errorf("TierForBudget(%v) = %v, want %v", tc.budget, got, tc.want)
		}
	}
}

func TestRadiusMeters_CappedAtYelpMax(t *testing.T) {
	if got := RadiusMeters(100); got != maxRadiusMeters {
		t.Fatalf("expected cap %d, got %d", maxRadiusMeters, got)
	}
	if got := RadiusMeters(5); got != 5000 {
		t.Fatalf("expected 5000, got %d", got)
	}
	if got := RadiusMeters(0.0001); got != 1 {
		t.Fatalf("expected floor 1, got %d", got)
	}
}

func TestYelpPriceFilter(t *testing.T) {
	if got := yelpPriceFilter(TierMedium); got != "2,3" {
		t.Fatalf("expected 2,3 got %s", got)
	}
	if got := yelpPriceFilter(Tier("unknown")); got != "1,2,3,4" {
		t.Fatalf("expected full range, got %s", got)
	}
}
