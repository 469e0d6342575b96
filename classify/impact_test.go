package classify

import "testing"

func TestImpactBaseline(t *testing.T) {
	if got := Impact("Company announces new partnership"); got != BaselineImpact {
		t.Fatalf("expected baseline %d for unsignaled text, got %d", BaselineImpact, got)
	}
}

func TestImpactCapacityTiers(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"Developer wins 300 MW contract", 4},
		{"Developer wins 999 MW contract", 4},
		{"Plans for multi-GW pipeline", 4},
		{"Project reaches 1000 MW milestone", 5},
		{"First gigawatt factory online", 5},
		{"Developer wins 120 MW contract", BaselineImpact},
	}

	for _, c := range cases {
		if got := Impact(c.text); got != c.want {
			t.Fatalf("Impact(%q) = %d, want %d", c.text, got, c.want)
		}
	}
}

func TestImpactPolicySignal(t *testing.T) {
	if got := Impact("Ministry publishes capacity market reform"); got != 4 {
		t.Fatalf("expected 4 for policy language, got %d", got)
	}
}

func TestImpactSignalsCombineByMax(t *testing.T) {
	// Policy language never lowers an already-higher capacity score.
	if got := Impact("Auction result: 1000 MW awarded"); got != 5 {
		t.Fatalf("expected 5 when the gigawatt signal is present, got %d", got)
	}

	// Two sub-gigawatt signals do not add up to 5.
	if got := Impact("Policy backs 500 MW capacity market expansion"); got != 4 {
		t.Fatalf("expected max-combination to cap at 4, got %d", got)
	}
}
