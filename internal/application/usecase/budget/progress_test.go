package budget

import "testing"

func TestComputeProgress(t *testing.T) {
	tests := []struct {
		name           string
		amountCents    int64
		spentCents     int64
		wantRemaining  int64
		wantPercentage float64
	}{
		{
			name:           "partial spend rounds to one decimal",
			amountCents:    50000,
			spentCents:     21200,
			wantRemaining:  28800,
			wantPercentage: 42.4,
		},
		{
			name:           "overspend caps percentage and goes negative",
			amountCents:    10000,
			spentCents:     15000,
			wantRemaining:  -5000,
			wantPercentage: 100,
		},
		{
			name:           "exact spend is exactly 100",
			amountCents:    10000,
			spentCents:     10000,
			wantRemaining:  0,
			wantPercentage: 100,
		},
		{
			name:           "no spend is zero percent",
			amountCents:    10000,
			spentCents:     0,
			wantRemaining:  10000,
			wantPercentage: 0,
		},
		{
			name:           "zero ceiling reports zero percent",
			amountCents:    0,
			spentCents:     5000,
			wantRemaining:  -5000,
			wantPercentage: 0,
		},
		{
			name:           "repeating fraction rounds to one decimal",
			amountCents:    30000,
			spentCents:     10000,
			wantRemaining:  20000,
			wantPercentage: 33.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeProgress(tt.amountCents, tt.spentCents)

			if got.SpentCents != tt.spentCents {
				t.Errorf("expected spent %d, got %d", tt.spentCents, got.SpentCents)
			}
			if got.RemainingCents != tt.wantRemaining {
				t.Errorf("expected remaining %d, got %d", tt.wantRemaining, got.RemainingCents)
			}
			if got.Percentage != tt.wantPercentage {
				t.Errorf("expected percentage %v, got %v", tt.wantPercentage, got.Percentage)
			}
		})
	}
}
