package decay

import (
	"errors"
	"testing"
)

func TestLookbackDays(t *testing.T) {
	tests := []struct {
		name          string
		halfLifeHours float64
		want          int
		wantErr       bool
	}{
		{
			name:          "short half-life hits the 3-day floor",
			halfLifeHours: 5,
			want:          3,
		},
		{
			name:          "30h half-life needs 4 days",
			halfLifeHours: 30, // ceil(90/24) = 4
			want:          4,
		},
		{
			name:          "24h half-life needs exactly 3 days",
			halfLifeHours: 24,
			want:          3,
		},
		{
			name:          "long half-life scales linearly",
			halfLifeHours: 96, // ceil(288/24) = 12
			want:          12,
		},
		{
			name:          "tiny half-life still floors at 3",
			halfLifeHours: 0.5,
			want:          3,
		},
		{
			name:          "zero half-life is rejected",
			halfLifeHours: 0,
			wantErr:       true,
		},
		{
			name:          "negative half-life is rejected",
			halfLifeHours: -10,
			wantErr:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LookbackDays(tt.halfLifeHours)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LookbackDays() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfiguration) {
					t.Errorf("LookbackDays() error = %v, want ErrInvalidConfiguration", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("LookbackDays(%v) = %d, want %d", tt.halfLifeHours, got, tt.want)
			}
		})
	}
}

func TestLookbackDaysForThreshold(t *testing.T) {
	tests := []struct {
		name             string
		halfLifeHours    float64
		thresholdPercent float64
		want             int
		wantErr          bool
	}{
		{
			name:             "12.5 percent matches the three half-life policy",
			halfLifeHours:    30,
			thresholdPercent: 12.5, // log2(8) = 3 half-lives, ceil(90/24) = 4
			want:             4,
		},
		{
			name:             "tighter threshold widens the window",
			halfLifeHours:    30,
			thresholdPercent: 1, // ~6.64 half-lives, ceil(199.3/24) = 9
			want:             9,
		},
		{
			name:             "loose threshold still floors at 3 days",
			halfLifeHours:    5,
			thresholdPercent: 50,
			want:             3,
		},
		{
			name:             "100 percent threshold floors at 3 days",
			halfLifeHours:    5,
			thresholdPercent: 100,
			want:             3,
		},
		{
			name:             "zero threshold is rejected",
			halfLifeHours:    5,
			thresholdPercent: 0,
			wantErr:          true,
		},
		{
			name:             "threshold above 100 is rejected",
			halfLifeHours:    5,
			thresholdPercent: 150,
			wantErr:          true,
		},
		{
			name:             "zero half-life is rejected",
			halfLifeHours:    0,
			thresholdPercent: 5,
			wantErr:          true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LookbackDaysForThreshold(tt.halfLifeHours, tt.thresholdPercent)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LookbackDaysForThreshold() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Errorf("LookbackDaysForThreshold(%v, %v) = %d, want %d",
					tt.halfLifeHours, tt.thresholdPercent, got, tt.want)
			}
		})
	}
}
