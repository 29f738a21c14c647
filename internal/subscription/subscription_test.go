package subscription_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/estate/internal/subscription"
)

func TestFrequency_Advance(t *testing.T) {
	jan15 := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		frequency subscription.Frequency
		from      time.Time
		want      time.Time
	}{
		{name: "Monthly", frequency: subscription.FrequencyMonthly, from: jan15, want: time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)},
		{name: "Quarterly", frequency: subscription.FrequencyQuarterly, from: jan15, want: time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)},
		{name: "Yearly", frequency: subscription.FrequencyYearly, from: jan15, want: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
		{name: "Unknown", frequency: subscription.Frequency("weekly"), from: jan15, want: jan15},
		{
			name:      "MonthOverflowNormalizes",
			frequency: subscription.FrequencyMonthly,
			from:      time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			want:      time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(tt.frequency.Advance(tt.from)), "got %s", tt.frequency.Advance(tt.from))
		})
	}
}
