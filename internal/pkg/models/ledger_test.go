package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommissionFor_CeilingRounding(t *testing.T) {
	testCases := []struct {
		name string
		fare int64
		rate float64
		want int64
	}{
		{"exact split", 100000, 0.05, 5000},
		{"fractional rounds up", 99999, 0.05, 5000},
		{"small fare rounds up", 1, 0.05, 1},
		{"zero fare", 0, 0.05, 0},
		{"negative fare", -100, 0.05, 0},
		{"zero rate", 100000, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CommissionFor(tc.fare, tc.rate))
		})
	}
}

func TestCommissionFor_SplitAlwaysSumsToFare(t *testing.T) {
	// Earnings are derived as fare minus commission, so the split is exact
	// for any fare regardless of rounding.
	for _, fare := range []int64{7, 99, 12345, 99999, 100000, 7777777} {
		commission := CommissionFor(fare, 0.05)
		earnings := fare - commission
		assert.Equal(t, fare, commission+earnings)
		assert.GreaterOrEqual(t, commission, int64(1))
		assert.Less(t, commission, fare)
	}
}

func TestAcceptanceStatsRate(t *testing.T) {
	assert.Equal(t, 0.5, AcceptanceStats{}.Rate())
	assert.Equal(t, 0.8, AcceptanceStats{OffersReceived: 10, OffersAccepted: 8}.Rate())
	assert.Equal(t, 0.0, AcceptanceStats{OffersReceived: 4}.Rate())
}
