package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cargo-express-app/internal/app/ds"
)

func TestCalculate(t *testing.T) {
	seaRate := ds.Rate{Service: ds.ServiceSeaFreight, PerKg: 2.50, PerCbm: 150.00, BaseFee: 100.00}
	airRate := ds.Rate{Service: ds.ServiceAirFreight, PerKg: 8.50, PerCbm: 300.00, BaseFee: 200.00}

	calc := NewQuoteCalculator()

	tests := []struct {
		name     string
		quote    ds.QuoteRequest
		rate     ds.Rate
		expected float64
	}{
		{
			name:     "weight dominates",
			quote:    ds.QuoteRequest{Weight: 1500, Volume: 12.5, CargoType: "general"},
			rate:     seaRate,
			expected: 1500*2.50 + 100, // 3850
		},
		{
			name:     "volume dominates",
			quote:    ds.QuoteRequest{Weight: 100, Volume: 20, CargoType: "general"},
			rate:     seaRate,
			expected: 20*150 + 100, // 3100
		},
		{
			name:     "hazardous surcharge",
			quote:    ds.QuoteRequest{Weight: 100, Volume: 1, CargoType: "hazardous"},
			rate:     airRate,
			expected: 100*8.50 + 200 + 500,
		},
		{
			name:     "perishable surcharge",
			quote:    ds.QuoteRequest{Weight: 100, Volume: 1, CargoType: "perishable"},
			rate:     airRate,
			expected: 100*8.50 + 200 + 300,
		},
		{
			name: "temperature requirement surcharge",
			quote: ds.QuoteRequest{
				Weight: 100, Volume: 1, CargoType: "general",
				SpecialRequirements: "Temperature controlled shipping required",
			},
			rate:     seaRate,
			expected: 100*2.50 + 100 + 200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, calc.Calculate(tt.quote, tt.rate), 0.001)
		})
	}
}
