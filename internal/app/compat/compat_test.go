package compat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cargo-express-app/internal/app/ds"
)

func TestCheckAirFreight(t *testing.T) {
	tests := []struct {
		name     string
		location string
		valid    bool
	}{
		{"airport ok", "JFK Airport", true},
		{"seaport rejected", "Mumbai Port", false},
		{"terminal name rejected", "NHAVA SHEVA", false},
		{"terminal mixed case rejected", "Mundra Terminal", false},
		{"plain city ok", "Delhi", true},
		{"both markers ok", "Port City Airport", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Check(tt.location, ds.ServiceAirFreight)
			assert.Equal(t, tt.valid, res.Valid)
			if !tt.valid {
				assert.NotEmpty(t, res.Reason)
			}
		})
	}
}

func TestCheckSeaFreight(t *testing.T) {
	tests := []struct {
		name     string
		location string
		valid    bool
	}{
		{"seaport ok", "Mumbai Port", true},
		{"airport rejected", "LHR Airport", false},
		{"airport uppercase rejected", "DELHI AIRPORT", false},
		{"plain city ok", "Chennai", true},
		{"airport near port ok", "Port Blair Airport", true},
		{"terminal ok", "KANDLA", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Check(tt.location, ds.ServiceSeaFreight)
			assert.Equal(t, tt.valid, res.Valid)
		})
	}
}

// Автоперевозка не ограничивает тип локации
func TestCheckRoadTransportAlwaysValid(t *testing.T) {
	locations := []string{"Mumbai Port", "JFK Airport", "Delhi", "NHAVA SHEVA", ""}
	for _, loc := range locations {
		res := Check(loc, ds.ServiceRoadTransport)
		assert.True(t, res.Valid, "location %q", loc)
	}
}

func TestCheckSideEffectFree(t *testing.T) {
	// повторные вызовы дают одинаковый результат
	first := Check("Mumbai Port", ds.ServiceAirFreight)
	second := Check("Mumbai Port", ds.ServiceAirFreight)
	assert.Equal(t, first, second)
}
