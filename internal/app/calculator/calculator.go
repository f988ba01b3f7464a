package calculator

import (
	"strings"

	"cargo-express-app/internal/app/ds"
)

// Надбавки за особые типы груза
const (
	hazardousSurcharge   = 500.0
	perishableSurcharge  = 300.0
	temperatureSurcharge = 200.0
)

// QuoteCalculator - расчёт рекомендуемой стоимости заявки по тарифам
type QuoteCalculator struct{}

func NewQuoteCalculator() *QuoteCalculator {
	return &QuoteCalculator{}
}

// Calculate - базовая стоимость: максимум из весовой и объёмной
// составляющих плюс базовый сбор, сверху надбавки за опасный,
// скоропортящийся и температурный груз
func (c *QuoteCalculator) Calculate(q ds.QuoteRequest, rate ds.Rate) float64 {
	weightCost := q.Weight * rate.PerKg
	volumeCost := q.Volume * rate.PerCbm

	baseCost := weightCost
	if volumeCost > baseCost {
		baseCost = volumeCost
	}
	baseCost += rate.BaseFee

	additional := 0.0
	if q.CargoType == "hazardous" {
		additional += hazardousSurcharge
	}
	if q.CargoType == "perishable" {
		additional += perishableSurcharge
	}
	if strings.Contains(strings.ToLower(q.SpecialRequirements), "temperature") {
		additional += temperatureSurcharge
	}

	return baseCost + additional
}
