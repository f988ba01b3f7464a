package ds

// Rate - тарифы по типу услуги, редактируются из админки
type Rate struct {
	Service string  `json:"service" gorm:"primaryKey"`
	PerKg   float64 `json:"perKg" gorm:"not null"`
	PerCbm  float64 `json:"perCbm" gorm:"not null"`
	BaseFee float64 `json:"baseFee" gorm:"not null"`
}

func (Rate) TableName() string { return "rates" }

// DefaultRates - стартовые тарифы, заливаются при первом запуске
func DefaultRates() []Rate {
	return []Rate{
		{Service: ServiceSeaFreight, PerKg: 2.50, PerCbm: 150.00, BaseFee: 100.00},
		{Service: ServiceAirFreight, PerKg: 8.50, PerCbm: 300.00, BaseFee: 200.00},
		{Service: ServiceRoadTransport, PerKg: 1.20, PerCbm: 80.00, BaseFee: 50.00},
	}
}
