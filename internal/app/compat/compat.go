package compat

import (
	"strings"

	"cargo-express-app/internal/app/ds"
)

// Result - итог проверки совместимости локации с типом услуги
type Result struct {
	Valid  bool
	Reason string
}

// Морские терминалы без слова "port" в названии
var seaTerminalNames = []string{"SHEVA", "MUNDRA", "KANDLA", "HAZIRA"}

// Check - проверяет, подходит ли локация как пункт отправки/назначения
// для выбранного типа услуги. Классификация по маркерам в названии:
// "airport" - аэропорт; "port" либо известный морской терминал - морской
// порт. Маркер "port" внутри слова "airport" не считается, иначе любой
// аэропорт проходил бы как морской порт. Неоднозначные названия
// (оба маркера или ни одного) пропускаем.
func Check(locationName, serviceType string) Result {
	lower := strings.ToLower(locationName)
	upper := strings.ToUpper(locationName)

	isAirport := strings.Contains(lower, "airport")
	isSeaport := strings.Contains(strings.ReplaceAll(lower, "airport", ""), "port")
	if !isSeaport {
		for _, name := range seaTerminalNames {
			if strings.Contains(upper, name) {
				isSeaport = true
				break
			}
		}
	}

	switch serviceType {
	case ds.ServiceAirFreight:
		if isSeaport && !isAirport {
			return Result{
				Valid:  false,
				Reason: "This appears to be a sea port. Please select an airport for air freight.",
			}
		}
	case ds.ServiceSeaFreight:
		if isAirport && !isSeaport {
			return Result{
				Valid:  false,
				Reason: "This appears to be an airport. Please select a sea port for sea freight.",
			}
		}
	case ds.ServiceRoadTransport:
		// автоперевозка работает с любыми локациями
	}

	return Result{Valid: true}
}
