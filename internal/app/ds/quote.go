package ds

import "time"

// Типы услуг перевозки
const (
	ServiceSeaFreight    = "sea-freight"
	ServiceAirFreight    = "air-freight"
	ServiceRoadTransport = "road-transport"
)

// ServiceTypes - все поддерживаемые типы услуг
var ServiceTypes = []string{ServiceSeaFreight, ServiceAirFreight, ServiceRoadTransport}

// Статусы заявки на расчёт стоимости
const (
	StatusPending    = "pending"
	StatusQuoted     = "quoted"
	StatusAccepted   = "accepted"
	StatusRejected   = "rejected"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// QuoteStatuses - допустимые статусы заявки (меняются только админом)
var QuoteStatuses = []string{
	StatusPending, StatusQuoted, StatusAccepted,
	StatusRejected, StatusInProgress, StatusCompleted,
}

// IsValidQuoteStatus - проверка, что статус входит в список допустимых
func IsValidQuoteStatus(status string) bool {
	for _, s := range QuoteStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// QuoteForm - сырые данные формы заявки, как их прислал клиент
type QuoteForm struct {
	ServiceType         string   `json:"serviceType" form:"serviceType"`
	CustomerName        string   `json:"customerName" form:"customerName"`
	CustomerEmail       string   `json:"customerEmail" form:"customerEmail"`
	Phone               string   `json:"phone" form:"phone"`
	Company             string   `json:"company" form:"company"`
	Origin              string   `json:"origin" form:"origin"`
	Destination         string   `json:"destination" form:"destination"`
	CargoType           string   `json:"cargoType" form:"cargoType"`
	Incoterms           string   `json:"incoterms" form:"incoterms"`
	Weight              float64  `json:"weight" form:"weight"`
	Volume              float64  `json:"volume" form:"volume"`
	Packages            int      `json:"packages" form:"packages"`
	Length              float64  `json:"length" form:"length"`
	Width               float64  `json:"width" form:"width"`
	Height              float64  `json:"height" form:"height"`
	AdditionalServices  []string `json:"additionalServices" form:"additionalServices"`
	SpecialRequirements string   `json:"specialRequirements" form:"specialRequirements"`
	TermsAccepted       bool     `json:"termsAccepted" form:"termsAccepted"`
	MarketingConsent    bool     `json:"marketingConsent" form:"marketingConsent"`
}

// QuoteRequest - заявка на расчёт стоимости перевозки.
// id и параметры груза после создания не меняются, админ правит только
// status/quotedAmount/adminNotes (и lastUpdated).
type QuoteRequest struct {
	ID                  string    `json:"id" gorm:"primaryKey;size:16"`
	Date                string    `json:"date"`
	ServiceType         string    `json:"serviceType" gorm:"not null"`
	CustomerName        string    `json:"customerName" gorm:"not null"`
	CustomerEmail       string    `json:"customerEmail" gorm:"not null"`
	Phone               string    `json:"phone,omitempty"`
	Company             string    `json:"company,omitempty"`
	Origin              string    `json:"origin" gorm:"not null"`
	Destination         string    `json:"destination" gorm:"not null"`
	CargoType           string    `json:"cargoType" gorm:"not null"`
	Incoterms           string    `json:"incoterms,omitempty"`
	Weight              float64   `json:"weight" gorm:"not null"`
	Volume              float64   `json:"volume,omitempty"`
	Packages            int       `json:"packages,omitempty"`
	AdditionalServices  []string  `json:"additionalServices,omitempty" gorm:"serializer:json"`
	SpecialRequirements string    `json:"specialRequirements,omitempty"`
	TermsAccepted       bool      `json:"termsAccepted"`
	MarketingConsent    bool      `json:"marketingConsent"`
	Status              string    `json:"status" gorm:"not null;default:pending"`
	QuotedAmount        *float64  `json:"quotedAmount"`
	AdminNotes          string    `json:"adminNotes,omitempty"`
	SubmittedAt         time.Time `json:"submittedAt"`
	LastUpdated         string    `json:"lastUpdated"`
}

func (QuoteRequest) TableName() string { return "quote_requests" }

// QuotePatch - поля заявки, которые разрешено менять из админки
type QuotePatch struct {
	Status       string   `json:"status"`
	QuotedAmount *float64 `json:"quotedAmount"`
	AdminNotes   *string  `json:"adminNotes"`
}
