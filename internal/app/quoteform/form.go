package quoteform

import (
	"regexp"
	"strings"
)

// Section - секция формы заявки
type Section string

const (
	SectionServiceType        Section = "service-type"
	SectionContactInfo        Section = "contact-info"
	SectionShipmentDetails    Section = "shipment-details"
	SectionCargoSpecs         Section = "cargo-specs"
	SectionAdditionalServices Section = "additional-services"
)

// Поля формы, по которым идут события
const (
	FieldServiceType = "service-type"
	FieldName        = "contact-name"
	FieldEmail       = "contact-email"
	FieldOrigin      = "origin"
	FieldDestination = "destination"
	FieldCargoType   = "cargo-type"
	FieldWeight      = "weight"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Form - конечный автомат прогрессивной формы заявки.
// Секции открываются строго по порядку по мере заполнения предыдущих.
// Назад секции не закрываются: смена типа услуги уже открытые секции
// не блокирует.
type Form struct {
	serviceType string
	name        string
	email       string
	origin      string
	destination string
	cargoType   string
	weight      float64
	weightSet   bool

	unlocked    map[Section]bool
	fieldErrors map[string]string
}

// New - форма в начальном состоянии: доступен только выбор типа услуги
func New() *Form {
	return &Form{
		unlocked:    map[Section]bool{SectionServiceType: true},
		fieldErrors: map[string]string{},
	}
}

// SelectServiceType - выбор типа услуги, открывает контактную секцию
func (f *Form) SelectServiceType(value string) {
	f.serviceType = value
	delete(f.fieldErrors, FieldServiceType)
	if value != "" {
		f.unlocked[SectionContactInfo] = true
	}
}

// Input - событие ввода в поле: значение сохраняется, ошибка поля
// сбрасывается, проверяются переходы к следующим секциям
func (f *Form) Input(field, value string) {
	value = strings.TrimSpace(value)
	delete(f.fieldErrors, field)

	switch field {
	case FieldName:
		f.name = value
	case FieldEmail:
		f.email = value
	case FieldOrigin:
		f.origin = value
	case FieldDestination:
		f.destination = value
	case FieldCargoType:
		f.cargoType = value
	}

	f.checkContactCompletion()
	f.checkShipmentCompletion()
}

// BlurContactField - валидация контактного поля при потере фокуса,
// текст ошибки вешается на поле
func (f *Form) BlurContactField(field string) bool {
	switch field {
	case FieldName:
		if f.name == "" {
			f.fieldErrors[field] = "Full name is required"
			return false
		}
		if len(f.name) < 2 {
			f.fieldErrors[field] = "Name must be at least 2 characters"
			return false
		}
	case FieldEmail:
		if f.email == "" {
			f.fieldErrors[field] = "Email address is required"
			return false
		}
		if !emailPattern.MatchString(f.email) {
			f.fieldErrors[field] = "Please enter a valid email address"
			return false
		}
	}
	delete(f.fieldErrors, field)
	return true
}

// BlurWeight - вес проверяется при потере фокуса; положительный вес
// открывает секцию дополнительных услуг
func (f *Form) BlurWeight(weight float64) {
	f.weight = weight
	f.weightSet = weight > 0
	if f.weightSet && f.unlocked[SectionCargoSpecs] {
		f.unlocked[SectionAdditionalServices] = true
	}
}

// checkContactCompletion - имя от 2 символов и валидный email открывают
// секцию параметров отправки
func (f *Form) checkContactCompletion() {
	if !f.unlocked[SectionContactInfo] {
		return
	}
	if len(f.name) >= 2 && emailPattern.MatchString(f.email) {
		f.unlocked[SectionShipmentDetails] = true
	}
}

// checkShipmentCompletion - заполненные origin/destination/cargo-type
// открывают секцию характеристик груза. Совместимость с типом услуги
// здесь не проверяется - только при отправке.
func (f *Form) checkShipmentCompletion() {
	if !f.unlocked[SectionShipmentDetails] {
		return
	}
	if f.origin != "" && f.destination != "" && f.cargoType != "" {
		f.unlocked[SectionCargoSpecs] = true
	}
}

// SectionEnabled - доступна ли секция для ввода
func (f *Form) SectionEnabled(s Section) bool {
	return f.unlocked[s]
}

// FieldError - текст ошибки поля (пусто, если ошибки нет)
func (f *Form) FieldError(field string) string {
	return f.fieldErrors[field]
}

// ReadyToSubmit - все обязательные поля заполнены.
// Отправка формы возможна в любом состоянии, но полная валидация
// происходит на стороне сервиса.
func (f *Form) ReadyToSubmit() bool {
	return f.serviceType != "" &&
		len(f.name) >= 2 &&
		emailPattern.MatchString(f.email) &&
		f.origin != "" &&
		f.destination != "" &&
		f.cargoType != "" &&
		f.weightSet
}
