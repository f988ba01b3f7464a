package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"cargo-express-app/internal/app/compat"
	"cargo-express-app/internal/app/ds"
	"cargo-express-app/internal/app/notify"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// QuoteStore - персистентность заявок, нужная сервису
type QuoteStore interface {
	CreateQuoteRequest(q *ds.QuoteRequest) error
}

// ValidationErrors - список ошибок валидации в порядке проверки.
// Пользователю показывается первая, подсвечиваются все.
type ValidationErrors struct {
	Errors []string
}

func (v *ValidationErrors) Error() string { return v.First() }

func (v *ValidationErrors) First() string {
	if len(v.Errors) == 0 {
		return ""
	}
	return v.Errors[0]
}

// SubmitResult - итог успешной отправки заявки
type SubmitResult struct {
	ID        string
	Message   string
	EmailSent bool
}

// QuoteService - приём заявок на расчёт стоимости: валидация,
// генерация ID, уведомление и сохранение
type QuoteService struct {
	store   QuoteStore
	gateway notify.Gateway

	now func() time.Time
}

func NewQuoteService(store QuoteStore, gateway notify.Gateway) *QuoteService {
	return &QuoteService{
		store:   store,
		gateway: gateway,
		now:     time.Now,
	}
}

// ValidateQuoteForm - полная валидация формы в фиксированном порядке.
// Собираются все ошибки, а не только первая.
func ValidateQuoteForm(form ds.QuoteForm) []string {
	var errs []string

	if form.ServiceType == "" {
		errs = append(errs, "Please select a service type")
	}

	if strings.TrimSpace(form.CustomerName) == "" {
		errs = append(errs, "Full name is required")
	}

	email := strings.TrimSpace(form.CustomerEmail)
	if email == "" {
		errs = append(errs, "Email address is required")
	} else if !emailPattern.MatchString(email) {
		errs = append(errs, "Please enter a valid email address")
	}

	if form.Origin == "" {
		errs = append(errs, "Please select an origin port")
	} else if res := compat.Check(form.Origin, form.ServiceType); !res.Valid {
		errs = append(errs, fmt.Sprintf("Selected origin port may not be suitable for %s. %s",
			strings.ReplaceAll(form.ServiceType, "-", " "), res.Reason))
	}

	if form.Destination == "" {
		errs = append(errs, "Please select a destination port")
	} else if res := compat.Check(form.Destination, form.ServiceType); !res.Valid {
		errs = append(errs, fmt.Sprintf("Selected destination port may not be suitable for %s. %s",
			strings.ReplaceAll(form.ServiceType, "-", " "), res.Reason))
	}

	if form.Origin != "" && form.Destination != "" && form.Origin == form.Destination {
		errs = append(errs, "Origin and destination cannot be the same")
	}

	if form.CargoType == "" {
		errs = append(errs, "Cargo type is required")
	}

	if form.Weight <= 0 {
		errs = append(errs, "Valid weight is required")
	}

	if !form.TermsAccepted {
		errs = append(errs, "Please accept the terms and conditions")
	}

	return errs
}

// Submit - приём заявки. Валидация полностью завершается до любых
// побочных эффектов: невалидная заявка никуда не пишется. Ошибка
// почтового шлюза сохранение не блокирует; ошибка хранилища -
// фатальна для этой отправки и отдаётся наверх.
func (s *QuoteService) Submit(ctx context.Context, form ds.QuoteForm) (*SubmitResult, error) {
	if errs := ValidateQuoteForm(form); len(errs) > 0 {
		return nil, &ValidationErrors{Errors: errs}
	}

	now := s.now()

	quote := ds.QuoteRequest{
		ID:                  newQuoteID(now),
		Date:                now.Format("2006-01-02"),
		ServiceType:         form.ServiceType,
		CustomerName:        strings.TrimSpace(form.CustomerName),
		CustomerEmail:       strings.TrimSpace(form.CustomerEmail),
		Phone:               strings.TrimSpace(form.Phone),
		Company:             strings.TrimSpace(form.Company),
		Origin:              form.Origin,
		Destination:         form.Destination,
		CargoType:           form.CargoType,
		Incoterms:           form.Incoterms,
		Weight:              form.Weight,
		Volume:              form.Volume,
		Packages:            form.Packages,
		AdditionalServices:  form.AdditionalServices,
		SpecialRequirements: strings.TrimSpace(form.SpecialRequirements),
		TermsAccepted:       form.TermsAccepted,
		MarketingConsent:    form.MarketingConsent,
		Status:              ds.StatusPending,
		SubmittedAt:         now,
		LastUpdated:         now.Format("2006-01-02"),
	}

	// Объём из габаритов (см -> куб.м), если не указан явно
	if quote.Volume == 0 && form.Length > 0 && form.Width > 0 && form.Height > 0 {
		quote.Volume = form.Length * form.Width * form.Height / 1000000
	}

	emailSent := false
	if s.gateway != nil {
		if err := s.gateway.SendQuoteNotification(ctx, quote); err != nil {
			logrus.Warnf("quote notification failed for %s: %v", quote.ID, err)
		} else {
			emailSent = true
		}
	}

	if err := s.store.CreateQuoteRequest(&quote); err != nil {
		logrus.Errorf("failed to persist quote request %s: %v", quote.ID, err)
		return nil, err
	}

	message := "Quote request submitted successfully! Our logistics experts will review your request and provide you with a detailed quote within 24 hours via email."
	if emailSent {
		message = "Quote request submitted successfully! You will receive a confirmation email shortly and our team will provide your detailed quote within 24 hours."
	}

	return &SubmitResult{ID: quote.ID, Message: message, EmailSent: emailSent}, nil
}

// newQuoteID - "QR" + год + последние 6 цифр epoch-миллисекунд.
// Для низкого трафика вероятностью коллизии пренебрегаем.
func newQuoteID(now time.Time) string {
	return fmt.Sprintf("QR%d%06d", now.Year(), now.UnixMilli()%1000000)
}
