package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"cargo-express-app/internal/app/ds"
	"cargo-express-app/internal/app/notify"
)

// ErrNotificationFailed - письмо админу не ушло. Для контактной формы,
// в отличие от заявок, это провал отправки: сообщение не сохраняется.
var ErrNotificationFailed = errors.New("failed to send message")

// ContactStore - персистентность контактных сообщений
type ContactStore interface {
	CreateContactSubmission(c *ds.ContactSubmission) error
}

// ContactService - приём сообщений контактной формы
type ContactService struct {
	store   ContactStore
	gateway notify.Gateway

	now func() time.Time
}

func NewContactService(store ContactStore, gateway notify.Gateway) *ContactService {
	return &ContactService{
		store:   store,
		gateway: gateway,
		now:     time.Now,
	}
}

// ValidateContactForm - проверка обязательных полей контактной формы
func ValidateContactForm(form ds.ContactForm) []string {
	var errs []string

	if form.FirstName == "" || form.LastName == "" || form.Email == "" ||
		form.Subject == "" || form.Message == "" {
		errs = append(errs, "Please fill in all required fields")
	}

	if !form.PrivacyAccepted {
		errs = append(errs, "Please accept the privacy policy")
	}

	if form.Email != "" && !emailPattern.MatchString(form.Email) {
		errs = append(errs, "Please enter a valid email address")
	}

	return errs
}

// Submit - приём сообщения: валидация, уведомление, сохранение.
// Сообщение сохраняется только после успешной отправки письма.
func (s *ContactService) Submit(ctx context.Context, form ds.ContactForm) (*ds.ContactSubmission, error) {
	if errs := ValidateContactForm(form); len(errs) > 0 {
		return nil, &ValidationErrors{Errors: errs}
	}

	now := s.now()
	submission := ds.ContactSubmission{
		ID:                     newContactID(now),
		FirstName:              strings.TrimSpace(form.FirstName),
		LastName:               strings.TrimSpace(form.LastName),
		Email:                  strings.TrimSpace(form.Email),
		Phone:                  strings.TrimSpace(form.Phone),
		Company:                strings.TrimSpace(form.Company),
		Service:                form.Service,
		Subject:                strings.TrimSpace(form.Subject),
		Message:                strings.TrimSpace(form.Message),
		PrivacyAccepted:        form.PrivacyAccepted,
		NewsletterSubscription: form.NewsletterSubscription,
		Date:                   now.Format("2006-01-02"),
		Time:                   now.Format("15:04:05"),
		Status:                 "new",
	}

	if s.gateway == nil {
		return nil, ErrNotificationFailed
	}
	if err := s.gateway.SendContactNotification(ctx, submission); err != nil {
		logrus.Warnf("contact notification failed: %v", err)
		return nil, ErrNotificationFailed
	}

	if err := s.store.CreateContactSubmission(&submission); err != nil {
		logrus.Errorf("failed to persist contact submission %s: %v", submission.ID, err)
		return nil, err
	}

	return &submission, nil
}

// newContactID - "CT" + год + последние 6 цифр epoch-миллисекунд
func newContactID(now time.Time) string {
	return fmt.Sprintf("CT%d%06d", now.Year(), now.UnixMilli()%1000000)
}
