package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"cargo-express-app/internal/app/ds"
)

// Gateway - внешний почтовый коллаборатор. Любая ошибка отправки
// для заявок трактуется вызывающей стороной как "письмо не ушло"
// и не блокирует сохранение заявки.
type Gateway interface {
	SendQuoteNotification(ctx context.Context, q ds.QuoteRequest) error
	SendContactNotification(ctx context.Context, c ds.ContactSubmission) error
}

const emailAPIURL = "https://api.emailjs.com/api/v1.0/email/send"

// EmailGateway - отправка уведомлений через REST API EmailJS
type EmailGateway struct {
	serviceID  string
	templateID string
	publicKey  string
	toEmail    string
	client     *http.Client
}

// NewEmailGateway - шлюз готов к работе только при полном наборе
// настроек; иначе каждая отправка вернёт ошибку (деградация без падения)
func NewEmailGateway(serviceID, templateID, publicKey, toEmail string) *EmailGateway {
	return &EmailGateway{
		serviceID:  serviceID,
		templateID: templateID,
		publicKey:  publicKey,
		toEmail:    toEmail,
		client:     &http.Client{Timeout: 15 * time.Second},
	}
}

func (g *EmailGateway) configured() bool {
	return g.serviceID != "" && g.templateID != "" && g.publicKey != ""
}

// SendQuoteNotification - письмо админу о новой заявке на расчёт
func (g *EmailGateway) SendQuoteNotification(ctx context.Context, q ds.QuoteRequest) error {
	params := map[string]interface{}{
		"to_email":             g.toEmail,
		"from_name":            q.CustomerName,
		"from_email":           q.CustomerEmail,
		"phone":                orDefault(q.Phone, "Not provided"),
		"company":              orDefault(q.Company, "Not provided"),
		"quote_id":             q.ID,
		"service_type":         q.ServiceType,
		"origin":               q.Origin,
		"destination":          q.Destination,
		"cargo_type":           q.CargoType,
		"weight":               q.Weight,
		"volume":               q.Volume,
		"packages":             q.Packages,
		"special_requirements": orDefault(q.SpecialRequirements, "None"),
		"submission_type":      "Quote Request",
		"submission_date":      time.Now().Format(time.RFC1123),
	}
	return g.send(ctx, params)
}

// SendContactNotification - письмо админу о сообщении из контактной формы
func (g *EmailGateway) SendContactNotification(ctx context.Context, c ds.ContactSubmission) error {
	params := map[string]interface{}{
		"to_email":        g.toEmail,
		"from_name":       fmt.Sprintf("%s %s", c.FirstName, c.LastName),
		"from_email":      c.Email,
		"phone":           orDefault(c.Phone, "Not provided"),
		"company":         orDefault(c.Company, "Not provided"),
		"service":         orDefault(c.Service, "Not specified"),
		"subject":         c.Subject,
		"message":         c.Message,
		"submission_type": "Contact Form",
		"submission_date": time.Now().Format(time.RFC1123),
	}
	return g.send(ctx, params)
}

func (g *EmailGateway) send(ctx context.Context, templateParams map[string]interface{}) error {
	if !g.configured() {
		return fmt.Errorf("email gateway is not configured")
	}

	payload := map[string]interface{}{
		"service_id":      g.serviceID,
		"template_id":     g.templateID,
		"user_id":         g.publicKey,
		"template_params": templateParams,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, emailAPIURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("email request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		logrus.Warnf("email gateway returned %d: %s", resp.StatusCode, string(respBody))
		return fmt.Errorf("email gateway returned status %d", resp.StatusCode)
	}

	return nil
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
