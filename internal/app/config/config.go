package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config - конфигурация сервиса из переменных окружения
type Config struct {
	ServiceHost string
	ServicePort int

	// Учётные данные администратора и секрет подписи токенов.
	// Секрет зарезервирован под подпись токенов, сейчас не используется.
	AdminUsername string
	AdminPassword string
	JWTSecret     string

	// Настройки EmailJS для почтовых уведомлений (опциональны:
	// без них шлюз уведомлений работает в выключенном режиме)
	EmailJSServiceID  string
	EmailJSTemplateID string
	EmailJSPublicKey  string
	NotifyEmail       string
}

// NewConfig - загрузка конфигурации. Отсутствие обязательных
// переменных - фатальная ошибка: сервис не должен стартовать
// с пустыми учётными данными администратора.
func NewConfig() (*Config, error) {
	// .env подхватываем, если есть; в контейнере переменные придут из окружения
	_ = godotenv.Load()

	cfg := &Config{
		ServiceHost:       os.Getenv("SERVICE_HOST"),
		ServicePort:       5000,
		AdminUsername:     os.Getenv("ADMIN_USERNAME"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		EmailJSServiceID:  os.Getenv("EMAILJS_SERVICE_ID"),
		EmailJSTemplateID: os.Getenv("EMAILJS_TEMPLATE_ID"),
		EmailJSPublicKey:  os.Getenv("EMAILJS_PUBLIC_KEY"),
		NotifyEmail:       os.Getenv("NOTIFY_EMAIL"),
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT value %q: %w", portStr, err)
		}
		cfg.ServicePort = port
	}

	var missing []string
	if cfg.AdminUsername == "" {
		missing = append(missing, "ADMIN_USERNAME")
	}
	if cfg.AdminPassword == "" {
		missing = append(missing, "ADMIN_PASSWORD")
	}
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}
