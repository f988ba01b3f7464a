package dsn

import (
	"fmt"
	"os"
)

// FromEnv - строка подключения к PostgreSQL из переменных окружения
func FromEnv() string {
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "cargo_user")
	pass := getEnv("DB_PASSWORD", "cargo_pass")
	name := getEnv("DB_NAME", "cargo_express")
	sslmode := getEnv("DB_SSLMODE", "disable")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, pass, name, sslmode)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
