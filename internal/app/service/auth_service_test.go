package service

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(now *time.Time) *AuthService {
	// без задержки логина в тестах
	return NewAuthServiceWithClock("admin", "s3cret", func() time.Time { return *now }, func() {})
}

func TestLoginSuccess(t *testing.T) {
	now := time.Now()
	s := newTestAuthService(&now)

	result, err := s.Login("admin", "s3cret")
	require.NoError(t, err)

	assert.Equal(t, 7200, result.ExpiresIn)
	// 32 байта в hex
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{64}$`), result.Token)
	assert.True(t, s.Verify(result.Token))
}

func TestLoginInvalidCredentials(t *testing.T) {
	now := time.Now()
	s := newTestAuthService(&now)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "wrong"},
		{"wrong username", "root", "s3cret"},
		{"both wrong", "root", "wrong"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := s.Login(tt.username, tt.password)
			assert.Nil(t, result)
			// одна и та же ошибка, без указания неверного поля
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestTokensAreUnique(t *testing.T) {
	now := time.Now()
	s := newTestAuthService(&now)

	first, err := s.Login("admin", "s3cret")
	require.NoError(t, err)
	second, err := s.Login("admin", "s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
}

// Срок жизни абсолютный от создания: валидна на 119-й минуте,
// невалидна на 121-й
func TestSessionExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := newTestAuthService(&now)

	result, err := s.Login("admin", "s3cret")
	require.NoError(t, err)

	now = now.Add(119 * time.Minute)
	assert.True(t, s.Verify(result.Token))

	now = now.Add(2 * time.Minute) // T+121min
	assert.False(t, s.Verify(result.Token))

	// просроченная сессия выселена: валидной снова не станет
	now = now.Add(-10 * time.Minute)
	assert.False(t, s.Verify(result.Token))
}

// Verify не продлевает сессию
func TestVerifyDoesNotSlideExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := newTestAuthService(&now)

	result, err := s.Login("admin", "s3cret")
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		now = now.Add(11 * time.Minute)
		s.Verify(result.Token)
	}
	// 110 минут подряд с проверками - ещё валидна
	assert.True(t, s.Verify(result.Token))

	now = now.Add(15 * time.Minute)
	assert.False(t, s.Verify(result.Token))
}

func TestVerifyUnknownOrEmptyToken(t *testing.T) {
	now := time.Now()
	s := newTestAuthService(&now)

	assert.False(t, s.Verify(""))
	assert.False(t, s.Verify("deadbeef"))
}

// Logout идемпотентен: повторный и неизвестный токен - не ошибка
func TestLogoutIdempotent(t *testing.T) {
	now := time.Now()
	s := newTestAuthService(&now)

	result, err := s.Login("admin", "s3cret")
	require.NoError(t, err)

	s.Logout(result.Token)
	assert.False(t, s.Verify(result.Token))

	s.Logout(result.Token)
	s.Logout("unknown-token")
	assert.False(t, s.Verify(result.Token))
}

func TestSessionPolicy(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p := NewSessionPolicy()
	p.now = func() time.Time { return now }

	netErr := errors.New("connection refused")

	tests := []struct {
		name      string
		valid     bool
		verifyErr error
		loginAge  time.Duration
		allowed   bool
	}{
		{"server says valid", true, nil, 90 * time.Minute, true},
		{"server says invalid", false, nil, 5 * time.Minute, false},
		{"network error within window", false, netErr, 30 * time.Minute, true},
		{"network error outside window", false, netErr, 61 * time.Minute, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loginTime := now.Add(-tt.loginAge)
			assert.Equal(t, tt.allowed, p.Allow(tt.valid, tt.verifyErr, loginTime))
		})
	}
}
