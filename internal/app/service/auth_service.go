package service

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"cargo-express-app/internal/app/ds"
)

// SessionTTL - срок жизни сессии, абсолютный от момента создания.
// Продления нет: по истечении двух часов нужен повторный вход.
const SessionTTL = 2 * time.Hour

// loginDelay - выравнивание времени ответа логина, чтобы по таймингу
// нельзя было перебирать имена пользователей
const loginDelay = time.Second

// ErrInvalidCredentials - неверная пара логин/пароль.
// Какое именно поле неверно, наружу не сообщаем.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService - сервис админских сессий. Хранит активные сессии
// в памяти процесса; при нескольких инстансах хранилище нужно
// выносить во внешний стор.
type AuthService struct {
	mu       sync.Mutex
	sessions map[string]ds.Session

	adminUsername string
	adminPassword string

	now   func() time.Time
	delay func()
}

// NewAuthService - создание сервиса авторизации для единственной
// админской учётки из конфигурации
func NewAuthService(adminUsername, adminPassword string) *AuthService {
	return NewAuthServiceWithClock(adminUsername, adminPassword, time.Now, func() { time.Sleep(loginDelay) })
}

// NewAuthServiceWithClock - вариант с внешними часами и задержкой
// логина, для тестов из других пакетов
func NewAuthServiceWithClock(adminUsername, adminPassword string, now func() time.Time, delay func()) *AuthService {
	return &AuthService{
		sessions:      make(map[string]ds.Session),
		adminUsername: adminUsername,
		adminPassword: adminPassword,
		now:           now,
		delay:         delay,
	}
}

// LoginResult - токен и срок жизни в секундах
type LoginResult struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
}

// Login - вход администратора. Сравнение обоих полей за константное
// время, ответ выравнивается по длительности.
func (s *AuthService) Login(username, password string) (*LoginResult, error) {
	s.delay()

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.adminUsername))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword))
	if userOK&passOK != 1 {
		return nil, ErrInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	session := ds.Session{
		Token:     token,
		Username:  username,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	s.sessions[token] = session
	s.mu.Unlock()

	logrus.Infof("admin session created for %s", username)

	return &LoginResult{
		Token:     token,
		ExpiresIn: int(SessionTTL.Seconds()),
	}, nil
}

// Verify - валидна ли сессия. Просроченные записи выселяются
// лениво при проверке, фонового чистильщика нет.
func (s *AuthService) Verify(token string) bool {
	if token == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return false
	}

	if s.now().Sub(session.CreatedAt) > SessionTTL {
		delete(s.sessions, token)
		return false
	}

	return true
}

// Logout - безусловное удаление сессии; повторный или неизвестный
// токен ошибкой не считается
func (s *AuthService) Logout(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// generateToken - 32 случайных байта в hex
func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// DegradedAccessWindow - окно офлайн-доступа админки: если сам вызов
// проверки сессии упал (сеть, не ответ "невалидно"), клиент работает
// дальше, пока с момента входа не прошёл час. Осознанный размен
// строгости на доступность, не граница безопасности.
const DegradedAccessWindow = time.Hour

// SessionPolicy - двухуровневая политика доверия клиента админки:
// строгий уровень по вердикту сервера и деградированный по локальному
// времени входа, когда сервер недоступен.
type SessionPolicy struct {
	DegradedWindow time.Duration

	now func() time.Time
}

func NewSessionPolicy() SessionPolicy {
	return SessionPolicy{
		DegradedWindow: DegradedAccessWindow,
		now:            time.Now,
	}
}

// Allow - решение о допуске: при успешном вызове проверки решает
// сервер; при ошибке самого вызова допускаем в пределах окна
func (p SessionPolicy) Allow(valid bool, verifyErr error, loginTime time.Time) bool {
	if verifyErr == nil {
		return valid
	}
	return p.now().Sub(loginTime) < p.DegradedWindow
}
