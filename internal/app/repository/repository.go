package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"cargo-express-app/internal/app/ds"
)

// ErrNotFound - запись не найдена. Остальные ошибки БД (связь, схема)
// наружу уходят как есть и не должны превращаться в "не найдено".
var ErrNotFound = errors.New("record not found")

// ErrInvalidStatus - статус вне списка допустимых
var ErrInvalidStatus = errors.New("invalid status")

type Repository struct {
	db *gorm.DB
}

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return newWithDB(db)
}

// newWithDB - инициализация поверх готового подключения
func newWithDB(db *gorm.DB) (*Repository, error) {
	if err := db.AutoMigrate(&ds.QuoteRequest{}, &ds.ContactSubmission{}, &ds.Rate{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	repo := &Repository{db: db}
	if err := repo.seedRates(); err != nil {
		return nil, err
	}

	return repo, nil
}

// seedRates - тарифы по умолчанию, только если таблица пустая
func (r *Repository) seedRates() error {
	var count int64
	if err := r.db.Model(&ds.Rate{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	rates := ds.DefaultRates()
	return r.db.Create(&rates).Error
}

// ==================== ЗАЯВКИ НА РАСЧЁТ ====================

// CreateQuoteRequest - сохранение новой заявки (append-only по id)
func (r *Repository) CreateQuoteRequest(q *ds.QuoteRequest) error {
	return r.db.Create(q).Error
}

// GetQuoteRequests - все заявки в порядке поступления
func (r *Repository) GetQuoteRequests() ([]ds.QuoteRequest, error) {
	var quotes []ds.QuoteRequest
	err := r.db.Order("submitted_at ASC").Find(&quotes).Error
	return quotes, err
}

// GetQuoteRequest - заявка по ID
func (r *Repository) GetQuoteRequest(id string) (ds.QuoteRequest, error) {
	var quote ds.QuoteRequest
	err := r.db.Where("id = ?", id).First(&quote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ds.QuoteRequest{}, fmt.Errorf("quote request %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return ds.QuoteRequest{}, err
	}
	return quote, nil
}

// applyQuotePatch - перенос разрешённых полей патча на заявку.
// Меняются только status, quotedAmount и adminNotes; id и параметры
// груза после создания неизменны.
func applyQuotePatch(quote *ds.QuoteRequest, patch ds.QuotePatch, today string) error {
	if patch.Status != "" {
		if !ds.IsValidQuoteStatus(patch.Status) {
			return fmt.Errorf("%w: %q", ErrInvalidStatus, patch.Status)
		}
		quote.Status = patch.Status
	}
	if patch.QuotedAmount != nil {
		quote.QuotedAmount = patch.QuotedAmount
	}
	if patch.AdminNotes != nil {
		quote.AdminNotes = *patch.AdminNotes
	}
	quote.LastUpdated = today
	return nil
}

// UpdateQuoteRequest - обновление заявки админом
func (r *Repository) UpdateQuoteRequest(id string, patch ds.QuotePatch) (ds.QuoteRequest, error) {
	quote, err := r.GetQuoteRequest(id)
	if err != nil {
		return ds.QuoteRequest{}, err
	}

	if err := applyQuotePatch(&quote, patch, time.Now().Format("2006-01-02")); err != nil {
		return ds.QuoteRequest{}, err
	}

	if err := r.db.Save(&quote).Error; err != nil {
		return ds.QuoteRequest{}, err
	}
	return quote, nil
}

// ==================== КОНТАКТНЫЕ СООБЩЕНИЯ ====================

// CreateContactSubmission - сохранение сообщения из контактной формы
func (r *Repository) CreateContactSubmission(c *ds.ContactSubmission) error {
	return r.db.Create(c).Error
}

// GetContactSubmissions - все сообщения в порядке поступления
func (r *Repository) GetContactSubmissions() ([]ds.ContactSubmission, error) {
	var contacts []ds.ContactSubmission
	err := r.db.Order("date ASC, time ASC").Find(&contacts).Error
	return contacts, err
}

// ==================== ТАРИФЫ ====================

// GetRates - текущие тарифы по всем типам услуг
func (r *Repository) GetRates() ([]ds.Rate, error) {
	var rates []ds.Rate
	err := r.db.Order("service ASC").Find(&rates).Error
	return rates, err
}

// GetRate - тариф по типу услуги
func (r *Repository) GetRate(service string) (ds.Rate, error) {
	var rate ds.Rate
	err := r.db.Where("service = ?", service).First(&rate).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ds.Rate{}, fmt.Errorf("rate for service %q: %w", service, ErrNotFound)
	}
	if err != nil {
		return ds.Rate{}, err
	}
	return rate, nil
}

// UpdateRate - обновление тарифа из админки
func (r *Repository) UpdateRate(service string, perKg, perCbm, baseFee float64) (ds.Rate, error) {
	rate, err := r.GetRate(service)
	if err != nil {
		return ds.Rate{}, err
	}

	rate.PerKg = perKg
	rate.PerCbm = perCbm
	rate.BaseFee = baseFee

	if err := r.db.Save(&rate).Error; err != nil {
		return ds.Rate{}, err
	}
	return rate, nil
}
