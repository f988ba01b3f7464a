package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cargo-express-app/internal/app/ds"
)

// newTestRepository - репозиторий поверх sqlite, без внешнего Postgres
func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	repo, err := newWithDB(db)
	require.NoError(t, err)
	return repo
}

func storedQuote() ds.QuoteRequest {
	return ds.QuoteRequest{
		ID:            "QR2025123456",
		Date:          "2025-06-01",
		ServiceType:   ds.ServiceAirFreight,
		CustomerName:  "Ann Lee",
		CustomerEmail: "ann@x.com",
		Origin:        "JFK Airport",
		Destination:   "LHR Airport",
		CargoType:     "electronics",
		Weight:        120,
		TermsAccepted: true,
		Status:        ds.StatusPending,
		SubmittedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		LastUpdated:   "2025-06-01",
	}
}

func TestApplyQuotePatch(t *testing.T) {
	amount := 1500.0
	notes := "priority customer"

	tests := []struct {
		name    string
		patch   ds.QuotePatch
		wantErr error
		check   func(t *testing.T, q ds.QuoteRequest)
	}{
		{
			name:  "status change",
			patch: ds.QuotePatch{Status: ds.StatusQuoted},
			check: func(t *testing.T, q ds.QuoteRequest) {
				assert.Equal(t, ds.StatusQuoted, q.Status)
				assert.Equal(t, "2025-07-01", q.LastUpdated)
			},
		},
		{
			name:  "amount and notes",
			patch: ds.QuotePatch{QuotedAmount: &amount, AdminNotes: &notes},
			check: func(t *testing.T, q ds.QuoteRequest) {
				require.NotNil(t, q.QuotedAmount)
				assert.Equal(t, 1500.0, *q.QuotedAmount)
				assert.Equal(t, "priority customer", q.AdminNotes)
				assert.Equal(t, ds.StatusPending, q.Status, "empty status keeps the old one")
			},
		},
		{
			name:    "invalid status rejected",
			patch:   ds.QuotePatch{Status: "shipped"},
			wantErr: ErrInvalidStatus,
			check: func(t *testing.T, q ds.QuoteRequest) {
				assert.Equal(t, ds.StatusPending, q.Status)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := storedQuote()
			err := applyQuotePatch(&quote, tt.patch, "2025-07-01")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			tt.check(t, quote)
		})
	}
}

// Патч не трогает id и параметры груза
func TestApplyQuotePatchImmutableFields(t *testing.T) {
	amount := 999.0
	quote := storedQuote()
	original := quote

	require.NoError(t, applyQuotePatch(&quote, ds.QuotePatch{Status: ds.StatusAccepted, QuotedAmount: &amount}, "2025-07-01"))

	assert.Equal(t, original.ID, quote.ID)
	assert.Equal(t, original.ServiceType, quote.ServiceType)
	assert.Equal(t, original.Origin, quote.Origin)
	assert.Equal(t, original.Destination, quote.Destination)
	assert.Equal(t, original.CargoType, quote.CargoType)
	assert.Equal(t, original.Weight, quote.Weight)
	assert.Equal(t, original.SubmittedAt, quote.SubmittedAt)
}

func TestSeedRates(t *testing.T) {
	repo := newTestRepository(t)

	rates, err := repo.GetRates()
	require.NoError(t, err)
	require.Len(t, rates, 3)

	rate, err := repo.GetRate(ds.ServiceSeaFreight)
	require.NoError(t, err)
	assert.Equal(t, 2.50, rate.PerKg)
	assert.Equal(t, 150.00, rate.PerCbm)
	assert.Equal(t, 100.00, rate.BaseFee)
}

func TestQuoteRequestLifecycle(t *testing.T) {
	repo := newTestRepository(t)

	quote := storedQuote()
	require.NoError(t, repo.CreateQuoteRequest(&quote))

	loaded, err := repo.GetQuoteRequest(quote.ID)
	require.NoError(t, err)
	assert.Equal(t, quote.CustomerName, loaded.CustomerName)

	amount := 1220.0
	updated, err := repo.UpdateQuoteRequest(quote.ID, ds.QuotePatch{Status: ds.StatusQuoted, QuotedAmount: &amount})
	require.NoError(t, err)
	assert.Equal(t, ds.StatusQuoted, updated.Status)
	require.NotNil(t, updated.QuotedAmount)
	assert.Equal(t, 1220.0, *updated.QuotedAmount)
	// параметры груза не изменились
	assert.Equal(t, quote.Weight, updated.Weight)
	assert.Equal(t, quote.Origin, updated.Origin)

	_, err = repo.UpdateQuoteRequest(quote.ID, ds.QuotePatch{Status: "shipped"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestQuoteRequestNotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetQuoteRequest("QR0000000000")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.UpdateQuoteRequest("QR0000000000", ds.QuotePatch{Status: ds.StatusQuoted})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRateNotFoundAndUpdate(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetRate("space-freight")
	assert.ErrorIs(t, err, ErrNotFound)

	rate, err := repo.UpdateRate(ds.ServiceRoadTransport, 1.50, 90, 60)
	require.NoError(t, err)
	assert.Equal(t, 1.50, rate.PerKg)

	reloaded, err := repo.GetRate(ds.ServiceRoadTransport)
	require.NoError(t, err)
	assert.Equal(t, 90.0, reloaded.PerCbm)
	assert.Equal(t, 60.0, reloaded.BaseFee)
}
