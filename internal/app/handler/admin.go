package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"cargo-express-app/internal/app/ds"
	"cargo-express-app/internal/app/service"
)

func nowDate() string { return time.Now().Format("2006-01-02") }

// LoginAdmin - вход администратора
// @Summary Admin login
// @Accept json
// @Produce json
// @Success 200
// @Failure 401
// @Router /api/admin/login [post]
func (h *Handler) LoginAdmin(ctx *gin.Context) {
	var request struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := ctx.ShouldBindJSON(&request); err != nil || request.Username == "" || request.Password == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Username and password required",
		})
		return
	}

	result, err := h.AuthService.Login(request.Username, request.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid username or password",
			})
			return
		}

		logrus.Errorf("admin login failed: %v", err)
		fail(ctx, http.StatusInternalServerError, "internal error")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":   true,
		"token":     result.Token,
		"expiresIn": result.ExpiresIn,
	})
}

// VerifyAdminSession - проверка валидности сессии
// @Summary Verify admin session token
// @Accept json
// @Produce json
// @Router /api/admin/verify [post]
func (h *Handler) VerifyAdminSession(ctx *gin.Context) {
	var request struct {
		Token string `json:"token"`
	}

	if err := ctx.ShouldBindJSON(&request); err != nil || request.Token == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"valid":   false,
			"message": "Token required",
		})
		return
	}

	if h.AuthService.Verify(request.Token) {
		ctx.JSON(http.StatusOK, gin.H{"success": true, "valid": true})
		return
	}

	ctx.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"valid":   false,
		"message": "Invalid or expired token",
	})
}

// LogoutAdmin - выход: сессия удаляется безусловно, ответ всегда 200
// @Summary Admin logout
// @Accept json
// @Produce json
// @Router /api/admin/logout [post]
func (h *Handler) LogoutAdmin(ctx *gin.Context) {
	var request struct {
		Token string `json:"token"`
	}
	_ = ctx.ShouldBindJSON(&request)

	h.AuthService.Logout(request.Token)
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// GetQuoteRequests - список заявок для админки
// @Summary List quote requests
// @Produce json
// @Security BearerAuth
// @Router /api/admin/quotes [get]
func (h *Handler) GetQuoteRequests(ctx *gin.Context) {
	quotes, err := h.Repository.GetQuoteRequests()
	if err != nil {
		logrus.Error(err)
		fail(ctx, http.StatusInternalServerError, "failed to load quote requests")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"quotes": quotes,
		"count":  len(quotes),
	})
}

// GetQuoteRequest - заявка по ID
// @Summary Get quote request by id
// @Produce json
// @Security BearerAuth
// @Router /api/admin/quotes/{id} [get]
func (h *Handler) GetQuoteRequest(ctx *gin.Context) {
	quote, err := h.Repository.GetQuoteRequest(ctx.Param("id"))
	if err != nil {
		failRepoError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, quote)
}

// UpdateQuoteRequest - правка заявки админом: только статус, сумма
// и заметки; остальные поля после создания неизменны
// @Summary Update quote status, amount and notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Router /api/admin/quotes/{id} [put]
func (h *Handler) UpdateQuoteRequest(ctx *gin.Context) {
	var patch ds.QuotePatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		fail(ctx, http.StatusBadRequest, "invalid request body")
		return
	}

	quote, err := h.Repository.UpdateQuoteRequest(ctx.Param("id"), patch)
	if err != nil {
		failRepoError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"quote":   quote,
		"message": "Quote status updated successfully!",
	})
}

// GetContactSubmissions - сообщения контактной формы для админки
// @Summary List contact submissions
// @Produce json
// @Security BearerAuth
// @Router /api/admin/contacts [get]
func (h *Handler) GetContactSubmissions(ctx *gin.Context) {
	contacts, err := h.Repository.GetContactSubmissions()
	if err != nil {
		logrus.Error(err)
		fail(ctx, http.StatusInternalServerError, "failed to load contact submissions")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"contacts": contacts,
		"count":    len(contacts),
	})
}

// GetDashboardStats - счётчики дашборда: всего заявок, обработанные
// (quoted+accepted), ожидающие и сумма выставленных за сегодня
// @Summary Dashboard counters
// @Produce json
// @Security BearerAuth
// @Router /api/admin/stats [get]
func (h *Handler) GetDashboardStats(ctx *gin.Context) {
	quotes, err := h.Repository.GetQuoteRequests()
	if err != nil {
		logrus.Error(err)
		fail(ctx, http.StatusInternalServerError, "failed to load quote requests")
		return
	}

	ctx.JSON(http.StatusOK, computeDashboardStats(quotes, nowDate()))
}

// dashboardStats - счётчики дашборда
type dashboardStats struct {
	TotalQuotes     int     `json:"totalQuotes"`
	ProcessedQuotes int     `json:"processedQuotes"`
	PendingQuotes   int     `json:"pendingQuotes"`
	TodaysValue     float64 `json:"todaysValue"`
}

// computeDashboardStats - агрегация по списку заявок: обработанными
// считаются quoted и accepted, в сумму дня входят заявки с выставленной
// стоимостью, поданные сегодня
func computeDashboardStats(quotes []ds.QuoteRequest, today string) dashboardStats {
	stats := dashboardStats{TotalQuotes: len(quotes)}

	for _, q := range quotes {
		switch q.Status {
		case ds.StatusQuoted, ds.StatusAccepted:
			stats.ProcessedQuotes++
		case ds.StatusPending:
			stats.PendingQuotes++
		}
		if q.Date == today && q.QuotedAmount != nil {
			stats.TodaysValue += *q.QuotedAmount
		}
	}

	return stats
}

// GetRates - текущие тарифы
// @Summary List service rates
// @Produce json
// @Security BearerAuth
// @Router /api/admin/rates [get]
func (h *Handler) GetRates(ctx *gin.Context) {
	rates, err := h.Repository.GetRates()
	if err != nil {
		logrus.Error(err)
		fail(ctx, http.StatusInternalServerError, "failed to load rates")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"rates": rates})
}

// UpdateRate - обновление тарифа по типу услуги
// @Summary Update service rate
// @Accept json
// @Produce json
// @Security BearerAuth
// @Router /api/admin/rates/{service} [put]
func (h *Handler) UpdateRate(ctx *gin.Context) {
	var request struct {
		PerKg   *float64 `json:"perKg"`
		PerCbm  *float64 `json:"perCbm"`
		BaseFee *float64 `json:"baseFee"`
	}

	if err := ctx.ShouldBindJSON(&request); err != nil ||
		request.PerKg == nil || request.PerCbm == nil || request.BaseFee == nil {
		fail(ctx, http.StatusBadRequest, "Please enter valid numeric values")
		return
	}

	rate, err := h.Repository.UpdateRate(ctx.Param("service"), *request.PerKg, *request.PerCbm, *request.BaseFee)
	if err != nil {
		failRepoError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"rate":    rate,
		"message": "Rates updated successfully!",
	})
}
