package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"cargo-express-app/internal/app/calculator"
	"cargo-express-app/internal/app/ds"
	"cargo-express-app/internal/app/middleware"
	"cargo-express-app/internal/app/repository"
	"cargo-express-app/internal/app/service"
)

type Handler struct {
	Repository     *repository.Repository
	QuoteService   *service.QuoteService
	ContactService *service.ContactService
	AuthService    *service.AuthService
	AuthMiddleware *middleware.AuthMiddleware
}

func NewHandler(
	repo *repository.Repository,
	quoteService *service.QuoteService,
	contactService *service.ContactService,
	authService *service.AuthService,
	authMiddleware *middleware.AuthMiddleware,
) *Handler {
	return &Handler{
		Repository:     repo,
		QuoteService:   quoteService,
		ContactService: contactService,
		AuthService:    authService,
		AuthMiddleware: authMiddleware,
	}
}

// helper для единых ошибок
func fail(ctx *gin.Context, code int, message string) {
	ctx.JSON(code, gin.H{
		"status":  "fail",
		"message": message,
	})
}

// failRepoError - код ответа по типу ошибки хранилища: "не найдено" -
// 404, невалидный статус - 400, всё остальное (связь, схема) - 500
func failRepoError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		fail(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, repository.ErrInvalidStatus):
		fail(ctx, http.StatusBadRequest, err.Error())
	default:
		logrus.Error(err)
		fail(ctx, http.StatusInternalServerError, "An error occurred. Please try again.")
	}
}

// SubmitQuoteRequest - приём заявки на расчёт стоимости перевозки
// @Summary Submit freight quote request
// @Accept json
// @Produce json
// @Success 201
// @Failure 400
// @Router /api/quotes [post]
func (h *Handler) SubmitQuoteRequest(ctx *gin.Context) {
	var form ds.QuoteForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		fail(ctx, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.QuoteService.Submit(ctx.Request.Context(), form)
	if err != nil {
		var verrs *service.ValidationErrors
		if errors.As(err, &verrs) {
			// первая ошибка в message, полный список для подсветки полей
			ctx.JSON(http.StatusBadRequest, gin.H{
				"status":  "fail",
				"message": verrs.First(),
				"errors":  verrs.Errors,
			})
			return
		}

		logrus.Errorf("quote submission failed: %v", err)
		fail(ctx, http.StatusInternalServerError, "An error occurred. Please try again.")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"id":        result.ID,
		"message":   result.Message,
		"emailSent": result.EmailSent,
	})
}

// SubmitContactForm - приём сообщения из контактной формы
// @Summary Submit contact message
// @Accept json
// @Produce json
// @Success 200
// @Failure 400
// @Router /api/contact [post]
func (h *Handler) SubmitContactForm(ctx *gin.Context) {
	var form ds.ContactForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		fail(ctx, http.StatusBadRequest, "invalid request body")
		return
	}

	submission, err := h.ContactService.Submit(ctx.Request.Context(), form)
	if err != nil {
		var verrs *service.ValidationErrors
		if errors.As(err, &verrs) {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"status":  "fail",
				"message": verrs.First(),
				"errors":  verrs.Errors,
			})
			return
		}
		if errors.Is(err, service.ErrNotificationFailed) {
			fail(ctx, http.StatusBadGateway, "Failed to send message. Please try again.")
			return
		}

		logrus.Errorf("contact submission failed: %v", err)
		fail(ctx, http.StatusInternalServerError, "An error occurred. Please try again.")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      submission.ID,
		"message": "Message sent successfully! We'll get back to you soon.",
	})
}

// CalculateQuoteAmount - расчёт рекомендуемой стоимости по тарифам
// @Summary Calculate suggested quote amount
// @Produce json
// @Security BearerAuth
// @Router /api/admin/quotes/{id}/calculate [post]
func (h *Handler) CalculateQuoteAmount(ctx *gin.Context) {
	id := ctx.Param("id")

	quote, err := h.Repository.GetQuoteRequest(id)
	if err != nil {
		failRepoError(ctx, err)
		return
	}

	rate, err := h.Repository.GetRate(quote.ServiceType)
	if err != nil {
		failRepoError(ctx, err)
		return
	}

	calc := calculator.NewQuoteCalculator()
	amount := calc.Calculate(quote, rate)

	ctx.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"id":     quote.ID,
		"amount": amount,
	})
}
