package api

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"cargo-express-app/internal/app/config"
	"cargo-express-app/internal/app/dsn"
	"cargo-express-app/internal/app/handler"
	"cargo-express-app/internal/app/middleware"
	"cargo-express-app/internal/app/notify"
	"cargo-express-app/internal/app/repository"
	"cargo-express-app/internal/app/service"
)

// StartServer - сборка зависимостей и запуск HTTP сервера
func StartServer() {
	logrus.Info("Application start up")

	conf, err := config.NewConfig()
	if err != nil {
		// без учётных данных администратора сервис не запускается
		logrus.Fatalf("error loading config: %v", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		logrus.Fatalf("error initializing repository: %v", err)
	}

	gateway := notify.NewEmailGateway(
		conf.EmailJSServiceID,
		conf.EmailJSTemplateID,
		conf.EmailJSPublicKey,
		conf.NotifyEmail,
	)

	authService := service.NewAuthService(conf.AdminUsername, conf.AdminPassword)
	quoteService := service.NewQuoteService(repo, gateway)
	contactService := service.NewContactService(repo, gateway)
	authMiddleware := middleware.NewAuthMiddleware(authService)

	h := handler.NewHandler(repo, quoteService, contactService, authService, authMiddleware)

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	registerRoutes(r, h)

	serverAddress := fmt.Sprintf("%s:%d", conf.ServiceHost, conf.ServicePort)
	logrus.Infof("Starting HTTP server on %s", serverAddress)
	if err := r.Run(serverAddress); err != nil {
		logrus.Fatal(err)
	}
	logrus.Info("Application terminated")
}

func registerRoutes(r *gin.Engine, h *handler.Handler) {
	// Публичные формы сайта
	r.POST("/api/quotes", h.SubmitQuoteRequest)
	r.POST("/api/contact", h.SubmitContactForm)

	// Авторизация администратора
	r.POST("/api/admin/login", h.LoginAdmin)
	r.POST("/api/admin/verify", h.VerifyAdminSession)
	r.POST("/api/admin/logout", h.LogoutAdmin)

	// Админское API (требует валидного токена сессии)
	adminGroup := r.Group("/api/admin")
	adminGroup.Use(h.AuthMiddleware.RequireAuth())
	{
		adminGroup.GET("/quotes", h.GetQuoteRequests)
		adminGroup.GET("/quotes/:id", h.GetQuoteRequest)
		adminGroup.PUT("/quotes/:id", h.UpdateQuoteRequest)
		adminGroup.POST("/quotes/:id/calculate", h.CalculateQuoteAmount)
		adminGroup.GET("/contacts", h.GetContactSubmissions)
		adminGroup.GET("/stats", h.GetDashboardStats)
		adminGroup.GET("/rates", h.GetRates)
		adminGroup.PUT("/rates/:service", h.UpdateRate)
	}

	// Swagger документация
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
