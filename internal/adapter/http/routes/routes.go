package routes

import (
	"log"

	_ "retroart/docs" // This will be auto-generated
	"retroart/internal/adapter/http/handlers"
	repository2 "retroart/internal/adapter/persistence/repository"
	"retroart/internal/infrastructure/awsclient"
	"retroart/internal/infrastructure/config"
	"retroart/internal/infrastructure/mail"
	"retroart/internal/infrastructure/payments"
	"retroart/internal/infrastructure/storage"
	"retroart/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.Load()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err := router.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) {
	ddb := awsclient.ConnectDynamoDB()

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	imageStore := storage.NewS3ImageStore(awsclient.ConnectS3(), cfg.ImageBucket)
	mailer := mail.NewSESMailer(awsclient.ConnectSES(), cfg.MailSender)

	// A half-configured gateway would only surface as panics on the first
	// submission, so refuse to start without one. Mock mode covers local runs.
	paymentGateway, err := payments.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret, cfg.RazorpayWebhookSecret)
	if err != nil {
		log.Fatalf("Failed to configure the payment gateway: %v", err)
	}

	orderUseCase := usecase.NewOrderUseCase(orderRepo, paymentGateway, imageStore, mailer, cfg.OrderAmount, cfg.OrderCurrency)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	adminHandler := handlers.NewAdminHandler(orderUseCase, cfg.AdminPassword, cfg.AdminAPIKey)
	webhookHandler := handlers.NewWebhookHandler(orderUseCase, paymentGateway)

	api := router.Group("/api")
	addOrderRoutes(api, orderHandler, webhookHandler)
	addAdminRoutes(api, adminHandler, cfg.AdminAPIKey)

	addPageRoutes(router)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
