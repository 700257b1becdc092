package routes

import (
	"retroart/internal/adapter/http/handlers"
	"retroart/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathSubmitOrder = "/submit-order"
	PathAdmin       = "/admin"
	PathWebhook     = "/webhook"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, webhookHandler *handlers.WebhookHandler) {
	rg.POST(PathSubmitOrder, orderHandler.SubmitOrder)

	webhook := rg.Group(PathWebhook)
	{
		webhook.POST("/razorpay", webhookHandler.HandleRazorpay)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, adminHandler *handlers.AdminHandler, apiKey string) {
	// Login sits outside the guarded group; it is how the dashboard obtains
	// its credential in the first place.
	rg.POST(PathAdmin+"/login", adminHandler.Login)

	admin := rg.Group(PathAdmin, middleware.RequireAPIKey(apiKey))
	{
		admin.GET("/orders", adminHandler.ListOrders)
		admin.PUT("/orders/:id", adminHandler.UpdateWorkStatus)
		admin.POST("/orders/:id/notify", adminHandler.NotifyCompleted)
	}
}
