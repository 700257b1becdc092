package handlers

import (
	"crypto/subtle"
	"errors"
	"log"
	"net/http"

	"retroart/internal/adapter/http/dto/request"
	"retroart/internal/adapter/http/dto/response"
	"retroart/internal/domain/entities"
	"retroart/internal/usecase"
	"retroart/pkg"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles the dashboard API: the shared-password login check,
// the order listing and the per-order workflow mutations.

type AdminHandler struct {
	usecase       usecase.IOrderUseCase
	adminPassword string
	adminAPIKey   string
}

func NewAdminHandler(uc usecase.IOrderUseCase, adminPassword, adminAPIKey string) *AdminHandler {
	return &AdminHandler{usecase: uc, adminPassword: adminPassword, adminAPIKey: adminAPIKey}
}

// Login compares the submitted password with the configured shared secret and,
// on a match, hands back the bearer credential the admin API expects.
// There is deliberately no lockout or rate limiting; this gate is a deterrent,
// not a security boundary.
func (h *AdminHandler) Login(c *gin.Context) {
	var payload request.AdminLoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if h.adminPassword == "" || subtle.ConstantTimeCompare([]byte(payload.Password), []byte(h.adminPassword)) != 1 {
		log.Printf("[admin][handler] login rejected")
		appErr := pkg.NewDomainErrorSimple("INVALID_PASSWORD", "Invalid password", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[admin][handler] login accepted")
	c.JSON(http.StatusOK, response.AdminLoginResponse{APIKey: h.adminAPIKey})
}

// ListOrders returns the full order collection, newest first.
func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders, err := h.usecase.ListOrders(c.Request.Context())
	if err != nil {
		log.Printf("[admin][handler] list failed err=%v", err)
		appErr := pkg.NewDomainError("FETCH_FAILED", "Failed to fetch orders", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[admin][handler] list success count=%d", len(orders))

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// UpdateWorkStatus moves a single order forward in the fulfillment workflow.
func (h *AdminHandler) UpdateWorkStatus(c *gin.Context) {
	id := c.Param("id")

	var payload request.UpdateWorkStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[admin][handler] update work status start order_id=%s status=%s", id, payload.WorkStatus)

	updated, err := h.usecase.UpdateWorkStatus(c.Request.Context(), id, entities.WorkStatus(payload.WorkStatus))
	if err != nil {
		log.Printf("[admin][handler] update work status failed order_id=%s err=%v", id, err)
		appErr := mapAdminOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[admin][handler] update work status success order_id=%s status=%s", id, updated.WorkStatus)

	c.JSON(http.StatusOK, response.FromOrder(updated))
}

// NotifyCompleted sends the "ready" mail for a completed order.
func (h *AdminHandler) NotifyCompleted(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[admin][handler] notify start order_id=%s", id)

	if err := h.usecase.NotifyCompleted(c.Request.Context(), id); err != nil {
		log.Printf("[admin][handler] notify failed order_id=%s err=%v", id, err)
		appErr := mapAdminOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapAdminOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkStatus):
		return pkg.NewDomainErrorSimple("INVALID_WORK_STATUS", "Invalid work status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotPaid):
		return pkg.NewDomainErrorSimple("ORDER_NOT_PAID", "Order has not been paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Work status can only move forward", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotCompleted):
		return pkg.NewDomainErrorSimple("ORDER_NOT_COMPLETED", "Order is not completed yet", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
