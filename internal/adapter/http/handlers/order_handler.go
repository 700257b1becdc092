package handlers

import (
	"errors"
	"log"
	"net/http"

	"retroart/internal/adapter/http/dto/response"
	"retroart/internal/usecase"
	"retroart/pkg"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles the public storefront submission.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// SubmitOrder accepts the landing page's multipart form (email + image),
// creates the order and returns the checkout parameters for the hosted
// payment widget.
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	email := c.PostForm("email")
	log.Printf("[order][handler] submit start email=%s", email)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		// Treated like a missing field, not a malformed request; the usecase
		// message mirrors what the form shows.
		appErr := pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Please provide both email and image", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("[order][handler] open upload failed email=%s err=%v", email, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "Failed to create order", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer file.Close()

	img := usecase.ImageUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
	}

	res, err := h.usecase.SubmitOrder(c.Request.Context(), email, img)
	if err != nil {
		log.Printf("[order][handler] submit failed email=%s err=%v", email, err)
		appErr := mapSubmitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] submit success order_id=%s provider_order_id=%s", res.Order.ID, res.ProviderOrderID)

	c.JSON(http.StatusOK, response.FromSubmitResult(res))
}

func mapSubmitError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingEmail), errors.Is(err, usecase.ErrMissingImage):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Please provide both email and image", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrImageTooLarge):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Image size should be less than 5MB", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Failed to create order", err, http.StatusInternalServerError)
	}
}
