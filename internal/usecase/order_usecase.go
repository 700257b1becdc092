package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path"
	"strings"
	"time"

	"retroart/internal/domain/entities"
	"retroart/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMissingEmail         = errors.New("missing email")
	ErrMissingImage         = errors.New("missing image")
	ErrImageTooLarge        = errors.New("image too large")
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderNotPaid         = errors.New("order not paid")
	ErrOrderNotCompleted    = errors.New("order not completed")
	ErrInvalidWorkStatus    = errors.New("invalid work status")
	ErrInvalidTransition    = errors.New("invalid work status transition")
	ErrInvalidProviderOrder = errors.New("invalid provider order id")
)

// ImageUpload carries the customer's source image into SubmitOrder. Size is
// taken from the multipart header so the limit is enforced before the body is
// read.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// SubmitResult is everything the storefront needs to open the hosted checkout:
// the persisted order plus the provider checkout parameters.
type SubmitResult struct {
	Order           entities.Order
	ProviderOrderID string
	Amount          int64
	Currency        string
	KeyID           string
}

// IOrderUseCase exposes the order lifecycle.
//
//   - SubmitOrder: customer submission (image upload + provider order + persist)
//   - ListOrders / UpdateWorkStatus: admin dashboard operations
//   - ConfirmPayment: provider webhook flips paymentStatus to paid
//   - NotifyCompleted: "your retro art is ready" mail for completed orders

type IOrderUseCase interface {
	SubmitOrder(ctx context.Context, email string, image ImageUpload) (SubmitResult, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
	UpdateWorkStatus(ctx context.Context, id string, next entities.WorkStatus) (entities.Order, error)
	ConfirmPayment(ctx context.Context, providerOrderID string) (entities.Order, error)
	NotifyCompleted(ctx context.Context, id string) error
}

type OrderUseCase struct {
	repo    interfaces.IOrderRepository
	gateway interfaces.IPaymentGateway
	images  interfaces.IImageStore
	mailer  interfaces.IMailer

	amount   int64
	currency string
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, gateway interfaces.IPaymentGateway, images interfaces.IImageStore, mailer interfaces.IMailer, amount int64, currency string) *OrderUseCase {
	return &OrderUseCase{repo: repo, gateway: gateway, images: images, mailer: mailer, amount: amount, currency: currency}
}

func (u *OrderUseCase) SubmitOrder(ctx context.Context, email string, image ImageUpload) (SubmitResult, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return SubmitResult{}, ErrMissingEmail
	}
	if image.Body == nil {
		return SubmitResult{}, ErrMissingImage
	}
	if image.Size > entities.MaxImageSize {
		log.Printf("[order][usecase] image too large email=%s size=%d", email, image.Size)
		return SubmitResult{}, ErrImageTooLarge
	}

	id := uuid.NewString()
	key := id + strings.ToLower(path.Ext(image.Filename))
	contentType := image.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	log.Printf("[order][usecase] submit start order_id=%s email=%s size=%d", id, email, image.Size)
	imageURL, err := u.images.Upload(ctx, key, contentType, image.Body)
	if err != nil {
		log.Printf("[order][usecase] image upload failed order_id=%s err=%v", id, err)
		return SubmitResult{}, err
	}

	providerOrderID, err := u.gateway.CreateOrder(ctx, u.amount, u.currency, id)
	if err != nil {
		// The uploaded object stays behind; submission is re-triable and the
		// order was never persisted.
		log.Printf("[order][usecase] provider order failed order_id=%s err=%v", id, err)
		return SubmitResult{}, err
	}

	o := entities.Order{
		ID:              id,
		Email:           email,
		ImageURL:        imageURL,
		CreatedAt:       time.Now().UTC(),
		PaymentStatus:   entities.PaymentStatusPending,
		WorkStatus:      entities.WorkStatusPending,
		ProviderOrderID: providerOrderID,
	}
	created, err := u.repo.Create(ctx, o)
	if err != nil {
		log.Printf("[order][usecase] repository create failed order_id=%s err=%v", id, err)
		return SubmitResult{}, err
	}
	log.Printf("[order][usecase] submit success order_id=%s provider_order_id=%s", created.ID, providerOrderID)

	return SubmitResult{
		Order:           created,
		ProviderOrderID: providerOrderID,
		Amount:          u.amount,
		Currency:        u.currency,
		KeyID:           u.gateway.KeyID(),
	}, nil
}

func (u *OrderUseCase) ListOrders(ctx context.Context) ([]entities.Order, error) {
	return u.repo.List(ctx)
}

func (u *OrderUseCase) UpdateWorkStatus(ctx context.Context, id string, next entities.WorkStatus) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if !next.Valid() {
		return entities.Order{}, ErrInvalidWorkStatus
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if o.PaymentStatus != entities.PaymentStatusPaid {
		log.Printf("[order][usecase] work status refused, unpaid order_id=%s", id)
		return entities.Order{}, ErrOrderNotPaid
	}
	if !o.WorkStatus.CanTransitionTo(next) {
		log.Printf("[order][usecase] illegal transition order_id=%s from=%s to=%s", id, o.WorkStatus, next)
		return entities.Order{}, ErrInvalidTransition
	}

	updated, err := u.repo.UpdateWorkStatus(ctx, id, next)
	if err != nil {
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] work status updated order_id=%s status=%s", id, next)
	return updated, nil
}

func (u *OrderUseCase) ConfirmPayment(ctx context.Context, providerOrderID string) (entities.Order, error) {
	providerOrderID = strings.TrimSpace(providerOrderID)
	if providerOrderID == "" {
		return entities.Order{}, ErrInvalidProviderOrder
	}

	o, err := u.repo.GetByProviderOrderID(ctx, providerOrderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if o.PaymentStatus == entities.PaymentStatusPaid {
		// Webhook deliveries repeat; confirming twice is a no-op.
		return o, nil
	}

	updated, err := u.repo.UpdatePaymentStatus(ctx, o.ID, entities.PaymentStatusPaid)
	if err != nil {
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] payment confirmed order_id=%s provider_order_id=%s", o.ID, providerOrderID)
	return updated, nil
}

func (u *OrderUseCase) NotifyCompleted(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrOrderNotFound
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if o.ID == "" {
		return ErrOrderNotFound
	}
	if o.WorkStatus != entities.WorkStatusCompleted {
		return ErrOrderNotCompleted
	}

	subject := "Your Retro Art Is Ready!"
	body := fmt.Sprintf("Hi,\n\nYour retro art conversion is ready. Order reference: %s.\n\nThank you for ordering with Retro Art Conversion.\n", o.ID)
	if err := u.mailer.Send(ctx, o.Email, subject, body); err != nil {
		log.Printf("[order][usecase] notify failed order_id=%s err=%v", id, err)
		return err
	}
	log.Printf("[order][usecase] notify sent order_id=%s email=%s", id, o.Email)
	return nil
}
