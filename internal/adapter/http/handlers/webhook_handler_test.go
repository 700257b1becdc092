package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"retroart/internal/adapter/http/handlers/mocks"
	"retroart/internal/domain/entities"
	"retroart/internal/usecase"
	mock_interfaces "retroart/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWebhookHandler_HandleRazorpay(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *WebhookHandler) *gin.Engine {
		r := gin.New()
		r.POST("/api/webhook/razorpay", h.HandleRazorpay)
		return r
	}

	t.Run("invalid signature", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gw.EXPECT().VerifyWebhookSignature(gomock.Any(), "bad-sig").Return(false)
		h := NewWebhookHandler(uc, gw)
		r := newRouter(h)

		body := `{"event":"payment.captured","payload":{"payment":{"entity":{"order_id":"order_rzp1"}}}}`
		req := httptest.NewRequest(http.MethodPost, "/api/webhook/razorpay", bytes.NewBufferString(body))
		req.Header.Set(razorpaySignatureHeader, "bad-sig")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unsubscribed event is acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gw.EXPECT().VerifyWebhookSignature(gomock.Any(), "sig").Return(true)
		h := NewWebhookHandler(uc, gw)
		r := newRouter(h)

		body := `{"event":"payment.failed","payload":{}}`
		req := httptest.NewRequest(http.MethodPost, "/api/webhook/razorpay", bytes.NewBufferString(body))
		req.Header.Set(razorpaySignatureHeader, "sig")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("ignored")) {
			t.Fatalf("expected ignored status, got %s", w.Body.String())
		}
	})

	t.Run("payment.captured confirms payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gw.EXPECT().VerifyWebhookSignature(gomock.Any(), "sig").Return(true)
		uc.EXPECT().ConfirmPayment(gomock.Any(), "order_rzp1").Return(entities.Order{ID: "o-1", PaymentStatus: entities.PaymentStatusPaid}, nil)
		h := NewWebhookHandler(uc, gw)
		r := newRouter(h)

		body := `{"event":"payment.captured","payload":{"payment":{"entity":{"order_id":"order_rzp1"}}}}`
		req := httptest.NewRequest(http.MethodPost, "/api/webhook/razorpay", bytes.NewBufferString(body))
		req.Header.Set(razorpaySignatureHeader, "sig")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("order.paid uses the order entity id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gw.EXPECT().VerifyWebhookSignature(gomock.Any(), "sig").Return(true)
		uc.EXPECT().ConfirmPayment(gomock.Any(), "order_rzp2").Return(entities.Order{ID: "o-2"}, nil)
		h := NewWebhookHandler(uc, gw)
		r := newRouter(h)

		body := `{"event":"order.paid","payload":{"order":{"entity":{"id":"order_rzp2"}}}}`
		req := httptest.NewRequest(http.MethodPost, "/api/webhook/razorpay", bytes.NewBufferString(body))
		req.Header.Set(razorpaySignatureHeader, "sig")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown provider order id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gw.EXPECT().VerifyWebhookSignature(gomock.Any(), "sig").Return(true)
		uc.EXPECT().ConfirmPayment(gomock.Any(), "order_gone").Return(entities.Order{}, usecase.ErrOrderNotFound)
		h := NewWebhookHandler(uc, gw)
		r := newRouter(h)

		body := `{"event":"payment.captured","payload":{"payment":{"entity":{"order_id":"order_gone"}}}}`
		req := httptest.NewRequest(http.MethodPost, "/api/webhook/razorpay", bytes.NewBufferString(body))
		req.Header.Set(razorpaySignatureHeader, "sig")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("confirm failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gw.EXPECT().VerifyWebhookSignature(gomock.Any(), "sig").Return(true)
		uc.EXPECT().ConfirmPayment(gomock.Any(), "order_rzp1").Return(entities.Order{}, errors.New("dynamo down"))
		h := NewWebhookHandler(uc, gw)
		r := newRouter(h)

		body := `{"event":"payment.captured","payload":{"payment":{"entity":{"order_id":"order_rzp1"}}}}`
		req := httptest.NewRequest(http.MethodPost, "/api/webhook/razorpay", bytes.NewBufferString(body))
		req.Header.Set(razorpaySignatureHeader, "sig")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
