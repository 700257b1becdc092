package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"retroart/internal/adapter/http/handlers/mocks"
	"retroart/internal/adapter/http/middleware"
	"retroart/internal/domain/entities"
	"retroart/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAdminHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewAdminHandler(uc, "s3cret", "k1")

		r := gin.New()
		r.POST("/api/admin/login", h.Login)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewAdminHandler(uc, "s3cret", "k1")

		r := gin.New()
		r.POST("/api/admin/login", h.Login)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewBufferString(`{"password":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("no configured password rejects everything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewAdminHandler(uc, "", "k1")

		r := gin.New()
		r.POST("/api/admin/login", h.Login)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewBufferString(`{"password":"anything"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("correct password returns the api key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewAdminHandler(uc, "s3cret", "k1")

		r := gin.New()
		r.POST("/api/admin/login", h.Login)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewBufferString(`{"password":"s3cret"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if got["apiKey"] != "k1" {
			t.Fatalf("expected the configured api key, got %q", got["apiKey"])
		}
	})

	t.Run("login credential opens the guarded listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().ListOrders(gomock.Any()).Return(nil, nil)
		h := NewAdminHandler(uc, "s3cret", "separate-api-key")

		r := gin.New()
		r.POST("/api/admin/login", h.Login)
		r.GET("/api/admin/orders", middleware.RequireAPIKey("separate-api-key"), h.ListOrders)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewBufferString(`{"password":"s3cret"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var login map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &login); err != nil {
			t.Fatalf("unmarshal login response: %v", err)
		}

		// The dashboard stores exactly what login returned and sends it as
		// the bearer token on every admin call.
		listReq := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
		listReq.Header.Set("Authorization", "Bearer "+login["apiKey"])
		listW := httptest.NewRecorder()
		r.ServeHTTP(listW, listReq)

		if listW.Code != http.StatusOK {
			t.Fatalf("orders listing after successful login responded %d", listW.Code)
		}
	})
}

func TestAdminHandler_ListOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("usecase failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().ListOrders(gomock.Any()).Return(nil, errors.New("scan failed"))
		h := NewAdminHandler(uc, "s3cret", "k1")

		r := gin.New()
		r.GET("/api/admin/orders", h.ListOrders)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("empty list serializes as []", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().ListOrders(gomock.Any()).Return(nil, nil)
		h := NewAdminHandler(uc, "s3cret", "k1")

		r := gin.New()
		r.GET("/api/admin/orders", h.ListOrders)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := bytes.TrimSpace(w.Body.Bytes()); string(got) != "[]" {
			t.Fatalf("expected empty array, got %s", got)
		}
	})

	t.Run("returns orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		now := time.Now().UTC()
		uc.EXPECT().ListOrders(gomock.Any()).Return([]entities.Order{
			{ID: "o-2", Email: "b@c.com", CreatedAt: now, PaymentStatus: entities.PaymentStatusPaid, WorkStatus: entities.WorkStatusInProgress},
			{ID: "o-1", Email: "a@b.com", CreatedAt: now.Add(-time.Hour), PaymentStatus: entities.PaymentStatusPending, WorkStatus: entities.WorkStatusPending},
		}, nil)
		h := NewAdminHandler(uc, "s3cret", "k1")

		r := gin.New()
		r.GET("/api/admin/orders", h.ListOrders)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 orders, got %d", len(got))
		}
		if got[0]["id"] != "o-2" || got[1]["id"] != "o-1" {
			t.Fatalf("order of results not preserved: %v", got)
		}
		if got[0]["paymentStatus"] != "paid" || got[0]["workStatus"] != "in-progress" {
			t.Fatalf("unexpected statuses: %v", got[0])
		}
	})
}

func TestAdminHandler_UpdateWorkStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *AdminHandler) *gin.Engine {
		r := gin.New()
		r.PUT("/api/admin/orders/:id", h.UpdateWorkStatus)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewAdminHandler(uc, "s3cret", "k1")
		r := newRouter(h)

		req := httptest.NewRequest(http.MethodPut, "/api/admin/orders/o-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase errors map to status codes", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			want int
		}{
			{"invalid status", usecase.ErrInvalidWorkStatus, http.StatusBadRequest},
			{"not found", usecase.ErrOrderNotFound, http.StatusNotFound},
			{"not paid", usecase.ErrOrderNotPaid, http.StatusConflict},
			{"backward transition", usecase.ErrInvalidTransition, http.StatusConflict},
			{"storage failure", errors.New("dynamo down"), http.StatusInternalServerError},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockIOrderUseCase(ctrl)
				uc.EXPECT().UpdateWorkStatus(gomock.Any(), "o-1", entities.WorkStatus("in-progress")).Return(entities.Order{}, tc.err)
				h := NewAdminHandler(uc, "s3cret", "k1")
				r := newRouter(h)

				req := httptest.NewRequest(http.MethodPut, "/api/admin/orders/o-1", bytes.NewBufferString(`{"workStatus":"in-progress"}`))
				req.Header.Set("Content-Type", "application/json")
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				if w.Code != tc.want {
					t.Fatalf("expected %d, got %d", tc.want, w.Code)
				}
			})
		}
	})

	t.Run("success returns updated order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().UpdateWorkStatus(gomock.Any(), "o-1", entities.WorkStatusCompleted).Return(entities.Order{
			ID:            "o-1",
			Email:         "a@b.com",
			CreatedAt:     time.Now().UTC(),
			PaymentStatus: entities.PaymentStatusPaid,
			WorkStatus:    entities.WorkStatusCompleted,
		}, nil)
		h := NewAdminHandler(uc, "s3cret", "k1")
		r := newRouter(h)

		req := httptest.NewRequest(http.MethodPut, "/api/admin/orders/o-1", bytes.NewBufferString(`{"workStatus":"completed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if got["workStatus"] != "completed" {
			t.Fatalf("expected completed, got %v", got["workStatus"])
		}
	})
}

func TestAdminHandler_NotifyCompleted(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("order not completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().NotifyCompleted(gomock.Any(), "o-1").Return(usecase.ErrOrderNotCompleted)
		h := NewAdminHandler(uc, "s3cret", "k1")

		r := gin.New()
		r.POST("/api/admin/orders/:id/notify", h.NotifyCompleted)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/orders/o-1/notify", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().NotifyCompleted(gomock.Any(), "o-1").Return(nil)
		h := NewAdminHandler(uc, "s3cret", "k1")

		r := gin.New()
		r.POST("/api/admin/orders/:id/notify", h.NotifyCompleted)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/orders/o-1/notify", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
