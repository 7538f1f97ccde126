package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"taller_jaison/internal/adapter/http/handlers/mocks"
	"taller_jaison/internal/domain/entities"
	"taller_jaison/internal/domain/ledger"
	"taller_jaison/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newOrderRouter(h *OrderHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/orders", h.RegisterOrder)
	r.GET("/v1/orders", h.ListOrders)
	r.GET("/v1/orders/stats", h.Stats)
	r.GET("/v1/orders/:id", h.GetOrder)
	r.PATCH("/v1/orders/:id/status", h.SetStatus)
	r.PATCH("/v1/orders/:id/notes", h.UpdateNotes)
	r.POST("/v1/orders/:id/payments", h.AddPayment)
	r.DELETE("/v1/orders/:id", h.DeleteOrder)
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleOrder() entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:        "ord_1",
		ClientID:  "cli_1",
		VehicleID: "veh_1",
		Status:    entities.StatusRecibido,
		Items:     []entities.LineItem{{Description: "Frenos", Price: decimal.NewFromInt(100)}},
		Subtotal:  decimal.NewFromInt(100),
		Tax:       decimal.RequireFromString("11.5"),
		Total:     decimal.RequireFromString("111.5"),
		ApplyIVU:  true,
	}
}

func TestOrderHandler_RegisterOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)

		w := doJSON(newOrderRouter(NewOrderHandler(uc)), http.MethodPost, "/v1/orders", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		uc.EXPECT().RegisterOrder(gomock.Any(), gomock.Any()).Return(entities.ServiceOrder{}, usecase.ErrInvalidClientDraft)

		w := doJSON(newOrderRouter(NewOrderHandler(uc)), http.MethodPost, "/v1/orders", `{"vehicle":{"plate":"abc123"}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("client not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		uc.EXPECT().RegisterOrder(gomock.Any(), gomock.Any()).Return(entities.ServiceOrder{}, usecase.ErrClientNotFound)

		w := doJSON(newOrderRouter(NewOrderHandler(uc)), http.MethodPost, "/v1/orders", `{"client_id":"cli_x","vehicle_id":"veh_x"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		uc.EXPECT().
			RegisterOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, cmd usecase.RegisterOrderCommand) (entities.ServiceOrder, error) {
				if cmd.ClientDraft.Name != "Ana" || cmd.VehicleDraft.Plate != "abc123" || len(cmd.Items) != 1 {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return sampleOrder(), nil
			})

		body := `{"client":{"name":"Ana"},"vehicle":{"plate":"abc123"},"apply_ivu":true,"items":[{"description":"Frenos","price":100}]}`
		w := doJSON(newOrderRouter(NewOrderHandler(uc)), http.MethodPost, "/v1/orders", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var got map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got["id"] != "ord_1" || got["total"] != "111.50" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestOrderHandler_ListOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)

		w := doJSON(newOrderRouter(NewOrderHandler(uc)), http.MethodGet, "/v1/orders?filter=archived", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("default filter is active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		uc.EXPECT().List(gomock.Any(), usecase.OrderFilterActive, "abc").Return([]usecase.OrderDetails{{Order: sampleOrder()}}, nil)

		w := doJSON(newOrderRouter(NewOrderHandler(uc)), http.MethodGet, "/v1/orders?q=abc", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if len(got) != 1 || got[0]["client_found"] != false {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		uc.EXPECT().List(gomock.Any(), usecase.OrderFilterHistory, "").Return(nil, errors.New("boom"))

		w := doJSON(newOrderRouter(NewOrderHandler(uc)), http.MethodGet, "/v1/orders?filter=history", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestOrderHandler_Stats(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIServiceOrderUseCase(ctrl)
	uc.EXPECT().Stats(gomock.Any()).Return(usecase.OrderStats{Active: 2, Ready: 1, Total: 5}, nil)

	w := doJSON(newOrderRouter(NewOrderHandler(uc)), http.MethodGet, "/v1/orders/stats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != `{"active":2,"ready":1,"total":5}` {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestOrderHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		uc.EXPECT().GetDetails(gomock.Any(), "ord_x").Return(usecase.OrderDetails{}, usecase.ErrOrderNotFound)

		w := doJSON(newOrderRouter(NewOrderHandler(uc)), http.MethodGet, "/v1/orders/ord_x", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		uc.EXPECT().GetDetails(gomock.Any(), "ord_1").Return(usecase.OrderDetails{
			Order:       sampleOrder(),
			Client:      entities.Client{ID: "cli_1", Name: "Ana"},
			ClientFound: true,
			Balance:     decimal.RequireFromString("111.5"),
		}, nil)

		w := doJSON(newOrderRouter(NewOrderHandler(uc)), http.MethodGet, "/v1/orders/ord_1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got["balance"] != "111.50" || got["client"] == nil || got["vehicle"] != nil {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestOrderHandler_SetStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown status is rejected before the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)

		w := doJSON(newOrderRouter(NewOrderHandler(uc)), http.MethodPatch, "/v1/orders/ord_1/status", `{"status":"archivado"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)

		w := doJSON(newOrderRouter(NewOrderHandler(uc)), http.MethodPatch, "/v1/orders/ord_1/status", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		updated := sampleOrder()
		updated.Status = entities.StatusEntregado
		uc.EXPECT().SetStatus(gomock.Any(), "ord_1", entities.StatusEntregado).Return(updated, nil)

		w := doJSON(newOrderRouter(NewOrderHandler(uc)), http.MethodPatch, "/v1/orders/ord_1/status", `{"status":"Entregado"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_UpdateNotes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIServiceOrderUseCase(ctrl)
	uc.EXPECT().UpdateNotes(gomock.Any(), "ord_1", "cambio de pastillas").Return(sampleOrder(), nil)

	w := doJSON(newOrderRouter(NewOrderHandler(uc)), http.MethodPatch, "/v1/orders/ord_1/notes", `{"service_performed_notes":"cambio de pastillas"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestOrderHandler_AddPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)

		w := doJSON(newOrderRouter(NewOrderHandler(uc)), http.MethodPost, "/v1/orders/ord_1/payments", `{"type":"full"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		uc.EXPECT().AddPayment(gomock.Any(), "ord_1", gomock.Any()).Return(entities.ServiceOrder{}, ledger.ErrInvalidAmount)

		w := doJSON(newOrderRouter(NewOrderHandler(uc)), http.MethodPost, "/v1/orders/ord_1/payments", `{"amount":0,"method":"Efectivo","type":"partial"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		uc.EXPECT().
			AddPayment(gomock.Any(), "ord_1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, cmd usecase.AddPaymentCommand) (entities.ServiceOrder, error) {
				if cmd.Amount != nil || cmd.Kind != entities.PaymentKindFull || cmd.Method != entities.PaymentMethodAthMovil {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				o := sampleOrder()
				o.IsPaid = true
				return o, nil
			})

		w := doJSON(newOrderRouter(NewOrderHandler(uc)), http.MethodPost, "/v1/orders/ord_1/payments", `{"method":"Ath Móvil","type":"full"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestOrderHandler_DeleteOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		uc.EXPECT().Delete(gomock.Any(), "ord_x").Return(usecase.ErrOrderNotFound)

		w := doJSON(newOrderRouter(NewOrderHandler(uc)), http.MethodDelete, "/v1/orders/ord_x", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		uc.EXPECT().Delete(gomock.Any(), "ord_1").Return(nil)

		w := doJSON(newOrderRouter(NewOrderHandler(uc)), http.MethodDelete, "/v1/orders/ord_1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestMapOrderError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidOrderID, http.StatusBadRequest},
		{entities.ErrInvalidLineItem, http.StatusBadRequest},
		{entities.ErrInvalidInspectionPart, http.StatusBadRequest},
		{entities.ErrInvalidStatus, http.StatusBadRequest},
		{entities.ErrInvalidPaymentMethod, http.StatusUnprocessableEntity},
		{entities.ErrInvalidPaymentKind, http.StatusUnprocessableEntity},
		{usecase.ErrVehicleNotFound, http.StatusNotFound},
		{errors.New("x"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapOrderError(tc.err).HTTPStatus; got != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, got)
		}
	}
}
