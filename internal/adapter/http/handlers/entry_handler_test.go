package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"taller_jaison/internal/adapter/http/handlers/mocks"
	"taller_jaison/internal/domain/receipt"
	"taller_jaison/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestEntryHandler_Entry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *EntryHandler) *gin.Engine {
		r := gin.New()
		r.GET("/", h.Entry)
		return r
	}

	t.Run("guest mode never touches orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIServiceOrderUseCase(ctrl)
		receipts := mocks.NewMockIReceiptUseCase(ctrl)
		receipts.EXPECT().OpenShared("tok").Return(usecase.ReceiptDocument{View: receipt.View{OrderID: "ord_1"}}, nil)

		w := doJSON(newRouter(NewEntryHandler(orders, receipts)), http.MethodGet, "/?r=tok", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got["mode"] != ModeGuest {
			t.Fatalf("expected guest mode, got %s", w.Body.String())
		}
	})

	t.Run("invalid link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIServiceOrderUseCase(ctrl)
		receipts := mocks.NewMockIReceiptUseCase(ctrl)
		receipts.EXPECT().OpenShared("junk").Return(usecase.ReceiptDocument{}, receipt.ErrInvalidReceiptToken)

		w := doJSON(newRouter(NewEntryHandler(orders, receipts)), http.MethodGet, "/?r=junk", "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("dashboard", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIServiceOrderUseCase(ctrl)
		receipts := mocks.NewMockIReceiptUseCase(ctrl)
		orders.EXPECT().Stats(gomock.Any()).Return(usecase.OrderStats{Active: 1, Total: 1}, nil)
		orders.EXPECT().List(gomock.Any(), usecase.OrderFilterActive, "").Return([]usecase.OrderDetails{{Order: sampleOrder()}}, nil)

		w := doJSON(newRouter(NewEntryHandler(orders, receipts)), http.MethodGet, "/?r=", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got struct {
			Mode   string           `json:"mode"`
			Orders []map[string]any `json:"orders"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got.Mode != ModeDashboard || len(got.Orders) != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestCatalogHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewCatalogHandler()
	r := gin.New()
	r.GET("/parts", h.InspectionParts)
	r.GET("/services", h.Services)
	r.GET("/methods", h.PaymentMethods)
	r.GET("/statuses", h.Statuses)

	var parts []map[string]any
	_ = json.Unmarshal(doJSON(r, http.MethodGet, "/parts", "").Body.Bytes(), &parts)
	if len(parts) != 37 || parts[0]["label"] != "Bonete" {
		t.Fatalf("unexpected parts: %v", parts)
	}

	var methods []string
	_ = json.Unmarshal(doJSON(r, http.MethodGet, "/methods", "").Body.Bytes(), &methods)
	if len(methods) != 5 {
		t.Fatalf("expected 5 methods, got %v", methods)
	}

	var statuses []map[string]any
	_ = json.Unmarshal(doJSON(r, http.MethodGet, "/statuses", "").Body.Bytes(), &statuses)
	if len(statuses) != 6 || statuses[0]["value"] != "recibido" {
		t.Fatalf("unexpected statuses: %v", statuses)
	}

	var services []string
	_ = json.Unmarshal(doJSON(r, http.MethodGet, "/services", "").Body.Bytes(), &services)
	if len(services) == 0 {
		t.Fatalf("expected services")
	}
}
