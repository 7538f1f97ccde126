package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"taller_jaison/internal/adapter/http/handlers"
	"taller_jaison/internal/adapter/http/handlers/mocks"
	"taller_jaison/internal/adapter/persistence/repository"
	"taller_jaison/internal/domain/entities"
	"taller_jaison/internal/infrastructure/config"
	"taller_jaison/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type countingFlusher struct {
	calls atomic.Int32
	err   error
}

func (f *countingFlusher) Flush(context.Context) error {
	f.calls.Add(1)
	return f.err
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
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

func mockedHandlers(ctrl *gomock.Controller) (Handlers, *mocks.MockIServiceOrderUseCase) {
	orders := mocks.NewMockIServiceOrderUseCase(ctrl)
	receipts := mocks.NewMockIReceiptUseCase(ctrl)
	clients := mocks.NewMockIClientUseCase(ctrl)
	return Handlers{
		Entry:    handlers.NewEntryHandler(orders, receipts),
		Catalog:  handlers.NewCatalogHandler(),
		Clients:  handlers.NewClientHandler(clients),
		Orders:   handlers.NewOrderHandler(orders),
		Receipts: handlers.NewReceiptHandler(receipts),
	}, orders
}

func TestNewRouter_Ping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, _ := mockedHandlers(ctrl)
	store := &countingFlusher{}

	w := serve(NewRouter(h, store, zap.NewNop()), http.MethodGet, "/v1/ping", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "pong") {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
	if w.Header().Get(HeaderRequestID) == "" {
		t.Fatalf("expected a request id header")
	}
	if store.calls.Load() != 0 {
		t.Fatalf("GET must not flush")
	}
}

func TestNewRouter_RequestIDIsPropagated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, _ := mockedHandlers(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
	req.Header.Set(HeaderRequestID, "req-1")
	w := httptest.NewRecorder()
	NewRouter(h, &countingFlusher{}, zap.NewNop()).ServeHTTP(w, req)
	if w.Header().Get(HeaderRequestID) != "req-1" {
		t.Fatalf("expected req-1, got %q", w.Header().Get(HeaderRequestID))
	}
}

func TestNewRouter_FlushAfterMutation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("successful mutation flushes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, orders := mockedHandlers(ctrl)
		orders.EXPECT().Delete(gomock.Any(), "ord_1").Return(nil)
		store := &countingFlusher{}

		w := serve(NewRouter(h, store, zap.NewNop()), http.MethodDelete, "/v1/orders/ord_1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if store.calls.Load() != 1 {
			t.Fatalf("expected one flush, got %d", store.calls.Load())
		}
	})

	t.Run("failed mutation does not flush", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, orders := mockedHandlers(ctrl)
		orders.EXPECT().Delete(gomock.Any(), "ord_x").Return(usecase.ErrOrderNotFound)
		store := &countingFlusher{}

		serve(NewRouter(h, store, zap.NewNop()), http.MethodDelete, "/v1/orders/ord_x", "")
		if store.calls.Load() != 0 {
			t.Fatalf("expected no flush, got %d", store.calls.Load())
		}
	})

	t.Run("flush failure keeps the response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, orders := mockedHandlers(ctrl)
		orders.EXPECT().UpdateNotes(gomock.Any(), "ord_1", "ok").Return(entities.ServiceOrder{ID: "ord_1"}, nil)
		store := &countingFlusher{err: errors.New("disk full")}

		w := serve(NewRouter(h, store, zap.NewNop()), http.MethodPatch, "/v1/orders/ord_1/notes", `{"service_performed_notes":"ok"}`)
		if w.Code != http.StatusOK || store.calls.Load() != 1 {
			t.Fatalf("unexpected result %d flushes=%d", w.Code, store.calls.Load())
		}
	})
}

func TestNewRouter_Recovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, orders := mockedHandlers(ctrl)
	orders.EXPECT().Stats(gomock.Any()).DoAndReturn(func(context.Context) (usecase.OrderStats, error) {
		panic("boom")
	})

	w := serve(NewRouter(h, &countingFlusher{}, zap.NewNop()), http.MethodGet, "/v1/orders/stats", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func fileConfig(dir string) config.Config {
	return config.Config{
		Port:            "0",
		AppEnv:          "test",
		StoreBackend:    config.StoreBackendFile,
		DataDir:         dir,
		NotifyQueueSize: 10,
		NotifyTimeout:   time.Second,
		ReceiptBaseURL:  "https://taller.example",
		FlushSchedule:   "off",
		ShutdownTimeout: 2 * time.Second,
	}
}

func TestApp_EndToEndWithFileStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	ctx := context.Background()

	a, err := newApp(ctx, fileConfig(dir), zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a.start(ctx)
	router := NewRouter(a.handlers, a.registry, zap.NewNop())

	body := `{"client":{"name":"Ana","phone":"7875551234"},"vehicle":{"plate":"abc123","brand":"Honda","model":"Civic","year":"2018"},
		"description":"frenos","apply_ivu":true,"items":[{"description":"Frenos","price":"100"}],"damaged_parts":["part_0"]}`
	w := serve(router, http.MethodPost, "/v1/orders", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d %s", w.Code, w.Body.String())
	}
	var created struct {
		ID    string `json:"id"`
		Total string `json:"total"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &created)
	if created.Total != "111.50" {
		t.Fatalf("expected total 111.50, got %s", created.Total)
	}
	if _, err := os.Stat(filepath.Join(dir, repository.CollectionOrders+".json")); err != nil {
		t.Fatalf("expected orders to be flushed: %v", err)
	}

	w = serve(router, http.MethodPost, "/v1/orders/"+created.ID+"/payments", `{"method":"Efectivo","type":"full"}`)
	if w.Code != http.StatusCreated || !strings.Contains(w.Body.String(), `"is_paid":true`) {
		t.Fatalf("unexpected payment response %d %s", w.Code, w.Body.String())
	}

	w = serve(router, http.MethodGet, "/v1/orders/"+created.ID+"/share", "")
	var links struct {
		Token string `json:"token"`
		URL   string `json:"url"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &links)
	if w.Code != http.StatusOK || !strings.HasPrefix(links.URL, "https://taller.example") {
		t.Fatalf("unexpected share response %d %s", w.Code, w.Body.String())
	}

	w = serve(router, http.MethodGet, "/?r="+links.Token, "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"mode":"guest"`) || !strings.Contains(w.Body.String(), `"fully_paid":true`) {
		t.Fatalf("unexpected guest response %d %s", w.Code, w.Body.String())
	}

	w = serve(router, http.MethodPost, "/v1/orders/"+created.ID+"/share/sms", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without messaging, got %d", w.Code)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := a.shutdown(shutdownCtx); err != nil {
		t.Fatalf("unexpected shutdown error: %v", err)
	}

	reloaded := repository.NewRegistry(repository.NewFileDocumentStore(dir), zap.NewNop())
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("unexpected reload error: %v", err)
	}
	list, _ := reloaded.Orders().List(ctx)
	if len(list) != 1 || !list[0].IsPaid {
		t.Fatalf("expected one paid order after reload, got %+v", list)
	}
}

func TestNewApp_CorruptStore(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, repository.CollectionOrders+".json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := newApp(context.Background(), fileConfig(dir), zap.NewNop())
	if !errors.Is(err, repository.ErrCorruptCollection) {
		t.Fatalf("expected ErrCorruptCollection, got %v", err)
	}
}
