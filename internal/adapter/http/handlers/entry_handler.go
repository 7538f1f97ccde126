package handlers

import (
	"net/http"

	response "taller_jaison/internal/adapter/http/dto/response"
	"taller_jaison/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	ModeGuest     = "guest"
	ModeDashboard = "dashboard"
)

// EntryHandler serves the entry URL. A non-empty receipt token in the query
// switches to guest mode, which only decodes the token and never touches storage.
type EntryHandler struct {
	orders   usecase.IServiceOrderUseCase
	receipts usecase.IReceiptUseCase
}

func NewEntryHandler(orders usecase.IServiceOrderUseCase, receipts usecase.IReceiptUseCase) *EntryHandler {
	return &EntryHandler{orders: orders, receipts: receipts}
}

// Entry godoc
// @Summary      Entry point
// @Description  With ?r=<token> returns the shared receipt (guest mode); otherwise the dashboard.
// @Tags         entry
// @Produce      json
// @Param        r    query     string  false  "Receipt token"
// @Success      200  {object}  response.DashboardResponse
// @Failure      422  {object}  pkg.HTTPError
// @Router       / [get]
func (h *EntryHandler) Entry(c *gin.Context) {
	if token := c.Query(ReceiptTokenParam); token != "" {
		doc, err := h.receipts.OpenShared(token)
		if err != nil {
			appErr := mapReceiptError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.GuestReceiptResponse{Mode: ModeGuest, Receipt: response.FromReceipt(doc)})
		return
	}

	ctx := c.Request.Context()
	stats, err := h.orders.Stats(ctx)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	active, err := h.orders.List(ctx, usecase.OrderFilterActive, "")
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.DashboardResponse{
		Mode:   ModeDashboard,
		Stats:  response.FromOrderStats(stats),
		Orders: response.FromOrderDetailsList(active),
	})
}
