package handlers

import (
	"errors"
	"net/http"

	request "taller_jaison/internal/adapter/http/dto/request"
	response "taller_jaison/internal/adapter/http/dto/response"
	"taller_jaison/internal/domain/entities"
	"taller_jaison/internal/domain/ledger"
	"taller_jaison/internal/usecase"
	"taller_jaison/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload   = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errInvalidStatusPayload  = pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid status payload", http.StatusBadRequest)
	errInvalidNotesPayload   = pkg.NewDomainErrorSimple("INVALID_NOTES_INPUT", "Invalid notes payload", http.StatusBadRequest)
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT", "Invalid payment payload", http.StatusBadRequest)
)

// OrderHandler serves service order intake, lifecycle and payments.
type OrderHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewOrderHandler(uc usecase.IServiceOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// RegisterOrder godoc
// @Summary      Register a service order
// @Description  Registers an order for an existing or new client and vehicle.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        payload  body      request.RegisterOrderRequest  true  "Intake form"
// @Success      201      {object}  response.OrderResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /orders [post]
func (h *OrderHandler) RegisterOrder(c *gin.Context) {
	var payload request.RegisterOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.RegisterOrder(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// ListOrders godoc
// @Summary      List service orders
// @Tags         orders
// @Produce      json
// @Param        filter  query     string  false  "all, active, ready or history (default active)"
// @Param        q       query     string  false  "Client name or plate"
// @Success      200     {array}   response.OrderDetailsResponse
// @Failure      400     {object}  pkg.HTTPError
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	filter, err := usecase.ParseOrderFilter(c.Query("filter"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	list, err := h.usecase.List(c.Request.Context(), filter, c.Query("q"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderDetailsList(list))
}

// Stats godoc
// @Summary      Dashboard counters
// @Tags         orders
// @Produce      json
// @Success      200  {object}  response.OrderStatsResponse
// @Router       /orders/stats [get]
func (h *OrderHandler) Stats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrderStats(stats))
}

// GetOrder godoc
// @Summary      Get a service order with its client and vehicle
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.OrderDetailsResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	details, err := h.usecase.GetDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrderDetails(details))
}

// SetStatus godoc
// @Summary      Move an order to another status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true  "Order ID"
// @Param        payload  body      request.StatusRequest  true  "New status"
// @Success      200      {object}  response.OrderResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /orders/{id}/status [patch]
func (h *OrderHandler) SetStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}

	status, err := entities.ParseServiceStatus(payload.Status)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.usecase.SetStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// UpdateNotes godoc
// @Summary      Update the work-performed notes
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id       path      string                true  "Order ID"
// @Param        payload  body      request.NotesRequest  true  "Notes"
// @Success      200      {object}  response.OrderResponse
// @Failure      404      {object}  pkg.HTTPError
// @Router       /orders/{id}/notes [patch]
func (h *OrderHandler) UpdateNotes(c *gin.Context) {
	var payload request.NotesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNotesPayload.HTTPStatus, errInvalidNotesPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.UpdateNotes(c.Request.Context(), c.Param("id"), payload.ServicePerformedNotes)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// AddPayment godoc
// @Summary      Register a payment
// @Description  Appends a payment to the ledger. With type "full" and no amount the outstanding balance is charged.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Order ID"
// @Param        payload  body      request.PaymentRequest  true  "Payment"
// @Success      201      {object}  response.OrderResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /orders/{id}/payments [post]
func (h *OrderHandler) AddPayment(c *gin.Context) {
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.AddPayment(c.Request.Context(), c.Param("id"), payload.ToCommand())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// DeleteOrder godoc
// @Summary      Delete a service order
// @Tags         orders
// @Param        id   path  string  true  "Order ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidClientID),
		errors.Is(err, usecase.ErrInvalidClientDraft),
		errors.Is(err, usecase.ErrInvalidVehicleDraft),
		errors.Is(err, usecase.ErrInvalidOrderFilter),
		errors.Is(err, entities.ErrInvalidLineItem),
		errors.Is(err, entities.ErrInvalidInspectionPart):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidStatus):
		return pkg.NewDomainError("INVALID_STATUS", "Unknown service status", err, http.StatusBadRequest)
	case errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, entities.ErrInvalidPaymentMethod),
		errors.Is(err, entities.ErrInvalidPaymentKind):
		return pkg.NewDomainError("INVALID_PAYMENT", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found in the client's garage", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
