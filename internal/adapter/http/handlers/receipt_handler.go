package handlers

import (
	"errors"
	"net/http"

	response "taller_jaison/internal/adapter/http/dto/response"
	"taller_jaison/internal/domain/receipt"
	"taller_jaison/internal/infrastructure/messaging"
	"taller_jaison/internal/usecase"
	"taller_jaison/internal/usecase/interfaces"
	"taller_jaison/pkg"

	"github.com/gin-gonic/gin"
)

// ReceiptTokenParam is the query parameter carrying a shared receipt.
const ReceiptTokenParam = "r"

// ReceiptHandler renders receipts and builds or sends share links.
type ReceiptHandler struct {
	usecase usecase.IReceiptUseCase
}

func NewReceiptHandler(uc usecase.IReceiptUseCase) *ReceiptHandler {
	return &ReceiptHandler{usecase: uc}
}

// GetReceipt godoc
// @Summary      Render the receipt of an order
// @Tags         receipts
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.ReceiptResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id}/receipt [get]
func (h *ReceiptHandler) GetReceipt(c *gin.Context) {
	doc, err := h.usecase.Receipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapReceiptError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReceipt(doc))
}

// GetShareLinks godoc
// @Summary      Build the shareable receipt link
// @Description  Returns the self-contained link plus WhatsApp, SMS and mailto variants.
// @Tags         receipts
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.ShareLinksResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id}/share [get]
func (h *ReceiptHandler) GetShareLinks(c *gin.Context) {
	links, err := h.usecase.ShareLink(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapReceiptError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromShareLinks(links))
}

// SendShare godoc
// @Summary      Send the receipt link to the client
// @Tags         receipts
// @Produce      json
// @Param        id       path      string  true  "Order ID"
// @Param        channel  path      string  true  "sms or whatsapp"
// @Success      202      {object}  response.SentShareResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Failure      503      {object}  pkg.HTTPError
// @Router       /orders/{id}/share/{channel} [post]
func (h *ReceiptHandler) SendShare(c *gin.Context) {
	sent, err := h.usecase.SendShare(c.Request.Context(), c.Param("id"), interfaces.MessageChannel(c.Param("channel")))
	if err != nil {
		appErr := mapReceiptError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusAccepted, response.FromSentShare(sent))
}

// OpenShared godoc
// @Summary      Open a shared receipt link
// @Description  Decodes the receipt carried by the link. No stored data is read.
// @Tags         receipts
// @Produce      json
// @Param        r    query     string  true  "Receipt token"
// @Success      200  {object}  response.ReceiptResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /receipts/shared [get]
func (h *ReceiptHandler) OpenShared(c *gin.Context) {
	doc, err := h.usecase.OpenShared(c.Query(ReceiptTokenParam))
	if err != nil {
		appErr := mapReceiptError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReceipt(doc))
}

func mapReceiptError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, receipt.ErrMissingReceiptToken):
		return pkg.NewDomainErrorSimple("MISSING_RECEIPT_LINK", "Receipt link is missing", http.StatusBadRequest)
	case errors.Is(err, receipt.ErrInvalidReceiptToken), errors.Is(err, receipt.ErrIncompleteSnapshot):
		return pkg.NewDomainError("INVALID_RECEIPT_LINK", "Receipt link is invalid", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidShareChannel):
		return pkg.NewDomainErrorSimple("INVALID_SHARE_CHANNEL", "Channel must be sms or whatsapp", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingClientPhone), errors.Is(err, messaging.ErrInvalidPhoneNumber):
		return pkg.NewDomainError("INVALID_CLIENT_PHONE", "Client has no usable phone number", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrMessagingNotConfigured), errors.Is(err, messaging.ErrSenderNotConfigured):
		return pkg.NewDomainError("MESSAGING_NOT_CONFIGURED", "Messaging is not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, messaging.ErrMessageSendFailed):
		return pkg.NewDomainError("MESSAGE_SEND_FAILED", "The message could not be sent", err, http.StatusBadGateway)
	default:
		return mapOrderError(err)
	}
}
