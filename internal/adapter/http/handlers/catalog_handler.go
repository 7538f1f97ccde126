package handlers

import (
	"net/http"

	response "taller_jaison/internal/adapter/http/dto/response"
	"taller_jaison/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the fixed lists the intake and payment forms offer.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// InspectionParts godoc
// @Summary      Default inspection checklist
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  response.InspectionPartResponse
// @Router       /catalog/inspection-parts [get]
func (h *CatalogHandler) InspectionParts(c *gin.Context) {
	parts := entities.DefaultInspectionParts()
	out := make([]response.InspectionPartResponse, 0, len(parts))
	for _, p := range parts {
		out = append(out, response.InspectionPartResponse{ID: p.ID, Label: p.Label})
	}
	c.JSON(http.StatusOK, out)
}

// Services godoc
// @Summary      Common service quick-picks
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  string
// @Router       /catalog/services [get]
func (h *CatalogHandler) Services(c *gin.Context) {
	c.JSON(http.StatusOK, entities.CommonServices)
}

// PaymentMethods godoc
// @Summary      Accepted payment methods
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  string
// @Router       /catalog/payment-methods [get]
func (h *CatalogHandler) PaymentMethods(c *gin.Context) {
	c.JSON(http.StatusOK, entities.PaymentMethods())
}

// Statuses godoc
// @Summary      Service status pipeline
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  response.StatusResponse
// @Router       /catalog/statuses [get]
func (h *CatalogHandler) Statuses(c *gin.Context) {
	statuses := entities.AllStatuses()
	out := make([]response.StatusResponse, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, response.StatusResponse{Value: string(s), Label: s.Label(), Active: s.IsActive()})
	}
	c.JSON(http.StatusOK, out)
}
