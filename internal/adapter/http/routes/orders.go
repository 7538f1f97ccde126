package routes

import (
	"net/http"

	"taller_jaison/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog  = "/catalog"
	PathClients  = "/clients"
	PathOrders   = "/orders"
	PathReceipts = "/receipts"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/inspection-parts", h.InspectionParts)
		catalog.GET("/services", h.Services)
		catalog.GET("/payment-methods", h.PaymentMethods)
		catalog.GET("/statuses", h.Statuses)
	}
}

func addClientRoutes(rg *gin.RouterGroup, h *handlers.ClientHandler) {
	clients := rg.Group(PathClients)
	{
		clients.GET("", h.ListClients)
		clients.GET("/:id", h.GetClient)
	}
}

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, receiptHandler *handlers.ReceiptHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.RegisterOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/stats", orderHandler.Stats)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id/status", orderHandler.SetStatus)
		orders.PATCH("/:id/notes", orderHandler.UpdateNotes)
		orders.POST("/:id/payments", orderHandler.AddPayment)
		orders.DELETE("/:id", orderHandler.DeleteOrder)

		orders.GET("/:id/receipt", receiptHandler.GetReceipt)
		orders.GET("/:id/share", receiptHandler.GetShareLinks)
		orders.POST("/:id/share/:channel", receiptHandler.SendShare)
	}

	receipts := rg.Group(PathReceipts)
	{
		receipts.GET("/shared", receiptHandler.OpenShared)
	}
}
