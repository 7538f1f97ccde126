package handlers

import (
	"errors"
	"net/http"

	response "taller_jaison/internal/adapter/http/dto/response"
	"taller_jaison/internal/domain/entities"
	"taller_jaison/internal/usecase"
	"taller_jaison/pkg"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

// ListClients godoc
// @Summary      Search clients
// @Description  Without q every client is listed. With q the name or phone is matched; a blank q matches nothing.
// @Tags         clients
// @Produce      json
// @Param        q    query     string  false  "Name or phone"
// @Success      200  {array}   response.ClientResponse
// @Router       /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	var (
		clients []entities.Client
		err     error
	)
	if q, ok := c.GetQuery("q"); ok {
		clients, err = h.usecase.Search(c.Request.Context(), q)
	} else {
		clients, err = h.usecase.List(c.Request.Context())
	}
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromClients(clients))
}

// GetClient godoc
// @Summary      Get a client with its garage
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client ID"
// @Success      200  {object}  response.ClientResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

func mapClientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
