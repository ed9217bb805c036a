package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"salonsage/internal/models/request_models"
	"salonsage/internal/services"
	"salonsage/pkg/utils"
)

type ClientsController struct {
	clientService services.ClientServiceInterface
}

func NewClientsController(clientService services.ClientServiceInterface) *ClientsController {
	return &ClientsController{
		clientService: clientService,
	}
}

// ListClients godoc
// @Summary List all clients
// @Tags Clients
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /clients [get]
func (cc *ClientsController) ListClients(c *gin.Context) {
	clients, err := cc.clientService.ListClients(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, clients, "Clients fetched successfully")
}

// GetClient godoc
// @Summary Get a client by id
// @Tags Clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /clients/{id} [get]
func (cc *ClientsController) GetClient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid client ID")
		return
	}

	client, err := cc.clientService.GetClient(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, client, "Client fetched successfully")
}

// CreateClient godoc
// @Summary Create a new client
// @Tags Clients
// @Accept json
// @Produce json
// @Param request body request_models.CreateClientRequest true "Client payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /clients [post]
func (cc *ClientsController) CreateClient(c *gin.Context) {
	var req request_models.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	client, err := cc.clientService.CreateClient(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, client, "Client created successfully")
}

// UpdateClient godoc
// @Summary Update a client
// @Tags Clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param request body request_models.UpdateClientRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /clients/{id} [put]
func (cc *ClientsController) UpdateClient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid client ID")
		return
	}

	var req request_models.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	client, err := cc.clientService.UpdateClient(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, client, "Client updated successfully")
}

// DeleteClient godoc
// @Summary Delete a client
// @Tags Clients
// @Param id path string true "Client ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /clients/{id} [delete]
func (cc *ClientsController) DeleteClient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid client ID")
		return
	}

	if err := cc.clientService.DeleteClient(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Client deleted successfully")
}
