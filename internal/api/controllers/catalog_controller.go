package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"salonsage/internal/models/request_models"
	"salonsage/internal/services"
	"salonsage/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

func (ct *CatalogController) ListServices(c *gin.Context) {
	list, err := ct.catalogService.ListServices(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, list, "Services fetched successfully")
}

func (ct *CatalogController) GetService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	svc, err := ct.catalogService.GetService(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, svc, "Service fetched successfully")
}

// CreateService godoc
// @Summary Add a service to the catalog
// @Tags Services
// @Accept json
// @Produce json
// @Param request body request_models.CreateServiceRequest true "Service payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /services [post]
func (ct *CatalogController) CreateService(c *gin.Context) {
	var req request_models.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	svc, err := ct.catalogService.CreateService(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, svc, "Service created successfully")
}

func (ct *CatalogController) UpdateService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	var req request_models.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	svc, err := ct.catalogService.UpdateService(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, svc, "Service updated successfully")
}

func (ct *CatalogController) DeleteService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	if err := ct.catalogService.DeleteService(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Service deleted successfully")
}
