package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"salonsage/internal/models/request_models"
	"salonsage/internal/services"
	"salonsage/pkg/utils"
)

type SubscriptionsController struct {
	subscriptionService services.SubscriptionServiceInterface
}

func NewSubscriptionsController(subscriptionService services.SubscriptionServiceInterface) *SubscriptionsController {
	return &SubscriptionsController{
		subscriptionService: subscriptionService,
	}
}

func (sc *SubscriptionsController) ListPackages(c *gin.Context) {
	packages, err := sc.subscriptionService.ListPackages(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, packages, "Subscription packages fetched successfully")
}

func (sc *SubscriptionsController) GetPackage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid subscription ID")
		return
	}

	pkg, err := sc.subscriptionService.GetPackage(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pkg, "Subscription package fetched successfully")
}

func (sc *SubscriptionsController) CreatePackage(c *gin.Context) {
	var req request_models.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	pkg, err := sc.subscriptionService.CreatePackage(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, pkg, "Subscription package created successfully")
}

func (sc *SubscriptionsController) UpdatePackage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid subscription ID")
		return
	}

	var req request_models.UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	pkg, err := sc.subscriptionService.UpdatePackage(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pkg, "Subscription package updated successfully")
}

func (sc *SubscriptionsController) DeletePackage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid subscription ID")
		return
	}

	if err := sc.subscriptionService.DeletePackage(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Subscription package deleted successfully")
}

// ListClientSubscriptions godoc
// @Summary List purchased subscriptions, optionally filtered by client
// @Tags ClientSubscriptions
// @Produce json
// @Param clientId query string false "Client ID filter"
// @Success 200 {object} utils.APIResponse
// @Router /client-subscriptions [get]
func (sc *SubscriptionsController) ListClientSubscriptions(c *gin.Context) {
	var clientID *uuid.UUID
	if raw := c.Query("clientId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid client ID")
			return
		}
		clientID = &id
	}

	subs, err := sc.subscriptionService.ListClientSubscriptions(c.Request.Context(), clientID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, subs, "Client subscriptions fetched successfully")
}

func (sc *SubscriptionsController) GetClientSubscription(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid client subscription ID")
		return
	}

	sub, err := sc.subscriptionService.GetClientSubscription(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sub, "Client subscription fetched successfully")
}

// PurchaseSubscription godoc
// @Summary Purchase a subscription package for a client
// @Tags ClientSubscriptions
// @Accept json
// @Produce json
// @Param request body request_models.CreateClientSubscriptionRequest true "Purchase payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /client-subscriptions [post]
func (sc *SubscriptionsController) PurchaseSubscription(c *gin.Context) {
	var req request_models.CreateClientSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	sub, err := sc.subscriptionService.PurchaseSubscription(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, sub, "Subscription purchased successfully")
}

func (sc *SubscriptionsController) UpdateClientSubscription(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid client subscription ID")
		return
	}

	var req request_models.UpdateClientSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	sub, err := sc.subscriptionService.UpdateClientSubscription(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sub, "Client subscription updated successfully")
}

// ScaleSubscription godoc
// @Summary Add or remove uses on a client subscription
// @Tags ClientSubscriptions
// @Accept json
// @Produce json
// @Param id path string true "Client subscription ID"
// @Param request body request_models.ScaleSubscriptionRequest true "Scale payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /client-subscriptions/{id}/scale [post]
func (sc *SubscriptionsController) ScaleSubscription(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid client subscription ID")
		return
	}

	var req request_models.ScaleSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	sub, err := sc.subscriptionService.Scale(c.Request.Context(), id, req.Direction, req.Amount)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sub, "Client subscription scaled successfully")
}
