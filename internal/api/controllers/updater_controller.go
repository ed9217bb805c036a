package controllers

import (
	"github.com/gin-gonic/gin"

	"salonsage/internal/services"
	"salonsage/pkg/utils"
)

type UpdaterController struct {
	updaterService services.UpdaterServiceInterface
}

func NewUpdaterController(updaterService services.UpdaterServiceInterface) *UpdaterController {
	return &UpdaterController{
		updaterService: updaterService,
	}
}

func (uc *UpdaterController) Status(c *gin.Context) {
	status, err := uc.updaterService.Status(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, status, "Update status fetched successfully")
}

// Check triggers an immediate poll of the releases endpoint instead of
// waiting for the next periodic run.
func (uc *UpdaterController) Check(c *gin.Context) {
	result, err := uc.updaterService.CheckForUpdates(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Update check completed")
}
