package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonsage/internal/models/request_models"
	"salonsage/internal/services"
	"salonsage/pkg/utils"
)

type LicenseController struct {
	licenseService services.LicenseServiceInterface
}

func NewLicenseController(licenseService services.LicenseServiceInterface) *LicenseController {
	return &LicenseController{
		licenseService: licenseService,
	}
}

// Validate godoc
// @Summary Validate a license key
// @Description Returns the key's feature set and a signed feature token
// when the key is active and unexpired. An invalid key is a 200 with
// isValid false, not an error.
// @Tags License
// @Accept json
// @Produce json
// @Param request body request_models.ValidateLicenseRequest true "License key"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /license/validate [post]
func (lc *LicenseController) Validate(c *gin.Context) {
	var req request_models.ValidateLicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := lc.licenseService.Validate(c.Request.Context(), req.Key)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "License validated")
}

func (lc *LicenseController) ListKeys(c *gin.Context) {
	keys, err := lc.licenseService.ListKeys(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, keys, "License keys fetched successfully")
}

func (lc *LicenseController) CreateKey(c *gin.Context) {
	var req request_models.CreateLicenseKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	key, err := lc.licenseService.CreateKey(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, key, "License key created successfully")
}
