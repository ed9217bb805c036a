package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	dbm "salonsage/internal/models/db_models"
	"salonsage/internal/models/request_models"
	"salonsage/internal/services"
	"salonsage/pkg/utils"
)

type BookingsController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingsController(bookingService services.BookingServiceInterface) *BookingsController {
	return &BookingsController{
		bookingService: bookingService,
	}
}

// ListBookings godoc
// @Summary List bookings, optionally filtered by client
// @Tags Bookings
// @Produce json
// @Param clientId query string false "Client ID filter"
// @Success 200 {object} utils.APIResponse
// @Router /bookings [get]
func (bc *BookingsController) ListBookings(c *gin.Context) {
	var clientID *uuid.UUID
	if raw := c.Query("clientId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid client ID")
			return
		}
		clientID = &id
	}

	bookings, err := bc.bookingService.ListBookings(c.Request.Context(), clientID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bookings, "Bookings fetched successfully")
}

func (bc *BookingsController) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	booking, err := bc.bookingService.GetBooking(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, booking, "Booking fetched successfully")
}

// CreateBooking godoc
// @Summary Create a booking
// @Description Creates a booking for a client and service. When a client
// subscription is referenced, one use is consumed atomically with the insert.
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body request_models.CreateBookingRequest true "Booking payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /bookings [post]
func (bc *BookingsController) CreateBooking(c *gin.Context) {
	var req request_models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	booking, err := bc.bookingService.CreateBooking(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, booking, "Booking created successfully")
}

// AddExtraServices godoc
// @Summary Add extra services to a booking
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body request_models.AddExtraServicesRequest true "Service IDs"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /bookings/{id}/services [post]
func (bc *BookingsController) AddExtraServices(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	var req request_models.AddExtraServicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	serviceIDs := make([]uuid.UUID, 0, len(req.ServiceIDs))
	for _, raw := range req.ServiceIDs {
		sid, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid service ID in list")
			return
		}
		serviceIDs = append(serviceIDs, sid)
	}

	booking, err := bc.bookingService.AddExtraServices(c.Request.Context(), id, serviceIDs)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, booking, "Extra services added successfully")
}

// UpdateStatus godoc
// @Summary Complete or cancel a booking
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body request_models.UpdateBookingStatusRequest true "New status"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /bookings/{id}/status [put]
func (bc *BookingsController) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	var req request_models.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	booking, err := bc.bookingService.UpdateStatus(c.Request.Context(), id, dbm.BookingStatus(req.Status))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, booking, "Booking status updated successfully")
}

func (bc *BookingsController) UpdateBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	var req request_models.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	booking, err := bc.bookingService.UpdateBooking(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, booking, "Booking updated successfully")
}

func (bc *BookingsController) DeleteBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	if err := bc.bookingService.DeleteBooking(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Booking deleted successfully")
}
