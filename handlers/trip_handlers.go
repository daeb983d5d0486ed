// handlers/trip_handlers.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/trypie/wanderly-backend/models"
	"github.com/trypie/wanderly-backend/services"
	"github.com/trypie/wanderly-backend/utils"
)

// TripHandler handles trip-related HTTP requests
type TripHandler struct {
	tripService *services.TripService
}

// NewTripHandler creates a new trip handler
func NewTripHandler(tripService *services.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

// CreateTrip handles POST /trips/create
func (h *TripHandler) CreateTrip(c *gin.Context) {
	var request models.CreateTripRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	trip, err := h.tripService.CreateTrip(request.Name, request.Participant)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	response := models.CreateTripResponse{
		TripID: trip.ID,
		Code:   trip.Code,
	}

	utils.HandleSuccess(c, response)
}

// GetTripByCode handles POST /trips/getByCode
func (h *TripHandler) GetTripByCode(c *gin.Context) {
	var request models.GetTripByCodeRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	trip, err := h.tripService.GetTripForDisplay(request.Code)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, trip)
}
