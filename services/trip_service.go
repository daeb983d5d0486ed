package services

import (
	"github.com/trypie/wanderly-backend/models"
	"github.com/trypie/wanderly-backend/repository"
	"github.com/trypie/wanderly-backend/utils"
)

// TripService handles trip business logic
type TripService struct {
	tripRepo *repository.TripRepository
}

// NewTripService creates a new trip service
func NewTripService() *TripService {
	return &TripService{
		tripRepo: repository.NewTripRepository(),
	}
}

// CreateTrip creates a new trip with its first participant
func (s *TripService) CreateTrip(name, participant string) (*models.Trip, error) {
	if err := utils.ValidateRequired(name, "trip name"); err != nil {
		return nil, err
	}
	if err := utils.ValidateRequired(participant, "participant"); err != nil {
		return nil, err
	}

	trip := models.NewTrip(
		utils.GenerateID(),
		utils.GenerateCode(),
		name,
		utils.NormalizeName(participant),
	)

	if err := s.tripRepo.StoreTrip(trip); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}

	return trip, nil
}

// GetTripByCode retrieves a trip by its join code
func (s *TripService) GetTripByCode(code string) (*models.Trip, error) {
	if err := utils.ValidateRequired(code, "code"); err != nil {
		return nil, err
	}

	trip, err := s.tripRepo.GetTripByCode(code)
	if err != nil {
		return nil, utils.NewNotFoundError("Trip")
	}

	return trip, nil
}

// GetTripForDisplay retrieves a trip with participant names formatted for display
func (s *TripService) GetTripForDisplay(code string) (*models.Trip, error) {
	trip, err := s.GetTripByCode(code)
	if err != nil {
		return nil, err
	}

	formatted := *trip
	formatted.Participants = utils.FormatNamesForDisplay(trip.Participants)
	return &formatted, nil
}

// AddParticipant adds a participant to a trip if they don't exist already
func (s *TripService) AddParticipant(tripID string, participant string) error {
	return s.tripRepo.AddParticipant(tripID, utils.NormalizeName(participant))
}
