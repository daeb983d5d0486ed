package services

import (
	"github.com/google/uuid"

	"github.com/trypie/wanderly-backend/models"
	"github.com/trypie/wanderly-backend/repository"
	"github.com/trypie/wanderly-backend/utils"
)

// ExpenseService handles expense business logic for a trip
type ExpenseService struct {
	expenseRepo  *repository.ExpenseRepository
	tripRepo     *repository.TripRepository
	splitService *SplitService
}

// NewExpenseService creates a new expense service
func NewExpenseService() *ExpenseService {
	return &ExpenseService{
		expenseRepo:  repository.NewExpenseRepository(),
		tripRepo:     repository.NewTripRepository(),
		splitService: NewSplitService(),
	}
}

// AddExpense computes the split for a new expense and stores it
func (s *ExpenseService) AddExpense(trip *models.Trip, req *models.AddExpenseRequest) (*models.Expense, error) {
	if err := s.validateExpenseRequest(req); err != nil {
		return nil, err
	}

	participants := s.buildParticipants(req.Participants)

	computed, err := s.splitService.ComputeShares(utils.Round(req.Amount), req.SplitType, participants)
	if err != nil {
		return nil, utils.NewValidationError(err.Error())
	}

	paidBy := utils.NormalizeName(req.PaidBy)

	// Grow the trip roster from the expense
	if err := s.tripRepo.AddParticipant(trip.ID, paidBy); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	for _, participant := range computed {
		if err := s.tripRepo.AddParticipant(trip.ID, participant.Name); err != nil {
			return nil, utils.NewInternalError(utils.ErrFailedToStore)
		}
	}

	expense := models.NewExpense(
		uuid.New().String(),
		trip.ID,
		req.Description,
		utils.Round(req.Amount),
		paidBy,
		req.SplitType,
		computed,
	)

	if err := s.expenseRepo.StoreExpense(expense); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}

	return expense, nil
}

// GetExpenses returns all expenses for a trip, most recent first
func (s *ExpenseService) GetExpenses(tripID string) ([]*models.Expense, error) {
	expenses, err := s.expenseRepo.GetExpenses(tripID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	return expenses, nil
}

// RemoveExpense removes an expense from a trip
func (s *ExpenseService) RemoveExpense(tripID string, expenseID string) (bool, error) {
	found, err := s.expenseRepo.RemoveExpense(tripID, expenseID)
	if err != nil {
		return false, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return found, nil
}

// ToggleExpenseSettled flips the expense-level settled flag
func (s *ExpenseService) ToggleExpenseSettled(tripID string, expenseID string) (bool, error) {
	found, err := s.expenseRepo.ToggleExpenseSettled(tripID, expenseID)
	if err != nil {
		return false, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return found, nil
}

// ToggleParticipantSettled flips one participant's settled flag
func (s *ExpenseService) ToggleParticipantSettled(tripID, expenseID, participantID string) (bool, error) {
	found, err := s.expenseRepo.ToggleParticipantSettled(tripID, expenseID, participantID)
	if err != nil {
		return false, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return found, nil
}

// ComputeBalance returns the viewer's net signed balance across the trip
func (s *ExpenseService) ComputeBalance(tripID string, viewer string) (*models.BalanceResult, error) {
	expenses, err := s.GetExpenses(tripID)
	if err != nil {
		return nil, err
	}

	ledger := NewLedgerFromExpenses(expenses)
	normalized := utils.NormalizeName(viewer)

	return &models.BalanceResult{
		Viewer:  utils.FormatNameForDisplay(normalized),
		Balance: ledger.ComputeBalance(normalized),
	}, nil
}

// PreviewSplit runs the split calculation without persisting anything,
// for form recomputation on every relevant input change
func (s *ExpenseService) PreviewSplit(req *models.CalculateSplitRequest) ([]models.Participant, error) {
	if err := utils.ValidatePositive(req.Amount, "amount"); err != nil {
		return nil, err
	}
	if !utils.ValidSplitType(req.SplitType) {
		return nil, utils.NewValidationError("Unknown split type: " + req.SplitType)
	}

	participants := s.buildParticipants(req.Participants)

	computed, err := s.splitService.ComputeShares(utils.Round(req.Amount), req.SplitType, participants)
	if err != nil {
		return nil, utils.NewValidationError(err.Error())
	}

	for i := range computed {
		computed[i].Name = utils.FormatNameForDisplay(computed[i].Name)
	}
	return computed, nil
}

// validateExpenseRequest validates an AddExpense request beyond binding rules
func (s *ExpenseService) validateExpenseRequest(req *models.AddExpenseRequest) error {
	if err := utils.ValidatePositive(req.Amount, "amount"); err != nil {
		return err
	}
	if !utils.ValidSplitType(req.SplitType) {
		return utils.NewValidationError("Unknown split type: " + req.SplitType)
	}
	if err := utils.ValidateNotEmpty(req.Participants, "participants"); err != nil {
		return err
	}

	names := make([]string, len(req.Participants))
	for i, p := range req.Participants {
		names[i] = p.Name
	}
	return utils.ValidateParticipantNames(names)
}

// buildParticipants converts client inputs into participant records with
// generated ids, defaulting missing split values to zero
func (s *ExpenseService) buildParticipants(inputs []models.ParticipantInput) []models.Participant {
	participants := make([]models.Participant, len(inputs))
	for i, input := range inputs {
		participants[i] = models.Participant{
			ID:   uuid.New().String(),
			Name: utils.NormalizeName(input.Name),
		}
		if input.SharePercentage != nil {
			participants[i].SharePercentage = *input.SharePercentage
		}
		if input.Share != nil {
			participants[i].Share = *input.Share
		}
	}
	return participants
}
