// handlers/expense_handlers.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/trypie/wanderly-backend/models"
	"github.com/trypie/wanderly-backend/services"
	"github.com/trypie/wanderly-backend/utils"
)

// ExpenseHandler handles expense-related HTTP requests
type ExpenseHandler struct {
	tripService       *services.TripService
	expenseService    *services.ExpenseService
	settlementService *services.SettlementService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(tripService *services.TripService, expenseService *services.ExpenseService, settlementService *services.SettlementService) *ExpenseHandler {
	return &ExpenseHandler{
		tripService:       tripService,
		expenseService:    expenseService,
		settlementService: settlementService,
	}
}

// CalculateSplit handles POST /expenses/calculateSplit.
// It recomputes the per-person shares without persisting anything.
func (h *ExpenseHandler) CalculateSplit(c *gin.Context) {
	var request models.CalculateSplitRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	participants, err := h.expenseService.PreviewSplit(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, participants)
}

// AddExpense handles POST /expenses/add
func (h *ExpenseHandler) AddExpense(c *gin.Context) {
	var request models.AddExpenseRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	trip, err := h.tripService.GetTripByCode(request.Code)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	expense, err := h.expenseService.AddExpense(trip, &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, expense)
}

// ListExpenses handles POST /expenses/list
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	var request models.GetTripByCodeRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	trip, err := h.tripService.GetTripByCode(request.Code)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	expenses, err := h.expenseService.GetExpenses(trip.ID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, expenses)
}

// RemoveExpense handles POST /expenses/remove
func (h *ExpenseHandler) RemoveExpense(c *gin.Context) {
	var request models.RemoveExpenseRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	trip, err := h.tripService.GetTripByCode(request.Code)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	found, err := h.expenseService.RemoveExpense(trip.ID, request.ExpenseID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if !found {
		utils.HandleError(c, utils.NewNotFoundError("Expense"))
		return
	}

	utils.HandleSuccess(c, true)
}

// ToggleExpenseSettled handles POST /expenses/toggleSettled
func (h *ExpenseHandler) ToggleExpenseSettled(c *gin.Context) {
	var request models.ToggleExpenseSettledRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	trip, err := h.tripService.GetTripByCode(request.Code)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	found, err := h.expenseService.ToggleExpenseSettled(trip.ID, request.ExpenseID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"toggled": found})
}

// ToggleParticipantSettled handles POST /expenses/toggleParticipantSettled
func (h *ExpenseHandler) ToggleParticipantSettled(c *gin.Context) {
	var request models.ToggleParticipantSettledRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	trip, err := h.tripService.GetTripByCode(request.Code)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	found, err := h.expenseService.ToggleParticipantSettled(trip.ID, request.ExpenseID, request.ParticipantID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"toggled": found})
}

// GetBalance handles POST /expenses/balance
func (h *ExpenseHandler) GetBalance(c *gin.Context) {
	var request models.BalanceRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	trip, err := h.tripService.GetTripByCode(request.Code)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	balance, err := h.expenseService.ComputeBalance(trip.ID, request.Viewer)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, balance)
}

// CalculateSettlements handles POST /expenses/calculateSettlements
func (h *ExpenseHandler) CalculateSettlements(c *gin.Context) {
	var request models.GetTripByCodeRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	trip, err := h.tripService.GetTripByCode(request.Code)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	settlementResult, err := h.settlementService.CalculateSettlements(trip.ID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, settlementResult)
}
