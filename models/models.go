// models/models.go
package models

import "time"

// Trip represents a group of people sharing expenses
type Trip struct {
	ID           string   `json:"_id"`
	CreationTime int64    `json:"_creationTime"`
	Code         string   `json:"code"`
	Name         string   `json:"name"`
	Participants []string `json:"participants"`
}

// Participant represents one person's stake in a single expense
type Participant struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Share           float64 `json:"share"`
	SharePercentage float64 `json:"sharePercentage"`
	Settled         bool    `json:"settled"`
}

// Expense represents a shared expense with its per-person split breakdown
type Expense struct {
	ID           string        `json:"_id"`
	CreationTime int64         `json:"_creationTime"`
	TripID       string        `json:"tripId"`
	Description  string        `json:"description"`
	Amount       float64       `json:"amount"`
	PaidBy       string        `json:"paidBy"`
	SplitType    string        `json:"splitType"`
	Settled      bool          `json:"settled"`
	Participants []Participant `json:"participants"`
}

// Settlement represents a suggested payment from one person to another
type Settlement struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// SettlementResult represents the result of calculating settlements
type SettlementResult struct {
	Settlements        []Settlement       `json:"settlements"`
	IndividualBalances map[string]float64 `json:"individualBalances"`
}

// BalanceResult represents the net balance for a single viewer.
// Positive means the viewer is owed money, negative means the viewer owes.
type BalanceResult struct {
	Viewer  string  `json:"viewer"`
	Balance float64 `json:"balance"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// ParticipantInput carries one participant's split inputs from the client.
// SharePercentage is read for percentage splits, Share for exact splits;
// both are ignored for equal splits.
type ParticipantInput struct {
	Name            string   `json:"name" binding:"required"`
	SharePercentage *float64 `json:"sharePercentage,omitempty"`
	Share           *float64 `json:"share,omitempty"`
}

// CreateTrip request model
type CreateTripRequest struct {
	Name        string `json:"name" binding:"required"`
	Participant string `json:"participant" binding:"required"`
}

// GetTripByCodeRequest request model
type GetTripByCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// AddExpenseRequest request model
type AddExpenseRequest struct {
	Code         string             `json:"code" binding:"required"`
	Description  string             `json:"description" binding:"required"`
	Amount       float64            `json:"amount" binding:"required,gt=0"`
	PaidBy       string             `json:"paidBy" binding:"required"`
	SplitType    string             `json:"splitType" binding:"required"`
	Participants []ParticipantInput `json:"participants" binding:"required,min=1"`
}

// CalculateSplitRequest request model for the preview calculation
type CalculateSplitRequest struct {
	Amount       float64            `json:"amount" binding:"required,gt=0"`
	SplitType    string             `json:"splitType" binding:"required"`
	Participants []ParticipantInput `json:"participants" binding:"required,min=1"`
}

// RemoveExpenseRequest request model
type RemoveExpenseRequest struct {
	Code      string `json:"code" binding:"required"`
	ExpenseID string `json:"expenseId" binding:"required"`
}

// ToggleExpenseSettledRequest request model
type ToggleExpenseSettledRequest struct {
	Code      string `json:"code" binding:"required"`
	ExpenseID string `json:"expenseId" binding:"required"`
}

// ToggleParticipantSettledRequest request model
type ToggleParticipantSettledRequest struct {
	Code          string `json:"code" binding:"required"`
	ExpenseID     string `json:"expenseId" binding:"required"`
	ParticipantID string `json:"participantId" binding:"required"`
}

// BalanceRequest request model
type BalanceRequest struct {
	Code   string `json:"code" binding:"required"`
	Viewer string `json:"viewer" binding:"required"`
}

// CreateTripResponse response model
type CreateTripResponse struct {
	TripID string `json:"tripId"`
	Code   string `json:"code"`
}

// NewTrip creates a new Trip instance
func NewTrip(id, code, name string, participant string) *Trip {
	return &Trip{
		ID:           id,
		CreationTime: time.Now().UnixMilli(),
		Code:         code,
		Name:         name,
		Participants: []string{participant},
	}
}

// NewExpense creates a new Expense instance with its computed participants
func NewExpense(id, tripID, description string, amount float64, paidBy, splitType string, participants []Participant) *Expense {
	return &Expense{
		ID:           id,
		CreationTime: time.Now().UnixMilli(),
		TripID:       tripID,
		Description:  description,
		Amount:       amount,
		PaidBy:       paidBy,
		SplitType:    splitType,
		Participants: participants,
	}
}
