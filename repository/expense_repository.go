// repository/expense_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/trypie/wanderly-backend/models"
)

// ExpenseRepository handles database operations for expenses
type ExpenseRepository struct {
	DB *sql.DB
}

// NewExpenseRepository creates a new ExpenseRepository
func NewExpenseRepository() *ExpenseRepository {
	return &ExpenseRepository{
		DB: GetDB(),
	}
}

// StoreExpense saves an expense and its participant rows to the database.
// Participant order is persisted explicitly because the rounding correction
// targets the first participant.
func (r *ExpenseRepository) StoreExpense(expense *models.Expense) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	// Insert expense
	_, err = tx.Exec(
		`INSERT INTO expenses
         (id, trip_id, description, amount, paid_by, split_type, settled, creation_time)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		expense.ID, expense.TripID, expense.Description, expense.Amount,
		expense.PaidBy, expense.SplitType, expense.Settled, expense.CreationTime,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %v", err)
	}

	// Insert participants with their insertion order
	for position, participant := range expense.Participants {
		_, err = tx.Exec(
			`INSERT INTO expense_participants
             (id, expense_id, name, share, share_percentage, settled, position)
             VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			participant.ID, expense.ID, participant.Name, participant.Share,
			participant.SharePercentage, participant.Settled, position,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense participant: %v", err)
		}
	}

	return tx.Commit()
}

// GetExpenses retrieves all expenses for a trip, most recent first
func (r *ExpenseRepository) GetExpenses(tripID string) ([]*models.Expense, error) {
	// Query expenses
	rows, err := r.DB.Query(
		`SELECT id, trip_id, description, amount, paid_by, split_type, settled, creation_time
         FROM expenses WHERE trip_id = $1 ORDER BY creation_time DESC`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %v", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		var expense models.Expense
		var settled sql.NullBool

		err = rows.Scan(
			&expense.ID, &expense.TripID, &expense.Description, &expense.Amount,
			&expense.PaidBy, &expense.SplitType, &settled, &expense.CreationTime,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %v", err)
		}

		expense.Settled = settled.Valid && settled.Bool

		participants, err := r.getParticipants(expense.ID)
		if err != nil {
			return nil, err
		}
		expense.Participants = participants

		expenses = append(expenses, &expense)
	}

	return expenses, nil
}

// getParticipants loads one expense's participant rows in insertion order,
// defaulting missing values at the scan boundary (share -> 0, settled -> false)
func (r *ExpenseRepository) getParticipants(expenseID string) ([]models.Participant, error) {
	rows, err := r.DB.Query(
		`SELECT id, name, share, share_percentage, settled
         FROM expense_participants WHERE expense_id = $1 ORDER BY position`,
		expenseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense participants: %v", err)
	}
	defer rows.Close()

	var participants []models.Participant
	for rows.Next() {
		var participant models.Participant
		var share, sharePercentage sql.NullFloat64
		var settled sql.NullBool

		if err := rows.Scan(&participant.ID, &participant.Name, &share,
			&sharePercentage, &settled); err != nil {
			return nil, fmt.Errorf("failed to scan expense participant: %v", err)
		}

		if share.Valid {
			participant.Share = share.Float64
		}
		if sharePercentage.Valid {
			participant.SharePercentage = sharePercentage.Float64
		}
		participant.Settled = settled.Valid && settled.Bool

		participants = append(participants, participant)
	}

	return participants, nil
}

// RemoveExpense removes an expense and its participant rows
func (r *ExpenseRepository) RemoveExpense(tripID string, expenseID string) (bool, error) {
	// First check if expense exists and belongs to the trip
	var count int
	err := r.DB.QueryRow(
		"SELECT COUNT(*) FROM expenses WHERE id = $1 AND trip_id = $2",
		expenseID, tripID,
	).Scan(&count)

	if err != nil {
		return false, fmt.Errorf("failed to check expense: %v", err)
	}

	if count == 0 {
		return false, nil // Expense not found or doesn't belong to trip
	}

	// Delete expense (cascade will delete participants)
	_, err = r.DB.Exec("DELETE FROM expenses WHERE id = $1", expenseID)
	if err != nil {
		return false, fmt.Errorf("failed to delete expense: %v", err)
	}

	return true, nil
}

// ToggleExpenseSettled flips the expense-level settled flag.
// Returns false when the expense doesn't exist in the trip.
func (r *ExpenseRepository) ToggleExpenseSettled(tripID string, expenseID string) (bool, error) {
	result, err := r.DB.Exec(
		"UPDATE expenses SET settled = NOT settled WHERE id = $1 AND trip_id = $2",
		expenseID, tripID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to toggle expense settled: %v", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check toggle result: %v", err)
	}

	return affected > 0, nil
}

// ToggleParticipantSettled flips one participant's settled flag within one
// expense. Returns false when the expense or participant doesn't exist.
func (r *ExpenseRepository) ToggleParticipantSettled(tripID, expenseID, participantID string) (bool, error) {
	result, err := r.DB.Exec(
		`UPDATE expense_participants SET settled = NOT COALESCE(settled, FALSE)
         WHERE id = $1 AND expense_id IN (
             SELECT id FROM expenses WHERE id = $2 AND trip_id = $3
         )`,
		participantID, expenseID, tripID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to toggle participant settled: %v", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check toggle result: %v", err)
	}

	return affected > 0, nil
}
