package services

import (
	"github.com/trypie/wanderly-backend/models"
	"github.com/trypie/wanderly-backend/utils"
)

// Ledger owns the expense records for one trip and answers balance queries.
// Most-recent-first ordering is maintained for display. Unknown expense or
// participant ids in toggle/remove calls are silent no-ops, mirroring what a
// UI-driven caller expects.
type Ledger struct {
	expenses []*models.Expense
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{}
}

// NewLedgerFromExpenses creates a ledger over an already-ordered expense list
// (most recent first, as the repository returns them)
func NewLedgerFromExpenses(expenses []*models.Expense) *Ledger {
	return &Ledger{expenses: expenses}
}

// Expenses returns the expense records, most recent first
func (l *Ledger) Expenses() []*models.Expense {
	return l.expenses
}

// AddExpense prepends a fully-formed expense to the collection
func (l *Ledger) AddExpense(expense *models.Expense) error {
	if err := utils.ValidateNotEmpty(expense.Participants, "participants"); err != nil {
		return err
	}
	l.expenses = append([]*models.Expense{expense}, l.expenses...)
	return nil
}

// ToggleExpenseSettled flips the expense-level settled flag. It does not
// touch the participant-level flags and has no effect on balances.
func (l *Ledger) ToggleExpenseSettled(expenseID string) {
	for _, expense := range l.expenses {
		if expense.ID == expenseID {
			expense.Settled = !expense.Settled
			return
		}
	}
}

// ToggleParticipantSettled flips one participant's settled flag within one
// expense
func (l *Ledger) ToggleParticipantSettled(expenseID, participantID string) {
	for _, expense := range l.expenses {
		if expense.ID != expenseID {
			continue
		}
		for i := range expense.Participants {
			if expense.Participants[i].ID == participantID {
				expense.Participants[i].Settled = !expense.Participants[i].Settled
				return
			}
		}
		return
	}
}

// RemoveExpense deletes an expense and all its participant records
func (l *Ledger) RemoveExpense(expenseID string) {
	for i, expense := range l.expenses {
		if expense.ID == expenseID {
			l.expenses = append(l.expenses[:i], l.expenses[i+1:]...)
			return
		}
	}
}

// ComputeBalance returns the net signed balance for one viewer across all
// expenses. Positive means the viewer is owed money, negative means the
// viewer owes.
//
// Only participant-level settled flags exclude a share; the expense-level
// settled flag is informational and never affects the result.
func (l *Ledger) ComputeBalance(viewer string) float64 {
	var balance float64

	for _, expense := range l.expenses {
		if expense.PaidBy == viewer {
			// Money owed to the viewer by everyone else
			for _, p := range expense.Participants {
				if p.Name != viewer && !p.Settled {
					balance += p.Share
				}
			}
		} else {
			// Money the viewer owes the payer
			for _, p := range expense.Participants {
				if p.Name == viewer && !p.Settled {
					balance -= p.Share
				}
			}
		}
	}

	return utils.Round(balance)
}

// ComputeBalances returns the net signed balance of every person appearing in
// the ledger, computed with the same rules as ComputeBalance
func (l *Ledger) ComputeBalances() map[string]float64 {
	balances := make(map[string]float64)

	for _, expense := range l.expenses {
		if _, exists := balances[expense.PaidBy]; !exists {
			balances[expense.PaidBy] = 0
		}

		for _, p := range expense.Participants {
			if _, exists := balances[p.Name]; !exists {
				balances[p.Name] = 0
			}
			if p.Name == expense.PaidBy || p.Settled {
				continue
			}
			balances[p.Name] -= p.Share
			balances[expense.PaidBy] += p.Share
		}
	}

	for person, balance := range balances {
		balances[person] = utils.Round(balance)
	}

	return balances
}
