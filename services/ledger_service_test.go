package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trypie/wanderly-backend/models"
	"github.com/trypie/wanderly-backend/utils"
)

// equalExpense builds an expense split equally among names, paid by the first
// name unless paidBy overrides it
func equalExpense(t *testing.T, id string, amount float64, paidBy string, names ...string) *models.Expense {
	t.Helper()

	computed, err := NewSplitService().ComputeShares(amount, utils.SplitTypeEqual, participantsNamed(names...))
	require.NoError(t, err)

	return models.NewExpense(id, "trip-1", "expense "+id, amount, paidBy, utils.SplitTypeEqual, computed)
}

func TestLedger_AddExpense_PrependsMostRecentFirst(t *testing.T) {
	ledger := NewLedger()

	first := equalExpense(t, "e1", 10, "v", "v", "p")
	second := equalExpense(t, "e2", 20, "v", "v", "p")

	require.NoError(t, ledger.AddExpense(first))
	require.NoError(t, ledger.AddExpense(second))

	expenses := ledger.Expenses()
	require.Len(t, expenses, 2)
	assert.Equal(t, "e2", expenses[0].ID)
	assert.Equal(t, "e1", expenses[1].ID)
}

func TestLedger_AddExpense_RequiresParticipants(t *testing.T) {
	ledger := NewLedger()

	expense := models.NewExpense("e1", "trip-1", "empty", 10, "v", utils.SplitTypeEqual, nil)
	err := ledger.AddExpense(expense)

	assert.Error(t, err)
	assert.Empty(t, ledger.Expenses())
}

func TestLedger_ComputeBalance_ViewerIsPayer(t *testing.T) {
	ledger := NewLedger()
	require.NoError(t, ledger.AddExpense(equalExpense(t, "e1", 100, "v", "v", "p")))

	// V fronted 100, P owes their unsettled half
	assert.Equal(t, 50.00, ledger.ComputeBalance("v"))

	// Once P settles, nothing is owed
	expense := ledger.Expenses()[0]
	ledger.ToggleParticipantSettled("e1", expense.Participants[1].ID)
	assert.Equal(t, 0.00, ledger.ComputeBalance("v"))
}

func TestLedger_ComputeBalance_ViewerOwes(t *testing.T) {
	ledger := NewLedger()
	require.NoError(t, ledger.AddExpense(equalExpense(t, "e1", 100, "p", "v", "p")))

	assert.Equal(t, -50.00, ledger.ComputeBalance("v"))

	// Settling the viewer's share clears the debt
	expense := ledger.Expenses()[0]
	ledger.ToggleParticipantSettled("e1", expense.Participants[0].ID)
	assert.Equal(t, 0.00, ledger.ComputeBalance("v"))
}

func TestLedger_ExpenseSettledFlag_DoesNotAffectBalance(t *testing.T) {
	ledger := NewLedger()
	require.NoError(t, ledger.AddExpense(equalExpense(t, "e1", 100, "v", "v", "p")))

	ledger.ToggleExpenseSettled("e1")

	assert.True(t, ledger.Expenses()[0].Settled)
	assert.Equal(t, 50.00, ledger.ComputeBalance("v"),
		"participant-level flags are authoritative for balances")
}

func TestLedger_ToggleParticipantSettled_Idempotent(t *testing.T) {
	ledger := NewLedger()
	require.NoError(t, ledger.AddExpense(equalExpense(t, "e1", 100, "v", "v", "p")))

	participantID := ledger.Expenses()[0].Participants[1].ID

	ledger.ToggleParticipantSettled("e1", participantID)
	ledger.ToggleParticipantSettled("e1", participantID)

	assert.False(t, ledger.Expenses()[0].Participants[1].Settled)
	assert.Equal(t, 50.00, ledger.ComputeBalance("v"))
}

func TestLedger_UnknownIDs_AreNoOps(t *testing.T) {
	ledger := NewLedger()
	require.NoError(t, ledger.AddExpense(equalExpense(t, "e1", 100, "v", "v", "p")))

	ledger.ToggleExpenseSettled("missing")
	ledger.ToggleParticipantSettled("missing", "also-missing")
	ledger.ToggleParticipantSettled("e1", "missing")
	ledger.RemoveExpense("missing")

	require.Len(t, ledger.Expenses(), 1)
	assert.False(t, ledger.Expenses()[0].Settled)
	assert.Equal(t, 50.00, ledger.ComputeBalance("v"))
}

func TestLedger_RemoveExpense_DropsItsAmounts(t *testing.T) {
	ledger := NewLedger()
	require.NoError(t, ledger.AddExpense(equalExpense(t, "e1", 100, "v", "v", "p")))
	require.NoError(t, ledger.AddExpense(equalExpense(t, "e2", 40, "p", "v", "p")))

	ledger.RemoveExpense("e2")

	require.Len(t, ledger.Expenses(), 1)
	assert.Equal(t, 50.00, ledger.ComputeBalance("v"))
	assert.Equal(t, -50.00, ledger.ComputeBalance("p"))
}

func TestLedger_ComputeBalances_SymmetricAndZeroSum(t *testing.T) {
	ledger := NewLedger()
	require.NoError(t, ledger.AddExpense(equalExpense(t, "e1", 86.50, "ana", "ana", "ben", "cat")))
	require.NoError(t, ledger.AddExpense(equalExpense(t, "e2", 30, "ben", "ana", "ben")))

	balances := ledger.ComputeBalances()

	require.Len(t, balances, 3)
	assert.Equal(t, balances["ana"], ledger.ComputeBalance("ana"))
	assert.Equal(t, balances["ben"], ledger.ComputeBalance("ben"))
	assert.Equal(t, balances["cat"], ledger.ComputeBalance("cat"))

	var total float64
	for _, balance := range balances {
		total += balance
	}
	assert.InDelta(t, 0, total, 0.011, "credits and debts must cancel out")
}

func TestLedger_ComputeBalance_UnknownViewerIsZero(t *testing.T) {
	ledger := NewLedger()
	require.NoError(t, ledger.AddExpense(equalExpense(t, "e1", 100, "v", "v", "p")))

	assert.Equal(t, 0.00, ledger.ComputeBalance("stranger"))
}
