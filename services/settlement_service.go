package services

import (
	"github.com/trypie/wanderly-backend/models"
	"github.com/trypie/wanderly-backend/utils"
)

// SettlementService turns ledger balances into who-pays-whom suggestions
type SettlementService struct {
	expenseService *ExpenseService
}

// NewSettlementService creates a new settlement service
func NewSettlementService(expenseService *ExpenseService) *SettlementService {
	return &SettlementService{
		expenseService: expenseService,
	}
}

// CalculateSettlements calculates settlement suggestions for a trip from the
// unsettled shares in its ledger
func (s *SettlementService) CalculateSettlements(tripID string) (*models.SettlementResult, error) {
	expenses, err := s.expenseService.GetExpenses(tripID)
	if err != nil {
		return nil, utils.NewInternalError("Failed to retrieve expenses")
	}

	if len(expenses) == 0 {
		return &models.SettlementResult{
			Settlements:        []models.Settlement{},
			IndividualBalances: make(map[string]float64),
		}, nil
	}

	balances := NewLedgerFromExpenses(expenses).ComputeBalances()

	settlements := s.calculateOptimalSettlements(balances)

	// Format names for display
	formattedBalances := utils.FormatNameMapKeys(balances)
	formattedSettlements := s.formatSettlements(settlements)

	return &models.SettlementResult{
		Settlements:        formattedSettlements,
		IndividualBalances: formattedBalances,
	}, nil
}

// calculateOptimalSettlements matches creditors with debtors greedily so the
// number of transfers stays small
func (s *SettlementService) calculateOptimalSettlements(balances map[string]float64) []models.Settlement {
	creditors := s.extractCreditors(balances)
	debtors := s.extractDebtors(balances)

	s.sortByBalance(creditors)
	s.sortByBalance(debtors)

	return s.generateSettlements(creditors, debtors)
}

// extractCreditors extracts people who are owed money
func (s *SettlementService) extractCreditors(balances map[string]float64) []PersonBalance {
	var creditors []PersonBalance
	for person, balance := range balances {
		if balance > 0 {
			creditors = append(creditors, PersonBalance{
				Person:  person,
				Balance: balance,
			})
		}
	}
	return creditors
}

// extractDebtors extracts people who owe money
func (s *SettlementService) extractDebtors(balances map[string]float64) []PersonBalance {
	var debtors []PersonBalance
	for person, balance := range balances {
		if balance < 0 {
			debtors = append(debtors, PersonBalance{
				Person:  person,
				Balance: -balance, // Store as positive for simplicity
			})
		}
	}
	return debtors
}

// sortByBalance sorts PersonBalance slice by balance in descending order
func (s *SettlementService) sortByBalance(slice []PersonBalance) {
	for i := 0; i < len(slice); i++ {
		for j := i + 1; j < len(slice); j++ {
			if slice[i].Balance < slice[j].Balance {
				slice[i], slice[j] = slice[j], slice[i]
			}
		}
	}
}

// generateSettlements creates the actual settlement transactions
func (s *SettlementService) generateSettlements(creditors, debtors []PersonBalance) []models.Settlement {
	var settlements []models.Settlement

	i, j := 0, 0
	for i < len(creditors) && j < len(debtors) {
		creditor := creditors[i]
		debtor := debtors[j]

		amount := utils.Min(creditor.Balance, debtor.Balance)
		amount = utils.Round(amount)

		if amount > 0 {
			settlement := models.Settlement{
				From:   debtor.Person,
				To:     creditor.Person,
				Amount: amount,
			}
			settlements = append(settlements, settlement)
		}

		// Update balances
		creditors[i].Balance -= amount
		debtors[j].Balance -= amount

		// Move to next creditor/debtor if balance is settled
		if utils.Round(creditors[i].Balance) == 0 {
			i++
		}
		if utils.Round(debtors[j].Balance) == 0 {
			j++
		}
	}

	return settlements
}

// formatSettlements formats settlement names for display
func (s *SettlementService) formatSettlements(settlements []models.Settlement) []models.Settlement {
	formatted := make([]models.Settlement, len(settlements))
	for i, settlement := range settlements {
		formatted[i] = models.Settlement{
			From:   utils.FormatNameForDisplay(settlement.From),
			To:     utils.FormatNameForDisplay(settlement.To),
			Amount: settlement.Amount,
		}
	}
	return formatted
}

// PersonBalance represents a person and their balance
type PersonBalance struct {
	Person  string
	Balance float64
}
