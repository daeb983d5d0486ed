package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/trypie/wanderly-backend/models"
	"github.com/trypie/wanderly-backend/utils"
)

// ExcelService handles Excel export functionality
type ExcelService struct {
	tripService       *TripService
	expenseService    *ExpenseService
	settlementService *SettlementService
}

// NewExcelService creates a new Excel service
func NewExcelService(tripService *TripService, expenseService *ExpenseService, settlementService *SettlementService) *ExcelService {
	return &ExcelService{
		tripService:       tripService,
		expenseService:    expenseService,
		settlementService: settlementService,
	}
}

// PersonSummary represents a person's spending summary
type PersonSummary struct {
	Name       string
	TotalPaid  float64 // How much they fronted
	TotalShare float64 // How much they consumed
	NetBalance float64 // Positive = should receive, Negative = should pay
}

// ExportTripToExcel generates an Excel workbook for a trip
func (s *ExcelService) ExportTripToExcel(tripCode string) (*excelize.File, string, error) {
	trip, err := s.tripService.GetTripByCode(tripCode)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get trip: %v", err)
	}

	expenses, err := s.expenseService.GetExpenses(trip.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get expenses: %v", err)
	}

	settlementResult, err := s.settlementService.CalculateSettlements(trip.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to calculate settlements: %v", err)
	}

	f := excelize.NewFile()

	if err := s.createSummarySheet(f, expenses); err != nil {
		return nil, "", fmt.Errorf("failed to create summary sheet: %v", err)
	}

	if err := s.createExpenseSheet(f, expenses); err != nil {
		return nil, "", fmt.Errorf("failed to create expense sheet: %v", err)
	}

	if err := s.createSettlementSheet(f, settlementResult); err != nil {
		return nil, "", fmt.Errorf("failed to create settlement sheet: %v", err)
	}

	// Delete the default sheet if it exists
	f.DeleteSheet("Sheet1")

	filename := fmt.Sprintf("%s_Export_%s.xlsx",
		utils.CleanFileName(trip.Name),
		time.Now().Format("2006-01-02"))

	return f, filename, nil
}

// createSummarySheet creates Sheet 1: per-person totals and net balances
func (s *ExcelService) createSummarySheet(f *excelize.File, expenses []*models.Expense) error {
	sheetName := "Summary"
	f.NewSheet(sheetName)
	sheetIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(sheetIndex)

	summaries := s.calculatePersonSummaries(expenses)

	// Sort summaries by name for consistent output
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Name < summaries[j].Name
	})

	headers := []string{"Person", "Total Paid", "Total Share", "Net Balance"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for row, summary := range summaries {
		values := []interface{}{summary.Name, summary.TotalPaid, summary.TotalShare, summary.NetBalance}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	return nil
}

// createExpenseSheet creates Sheet 2: one row per expense, most recent first
func (s *ExcelService) createExpenseSheet(f *excelize.File, expenses []*models.Expense) error {
	sheetName := "Expenses"
	f.NewSheet(sheetName)

	headers := []string{"Date", "Description", "Paid By", "Amount", "Split Type", "Settled", "Shares"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for row, expense := range expenses {
		date := time.UnixMilli(expense.CreationTime).Format("2006-01-02")

		shares := ""
		for i, p := range expense.Participants {
			if i > 0 {
				shares += ", "
			}
			shares += fmt.Sprintf("%s: %.2f", utils.FormatNameForDisplay(p.Name), p.Share)
			if p.Settled {
				shares += " (settled)"
			}
		}

		settled := "No"
		if expense.Settled {
			settled = "Yes"
		}

		values := []interface{}{
			date,
			expense.Description,
			utils.FormatNameForDisplay(expense.PaidBy),
			expense.Amount,
			expense.SplitType,
			settled,
			shares,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	return nil
}

// createSettlementSheet creates Sheet 3: suggested transfers
func (s *ExcelService) createSettlementSheet(f *excelize.File, result *models.SettlementResult) error {
	sheetName := "Settlements"
	f.NewSheet(sheetName)

	headers := []string{"From", "To", "Amount"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for row, settlement := range result.Settlements {
		values := []interface{}{settlement.From, settlement.To, settlement.Amount}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	return nil
}

// calculatePersonSummaries aggregates paid/consumed/net totals per person
func (s *ExcelService) calculatePersonSummaries(expenses []*models.Expense) []PersonSummary {
	paid := make(map[string]float64)
	shares := make(map[string]float64)

	for _, expense := range expenses {
		paid[expense.PaidBy] += expense.Amount
		for _, p := range expense.Participants {
			shares[p.Name] += p.Share
		}
	}

	balances := NewLedgerFromExpenses(expenses).ComputeBalances()

	var summaries []PersonSummary
	for person, balance := range balances {
		summaries = append(summaries, PersonSummary{
			Name:       utils.FormatNameForDisplay(person),
			TotalPaid:  utils.Round(paid[person]),
			TotalShare: utils.Round(shares[person]),
			NetBalance: balance,
		})
	}

	return summaries
}
