package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettlementService_OptimalSettlements_SimplePair(t *testing.T) {
	service := &SettlementService{}

	balances := map[string]float64{
		"ana": 50.00,
		"ben": -50.00,
	}

	settlements := service.calculateOptimalSettlements(balances)

	require.Len(t, settlements, 1)
	assert.Equal(t, "ben", settlements[0].From)
	assert.Equal(t, "ana", settlements[0].To)
	assert.Equal(t, 50.00, settlements[0].Amount)
}

func TestSettlementService_OptimalSettlements_OneDebtorTwoCreditors(t *testing.T) {
	service := &SettlementService{}

	balances := map[string]float64{
		"ana": 70.00,
		"ben": 30.00,
		"cat": -100.00,
	}

	settlements := service.calculateOptimalSettlements(balances)

	require.Len(t, settlements, 2)

	// Largest credit is cleared first
	assert.Equal(t, "cat", settlements[0].From)
	assert.Equal(t, "ana", settlements[0].To)
	assert.Equal(t, 70.00, settlements[0].Amount)

	assert.Equal(t, "cat", settlements[1].From)
	assert.Equal(t, "ben", settlements[1].To)
	assert.Equal(t, 30.00, settlements[1].Amount)
}

func TestSettlementService_OptimalSettlements_TransfersCoverAllDebts(t *testing.T) {
	service := &SettlementService{}

	balances := map[string]float64{
		"ana": 42.66,
		"ben": -13.83,
		"cat": -28.83,
	}

	settlements := service.calculateOptimalSettlements(balances)

	var transferred float64
	for _, settlement := range settlements {
		assert.Equal(t, "ana", settlement.To)
		transferred += settlement.Amount
	}
	assert.InDelta(t, 42.66, transferred, 0.011)
}

func TestSettlementService_OptimalSettlements_AllZeroBalances(t *testing.T) {
	service := &SettlementService{}

	balances := map[string]float64{
		"ana": 0,
		"ben": 0,
	}

	settlements := service.calculateOptimalSettlements(balances)
	assert.Empty(t, settlements)
}
