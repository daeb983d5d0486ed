package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/trypie/wanderly-backend/handlers"
	"github.com/trypie/wanderly-backend/services"
)

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine) {
	// Wire services
	tripService := services.NewTripService()
	expenseService := services.NewExpenseService()
	settlementService := services.NewSettlementService(expenseService)
	excelService := services.NewExcelService(tripService, expenseService, settlementService)

	// Wire handlers
	tripHandler := handlers.NewTripHandler(tripService)
	expenseHandler := handlers.NewExpenseHandler(tripService, expenseService, settlementService)
	excelHandler := handlers.NewExcelHandler(excelService)

	v1 := router.Group("/api/v1")
	{
		// Trip endpoints
		v1.POST("/trips/create", tripHandler.CreateTrip)
		v1.POST("/trips/getByCode", tripHandler.GetTripByCode)
		v1.POST("/trips/export", excelHandler.ExportTrip)

		// Expense endpoints
		v1.POST("/expenses/calculateSplit", expenseHandler.CalculateSplit)
		v1.POST("/expenses/add", expenseHandler.AddExpense)
		v1.POST("/expenses/list", expenseHandler.ListExpenses)
		v1.POST("/expenses/remove", expenseHandler.RemoveExpense)
		v1.POST("/expenses/toggleSettled", expenseHandler.ToggleExpenseSettled)
		v1.POST("/expenses/toggleParticipantSettled", expenseHandler.ToggleParticipantSettled)
		v1.POST("/expenses/balance", expenseHandler.GetBalance)
		v1.POST("/expenses/calculateSettlements", expenseHandler.CalculateSettlements)
	}
}
