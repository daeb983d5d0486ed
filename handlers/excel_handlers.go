// handlers/excel_handlers.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trypie/wanderly-backend/models"
	"github.com/trypie/wanderly-backend/services"
	"github.com/trypie/wanderly-backend/utils"
)

// ExcelHandler handles trip export HTTP requests
type ExcelHandler struct {
	excelService *services.ExcelService
}

// NewExcelHandler creates a new Excel handler
func NewExcelHandler(excelService *services.ExcelService) *ExcelHandler {
	return &ExcelHandler{excelService: excelService}
}

// ExportTrip handles POST /trips/export
func (h *ExcelHandler) ExportTrip(c *gin.Context) {
	var request models.GetTripByCodeRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	excelFile, filename, err := h.excelService.ExportTripToExcel(request.Code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export trip: " + err.Error()})
		return
	}

	// Set headers for file download
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Header("Content-Transfer-Encoding", "binary")

	if err := excelFile.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file: " + err.Error()})
		return
	}
}
