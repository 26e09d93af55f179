package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/unifin/campus_finance_app/internal/core/ports/services"
	"github.com/unifin/campus_finance_app/internal/dto"
)

// advanceHandler handles HTTP requests for student advance balances.
type advanceHandler struct {
	advanceService portssvc.AdvanceSvcFacade
}

func newAdvanceHandler(advanceService portssvc.AdvanceSvcFacade) *advanceHandler {
	return &advanceHandler{advanceService: advanceService}
}

func registerAdvanceRoutes(rg *gin.RouterGroup, advanceService portssvc.AdvanceSvcFacade) {
	h := newAdvanceHandler(advanceService)
	rg.GET("/students/:studentID/advance-balance", h.getAdvanceBalance)
}

func (h *advanceHandler) getAdvanceBalance(c *gin.Context) {
	studentID := c.Param("studentID")

	advance, err := h.advanceService.GetAdvanceBalance(c.Request.Context(), studentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AdvanceBalanceResponse{
		StudentID:   advance.StudentID,
		Balance:     advance.Balance,
		LastUpdated: advance.LastUpdatedAt,
	})
}
