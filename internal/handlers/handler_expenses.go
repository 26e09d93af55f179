package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/unifin/campus_finance_app/internal/core/ports/services"
	"github.com/unifin/campus_finance_app/internal/dto"
)

// expenseHandler handles HTTP requests for expense payments.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

func newExpenseHandler(expenseService portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{expenseService: expenseService}
}

func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(expenseService)
	rg.POST("/expense-payments", h.recordExpensePayment)
}

func (h *expenseHandler) recordExpensePayment(c *gin.Context) {
	var req dto.ExpensePaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	performedBy, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.expenseService.RecordExpensePayment(c.Request.Context(), req, performedBy)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
