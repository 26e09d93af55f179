package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/unifin/campus_finance_app/internal/core/ports/services"
	"github.com/unifin/campus_finance_app/internal/dto"
)

// payrollHandler handles HTTP requests for salary disbursements.
type payrollHandler struct {
	payrollService portssvc.PayrollSvcFacade
}

func newPayrollHandler(payrollService portssvc.PayrollSvcFacade) *payrollHandler {
	return &payrollHandler{payrollService: payrollService}
}

func registerPayrollRoutes(rg *gin.RouterGroup, payrollService portssvc.PayrollSvcFacade) {
	h := newPayrollHandler(payrollService)
	rg.POST("/salary-disbursements", h.recordSalaryDisbursement)
}

func (h *payrollHandler) recordSalaryDisbursement(c *gin.Context) {
	var req dto.SalaryDisbursementRequest
	if !bindJSON(c, &req) {
		return
	}
	performedBy, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.payrollService.RecordSalaryDisbursement(c.Request.Context(), req, performedBy)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
