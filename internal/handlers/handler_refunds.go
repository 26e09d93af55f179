package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/unifin/campus_finance_app/internal/core/ports/services"
	"github.com/unifin/campus_finance_app/internal/dto"
)

// refundHandler handles HTTP requests for refunds and security deposits.
type refundHandler struct {
	refundService portssvc.RefundSvcFacade
}

func newRefundHandler(refundService portssvc.RefundSvcFacade) *refundHandler {
	return &refundHandler{refundService: refundService}
}

func registerRefundRoutes(rg *gin.RouterGroup, refundService portssvc.RefundSvcFacade) {
	h := newRefundHandler(refundService)
	rg.POST("/refunds", h.recordRefund)
	rg.POST("/security-deposits", h.recordSecurityDeposit)
}

func (h *refundHandler) recordRefund(c *gin.Context) {
	var req dto.RefundRequest
	if !bindJSON(c, &req) {
		return
	}
	performedBy, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.refundService.RecordRefund(c.Request.Context(), req, performedBy)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *refundHandler) recordSecurityDeposit(c *gin.Context) {
	var req dto.SecurityDepositRequest
	if !bindJSON(c, &req) {
		return
	}
	performedBy, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.refundService.RecordSecurityDeposit(c.Request.Context(), req, performedBy)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
