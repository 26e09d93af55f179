package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/unifin/campus_finance_app/internal/core/ports/services"
	"github.com/unifin/campus_finance_app/internal/dto"
)

// investmentHandler handles HTTP requests for investment placements and
// maturities.
type investmentHandler struct {
	investmentService portssvc.InvestmentSvcFacade
}

func newInvestmentHandler(investmentService portssvc.InvestmentSvcFacade) *investmentHandler {
	return &investmentHandler{investmentService: investmentService}
}

func registerInvestmentRoutes(rg *gin.RouterGroup, investmentService portssvc.InvestmentSvcFacade) {
	h := newInvestmentHandler(investmentService)
	rg.POST("/investments/:investmentID/outflow", h.recordOutflow)
	rg.POST("/investments/:investmentID/return", h.recordReturn)
}

func (h *investmentHandler) recordOutflow(c *gin.Context) {
	var req dto.InvestmentOutflowRequest
	if !bindJSON(c, &req) {
		return
	}
	req.InvestmentID = c.Param("investmentID")

	performedBy, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.investmentService.RecordInvestmentOutflow(c.Request.Context(), req, performedBy)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *investmentHandler) recordReturn(c *gin.Context) {
	var req dto.InvestmentReturnRequest
	if !bindJSON(c, &req) {
		return
	}
	req.InvestmentID = c.Param("investmentID")

	performedBy, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.investmentService.RecordInvestmentReturn(c.Request.Context(), req, performedBy)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
