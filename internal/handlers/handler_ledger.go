package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/unifin/campus_finance_app/internal/core/ports/services"
	"github.com/unifin/campus_finance_app/internal/dto"
)

// ledgerHandler handles HTTP requests for the ledger read surface and the
// reversal engine.
type ledgerHandler struct {
	ledgerService   portssvc.LedgerSvcFacade
	reversalService portssvc.ReversalSvcFacade
}

func newLedgerHandler(ledgerService portssvc.LedgerSvcFacade, reversalService portssvc.ReversalSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ledgerService, reversalService: reversalService}
}

func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, reversalService portssvc.ReversalSvcFacade) {
	h := newLedgerHandler(ledgerService, reversalService)
	rg.GET("/transactions/:transactionID", h.getTransaction)
	rg.POST("/transactions/:transactionID/reverse", h.reverseTransaction)
}

func (h *ledgerHandler) getTransaction(c *gin.Context) {
	txID := c.Param("transactionID")

	txn, err := h.ledgerService.GetTransactionByID(c.Request.Context(), txID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

func (h *ledgerHandler) reverseTransaction(c *gin.Context) {
	txID := c.Param("transactionID")

	var req dto.ReversalRequest
	if !bindJSON(c, &req) {
		return
	}
	performedBy, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.reversalService.ReverseTransaction(c.Request.Context(), txID, req, performedBy)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
