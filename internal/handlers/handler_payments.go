package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/unifin/campus_finance_app/internal/core/ports/services"
	"github.com/unifin/campus_finance_app/internal/dto"
	"github.com/unifin/campus_finance_app/internal/middleware"
)

// paymentHandler handles HTTP requests for the payment workflows.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(paymentService portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: paymentService}
}

func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)
	rg.POST("/fee-payments", h.recordFeePayment)
	rg.POST("/advance-applications", h.recordAdvanceApplication)
}

func (h *paymentHandler) recordFeePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.FeePaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	performedBy, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.paymentService.RecordFeePayment(c.Request.Context(), req, performedBy)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Fee payment accepted",
		slog.String("invoice_id", req.InvoiceID),
		slog.String("receipt_number", result.ReceiptNumber),
	)
	c.JSON(http.StatusCreated, result)
}

func (h *paymentHandler) recordAdvanceApplication(c *gin.Context) {
	var req dto.AdvanceApplicationRequest
	if !bindJSON(c, &req) {
		return
	}
	performedBy, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.paymentService.RecordAdvanceApplication(c.Request.Context(), req, performedBy)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
