package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unifin/campus_finance_app/internal/apperrors"
	"github.com/unifin/campus_finance_app/internal/middleware"
)

// statusForKind maps each error kind of the closed taxonomy to its HTTP
// status. Bad input is 400, missing resources 404, state conflicts 409,
// an uncoverable debit 422.
func statusForKind(kind apperrors.ErrorKind) int {
	switch kind {
	case apperrors.KindInvalidAmount,
		apperrors.KindValidationError,
		apperrors.KindSameWalletTransfer:
		return http.StatusBadRequest
	case apperrors.KindWalletNotFound,
		apperrors.KindInvoiceNotFound,
		apperrors.KindStudentNotFound,
		apperrors.KindTxNotFound:
		return http.StatusNotFound
	case apperrors.KindPeriodLocked,
		apperrors.KindInvoiceAlreadyPaid,
		apperrors.KindInvoiceWaived,
		apperrors.KindSlipNotDraft,
		apperrors.KindDepositAlreadyRefunded,
		apperrors.KindInvestmentNotActive,
		apperrors.KindDuplicatePeriod,
		apperrors.KindTxAlreadyReversed,
		apperrors.KindCannotReverseReversal,
		apperrors.KindCannotReverseAdvance:
		return http.StatusConflict
	case apperrors.KindInsufficientBalance:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondError translates a service error to the error envelope. Typed errors
// surface their kind and detail; sentinel errors get the matching status;
// anything else is a 500 with a generic message.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		status := statusForKind(appErr.Kind)
		body := gin.H{"error": appErr.Message, "code": string(appErr.Kind)}
		if appErr.Detail != nil {
			body["detail"] = appErr.Detail
		}
		if status >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.String("error", err.Error()))
		} else {
			logger.Warn("Request rejected", slog.String("code", string(appErr.Kind)), slog.String("error", appErr.Message))
		}
		c.JSON(status, body)
		return
	}

	if errors.Is(err, apperrors.ErrNotFound) {
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "code": "NotFound"})
		return
	}
	if errors.Is(err, apperrors.ErrValidation) {
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": string(apperrors.KindValidationError)})
		return
	}
	if errors.Is(err, apperrors.ErrDuplicate) {
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "code": "Duplicate"})
		return
	}

	logger.Error("Unhandled service error", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// bindJSON binds the request body and writes the 400 envelope on failure.
func bindJSON(c *gin.Context, target any) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "code": string(apperrors.KindValidationError)})
		return false
	}
	return true
}

// requireUserID pulls the authenticated user from the context, aborting with
// 401 when absent.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}
