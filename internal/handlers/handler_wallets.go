package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/unifin/campus_finance_app/internal/core/ports/services"
	"github.com/unifin/campus_finance_app/internal/dto"
	"github.com/unifin/campus_finance_app/internal/middleware"
)

// walletHandler handles HTTP requests for wallet administration and the
// per-wallet ledger listing.
type walletHandler struct {
	walletService portssvc.WalletSvcFacade
	ledgerService portssvc.LedgerSvcFacade
}

func newWalletHandler(walletService portssvc.WalletSvcFacade, ledgerService portssvc.LedgerSvcFacade) *walletHandler {
	return &walletHandler{walletService: walletService, ledgerService: ledgerService}
}

func registerWalletRoutes(rg *gin.RouterGroup, walletService portssvc.WalletSvcFacade, ledgerService portssvc.LedgerSvcFacade) {
	h := newWalletHandler(walletService, ledgerService)
	rg.POST("/wallets", h.createWallet)
	rg.GET("/wallets", h.listWallets)
	rg.GET("/wallets/:walletID", h.getWallet)
	rg.DELETE("/wallets/:walletID", h.deactivateWallet)
	rg.GET("/wallets/:walletID/transactions", h.listWalletTransactions)
}

func (h *walletHandler) createWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateWalletRequest
	if !bindJSON(c, &req) {
		return
	}
	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	wallet, err := h.walletService.CreateWallet(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Wallet created via API", slog.String("wallet_id", wallet.WalletID))
	c.JSON(http.StatusCreated, dto.ToWalletResponse(wallet))
}

func (h *walletHandler) listWallets(c *gin.Context) {
	var params dto.ListWalletsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	wallets, err := h.walletService.ListWallets(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dto.WalletResponse, len(wallets))
	for i := range wallets {
		responses[i] = dto.ToWalletResponse(&wallets[i])
	}
	c.JSON(http.StatusOK, gin.H{"wallets": responses})
}

func (h *walletHandler) getWallet(c *gin.Context) {
	walletID := c.Param("walletID")

	wallet, err := h.walletService.GetWalletByID(c.Request.Context(), walletID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToWalletResponse(wallet))
}

func (h *walletHandler) deactivateWallet(c *gin.Context) {
	walletID := c.Param("walletID")

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.walletService.DeactivateWallet(c.Request.Context(), walletID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *walletHandler) listWalletTransactions(c *gin.Context) {
	walletID := c.Param("walletID")

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	page, err := h.ledgerService.ListTransactionsByWallet(c.Request.Context(), walletID, params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
