package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fintrackhq/expense_tracker_app/internal/apperrors"
	portssvc "github.com/fintrackhq/expense_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/expense_tracker_app/internal/dto"
	"github.com/fintrackhq/expense_tracker_app/internal/middleware"
)

// walletHandler handles HTTP requests related to wallets.
type walletHandler struct {
	walletService portssvc.WalletSvcFacade
}

func newWalletHandler(ws portssvc.WalletSvcFacade) *walletHandler {
	return &walletHandler{walletService: ws}
}

// registerWalletRoutes registers routes related to wallets.
func registerWalletRoutes(rg *gin.RouterGroup, walletService portssvc.WalletSvcFacade) {
	h := newWalletHandler(walletService)

	wallets := rg.Group("/wallets")
	{
		wallets.POST("", h.createWallet)
		wallets.GET("", h.listWallets)
		wallets.GET("/:id", h.getWallet)
		wallets.DELETE("/:id", h.deleteWallet)
	}
}

// createWallet godoc
// @Summary Create a new wallet
// @Description Creates a named balance container for the logged-in user
// @Tags wallets
// @Accept json
// @Produce json
// @Param wallet body dto.CreateWalletRequest true "Wallet details"
// @Success 201 {object} dto.WalletResponse
// @Failure 400 {object} map[string]string "Wallet name is required"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create wallet"
// @Security BearerAuth
// @Router /wallets [post]
func (h *walletHandler) createWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createWallet", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Wallet name is required"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	wallet, err := h.walletService.CreateWallet(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create wallet", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create wallet"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToCreatedWalletResponse(wallet))
}

// listWallets godoc
// @Summary List wallets
// @Description Lists the user's wallets, each with its balance derived from the ledger at request time
// @Tags wallets
// @Produce json
// @Success 200 {object} dto.ListWalletsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list wallets"
// @Security BearerAuth
// @Router /wallets [get]
func (h *walletHandler) listWallets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	wallets, err := h.walletService.ListWallets(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list wallets", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list wallets"})
		return
	}

	resp := dto.ListWalletsResponse{Wallets: make([]dto.WalletResponse, len(wallets))}
	for i := range wallets {
		resp.Wallets[i] = dto.ToWalletResponse(&wallets[i])
	}
	c.JSON(http.StatusOK, resp)
}

// getWallet godoc
// @Summary Get a wallet by ID
// @Description Retrieves one wallet with its derived current balance
// @Tags wallets
// @Produce json
// @Param id path string true "Wallet ID"
// @Success 200 {object} dto.WalletResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Wallet not found"
// @Failure 500 {object} map[string]string "Failed to retrieve wallet"
// @Security BearerAuth
// @Router /wallets/{id} [get]
func (h *walletHandler) getWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	walletID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	wallet, err := h.walletService.GetWalletByID(c.Request.Context(), walletID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Wallet not found"})
		} else {
			logger.Error("Failed to get wallet", slog.String("error", err.Error()), slog.String("wallet_id", walletID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve wallet"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToWalletResponse(wallet))
}

// deleteWallet godoc
// @Summary Delete a wallet
// @Description Removes the wallet and unlinks its transactions; the ledger entries themselves are preserved
// @Tags wallets
// @Produce json
// @Param id path string true "Wallet ID"
// @Success 200 {object} dto.DeleteWalletResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Wallet not found"
// @Failure 500 {object} map[string]string "Failed to delete wallet"
// @Security BearerAuth
// @Router /wallets/{id} [delete]
func (h *walletHandler) deleteWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	walletID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	unlinked, err := h.walletService.DeleteWallet(c.Request.Context(), walletID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Wallet not found"})
		} else {
			logger.Error("Failed to delete wallet", slog.String("error", err.Error()), slog.String("wallet_id", walletID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete wallet"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.DeleteWalletResponse{Message: "Wallet deleted", UnlinkedTransactions: unlinked})
}
