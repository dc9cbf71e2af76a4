package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/fintrackhq/expense_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/expense_tracker_app/internal/dto"
	"github.com/fintrackhq/expense_tracker_app/internal/middleware"
)

// syncHandler handles the offline sync endpoint.
type syncHandler struct {
	syncService portssvc.SyncSvcFacade
}

func newSyncHandler(ss portssvc.SyncSvcFacade) *syncHandler {
	return &syncHandler{syncService: ss}
}

// syncBatch godoc
// @Summary Sync offline-created transactions
// @Description Merges a batch of client-cached transactions into the ledger. Each item is upserted by its localId, so resubmitting a batch is safe. Items are persisted independently: a failing item is reported under its localId and does not roll back the rest.
// @Tags transactions
// @Accept json
// @Produce json
// @Param batch body dto.SyncBatchRequest true "Pending transactions"
// @Success 200 {object} dto.SyncBatchResponse
// @Failure 400 {object} map[string]string "Transactions array is required"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to sync transactions"
// @Security BearerAuth
// @Router /transactions/sync [post]
func (h *syncHandler) syncBatch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	// A malformed batch (missing or non-array transactions field) is rejected
	// here, before any item is processed.
	var req dto.SyncBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for syncBatch", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Transactions array is required"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.syncService.SyncBatch(c.Request.Context(), userID, req.Transactions)
	if err != nil {
		logger.Error("Failed to sync transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sync transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSyncBatchResponse(result))
}
