package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/akale-dev/pf_ledger_app/internal/apperrors"
	"github.com/akale-dev/pf_ledger_app/internal/core/domain"
	portssvc "github.com/akale-dev/pf_ledger_app/internal/core/ports/services"
	"github.com/akale-dev/pf_ledger_app/internal/dto"
	"github.com/akale-dev/pf_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests against the ledger facade.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ls,
	}
}

// registerLedgerRoutes registers routes related to accounts, transactions
// and transfers. Mutation routes carry the rate-limit middleware.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, rateLimit gin.HandlerFunc) {
	h := newLedgerHandler(ledgerService)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.GET("/:kind", h.getAccount)
		accounts.PUT("/:kind/balance", rateLimit, h.updateBalance)
	}
	rg.GET("/transactions", h.listTransactions)
	rg.POST("/transfers", rateLimit, h.createTransfer)
}

// listAccounts returns the current snapshot, one account per fixed kind.
func (h *ledgerHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.ledgerService.Accounts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list accounts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve accounts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountMapResponse(accounts))
}

// getAccount returns a single account by kind.
func (h *ledgerHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	kind := domain.AccountKind(c.Param("kind"))

	account, err := h.ledgerService.GetAccount(c.Request.Context(), kind)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found", slog.String("kind", string(kind)))
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to get account", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve account"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// updateBalance replaces the balance of one account without creating a
// transaction record (out-of-band correction). Zero is a valid balance.
func (h *ledgerHandler) updateBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	kind := domain.AccountKind(c.Param("kind"))

	var req dto.UpdateBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBalance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.ledgerService.UpdateBalance(c.Request.Context(), kind, *req.Balance)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found for balance update", slog.String("kind", string(kind)))
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to update balance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update balance"})
		}
		return
	}

	logger.Info("Balance updated",
		slog.String("kind", string(kind)),
		slog.String("balance", req.Balance.String()))
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listTransactions returns the full log, newest first.
func (h *ledgerHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	transactions, err := h.ledgerService.Transactions(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionListResponse(transactions))
}

// createTransfer moves funds between two accounts and returns the created
// record pair, destination side first. Binding rejects kinds outside the
// fixed set and same-account transfers; non-positive amounts are rejected
// here so the core can stay faithful to the permissive original.
func (h *ledgerHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Transfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if !req.Amount.IsPositive() {
		logger.Warn("Rejected non-positive transfer amount", slog.String("amount", req.Amount.String()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Transfer amount must be positive"})
		return
	}

	logger.Info("Received transfer request",
		slog.String("from", string(req.FromAccount)),
		slog.String("to", string(req.ToAccount)),
		slog.String("amount", req.Amount.String()))

	records, err := h.ledgerService.Transfer(c.Request.Context(), req.FromAccount, req.ToAccount, req.Amount)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found for transfer")
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to execute transfer", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to execute transfer"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionListResponse(records))
}
