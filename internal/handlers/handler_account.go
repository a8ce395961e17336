package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/pvs_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pvs_ledger/internal/core/ports/services"
	"github.com/SscSPs/pvs_ledger/internal/dto"
	"github.com/SscSPs/pvs_ledger/internal/middleware"
	"github.com/SscSPs/pvs_ledger/internal/utils/accounting"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
	journalService portssvc.JournalCalculatorSvc
	dayBookService portssvc.DayBookSvcFacade
	moneyScale     int32
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, moneyScale int32) {
	h := &accountHandler{
		accountService: services.Account,
		journalService: services.Journal,
		dayBookService: services.DayBook,
		moneyScale:     moneyScale,
	}

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:id", h.getAccount)
		accounts.GET("/:id/balance", h.getAccountBalance)
		accounts.GET("/by-name/:name", h.getAccountByName)
		accounts.PUT("/by-name/:name", h.renameAccount)
		accounts.DELETE("/:id", h.deleteAccount)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Creates an account of type ASSET, LIABILITY, INCOME, EXPENSE or RETAINED_EARNINGS
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Account name already used"
// @Failure 500 {object} map[string]string "Failed to create account"
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	accountType, err := domain.ParseAccountType(req.AccountType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger.Info("Received request to create account", slog.String("account_name", req.Name), slog.String("account_type", req.AccountType))
	account, err := h.accountService.CreateAccount(c.Request.Context(), req.Name, accountType)
	if err != nil {
		respondError(c, logger, err, "Failed to create account")
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List accounts
// @Tags accounts
// @Produce  json
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.accountService.ListAccounts(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list accounts")
		return
	}

	logger.Info("Accounts listed successfully", slog.Int("count", len(accounts)))
	c.JSON(http.StatusOK, dto.ToListAccountsResponse(accounts))
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce  json
// @Param   id path int true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, logger, err, "Invalid account id")
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// getAccountByName godoc
// @Summary Get an account by name
// @Tags accounts
// @Produce  json
// @Param   name path string true "Account name"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/by-name/{name} [get]
func (h *accountHandler) getAccountByName(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	account, err := h.accountService.GetAccountByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// renameAccount godoc
// @Summary Rename an account
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   name path string true "Current account name"
// @Param   body body dto.RenameRequest true "New name"
// @Success 204
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Name already used"
// @Router /accounts/by-name/{name} [put]
func (h *accountHandler) renameAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	changed, err := h.accountService.RenameAccount(c.Request.Context(), c.Param("name"), req.Name)
	if err != nil {
		respondError(c, logger, err, "Failed to rename account")
		return
	}
	if !changed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteAccount godoc
// @Summary Delete an account
// @Description Fails with 400 while any ledger entry still refers to the account
// @Tags accounts
// @Param   id path int true "Account ID"
// @Success 204
// @Failure 400 {object} map[string]string "Account in use"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{id} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, logger, err, "Invalid account id")
		return
	}

	deleted, err := h.accountService.DeleteAccount(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "Failed to delete account")
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// getAccountBalance godoc
// @Summary Get an account's balance in a day book
// @Tags accounts
// @Produce  json
// @Param   id path int true "Account ID"
// @Param   dayBookID query int false "Day book ID, defaults to the current day book"
// @Success 200 {object} dto.AccountBalanceResponse
// @Failure 404 {object} map[string]string "Account or day book not found"
// @Router /accounts/{id}/balance [get]
func (h *accountHandler) getAccountBalance(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, logger, err, "Invalid account id")
		return
	}

	account, err := h.accountService.GetAccountByID(ctx, id)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve account")
		return
	}

	var dayBook domain.DayBook
	if raw := c.Query("dayBookID"); raw != "" {
		dayBookID, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "dayBookID must be an integer"})
			return
		}
		dayBook, err = h.dayBookService.GetDayBookByID(ctx, dayBookID)
	} else {
		dayBook, err = h.dayBookService.GetCurrentDayBook(ctx)
	}
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve day book")
		return
	}

	balance, err := h.journalService.CalculateAccountBalance(ctx, account, dayBook)
	if err != nil {
		respondError(c, logger, err, "Failed to calculate balance")
		return
	}
	normal, err := accounting.NormalBalance(balance, account.Type)
	if err != nil {
		respondError(c, logger, err, "Failed to calculate balance")
		return
	}
	c.JSON(http.StatusOK, dto.AccountBalanceResponse{
		AccountID:     account.ID,
		DayBookID:     dayBook.ID,
		Balance:       accounting.FormatAmount(balance, h.moneyScale),
		NormalBalance: accounting.FormatAmount(normal, h.moneyScale),
	})
}
