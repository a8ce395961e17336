package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/pvs_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pvs_ledger/internal/core/ports/services"
	"github.com/SscSPs/pvs_ledger/internal/dto"
	"github.com/SscSPs/pvs_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler posts and lists transactions.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
	accountService portssvc.AccountReaderSvc
	dayBookService portssvc.DayBookSvcFacade
	moneyScale     int32
}

func registerJournalRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, moneyScale int32) {
	h := &journalHandler{
		journalService: services.Journal,
		accountService: services.Account,
		dayBookService: services.DayBook,
		moneyScale:     moneyScale,
	}

	rg.POST("/journals", h.postJournal)

	txns := rg.Group("/transactions")
	{
		txns.POST("", h.postTransaction)
		txns.GET("", h.listTransactions)
		txns.GET("/:reference", h.getTransaction)
	}
}

// resolveDayBook returns the requested day book, or the current one for id 0.
func (h *journalHandler) resolveDayBook(ctx context.Context, id int64) (domain.DayBook, error) {
	if id == 0 {
		return h.dayBookService.GetCurrentDayBook(ctx)
	}
	return h.dayBookService.GetDayBookByID(ctx, id)
}

// postTransaction godoc
// @Summary Post a transfer between two accounts
// @Description Writes one journal with two ledger entries, all or nothing
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.PostTransactionRequest true "Transfer details"
// @Success 201 {object} dto.PostingResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown account"
// @Failure 409 {object} map[string]string "Reference already used"
// @Failure 500 {object} map[string]string "Posting was rolled back"
// @Router /transactions [post]
func (h *journalHandler) postTransaction(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)
	var req dto.PostTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PostTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	logger = logger.With(slog.String("reference", req.Reference))

	amount, err := domain.MoneyFromDecimal(req.Amount, h.moneyScale)
	if err != nil {
		respondError(c, logger, err, "Invalid amount")
		return
	}
	from, err := h.accountService.GetAccountByID(ctx, req.FromAccountID)
	if err != nil {
		respondDependencyError(c, logger, err, "Failed to resolve source account")
		return
	}
	to, err := h.accountService.GetAccountByID(ctx, req.ToAccountID)
	if err != nil {
		respondDependencyError(c, logger, err, "Failed to resolve destination account")
		return
	}
	dayBook, err := h.resolveDayBook(ctx, req.DayBookID)
	if err != nil {
		respondDependencyError(c, logger, err, "Failed to resolve day book")
		return
	}

	posted, err := h.journalService.PostTransaction(ctx, dto.JournalDate(req.Date), req.Narrative, amount, from, to, req.Reference, dayBook.ID)
	h.respondPosting(c, logger, req.Reference, posted, err)
}

// postJournal godoc
// @Summary Post a multi-line journal
// @Description Lines must touch at least two accounts and sum to zero
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   journal body dto.PostJournalRequest true "Journal details"
// @Success 201 {object} dto.PostingResponse
// @Failure 400 {object} map[string]string "Invalid or unbalanced journal"
// @Failure 409 {object} map[string]string "Reference already used"
// @Failure 500 {object} map[string]string "Posting was rolled back"
// @Router /journals [post]
func (h *journalHandler) postJournal(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)
	var req dto.PostJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PostJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	logger = logger.With(slog.String("reference", req.Reference))

	lines, err := req.ToPostingLines(h.moneyScale)
	if err != nil {
		respondError(c, logger, err, "Invalid amount")
		return
	}
	dayBook, err := h.resolveDayBook(ctx, req.DayBookID)
	if err != nil {
		respondDependencyError(c, logger, err, "Failed to resolve day book")
		return
	}

	journal := domain.Journal{
		Date:      dto.JournalDate(req.Date),
		Reference: req.Reference,
		Narrative: req.Narrative,
		DayBookID: dayBook.ID,
	}
	posted, err := h.journalService.PostJournal(ctx, journal, lines)
	h.respondPosting(c, logger, req.Reference, posted, err)
}

func (h *journalHandler) respondPosting(c *gin.Context, logger *slog.Logger, reference string, posted bool, err error) {
	if err != nil {
		respondDependencyError(c, logger, err, "Failed to post transaction")
		return
	}
	if !posted {
		logger.Error("Posting rolled back")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Posting was rolled back; nothing was recorded"})
		return
	}
	c.JSON(http.StatusCreated, dto.PostingResponse{Reference: reference, Posted: true})
}

// listTransactions godoc
// @Summary List transactions
// @Description Without filters lists every transaction. accountID narrows to one account within a day book (the current one unless dayBookID is given).
// @Tags transactions
// @Produce  json
// @Param   dayBookID query int false "Day book ID"
// @Param   accountID query int false "Account ID"
// @Param   limit query int false "Page size, default 100, at most 500"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 404 {object} map[string]string "Account or day book not found"
// @Router /transactions [get]
func (h *journalHandler) listTransactions(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	filter := domain.TransactionFilter{DayBookID: params.DayBookID}
	switch {
	case params.AccountID > 0:
		account, accErr := h.accountService.GetAccountByID(ctx, params.AccountID)
		if accErr != nil {
			respondError(c, logger, accErr, "Failed to retrieve account")
			return
		}
		dayBook, dbErr := h.resolveDayBook(ctx, params.DayBookID)
		if dbErr != nil {
			respondError(c, logger, dbErr, "Failed to retrieve day book")
			return
		}
		filter = domain.TransactionFilter{AccountID: account.ID, DayBookID: dayBook.ID}
	case params.DayBookID > 0:
		if _, dbErr := h.dayBookService.GetDayBookByID(ctx, params.DayBookID); dbErr != nil {
			respondError(c, logger, dbErr, "Failed to retrieve day book")
			return
		}
	}

	var token *string
	if params.NextToken != "" {
		token = &params.NextToken
	}
	page, nextToken, err := h.journalService.ListTransactions(ctx, filter, params.Limit, token)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}

	logger.Info("Transactions listed successfully", slog.Int("count", len(page)))
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(page, nextToken))
}

// getTransaction godoc
// @Summary Get a transaction by reference
// @Tags transactions
// @Produce  json
// @Param   reference path string true "Journal reference"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Router /transactions/{reference} [get]
func (h *journalHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	txn, err := h.journalService.GetTransactionByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}
