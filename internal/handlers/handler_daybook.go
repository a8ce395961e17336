package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pvs_ledger/internal/core/ports/services"
	"github.com/SscSPs/pvs_ledger/internal/dto"
	"github.com/SscSPs/pvs_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type dayBookHandler struct {
	dayBookService portssvc.DayBookSvcFacade
}

func registerDayBookRoutes(rg *gin.RouterGroup, dayBookService portssvc.DayBookSvcFacade) {
	h := &dayBookHandler{dayBookService: dayBookService}

	dayBooks := rg.Group("/daybooks")
	{
		dayBooks.POST("", h.createDayBook)
		dayBooks.GET("", h.listDayBooks)
		dayBooks.GET("/current", h.getCurrentDayBook)
		dayBooks.PUT("/current", h.setCurrentDayBook)
		dayBooks.GET("/:id", h.getDayBook)
		dayBooks.PUT("/by-name/:name", h.renameDayBook)
		dayBooks.DELETE("/:id", h.deleteDayBook)
	}
}

// createDayBook godoc
// @Summary Open a day book within a period
// @Tags daybooks
// @Accept  json
// @Produce  json
// @Param   daybook body dto.CreateDayBookRequest true "Day book details"
// @Success 201 {object} dto.DayBookResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown period"
// @Failure 409 {object} map[string]string "Day book name already used"
// @Router /daybooks [post]
func (h *dayBookHandler) createDayBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDayBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDayBook", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	dayBook, err := h.dayBookService.CreateDayBook(c.Request.Context(), req.Name, req.PeriodID)
	if err != nil {
		respondDependencyError(c, logger, err, "Failed to create day book")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDayBookResponse(dayBook))
}

// listDayBooks godoc
// @Summary List day books
// @Tags daybooks
// @Produce  json
// @Success 200 {object} dto.ListDayBooksResponse
// @Router /daybooks [get]
func (h *dayBookHandler) listDayBooks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dayBooks, err := h.dayBookService.ListDayBooks(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list day books")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDayBooksResponse(dayBooks))
}

// getDayBook godoc
// @Summary Get a day book
// @Tags daybooks
// @Produce  json
// @Param   id path int true "Day book ID"
// @Success 200 {object} dto.DayBookResponse
// @Failure 404 {object} map[string]string "Day book not found"
// @Router /daybooks/{id} [get]
func (h *dayBookHandler) getDayBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, logger, err, "Invalid day book id")
		return
	}
	dayBook, err := h.dayBookService.GetDayBookByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve day book")
		return
	}
	c.JSON(http.StatusOK, dto.ToDayBookResponse(dayBook))
}

// getCurrentDayBook godoc
// @Summary Get the current day book
// @Tags daybooks
// @Produce  json
// @Success 200 {object} dto.DayBookResponse
// @Failure 404 {object} map[string]string "No current day book configured"
// @Router /daybooks/current [get]
func (h *dayBookHandler) getCurrentDayBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dayBook, err := h.dayBookService.GetCurrentDayBook(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve current day book")
		return
	}
	c.JSON(http.StatusOK, dto.ToDayBookResponse(dayBook))
}

// setCurrentDayBook godoc
// @Summary Select the current day book
// @Tags daybooks
// @Accept  json
// @Param   body body dto.SetCurrentDayBookRequest true "Day book to make current"
// @Success 204
// @Failure 400 {object} map[string]string "Unknown day book"
// @Router /daybooks/current [put]
func (h *dayBookHandler) setCurrentDayBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetCurrentDayBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if err := h.dayBookService.SetCurrentDayBook(c.Request.Context(), req.DayBookID); err != nil {
		respondDependencyError(c, logger, err, "Failed to set current day book")
		return
	}
	c.Status(http.StatusNoContent)
}

// renameDayBook godoc
// @Summary Rename a day book
// @Tags daybooks
// @Accept  json
// @Param   name path string true "Current day book name"
// @Param   body body dto.RenameRequest true "New name"
// @Success 204
// @Failure 404 {object} map[string]string "Day book not found"
// @Router /daybooks/by-name/{name} [put]
func (h *dayBookHandler) renameDayBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	changed, err := h.dayBookService.RenameDayBook(c.Request.Context(), c.Param("name"), req.Name)
	if err != nil {
		respondError(c, logger, err, "Failed to rename day book")
		return
	}
	if !changed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Day book not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteDayBook godoc
// @Summary Delete a day book
// @Tags daybooks
// @Param   id path int true "Day book ID"
// @Success 204
// @Failure 400 {object} map[string]string "Day book still has journals"
// @Failure 404 {object} map[string]string "Day book not found"
// @Router /daybooks/{id} [delete]
func (h *dayBookHandler) deleteDayBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, logger, err, "Invalid day book id")
		return
	}
	deleted, err := h.dayBookService.DeleteDayBook(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "Failed to delete day book")
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Day book not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
