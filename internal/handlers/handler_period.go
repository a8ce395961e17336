package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pvs_ledger/internal/core/ports/services"
	"github.com/SscSPs/pvs_ledger/internal/dto"
	"github.com/SscSPs/pvs_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type periodHandler struct {
	periodService portssvc.PeriodSvcFacade
}

func registerPeriodRoutes(rg *gin.RouterGroup, periodService portssvc.PeriodSvcFacade) {
	h := &periodHandler{periodService: periodService}

	periods := rg.Group("/periods")
	{
		periods.POST("", h.createPeriod)
		periods.GET("", h.listPeriods)
		periods.GET("/:id", h.getPeriod)
		periods.PUT("/by-name/:name", h.renamePeriod)
		periods.DELETE("/:id", h.deletePeriod)
	}
}

// createPeriod godoc
// @Summary Create an accounting period
// @Tags periods
// @Accept  json
// @Produce  json
// @Param   period body dto.CreatePeriodRequest true "Period details"
// @Success 201 {object} dto.PeriodResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Period name already used"
// @Router /periods [post]
func (h *periodHandler) createPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePeriod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	period, err := h.periodService.CreatePeriod(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, logger, err, "Failed to create period")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPeriodResponse(period))
}

// listPeriods godoc
// @Summary List accounting periods
// @Tags periods
// @Produce  json
// @Success 200 {object} dto.ListPeriodsResponse
// @Router /periods [get]
func (h *periodHandler) listPeriods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periods, err := h.periodService.ListPeriods(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list periods")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPeriodsResponse(periods))
}

// getPeriod godoc
// @Summary Get an accounting period
// @Tags periods
// @Produce  json
// @Param   id path int true "Period ID"
// @Success 200 {object} dto.PeriodResponse
// @Failure 404 {object} map[string]string "Period not found"
// @Router /periods/{id} [get]
func (h *periodHandler) getPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, logger, err, "Invalid period id")
		return
	}
	period, err := h.periodService.GetPeriodByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve period")
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}

// renamePeriod godoc
// @Summary Rename an accounting period
// @Tags periods
// @Accept  json
// @Param   name path string true "Current period name"
// @Param   body body dto.RenameRequest true "New name"
// @Success 204
// @Failure 404 {object} map[string]string "Period not found"
// @Router /periods/by-name/{name} [put]
func (h *periodHandler) renamePeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	changed, err := h.periodService.RenamePeriod(c.Request.Context(), c.Param("name"), req.Name)
	if err != nil {
		respondError(c, logger, err, "Failed to rename period")
		return
	}
	if !changed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Period not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// deletePeriod godoc
// @Summary Delete an accounting period
// @Tags periods
// @Param   id path int true "Period ID"
// @Success 204
// @Failure 400 {object} map[string]string "Period still has day books"
// @Failure 404 {object} map[string]string "Period not found"
// @Router /periods/{id} [delete]
func (h *periodHandler) deletePeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, logger, err, "Invalid period id")
		return
	}
	deleted, err := h.periodService.DeletePeriod(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "Failed to delete period")
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Period not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
