package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/unifin/campus_finance_app/internal/core/ports/services"
	"github.com/unifin/campus_finance_app/internal/dto"
)

// periodHandler handles HTTP requests for accounting period administration.
type periodHandler struct {
	periodService portssvc.PeriodSvcFacade
}

func newPeriodHandler(periodService portssvc.PeriodSvcFacade) *periodHandler {
	return &periodHandler{periodService: periodService}
}

func registerPeriodRoutes(rg *gin.RouterGroup, periodService portssvc.PeriodSvcFacade) {
	h := newPeriodHandler(periodService)
	rg.POST("/periods", h.createPeriod)
	rg.GET("/periods", h.listPeriods)
	rg.POST("/periods/:periodID/lock", h.lockPeriod)
	rg.POST("/periods/:periodID/unlock", h.unlockPeriod)
}

func (h *periodHandler) createPeriod(c *gin.Context) {
	var req dto.CreatePeriodRequest
	if !bindJSON(c, &req) {
		return
	}
	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	period, err := h.periodService.CreatePeriod(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToPeriodResponse(period))
}

func (h *periodHandler) listPeriods(c *gin.Context) {
	periods, err := h.periodService.ListPeriods(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dto.PeriodResponse, len(periods))
	for i := range periods {
		responses[i] = dto.ToPeriodResponse(&periods[i])
	}
	c.JSON(http.StatusOK, gin.H{"periods": responses})
}

func (h *periodHandler) lockPeriod(c *gin.Context) {
	periodID := c.Param("periodID")

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	period, err := h.periodService.LockPeriod(c.Request.Context(), periodID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}

func (h *periodHandler) unlockPeriod(c *gin.Context) {
	periodID := c.Param("periodID")

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	period, err := h.periodService.UnlockPeriod(c.Request.Context(), periodID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}
