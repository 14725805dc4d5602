package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/misterclayt0n/regimen/internal/catalog"
	"github.com/misterclayt0n/regimen/internal/models"
	"github.com/misterclayt0n/regimen/internal/reminders"
	"github.com/misterclayt0n/regimen/internal/scoring"
	"github.com/misterclayt0n/regimen/internal/utils"
)

type dayResponse struct {
	DayLog      *models.DayLog    `json:"day_log"`
	Score       float64           `json:"score"`
	Percent     int               `json:"percent"`
	Band        string            `json:"band"`
	Breakdown   scoring.Breakdown `json:"breakdown"`
	SleepStatus string            `json:"sleep_status"`
	Schedule    []models.MealSlot `json:"schedule"`
}

func newDayResponse(log *models.DayLog) dayResponse {
	b := scoring.BreakdownOf(log)
	score := b.Total()
	p := scoring.Percent(score)
	return dayResponse{
		DayLog:      log,
		Score:       score,
		Percent:     p,
		Band:        scoring.BandFor(p).String(),
		Breakdown:   b,
		SleepStatus: scoring.SleepStatusFor(log.SleepHours).String(),
		Schedule:    log.MealSchedule(),
	}
}

func (s *Server) respondDay(c *gin.Context, log *models.DayLog, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newDayResponse(log))
}

func (s *Server) getDay(c *gin.Context) {
	date, ok := s.dateParam(c)
	if !ok {
		return
	}
	log, err := s.tracker.Day(c.Request.Context(), date)
	s.respondDay(c, log, err)
}

func (s *Server) toggleItem(c *gin.Context) {
	date, ok := s.dateParam(c)
	if !ok {
		return
	}
	log, err := s.tracker.Toggle(c.Request.Context(), date, c.Param("id"))
	s.respondDay(c, log, err)
}

type waterRequest struct {
	Delta *float64 `json:"delta" binding:"required"`
}

func (s *Server) addWater(c *gin.Context) {
	date, ok := s.dateParam(c)
	if !ok {
		return
	}
	var req waterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log, err := s.tracker.AddWater(c.Request.Context(), date, *req.Delta)
	s.respondDay(c, log, err)
}

type sleepRequest struct {
	Hours *float64 `json:"hours" binding:"required,gte=0,lte=24"`
}

func (s *Server) setSleep(c *gin.Context) {
	date, ok := s.dateParam(c)
	if !ok {
		return
	}
	var req sleepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log, err := s.tracker.SetSleep(c.Request.Context(), date, *req.Hours)
	s.respondDay(c, log, err)
}

type weightRequest struct {
	Weight *float64 `json:"weight" binding:"omitempty,gt=0"` // null clears
}

func (s *Server) setWeight(c *gin.Context) {
	date, ok := s.dateParam(c)
	if !ok {
		return
	}
	var req weightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log, err := s.tracker.SetWeight(c.Request.Context(), date, req.Weight)
	s.respondDay(c, log, err)
}

type dayTypeRequest struct {
	DayType string `json:"day_type" binding:"required"`
}

func (s *Server) changeDayType(c *gin.Context) {
	date, ok := s.dateParam(c)
	if !ok {
		return
	}
	var req dayTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dt, known := catalog.LookupDayType(req.DayType)
	if !known {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown day type " + req.DayType})
		return
	}
	log, err := s.tracker.ChangeDayType(c.Request.Context(), date, dt)
	s.respondDay(c, log, err)
}

func (s *Server) resetDay(c *gin.Context) {
	date, ok := s.dateParam(c)
	if !ok {
		return
	}
	log, err := s.tracker.Reset(c.Request.Context(), date)
	s.respondDay(c, log, err)
}

func (s *Server) deleteDay(c *gin.Context) {
	date, ok := s.dateParam(c)
	if !ok {
		return
	}
	if err := s.tracker.Delete(c.Request.Context(), date); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type weekInfo struct {
	Week   int    `json:"week"`
	Status string `json:"status"`
}

type cycleResponse struct {
	Cycle         *models.Cycle      `json:"cycle"`
	CurrentDay    int                `json:"current_day"`
	CurrentWeek   int                `json:"current_week"`
	Progress      float64            `json:"progress"`
	DaysRemaining int                `json:"days_remaining"`
	EndDate       time.Time          `json:"end_date"`
	Completed     bool               `json:"completed"`
	Weeks         []weekInfo         `json:"weeks"`
	BloodWork     []models.Milestone `json:"blood_work"`
}

func newCycleResponse(cy *models.Cycle, now time.Time) cycleResponse {
	weeks := make([]weekInfo, 0, catalog.CycleWeeks)
	for w := 1; w <= catalog.CycleWeeks; w++ {
		status := "upcoming"
		switch cy.Status(w, now) {
		case models.WeekCurrent:
			status = "current"
		case models.WeekPast:
			status = "past"
		}
		weeks = append(weeks, weekInfo{Week: w, Status: status})
	}
	return cycleResponse{
		Cycle:         cy,
		CurrentDay:    cy.CurrentDay(now),
		CurrentWeek:   cy.CurrentWeek(now),
		Progress:      cy.Progress(now),
		DaysRemaining: cy.DaysRemaining(now),
		EndDate:       cy.EndDate(),
		Completed:     cy.IsCompleted(now),
		Weeks:         weeks,
		BloodWork:     cy.BloodWorkDates(),
	}
}

func (s *Server) getCycle(c *gin.Context) {
	cy, err := s.tracker.ActiveCycle(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCycleResponse(cy, s.tracker.Now()))
}

func (s *Server) startCycle(c *gin.Context) {
	cy, err := s.tracker.StartNewCycle(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newCycleResponse(cy, s.tracker.Now()))
}

type cycleStartRequest struct {
	StartDate string `json:"start_date" binding:"required"`
}

func (s *Server) setCycleStart(c *gin.Context) {
	var req cycleStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cy, err := s.tracker.SetCycleStart(c.Request.Context(), start)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCycleResponse(cy, s.tracker.Now()))
}

func (s *Server) getHistory(c *gin.Context) {
	h, err := s.tracker.History(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h)
}

func (s *Server) getReminders(c *gin.Context) {
	date := s.tracker.Now()
	if raw := c.Query("date"); raw != "" {
		d, err := utils.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		date = d
	}

	settings, err := s.LoadSettings()
	if err != nil {
		writeError(c, err)
		return
	}
	ctx := c.Request.Context()
	log, err := s.tracker.Day(ctx, date)
	if err != nil {
		writeError(c, err)
		return
	}
	cy, err := s.tracker.ActiveCycle(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	plan, err := reminders.Plan(settings, log, cy, s.tracker.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if plan == nil {
		plan = []reminders.Reminder{}
	}
	c.JSON(http.StatusOK, plan)
}

func (s *Server) getSettings(c *gin.Context) {
	settings, err := s.LoadSettings()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (s *Server) putSettings(c *gin.Context) {
	settings := utils.DefaultSettings()
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := settings.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.SaveSettings(settings); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
