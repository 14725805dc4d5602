// Package server exposes the tracker over HTTP and streams tracker events
// over a WebSocket.
package server

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/misterclayt0n/regimen/internal/config"
	"github.com/misterclayt0n/regimen/internal/tracker"
	"github.com/misterclayt0n/regimen/internal/utils"
)

type Server struct {
	engine  *gin.Engine
	tracker *tracker.Tracker
	hub     *Hub

	// Settings are read on every request that needs them so edits made from
	// the CLI show up without a restart.
	LoadSettings func() (utils.Settings, error)
	SaveSettings func(utils.Settings) error
}

// New wires the routes. The hub should be the tracker's feedback sink.
func New(tr *tracker.Tracker, hub *Hub, cfg config.ServerConfig) *Server {
	s := &Server{
		engine:       gin.Default(),
		tracker:      tr,
		hub:          hub,
		LoadSettings: utils.LoadSettings,
		SaveSettings: utils.SaveSettings,
	}

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.AllowedOrigins
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type"}
	if len(corsCfg.AllowOrigins) == 0 {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
	}
	s.engine.Use(cors.New(corsCfg))

	s.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.engine.Group("/api")
	{
		api.GET("/days/:date", s.getDay)
		api.POST("/days/:date/items/:id/toggle", s.toggleItem)
		api.POST("/days/:date/water", s.addWater)
		api.PUT("/days/:date/sleep", s.setSleep)
		api.PUT("/days/:date/weight", s.setWeight)
		api.PUT("/days/:date/day-type", s.changeDayType)
		api.POST("/days/:date/reset", s.resetDay)
		api.DELETE("/days/:date", s.deleteDay)

		api.GET("/cycle", s.getCycle)
		api.POST("/cycle", s.startCycle)
		api.PUT("/cycle/start", s.setCycleStart)

		api.GET("/history", s.getHistory)
		api.GET("/reminders", s.getReminders)

		api.GET("/settings", s.getSettings)
		api.PUT("/settings", s.putSettings)

		api.GET("/ws", hub.serveWS)
	}

	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	log.Printf("Running API server on %s", addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// dateParam reads :date as YYYY-MM-DD, or "today".
func (s *Server) dateParam(c *gin.Context) (time.Time, bool) {
	raw := c.Param("date")
	if strings.EqualFold(raw, "today") {
		return s.tracker.Now(), true
	}
	d, err := utils.ParseDate(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return time.Time{}, false
	}
	return d, true
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, tracker.ErrItemNotFound), errors.Is(err, tracker.ErrDayNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
