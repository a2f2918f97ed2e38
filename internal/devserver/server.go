// Package devserver bundles a stand-in for the external events backend:
// the same routes and raw-JSON contract as the json-server instance the
// front end was written against, persisted to a db.json-format file.
package devserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eventdeck/eventdeck/internal/model"
	"github.com/eventdeck/eventdeck/pkg/config"
	"github.com/eventdeck/eventdeck/pkg/logger"
)

// Server serves the events REST contract.
type Server struct {
	engine *gin.Engine
	data   *Dataset
	logger *zap.Logger
}

// New wires routes and middleware around the dataset.
func New(cfg *config.Config, data *Dataset, logr *zap.Logger) *Server {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	if logr == nil {
		logr = zap.NewNop()
	}

	s := &Server{data: data, logger: logr}
	metrics := NewMetrics()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(logger.GinMiddleware(logr))
	r.Use(CORS(cfg.CORS.AllowedOrigins))
	r.Use(metrics.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	r.GET("/events", s.listEvents)
	r.GET("/events/:id", s.getEvent)
	r.POST("/events", s.createEvent)
	r.PUT("/events/:id", s.updateEvent)
	r.DELETE("/events/:id", s.deleteEvent)
	r.GET("/categories", s.listCategories)
	r.GET("/users", s.listUsers)

	s.engine = r
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Run blocks serving on addr.
func (s *Server) Run(addr string) error {
	s.logger.Sugar().Infow("dev server starting", "addr", addr)
	return s.engine.Run(addr)
}

func (s *Server) listEvents(c *gin.Context) {
	c.JSON(http.StatusOK, s.data.Events())
}

func (s *Server) getEvent(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	event, found := s.data.Event(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, event)
}

func (s *Server) createEvent(c *gin.Context) {
	var draft model.Event
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid event payload"})
		return
	}
	created, err := s.data.CreateEvent(draft)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) updateEvent(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	var event model.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid event payload"})
		return
	}
	updated, found, err := s.data.ReplaceEvent(id, event)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
		return
	}
	if err != nil {
		s.logger.Error("persist update", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not persist event"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteEvent(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	found, err := s.data.DeleteEvent(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
		return
	}
	if err != nil {
		s.logger.Error("persist delete", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not persist deletion"})
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

func (s *Server) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, s.data.Categories())
}

func (s *Server) listUsers(c *gin.Context) {
	c.JSON(http.StatusOK, s.data.Users())
}

func eventID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid event id"})
		return 0, false
	}
	return id, true
}
