package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sealive/herodeck/internal/autoplay"
	"github.com/sealive/herodeck/internal/slideshow"
	"go.uber.org/zap"
)

// Deck is the narrow slideshow contract required by the HTTP API.
type Deck interface {
	Snapshot() slideshow.Snapshot
	CurrentSlide() slideshow.Slide
	Slides() []slideshow.Slide
	Next() (slideshow.Snapshot, error)
	Previous() (slideshow.Snapshot, error)
	GoTo(index int) (slideshow.Snapshot, error)
	Play() (slideshow.Snapshot, error)
	Pause() (slideshow.Snapshot, error)
	Toggle() (slideshow.Snapshot, error)
}

// Server exposes slideshow state and commands over HTTP.
type Server struct {
	addr      string
	deck      Deck
	log       *zap.Logger
	server    *http.Server
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
}

// NewServer creates a new HTTP API server.
func NewServer(addr string, deck Deck, logger *zap.Logger) *Server {
	if addr == "" {
		addr = "127.0.0.1:3000"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:   addr,
		deck:   deck,
		log:    logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Handler builds the gin router with all API routes.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.GET("/health", s.handleHealth)
	api.GET("/slides", s.handleSlides)
	api.GET("/slides/current", s.handleCurrentSlide)
	api.GET("/state", s.handleState)

	api.POST("/next", s.command(s.deck.Next))
	api.POST("/previous", s.command(s.deck.Previous))
	api.POST("/play", s.command(s.deck.Play))
	api.POST("/pause", s.command(s.deck.Pause))
	api.POST("/toggle", s.command(s.deck.Toggle))
	api.POST("/goto/:index", s.handleGoTo)

	return r
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)

	s.server = &http.Server{
		Handler:           s.Handler(),
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	s.startTime = time.Now()
	s.log.Info("http api listening", zap.String("addr", listener.Addr().String()))

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("http api serve failed", zap.Error(err))
		}
	}()
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(s.startTime).String(),
	})
}

func (s *Server) handleSlides(c *gin.Context) {
	slides := s.deck.Slides()
	c.JSON(http.StatusOK, gin.H{
		"slides": slides,
		"count":  len(slides),
	})
}

func (s *Server) handleCurrentSlide(c *gin.Context) {
	snap := s.deck.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"index": snap.CurrentIndex,
		"slide": s.deck.CurrentSlide(),
	})
}

func (s *Server) handleState(c *gin.Context) {
	c.JSON(http.StatusOK, s.deck.Snapshot())
}

func (s *Server) command(fn func() (slideshow.Snapshot, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := fn()
		if err != nil {
			s.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}

func (s *Server) handleGoTo(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
		return
	}
	snap, err := s.deck.GoTo(index)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (s *Server) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, slideshow.ErrIndexOutOfRange):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, autoplay.ErrClosed):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		s.log.Error("slideshow command failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "command failed"})
	}
}
