package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/render"
)

const (
	shutdownTimeout = 2 * time.Second
	maxThumbnail    = 2048
)

// Server exposes a running game over HTTP
//
//	POST /direction  {"direction":"up"} or ?direction=up
//	GET  /state      snapshot, status counters and session id as JSON
//	GET  /board.png  current board, ?size=N fits it into an NxN square
type Server struct {
	game    *engine.GameContext
	images  *render.ImageRenderer
	session string
	router  *gin.Engine
}

type directionRequest struct {
	Direction string `json:"direction" form:"direction"`
}

// NewServer builds the router for game; session tags every state response
func NewServer(game *engine.GameContext, session string) *Server {
	s := &Server{
		game:    game,
		images:  render.NewImageRenderer(game.Config.Grid.CellSize),
		session: session,
		router:  gin.New(),
	}

	s.router.Use(gin.LoggerWithWriter(log.Writer()), gin.Recovery())
	s.router.POST("/direction", s.handleDirection)
	s.router.GET("/state", s.handleState)
	s.router.GET("/board.png", s.handleBoard)
	return s
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	log.Printf("HTTP API listening on %s", addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

func (s *Server) handleDirection(c *gin.Context) {
	var req directionRequest
	if c.ContentType() == gin.MIMEJSON {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed JSON body"})
			return
		}
	} else {
		req.Direction = c.Query("direction")
	}

	dir, ok := core.ParseDirection(req.Direction)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown direction %q", req.Direction)})
		return
	}

	// Reversal checks happen in the simulation on the next frame
	s.game.PushDirection(dir)
	c.JSON(http.StatusAccepted, gin.H{"queued": dir.String()})
}

func (s *Server) handleState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"session":  s.session,
		"paused":   s.game.IsPaused.Load(),
		"snapshot": s.game.Snapshot(),
		"status":   s.game.Status.Snapshot(),
	})
}

func (s *Server) handleBoard(c *gin.Context) {
	snap := s.game.Snapshot()

	sizeParam := c.Query("size")
	if sizeParam == "" {
		c.Header("Content-Type", "image/png")
		if err := s.images.EncodePNG(c.Writer, snap); err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
		}
		return
	}

	size, err := strconv.Atoi(sizeParam)
	if err != nil || size < 1 || size > maxThumbnail {
		c.JSON(http.StatusBadRequest, gin.H{"error": "size must be between 1 and 2048"})
		return
	}
	c.Header("Content-Type", "image/png")
	if err := render.EncodeImagePNG(c.Writer, s.images.Thumbnail(snap, size)); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}
