// Package server serves the solver over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vyevs/wordbrain"
	"github.com/vyevs/wordbrain/internal/metrics"
)

type SolveRequest struct {
	Grid    string `json:"grid" binding:"required"`
	Lengths []int  `json:"lengths" binding:"required,min=1"`
	Permute bool   `json:"permute"`
	First   bool   `json:"first"`
}

type SolutionResponse struct {
	Words []string   `json:"words"`
	Paths [][][2]int `json:"paths"`
}

type SolveResponse struct {
	Solutions []SolutionResponse `json:"solutions"`
	Stats     wordbrain.Stats    `json:"stats"`
	Duration  string             `json:"duration"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type Options struct {
	Timeout time.Duration
	Workers int
	Mode    string
}

type Server struct {
	dict    wordbrain.Dictionary
	metrics *metrics.Solver
	log     *zap.SugaredLogger
	opts    Options
}

// New returns a Server answering with dict. m may be nil to disable /metrics.
func New(dict wordbrain.Dictionary, m *metrics.Solver, logger *zap.SugaredLogger, opts Options) *Server {
	return &Server{
		dict:    dict,
		metrics: m,
		log:     logger,
		opts:    opts,
	}
}

// Handler builds the gin engine with every route registered.
func (s *Server) Handler() http.Handler {
	if s.opts.Mode != "" {
		gin.SetMode(s.opts.Mode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), s.accessLog())

	r.GET("/health", s.health)
	r.POST("/solve", s.solve)
	if s.metrics != nil {
		r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}
	return r
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Infow("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"took", time.Since(start),
		)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) solve(c *gin.Context) {
	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	grid, err := wordbrain.ParseGrid(req.Grid)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	solutions, stats, err := grid.Solve(ctx, s.dict, req.Lengths, wordbrain.Options{
		Permute: req.Permute,
		First:   req.First,
		Workers: s.opts.Workers,
	})
	took := time.Since(start)
	if s.metrics != nil {
		s.metrics.Observe(took, len(solutions), stats, err)
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		s.log.Warnw("solve timed out", "grid", req.Grid, "lengths", req.Lengths, "took", took)
		c.JSON(http.StatusGatewayTimeout, errorResponse{Error: "solve timed out"})
		return
	case errors.Is(err, wordbrain.ErrBadLength), errors.Is(err, wordbrain.ErrNoLengths):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	case err != nil:
		s.log.Errorw("solve failed", "grid", req.Grid, "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	s.log.Infow("solved",
		"grid", req.Grid,
		"lengths", req.Lengths,
		"solutions", len(solutions),
		"visited", stats.Visited,
		"took", took,
	)

	resp := SolveResponse{
		Solutions: make([]SolutionResponse, 0, len(solutions)),
		Stats:     stats,
		Duration:  took.String(),
	}
	for _, sol := range solutions {
		resp.Solutions = append(resp.Solutions, toResponse(grid, sol))
	}
	c.JSON(http.StatusOK, resp)
}

func toResponse(g wordbrain.Grid, sol wordbrain.Solution) SolutionResponse {
	paths := make([][][2]int, 0, len(sol))
	for _, p := range sol {
		pts := make([][2]int, 0, len(p))
		for _, pt := range p {
			pts = append(pts, [2]int{pt.X, pt.Y})
		}
		paths = append(paths, pts)
	}
	return SolutionResponse{
		Words: g.Words(sol),
		Paths: paths,
	}
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infow("http server started", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Infow("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
