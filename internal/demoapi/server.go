// Package demoapi serves a fakestoreapi-compatible product catalog for local
// and offline use.
package demoapi

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// Options tune the demo server's behaviour.
type Options struct {
	// Latency delays every catalog response.
	Latency time.Duration
	// FailStatus, when non-zero, makes every catalog route answer with this status.
	FailStatus int
}

// Server serves a fixed product catalog.
type Server struct {
	products []Product
	index    map[int]int
	opts     Options
	engine   *gin.Engine
}

// New builds a Server for products, which are served in the given order.
func New(products []Product, opts Options) *Server {
	s := &Server{
		products: products,
		index:    make(map[int]int, len(products)),
		opts:     opts,
	}
	for i, p := range products {
		s.index[p.ID] = i
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/healthz", s.handleHealth)

	api := r.Group("/products", s.simulate)
	api.GET("", s.handleList)
	api.GET("/:id", s.handleProduct)

	s.engine = r
	return s
}

// Handler exposes the router, e.g. for httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.ServeListener(ctx, listener)
}

// ServeListener is Serve on an existing listener.
func (s *Server) ServeListener(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("demoapi: serving %d products on %s", len(s.products), listener.Addr())
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (s *Server) simulate(c *gin.Context) {
	if s.opts.Latency > 0 {
		timer := time.NewTimer(s.opts.Latency)
		select {
		case <-timer.C:
		case <-c.Request.Context().Done():
			timer.Stop()
			c.Abort()
			return
		}
	}
	if s.opts.FailStatus != 0 {
		c.AbortWithStatusJSON(s.opts.FailStatus, gin.H{"error": http.StatusText(s.opts.FailStatus)})
		return
	}
	c.Next()
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"products": len(s.products),
	})
}

func (s *Server) handleList(c *gin.Context) {
	products := s.products
	if products == nil {
		products = []Product{}
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) handleProduct(c *gin.Context) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product " + raw + " not found"})
		return
	}
	idx, ok := s.index[id]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product " + raw + " not found"})
		return
	}
	c.JSON(http.StatusOK, s.products[idx])
}
