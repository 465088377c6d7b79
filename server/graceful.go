package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Timeouts configures the underlying http.Server.
type Timeouts struct {
	Read     time.Duration
	Write    time.Duration
	Idle     time.Duration
	Shutdown time.Duration
}

// GracefulServer wraps an http.Server that drains in-flight requests when its
// context is cancelled.
type GracefulServer struct {
	server          *http.Server
	shutdownTimeout time.Duration
	logger          *zap.Logger
}

// NewGracefulServer creates a server for handler on addr.
func NewGracefulServer(addr string, handler http.Handler, t Timeouts, logger *zap.Logger) *GracefulServer {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &GracefulServer{
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadTimeout:       t.Read,
			ReadHeaderTimeout: t.Read,
			WriteTimeout:      t.Write,
			IdleTimeout:       t.Idle,
			MaxHeaderBytes:    1 << 20,
		},
		shutdownTimeout: t.Shutdown,
		logger:          logger,
	}
}

// Serve accepts connections on ln until ctx is done, then shuts down within
// the shutdown timeout. It returns nil after a clean shutdown.
func (gs *GracefulServer) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		gs.logger.Info("http server listening", zap.String("addr", ln.Addr().String()))
		errCh <- gs.server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	gs.logger.Info("initiating graceful shutdown", zap.Duration("timeout", gs.shutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gs.shutdownTimeout)
	defer cancel()
	if err := gs.server.Shutdown(shutdownCtx); err != nil {
		gs.logger.Error("shutdown failed", zap.Error(err))
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	gs.logger.Info("server shutdown complete")

	return nil
}

// ListenAndServe listens on the configured address and calls Serve.
func (gs *GracefulServer) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", gs.server.Addr)
	if err != nil {
		return err
	}

	return gs.Serve(ctx, ln)
}
