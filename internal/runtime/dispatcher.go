package runtime

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/architeacher/inventory/pkg/logger"
)

type ServiceCtx struct {
	deps              *dependencies
	dependencyOptions []DependencyOption
	shutdownChannel   chan os.Signal
	serverCtx         context.Context
	serverStopFunc    context.CancelFunc
	serverReady       chan struct{}
	serverErr         chan error
}

func New(opts ...ServiceOption) *ServiceCtx {
	ctx := &ServiceCtx{
		shutdownChannel: make(chan os.Signal, 1),
		serverErr:       make(chan error, 1),
	}

	for _, opt := range opts {
		opt(ctx)
	}

	return ctx
}

// Run builds the dependencies, serves HTTP and blocks until a termination
// signal arrives or the server fails, then shuts down gracefully.
func (c *ServiceCtx) Run() error {
	if err := c.build(); err != nil {
		return fmt.Errorf("failed to build service: %w", err)
	}

	listener, err := net.Listen("tcp", c.deps.infra.httpServer.Addr)
	if err != nil {
		c.serverStopFunc()
		c.deps.cleanup(context.Background())

		return fmt.Errorf("failed to listen on %s: %w", c.deps.infra.httpServer.Addr, err)
	}

	c.deps.infra.httpServer.Addr = listener.Addr().String()

	c.startService(listener)
	c.shutdownHook()

	var runErr error

	// Waits for one of the following shutdown conditions to happen.
	select {
	case <-c.serverCtx.Done():
	case <-c.shutdownChannel:
	case runErr = <-c.serverErr:
	}

	c.shutdown()

	return runErr
}

func (c *ServiceCtx) build() error {
	c.serverCtx, c.serverStopFunc = context.WithCancel(context.Background())

	var err error

	c.deps, err = initializeDependencies(c.serverCtx, c.dependencyOptions...)
	if err != nil {
		c.serverStopFunc()

		return fmt.Errorf("initializing dependencies: %w", err)
	}

	return nil
}

func (c *ServiceCtx) startService(listener net.Listener) {
	c.deps.infra.logger.Info().
		Str("address", listener.Addr().String()).
		Msg("starting the http server")

	if c.serverReady != nil {
		close(c.serverReady)
	}

	go func() {
		if err := c.deps.infra.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			c.serverErr <- fmt.Errorf("http server error: %w", err)
		}
	}()
}

func (c *ServiceCtx) shutdownHook() {
	signal.Notify(c.shutdownChannel, syscall.SIGINT, syscall.SIGTERM)
}

func (c *ServiceCtx) shutdown() {
	log := c.deps.infra.logger

	log.Info().Msg("shutting down service...")

	signal.Stop(c.shutdownChannel)

	// Cancel context that underlying processes would start cleanup.
	c.serverStopFunc()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), c.deps.config.HTTPServer.ShutdownTimeout)
	defer cancel()

	log.Info().Msg("cleaning up resources...")
	c.deps.cleanup(shutdownCtx)

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		log.Error().Msg("graceful shutdown timed out")
	}

	log.Info().Msg("service shutdown complete")
}

// WaitForServer blocks until the http server is listening. It only blocks
// when the service was created with WithWaitingForServer.
func (c *ServiceCtx) WaitForServer() {
	if c.serverReady != nil {
		<-c.serverReady
	}
}

// Addr returns the address the http server listens on once it is running.
func (c *ServiceCtx) Addr() string {
	if c.deps == nil || c.deps.infra.httpServer == nil {
		return ""
	}

	return c.deps.infra.httpServer.Addr
}

// Logger exposes the service logger, falling back to a JSON logger when the
// dependencies were never built.
func (c *ServiceCtx) Logger() logger.Logger {
	if c.deps == nil {
		return logger.New(logger.LogLevelInfo, logger.JSONLoggingFormat)
	}

	return c.deps.infra.logger
}
