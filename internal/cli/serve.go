package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/iliyamo/heightconv/internal/config"
	"github.com/iliyamo/heightconv/internal/handler"
	"github.com/iliyamo/heightconv/internal/middleware"
	"github.com/iliyamo/heightconv/internal/router"
	"github.com/iliyamo/heightconv/internal/service"
)

const shutdownTimeout = 10 * time.Second

// ServeOptions holds flags that only apply to the server.
type ServeOptions struct {
	Port string
}

func NewServeCommand(globalOptions *GlobalOptions) *cobra.Command {
	serveOptions := &ServeOptions{}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), globalOptions, serveOptions)
		},
	}
	serveOptions.registerFlags(serveCmd)
	return serveCmd
}

func (options *ServeOptions) registerFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&options.Port, "port", "", "Port for the HTTP server. (Env: APP_PORT)")
}

// serve runs the server until SIGINT/SIGTERM, then drains in-flight
// requests for up to shutdownTimeout.
func serve(ctx context.Context, globalOptions *GlobalOptions, serveOptions *ServeOptions) error {
	conf := globalOptions.Conf
	if serveOptions.Port != "" {
		conf.Port = config.Port(serveOptions.Port)
		if err := conf.Validate(); err != nil {
			return err
		}
	}
	log := globalOptions.Logger

	rdb := config.NewRedisClient(config.LoadRedisConfig())
	if rdb == nil {
		log.Warn("redis unavailable; using in-process response cache and no rate limiting")
	} else {
		defer func() { _ = rdb.Close() }()
	}

	e := newServer(conf, log, rdb)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{"addr": conf.Addr(), "env": conf.Env}).Info("server starting")
		if err := e.Start(conf.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server forced to shutdown")
		return err
	}
	log.Info("server exited")
	return nil
}

// newServer assembles the echo instance.  rdb may be nil.
func newServer(conf config.Config, log *logrus.Logger, rdb *redis.Client) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = handler.NewTemplateRenderer()
	e.Use(middleware.RequestID(), middleware.RequestLogger(log))

	cacheCfg := config.LoadCacheConfig()
	var store middleware.CacheStore
	if rdb != nil {
		store = middleware.NewRedisStore(rdb)
	} else {
		store = middleware.NewMemoryStore(cacheCfg.TTL, cacheCfg.CleanupInterval)
	}

	var pub service.EventPublisher = service.NopPublisher{}
	if conf.Events.Enabled {
		pub = service.NewAMQPPublisher(conf.Events.URL, conf.Events.Queue)
	}

	router.RegisterRoutes(e)
	router.RegisterHeight(e,
		handler.NewHeightHandler(pub, log),
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		middleware.NewResponseCache(cacheCfg, store),
	)
	return e
}
