package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customers/internal/cache"
	"github.com/umalmyha/customers/internal/config"
	"github.com/umalmyha/customers/internal/handlers"
	"github.com/umalmyha/customers/internal/infra"
	"github.com/umalmyha/customers/internal/repository"
	"github.com/umalmyha/customers/internal/service"
	"github.com/umalmyha/customers/internal/validation"
	"github.com/umalmyha/customers/pkg/db/transactor"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// store is configured customers datasource
type store struct {
	customerRps repository.CustomerRepository
	ping        func(context.Context) error
	close       func(context.Context) error
}

func main() {
	cfg, err := config.Build()
	if err != nil {
		logrus.Fatal(err)
	}

	setupLogger(cfg.LogLevel)

	var traceOut io.Writer
	if cfg.TracingStdout {
		traceOut = os.Stdout
	}

	shutdownTracing, err := infra.Tracing(traceOut)
	if err != nil {
		logrus.Fatal(err)
	}

	customersStore, err := connectStore(cfg)
	if err != nil {
		logrus.Fatal(err)
	}

	customerCache, closeCache, err := connectCache(cfg)
	if err != nil {
		logrus.Fatal(err)
	}

	app, err := build(cfg, customersStore, customerCache)
	if err != nil {
		logrus.Fatal(err)
	}

	start(app, cfg.HTTPCfg)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPCfg.ShutdownTimeout)
	defer cancel()

	if err := customersStore.close(ctx); err != nil {
		logrus.WithError(err).Error("failed to close customers store")
	}

	if err := closeCache(); err != nil {
		logrus.WithError(err).Error("failed to close customers cache")
	}

	if err := shutdownTracing(ctx); err != nil {
		logrus.WithError(err).Error("failed to shutdown tracing")
	}
}

func setupLogger(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.WithError(err).Warnf("unknown log level %q, info is used", level)
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

func connectStore(cfg config.Config) (*store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.DatabaseConnectTimeout)
	defer cancel()

	switch cfg.Store {
	case config.StoreMysql:
		db, err := infra.Mysql(ctx, cfg.MysqlCfg)
		if err != nil {
			return nil, err
		}

		return &store{
			customerRps: repository.NewMysqlCustomerRepository(db),
			ping:        db.PingContext,
			close:       func(context.Context) error { return db.Close() },
		}, nil
	case config.StoreMongo:
		client, err := infra.Mongodb(ctx, cfg.MongoCfg)
		if err != nil {
			return nil, err
		}

		return &store{
			customerRps: repository.NewMongoCustomerRepository(client.Database(cfg.MongoCfg.Database)),
			ping:        func(ctx context.Context) error { return client.Ping(ctx, readpref.Primary()) },
			close:       client.Disconnect,
		}, nil
	default:
		pool, err := infra.Postgresql(ctx, cfg.PostgresCfg)
		if err != nil {
			return nil, err
		}

		trx := transactor.NewPgxTransactor(pool)

		return &store{
			customerRps: repository.NewPostgresCustomerRepository(trx),
			ping:        pool.Ping,
			close: func(context.Context) error {
				pool.Close()
				return nil
			},
		}, nil
	}
}

func connectCache(cfg config.Config) (cache.CustomerCache, func() error, error) {
	if !cfg.CacheEnabled() {
		logrus.Info("redis address is not set, customers are not cached")
		return cache.NewNoopCustomerCache(), func() error { return nil }, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DatabaseConnectTimeout)
	defer cancel()

	client, err := infra.Redis(ctx, cfg.RedisCfg)
	if err != nil {
		return nil, nil, err
	}

	return cache.NewRedisCustomerCache(client, cfg.RedisCfg.CacheTTL), client.Close, nil
}

func build(cfg config.Config, s *store, customerCache cache.CustomerCache) (*echo.Echo, error) {
	trans, err := validation.EnglishTranslator()
	if err != nil {
		return nil, err
	}

	customerValidator, err := validation.New(validator.New(), trans)
	if err != nil {
		return nil, err
	}

	customerSvc := service.NewCustomerService(s.customerRps, customerCache, customerValidator, service.CustomerCfg{
		DeleteReportsMissing: cfg.DeleteReportsMissing,
	})

	return infra.Router(
		handlers.NewCustomerHTTPHandler(customerSvc),
		handlers.NewHealthHTTPHandler(s.ping),
	), nil
}

func start(app *echo.Echo, cfg config.HTTPCfg) {
	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		logrus.Infof("starting server on port %d", cfg.Port)
		errorCh <- app.Start(fmt.Sprintf(":%d", cfg.Port))
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logrus.Info("shutdown signal has been sent, stopping the server...")
		if err := app.Shutdown(ctx); err != nil {
			logrus.Errorf("failed to stop server gracefully - %s", err)
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logrus.Errorf("shutting down the server, unexpected error occurred - %s", err)
		}
	}
}
