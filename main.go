package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/UnAfraid/pressload/pkg/api"
	"github.com/UnAfraid/pressload/pkg/comment"
	"github.com/UnAfraid/pressload/pkg/config"
	"github.com/UnAfraid/pressload/pkg/datastore"
	"github.com/UnAfraid/pressload/pkg/datastore/bbolt"
	"github.com/UnAfraid/pressload/pkg/dbx"
	"github.com/UnAfraid/pressload/pkg/loaders"
	"github.com/UnAfraid/pressload/pkg/meta"
	"github.com/UnAfraid/pressload/pkg/metrics"
	"github.com/UnAfraid/pressload/pkg/post"
	"github.com/UnAfraid/pressload/pkg/seed"
	"github.com/UnAfraid/pressload/pkg/term"
	"github.com/UnAfraid/pressload/pkg/user"
)

const (
	appName = "pressload"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "severity",
			logrus.FieldKeyMsg:   "message",
		},
		TimestampFormat: time.RFC3339,
	})

	conf, err := config.Load(appName)
	if err != nil {
		logrus.
			WithError(err).
			Fatal("failed to initialize config")
		return
	}

	logLevel, err := logrus.ParseLevel(conf.LogLevel)
	if err != nil {
		logrus.
			WithError(err).
			WithField("logLevel", conf.LogLevel).
			Fatal("invalid log level")
		return
	}
	logrus.SetLevel(logLevel)

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGTERM, syscall.SIGINT)

	if _, err := maxprocs.Set(maxprocs.Logger(logrus.Printf)); err != nil {
		logrus.
			WithError(err).
			Error("failed to set maxprocs")
		return
	}

	if conf.DebugServer.Enabled {
		metrics.InitRegistry()
	}

	debugMux := http.NewServeMux()
	debugMux.HandleFunc("/debug/pprof/", pprof.Index)
	debugMux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	debugMux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	debugMux.Handle("/metrics", metrics.Handler())
	debugServer := &http.Server{
		Addr:    conf.DebugServer.Address(),
		Handler: debugMux,
	}

	if conf.DebugServer.Enabled {
		go func() {
			logrus.WithField("address", conf.DebugServer.Address()).Info("Starting serving debug server")
			if err := debugServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logrus.
					WithError(err).
					Fatal("Failed to serve debug")
				return
			}
		}()
	}

	logrus.Info("initializing database..")
	db, err := datastore.NewBBoltDB(conf.BoltDB.Path, conf.BoltDB.Timeout)
	if err != nil {
		logrus.
			WithError(err).
			Fatal("failed initialize datastore")
		return
	}
	defer func() {
		if err := db.Close(); err != nil {
			logrus.
				WithError(err).
				Error("failed to close datastore")
		}
	}()

	transactionScoper := dbx.NewBBoltTransactionScoper(db)

	services := loaders.Services{
		User:    user.NewService(bbolt.NewUserRepository(db)),
		Post:    post.NewService(bbolt.NewPostRepository(db)),
		Meta:    meta.NewService(bbolt.NewMetaRepository(db)),
		Term:    term.NewService(bbolt.NewTermRepository(db), transactionScoper),
		Comment: comment.NewService(bbolt.NewCommentRepository(db)),
	}

	if conf.Seed.Enabled {
		if err := seed.InitializeDemoContent(context.Background(), services); err != nil {
			logrus.
				WithError(err).
				Fatal("failed to seed demo content")
			return
		}
	}

	loaderOptions := []loaders.Option{
		loaders.WithMetrics(metrics.NewLoaderMetrics()),
	}
	if conf.QueryCache.Enabled {
		logrus.
			WithField("expiration", conf.QueryCache.Expiration).
			Info("query cache enabled")
		loaderOptions = append(loaderOptions, loaders.WithQueryCache(loaders.NewQueryCache(conf.QueryCache.Expiration, conf.QueryCache.CleanupInterval)))
	}
	loaderFactory := loaders.NewFactory(services, loaderOptions...)

	router := api.NewRouter(
		conf,
		loaderFactory.New,
		services.Post,
	)

	httpServer := http.Server{
		Addr:    conf.HttpServer.Address(),
		Handler: router,
	}

	go func() {
		logrus.WithField("address", conf.HttpServer.Address()).Info("Starting serving http server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.
				WithError(err).
				Fatal("failed to listen and serve http server")
		}
	}()

	<-shutdownChan
	logrus.Info("Shutting down")

	logrus.Info("Shutting down http server")
	httpServerShutdownTimeoutCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(httpServerShutdownTimeoutCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logrus.
			WithError(err).
			Error("failed to shutdown http server")
		return
	}

	if conf.DebugServer.Enabled {
		logrus.Info("Shutting down debug http server")
		debugHttpServerShutdownTimeoutCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := debugServer.Shutdown(debugHttpServerShutdownTimeoutCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.
				WithError(err).
				Error("failed to shutdown debug server")
			return
		}
	}
}
