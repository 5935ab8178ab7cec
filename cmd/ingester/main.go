package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"book_prices/internal/config"
	"book_prices/internal/publisher"
	"book_prices/internal/scheduler"
	"book_prices/internal/service"
	"book_prices/internal/source/feed"
	"book_prices/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	once := flag.Bool("once", false, "sync every feed once and exit")
	flag.Parse()

	logger := config.NewLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = config.NewLogger(cfg.LogLevel)

	if len(cfg.Feeds) == 0 {
		logger.Error("no feeds configured")
		os.Exit(1)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database")

	var pub service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	bookStore := postgres.NewBookStore(db)
	productStore := postgres.NewStoreProductStore(db)
	offerStore := postgres.NewOfferStore(db)
	feedStateStore := postgres.NewFeedStateStore(db)
	txManager := postgres.NewTransactionManager(db, cfg.Sync.TxMaxAttempts)

	ingester := service.NewIngestService(bookStore, productStore, offerStore, txManager, logger)

	syncers := make([]scheduler.Syncer, 0, len(cfg.Feeds))
	for _, f := range cfg.Feeds {
		src := feed.New(feed.Config{
			Name:           f.Name,
			Store:          f.Store,
			Location:       f.URL,
			Timeout:        f.Timeout,
			MaxAttempts:    f.Retry.MaxAttempts,
			InitialBackoff: f.Retry.InitialBackoff,
			MaxBackoff:     f.Retry.MaxBackoff,
		}, logger)
		syncers = append(syncers, service.NewFeedSyncService(src, ingester, feedStateStore, pub, logger))
	}

	sched := scheduler.NewScheduler(cfg.Sync.Interval, cfg.Sync.RunTimeout, logger, syncers...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if *once {
		sched.RunOnce(ctx)
		return
	}

	logger.Info("starting ingester",
		"feeds", len(syncers),
		"interval", cfg.Sync.Interval,
		"publishing", pub != nil,
	)

	if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}
