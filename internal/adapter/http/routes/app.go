package routes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taller_jaison/internal/adapter/http/handlers"
	"taller_jaison/internal/adapter/persistence/repository"
	"taller_jaison/internal/infrastructure/config"
	"taller_jaison/internal/infrastructure/database"
	"taller_jaison/internal/infrastructure/messaging"
	"taller_jaison/internal/infrastructure/notify"
	"taller_jaison/internal/infrastructure/scheduler"
	"taller_jaison/internal/usecase"
	"taller_jaison/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const scheduledFlushTimeout = 30 * time.Second

type app struct {
	registry   *repository.Registry
	dispatcher *notify.Dispatcher
	scheduler  *scheduler.FlushScheduler
	handlers   Handlers
	closers    []func() error
	logger     *zap.Logger
}

func newApp(ctx context.Context, cfg config.Config, logger *zap.Logger) (*app, error) {
	a := &app{logger: logger}

	store, err := a.openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a.registry = repository.NewRegistry(store, logger)
	if err := a.registry.Load(ctx); err != nil {
		return nil, fmt.Errorf("load collections: %w", err)
	}

	var sink notify.Sink = notify.NewLogSink(logger)
	if cfg.NotifyWebhookURL != "" {
		sink = notify.NewWebhookSink(cfg.NotifyWebhookURL, cfg.NotifyTimeout)
	} else {
		logger.Warn("[app] NOTIFY_WEBHOOK_URL not set; order changes are only logged")
	}
	a.dispatcher = notify.NewDispatcher(sink, cfg.NotifyAPIToken, cfg.NotifyQueueSize, logger)

	var sender interfaces.IMessageSender
	if cfg.MessagingEnabled() {
		sender = messaging.NewTwilioSender(messaging.TwilioConfig{
			AccountSID:         cfg.TwilioAccountSID,
			AuthToken:          cfg.TwilioAuthToken,
			PhoneNumber:        cfg.TwilioPhoneNumber,
			WhatsAppNumber:     cfg.TwilioWhatsAppNumber,
			DefaultCountryCode: cfg.DefaultCountryCode,
		}, logger)
	} else {
		logger.Warn("[app] Twilio not configured; sending receipts is disabled")
	}

	a.scheduler, err = scheduler.NewFlushScheduler(cfg.FlushSchedule, a.registry, scheduledFlushTimeout, logger)
	if err != nil {
		return nil, err
	}

	orderUseCase := usecase.NewServiceOrderUseCase(a.registry.Orders(), a.registry.Clients(), a.dispatcher, logger)
	clientUseCase := usecase.NewClientUseCase(a.registry.Clients())
	receiptUseCase := usecase.NewReceiptUseCase(orderUseCase, sender, cfg.ReceiptBaseURL, logger)

	a.handlers = Handlers{
		Entry:    handlers.NewEntryHandler(orderUseCase, receiptUseCase),
		Catalog:  handlers.NewCatalogHandler(),
		Clients:  handlers.NewClientHandler(clientUseCase),
		Orders:   handlers.NewOrderHandler(orderUseCase),
		Receipts: handlers.NewReceiptHandler(receiptUseCase),
	}
	return a, nil
}

func (a *app) openStore(ctx context.Context, cfg config.Config) (repository.DocumentStore, error) {
	a.logger.Info("[app] opening store", zap.String("backend", cfg.StoreBackend))
	switch cfg.StoreBackend {
	case config.StoreBackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, err
		}
		store := repository.NewDynamoDocumentStore(ddb)
		if err := database.EnsureCollectionsTable(ctx, ddb, store.TableName()); err != nil {
			return nil, err
		}
		return store, nil
	case config.StoreBackendPostgres:
		db, err := database.ConnectPostgres(cfg.DBURL)
		if err != nil {
			return nil, err
		}
		if err := db.WithContext(ctx).AutoMigrate(&repository.CollectionRecord{}); err != nil {
			return nil, fmt.Errorf("migrate collections: %w", err)
		}
		if sqlDB, err := db.DB(); err == nil {
			a.closers = append(a.closers, sqlDB.Close)
		}
		return repository.NewPostgresDocumentStore(db), nil
	default:
		return repository.NewFileDocumentStore(cfg.DataDir), nil
	}
}

func (a *app) start(ctx context.Context) {
	a.dispatcher.Start(ctx)
	a.scheduler.Start()
}

// shutdown stops the schedule, drains pending notifications and writes the
// collections one last time.
func (a *app) shutdown(ctx context.Context) error {
	var errs []error
	if err := a.scheduler.Stop(ctx); err != nil {
		errs = append(errs, fmt.Errorf("stop scheduler: %w", err))
	}
	if err := a.dispatcher.Stop(ctx); err != nil {
		errs = append(errs, fmt.Errorf("drain notifications: %w", err))
	}
	if err := a.registry.Flush(ctx); err != nil {
		errs = append(errs, fmt.Errorf("final flush: %w", err))
	}
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		a.logger.Info("[app] shutdown complete")
	}
	return errors.Join(errs...)
}
