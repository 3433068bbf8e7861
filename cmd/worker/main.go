package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/forgemart/pkg/app"
	"github.com/ghuser/forgemart/pkg/cache"
	"github.com/ghuser/forgemart/pkg/config"
	"github.com/ghuser/forgemart/pkg/database"
	"github.com/ghuser/forgemart/pkg/events"
	"github.com/ghuser/forgemart/pkg/logger"
	"github.com/ghuser/forgemart/pkg/telemetry"
	catalogdomain "github.com/ghuser/forgemart/services/catalog/domain"
	catalogpg "github.com/ghuser/forgemart/services/catalog/infrastructure/persistence/postgres"
	inventoryEvents "github.com/ghuser/forgemart/services/inventory/domain/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	//temporalClient, err := workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
	//if err != nil {
	//	log.Error("failed to initialize temporal client", "error", err)
	//	os.Exit(1) //nolint:gocritic
	//}
	//defer temporalClient.Close()

	appConfig := &app.Application{
		Cfg:      cfg,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
		//TemporalClient: temporalClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	outboxCtx, cancelOutbox := context.WithCancel(ctx)
	go runOutboxRelay(outboxCtx, appConfig)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancelOutbox()

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	errCh, err := a.EventBus.Subscribe(ctx, inventoryEvents.TopicInventoryChanged, handleInventoryChanged(a))
	if err != nil {
		return err
	}

	// Drain subscriber errors in background so the channel never blocks.
	go func() {
		for err := range errCh {
			a.Logger.ErrorContext(ctx, "subscriber error",
				"topic", inventoryEvents.TopicInventoryChanged,
				"error", err,
			)
		}
	}()

	a.Logger.Info("event subscribers registered", "topics", []string{inventoryEvents.TopicInventoryChanged})
	return nil
}

// handleInventoryChanged returns a handler for inventory.changed events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Re-warms the Redis catalogue cache for every catalogue item touched by the
// mutation so read-side consumers see fresh base data on their next re-read.
func handleInventoryChanged(a *app.Application) func(context.Context, *message.Message) error {
	repo := catalogpg.NewCatalogRepository(a.Db)
	itemCache := cache.NewCatalogItemCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt inventoryEvents.InventoryChangedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		for _, itemID := range evt.ItemIDs {
			item, err := repo.ItemByID(ctx, itemID)
			if errors.Is(err, catalogdomain.ErrItemNotFound) {
				// Store-authored items live only in the registry, nothing to warm.
				continue
			}
			if err != nil {
				return err
			}

			if err := itemCache.Set(ctx, &cache.CachedItem{
				ID:             item.ID,
				Name:           item.Name,
				GameSystem:     item.GameSystem,
				Army:           item.Army,
				UnitType:       item.UnitType,
				Description:    item.Description,
				Price:          item.Price,
				Tags:           item.Tags,
				Image:          item.Image,
				Format:         item.Format,
				Type:           item.Type,
				ManufacturerID: item.ManufacturerID,
				Downloads:      item.Downloads,
				Link:           item.Link,
			}); err != nil {
				// Cache warming is best-effort; log but do not fail the handler.
				a.Logger.WarnContext(ctx, "cache warm failed for inventory.changed",
					"item_id", itemID, "error", err)
			}
		}

		a.Logger.InfoContext(ctx, "inventory change processed",
			"store_id", evt.StoreID, "action", evt.Action, "items", len(evt.ItemIDs))
		return nil
	}
}

// runOutboxRelay polls the outbox for unpublished events and forwards them to
// the EventBus. Runs until ctx is cancelled.
// The Watermill Forwarder (started in cmd/api/main.go) handles at-least-once
// delivery; this relay is a secondary safety net for future outbox tables.
func runOutboxRelay(ctx context.Context, a *app.Application) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.Logger.Info("outbox relay shutting down")
			return
		case <-ticker.C:
			// Forwarder covers delivery today; nothing to relay yet.
		}
	}
}
