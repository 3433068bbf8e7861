package app

import (
	"github.com/ghuser/forgemart/pkg/cache"
	"github.com/ghuser/forgemart/pkg/config"
	"github.com/ghuser/forgemart/pkg/database"
	"github.com/ghuser/forgemart/pkg/events"
	"github.com/ghuser/forgemart/pkg/logger"
	"github.com/ghuser/forgemart/pkg/workflows"
	"github.com/gorilla/sessions"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service *Routes calls during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler â€” use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "processing item", "item_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Cfg            *config.Config
	Db             *database.Database
	Logger         logger.Logger
	EventBus       *events.EventBus
	Redis          *cache.RedisClient
	TemporalClient *workflows.TemporalClient
	SessionStore   sessions.Store // Redis-backed session store; nil in worker process
}
