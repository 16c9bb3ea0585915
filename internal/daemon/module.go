package daemon

import (
	"context"
	"net/http"
	"os"

	"github.com/quicksell-labs/martbot/internal/api"
	"github.com/quicksell-labs/martbot/internal/bus"
	"github.com/quicksell-labs/martbot/internal/catalog"
	"github.com/quicksell-labs/martbot/internal/config"
	"github.com/quicksell-labs/martbot/internal/gate"
	"github.com/quicksell-labs/martbot/internal/genai"
	"github.com/quicksell-labs/martbot/internal/lock"
	"github.com/quicksell-labs/martbot/internal/logging"
	"github.com/quicksell-labs/martbot/internal/pipeline"
	"github.com/quicksell-labs/martbot/internal/report"
	"github.com/quicksell-labs/martbot/internal/session"
	"github.com/quicksell-labs/martbot/internal/status"
	"github.com/quicksell-labs/martbot/internal/store"
	"github.com/quicksell-labs/martbot/internal/wa"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Params holds the resolved session configuration passed to the fx module.
type Params struct {
	SessionName string
	SocketPath  string // optional override for testing; empty = use default
}

// Module returns the fx module for the daemon, composing all providers and lifecycle hooks.
func Module(p Params) fx.Option {
	return fx.Module("daemon",
		fx.Supply(p),
		fx.Provide(
			provideConfig,
			provideLogger,
			provideBus,
			provideStateMachine,
			provideLock,
			provideStore,
			provideAdapter,
			provideGenerator,
			providePipeline,
			provideReporter,
			provideBotService,
			provideUserService,
			provideMessageService,
			NewServer,
		),
		fx.Invoke(registerLifecycle),
	)
}

func provideConfig() (*config.Config, error) {
	if err := config.LoadEnv(session.EnvPath()); err != nil {
		return nil, err
	}
	cfg, err := config.Load(session.ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return config.Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

func provideLogger(p Params) (*zap.Logger, error) {
	return logging.New(session.LogPath(p.SessionName), p.SessionName)
}

func provideBus() *bus.Bus {
	return bus.New()
}

func provideStateMachine(b *bus.Bus) *status.Machine {
	return status.NewMachine(b)
}

func provideLock(p Params, logger *zap.Logger) (*lock.Lock, error) {
	if err := session.EnsureDir(p.SessionName); err != nil {
		return nil, err
	}
	logger.Info("acquiring session lock", zap.String("session", p.SessionName))
	l, err := lock.Acquire(session.Dir(p.SessionName))
	if err != nil {
		return nil, err
	}
	logger.Info("session lock acquired")
	return l, nil
}

func provideStore(p Params, logger *zap.Logger) (*store.DB, error) {
	dbPath := session.AppDBPath(p.SessionName)
	db, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}
	result, err := db.Migrate()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if result.Changed {
		logger.Info("migrations applied", zap.Uint("version", result.Version))
	} else {
		logger.Info("migrations up to date", zap.Uint("version", result.Version))
	}
	logger.Info("store initialized", zap.String("path", dbPath))
	return db, nil
}

func provideAdapter(p Params, b *bus.Bus, logger *zap.Logger) (*wa.Adapter, error) {
	return wa.NewAdapter(context.Background(), p.SessionName, b, logger)
}

func provideGenerator(cfg *config.Config, db *store.DB, logger *zap.Logger) genai.Generator {
	tools := catalog.New(db, cfg.Store)
	return genai.NewClient(genai.Options{
		BaseURL: cfg.Generator.BaseURL,
		Model:   cfg.Generator.Model,
		APIKey:  cfg.Generator.APIKey(),
	}, tools, &http.Client{Timeout: cfg.Generator.Timeout()}, logger)
}

func providePipeline(cfg *config.Config, db *store.DB, adapter *wa.Adapter, gen genai.Generator, b *bus.Bus, logger *zap.Logger) *pipeline.Pipeline {
	identity := pipeline.StoreIdentity{
		Name:  cfg.Store.Name,
		Phone: cfg.Store.Phone,
		URL:   cfg.Store.URL,
	}
	return pipeline.New(db, adapter, gen, b, identity, cfg.Location(), logger)
}

func provideReporter(cfg *config.Config, db *store.DB, b *bus.Bus, logger *zap.Logger) *report.Reporter {
	return report.New(db, b, cfg.Location(), logger)
}

func provideBotService(p Params, m *status.Machine, adapter *wa.Adapter, db *store.DB, cfg *config.Config) *api.BotService {
	breaker := gate.NewBreaker(db, cfg.Location())
	return api.NewBotService(p.SessionName, m, adapter, db, breaker)
}

func provideUserService(db *store.DB) *api.UserService {
	return api.NewUserService(db)
}

func provideMessageService(db *store.DB, adapter *wa.Adapter, cfg *config.Config) *api.MessageService {
	return api.NewMessageService(db, adapter, cfg.Location())
}

func registerLifecycle(lc fx.Lifecycle, srv *Server, lk *lock.Lock, adapter *wa.Adapter, pipe *pipeline.Pipeline, reporter *report.Reporter, machine *status.Machine, b *bus.Bus, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// Start the response pipeline (subscribes to wa.* bus events).
			pipe.Start(context.Background())

			// Register event handler for whatsmeow events.
			handler := wa.NewEventHandler(adapter, b, machine, logger)
			adapter.RegisterEventHandler(handler.Handle)

			// Start gRPC server in background.
			go func() {
				if err := srv.Start(); err != nil {
					logger.Error("gRPC server error", zap.Error(err))
				}
			}()

			if err := reporter.Start(); err != nil {
				return err
			}

			// Transition state based on auth status.
			if adapter.IsLoggedIn() {
				_ = machine.Transition(status.Connecting)
				go func() {
					if err := adapter.Connect(); err != nil {
						logger.Error("auto-connect failed", zap.Error(err))
						_ = machine.Transition(status.Error)
					}
				}()
			} else {
				logger.Info("no credentials found, auth required")
				_ = machine.Transition(status.AuthRequired)
			}

			return nil
		},
		OnStop: func(ctx context.Context) error {
			reporter.Stop()
			pipe.Stop()
			adapter.Disconnect()
			srv.Stop(ctx)
			if err := lk.Release(); err != nil {
				logger.Warn("error releasing lock", zap.Error(err))
			}
			logger.Info("daemon stopped")
			return nil
		},
	})
}
