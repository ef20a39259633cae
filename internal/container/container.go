package container

import (
	"context"
	"fmt"

	"crustacean/tracker/internal/band"
	"crustacean/tracker/internal/config"
	"crustacean/tracker/internal/domain"
	"crustacean/tracker/internal/notify"
	"crustacean/tracker/internal/report"
	"crustacean/tracker/internal/service"
	"crustacean/tracker/internal/state"
	"crustacean/tracker/internal/store"

	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config       *config.Config
	Source       band.PostSource
	Store        store.HistoryStore
	StateManager state.Manager
	Notifier     notify.Notifier
	Renderer     *report.Renderer

	Service *service.Service
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
	}

	categories := domain.CategoriesFromStrings(cfg.Market.Categories)
	if len(categories) == 0 {
		categories = domain.Categories
	}

	var storeOpts []store.Option
	if cfg.Store.Upsert {
		storeOpts = append(storeOpts, store.WithUpsert())
	}

	var historyStore store.HistoryStore
	var err error
	switch cfg.Store.Backend {
	case "csv", "":
		historyStore = store.NewCSVStore(cfg.Store.Path, categories, storeOpts...)
	case "sqlite":
		historyStore, err = store.NewSQLiteStore(cfg.Store.Path, categories, storeOpts...)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
	container.Store = historyStore

	container.StateManager = state.NewFileStateManager(cfg.Store.StatePath)
	container.Source = band.NewClient(cfg.Band)
	container.Notifier = notify.NewNtfyNotifier(cfg.Notify)
	container.Renderer = report.NewRenderer(cfg.Report.OutputDir)

	container.Service = service.NewService(
		container.Source,
		container.Store,
		container.StateManager,
		container.Notifier,
		container.Renderer,
		cfg.Report.OutputDir,
		categories,
		cfg.Market.AlertThreshold,
		cfg.Report.MaxWorkers,
	)

	return container, nil
}

// Run dispatches one mode of the tracker.
func (c *Container) Run(ctx context.Context, mode string) error {
	switch mode {
	case "ingest":
		return c.Service.Ingest(ctx)
	case "rebuild":
		return c.Service.Rebuild(ctx)
	case "report":
		return c.Service.Report(ctx)
	default:
		return fmt.Errorf("unknown mode %q (want ingest, rebuild or report)", mode)
	}
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	if closer, ok := c.Store.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			return err
		}
	}
	log.Debug("Container shut down")
	return nil
}
