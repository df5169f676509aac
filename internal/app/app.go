package app

import (
	"fmt"

	"github.com/andy/zentime/internal/config"
	"github.com/andy/zentime/internal/service"
	"github.com/andy/zentime/internal/storage"
	"github.com/andy/zentime/internal/store"
)

// App is the dependency injection container for all application components.
// Each store is constructed exactly once here; using a store outside a
// wired App is a programming error, which is why construction fails fast
// on any storage problem.
type App struct {
	Config  *config.Config
	Storage *storage.Store

	// Stores, one per collection
	Projects *store.ProjectStore
	Tasks    *store.TaskStore
	Entries  *store.EntryStore
	Invoices *store.InvoiceStore

	// Derivation services
	InvoiceService *service.InvoiceService
	Analytics      *service.AnalyticsService
}

// New creates a new App instance, loading config from the default path
func New() (*App, error) {
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return NewWithConfig(cfg)
}

// NewWithConfig creates an App with a provided config (useful for testing)
func NewWithConfig(cfg *config.Config) (*App, error) {
	backend, err := storage.New(cfg.Storage.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	projects, err := store.NewProjectStore(backend)
	if err != nil {
		return nil, err
	}
	tasks, err := store.NewTaskStore(backend)
	if err != nil {
		return nil, err
	}
	entries, err := store.NewEntryStore(backend)
	if err != nil {
		return nil, err
	}
	invoices, err := store.NewInvoiceStore(backend, cfg.Invoice.NumberPrefix)
	if err != nil {
		return nil, err
	}

	return &App{
		Config:         cfg,
		Storage:        backend,
		Projects:       projects,
		Tasks:          tasks,
		Entries:        entries,
		Invoices:       invoices,
		InvoiceService: service.NewInvoiceService(projects, entries, invoices),
		Analytics:      service.NewAnalyticsService(projects, tasks, entries, invoices),
	}, nil
}

// SaveConfig saves the current configuration to disk
func (a *App) SaveConfig() error {
	return a.Config.Save(config.DefaultConfigPath())
}
