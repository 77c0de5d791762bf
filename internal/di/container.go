package di

import (
	"fmt"
	"sync"
	"time"

	"nynf/internal/app"
	"nynf/internal/checkout"
	"nynf/internal/i18n"
	"nynf/internal/render"
	"nynf/internal/store"
)

// Container holds all application dependencies
type Container struct {
	store    store.Store
	provider checkout.Provider
	adapter  *checkout.SessionAdapter
	renderer *render.Renderer
	catalog  *i18n.Catalog
	mu       sync.RWMutex
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return &Container{}
}

// Initialize builds all services from the application context
func (c *Container) Initialize(appCtx *app.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	cfg := appCtx.Config

	var (
		st  store.Store
		err error
	)
	switch cfg.Storage.Backend {
	case "sqlite":
		st, err = store.NewSQLiteStore(appCtx.DataDir)
	default:
		st, err = store.NewFileStore(appCtx.DataDir)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize %s store: %w", cfg.Storage.Backend, err)
	}
	c.store = st

	// The language preference lives in the store, so the catalog loads
	// after it
	lang := st.Preference(store.KeyLanguage)
	if lang == "" {
		lang = i18n.DefaultLanguage
	}
	catalog, err := i18n.Load(lang)
	if err != nil {
		return fmt.Errorf("failed to load message catalog: %w", err)
	}
	c.catalog = catalog

	timeout := time.Duration(cfg.Checkout.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Minute
	}

	c.provider = checkout.NewRazorpayClient(cfg.Checkout)
	c.adapter = checkout.NewSessionAdapter(c.provider, st, cfg.Currency, timeout)
	c.renderer = render.NewRenderer(cfg, appCtx.OutputDir)

	return nil
}

// Store returns the persistence backend
func (c *Container) Store() store.Store {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store
}

// Adapter returns the checkout session adapter
func (c *Container) Adapter() *checkout.SessionAdapter {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.adapter
}

// Renderer returns the document renderer
func (c *Container) Renderer() *render.Renderer {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.renderer
}

// Catalog returns the resolved message catalog
func (c *Container) Catalog() *i18n.Catalog {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.catalog
}
