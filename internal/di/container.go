package di

import (
	"errors"
	"reflect"

	"github.com/goliatone/go-blocks/pkg/activity"
	"github.com/goliatone/go-blocks/pkg/commands"
	"github.com/goliatone/go-blocks/pkg/config"
	"github.com/goliatone/go-blocks/pkg/interfaces/cache"
	"github.com/goliatone/go-blocks/pkg/interfaces/logger"
	"github.com/goliatone/go-blocks/pkg/registry"
	"github.com/goliatone/go-blocks/pkg/render"
	"github.com/goliatone/go-blocks/pkg/schema"
	"github.com/goliatone/go-blocks/pkg/settings"
	"github.com/goliatone/go-blocks/pkg/storage"
	i18n "github.com/goliatone/go-i18n"
)

// Options configure the DI container.
type Options struct {
	Config     config.Config
	Storage    storage.Providers
	Logger     logger.Logger
	Cache      cache.Cache
	Translator i18n.Translator
	Fallbacks  i18n.FallbackResolver
	Hooks      activity.Hooks
	Catalog    *schema.Catalog
	Helpers    map[string]any
}

// Container wires storage, the block catalog, services, and commands.
type Container struct {
	Config    config.Config
	Storage   storage.Providers
	Catalog   *schema.Catalog
	Registry  *registry.Service
	Templates *render.Service
	Settings  *settings.Resolver
	Commands  *commands.Registry
}

func isZeroConfig(cfg config.Config) bool {
	return reflect.ValueOf(cfg).IsZero()
}

// New constructs the container using the supplied options.
func New(opts Options) (*Container, error) {
	if opts.Translator == nil {
		return nil, errors.New("di: translator is required")
	}

	cfg := opts.Config
	if isZeroConfig(cfg) {
		cfg = config.Defaults()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	providers := opts.Storage
	if providers.Definitions == nil {
		providers = storage.NewMemoryProviders()
	}

	lgr := opts.Logger
	if lgr == nil {
		lgr = &logger.Nop{}
	}

	c := opts.Cache
	if c == nil {
		c = &cache.Nop{}
	}

	catalog := opts.Catalog
	if catalog == nil {
		catalog = schema.DefaultCatalog()
	}

	tplSvc, err := render.New(render.Dependencies{
		Repository:    providers.Templates,
		Cache:         c,
		Logger:        lgr,
		Translator:    opts.Translator,
		Fallbacks:     opts.Fallbacks,
		Hooks:         opts.Hooks,
		DefaultLocale: cfg.Localization.DefaultLocale,
		CacheTTL:      cfg.Render.CacheTTL,
	})
	if err != nil {
		return nil, err
	}
	if len(opts.Helpers) > 0 {
		tplSvc.RegisterHelpers(opts.Helpers)
	}

	regSvc, err := registry.New(registry.Dependencies{
		Repository: providers.Definitions,
		Logger:     lgr,
		Hooks:      opts.Hooks,
	})
	if err != nil {
		return nil, err
	}

	siteSettings, err := settings.NewResolver(settings.FromConfig(cfg))
	if err != nil {
		return nil, err
	}

	cmdRegistry, err := commands.New(commands.Dependencies{
		Definitions: regSvc,
		Templates:   tplSvc,
		Blocks:      catalog,
		BlockOpts:   cfg.CatalogOptions(),
		Hooks:       opts.Hooks,
		Logger:      lgr,
	})
	if err != nil {
		return nil, err
	}

	return &Container{
		Config:    cfg,
		Storage:   providers,
		Catalog:   catalog,
		Registry:  regSvc,
		Templates: tplSvc,
		Settings:  siteSettings,
		Commands:  cmdRegistry,
	}, nil
}
