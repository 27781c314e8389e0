// Package blocks is the embedding facade: one constructor that wires
// storage, rendering, the block catalog, and commands, plus accessors
// for each service so hosts never touch the container directly.
package blocks

import (
	"errors"

	"github.com/goliatone/go-blocks/internal/di"
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
	opts "github.com/goliatone/go-options"
)

// ErrSchemaDisabled reports a settings schema request without the
// enable_scope_schema opt-in.
var ErrSchemaDisabled = errors.New("blocks: settings schema is disabled")

// ModuleOptions configure the blocks module facade.
type ModuleOptions struct {
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

// Module bundles the container and exposes high-level accessors.
type Module struct {
	container *di.Container
}

// NewModule assembles repositories, services, the catalog, and commands.
func NewModule(options ModuleOptions) (*Module, error) {
	container, err := di.New(di.Options{
		Config:     options.Config,
		Storage:    options.Storage,
		Logger:     options.Logger,
		Cache:      options.Cache,
		Translator: options.Translator,
		Fallbacks:  options.Fallbacks,
		Hooks:      options.Hooks,
		Catalog:    options.Catalog,
		Helpers:    options.Helpers,
	})
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Registry returns the block definition service.
func (m *Module) Registry() *registry.Service {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Registry
}

// Templates returns the template service.
func (m *Module) Templates() *render.Service {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Templates
}

// Commands returns the go-command registry.
func (m *Module) Commands() *commands.Registry {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Commands
}

// Catalog exposes the authoring block catalog.
func (m *Module) Catalog() *schema.Catalog {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Catalog
}

// Settings returns the site-scope presentation resolver derived from
// the module configuration.
func (m *Module) Settings() *settings.Resolver {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Settings
}

// SettingsFor layers section or page snapshots over the configured site
// scope and returns a resolver for that composition. The site snapshot
// always sits at the bottom of the stack.
func (m *Module) SettingsFor(overlays ...settings.Snapshot) (*settings.Resolver, error) {
	if m == nil || m.container == nil {
		return nil, settings.ErrNoSnapshots
	}
	snapshots := make([]settings.Snapshot, 0, len(overlays)+1)
	snapshots = append(snapshots, settings.FromConfig(m.container.Config))
	snapshots = append(snapshots, overlays...)
	return settings.NewResolver(snapshots...)
}

// SettingsSchema describes the merged settings document. It is only
// available when settings.enable_scope_schema is set; hosts that do not
// opt in get ErrSchemaDisabled.
func (m *Module) SettingsSchema() (opts.SchemaDocument, error) {
	if m == nil || m.container == nil {
		return opts.SchemaDocument{}, ErrSchemaDisabled
	}
	if !m.container.Config.Settings.EnableScopeSchema {
		return opts.SchemaDocument{}, ErrSchemaDisabled
	}
	return m.container.Settings.Schema()
}

// Config returns the effective module configuration.
func (m *Module) Config() config.Config {
	if m == nil || m.container == nil {
		return config.Config{}
	}
	return m.container.Config
}

// Container returns the internal DI container.
// This is exposed for advanced use cases like direct storage access.
func (m *Module) Container() *di.Container {
	if m == nil {
		return nil
	}
	return m.container
}
