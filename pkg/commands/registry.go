package commands

import (
	internalcommands "github.com/goliatone/go-blocks/internal/commands"
	"github.com/goliatone/go-blocks/pkg/activity"
	"github.com/goliatone/go-blocks/pkg/interfaces/logger"
	"github.com/goliatone/go-blocks/pkg/registry"
	"github.com/goliatone/go-blocks/pkg/render"
	"github.com/goliatone/go-blocks/pkg/schema"
	command "github.com/goliatone/go-command"
)

// Re-export request types so consumers need not import internal packages.
type (
	DefineBlock    = internalcommands.DefineBlock
	TemplateUpsert = internalcommands.TemplateUpsert
	RenderBlock    = internalcommands.RenderBlock
	ValidateStream = internalcommands.ValidateStream
	ImportSnapshot = internalcommands.ImportSnapshot
)

// Registry exposes go-command compatible handlers backed by the module services.
type Registry struct {
	Catalog        *internalcommands.Catalog
	DefineBlock    command.Commander[DefineBlock]
	SaveTemplate   command.Commander[TemplateUpsert]
	RenderBlock    command.Commander[RenderBlock]
	ValidateStream command.Commander[ValidateStream]
	ImportSnapshot command.Commander[ImportSnapshot]
}

// Dependencies mirror the internal command dependencies but keep them public.
type Dependencies struct {
	Definitions *registry.Service
	Templates   *render.Service
	Blocks      *schema.Catalog
	BlockOpts   schema.BuildOptions
	Hooks       activity.Hooks
	Logger      logger.Logger
}

// New builds the registry using the provided dependencies.
func New(deps Dependencies) (*Registry, error) {
	catalog, err := internalcommands.NewCatalog(internalcommands.Dependencies{
		Definitions: deps.Definitions,
		Templates:   deps.Templates,
		Blocks:      deps.Blocks,
		BlockOpts:   deps.BlockOpts,
		Hooks:       deps.Hooks,
		Logger:      deps.Logger,
	})
	if err != nil {
		return nil, err
	}
	return &Registry{
		Catalog:        catalog,
		DefineBlock:    catalog.DefineBlock,
		SaveTemplate:   catalog.SaveTemplate,
		RenderBlock:    catalog.RenderBlock,
		ValidateStream: catalog.ValidateStream,
		ImportSnapshot: catalog.ImportSnapshot,
	}, nil
}

// Commanders returns every handler so callers can register them with go-command registries.
func (r *Registry) Commanders() []any {
	if r == nil {
		return nil
	}
	return []any{
		r.DefineBlock,
		r.SaveTemplate,
		r.RenderBlock,
		r.ValidateStream,
		r.ImportSnapshot,
	}
}
