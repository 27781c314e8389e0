package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-blocks/adapters/gocms"
	"github.com/goliatone/go-blocks/pkg/activity"
	"github.com/goliatone/go-blocks/pkg/domain"
	"github.com/goliatone/go-blocks/pkg/interfaces/logger"
	"github.com/goliatone/go-blocks/pkg/interfaces/store"
	"github.com/goliatone/go-blocks/pkg/registry"
	"github.com/goliatone/go-blocks/pkg/render"
	"github.com/goliatone/go-blocks/pkg/schema"
	command "github.com/goliatone/go-command"
)

// Catalog exposes go-command compatible handlers for host transports.
type Catalog struct {
	DefineBlock    command.Commander[DefineBlock]
	SaveTemplate   command.Commander[TemplateUpsert]
	RenderBlock    command.Commander[RenderBlock]
	ValidateStream command.Commander[ValidateStream]
	ImportSnapshot command.Commander[ImportSnapshot]
}

type definitionService interface {
	Get(ctx context.Context, code string) (*domain.BlockDefinition, error)
	Define(ctx context.Context, input registry.DefinitionInput) (*domain.BlockDefinition, error)
}

type templateService interface {
	Get(ctx context.Context, code, locale string) (*domain.BlockTemplate, error)
	Create(ctx context.Context, input render.TemplateInput) (*domain.BlockTemplate, error)
	Update(ctx context.Context, input render.TemplateInput) (*domain.BlockTemplate, error)
	Save(ctx context.Context, input render.TemplateInput) (*domain.BlockTemplate, error)
	Render(ctx context.Context, req render.RenderRequest) (render.RenderResult, error)
}

// Dependencies wires module services into the command catalog.
type Dependencies struct {
	Definitions definitionService
	Templates   templateService
	Blocks      *schema.Catalog
	BlockOpts   schema.BuildOptions
	Hooks       activity.Hooks
	Logger      logger.Logger
}

// NewCatalog builds the command catalog using the supplied dependencies.
func NewCatalog(deps Dependencies) (*Catalog, error) {
	if deps.Definitions == nil {
		return nil, errors.New("commands: definition service is required")
	}
	if deps.Templates == nil {
		return nil, errors.New("commands: template service is required")
	}
	if deps.Blocks == nil {
		deps.Blocks = schema.DefaultCatalog()
	}
	if deps.Logger == nil {
		deps.Logger = &logger.Nop{}
	}

	return &Catalog{
		DefineBlock:    defineBlockCommand{svc: deps.Definitions},
		SaveTemplate:   templateUpsertCommand{templates: deps.Templates},
		RenderBlock:    renderBlockCommand{templates: deps.Templates},
		ValidateStream: validateStreamCommand{catalog: deps.Blocks, opts: deps.BlockOpts},
		ImportSnapshot: importSnapshotCommand{templates: deps.Templates, hooks: deps.Hooks, logger: deps.Logger},
	}, nil
}

// DefineBlock registers or updates a block definition.
type DefineBlock struct {
	registry.DefinitionInput
	AllowUpdate bool `json:"allow_update"`
}

type defineBlockCommand struct {
	svc definitionService
}

func (c defineBlockCommand) Execute(ctx context.Context, msg DefineBlock) error {
	msg.Code = strings.TrimSpace(msg.Code)
	if msg.Code == "" {
		return errors.New("commands: block code is required")
	}
	if _, err := c.svc.Get(ctx, msg.Code); err == nil {
		if !msg.AllowUpdate {
			return errors.New("commands: block definition already exists")
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}
	_, err := c.svc.Define(ctx, msg.DefinitionInput)
	return err
}

// TemplateUpsert wraps render.TemplateInput for command invocation.
type TemplateUpsert struct {
	render.TemplateInput
	AllowUpdate bool `json:"allow_update"`
}

type templateUpsertCommand struct {
	templates templateService
}

func (c templateUpsertCommand) Execute(ctx context.Context, msg TemplateUpsert) error {
	input := msg.TemplateInput
	_, err := c.templates.Get(ctx, input.Code, input.Locale)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_, err := c.templates.Create(ctx, input)
			return err
		}
		return err
	}
	if !msg.AllowUpdate {
		return errors.New("commands: template already exists")
	}
	_, err = c.templates.Update(ctx, input)
	return err
}

// RenderBlock renders one template variant. Result, when non-nil, receives
// the rendered output.
type RenderBlock struct {
	Code   string               `json:"code"`
	Locale string               `json:"locale"`
	Data   map[string]any       `json:"data"`
	Result *render.RenderResult `json:"-"`
}

type renderBlockCommand struct {
	templates templateService
}

func (c renderBlockCommand) Execute(ctx context.Context, msg RenderBlock) error {
	res, err := c.templates.Render(ctx, render.RenderRequest{
		Code:   msg.Code,
		Locale: msg.Locale,
		Data:   msg.Data,
	})
	if err != nil {
		return err
	}
	if msg.Result != nil {
		*msg.Result = res
	}
	return nil
}

// ValidateStream checks authored stream entries against the block catalog.
// Problems, when non-nil, receives every finding.
type ValidateStream struct {
	Entries  []map[string]any  `json:"entries"`
	Problems *[]schema.Problem `json:"-"`
}

type validateStreamCommand struct {
	catalog *schema.Catalog
	opts    schema.BuildOptions
}

func (c validateStreamCommand) Execute(ctx context.Context, msg ValidateStream) error {
	palette := c.catalog.Build(c.opts)
	problems := schema.ValidateStream(palette, msg.Entries)
	if msg.Problems != nil {
		*msg.Problems = problems
	}
	if len(problems) > 0 {
		return fmt.Errorf("commands: stream has %d problem(s)", len(problems))
	}
	return nil
}

// ImportSnapshot upserts every template variant carried by a go-cms block
// snapshot. Imported, when non-nil, receives the saved variant count.
type ImportSnapshot struct {
	Spec     gocms.TemplateSpec         `json:"-"`
	Snapshot gocms.BlockVersionSnapshot `json:"snapshot"`
	Imported *int                       `json:"-"`
}

type importSnapshotCommand struct {
	templates templateService
	hooks     activity.Hooks
	logger    logger.Logger
}

func (c importSnapshotCommand) Execute(ctx context.Context, msg ImportSnapshot) error {
	inputs, err := gocms.TemplatesFromBlockSnapshot(msg.Spec, msg.Snapshot)
	if err != nil {
		return err
	}
	c.logger.Debug("importing block snapshot",
		logger.Field{Key: "code", Value: msg.Spec.Code},
		logger.Field{Key: "configuration", Value: gocms.MaskConfiguration(msg.Snapshot.Configuration)},
	)

	for _, input := range inputs {
		if _, err := c.templates.Save(ctx, input); err != nil {
			return fmt.Errorf("commands: import %s/%s: %w", input.Code, input.Locale, err)
		}
	}
	if msg.Imported != nil {
		*msg.Imported = len(inputs)
	}
	c.hooks.Notify(ctx, activity.Event{
		Verb:       activity.VerbSnapshotImport,
		ObjectType: activity.ObjectBlockTemplate,
		BlockCode:  msg.Spec.Code,
		Metadata: map[string]any{
			"templates": len(inputs),
		},
	})
	return nil
}
