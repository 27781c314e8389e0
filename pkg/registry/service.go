package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-blocks/pkg/activity"
	"github.com/goliatone/go-blocks/pkg/domain"
	"github.com/goliatone/go-blocks/pkg/interfaces/logger"
	"github.com/goliatone/go-blocks/pkg/interfaces/store"
	"github.com/goliatone/go-blocks/pkg/schema"
)

// Service maintains the persisted block definitions editors build pages from.
type Service struct {
	repo   store.BlockDefinitionRepository
	logger logger.Logger
	hooks  activity.Hooks
}

// Dependencies wires the repository and observers into the service.
type Dependencies struct {
	Repository store.BlockDefinitionRepository
	Logger     logger.Logger
	Hooks      activity.Hooks
}

// DefinitionInput captures the editable fields of a block definition.
type DefinitionInput struct {
	Code         string
	Name         string
	Description  string
	Group        string
	Kind         string
	Icon         string
	Spec         domain.JSONMap
	Obsolete     []string
	Metadata     domain.JSONMap
	TemplateKeys []string
}

// SyncResult summarizes a catalog sync pass.
type SyncResult struct {
	Created int
	Updated int
	Codes   []string
}

var (
	errRepositoryRequired = errors.New("registry: repository is required")
	errCodeRequired       = errors.New("registry: block code is required")
)

// New constructs the registry service.
func New(deps Dependencies) (*Service, error) {
	if deps.Repository == nil {
		return nil, errRepositoryRequired
	}
	if deps.Logger == nil {
		deps.Logger = &logger.Nop{}
	}
	return &Service{
		repo:   deps.Repository,
		logger: deps.Logger,
		hooks:  deps.Hooks,
	}, nil
}

// Define registers a block type, updating the stored definition when the
// code already exists.
func (s *Service) Define(ctx context.Context, input DefinitionInput) (*domain.BlockDefinition, error) {
	if s == nil {
		return nil, errRepositoryRequired
	}
	input = normalizeInput(input)
	if input.Code == "" {
		return nil, errCodeRequired
	}

	current, err := s.repo.GetByCode(ctx, input.Code)
	switch {
	case err == nil:
		applyInput(current, input)
		if err := s.repo.Update(ctx, current); err != nil {
			return nil, err
		}
		s.notifyDefine(ctx, current, true)
		return current, nil
	case errors.Is(err, store.ErrNotFound):
		record := &domain.BlockDefinition{}
		applyInput(record, input)
		if err := s.repo.Create(ctx, record); err != nil {
			return nil, err
		}
		s.notifyDefine(ctx, record, false)
		return record, nil
	default:
		return nil, err
	}
}

// Get fetches the definition registered under code.
func (s *Service) Get(ctx context.Context, code string) (*domain.BlockDefinition, error) {
	if s == nil {
		return nil, errRepositoryRequired
	}
	return s.repo.GetByCode(ctx, strings.TrimSpace(code))
}

// List enumerates stored definitions using repository pagination.
func (s *Service) List(ctx context.Context, opts store.ListOptions) (store.ListResult[domain.BlockDefinition], error) {
	if s == nil {
		return store.ListResult[domain.BlockDefinition]{}, errRepositoryRequired
	}
	return s.repo.List(ctx, opts)
}

// Remove soft-deletes the definition so authored content keeps decoding
// while builders stop offering the block.
func (s *Service) Remove(ctx context.Context, code string) error {
	if s == nil {
		return errRepositoryRequired
	}
	record, err := s.repo.GetByCode(ctx, strings.TrimSpace(code))
	if err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, record.ID); err != nil {
		return err
	}
	s.hooks.Notify(ctx, activity.Event{
		Verb:       activity.VerbBlockRemove,
		ObjectType: activity.ObjectBlockDefinition,
		ObjectID:   record.ID.String(),
		BlockCode:  record.Code,
	})
	return nil
}

// SyncCatalog upserts one definition per palette entry so hosts can seed
// or refresh the stored registry from the static vocabulary.
func (s *Service) SyncCatalog(ctx context.Context, catalog *schema.Catalog, opts schema.BuildOptions) (SyncResult, error) {
	if s == nil {
		return SyncResult{}, errRepositoryRequired
	}
	if catalog == nil {
		return SyncResult{}, errors.New("registry: catalog is required")
	}

	result := SyncResult{}
	for _, child := range catalog.Build(opts) {
		input, err := inputFromChild(child)
		if err != nil {
			return result, fmt.Errorf("registry: sync %s: %w", child.Name, err)
		}

		_, err = s.repo.GetByCode(ctx, input.Code)
		existed := err == nil
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return result, err
		}

		if _, err := s.Define(ctx, input); err != nil {
			return result, err
		}
		if existed {
			result.Updated++
		} else {
			result.Created++
		}
		result.Codes = append(result.Codes, input.Code)
	}

	s.hooks.Notify(ctx, activity.Event{
		Verb:       activity.VerbCatalogSync,
		ObjectType: activity.ObjectBlockDefinition,
		Metadata: map[string]any{
			"created": result.Created,
			"updated": result.Updated,
		},
	})
	s.logger.Info("catalog sync complete",
		logger.Field{Key: "created", Value: result.Created},
		logger.Field{Key: "updated", Value: result.Updated},
	)
	return result, nil
}

func (s *Service) notifyDefine(ctx context.Context, record *domain.BlockDefinition, existed bool) {
	s.hooks.Notify(ctx, activity.Event{
		Verb:       activity.VerbBlockDefine,
		ObjectType: activity.ObjectBlockDefinition,
		ObjectID:   record.ID.String(),
		BlockCode:  record.Code,
		Metadata: map[string]any{
			"updated": existed,
		},
	})
}

func normalizeInput(input DefinitionInput) DefinitionInput {
	input.Code = strings.TrimSpace(input.Code)
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	input.Group = strings.TrimSpace(input.Group)
	input.Kind = strings.TrimSpace(input.Kind)
	input.Icon = strings.TrimSpace(input.Icon)
	if input.Name == "" {
		input.Name = input.Code
	}
	if input.Kind == "" {
		input.Kind = domain.KindBasic
	}
	return input
}

func applyInput(record *domain.BlockDefinition, input DefinitionInput) {
	record.Code = input.Code
	record.Name = input.Name
	record.Description = input.Description
	record.Group = input.Group
	record.Kind = input.Kind
	record.Icon = input.Icon
	record.Spec = input.Spec
	record.Obsolete = domain.StringList(input.Obsolete)
	record.Metadata = input.Metadata
	record.TemplateKeys = domain.StringList(input.TemplateKeys)
}

func inputFromChild(child schema.ChildSpec) (DefinitionInput, error) {
	spec, err := specAsJSONMap(child.Block)
	if err != nil {
		return DefinitionInput{}, err
	}
	input := DefinitionInput{
		Code:     child.Name,
		Name:     child.Label,
		Group:    child.Group,
		Kind:     kindForChild(child),
		Icon:     child.Block.Icon,
		Spec:     spec,
		Obsolete: obsoleteFieldNames(child.Block),
	}
	if child.Block.Template != "" {
		input.TemplateKeys = []string{child.Block.Template}
	}
	return input, nil
}

func specAsJSONMap(spec schema.BlockSpec) (domain.JSONMap, error) {
	raw, err := json.Marshal(spec)
	if err != nil {
		return nil, err
	}
	out := make(domain.JSONMap)
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func kindForChild(child schema.ChildSpec) string {
	switch {
	case strings.EqualFold(child.Name, "html"):
		return domain.KindExpert
	case child.Group != "":
		return domain.KindStructure
	default:
		return domain.KindBasic
	}
}

func obsoleteFieldNames(spec schema.BlockSpec) []string {
	if len(spec.Fields) == 0 {
		return nil
	}
	out := make([]string, 0, 2)
	for _, field := range spec.Fields {
		if field.Obsolete {
			out = append(out, field.Name)
		}
	}
	return out
}
