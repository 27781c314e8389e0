package store

import (
	"context"
	"errors"
	"time"

	"github.com/goliatone/go-blocks/pkg/domain"
	"github.com/google/uuid"
)

// ErrNotFound is returned when a record cannot be located.
var ErrNotFound = errors.New("store: not found")

// ListOptions capture pagination and filtering knobs common to repositories.
type ListOptions struct {
	Limit              int
	Offset             int
	Since              time.Time
	Until              time.Time
	IncludeSoftDeleted bool
}

// ListResult bundles records and totals.
type ListResult[T any] struct {
	Items []T
	Total int
}

// Repository defines base CRUD helpers reused by entity-specific interfaces.
type Repository[T any] interface {
	Create(ctx context.Context, record *T) error
	Update(ctx context.Context, record *T) error
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)
	List(ctx context.Context, opts ListOptions) (ListResult[T], error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// BlockDefinitionRepository stores the registered block types.
type BlockDefinitionRepository interface {
	Repository[domain.BlockDefinition]
	GetByCode(ctx context.Context, code string) (*domain.BlockDefinition, error)
}

// BlockTemplateRepository stores per-locale template variants keyed by
// block code and locale.
type BlockTemplateRepository interface {
	Repository[domain.BlockTemplate]
	GetByCodeAndLocale(ctx context.Context, code, locale string) (*domain.BlockTemplate, error)
	ListByCode(ctx context.Context, code string, opts ListOptions) (ListResult[domain.BlockTemplate], error)
}
