package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-blocks/pkg/domain"
	"github.com/goliatone/go-blocks/pkg/interfaces/store"
	"github.com/google/uuid"
)

type TemplateRepository struct {
	base  baseMemoryRepo[domain.BlockTemplate]
	byKey map[string]uuid.UUID
}

func NewTemplateRepository() *TemplateRepository {
	return &TemplateRepository{
		base:  newBaseMemoryRepo("template", func(t *domain.BlockTemplate) *domain.RecordMeta { return &t.RecordMeta }),
		byKey: make(map[string]uuid.UUID),
	}
}

func templateKey(code, locale string) string {
	return strings.ToLower(fmt.Sprintf("%s|%s", code, locale))
}

func (r *TemplateRepository) Create(ctx context.Context, t *domain.BlockTemplate) error {
	if t == nil {
		return store.ErrNotFound
	}
	key := templateKey(t.Code, t.Locale)
	if _, ok := r.byKey[key]; ok {
		return fmt.Errorf("template %s already exists for locale %s", t.Code, t.Locale)
	}
	if err := r.base.create(ctx, t); err != nil {
		return err
	}
	r.byKey[key] = t.ID
	return nil
}

func (r *TemplateRepository) Update(ctx context.Context, t *domain.BlockTemplate) error {
	return r.base.update(ctx, t)
}

func (r *TemplateRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.BlockTemplate, error) {
	return r.base.getByID(ctx, id, false)
}

func (r *TemplateRepository) GetByCodeAndLocale(ctx context.Context, code, locale string) (*domain.BlockTemplate, error) {
	key := templateKey(code, locale)
	id, ok := r.byKey[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return r.base.getByID(ctx, id, false)
}

func (r *TemplateRepository) List(ctx context.Context, opts store.ListOptions) (store.ListResult[domain.BlockTemplate], error) {
	return r.base.list(ctx, opts)
}

// ListByCode returns every locale variant stored for the code. Pagination
// applies to the filtered set so callers see stable totals per code.
func (r *TemplateRepository) ListByCode(ctx context.Context, code string, opts store.ListOptions) (store.ListResult[domain.BlockTemplate], error) {
	unpaged := opts
	unpaged.Limit = 0
	unpaged.Offset = 0
	all, err := r.base.list(ctx, unpaged)
	if err != nil {
		return store.ListResult[domain.BlockTemplate]{}, err
	}
	filtered := make([]domain.BlockTemplate, 0, len(all.Items))
	for _, item := range all.Items {
		if strings.EqualFold(item.Code, code) {
			filtered = append(filtered, item)
		}
	}
	total := len(filtered)
	start := opts.Offset
	if start > total {
		start = total
	}
	end := total
	if opts.Limit > 0 && start+opts.Limit < end {
		end = start + opts.Limit
	}
	return store.ListResult[domain.BlockTemplate]{Items: filtered[start:end], Total: total}, nil
}

func (r *TemplateRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	record, err := r.base.getByID(ctx, id, false)
	if err != nil {
		return err
	}
	if err := r.base.softDelete(ctx, id); err != nil {
		return err
	}
	delete(r.byKey, templateKey(record.Code, record.Locale))
	return nil
}
