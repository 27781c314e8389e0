package blocks

import (
	"context"
	"fmt"

	"github.com/goliatone/go-blocks/pkg/markup"
	"github.com/goliatone/go-blocks/pkg/render"
)

// SeedResult reports what the bootstrap pass wrote.
type SeedResult struct {
	Definitions int
	Templates   int
	Codes       []string
}

// Seed synchronizes the catalog into the definition store and upserts
// the bundled markup templates. It is idempotent: rerunning refreshes
// existing rows instead of duplicating them.
func (m *Module) Seed(ctx context.Context) (SeedResult, error) {
	if m == nil || m.container == nil {
		return SeedResult{}, fmt.Errorf("blocks: module is not initialised")
	}

	sync, err := m.container.Registry.SyncCatalog(ctx, m.container.Catalog, m.container.Config.CatalogOptions())
	if err != nil {
		return SeedResult{}, fmt.Errorf("blocks: sync catalog: %w", err)
	}

	result := SeedResult{
		Definitions: sync.Created + sync.Updated,
		Codes:       sync.Codes,
	}
	for _, tpl := range markup.Templates() {
		input := render.TemplateInput{
			Code:        tpl.Code,
			Locale:      tpl.Locale,
			Body:        tpl.Body,
			Description: tpl.Description,
			Format:      tpl.Format,
			Schema:      tpl.Schema,
			Source:      tpl.Source,
			Metadata:    tpl.Metadata,
		}
		if _, err := m.container.Templates.Save(ctx, input); err != nil {
			return result, fmt.Errorf("blocks: seed template %s/%s: %w", tpl.Code, tpl.Locale, err)
		}
		result.Templates++
	}
	return result, nil
}
