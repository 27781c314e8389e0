package blocks

import (
	"context"
	"fmt"

	"github.com/goliatone/go-blocks/pkg/content"
	"github.com/goliatone/go-blocks/pkg/render"
)

// RenderedBlock pairs a stream entry with its rendered markup.
type RenderedBlock struct {
	Type   string
	ID     string
	Locale string
	HTML   string
	Text   string
}

// RenderEntry renders one decoded entry through the template registered
// for its block type.
func (m *Module) RenderEntry(ctx context.Context, locale string, entry content.Entry) (RenderedBlock, error) {
	block, err := m.renderEntry(ctx, locale, entry)
	if err != nil {
		return RenderedBlock{}, fmt.Errorf("blocks: render %s: %w", entry.Type, err)
	}
	return block, nil
}

// RenderStream renders every entry in authored order. The first failure
// aborts the walk and names the entry position.
func (m *Module) RenderStream(ctx context.Context, locale string, stream content.Stream) ([]RenderedBlock, error) {
	out := make([]RenderedBlock, 0, len(stream))
	for i, entry := range stream {
		block, err := m.renderEntry(ctx, locale, entry)
		if err != nil {
			return out, fmt.Errorf("blocks: render entry %d (%s): %w", i, entry.Type, err)
		}
		out = append(out, block)
	}
	return out, nil
}

func (m *Module) renderEntry(ctx context.Context, locale string, entry content.Entry) (RenderedBlock, error) {
	if m == nil || m.container == nil {
		return RenderedBlock{}, fmt.Errorf("module is not initialised")
	}
	res, err := m.container.Templates.Render(ctx, render.RenderRequest{
		Code:   entry.Type,
		Locale: locale,
		Data:   entry.Context(),
	})
	if err != nil {
		return RenderedBlock{}, err
	}
	return RenderedBlock{
		Type:   entry.Type,
		ID:     entry.ID,
		Locale: res.Locale,
		HTML:   res.HTML,
		Text:   res.Text,
	}, nil
}
