package render

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	internalrender "github.com/goliatone/go-blocks/internal/render"
	"github.com/goliatone/go-blocks/pkg/activity"
	"github.com/goliatone/go-blocks/pkg/domain"
	"github.com/goliatone/go-blocks/pkg/interfaces/cache"
	"github.com/goliatone/go-blocks/pkg/interfaces/logger"
	"github.com/goliatone/go-blocks/pkg/interfaces/store"
	i18n "github.com/goliatone/go-i18n"
	"github.com/jaytaylor/html2text"
)

// RenderRequest maps to the internal render service request payload.
type RenderRequest = internalrender.RenderRequest

// RenderResult carries the rendered markup plus the plain-text rendition
// derived from it, along with variant metadata.
type RenderResult struct {
	HTML         string
	Text         string
	Locale       string
	Revision     int
	Metadata     domain.JSONMap
	Source       domain.TemplateSource
	UsedFallback bool
}

// Service exposes CRUD helpers and rendering facilities for block templates.
type Service struct {
	repo          store.BlockTemplateRepository
	cache         cache.Cache
	logger        logger.Logger
	engine        *internalrender.Service
	hooks         activity.Hooks
	cacheTTL      time.Duration
	defaultLocale string
	fallbacks     i18n.FallbackResolver
}

// Dependencies wires repositories + translator dependencies.
type Dependencies struct {
	Repository    store.BlockTemplateRepository
	Cache         cache.Cache
	Logger        logger.Logger
	Translator    i18n.Translator
	Fallbacks     i18n.FallbackResolver
	Hooks         activity.Hooks
	DefaultLocale string
	CacheTTL      time.Duration
}

// TemplateInput captures user-editable template fields.
type TemplateInput struct {
	Code        string
	Locale      string
	Body        string
	Description string
	Format      string
	Schema      domain.TemplateSchema
	Source      domain.TemplateSource
	Metadata    domain.JSONMap
}

var (
	errRepositoryRequired = errors.New("render: repository is required")
	errTranslatorRequired = errors.New("render: translator is required")
)

// New instantiates the render facade using the provided dependencies.
func New(deps Dependencies) (*Service, error) {
	if deps.Repository == nil {
		return nil, errRepositoryRequired
	}
	if deps.Translator == nil {
		return nil, errTranslatorRequired
	}
	if deps.Cache == nil {
		deps.Cache = &cache.Nop{}
	}
	if deps.Logger == nil {
		deps.Logger = &logger.Nop{}
	}
	if deps.CacheTTL <= 0 {
		deps.CacheTTL = time.Minute
	}

	defaultLocale := strings.TrimSpace(deps.DefaultLocale)
	if defaultLocale == "" {
		if provider, ok := deps.Translator.(interface{ DefaultLocale() string }); ok {
			defaultLocale = provider.DefaultLocale()
		}
	}
	if defaultLocale == "" {
		defaultLocale = "en"
	}

	engine, err := internalrender.NewService(
		deps.Translator,
		internalrender.WithDefaultLocale(defaultLocale),
		internalrender.WithFallbackResolver(deps.Fallbacks),
	)
	if err != nil {
		return nil, err
	}

	return &Service{
		repo:          deps.Repository,
		cache:         deps.Cache,
		logger:        deps.Logger,
		engine:        engine,
		hooks:         deps.Hooks,
		cacheTTL:      deps.CacheTTL,
		defaultLocale: defaultLocale,
		fallbacks:     deps.Fallbacks,
	}, nil
}

// RegisterHelpers exposes helper registration to callers.
func (s *Service) RegisterHelpers(funcs map[string]any) {
	if s == nil {
		return
	}
	s.engine.RegisterHelpers(funcs)
}

// Create persists a template variant and registers it for rendering.
func (s *Service) Create(ctx context.Context, input TemplateInput) (*domain.BlockTemplate, error) {
	if s == nil {
		return nil, errRepositoryRequired
	}
	record, err := newDomainTemplate(input)
	if err != nil {
		return nil, err
	}
	record.Revision = 1

	if err := s.repo.Create(ctx, &record); err != nil {
		return nil, err
	}
	s.engine.RegisterTemplates(ctx, record)
	s.writeCache(ctx, record)
	s.notifySaved(ctx, record)
	return &record, nil
}

// Update mutates an existing template, bumping its revision for auditing.
func (s *Service) Update(ctx context.Context, input TemplateInput) (*domain.BlockTemplate, error) {
	if s == nil {
		return nil, errRepositoryRequired
	}
	current, err := s.repo.GetByCodeAndLocale(ctx, strings.TrimSpace(input.Code), strings.TrimSpace(input.Locale))
	if err != nil {
		return nil, err
	}
	updated, err := mergeTemplateInput(*current, input)
	if err != nil {
		return nil, err
	}
	updated.Revision = current.Revision + 1

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, err
	}
	s.engine.RegisterTemplates(ctx, updated)
	s.writeCache(ctx, updated)
	s.notifySaved(ctx, updated)
	return &updated, nil
}

// Save upserts the variant: existing code+locale pairs are updated with a
// revision bump, everything else is created at revision 1.
func (s *Service) Save(ctx context.Context, input TemplateInput) (*domain.BlockTemplate, error) {
	if s == nil {
		return nil, errRepositoryRequired
	}
	_, err := s.repo.GetByCodeAndLocale(ctx, strings.TrimSpace(input.Code), strings.TrimSpace(input.Locale))
	switch {
	case err == nil:
		return s.Update(ctx, input)
	case errors.Is(err, store.ErrNotFound):
		return s.Create(ctx, input)
	default:
		return nil, err
	}
}

// Get fetches the persisted template variant and ensures the renderer has a copy.
func (s *Service) Get(ctx context.Context, code, locale string) (*domain.BlockTemplate, error) {
	tpl, err := s.loadTemplate(ctx, code, locale)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, store.ErrNotFound
	}
	return tpl, nil
}

// ListByCode enumerates locale variants for a given template code.
func (s *Service) ListByCode(ctx context.Context, code string, opts store.ListOptions) (store.ListResult[domain.BlockTemplate], error) {
	result, err := s.repo.ListByCode(ctx, strings.TrimSpace(code), opts)
	if err != nil {
		return store.ListResult[domain.BlockTemplate]{}, err
	}
	items := make([]domain.BlockTemplate, len(result.Items))
	for i, tpl := range result.Items {
		items[i] = cloneTemplate(tpl)
	}
	return store.ListResult[domain.BlockTemplate]{Items: items, Total: result.Total}, nil
}

// Render executes the template pipeline after ensuring the requested variant
// is loaded, then derives the plain-text rendition from the markup.
func (s *Service) Render(ctx context.Context, req RenderRequest) (RenderResult, error) {
	if err := s.ensureVariant(ctx, req.Code, req.Locale); err != nil {
		return RenderResult{}, err
	}
	res, err := s.engine.Render(ctx, req)
	if err != nil {
		return RenderResult{}, err
	}

	out := RenderResult{
		HTML:         res.Body,
		Locale:       res.Locale,
		Revision:     res.Revision,
		Metadata:     res.Metadata,
		Source:       res.Source,
		UsedFallback: res.UsedFallback,
	}
	if strings.EqualFold(res.Format, domain.FormatText) {
		out.Text = res.Body
	} else {
		out.Text = htmlToText(res.Body)
	}
	return out, nil
}

func (s *Service) ensureVariant(ctx context.Context, code, locale string) error {
	for _, candidate := range s.localeCandidates(locale) {
		if _, err := s.loadTemplate(ctx, code, candidate); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return err
		}
		return nil
	}
	return store.ErrNotFound
}

func (s *Service) loadTemplate(ctx context.Context, code, locale string) (*domain.BlockTemplate, error) {
	if s == nil {
		return nil, errRepositoryRequired
	}
	key := cacheKey(code, locale)
	if tpl := s.readCache(ctx, key); tpl != nil {
		s.engine.RegisterTemplates(ctx, *tpl)
		return tpl, nil
	}
	record, err := s.repo.GetByCodeAndLocale(ctx, strings.TrimSpace(code), strings.TrimSpace(locale))
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, store.ErrNotFound
	}
	s.engine.RegisterTemplates(ctx, *record)
	s.writeCache(ctx, *record)
	clone := cloneTemplate(*record)
	return &clone, nil
}

func (s *Service) localeCandidates(requested string) []string {
	chain := make([]string, 0, 4)
	appendUnique := func(locale string) {
		if locale == "" {
			return
		}
		for _, existing := range chain {
			if strings.EqualFold(existing, locale) {
				return
			}
		}
		chain = append(chain, locale)
	}
	appendUnique(requested)
	if s.fallbacks != nil {
		for _, fb := range s.fallbacks.Resolve(requested) {
			appendUnique(fb)
		}
	}
	appendUnique(s.defaultLocale)
	appendUnique("en")
	return chain
}

func (s *Service) readCache(ctx context.Context, key string) *domain.BlockTemplate {
	if key == "" {
		return nil
	}
	value, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("templates cache get failed", logger.Field{Key: "error", Value: err})
		return nil
	}
	if !ok {
		return nil
	}
	switch v := value.(type) {
	case domain.BlockTemplate:
		clone := cloneTemplate(v)
		return &clone
	case *domain.BlockTemplate:
		if v == nil {
			return nil
		}
		clone := cloneTemplate(*v)
		return &clone
	default:
		s.logger.Warn("templates cache returned unexpected type", logger.Field{Key: "type", Value: fmt.Sprintf("%T", value)})
		return nil
	}
}

func (s *Service) writeCache(ctx context.Context, tpl domain.BlockTemplate) {
	if s.cacheTTL <= 0 {
		return
	}
	key := cacheKey(tpl.Code, tpl.Locale)
	if key == "" {
		return
	}
	if err := s.cache.Set(ctx, key, cloneTemplate(tpl), s.cacheTTL); err != nil {
		s.logger.Warn("templates cache set failed", logger.Field{Key: "error", Value: err})
	}
}

func (s *Service) notifySaved(ctx context.Context, tpl domain.BlockTemplate) {
	s.hooks.Notify(ctx, activity.Event{
		Verb:       activity.VerbTemplateSave,
		ObjectType: activity.ObjectBlockTemplate,
		ObjectID:   tpl.ID.String(),
		BlockCode:  tpl.Code,
		Locale:     tpl.Locale,
		Metadata: map[string]any{
			"revision": tpl.Revision,
		},
	})
}

func cacheKey(code, locale string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	locale = strings.ToLower(strings.TrimSpace(locale))
	if code == "" || locale == "" {
		return ""
	}
	return fmt.Sprintf("templates:%s:%s", code, locale)
}

func htmlToText(html string) string {
	plain, err := html2text.FromString(html, html2text.Options{PrettyTables: true})
	if err == nil {
		if trimmed := strings.TrimSpace(plain); trimmed != "" {
			return trimmed
		}
	}
	return stripHTML(html)
}

func stripHTML(html string) string {
	// Minimal fallback: drop tags.
	out := strings.Builder{}
	inTag := false
	for _, r := range html {
		switch r {
		case '<':
			inTag = true
		case '>':
			inTag = false
		default:
			if !inTag {
				out.WriteRune(r)
			}
		}
	}
	return strings.TrimSpace(out.String())
}

func newDomainTemplate(input TemplateInput) (domain.BlockTemplate, error) {
	input = normalizeInput(input)
	if err := validateInput(input); err != nil {
		return domain.BlockTemplate{}, err
	}

	record := domain.BlockTemplate{
		Code:        input.Code,
		Locale:      input.Locale,
		Description: input.Description,
		Format:      input.Format,
		Body:        input.Body,
		Schema:      sanitizeSchema(input.Schema),
		Source:      input.Source,
		Metadata:    cloneJSONMap(input.Metadata),
	}
	return record, nil
}

func mergeTemplateInput(base domain.BlockTemplate, input TemplateInput) (domain.BlockTemplate, error) {
	input = normalizeInput(input)
	if input.Code == "" {
		input.Code = base.Code
	}
	if input.Locale == "" {
		input.Locale = base.Locale
	}
	if input.Description == "" {
		input.Description = base.Description
	}
	if input.Format == "" {
		input.Format = base.Format
	}
	if input.Body == "" {
		input.Body = base.Body
	}
	if input.Source.Type == "" {
		input.Source = base.Source
	}
	if input.Metadata == nil {
		input.Metadata = base.Metadata
	}
	if input.Schema.IsZero() {
		input.Schema = base.Schema
	}
	if err := validateInput(input); err != nil {
		return domain.BlockTemplate{}, err
	}
	base.Code = input.Code
	base.Locale = input.Locale
	base.Description = input.Description
	base.Format = input.Format
	base.Body = input.Body
	base.Source = input.Source
	base.Metadata = cloneJSONMap(input.Metadata)
	base.Schema = sanitizeSchema(input.Schema)
	return base, nil
}

func normalizeInput(input TemplateInput) TemplateInput {
	input.Code = strings.TrimSpace(input.Code)
	input.Locale = strings.TrimSpace(input.Locale)
	input.Body = strings.TrimSpace(input.Body)
	input.Description = strings.TrimSpace(input.Description)
	input.Format = strings.TrimSpace(input.Format)
	if input.Description == "" {
		input.Description = input.Code
	}
	if input.Format == "" {
		input.Format = domain.FormatHTML
	}
	if input.Metadata == nil {
		input.Metadata = make(domain.JSONMap)
	}
	return input
}

func validateInput(input TemplateInput) error {
	if input.Code == "" {
		return errors.New("render: code is required")
	}
	if input.Locale == "" {
		return errors.New("render: locale is required")
	}
	if input.Body == "" && input.Source.Type == "" {
		return errors.New("render: body is required when source is empty")
	}
	return nil
}

func sanitizeSchema(schema domain.TemplateSchema) domain.TemplateSchema {
	if schema.IsZero() {
		return schema
	}
	return domain.TemplateSchema{
		Required: dedupeStrings(schema.Required),
		Optional: dedupeStrings(schema.Optional),
	}
}

func dedupeStrings(list []string) []string {
	if len(list) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(list))
	result := make([]string, 0, len(list))
	for _, value := range list {
		key := strings.ToLower(strings.TrimSpace(value))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, value)
	}
	return result
}

func cloneTemplate(tpl domain.BlockTemplate) domain.BlockTemplate {
	return domain.BlockTemplate{
		RecordMeta:  tpl.RecordMeta,
		Code:        tpl.Code,
		Locale:      tpl.Locale,
		Description: tpl.Description,
		Body:        tpl.Body,
		Format:      tpl.Format,
		Revision:    tpl.Revision,
		Source:      tpl.Source,
		Schema:      tpl.Schema,
		Metadata:    cloneJSONMap(tpl.Metadata),
	}
}

func cloneJSONMap(src domain.JSONMap) domain.JSONMap {
	if len(src) == 0 {
		return nil
	}
	dst := make(domain.JSONMap, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
