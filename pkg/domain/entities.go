package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// RecordMeta captures identifiers and audit fields shared across entities.
type RecordMeta struct {
	ID        uuid.UUID `bun:",pk,type:uuid" json:"id"`
	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"updated_at"`
	DeletedAt time.Time `bun:",soft_delete,nullzero" json:"deleted_at,omitempty"`
}

// EnsureID assigns a UUID when the struct is about to be persisted.
func (m *RecordMeta) EnsureID() {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
}

// JSONMap persists arbitrary metadata fields as JSON.
type JSONMap map[string]any

// Value implements driver.Valuer.
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("null"), nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner.
func (m *JSONMap) Scan(value any) error {
	if m == nil {
		return errors.New("JSONMap: Scan on nil pointer")
	}
	switch v := value.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("JSONMap: unsupported type %T", value)
	}
}

// StringList stores []string as JSON.
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	return json.Marshal([]string(s))
}

func (s *StringList) Scan(value any) error {
	if s == nil {
		return errors.New("StringList: Scan on nil pointer")
	}
	switch v := value.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		return json.Unmarshal(v, (*[]string)(s))
	case string:
		return json.Unmarshal([]byte(v), (*[]string)(s))
	default:
		return fmt.Errorf("StringList: unsupported type %T", value)
	}
}

// TemplateSource describes where a template body originated.
type TemplateSource struct {
	Type      string  `json:"type"`
	Reference string  `json:"reference"`
	Payload   JSONMap `json:"payload"`
}

func (s TemplateSource) Value() (driver.Value, error) {
	if s.Type == "" && s.Reference == "" && len(s.Payload) == 0 {
		return []byte("null"), nil
	}
	return json.Marshal(s)
}

func (s *TemplateSource) Scan(value any) error {
	if s == nil {
		return errors.New("TemplateSource: Scan on nil pointer")
	}
	switch v := value.(type) {
	case nil:
		*s = TemplateSource{}
		return nil
	case []byte:
		if len(v) == 0 {
			*s = TemplateSource{}
			return nil
		}
		return json.Unmarshal(v, s)
	case string:
		if v == "" {
			*s = TemplateSource{}
			return nil
		}
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("TemplateSource: unsupported type %T", value)
	}
}

// TemplateSchema tracks required and optional placeholders.
type TemplateSchema struct {
	Required []string `json:"required"`
	Optional []string `json:"optional"`
}

// IsZero reports whether any constraints are defined.
func (s TemplateSchema) IsZero() bool {
	return len(s.Required) == 0 && len(s.Optional) == 0
}

func (s TemplateSchema) Value() (driver.Value, error) {
	if len(s.Required) == 0 && len(s.Optional) == 0 {
		return []byte("null"), nil
	}
	return json.Marshal(s)
}

func (s *TemplateSchema) Scan(value any) error {
	if s == nil {
		return errors.New("TemplateSchema: Scan on nil pointer")
	}
	switch v := value.(type) {
	case nil:
		*s = TemplateSchema{}
		return nil
	case []byte:
		if len(v) == 0 {
			*s = TemplateSchema{}
			return nil
		}
		return json.Unmarshal(v, s)
	case string:
		if v == "" {
			*s = TemplateSchema{}
			return nil
		}
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("TemplateSchema: unsupported type %T", value)
	}
}

// BlockDefinition describes a registered block type: the shape editors
// see in the page builder plus rendering hints.
type BlockDefinition struct {
	bun.BaseModel `bun:"table:block_definitions"`
	RecordMeta

	Code        string  `bun:",unique,nullzero,notnull"`
	Name        string  `bun:",nullzero,notnull"`
	Description string  `bun:",nullzero"`
	Group       string  `bun:",nullzero"`
	Kind        string  `bun:",nullzero"`
	Icon        string  `bun:",nullzero"`
	Spec        JSONMap `bun:"type:jsonb,nullzero"`
	// Obsolete lists field names kept for backward compatibility with
	// previously authored content. Builders hide them from editors.
	Obsolete StringList `bun:"type:jsonb,nullzero"`
	Metadata JSONMap    `bun:"type:jsonb,nullzero"`
	// Template references are logical names, resolved by services.
	TemplateKeys StringList `bun:"type:jsonb,nullzero"`
}

// BlockTemplate stores the markup rendered for a block type in one
// locale. Plain-text renditions are derived from the HTML body, so a
// block keeps exactly one variant per locale.
type BlockTemplate struct {
	bun.BaseModel `bun:"table:block_templates"`
	RecordMeta

	Code        string         `bun:",unique:block_templates_code_locale,nullzero,notnull"`
	Locale      string         `bun:",unique:block_templates_code_locale,nullzero,notnull"`
	Description string         `bun:",nullzero"`
	Body        string         `bun:",nullzero"`
	Format      string         `bun:",nullzero"`
	Revision    int            `bun:",nullzero"`
	Source      TemplateSource `bun:"type:jsonb,nullzero"`
	Schema      TemplateSchema `bun:"type:jsonb,nullzero"`
	Metadata    JSONMap        `bun:"type:jsonb,nullzero"`
}

// Block kinds group definitions in builder palettes.
const (
	KindBasic     = "basic"
	KindStructure = "structure"
	KindExpert    = "expert"
)

// Template body formats.
const (
	FormatHTML = "html"
	FormatText = "text"
)
