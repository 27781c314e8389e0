// Package schema declares the block vocabulary a page builder offers:
// field specs, per-block specs, and the gated catalog. Labels and help
// texts are i18n keys resolved by the host; specs never embed display
// strings.
package schema

// Kind identifies the editor widget and value shape of a field.
type Kind string

const (
	KindChar     Kind = "char"
	KindText     Kind = "text"
	KindRichText Kind = "richtext"
	KindMarkdown Kind = "markdown"
	KindRawHTML  Kind = "rawhtml"
	KindURL      Kind = "url"
	KindBool     Kind = "bool"
	KindInt      Kind = "int"
	KindChoice   Kind = "choice"
	KindImage    Kind = "image"
	KindDocument Kind = "document"
	KindPage     Kind = "page"
	KindIcon     Kind = "icon"
	KindRegex    Kind = "regex"
	KindStruct   Kind = "struct"
	KindStream   Kind = "stream"
)

// Choice is one selectable value with its label key.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label,omitempty"`
}

// FieldSpec describes one editable field of a block.
type FieldSpec struct {
	Name     string   `json:"name"`
	Kind     Kind     `json:"kind"`
	Label    string   `json:"label,omitempty"`
	Help     string   `json:"help,omitempty"`
	Required bool     `json:"required,omitempty"`
	Default  any      `json:"default,omitempty"`
	Choices  []Choice `json:"choices,omitempty"`
	// Group visually clusters alternatives, like the two halves of a
	// link target.
	Group     string `json:"group,omitempty"`
	MinValue  *int   `json:"min_value,omitempty"`
	MaxValue  *int   `json:"max_value,omitempty"`
	MaxLength int    `json:"max_length,omitempty"`
	Pattern   string `json:"pattern,omitempty"`
	// Obsolete fields stay decodable but are hidden from editors.
	Obsolete bool `json:"obsolete,omitempty"`
	// Child carries the nested shape for struct and stream fields.
	Child *BlockSpec `json:"child,omitempty"`
}

// BlockSpec describes a block type. Exactly one shape is populated:
// Kind for scalar blocks whose value is a single field, Fields for
// struct blocks, Members for stream blocks.
type BlockSpec struct {
	Code     string `json:"code,omitempty"`
	Label    string `json:"label,omitempty"`
	Help     string `json:"help,omitempty"`
	Icon     string `json:"icon,omitempty"`
	Template string `json:"template,omitempty"`

	Kind    Kind        `json:"kind,omitempty"`
	Fields  []FieldSpec `json:"fields,omitempty"`
	Members []ChildSpec `json:"members,omitempty"`
	// Entry bounds across all members of a stream block.
	MinNum int `json:"min_num,omitempty"`
	MaxNum int `json:"max_num,omitempty"`
}

// ChildSpec names a block inside a stream with its own cardinality.
type ChildSpec struct {
	Name   string    `json:"name"`
	Label  string    `json:"label,omitempty"`
	Group  string    `json:"group,omitempty"`
	Block  BlockSpec `json:"block"`
	MinNum int       `json:"min_num,omitempty"`
	MaxNum int       `json:"max_num,omitempty"`
}

// Field returns the named field spec, if declared.
func (b BlockSpec) Field(name string) (FieldSpec, bool) {
	for _, field := range b.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return FieldSpec{}, false
}

// Member returns the named stream member, if declared.
func (b BlockSpec) Member(name string) (ChildSpec, bool) {
	for _, member := range b.Members {
		if member.Name == name {
			return member, true
		}
	}
	return ChildSpec{}, false
}

// VisibleFields returns the fields editors see, dropping obsolete ones.
func (b BlockSpec) VisibleFields() []FieldSpec {
	out := make([]FieldSpec, 0, len(b.Fields))
	for _, field := range b.Fields {
		if field.Obsolete {
			continue
		}
		out = append(out, field)
	}
	return out
}

func intPtr(v int) *int { return &v }

func choiceList(values []string, labelPrefix string) []Choice {
	out := make([]Choice, len(values))
	for i, value := range values {
		out[i] = Choice{Value: value, Label: labelPrefix + "." + value}
	}
	return out
}
