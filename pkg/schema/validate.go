package schema

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Problem is one validation finding, located by a dotted path into the
// payload.
type Problem struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (p Problem) String() string {
	if p.Path == "" {
		return p.Message
	}
	return p.Path + ": " + p.Message
}

// Validate checks an authored payload against a block spec. It returns
// nil when the payload conforms. Checks cover requiredness, choice
// membership, integer bounds, patterns, and stream cardinality; it
// never panics on malformed payloads.
func Validate(spec BlockSpec, value any) []Problem {
	return validateBlock(spec, value, "")
}

// ValidateStream checks a page-level stream payload against the gated
// catalog palette.
func ValidateStream(palette []ChildSpec, entries []map[string]any) []Problem {
	var problems []Problem
	counts := make(map[string]int, len(entries))
	for i, entry := range entries {
		path := strconv.Itoa(i)
		name, _ := entry["type"].(string)
		if name == "" {
			problems = append(problems, Problem{Path: path, Message: "entry missing type"})
			continue
		}
		member, ok := lookupChild(palette, name)
		if !ok {
			problems = append(problems, Problem{Path: path, Message: fmt.Sprintf("unknown block type %q", name)})
			continue
		}
		counts[name]++
		problems = append(problems, validateBlock(member.Block, entry["value"], path)...)
	}
	for _, member := range palette {
		if member.MaxNum > 0 && counts[member.Name] > member.MaxNum {
			problems = append(problems, Problem{
				Path:    member.Name,
				Message: fmt.Sprintf("accepts at most %d entries, got %d", member.MaxNum, counts[member.Name]),
			})
		}
	}
	return problems
}

func validateBlock(spec BlockSpec, value any, path string) []Problem {
	switch {
	case len(spec.Fields) > 0:
		body, ok := value.(map[string]any)
		if !ok {
			if value == nil {
				body = nil
			} else {
				return []Problem{{Path: path, Message: "expected an object payload"}}
			}
		}
		return validateFields(spec.Fields, body, path)
	case len(spec.Members) > 0:
		return validateStreamValue(spec, value, path)
	default:
		return nil
	}
}

func validateFields(fields []FieldSpec, body map[string]any, path string) []Problem {
	var problems []Problem
	for _, field := range fields {
		fieldPath := joinPath(path, field.Name)
		value, present := body[field.Name]

		if field.Required && isEmptyValue(value) {
			problems = append(problems, Problem{Path: fieldPath, Message: "is required"})
			continue
		}
		if !present || isEmptyValue(value) {
			continue
		}

		switch field.Kind {
		case KindChoice:
			text := asString(value)
			if !hasChoice(field.Choices, text) {
				problems = append(problems, Problem{Path: fieldPath, Message: fmt.Sprintf("value %q is not a valid choice", text)})
			}
		case KindInt:
			n, ok := asInt(value)
			if !ok {
				problems = append(problems, Problem{Path: fieldPath, Message: "must be a number"})
				break
			}
			if field.MinValue != nil && n < *field.MinValue {
				problems = append(problems, Problem{Path: fieldPath, Message: fmt.Sprintf("must be at least %d", *field.MinValue)})
			}
			if field.MaxValue != nil && n > *field.MaxValue {
				problems = append(problems, Problem{Path: fieldPath, Message: fmt.Sprintf("must be at most %d", *field.MaxValue)})
			}
		case KindRegex:
			pattern, err := regexp.Compile(field.Pattern)
			if err != nil {
				problems = append(problems, Problem{Path: fieldPath, Message: "field pattern is invalid"})
				break
			}
			if !pattern.MatchString(asString(value)) {
				problems = append(problems, Problem{Path: fieldPath, Message: fmt.Sprintf("must match %s", field.Pattern)})
			}
		case KindChar, KindIcon:
			if field.MaxLength > 0 && len(asString(value)) > field.MaxLength {
				problems = append(problems, Problem{Path: fieldPath, Message: fmt.Sprintf("must be at most %d characters", field.MaxLength)})
			}
		case KindStruct:
			if field.Child != nil {
				problems = append(problems, validateBlock(*field.Child, value, fieldPath)...)
			}
		case KindStream:
			if field.Child != nil {
				problems = append(problems, validateStreamValue(*field.Child, value, fieldPath)...)
			}
		}
	}
	return problems
}

func validateStreamValue(spec BlockSpec, value any, path string) []Problem {
	entries := entryMaps(value)
	if value != nil && entries == nil {
		return []Problem{{Path: path, Message: "expected a list of entries"}}
	}

	var problems []Problem
	if spec.MaxNum > 0 && len(entries) > spec.MaxNum {
		problems = append(problems, Problem{Path: path, Message: fmt.Sprintf("accepts at most %d entries, got %d", spec.MaxNum, len(entries))})
	}
	if spec.MinNum > 0 && len(entries) < spec.MinNum {
		problems = append(problems, Problem{Path: path, Message: fmt.Sprintf("requires at least %d entries, got %d", spec.MinNum, len(entries))})
	}

	counts := make(map[string]int, len(entries))
	for i, entry := range entries {
		entryPath := joinPath(path, strconv.Itoa(i))
		name, _ := entry["type"].(string)
		if name == "" {
			problems = append(problems, Problem{Path: entryPath, Message: "entry missing type"})
			continue
		}
		member, ok := spec.Member(name)
		if !ok {
			problems = append(problems, Problem{Path: entryPath, Message: fmt.Sprintf("unknown member type %q", name)})
			continue
		}
		counts[name]++
		problems = append(problems, validateBlock(member.Block, entry["value"], entryPath)...)
	}
	for _, member := range spec.Members {
		if member.MaxNum > 0 && counts[member.Name] > member.MaxNum {
			problems = append(problems, Problem{
				Path:    joinPath(path, member.Name),
				Message: fmt.Sprintf("accepts at most %d entries, got %d", member.MaxNum, counts[member.Name]),
			})
		}
		if member.MinNum > 0 && counts[member.Name] < member.MinNum {
			problems = append(problems, Problem{
				Path:    joinPath(path, member.Name),
				Message: fmt.Sprintf("requires at least %d entries, got %d", member.MinNum, counts[member.Name]),
			})
		}
	}
	return problems
}

// Helpers

func lookupChild(palette []ChildSpec, name string) (ChildSpec, bool) {
	for _, child := range palette {
		if child.Name == name {
			return child, true
		}
	}
	return ChildSpec{}, false
}

func joinPath(base, segment string) string {
	if base == "" {
		return segment
	}
	return base + "." + segment
}

func hasChoice(options []Choice, value string) bool {
	for _, option := range options {
		if option.Value == value {
			return true
		}
	}
	return false
}

func isEmptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case map[string]any:
		return len(v) == 0
	case []any:
		return len(v) == 0
	case []map[string]any:
		return len(v) == 0
	default:
		return false
	}
}

func asString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return ""
	}
}

func asInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func entryMaps(value any) []map[string]any {
	switch v := value.(type) {
	case nil:
		return nil
	case []map[string]any:
		return v
	case []any:
		out := make([]map[string]any, 0, len(v))
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	default:
		return nil
	}
}
