package render

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTranslatorRequired indicates the service cannot operate without a translator.
	ErrTranslatorRequired = errors.New("render: translator is required")
	// ErrRendererConfig indicates the template renderer was misconfigured.
	ErrRendererConfig = errors.New("render: renderer configuration is incomplete")
	// ErrTemplateNotFound is returned when a code/locale combination has no variant.
	ErrTemplateNotFound = errors.New("render: template variant not found")
	// ErrInvalidRenderRequest is returned when mandatory render inputs are missing.
	ErrInvalidRenderRequest = errors.New("render: invalid render request")
)

// SchemaError surfaces missing or invalid placeholders in the render payload.
type SchemaError struct {
	Missing []string
}

func (e SchemaError) Error() string {
	if len(e.Missing) == 0 {
		return "render: schema validation failed"
	}
	return fmt.Sprintf("render: missing placeholders: %s", strings.Join(e.Missing, ", "))
}
