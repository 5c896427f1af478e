// Package schema derives the field-validation contract from a form
// configuration. The same ordered descriptor list drives the tool input
// schema, the HTTP surface and submission validation.
package schema

import (
	"fmt"
	"strings"

	"github.com/spec-kit/support-desk/internal/config"
	"github.com/spec-kit/support-desk/internal/domain"
	apperrors "github.com/spec-kit/support-desk/pkg/util"
)

// Field describes one string-valued input field.
type Field struct {
	Key         string
	Description string
	Required    bool
}

// Schema is the ordered validation contract for ticket submissions.
type Schema struct {
	Fields []Field
}

// Build translates a form configuration into the validation contract.
// name and issue are always required; priority and category are optional
// with the configured values enumerated in the description (advisory only —
// out-of-list values are accepted); each custom field contributes one field
// per its required flag, described by its label.
func Build(cfg config.FormConfig) Schema {
	fields := []Field{
		{Key: domain.FieldName, Description: "Customer name", Required: true},
		{Key: domain.FieldIssue, Description: "Description of the issue", Required: true},
		{Key: domain.FieldPriority, Description: enumerated("Ticket priority", cfg.Priorities)},
		{Key: domain.FieldCategory, Description: enumerated("Ticket category", cfg.Categories)},
	}
	for _, custom := range cfg.CustomFields {
		fields = append(fields, Field{
			Key:         custom.Key,
			Description: custom.Label,
			Required:    custom.Required,
		})
	}
	return Schema{Fields: fields}
}

// Validate checks a raw key/value submission against the contract and
// returns the string-valued ticket fields. Unknown extra keys are ignored.
func (s Schema) Validate(raw map[string]any) (domain.TicketFields, error) {
	fields := make(domain.TicketFields, len(s.Fields))
	for _, field := range s.Fields {
		value, ok := raw[field.Key]
		if !ok || value == nil {
			if field.Required {
				return nil, missing(field.Key)
			}
			continue
		}
		text, ok := value.(string)
		if !ok {
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("field %q must be a string", field.Key),
				map[string]any{"field": field.Key},
			)
		}
		if text == "" {
			if field.Required {
				return nil, missing(field.Key)
			}
			continue
		}
		fields[field.Key] = text
	}
	return fields, nil
}

func missing(key string) error {
	return apperrors.NewValidationError(
		fmt.Sprintf("missing required field %q", key),
		map[string]any{"field": key},
	)
}

func enumerated(label string, values []string) string {
	if len(values) == 0 {
		return label
	}
	return label + ". One of: " + strings.Join(values, ", ")
}
