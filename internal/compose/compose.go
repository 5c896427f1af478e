// Package compose renders the outbound email from validated ticket fields
// and the effective form configuration. Both functions are pure.
package compose

import (
	"strings"

	"github.com/spec-kit/support-desk/internal/config"
	"github.com/spec-kit/support-desk/internal/domain"
)

const separator = "----------------------------------------"

// Subject substitutes the literal {{name}} and {{issue}} tokens in the
// configured subject template. Every occurrence is replaced; a template
// without tokens passes through unchanged.
func Subject(template string, fields domain.TicketFields) string {
	subject := strings.ReplaceAll(template, "{{name}}", fields[domain.FieldName])
	return strings.ReplaceAll(subject, "{{issue}}", fields[domain.FieldIssue])
}

// Body renders the plain-text message body. Custom fields appear in the
// configured order; fields without a submitted value are skipped entirely,
// so the body never contains a label with a blank value.
func Body(fields domain.TicketFields, cfg config.FormConfig) string {
	lines := []string{
		"New support ticket for " + cfg.Brand.Name,
		separator,
		"Name: " + fields[domain.FieldName],
		"Issue: " + fields[domain.FieldIssue],
	}
	if fields.Has(domain.FieldPriority) {
		lines = append(lines, "Priority: "+fields[domain.FieldPriority])
	}
	if fields.Has(domain.FieldCategory) {
		lines = append(lines, "Category: "+fields[domain.FieldCategory])
	}
	for _, custom := range cfg.CustomFields {
		if fields.Has(custom.Key) {
			lines = append(lines, custom.Label+": "+fields[custom.Key])
		}
	}
	lines = append(lines, separator)
	return strings.Join(lines, "\n")
}
