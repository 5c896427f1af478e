package domain

// Fixed field keys shared by validation, composition and the tool contract.
const (
	FieldName     = "name"
	FieldIssue    = "issue"
	FieldPriority = "priority"
	FieldCategory = "category"
)

// FieldEmail is the conventional custom field key whose value, when
// submitted, becomes the reply-to address of the delivered ticket.
const FieldEmail = "email"

// Defaults echoed back when the caller omits the value. They do not affect
// the composed email, which only renders fields that were submitted.
const (
	DefaultPriority = "Medium"
	DefaultCategory = "General Inquiry"
)

// TicketFields maps a declared field key to its submitted string value. It
// is produced by schema validation and lives only for the duration of one
// submission.
type TicketFields map[string]string

// Has reports whether the field was submitted with a non-empty value.
func (f TicketFields) Has(key string) bool {
	return f[key] != ""
}
