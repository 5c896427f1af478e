package config

// FieldKind enumerates the input widgets a custom field can render as.
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldEmail    FieldKind = "email"
	FieldTel      FieldKind = "tel"
	FieldTextarea FieldKind = "textarea"
	FieldSelect   FieldKind = "select"
)

// CustomField declares one form field beyond the fixed name/issue pair. The
// key doubles as the validation key and the email line label target; it must
// be unique within a form configuration.
type CustomField struct {
	Key         string    `json:"key"`
	Label       string    `json:"label"`
	Kind        FieldKind `json:"kind"`
	Placeholder string    `json:"placeholder,omitempty"`
	Required    bool      `json:"required,omitempty"`
	Options     []string  `json:"options,omitempty"`
}

// Brand identifies the organization the form is submitted to.
type Brand struct {
	Name         string `json:"name"`
	PrimaryColor string `json:"primaryColor"`
	AccentColor  string `json:"accentColor"`
	Tagline      string `json:"tagline"`
	LogoURL      string `json:"logoUrl,omitempty"`
}

// SMTPAuth is the credential pair for the delivery transport.
type SMTPAuth struct {
	User string `json:"user"`
	Pass string `json:"pass"`
}

// Configured reports whether both halves of the credential pair are present.
// Either half missing selects the local-record delivery path.
func (a SMTPAuth) Configured() bool {
	return a.User != "" && a.Pass != ""
}

// DeliverySettings describes the SMTP endpoint tickets are sent through.
type DeliverySettings struct {
	Host   string   `json:"host"`
	Port   int      `json:"port"`
	Secure bool     `json:"secure"`
	Auth   SMTPAuth `json:"auth"`
}

// FormConfig is the effective configuration governing one server instance.
// It is resolved once at startup and never mutated afterwards; the schema
// builder, composer, dispatcher and UI all read from it.
type FormConfig struct {
	Brand           Brand            `json:"brand"`
	Delivery        DeliverySettings `json:"delivery"`
	SupportEmail    string           `json:"supportEmail"`
	SubjectTemplate string           `json:"subjectTemplate"`
	CustomFields    []CustomField    `json:"customFields"`
	Priorities      []string         `json:"priorities"`
	Categories      []string         `json:"categories"`
}

// DefaultForm returns the built-in form configuration.
func DefaultForm() FormConfig {
	return FormConfig{
		Brand: Brand{
			Name:         "Acme Support",
			PrimaryColor: "#4f46e5",
			AccentColor:  "#22d3ee",
			Tagline:      "We're here to help",
		},
		Delivery: DeliverySettings{
			Host: "smtp.gmail.com",
			Port: 587,
		},
		SupportEmail:    "support@example.com",
		SubjectTemplate: "[Support] {{name}}: {{issue}}",
		CustomFields: []CustomField{
			{Key: "email", Label: "Email", Kind: FieldEmail, Placeholder: "you@example.com"},
			{Key: "phone", Label: "Phone", Kind: FieldTel, Placeholder: "+1 555 000 0000"},
		},
		Priorities: []string{"Low", "Medium", "High", "Urgent"},
		Categories: []string{"General Inquiry", "Billing", "Technical", "Feature Request"},
	}
}
