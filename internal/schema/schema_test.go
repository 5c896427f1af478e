package schema

import (
	"strings"
	"testing"

	"github.com/spec-kit/support-desk/internal/config"
	"github.com/spec-kit/support-desk/internal/domain"
)

func testForm() config.FormConfig {
	cfg := config.DefaultForm()
	cfg.CustomFields = []config.CustomField{
		{Key: "email", Label: "Email", Kind: config.FieldEmail},
		{Key: "order_id", Label: "Order ID", Kind: config.FieldText, Required: true},
	}
	return cfg
}

func fieldByKey(t *testing.T, s Schema, key string) Field {
	t.Helper()
	for _, f := range s.Fields {
		if f.Key == key {
			return f
		}
	}
	t.Fatalf("field %q not in schema", key)
	return Field{}
}

func TestBuildAlwaysRequiresNameAndIssue(t *testing.T) {
	cfg := config.DefaultForm()
	cfg.CustomFields = nil
	cfg.Priorities = nil
	cfg.Categories = nil

	s := Build(cfg)
	for _, key := range []string{domain.FieldName, domain.FieldIssue} {
		field := fieldByKey(t, s, key)
		if !field.Required {
			t.Fatalf("field %q must always be required", key)
		}
	}
}

func TestBuildEnumeratesConfiguredValuesInDescriptions(t *testing.T) {
	s := Build(testForm())

	priority := fieldByKey(t, s, domain.FieldPriority)
	if priority.Required {
		t.Fatal("priority must be optional")
	}
	if !strings.Contains(priority.Description, "Low, Medium, High, Urgent") {
		t.Fatalf("priority description missing values: %q", priority.Description)
	}
	category := fieldByKey(t, s, domain.FieldCategory)
	if !strings.Contains(category.Description, "General Inquiry") {
		t.Fatalf("category description missing values: %q", category.Description)
	}
}

func TestBuildCustomFieldsFollowConfig(t *testing.T) {
	s := Build(testForm())

	email := fieldByKey(t, s, "email")
	if email.Required {
		t.Fatal("optional custom field marked required")
	}
	if email.Description != "Email" {
		t.Fatalf("custom field description should be its label, got %q", email.Description)
	}
	if order := fieldByKey(t, s, "order_id"); !order.Required {
		t.Fatal("required custom field not marked required")
	}
}

func TestValidateMissingRequiredField(t *testing.T) {
	s := Build(testForm())

	_, err := s.Validate(map[string]any{
		"name":     "Ada",
		"order_id": "A-100",
	})
	if err == nil {
		t.Fatal("expected error for missing issue")
	}

	_, err = s.Validate(map[string]any{
		"name":  "Ada",
		"issue": "Login broken",
	})
	if err == nil {
		t.Fatal("expected error for missing required custom field")
	}
}

func TestValidateAcceptsUnknownKeysAndLooseValues(t *testing.T) {
	s := Build(testForm())

	fields, err := s.Validate(map[string]any{
		"name":       "Ada",
		"issue":      "Login broken",
		"order_id":   "A-100",
		"priority":   "Catastrophic", // outside the configured list, accepted
		"utm_source": "newsletter",   // unknown key, ignored
	})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if fields["priority"] != "Catastrophic" {
		t.Fatalf("out-of-list priority should pass through, got %q", fields["priority"])
	}
	if _, ok := fields["utm_source"]; ok {
		t.Fatal("unknown key should not appear in ticket fields")
	}
}

func TestValidateRejectsNonStringValues(t *testing.T) {
	s := Build(testForm())

	_, err := s.Validate(map[string]any{
		"name":     "Ada",
		"issue":    "Login broken",
		"order_id": 100,
	})
	if err == nil {
		t.Fatal("expected error for non-string value")
	}
}

func TestValidateEmptyRequiredValueRejected(t *testing.T) {
	s := Build(testForm())

	_, err := s.Validate(map[string]any{
		"name":     "Ada",
		"issue":    "",
		"order_id": "A-100",
	})
	if err == nil {
		t.Fatal("expected error for empty required value")
	}
}
