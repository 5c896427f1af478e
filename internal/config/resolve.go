package config

import (
	"encoding/json"
	"fmt"
	"os"

	apperrors "github.com/spec-kit/support-desk/pkg/util"
)

// Override is a partial form configuration. Nil fields fall through to the
// value beneath them; set fields win. Brand, delivery and the credential pair
// merge per key; slices replace the underlying list wholesale.
type Override struct {
	Brand           *BrandOverride    `json:"brand,omitempty"`
	Delivery        *DeliveryOverride `json:"delivery,omitempty"`
	SupportEmail    *string           `json:"supportEmail,omitempty"`
	SubjectTemplate *string           `json:"subjectTemplate,omitempty"`
	CustomFields    *[]CustomField    `json:"customFields,omitempty"`
	Priorities      *[]string         `json:"priorities,omitempty"`
	Categories      *[]string         `json:"categories,omitempty"`
}

// BrandOverride overrides individual brand keys.
type BrandOverride struct {
	Name         *string `json:"name,omitempty"`
	PrimaryColor *string `json:"primaryColor,omitempty"`
	AccentColor  *string `json:"accentColor,omitempty"`
	Tagline      *string `json:"tagline,omitempty"`
	LogoURL      *string `json:"logoUrl,omitempty"`
}

// DeliveryOverride overrides individual delivery keys; the credential pair
// nests one level deeper and merges the same way.
type DeliveryOverride struct {
	Host   *string       `json:"host,omitempty"`
	Port   *int          `json:"port,omitempty"`
	Secure *bool         `json:"secure,omitempty"`
	Auth   *AuthOverride `json:"auth,omitempty"`
}

// AuthOverride overrides the credential pair per half.
type AuthOverride struct {
	User *string `json:"user,omitempty"`
	Pass *string `json:"pass,omitempty"`
}

// LoadOverrideFile reads a JSON override from disk.
func LoadOverrideFile(path string) (*Override, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read form override: %w", err)
	}
	var ov Override
	if err := json.Unmarshal(data, &ov); err != nil {
		return nil, fmt.Errorf("parse form override %s: %w", path, err)
	}
	return &ov, nil
}

// Resolve merges the default configuration with zero or more partial
// overrides, later overrides winning per leaf key. The result owns its
// slices, so callers may treat it as immutable. Duplicate custom field keys
// are rejected rather than silently resolved last-write-wins.
func Resolve(def FormConfig, overrides ...*Override) (FormConfig, error) {
	cfg := def
	cfg.CustomFields = append([]CustomField(nil), def.CustomFields...)
	cfg.Priorities = append([]string(nil), def.Priorities...)
	cfg.Categories = append([]string(nil), def.Categories...)

	for _, ov := range overrides {
		if ov == nil {
			continue
		}
		apply(&cfg, ov)
	}

	seen := make(map[string]bool, len(cfg.CustomFields))
	for _, field := range cfg.CustomFields {
		if seen[field.Key] {
			return FormConfig{}, apperrors.NewConfigInvalid(fmt.Sprintf("duplicate custom field key %q", field.Key))
		}
		seen[field.Key] = true
	}

	return cfg, nil
}

func apply(cfg *FormConfig, ov *Override) {
	if ov.Brand != nil {
		applyBrand(&cfg.Brand, ov.Brand)
	}
	if ov.Delivery != nil {
		applyDelivery(&cfg.Delivery, ov.Delivery)
	}
	if ov.SupportEmail != nil {
		cfg.SupportEmail = *ov.SupportEmail
	}
	if ov.SubjectTemplate != nil {
		cfg.SubjectTemplate = *ov.SubjectTemplate
	}
	if ov.CustomFields != nil {
		cfg.CustomFields = append([]CustomField(nil), (*ov.CustomFields)...)
	}
	if ov.Priorities != nil {
		cfg.Priorities = append([]string(nil), (*ov.Priorities)...)
	}
	if ov.Categories != nil {
		cfg.Categories = append([]string(nil), (*ov.Categories)...)
	}
}

func applyBrand(brand *Brand, ov *BrandOverride) {
	if ov.Name != nil {
		brand.Name = *ov.Name
	}
	if ov.PrimaryColor != nil {
		brand.PrimaryColor = *ov.PrimaryColor
	}
	if ov.AccentColor != nil {
		brand.AccentColor = *ov.AccentColor
	}
	if ov.Tagline != nil {
		brand.Tagline = *ov.Tagline
	}
	if ov.LogoURL != nil {
		brand.LogoURL = *ov.LogoURL
	}
}

func applyDelivery(delivery *DeliverySettings, ov *DeliveryOverride) {
	if ov.Host != nil {
		delivery.Host = *ov.Host
	}
	if ov.Port != nil {
		delivery.Port = *ov.Port
	}
	if ov.Secure != nil {
		delivery.Secure = *ov.Secure
	}
	if ov.Auth != nil {
		if ov.Auth.User != nil {
			delivery.Auth.User = *ov.Auth.User
		}
		if ov.Auth.Pass != nil {
			delivery.Auth.Pass = *ov.Auth.Pass
		}
	}
}
