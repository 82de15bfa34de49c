package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	// Auth fields
	"Email":    "Email",
	"Username": "Username",
	"Password": "Password",
	"Name":     "Name",

	// Profile fields
	"Role":         "Role",
	"Description":  "Description",
	"SocialMedias": "Social media links",

	// Experience fields
	"StartYear":   "Start year",
	"EndYear":     "End year",
	"CompanyName": "Company name",
	"Location":    "Location",
	"SkillIDs":    "Skill ids",

	// Education fields
	"Year":            "Year",
	"InstitutionName": "Institution name",

	// Certification fields
	"IssuingOrganization": "Issuing organization",
	"CertificateLink":     "Certificate link",

	// Project fields
	"Title":       "Title",
	"Slug":        "Slug",
	"Content":     "Content",
	"PublishedAt": "Published at",
}

// FormatValidationErrors converts validator.ValidationErrors to one message
// per violated field, so the caller sees every violation found in the pass.
func FormatValidationErrors(err error) []string {
	var messages []string

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: Required", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: Must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s: Must be at least %s", label, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: Must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s: Must be at most %s", label, param)

	case "email":
		return fmt.Sprintf("%s: Invalid email format", label)

	case "url":
		return fmt.Sprintf("%s: Invalid URL format", label)

	case "uuid":
		return fmt.Sprintf("%s: Must be a valid UUID", label)

	case "username":
		return fmt.Sprintf("%s: Only letters, numbers, and underscores are allowed", label)

	case "slug":
		return fmt.Sprintf("%s: Must be lowercase letters, numbers, and hyphens only", label)

	case "gtefield":
		return fmt.Sprintf("%s: Must not be before %s", label, getFieldLabel(param))

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s: Validation failed (%s)", label, e.Tag())
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
