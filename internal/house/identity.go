package house

import (
	"strings"

	"github.com/google/uuid"
)

// maxSlugLength bounds generated slugs.
const maxSlugLength = 50

// GenerateID creates a new unique identifier for a house.
func GenerateID() string {
	return uuid.New().String()
}

// GenerateSlug creates a URL-safe slug from a display name.
func GenerateSlug(name string) string {
	slug := strings.ToLower(name)
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = strings.ReplaceAll(slug, "_", "-")

	// Strip anything that is not lowercase alphanumeric or a hyphen.
	var result strings.Builder
	for _, r := range slug {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			result.WriteRune(r)
		}
	}
	slug = result.String()

	slug = strings.Trim(slug, "-")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}

	if len(slug) > maxSlugLength {
		slug = strings.Trim(slug[:maxSlugLength], "-")
	}
	return slug
}
