package graph

import (
	"strings"
)

// normalizeNodeID creates a safe, lowercase node ID from a category name.
// It replaces special characters with underscores and converts to lowercase,
// so the same category always maps to the same selection id.
// Example: "Coal Imports" becomes "coal_imports"
func normalizeNodeID(id string) string {
	normalized := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			return r
		}
		return '_'
	}, strings.TrimSpace(id))

	return strings.ToLower(normalized)
}
