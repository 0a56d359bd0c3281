package rolemeta

import (
	"strings"

	"medical-directory-admin/internal/domain/entity"
)

// Validate returns the labels of the mandatory fields of role that md leaves blank,
// in registry order. An empty result means md is complete.
func Validate(role entity.Role, md entity.RoleMetadata) []string {
	schema, ok := Lookup(role)
	if !ok {
		return nil
	}
	values := ToMap(md)
	missing := []string{}
	for _, f := range schema.Required {
		if isBlank(values[f.Key]) {
			missing = append(missing, f.Label)
		}
	}
	return missing
}

func isBlank(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	}
	return false
}
