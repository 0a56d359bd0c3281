package rolemeta

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"
	"strings"
	"unicode"

	"medical-directory-admin/internal/domain/entity"
)

// Normalize converts a client payload into the canonical record of role.
// Keys may be snake_case or camelCase; the snake_case spelling wins when both are sent.
// Malformed values degrade to the field default, so Normalize never fails.
// It returns nil for an unknown role.
func Normalize(role entity.Role, raw map[string]any) entity.RoleMetadata {
	schema, ok := Lookup(role)
	if !ok {
		return nil
	}
	md := schema.New()
	canonical := CanonicalKeys(raw)
	// absent keys decode as null so every field takes its empty shape
	for k := range schema.keys {
		if _, ok := canonical[k]; !ok {
			canonical[k] = nil
		}
	}
	decode(md, canonical)
	return md
}

// decode fills md from canonical and returns the keys whose value a field rejected.
// A rejected key keeps its default while the other keys are still applied.
func decode(md entity.RoleMetadata, canonical map[string]any) []string {
	data, err := json.Marshal(canonical)
	if err == nil && json.Unmarshal(data, md) == nil {
		return nil
	}

	var rejected []string
	for _, k := range slices.Sorted(maps.Keys(canonical)) {
		field, err := json.Marshal(map[string]any{k: canonical[k]})
		if err != nil || json.Unmarshal(field, md) != nil {
			rejected = append(rejected, k)
		}
	}
	return rejected
}

// Extras returns the entries of raw that role does not declare, keyed in snake_case.
// They are kept as ad-hoc metadata on the base entry.
func Extras(role entity.Role, raw map[string]any) map[string]any {
	schema, ok := Lookup(role)
	out := map[string]any{}
	for k, v := range CanonicalKeys(raw) {
		if ok && schema.Declares(k) {
			continue
		}
		out[k] = v
	}
	return out
}

// Merge overlays patch on base. Both are canonicalized first.
func Merge(base, patch map[string]any) map[string]any {
	out := CanonicalKeys(base)
	for k, v := range CanonicalKeys(patch) {
		out[k] = v
	}
	return out
}

// ToMap renders md as a generic map with json.Number numerics. A nil md yields an empty map.
func ToMap(md entity.RoleMetadata) map[string]any {
	out := map[string]any{}
	if md == nil {
		return out
	}
	data, err := json.Marshal(md)
	if err != nil {
		return out
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&out); err != nil {
		return map[string]any{}
	}
	return out
}

// CanonicalKeys returns a copy of raw with every key converted to snake_case.
func CanonicalKeys(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		if snake := toSnake(k); snake == k {
			out[k] = v
		}
	}
	for k, v := range raw {
		snake := toSnake(k)
		if _, taken := out[snake]; !taken {
			out[snake] = v
		}
	}
	return out
}

// toSnake converts camelCase (and PascalCase, and acronyms such as websiteURL) to snake_case.
func toSnake(s string) string {
	runes := []rune(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(runes) + 4)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if prev != '_' && (unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower)) {
					b.WriteByte('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		if r == '-' || r == ' ' {
			r = '_'
		}
		b.WriteRune(r)
	}
	return b.String()
}
