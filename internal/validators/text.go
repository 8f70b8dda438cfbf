package validators

import "strings"

// Optional trims s and maps blank input to nil.
func Optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// OptionalString is Optional for non-pointer input.
func OptionalString(s string) *string {
	return Optional(&s)
}

// Missing returns the names whose values are blank, in order.
func Missing(fields ...[2]string) []string {
	var out []string
	for _, f := range fields {
		if strings.TrimSpace(f[1]) == "" {
			out = append(out, f[0])
		}
	}
	return out
}
