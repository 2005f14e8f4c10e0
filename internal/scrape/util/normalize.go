package util

import "strings"

func CleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

func NormalizeLocation(loc string) string {
	loc = CleanText(loc)
	if loc == "" {
		return ""
	}

	loc = strings.TrimPrefix(loc, "Location:")
	loc = strings.TrimPrefix(loc, "LOCATIONS:")
	loc = strings.TrimSpace(loc)

	parts := strings.Split(loc, ",")
	seen := map[string]bool{}
	var out []string
	for _, p := range parts {
		p = CleanText(p)
		if p == "" {
			continue
		}
		k := strings.ToLower(p)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, p)
	}
	return strings.Join(out, ", ")
}

// SplitLocation breaks a "City, State, Country"-ish string into parts.
// Missing trailing parts come back empty.
func SplitLocation(loc string) (city, state, country string) {
	parts := strings.Split(NormalizeLocation(loc), ",")
	get := func(i int) string {
		if i < len(parts) {
			return CleanText(parts[i])
		}
		return ""
	}
	return get(0), get(1), get(2)
}

// LooksRemote reports whether any of the given texts mention remote work.
func LooksRemote(texts ...string) bool {
	blob := strings.ToLower(strings.Join(texts, " "))
	return strings.Contains(blob, "remote")
}

func LooksLikeJunkTitle(t string) bool {
	l := strings.ToLower(t)
	return strings.Contains(l, "view") || strings.Contains(l, "apply")
}
