package export

import "strings"

const defaultIdentity = "anonymous"

// SanitizeIdentity turns a submitter identity into a filename-safe token:
// "jane@doe.com" -> "jane_at_doe_com".
func SanitizeIdentity(identity string) string {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return defaultIdentity
	}
	identity = strings.ReplaceAll(identity, "@", "_at_")
	identity = strings.ReplaceAll(identity, ".", "_")

	var b strings.Builder
	for _, r := range identity {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// Filename derives the deterministic artifact name for an identity, an
// optional run tag, and a scheme extension.
func Filename(identity, runID, ext string) string {
	name := "jobsweep_" + SanitizeIdentity(identity)
	if runID != "" {
		name += "_" + runID
	}
	return name + ext
}
