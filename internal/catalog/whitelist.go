package catalog

import "strings"

// NormalizeID folds a free-form category id into catalog form: lowercase,
// trimmed, spaces and dashes replaced by underscores.
func NormalizeID(id string) string {
	id = strings.ToLower(strings.TrimSpace(id))
	id = strings.ReplaceAll(id, " ", "_")
	id = strings.ReplaceAll(id, "-", "_")
	return id
}

// SectorIfWhitelisted normalizes id and checks membership in the sector
// catalog. The boolean is false on a miss; callers own the fallback policy
// (typically "use top1 of the ranked list"), never this layer.
func SectorIfWhitelisted(id string) (string, bool) {
	n := NormalizeID(id)
	if _, ok := SectorByID(n); ok {
		return n, true
	}
	return "", false
}

// JobIfWhitelisted normalizes id and checks membership in the job catalog.
func JobIfWhitelisted(id string) (string, bool) {
	n := NormalizeID(id)
	if _, ok := JobByID(n); ok {
		return n, true
	}
	return "", false
}
