package common

import (
	"path"
	"strings"
)

// UnknownStr is the display name for out-of-range enum values.
const UnknownStr = "unknown"

// PkgAlias returns the package alias for a given package path: its last
// element, or the one before it when the last is a major version suffix.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	base := path.Base(pkgPath)
	if dir := path.Dir(pkgPath); dir != "." && isMajorVersion(base) {
		return path.Base(dir)
	}

	return base
}

func isMajorVersion(elem string) bool {
	digits, ok := strings.CutPrefix(elem, "v")
	if !ok || digits == "" {
		return false
	}

	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
