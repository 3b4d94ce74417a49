// Package version parses detected framework versions and gates injection.
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/pagecraft/build-layer/internal/messages"
)

// Normalize validates a framework version string and returns its canonical
// X.Y.Z form without a leading v. value may carry a v prefix or prerelease
// metadata; an empty result means the input was blank.
func Normalize(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}
	parsed, err := semver.NewVersion(trimmed)
	if err != nil {
		return "", fmt.Errorf(messages.VersionInvalidFmt, value)
	}
	return parsed.String(), nil
}

// Major returns the major component of a normalized version string.
// Returns 0 and false when the value is blank or unparseable.
func Major(value string) (uint64, bool) {
	parsed, err := semver.NewVersion(strings.TrimSpace(value))
	if err != nil {
		return 0, false
	}
	return parsed.Major(), true
}
