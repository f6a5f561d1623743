package doctor

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// compareVersions compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
func compareVersions(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// isOlderThan reports whether version is strictly below floor.
func isOlderThan(version, floor string) (bool, error) {
	cmp, err := compareVersions(version, floor)
	if err != nil {
		return false, err
	}
	return cmp == -1, nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
