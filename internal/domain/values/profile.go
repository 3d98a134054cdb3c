// Package values contains domain value objects that encapsulate
// primitive types with validation and such.
package values

import (
	"fmt"
	"strings"
)

// Profile is the category a recipe is published under.
// The directory a recipe lives in must be named after its profile.
type Profile string

const (
	// ProfileLite is for minimal recipes
	ProfileLite Profile = "lite"
	// ProfileBase is the default recipe category
	ProfileBase Profile = "base"
	// ProfileScalable is for recipes that scale their yield
	ProfileScalable Profile = "scalable"
	// ProfileTimed is for recipes with timed steps
	ProfileTimed Profile = "timed"
)

// AllowedProfiles returns the accepted profiles in sorted order.
// A new slice is returned on every call.
func AllowedProfiles() []Profile {
	return []Profile{ProfileBase, ProfileLite, ProfileScalable, ProfileTimed}
}

// ParseProfile converts a string into a Profile.
func ParseProfile(s string) (Profile, error) {
	p := Profile(s)
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// IsAllowed reports whether p is one of AllowedProfiles.
func (p Profile) IsAllowed() bool {
	switch p {
	case ProfileLite, ProfileBase, ProfileScalable, ProfileTimed:
		return true
	default:
		return false
	}
}

// Validate returns an error if the profile value is invalid
func (p Profile) Validate() error {
	if !p.IsAllowed() {
		return fmt.Errorf("invalid profile: %q (allowed: %s)", string(p), FormatProfiles(AllowedProfiles()))
	}
	return nil
}

// String returns the string representation
func (p Profile) String() string {
	return string(p)
}

// FormatProfiles renders profiles as a bracketed, comma separated list,
// e.g. "[base, lite, scalable, timed]".
func FormatProfiles(profiles []Profile) string {
	names := make([]string, len(profiles))
	for i, p := range profiles {
		names[i] = string(p)
	}
	return "[" + strings.Join(names, ", ") + "]"
}
