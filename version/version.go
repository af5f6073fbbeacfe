package version

import "fmt"

// Version represents a version of evil-client
type Version struct {
	major int
	minor int
	patch int
}

func (v *Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
}

// Current returns current version of evil-client
func Current() *Version {
	return &Version{major: 0, minor: 1, patch: 0}
}

// UserAgent returns the default User-Agent header value sent by the adapter.
func UserAgent() string {
	return fmt.Sprintf("evil-client/%s", Current())
}
