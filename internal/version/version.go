// Package version exposes the build version, set at link time via
// -ldflags "-X github.com/Adriftdev/gemini-client/internal/version.value=v1.2.3".
package version

var value = "dev"

// Value returns the build version.
func Value() string {
	return value
}
