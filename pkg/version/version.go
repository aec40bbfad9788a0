// Package version exposes the stackgen build version.
package version

// Version is the stackgen release version. Overridden at build time via
// -ldflags "-X github.com/stackgen-dev/stackgen/pkg/version.Version=...".
var Version = "0.3.0"
