// Package version carries the build version, overridden at release
// time via -ldflags "-X github.com/plumekit/plume/internal/version.Version=...".
package version

var Version = "dev"
