// Package version reports build information for the almanac binary.
//
// Values are injected with -ldflags and fall back to the VCS stamp:
//
//	go build -ldflags "-X github.com/kbukum/almanac/version.Version=1.0.0" ./cmd/almanac
package version
