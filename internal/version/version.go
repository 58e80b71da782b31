// internal/version/version.go
package version

// Version is overridden at build time with -ldflags "-X gslice/internal/version.Version=...".
var Version = "1.5.0"
