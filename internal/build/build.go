// Package build holds build-time metadata injected via -ldflags.
package build

// Version is the application version, overridden at release time with
// -ldflags "-X go.trai.ch/crew/internal/build.Version=...".
var Version = "dev"
