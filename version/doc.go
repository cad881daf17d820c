// Package version exposes the build version of the running binary.
//
// Version, git commit, and build time are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/errkit/version.Version=1.0.0"
//
// Unset fields fall back to the VCS metadata the Go toolchain embeds.
package version
