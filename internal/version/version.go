package version

// Version is overridden at build time via -ldflags "-X dnalign/internal/version.Version=...".
var Version = "0.3.0-dev"
